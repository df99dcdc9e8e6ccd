package table

import (
	"context"
	"io"
	"sync"
	"testing"

	"brisca-game/internal/bot"
	"brisca-game/internal/game"
	"brisca-game/internal/protocol"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// eventLog captures emitted messages.
type eventLog struct {
	mu       sync.Mutex
	messages []protocol.Message
}

func (e *eventLog) send(t *testing.T) MessageSender {
	return func(message []byte) {
		msg, err := protocol.Decode(message)
		require.NoError(t, err)
		e.mu.Lock()
		defer e.mu.Unlock()
		e.messages = append(e.messages, msg)
	}
}

func (e *eventLog) count(msgType string) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	n := 0
	for _, m := range e.messages {
		if m.Type == msgType {
			n++
		}
	}
	return n
}

func simOptions(seed uint64) SimOptions {
	return SimOptions{
		Rounds:     1,
		Workers:    1,
		Seed:       seed,
		Bots:       []string{"random", "smart", "random", "smart"},
		MaxIllegal: 3,
		Logger:     quietLogger(),
	}
}

func TestRunPlaysRoundToCompletion(t *testing.T) {
	events := &eventLog{}
	tbl, err := NewRound(0, simOptions(17), WithSender(events.send(t)))
	require.NoError(t, err)

	res, err := tbl.Run(context.Background())
	require.NoError(t, err)

	assert.True(t, res.Outcome.Terminal())
	assert.NotEqual(t, game.Aborted, res.Outcome)
	assert.Equal(t, 10, res.Tricks)
	assert.Equal(t, tbl.Board().ID, res.RoundID)
	assert.GreaterOrEqual(t, res.Score[0]+res.Score[1], 130)

	require.NotEmpty(t, events.messages)
	assert.Equal(t, protocol.TypeRoundStart, events.messages[0].Type)
	assert.Equal(t, protocol.TypeRoundEnd, events.messages[len(events.messages)-1].Type)
	assert.Equal(t, 40, events.count(protocol.TypeCardPlayed))
	assert.Equal(t, 10, events.count(protocol.TypeTrickEnd))
	assert.Equal(t, res.Declarations, events.count(protocol.TypeDeclaration))
	assert.Equal(t, res.Exchanges, events.count(protocol.TypeTrumpExchange))
	assert.Equal(t, 0, events.count(protocol.TypeRoundAborted))
}

// stubbornBot always asks for a card that does not exist.
type stubbornBot struct{}

func (stubbornBot) Name() string                                  { return "stubborn" }
func (stubbornBot) ChooseCard(view bot.View) (int, error)         { return 99, nil }
func (stubbornBot) PostTrick(actions bot.Actions, seat int) error { return nil }

func TestRunAbortsAfterRepeatedIllegalPlays(t *testing.T) {
	board, err := game.NewBoard(0, game.WithLogger(logrus.NewEntry(quietLogger())))
	require.NoError(t, err)
	events := &eventLog{}
	bots := [game.NumSeats]bot.Behaviour{stubbornBot{}, bot.NewSmartBot(), bot.NewSmartBot(), bot.NewSmartBot()}
	tbl := New(board, bots, WithMaxIllegal(2), WithSender(events.send(t)), WithLogger(logrus.NewEntry(quietLogger())))

	res, err := tbl.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, game.Aborted, res.Outcome)
	assert.Equal(t, 0, res.Tricks)
	assert.Equal(t, 1, events.count(protocol.TypeRoundAborted))
	assert.Equal(t, 0, events.count(protocol.TypeCardPlayed))

	hand, _ := board.Hand(0)
	assert.Len(t, hand, game.HandSize)
}

func TestRunStopsOnCancelledContext(t *testing.T) {
	tbl, err := NewRound(1, simOptions(3))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := tbl.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, game.Aborted, res.Outcome)
}

func TestNewRoundRotatesFirstSeat(t *testing.T) {
	for i := 0; i < 8; i++ {
		tbl, err := NewRound(i, simOptions(5))
		require.NoError(t, err)
		assert.Equal(t, i%game.NumSeats, tbl.Board().CurrentSeat())
	}
}

func TestNewRoundRejectsUnknownBot(t *testing.T) {
	opts := simOptions(5)
	opts.Bots = []string{"random", "random", "random", "oracle"}
	_, err := NewRound(0, opts)
	assert.Error(t, err)
}
