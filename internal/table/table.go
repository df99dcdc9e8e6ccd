// Package table drives rounds: it asks policies for moves, submits them to the
// round engine, offers post-trick actions and reports what happened.
package table

import (
	"context"
	"errors"
	"fmt"

	"brisca-game/internal/bot"
	"brisca-game/internal/game"
	"brisca-game/internal/protocol"
	"brisca-game/internal/shared"

	"github.com/sirupsen/logrus"
)

// MessageSender receives every event of the round as an encoded protocol message.
type MessageSender func(message []byte)

// Result summarizes a finished round.
type Result struct {
	RoundID      string
	Outcome      game.Outcome
	Score        [2]int
	Tricks       int
	Declarations int
	Exchanges    int
}

// Table plays one round with one policy per seat.
type Table struct {
	board      *game.Board
	bots       [game.NumSeats]bot.Behaviour
	maxIllegal int
	send       MessageSender
	log        *logrus.Entry

	declarations int
	exchanges    int
}

// Option configures a Table.
type Option func(*Table)

// WithSender streams round events to send.
func WithSender(send MessageSender) Option {
	return func(t *Table) { t.send = send }
}

// WithMaxIllegal sets how many consecutive rejected plays from a policy are
// tolerated before the round is aborted.
func WithMaxIllegal(n int) Option {
	return func(t *Table) { t.maxIllegal = n }
}

func WithLogger(entry *logrus.Entry) Option {
	return func(t *Table) { t.log = entry }
}

// New seats bots around board.
func New(board *game.Board, bots [game.NumSeats]bot.Behaviour, opts ...Option) *Table {
	t := &Table{
		board:      board,
		bots:       bots,
		maxIllegal: 3,
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.log == nil {
		t.log = logrus.NewEntry(logrus.StandardLogger())
	}
	t.log = t.log.WithField("round", board.ID)
	return t
}

// Board returns the round engine the table drives.
func (t *Table) Board() *game.Board { return t.board }

// Run plays the round until it reaches a terminal outcome. A cancelled ctx
// aborts the round between plays and is returned as the error.
func (t *Table) Run(ctx context.Context) (Result, error) {
	t.emitStart()

	illegal := 0
	for {
		if err := ctx.Err(); err != nil {
			t.abort(fmt.Sprintf("cancelled: %v", err))
			return t.result(), err
		}

		seat := t.board.CurrentSeat()
		policy := t.bots[seat]
		hand := t.board.CurrentHand()

		outcome, card, err := t.play(policy, hand)
		if err != nil {
			if errors.Is(err, game.ErrRoundOver) {
				return t.result(), nil
			}
			illegal++
			t.log.Warnf("Seat %d (%s) move rejected (%d/%d): %v", seat, policy.Name(), illegal, t.maxIllegal, err)
			if illegal >= t.maxIllegal {
				t.abort(fmt.Sprintf("seat %d (%s) made %d illegal attempts", seat, policy.Name(), illegal))
				return t.result(), nil
			}
			continue
		}
		illegal = 0
		t.emit(protocol.TypeCardPlayed, protocol.CardPlayedPayload{Seat: seat, Card: card})

		switch {
		case outcome == game.TrickCompleted:
			t.emitTrickEnd()
			t.offerPostTrick()
		case outcome.Terminal():
			t.emitTrickEnd()
			t.emitRoundEnd()
			return t.result(), nil
		}
	}
}

// play asks policy for a card and submits it.
func (t *Table) play(policy bot.Behaviour, hand []shared.Card) (game.Outcome, shared.Card, error) {
	index, err := policy.ChooseCard(t.board)
	if err != nil {
		return t.board.Outcome(), shared.Card{}, fmt.Errorf("policy failed to choose: %w", err)
	}
	outcome, err := t.board.PlayCard(index)
	if err != nil {
		return outcome, shared.Card{}, err
	}
	return outcome, hand[index], nil
}

// offerPostTrick gives every seat, in seat order, the chance to declare or exchange.
func (t *Table) offerPostTrick() {
	actions := recorder{Board: t.board, table: t}
	for seat, policy := range t.bots {
		if err := policy.PostTrick(actions, seat); err != nil {
			t.log.Warnf("Seat %d (%s) post-trick action failed: %v", seat, policy.Name(), err)
		}
	}
}

func (t *Table) abort(reason string) {
	t.board.Abort(reason)
	t.emit(protocol.TypeRoundAborted, protocol.RoundAbortedPayload{RoundID: t.board.ID, Reason: reason})
}

func (t *Table) result() Result {
	return Result{
		RoundID:      t.board.ID,
		Outcome:      t.board.Outcome(),
		Score:        t.board.Score(),
		Tricks:       t.board.TricksPlayed(),
		Declarations: t.declarations,
		Exchanges:    t.exchanges,
	}
}

// recorder forwards post-trick commands to the board and reports the ones
// that succeed.
type recorder struct {
	*game.Board
	table *Table
}

func (r recorder) Declare(seat int, suit shared.Suit) (shared.DeclarationResult, error) {
	res, err := r.Board.Declare(seat, suit)
	if err != nil {
		return res, err
	}
	r.table.declarations++
	r.table.emit(protocol.TypeDeclaration, protocol.DeclarationPayload{
		Seat: res.Seat, Team: res.Team, Suit: res.Suit, Points: res.Points,
	})
	return res, nil
}

func (r recorder) ExchangeTrump(seat int) error {
	marker := r.Board.TrumpCard()
	if err := r.Board.ExchangeTrump(seat); err != nil {
		return err
	}
	r.table.exchanges++
	r.table.emit(protocol.TypeTrumpExchange, protocol.TrumpExchangePayload{
		Seat: seat, Given: r.Board.TrumpCard(), Received: marker,
	})
	return nil
}

// --- Messaging Helpers ---

func (t *Table) emit(msgType string, payload interface{}) {
	if t.send == nil {
		return
	}
	msg, err := protocol.NewMessage(msgType, payload)
	if err != nil {
		t.log.Errorf("Error creating %s message: %v", msgType, err)
		return
	}
	t.send(msg)
}

func (t *Table) emitStart() {
	seats := make([]protocol.SeatInfo, len(t.bots))
	for seat, policy := range t.bots {
		seats[seat] = protocol.SeatInfo{Seat: seat, Team: shared.TeamOf(seat), Bot: policy.Name()}
	}
	t.emit(protocol.TypeRoundStart, protocol.RoundStartPayload{
		RoundID:   t.board.ID,
		Trump:     t.board.TrumpCard(),
		FirstSeat: t.board.CurrentSeat(),
		Seats:     seats,
	})
}

func (t *Table) emitTrickEnd() {
	trick, winner, ok := t.board.LastTrick()
	if !ok {
		return
	}
	card, _ := trick.CardAt(winner)
	t.emit(protocol.TypeTrickEnd, protocol.TrickEndPayload{
		Trick:     t.board.TricksPlayed(),
		Winner:    shared.PlayedCard{Card: card, Seat: winner},
		Cards:     trick.Cards,
		Points:    shared.CardPoints(trick.PlainCards()),
		DeckLeft:  t.board.DeckSize(),
		TrumpGone: t.board.TrumpDealt(),
	})
}

func (t *Table) emitRoundEnd() {
	score := t.board.Score()
	t.emit(protocol.TypeRoundEnd, protocol.RoundEndPayload{
		RoundID:    t.board.ID,
		Outcome:    t.board.Outcome().String(),
		Team0Score: score[0],
		Team1Score: score[1],
	})
}
