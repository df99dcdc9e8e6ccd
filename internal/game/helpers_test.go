package game

import (
	"io"
	"math/rand/v2"
	"slices"
	"testing"

	"brisca-game/internal/shared"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func c(suit shared.Suit, rank int) shared.Card {
	return shared.Card{Suit: suit, Rank: rank}
}

func quietLogger() *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logrus.NewEntry(logger)
}

// fixture describes a constructed position. Seats with fewer cards than size
// are padded with unused cards, Espases first.
type fixture struct {
	hands    [NumSeats][]shared.Card
	size     int
	trump    shared.Card
	deckLeft int // Cards left to draw; 0 means the marker is already dealt
	first    int
}

func newFixtureBoard(t *testing.T, f fixture) *Board {
	t.Helper()

	used := map[shared.Card]bool{f.trump: true}
	for _, hand := range f.hands {
		for _, card := range hand {
			used[card] = true
		}
	}
	var pool []shared.Card
	for _, suit := range []shared.Suit{shared.Espases, shared.Copes, shared.Orus, shared.Bastos} {
		for _, rank := range shared.Ranks {
			if card := c(suit, rank); !used[card] {
				pool = append(pool, card)
			}
		}
	}

	deal := Deal{Trump: f.trump, TrumpDealt: f.deckLeft == 0}
	for seat := range f.hands {
		hand := slices.Clone(f.hands[seat])
		for len(hand) < f.size {
			hand = append(hand, pool[0])
			pool = pool[1:]
		}
		deal.Hands[seat] = hand
	}
	require.GreaterOrEqual(t, len(pool), f.deckLeft, "not enough cards left for the deck")
	deal.Deck = pool[:f.deckLeft]
	deal.Piles[0] = slices.Clone(pool[f.deckLeft:])
	if deal.TrumpDealt && !slices.Contains(slices.Concat(deal.Hands[:]...), f.trump) {
		deal.Piles[0] = append(deal.Piles[0], f.trump)
	}

	b, err := NewBoardFromDeal(f.first, deal, WithLogger(quietLogger()))
	require.NoError(t, err)
	return b
}

// playCard plays card for the acting seat by looking up its index.
func playCard(t *testing.T, b *Board, card shared.Card) Outcome {
	t.Helper()
	i := slices.Index(b.CurrentHand(), card)
	require.GreaterOrEqual(t, i, 0, "seat %d does not hold %s", b.CurrentSeat(), card)
	outcome, err := b.PlayCard(i)
	require.NoError(t, err)
	return outcome
}

func newSeededBoard(t *testing.T, seed uint64, first int) *Board {
	t.Helper()
	b, err := NewBoard(first, WithRand(rand.New(rand.NewPCG(seed, 0))), WithLogger(quietLogger()))
	require.NoError(t, err)
	return b
}

// requireConserved checks that all 40 cards are present exactly once.
func requireConserved(t *testing.T, b *Board) {
	t.Helper()
	all := b.AllCards()
	require.Len(t, all, 40)
	seen := make(map[shared.Card]bool, 40)
	for _, card := range all {
		require.True(t, card.Valid(), "invalid card %v", card)
		require.False(t, seen[card], "duplicate card %s", card)
		seen[card] = true
	}
}
