package game

import (
	"testing"

	"brisca-game/internal/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLegalCardsDrawPhaseAllowsAnything(t *testing.T) {
	b := newFixtureBoard(t, fixture{
		hands: [NumSeats][]shared.Card{
			{c(shared.Orus, 4), c(shared.Copes, 5), c(shared.Espases, 5)},
			{c(shared.Orus, 3), c(shared.Copes, 2), c(shared.Bastos, 4)},
		},
		size:     3,
		trump:    c(shared.Bastos, 12),
		deckLeft: 3,
	})
	playCard(t, b, c(shared.Orus, 4))

	assert.ElementsMatch(t, b.CurrentHand(), b.LegalCards())
	playCard(t, b, c(shared.Copes, 2))
}

func TestLegalCardsForcedFollowLeadAllowsAnything(t *testing.T) {
	b := newFixtureBoard(t, fixture{
		hands: [NumSeats][]shared.Card{
			{c(shared.Orus, 4), c(shared.Copes, 5), c(shared.Bastos, 1)},
		},
		size:  3,
		trump: c(shared.Bastos, 12),
	})
	require.True(t, b.IsForcedFollow())

	assert.ElementsMatch(t, b.CurrentHand(), b.LegalCards())
	outcome := playCard(t, b, c(shared.Copes, 5))
	assert.Equal(t, InProgress, outcome)
}

func TestLegalCardsForcedFollow(t *testing.T) {
	tests := []struct {
		name  string
		hands [NumSeats][]shared.Card
		plays []shared.Card // played in order from seat 0
		want  []shared.Card // legal set of the next seat
	}{
		{
			name: "opponent winning, beat in led suit",
			hands: [NumSeats][]shared.Card{
				{c(shared.Orus, 4), c(shared.Copes, 5), c(shared.Espases, 5)},
				{c(shared.Orus, 3), c(shared.Orus, 2), c(shared.Bastos, 4)},
			},
			plays: []shared.Card{c(shared.Orus, 4)},
			want:  []shared.Card{c(shared.Orus, 3)},
		},
		{
			name: "opponent winning, cannot beat so follow",
			hands: [NumSeats][]shared.Card{
				{c(shared.Orus, 4), c(shared.Copes, 5), c(shared.Espases, 5)},
				{c(shared.Orus, 2), c(shared.Copes, 1), c(shared.Bastos, 4)},
			},
			plays: []shared.Card{c(shared.Orus, 4)},
			want:  []shared.Card{c(shared.Orus, 2)},
		},
		{
			name: "opponent winning, void in led suit must trump",
			hands: [NumSeats][]shared.Card{
				{c(shared.Orus, 4), c(shared.Copes, 5), c(shared.Espases, 5)},
				{c(shared.Copes, 1), c(shared.Bastos, 4), c(shared.Bastos, 6)},
			},
			plays: []shared.Card{c(shared.Orus, 4)},
			want:  []shared.Card{c(shared.Bastos, 4), c(shared.Bastos, 6)},
		},
		{
			name: "opponent winning, void and no trump plays anything",
			hands: [NumSeats][]shared.Card{
				{c(shared.Orus, 4), c(shared.Copes, 5), c(shared.Espases, 5)},
				{c(shared.Copes, 1), c(shared.Copes, 2), c(shared.Espases, 6)},
			},
			plays: []shared.Card{c(shared.Orus, 4)},
			want:  []shared.Card{c(shared.Copes, 1), c(shared.Copes, 2), c(shared.Espases, 6)},
		},
		{
			name: "opponent trumped, led suit cannot beat but must follow",
			hands: [NumSeats][]shared.Card{
				{c(shared.Orus, 4), c(shared.Copes, 5), c(shared.Espases, 5)},
				{c(shared.Bastos, 4), c(shared.Copes, 2), c(shared.Copes, 4)},
				{c(shared.Orus, 1), c(shared.Bastos, 2), c(shared.Copes, 3)},
			},
			plays: []shared.Card{c(shared.Orus, 4), c(shared.Bastos, 4)},
			want:  []shared.Card{c(shared.Orus, 1)},
		},
		{
			name: "opponent trumped, overtrump only with a higher trump",
			hands: [NumSeats][]shared.Card{
				{c(shared.Orus, 4), c(shared.Copes, 5), c(shared.Espases, 5)},
				{c(shared.Bastos, 4), c(shared.Copes, 2), c(shared.Copes, 4)},
				{c(shared.Bastos, 2), c(shared.Bastos, 1), c(shared.Copes, 3)},
			},
			plays: []shared.Card{c(shared.Orus, 4), c(shared.Bastos, 4)},
			want:  []shared.Card{c(shared.Bastos, 1)},
		},
		{
			name: "opponent trumped, only lower trumps plays anything",
			hands: [NumSeats][]shared.Card{
				{c(shared.Orus, 4), c(shared.Copes, 5), c(shared.Espases, 5)},
				{c(shared.Bastos, 1), c(shared.Copes, 2), c(shared.Copes, 4)},
				{c(shared.Bastos, 2), c(shared.Bastos, 3), c(shared.Copes, 3)},
			},
			plays: []shared.Card{c(shared.Orus, 4), c(shared.Bastos, 1)},
			want:  []shared.Card{c(shared.Bastos, 2), c(shared.Bastos, 3), c(shared.Copes, 3)},
		},
		{
			name: "partner winning, follow suit",
			hands: [NumSeats][]shared.Card{
				{c(shared.Orus, 1), c(shared.Copes, 5), c(shared.Espases, 5)},
				{c(shared.Orus, 4), c(shared.Copes, 2), c(shared.Copes, 4)},
				{c(shared.Orus, 2), c(shared.Bastos, 1), c(shared.Copes, 3)},
			},
			plays: []shared.Card{c(shared.Orus, 1), c(shared.Orus, 4)},
			want:  []shared.Card{c(shared.Orus, 2)},
		},
		{
			name: "partner winning, void plays anything",
			hands: [NumSeats][]shared.Card{
				{c(shared.Orus, 1), c(shared.Copes, 5), c(shared.Espases, 5)},
				{c(shared.Orus, 4), c(shared.Copes, 2), c(shared.Copes, 4)},
				{c(shared.Bastos, 1), c(shared.Copes, 3), c(shared.Copes, 6)},
			},
			plays: []shared.Card{c(shared.Orus, 1), c(shared.Orus, 4)},
			want:  []shared.Card{c(shared.Bastos, 1), c(shared.Copes, 3), c(shared.Copes, 6)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newFixtureBoard(t, fixture{
				hands: tt.hands,
				size:  3,
				trump: c(shared.Bastos, 12),
			})
			for _, card := range tt.plays {
				playCard(t, b, card)
			}

			legal := b.LegalCards()
			assert.ElementsMatch(t, tt.want, legal)
			assert.Subset(t, b.CurrentHand(), legal)

			for _, card := range b.CurrentHand() {
				if !containsCard(legal, card) {
					_, err := b.PlayCard(indexOf(b.CurrentHand(), card))
					assert.ErrorIs(t, err, ErrIllegalCard, "%s should be rejected", card)
				}
			}
		})
	}
}

func containsCard(cards []shared.Card, card shared.Card) bool {
	return indexOf(cards, card) >= 0
}

func indexOf(cards []shared.Card, card shared.Card) int {
	for i, c := range cards {
		if c == card {
			return i
		}
	}
	return -1
}
