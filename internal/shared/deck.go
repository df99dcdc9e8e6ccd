package shared

import (
	"math/rand/v2"
)

// Deck represents the ordered pile of undealt cards.
type Deck struct {
	Cards []Card
}

// NewDeck creates the standard 40-card Spanish deck, unshuffled.
func NewDeck() *Deck {
	cards := make([]Card, 0, len(Suits)*len(Ranks))
	for _, suit := range Suits {
		for _, rank := range Ranks {
			cards = append(cards, Card{Suit: suit, Rank: rank})
		}
	}
	return &Deck{Cards: cards}
}

// Shuffle randomizes the order of cards in the deck using rng.
// A nil rng falls back to the global source.
func (d *Deck) Shuffle(rng *rand.Rand) {
	swap := func(i, j int) {
		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	}
	if rng == nil {
		rand.Shuffle(len(d.Cards), swap)
		return
	}
	rng.Shuffle(len(d.Cards), swap)
}

// Draw removes and returns the top card. ok is false once the deck is exhausted.
func (d *Deck) Draw() (card Card, ok bool) {
	if len(d.Cards) == 0 {
		return Card{}, false
	}
	card = d.Cards[0]
	d.Cards = d.Cards[1:]
	return card, true
}

// Len returns the number of undealt cards.
func (d *Deck) Len() int {
	return len(d.Cards)
}

// Empty reports whether the deck is exhausted.
func (d *Deck) Empty() bool {
	return len(d.Cards) == 0
}
