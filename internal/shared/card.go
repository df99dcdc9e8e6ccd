package shared

import "fmt"

// Suit represents the suit of a card (Orus, Copes, Espases, Bastos).
type Suit string

const (
	Orus    Suit = "Orus"
	Copes   Suit = "Copes"
	Espases Suit = "Espases"
	Bastos  Suit = "Bastos"
)

// Suits lists the four suits in deck-building order.
var Suits = []Suit{Orus, Copes, Espases, Bastos}

// Ranks lists the ten ranks of the Spanish 40-card deck.
var Ranks = []int{1, 2, 3, 4, 5, 6, 7, 10, 11, 12}

// Card represents a single card. The zero value is not a real card.
type Card struct {
	Suit Suit `json:"suit"`
	Rank int  `json:"rank"`
}

// Define card values for scoring
var cardValues = map[int]int{
	1:  11,
	3:  10,
	12: 4,
	10: 3,
	11: 2,
}

// Valid reports whether the card is one of the 40 cards of the deck.
func (c Card) Valid() bool {
	return validSuit(c.Suit) && validRank(c.Rank)
}

// Value returns the point value of the card for scoring purposes.
func (c Card) Value() int {
	return cardValues[c.Rank]
}

// IsBetterThan reports whether c beats other when trump is the trump suit.
// Within a suit the higher point value wins and the higher rank breaks ties.
// Across suits only a trump beats a non-trump; an off-suit card never wins.
func (c Card) IsBetterThan(other Card, trump Suit) bool {
	if c.Suit == other.Suit {
		if c.Value() != other.Value() {
			return c.Value() > other.Value()
		}
		return c.Rank > other.Rank
	}
	return c.Suit == trump
}

func (c Card) String() string {
	return fmt.Sprintf("%d de %s", c.Rank, c.Suit)
}

func validSuit(s Suit) bool {
	for _, suit := range Suits {
		if suit == s {
			return true
		}
	}
	return false
}

func validRank(r int) bool {
	_, scoring := cardValues[r]
	return scoring || (r >= 2 && r <= 7)
}

// CardPoints sums the point values of cards.
func CardPoints(cards []Card) int {
	points := 0
	for _, c := range cards {
		points += c.Value()
	}
	return points
}
