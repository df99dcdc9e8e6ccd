package shared

import "fmt"

// DeclarationResult reports the outcome of a successful declaration.
type DeclarationResult struct {
	Seat   int  `json:"seat"`
	Team   int  `json:"team"`
	Suit   Suit `json:"suit"`
	Points int  `json:"points"` // 40 for the trump suit, 20 otherwise
}

// Player represents a seat at the table and the cards it holds.
type Player struct {
	Seat int    // Seat 0-3, clockwise
	Hand []Card // Cards currently held, indexed by position
}

// NewPlayer creates a player with an empty hand at the given seat.
func NewPlayer(seat int) *Player {
	return &Player{
		Seat: seat,
		Hand: []Card{},
	}
}

// Team returns the team the player belongs to (seat parity).
func (p *Player) Team() int {
	return TeamOf(p.Seat)
}

// TeamOf returns the team of a seat: 0 and 2 play for team 0, 1 and 3 for team 1.
func TeamOf(seat int) int {
	return seat % 2
}

// AddCard appends a drawn card to the player's hand.
func (p *Player) AddCard(card Card) {
	p.Hand = append(p.Hand, card)
}

// RemoveAt removes and returns the card at index.
func (p *Player) RemoveAt(index int) (Card, error) {
	if index < 0 || index >= len(p.Hand) {
		return Card{}, fmt.Errorf("index %d out of range for hand of %d", index, len(p.Hand))
	}
	card := p.Hand[index]
	p.Hand = append(p.Hand[:index], p.Hand[index+1:]...)
	return card, nil
}

// IndexOf returns the position of card in the hand, or -1.
func (p *Player) IndexOf(card Card) int {
	for i, c := range p.Hand {
		if c == card {
			return i
		}
	}
	return -1
}

// HasCard reports whether the hand holds the given suit and rank.
func (p *Player) HasCard(suit Suit, rank int) bool {
	return p.IndexOf(Card{Suit: suit, Rank: rank}) != -1
}

// HasSuit reports whether the hand holds any card of suit.
func (p *Player) HasSuit(suit Suit) bool {
	for _, card := range p.Hand {
		if card.Suit == suit {
			return true
		}
	}
	return false
}

// HandSnapshot returns a copy of the hand safe to hand out to callers.
func (p *Player) HandSnapshot() []Card {
	hand := make([]Card, len(p.Hand))
	copy(hand, p.Hand)
	return hand
}
