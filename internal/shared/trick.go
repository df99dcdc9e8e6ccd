package shared

// PlayedCard stores a card along with the seat that played it.
type PlayedCard struct {
	Card Card `json:"card"`
	Seat int  `json:"seat"`
}

// Trick ("baza") holds up to one card per seat, in play order.
// A seat that has not played yet simply has no entry.
type Trick struct {
	Cards []PlayedCard
}

// NewTrick creates an empty trick.
func NewTrick() *Trick {
	return &Trick{Cards: make([]PlayedCard, 0, 4)}
}

// AddCard adds a card played by seat.
func (t *Trick) AddCard(card Card, seat int) {
	t.Cards = append(t.Cards, PlayedCard{Card: card, Seat: seat})
}

// Empty reports whether nobody has played yet.
func (t *Trick) Empty() bool { return len(t.Cards) == 0 }

// Full reports whether all four seats have played.
func (t *Trick) Full() bool { return len(t.Cards) == 4 }

// LedSuit returns the suit of the first card played. ok is false on an empty trick.
func (t *Trick) LedSuit() (suit Suit, ok bool) {
	if t.Empty() {
		return "", false
	}
	return t.Cards[0].Card.Suit, true
}

// CardAt returns the card seat played into this trick, if any.
func (t *Trick) CardAt(seat int) (Card, bool) {
	for _, pc := range t.Cards {
		if pc.Seat == seat {
			return pc.Card, true
		}
	}
	return Card{}, false
}

// Winner returns the currently winning play. Starting from the leader, a later
// card takes over only when it beats the running winner under trump.
// ok is false on an empty trick.
func (t *Trick) Winner(trump Suit) (winner PlayedCard, ok bool) {
	if t.Empty() {
		return PlayedCard{}, false
	}
	winner = t.Cards[0]
	for _, pc := range t.Cards[1:] {
		if pc.Card.IsBetterThan(winner.Card, trump) {
			winner = pc
		}
	}
	return winner, true
}

// PlainCards returns the cards of the trick without seats.
func (t *Trick) PlainCards() []Card {
	cards := make([]Card, len(t.Cards))
	for i, pc := range t.Cards {
		cards[i] = pc.Card
	}
	return cards
}

// Snapshot returns a copy of the trick.
func (t *Trick) Snapshot() Trick {
	cards := make([]PlayedCard, len(t.Cards))
	copy(cards, t.Cards)
	return Trick{Cards: cards}
}
