package game

import "brisca-game/internal/shared"

// legalMoves derives the playable subset of the seat's hand.
//
// While cards remain to be drawn, and whenever the seat leads, anything goes.
// Once the deck is exhausted a seat whose partner is winning only has to
// follow suit. Against the opponents it must beat with the led suit, else
// follow suit, else beat with a trump, else play anything.
func legalMoves(p *shared.Player, trick *shared.Trick, trump shared.Suit, forcedFollow bool) []shared.Card {
	hand := p.Hand
	if !forcedFollow || trick.Empty() {
		return cloneCards(hand)
	}

	led, _ := trick.LedSuit()
	winning, _ := trick.Winner(trump)
	beats := func(c shared.Card) bool { return c.IsBetterThan(winning.Card, trump) }

	if p.HasSuit(led) {
		follow := filterCards(hand, func(c shared.Card) bool { return c.Suit == led })
		if shared.TeamOf(winning.Seat) == p.Team() {
			return follow
		}
		if beating := filterCards(follow, beats); len(beating) > 0 {
			return beating
		}
		return follow
	}
	if shared.TeamOf(winning.Seat) == p.Team() {
		return cloneCards(hand)
	}
	if trumping := filterCards(hand, beats); len(trumping) > 0 {
		return trumping
	}
	return cloneCards(hand)
}

func filterCards(cards []shared.Card, keep func(shared.Card) bool) []shared.Card {
	var out []shared.Card
	for _, c := range cards {
		if keep(c) {
			out = append(out, c)
		}
	}
	return out
}

func cloneCards(cards []shared.Card) []shared.Card {
	out := make([]shared.Card, len(cards))
	copy(out, cards)
	return out
}
