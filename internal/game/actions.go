package game

import (
	"errors"
	"fmt"
	"slices"

	"brisca-game/internal/shared"
)

const (
	pairLow   = 10 // Sota
	pairHigh  = 12 // Rei
	trumpSwap = 7
)

// actionWindow checks the timing shared by declarations and the trump
// exchange: the trick must not have started and seat must belong to the
// team whose turn it is.
func (b *Board) actionWindow(seat int) error {
	if !b.trick.Empty() {
		return errors.New("trick already started")
	}
	if shared.TeamOf(seat) != shared.TeamOf(b.current) {
		return fmt.Errorf("seat %d is not on the team to play", seat)
	}
	return nil
}

func (b *Board) checkDeclaration(seat int, suit shared.Suit) error {
	if b.outcome.Terminal() {
		return ErrRoundOver
	}
	if !validSeat(seat) {
		return fmt.Errorf("%w: %d", ErrInvalidSeat, seat)
	}
	if !slices.Contains(shared.Suits, suit) {
		return fmt.Errorf("%w: unknown suit %q", ErrIneligibleDeclaration, suit)
	}
	if err := b.actionWindow(seat); err != nil {
		return fmt.Errorf("%w: %v", ErrIneligibleDeclaration, err)
	}
	if slices.Contains(b.declared, suit) {
		return fmt.Errorf("%w: %s already declared", ErrIneligibleDeclaration, suit)
	}
	p := b.players[seat]
	if !p.HasCard(suit, pairLow) || !p.HasCard(suit, pairHigh) {
		return fmt.Errorf("%w: seat %d lacks the %d and %d of %s", ErrIneligibleDeclaration, seat, pairLow, pairHigh, suit)
	}
	return nil
}

// AvailableDeclarations lists the suits seat could declare right now.
func (b *Board) AvailableDeclarations(seat int) []shared.Suit {
	var suits []shared.Suit
	for _, suit := range shared.Suits {
		if b.checkDeclaration(seat, suit) == nil {
			suits = append(suits, suit)
		}
	}
	return suits
}

// Declare ("cantar") announces the 10 and 12 of suit held by seat, worth 40
// points in trumps and 20 otherwise. Each suit can be declared once per round.
func (b *Board) Declare(seat int, suit shared.Suit) (shared.DeclarationResult, error) {
	if err := b.checkDeclaration(seat, suit); err != nil {
		b.log.Debugf("Seat %d declaration of %s rejected: %v", seat, suit, err)
		return shared.DeclarationResult{}, err
	}

	points := PairBonus
	if suit == b.trump.Suit {
		points = TrumpPairBonus
	}
	team := shared.TeamOf(seat)
	b.declared = append(b.declared, suit)
	b.teams[team].AddScore(points)
	b.log.Infof("Seat %d declared %s for %d points.", seat, suit, points)

	return shared.DeclarationResult{Seat: seat, Team: team, Suit: suit, Points: points}, nil
}

// CheckTrumpExchange reports why seat may not exchange the trump card, or nil.
// The exchange is only open while the deck still has cards to draw.
func (b *Board) CheckTrumpExchange(seat int) error {
	if b.outcome.Terminal() {
		return ErrRoundOver
	}
	if !validSeat(seat) {
		return fmt.Errorf("%w: %d", ErrInvalidSeat, seat)
	}
	if err := b.actionWindow(seat); err != nil {
		return fmt.Errorf("%w: %v", ErrIneligibleExchange, err)
	}
	if b.trumpDealt || b.deck.Empty() {
		return fmt.Errorf("%w: forced-follow phase active", ErrIneligibleExchange)
	}
	if !b.players[seat].HasCard(b.trump.Suit, trumpSwap) {
		return fmt.Errorf("%w: seat %d lacks the %d of %s", ErrIneligibleExchange, seat, trumpSwap, b.trump.Suit)
	}
	return nil
}

// CanExchangeTrump reports whether ExchangeTrump would succeed for seat.
func (b *Board) CanExchangeTrump(seat int) bool {
	return b.CheckTrumpExchange(seat) == nil
}

// ExchangeTrump ("canvi de trumfo") swaps the 7 of trumps in seat's hand for
// the marker card. The trump suit is unchanged.
func (b *Board) ExchangeTrump(seat int) error {
	if err := b.CheckTrumpExchange(seat); err != nil {
		b.log.Debugf("Seat %d trump exchange rejected: %v", seat, err)
		return err
	}

	p := b.players[seat]
	seven := shared.Card{Suit: b.trump.Suit, Rank: trumpSwap}
	i := p.IndexOf(seven)
	p.Hand[i], b.trump = b.trump, seven
	b.log.Infof("Seat %d exchanged the %s for the trump card %s.", seat, seven, p.Hand[i])
	return nil
}
