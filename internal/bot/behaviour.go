// Package bot holds the policies that decide what a seat plays. The round
// engine only says what is legal; a Behaviour picks among it.
package bot

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"sort"

	"brisca-game/internal/shared"
)

// View is the read access a policy gets when choosing a card.
type View interface {
	CurrentSeat() int
	CurrentHand() []shared.Card
	LegalCards() []shared.Card
	TrumpSuit() shared.Suit
}

// Actions is the surface offered to a policy after a trick completes.
type Actions interface {
	View
	AvailableDeclarations(seat int) []shared.Suit
	CheckTrumpExchange(seat int) error
	Declare(seat int, suit shared.Suit) (shared.DeclarationResult, error)
	ExchangeTrump(seat int) error
}

// Behaviour is a card-playing policy.
type Behaviour interface {
	Name() string
	// ChooseCard returns the index in the current hand of the card to play.
	ChooseCard(view View) (int, error)
	// PostTrick may declare or exchange the trump card on behalf of seat.
	PostTrick(actions Actions, seat int) error
}

// Factory builds a policy drawing randomness from rng.
type Factory func(rng *rand.Rand) Behaviour

var registry = map[string]Factory{
	"random": func(rng *rand.Rand) Behaviour { return NewRandomBot(rng) },
	"smart":  func(rng *rand.Rand) Behaviour { return NewSmartBot() },
}

// ErrNoLegalCard is returned when a policy is asked to play with nothing legal.
var ErrNoLegalCard = errors.New("no legal card to play")

// New builds the named policy.
func New(name string, rng *rand.Rand) (Behaviour, error) {
	factory, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown bot %q (known: %v)", name, Names())
	}
	return factory(rng), nil
}

// Names lists the registered policy names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Known reports whether name is a registered policy.
func Known(name string) bool {
	_, ok := registry[name]
	return ok
}

// indexInHand maps a chosen legal card back to its hand position.
func indexInHand(view View, card shared.Card) (int, error) {
	i := slices.Index(view.CurrentHand(), card)
	if i < 0 {
		return -1, fmt.Errorf("card %s not in hand of seat %d", card, view.CurrentSeat())
	}
	return i, nil
}

// declareAndExchange makes every available declaration, then exchanges the
// trump card when allowed.
func declareAndExchange(actions Actions, seat int) error {
	for _, suit := range actions.AvailableDeclarations(seat) {
		if _, err := actions.Declare(seat, suit); err != nil {
			return fmt.Errorf("failed to declare %s: %w", suit, err)
		}
	}
	if actions.CheckTrumpExchange(seat) == nil {
		if err := actions.ExchangeTrump(seat); err != nil {
			return fmt.Errorf("failed to exchange trump: %w", err)
		}
	}
	return nil
}
