package bot

import (
	"math/rand/v2"
)

// RandomBot plays a uniformly random legal card.
type RandomBot struct {
	rng *rand.Rand
}

// NewRandomBot creates a RandomBot. A nil rng uses the global source.
func NewRandomBot(rng *rand.Rand) *RandomBot {
	return &RandomBot{rng: rng}
}

// Name returns the registry name of the policy.
func (b *RandomBot) Name() string { return "random" }

// ChooseCard returns the hand index of a random legal card.
func (b *RandomBot) ChooseCard(view View) (int, error) {
	legal := view.LegalCards()
	if len(legal) == 0 {
		return -1, ErrNoLegalCard
	}
	var pick int
	if b.rng == nil {
		pick = rand.IntN(len(legal))
	} else {
		pick = b.rng.IntN(len(legal))
	}
	return indexInHand(view, legal[pick])
}

// PostTrick declares every available pair and exchanges the 7 of trumps when allowed.
func (b *RandomBot) PostTrick(actions Actions, seat int) error {
	return declareAndExchange(actions, seat)
}
