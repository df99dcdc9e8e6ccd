package bot

// SmartBot greedily plays its strongest legal card.
type SmartBot struct{}

// NewSmartBot creates a SmartBot.
func NewSmartBot() *SmartBot {
	return &SmartBot{}
}

// Name returns the registry name of the policy.
func (b *SmartBot) Name() string { return "smart" }

// ChooseCard returns the hand index of the legal card that beats every other
// legal card under trump.
func (b *SmartBot) ChooseCard(view View) (int, error) {
	legal := view.LegalCards()
	if len(legal) == 0 {
		return -1, ErrNoLegalCard
	}
	trump := view.TrumpSuit()
	best := legal[0]
	for _, c := range legal[1:] {
		if !best.IsBetterThan(c, trump) {
			best = c
		}
	}
	return indexInHand(view, best)
}

// PostTrick declares every available pair and exchanges the 7 of trumps when allowed.
func (b *SmartBot) PostTrick(actions Actions, seat int) error {
	return declareAndExchange(actions, seat)
}
