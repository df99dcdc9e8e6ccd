package game

import (
	"fmt"
	"math/rand/v2"
	"slices"

	"brisca-game/internal/shared"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	NumSeats       = 4
	HandSize       = 6  // Cards dealt to each seat
	LastTrickBonus = 10 // Points for the team taking the final trick
	TrumpPairBonus = 40 // Declaring the 10 and 12 of trump
	PairBonus      = 20 // Declaring the 10 and 12 of any other suit
)

// Board is the round engine: one deal of 40 cards played out in ten tricks.
// A Board is not safe for concurrent use; run independent rounds on
// independent boards.
type Board struct {
	ID string

	players    [NumSeats]*shared.Player
	teams      [2]*shared.Team
	deck       *shared.Deck
	trump      shared.Card // Marker card, also defines the trump suit
	trumpDealt bool        // The marker was handed out as the last draw
	current    int
	trick      *shared.Trick
	lastTrick  shared.Trick
	lastWinner int
	declared   []shared.Suit
	tricks     int
	outcome    Outcome

	rng *rand.Rand
	log *logrus.Entry
}

// Option configures a Board.
type Option func(*Board)

// WithRand sets the random source used to shuffle the deck.
func WithRand(rng *rand.Rand) Option {
	return func(b *Board) { b.rng = rng }
}

// WithLogger sets the logger; the board adds its round ID as a field.
func WithLogger(entry *logrus.Entry) Option {
	return func(b *Board) { b.log = entry }
}

// Deal is a constructed card distribution for NewBoardFromDeal.
type Deal struct {
	Hands      [NumSeats][]shared.Card
	Trump      shared.Card
	TrumpDealt bool // Trump is already in a hand or pile, not set aside
	Deck       []shared.Card
	Piles      [2][]shared.Card
}

func newBoard(firstSeat int, opts []Option) (*Board, error) {
	if !validSeat(firstSeat) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSeat, firstSeat)
	}
	b := &Board{
		ID:         uuid.NewString(),
		teams:      [2]*shared.Team{shared.NewTeam(0), shared.NewTeam(1)},
		trick:      shared.NewTrick(),
		current:    firstSeat,
		lastWinner: -1,
		outcome:    InProgress,
	}
	for seat := range b.players {
		b.players[seat] = shared.NewPlayer(seat)
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.log == nil {
		b.log = logrus.NewEntry(logrus.StandardLogger())
	}
	b.log = b.log.WithField("round", b.ID)
	return b, nil
}

// NewBoard shuffles a fresh deck, deals HandSize cards to every seat one at a
// time starting at firstSeat, and turns up the next card as trump.
func NewBoard(firstSeat int, opts ...Option) (*Board, error) {
	b, err := newBoard(firstSeat, opts)
	if err != nil {
		return nil, err
	}

	b.deck = shared.NewDeck()
	b.deck.Shuffle(b.rng)
	for i := 0; i < HandSize*NumSeats; i++ {
		card, _ := b.deck.Draw()
		b.players[(firstSeat+i)%NumSeats].AddCard(card)
	}
	b.trump, _ = b.deck.Draw()

	b.log.Infof("Round started. Trump is %s, seat %d leads.", b.trump, firstSeat)
	return b, nil
}

// NewBoardFromDeal builds a board from an explicit distribution. The deal must
// account for all 40 cards exactly once, every hand must hold the same number
// of cards and the cards left to draw must split evenly between the seats.
func NewBoardFromDeal(firstSeat int, deal Deal, opts ...Option) (*Board, error) {
	b, err := newBoard(firstSeat, opts)
	if err != nil {
		return nil, err
	}
	if err := deal.validate(); err != nil {
		return nil, err
	}

	for seat, hand := range deal.Hands {
		b.players[seat].Hand = cloneCards(hand)
	}
	for team, pile := range deal.Piles {
		b.teams[team].Collect(pile...)
	}
	b.deck = &shared.Deck{Cards: cloneCards(deal.Deck)}
	b.trump = deal.Trump
	b.trumpDealt = deal.TrumpDealt

	b.log.Debugf("Round set up from deal. Trump is %s, seat %d leads.", b.trump, firstSeat)
	return b, nil
}

func (d Deal) validate() error {
	if !d.Trump.Valid() {
		return fmt.Errorf("invalid deal: trump %v is not a card", d.Trump)
	}
	if d.TrumpDealt && len(d.Deck) > 0 {
		return fmt.Errorf("invalid deal: trump dealt while %d cards remain", len(d.Deck))
	}
	// Every refill hands one card to each seat, the marker included.
	toDraw := len(d.Deck)
	if !d.TrumpDealt {
		toDraw++
	}
	if toDraw%NumSeats != 0 {
		return fmt.Errorf("invalid deal: %d cards left to draw, not a multiple of %d", toDraw, NumSeats)
	}

	seen := make(map[shared.Card]bool, 40)
	add := func(c shared.Card) error {
		if !c.Valid() {
			return fmt.Errorf("invalid deal: %v is not a card", c)
		}
		if seen[c] {
			return fmt.Errorf("invalid deal: duplicate card %s", c)
		}
		seen[c] = true
		return nil
	}

	if !d.TrumpDealt {
		if err := add(d.Trump); err != nil {
			return err
		}
	}
	for seat, hand := range d.Hands {
		if len(hand) != len(d.Hands[0]) {
			return fmt.Errorf("invalid deal: seat %d holds %d cards, seat 0 holds %d", seat, len(hand), len(d.Hands[0]))
		}
		for _, c := range hand {
			if err := add(c); err != nil {
				return err
			}
		}
	}
	for _, c := range d.Deck {
		if err := add(c); err != nil {
			return err
		}
	}
	for _, pile := range d.Piles {
		for _, c := range pile {
			if err := add(c); err != nil {
				return err
			}
		}
	}
	if d.TrumpDealt && !seen[d.Trump] {
		return fmt.Errorf("invalid deal: dealt trump %s is not in play", d.Trump)
	}
	if len(seen) != 40 {
		return fmt.Errorf("invalid deal: expected 40 unique cards, got %d", len(seen))
	}
	return nil
}

func validSeat(seat int) bool {
	return seat >= 0 && seat < NumSeats
}

// --- Queries ---

// CurrentSeat returns the seat due to act.
func (b *Board) CurrentSeat() int { return b.current }

// CurrentHand returns a snapshot of the acting seat's hand.
func (b *Board) CurrentHand() []shared.Card {
	return b.players[b.current].HandSnapshot()
}

// Hand returns a snapshot of seat's hand.
func (b *Board) Hand(seat int) ([]shared.Card, error) {
	if !validSeat(seat) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSeat, seat)
	}
	return b.players[seat].HandSnapshot(), nil
}

// TrumpSuit returns the trump suit of the round.
func (b *Board) TrumpSuit() shared.Suit { return b.trump.Suit }

// TrumpCard returns the current trump marker.
func (b *Board) TrumpCard() shared.Card { return b.trump }

// TrumpDealt reports whether the marker has been drawn into a hand.
func (b *Board) TrumpDealt() bool { return b.trumpDealt }

// DeckSize returns the number of cards left to draw, excluding the marker.
func (b *Board) DeckSize() int { return b.deck.Len() }

// IsForcedFollow reports whether the deck is exhausted and follow rules apply.
func (b *Board) IsForcedFollow() bool { return b.deck.Empty() }

// Trick returns a snapshot of the trick in progress.
func (b *Board) Trick() shared.Trick { return b.trick.Snapshot() }

// LastTrick returns the most recently resolved trick and its winning seat.
func (b *Board) LastTrick() (trick shared.Trick, winner int, ok bool) {
	if b.lastWinner < 0 {
		return shared.Trick{}, -1, false
	}
	return b.lastTrick.Snapshot(), b.lastWinner, true
}

// TricksPlayed returns how many tricks have been resolved.
func (b *Board) TricksPlayed() int { return b.tricks }

// Score returns the running points of team 0 and team 1.
func (b *Board) Score() [2]int {
	return [2]int{b.teams[0].Score, b.teams[1].Score}
}

// Pile returns a copy of the cards won by team.
func (b *Board) Pile(team int) ([]shared.Card, error) {
	if team < 0 || team >= len(b.teams) {
		return nil, fmt.Errorf("%w: team %d", ErrInvalidSeat, team)
	}
	return cloneCards(b.teams[team].Pile), nil
}

// Declared returns the suits declared so far, in declaration order.
func (b *Board) Declared() []shared.Suit {
	return slices.Clone(b.declared)
}

// Outcome returns the latest round outcome.
func (b *Board) Outcome() Outcome { return b.outcome }

// LegalCards returns the cards the acting seat may play.
func (b *Board) LegalCards() []shared.Card {
	if b.outcome.Terminal() {
		return nil
	}
	return legalMoves(b.players[b.current], b.trick, b.trump.Suit, b.IsForcedFollow())
}

// AllCards returns every card of the round wherever it sits: deck, the set
// aside marker, hands, the trick in progress and both piles.
func (b *Board) AllCards() []shared.Card {
	cards := cloneCards(b.deck.Cards)
	if !b.trumpDealt {
		cards = append(cards, b.trump)
	}
	for _, p := range b.players {
		cards = append(cards, p.Hand...)
	}
	cards = append(cards, b.trick.PlainCards()...)
	for _, t := range b.teams {
		cards = append(cards, t.Pile...)
	}
	return cards
}

// --- Commands ---

// PlayCard plays the card at index of the acting seat's hand. On error the
// board is left untouched.
func (b *Board) PlayCard(index int) (Outcome, error) {
	if b.outcome.Terminal() {
		return b.outcome, ErrRoundOver
	}
	player := b.players[b.current]
	if index < 0 || index >= len(player.Hand) {
		b.log.Debugf("Seat %d picked index %d of a %d card hand.", b.current, index, len(player.Hand))
		return b.outcome, fmt.Errorf("%w: %d (seat %d holds %d cards)", ErrInvalidHandIndex, index, b.current, len(player.Hand))
	}
	card := player.Hand[index]
	if !slices.Contains(b.LegalCards(), card) {
		b.log.Debugf("Seat %d attempted illegal play %s.", b.current, card)
		return b.outcome, fmt.Errorf("%w: %s", ErrIllegalCard, card)
	}

	player.RemoveAt(index)
	b.trick.AddCard(card, b.current)
	b.log.Debugf("Seat %d played %s.", b.current, card)

	if !b.trick.Full() {
		b.current = (b.current + 1) % NumSeats
		b.outcome = InProgress
		return b.outcome, nil
	}
	return b.endTrick(), nil
}

// endTrick resolves a full trick, refills hands and detects the end of the round.
func (b *Board) endTrick() Outcome {
	winner, _ := b.trick.Winner(b.trump.Suit)
	team := b.teams[shared.TeamOf(winner.Seat)]
	team.Collect(b.trick.PlainCards()...)

	b.lastTrick = b.trick.Snapshot()
	b.lastWinner = winner.Seat
	b.trick = shared.NewTrick()
	b.current = winner.Seat
	b.tricks++
	b.log.Debugf("Trick %d won by seat %d with %s (team %d).", b.tricks, winner.Seat, winner.Card, team.Number)

	if !b.deck.Empty() {
		b.drawAfterTrick()
	}

	// All hands empty together; seat 0 stands in for the table.
	if len(b.players[0].Hand) == 0 {
		return b.endRound()
	}
	b.outcome = TrickCompleted
	return b.outcome
}

// drawAfterTrick deals one card to each seat starting with the trick winner.
// The seat whose draw finds the deck exhausted takes the trump marker.
func (b *Board) drawAfterTrick() {
	for i := 0; i < NumSeats; i++ {
		seat := (b.current + i) % NumSeats
		card, ok := b.deck.Draw()
		if !ok {
			if b.trumpDealt {
				break
			}
			card = b.trump
			b.trumpDealt = true
			b.log.Debugf("Deck exhausted, seat %d takes the trump card %s.", seat, card)
		}
		b.players[seat].AddCard(card)
	}
}

// endRound counts both piles, awards the last trick bonus and decides the round.
func (b *Board) endRound() Outcome {
	for _, t := range b.teams {
		t.AddScore(t.PilePoints())
	}
	b.teams[shared.TeamOf(b.current)].AddScore(LastTrickBonus)

	score := b.Score()
	switch {
	case score[0] > score[1]:
		b.outcome = Team0Won
	case score[1] > score[0]:
		b.outcome = Team1Won
	default:
		b.outcome = Draw
	}
	b.log.Infof("Round ended: %s (%d - %d).", b.outcome, score[0], score[1])
	return b.outcome
}

// Abort ends the round without a result. Later commands fail with ErrRoundOver.
func (b *Board) Abort(reason string) {
	if b.outcome.Terminal() {
		return
	}
	b.outcome = Aborted
	b.log.Warnf("Round aborted: %s", reason)
}
