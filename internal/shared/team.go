package shared

import "github.com/google/uuid"

// Team represents one of the two partnerships and what it has won.
type Team struct {
	ID     string `json:"id"`
	Number int    `json:"number"` // 0 (seats 0 and 2) or 1 (seats 1 and 3)
	Seats  [2]int `json:"seats"`
	Score  int    `json:"score"`
	Pile   []Card `json:"-"` // Cards from every trick the team won
}

// NewTeam creates a team for the given number with a fresh UUID.
func NewTeam(number int) *Team {
	return &Team{
		ID:     uuid.NewString(),
		Number: number,
		Seats:  [2]int{number, number + 2},
		Pile:   []Card{},
	}
}

// AddScore adds points to the team's running total.
func (t *Team) AddScore(points int) {
	t.Score += points
}

// Collect appends won trick cards to the team's pile.
func (t *Team) Collect(cards ...Card) {
	t.Pile = append(t.Pile, cards...)
}

// PilePoints returns the summed point value of the pile.
func (t *Team) PilePoints() int {
	return CardPoints(t.Pile)
}
