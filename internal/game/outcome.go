package game

import "errors"

// Outcome is the round state reported after every command.
type Outcome int

const (
	InProgress     Outcome = iota // in progress
	TrickCompleted                // trick completed
	Team0Won                      // team 0 won
	Team1Won                      // team 1 won
	Draw                          // draw
	Aborted                       // aborted
)

var outcomeNames = map[Outcome]string{
	InProgress:     "in progress",
	TrickCompleted: "trick completed",
	Team0Won:       "team 0 won",
	Team1Won:       "team 1 won",
	Draw:           "draw",
	Aborted:        "aborted",
}

func (o Outcome) String() string {
	if name, ok := outcomeNames[o]; ok {
		return name
	}
	return "unknown"
}

// Terminal reports whether no further commands are accepted.
func (o Outcome) Terminal() bool {
	return o == Team0Won || o == Team1Won || o == Draw || o == Aborted
}

// Rule violations. Commands wrap these with detail; test with errors.Is.
var (
	ErrInvalidHandIndex      = errors.New("invalid hand index")
	ErrIllegalCard           = errors.New("illegal card")
	ErrIneligibleDeclaration = errors.New("ineligible declaration")
	ErrIneligibleExchange    = errors.New("ineligible trump exchange")
	ErrInvalidSeat           = errors.New("invalid seat")
	ErrRoundOver             = errors.New("round is over")
)
