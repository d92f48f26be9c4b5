package board

import "fmt"

// Outcome represents who (if anyone) won the game.
type Outcome uint8

const (
	Undecided Outcome = iota
	WhiteWins
	BlackWins
	Draw
)

// Loss returns the Outcome in which the given color has lost.
func Loss(c Color) Outcome {
	if c == White {
		return BlackWins
	}
	return WhiteWins
}

func (o Outcome) String() string {
	switch o {
	case WhiteWins:
		return "1-0"
	case BlackWins:
		return "0-1"
	case Draw:
		return "1/2-1/2"
	default:
		return "*"
	}
}

// Reason is the rule under which a game result was adjudicated.
type Reason uint8

const (
	NotApplicable Reason = iota
	Checkmate
	Stalemate
	InsufficientMaterial
	NoProgress // fifty-move rule
	Repetition3
	Repetition5
)

func (r Reason) String() string {
	switch r {
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	case InsufficientMaterial:
		return "insufficient material"
	case NoProgress:
		return "fifty-move rule"
	case Repetition3:
		return "threefold repetition"
	case Repetition5:
		return "fivefold repetition"
	default:
		return "n/a"
	}
}

// Result represents the result of a game, if decided, and why.
type Result struct {
	Outcome Outcome
	Reason  Reason
}

func (r Result) String() string {
	if r.Outcome == Undecided {
		return "undecided"
	}
	return fmt.Sprintf("%v (%v)", r.Outcome, r.Reason)
}
