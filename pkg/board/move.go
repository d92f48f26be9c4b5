package board

import (
	"fmt"
	"strings"
)

// MoveType indicates the type of move. The no-progress counter is reset with any non-Normal move.
type MoveType uint8

const (
	Normal    MoveType = iota
	Push               // Pawn single-square move
	Jump               // Pawn 2-square move
	EnPassant          // Implicitly a pawn capture
	QueenSideCastle
	KingSideCastle
	Capture
	Promotion
	CapturePromotion
)

// Move represents a not-necessarily-legal move along with enough metadata to apply and
// unapply it without consulting the position it was generated from.
type Move struct {
	Type       MoveType
	From, To   Square
	Piece      Piece // piece being moved
	Promotion  Piece // desired piece for promotion, if any
	Capture    Piece // captured piece, if any
}

// ParseMove parses a move in pure algebraic coordinate notation, such as "a2a4" or "a7a8q".
// The parsed move does not contain contextual information like piece type, castling or en
// passant: match it with Equals against Position.PseudoLegalMoves to recover the full Move.
func ParseMove(str string) (Move, error) {
	runes := []rune(str)

	if len(runes) < 4 || len(runes) > 5 {
		return Move{}, fmt.Errorf("invalid move: '%v'", str)
	}

	from, err := ParseSquare(runes[0], runes[1])
	if err != nil {
		return Move{}, fmt.Errorf("invalid from: '%v': %v", str, err)
	}
	to, err := ParseSquare(runes[2], runes[3])
	if err != nil {
		return Move{}, fmt.Errorf("invalid to: '%v': %v", str, err)
	}

	if len(runes) == 5 {
		promo, ok := ParsePiece(runes[4])
		if !ok || promo == Pawn || promo == King {
			return Move{}, fmt.Errorf("invalid promotion: '%v'", str)
		}
		return Move{From: from, To: to, Promotion: promo}, nil
	}

	return Move{From: from, To: to}, nil
}

// Equals returns true iff the two moves are the same move (ignoring captured-piece metadata).
func (m Move) Equals(o Move) bool {
	return m.From == o.From && m.To == o.To && m.Promotion == o.Promotion
}

// IsZero reports whether m is the zero Move, used as a "no move" sentinel in TT entries
// and killer slots.
func (m Move) IsZero() bool {
	return m == Move{}
}

func (m Move) String() string {
	from, to := strings.ToLower(m.From.String()), strings.ToLower(m.To.String())
	if m.Promotion.IsValid() {
		return fmt.Sprintf("%v%v%v", from, to, m.Promotion)
	}
	return fmt.Sprintf("%v%v", from, to)
}

// FormatMoves renders a sequence of moves space-separated using the given formatter.
func FormatMoves(moves []Move, fn func(Move) string) string {
	s := ""
	for i, m := range moves {
		if i > 0 {
			s += " "
		}
		s += fn(m)
	}
	return s
}

// PrintMoves renders a sequence of moves using their default String form.
func PrintMoves(moves []Move) string {
	return FormatMoves(moves, func(m Move) string { return m.String() })
}
