package chess

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Move is a from/to square pair with an optional promotion piece type.
// Moves are plain values; two moves are equal when all three fields are.
type Move struct {
	From      Square
	To        Square
	Promotion PieceType
}

// NewMove creates a non-promoting move.
func NewMove(from, to Square) Move {
	return Move{From: from, To: to}
}

// NewPromotion creates a promoting pawn move.
func NewPromotion(from, to Square, promotion PieceType) Move {
	return Move{From: from, To: to, Promotion: promotion}
}

// IsPromotion reports whether the move carries a promotion piece.
func (m Move) IsPromotion() bool {
	return m.Promotion != NoPieceType
}

// Key returns a compact ordering key. Keys sort moves by origin square,
// then destination, then promotion type.
func (m Move) Key() uint32 {
	return uint32(m.From)<<16 | uint32(m.To)<<8 | uint32(m.Promotion)
}

// Compare orders two moves by Key.
func (m Move) Compare(other Move) int {
	a, b := m.Key(), other.Key()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// String returns long algebraic notation: "e2e4", or "e7e8q" for a promotion.
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.IsPromotion() {
		s += string(m.Promotion.Letter() + ('a' - 'A'))
	}
	return s
}

// ParseMove decodes long algebraic notation as produced by Move.String.
func ParseMove(text string) (Move, error) {
	if len(text) != 4 && len(text) != 5 {
		return Move{}, fmt.Errorf("move %q: %w", text, errors.ErrIllegalMove)
	}
	from, err := ParseSquare(text[0:2])
	if err != nil {
		return Move{}, fmt.Errorf("move %q: %w", text, err)
	}
	to, err := ParseSquare(text[2:4])
	if err != nil {
		return Move{}, fmt.Errorf("move %q: %w", text, err)
	}
	move := NewMove(from, to)
	if len(text) == 5 {
		promotion := PieceTypeFromLetter(text[4])
		if promotion == NoPieceType || promotion == Pawn || promotion == King {
			return Move{}, fmt.Errorf("move %q: bad promotion piece: %w", text, errors.ErrIllegalMove)
		}
		move.Promotion = promotion
	}
	return move, nil
}
