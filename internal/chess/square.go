package chess

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Square identifies one of the 64 board cells.
// Index is file + 8*rank: A1=0, H1=7, A8=56, H8=63.
type Square uint8

// Square constants for all 64 squares.
const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
	NoSquare Square = 64
)

// OnBoard reports whether file and rank (both 0-7) are inside the board.
func OnBoard(file, rank int) bool {
	return file >= 0 && file < BoardSize && rank >= 0 && rank < BoardSize
}

// SquareAt returns the square at file and rank (both 0-7).
func SquareAt(file, rank int) (Square, error) {
	if !OnBoard(file, rank) {
		return NoSquare, fmt.Errorf("file %d, rank %d: %w", file, rank, errors.ErrOutOfBounds)
	}
	return Square(file + BoardSize*rank), nil
}

// ParseSquare parses an algebraic square name such as "e4".
func ParseSquare(name string) (Square, error) {
	if len(name) != 2 {
		return NoSquare, fmt.Errorf("%q: %w", name, errors.ErrInvalidSquare)
	}
	file := int(name[0]) - 'a'
	rank := int(name[1]) - '1'
	if !OnBoard(file, rank) {
		return NoSquare, fmt.Errorf("%q: %w", name, errors.ErrInvalidSquare)
	}
	return Square(file + BoardSize*rank), nil
}

// File returns the file (column) of the square (0-7, where 0=a, 7=h).
func (sq Square) File() int {
	return int(sq) % BoardSize
}

// Rank returns the rank (row) of the square (0-7, where 0=rank 1).
func (sq Square) Rank() int {
	return int(sq) / BoardSize
}

// Valid reports whether the square is one of the 64 board cells.
func (sq Square) Valid() bool {
	return sq < NoSquare
}

// FileLetter returns 'a'-'h'.
func (sq Square) FileLetter() byte {
	return byte('a' + sq.File())
}

// RankDigit returns '1'-'8'.
func (sq Square) RankDigit() byte {
	return byte('1' + sq.Rank())
}

// String returns the algebraic name, e.g. "e4", or "-" for NoSquare.
func (sq Square) String() string {
	if !sq.Valid() {
		return "-"
	}
	return string([]byte{sq.FileLetter(), sq.RankDigit()})
}

// Colour returns the colour of the square itself; a1 is dark.
func (sq Square) Colour() Colour {
	if sq.File()%2 == sq.Rank()%2 {
		return Black
	}
	return White
}

// IsLight reports whether the square is a light square.
func (sq Square) IsLight() bool {
	return sq.Colour() == White
}

// Offset returns the square df files and dr ranks away; ok is false when
// that falls off the board.
func (sq Square) Offset(df, dr int) (Square, bool) {
	file, rank := sq.File()+df, sq.Rank()+dr
	if !OnBoard(file, rank) {
		return NoSquare, false
	}
	return Square(file + BoardSize*rank), true
}
