package chess

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// CastlingRights holds the four independent castling flags.
type CastlingRights struct {
	WhiteKingside  bool
	WhiteQueenside bool
	BlackKingside  bool
	BlackQueenside bool
}

// AllCastlingRights is the rights set of the standard starting position.
var AllCastlingRights = CastlingRights{true, true, true, true}

// Kingside reports the kingside right of the given colour.
func (c CastlingRights) Kingside(colour Colour) bool {
	if colour == White {
		return c.WhiteKingside
	}
	return c.BlackKingside
}

// Queenside reports the queenside right of the given colour.
func (c CastlingRights) Queenside(colour Colour) bool {
	if colour == White {
		return c.WhiteQueenside
	}
	return c.BlackQueenside
}

// ClearKingside removes the kingside right of the given colour.
func (c *CastlingRights) ClearKingside(colour Colour) {
	if colour == White {
		c.WhiteKingside = false
	} else {
		c.BlackKingside = false
	}
}

// ClearQueenside removes the queenside right of the given colour.
func (c *CastlingRights) ClearQueenside(colour Colour) {
	if colour == White {
		c.WhiteQueenside = false
	} else {
		c.BlackQueenside = false
	}
}

// Any reports whether at least one right remains.
func (c CastlingRights) Any() bool {
	return c.WhiteKingside || c.WhiteQueenside || c.BlackKingside || c.BlackQueenside
}

// String returns the FEN castling field: a subset of "KQkq" or "-".
func (c CastlingRights) String() string {
	if !c.Any() {
		return "-"
	}
	var sb strings.Builder
	if c.WhiteKingside {
		sb.WriteByte('K')
	}
	if c.WhiteQueenside {
		sb.WriteByte('Q')
	}
	if c.BlackKingside {
		sb.WriteByte('k')
	}
	if c.BlackQueenside {
		sb.WriteByte('q')
	}
	return sb.String()
}

// Position is a complete chess position. It is a plain value: assigning a
// Position copies the board, so a copy can be mutated freely.
type Position struct {
	// The board squares, indexed by Square.
	Squares [NumSquares]Piece

	// Who has the next move.
	ToMove Colour

	// Remaining castling rights.
	Castling CastlingRights

	// The square a pawn skipped on its last double step, or NoSquare.
	EnPassant Square

	// The half-move clock since the last pawn move or capture.
	HalfmoveClock int

	// The full-move number; incremented after each Black move.
	MoveNumber int
}

// NewPosition creates an empty board with White to move.
func NewPosition() Position {
	return Position{
		ToMove:     White,
		EnPassant:  NoSquare,
		MoveNumber: 1,
	}
}

// NewInitialPosition creates the standard starting position.
func NewInitialPosition() Position {
	p := NewPosition()
	p.SetupInitialPosition()
	return p
}

// SetupInitialPosition sets up the standard chess starting position.
func (p *Position) SetupInitialPosition() {
	p.Squares = [NumSquares]Piece{}

	backRank := []PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 0; file < BoardSize; file++ {
		p.Squares[file] = W(backRank[file])
		p.Squares[file+BoardSize] = W(Pawn)
		p.Squares[file+6*BoardSize] = B(Pawn)
		p.Squares[file+7*BoardSize] = B(backRank[file])
	}

	p.ToMove = White
	p.Castling = AllCastlingRights
	p.EnPassant = NoSquare
	p.HalfmoveClock = 0
	p.MoveNumber = 1
}

// PieceAt returns the piece on sq. sq must be a valid square.
func (p *Position) PieceAt(sq Square) Piece {
	return p.Squares[sq]
}

// SetPieceAt places a piece on sq. sq must be a valid square.
func (p *Position) SetPieceAt(sq Square, piece Piece) {
	p.Squares[sq] = piece
}

// At returns the piece at file and rank (both 0-7).
func (p *Position) At(file, rank int) (Piece, error) {
	sq, err := SquareAt(file, rank)
	if err != nil {
		return NoPiece, err
	}
	return p.Squares[sq], nil
}

// SetAt places a piece at file and rank (both 0-7).
func (p *Position) SetAt(file, rank int, piece Piece) error {
	sq, err := SquareAt(file, rank)
	if err != nil {
		return err
	}
	p.Squares[sq] = piece
	return nil
}

// IsEmpty reports whether sq holds no piece.
func (p *Position) IsEmpty(sq Square) bool {
	return p.Squares[sq].IsEmpty()
}

// FindPieces returns every square holding piece, in square order.
func (p *Position) FindPieces(piece Piece) []Square {
	var squares []Square
	for sq := A1; sq < NoSquare; sq++ {
		if p.Squares[sq] == piece {
			squares = append(squares, sq)
		}
	}
	return squares
}

// FindFirstPiece returns the lowest square holding piece, or NoSquare.
func (p *Position) FindFirstPiece(piece Piece) Square {
	for sq := A1; sq < NoSquare; sq++ {
		if p.Squares[sq] == piece {
			return sq
		}
	}
	return NoSquare
}

// RepetitionOf reports whether two positions are the same for the purpose
// of repetition: identical placement, side to move, castling rights and
// en passant target. Clocks are ignored.
func (p *Position) RepetitionOf(other *Position) bool {
	return p.Squares == other.Squares &&
		p.ToMove == other.ToMove &&
		p.Castling == other.Castling &&
		p.EnPassant == other.EnPassant
}

// MustPieceOwnedByMover returns the piece on sq, failing when the square is
// empty or holds a piece of the side not to move.
func (p *Position) MustPieceOwnedByMover(sq Square) (Piece, error) {
	if !sq.Valid() {
		return NoPiece, fmt.Errorf("square %d: %w", sq, errors.ErrOutOfBounds)
	}
	piece := p.Squares[sq]
	if piece.IsEmpty() {
		return NoPiece, fmt.Errorf("%s: %w", sq, errors.ErrEmptySquare)
	}
	if piece.Colour != p.ToMove {
		return NoPiece, fmt.Errorf("%s on %s does not belong to %s: %w", piece, sq, p.ToMove, errors.ErrWrongColour)
	}
	return piece, nil
}

// ASCII renders the board from rank 8 down to rank 1 with Unicode glyphs.
func (p *Position) ASCII() string {
	var sb strings.Builder
	for rank := BoardSize - 1; rank >= 0; rank-- {
		sb.WriteByte(byte('1' + rank))
		sb.WriteByte(' ')
		for file := 0; file < BoardSize; file++ {
			sb.WriteRune(p.Squares[file+BoardSize*rank].Symbol())
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  ")
	for file := 0; file < BoardSize; file++ {
		sb.WriteByte(byte('a' + file))
		sb.WriteByte(' ')
	}
	return sb.String()
}
