// Package chess provides core chess types and operations.
package chess

// Colour represents the colour of a piece or player.
type Colour uint8

const (
	White Colour = iota
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// FENChar returns the active-colour letter used in FEN.
func (c Colour) FENChar() byte {
	if c == White {
		return 'w'
	}
	return 'b'
}

// ColourOffset returns +1 for White, -1 for Black (for pawn direction).
func ColourOffset(colour Colour) int {
	if colour == White {
		return 1
	}
	return -1
}

// PieceType represents a chess piece type. The zero value is NoPieceType.
type PieceType uint8

const (
	NoPieceType PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// PieceTypes lists the real piece types in ascending order.
var PieceTypes = [...]PieceType{Pawn, Knight, Bishop, Rook, Queen, King}

// PromotionTypes lists promotion choices in the order moves are generated.
var PromotionTypes = [...]PieceType{Queen, Rook, Bishop, Knight}

// String returns the string representation of a piece type.
func (p PieceType) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece type (uppercase).
func (p PieceType) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// Value returns the conventional material value.
func (p PieceType) Value() int {
	switch p {
	case Pawn:
		return 1
	case Knight, Bishop:
		return 3
	case Rook:
		return 5
	case Queen:
		return 9
	}
	return 0
}

// InitialCount returns how many pieces of this type each side starts with.
func (p PieceType) InitialCount() int {
	switch p {
	case Pawn:
		return 8
	case Knight, Bishop, Rook:
		return 2
	case Queen, King:
		return 1
	}
	return 0
}

// PieceTypeFromLetter converts an uppercase or lowercase piece letter.
func PieceTypeFromLetter(c byte) PieceType {
	switch c {
	case 'K', 'k':
		return King
	case 'Q', 'q':
		return Queen
	case 'R', 'r':
		return Rook
	case 'N', 'n':
		return Knight
	case 'B', 'b':
		return Bishop
	case 'P', 'p':
		return Pawn
	default:
		return NoPieceType
	}
}

// Piece is a coloured piece. The zero value is an empty square.
type Piece struct {
	Colour Colour
	Type   PieceType
}

// NoPiece is the empty square.
var NoPiece = Piece{}

// MakePiece creates a coloured piece value.
func MakePiece(colour Colour, pieceType PieceType) Piece {
	return Piece{Colour: colour, Type: pieceType}
}

// W creates a white piece.
func W(pieceType PieceType) Piece {
	return MakePiece(White, pieceType)
}

// B creates a black piece.
func B(pieceType PieceType) Piece {
	return MakePiece(Black, pieceType)
}

// IsEmpty reports whether the slot holds no piece.
func (p Piece) IsEmpty() bool {
	return p.Type == NoPieceType
}

// Is reports whether the piece has the given colour and type.
func (p Piece) Is(colour Colour, pieceType PieceType) bool {
	return p.Type == pieceType && p.Colour == colour
}

// FENChar returns the FEN letter: uppercase for White, lowercase for Black.
func (p Piece) FENChar() byte {
	if p.IsEmpty() {
		return ' '
	}
	letter := p.Type.Letter()
	if p.Colour == Black {
		letter += 'a' - 'A'
	}
	return letter
}

// PieceFromFENChar converts a FEN letter into a piece; ok is false for
// anything that is not one of "PNBRQKpnbrqk".
func PieceFromFENChar(c byte) (Piece, bool) {
	pieceType := PieceTypeFromLetter(c)
	if pieceType == NoPieceType {
		return NoPiece, false
	}
	colour := White
	if c >= 'a' && c <= 'z' {
		colour = Black
	}
	return MakePiece(colour, pieceType), true
}

// String returns e.g. "White Knight", or "Empty".
func (p Piece) String() string {
	if p.IsEmpty() {
		return "Empty"
	}
	return p.Colour.String() + " " + p.Type.String()
}

// Symbol returns the Unicode chess glyph for the piece.
func (p Piece) Symbol() rune {
	if p.IsEmpty() {
		return ' '
	}
	white := []rune{' ', '♙', '♘', '♗', '♖', '♕', '♔'}
	black := []rune{' ', '♟', '♞', '♝', '♜', '♛', '♚'}
	if p.Colour == White {
		return white[p.Type]
	}
	return black[p.Type]
}

// Constants for board dimensions.
const (
	BoardSize  = 8
	NumSquares = BoardSize * BoardSize
)
