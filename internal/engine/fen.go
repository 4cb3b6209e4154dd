// Package engine provides chess move generation, validation and the
// FEN and move-text codecs.
package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// FEN field names reported in FENError.Field.
const (
	FieldCount     = "field count"
	FieldPlacement = "placement"
	FieldColour    = "active colour"
	FieldCastling  = "castling"
	FieldEnPassant = "en passant"
	FieldHalfmove  = "halfmove clock"
	FieldFullmove  = "fullmove number"
)

// fenError builds a FENError wrapping ErrInvalidFEN.
func fenError(field, value, format string, args ...interface{}) error {
	return &errors.FENError{
		Field: field,
		Value: value,
		Err:   errors.Wrapf(errors.ErrInvalidFEN, format, args...),
	}
}

// NewPositionFromFEN decodes a six-field FEN string. Every field is
// validated; the first failure is returned as a *errors.FENError.
func NewPositionFromFEN(fen string) (chess.Position, error) {
	parts := strings.Fields(fen)
	if len(parts) != 6 {
		return chess.Position{}, fenError(FieldCount, fen, "got %d fields, want 6", len(parts))
	}

	pos := chess.NewPosition()

	if err := parsePiecePlacement(&pos, parts[0]); err != nil {
		return chess.Position{}, err
	}
	if err := parseSideToMove(&pos, parts[1]); err != nil {
		return chess.Position{}, err
	}
	if err := parseCastlingRights(&pos, parts[2]); err != nil {
		return chess.Position{}, err
	}
	if err := parseEnPassant(&pos, parts[3]); err != nil {
		return chess.Position{}, err
	}

	var err error
	if pos.HalfmoveClock, err = parseCounter(FieldHalfmove, parts[4]); err != nil {
		return chess.Position{}, err
	}
	if pos.MoveNumber, err = parseCounter(FieldFullmove, parts[5]); err != nil {
		return chess.Position{}, err
	}

	return pos, nil
}

// MustPositionFromFEN is like NewPositionFromFEN but panics on error.
// Intended for constants and tests.
func MustPositionFromFEN(fen string) chess.Position {
	pos, err := NewPositionFromFEN(fen)
	if err != nil {
		panic(err)
	}
	return pos
}

// parsePiecePlacement parses the piece placement field of a FEN string.
func parsePiecePlacement(pos *chess.Position, placement string) error {
	rows := strings.Split(placement, "/")
	if len(rows) != chess.BoardSize {
		return fenError(FieldPlacement, placement, "got %d ranks, want 8", len(rows))
	}

	for i, row := range rows {
		rank := chess.BoardSize - 1 - i
		file := 0
		for j := 0; j < len(row); j++ {
			c := row[j]
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				if file > chess.BoardSize {
					return fenError(FieldPlacement, placement, "rank %d overflows", rank+1)
				}
				continue
			}
			piece, ok := chess.PieceFromFENChar(c)
			if !ok {
				return fenError(FieldPlacement, placement, "invalid piece character %q", c)
			}
			if file >= chess.BoardSize {
				return fenError(FieldPlacement, placement, "rank %d overflows", rank+1)
			}
			pos.Squares[file+chess.BoardSize*rank] = piece
			file++
		}
		if file != chess.BoardSize {
			return fenError(FieldPlacement, placement, "rank %d has %d squares, want 8", rank+1, file)
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(pos *chess.Position, field string) error {
	switch field {
	case "w":
		pos.ToMove = chess.White
	case "b":
		pos.ToMove = chess.Black
	default:
		return fenError(FieldColour, field, "want w or b")
	}
	return nil
}

// parseCastlingRights parses the castling availability field. Letters must
// appear in KQkq order without repeats.
func parseCastlingRights(pos *chess.Position, field string) error {
	pos.Castling = chess.CastlingRights{}
	if field == "-" {
		return nil
	}

	const order = "KQkq"
	last := -1
	for i := 0; i < len(field); i++ {
		idx := strings.IndexByte(order, field[i])
		if idx < 0 {
			return fenError(FieldCastling, field, "unexpected %q", field[i])
		}
		if idx <= last {
			return fenError(FieldCastling, field, "letters out of KQkq order")
		}
		last = idx
		switch field[i] {
		case 'K':
			pos.Castling.WhiteKingside = true
		case 'Q':
			pos.Castling.WhiteQueenside = true
		case 'k':
			pos.Castling.BlackKingside = true
		case 'q':
			pos.Castling.BlackQueenside = true
		}
	}
	return nil
}

// parseEnPassant parses the en passant target square field.
func parseEnPassant(pos *chess.Position, field string) error {
	pos.EnPassant = chess.NoSquare
	if field == "-" {
		return nil
	}
	sq, err := chess.ParseSquare(field)
	if err != nil {
		return fenError(FieldEnPassant, field, "not a square")
	}
	pos.EnPassant = sq
	return nil
}

// parseCounter parses a non-negative decimal counter.
func parseCounter(field, value string) (int, error) {
	if value == "" || strings.TrimLeft(value, "0123456789") != "" {
		return 0, fenError(field, value, "not a non-negative integer")
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fenError(field, value, "%v", err)
	}
	return n, nil
}

// PositionToFEN converts a position to a FEN string.
func PositionToFEN(pos *chess.Position) string {
	var sb strings.Builder

	writePiecePlacement(&sb, pos)
	sb.WriteByte(' ')
	sb.WriteByte(pos.ToMove.FENChar())
	sb.WriteByte(' ')
	sb.WriteString(pos.Castling.String())
	sb.WriteByte(' ')
	sb.WriteString(pos.EnPassant.String())
	sb.WriteByte(' ')
	fmt.Fprintf(&sb, "%d %d", pos.HalfmoveClock, pos.MoveNumber)

	return sb.String()
}

// writePiecePlacement writes the piece placement to the builder.
func writePiecePlacement(sb *strings.Builder, pos *chess.Position) {
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		emptyCount := 0
		for file := 0; file < chess.BoardSize; file++ {
			piece := pos.Squares[file+chess.BoardSize*rank]
			if piece.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.FENChar())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
}
