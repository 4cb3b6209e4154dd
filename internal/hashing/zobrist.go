package hashing

import (
	"fmt"
	"math/rand"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// Zobrist keys. The seed is fixed so hashes are stable across runs.
var (
	zobristPieces     [2][7][chess.NumSquares]uint64
	zobristCastling   [4]uint64
	zobristEnPassant  [chess.NumSquares]uint64
	zobristSideToMove uint64
)

func init() {
	rng := rand.New(rand.NewSource(0x1234567890ABCDEF))
	for colour := range zobristPieces {
		for pieceType := range zobristPieces[colour] {
			for sq := range zobristPieces[colour][pieceType] {
				zobristPieces[colour][pieceType][sq] = rng.Uint64()
			}
		}
	}
	for i := range zobristCastling {
		zobristCastling[i] = rng.Uint64()
	}
	for i := range zobristEnPassant {
		zobristEnPassant[i] = rng.Uint64()
	}
	zobristSideToMove = rng.Uint64()
}

// Hash returns the Zobrist hash of a position. It covers exactly the fields
// compared by Position.RepetitionOf, so positions that repeat always hash
// alike. Clocks are not hashed.
func Hash(pos *chess.Position) uint64 {
	var h uint64
	for sq, piece := range pos.Squares {
		if piece.IsEmpty() {
			continue
		}
		h ^= zobristPieces[piece.Colour][piece.Type][sq]
	}

	rights := pos.Castling
	if rights.WhiteKingside {
		h ^= zobristCastling[0]
	}
	if rights.WhiteQueenside {
		h ^= zobristCastling[1]
	}
	if rights.BlackKingside {
		h ^= zobristCastling[2]
	}
	if rights.BlackQueenside {
		h ^= zobristCastling[3]
	}

	if pos.EnPassant.Valid() {
		h ^= zobristEnPassant[pos.EnPassant]
	}
	if pos.ToMove == chess.Black {
		h ^= zobristSideToMove
	}
	return h
}

// FormatHash renders a hash as 16 hex digits.
func FormatHash(h uint64) string {
	return fmt.Sprintf("%016x", h)
}
