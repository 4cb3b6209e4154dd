package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
)

// CountPieces returns how many pieces of each type colour has on the board.
// Types with no pieces are absent from the map.
func CountPieces(pos *chess.Position, colour chess.Colour) map[chess.PieceType]int {
	counts := make(map[chess.PieceType]int)
	for sq := chess.A1; sq < chess.NoSquare; sq++ {
		piece := pos.PieceAt(sq)
		if !piece.IsEmpty() && piece.Colour == colour {
			counts[piece.Type]++
		}
	}
	return counts
}

// MaterialDeficit returns, per piece type, how many pieces colour is
// missing compared with the starting position. Promotions can push a count
// above its initial value; such types report zero.
func MaterialDeficit(pos *chess.Position, colour chess.Colour) map[chess.PieceType]int {
	counts := CountPieces(pos, colour)
	deficit := make(map[chess.PieceType]int)
	for _, pieceType := range chess.PieceTypes {
		if missing := pieceType.InitialCount() - counts[pieceType]; missing > 0 {
			deficit[pieceType] = missing
		}
	}
	return deficit
}

// HasInsufficientMaterial returns true if neither side can force mate.
// Insufficient material includes:
// - K vs K
// - K+B vs K
// - K+N vs K
// - K+B vs K+B (bishops on the same square colour)
func HasInsufficientMaterial(pos *chess.Position) bool {
	white := CountPieces(pos, chess.White)
	black := CountPieces(pos, chess.Black)

	if isLoneKing(white) && isLoneKing(black) {
		return true
	}
	if isLoneKing(white) && isKingAndMinor(black) {
		return true
	}
	if isLoneKing(black) && isKingAndMinor(white) {
		return true
	}
	return isKingAndBishop(white) && isKingAndBishop(black) && bishopsOnSameColour(pos)
}

// IsTimeoutDraw reports whether a flag fall by the opponent of winner is
// scored as a draw: winner has only a king, or a king and a single minor
// piece, and so could never have mated.
func IsTimeoutDraw(pos *chess.Position, winner chess.Colour) bool {
	counts := CountPieces(pos, winner)
	return isLoneKing(counts) || isKingAndMinor(counts)
}

// isLoneKing reports whether the counts hold nothing but the king.
func isLoneKing(counts map[chess.PieceType]int) bool {
	return len(counts) == 1 && counts[chess.King] > 0
}

// isKingAndMinor reports a king plus exactly one bishop or one knight.
func isKingAndMinor(counts map[chess.PieceType]int) bool {
	return len(counts) == 2 && (counts[chess.Bishop] == 1 || counts[chess.Knight] == 1)
}

// isKingAndBishop reports a king plus exactly one bishop.
func isKingAndBishop(counts map[chess.PieceType]int) bool {
	return len(counts) == 2 && counts[chess.Bishop] == 1
}

// bishopsOnSameColour compares the square colours of the first white and
// first black bishop.
func bishopsOnSameColour(pos *chess.Position) bool {
	w := pos.FindFirstPiece(chess.W(chess.Bishop))
	b := pos.FindFirstPiece(chess.B(chess.Bishop))
	return w != chess.NoSquare && b != chess.NoSquare && w.Colour() == b.Colour()
}

// IsFiftyMoveDraw reports whether the half-move clock has reached threshold.
func IsFiftyMoveDraw(pos *chess.Position, threshold int) bool {
	return pos.HalfmoveClock >= threshold
}
