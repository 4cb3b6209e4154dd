package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// IsInCheck returns true if the given colour's king is attacked. Every king
// of that colour is tested; a position without one is never in check.
func IsInCheck(pos *chess.Position, colour chess.Colour) bool {
	king := chess.MakePiece(colour, chess.King)
	for sq := chess.A1; sq < chess.NoSquare; sq++ {
		if pos.PieceAt(sq) == king && IsSquareAttacked(pos, sq, colour.Opposite()) {
			return true
		}
	}
	return false
}

// IsSquareAttacked returns true if the square is attacked by the given colour.
func IsSquareAttacked(pos *chess.Position, sq chess.Square, byColour chess.Colour) bool {
	// Pawns attack diagonally forward, so look one rank behind from the
	// attacker's point of view.
	pawn := chess.MakePiece(byColour, chess.Pawn)
	pawnRank := -chess.ColourOffset(byColour)
	for _, df := range [2]int{-1, 1} {
		if from, ok := sq.Offset(df, pawnRank); ok && pos.PieceAt(from) == pawn {
			return true
		}
	}

	knight := chess.MakePiece(byColour, chess.Knight)
	for _, offset := range knightOffsets {
		if from, ok := sq.Offset(offset[0], offset[1]); ok && pos.PieceAt(from) == knight {
			return true
		}
	}

	king := chess.MakePiece(byColour, chess.King)
	for _, offset := range kingOffsets {
		if from, ok := sq.Offset(offset[0], offset[1]); ok && pos.PieceAt(from) == king {
			return true
		}
	}

	// Sliding pieces: the first occupied square on each ray decides.
	for _, dir := range diagonalDirs {
		if from := firstOccupied(pos, sq, dir); from != chess.NoSquare {
			piece := pos.PieceAt(from)
			if piece.Colour == byColour && (piece.Type == chess.Bishop || piece.Type == chess.Queen) {
				return true
			}
		}
	}
	for _, dir := range straightDirs {
		if from := firstOccupied(pos, sq, dir); from != chess.NoSquare {
			piece := pos.PieceAt(from)
			if piece.Colour == byColour && (piece.Type == chess.Rook || piece.Type == chess.Queen) {
				return true
			}
		}
	}

	return false
}
