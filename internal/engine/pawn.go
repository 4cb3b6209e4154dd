package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// pawnHomeRank returns the rank (0-7) pawns of colour start on.
func pawnHomeRank(colour chess.Colour) int {
	if colour == chess.White {
		return 1
	}
	return 6
}

// lastRank returns the promotion rank (0-7) for colour.
func lastRank(colour chess.Colour) int {
	if colour == chess.White {
		return chess.BoardSize - 1
	}
	return 0
}

// isEnPassantTarget reports whether a pawn of colour moving diagonally onto
// to captures en passant. The target must sit on the rank the enemy pawn
// skipped.
func isEnPassantTarget(pos *chess.Position, to chess.Square, colour chess.Colour) bool {
	if to != pos.EnPassant || !to.Valid() {
		return false
	}
	return to.Rank() == lastRank(colour)-2*chess.ColourOffset(colour)
}

// pawnMoves appends the pawn moves from sq: single and double pushes,
// diagonal captures and en passant. A move onto the last rank is expanded
// into one move per promotion piece.
func pawnMoves(pos *chess.Position, from chess.Square, colour chess.Colour, moves []chess.Move) []chess.Move {
	dir := chess.ColourOffset(colour)

	if one, ok := from.Offset(0, dir); ok && pos.IsEmpty(one) {
		moves = appendPawnMove(moves, from, one, colour)
		if from.Rank() == pawnHomeRank(colour) {
			if two, ok := one.Offset(0, dir); ok && pos.IsEmpty(two) {
				moves = append(moves, chess.NewMove(from, two))
			}
		}
	}

	for _, df := range [2]int{-1, 1} {
		to, ok := from.Offset(df, dir)
		if !ok {
			continue
		}
		target := pos.PieceAt(to)
		if (!target.IsEmpty() && target.Colour != colour) || isEnPassantTarget(pos, to, colour) {
			moves = appendPawnMove(moves, from, to, colour)
		}
	}

	return moves
}

// appendPawnMove appends a pawn move, expanding promotions.
func appendPawnMove(moves []chess.Move, from, to chess.Square, colour chess.Colour) []chess.Move {
	if to.Rank() != lastRank(colour) {
		return append(moves, chess.NewMove(from, to))
	}
	for _, promotion := range chess.PromotionTypes {
		moves = append(moves, chess.NewPromotion(from, to, promotion))
	}
	return moves
}
