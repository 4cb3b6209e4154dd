package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// Perft counts the leaf nodes of the legal move tree of pos to depth.
func Perft(pos *chess.Position, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	set := LegalMoves(pos)
	if depth == 1 {
		return uint64(set.Len())
	}
	var nodes uint64
	for i := 0; i < set.Len(); i++ {
		next := set.At(i).Position
		nodes += Perft(&next, depth-1)
	}
	return nodes
}

// PerftDivide returns the perft count below each legal move of pos.
func PerftDivide(pos *chess.Position, depth int) map[chess.Move]uint64 {
	set := LegalMoves(pos)
	counts := make(map[chess.Move]uint64, set.Len())
	for i := 0; i < set.Len(); i++ {
		result := set.At(i)
		counts[result.Move] = Perft(&result.Position, depth-1)
	}
	return counts
}
