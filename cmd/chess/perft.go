// perft.go - Move generator verification
package main

import (
	"fmt"
	"io"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// runPerft prints the leaf count below each root move, sorted by move, and
// the total. It returns the total.
func runPerft(w io.Writer, pos *chess.Position, depth int) uint64 {
	divide := make(map[string]uint64)
	for move, nodes := range engine.PerftDivide(pos, depth) {
		divide[move.String()] = nodes
	}

	moves := maps.Keys(divide)
	slices.Sort(moves)

	var total uint64
	for _, move := range moves {
		fmt.Fprintf(w, "%s: %d\n", move, divide[move])
		total += divide[move]
	}
	fmt.Fprintf(w, "\nNodes searched: %d\n", total)
	return total
}
