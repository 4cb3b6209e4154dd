package testutil

import (
	"strings"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// MustParseMoves parses a space separated list of long algebraic moves
// ("e2e4 e7e5 g1f3") and calls t.Fatal on the first bad one.
func MustParseMoves(t testing.TB, text string) []chess.Move {
	t.Helper()
	var moves []chess.Move
	for _, field := range strings.Fields(text) {
		move, err := chess.ParseMove(field)
		if err != nil {
			t.Fatalf("bad test move %q: %v", field, err)
		}
		moves = append(moves, move)
	}
	return moves
}

// MustParseMove parses one long algebraic move.
func MustParseMove(t testing.TB, text string) chess.Move {
	t.Helper()
	move, err := chess.ParseMove(text)
	if err != nil {
		t.Fatalf("bad test move %q: %v", text, err)
	}
	return move
}

// Repeat returns text repeated n times, space separated.
func Repeat(text string, n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = text
	}
	return strings.Join(parts, " ")
}
