package engine

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

// TestHasInsufficientMaterial tests various material configurations
func TestHasInsufficientMaterial(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want bool // true = insufficient material
	}{
		{"K vs K", "4k3/8/8/8/8/8/8/4K3 w - - 0 1", true},
		{"K+B vs K", "4k3/8/8/8/8/8/8/4KB2 w - - 0 1", true},
		{"K+N vs K", "4k3/8/8/8/8/8/8/4KN2 w - - 0 1", true},
		{"K vs K+b", "4k1b1/8/8/8/8/8/8/4K3 w - - 0 1", true},
		{"K vs K+n", "4k1n1/8/8/8/8/8/8/4K3 w - - 0 1", true},
		{"K+B vs K+B same color", "4kb2/8/8/8/8/8/8/2B1K3 w - - 0 1", true},
		{"K+R vs K", "4k3/8/8/8/8/8/8/4KR2 w - - 0 1", false},
		{"K+Q vs K", "4k3/8/8/8/8/8/8/4KQ2 w - - 0 1", false},
		{"K+P vs K", "4k3/8/8/8/8/8/4P3/4K3 w - - 0 1", false},
		{"K+B vs K+B opposite color", "4kb2/8/8/8/8/8/8/3BK3 w - - 0 1", false},
		{"K+B+B vs K", "4k3/8/8/8/8/8/8/2B1KB2 w - - 0 1", false},
		{"K+N+N vs K", "4k3/8/8/8/8/8/8/1N2K1N1 w - - 0 1", false},
		{"K+N vs K+N", "4k1n1/8/8/8/8/8/8/4K1N1 w - - 0 1", false},
		{"K+B vs K+N", "4k1n1/8/8/8/8/8/8/4KB2 w - - 0 1", false},
		{"standard starting position", InitialFEN, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			pos := MustPositionFromFEN(tt.fen)
			if got := HasInsufficientMaterial(&pos); got != tt.want {
				t.Errorf("HasInsufficientMaterial() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsTimeoutDraw(t *testing.T) {
	tests := []struct {
		name   string
		fen    string
		winner chess.Colour
		want   bool
	}{
		{"lone king cannot win", "4k3/8/8/8/8/8/PPPP4/4K3 w - - 0 1", chess.Black, true},
		{"king and knight cannot win", "4kn2/8/8/8/8/8/PPPP4/4K3 w - - 0 1", chess.Black, true},
		{"king and bishop cannot win", "4kb2/8/8/8/8/8/PPPP4/4K3 w - - 0 1", chess.Black, true},
		{"king and rook can win", "4kr2/8/8/8/8/8/8/4K3 w - - 0 1", chess.Black, false},
		{"king and pawn can win", "4k3/8/8/8/8/8/4P3/4K3 w - - 0 1", chess.White, false},
		{"two knights", "4k3/8/8/8/8/8/8/1N2K1N1 w - - 0 1", chess.White, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			pos := MustPositionFromFEN(tt.fen)
			if got := IsTimeoutDraw(&pos, tt.winner); got != tt.want {
				t.Errorf("IsTimeoutDraw(%v) = %v, want %v", tt.winner, got, tt.want)
			}
		})
	}
}

func TestCountPieces(t *testing.T) {
	pos := MustPositionFromFEN(InitialFEN)

	want := map[chess.PieceType]int{
		chess.Pawn: 8, chess.Knight: 2, chess.Bishop: 2,
		chess.Rook: 2, chess.Queen: 1, chess.King: 1,
	}
	testutil.AssertEqual(t, CountPieces(&pos, chess.White), want)
	testutil.AssertEqual(t, CountPieces(&pos, chess.Black), want)

	bare := MustPositionFromFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	testutil.AssertEqual(t, CountPieces(&bare, chess.White), map[chess.PieceType]int{chess.King: 1})
}

func TestMaterialDeficit(t *testing.T) {
	pos := MustPositionFromFEN(InitialFEN)
	testutil.AssertEqual(t, MaterialDeficit(&pos, chess.White), map[chess.PieceType]int{})

	// White has lost a knight and two pawns and promoted to a second queen.
	pos = MustPositionFromFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPP3/R1BQKBNR w KQkq - 0 1")
	pos.SetPieceAt(chess.H3, chess.W(chess.Queen))
	want := map[chess.PieceType]int{chess.Pawn: 3, chess.Knight: 1}
	testutil.AssertEqual(t, MaterialDeficit(&pos, chess.White), want)
}

func TestIsFiftyMoveDraw(t *testing.T) {
	pos := MustPositionFromFEN("4k3/8/8/8/8/8/8/4KR2 w - - 49 80")
	if IsFiftyMoveDraw(&pos, 50) {
		t.Error("IsFiftyMoveDraw(49, 50) = true, want false")
	}
	pos.HalfmoveClock = 50
	if !IsFiftyMoveDraw(&pos, 50) {
		t.Error("IsFiftyMoveDraw(50, 50) = false, want true")
	}
	if IsFiftyMoveDraw(&pos, 100) {
		t.Error("IsFiftyMoveDraw(50, 100) = true, want false")
	}
}

func TestIsCastling(t *testing.T) {
	pos := MustPositionFromFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	if !IsCastling(&pos, chess.NewMove(chess.E1, chess.G1)) {
		t.Error("IsCastling(e1g1) = false, want true")
	}
	if IsCastling(&pos, chess.NewMove(chess.E1, chess.F1)) {
		t.Error("IsCastling(e1f1) = true, want false")
	}
	if IsCastling(&pos, chess.NewMove(chess.A1, chess.D1)) {
		t.Error("IsCastling(a1d1) = true, want false")
	}
}
