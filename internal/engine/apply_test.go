package engine

import (
	"errors"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	chesserrors "github.com/lgbarn/chessrules-go/internal/errors"
)

// mustApply plays a UCI move and fails the test on error.
func mustApply(t *testing.T, pos chess.Position, uci string) chess.Position {
	t.Helper()
	move, err := chess.ParseMove(uci)
	if err != nil {
		t.Fatalf("ParseMove(%q) error = %v", uci, err)
	}
	next, err := ApplyMove(&pos, move)
	if err != nil {
		t.Fatalf("ApplyMove(%s) error = %v", uci, err)
	}
	return next
}

func TestApplyMove_FENSequences(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		moves   []string
		wantFEN string
	}{
		{
			name:    "1.e4",
			fen:     InitialFEN,
			moves:   []string{"e2e4"},
			wantFEN: "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		},
		{
			name:    "1.Nf3",
			fen:     InitialFEN,
			moves:   []string{"g1f3"},
			wantFEN: "rnbqkbnr/pppppppp/8/8/8/5N2/PPPPPPPP/RNBQKB1R b KQkq - 1 1",
		},
		{
			name:    "sicilian with Nf3",
			fen:     InitialFEN,
			moves:   []string{"e2e4", "c7c5", "g1f3"},
			wantFEN: "rnbqkbnr/pp1ppppp/8/2p5/4P3/5N2/PPPP1PPP/RNBQKB1R b KQkq - 1 2",
		},
		{
			name:    "white kingside castle",
			fen:     "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1",
			moves:   []string{"e1g1"},
			wantFEN: "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R4RK1 b kq - 1 1",
		},
		{
			name:    "white queenside castle",
			fen:     "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1",
			moves:   []string{"e1c1"},
			wantFEN: "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/2KR3R b kq - 1 1",
		},
		{
			name:    "black kingside castle",
			fen:     "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R b KQkq - 3 9",
			moves:   []string{"e8g8"},
			wantFEN: "r4rk1/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQ - 4 10",
		},
		{
			name:    "black queenside castle",
			fen:     "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R b KQkq - 0 1",
			moves:   []string{"e8c8"},
			wantFEN: "2kr3r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQ - 1 2",
		},
		{
			name:    "white en passant",
			fen:     "rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3",
			moves:   []string{"e5d6"},
			wantFEN: "rnbqkbnr/ppp1pppp/3P4/8/8/8/PPPP1PPP/RNBQKBNR b KQkq - 0 3",
		},
		{
			name:    "black en passant",
			fen:     "rnbqkbnr/pppp1ppp/8/8/3Pp3/8/PPP1PPPP/RNBQKBNR b KQkq d3 0 3",
			moves:   []string{"e4d3"},
			wantFEN: "rnbqkbnr/pppp1ppp/8/8/8/3p4/PPP1PPPP/RNBQKBNR w KQkq - 0 4",
		},
		{
			name:    "promotion to queen",
			fen:     "8/4P3/8/8/8/8/k7/4K3 w - - 5 40",
			moves:   []string{"e7e8q"},
			wantFEN: "4Q3/8/8/8/8/8/k7/4K3 b - - 0 40",
		},
		{
			name:    "capture promotion to knight",
			fen:     "3r4/4P3/8/8/8/8/k7/4K3 w - - 0 1",
			moves:   []string{"e7d8n"},
			wantFEN: "3N4/8/8/8/8/8/k7/4K3 b - - 0 1",
		},
		{
			name:    "rook move clears one wing",
			fen:     "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			moves:   []string{"h1h2"},
			wantFEN: "r3k2r/8/8/8/8/8/7R/R3K3 b Qkq - 1 1",
		},
		{
			name:    "rook captured on home square",
			fen:     "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			moves:   []string{"a1a8"},
			wantFEN: "R3k2r/8/8/8/8/8/8/4K2R b Kk - 0 1",
		},
		{
			name:    "king move clears both wings",
			fen:     "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1",
			moves:   []string{"e8d7"},
			wantFEN: "r6r/3k4/8/8/8/8/8/R3K2R w KQ - 1 2",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			pos := MustPositionFromFEN(tt.fen)
			for _, uci := range tt.moves {
				pos = mustApply(t, pos, uci)
			}
			if got := PositionToFEN(&pos); got != tt.wantFEN {
				t.Errorf("FEN = %q, want %q", got, tt.wantFEN)
			}
		})
	}
}

func TestApplyMove_DoesNotMutateSource(t *testing.T) {
	pos := MustPositionFromFEN(InitialFEN)
	before := pos

	if _, err := ApplyMove(&pos, chess.NewMove(chess.E2, chess.E4)); err != nil {
		t.Fatalf("ApplyMove() error = %v", err)
	}
	if pos != before {
		t.Error("ApplyMove() modified its source position")
	}
}

func TestApplyMove_Errors(t *testing.T) {
	tests := []struct {
		name    string
		move    chess.Move
		wantErr error
	}{
		{"empty square", chess.NewMove(chess.E4, chess.E5), chesserrors.ErrEmptySquare},
		{"opponent piece", chess.NewMove(chess.E7, chess.E5), chesserrors.ErrWrongColour},
		{"off board origin", chess.NewMove(chess.NoSquare, chess.E5), chesserrors.ErrOutOfBounds},
		{"off board destination", chess.NewMove(chess.E2, chess.NoSquare), chesserrors.ErrOutOfBounds},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			pos := MustPositionFromFEN(InitialFEN)
			_, err := ApplyMove(&pos, tt.move)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ApplyMove(%v) error = %v, want %v", tt.move, err, tt.wantErr)
			}
		})
	}
}

func TestIsInCheck(t *testing.T) {
	tests := []struct {
		name        string
		fen         string
		colour      chess.Colour
		wantInCheck bool
	}{
		{"initial position white", InitialFEN, chess.White, false},
		{"initial position black", InitialFEN, chess.Black, false},
		{"scholar's mate", "r1bqkb1r/pppp1Qpp/2n2n2/4p3/2B1P3/8/PPPP1PPP/RNB1K1NR b KQkq - 0 4", chess.Black, true},
		{"rook on same rank", "8/8/8/8/8/8/8/r3K3 w - - 0 1", chess.White, true},
		{"bishop on diagonal", "8/8/8/8/8/8/3b4/4K3 w - - 0 1", chess.White, true},
		{"knight", "8/8/8/8/8/5n2/8/4K3 w - - 0 1", chess.White, true},
		{"black pawn attacks", "8/8/8/8/8/8/3p4/4K3 w - - 0 1", chess.White, true},
		{"pawn straight ahead does not attack", "8/8/8/8/8/8/4p3/4K3 w - - 0 1", chess.White, false},
		{"white pawn attacks black king", "8/8/8/8/8/3k4/4P3/8 b - - 0 1", chess.Black, true},
		{"blocked rook", "8/8/8/8/8/8/8/r1N1K3 w - - 0 1", chess.White, false},
		{"adjacent king", "8/8/8/8/8/8/3k4/4K3 w - - 0 1", chess.White, true},
		{"no king", "8/8/8/8/8/8/8/r7 w - - 0 1", chess.White, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			pos := MustPositionFromFEN(tt.fen)
			if got := IsInCheck(&pos, tt.colour); got != tt.wantInCheck {
				t.Errorf("IsInCheck(%v) = %v, want %v", tt.colour, got, tt.wantInCheck)
			}
		})
	}
}

func TestIsSquareAttacked(t *testing.T) {
	pos := MustPositionFromFEN(InitialFEN)

	tests := []struct {
		sq   chess.Square
		by   chess.Colour
		want bool
	}{
		{chess.F3, chess.White, true},
		{chess.E4, chess.White, false},
		{chess.F6, chess.Black, true},
		{chess.E5, chess.Black, false},
		{chess.D2, chess.White, true},
		{chess.A3, chess.White, true},
	}

	for _, tt := range tests {
		if got := IsSquareAttacked(&pos, tt.sq, tt.by); got != tt.want {
			t.Errorf("IsSquareAttacked(%v, %v) = %v, want %v", tt.sq, tt.by, got, tt.want)
		}
	}
}

func TestIsCheckmate(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want bool
	}{
		{"fool's mate", "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3", true},
		{"back rank mate", "6k1/5ppp/8/8/8/8/8/R5K1 b - - 0 1", false},
		{"back rank mate delivered", "R5k1/5ppp/8/8/8/8/8/6K1 b - - 0 1", true},
		{"check but escapable", "4k3/8/8/8/8/8/8/4K2r w - - 0 1", false},
		{"initial position", InitialFEN, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			pos := MustPositionFromFEN(tt.fen)
			if got := IsCheckmate(&pos); got != tt.want {
				t.Errorf("IsCheckmate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsStalemate(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want bool
	}{
		{"king in corner", "k7/2Q5/1K6/8/8/8/8/8 b - - 0 1", true},
		{"pawn blocked", "8/8/8/8/8/5k2/5p2/5K2 w - - 0 1", true},
		{"checkmate is not stalemate", "R5k1/5ppp/8/8/8/8/8/6K1 b - - 0 1", false},
		{"initial position", InitialFEN, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			pos := MustPositionFromFEN(tt.fen)
			if got := IsStalemate(&pos); got != tt.want {
				t.Errorf("IsStalemate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDirection(t *testing.T) {
	tests := []struct {
		from, to           chess.Square
		wantFile, wantRank int
	}{
		{chess.A1, chess.H8, 1, 1},
		{chess.E4, chess.E1, 0, -1},
		{chess.H3, chess.C3, -1, 0},
		{chess.D5, chess.D5, 0, 0},
	}
	for _, tt := range tests {
		file, rank := direction(tt.from, tt.to)
		if file != tt.wantFile || rank != tt.wantRank {
			t.Errorf("direction(%s, %s) = (%d, %d), want (%d, %d)", tt.from, tt.to, file, rank, tt.wantFile, tt.wantRank)
		}
	}
	if got := abs(-5); got != 5 {
		t.Errorf("abs(-5) = %d, want 5", got)
	}
}
