package engine

import (
	"errors"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	chesserrors "github.com/lgbarn/chessrules-go/internal/errors"
)

func TestNewPositionFromFEN(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		checkFn func(*chess.Position) bool
	}{
		{
			name: "initial position",
			fen:  InitialFEN,
			checkFn: func(p *chess.Position) bool {
				return p.PieceAt(chess.E1) == chess.W(chess.King) &&
					p.PieceAt(chess.E8) == chess.B(chess.King) &&
					p.PieceAt(chess.E2) == chess.W(chess.Pawn) &&
					p.PieceAt(chess.E7) == chess.B(chess.Pawn) &&
					p.ToMove == chess.White &&
					p.Castling == chess.AllCastlingRights &&
					p.EnPassant == chess.NoSquare
			},
		},
		{
			name: "after 1.e4",
			fen:  "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
			checkFn: func(p *chess.Position) bool {
				return p.PieceAt(chess.E4) == chess.W(chess.Pawn) &&
					p.IsEmpty(chess.E2) &&
					p.ToMove == chess.Black &&
					p.EnPassant == chess.E3
			},
		},
		{
			name: "no castling rights",
			fen:  "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w - - 0 1",
			checkFn: func(p *chess.Position) bool {
				return !p.Castling.Any()
			},
		},
		{
			name: "clocks",
			fen:  "8/8/8/8/8/8/8/4K2k w - - 37 112",
			checkFn: func(p *chess.Position) bool {
				return p.HalfmoveClock == 37 && p.MoveNumber == 112
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			pos, err := NewPositionFromFEN(tt.fen)
			if err != nil {
				t.Fatalf("NewPositionFromFEN() error = %v", err)
			}
			if !tt.checkFn(&pos) {
				t.Errorf("NewPositionFromFEN(%q) position check failed", tt.fen)
			}
		})
	}
}

func TestNewPositionFromFENErrors(t *testing.T) {
	tests := []struct {
		name      string
		fen       string
		wantField string
	}{
		{"empty string", "", FieldCount},
		{"five fields", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0", FieldCount},
		{"seven fields", InitialFEN + " extra", FieldCount},
		{"seven ranks", "rnbqkbnr/pppppppp/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", FieldPlacement},
		{"short rank", "rnbqkbnr/ppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", FieldPlacement},
		{"long rank", "rnbqkbnr/pppppppp/9/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", FieldPlacement},
		{"overflowing rank", "rnbqkbnrp/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", FieldPlacement},
		{"bad piece letter", "rnbqkbnr/pppppppp/8/8/3X4/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", FieldPlacement},
		{"bad colour", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1", FieldColour},
		{"bad castling letter", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkx - 0 1", FieldCastling},
		{"castling out of order", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w QKkq - 0 1", FieldCastling},
		{"castling repeated", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KKkq - 0 1", FieldCastling},
		{"bad en passant", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq e9 0 1", FieldEnPassant},
		{"negative halfmove", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - -1 1", FieldHalfmove},
		{"non-numeric halfmove", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - x 1", FieldHalfmove},
		{"non-numeric fullmove", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 one", FieldFullmove},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := NewPositionFromFEN(tt.fen)
			if err == nil {
				t.Fatalf("NewPositionFromFEN(%q) succeeded; want error", tt.fen)
			}
			if !errors.Is(err, chesserrors.ErrInvalidFEN) {
				t.Errorf("error = %v; want ErrInvalidFEN", err)
			}
			var fenErr *chesserrors.FENError
			if !errors.As(err, &fenErr) {
				t.Fatalf("error %v is not a *FENError", err)
			}
			if fenErr.Field != tt.wantField {
				t.Errorf("FENError.Field = %q; want %q", fenErr.Field, tt.wantField)
			}
		})
	}
}

func TestPositionToFENRoundTrip(t *testing.T) {
	tests := []string{
		InitialFEN,
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		"r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1",
		"r3k2r/8/8/8/8/8/8/R3K2R b Kq - 12 40",
		"8/8/8/8/8/8/8/4K3 w - - 0 1",
		"8/8/8/8/8/8/8/8 w - - 0 0",
	}

	for _, fen := range tests {
		fen := fen
		t.Run(fen, func(t *testing.T) {
			t.Parallel()
			pos, err := NewPositionFromFEN(fen)
			if err != nil {
				t.Fatalf("NewPositionFromFEN() error = %v", err)
			}
			if got := PositionToFEN(&pos); got != fen {
				t.Errorf("PositionToFEN() = %q; want %q", got, fen)
			}
		})
	}
}

func TestInitialFENMatchesSetup(t *testing.T) {
	want := chess.NewInitialPosition()
	got := MustPositionFromFEN(InitialFEN)
	if got != want {
		t.Errorf("MustPositionFromFEN(InitialFEN) differs from chess.NewInitialPosition()")
	}
}
