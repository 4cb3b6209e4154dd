package chess

import (
	"errors"
	"testing"

	chesserrors "github.com/lgbarn/chessrules-go/internal/errors"
)

func TestSquareCoordinates(t *testing.T) {
	tests := []struct {
		sq         Square
		file, rank int
		name       string
	}{
		{A1, 0, 0, "a1"},
		{H1, 7, 0, "h1"},
		{E4, 4, 3, "e4"},
		{A8, 0, 7, "a8"},
		{H8, 7, 7, "h8"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.sq.File() != tt.file || tt.sq.Rank() != tt.rank {
				t.Errorf("%v = (%d,%d); want (%d,%d)", tt.sq, tt.sq.File(), tt.sq.Rank(), tt.file, tt.rank)
			}
			if got := tt.sq.String(); got != tt.name {
				t.Errorf("String() = %q; want %q", got, tt.name)
			}
			parsed, err := ParseSquare(tt.name)
			if err != nil || parsed != tt.sq {
				t.Errorf("ParseSquare(%q) = %v, %v; want %v", tt.name, parsed, err, tt.sq)
			}
			at, err := SquareAt(tt.file, tt.rank)
			if err != nil || at != tt.sq {
				t.Errorf("SquareAt(%d, %d) = %v, %v; want %v", tt.file, tt.rank, at, err, tt.sq)
			}
		})
	}

	if NoSquare.String() != "-" {
		t.Errorf("NoSquare.String() = %q; want %q", NoSquare.String(), "-")
	}
}

func TestParseSquareInvalid(t *testing.T) {
	for _, name := range []string{"", "e", "e9", "i1", "E4", "e44", "-"} {
		if _, err := ParseSquare(name); !errors.Is(err, chesserrors.ErrInvalidSquare) {
			t.Errorf("ParseSquare(%q) error = %v; want ErrInvalidSquare", name, err)
		}
	}
}

func TestSquareColour(t *testing.T) {
	tests := []struct {
		sq   Square
		want Colour
	}{
		{A1, Black},
		{H1, White},
		{A8, White},
		{H8, Black},
		{D1, White},
		{E1, Black},
	}
	for _, tt := range tests {
		if got := tt.sq.Colour(); got != tt.want {
			t.Errorf("%v.Colour() = %v; want %v", tt.sq, got, tt.want)
		}
	}
}

func TestSquareOffset(t *testing.T) {
	if got, ok := E4.Offset(1, 2); !ok || got != F6 {
		t.Errorf("E4.Offset(1, 2) = %v, %v; want f6, true", got, ok)
	}
	if _, ok := H4.Offset(1, 0); ok {
		t.Error("H4.Offset(1, 0) should fall off the board")
	}
	if _, ok := A1.Offset(0, -1); ok {
		t.Error("A1.Offset(0, -1) should fall off the board")
	}
}
