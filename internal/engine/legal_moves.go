package engine

import (
	"slices"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// MoveResult pairs a legal move with the position it produces.
type MoveResult struct {
	Move     chess.Move
	Position chess.Position
}

// MoveSet is the set of legal moves of a position, each with its resulting
// position, ordered by chess.Move.Key. A MoveSet is never modified after
// LegalMoves returns it.
type MoveSet struct {
	entries []MoveResult
}

// Len returns the number of legal moves.
func (s *MoveSet) Len() int {
	return len(s.entries)
}

// At returns the i-th entry in key order.
func (s *MoveSet) At(i int) MoveResult {
	return s.entries[i]
}

// Moves returns the legal moves in key order.
func (s *MoveSet) Moves() []chess.Move {
	moves := make([]chess.Move, len(s.entries))
	for i, e := range s.entries {
		moves[i] = e.Move
	}
	return moves
}

// Result returns the position reached by move, if move is legal.
func (s *MoveSet) Result(move chess.Move) (chess.Position, bool) {
	i, found := slices.BinarySearchFunc(s.entries, move, func(e MoveResult, m chess.Move) int {
		return e.Move.Compare(m)
	})
	if !found {
		return chess.Position{}, false
	}
	return s.entries[i].Position, true
}

// Contains reports whether move is legal.
func (s *MoveSet) Contains(move chess.Move) bool {
	_, ok := s.Result(move)
	return ok
}

// PseudoLegalMoves generates every move of the side to move that obeys the
// piece movement rules, without checking whether the mover's king is left
// attacked. Castling is only generated when fully legal.
func PseudoLegalMoves(pos *chess.Position) []chess.Move {
	moves := make([]chess.Move, 0, 48)
	for sq := chess.A1; sq < chess.NoSquare; sq++ {
		piece := pos.PieceAt(sq)
		if piece.IsEmpty() || piece.Colour != pos.ToMove {
			continue
		}
		moves = pieceMoves(pos, sq, piece, moves)
	}
	return moves
}

// LegalMoves returns the legal moves of pos: the pseudo-legal moves after
// which the mover's own king is not in check.
func LegalMoves(pos *chess.Position) *MoveSet {
	colour := pos.ToMove
	pseudo := PseudoLegalMoves(pos)

	set := &MoveSet{entries: make([]MoveResult, 0, len(pseudo))}
	for _, move := range pseudo {
		next, err := ApplyMove(pos, move)
		if err != nil {
			continue
		}
		if IsInCheck(&next, colour) {
			continue
		}
		set.entries = append(set.entries, MoveResult{Move: move, Position: next})
	}

	slices.SortFunc(set.entries, func(a, b MoveResult) int {
		return a.Move.Compare(b.Move)
	})
	return set
}

// HasLegalMoves returns true if the side to move has at least one legal move.
func HasLegalMoves(pos *chess.Position) bool {
	colour := pos.ToMove
	for _, move := range PseudoLegalMoves(pos) {
		next, err := ApplyMove(pos, move)
		if err == nil && !IsInCheck(&next, colour) {
			return true
		}
	}
	return false
}
