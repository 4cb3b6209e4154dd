package game

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/hashing"
)

// Turn is one entry of a game's history: the move that produced it, the
// resulting position, its legal moves with their texts, and its state.
//
// A Turn is never modified after construction. An externally signalled
// result produces a new Turn that replaces the last one in the history, so
// readers holding an older *Turn keep seeing a consistent snapshot.
type Turn struct {
	move     chess.Move
	hasMove  bool
	position chess.Position
	hash     uint64
	legal    *engine.MoveSet
	texts    *engine.Notation
	state    TurnState
	forced   bool
	loser    chess.Colour
}

// newTurn builds the turn reached by move (nil for the first turn) and
// classifies its position.
func newTurn(move *chess.Move, pos chess.Position, rules *config.RulesConfig) *Turn {
	t := &Turn{
		position: pos,
		hash:     hashing.Hash(&pos),
	}
	if move != nil {
		t.move = *move
		t.hasMove = true
	}
	t.legal = engine.LegalMoves(&t.position)
	t.texts = engine.MoveTexts(&t.position, t.legal)
	t.state = classify(&t.position, t.legal.Len() > 0, rules)
	return t
}

// classify computes the state of a position. Checkmate and stalemate take
// precedence over the draw rules, which take precedence over check.
func classify(pos *chess.Position, hasMoves bool, rules *config.RulesConfig) TurnState {
	inCheck := engine.IsInCheck(pos, pos.ToMove)
	switch {
	case inCheck && !hasMoves:
		return Checkmate
	case !hasMoves:
		return Stalemate
	case engine.IsFiftyMoveDraw(pos, rules.FiftyMoveThreshold):
		return DrawByFiftyMoveRule
	case engine.HasInsufficientMaterial(pos):
		return DrawByInsufficientMaterial
	case inCheck:
		return Check
	}
	return Play
}

// withRepetition returns a copy of t drawn by repetition. Terminal turns
// are returned unchanged.
func (t *Turn) withRepetition() *Turn {
	if t.state.IsGameOver() {
		return t
	}
	next := *t
	next.state = DrawByRepetition
	return &next
}

// withForcedState returns a copy of t carrying an externally signalled
// state. loser is the side that lost, where the state has one.
func (t *Turn) withForcedState(state TurnState, loser chess.Colour) (*Turn, error) {
	if !state.isForcible() {
		return nil, fmt.Errorf("%s cannot be signalled: %w", state, errors.ErrInvalidState)
	}
	if t.state.IsGameOver() {
		return nil, fmt.Errorf("turn is already %s: %w", t.state, errors.ErrGameOver)
	}
	next := *t
	next.state = state
	next.forced = true
	next.loser = loser
	return &next, nil
}

// Move returns the move that produced this turn; ok is false for the first
// turn of a game.
func (t *Turn) Move() (move chess.Move, ok bool) {
	return t.move, t.hasMove
}

// Position returns a copy of the turn's position.
func (t *Turn) Position() chess.Position {
	return t.position
}

// FEN returns the FEN of the turn's position.
func (t *Turn) FEN() string {
	return engine.PositionToFEN(&t.position)
}

// Hash returns the Zobrist hash of the turn's position.
func (t *Turn) Hash() uint64 {
	return t.hash
}

// LegalMoves returns the legal moves and their resulting positions.
func (t *Turn) LegalMoves() *engine.MoveSet {
	return t.legal
}

// Notation returns the move text codec of this turn.
func (t *Turn) Notation() *engine.Notation {
	return t.texts
}

// MoveTexts returns a copy of the mapping from move text to legal move.
func (t *Turn) MoveTexts() map[string]chess.Move {
	return t.texts.Texts()
}

// SortedMoveTexts returns every legal move text in lexical order.
func (t *Turn) SortedMoveTexts() []string {
	return t.texts.SortedTexts()
}

// MoveText returns the text of a legal move of this turn.
func (t *Turn) MoveText(move chess.Move) (string, bool) {
	return t.texts.Text(move)
}

// State returns the classification of the turn.
func (t *Turn) State() TurnState {
	return t.state
}

// IsForced reports whether the state was signalled rather than computed.
func (t *Turn) IsForced() bool {
	return t.forced
}

// InCheck reports whether the side to move is in check.
func (t *Turn) InCheck() bool {
	return engine.IsInCheck(&t.position, t.position.ToMove)
}

// Winner returns the winning side. ok is false while the game continues
// and for draws. Checkmate is won by the side that just moved; the other
// decisive states are won by the opponent of the recorded loser.
func (t *Turn) Winner() (winner chess.Colour, ok bool) {
	switch t.state {
	case Checkmate:
		return t.position.ToMove.Opposite(), true
	case Timeout, Resignation, Abandoned:
		return t.loser.Opposite(), true
	}
	return chess.White, false
}
