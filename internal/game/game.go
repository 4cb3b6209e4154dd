package game

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/hashing"
)

// AnalysisURLPrefix is the lichess endpoint that replays a move list.
const AnalysisURLPrefix = "https://lichess.org/analysis/pgn/"

// Game is an append-only history of turns with a cursor on the last one.
// A Game is owned by one goroutine at a time; the turns it hands out are
// immutable and may be shared freely.
type Game struct {
	id          uuid.UUID
	cfg         *config.Config
	log         zerolog.Logger
	now         func() time.Time
	turns       []*Turn
	repetitions *hashing.RepetitionTable

	// Metadata is used for PGN export only.
	Metadata Metadata
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger. The default discards everything.
func WithLogger(log zerolog.Logger) Option {
	return func(g *Game) {
		g.log = log
	}
}

// WithConfig sets the rule thresholds, output options and default metadata.
func WithConfig(cfg *config.Config) Option {
	return func(g *Game) {
		g.cfg = cfg
	}
}

// WithClock sets the source of the game date.
func WithClock(now func() time.Time) Option {
	return func(g *Game) {
		g.now = now
	}
}

// New creates a game at the standard starting position.
func New(opts ...Option) *Game {
	g := &Game{
		id:  uuid.New(),
		cfg: config.NewConfig(),
		log: zerolog.Nop(),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	g.log = g.log.With().Str("game", g.id.String()).Logger()
	g.Initialize()
	return g
}

// NewFromFEN creates a game starting at the given position.
func NewFromFEN(fen string, opts ...Option) (*Game, error) {
	g := New(opts...)
	if err := g.LoadFEN(fen); err != nil {
		return nil, err
	}
	return g, nil
}

// ID returns the game's unique identifier.
func (g *Game) ID() uuid.UUID {
	return g.id
}

// Config returns the game's configuration.
func (g *Game) Config() *config.Config {
	return g.cfg
}

// Initialize starts a new game from the standard starting position.
func (g *Game) Initialize() {
	g.reset(chess.NewInitialPosition())
}

// LoadFEN starts a new game from a FEN position. On error the game is
// left unchanged.
func (g *Game) LoadFEN(fen string) error {
	pos, err := engine.NewPositionFromFEN(fen)
	if err != nil {
		return err
	}
	g.reset(pos)
	return nil
}

// reset replaces the history with a single turn at pos.
func (g *Game) reset(pos chess.Position) {
	first := newTurn(nil, pos, g.cfg.Rules)
	g.turns = []*Turn{first}
	g.repetitions = hashing.NewRepetitionTable()
	g.repetitions.Add(&first.position)
	g.Metadata = newMetadata(g.cfg.Metadata, g.now())
	g.log.Debug().Str("fen", first.FEN()).Str("state", first.state.String()).Msg("game started")
}

// CurrentTurn returns the last turn of the history.
func (g *Game) CurrentTurn() *Turn {
	return g.turns[len(g.turns)-1]
}

// CurrentBoard returns a copy of the current position.
func (g *Game) CurrentBoard() chess.Position {
	return g.CurrentTurn().position
}

// FEN returns the FEN of the current position.
func (g *Game) FEN() string {
	return g.CurrentTurn().FEN()
}

// StartFEN returns the FEN of the first position.
func (g *Game) StartFEN() string {
	return g.turns[0].FEN()
}

// Turns returns the history, first turn first.
func (g *Game) Turns() []*Turn {
	return append([]*Turn(nil), g.turns...)
}

// PlyCount returns the number of moves played.
func (g *Game) PlyCount() int {
	return len(g.turns) - 1
}

// NextMove returns the move played from the turn at index.
func (g *Game) NextMove(index int) (chess.Move, bool) {
	if index < 0 || index+1 >= len(g.turns) {
		return chess.Move{}, false
	}
	return g.turns[index+1].Move()
}

// Moves returns the moves played, in order.
func (g *Game) Moves() []chess.Move {
	moves := make([]chess.Move, 0, g.PlyCount())
	for _, t := range g.turns[1:] {
		moves = append(moves, t.move)
	}
	return moves
}

// MoveTexts returns the move text of every move played, in order.
func (g *Game) MoveTexts() []string {
	texts := make([]string, 0, g.PlyCount())
	for i, t := range g.turns[1:] {
		text, _ := g.turns[i].MoveText(t.move)
		texts = append(texts, text)
	}
	return texts
}

// Move plays a move. It returns false, leaving the game unchanged, when the
// game is over or the move is not legal.
func (g *Game) Move(move chess.Move) bool {
	return g.TryMove(move) == nil
}

// TryMove plays a move, reporting why it was rejected: ErrGameOver or
// ErrIllegalMove.
func (g *Game) TryMove(move chess.Move) error {
	current := g.CurrentTurn()
	if current.state.IsGameOver() {
		g.log.Debug().Str("move", move.String()).Str("state", current.state.String()).Msg("move rejected: game over")
		return fmt.Errorf("move %s: %w", move, errors.ErrGameOver)
	}
	next, ok := current.legal.Result(move)
	if !ok {
		g.log.Debug().Str("move", move.String()).Str("fen", current.FEN()).Msg("move rejected: illegal")
		return fmt.Errorf("move %s: %w", move, errors.ErrIllegalMove)
	}

	text, _ := current.MoveText(move)
	turn := newTurn(&move, next, g.cfg.Rules)
	if count := g.repetitions.Add(&turn.position); count >= g.cfg.Rules.RepetitionThreshold {
		turn = turn.withRepetition()
	}
	g.turns = append(g.turns, turn)

	g.log.Debug().
		Str("move", move.String()).
		Str("san", text).
		Str("fen", turn.FEN()).
		Msg("move played")
	if turn.state.IsGameOver() {
		g.logResult(turn)
	}
	return nil
}

// MoveText plays the move with the given text. Check marks and annotation
// glyphs are optional.
func (g *Game) MoveText(text string) bool {
	return g.TryMoveText(text) == nil
}

// TryMoveText plays the move with the given text, reporting why it failed.
func (g *Game) TryMoveText(text string) error {
	current := g.CurrentTurn()
	if current.state.IsGameOver() {
		return fmt.Errorf("move %q: %w", text, errors.ErrGameOver)
	}
	move, ok := current.texts.Resolve(text)
	if !ok {
		g.log.Debug().Str("text", text).Str("fen", current.FEN()).Msg("move rejected: unknown text")
		return fmt.Errorf("move %q: %w", text, errors.ErrIllegalMove)
	}
	return g.TryMove(move)
}

// force replaces the current turn with one carrying a signalled state.
func (g *Game) force(state TurnState, loser chess.Colour) error {
	last := len(g.turns) - 1
	turn, err := g.turns[last].withForcedState(state, loser)
	if err != nil {
		return err
	}
	g.turns[last] = turn
	g.logResult(turn)
	return nil
}

// Resign ends the game with colour resigning.
func (g *Game) Resign(colour chess.Colour) error {
	return g.force(Resignation, colour)
}

// Abandon ends the game with colour having left it.
func (g *Game) Abandon(colour chess.Colour) error {
	return g.force(Abandoned, colour)
}

// AgreeDraw ends the game drawn by agreement.
func (g *Game) AgreeDraw() error {
	return g.force(DrawByAgreement, chess.White)
}

// DeclareRepetition ends the game drawn by repetition on a claim made
// outside the automatic count.
func (g *Game) DeclareRepetition() error {
	return g.force(DrawByRepetition, chess.White)
}

// Timeout ends the game with loser out of time. It is scored as a draw
// when the opponent has no mating material left.
func (g *Game) Timeout(loser chess.Colour) error {
	pos := g.CurrentBoard()
	if engine.IsTimeoutDraw(&pos, loser.Opposite()) {
		return g.force(TimeoutDraw, loser)
	}
	return g.force(Timeout, loser)
}

// logResult logs a terminal turn.
func (g *Game) logResult(turn *Turn) {
	event := g.log.Info().Str("state", turn.state.String()).Bool("forced", turn.forced)
	if winner, ok := turn.Winner(); ok {
		event = event.Str("winner", winner.String())
	}
	event.Msg("game over")
}

// Winner returns the winning side of a finished game.
func (g *Game) Winner() (chess.Colour, bool) {
	return g.CurrentTurn().Winner()
}

// Result returns the PGN result token.
func (g *Game) Result() string {
	turn := g.CurrentTurn()
	switch {
	case !turn.state.IsGameOver():
		return chess.InProgress
	case turn.state.IsDraw():
		return chess.Draw
	}
	if winner, _ := turn.Winner(); winner == chess.White {
		return chess.WhiteWins
	}
	return chess.BlackWins
}

// AnalysisURL returns a lichess link that replays the moves played.
func (g *Game) AnalysisURL() string {
	texts := g.MoveTexts()
	for i, text := range texts {
		texts[i] = strings.ReplaceAll(text, "#", "")
	}
	return AnalysisURLPrefix + strings.Join(texts, "_")
}
