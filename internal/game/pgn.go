package game

import (
	"fmt"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/output"
	"github.com/lgbarn/chessrules-go/internal/parser"
)

// Record returns the output view of the game.
func (g *Game) Record() *output.Record {
	result := g.Result()
	rec := &output.Record{
		Tags: []output.Tag{
			{Name: "Event", Value: g.Metadata.Event},
			{Name: "Site", Value: g.Metadata.Site},
			{Name: "Date", Value: g.Metadata.DateTag()},
			{Name: "Round", Value: strconv.Itoa(g.Metadata.Round)},
			{Name: "White", Value: g.Metadata.White},
			{Name: "Black", Value: g.Metadata.Black},
			{Name: "Result", Value: result},
		},
		Result:   result,
		FinalFEN: g.FEN(),
		State:    g.CurrentTurn().state.String(),
	}

	if start := g.StartFEN(); start != engine.InitialFEN {
		rec.InitialFEN = start
		rec.Tags = append(rec.Tags,
			output.Tag{Name: chess.TagNameStrings[chess.SetupTag], Value: "1"},
			output.Tag{Name: chess.TagNameStrings[chess.FENTag], Value: start},
		)
	}

	if state := g.CurrentTurn().state; state.IsGameOver() {
		rec.Tags = append(rec.Tags, output.Tag{Name: chess.TagNameStrings[chess.TerminationTag], Value: state.Description()})
	}

	for i, t := range g.turns[1:] {
		from := &g.turns[i].position
		text, _ := g.turns[i].MoveText(t.move)
		rec.Moves = append(rec.Moves, output.MoveEntry{
			Number: from.MoveNumber,
			Colour: from.ToMove,
			SAN:    text,
			UCI:    t.move.String(),
		})
	}
	return rec
}

// ToPGN returns the game as PGN text.
func (g *Game) ToPGN() string {
	return output.FormatPGN(g.Record(), g.cfg)
}

// LoadPGN replaces the game with the first game in text. The game is only
// replaced when every move replays; on error it is left unchanged.
func (g *Game) LoadPGN(text string) error {
	pgn, err := parser.ParseString(text)
	if err != nil {
		g.log.Warn().Err(err).Msg("PGN load failed")
		return err
	}

	scratch, err := g.replay(pgn)
	if err != nil {
		g.log.Warn().Err(err).Msg("PGN load failed")
		return err
	}

	g.adopt(scratch)
	g.log.Debug().Int("plies", g.PlyCount()).Str("fen", g.FEN()).Msg("PGN loaded")
	return nil
}

// Replay builds a new game from a parsed PGN game.
func Replay(pgn *parser.Game, opts ...Option) (*Game, error) {
	g := New(opts...)
	scratch, err := g.replay(pgn)
	if err != nil {
		return nil, err
	}
	g.adopt(scratch)
	return g, nil
}

// adopt takes over the history and metadata of a replayed game.
func (g *Game) adopt(scratch *Game) {
	g.turns = scratch.turns
	g.repetitions = scratch.repetitions
	g.Metadata = scratch.Metadata
}

// replay builds a fresh game from a parsed PGN game.
func (g *Game) replay(pgn *parser.Game) (*Game, error) {
	scratch := &Game{
		id:  g.id,
		cfg: g.cfg,
		log: zerolog.Nop(),
		now: g.now,
	}

	if fen := pgn.GetTag(chess.TagNameStrings[chess.FENTag]); fen != "" {
		if err := scratch.LoadFEN(fen); err != nil {
			return nil, err
		}
	} else {
		scratch.Initialize()
	}

	for _, name := range pgn.TagOrder {
		scratch.Metadata.applyTag(name, pgn.GetTag(name))
	}

	for _, ply := range pgn.Moves {
		pos := scratch.CurrentBoard()
		if ply.Number != 0 && ply.Number != pos.MoveNumber {
			return nil, &errors.MoveError{
				Err:        fmt.Errorf("line %d: move number %d, expected %d: %w", ply.Line, ply.Number, pos.MoveNumber, errors.ErrParseFailure),
				MoveNumber: pos.MoveNumber,
				Colour:     pos.ToMove.String(),
				Token:      ply.Text,
			}
		}
		if cause := scratch.replayPly(ply); cause != nil {
			return nil, &errors.MoveError{
				Err:        fmt.Errorf("line %d: %w", ply.Line, cause),
				MoveNumber: pos.MoveNumber,
				Colour:     pos.ToMove.String(),
				Token:      ply.Text,
			}
		}
	}

	if err := scratch.applyResult(pgn.Result); err != nil {
		return nil, err
	}
	return scratch, nil
}

// replayPly plays one parsed move.
func (g *Game) replayPly(ply parser.Ply) error {
	current := g.CurrentTurn()
	if current.state.IsGameOver() {
		return errors.ErrGameOver
	}
	move, ok := current.texts.Resolve(ply.Text)
	if !ok {
		return errors.ErrIllegalMove
	}
	return g.TryMove(move)
}

// applyResult records a decisive or drawn result token on a game whose
// moves did not end it: the side that lost resigned, or the players agreed
// a draw. A game already over keeps its own result.
func (g *Game) applyResult(result string) error {
	if g.CurrentTurn().state.IsGameOver() {
		return nil
	}
	switch result {
	case chess.WhiteWins:
		return g.Resign(chess.Black)
	case chess.BlackWins:
		return g.Resign(chess.White)
	case chess.Draw:
		return g.AgreeDraw()
	}
	return nil
}
