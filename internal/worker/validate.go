package worker

import (
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/game"
	"github.com/lgbarn/chessrules-go/internal/hashing"
)

// NewValidator returns a ValidateFunc that replays each job into a fresh
// game. When seen is not nil, the final position of every game that
// replays is recorded in it.
func NewValidator(cfg *config.Config, seen *hashing.ThreadSafeRepetitionTable, opts ...game.Option) ValidateFunc {
	opts = append([]game.Option{game.WithConfig(cfg)}, opts...)
	return func(job Job) Outcome {
		g := game.New(opts...)
		if err := g.LoadPGN(job.Text); err != nil {
			return Outcome{Index: job.Index, Err: err}
		}
		if seen != nil {
			pos := g.CurrentBoard()
			seen.Add(&pos)
		}
		return Outcome{Index: job.Index, Game: g, Record: g.Record()}
	}
}

// ValidateAll replays every text on a pool and returns the outcomes in
// input order.
func ValidateAll(texts []string, validate ValidateFunc, opts ...PoolOption) []Outcome {
	pool := NewPool(validate, opts...)
	pool.Start()

	go func() {
		for i, text := range texts {
			pool.Submit(Job{Text: text, Index: i})
		}
		pool.Close()
	}()

	outcomes := make([]Outcome, len(texts))
	for out := range pool.Outcomes() {
		outcomes[out.Index] = out
	}
	return outcomes
}
