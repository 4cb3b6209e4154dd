// Package eco provides ECO (Encyclopaedia of Chess Openings) classification.
package eco

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chessrules-go/internal/game"
	"github.com/lgbarn/chessrules-go/internal/output"
	"github.com/lgbarn/chessrules-go/internal/parser"
)

// HalfMoveLimit is the maximum distance in plies between a game position
// and an ECO line for a transposed match.
const HalfMoveLimit = 6

// Entry is a single ECO classification line.
type Entry struct {
	Code         string // e.g. "B33"
	Opening      string // e.g. "Sicilian"
	Variation    string // e.g. "Sveshnikov"
	SubVariation string

	hash       uint64 // Zobrist hash of the final position of the line
	cumulative uint64 // XOR of the hashes of every position of the line
	plies      int
}

// Classifier maps game positions onto ECO lines.
type Classifier struct {
	table    map[uint64][]*Entry
	maxPlies int
	loaded   int
}

// NewClassifier creates an empty classifier.
func NewClassifier() *Classifier {
	return &Classifier{
		table:    make(map[uint64][]*Entry),
		maxPlies: HalfMoveLimit,
	}
}

// LoadFromFile loads ECO lines from a PGN file.
func (c *Classifier) LoadFromFile(filename string) error {
	file, err := os.Open(filename) //nolint:gosec // G304: CLI tool opens user-specified files
	if err != nil {
		return fmt.Errorf("cannot open ECO file: %w", err)
	}
	defer file.Close()

	return c.LoadFromReader(file)
}

// LoadFromReader loads ECO lines from PGN text. Each game carries an ECO
// tag and optional Opening, Variation and SubVariation tags.
func (c *Classifier) LoadFromReader(r io.Reader) error {
	games, err := parser.NewParser(r).ParseAllGames()
	if err != nil {
		return fmt.Errorf("error parsing ECO file: %w", err)
	}

	for _, pgn := range games {
		if err := c.add(pgn); err != nil {
			return fmt.Errorf("ECO line %s (line %d): %w", pgn.GetTag("ECO"), pgn.StartLine, err)
		}
	}
	return nil
}

// add replays one ECO line and stores its final position.
func (c *Classifier) add(pgn *parser.Game) error {
	code := pgn.GetTag("ECO")
	if code == "" {
		return nil
	}

	g, err := game.Replay(pgn)
	if err != nil {
		return err
	}
	hash, cumulative, plies := lineHashes(g, g.PlyCount())
	if plies == 0 {
		return nil
	}

	for _, existing := range c.table[hash] {
		if existing.plies == plies && existing.cumulative == cumulative {
			return nil // First line wins
		}
	}

	c.table[hash] = append(c.table[hash], &Entry{
		Code:         code,
		Opening:      pgn.GetTag("Opening"),
		Variation:    pgn.GetTag("Variation"),
		SubVariation: pgn.GetTag("SubVariation"),
		hash:         hash,
		cumulative:   cumulative,
		plies:        plies,
	})
	c.loaded++

	if plies+HalfMoveLimit > c.maxPlies {
		c.maxPlies = plies + HalfMoveLimit
	}
	return nil
}

// lineHashes returns the hash of the position after limit plies of g, the
// XOR of every position hash up to it, and the plies actually available.
func lineHashes(g *game.Game, limit int) (hash, cumulative uint64, plies int) {
	for _, turn := range g.Turns()[1:] {
		if plies == limit {
			break
		}
		hash = turn.Hash()
		cumulative ^= hash
		plies++
	}
	return hash, cumulative, plies
}

// Classify returns the deepest ECO line reached by g, or nil.
func (c *Classifier) Classify(g *game.Game) *Entry {
	if c.loaded == 0 {
		return nil
	}

	var (
		best       *Entry
		cumulative uint64
	)
	for plies, turn := range g.Turns()[1:] {
		if plies >= c.maxPlies {
			break
		}
		cumulative ^= turn.Hash()
		if match := c.find(turn.Hash(), cumulative, plies+1); match != nil {
			best = match
		}
	}
	return best
}

// find looks up a position. An exact line match is preferred over a
// transposition within HalfMoveLimit plies.
func (c *Classifier) find(hash, cumulative uint64, plies int) *Entry {
	var possible *Entry
	for _, entry := range c.table[hash] {
		if entry.plies == plies && entry.cumulative == cumulative {
			return entry
		}
		if abs(plies-entry.plies) <= HalfMoveLimit {
			possible = entry
		}
	}
	return possible
}

// AddTags classifies g and appends ECO, Opening, Variation and SubVariation
// tags to rec. It reports whether a line matched.
func (c *Classifier) AddTags(rec *output.Record, g *game.Game) bool {
	match := c.Classify(g)
	if match == nil {
		return false
	}

	for _, tag := range []output.Tag{
		{Name: "ECO", Value: match.Code},
		{Name: "Opening", Value: match.Opening},
		{Name: "Variation", Value: match.Variation},
		{Name: "SubVariation", Value: match.SubVariation},
	} {
		if tag.Value != "" && rec.GetTag(tag.Name) == "" {
			rec.Tags = append(rec.Tags, tag)
		}
	}
	return true
}

// EntriesLoaded returns the number of ECO lines loaded.
func (c *Classifier) EntriesLoaded() int {
	return c.loaded
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
