// Package output provides game output formatting in PGN and JSON.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
)

// Record is the output view of one game: its tags in order, its moves and
// its outcome.
type Record struct {
	Tags       []Tag
	Moves      []MoveEntry
	Result     string
	InitialFEN string // empty for the standard starting position
	FinalFEN   string
	State      string
}

// Tag is one PGN tag pair.
type Tag struct {
	Name  string
	Value string
}

// MoveEntry is one ply of a game.
type MoveEntry struct {
	Number int          // full-move number of the position the move was played from
	Colour chess.Colour // side that played the move
	SAN    string
	UCI    string
}

// GetTag returns the value of the named tag, or "".
func (r *Record) GetTag(name string) string {
	for _, tag := range r.Tags {
		if tag.Name == name {
			return tag.Value
		}
	}
	return ""
}

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewOutputWriter creates a new output writer. A maxLineLength of 0 or less
// disables wrapping.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a string, adding a space separator if needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.maxLineLength > 0 && o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// OutputGame writes a game as PGN: the seven tag roster, any other tags,
// a blank line, the movetext and a blank line.
func OutputGame(rec *Record, cfg *config.Config, w io.Writer) {
	outputTags(rec, w)
	fmt.Fprintln(w)
	outputMoves(rec, cfg.Output, w)
	fmt.Fprintln(w)
}

// outputTags outputs the game tags, seven tag roster first.
func outputTags(rec *Record, w io.Writer) {
	for _, tag := range chess.SevenTagRoster {
		value := rec.GetTag(tag)
		if value == "" {
			value = "?"
		}
		fmt.Fprintf(w, "[%s \"%s\"]\n", tag, escapeTagValue(value))
	}

	for _, tag := range rec.Tags {
		if !chess.IsSevenTagRosterTag(tag.Name) {
			fmt.Fprintf(w, "[%s \"%s\"]\n", tag.Name, escapeTagValue(tag.Value))
		}
	}
}

// escapeTagValue escapes special characters in tag values.
func escapeTagValue(s string) string {
	// Fast path: if no escaping needed, return original string
	if !strings.ContainsAny(s, "\\\"\n") {
		return s
	}
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	s = strings.ReplaceAll(s, "\n", " ")
	return s
}

// outputMoves outputs the movetext and the result token.
func outputMoves(rec *Record, cfg *config.OutputConfig, w io.Writer) {
	ow := NewOutputWriter(w, int(cfg.MaxLineLength))

	for i, move := range rec.Moves {
		if cfg.KeepMoveNumbers {
			if move.Colour == chess.White {
				ow.Write(fmt.Sprintf("%d.", move.Number))
			} else if i == 0 {
				ow.Write(fmt.Sprintf("%d...", move.Number))
			}
		}

		text := move.SAN
		if !cfg.KeepChecks {
			text = strings.TrimRight(text, "+#")
		}
		ow.Write(text)
	}

	if cfg.KeepResults {
		result := rec.Result
		if result == "" {
			result = chess.InProgress
		}
		ow.Write(result)
	}
	if ow.lineLength > 0 {
		ow.NewLine()
	}
}

// FormatPGN renders a record as PGN text.
func FormatPGN(rec *Record, cfg *config.Config) string {
	var sb strings.Builder
	OutputGame(rec, cfg, &sb)
	return sb.String()
}
