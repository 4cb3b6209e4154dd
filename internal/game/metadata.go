package game

import (
	"strconv"
	"time"

	"github.com/lgbarn/chessrules-go/internal/config"
)

// DateFormat is the layout of the PGN Date tag.
const DateFormat = "2006.01.02"

// Metadata describes a game for notation export.
type Metadata struct {
	Event string
	Site  string
	Date  time.Time
	Round int
	White string
	Black string
}

// newMetadata returns the configured defaults dated today.
func newMetadata(cfg *config.MetadataConfig, now time.Time) Metadata {
	return Metadata{
		Event: cfg.Event,
		Site:  cfg.Site,
		Date:  now,
		Round: cfg.Round,
		White: cfg.White,
		Black: cfg.Black,
	}
}

// DateTag returns the date in PGN form, e.g. "2024.03.01".
func (m Metadata) DateTag() string {
	return m.Date.Format(DateFormat)
}

// applyTag sets the field named by a PGN tag. Unknown tags and values that
// do not parse are ignored.
func (m *Metadata) applyTag(name, value string) {
	switch name {
	case "Event":
		m.Event = value
	case "Site":
		m.Site = value
	case "Date":
		if date, err := time.Parse(DateFormat, value); err == nil {
			m.Date = date
		}
	case "Round":
		if round, err := strconv.Atoi(value); err == nil {
			m.Round = round
		}
	case "White":
		m.White = value
	case "Black":
		m.Black = value
	}
}
