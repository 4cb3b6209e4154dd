package output

import (
	"encoding/json"
	"io"
	"strings"
)

// JSONGame represents a game in JSON format.
type JSONGame struct {
	Tags       map[string]string `json:"tags"`
	Moves      []JSONMove        `json:"moves,omitempty"`
	Result     string            `json:"result,omitempty"`
	PlyCount   int               `json:"plyCount"`
	InitialFEN string            `json:"initialFEN,omitempty"`
	FinalFEN   string            `json:"finalFEN,omitempty"`
	State      string            `json:"state,omitempty"`
}

// JSONMove represents a move in JSON format.
type JSONMove struct {
	MoveNumber int    `json:"moveNumber"`
	Color      string `json:"color"` // "white" or "black"
	SAN        string `json:"san"`
	UCI        string `json:"uci"`
}

// JSONOutput holds multiple games for array output.
type JSONOutput struct {
	Games []*JSONGame `json:"games"`
}

// GameToJSON converts a record to JSON format.
func GameToJSON(rec *Record) *JSONGame {
	jg := &JSONGame{
		Tags:       make(map[string]string, len(rec.Tags)),
		Result:     rec.Result,
		PlyCount:   len(rec.Moves),
		InitialFEN: rec.InitialFEN,
		FinalFEN:   rec.FinalFEN,
		State:      rec.State,
	}
	for _, tag := range rec.Tags {
		jg.Tags[tag.Name] = tag.Value
	}
	for _, move := range rec.Moves {
		jg.Moves = append(jg.Moves, JSONMove{
			MoveNumber: move.Number,
			Color:      strings.ToLower(move.Colour.String()),
			SAN:        move.SAN,
			UCI:        move.UCI,
		})
	}
	return jg
}

// OutputGamesJSON outputs multiple games as a JSON array.
func OutputGamesJSON(records []*Record, w io.Writer) error {
	jsonGames := make([]*JSONGame, len(records))
	for i, rec := range records {
		jsonGames[i] = GameToJSON(rec)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(&JSONOutput{Games: jsonGames})
}
