// Package game implements the game and turn controller: an append-only
// history of turns, classification of each position, externally signalled
// results, and PGN import and export.
package game

// TurnState classifies the position of a turn.
type TurnState int

const (
	Play TurnState = iota
	Check
	Checkmate
	Stalemate
	DrawByFiftyMoveRule
	DrawByInsufficientMaterial
	DrawByRepetition
	DrawByAgreement
	TimeoutDraw
	Timeout
	Resignation
	Abandoned
)

var turnStateNames = [...]string{
	Play:                       "PLAY",
	Check:                      "CHECK",
	Checkmate:                  "CHECKMATE",
	Stalemate:                  "STALEMATE",
	DrawByFiftyMoveRule:        "DRAW_BY_FIFTY_MOVE_RULE",
	DrawByInsufficientMaterial: "DRAW_BY_INSUFFICIENT_MATERIAL",
	DrawByRepetition:           "DRAW_BY_REPETITION",
	DrawByAgreement:            "DRAW_BY_AGREEMENT",
	TimeoutDraw:                "TIMEOUT_DRAW",
	Timeout:                    "TIMEOUT",
	Resignation:                "RESIGNATION",
	Abandoned:                  "ABANDONED",
}

var turnStateDescriptions = [...]string{
	Play:                       "Game in progress",
	Check:                      "Check",
	Checkmate:                  "Checkmate",
	Stalemate:                  "Stalemate",
	DrawByFiftyMoveRule:        "Draw by the fifty-move rule",
	DrawByInsufficientMaterial: "Draw by insufficient material",
	DrawByRepetition:           "Draw by threefold repetition",
	DrawByAgreement:            "Draw by agreement",
	TimeoutDraw:                "Draw on time with insufficient mating material",
	Timeout:                    "Lost on time",
	Resignation:                "Resignation",
	Abandoned:                  "Game abandoned",
}

// String returns the state name, e.g. "DRAW_BY_REPETITION".
func (s TurnState) String() string {
	if s >= 0 && int(s) < len(turnStateNames) {
		return turnStateNames[s]
	}
	return "UNKNOWN"
}

// Description returns a human readable sentence for the state.
func (s TurnState) Description() string {
	if s >= 0 && int(s) < len(turnStateDescriptions) {
		return turnStateDescriptions[s]
	}
	return "Unknown"
}

// IsGameOver reports whether no further moves may be played.
func (s TurnState) IsGameOver() bool {
	return s != Play && s != Check
}

// IsDraw reports whether the state ends the game without a winner.
func (s TurnState) IsDraw() bool {
	switch s {
	case Stalemate, DrawByFiftyMoveRule, DrawByInsufficientMaterial,
		DrawByRepetition, DrawByAgreement, TimeoutDraw:
		return true
	}
	return false
}

// isForcible reports whether the state may be signalled from outside
// rather than derived from the position.
func (s TurnState) isForcible() bool {
	switch s {
	case DrawByRepetition, DrawByAgreement, TimeoutDraw, Timeout, Resignation, Abandoned:
		return true
	}
	return false
}
