package engine

import (
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// Tokens used for castling moves.
const (
	KingsideCastleText  = "O-O"
	QueensideCastleText = "O-O-O"
)

// Disambiguation levels, tried in order until texts are unique.
const (
	disambiguateNone = iota
	disambiguateFile
	disambiguateRank
	disambiguateBoth
)

// Notation maps each legal move of a position to its move text and back.
// The mapping is a bijection: no two moves share a text.
type Notation struct {
	byText map[string]chess.Move
	byMove map[chess.Move]string
}

// MoveTexts builds the move text of every move in set, which must be the
// legal moves of pos. Texts look like "Nf3", "exd5", "e8=Q+", "O-O" or
// "Rae1#".
func MoveTexts(pos *chess.Position, set *MoveSet) *Notation {
	n := &Notation{
		byText: make(map[string]chess.Move, set.Len()),
		byMove: make(map[chess.Move]string, set.Len()),
	}

	levels := make([]int, set.Len())
	bases := make([]string, set.Len())
	for i := range bases {
		bases[i] = baseText(pos, set.At(i).Move, levels[i])
	}

	// Raise the level of every move in a colliding group until all base
	// texts differ or nothing can be raised further.
	for {
		groups := make(map[string][]int, len(bases))
		for i, text := range bases {
			groups[text] = append(groups[text], i)
		}
		changed := false
		for _, members := range groups {
			if len(members) < 2 {
				continue
			}
			for _, i := range members {
				if levels[i] < disambiguateBoth {
					levels[i]++
					bases[i] = baseText(pos, set.At(i).Move, levels[i])
					changed = true
				}
			}
		}
		if !changed {
			break
		}
	}

	for i := range bases {
		result := set.At(i)
		text := bases[i] + checkSuffix(&result.Position)
		n.byText[text] = result.Move
		n.byMove[result.Move] = text
	}
	return n
}

// baseText renders a move without the check suffix.
func baseText(pos *chess.Position, move chess.Move, level int) string {
	piece := pos.PieceAt(move.From)
	if c, ok := castlingFor(pos, piece, move); ok {
		if c.rookFrom.File() > c.kingFrom.File() {
			return KingsideCastleText
		}
		return QueensideCastleText
	}

	capture := IsCapture(pos, move)

	var sb strings.Builder
	if piece.Type != chess.Pawn {
		sb.WriteByte(piece.Type.Letter())
	}
	if level == disambiguateFile || level == disambiguateBoth || (piece.Type == chess.Pawn && capture) {
		sb.WriteByte(move.From.FileLetter())
	}
	if level == disambiguateRank || level == disambiguateBoth {
		sb.WriteByte(move.From.RankDigit())
	}
	if capture {
		sb.WriteByte('x')
	}
	sb.WriteString(move.To.String())
	if move.IsPromotion() {
		sb.WriteByte('=')
		sb.WriteByte(move.Promotion.Letter())
	}
	return sb.String()
}

// checkSuffix returns "#" when the side to move in next is mated, "+" when
// it is merely in check, otherwise "".
func checkSuffix(next *chess.Position) string {
	if !IsInCheck(next, next.ToMove) {
		return ""
	}
	if !HasLegalMoves(next) {
		return "#"
	}
	return "+"
}

// Len returns the number of texts.
func (n *Notation) Len() int {
	return len(n.byText)
}

// Move returns the move with exactly this text.
func (n *Notation) Move(text string) (chess.Move, bool) {
	move, ok := n.byText[text]
	return move, ok
}

// Text returns the text of move.
func (n *Notation) Text(move chess.Move) (string, bool) {
	text, ok := n.byMove[move]
	return text, ok
}

// Resolve looks text up like Move, but also accepts it with a missing,
// extra or different check suffix and trailing annotation marks ("!", "?").
func (n *Notation) Resolve(text string) (chess.Move, bool) {
	if move, ok := n.byText[text]; ok {
		return move, true
	}
	want := StripSuffix(text)
	if want == "" {
		return chess.Move{}, false
	}
	for candidate, move := range n.byText {
		if StripSuffix(candidate) == want {
			return move, true
		}
	}
	return chess.Move{}, false
}

// Texts returns a copy of the text to move mapping.
func (n *Notation) Texts() map[string]chess.Move {
	return maps.Clone(n.byText)
}

// SortedTexts returns every text in lexical order.
func (n *Notation) SortedTexts() []string {
	texts := maps.Keys(n.byText)
	slices.Sort(texts)
	return texts
}

// StripSuffix removes check, mate and annotation marks from move text.
func StripSuffix(text string) string {
	return strings.TrimRight(text, "+#!?")
}
