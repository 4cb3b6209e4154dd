package parser

import (
	"strings"

	"github.com/lgbarn/chessrules-go/internal/engine"
)

// isCastlingChar returns true if c is a castling character.
func isCastlingChar(c byte) bool {
	return c == 'O' || c == '0' || c == 'o'
}

// isCheck returns true if c is a check indicator.
func isCheck(c byte) bool {
	return c == '+' || c == '#'
}

// isPromotionPiece reports whether c names a piece a pawn may become.
func isPromotionPiece(c byte) bool {
	return c == 'Q' || c == 'R' || c == 'B' || c == 'N'
}

// NormalizeMoveText rewrites the common variants of SAN into the form the
// engine produces: "0-0" and "o-o" become "O-O", and a promotion written
// without '=' ("e8Q") gains one. Check marks are kept.
func NormalizeMoveText(text string) string {
	body := strings.TrimRightFunc(text, func(r rune) bool { return r < 128 && isCheck(byte(r)) })
	suffix := text[len(body):]
	if body == "" {
		return text
	}

	if isCastlingChar(body[0]) {
		switch strings.Count(body, "-") {
		case 1:
			return engine.KingsideCastleText + suffix
		case 2:
			return engine.QueensideCastleText + suffix
		}
		return text
	}

	n := len(body)
	if n >= 3 && isPromotionPiece(body[n-1]) && body[n-2] >= '1' && body[n-2] <= '8' {
		return body[:n-1] + "=" + body[n-1:] + suffix
	}
	return text
}
