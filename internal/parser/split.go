package parser

import (
	"bufio"
	"io"
	"strings"
)

// SplitGames splits multi-game PGN input into the text of each game. A game
// ends where the next tag section begins after movetext, so brace comments
// that span lines never split a game.
func SplitGames(r io.Reader) ([]string, error) {
	var (
		games     []string
		current   strings.Builder
		inMoves   bool
		depth     int
		scanner   = bufio.NewScanner(r)
		flushGame = func() {
			if text := strings.TrimSpace(current.String()); text != "" {
				games = append(games, text)
			}
			current.Reset()
			inMoves = false
		}
	)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)

		if depth == 0 && strings.HasPrefix(trimmed, "[") && inMoves {
			flushGame()
		}

		if depth == 0 && trimmed != "" && !strings.HasPrefix(trimmed, "[") && !strings.HasPrefix(trimmed, ";") {
			inMoves = true
		}
		depth = braceDepth(trimmed, depth)

		current.WriteString(line)
		current.WriteByte('\n')
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	flushGame()
	return games, nil
}

// braceDepth returns the comment nesting depth after line, starting from depth.
// Text after a ';' outside a comment is ignored.
func braceDepth(line string, depth int) int {
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case '{':
			depth++
		case '}':
			if depth > 0 {
				depth--
			}
		case ';':
			if depth == 0 {
				return depth
			}
		}
	}
	return depth
}
