package parser

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Lexer tokenizes PGN input one line at a time.
type Lexer struct {
	reader  *bufio.Reader
	line    string
	pos     int
	lineNum int
	eof     bool
}

// Character classification table
var chTab [256]TokenType

// Move character classification table
var moveChars [256]bool

func init() {
	initLexTables()
}

// initLexTables initializes the character classification tables.
func initLexTables() {
	for i := range chTab {
		chTab[i] = ErrorToken
	}

	for _, c := range []byte{' ', '\t', '\r', '\n'} {
		chTab[c] = Whitespace
	}

	chTab['['] = TagStart
	chTab[']'] = TagEnd
	chTab['"'] = DoubleQuote
	chTab['{'] = CommentStart
	chTab['}'] = CommentEnd
	chTab[';'] = LineComment
	chTab['$'] = NAGToken
	chTab['!'] = Annotate
	chTab['?'] = Annotate
	chTab['('] = RAVStart
	chTab[')'] = RAVEnd
	chTab['*'] = Star

	for c := byte('0'); c <= '9'; c++ {
		chTab[c] = Digit
	}
	for c := byte('A'); c <= 'Z'; c++ {
		chTab[c] = Alpha
		chTab[c+32] = Alpha
	}

	initMoveChars()
}

// initMoveChars initializes the move character classification table.
func initMoveChars() {
	for c := byte('a'); c <= 'h'; c++ {
		moveChars[c] = true
	}
	for c := byte('1'); c <= '8'; c++ {
		moveChars[c] = true
	}
	for _, c := range []byte{'K', 'Q', 'R', 'N', 'B', 'P'} {
		moveChars[c] = true
	}
	// Capture, promotion, castling, check
	for _, c := range []byte{'x', '-', '=', 'O', 'o', '0', '+', '#'} {
		moveChars[c] = true
	}
}

// NewLexer creates a new lexer for the given reader.
func NewLexer(r io.Reader) *Lexer {
	return &Lexer{
		reader: bufio.NewReader(r),
	}
}

// readLine reads the next line from input.
func (l *Lexer) readLine() bool {
	if l.eof {
		return false
	}
	line, err := l.reader.ReadString('\n')
	if err != nil {
		l.eof = true
		if len(line) == 0 {
			return false
		}
	}
	l.line = line
	l.pos = 0
	l.lineNum++
	return true
}

// currentChar returns the current character or 0 if at end of line.
func (l *Lexer) currentChar() byte {
	if l.pos >= len(l.line) {
		return 0
	}
	return l.line[l.pos]
}

// advance moves to the next character.
func (l *Lexer) advance() {
	if l.pos < len(l.line) {
		l.pos++
	}
}

// errorAt builds a ParseError at the given 0-based column of the current line.
func (l *Lexer) errorAt(column int, expected, got string) error {
	return &errors.ParseError{
		Err:      errors.ErrParseFailure,
		Line:     l.lineNum,
		Column:   column + 1,
		Expected: expected,
		Got:      got,
	}
}

// NextToken returns the next token from the input. At the end of input it
// returns an EOFToken, repeatedly.
func (l *Lexer) NextToken() (*Token, error) {
	for {
		if l.pos >= len(l.line) {
			if !l.readLine() {
				return &Token{Type: EOFToken, Line: l.lineNum}, nil
			}
			continue
		}

		symbolStart := l.pos
		token, err := l.getNextSymbol()
		if err != nil {
			return nil, err
		}
		if token.Type != NoToken {
			if token.Line == 0 {
				token.Line = l.lineNum
				token.Column = symbolStart + 1
			}
			return token, nil
		}
	}
}

// getNextSymbol identifies the next symbol on the current line.
func (l *Lexer) getNextSymbol() (*Token, error) {
	ch := l.currentChar()
	symbolStart := l.pos
	l.advance()

	switch chTab[ch] {
	case Whitespace:
		for l.pos < len(l.line) && chTab[l.currentChar()] == Whitespace {
			l.advance()
		}
		return &Token{Type: NoToken}, nil

	case TagStart:
		return l.gatherTag(symbolStart)

	case TagEnd:
		return &Token{Type: NoToken}, nil

	case DoubleQuote:
		return l.gatherString(symbolStart)

	case CommentStart:
		return l.gatherComment(symbolStart)

	case CommentEnd:
		return nil, l.errorAt(symbolStart, "", "unmatched '}'")

	case LineComment:
		l.pos = len(l.line)
		return &Token{Type: NoToken}, nil

	case NAGToken:
		start := l.pos
		for l.pos < len(l.line) && chTab[l.currentChar()] == Digit {
			l.advance()
		}
		return &Token{Type: NAGToken, Text: "$" + l.line[start:l.pos]}, nil

	case Annotate:
		for l.pos < len(l.line) && chTab[l.currentChar()] == Annotate {
			l.advance()
		}
		return &Token{Type: NAGToken, Text: annotationToNAG(l.line[symbolStart:l.pos])}, nil

	case RAVStart:
		return &Token{Type: RAVStart}, nil

	case RAVEnd:
		return &Token{Type: RAVEnd}, nil

	case Star:
		return &Token{Type: TerminatingResult, Text: chess.InProgress}, nil

	case Alpha:
		return l.gatherMove(symbolStart)

	case Digit:
		return l.gatherNumeric(ch, symbolStart)

	default:
		return nil, l.errorAt(symbolStart, "", fmt.Sprintf("character %q", ch))
	}
}

// gatherTag gathers a tag name after '['.
func (l *Lexer) gatherTag(symbolStart int) (*Token, error) {
	for l.pos < len(l.line) && chTab[l.currentChar()] == Whitespace {
		l.advance()
	}

	start := l.pos
	for l.pos < len(l.line) {
		ch := l.currentChar()
		if chTab[ch] == Alpha || chTab[ch] == Digit || ch == '_' {
			l.advance()
		} else {
			break
		}
	}

	if l.pos == start {
		return nil, l.errorAt(symbolStart, "tag name", "'['")
	}
	return &Token{Type: TagToken, Text: l.line[start:l.pos]}, nil
}

// gatherString gathers a quoted string.
func (l *Lexer) gatherString(symbolStart int) (*Token, error) {
	var sb strings.Builder
	escaped := false

	for l.pos < len(l.line) {
		ch := l.currentChar()
		l.advance()

		if escaped {
			sb.WriteByte(ch)
			escaped = false
			continue
		}

		switch ch {
		case '\\':
			escaped = true
		case '"':
			return &Token{Type: StringToken, Text: sb.String()}, nil
		default:
			sb.WriteByte(ch)
		}
	}

	return nil, l.errorAt(symbolStart, "closing quote", "end of line")
}

// gatherComment gathers a brace comment. Comments nest and may span lines.
func (l *Lexer) gatherComment(symbolStart int) (*Token, error) {
	var sb strings.Builder
	startLine := l.lineNum
	depth := 1

	for {
		for l.pos < len(l.line) {
			ch := l.currentChar()
			l.advance()

			switch ch {
			case '{':
				depth++
			case '}':
				depth--
				if depth == 0 {
					return &Token{
						Type:   CommentToken,
						Text:   strings.TrimSpace(sb.String()),
						Line:   startLine,
						Column: symbolStart + 1,
					}, nil
				}
			}
			sb.WriteByte(ch)
		}

		if !l.readLine() {
			break
		}
	}

	return nil, &errors.ParseError{
		Err:      errors.ErrParseFailure,
		Line:     startLine,
		Column:   symbolStart + 1,
		Expected: "'}'",
		Got:      "end of input",
	}
}

// gatherMove gathers a run of move characters.
func (l *Lexer) gatherMove(symbolStart int) (*Token, error) {
	for l.pos < len(l.line) && moveChars[l.currentChar()] {
		l.advance()
	}

	text := l.line[symbolStart:l.pos]
	if !moveSeemValid(text) {
		return nil, l.errorAt(symbolStart, "move", strconv.Quote(text))
	}
	return &Token{Type: MoveToken, Text: NormalizeMoveText(text)}, nil
}

// gatherNumeric handles numeric tokens (move numbers, results, castling).
func (l *Lexer) gatherNumeric(initialDigit byte, symbolStart int) (*Token, error) {
	remaining := l.line[l.pos:]

	switch initialDigit {
	case '0':
		if strings.HasPrefix(remaining, "-1") {
			l.pos += 2
			return &Token{Type: TerminatingResult, Text: chess.BlackWins}, nil
		}
		if strings.HasPrefix(remaining, "-0") {
			return l.gatherMove(symbolStart)
		}
	case '1':
		if strings.HasPrefix(remaining, "-0") {
			l.pos += 2
			return &Token{Type: TerminatingResult, Text: chess.WhiteWins}, nil
		}
		if strings.HasPrefix(remaining, "/2-1/2") {
			l.pos += 6
			return &Token{Type: TerminatingResult, Text: chess.Draw}, nil
		}
	}

	return l.gatherMoveNumber(symbolStart)
}

// gatherMoveNumber parses a move number token: "12", "12." or "12...".
func (l *Lexer) gatherMoveNumber(symbolStart int) (*Token, error) {
	for l.pos < len(l.line) && chTab[l.currentChar()] == Digit {
		l.advance()
	}
	digitsEnd := l.pos

	dots := 0
	for l.pos < len(l.line) && l.currentChar() == '.' {
		l.advance()
		dots++
	}

	moveNum, err := strconv.Atoi(l.line[symbolStart:digitsEnd])
	if err != nil {
		return nil, l.errorAt(symbolStart, "move number", strconv.Quote(l.line[symbolStart:l.pos]))
	}
	return &Token{Type: MoveNumber, MoveNum: moveNum, BlackToMove: dots >= 3}, nil
}

// annotationToNAG converts annotation symbols to NAG strings.
func annotationToNAG(text string) string {
	switch text {
	case "!":
		return "$1"
	case "?":
		return "$2"
	case "!!":
		return "$3"
	case "??":
		return "$4"
	case "!?":
		return "$5"
	case "?!":
		return "$6"
	default:
		return "$0"
	}
}

// moveSeemValid does a basic check if the move text looks valid.
func moveSeemValid(text string) bool {
	if len(text) < 2 {
		return false
	}

	switch strings.TrimRight(text, "+#") {
	case "O-O", "O-O-O", "o-o", "o-o-o", "0-0", "0-0-0":
		return true
	}

	// Must contain at least one file (a-h) and one rank (1-8)
	hasFile := false
	hasRank := false
	for _, c := range text {
		if c >= 'a' && c <= 'h' {
			hasFile = true
		}
		if c >= '1' && c <= '8' {
			hasRank = true
		}
	}

	return hasFile && hasRank
}

// LineNumber returns the current line number.
func (l *Lexer) LineNumber() int {
	return l.lineNum
}
