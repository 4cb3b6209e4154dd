package parser

import (
	"io"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Game is one parsed PGN game: its tag pairs and its main-line move texts.
// Variations, comments and NAGs are consumed but not kept.
type Game struct {
	// Tags holds tag values by name
	Tags map[string]string

	// TagOrder lists tag names in input order
	TagOrder []string

	// Moves holds the main line
	Moves []Ply

	// Result is the terminating result token, or "" when the movetext had none
	Result string

	// StartLine and EndLine bound the game in the input
	StartLine int
	EndLine   int
}

// Ply is one move text of the main line.
type Ply struct {
	// Text is the normalized SAN text
	Text string

	// Number is the move number written before this move, or 0 if none was
	Number int

	// Line and Column locate the move in the input
	Line   int
	Column int
}

// NewGame creates an empty game.
func NewGame() *Game {
	return &Game{Tags: make(map[string]string)}
}

// GetTag returns the value of a tag, or "" when absent.
func (g *Game) GetTag(name string) string {
	return g.Tags[name]
}

// SetTag sets a tag value, remembering first-seen order.
func (g *Game) SetTag(name, value string) {
	if _, ok := g.Tags[name]; !ok {
		g.TagOrder = append(g.TagOrder, name)
	}
	g.Tags[name] = value
}

// PlyCount returns the number of main-line moves.
func (g *Game) PlyCount() int {
	return len(g.Moves)
}

// Parser parses PGN input into Game structures.
type Parser struct {
	lexer        *Lexer
	currentToken *Token
}

// NewParser creates a new parser for the given reader.
func NewParser(r io.Reader) *Parser {
	return &Parser{
		lexer: NewLexer(r),
	}
}

// nextToken gets the next token from the lexer.
func (p *Parser) nextToken() error {
	token, err := p.lexer.NextToken()
	if err != nil {
		return err
	}
	p.currentToken = token
	return nil
}

// unexpected builds a ParseError at the current token.
func (p *Parser) unexpected(expected string) error {
	got := p.currentToken.Type.String()
	if p.currentToken.Text != "" {
		got += " " + p.currentToken.Text
	}
	return &errors.ParseError{
		Err:      errors.ErrParseFailure,
		Line:     p.currentToken.Line,
		Column:   p.currentToken.Column,
		Expected: expected,
		Got:      got,
	}
}

// ParseGame parses a single game from the input.
// Returns nil if no more games are available.
func (p *Parser) ParseGame() (*Game, error) {
	if p.currentToken == nil {
		if err := p.nextToken(); err != nil {
			return nil, err
		}
	}

	if err := p.skipToNextGame(); err != nil {
		return nil, err
	}
	if p.currentToken.Type == EOFToken {
		return nil, nil
	}

	game := NewGame()
	game.StartLine = p.currentToken.Line

	if err := p.parseOptTagList(game); err != nil {
		return nil, err
	}
	if err := p.parseMoveList(game); err != nil {
		return nil, err
	}
	game.EndLine = p.lexer.LineNumber()

	if game.Result != "" && game.GetTag("Result") == "" {
		game.SetTag("Result", game.Result)
	}
	return game, nil
}

// skipToNextGame skips tokens until the start of a game is found.
func (p *Parser) skipToNextGame() error {
	for {
		switch p.currentToken.Type {
		case EOFToken, TagToken, MoveToken, MoveNumber, TerminatingResult:
			return nil
		}
		if err := p.nextToken(); err != nil {
			return err
		}
	}
}

// parseOptTagList parses zero or more tag pairs.
func (p *Parser) parseOptTagList(game *Game) error {
	for p.currentToken.Type == TagToken {
		name := p.currentToken.Text
		if err := p.nextToken(); err != nil {
			return err
		}
		if p.currentToken.Type != StringToken {
			return p.unexpected("value for tag " + name)
		}
		game.SetTag(name, p.currentToken.Text)
		if err := p.nextToken(); err != nil {
			return err
		}
	}
	return nil
}

// parseMoveList parses movetext up to and including the result, the next
// tag section, or the end of input.
func (p *Parser) parseMoveList(game *Game) error {
	number := 0
	for {
		switch p.currentToken.Type {
		case EOFToken, TagToken:
			return nil

		case TerminatingResult:
			game.Result = p.currentToken.Text
			// Set to NoToken so the next game is lexed on demand
			p.currentToken = &Token{Type: NoToken}
			return nil

		case MoveNumber:
			number = p.currentToken.MoveNum

		case MoveToken:
			game.Moves = append(game.Moves, Ply{
				Text:   p.currentToken.Text,
				Number: number,
				Line:   p.currentToken.Line,
				Column: p.currentToken.Column,
			})
			number = 0

		case RAVStart:
			if err := p.skipVariation(); err != nil {
				return err
			}

		case CommentToken, NAGToken:

		default:
			return p.unexpected("move")
		}

		if err := p.nextToken(); err != nil {
			return err
		}
	}
}

// skipVariation consumes a parenthesised variation, nested ones included.
// On return the current token is the closing RAVEnd.
func (p *Parser) skipVariation() error {
	depth := 1
	for depth > 0 {
		if err := p.nextToken(); err != nil {
			return err
		}
		switch p.currentToken.Type {
		case RAVStart:
			depth++
		case RAVEnd:
			depth--
		case EOFToken, TagToken:
			return p.unexpected("')'")
		}
	}
	return nil
}

// ParseAllGames parses all games from the input.
func (p *Parser) ParseAllGames() ([]*Game, error) {
	var games []*Game
	for {
		game, err := p.ParseGame()
		if err != nil {
			return games, err
		}
		if game == nil {
			return games, nil
		}
		games = append(games, game)
	}
}

// ParseString parses the first game of a PGN string.
func ParseString(text string) (*Game, error) {
	game, err := NewParser(strings.NewReader(text)).ParseGame()
	if err != nil {
		return nil, err
	}
	if game == nil {
		return NewGame(), nil
	}
	return game, nil
}

// StartsWithSetup reports whether the game declares a starting position.
func (g *Game) StartsWithSetup() bool {
	return g.GetTag(chess.TagNameStrings[chess.FENTag]) != ""
}
