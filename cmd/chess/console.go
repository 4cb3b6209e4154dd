// console.go - Interactive play on a text terminal
package main

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/game"
)

// command is one console command.
type command struct {
	name  string
	usage string
	help  string
	run   func(c *Console, arg string) error
}

var consoleCommands = []command{
	{"board", "board", "Show the board", (*Console).cmdBoard},
	{"moves", "moves", "List the legal moves", (*Console).cmdMoves},
	{"fen", "fen", "Print the current position as FEN", (*Console).cmdFEN},
	{"loadfen", "loadfen <fen>", "Start a new game from a FEN position", (*Console).cmdLoadFEN},
	{"pgn", "pgn", "Print the game as PGN", (*Console).cmdPGN},
	{"loadpgn", "loadpgn <file>", "Replace the game with the first game of a PGN file", (*Console).cmdLoadPGN},
	{"new", "new", "Start a new game", (*Console).cmdNew},
	{"random", "random", "Play a random legal move", (*Console).cmdRandom},
	{"resign", "resign", "Resign for the side to move", (*Console).cmdResign},
	{"draw", "draw", "End the game drawn by agreement", (*Console).cmdDraw},
	{"url", "url", "Print a lichess analysis link", (*Console).cmdURL},
	{"help", "help", "List the commands", nil},
	{"quit", "quit", "Leave the console", nil},
	{"", "<move>", "Play a move: SAN (Nf3), long algebraic (g1f3) or a unique prefix", nil},
}

// Console plays one game against text input. Colours marked as computer
// controlled play uniformly random legal moves.
type Console struct {
	game     *game.Game
	in       *bufio.Scanner
	out      io.Writer
	rng      *rand.Rand
	computer [2]bool
}

// NewConsole creates a console for g.
func NewConsole(g *game.Game, in io.Reader, out io.Writer, seed int64) *Console {
	return &Console{
		game: g,
		in:   bufio.NewScanner(in),
		out:  out,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// SetComputer hands colour to the random mover.
func (c *Console) SetComputer(colour chess.Colour, on bool) {
	c.computer[colour] = on
}

// Run reads commands until quit or end of input.
func (c *Console) Run() error {
	c.printBoard()
	for {
		if c.computerToMove() {
			if err := c.playRandom(); err != nil {
				return err
			}
			continue
		}

		fmt.Fprintf(c.out, "%s> ", c.game.CurrentBoard().ToMove)
		if !c.in.Scan() {
			fmt.Fprintln(c.out)
			return c.in.Err()
		}
		line := strings.TrimSpace(c.in.Text())
		if line == "" {
			continue
		}

		quit, err := c.Execute(line)
		if err != nil {
			fmt.Fprintf(c.out, "%v\n", err)
		}
		if quit {
			return nil
		}
	}
}

// Execute runs one command line. quit is true for "quit" and "exit".
func (c *Console) Execute(line string) (quit bool, err error) {
	name, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	switch name {
	case "quit", "exit":
		return true, nil
	case "help":
		c.printHelp()
		return false, nil
	}
	for _, cmd := range consoleCommands {
		if cmd.name == name && cmd.run != nil {
			return false, cmd.run(c, arg)
		}
	}
	return false, c.playText(line)
}

func (c *Console) computerToMove() bool {
	turn := c.game.CurrentTurn()
	return c.computer[turn.Position().ToMove] && !turn.State().IsGameOver()
}

func (c *Console) cmdBoard(string) error {
	c.printBoard()
	return nil
}

func (c *Console) cmdMoves(string) error {
	texts := c.game.CurrentTurn().SortedMoveTexts()
	if len(texts) == 0 {
		fmt.Fprintln(c.out, "No legal moves")
		return nil
	}
	fmt.Fprintln(c.out, strings.Join(texts, " "))
	return nil
}

func (c *Console) cmdFEN(string) error {
	fmt.Fprintln(c.out, c.game.FEN())
	return nil
}

func (c *Console) cmdLoadFEN(arg string) error {
	if arg == "" {
		return fmt.Errorf("usage: loadfen <fen>")
	}
	if err := c.game.LoadFEN(arg); err != nil {
		return err
	}
	c.printBoard()
	return nil
}

func (c *Console) cmdPGN(string) error {
	fmt.Fprint(c.out, c.game.ToPGN())
	return nil
}

func (c *Console) cmdLoadPGN(arg string) error {
	if arg == "" {
		return fmt.Errorf("usage: loadpgn <file>")
	}
	data, err := os.ReadFile(arg) //nolint:gosec // G304: console opens user-specified files
	if err != nil {
		return err
	}
	if err := c.game.LoadPGN(string(data)); err != nil {
		return err
	}
	c.printBoard()
	return nil
}

func (c *Console) cmdNew(string) error {
	c.game.Initialize()
	c.printBoard()
	return nil
}

func (c *Console) cmdRandom(string) error {
	return c.playRandom()
}

func (c *Console) cmdResign(string) error {
	if err := c.game.Resign(c.game.CurrentBoard().ToMove); err != nil {
		return err
	}
	c.printResult()
	return nil
}

func (c *Console) cmdDraw(string) error {
	if err := c.game.AgreeDraw(); err != nil {
		return err
	}
	c.printResult()
	return nil
}

func (c *Console) cmdURL(string) error {
	fmt.Fprintln(c.out, c.game.AnalysisURL())
	return nil
}

// playText plays the move named by text: move text with optional check
// marks, long algebraic notation, or an unambiguous prefix of a move text.
func (c *Console) playText(text string) error {
	turn := c.game.CurrentTurn()
	if turn.State().IsGameOver() {
		return fmt.Errorf("%s: %w", turn.State().Description(), errors.ErrGameOver)
	}

	if move, ok := turn.Notation().Resolve(text); ok {
		return c.play(move)
	}
	if move, err := chess.ParseMove(text); err == nil && turn.LegalMoves().Contains(move) {
		return c.play(move)
	}

	match, suggestions := suggest(turn.SortedMoveTexts(), text)
	if match != "" {
		move, _ := turn.Notation().Move(match)
		return c.play(move)
	}
	if len(suggestions) > 0 {
		return fmt.Errorf("unknown move %q, did you mean: %s", text, strings.Join(suggestions, " "))
	}
	return fmt.Errorf("unknown move %q: %w", text, errors.ErrIllegalMove)
}

// suggest matches input against move texts. A single text starting with
// input is returned as match. Otherwise the texts starting with, or failing
// that containing, input are returned as suggestions.
func suggest(texts []string, input string) (match string, suggestions []string) {
	for _, text := range texts {
		if strings.HasPrefix(text, input) {
			suggestions = append(suggestions, text)
		}
	}
	if len(suggestions) == 1 {
		return suggestions[0], nil
	}
	if len(suggestions) > 0 {
		return "", suggestions
	}
	for _, text := range texts {
		if strings.Contains(text, input) {
			suggestions = append(suggestions, text)
		}
	}
	return "", suggestions
}

func (c *Console) playRandom() error {
	turn := c.game.CurrentTurn()
	if turn.State().IsGameOver() {
		return fmt.Errorf("%s: %w", turn.State().Description(), errors.ErrGameOver)
	}
	moves := turn.LegalMoves().Moves()
	return c.play(moves[c.rng.Intn(len(moves))])
}

func (c *Console) play(move chess.Move) error {
	turn := c.game.CurrentTurn()
	text, _ := turn.MoveText(move)
	if err := c.game.TryMove(move); err != nil {
		return err
	}
	fmt.Fprintf(c.out, "%s plays %s\n", turn.Position().ToMove, text)

	state := c.game.CurrentTurn().State()
	switch {
	case state.IsGameOver():
		c.printBoard()
		c.printResult()
	case state == game.Check:
		fmt.Fprintln(c.out, "Check!")
	}
	return nil
}

func (c *Console) printBoard() {
	pos := c.game.CurrentBoard()
	fmt.Fprintln(c.out, pos.ASCII())
}

func (c *Console) printResult() {
	state := c.game.CurrentTurn().State()
	fmt.Fprintf(c.out, "Game over: %s (%s)\n", state.Description(), c.game.Result())
}

func (c *Console) printHelp() {
	for _, cmd := range consoleCommands {
		fmt.Fprintf(c.out, "  %-16s %s\n", cmd.usage, cmd.help)
	}
}
