// Package batch runs the line oriented text protocol over a game.
//
// Each non-empty line that does not start with '#' is one command: a single
// letter followed by whitespace separated unsigned 32-bit arguments.
// Malformed lines print "ERROR <line number>" on the error stream.
package batch

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gamma/internal/game"
	"gamma/internal/render"

	"github.com/bytedance/sonic"
	"github.com/logrusorgru/aurora"
	"github.com/zeromicro/go-zero/core/logx"
)

// InteractiveFunc takes over a game created with the I command.
type InteractiveFunc func(g *game.Game) error

type Options struct {
	// Color prints boards with player colours.
	Color bool
	// JSON makes the p command print a snapshot instead of the text board.
	JSON bool
	// Interactive handles the I command. Without it I is rejected.
	Interactive InteractiveFunc
}

type Runner struct {
	out  io.Writer
	errw io.Writer
	opts Options
	au   aurora.Aurora

	g    *game.Game
	line int
}

func NewRunner(out, errw io.Writer, opts Options) *Runner {
	return &Runner{
		out:  out,
		errw: errw,
		opts: opts,
		au:   aurora.NewAurora(opts.Color),
	}
}

var errBadLine = errors.New("bad line")

// Run reads commands from in until EOF. It returns only I/O errors and the
// error of an interactive session.
func (r *Runner) Run(in io.Reader) error {
	br := bufio.NewReader(in)
	for {
		text, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		if text == "" {
			return nil
		}
		r.line++

		done, lineErr := r.exec(text)
		switch {
		case errors.Is(lineErr, errBadLine):
			if _, werr := fmt.Fprintf(r.errw, "ERROR %d\n", r.line); werr != nil {
				return werr
			}
			logx.Debugf("batch line %d: %v", r.line, lineErr)
		case lineErr != nil:
			return lineErr
		}
		if done || errors.Is(err, io.EOF) {
			return nil
		}
	}
}

func isSpace(c rune) bool {
	switch c {
	case ' ', '\t', '\v', '\f', '\r':
		return true
	}
	return false
}

// parse splits a line into its command letter and numeric arguments.
func parse(text string) (byte, []uint32, error) {
	body := strings.TrimSuffix(text, "\n")
	if body == "" || isSpace(rune(body[0])) {
		return 0, nil, errBadLine
	}
	cmd := body[0]
	rest := body[1:]
	if rest != "" && !isSpace(rune(rest[0])) {
		return 0, nil, errBadLine
	}

	fields := strings.FieldsFunc(rest, isSpace)
	args := make([]uint32, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseUint(f, 10, 32)
		if err != nil {
			return 0, nil, fmt.Errorf("%w: %v", errBadLine, err)
		}
		args = append(args, uint32(v))
	}
	return cmd, args, nil
}

var arity = map[byte]int{
	'B': 4, 'I': 4,
	'm': 3, 'g': 3,
	'b': 1, 'f': 1, 'q': 1,
	'p': 0,
}

// exec runs one input line. done reports that the session ended. Errors
// wrapping errBadLine reject the line, any other error is fatal.
func (r *Runner) exec(text string) (done bool, err error) {
	if text == "\n" || text[0] == '#' {
		return false, nil
	}
	// only the last line of the input can lack its newline
	if !strings.HasSuffix(text, "\n") {
		return false, errBadLine
	}

	cmd, args, err := parse(text)
	if err != nil {
		return false, err
	}
	if n, ok := arity[cmd]; !ok || n != len(args) {
		return false, errBadLine
	}

	if r.g == nil {
		return r.start(cmd, args)
	}

	switch cmd {
	case 'm':
		return false, r.printBool(r.g.Move(int(args[0]), int(args[1]), int(args[2])))
	case 'g':
		return false, r.printBool(r.g.GoldenMove(int(args[0]), int(args[1]), int(args[2])))
	case 'b':
		return false, r.printf("%d\n", r.g.BusyFields(int(args[0])))
	case 'f':
		return false, r.printf("%d\n", r.g.FreeFields(int(args[0])))
	case 'q':
		return false, r.printBool(r.g.GoldenPossible(int(args[0])))
	case 'p':
		return false, r.printBoard()
	}
	return false, errBadLine
}

func (r *Runner) start(cmd byte, args []uint32) (bool, error) {
	if cmd != 'B' && cmd != 'I' {
		return false, errBadLine
	}
	if cmd == 'I' && r.opts.Interactive == nil {
		return false, errBadLine
	}

	g, err := game.New(int(args[0]), int(args[1]), int(args[2]), int(args[3]))
	if err != nil {
		return false, fmt.Errorf("%w: %v", errBadLine, err)
	}

	if cmd == 'I' {
		return true, r.opts.Interactive(g)
	}
	r.g = g
	return false, r.printf("OK %d\n", r.line)
}

func (r *Runner) printf(format string, a ...interface{}) error {
	_, err := fmt.Fprintf(r.out, format, a...)
	return err
}

func (r *Runner) printBool(v bool) error {
	if v {
		return r.printf("1\n")
	}
	return r.printf("0\n")
}

func (r *Runner) printBoard() error {
	if r.opts.JSON {
		s, err := sonic.MarshalString(r.g.Snapshot())
		if err != nil {
			return err
		}
		return r.printf("%s\n", s)
	}
	_, err := io.WriteString(r.out, render.Board(r.au, r.g))
	return err
}
