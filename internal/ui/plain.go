package ui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/samdwyer/dungeonrun/internal/errors"
	"github.com/samdwyer/dungeonrun/internal/game"
)

// Session is the part of the engine a front end drives.
// *game.Engine implements it.
type Session interface {
	Turn(ctx context.Context, raw string) (game.Result, error)
	Snapshot() game.Snapshot
}

var _ Session = (*game.Engine)(nil)

// Plain runs a session as a read-line loop: print the menu, read a
// command, print what happened.
type Plain struct {
	session Session
	in      *bufio.Reader
	out     io.Writer
}

// maxLine bounds one line of input; longer lines are read and rejected.
const maxLine = 64 * 1024

// NewPlain creates a line front end reading commands from in.
func NewPlain(session Session, in io.Reader, out io.Writer) *Plain {
	return &Plain{
		session: session,
		in:      bufio.NewReader(in),
		out:     out,
	}
}

// Run plays until the player quits, escapes or dies, or input runs out.
func (p *Plain) Run(ctx context.Context) error {
	snap := p.session.Snapshot()
	p.print(Welcome(snap.Player)...)
	p.print("")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		snap = p.session.Snapshot()
		if snap.State.Terminal() {
			p.print(Farewell(snap)...)
			return nil
		}

		p.print(DescribeRoom(snap)...)
		p.print(DescribeMoves(snap.Moves)...)

		result, ok, err := p.readTurn(ctx)
		if err != nil {
			return err
		}
		if !ok || result.Quit {
			p.print(Farewell(p.session.Snapshot())...)
			return nil
		}

		p.print(Describe(result)...)
		p.print("")
	}
}

// readTurn prompts until the input is a legal move. ok is false when
// input is exhausted.
func (p *Plain) readTurn(ctx context.Context) (game.Result, bool, error) {
	for {
		fmt.Fprint(p.out, "Type your move: ")
		line, tooLong, err := p.readLine()
		if err == io.EOF {
			fmt.Fprintln(p.out)
			return game.Result{}, false, nil
		}
		if err != nil {
			return game.Result{}, false, errors.Wrap(err, "read input")
		}
		if tooLong {
			p.print(InvalidOption)
			continue
		}

		result, err := p.session.Turn(ctx, line)
		if err == nil {
			return result, true, nil
		}
		if errors.GetCode(err).Fatal() {
			return game.Result{}, false, err
		}
		p.print(InvalidOption)
	}
}

// readLine returns the next line without its line ending. A line longer
// than maxLine is consumed whole and reported as tooLong. io.EOF is only
// returned once nothing is left to read.
func (p *Plain) readLine() (string, bool, error) {
	var buf []byte
	read, tooLong := false, false
	for {
		chunk, err := p.in.ReadSlice('\n')
		read = read || len(chunk) > 0
		if !tooLong {
			if len(buf)+len(chunk) > maxLine {
				tooLong, buf = true, nil
			} else {
				buf = append(buf, chunk...)
			}
		}

		switch {
		case err == bufio.ErrBufferFull:
			continue
		case err == io.EOF && read:
			return strings.TrimRight(string(buf), "\r\n"), tooLong, nil
		case err != nil:
			return "", false, err
		default:
			return strings.TrimRight(string(buf), "\r\n"), tooLong, nil
		}
	}
}

func (p *Plain) print(lines ...string) {
	for _, l := range lines {
		fmt.Fprintln(p.out, strings.TrimRight(l, " "))
	}
}
