// Package headless asks questions over plain line-oriented streams. It is used
// when stdin is not a terminal, so the roster can be driven from a script.
package headless

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jeanpaul/roster/internal/prompt"
)

var _ prompt.Prompter = (*Prompter)(nil)

const invalidChoice = "Please choose one of the listed options."

type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Input prints the question and reads one line. An empty line yields the default.
func (p *Prompter) Input(ctx context.Context, q prompt.Question) (string, error) {
	if q.Err != "" {
		fmt.Fprintf(p.out, ">> %s\n", q.Err)
	}
	fmt.Fprintf(p.out, "? %s%s ", q.Message, hint(q.Default))

	line, err := p.readLine(ctx)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(line) == "" {
		return q.Default, nil
	}
	return line, nil
}

// Select lists the options and accepts either a 1-based number or an exact
// label. Anything else is asked again.
func (p *Prompter) Select(ctx context.Context, c prompt.Choice) (string, error) {
	if len(c.Options) == 0 {
		return "", fmt.Errorf("headless: choice %q has no options", c.Message)
	}
	def := c.Options[c.DefaultIndex()]

	fmt.Fprintf(p.out, "? %s\n", c.Message)
	for i, opt := range c.Options {
		fmt.Fprintf(p.out, "  %d) %s\n", i+1, opt)
	}

	for {
		fmt.Fprintf(p.out, "  Answer%s: ", hint(def))
		line, err := p.readLine(ctx)
		if err != nil {
			return "", err
		}
		if answer, ok := pick(c.Options, strings.TrimSpace(line), def); ok {
			return answer, nil
		}
		fmt.Fprintf(p.out, ">> %s\n", invalidChoice)
	}
}

func pick(options []string, answer, def string) (string, bool) {
	if answer == "" {
		return def, true
	}
	if n, err := strconv.Atoi(answer); err == nil {
		if n >= 1 && n <= len(options) {
			return options[n-1], true
		}
		return "", false
	}
	for _, opt := range options {
		if opt == answer {
			return opt, true
		}
	}
	return "", false
}

func (p *Prompter) readLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %w", prompt.ErrAborted, err)
	}

	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			if line != "" {
				return strings.TrimRight(line, "\r"), nil
			}
			fmt.Fprintln(p.out)
			return "", prompt.ErrAborted
		}
		return "", fmt.Errorf("headless: read answer: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func hint(def string) string {
	if def == "" {
		return ""
	}
	return " (" + def + ")"
}
