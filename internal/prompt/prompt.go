// Package prompt defines how the session asks the user for input. The TUI and
// headless packages provide the implementations.
package prompt

import (
	"context"
	"errors"
)

// ErrAborted is returned when the user interrupts a prompt or input runs out.
var ErrAborted = errors.New("prompt: input aborted")

// Question asks for a line of free text.
type Question struct {
	Message string
	// Default is returned when the answer is empty.
	Default string
	// Err is the validation message from the previous attempt, if any.
	Err string
}

// Choice asks for exactly one of Options.
type Choice struct {
	Message string
	Options []string
	Default string
}

// DefaultIndex is the position of Default in Options, or 0 when absent.
func (c Choice) DefaultIndex() int {
	for i, opt := range c.Options {
		if opt == c.Default {
			return i
		}
	}
	return 0
}

type Prompter interface {
	Input(ctx context.Context, q Question) (string, error)
	Select(ctx context.Context, c Choice) (string, error)
}
