// Package tui implements interactive prompts as small bubbletea programs, one
// program per question.
package tui

import (
	"context"
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeanpaul/roster/internal/prompt"
)

var _ prompt.Prompter = (*Prompter)(nil)

// Prompter asks questions on a terminal.
type Prompter struct {
	in  io.Reader
	out io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: in, out: out}
}

func (p *Prompter) Input(ctx context.Context, q prompt.Question) (string, error) {
	final, err := p.run(ctx, newInputModel(q))
	if err != nil {
		return "", err
	}
	m := final.(inputModel)
	if m.aborted || !m.done {
		return "", prompt.ErrAborted
	}
	return m.answer, nil
}

func (p *Prompter) Select(ctx context.Context, c prompt.Choice) (string, error) {
	if len(c.Options) == 0 {
		return "", fmt.Errorf("tui: choice %q has no options", c.Message)
	}
	final, err := p.run(ctx, newChoiceModel(c))
	if err != nil {
		return "", err
	}
	m := final.(choiceModel)
	if m.aborted || !m.done {
		return "", prompt.ErrAborted
	}
	return m.answer, nil
}

func (p *Prompter) run(ctx context.Context, model tea.Model) (tea.Model, error) {
	prog := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithInput(p.in),
		tea.WithOutput(p.out),
	)
	final, err := prog.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) || errors.Is(err, tea.ErrInterrupted) {
			return nil, prompt.ErrAborted
		}
		return nil, fmt.Errorf("tui: run prompt: %w", err)
	}
	return final, nil
}
