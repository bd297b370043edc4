package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeanpaul/roster/internal/prompt"
)

// inputModel asks one free-text question.
type inputModel struct {
	question prompt.Question
	input    textinput.Model
	answer   string
	done     bool
	aborted  bool
}

func newInputModel(q prompt.Question) inputModel {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = q.Default
	ti.PlaceholderStyle = DefaultHintStyle
	ti.TextStyle = AnswerStyle
	ti.Focus()

	return inputModel{
		question: q,
		input:    ti,
	}
}

func (m inputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.aborted = true
			return m, tea.Quit
		case tea.KeyEnter:
			m.answer = m.input.Value()
			if strings.TrimSpace(m.answer) == "" {
				m.answer = m.question.Default
			}
			m.done = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.input.Width = msg.Width - 4
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m inputModel) View() string {
	if m.done {
		return questionLine(m.question.Message, "") + " " + AnswerStyle.Render(m.answer) + "\n"
	}
	if m.aborted {
		return questionLine(m.question.Message, "") + "\n"
	}

	var b strings.Builder
	b.WriteString(questionLine(m.question.Message, m.question.Default) + "\n")
	b.WriteString(m.input.View() + "\n")
	if m.question.Err != "" {
		b.WriteString(ErrorStyle.Render(">> "+m.question.Err) + "\n")
	}
	return b.String()
}

func questionLine(message, def string) string {
	line := QuestionMarkStyle.Render("?") + " " + QuestionStyle.Render(message)
	if def != "" {
		line += " " + DefaultHintStyle.Render("("+def+")")
	}
	return line
}
