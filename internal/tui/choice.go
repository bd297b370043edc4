package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeanpaul/roster/internal/prompt"
)

type choiceItem struct {
	label string
}

func (i choiceItem) Title() string       { return i.label }
func (i choiceItem) Description() string { return "" }
func (i choiceItem) FilterValue() string { return i.label }

// choiceModel asks for one option of a closed list.
type choiceModel struct {
	choice  prompt.Choice
	list    list.Model
	answer  string
	done    bool
	aborted bool
}

func newChoiceModel(c prompt.Choice) choiceModel {
	items := make([]list.Item, len(c.Options))
	for i, opt := range c.Options {
		items[i] = choiceItem{label: opt}
	}

	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	d.SetSpacing(0)
	d.Styles.SelectedTitle = lipgloss.NewStyle().Foreground(Green).Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(Green).PaddingLeft(1)

	l := list.New(items, d, 40, len(c.Options)+6)
	l.Title = c.Message
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(false)
	l.SetFilteringEnabled(false)
	l.KeyMap.Quit.SetEnabled(false)
	l.Styles.Title = QuestionStyle
	l.Select(c.DefaultIndex())

	return choiceModel{
		choice: c,
		list:   l,
	}
}

func (m choiceModel) Init() tea.Cmd {
	return nil
}

func (m choiceModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.aborted = true
			return m, tea.Quit
		case "enter":
			if selected, ok := m.list.SelectedItem().(choiceItem); ok {
				m.answer = selected.label
				m.done = true
				return m, tea.Quit
			}
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m choiceModel) View() string {
	if m.done {
		return questionLine(m.choice.Message, "") + " " + AnswerStyle.Render(m.answer) + "\n"
	}
	if m.aborted {
		return questionLine(m.choice.Message, "") + "\n"
	}

	var b strings.Builder
	b.WriteString(m.list.View() + "\n")
	b.WriteString(HelpStyle.Render("↑/↓: Navigate | Enter: Select | Esc: Cancel") + "\n")
	return b.String()
}
