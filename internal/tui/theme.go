package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Core palette
	Green     = lipgloss.Color("#00FF41")
	DarkGreen = lipgloss.Color("#008F11")
	Cyan      = lipgloss.Color("#00D4AA")
	Red       = lipgloss.Color("#FF4136")
	Amber     = lipgloss.Color("#FFD700")
	LightGray = lipgloss.Color("#aaaaaa")

	// Banner
	BannerStyle = lipgloss.NewStyle().
			Foreground(Green).
			Bold(true)

	// List header
	HeaderStyle = lipgloss.NewStyle().
			Bold(true)

	// Notices after a change
	SuccessStyle = lipgloss.NewStyle().
			Foreground(Green).
			Bold(true)

	RemovedStyle = lipgloss.NewStyle().
			Foreground(Red).
			Bold(true)

	// Error
	ErrorStyle = lipgloss.NewStyle().
			Foreground(Red).
			Bold(true)

	FarewellStyle = lipgloss.NewStyle().
			Bold(true)

	// Prompts
	QuestionMarkStyle = lipgloss.NewStyle().
				Foreground(Amber).
				Bold(true)

	QuestionStyle = lipgloss.NewStyle().
			Bold(true)

	AnswerStyle = lipgloss.NewStyle().
			Foreground(Cyan)

	DefaultHintStyle = lipgloss.NewStyle().
				Foreground(LightGray)

	// Help text
	HelpStyle = lipgloss.NewStyle().
			Foreground(DarkGreen)
)
