package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette — calm study-desk tones on a dark terminal
var (
	Primary = lipgloss.Color("#7c6af7") // Soft Violet
	Success = lipgloss.Color("#45d9a0") // Mint
	Error   = lipgloss.Color("#f7716a") // Coral
	Warning = lipgloss.Color("#f7c76a") // Amber
	Info    = lipgloss.Color("#6ab8f7") // Sky
	Accent  = lipgloss.Color("#f76ab8") // Pink
	Text    = lipgloss.Color("#eceaf6") // Near White
	TextDim = lipgloss.Color("#8b87a3") // Lavender Grey
	BgDark  = lipgloss.Color("#14121f") // Deep Ink
	BgCard  = lipgloss.Color("#1f1c2e") // Dark Violet
	Border  = lipgloss.Color("#363150") // Dusk
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Layout
var (
	Header = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Footer = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Done = lipgloss.NewStyle().
		Foreground(TextDim).
		Strikethrough(true)
)

// Priority accents for task rows.
var (
	PriorityHigh = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	PriorityMedium = lipgloss.NewStyle().
			Foreground(Warning)

	PriorityLow = lipgloss.NewStyle().
			Foreground(Info)
)

// Components
var (
	ProgressFilled = lipgloss.NewStyle().
			Background(Primary)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)

	TabActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(Text).
			Bold(true).
			Padding(0, 1)

	TabInactive = lipgloss.NewStyle().
			Foreground(TextDim).
			Padding(0, 1)
)
