package ui

import "github.com/charmbracelet/lipgloss"

var (
	accent  = lipgloss.Color("33")
	green   = lipgloss.Color("34")
	red     = lipgloss.Color("160")
	subtle  = lipgloss.Color("245")
	surface = lipgloss.Color("252")

	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(accent)
	subtitleStyle = lipgloss.NewStyle().Foreground(subtle)
	sectionStyle  = lipgloss.NewStyle().Bold(true).MarginTop(1)
	panelStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(surface).Padding(0, 1)
	focusedPanel  = panelStyle.BorderForeground(accent)

	pendingCountStyle   = lipgloss.NewStyle().Foreground(subtle)
	completedCountStyle = lipgloss.NewStyle().Foreground(green)
	totalStyle          = lipgloss.NewStyle().Foreground(subtle)

	checkStyle     = lipgloss.NewStyle().Foreground(green).Bold(true)
	doneTitleStyle = lipgloss.NewStyle().Foreground(subtle).Strikethrough(true)
	openTitleStyle = lipgloss.NewStyle()
	statusStyle    = lipgloss.NewStyle().Foreground(subtle)
	cursorStyle    = lipgloss.NewStyle().Foreground(accent).Bold(true)
	disabledStyle  = lipgloss.NewStyle().Faint(true)

	emptyTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(subtle)
	errorStyle      = lipgloss.NewStyle().Foreground(red).Border(lipgloss.NormalBorder()).BorderForeground(red).Padding(0, 1)
	buttonStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Background(accent).Padding(0, 1)
	promptStyle     = lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(accent).Padding(0, 2)
)
