package tui

import "github.com/charmbracelet/lipgloss"

var (
	// titleStyle is used for screen and section titles.
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62")). // Purple
			MarginBottom(1)

	// divisionStyle is used for division headers in the sidebar.
	divisionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	// selectedStyle is used for the row under the cursor.
	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("170")). // Light purple
			Bold(true)

	// normalStyle is used for non-selected rows.
	normalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")) // Light gray

	// dimStyle is used for secondary detail text.
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")) // Dark gray

	// urgentStyle marks high urgency and overdue rows.
	urgentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")). // Red
			Bold(true)

	// warnStyle marks medium urgency and upcoming rows.
	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")) // Orange

	// okStyle marks current and active rows.
	okStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("78")) // Green

	// zoneTabStyle renders an inactive zone tab.
	zoneTabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Padding(0, 1)

	// activeZoneTabStyle renders the selected zone tab.
	activeZoneTabStyle = lipgloss.NewStyle().
				Background(lipgloss.Color("62")).
				Foreground(lipgloss.Color("230")).
				Bold(true).
				Padding(0, 1)

	// errorStyle is used for error messages.
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	// helpStyle is used for the help footer.
	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1)
)
