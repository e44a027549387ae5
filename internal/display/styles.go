package display

import "github.com/charmbracelet/lipgloss"

// ── Styles ───────────────────────────────────────────────────────

var (
	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94a3b8"))

	inputStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a1a1aa"))

	// BannerStyle is the muted slate used for the banner.
	BannerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94a3b8"))

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#e4e4e7")).
			Bold(true)

	// Primary text: light zinc.
	primaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d4d4d8"))

	// Secondary text: dimmed zinc for hints and metadata.
	secondaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#71717a"))

	urgentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fca5a5"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a1a1aa")).
			Width(12)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#bbf7d0")).
			Bold(true)

	cursorStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#27272a"))

	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#52525b")).
			Padding(0, 1)

	focusedPaneStyle = paneStyle.
				BorderForeground(lipgloss.Color("#94a3b8"))

	// ── Tag chips ──

	chipStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#71717a")).
			Padding(0, 1)

	activeChipStyle = chipStyle.
			Foreground(lipgloss.Color("#18181b")).
			Background(lipgloss.Color("#667eea"))

	// classStyles colour active chips and detail badges by tag class.
	classStyles = map[string]lipgloss.Style{
		"taste-sweet":  activeChipStyle.Background(lipgloss.Color("#f9a8d4")),
		"taste-savory": activeChipStyle.Background(lipgloss.Color("#fdba74")),
		"time-quick":   activeChipStyle.Background(lipgloss.Color("#fde68a")),
	}
)

// chip styles a tag label. Active chips take their class colour.
func chip(label, class string, active, cursor bool) string {
	style := chipStyle
	if active {
		style = activeChipStyle
		if s, ok := classStyles[class]; ok {
			style = s
		}
	}
	if cursor {
		style = style.Underline(true)
	}
	return style.Render(label)
}

// badge styles a detail badge, always in its class colour.
func badge(label, class string) string {
	return chip(label, class, true, false)
}
