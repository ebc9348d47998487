package tui

import "github.com/charmbracelet/lipgloss"

// ---------------------------------------------------------------------------
// Catppuccin Mocha palette — true-color hex values
// https://catppuccin.com/palette
// ---------------------------------------------------------------------------

const (
	colorMauve    lipgloss.Color = "#cba6f7"
	colorRed      lipgloss.Color = "#f38ba8"
	colorPeach    lipgloss.Color = "#fab387"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorTeal     lipgloss.Color = "#94e2d5"
	colorBlue     lipgloss.Color = "#89b4fa"
	colorLavender lipgloss.Color = "#b4befe"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay0 lipgloss.Color = "#6c7086"
	colorSurface1 lipgloss.Color = "#45475a"
	colorSurface0 lipgloss.Color = "#313244"
	colorBase     lipgloss.Color = "#1e1e2e"
	colorCrust    lipgloss.Color = "#11111b"
)

// Semantic aliases.
const (
	colorAccent = colorMauve
	colorFocus  = colorLavender
	colorError  = colorRed
	colorInfo   = colorTeal
)

var (
	paneBorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSurface1).
			Foreground(colorSubtext0)

	paneFocusedStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorFocus).
				Foreground(colorText)

	paneFloatingStyle = lipgloss.NewStyle().
				Border(lipgloss.DoubleBorder()).
				BorderForeground(colorPeach).
				Foreground(colorText)

	paneTitleStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Bold(true)

	paneMetaStyle = lipgloss.NewStyle().
			Foreground(colorOverlay0)

	statusBarStyle = lipgloss.NewStyle().
			Background(colorSurface0).
			Foreground(colorText)

	statusErrorStyle = lipgloss.NewStyle().
				Background(colorSurface0).
				Foreground(colorError).
				Bold(true)

	workspaceStyle = lipgloss.NewStyle().
			Background(colorSurface0).
			Foreground(colorSubtext0).
			Padding(0, 1)

	workspaceActiveStyle = lipgloss.NewStyle().
				Background(colorAccent).
				Foreground(colorCrust).
				Bold(true).
				Padding(0, 1)

	layoutBadgeStyle = lipgloss.NewStyle().
				Background(colorSurface1).
				Foreground(colorInfo).
				Padding(0, 1)

	paletteBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent).
			Background(colorBase).
			Padding(0, 1)

	paletteQueryStyle = lipgloss.NewStyle().
				Foreground(colorText).
				Bold(true)

	paletteItemStyle = lipgloss.NewStyle().
				Foreground(colorSubtext0)

	paletteCursorStyle = lipgloss.NewStyle().
				Foreground(colorCrust).
				Background(colorFocus).
				Bold(true)

	paletteDisabledStyle = lipgloss.NewStyle().
				Foreground(colorOverlay0).
				Strikethrough(true)

	renameBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorGreen).
			Background(colorBase).
			Padding(0, 1)
)
