package ui

import (
	"github.com/charmbracelet/lipgloss"

	"splitpane/inspect"
)

// Semantic Color Palette

// Status colors
var (
	// StatusSuccess marks a finished drag.
	StatusSuccess = lipgloss.AdaptiveColor{Light: "#22C55E", Dark: "#22C55E"}

	// StatusRunning marks a drag in progress.
	StatusRunning = lipgloss.AdaptiveColor{Light: "#3B82F6", Dark: "#3B82F6"}

	// StatusWarning marks a terminal too small for the layout.
	StatusWarning = lipgloss.AdaptiveColor{Light: "#F59E0B", Dark: "#F59E0B"}

	// StatusPaused marks a disabled container.
	StatusPaused = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}
)

// UI chrome colors
var (
	// Primary is the accent color, also used for the gutter being dragged.
	Primary = lipgloss.AdaptiveColor{Light: "#7D56F4", Dark: "#7D56F4"}

	// Border is the default pane border color
	Border = lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#3C3C3C"}

	// BorderFocus is the border of panes taking part in a drag
	BorderFocus = lipgloss.AdaptiveColor{Light: "#7D56F4", Dark: "#7D56F4"}

	// TextPrimary is the main text color
	TextPrimary = lipgloss.AdaptiveColor{Light: "#1a1a1a", Dark: "#dddddd"}

	// TextSecondary is for pane bodies
	TextSecondary = lipgloss.AdaptiveColor{Light: "#4B5563", Dark: "#9CA3AF"}

	// TextMuted is for hints and subtle text
	TextMuted = lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"}

	// GutterGlyph is the color of the gutter image.
	GutterGlyph = lipgloss.AdaptiveColor{Light: "#4B5563", Dark: "#1a1a1a"}
)

// Status icons (shape + color)
const (
	IconSuccess  = "+"
	IconRunning  = "○"
	IconWarning  = "!"
	IconPaused   = "⏸"
	IconReady    = "●"
	IconEllipsis = "…"
)

// StatusStyles contains pre-built styles for each status type
var StatusStyles = struct {
	Success lipgloss.Style
	Running lipgloss.Style
	Warning lipgloss.Style
	Paused  lipgloss.Style
}{
	Success: lipgloss.NewStyle().Foreground(StatusSuccess),
	Running: lipgloss.NewStyle().Foreground(StatusRunning),
	Warning: lipgloss.NewStyle().Foreground(StatusWarning),
	Paused:  lipgloss.NewStyle().Foreground(StatusPaused),
}

// TextStyles contains pre-built styles for text elements
var TextStyles = struct {
	Title     lipgloss.Style
	Secondary lipgloss.Style
	Muted     lipgloss.Style
}{
	Title:     lipgloss.NewStyle().Foreground(TextPrimary).Bold(true),
	Secondary: lipgloss.NewStyle().Foreground(TextSecondary),
	Muted:     lipgloss.NewStyle().Foreground(TextMuted),
}

// PaneStyles frame a pane. Locked panes are the two on either side of the
// gutter being dragged.
var PaneStyles = struct {
	Default lipgloss.Style
	Locked  lipgloss.Style
	Plain   lipgloss.Style
}{
	Default: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border),
	Locked: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(BorderFocus),
	Plain: lipgloss.NewStyle(),
}

// GutterStyle returns the style of a gutter strip.
func GutterStyle(color string, active bool) lipgloss.Style {
	var bg lipgloss.TerminalColor = lipgloss.Color(color)
	if active {
		bg = Primary
	}
	return lipgloss.NewStyle().
		Background(bg).
		Foreground(GutterGlyph).
		Align(lipgloss.Center).
		AlignVertical(lipgloss.Center)
}

// BadgeStyle creates a styled badge with the given color
func BadgeStyle(color lipgloss.TerminalColor) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(color).
		Padding(0, 1)
}

// StatusBadge returns a formatted status badge string
func StatusBadge(status string, color lipgloss.TerminalColor) string {
	return BadgeStyle(color).Render(status)
}

func init() {
	inspect.RegisterStyle("pane", PaneStyles.Default)
	inspect.RegisterStyle("pane.locked", PaneStyles.Locked)
	inspect.RegisterStyle("pane.title", TextStyles.Title)
	inspect.RegisterStyle("pane.body", TextStyles.Secondary)
	inspect.RegisterStyle("status.hint", TextStyles.Muted)
}
