package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/ansi"
	"github.com/muesli/reflow/truncate"
)

var separator = " • "

var sepStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
	Light: "#DDDADA",
	Dark:  "#3C3C3C",
})

// StatusBar shows key help and the last container notification below the
// split view.
type StatusBar struct {
	help          help.Model
	keys          help.KeyMap
	width, height int

	notice      string
	noticeStyle lipgloss.Style
	badges      []string
}

// NewStatusBar creates a status bar listing keys.
func NewStatusBar(keys help.KeyMap) *StatusBar {
	h := help.New()
	h.Styles.ShortKey = TextStyles.Secondary
	h.Styles.ShortDesc = TextStyles.Muted
	h.Styles.FullKey = TextStyles.Secondary
	h.Styles.FullDesc = TextStyles.Muted
	h.ShortSeparator = sepStyle.Render(separator)
	return &StatusBar{
		help:        h,
		keys:        keys,
		noticeStyle: TextStyles.Muted,
	}
}

// SetSize sets the size of the bar.
func (s *StatusBar) SetSize(width, height int) {
	s.width = width
	s.height = height
	s.help.Width = width
}

// SetNotice replaces the notification line.
func (s *StatusBar) SetNotice(text string, style lipgloss.Style) {
	s.notice = text
	s.noticeStyle = style
}

// Notice returns the current notification text.
func (s *StatusBar) Notice() string {
	return s.notice
}

// SetBadges sets the state badges shown right-aligned on the notice line.
func (s *StatusBar) SetBadges(badges ...string) {
	s.badges = badges
}

// ToggleHelp switches between the one-line and the full key help.
func (s *StatusBar) ToggleHelp() {
	s.help.ShowAll = !s.help.ShowAll
}

// ShowingFullHelp reports whether the full key help is shown.
func (s *StatusBar) ShowingFullHelp() bool {
	return s.help.ShowAll
}

// HelpLines is the number of rows the key help needs.
func (s *StatusBar) HelpLines() int {
	if !s.help.ShowAll {
		return 1
	}
	lines := 1
	for _, column := range s.keys.FullHelp() {
		n := 0
		for _, b := range column {
			if b.Enabled() {
				n++
			}
		}
		lines = max(lines, n)
	}
	return lines
}

func (s *StatusBar) String() string {
	if s.width <= 0 || s.height <= 0 {
		return ""
	}

	rows := []string{s.help.View(s.keys)}
	if s.height > s.HelpLines() {
		rows = append(rows, s.noticeLine())
	}
	return lipgloss.NewStyle().
		Width(s.width).
		MaxWidth(s.width).
		Height(s.height).
		MaxHeight(s.height).
		Render(strings.Join(rows, "\n"))
}

// noticeLine puts the notice on the left and the badges on the right.
func (s *StatusBar) noticeLine() string {
	right := strings.Join(s.badges, " ")
	room := s.width - ansi.PrintableRuneWidth(right) - 1
	if right == "" {
		room = s.width
	}
	if room < 1 {
		return truncate.String(right, uint(s.width))
	}
	left := s.noticeStyle.Render(truncate.StringWithTail(s.notice, uint(room), IconEllipsis))
	gap := s.width - ansi.PrintableRuneWidth(left) - ansi.PrintableRuneWidth(right)
	return left + strings.Repeat(" ", max(gap, 0)) + right
}
