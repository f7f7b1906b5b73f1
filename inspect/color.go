package inspect

import (
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// ExtractStyleInfo extracts style information from a lipgloss style.
func ExtractStyleInfo(style lipgloss.Style, styleNames ...string) *StyleInfo {
	info := &StyleInfo{
		Foreground:    colorToString(style.GetForeground()),
		Background:    colorToString(style.GetBackground()),
		Bold:          style.GetBold(),
		Italic:        style.GetItalic(),
		Underline:     style.GetUnderline(),
		AppliedStyles: styleNames,
	}

	// Extract padding [top, right, bottom, left]
	top := style.GetPaddingTop()
	right := style.GetPaddingRight()
	bottom := style.GetPaddingBottom()
	left := style.GetPaddingLeft()
	if top > 0 || right > 0 || bottom > 0 || left > 0 {
		info.Padding = []int{top, right, bottom, left}
	}

	// Extract border if present
	if style.GetBorderTop() || style.GetBorderRight() || style.GetBorderBottom() || style.GetBorderLeft() {
		info.Border = borderName(style.GetBorderStyle())
		info.BorderColor = colorToString(style.GetBorderTopForeground())
	}

	return info
}

// borderName names the lipgloss border presets.
func borderName(b lipgloss.Border) string {
	switch b {
	case lipgloss.RoundedBorder():
		return "rounded"
	case lipgloss.NormalBorder():
		return "normal"
	case lipgloss.ThickBorder():
		return "thick"
	case lipgloss.DoubleBorder():
		return "double"
	case lipgloss.HiddenBorder():
		return "hidden"
	default:
		return "custom"
	}
}

// colorToString converts a lipgloss.TerminalColor to a string representation.
func colorToString(c lipgloss.TerminalColor) string {
	if c == nil {
		return ""
	}

	switch v := c.(type) {
	case lipgloss.NoColor:
		return ""
	case lipgloss.Color:
		return string(v)
	case lipgloss.ANSIColor:
		return fmt.Sprintf("ansi(%d)", uint(v))
	case lipgloss.AdaptiveColor:
		return fmt.Sprintf("adaptive(light=%s, dark=%s)", v.Light, v.Dark)
	case lipgloss.CompleteColor:
		return fmt.Sprintf("complete(true=%s, ansi=%s, ansi256=%s)",
			v.TrueColor, v.ANSI, v.ANSI256)
	case lipgloss.CompleteAdaptiveColor:
		return "complete_adaptive"
	default:
		return fmt.Sprintf("%v", c)
	}
}

// styleRegistry tracks the named styles components render with.
type styleRegistry struct {
	mu     sync.RWMutex
	styles map[string]lipgloss.Style
}

var registry = &styleRegistry{
	styles: make(map[string]lipgloss.Style),
}

// RegisterStyle registers a named style for inspection. Registering a name
// again replaces the style.
func RegisterStyle(name string, style lipgloss.Style) {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	registry.styles[name] = style
}

// GetAllStyles returns info for all registered styles.
func GetAllStyles() map[string]*StyleInfo {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	result := make(map[string]*StyleInfo, len(registry.styles))
	for name, style := range registry.styles {
		result[name] = ExtractStyleInfo(style, name)
	}
	return result
}

// ListRegisteredStyles returns the names of all registered styles, sorted.
func ListRegisteredStyles() []string {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	names := make([]string, 0, len(registry.styles))
	for name := range registry.styles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
