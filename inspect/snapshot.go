package inspect

import (
	"fmt"
	"strings"
	"time"

	"splitpane/ui/layout"
)

// Snapshot represents a complete UI state at a point in time.
type Snapshot struct {
	// Timestamp when the snapshot was taken.
	Timestamp time.Time `json:"timestamp"`

	// Version of the snapshot format.
	Version string `json:"version"`

	// Terminal contains terminal dimensions.
	Terminal TerminalInfo `json:"terminal"`

	// AppState contains application state information.
	AppState AppStateInfo `json:"app_state"`

	// Layout contains the frame around the split container.
	Layout LayoutInfo `json:"layout"`

	// Split contains the state of the split container.
	Split SplitInfo `json:"split"`

	// Components is the root of the component tree.
	Components *Node `json:"components"`

	// Breakpoints contains information about responsive breakpoints.
	Breakpoints []BreakpointInfo `json:"breakpoints"`

	// Styles are the registered styles by name.
	Styles map[string]*StyleInfo `json:"styles,omitempty"`
}

// TerminalInfo contains terminal dimensions.
type TerminalInfo struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// AppStateInfo contains application-level state.
type AppStateInfo struct {
	// State is the current app state (e.g., "default", "help").
	State string `json:"state"`

	// PaneCount is the number of registered panes, hidden ones included.
	PaneCount int `json:"pane_count"`

	// HiddenCount is the number of hidden panes.
	HiddenCount int `json:"hidden_count"`

	// Notice is the last notification shown in the status bar.
	Notice string `json:"notice,omitempty"`
}

// LayoutInfo contains layout configuration.
type LayoutInfo struct {
	// Mode is the current layout mode.
	Mode string `json:"mode"`

	ContentWidth  int `json:"content_width"`
	ContentHeight int `json:"content_height"`
	StatusHeight  int `json:"status_height"`

	// Degradation contains active degradation flags.
	Degradation DegradationInfo `json:"degradation"`
}

// DegradationInfo contains active UI degradation flags.
type DegradationInfo struct {
	HidePercentages bool `json:"hide_percentages"`
	HidePaneBodies  bool `json:"hide_pane_bodies"`
	HidePaneBorders bool `json:"hide_pane_borders"`
	ShowMinWarning  bool `json:"show_min_warning"`
}

// SplitInfo summarizes the split container.
type SplitInfo struct {
	Axis         string    `json:"axis"`
	Direction    string    `json:"direction"`
	GutterSize   float64   `json:"gutter_size"`
	Disabled     bool      `json:"disabled"`
	DragState    string    `json:"drag_state"`
	ActiveGutter int       `json:"active_gutter,omitempty"`
	Titles       []string  `json:"titles"`
	Sizes        []float64 `json:"sizes"`
	SizeExprs    []string  `json:"size_exprs"`
	Cells        []int     `json:"cells"`
}

// BreakpointInfo contains information about a responsive breakpoint.
type BreakpointInfo struct {
	// Name is the breakpoint name.
	Name string `json:"name"`

	// Threshold is the dimension threshold.
	Threshold int `json:"threshold"`

	// Active indicates if this breakpoint is currently triggered.
	Active bool `json:"active"`

	// Dimension is "width" or "height".
	Dimension string `json:"dimension"`
}

// NewSnapshot creates a new snapshot with current timestamp.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Timestamp: time.Now(),
		Version:   "1.0.0",
	}
}

// WithTerminal sets terminal info and returns the snapshot for chaining.
func (s *Snapshot) WithTerminal(width, height int) *Snapshot {
	s.Terminal = TerminalInfo{Width: width, Height: height}
	return s
}

// WithAppState sets application state and returns the snapshot for chaining.
func (s *Snapshot) WithAppState(state AppStateInfo) *Snapshot {
	s.AppState = state
	return s
}

// WithLayout sets layout info from constraints and degradation.
func (s *Snapshot) WithLayout(c layout.Constraints, d layout.Degradation) *Snapshot {
	s.Layout = LayoutInfo{
		Mode:          c.Mode.String(),
		ContentWidth:  c.ContentWidth,
		ContentHeight: c.ContentHeight,
		StatusHeight:  c.StatusHeight,
		Degradation: DegradationInfo{
			HidePercentages: d.HidePercentages,
			HidePaneBodies:  d.HidePaneBodies,
			HidePaneBorders: d.HidePaneBorders,
			ShowMinWarning:  d.ShowMinWarning,
		},
	}

	s.Breakpoints = []BreakpointInfo{
		{Name: "hide_percentages", Threshold: layout.PercentHideWidth, Active: d.HidePercentages, Dimension: "width"},
		{Name: "hide_pane_bodies", Threshold: layout.BodyHideHeight, Active: d.HidePaneBodies, Dimension: "height"},
		{Name: "hide_pane_borders", Threshold: layout.BorderHideHeight, Active: d.HidePaneBorders, Dimension: "height"},
		{Name: "min_width", Threshold: layout.MinWidth, Active: c.TerminalWidth < layout.MinWidth, Dimension: "width"},
		{Name: "min_height", Threshold: layout.MinHeight, Active: c.TerminalHeight < layout.MinHeight, Dimension: "height"},
	}

	return s
}

// WithSplit sets the split container summary.
func (s *Snapshot) WithSplit(info SplitInfo) *Snapshot {
	s.Split = info
	return s
}

// WithComponents sets the component tree root.
func (s *Snapshot) WithComponents(root *Node) *Snapshot {
	s.Components = root
	return s
}

// WithRegisteredStyles records every registered style.
func (s *Snapshot) WithRegisteredStyles() *Snapshot {
	s.Styles = GetAllStyles()
	return s
}

// ToText returns a human-readable text representation.
func (s *Snapshot) ToText() string {
	var b strings.Builder

	b.WriteString("=== UI Snapshot ===\n")
	b.WriteString(fmt.Sprintf("Time: %s\n", s.Timestamp.Format(time.RFC3339)))
	b.WriteString(fmt.Sprintf("Terminal: %dx%d\n", s.Terminal.Width, s.Terminal.Height))
	b.WriteString(fmt.Sprintf("State: %s\n", s.AppState.State))
	b.WriteString(fmt.Sprintf("Panes: %d (%d hidden)\n", s.AppState.PaneCount, s.AppState.HiddenCount))

	b.WriteString("\n--- Layout ---\n")
	b.WriteString(fmt.Sprintf("Mode: %s\n", s.Layout.Mode))
	b.WriteString(fmt.Sprintf("Content: %dx%d\n", s.Layout.ContentWidth, s.Layout.ContentHeight))
	b.WriteString(fmt.Sprintf("Status: %d rows\n", s.Layout.StatusHeight))

	b.WriteString("\n--- Split ---\n")
	b.WriteString(fmt.Sprintf("Axis: %s, Direction: %s, Gutter: %g\n", s.Split.Axis, s.Split.Direction, s.Split.GutterSize))
	b.WriteString(fmt.Sprintf("Drag: %s", s.Split.DragState))
	if s.Split.ActiveGutter > 0 {
		b.WriteString(fmt.Sprintf(" (gutter %d)", s.Split.ActiveGutter))
	}
	b.WriteString("\n")
	for i, size := range s.Split.Sizes {
		b.WriteString(fmt.Sprintf("  [%d] %6.2f%%", i, size))
		if i < len(s.Split.Cells) {
			b.WriteString(fmt.Sprintf(" %4d cells", s.Split.Cells[i]))
		}
		if i < len(s.Split.SizeExprs) {
			b.WriteString("  " + s.Split.SizeExprs[i])
		}
		b.WriteString("\n")
	}

	b.WriteString("\n--- Active Breakpoints ---\n")
	for _, bp := range s.Breakpoints {
		status := "[ ]"
		if bp.Active {
			status = "[X]"
		}
		b.WriteString(fmt.Sprintf("  %s %s (threshold: %d %s)\n", status, bp.Name, bp.Threshold, bp.Dimension))
	}

	if len(s.Styles) > 0 {
		b.WriteString("\n--- Styles ---\n")
		for _, name := range ListRegisteredStyles() {
			info, ok := s.Styles[name]
			if !ok {
				continue
			}
			b.WriteString(fmt.Sprintf("  %s", name))
			if info.Foreground != "" {
				b.WriteString(fmt.Sprintf(" fg=%s", info.Foreground))
			}
			if info.Border != "" {
				b.WriteString(fmt.Sprintf(" border=%s", info.Border))
			}
			b.WriteString("\n")
		}
	}

	if s.Components != nil {
		b.WriteString("\n--- Components ---\n")
		writeNodeText(&b, s.Components, 0)
	}

	return b.String()
}

func writeNodeText(b *strings.Builder, node *Node, indent int) {
	prefix := strings.Repeat("  ", indent)

	b.WriteString(fmt.Sprintf("%s%s", prefix, node.Type))
	if node.ID != "" {
		b.WriteString(fmt.Sprintf(" [%s]", node.ID))
	}
	b.WriteString(fmt.Sprintf(" (%dx%d)", node.Bounds.Width, node.Bounds.Height))
	if !node.Visible {
		b.WriteString(" hidden")
	}

	if node.Truncated != nil {
		b.WriteString(fmt.Sprintf(" TRUNCATED(%d->%d)",
			node.Truncated.OriginalLength,
			node.Truncated.DisplayLength))
	}

	b.WriteString("\n")

	for _, child := range node.Children {
		writeNodeText(b, child, indent+1)
	}
}
