package layout

// Constraints holds the computed frame around the split container.
type Constraints struct {
	// Terminal dimensions
	TerminalWidth  int
	TerminalHeight int

	// Computed mode
	Mode LayoutMode

	// Content is the area the split container is drawn into, at the top
	// left of the terminal.
	ContentWidth  int
	ContentHeight int

	// Status bar below the content.
	StatusWidth  int
	StatusHeight int

	// ShowMinWarning is set when the terminal is below minimum size.
	ShowMinWarning bool
}

// ComputeConstraints calculates layout constraints for the given terminal dimensions.
func ComputeConstraints(width, height int) Constraints {
	width = max(width, 0)
	height = max(height, 0)
	c := Constraints{
		TerminalWidth:  width,
		TerminalHeight: height,
		Mode:           DetermineMode(width, height),
	}
	c.ShowMinWarning = width < MinWidth || height < MinHeight

	c.StatusWidth = width
	c.StatusHeight = min(computeStatusHeight(c.Mode), height)

	c.ContentWidth = width
	c.ContentHeight = height - c.StatusHeight
	return c
}

func computeStatusHeight(mode LayoutMode) int {
	if mode.HasNoticeLine() {
		return StatusStandardHeight
	}
	return StatusMinHeight
}

// WithHelp grows the status bar so that lines of help replace the key hint
// line. The content keeps at least one row.
func (c Constraints) WithHelp(lines int) Constraints {
	if lines <= 1 {
		return c
	}
	want := min(lines, HelpMaxHeight) + c.StatusHeight - StatusMinHeight
	want = min(want, c.TerminalHeight-1)
	if want <= c.StatusHeight {
		return c
	}
	c.StatusHeight = want
	c.ContentHeight = c.TerminalHeight - want
	return c
}

// AxisLength is the content length along the split axis.
func (c Constraints) AxisLength(vertical bool) int {
	if vertical {
		return c.ContentHeight
	}
	return c.ContentWidth
}

// FitsGutters reports whether the content has room for gutters needing
// minCells along the split axis.
func (c Constraints) FitsGutters(vertical bool, minCells float64) bool {
	return float64(c.AxisLength(vertical)) >= minCells
}

func clamp(value, minVal, maxVal int) int {
	if value < minVal {
		return minVal
	}
	if value > maxVal {
		return maxVal
	}
	return value
}
