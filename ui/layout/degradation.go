package layout

// Degradation holds flags indicating which pane decorations should be
// dropped. Fields are listed in the order they go.
type Degradation struct {
	HidePercentages bool // width < PercentHideWidth
	HidePaneBodies  bool // content height < BodyHideHeight
	HidePaneBorders bool // content height < BorderHideHeight or width < BorderHideWidth
	ShowMinWarning  bool
}

// Threshold constants for degradation
const (
	PercentHideWidth = 60
	BodyHideHeight   = 8
	BorderHideHeight = 5
	BorderHideWidth  = 30
)

// ComputeDegradation calculates which decorations should be dropped.
func ComputeDegradation(c Constraints) Degradation {
	return Degradation{
		HidePercentages: c.ContentWidth < PercentHideWidth,
		HidePaneBodies:  c.ContentHeight < BodyHideHeight,
		HidePaneBorders: c.ContentHeight < BorderHideHeight || c.ContentWidth < BorderHideWidth,
		ShowMinWarning:  c.ShowMinWarning,
	}
}

// ShouldShowBorders returns true if panes are drawn with a border.
func (d Degradation) ShouldShowBorders() bool {
	return !d.HidePaneBorders
}

// ShouldShowBody returns true if pane bodies are drawn below the title.
func (d Degradation) ShouldShowBody() bool {
	return !d.HidePaneBodies
}

// ShouldShowPercent returns true if pane titles carry their size.
func (d Degradation) ShouldShowPercent() bool {
	return !d.HidePercentages
}

// Bordered reports whether a pane of w x h cells gets a border.
func (d Degradation) Bordered(w, h int) bool {
	return !d.HidePaneBorders && w >= PaneMinBorderedCells && h >= PaneMinBorderedCells
}

// InnerSize is what is left of a w x h pane inside its border.
func (d Degradation) InnerSize(w, h int) (int, int) {
	if !d.Bordered(w, h) {
		return max(w, 0), max(h, 0)
	}
	return clamp(w-PaneBorderCells, 0, w), clamp(h-PaneBorderCells, 0, h)
}
