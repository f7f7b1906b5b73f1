// Package layout computes how the terminal is shared between the split
// container and the status bar, and which decorations to drop when space
// runs out.
package layout

// LayoutMode is the size class of the terminal.
type LayoutMode int

const (
	// LayoutFull is for large terminals (>= 140w x 40h).
	LayoutFull LayoutMode = iota

	// LayoutStandard is for medium terminals (>= 100w x 24h).
	LayoutStandard

	// LayoutCompact is for small terminals (>= 40w x 10h).
	// The status bar shrinks to one line.
	LayoutCompact

	// LayoutMinimal is for terminals below minimum size.
	LayoutMinimal
)

// String returns the string representation of the layout mode.
func (m LayoutMode) String() string {
	switch m {
	case LayoutFull:
		return "full"
	case LayoutStandard:
		return "standard"
	case LayoutCompact:
		return "compact"
	case LayoutMinimal:
		return "minimal"
	default:
		return "unknown"
	}
}

// modeThresholds lists the smallest terminal each mode needs, largest first.
var modeThresholds = []struct {
	mode          LayoutMode
	width, height int
}{
	{LayoutFull, FullWidth, FullHeight},
	{LayoutStandard, StandardWidth, StandardHeight},
	{LayoutCompact, MinWidth, MinHeight},
}

// DetermineMode returns the largest mode both dimensions allow.
func DetermineMode(width, height int) LayoutMode {
	for _, t := range modeThresholds {
		if width >= t.width && height >= t.height {
			return t.mode
		}
	}
	return LayoutMinimal
}

// HasNoticeLine reports whether the status bar has room for notifications
// below the key hints.
func (m LayoutMode) HasNoticeLine() bool {
	return m == LayoutFull || m == LayoutStandard
}
