package split

// Gutter cursors.
const (
	CursorColResize = "col-resize"
	CursorRowResize = "row-resize"
	CursorDefault   = "default"
)

// DefaultGutterColor is the gutter background when none is configured.
const DefaultGutterColor = "#eeeeee"

// Default gutter images: a column of dots for horizontal containers and a row
// of dots for vertical ones.
const (
	DefaultGutterImageH = "⋮"
	DefaultGutterImageV = "⋯"
)

// GutterStyle is the presented look of one gutter.
type GutterStyle struct {
	// Num is the 1-based gutter number, Order its slot between area orders.
	Num   int
	Order int
	Size  float64
	Axis  Axis
	Color string
	// Cursor is a CSS cursor name.
	Cursor string
	// Image is empty when the container is disabled.
	Image    string
	Disabled bool
}

// PresentGutter maps the container state to the gutter look.
func PresentGutter(axis Axis, disabled bool, imageH, imageV, color string) GutterStyle {
	g := GutterStyle{Axis: axis, Disabled: disabled, Color: color}
	if g.Color == "" {
		g.Color = DefaultGutterColor
	}
	switch {
	case disabled:
		g.Cursor = CursorDefault
	case axis == Vertical:
		g.Cursor = CursorRowResize
		g.Image = imageV
		if g.Image == "" {
			g.Image = DefaultGutterImageV
		}
	default:
		g.Cursor = CursorColResize
		g.Image = imageH
		if g.Image == "" {
			g.Image = DefaultGutterImageH
		}
	}
	return g
}
