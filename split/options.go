// Package split implements the sizing and drag logic of a resizable split
// container. A container divides its visible areas along one axis and keeps
// their sizes as fractions of the container; gutters between areas are sized
// in pixels and reserved from every area proportionally.
package split

import (
	"math"
	"strconv"
	"strings"
)

// Axis is the direction along which areas are laid out.
type Axis int

const (
	// Horizontal lays areas out left to right, gutters resize columns.
	Horizontal Axis = iota
	// Vertical lays areas out top to bottom, gutters resize rows.
	Vertical
)

// String returns the name of the axis.
func (a Axis) String() string {
	if a == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Direction is the text direction of the container.
type Direction int

const (
	LTR Direction = iota
	RTL
)

// String returns the name of the direction.
func (d Direction) String() string {
	if d == RTL {
		return "rtl"
	}
	return "ltr"
}

// DefaultGutterSize is the gutter size used when none (or an invalid one) is configured.
const DefaultGutterSize = 11

// sizeTolerance is how far the sum of size hints may drift from 1.
const sizeTolerance = 0.001

// Hint is an optional number. The zero value is unset.
type Hint struct {
	value float64
	set   bool
}

// Unset is the empty hint.
var Unset = Hint{}

// HintOf returns a hint holding v.
func HintOf(v float64) Hint {
	return Hint{value: v, set: true}
}

// Get returns the value and whether it is set.
func (h Hint) Get() (float64, bool) {
	return h.value, h.set
}

// IsSet reports whether the hint holds a value.
func (h Hint) IsSet() bool {
	return h.set
}

// Value returns the value, or 0 when unset.
func (h Hint) Value() float64 {
	return h.value
}

// String renders the hint, "auto" when unset.
func (h Hint) String() string {
	if !h.set {
		return "auto"
	}
	return strconv.FormatFloat(h.value, 'f', -1, 64)
}

// Options is the container configuration.
type Options struct {
	Axis        Axis
	GutterSize  float64
	FixedWidth  Hint
	FixedHeight Hint
	Disabled    bool
	// UseTransition enables the size transition hook on area styles.
	UseTransition bool
	Direction     Direction
	GutterColor   string
	GutterImageH  string
	GutterImageV  string
	// PixelRatio divides pointer offsets before they are applied to areas.
	PixelRatio float64
}

// DefaultOptions returns the configuration of a container nobody configured.
func DefaultOptions() Options {
	return Options{
		Axis:       Horizontal,
		GutterSize: DefaultGutterSize,
		Direction:  LTR,
		PixelRatio: 1,
	}
}

// normalize replaces out of range values the way the setters would.
func (o Options) normalize() Options {
	if !(o.GutterSize > 0) || math.IsInf(o.GutterSize, 0) {
		o.GutterSize = DefaultGutterSize
	}
	if !(o.PixelRatio > 0) || math.IsInf(o.PixelRatio, 0) {
		o.PixelRatio = 1
	}
	if v, ok := o.FixedWidth.Get(); ok && !(v > 0) {
		o.FixedWidth = Unset
	}
	if v, ok := o.FixedHeight.Get(); ok && !(v > 0) {
		o.FixedHeight = Unset
	}
	if o.Axis != Vertical {
		o.Axis = Horizontal
	}
	if o.Direction != RTL {
		o.Direction = LTR
	}
	return o
}

// AreaSpec is what an area declares about itself.
type AreaSpec struct {
	OrderHint Hint
	// SizeHint is a fraction of the container in [0,1].
	SizeHint Hint
	// MinSize is a fraction of the container in [0,1).
	MinSize float64
	Visible bool
}

// ParseAxis accepts "vertical"; everything else is horizontal.
func ParseAxis(v any) Axis {
	if s, ok := v.(string); ok && strings.TrimSpace(s) == "vertical" {
		return Vertical
	}
	if a, ok := v.(Axis); ok && a == Vertical {
		return Vertical
	}
	return Horizontal
}

// ParseDirection accepts "rtl"; everything else is left to right.
func ParseDirection(v any) Direction {
	if s, ok := v.(string); ok && strings.TrimSpace(s) == "rtl" {
		return RTL
	}
	if d, ok := v.(Direction); ok && d == RTL {
		return RTL
	}
	return LTR
}

// ParseBool keeps booleans as they are. Anything else is true unless it is the
// literal string "false".
func ParseBool(v any) bool {
	switch b := v.(type) {
	case bool:
		return b
	case string:
		return b != "false"
	default:
		return true
	}
}

// toNumber converts v like a loose numeric cast: numbers pass, numeric strings
// parse, anything else (nil and blank strings included) is NaN.
func toNumber(v any) float64 {
	switch n := v.(type) {
	case nil:
		return math.NaN()
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case int32:
		return float64(n)
	case uint:
		return float64(n)
	case uint64:
		return float64(n)
	case uint32:
		return float64(n)
	case bool:
		if n {
			return 1
		}
		return 0
	case Hint:
		if f, ok := n.Get(); ok {
			return f
		}
		return math.NaN()
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return math.NaN()
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return math.NaN()
		}
		return f
	default:
		return math.NaN()
	}
}

// ParseOrderHint returns the order hint for v, unset when v is not numeric.
func ParseOrderHint(v any) Hint {
	n := toNumber(v)
	if math.IsNaN(n) {
		return Unset
	}
	return HintOf(n)
}

// ParseSizeHint converts a percentage in [0,100] to a fraction. Anything else
// is unset.
func ParseSizeHint(v any) Hint {
	n := toNumber(v)
	if math.IsNaN(n) || n < 0 || n > 100 {
		return Unset
	}
	return HintOf(n / 100)
}

// ParseMinSize converts a percentage in (0,100) to a fraction, 0 otherwise.
func ParseMinSize(v any) float64 {
	n := toNumber(v)
	if math.IsNaN(n) || n <= 0 || n >= 100 {
		return 0
	}
	return n / 100
}

// ParseGutterSize returns a positive size, DefaultGutterSize otherwise.
func ParseGutterSize(v any) float64 {
	n := toNumber(v)
	if math.IsNaN(n) || math.IsInf(n, 0) || n <= 0 {
		return DefaultGutterSize
	}
	return n
}

// ParseFixedSize returns a positive size hint, unset otherwise.
func ParseFixedSize(v any) Hint {
	n := toNumber(v)
	if math.IsNaN(n) || math.IsInf(n, 0) || n <= 0 {
		return Unset
	}
	return HintOf(n)
}

// ParseColor keeps non-empty strings.
func ParseColor(v any) string {
	if s, ok := v.(string); ok && s != "" {
		return s
	}
	return ""
}

// ParseImage keeps non-empty strings.
func ParseImage(v any) string {
	return ParseColor(v)
}
