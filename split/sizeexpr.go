package split

import (
	"fmt"
	"strconv"
)

// SizeExpr is the size of an area: a share of the container minus a share of
// the pixels reserved for gutters. It renders as
//
//	calc( {fraction*100}% - {fraction*gutterPixels}px )
type SizeExpr struct {
	Percent  float64
	GutterPx float64
}

// Zero is the size of a collapsed area.
var Zero = SizeExpr{}

func newSizeExpr(fraction, reserved float64) SizeExpr {
	return SizeExpr{Percent: fraction * 100, GutterPx: fraction * reserved}
}

// Fraction returns the container fraction the expression was built from.
func (e SizeExpr) Fraction() float64 {
	return e.Percent / 100
}

// Resolve returns the size in pixels inside a container of the given size.
func (e SizeExpr) Resolve(container float64) float64 {
	v := e.Percent/100*container - e.GutterPx
	if v < 0 {
		return 0
	}
	return v
}

// String renders the expression as a CSS calc().
func (e SizeExpr) String() string {
	return fmt.Sprintf("calc( %s%% - %spx )", formatNumber(e.Percent), formatNumber(e.GutterPx))
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
