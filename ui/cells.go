package ui

import (
	"math"
	"sort"

	"splitpane/split"
)

// Segment is a run of cells along the split axis, either a pane or a gutter.
type Segment struct {
	// Handle is the pane drawn in the segment, zero for gutters.
	Handle split.Handle
	// Gutter is the 1-based gutter number, zero for panes.
	Gutter int
	Offset int
	Length int
}

// IsGutter reports whether the segment is a gutter.
func (s Segment) IsGutter() bool {
	return s.Gutter > 0
}

// Contains reports whether pos along the axis falls into the segment.
func (s Segment) Contains(pos int) bool {
	return pos >= s.Offset && pos < s.Offset+s.Length
}

// distribute rounds sizes to whole cells that add up to total. Cells left
// over after flooring go to the largest remainders, earlier sizes first on
// ties.
func distribute(sizes []float64, total int) []int {
	out := make([]int, len(sizes))
	if len(sizes) == 0 || total <= 0 {
		return out
	}

	type remainder struct {
		i    int
		frac float64
	}
	used := 0
	var rems, fallback []remainder
	for i, v := range sizes {
		if !(v > 0) || math.IsInf(v, 0) {
			fallback = append(fallback, remainder{i: i})
			continue
		}
		f := math.Floor(v)
		out[i] = int(f)
		used += out[i]
		rems = append(rems, remainder{i: i, frac: v - f})
	}

	// Rounding error can push the floors over the total.
	for used > total {
		largest := 0
		for i := range out {
			if out[i] > out[largest] {
				largest = i
			}
		}
		out[largest]--
		used--
	}

	if len(rems) == 0 {
		rems = fallback
	}
	sort.SliceStable(rems, func(a, b int) bool {
		return rems[a].frac > rems[b].frac
	})
	for k := 0; used < total; k++ {
		out[rems[k%len(rems)].i]++
		used++
	}
	return out
}

// Segments lays the displayed panes and the gutters between them out along
// the axis, first segment at offset 0. Right-to-left horizontal containers
// are mirrored so the first pane sits at the right edge.
func (v *SplitView) Segments() []Segment {
	displayed := v.container.Displayed()
	if len(displayed) == 0 {
		return nil
	}
	opts := v.container.Options()
	length := v.axisLength()

	gutter := int(math.Round(opts.GutterSize))
	gutters := len(displayed) - 1
	avail := max(length-gutter*gutters, 0)

	exact := make([]float64, len(displayed))
	for i, a := range displayed {
		if st, ok := v.panes[a.Handle]; ok {
			exact[i] = st.size.Resolve(float64(length))
		}
	}
	cells := distribute(exact, avail)

	segs := make([]Segment, 0, len(displayed)+gutters)
	offset := 0
	for i, a := range displayed {
		segs = append(segs, Segment{Handle: a.Handle, Offset: offset, Length: cells[i]})
		offset += cells[i]
		if i < gutters {
			g := min(gutter, max(length-offset, 0))
			segs = append(segs, Segment{Gutter: i + 1, Offset: offset, Length: g})
			offset += g
		}
	}

	if opts.Axis == split.Horizontal && opts.Direction == split.RTL {
		for i := range segs {
			segs[i].Offset = length - segs[i].Offset - segs[i].Length
		}
		for i, j := 0, len(segs)-1; i < j; i, j = i+1, j-1 {
			segs[i], segs[j] = segs[j], segs[i]
		}
	}
	return segs
}

// Cells returns the number of cells of a displayed pane along the axis.
func (v *SplitView) Cells(h split.Handle) int {
	for _, s := range v.Segments() {
		if !s.IsGutter() && s.Handle == h {
			return s.Length
		}
	}
	return 0
}

// GutterAt returns the gutter under the terminal cell (x, y), 0 when there is
// none.
func (v *SplitView) GutterAt(x, y int) int {
	x -= v.x
	y -= v.y
	if x < 0 || y < 0 || x >= v.width || y >= v.height {
		return 0
	}
	pos := x
	if v.container.Options().Axis == split.Vertical {
		pos = y
	}
	for _, s := range v.Segments() {
		if s.IsGutter() && s.Contains(pos) {
			return s.Gutter
		}
	}
	return 0
}

func (v *SplitView) axisLength() int {
	if v.container.Options().Axis == split.Vertical {
		return v.height
	}
	return v.width
}
