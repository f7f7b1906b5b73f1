package ui

import (
	"fmt"

	"github.com/mattn/go-runewidth"

	"splitpane/inspect"
	"splitpane/split"
)

// InspectNode implements inspect.Introspectable.
func (v *SplitView) InspectNode() *inspect.Node {
	opts := v.container.Options()
	node := inspect.NewNode("SplitView").
		WithBounds(v.x, v.y, v.width, v.height).
		WithState("axis", opts.Axis.String()).
		WithState("direction", opts.Direction.String()).
		WithState("disabled", opts.Disabled).
		WithState("gutter_size", opts.GutterSize).
		WithState("use_transition", opts.UseTransition).
		WithState("drag_state", v.container.DragState().String()).
		WithState("active_gutter", v.container.ActiveGutter()).
		WithState("listeners", len(v.listeners)).
		WithState("min_size", v.container.MinContainerSize())

	gutters := v.container.Gutters()
	active := v.container.ActiveGutter()
	for _, s := range v.Segments() {
		x, y, w, h := v.segmentBounds(s)
		if s.IsGutter() {
			g := gutters[s.Gutter-1]
			child := inspect.NewNode("Gutter").
				WithID(fmt.Sprintf("gutter-%d", s.Gutter)).
				WithBounds(x, y, w, h).
				WithState("order", g.Order).
				WithState("cursor", g.Cursor).
				WithState("image", g.Image).
				WithState("color", g.Color).
				WithStyles(inspect.ExtractStyleInfo(GutterStyle(g.Color, s.Gutter == active), "gutter"))
			node.AddChild(child.WithVisible(child.Bounds.Area() > 0))
			continue
		}
		node.AddChild(v.inspectPane(s.Handle, x, y, w, h))
	}

	for _, a := range v.container.Hidden() {
		node.AddChild(v.inspectPane(a.Handle, 0, 0, 0, 0))
	}
	return node
}

func (v *SplitView) inspectPane(h split.Handle, x, y, w, hgt int) *inspect.Node {
	st := v.state(h)
	view, _ := v.container.Area(h)
	name := "pane"
	if st.locked > 0 {
		name = "pane.locked"
	}

	title := v.paneTitle(st)
	child := inspect.NewNode("Pane").
		WithID(st.pane.Title).
		WithBounds(x, y, w, hgt).
		WithState("handle", uint64(h)).
		WithState("order", view.Order).
		WithState("percent", view.Percent()).
		WithState("min_percent", view.MinSize*100).
		WithState("size", st.size.String()).
		WithState("locked", st.locked > 0).
		WithContent(title).
		WithStyles(inspect.ExtractStyleInfo(v.paneStyle(st, w, hgt), name))
	child.WithVisible(child.Bounds.Area() > 0)

	iw, _ := v.degradation.InnerSize(w, hgt)
	if tw := runewidth.StringWidth(title); child.Visible && tw > iw {
		child.WithTruncation(tw, iw, iw > 0)
	}
	return child
}

// segmentBounds places a segment in terminal coordinates.
func (v *SplitView) segmentBounds(s Segment) (x, y, w, h int) {
	if v.container.Options().Axis == split.Vertical {
		return v.x, v.y + s.Offset, v.width, s.Length
	}
	return v.x + s.Offset, v.y, s.Length, v.height
}

// SplitInfo summarizes the container for snapshots.
func (v *SplitView) SplitInfo() inspect.SplitInfo {
	opts := v.container.Options()
	info := inspect.SplitInfo{
		Axis:         opts.Axis.String(),
		Direction:    opts.Direction.String(),
		GutterSize:   opts.GutterSize,
		Disabled:     opts.Disabled,
		DragState:    v.container.DragState().String(),
		ActiveGutter: v.container.ActiveGutter(),
		Sizes:        v.container.Sizes(),
	}
	for _, a := range v.container.Displayed() {
		st := v.state(a.Handle)
		info.Titles = append(info.Titles, st.pane.Title)
		info.SizeExprs = append(info.SizeExprs, st.size.String())
		info.Cells = append(info.Cells, v.Cells(a.Handle))
	}
	return info
}
