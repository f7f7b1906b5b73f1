package split

import (
	"sort"
	"time"

	"splitpane/log"
)

// TransitionDebounce is how long TransitionEnd waits for more transitions to
// finish before it fires.
const TransitionDebounce = 20 * time.Millisecond

// Handle identifies an area registered with a container. The zero Handle is
// never issued.
type Handle uint64

type area struct {
	handle Handle
	spec   AreaSpec
	// order is even for displayed areas; odd slots belong to gutters.
	order int
	size  float64
}

// AreaView is a read-only copy of an area's state.
type AreaView struct {
	Handle    Handle
	Order     int
	Fraction  float64
	Visible   bool
	OrderHint Hint
	SizeHint  Hint
	MinSize   float64
}

// Percent returns the fraction as a percentage.
func (v AreaView) Percent() float64 {
	return v.Fraction * 100
}

func (a *area) view(visible bool) AreaView {
	return AreaView{
		Handle:    a.handle,
		Order:     a.order,
		Fraction:  a.size,
		Visible:   visible,
		OrderHint: a.spec.OrderHint,
		SizeHint:  a.spec.SizeHint,
		MinSize:   a.spec.MinSize,
	}
}

// Container owns the areas of one split and their derived order and size.
// It is not safe for concurrent use; every method must be called from the UI
// thread that also delivers host callbacks.
type Container struct {
	host     Host
	opts     Options
	handlers Handlers

	displayed []*area
	hidden    []*area
	next      Handle

	ready  bool
	closed bool

	drag        dragSession
	dragSeq     uint64
	transitions transitionState
}

// New creates an empty container rendered through host.
func New(host Host, opts Options, handlers Handlers) *Container {
	return &Container{
		host:     host,
		opts:     opts.normalize(),
		handlers: handlers,
	}
}

// Options returns the current configuration.
func (c *Container) Options() Options {
	return c.opts
}

// Ready tells the container that the host painted it once. Size transitions
// stay off before that.
func (c *Container) Ready() {
	c.ready = true
}

// Close cancels any drag without notifications and releases every listener.
// The container ignores all later calls.
func (c *Container) Close() {
	if c.closed {
		return
	}
	c.stopDrag(false)
	c.closed = true
	c.transitions.seq++
}

// AddArea registers an area and rebuilds the layout. Areas declared invisible
// go straight to the hidden list.
func (c *Container) AddArea(spec AreaSpec) Handle {
	if c.closed {
		return 0
	}
	c.stopDrag(false)
	c.next++
	a := &area{handle: c.next, spec: sanitizeSpec(spec)}
	if a.spec.Visible {
		c.displayed = append(c.displayed, a)
	} else {
		c.hidden = append(c.hidden, a)
	}
	c.host.ApplyVisibilityStyle(a.handle, a.spec.Visible, c.opts.Axis)
	c.Rebuild(true, true)
	return a.handle
}

// RemoveArea forgets an area. Only removing a displayed area changes the
// layout.
func (c *Container) RemoveArea(h Handle) {
	if c.closed {
		return
	}
	if i := indexOf(c.displayed, h); i >= 0 {
		c.stopDrag(false)
		c.displayed = append(c.displayed[:i], c.displayed[i+1:]...)
		c.Rebuild(true, true)
		return
	}
	if i := indexOf(c.hidden, h); i >= 0 {
		c.hidden = append(c.hidden[:i], c.hidden[i+1:]...)
	}
}

// UpdateArea rebuilds after a displayed area changed one of its hints.
func (c *Container) UpdateArea(h Handle, resetOrders, resetSizes bool) {
	if c.closed || indexOf(c.displayed, h) < 0 {
		return
	}
	c.Rebuild(resetOrders, resetSizes)
}

// Show moves a hidden area back into the layout.
func (c *Container) Show(h Handle) {
	if c.closed {
		return
	}
	i := indexOf(c.hidden, h)
	if i < 0 {
		return
	}
	c.stopDrag(false)
	a := c.hidden[i]
	a.spec.Visible = true
	c.host.ApplyVisibilityStyle(h, true, c.opts.Axis)
	c.hidden = append(c.hidden[:i], c.hidden[i+1:]...)
	c.displayed = append(c.displayed, a)
	c.Rebuild(true, true)
}

// Hide takes an area out of the layout. Its order and size drop to 0.
func (c *Container) Hide(h Handle) {
	if c.closed {
		return
	}
	i := indexOf(c.displayed, h)
	if i < 0 {
		return
	}
	c.stopDrag(false)
	a := c.displayed[i]
	a.spec.Visible = false
	c.host.ApplyVisibilityStyle(h, false, c.opts.Axis)
	c.displayed = append(c.displayed[:i], c.displayed[i+1:]...)
	a.order = 0
	a.size = 0
	c.hidden = append(c.hidden, a)
	c.Rebuild(true, true)
}

// SetOrderHint changes the requested order of an area.
func (c *Container) SetOrderHint(h Handle, hint Hint) {
	if a := c.lookup(h); a != nil {
		a.spec.OrderHint = hint
		c.UpdateArea(h, true, false)
	}
}

// SetSizeHint changes the requested size fraction of an area.
func (c *Container) SetSizeHint(h Handle, hint Hint) {
	if a := c.lookup(h); a != nil {
		a.spec.SizeHint = sanitizeSizeHint(hint)
		c.UpdateArea(h, false, true)
	}
}

// SetMinSize changes the minimum size fraction of an area.
func (c *Container) SetMinSize(h Handle, fraction float64) {
	if a := c.lookup(h); a != nil {
		a.spec.MinSize = sanitizeMinSize(fraction)
		c.UpdateArea(h, false, true)
	}
}

// SetVisible shows or hides an area.
func (c *Container) SetVisible(h Handle, visible bool) {
	if visible {
		c.Show(h)
	} else {
		c.Hide(h)
	}
}

// Rebuild recomputes order and size of every displayed area and renders
// them. Any drag in progress is cancelled first, silently.
func (c *Container) Rebuild(resetOrders, resetSizes bool) {
	if c.closed {
		return
	}
	c.stopDrag(false)

	if resetOrders {
		if c.allOrderHintsSet() {
			sort.SliceStable(c.displayed, func(i, j int) bool {
				return c.displayed[i].spec.OrderHint.Value() < c.displayed[j].spec.OrderHint.Value()
			})
		}
		for i, a := range c.displayed {
			a.order = i * 2
		}
	}

	if resetSizes {
		total := 0.0
		all := true
		for _, a := range c.displayed {
			if v, ok := a.spec.SizeHint.Get(); ok {
				total += v
			} else {
				all = false
			}
		}
		if all && total > 1-sizeTolerance && total < 1+sizeTolerance {
			for _, a := range c.displayed {
				a.size = a.spec.SizeHint.Value()
			}
		} else if n := len(c.displayed); n > 0 {
			for _, a := range c.displayed {
				a.size = 1 / float64(n)
			}
		}
	}

	containerPx := c.containerSize()
	c.collapse(containerPx)

	log.LayoutTrace("rebuild orders=%v sizes=%v displayed=%d hidden=%d container=%.1f sizes=%v",
		resetOrders, resetSizes, len(c.displayed), len(c.hidden), containerPx, c.Sizes())

	c.refreshStyles(c.displayed...)
	c.host.RequestRender()
}

// collapse zeroes areas thinner than a gutter and hands their share to the
// areas left standing.
func (c *Container) collapse(containerPx float64) {
	if len(c.displayed) == 0 {
		return
	}
	pool := 0.0
	for _, a := range c.displayed {
		if a.size*containerPx < c.opts.GutterSize {
			pool += a.size
			a.size = 0
		}
	}
	standing := 0
	for _, a := range c.displayed {
		if a.size != 0 {
			standing++
		}
	}
	if standing == 0 {
		c.displayed[len(c.displayed)-1].size = 1
		return
	}
	if pool > 0 {
		share := pool / float64(standing)
		for _, a := range c.displayed {
			if a.size != 0 {
				a.size += share
			}
		}
	}
}

func (c *Container) refreshStyles(areas ...*area) {
	reserved := c.reserved()
	transition := c.opts.UseTransition && c.ready && !c.drag.tracking
	for _, a := range areas {
		c.host.ApplyAreaStyle(a.handle, newSizeExpr(a.size, reserved), a.order, transition)
	}
}

// containerSize is the configured fixed size along the axis, or the measured
// one.
func (c *Container) containerSize() float64 {
	fixed := c.opts.FixedWidth
	if c.opts.Axis == Vertical {
		fixed = c.opts.FixedHeight
	}
	if v, ok := fixed.Get(); ok {
		return v
	}
	return c.host.MeasureContainer(c.opts.Axis)
}

// reserved is the number of pixels taken by gutters.
func (c *Container) reserved() float64 {
	return float64(c.GutterCount()) * c.opts.GutterSize
}

func (c *Container) allOrderHintsSet() bool {
	for _, a := range c.displayed {
		if !a.spec.OrderHint.IsSet() {
			return false
		}
	}
	return true
}

func (c *Container) lookup(h Handle) *area {
	if c.closed {
		return nil
	}
	if i := indexOf(c.displayed, h); i >= 0 {
		return c.displayed[i]
	}
	if i := indexOf(c.hidden, h); i >= 0 {
		return c.hidden[i]
	}
	return nil
}

func (c *Container) displayedByOrder(order int) *area {
	for _, a := range c.displayed {
		if a.order == order {
			return a
		}
	}
	return nil
}

func indexOf(areas []*area, h Handle) int {
	for i, a := range areas {
		if a.handle == h {
			return i
		}
	}
	return -1
}

// GutterCount is the number of gutters between displayed areas.
func (c *Container) GutterCount() int {
	if len(c.displayed) < 2 {
		return 0
	}
	return len(c.displayed) - 1
}

// MinContainerSize is the room the gutters alone need along the axis.
func (c *Container) MinContainerSize() float64 {
	return c.reserved()
}

// Area returns the state of one area.
func (c *Container) Area(h Handle) (AreaView, bool) {
	if i := indexOf(c.displayed, h); i >= 0 {
		return c.displayed[i].view(true), true
	}
	if i := indexOf(c.hidden, h); i >= 0 {
		return c.hidden[i].view(false), true
	}
	return AreaView{}, false
}

// Displayed returns the displayed areas in display order.
func (c *Container) Displayed() []AreaView {
	out := make([]AreaView, 0, len(c.displayed))
	for _, a := range c.displayed {
		out = append(out, a.view(true))
	}
	return out
}

// Hidden returns the hidden areas in the order they were hidden.
func (c *Container) Hidden() []AreaView {
	out := make([]AreaView, 0, len(c.hidden))
	for _, a := range c.hidden {
		out = append(out, a.view(false))
	}
	return out
}

// Sizes returns the displayed areas' sizes as percentages, in display order.
func (c *Container) Sizes() []float64 {
	out := make([]float64, len(c.displayed))
	for i, a := range c.displayed {
		out[i] = a.size * 100
	}
	return out
}

// Gutters returns the presented style of every gutter, first to last.
func (c *Container) Gutters() []GutterStyle {
	n := c.GutterCount()
	out := make([]GutterStyle, 0, n)
	for i := 1; i <= n; i++ {
		g := PresentGutter(c.opts.Axis, c.opts.Disabled, c.opts.GutterImageH, c.opts.GutterImageV, c.opts.GutterColor)
		g.Num = i
		g.Order = i*2 - 1
		g.Size = c.opts.GutterSize
		out = append(out, g)
	}
	return out
}

// SetAxis switches the layout axis.
func (c *Container) SetAxis(axis Axis) {
	if c.closed {
		return
	}
	c.opts.Axis = ParseAxis(axis)
	for _, a := range c.displayed {
		c.host.ApplyVisibilityStyle(a.handle, true, c.opts.Axis)
	}
	for _, a := range c.hidden {
		c.host.ApplyVisibilityStyle(a.handle, false, c.opts.Axis)
	}
	c.Rebuild(false, false)
}

// SetFixedWidth overrides the measured width. Unset or non-positive hints
// go back to measuring.
func (c *Container) SetFixedWidth(w Hint) {
	if c.closed {
		return
	}
	c.opts.FixedWidth = ParseFixedSize(w)
	c.Rebuild(false, false)
}

// SetFixedHeight overrides the measured height.
func (c *Container) SetFixedHeight(h Hint) {
	if c.closed {
		return
	}
	c.opts.FixedHeight = ParseFixedSize(h)
	c.Rebuild(false, false)
}

// SetGutterSize changes the gutter size; non-positive sizes reset it to the
// default.
func (c *Container) SetGutterSize(size float64) {
	if c.closed {
		return
	}
	c.opts.GutterSize = ParseGutterSize(size)
	c.Rebuild(false, false)
}

// SetDisabled turns dragging off or on. Gutter clicks still notify.
// Disabling cancels a gesture in progress without notifications.
func (c *Container) SetDisabled(disabled bool) {
	if c.closed {
		return
	}
	if disabled && c.drag.state != DragIdle {
		c.stopDrag(false)
	}
	c.opts.Disabled = disabled
	c.host.RequestRender()
}

// SetUseTransition toggles the size transition hook.
func (c *Container) SetUseTransition(use bool) {
	if c.closed {
		return
	}
	c.opts.UseTransition = use
}

// SetDirection changes the text direction used to interpret drags.
func (c *Container) SetDirection(d Direction) {
	if c.closed {
		return
	}
	c.opts.Direction = ParseDirection(d)
}

// SetGutterColor changes the gutter background.
func (c *Container) SetGutterColor(color string) {
	if c.closed {
		return
	}
	c.opts.GutterColor = ParseColor(color)
	c.host.RequestRender()
}

// SetGutterImages changes the gutter images for both axes.
func (c *Container) SetGutterImages(horizontal, vertical string) {
	if c.closed {
		return
	}
	c.opts.GutterImageH = ParseImage(horizontal)
	c.opts.GutterImageV = ParseImage(vertical)
	c.host.RequestRender()
}

func sanitizeSpec(spec AreaSpec) AreaSpec {
	spec.SizeHint = sanitizeSizeHint(spec.SizeHint)
	spec.MinSize = sanitizeMinSize(spec.MinSize)
	return spec
}

func sanitizeSizeHint(h Hint) Hint {
	if v, ok := h.Get(); ok && (v < 0 || v > 1 || v != v) {
		return Unset
	}
	return h
}

func sanitizeMinSize(v float64) float64 {
	if v != v || v <= 0 || v >= 1 {
		return 0
	}
	return v
}
