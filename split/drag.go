package split

import "splitpane/log"

// DragState is the phase of a gutter gesture.
type DragState int

const (
	// DragIdle means no pointer is down on a gutter.
	DragIdle DragState = iota
	// DragArmed means a pointer went down on a gutter and has not moved.
	DragArmed
	// DragDragging means the pointer moved since it went down.
	DragDragging
)

// String returns the name of the state.
func (s DragState) String() string {
	switch s {
	case DragArmed:
		return "armed"
	case DragDragging:
		return "dragging"
	default:
		return "idle"
	}
}

type dragSession struct {
	id        uint64
	state     DragState
	gutterNum int
	// tracking is set when both areas were resolved and the container was
	// enabled, i.e. when moves resize areas.
	tracking bool
	a, b     *area
	start    PointerEvent

	containerPx float64
	reserved    float64
	pxA, pxB    float64
	fracA       float64
	fracB       float64

	listeners Scope
}

// DragState returns the phase of the current gesture.
func (c *Container) DragState() DragState {
	return c.drag.state
}

// ActiveGutter returns the gutter number of the current gesture, 0 when idle.
func (c *Container) ActiveGutter() int {
	if c.drag.state == DragIdle {
		return 0
	}
	return c.drag.gutterNum
}

// StartDrag begins a gesture on gutter gutterNum (1 is the gutter after the
// first displayed area). End listeners are always registered so a click is
// reported even when the container is disabled or the gutter has no areas
// on both sides.
func (c *Container) StartDrag(gutterNum int, ev PointerEvent) {
	if c.closed {
		return
	}
	c.stopDrag(false)

	c.dragSeq++
	id := c.dragSeq
	c.drag = dragSession{id: id, state: DragArmed, gutterNum: gutterNum}
	end := func(PointerEvent) {
		if c.drag.id == id {
			c.StopDrag()
		}
	}
	c.drag.listeners.Add(c.host.Listen(TargetDocument, EventMouseUp, end))
	c.drag.listeners.Add(c.host.Listen(TargetDocument, EventTouchEnd, end))
	c.drag.listeners.Add(c.host.Listen(TargetDocument, EventTouchCancel, end))

	if c.opts.Disabled {
		log.InputTrace("gutter %d pressed on disabled container", gutterNum)
		return
	}

	order := gutterNum*2 - 1
	a := c.displayedByOrder(order - 1)
	b := c.displayedByOrder(order + 1)
	if a == nil || b == nil {
		log.InputTrace("gutter %d has no areas on both sides", gutterNum)
		return
	}
	if ev.Kind != PointerMouse && ev.Kind != PointerTouch {
		return
	}

	c.drag.a, c.drag.b = a, b
	c.drag.start = ev
	c.drag.containerPx = c.containerSize()
	c.drag.reserved = c.reserved()
	c.drag.pxA = c.areaPixels(a, c.drag.containerPx)
	c.drag.pxB = c.areaPixels(b, c.drag.containerPx)
	c.drag.fracA = a.size
	c.drag.fracB = b.size

	move := func(ev PointerEvent) {
		if c.drag.id == id {
			c.dragMove(ev)
		}
	}
	c.drag.listeners.Add(c.host.Listen(TargetDocument, EventMouseMove, move))
	c.drag.listeners.Add(c.host.Listen(TargetDocument, EventTouchMove, move))

	c.host.LockSelection(a.handle)
	c.host.LockSelection(b.handle)
	c.drag.tracking = true

	log.DragTrace("start gutter=%d container=%.1f a=%.1fpx/%.4f b=%.1fpx/%.4f",
		gutterNum, c.drag.containerPx, c.drag.pxA, c.drag.fracA, c.drag.pxB, c.drag.fracB)
	c.notify(notifyStart, gutterNum)
}

// StopDrag ends the gesture as a pointer release would: a gesture without
// movement is reported as a gutter click, anything else as a drag end.
func (c *Container) StopDrag() {
	c.stopDrag(true)
}

func (c *Container) stopDrag(notify bool) {
	if c.drag.state == DragIdle {
		return
	}
	s := c.drag
	c.drag = dragSession{}
	for _, a := range c.displayed {
		c.host.UnlockSelection(a.handle)
	}
	s.listeners.Release()

	if !notify {
		log.DragTrace("cancelled gutter=%d state=%s", s.gutterNum, s.state)
		return
	}
	if s.state == DragArmed {
		c.notify(notifyClick, s.gutterNum)
	} else {
		c.notify(notifyEnd, s.gutterNum)
	}
}

// areaPixels is the rendered size of an area, asked from the host when it
// can tell.
func (c *Container) areaPixels(a *area, containerPx float64) float64 {
	if m, ok := c.host.(AreaMeasurer); ok {
		return m.MeasureArea(a.handle, c.opts.Axis)
	}
	return newSizeExpr(a.size, c.reserved()).Resolve(containerPx)
}

func (c *Container) dragMove(ev PointerEvent) {
	if !c.drag.tracking {
		return
	}
	if ev.Kind != PointerMouse && ev.Kind != PointerTouch {
		return
	}
	if c.drag.state == DragArmed {
		if ev.X == c.drag.start.X && ev.Y == c.drag.start.Y {
			return
		}
		c.drag.state = DragDragging
	}
	c.applyDrag(ev)
}

func (c *Container) applyDrag(end PointerEvent) {
	s := &c.drag
	gutter := c.opts.GutterSize

	offset := s.start.X - end.X
	if c.opts.Axis == Vertical {
		offset = s.start.Y - end.Y
	}
	offset /= c.opts.PixelRatio
	if c.opts.Direction == RTL {
		offset = -offset
	}

	newA := s.pxA - offset
	newB := s.pxB + offset
	scale := s.pixelsPerFraction()
	minA := s.a.spec.MinSize * scale
	minB := s.b.spec.MinSize * scale

	switch {
	case newA < gutter && newB < gutter:
		return
	case newA < minA:
		newB -= minA - newA
		newA = minA
	case newB < minB:
		newA -= minB - newB
		newB = minB
	case newA < gutter:
		newB += newA
		newA = 0
	case newB < gutter:
		newA += newB
		newB = 0
	}
	// A minimum larger than both areas together leaves nothing for the other.
	if newA < 0 {
		newB += newA
		newA = 0
	}
	if newB < 0 {
		newA += newB
		newB = 0
	}

	total := s.fracA + s.fracB
	switch {
	case newA == 0:
		s.a.size = 0
		s.b.size = total
	case newB == 0:
		s.a.size = total
		s.b.size = 0
	case s.fracA == 0:
		s.b.size = s.fracB * newB / s.safePixels(s.pxB)
		s.a.size = s.fracB - s.b.size
	case s.fracB == 0:
		s.a.size = s.fracA * newA / s.safePixels(s.pxA)
		s.b.size = s.fracA - s.a.size
	default:
		s.a.size = s.fracA * newA / s.safePixels(s.pxA)
		s.b.size = total - s.a.size
	}

	c.refreshStyles(s.a, s.b)
	c.notify(notifyProgress, s.gutterNum)
}

// pixelsPerFraction is how many pixels one whole container fraction was
// worth when the drag started.
func (s *dragSession) pixelsPerFraction() float64 {
	switch {
	case s.fracA > 0 && s.pxA > 0:
		return s.pxA / s.fracA
	case s.fracB > 0 && s.pxB > 0:
		return s.pxB / s.fracB
	case s.containerPx-s.reserved > 0:
		return s.containerPx - s.reserved
	default:
		return s.containerPx
	}
}

func (s *dragSession) safePixels(px float64) float64 {
	if px > 0 {
		return px
	}
	if p := s.pixelsPerFraction(); p > 0 {
		return p
	}
	return 1
}
