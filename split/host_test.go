package split

import "time"

type appliedStyle struct {
	size       SizeExpr
	order      int
	transition bool
}

type scheduled struct {
	after time.Duration
	fn    func()
}

type listener struct {
	id    int
	event EventName
	fn    func(PointerEvent)
}

// fakeHost records every call the container makes.
type fakeHost struct {
	width, height float64
	// areaPx overrides the measured size of an area.
	areaPx map[Handle]float64

	styles     map[Handle]appliedStyle
	visibility map[Handle]bool
	locked     map[Handle]int
	listeners  []*listener
	nextID     int
	renders    int
	scheduled  []scheduled
	released   int
}

func newFakeHost(width, height float64) *fakeHost {
	return &fakeHost{
		width:      width,
		height:     height,
		areaPx:     map[Handle]float64{},
		styles:     map[Handle]appliedStyle{},
		visibility: map[Handle]bool{},
		locked:     map[Handle]int{},
	}
}

func (h *fakeHost) MeasureContainer(axis Axis) float64 {
	if axis == Vertical {
		return h.height
	}
	return h.width
}

func (h *fakeHost) MeasureArea(handle Handle, axis Axis) float64 {
	if px, ok := h.areaPx[handle]; ok {
		return px
	}
	return h.styles[handle].size.Resolve(h.MeasureContainer(axis))
}

func (h *fakeHost) ApplyAreaStyle(handle Handle, size SizeExpr, order int, transition bool) {
	h.styles[handle] = appliedStyle{size: size, order: order, transition: transition}
}

func (h *fakeHost) ApplyVisibilityStyle(handle Handle, visible bool, axis Axis) {
	h.visibility[handle] = visible
}

func (h *fakeHost) LockSelection(handle Handle) {
	h.locked[handle]++
}

func (h *fakeHost) UnlockSelection(handle Handle) {
	if h.locked[handle] > 0 {
		h.locked[handle]--
	}
}

func (h *fakeHost) Listen(target Target, event EventName, fn func(PointerEvent)) func() {
	h.nextID++
	l := &listener{id: h.nextID, event: event, fn: fn}
	h.listeners = append(h.listeners, l)
	return func() {
		for i, other := range h.listeners {
			if other == l {
				h.listeners = append(h.listeners[:i], h.listeners[i+1:]...)
				h.released++
				return
			}
		}
	}
}

func (h *fakeHost) RequestRender() {
	h.renders++
}

func (h *fakeHost) Schedule(d time.Duration, fn func()) {
	h.scheduled = append(h.scheduled, scheduled{after: d, fn: fn})
}

// fire delivers ev to every listener of event.
func (h *fakeHost) fire(event EventName, ev PointerEvent) {
	for _, l := range append([]*listener(nil), h.listeners...) {
		if l.event == event {
			l.fn(ev)
		}
	}
}

func (h *fakeHost) runScheduled() {
	pending := h.scheduled
	h.scheduled = nil
	for _, s := range pending {
		s.fn()
	}
}

func (h *fakeHost) lockedCount() int {
	n := 0
	for _, c := range h.locked {
		n += c
	}
	return n
}

// recorder collects notifications.
type recorder struct {
	starts, progress, ends, clicks []DragEvent
	transitions                    [][]float64
}

func (r *recorder) handlers() Handlers {
	return Handlers{
		DragStart:     func(e DragEvent) { r.starts = append(r.starts, e) },
		DragProgress:  func(e DragEvent) { r.progress = append(r.progress, e) },
		DragEnd:       func(e DragEvent) { r.ends = append(r.ends, e) },
		GutterClick:   func(e DragEvent) { r.clicks = append(r.clicks, e) },
		TransitionEnd: func(s []float64) { r.transitions = append(r.transitions, s) },
	}
}

func mouse(x, y float64) PointerEvent {
	return PointerEvent{Kind: PointerMouse, X: x, Y: y}
}

func visible() AreaSpec {
	return AreaSpec{Visible: true}
}

func sized(percent float64) AreaSpec {
	return AreaSpec{Visible: true, SizeHint: ParseSizeHint(percent)}
}
