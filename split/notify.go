package split

// DragEvent is delivered with every drag and gutter notification.
type DragEvent struct {
	// GutterNum is the 1-based number of the gutter under the pointer.
	GutterNum int
	// Sizes are the displayed areas' sizes in percent, in display order.
	Sizes []float64
}

// Handlers receive the container's notifications. Nil handlers are skipped.
type Handlers struct {
	DragStart    func(DragEvent)
	DragProgress func(DragEvent)
	DragEnd      func(DragEvent)
	GutterClick  func(DragEvent)
	// TransitionEnd fires once per burst of finished size transitions.
	TransitionEnd func(sizes []float64)
}

type notification int

const (
	notifyStart notification = iota
	notifyProgress
	notifyEnd
	notifyClick
)

func (n notification) String() string {
	switch n {
	case notifyStart:
		return "start"
	case notifyProgress:
		return "progress"
	case notifyEnd:
		return "end"
	case notifyClick:
		return "click"
	default:
		return "unknown"
	}
}

func (c *Container) notify(n notification, gutterNum int) {
	var fn func(DragEvent)
	switch n {
	case notifyStart:
		fn = c.handlers.DragStart
	case notifyProgress:
		fn = c.handlers.DragProgress
	case notifyEnd:
		fn = c.handlers.DragEnd
	case notifyClick:
		fn = c.handlers.GutterClick
	}
	if fn == nil {
		return
	}
	fn(DragEvent{GutterNum: gutterNum, Sizes: c.Sizes()})
}

type transitionState struct {
	seq     uint64
	pending []float64
}

// TransitionEnded reports that an area finished its size transition. Reports
// arriving within TransitionDebounce of each other are coalesced into one
// TransitionEnd carrying the sizes of the last report.
func (c *Container) TransitionEnded() {
	if c.closed || c.handlers.TransitionEnd == nil {
		return
	}
	c.transitions.seq++
	c.transitions.pending = c.Sizes()
	seq := c.transitions.seq
	c.host.Schedule(TransitionDebounce, func() {
		if c.closed || seq != c.transitions.seq {
			return
		}
		sizes := c.transitions.pending
		c.transitions.pending = nil
		c.handlers.TransitionEnd(sizes)
	})
}
