package split

import "time"

// Target is where a transient listener is attached.
type Target int

const (
	// TargetDocument receives pointer events anywhere on screen.
	TargetDocument Target = iota
)

// EventName names a pointer event a listener can subscribe to.
type EventName string

const (
	EventMouseMove   EventName = "mousemove"
	EventMouseUp     EventName = "mouseup"
	EventTouchMove   EventName = "touchmove"
	EventTouchEnd    EventName = "touchend"
	EventTouchCancel EventName = "touchcancel"
)

// PointerKind is the input device that produced a pointer event.
type PointerKind int

const (
	PointerUnknown PointerKind = iota
	PointerMouse
	PointerTouch
)

// PointerEvent is a pointer position in screen coordinates.
type PointerEvent struct {
	Kind PointerKind
	X, Y float64
}

// Host is what a container needs from the UI it is rendered into. All calls
// happen on the UI thread.
type Host interface {
	// MeasureContainer returns the laid out size of the container along axis.
	MeasureContainer(axis Axis) float64
	// ApplyAreaStyle renders an area with the given size and order.
	ApplyAreaStyle(h Handle, size SizeExpr, order int, transition bool)
	// ApplyVisibilityStyle collapses a hidden area or restores a shown one.
	ApplyVisibilityStyle(h Handle, visible bool, axis Axis)
	// LockSelection suppresses text selection and native drag on an area.
	LockSelection(h Handle)
	// UnlockSelection undoes LockSelection.
	UnlockSelection(h Handle)
	// Listen subscribes fn to event on target. The returned func releases the
	// subscription and must be safe to call more than once.
	Listen(target Target, event EventName, fn func(PointerEvent)) (release func())
	// RequestRender asks for a repaint.
	RequestRender()
	// Schedule runs fn on the UI thread after d.
	Schedule(d time.Duration, fn func())
}

// AreaMeasurer is implemented by hosts that can report the rendered size of
// an area. Containers fall back to their own arithmetic without it.
type AreaMeasurer interface {
	MeasureArea(h Handle, axis Axis) float64
}
