package split

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// twoAreas builds a 500px wide container whose two areas measure 250px each.
func twoAreas(t *testing.T, opts Options, specs ...AreaSpec) (*Container, *fakeHost, *recorder, Handle, Handle) {
	t.Helper()
	host := newFakeHost(500, 200)
	rec := &recorder{}
	c := New(host, opts, rec.handlers())
	for len(specs) < 2 {
		specs = append(specs, visible())
	}
	a := c.AddArea(specs[0])
	b := c.AddArea(specs[1])
	host.areaPx[a] = 250
	host.areaPx[b] = 250
	return c, host, rec, a, b
}

func TestDragResizesNeighbours(t *testing.T) {
	c, host, rec, _, _ := twoAreas(t, DefaultOptions())

	c.StartDrag(1, mouse(250, 0))
	require.Len(t, rec.starts, 1)
	assert.Equal(t, DragArmed, c.DragState())
	assert.Equal(t, 1, c.ActiveGutter())
	assert.Len(t, host.listeners, 5)
	assert.Equal(t, 2, host.lockedCount())

	host.fire(EventMouseMove, mouse(150, 0))

	f := fractions(c)
	assert.InDelta(t, 0.3, f[0], 1e-9)
	assert.InDelta(t, 0.7, f[1], 1e-9)
	assert.Equal(t, DragDragging, c.DragState())
	require.Len(t, rec.progress, 1)
	assert.InDelta(t, 30, rec.progress[0].Sizes[0], 1e-9)
	assert.InDelta(t, 70, rec.progress[0].Sizes[1], 1e-9)

	host.fire(EventMouseUp, mouse(150, 0))

	require.Len(t, rec.ends, 1)
	assert.Equal(t, 1, rec.ends[0].GutterNum)
	assert.Empty(t, rec.clicks)
	assert.Empty(t, host.listeners)
	assert.Zero(t, host.lockedCount())
	assert.Equal(t, DragIdle, c.DragState())
	assert.Equal(t, 0, c.ActiveGutter())
}

func TestDragBackToStartRestoresSizes(t *testing.T) {
	c, host, rec, _, _ := twoAreas(t, DefaultOptions())

	c.StartDrag(1, mouse(250, 0))
	host.fire(EventMouseMove, mouse(150, 0))
	host.fire(EventMouseMove, mouse(250, 0))

	f := fractions(c)
	assert.InDelta(t, 0.5, f[0], 1e-9)
	assert.InDelta(t, 0.5, f[1], 1e-9)
	assert.Equal(t, DragDragging, c.DragState())
	require.Len(t, rec.progress, 2)

	host.fire(EventMouseUp, mouse(250, 0))
	assert.Len(t, rec.ends, 1)
	assert.Empty(t, rec.clicks)
}

func TestDragKeepsSumAtOne(t *testing.T) {
	c, host, _, _, _ := twoAreas(t, DefaultOptions())

	c.StartDrag(1, mouse(250, 0))
	for _, x := range []float64{240, 200, 120, 330, 460, 251} {
		host.fire(EventMouseMove, mouse(x, 0))
		assert.InDelta(t, 1, sum(fractions(c)), 0.001, "x=%v", x)
	}
}

func TestTouchDrag(t *testing.T) {
	c, host, rec, _, _ := twoAreas(t, DefaultOptions())

	c.StartDrag(1, PointerEvent{Kind: PointerTouch, X: 250})
	host.fire(EventTouchMove, PointerEvent{Kind: PointerTouch, X: 300})
	host.fire(EventTouchCancel, PointerEvent{Kind: PointerTouch, X: 300})

	assert.InDelta(t, 0.6, fractions(c)[0], 1e-9)
	assert.Len(t, rec.ends, 1)
	assert.Empty(t, host.listeners)
}

func TestVerticalDragUsesY(t *testing.T) {
	opts := DefaultOptions()
	opts.Axis = Vertical
	c, host, _, _, _ := twoAreas(t, opts)

	c.StartDrag(1, mouse(0, 250))
	host.fire(EventMouseMove, mouse(400, 200))

	assert.InDelta(t, 0.4, fractions(c)[0], 1e-9)
}

func TestRightToLeftDragIsMirrored(t *testing.T) {
	opts := DefaultOptions()
	opts.Direction = RTL
	c, host, _, _, _ := twoAreas(t, opts)

	c.StartDrag(1, mouse(250, 0))
	host.fire(EventMouseMove, mouse(150, 0))

	f := fractions(c)
	assert.InDelta(t, 0.7, f[0], 1e-9)
	assert.InDelta(t, 0.3, f[1], 1e-9)
}

func TestPixelRatioScalesOffset(t *testing.T) {
	opts := DefaultOptions()
	opts.PixelRatio = 2
	c, host, _, _, _ := twoAreas(t, opts)

	c.StartDrag(1, mouse(250, 0))
	host.fire(EventMouseMove, mouse(150, 0))

	assert.InDelta(t, 0.4, fractions(c)[0], 1e-9)
}

func TestMinSizeClamps(t *testing.T) {
	t.Run("first area", func(t *testing.T) {
		c, host, _, _, _ := twoAreas(t, DefaultOptions(), AreaSpec{Visible: true, MinSize: ParseMinSize(20)})

		c.StartDrag(1, mouse(250, 0))
		host.fire(EventMouseMove, mouse(5, 0))

		f := fractions(c)
		assert.InDelta(t, 0.2, f[0], 1e-9)
		assert.InDelta(t, 0.8, f[1], 1e-9)
	})

	t.Run("second area", func(t *testing.T) {
		c, host, _, _, _ := twoAreas(t, DefaultOptions(), visible(), AreaSpec{Visible: true, MinSize: ParseMinSize(20)})

		c.StartDrag(1, mouse(250, 0))
		host.fire(EventMouseMove, mouse(500, 0))

		f := fractions(c)
		assert.InDelta(t, 0.8, f[0], 1e-9)
		assert.InDelta(t, 0.2, f[1], 1e-9)
	})
}

func TestDragCollapsesBelowGutter(t *testing.T) {
	c, host, rec, _, _ := twoAreas(t, DefaultOptions())

	c.StartDrag(1, mouse(250, 0))
	host.fire(EventMouseMove, mouse(495, 0))

	assert.Equal(t, []float64{1, 0}, fractions(c))
	assert.Len(t, rec.progress, 1)
}

func TestDragIgnoredWhenBothAreasTooSmall(t *testing.T) {
	c, host, rec, a, b := twoAreas(t, DefaultOptions())
	host.areaPx[a] = 10
	host.areaPx[b] = 10

	c.StartDrag(1, mouse(250, 0))
	host.fire(EventMouseMove, mouse(249.5, 0))
	host.fire(EventMouseUp, mouse(249.5, 0))

	assert.Equal(t, []float64{0.5, 0.5}, fractions(c))
	assert.Empty(t, rec.progress)
	assert.Len(t, rec.ends, 1, "the pointer moved, so this was not a click")
	assert.Empty(t, rec.clicks)
}

func TestDragOutOfCollapsedArea(t *testing.T) {
	host := newFakeHost(500, 200)
	opts := DefaultOptions()
	opts.GutterSize = 10
	c := New(host, opts, Handlers{})
	c.AddArea(visible())
	c.AddArea(visible())

	c.StartDrag(1, mouse(245, 0))
	host.fire(EventMouseMove, mouse(0, 0))
	host.fire(EventMouseUp, mouse(0, 0))
	require.Equal(t, []float64{0, 1}, fractions(c))

	c.StartDrag(1, mouse(0, 0))
	host.fire(EventMouseMove, mouse(100, 0))

	f := fractions(c)
	assert.InDelta(t, 100.0/490, f[0], 1e-9)
	assert.InDelta(t, 390.0/490, f[1], 1e-9)
	assert.InDelta(t, 1, sum(f), 0.001)
}

func TestDragRestylesOnlyDraggedAreas(t *testing.T) {
	host := newFakeHost(900, 200)
	opts := DefaultOptions()
	opts.UseTransition = true
	c := New(host, opts, Handlers{})
	c.Ready()
	a := c.AddArea(visible())
	b := c.AddArea(visible())
	d := c.AddArea(visible())
	require.True(t, host.styles[d].transition)
	delete(host.styles, d)

	c.StartDrag(1, mouse(300, 0))
	host.fire(EventMouseMove, mouse(280, 0))

	assert.Contains(t, host.styles, a)
	assert.Contains(t, host.styles, b)
	assert.NotContains(t, host.styles, d)
	assert.False(t, host.styles[a].transition, "no transition while dragging")
}

func TestClickWithoutMovement(t *testing.T) {
	c, host, rec, _, _ := twoAreas(t, DefaultOptions())

	c.StartDrag(1, mouse(250, 0))
	host.fire(EventMouseMove, mouse(250, 0))
	host.fire(EventMouseUp, mouse(250, 0))

	assert.Len(t, rec.starts, 1)
	assert.Empty(t, rec.progress)
	assert.Empty(t, rec.ends)
	require.Len(t, rec.clicks, 1)
	assert.Equal(t, 1, rec.clicks[0].GutterNum)
	assert.Equal(t, []float64{50, 50}, rec.clicks[0].Sizes)
}

func TestDisabledContainerOnlyClicks(t *testing.T) {
	c, host, rec, _, _ := twoAreas(t, DefaultOptions())
	c.SetDisabled(true)

	c.StartDrag(1, mouse(250, 0))
	assert.Len(t, host.listeners, 3, "only release listeners")
	assert.Zero(t, host.lockedCount())

	host.fire(EventMouseMove, mouse(100, 0))
	host.fire(EventMouseUp, mouse(100, 0))

	assert.Equal(t, []float64{0.5, 0.5}, fractions(c))
	assert.Empty(t, rec.starts)
	assert.Empty(t, rec.ends)
	assert.Len(t, rec.clicks, 1)
	assert.Empty(t, host.listeners)
}

func TestUnresolvedGutterOnlyClicks(t *testing.T) {
	c, host, rec, _, _ := twoAreas(t, DefaultOptions())

	c.StartDrag(5, mouse(250, 0))
	host.fire(EventMouseUp, mouse(250, 0))

	assert.Empty(t, rec.starts)
	require.Len(t, rec.clicks, 1)
	assert.Equal(t, 5, rec.clicks[0].GutterNum)
}

func TestUnknownPointerKindDoesNotTrack(t *testing.T) {
	c, host, rec, _, _ := twoAreas(t, DefaultOptions())

	c.StartDrag(1, PointerEvent{Kind: PointerUnknown, X: 250})
	host.fire(EventMouseMove, mouse(100, 0))

	assert.Empty(t, rec.starts)
	assert.Equal(t, []float64{0.5, 0.5}, fractions(c))
	assert.Zero(t, host.lockedCount())
}

func TestStructuralChangeCancelsDrag(t *testing.T) {
	tests := []struct {
		name   string
		change func(c *Container, a, b Handle)
	}{
		{name: "remove", change: func(c *Container, a, b Handle) { c.RemoveArea(b) }},
		{name: "hide", change: func(c *Container, a, b Handle) { c.Hide(a) }},
		{name: "add", change: func(c *Container, a, b Handle) { c.AddArea(visible()) }},
		{name: "rebuild", change: func(c *Container, a, b Handle) { c.Rebuild(false, false) }},
		{name: "close", change: func(c *Container, a, b Handle) { c.Close() }},
		{name: "disable", change: func(c *Container, a, b Handle) { c.SetDisabled(true) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, host, rec, a, b := twoAreas(t, DefaultOptions())

			c.StartDrag(1, mouse(250, 0))
			host.fire(EventMouseMove, mouse(200, 0))
			tt.change(c, a, b)

			assert.Equal(t, DragIdle, c.DragState())
			assert.Empty(t, host.listeners)
			assert.Zero(t, host.lockedCount())
			assert.Empty(t, rec.ends)
			assert.Empty(t, rec.clicks)

			host.fire(EventMouseMove, mouse(120, 0))
			assert.Len(t, rec.progress, 1)

			host.fire(EventMouseUp, mouse(200, 0))
			assert.Empty(t, rec.ends)
		})
	}
}

func TestNewDragReplacesOldOne(t *testing.T) {
	c, host, rec, _, _ := twoAreas(t, DefaultOptions())

	c.StartDrag(1, mouse(250, 0))
	c.StartDrag(1, mouse(250, 0))

	assert.Len(t, rec.starts, 2)
	assert.Len(t, host.listeners, 5)
	assert.Equal(t, 2, host.lockedCount())
	assert.Empty(t, rec.clicks)

	host.fire(EventMouseUp, mouse(250, 0))
	assert.Len(t, rec.clicks, 1)
}

func TestStopDragWhenIdle(t *testing.T) {
	c, _, rec, _, _ := twoAreas(t, DefaultOptions())

	c.StopDrag()

	assert.Empty(t, rec.ends)
	assert.Empty(t, rec.clicks)
}

func TestDragStateString(t *testing.T) {
	assert.Equal(t, "idle", DragIdle.String())
	assert.Equal(t, "armed", DragArmed.String())
	assert.Equal(t, "dragging", DragDragging.String())
}
