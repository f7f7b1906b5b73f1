package ui

import (
	"os"
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"splitpane/split"
	"splitpane/testing/snapshot"
	"splitpane/ui/layout"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

func newView(t *testing.T, opts split.Options, handlers split.Handlers, sizes ...float64) (*SplitView, []split.Handle) {
	t.Helper()
	v := NewSplitView(opts, handlers)
	titles := []string{"Left", "Middle", "Right"}
	var handles []split.Handle
	for i, size := range sizes {
		h := v.AddPane(Pane{Title: titles[i], Body: "body"}, split.AreaSpec{Visible: true, SizeHint: split.ParseSizeHint(size)})
		require.NotZero(t, h)
		handles = append(handles, h)
	}
	return v, handles
}

func cellOptions() split.Options {
	opts := split.DefaultOptions()
	opts.GutterSize = 1
	return opts
}

func press(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func motion(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft}
}

func release(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonNone}
}

func TestDistribute(t *testing.T) {
	tests := []struct {
		name  string
		sizes []float64
		total int
		want  []int
	}{
		{name: "ties go to earlier sizes", sizes: []float64{33.3, 33.3, 33.3}, total: 100, want: []int{34, 33, 33}},
		{name: "collapsed sizes stay empty", sizes: []float64{0, 50.5, 49.5}, total: 100, want: []int{0, 51, 49}},
		{name: "over allocation is taken back", sizes: []float64{60, 60}, total: 100, want: []int{50, 50}},
		{name: "nothing to share", sizes: []float64{0, 0}, total: 5, want: []int{3, 2}},
		{name: "no room", sizes: []float64{10, 10}, total: 0, want: []int{0, 0}},
		{name: "no sizes", sizes: nil, total: 10, want: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := distribute(tt.sizes, tt.total)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSegmentsFillTheAxis(t *testing.T) {
	v, handles := newView(t, cellOptions(), split.Handlers{}, 25, 50, 25)
	v.SetRect(0, 0, 81, 20)

	segs := v.Segments()
	require.Len(t, segs, 5)
	assert.Equal(t, Segment{Handle: handles[0], Offset: 0, Length: 20}, segs[0])
	assert.Equal(t, Segment{Gutter: 1, Offset: 20, Length: 1}, segs[1])
	assert.Equal(t, Segment{Handle: handles[1], Offset: 21, Length: 39}, segs[2])
	assert.Equal(t, Segment{Gutter: 2, Offset: 60, Length: 1}, segs[3])
	assert.Equal(t, Segment{Handle: handles[2], Offset: 61, Length: 20}, segs[4])

	assert.Equal(t, 1, v.GutterAt(20, 5))
	assert.Equal(t, 2, v.GutterAt(60, 0))
	assert.Equal(t, 0, v.GutterAt(19, 0))
	assert.Equal(t, 0, v.GutterAt(20, 20))
	assert.Equal(t, 39.0, v.MeasureArea(handles[1], split.Horizontal))
}

func TestSetRectKeepsDraggedSizes(t *testing.T) {
	v, _ := newView(t, cellOptions(), split.Handlers{}, 50, 50)
	v.SetRect(0, 0, 81, 20)

	v.Update(press(40, 5))
	v.Update(motion(30, 5))
	v.Update(release(30, 5))
	require.Equal(t, []float64{37.5, 62.5}, v.Container().Sizes())

	v.SetRect(0, 0, 161, 20)
	assert.Equal(t, []float64{37.5, 62.5}, v.Container().Sizes())
}

func TestMouseDragResizesPanes(t *testing.T) {
	var ends []split.DragEvent
	v, handles := newView(t, cellOptions(), split.Handlers{
		DragEnd: func(e split.DragEvent) { ends = append(ends, e) },
	}, 50, 50)
	v.SetRect(0, 0, 81, 20)
	require.Equal(t, 40, v.Cells(handles[0]))

	v.Update(motion(30, 5))
	assert.Zero(t, v.Listeners(), "no listeners before a press")

	v.Update(press(40, 5))
	assert.Equal(t, 5, v.Listeners())
	assert.Equal(t, split.DragArmed, v.Container().DragState())

	v.Update(motion(30, 5))
	assert.Equal(t, 30, v.Cells(handles[0]))
	assert.Equal(t, 50, v.Cells(handles[1]))

	view := v.View()
	assert.Equal(t, 81, lipgloss.Width(view))
	assert.Equal(t, 20, lipgloss.Height(view))
	assert.Contains(t, snapshot.StripANSI(view), "Left 37.5%")

	v.Update(release(30, 5))
	assert.Zero(t, v.Listeners())
	require.Len(t, ends, 1)
	assert.Equal(t, []float64{37.5, 62.5}, ends[0].Sizes)
}

func TestPressOutsideGutterDoesNothing(t *testing.T) {
	v, _ := newView(t, cellOptions(), split.Handlers{}, 50, 50)
	v.SetRect(0, 0, 81, 20)

	v.Update(press(10, 5))
	v.Update(tea.MouseMsg{X: 40, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonRight})

	assert.Zero(t, v.Listeners())
	assert.Equal(t, split.DragIdle, v.Container().DragState())
}

func TestRightToLeftIsMirrored(t *testing.T) {
	opts := cellOptions()
	opts.Direction = split.RTL
	v, handles := newView(t, opts, split.Handlers{}, 30, 70)
	v.SetRect(0, 0, 81, 20)

	segs := v.Segments()
	require.Len(t, segs, 3)
	assert.Equal(t, handles[1], segs[0].Handle)
	assert.Equal(t, 56, segs[0].Length)
	assert.Equal(t, 56, segs[1].Offset)
	assert.Equal(t, handles[0], segs[2].Handle)
	assert.Equal(t, 57, segs[2].Offset)

	v.Update(press(56, 3))
	v.Update(motion(46, 3))

	assert.InDelta(t, 42.5, v.Container().Sizes()[0], 1e-9, "moving the gutter left grows the right pane")
	assert.Equal(t, 34, v.Cells(handles[0]))
}

func TestVerticalView(t *testing.T) {
	opts := cellOptions()
	opts.Axis = split.Vertical
	v, handles := newView(t, opts, split.Handlers{}, 50, 50)
	v.SetRect(0, 0, 40, 21)

	assert.Equal(t, 10, v.Cells(handles[0]))
	assert.Equal(t, 1, v.GutterAt(5, 10))
	assert.Equal(t, 0, v.GutterAt(5, 9))

	view := v.View()
	assert.Equal(t, 40, lipgloss.Width(view))
	assert.Equal(t, 21, lipgloss.Height(view))
	assert.Contains(t, snapshot.StripANSI(view), split.DefaultGutterImageV)
}

func TestHiddenAndCollapsedPanes(t *testing.T) {
	v, handles := newView(t, cellOptions(), split.Handlers{}, 25, 50, 25)
	v.SetRect(0, 0, 81, 20)

	v.Container().Hide(handles[2])
	view := snapshot.StripANSI(v.View())
	assert.NotContains(t, view, "Right")
	assert.Len(t, v.Segments(), 3)

	v.Update(press(40, 5))
	v.Update(motion(80, 5))
	v.Update(release(80, 5))

	assert.Zero(t, v.Cells(handles[1]))
	view = v.View()
	assert.Equal(t, 81, lipgloss.Width(view))
	assert.NotContains(t, snapshot.StripANSI(view), "Middle")
}

func TestDegradedPanes(t *testing.T) {
	v, _ := newView(t, cellOptions(), split.Handlers{}, 50, 50)
	v.SetRect(0, 0, 41, 4)
	v.SetDegradation(layout.ComputeDegradation(layout.ComputeConstraints(41, 5)))

	view := v.View()
	plain := snapshot.StripANSI(view)
	assert.Equal(t, 41, lipgloss.Width(view))
	assert.Equal(t, 4, lipgloss.Height(view))
	assert.NotContains(t, plain, "╭", "no borders")
	assert.NotContains(t, plain, "%", "no percentages")
	assert.NotContains(t, plain, "body", "no bodies")
	assert.Contains(t, plain, "Left")
}

func TestLongTitlesAreTruncated(t *testing.T) {
	v := NewSplitView(cellOptions(), split.Handlers{})
	v.AddPane(Pane{Title: "A rather long pane title"}, split.AreaSpec{Visible: true})
	v.AddPane(Pane{Title: "B"}, split.AreaSpec{Visible: true})
	v.SetRect(0, 0, 21, 6)

	view := v.View()
	assert.Equal(t, 21, lipgloss.Width(view))
	assert.Equal(t, 6, lipgloss.Height(view))
	assert.Contains(t, snapshot.StripANSI(view), IconEllipsis)

	node := v.InspectNode()
	require.NotNil(t, node.Children[0].Truncated)
	assert.True(t, node.Children[0].Truncated.Ellipsis)
}

// runCmd executes cmd and feeds the resulting messages back into v.
func runCmd(v *SplitView, cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		for _, c := range msg {
			runCmd(v, c)
		}
	default:
		runCmd(v, v.Update(msg))
	}
}

func TestTransitionsCoalesce(t *testing.T) {
	var ends [][]float64
	opts := cellOptions()
	opts.UseTransition = true
	v, handles := newView(t, opts, split.Handlers{
		TransitionEnd: func(sizes []float64) { ends = append(ends, sizes) },
	}, 50, 50)
	v.SetRect(0, 0, 81, 20)
	v.Cmd()

	v.Container().SetSizeHint(handles[0], split.HintOf(0.3))
	v.Container().SetSizeHint(handles[1], split.HintOf(0.7))
	require.NotNil(t, v.Cmd(), "changed sizes start transitions")

	var cmds []tea.Cmd
	for _, h := range handles {
		gen := v.panes[h].transition
		require.NotZero(t, gen)
		cmds = append(cmds, v.Update(transitionMsg{handle: h, gen: gen}))
	}
	assert.Nil(t, v.Update(transitionMsg{handle: handles[0], gen: 999}), "stale transitions are ignored")

	for _, cmd := range cmds {
		runCmd(v, cmd)
	}
	require.Len(t, ends, 1)
	assert.InDeltaSlice(t, []float64{30, 70}, ends[0], 1e-9)
}

func TestNoTransitionWhileDragging(t *testing.T) {
	opts := cellOptions()
	opts.UseTransition = true
	v, _ := newView(t, opts, split.Handlers{}, 50, 50)
	v.SetRect(0, 0, 81, 20)
	v.Cmd()

	v.Update(press(40, 5))
	cmd := v.Update(motion(30, 5))

	assert.Nil(t, cmd)
}

func TestRemovePane(t *testing.T) {
	v, handles := newView(t, cellOptions(), split.Handlers{}, 50, 50)
	v.SetRect(0, 0, 81, 20)

	v.RemovePane(handles[0])

	assert.Equal(t, []split.Handle{handles[1]}, v.Handles())
	_, ok := v.Pane(handles[0])
	assert.False(t, ok)
	assert.Equal(t, 81, v.Cells(handles[1]))
}

func TestInspectNode(t *testing.T) {
	v, handles := newView(t, cellOptions(), split.Handlers{}, 25, 50, 25)
	v.SetRect(0, 1, 81, 20)
	v.Container().Hide(handles[1])

	node := v.InspectNode()
	assert.Equal(t, "SplitView", node.Type)
	assert.Equal(t, "horizontal", node.State["axis"])
	require.Len(t, node.Children, 4)
	assert.Equal(t, "Pane", node.Children[0].Type)
	assert.Equal(t, 1, node.Children[0].Bounds.Y)
	assert.Equal(t, "Gutter", node.Children[1].Type)
	assert.Equal(t, split.CursorColResize, node.Children[1].State["cursor"])
	assert.Equal(t, "Middle", node.Children[3].ID)
	assert.False(t, node.Children[3].Visible)

	info := v.SplitInfo()
	assert.Equal(t, []float64{50, 50}, info.Sizes)
	assert.Equal(t, []int{40, 40}, info.Cells)
	assert.Equal(t, "idle", info.DragState)
}

type testKeys struct {
	up, down key.Binding
}

func (k testKeys) ShortHelp() []key.Binding { return []key.Binding{k.up, k.down} }

func (k testKeys) FullHelp() [][]key.Binding { return [][]key.Binding{{k.up}, {k.up, k.down}} }

func TestStatusBar(t *testing.T) {
	keys := testKeys{
		up:   key.NewBinding(key.WithKeys("k"), key.WithHelp("k", "grow")),
		down: key.NewBinding(key.WithKeys("j"), key.WithHelp("j", "shrink")),
	}
	bar := NewStatusBar(keys)
	bar.SetSize(60, 2)
	bar.SetNotice("drag ended on gutter 1", StatusStyles.Success)
	bar.SetBadges("horizontal", "ltr")

	out := bar.String()
	plain := snapshot.StripANSI(out)
	assert.Equal(t, 60, lipgloss.Width(out))
	assert.Equal(t, 2, lipgloss.Height(out))
	assert.Contains(t, plain, "grow")
	assert.Contains(t, plain, "drag ended on gutter 1")
	lines := strings.Split(plain, "\n")
	assert.True(t, strings.HasSuffix(strings.TrimRight(lines[1], " "), "horizontal ltr"))

	assert.Equal(t, 1, bar.HelpLines())
	bar.ToggleHelp()
	assert.True(t, bar.ShowingFullHelp())
	assert.Equal(t, 2, bar.HelpLines())
}

func TestStatusBarTruncatesNotice(t *testing.T) {
	bar := NewStatusBar(testKeys{})
	bar.SetSize(20, 2)
	bar.SetNotice(strings.Repeat("x", 40), TextStyles.Muted)
	bar.SetBadges("rtl")

	out := bar.String()
	assert.Equal(t, 20, lipgloss.Width(out))
	assert.Contains(t, snapshot.StripANSI(out), IconEllipsis)
}

func TestTwoPanesGolden(t *testing.T) {
	v := NewSplitView(cellOptions(), split.Handlers{})
	v.AddPane(Pane{Title: "A"}, split.AreaSpec{Visible: true})
	v.AddPane(Pane{Title: "B"}, split.AreaSpec{Visible: true})
	v.SetRect(0, 0, 21, 5)

	view := v.View()
	snap := snapshot.New(t)
	snap.AssertSize(view, 21, 5)
	snap.Assert("two_panes", view)
}
