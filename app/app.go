package app

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"splitpane/config"
	"splitpane/inspect"
	"splitpane/log"
	"splitpane/split"
	"splitpane/ui"
	"splitpane/ui/layout"
)

// noticeTimeout is how long an error stays in the status bar.
const noticeTimeout = 3 * time.Second

// Run is the main entrypoint into the application.
func Run(ctx context.Context, cfg *config.Config) error {
	m := newHome(ctx, cfg)
	p := tea.NewProgram(
		m,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // Press, drag and release on gutters
	)
	_, err := p.Run()
	m.view.Container().Close()
	return err
}

// Snapshot lays cfg out on a width x height terminal without starting a
// program and returns what an inspection would record.
func Snapshot(ctx context.Context, cfg *config.Config, width, height int) *inspect.Snapshot {
	m := newHome(ctx, cfg)
	m.updateHandleWindowSizeEvent(tea.WindowSizeMsg{Width: width, Height: height})
	m.View()
	return m.snapshot()
}

type state int

const (
	stateDefault state = iota
	// stateDragging is the state while a gutter is being dragged.
	stateDragging
	// stateHelp is the state when the full key help is shown.
	stateHelp
)

func (s state) String() string {
	switch s {
	case stateDragging:
		return "dragging"
	case stateHelp:
		return "help"
	default:
		return "default"
	}
}

// hideNoticeMsg clears the notice with the given sequence number.
type hideNoticeMsg struct {
	seq int
}

type home struct {
	ctx context.Context

	// -- State --

	state state
	keys  KeyMap

	width, height int
	constraints   layout.Constraints
	degradation   layout.Degradation
	// fits is false when the content area cannot hold the gutters
	fits bool

	noticeSeq int

	// copySizes writes to the system clipboard
	copySizes func(string) error

	// -- UI Components --

	view      *ui.SplitView
	statusBar *ui.StatusBar
}

func newHome(ctx context.Context, cfg *config.Config) *home {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	m := &home{
		ctx:       ctx,
		keys:      DefaultKeyMap(),
		state:     stateDefault,
		fits:      true,
		copySizes: clipboard.WriteAll,
	}
	m.view = ui.NewSplitView(cfg.ContainerOptions(), split.Handlers{
		DragStart:     m.onDragStart,
		DragProgress:  m.onDragProgress,
		DragEnd:       m.onDragEnd,
		GutterClick:   m.onGutterClick,
		TransitionEnd: m.onTransitionEnd,
	})
	specs := cfg.AreaSpecs()
	for i, a := range cfg.Areas {
		m.view.AddPane(ui.Pane{Title: a.Title, Body: a.Body}, specs[i])
	}
	m.statusBar = ui.NewStatusBar(m.keys)
	m.refreshBadges()
	m.statusBar.SetNotice(fmt.Sprintf("drag a gutter to resize %d panes", len(cfg.Areas)), ui.TextStyles.Muted)
	return m
}

// updateHandleWindowSizeEvent sets the sizes of the components.
// The components will try to render inside their bounds.
func (m *home) updateHandleWindowSizeEvent(msg tea.WindowSizeMsg) {
	m.width = msg.Width
	m.height = msg.Height
	m.relayout()
}

// relayout splits the terminal between the split view and the status bar.
func (m *home) relayout() {
	c := layout.ComputeConstraints(m.width, m.height).WithHelp(m.statusBar.HelpLines())
	container := m.view.Container()
	vertical := container.Options().Axis == split.Vertical
	m.fits = c.FitsGutters(vertical, container.MinContainerSize())
	if !m.fits {
		c.ShowMinWarning = true
	}
	m.constraints = c
	m.degradation = layout.ComputeDegradation(c)

	m.view.SetDegradation(m.degradation)
	m.view.SetRect(0, 0, c.ContentWidth, c.ContentHeight)
	m.statusBar.SetSize(c.StatusWidth, c.StatusHeight)
	log.LayoutTrace("terminal %dx%d content %dx%d status %d fits=%v",
		m.width, m.height, c.ContentWidth, c.ContentHeight, c.StatusHeight, m.fits)
}

func (m *home) Init() tea.Cmd {
	return nil
}

func (m *home) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case hideNoticeMsg:
		if msg.seq == m.noticeSeq {
			m.statusBar.SetNotice("", ui.TextStyles.Muted)
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case tea.WindowSizeMsg:
		m.updateHandleWindowSizeEvent(msg)
		m.syncDragState()
		return m, m.view.Cmd()
	case error:
		return m, m.handleError(msg)
	}
	// Mouse input, scheduled callbacks and transitions belong to the view.
	return m, m.view.Update(msg)
}

func (m *home) handleQuit() (tea.Model, tea.Cmd) {
	m.view.Container().Close()
	return m, tea.Quit
}

func (m *home) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	container := m.view.Container()
	opts := container.Options()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.handleQuit()
	case key.Matches(msg, m.keys.Help):
		m.statusBar.ToggleHelp()
		m.state = stateDefault
		if m.statusBar.ShowingFullHelp() {
			m.state = stateHelp
		}
		m.relayout()
	case key.Matches(msg, m.keys.TogglePane):
		if len(msg.Runes) == 1 {
			m.togglePane(int(msg.Runes[0] - '0'))
		}
	case key.Matches(msg, m.keys.ResetSizes):
		container.Rebuild(false, true)
		m.notice("sizes reset: "+formatSizes(container.Sizes()), ui.TextStyles.Muted)
	case key.Matches(msg, m.keys.Axis):
		axis := split.Vertical
		if opts.Axis == split.Vertical {
			axis = split.Horizontal
		}
		container.SetAxis(axis)
		m.relayout()
		m.notice("axis: "+axis.String(), ui.TextStyles.Muted)
	case key.Matches(msg, m.keys.Direction):
		dir := split.RTL
		if opts.Direction == split.RTL {
			dir = split.LTR
		}
		container.SetDirection(dir)
		m.notice("direction: "+dir.String(), ui.TextStyles.Muted)
	case key.Matches(msg, m.keys.Disabled):
		container.SetDisabled(!opts.Disabled)
		if opts.Disabled {
			m.notice("gutters unlocked", ui.TextStyles.Muted)
		} else {
			m.notice(ui.IconPaused+" gutters locked", ui.StatusStyles.Paused)
		}
	case key.Matches(msg, m.keys.Transition):
		container.SetUseTransition(!opts.UseTransition)
		m.notice(fmt.Sprintf("transitions: %v", !opts.UseTransition), ui.TextStyles.Muted)
	case key.Matches(msg, m.keys.GutterGrow):
		container.SetGutterSize(opts.GutterSize + 1)
		m.relayout()
	case key.Matches(msg, m.keys.GutterShrink):
		if opts.GutterSize > 1 {
			container.SetGutterSize(opts.GutterSize - 1)
			m.relayout()
		}
	case key.Matches(msg, m.keys.CopySizes):
		text := sizesArg(container.Sizes())
		if err := m.copySizes(text); err != nil {
			return m, m.handleError(fmt.Errorf("failed to copy sizes: %w", err))
		}
		m.notice(ui.IconSuccess+" copied "+text, ui.StatusStyles.Success)
	default:
		return m, nil
	}

	m.syncDragState()
	m.refreshBadges()
	return m, m.view.Cmd()
}

// syncDragState leaves stateDragging when the container dropped the gesture
// without a drag end or click, e.g. after a relayout or a disable.
func (m *home) syncDragState() {
	if m.state == stateDragging && m.view.Container().DragState() == split.DragIdle {
		m.endDrag()
	}
}

// togglePane shows or hides the n-th pane, counting from 1 in registration
// order.
func (m *home) togglePane(n int) {
	handles := m.view.Handles()
	if n < 1 || n > len(handles) {
		return
	}
	h := handles[n-1]
	area, ok := m.view.Container().Area(h)
	if !ok {
		return
	}
	m.view.Container().SetVisible(h, !area.Visible)

	pane, _ := m.view.Pane(h)
	if area.Visible {
		m.notice(pane.Title+" hidden", ui.TextStyles.Muted)
	} else {
		m.notice(pane.Title+" shown", ui.TextStyles.Muted)
	}
	m.relayout()
}

func (m *home) onDragStart(e split.DragEvent) {
	m.state = stateDragging
	m.notice(fmt.Sprintf("%s dragging gutter %d", ui.IconRunning, e.GutterNum), ui.StatusStyles.Running)
	m.refreshBadges()
}

func (m *home) onDragProgress(e split.DragEvent) {
	m.notice(fmt.Sprintf("%s gutter %d: %s", ui.IconRunning, e.GutterNum, formatSizes(e.Sizes)), ui.StatusStyles.Running)
}

func (m *home) onDragEnd(e split.DragEvent) {
	m.endDrag()
	log.InfoLog.Printf("drag on gutter %d ended at %v", e.GutterNum, e.Sizes)
	m.notice(fmt.Sprintf("%s gutter %d: %s", ui.IconSuccess, e.GutterNum, formatSizes(e.Sizes)), ui.StatusStyles.Success)
}

func (m *home) onGutterClick(e split.DragEvent) {
	m.endDrag()
	m.notice(fmt.Sprintf("clicked gutter %d", e.GutterNum), ui.TextStyles.Muted)
}

func (m *home) onTransitionEnd(sizes []float64) {
	m.notice("settled at "+formatSizes(sizes), ui.TextStyles.Muted)
}

func (m *home) endDrag() {
	m.state = stateDefault
	if m.statusBar.ShowingFullHelp() {
		m.state = stateHelp
	}
	m.refreshBadges()
}

func (m *home) notice(text string, style lipgloss.Style) {
	m.noticeSeq++
	m.statusBar.SetNotice(text, style)
}

func (m *home) refreshBadges() {
	opts := m.view.Container().Options()
	badges := []string{
		ui.TextStyles.Muted.Render(opts.Axis.String()),
		ui.TextStyles.Muted.Render(opts.Direction.String()),
		ui.TextStyles.Muted.Render(fmt.Sprintf("gutter %g", opts.GutterSize)),
	}
	if opts.Disabled {
		badges = append(badges, ui.StatusBadge("locked", ui.StatusPaused))
	}
	if m.state == stateDragging {
		badges = append(badges, ui.StatusBadge("drag", ui.StatusRunning))
	}
	m.statusBar.SetBadges(badges...)
}

// handleError shows err in the status bar and returns a command that clears
// it after noticeTimeout.
func (m *home) handleError(err error) tea.Cmd {
	log.ErrorLog.Printf("%v", err)
	m.notice(ui.IconWarning+" "+err.Error(), ui.StatusStyles.Warning)
	seq := m.noticeSeq
	return func() tea.Msg {
		select {
		case <-m.ctx.Done():
		case <-time.After(noticeTimeout):
		}
		return hideNoticeMsg{seq: seq}
	}
}

func (m *home) View() string {
	start := time.Now()
	defer func() { log.GetProfiler().RecordFrame(time.Since(start)) }()

	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	if !m.fits {
		warning := ui.StatusStyles.Warning.Render(fmt.Sprintf("%s terminal too small for %d gutters",
			ui.IconWarning, m.view.Container().GutterCount()))
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, warning)
	}

	mainView := lipgloss.JoinVertical(lipgloss.Left, m.view.View(), m.statusBar.String())
	if inspect.IsEnabled() {
		if err := inspect.WriteSnapshot(m.snapshot()); err != nil {
			log.WarningLog.Printf("could not write inspect snapshot: %v", err)
		}
	}
	return mainView
}

// InspectNode implements inspect.Introspectable.
func (m *home) InspectNode() *inspect.Node {
	c := m.constraints
	status := inspect.NewNode("StatusBar").
		WithBounds(0, c.ContentHeight, c.StatusWidth, c.StatusHeight).
		WithState("full_help", m.statusBar.ShowingFullHelp()).
		WithContent(m.statusBar.Notice()).
		WithStyles(inspect.ExtractStyleInfo(ui.TextStyles.Muted, "status.hint"))
	status.WithVisible(status.Bounds.Area() > 0)

	return inspect.NewNode("App").
		WithBounds(0, 0, m.width, m.height).
		WithState("state", m.state.String()).
		WithState("fits", m.fits).
		WithChildren([]*inspect.Node{m.view.InspectNode(), status})
}

func (m *home) snapshot() *inspect.Snapshot {
	container := m.view.Container()
	return inspect.NewSnapshot().
		WithTerminal(m.width, m.height).
		WithAppState(inspect.AppStateInfo{
			State:       m.state.String(),
			PaneCount:   len(m.view.Handles()),
			HiddenCount: len(container.Hidden()),
			Notice:      m.statusBar.Notice(),
		}).
		WithLayout(m.constraints, m.degradation).
		WithSplit(m.view.SplitInfo()).
		WithComponents(m.InspectNode()).
		WithRegisteredStyles()
}

// formatSizes renders percentages for the status bar.
func formatSizes(sizes []float64) string {
	parts := make([]string, len(sizes))
	for i, s := range sizes {
		parts[i] = ui.FormatPercent(s)
	}
	return strings.Join(parts, " | ")
}

// sizesArg renders percentages the way the --sizes flag reads them.
func sizesArg(sizes []float64) string {
	parts := make([]string, len(sizes))
	for i, s := range sizes {
		parts[i] = strconv.FormatFloat(math.Round(s*100)/100, 'f', -1, 64)
	}
	return strings.Join(parts, ",")
}
