// Package harness drives Bubble Tea models in tests. It sends window size,
// key and mouse messages the way a terminal would and runs the commands the
// model returns.
package harness

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

// Harness wraps a tea.Model for testing
type Harness struct {
	t      testing.TB
	model  tea.Model
	width  int
	height int
}

// New wraps model and sends it the initial window size.
func New(t testing.TB, model tea.Model, width, height int) *Harness {
	h := &Harness{
		t:      t,
		model:  model,
		width:  width,
		height: height,
	}
	h.SendMsg(tea.WindowSizeMsg{Width: width, Height: height})
	return h
}

// SendMsg sends a tea.Msg to the model and updates it
func (h *Harness) SendMsg(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	h.model, cmd = h.model.Update(msg)
	return cmd
}

// SendKey sends a key press message
func (h *Harness) SendKey(key string) tea.Cmd {
	return h.SendMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
}

// SendKeys sends each key in turn and returns the last command.
func (h *Harness) SendKeys(keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		cmd = h.SendKey(k)
	}
	return cmd
}

// Press sends a left button press at the cell (x, y)
func (h *Harness) Press(x, y int) tea.Cmd {
	return h.SendMsg(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
}

// Move sends pointer motion with the left button held
func (h *Harness) Move(x, y int) tea.Cmd {
	return h.SendMsg(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
}

// Release sends a button release at the cell (x, y)
func (h *Harness) Release(x, y int) tea.Cmd {
	return h.SendMsg(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonNone})
}

// Click presses and releases at the cell (x, y)
func (h *Harness) Click(x, y int) {
	h.Press(x, y)
	h.Release(x, y)
}

// Drag presses at (x0, y0), moves to (x1, y1) and releases there
func (h *Harness) Drag(x0, y0, x1, y1 int) {
	h.Press(x0, y0)
	h.Move(x1, y1)
	h.Release(x1, y1)
}

// Run executes cmd and sends the messages it produces back to the model.
// Batches are unpacked; tea.QuitMsg and nil messages stop the run.
func (h *Harness) Run(cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	switch msg := cmd().(type) {
	case nil, tea.QuitMsg:
	case tea.BatchMsg:
		for _, c := range msg {
			h.Run(c)
		}
	default:
		h.Run(h.SendMsg(msg))
	}
}

// Resize simulates a terminal resize
func (h *Harness) Resize(width, height int) tea.Cmd {
	h.width = width
	h.height = height
	return h.SendMsg(tea.WindowSizeMsg{Width: width, Height: height})
}

// View returns the current rendered view
func (h *Harness) View() string {
	return h.model.View()
}

// Model returns the underlying model (for type assertions)
func (h *Harness) Model() tea.Model {
	return h.model
}

// Width returns the current width
func (h *Harness) Width() int {
	return h.width
}

// Height returns the current height
func (h *Harness) Height() int {
	return h.height
}

// TerminalSize represents a terminal size for testing
type TerminalSize struct {
	Name   string
	Width  int
	Height int
}

// CommonSizes contains common terminal sizes for testing
var CommonSizes = []TerminalSize{
	{Name: "narrow", Width: 50, Height: 16},
	{Name: "minimum", Width: 80, Height: 24},
	{Name: "compact", Width: 100, Height: 30},
	{Name: "standard", Width: 120, Height: 40},
	{Name: "large", Width: 200, Height: 50},
	{Name: "wide", Width: 200, Height: 24},
	{Name: "tall", Width: 80, Height: 60},
}

// RunWithSizes runs a test function for each terminal size
func RunWithSizes(t *testing.T, sizes []TerminalSize, fn func(t *testing.T, size TerminalSize)) {
	for _, size := range sizes {
		t.Run(size.Name, func(t *testing.T) {
			fn(t, size)
		})
	}
}

// RunWithCommonSizes runs a test function for all common terminal sizes
func RunWithCommonSizes(t *testing.T, fn func(t *testing.T, size TerminalSize)) {
	RunWithSizes(t, CommonSizes, fn)
}
