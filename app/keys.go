package app

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings of the split demo.
type KeyMap struct {
	TogglePane key.Binding
	ResetSizes key.Binding

	Axis       key.Binding
	Direction  key.Binding
	Disabled   key.Binding
	Transition key.Binding

	GutterGrow   key.Binding
	GutterShrink key.Binding
	CopySizes    key.Binding

	Help key.Binding
	Quit key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		TogglePane: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "toggle pane"),
		),
		ResetSizes: key.NewBinding(
			key.WithKeys("0"),
			key.WithHelp("0", "reset sizes"),
		),
		Axis: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "axis"),
		),
		Direction: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "ltr/rtl"),
		),
		Disabled: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "lock gutters"),
		),
		Transition: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "transitions"),
		),
		GutterGrow: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "wider gutters"),
		),
		GutterShrink: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "narrower gutters"),
		),
		CopySizes: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy sizes"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns bindings to show in the short help
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.TogglePane, k.Axis, k.CopySizes, k.Help, k.Quit}
}

// FullHelp returns all bindings grouped for the full help view
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.TogglePane, k.ResetSizes},
		{k.Axis, k.Direction, k.Disabled, k.Transition},
		{k.GutterGrow, k.GutterShrink, k.CopySizes},
		{k.Help, k.Quit},
	}
}
