package main

import "github.com/charmbracelet/bubbles/key"

// ---------------------------------------------------------------------------
// Key bindings
// ---------------------------------------------------------------------------

type keyMap struct {
	PanUp       key.Binding
	PanDown     key.Binding
	PanLeft     key.Binding
	PanRight    key.Binding
	ZoomIn      key.Binding
	ZoomOut     key.Binding
	ResetView   key.Binding
	Inspect     key.Binding
	NextNode    key.Binding
	PrevNode    key.Binding
	ToggleNode  key.Binding
	ToggleEdge  key.Binding
	NextExample key.Binding
	PrevExample key.Binding
	Picker      key.Binding
	Scratch     key.Binding
	Quit        key.Binding
}

type pickerKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Close  key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		PanUp:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "pan up")),
		PanDown:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "pan down")),
		PanLeft:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "pan left")),
		PanRight:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "pan right")),
		ZoomIn:      key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "zoom in")),
		ZoomOut:     key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "zoom out")),
		ResetView:   key.NewBinding(key.WithKeys("0"), key.WithHelp("0", "reset view")),
		Inspect:     key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "inspect")),
		NextNode:    key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next node")),
		PrevNode:    key.NewBinding(key.WithKeys("["), key.WithHelp("[", "prev node")),
		ToggleNode:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "toggle node")),
		ToggleEdge:  key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "toggle edge")),
		NextExample: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next example")),
		PrevExample: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev example")),
		Picker:      key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "examples")),
		Scratch:     key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "scratch")),
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func newPickerKeyMap() pickerKeyMap {
	return pickerKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "ctrl+p"), key.WithHelp("↑", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "ctrl+n"), key.WithHelp("↓", "down")),
		Select: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Close:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PanUp, k.ZoomIn, k.ResetView, k.Inspect, k.Picker, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PanUp, k.PanDown, k.PanLeft, k.PanRight},
		{k.ZoomIn, k.ZoomOut, k.ResetView},
		{k.Inspect, k.NextNode, k.PrevNode, k.ToggleNode, k.ToggleEdge},
		{k.NextExample, k.PrevExample, k.Picker, k.Scratch, k.Quit},
	}
}
