package main

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/macshonle/tree-render-sub001/internal/catalog"
	"github.com/macshonle/tree-render-sub001/internal/layout"
	"github.com/macshonle/tree-render-sub001/internal/viewstate"
)

// panStep is the pan distance per keypress in layout columns at zoom 1. The
// applied delta shrinks as zoom grows so one press moves the view by a
// constant number of screen cells.
const panStep = 2.0

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		if m.picker != nil {
			return m.updatePicker(msg)
		}
		return m.updateViewer(msg)
	}
	return m, nil
}

// ---------------------------------------------------------------------------
// Viewer scope
// ---------------------------------------------------------------------------

func (m model) updateViewer(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	// Panning: a keypress moves the viewport, so it both shifts the offset
	// and marks the view as touched.
	case key.Matches(msg, m.keys.PanUp):
		return m.pan(0, -panStep), nil
	case key.Matches(msg, m.keys.PanDown):
		return m.pan(0, panStep), nil
	case key.Matches(msg, m.keys.PanLeft):
		return m.pan(-panStep, 0), nil
	case key.Matches(msg, m.keys.PanRight):
		return m.pan(panStep, 0), nil

	case key.Matches(msg, m.keys.ZoomIn):
		m.views.SetZoom(m.views.Zoom() * 1.25)
		m.views.MarkInteraction()
		m.status = fmt.Sprintf("zoom %.2fx", m.views.Zoom())
		return m, nil
	case key.Matches(msg, m.keys.ZoomOut):
		m.views.SetZoom(m.views.Zoom() / 1.25)
		m.views.MarkInteraction()
		m.status = fmt.Sprintf("zoom %.2fx", m.views.Zoom())
		return m, nil

	case key.Matches(msg, m.keys.ResetView):
		m.views.ResetView()
		m.status = "view reset"
		return m, nil

	case key.Matches(msg, m.keys.Inspect):
		m.inspector.ToggleEnabled()
		if m.inspector.Enabled() {
			m.status = "inspect on"
		} else {
			m.status = "inspect off"
		}
		return m, nil
	case key.Matches(msg, m.keys.NextNode):
		return m.cycleNode(1), nil
	case key.Matches(msg, m.keys.PrevNode):
		return m.cycleNode(-1), nil
	case key.Matches(msg, m.keys.ToggleNode):
		if sel, ok := m.inspector.Selection(); ok && sel.Kind == viewstate.SelectNode {
			m.inspector.Toggle(sel) // toggle-off
		}
		return m, nil
	case key.Matches(msg, m.keys.ToggleEdge):
		return m.toggleParentEdge(), nil

	case key.Matches(msg, m.keys.NextExample):
		return m.selectIndex(m.exIndex + 1), nil
	case key.Matches(msg, m.keys.PrevExample):
		return m.selectIndex(m.exIndex - 1), nil
	case key.Matches(msg, m.keys.Picker):
		m.picker = newPicker()
		return m, nil
	case key.Matches(msg, m.keys.Scratch):
		ex := catalog.Scratch()
		m.examples = append(m.examples, ex)
		m.status = "scratch " + ex.Key
		return m.selectIndex(len(m.examples) - 1), nil
	}
	return m, nil
}

func (m model) pan(dx, dy float64) model {
	z := m.views.Zoom()
	m.views.ApplyPanDelta(dx/z, dy/z)
	m.views.MarkInteraction()
	return m
}

// cycleNode moves the node selection through the diagram in preorder. It
// replaces (never toggles off) so holding the key walks the whole tree.
func (m model) cycleNode(dir int) model {
	if !m.inspector.Enabled() {
		return m
	}
	d := layout.Layout(m.current().Root)
	if len(d.Nodes) == 0 {
		return m
	}
	at := -1
	if sel, ok := m.inspector.Selection(); ok && sel.Kind == viewstate.SelectNode {
		for i, p := range d.Nodes {
			if p.Node.ID == sel.NodeID {
				at = i
				break
			}
		}
	}
	n := len(d.Nodes)
	var next int
	switch {
	case at < 0 && dir > 0:
		next = 0
	case at < 0:
		next = n - 1
	default:
		next = ((at+dir)%n + n) % n
	}
	target := viewstate.NodeSelection(d.Nodes[next].Node.ID)
	if cur, ok := m.inspector.Selection(); ok && cur.Equal(target) {
		return m
	}
	m.inspector.Toggle(target)
	return m
}

// toggleParentEdge toggles selection of the edge from the selected node up to
// its parent. With an edge already selected, re-invoking clears it.
func (m model) toggleParentEdge() model {
	if !m.inspector.Enabled() {
		return m
	}
	sel, ok := m.inspector.Selection()
	if !ok {
		return m
	}
	switch sel.Kind {
	case viewstate.SelectEdge:
		m.inspector.Toggle(sel)
	case viewstate.SelectNode:
		d := layout.Layout(m.current().Root)
		for _, e := range d.Edges {
			if d.Nodes[e.Child].Node.ID == sel.NodeID {
				m.inspector.Toggle(viewstate.EdgeSelection(d.Nodes[e.Parent].Node.ID, sel.NodeID))
				return m
			}
		}
		m.status = "root has no parent edge"
	}
	return m
}

// ---------------------------------------------------------------------------
// Picker scope
// ---------------------------------------------------------------------------

func (m model) updatePicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.pickerKeys.Close):
		m.picker = nil
		return m, nil
	case key.Matches(msg, m.pickerKeys.Up):
		m.picker.move(-1)
		return m, nil
	case key.Matches(msg, m.pickerKeys.Down):
		m.picker.move(1)
		return m, nil
	case key.Matches(msg, m.pickerKeys.Select):
		ex, ok := m.picker.choice()
		m.picker = nil
		if !ok {
			return m, nil
		}
		for i := range m.examples {
			if m.examples[i].Key == ex.Key {
				return m.selectIndex(i), nil
			}
		}
		return m, nil
	case msg.Type == tea.KeyBackspace:
		m.picker.backspace()
		return m, nil
	case msg.Type == tea.KeyRunes:
		m.picker.typed(string(msg.Runes))
		return m, nil
	}
	return m, nil
}
