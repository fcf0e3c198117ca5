package main

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/macshonle/tree-render-sub001/internal/viewstate"
)

// ---------------------------------------------------------------------------
// Key helpers
// ---------------------------------------------------------------------------

func press(t *testing.T, m model, msg tea.Msg) (model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(model)
	if !ok {
		t.Fatalf("Update returned %T, want model", next)
	}
	return nm, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// ---------------------------------------------------------------------------
// Panning and zooming
// ---------------------------------------------------------------------------

func TestPanKeysMoveAndMarkInteraction(t *testing.T) {
	m := testModel(t)
	m, _ = press(t, m, runes("l"))
	x, y := m.views.PanOffset()
	if x <= 0 || y != 0 {
		t.Fatalf("pan after right = (%v, %v), want positive x", x, y)
	}
	if !m.views.HasInteracted() {
		t.Fatal("panning should mark the view as touched")
	}
	m, _ = press(t, m, runes("h"))
	x, y = m.views.PanOffset()
	if x != 0 || y != 0 {
		t.Fatalf("left should cancel right, pan = (%v, %v)", x, y)
	}
}

func TestPanStepShrinksWithZoom(t *testing.T) {
	m := testModel(t)
	m, _ = press(t, m, runes("l"))
	atDefault, _ := m.views.PanOffset()

	m.views.ResetView()
	m.views.SetZoom(2)
	m, _ = press(t, m, runes("l"))
	atDouble, _ := m.views.PanOffset()
	if atDouble >= atDefault {
		t.Fatalf("pan delta at 2x zoom (%v) should be smaller than at 1x (%v)", atDouble, atDefault)
	}
}

func TestZoomKeysClampAtBounds(t *testing.T) {
	m := testModel(t)
	for i := 0; i < 30; i++ {
		m, _ = press(t, m, runes("+"))
	}
	if got := m.views.Zoom(); got != viewstate.MaxZoom {
		t.Fatalf("zoom after many ins = %v, want %v", got, viewstate.MaxZoom)
	}
	for i := 0; i < 60; i++ {
		m, _ = press(t, m, runes("-"))
	}
	if got := m.views.Zoom(); got != viewstate.MinZoom {
		t.Fatalf("zoom after many outs = %v, want %v", got, viewstate.MinZoom)
	}
}

func TestResetKeyRestoresDefaults(t *testing.T) {
	m := testModel(t)
	m, _ = press(t, m, runes("l"))
	m, _ = press(t, m, runes("+"))
	m, _ = press(t, m, runes("0"))
	x, y := m.views.PanOffset()
	if x != 0 || y != 0 || m.views.Zoom() != 1.0 || m.views.HasInteracted() {
		t.Fatalf("reset left pan (%v, %v) zoom %v touched %v", x, y, m.views.Zoom(), m.views.HasInteracted())
	}
}

// ---------------------------------------------------------------------------
// Per-example state through the UI
// ---------------------------------------------------------------------------

func TestSwitchingExamplesKeepsViewsApart(t *testing.T) {
	m := testModel(t)
	first := m.current().Key
	m, _ = press(t, m, runes("l"))
	m, _ = press(t, m, runes("+"))

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.current().Key == first {
		t.Fatal("tab should advance to another example")
	}
	if x, _ := m.views.PanOffset(); x != 0 {
		t.Fatalf("new example should start at default pan, got x=%v", x)
	}

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.current().Key != first {
		t.Fatalf("shift+tab should return to %q, at %q", first, m.current().Key)
	}
	if x, _ := m.views.PanOffset(); x == 0 {
		t.Fatal("returning should restore the panned offset")
	}
	if m.views.Zoom() == 1.0 {
		t.Fatal("returning should restore the zoom")
	}
}

// ---------------------------------------------------------------------------
// Inspector
// ---------------------------------------------------------------------------

func TestInspectKeyTogglesInspector(t *testing.T) {
	m := testModel(t)
	m, _ = press(t, m, runes("d"))
	if !m.inspector.Enabled() {
		t.Fatal("d should enable inspect mode")
	}
	m, _ = press(t, m, runes("d"))
	if m.inspector.Enabled() {
		t.Fatal("d again should disable inspect mode")
	}
}

func TestNodeCycleAndToggleOff(t *testing.T) {
	m := testModel(t)
	m, _ = press(t, m, runes("d"))
	m, _ = press(t, m, runes("]"))
	sel, held := m.inspector.Selection()
	if !held || sel.Kind != viewstate.SelectNode {
		t.Fatalf("after ], selection = %+v (held=%v), want a node", sel, held)
	}
	root := sel.NodeID

	m, _ = press(t, m, runes("]"))
	sel, _ = m.inspector.Selection()
	if sel.NodeID == root {
		t.Fatal("] again should move to the next node")
	}

	m, _ = press(t, m, runes("["))
	sel, _ = m.inspector.Selection()
	if sel.NodeID != root {
		t.Fatalf("[ should step back to %q, got %q", root, sel.NodeID)
	}

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if _, held := m.inspector.Selection(); held {
		t.Fatal("enter should toggle the held node off")
	}
}

func TestEdgeToggleFromSelectedNode(t *testing.T) {
	m := testModel(t)
	m, _ = press(t, m, runes("d"))
	m, _ = press(t, m, runes("]")) // root
	m, _ = press(t, m, runes("]")) // first child
	child, _ := m.inspector.Selection()

	m, _ = press(t, m, runes("e"))
	sel, held := m.inspector.Selection()
	if !held || sel.Kind != viewstate.SelectEdge {
		t.Fatalf("e should select the parent edge, got %+v (held=%v)", sel, held)
	}
	if sel.ChildID != child.NodeID {
		t.Fatalf("edge child = %q, want %q", sel.ChildID, child.NodeID)
	}

	m, _ = press(t, m, runes("e"))
	if _, held := m.inspector.Selection(); held {
		t.Fatal("e again should toggle the edge off")
	}
}

func TestSelectionKeysIgnoredOutsideInspectMode(t *testing.T) {
	m := testModel(t)
	m, _ = press(t, m, runes("]"))
	if _, held := m.inspector.Selection(); held {
		t.Fatal("node cycling should be inert while inspect mode is off")
	}
}

// ---------------------------------------------------------------------------
// Scratch examples and the picker
// ---------------------------------------------------------------------------

func TestScratchKeyMintsAndSelects(t *testing.T) {
	m := testModel(t)
	before := len(m.examples)
	m, _ = press(t, m, runes("n"))
	if len(m.examples) != before+1 {
		t.Fatalf("examples = %d, want %d", len(m.examples), before+1)
	}
	if m.exIndex != before {
		t.Fatalf("exIndex = %d, want the new example at %d", m.exIndex, before)
	}
	if m.views.CurrentKey() != m.examples[before].Key {
		t.Fatal("cache should follow the scratch example")
	}
}

func TestPickerOpenFilterSelect(t *testing.T) {
	m := testModel(t)
	m, _ = press(t, m, runes("p"))
	if m.picker == nil {
		t.Fatal("p should open the example picker")
	}

	for _, r := range "org" {
		m, _ = press(t, m, runes(string(r)))
	}
	if m.picker.query != "org" {
		t.Fatalf("picker query = %q, want org", m.picker.query)
	}
	if got, ok := m.picker.choice(); !ok || got.Key != "org-chart" {
		t.Fatalf("top match = %+v (ok=%v), want org-chart", got, ok)
	}

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.picker != nil {
		t.Fatal("enter should close the picker")
	}
	if m.current().Key != "org-chart" {
		t.Fatalf("current example = %q, want org-chart", m.current().Key)
	}
}

func TestPickerEscCloses(t *testing.T) {
	m := testModel(t)
	was := m.current().Key
	m, _ = press(t, m, runes("p"))
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.picker != nil {
		t.Fatal("esc should close the picker")
	}
	if m.current().Key != was {
		t.Fatal("esc should not change the selection")
	}
}

// ---------------------------------------------------------------------------
// Quit
// ---------------------------------------------------------------------------

func TestQuitKeyReturnsQuitCmd(t *testing.T) {
	m := testModel(t)
	_, cmd := press(t, m, runes("q"))
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if msg := cmd(); msg != (tea.QuitMsg{}) {
		t.Fatalf("cmd() = %v, want tea.QuitMsg", msg)
	}
}
