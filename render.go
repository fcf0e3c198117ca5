package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/macshonle/tree-render-sub001/internal/catalog"
	"github.com/macshonle/tree-render-sub001/internal/layout"
	"github.com/macshonle/tree-render-sub001/internal/viewstate"
)

// ---------------------------------------------------------------------------
// Styles — Catppuccin Mocha themed
// ---------------------------------------------------------------------------

var (
	headerBarStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorMantle).
			Padding(0, 2)

	headerAppStyle = lipgloss.NewStyle().
			Foreground(colorBrand).
			Bold(true)

	headerTitleStyle = lipgloss.NewStyle().
				Foreground(colorText).
				Bold(true)

	headerKeyStyle = lipgloss.NewStyle().Foreground(colorHint)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorSubtext1).
			Background(colorSurface0).
			Padding(0, 2)

	footerStyle = lipgloss.NewStyle().
			Foreground(colorHint).
			Background(colorMantle).
			Padding(0, 2)

	footerKeyStyle = lipgloss.NewStyle().Foreground(colorTeal)

	nodeStyle     = lipgloss.NewStyle().Foreground(colorNode)
	edgeStyle     = lipgloss.NewStyle().Foreground(colorEdge)
	selectedStyle = lipgloss.NewStyle().Foreground(colorSelected).Bold(true)
	inspectStyle  = lipgloss.NewStyle().Foreground(colorInspect)
)

// Cell spacing at zoom 1: one layout column is colGap screen cells wide, one
// layout row is rowGap cells tall.
const (
	colGap = 10
	rowGap = 2
)

// ---------------------------------------------------------------------------
// View
// ---------------------------------------------------------------------------

func (m model) View() string {
	if m.width == 0 || m.height == 0 {
		return "starting…"
	}

	header := m.renderHeader()
	statusLine := m.renderStatusBar()
	footer := m.renderFooter(m.keys.ShortHelp())

	bodyHeight := m.height - lipgloss.Height(header) - lipgloss.Height(statusLine) - lipgloss.Height(footer)
	if bodyHeight < 1 {
		bodyHeight = 1
	}

	var body string
	if m.picker != nil {
		body = lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Center, m.picker.render())
	} else {
		body = m.renderViewport(m.width, bodyHeight)
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, body, statusLine, footer)
}

func (m model) renderHeader() string {
	ex := m.current()
	left := headerAppStyle.Render(appName) + "  " +
		headerTitleStyle.Render(ex.Title) + " " +
		headerKeyStyle.Render("("+ex.Key+")")
	if m.inspector.Enabled() {
		left += "  " + inspectStyle.Render("[inspect]")
	}
	return headerBarStyle.Width(m.width).Render(left)
}

func (m model) renderStatusBar() string {
	snap := m.views.Snapshot()
	ex := m.current()
	parts := []string{
		fmt.Sprintf("zoom %.2fx", snap.Zoom),
		fmt.Sprintf("pan (%.0f, %.0f)", snap.PanX, snap.PanY),
		fmt.Sprintf("%d nodes / depth %d", catalog.Count(ex.Root), catalog.Depth(ex.Root)),
		fmt.Sprintf("%d views cached", m.views.Len()),
	}
	if snap.Interacted {
		parts = append(parts, "touched")
	}
	if sel, ok := m.inspector.Selection(); ok {
		switch sel.Kind {
		case viewstate.SelectNode:
			parts = append(parts, "node "+sel.NodeID)
		case viewstate.SelectEdge:
			parts = append(parts, "edge "+sel.ParentID+"→"+sel.ChildID)
		}
	}
	if m.status != "" {
		parts = append(parts, m.status)
	}
	return statusBarStyle.Width(m.width).Render(strings.Join(parts, "  ·  "))
}

func (m model) renderFooter(bindings []key.Binding) string {
	hints := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		hints = append(hints, footerKeyStyle.Render(h.Key)+" "+h.Desc)
	}
	return footerStyle.Width(m.width).Render(strings.Join(hints, "  "))
}

// ---------------------------------------------------------------------------
// Diagram viewport
// ---------------------------------------------------------------------------

// renderViewport returns the diagram body, re-rendering only when the render
// stamp changed since the last frame. The stamp folds in the view-state
// cache's change counter, so in-place pan/zoom mutations invalidate the memo
// without any record comparison.
func (m model) renderViewport(w, h int) string {
	snap := m.views.Snapshot()
	sel, held := m.inspector.Selection()
	stamp := renderStamp{
		seq:        snap.Seq,
		key:        m.current().Key,
		width:      w,
		height:     h,
		inspecting: m.inspector.Enabled(),
		selected:   held,
		selection:  sel,
	}
	if m.memo.ok && m.memo.stamp == stamp {
		return m.memo.body
	}
	body := renderDiagram(m.current(), snap, sel, held, w, h)
	m.memo.stamp = stamp
	m.memo.body = body
	m.memo.ok = true
	return body
}

// Cell style classes for the canvas.
const (
	clsBlank = iota
	clsEdge
	clsNode
	clsSelected
)

type cell struct {
	r   rune
	cls int
}

type canvas struct {
	w, h  int
	cells []cell
}

func newCanvas(w, h int) *canvas {
	c := &canvas{w: w, h: h, cells: make([]cell, w*h)}
	for i := range c.cells {
		c.cells[i] = cell{r: ' ', cls: clsBlank}
	}
	return c
}

func (c *canvas) set(x, y int, r rune, cls int) {
	if x < 0 || x >= c.w || y < 0 || y >= c.h {
		return
	}
	c.cells[y*c.w+x] = cell{r: r, cls: cls}
}

func (c *canvas) text(x, y int, s string, cls int) {
	for i, r := range []rune(s) {
		c.set(x+i, y, r, cls)
	}
}

// render flattens the canvas into styled lines, grouping runs of equal style
// class so each line carries only a handful of escape sequences.
func (c *canvas) render() string {
	styles := map[int]lipgloss.Style{
		clsBlank:    lipgloss.NewStyle(),
		clsEdge:     edgeStyle,
		clsNode:     nodeStyle,
		clsSelected: selectedStyle,
	}
	if c.w == 0 {
		return ""
	}
	var b strings.Builder
	for y := 0; y < c.h; y++ {
		runStart := 0
		row := c.cells[y*c.w : (y+1)*c.w]
		var line strings.Builder
		for x := 1; x <= c.w; x++ {
			if x == c.w || row[x].cls != row[runStart].cls {
				var run strings.Builder
				for i := runStart; i < x; i++ {
					run.WriteRune(row[i].r)
				}
				line.WriteString(styles[row[runStart].cls].Render(run.String()))
				runStart = x
			}
		}
		b.WriteString(line.String())
		if y < c.h-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// renderDiagram draws one example at the snapshot's pan and zoom. Positions
// come from the layout grid; this is the only place layout units are turned
// into screen cells.
func renderDiagram(ex catalog.Example, snap viewstate.View, sel viewstate.Selection, held bool, w, h int) string {
	if ex.Root == nil {
		return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, edgeStyle.Render("(empty diagram)"))
	}
	d := layout.Layout(ex.Root)
	cv := newCanvas(w, h)

	xGap := float64(colGap) * snap.Zoom
	yGap := float64(rowGap) * snap.Zoom
	// Center the tree, then shift by the pan offset (layout units).
	originX := float64(w)/2 - xGap*float64(d.Cols-1)/2 + snap.PanX*snap.Zoom
	originY := 1 + snap.PanY*snap.Zoom

	screenX := func(p layout.Placed) int { return int(math.Round(originX + xGap*float64(p.Col))) }
	screenY := func(p layout.Placed) int { return int(math.Round(originY + yGap*float64(p.Row))) }

	// Edges first so node labels draw over them.
	for _, e := range d.Edges {
		parent, child := d.Nodes[e.Parent], d.Nodes[e.Child]
		cls := clsEdge
		if held && sel.Kind == viewstate.SelectEdge &&
			sel.ParentID == parent.Node.ID && sel.ChildID == child.Node.ID {
			cls = clsSelected
		}
		drawEdge(cv, screenX(parent), screenY(parent), screenX(child), screenY(child), cls)
	}

	for _, p := range d.Nodes {
		cls := clsNode
		if held && sel.Kind == viewstate.SelectNode && sel.NodeID == p.Node.ID {
			cls = clsSelected
		}
		label := p.Node.Label
		if limit := int(xGap) - 1; limit > 2 && len([]rune(label)) > limit {
			label = string([]rune(label)[:limit-1]) + "…"
		}
		x := screenX(p) - len([]rune(label))/2
		cv.text(x, screenY(p), label, cls)
	}
	return cv.render()
}

// drawEdge draws an elbow connector: down from the parent, across, then down
// to the child.
func drawEdge(cv *canvas, px, py, cx, cy int, cls int) {
	if cy <= py {
		return
	}
	midY := py + (cy-py)/2
	for y := py + 1; y < midY; y++ {
		cv.set(px, y, '│', cls)
	}
	lo, hi := px, cx
	if lo > hi {
		lo, hi = hi, lo
	}
	for x := lo; x <= hi; x++ {
		cv.set(x, midY, '─', cls)
	}
	if cx != px {
		corner := '╮'
		if cx < px {
			corner = '╭'
		}
		cv.set(cx, midY, corner, cls)
	}
	for y := midY + 1; y < cy; y++ {
		cv.set(cx, y, '│', cls)
	}
}
