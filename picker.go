package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/macshonle/tree-render-sub001/internal/catalog"
)

// ---------------------------------------------------------------------------
// Example picker overlay
// ---------------------------------------------------------------------------

type pickerState struct {
	query    string
	filtered []catalog.Example
	cursor   int
}

func newPicker() *pickerState {
	return &pickerState{filtered: catalog.Search("")}
}

func (p *pickerState) typed(s string) {
	p.query += s
	p.refilter()
}

func (p *pickerState) backspace() {
	if p.query == "" {
		return
	}
	r := []rune(p.query)
	p.query = string(r[:len(r)-1])
	p.refilter()
}

func (p *pickerState) refilter() {
	p.filtered = catalog.Search(p.query)
	p.cursor = 0
}

func (p *pickerState) move(delta int) {
	if len(p.filtered) == 0 {
		return
	}
	p.cursor += delta
	if p.cursor < 0 {
		p.cursor = 0
	}
	if p.cursor >= len(p.filtered) {
		p.cursor = len(p.filtered) - 1
	}
}

func (p *pickerState) choice() (catalog.Example, bool) {
	if len(p.filtered) == 0 || p.cursor >= len(p.filtered) {
		return catalog.Example{}, false
	}
	return p.filtered[p.cursor], true
}

// ---------------------------------------------------------------------------
// Rendering
// ---------------------------------------------------------------------------

var (
	pickerBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent).
			Padding(0, 1)

	pickerTitleStyle  = lipgloss.NewStyle().Foreground(colorBrand).Bold(true)
	pickerQueryStyle  = lipgloss.NewStyle().Foreground(colorText)
	pickerCursorStyle = lipgloss.NewStyle().Foreground(colorSelected).Bold(true)
	pickerRowStyle    = lipgloss.NewStyle().Foreground(colorHint)
)

func (p *pickerState) render() string {
	var b strings.Builder
	b.WriteString(pickerTitleStyle.Render("Examples"))
	b.WriteString("\n")
	b.WriteString(pickerQueryStyle.Render("> " + p.query))
	b.WriteString("\n\n")
	if len(p.filtered) == 0 {
		b.WriteString(pickerRowStyle.Render("(no matches)"))
	}
	for i, ex := range p.filtered {
		line := fmt.Sprintf("%s  %s", ex.Title, ex.Key)
		if i == p.cursor {
			b.WriteString(pickerCursorStyle.Render("> " + line))
		} else {
			b.WriteString(pickerRowStyle.Render("  " + line))
		}
		if i < len(p.filtered)-1 {
			b.WriteString("\n")
		}
	}
	return pickerBoxStyle.Render(b.String())
}
