package main

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/macshonle/tree-render-sub001/internal/catalog"
	"github.com/macshonle/tree-render-sub001/internal/config"
	"github.com/macshonle/tree-render-sub001/internal/viewstate"
)

const appName = "Treeviz"

// ---------------------------------------------------------------------------
// Model
// ---------------------------------------------------------------------------

// renderStamp identifies one rendered frame of the diagram viewport. The
// viewport is re-rendered only when the stamp changes; the cache's Seq field
// is what makes in-place pan/zoom mutations show up here.
type renderStamp struct {
	seq        uint64
	key        string
	width      int
	height     int
	inspecting bool
	selected   bool
	selection  viewstate.Selection
}

type model struct {
	views     *viewstate.Cache
	inspector viewstate.Inspector

	examples []catalog.Example
	exIndex  int

	picker *pickerState

	keys       keyMap
	pickerKeys pickerKeyMap

	width  int
	height int
	status string

	// Shared across model copies: bubbletea passes the model by value, and
	// the memo must survive from one View call to the next.
	memo *viewportMemo
}

// viewportMemo caches the last rendered diagram body. Valid while the stamp
// matches the current cache/inspector/window state.
type viewportMemo struct {
	stamp renderStamp
	body  string
	ok    bool
}

// newModel builds the viewer. The view-state cache arrives through the
// context and its absence panics: running the UI without one is a wiring bug,
// not something to paper over with a fresh cache.
func newModel(ctx context.Context, cfg config.Config) model {
	m := model{
		views:      viewstate.MustFromContext(ctx),
		examples:   catalog.Examples(),
		keys:       newKeyMap(),
		pickerKeys: newPickerKeyMap(),
		memo:       &viewportMemo{},
	}
	start := cfg.UI.StartExample
	if start != "" {
		for i, ex := range m.examples {
			if ex.Key == start {
				m.exIndex = i
				break
			}
		}
	}
	if len(m.examples) > 0 {
		m.views.SelectExample(m.examples[m.exIndex].Key)
	}
	return m
}

func (m model) current() catalog.Example {
	if len(m.examples) == 0 {
		return catalog.Example{}
	}
	return m.examples[m.exIndex]
}

// selectIndex switches to the example at i, wrapping around either end, and
// points the view-state cache at its key.
func (m model) selectIndex(i int) model {
	if len(m.examples) == 0 {
		return m
	}
	n := len(m.examples)
	m.exIndex = ((i % n) + n) % n
	m.views.SelectExample(m.examples[m.exIndex].Key)
	m.inspector.Clear()
	return m
}

// ---------------------------------------------------------------------------
// Bubble Tea interface: Init / View live here; Update is in update.go
// ---------------------------------------------------------------------------

func (m model) Init() tea.Cmd {
	return nil
}
