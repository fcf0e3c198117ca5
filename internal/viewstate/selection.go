package viewstate

// Inspector is the debug-mode selection state: an enable flag plus a single
// selection slot holding either a node or an edge. It is deliberately
// decoupled from the Cache — inspecting a diagram has no effect on its
// viewport state.

// SelectionKind tags the two selection variants.
type SelectionKind int

const (
	// SelectNode selects a single node by ID.
	SelectNode SelectionKind = iota
	// SelectEdge selects the edge between a parent and one of its children.
	SelectEdge
)

// Selection is a tagged variant: NodeID is meaningful for SelectNode,
// ParentID/ChildID for SelectEdge.
type Selection struct {
	Kind     SelectionKind
	NodeID   string
	ParentID string
	ChildID  string
}

// NodeSelection builds a node-variant selection.
func NodeSelection(nodeID string) Selection {
	return Selection{Kind: SelectNode, NodeID: nodeID}
}

// EdgeSelection builds an edge-variant selection.
func EdgeSelection(parentID, childID string) Selection {
	return Selection{Kind: SelectEdge, ParentID: parentID, ChildID: childID}
}

// Equal compares by tag first, then by the identifying fields of that tag.
func (s Selection) Equal(o Selection) bool {
	if s.Kind != o.Kind {
		return false
	}
	switch s.Kind {
	case SelectNode:
		return s.NodeID == o.NodeID
	case SelectEdge:
		return s.ParentID == o.ParentID && s.ChildID == o.ChildID
	}
	return false
}

// Inspector holds debug-mode state for one viewer.
type Inspector struct {
	enabled  bool
	selected bool
	sel      Selection
}

// Enabled reports whether debug mode is on.
func (in *Inspector) Enabled() bool { return in.enabled }

// Enable turns debug mode on.
func (in *Inspector) Enable() { in.enabled = true }

// Disable turns debug mode off and drops any selection.
func (in *Inspector) Disable() {
	in.enabled = false
	in.selected = false
	in.sel = Selection{}
}

// ToggleEnabled flips debug mode, clearing the selection when turning off.
func (in *Inspector) ToggleEnabled() {
	if in.enabled {
		in.Disable()
		return
	}
	in.Enable()
}

// Toggle selects s, or clears the slot when s is already selected (same tag,
// same identifying fields). No-op while debug mode is off.
func (in *Inspector) Toggle(s Selection) {
	if !in.enabled {
		return
	}
	if in.selected && in.sel.Equal(s) {
		in.selected = false
		in.sel = Selection{}
		return
	}
	in.selected = true
	in.sel = s
}

// Clear empties the selection slot without changing the enable flag.
func (in *Inspector) Clear() {
	in.selected = false
	in.sel = Selection{}
}

// Selection returns the current selection and whether one is held.
func (in *Inspector) Selection() (Selection, bool) {
	return in.sel, in.selected
}
