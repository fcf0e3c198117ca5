// Package layout places the nodes of an example tree on an abstract grid:
// row = depth, column = position over the subtree's leaf span. It knows
// nothing about cells, pixels, pan, or zoom — the render layer applies those.
package layout

import "github.com/macshonle/tree-render-sub001/internal/catalog"

// Placed is a node with its grid position.
type Placed struct {
	Node *catalog.Node
	Row  int
	Col  int
}

// Edge connects a parent to one child, by index into Diagram.Nodes.
type Edge struct {
	Parent int
	Child  int
}

// Diagram is the placed form of one example tree. Nodes are in preorder, so
// Nodes[0] is the root of a non-empty diagram.
type Diagram struct {
	Nodes []Placed
	Edges []Edge
	Rows  int // total depth
	Cols  int // total leaf span
}

// Layout places root's tree. Leaves get consecutive columns left to right;
// an interior node is centered over its first and last child.
func Layout(root *catalog.Node) *Diagram {
	d := &Diagram{}
	if root == nil {
		return d
	}
	nextLeaf := 0
	var place func(node *catalog.Node, depth int) int
	place = func(node *catalog.Node, depth int) int {
		idx := len(d.Nodes)
		d.Nodes = append(d.Nodes, Placed{Node: node, Row: depth})
		if depth+1 > d.Rows {
			d.Rows = depth + 1
		}
		if len(node.Children) == 0 {
			d.Nodes[idx].Col = nextLeaf
			nextLeaf++
			return idx
		}
		first, last := -1, -1
		for _, c := range node.Children {
			ci := place(c, depth+1)
			d.Edges = append(d.Edges, Edge{Parent: idx, Child: ci})
			if first < 0 {
				first = d.Nodes[ci].Col
			}
			last = d.Nodes[ci].Col
		}
		d.Nodes[idx].Col = (first + last) / 2
		return idx
	}
	place(root, 0)
	d.Cols = nextLeaf
	return d
}
