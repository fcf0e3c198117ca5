// Package catalog holds the built-in example tree diagrams. The data is
// static and read-only: the viewer renders it but never mutates it, and all
// per-example state (pan, zoom, selection) lives elsewhere, keyed by the
// example's Key.
package catalog

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/google/uuid"
)

// Node is one vertex of an example tree. IDs are unique within an example.
type Node struct {
	ID       string
	Label    string
	Children []*Node
}

// Example is a named diagram. Key is the opaque string identifying it to the
// view-state cache; consumers rely only on string equality.
type Example struct {
	Key   string
	Title string
	Root  *Node
}

func n(id, label string, children ...*Node) *Node {
	return &Node{ID: id, Label: label, Children: children}
}

// Examples returns the built-in example set, in display order. The slice is
// rebuilt per call so callers cannot disturb the canonical data.
func Examples() []Example {
	return []Example{
		{
			Key:   "binary-search",
			Title: "Binary search tree",
			Root: n("8", "8",
				n("3", "3",
					n("1", "1"),
					n("6", "6",
						n("4", "4"),
						n("7", "7"))),
				n("10", "10",
					n("14", "14",
						n("13", "13")))),
		},
		{
			Key:   "filesystem",
			Title: "Project layout",
			Root: n("root", "project/",
				n("cmd", "cmd/",
					n("main", "main.go")),
				n("internal", "internal/",
					n("config", "config/"),
					n("store", "store/",
						n("store-go", "store.go"),
						n("store-test", "store_test.go"))),
				n("gomod", "go.mod"),
				n("readme", "README.md")),
		},
		{
			Key:   "org-chart",
			Title: "Org chart",
			Root: n("ceo", "CEO",
				n("eng", "VP Eng",
					n("plat", "Platform"),
					n("prod", "Product Eng",
						n("fe", "Frontend"),
						n("be", "Backend"))),
				n("ops", "VP Ops",
					n("it", "IT"),
					n("fac", "Facilities")),
				n("fin", "Finance")),
		},
		{
			Key:   "expression",
			Title: "Expression AST",
			Root: n("mul", "*",
				n("add", "+",
					n("a", "a"),
					n("b", "b")),
				n("sub", "-",
					n("c", "c"),
					n("two", "2"))),
		},
		{
			Key:   "lone-root",
			Title: "Single node",
			Root:  n("only", "only"),
		},
	}
}

// Find returns the example with the given key.
func Find(key string) (Example, bool) {
	for _, ex := range Examples() {
		if ex.Key == key {
			return ex, true
		}
	}
	return Example{}, false
}

// Search ranks examples by edit distance between the query and each
// example's key and title (case-insensitive, best of the two). An empty
// query returns the catalog in display order.
func Search(query string) []Example {
	all := Examples()
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return all
	}
	type ranked struct {
		ex   Example
		dist int
	}
	rs := make([]ranked, 0, len(all))
	for _, ex := range all {
		d := levenshtein.ComputeDistance(q, strings.ToLower(ex.Key))
		if td := levenshtein.ComputeDistance(q, strings.ToLower(ex.Title)); td < d {
			d = td
		}
		// Substring hits beat pure edit distance.
		if strings.Contains(strings.ToLower(ex.Key), q) || strings.Contains(strings.ToLower(ex.Title), q) {
			d = 0
		}
		rs = append(rs, ranked{ex, d})
	}
	sort.SliceStable(rs, func(i, j int) bool { return rs[i].dist < rs[j].dist })
	out := make([]Example, len(rs))
	for i, r := range rs {
		out[i] = r.ex
	}
	return out
}

// Scratch mints a fresh scratch example with a random key. Scratch keys are
// deliberately unlike the built-in ones: the view-state cache treats every
// key as an opaque string.
func Scratch() Example {
	id := uuid.NewString()
	return Example{
		Key:   "scratch-" + id,
		Title: "Scratch " + id[:8],
		Root: n("s-root", "scratch",
			n("s-a", "a",
				n("s-a1", "a1"),
				n("s-a2", "a2")),
			n("s-b", "b")),
	}
}

// Count returns the number of nodes under root, inclusive.
func Count(root *Node) int {
	if root == nil {
		return 0
	}
	total := 1
	for _, c := range root.Children {
		total += Count(c)
	}
	return total
}

// Depth returns the number of levels under root, inclusive. A lone root has
// depth 1.
func Depth(root *Node) int {
	if root == nil {
		return 0
	}
	deepest := 0
	for _, c := range root.Children {
		if d := Depth(c); d > deepest {
			deepest = d
		}
	}
	return deepest + 1
}
