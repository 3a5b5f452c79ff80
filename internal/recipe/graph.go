// Package recipe models which item types turn into which other types.
// The graph is built once from a recipe book and then only queried, so a
// single *Graph can be shared by every component without locking.
package recipe

import (
	"fmt"
	"sort"
	"strings"
)

// NoInput labels an edge that needs no tool or action to traverse.
const NoInput = "none"

// Well-known inputs used by the kitchen.
const (
	InputChop  = "chopping board"
	InputFry   = "frying pan"
	InputBoil  = "saucepan"
	InputServe = "serve"
)

// Edge is a directed transformation to Destination, gated by Input.
type Edge struct {
	Destination string
	Input       string
}

// Graph is a directed graph over item-type names.
type Graph struct {
	edges map[string][]Edge
}

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return &Graph{edges: make(map[string][]Edge)}
}

// AddNode declares a node. Declaring an existing node keeps its edges.
func (g *Graph) AddNode(name string) {
	if _, ok := g.edges[name]; !ok {
		g.edges[name] = nil
	}
}

// AddEdge appends an edge from -> to. An empty input means NoInput.
// Neither endpoint is checked; Book.Validate reports dangling edges.
func (g *Graph) AddEdge(from, to, input string) {
	if input == "" {
		input = NoInput
	}
	g.edges[from] = append(g.edges[from], Edge{Destination: to, Input: input})
}

// HasNode reports whether name was declared or has outgoing edges.
func (g *Graph) HasNode(name string) bool {
	_, ok := g.edges[name]
	return ok
}

// Neighbors returns the outgoing edges of node in insertion order.
// Unknown nodes have no neighbors. The returned slice must not be modified.
func (g *Graph) Neighbors(node string) []Edge {
	return g.edges[node]
}

// CommonNode returns the type two items combine into: the last destination
// of b, in edge order, that is also a destination of a.
func (g *Graph) CommonNode(a, b string) (string, bool) {
	fromA := make(map[string]struct{}, len(g.edges[a]))
	for _, e := range g.edges[a] {
		fromA[e.Destination] = struct{}{}
	}

	common, found := "", false
	for _, e := range g.edges[b] {
		if _, ok := fromA[e.Destination]; ok {
			common, found = e.Destination, true
		}
	}
	return common, found
}

// InputForEdge returns the input of the first edge from -> to.
func (g *Graph) InputForEdge(from, to string) (string, bool) {
	for _, e := range g.edges[from] {
		if e.Destination == to {
			return e.Input, true
		}
	}
	return "", false
}

// ApplyInput returns the destination of the first edge out of from whose
// input matches.
func (g *Graph) ApplyInput(from, input string) (string, bool) {
	for _, e := range g.edges[from] {
		if e.Input == input {
			return e.Destination, true
		}
	}
	return "", false
}

// Accepts reports whether from has an edge labelled input.
func (g *Graph) Accepts(from, input string) bool {
	_, ok := g.ApplyInput(from, input)
	return ok
}

// Nodes returns every node name, sorted.
func (g *Graph) Nodes() []string {
	names := make([]string, 0, len(g.edges))
	for name := range g.edges {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// WithInput returns the sorted nodes that have at least one edge labelled input.
func (g *Graph) WithInput(input string) []string {
	var names []string
	for _, name := range g.Nodes() {
		if g.Accepts(name, input) {
			names = append(names, name)
		}
	}
	return names
}

// String renders the graph one node per line, nodes sorted and edges in
// insertion order.
func (g *Graph) String() string {
	var b strings.Builder
	for _, name := range g.Nodes() {
		b.WriteString(name)
		b.WriteString(" ->")
		for _, e := range g.edges[name] {
			if e.Input == NoInput {
				fmt.Fprintf(&b, " %s", e.Destination)
				continue
			}
			fmt.Fprintf(&b, " %s [%s]", e.Destination, e.Input)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
