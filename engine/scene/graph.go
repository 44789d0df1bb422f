// Package scene implements the retained scene graph from spec.md §4.4:
// per-id containers for bodies, locations, ships and their labels,
// reconciled against each sync-loop poll so stale containers are
// garbage-collected and no frame ever observes a half-applied update.
//
// Grounded on the named-slice Add/Remove/Clear container pattern in
// engine/view/planet_layer.go, generalized to id-keyed maps so
// reconciliation is O(n) instead of a linear scan per removal.
package scene

import (
	"sort"

	"orbitalmap/engine/depth"
	"orbitalmap/engine/model"
)

// Node is one retained container in the scene graph: a body, location,
// or ship icon plus its label, tracked by id across frames.
type Node struct {
	ID    string
	Layer depth.Layer
	X, Y  float64
	Kind  model.LocationKind

	// Dirty is set when this node's transform or icon needs a redraw
	// this frame; cleared once drawn.
	Dirty bool
}

// Graph holds every retained node, keyed by id.
type Graph struct {
	nodes map[string]*Node
}

// NewGraph returns an empty scene graph.
func NewGraph() *Graph {
	return &Graph{nodes: make(map[string]*Node)}
}

// Get returns the node for id, or nil.
func (g *Graph) Get(id string) *Node {
	return g.nodes[id]
}

// Len reports how many nodes are currently retained.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// IDs returns the retained node ids in sorted order, for deterministic
// iteration (tests, overview panel rebuild).
func (g *Graph) IDs() []string {
	ids := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Reconcile upserts a node for every location in current (creating it
// with Dirty=true if new) and removes any retained node whose id is not
// present, so the scene graph never accumulates orphans across polls.
// It returns the removed ids.
func (g *Graph) Reconcile(current []model.Location, layerOf func(model.Location) depth.Layer) []string {
	want := make(map[string]bool, len(current))
	for _, loc := range current {
		want[loc.ID] = true
		if n, ok := g.nodes[loc.ID]; ok {
			n.Kind = loc.Kind
			continue
		}
		g.nodes[loc.ID] = &Node{ID: loc.ID, Layer: layerOf(loc), Kind: loc.Kind, Dirty: true}
	}

	var removed []string
	for id := range g.nodes {
		if !want[id] {
			removed = append(removed, id)
			delete(g.nodes, id)
		}
	}
	sort.Strings(removed)
	return removed
}

// UpdatePosition sets a node's world position and marks it dirty if the
// position actually changed.
func (g *Graph) UpdatePosition(id string, x, y float64) {
	n, ok := g.nodes[id]
	if !ok {
		return
	}
	if n.X != x || n.Y != y {
		n.X, n.Y = x, y
		n.Dirty = true
	}
}

// ClearDirty clears the dirty flag on every node after a frame's draw.
func (g *Graph) ClearDirty() {
	for _, n := range g.nodes {
		n.Dirty = false
	}
}
