// Package catalog lists the nodes of a scene that can be picked in the
// object panel.
package catalog

import (
	"errors"
	"fmt"

	"diorama/internal/engine"
)

// MaxDepth is the number of nested container levels that are expanded.
const MaxDepth = 3

var ErrNotFound = errors.New("node not found")

// visitOrder is the order in which child kinds are visited at each level.
var visitOrder = [...]engine.Kind{engine.KindObjectGroup, engine.KindGroup, engine.KindMesh}

// Selectable returns the selectable nodes under root in traversal order.
//
// Children of root are level 1. At every level object groups are visited
// first, then groups, then meshes, each in insertion order. Containers on
// levels 1 to MaxDepth are expanded, and emitted before their descendants when
// includeGroups is set; deeper levels contribute meshes only. Helpers and
// other kinds are skipped. The result is recomputed on every call.
func Selectable(root *engine.Node, includeGroups bool) []*engine.Node {
	if root == nil {
		return nil
	}
	var out []*engine.Node
	collect(root, 1, includeGroups, &out)
	return out
}

func collect(parent *engine.Node, level int, includeGroups bool, out *[]*engine.Node) {
	for _, kind := range visitOrder {
		for _, child := range parent.Children {
			if child.Kind != kind {
				continue
			}
			if kind == engine.KindMesh {
				*out = append(*out, child)
				continue
			}
			// Below the last expanded level only meshes are listed.
			if level > MaxDepth {
				continue
			}
			if includeGroups {
				*out = append(*out, child)
			}
			collect(child, level+1, includeGroups, out)
		}
	}
}

// Find returns the first selectable node named name, groups included.
func Find(root *engine.Node, name string) (*engine.Node, error) {
	for _, n := range Selectable(root, true) {
		if n.Name == name {
			return n, nil
		}
	}
	return nil, fmt.Errorf("%q: %w", name, ErrNotFound)
}

// Names maps nodes to their names, keeping order.
func Names(nodes []*engine.Node) []string {
	names := make([]string, len(nodes))
	for i, n := range nodes {
		names[i] = n.Name
	}
	return names
}
