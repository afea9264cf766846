// Package tree rebuilds an in-memory category tree from the flat,
// path-sorted rows the store keeps, in a single pass over the rows.
package tree

import "github.com/lkael/arbor/internal/mpath"

// Record is one flat row of the persisted tree: a category name and its
// materialized path. Records are read-only input to Build.
type Record struct {
	Name string
	Path string
}

// Node is a reconstructed category. The tree owns its nodes: every non-root
// node is reachable from exactly one parent's Children slice, in path order.
// Nodes are never mutated after the build pass that created them.
type Node struct {
	Name     string
	Path     string
	Children []*Node

	// parent is a non-owning back-reference, used for the upward walk
	// during construction.
	parent *Node
}

// Parent returns the node's parent, or nil for the root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Depth returns the node's depth; the root has depth 1.
func (n *Node) Depth() int {
	return mpath.Depth(n.Path)
}

// Find returns the descendant of n (or n itself) with the given path, or nil.
func (n *Node) Find(path string) *Node {
	if n == nil {
		return nil
	}
	if n.Path == path {
		return n
	}
	if !mpath.IsAncestor(n.Path, path) {
		return nil
	}
	for _, c := range n.Children {
		if found := c.Find(path); found != nil {
			return found
		}
	}
	return nil
}

// Size returns the number of nodes in the subtree rooted at n.
func (n *Node) Size() int {
	if n == nil {
		return 0
	}
	size := 1
	for _, c := range n.Children {
		size += c.Size()
	}
	return size
}
