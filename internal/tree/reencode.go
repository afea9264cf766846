package tree

import (
	"fmt"

	"github.com/lkael/arbor/internal/mpath"
)

// Reencode reassigns materialized paths for the entire subtree rooted at n,
// keeping root.Path as-is and numbering children contiguously in their
// current slice order. It is the regeneration step after a structural edit
// (move, delete): edits rearrange Children in memory, then Reencode makes
// the paths consistent again before the tree is persisted.
//
// Fails with mpath.ErrCapacityExceeded if any node ends up with more
// children than a segment can encode; paths already rewritten are left
// behind, so callers must discard the tree on error.
func Reencode(n *Node) error {
	for i, c := range n.Children {
		path, err := mpath.Encode(n.Path, i+1)
		if err != nil {
			return fmt.Errorf("reencode under %q: %w", n.Name, err)
		}
		c.Path = path
		c.parent = n
		if err := Reencode(c); err != nil {
			return err
		}
	}
	return nil
}

// Graft appends child to parent's children and re-encodes the grafted
// subtree under its new position. The child must not be an ancestor of
// parent.
func Graft(parent, child *Node) error {
	path, err := mpath.Encode(parent.Path, len(parent.Children)+1)
	if err != nil {
		return fmt.Errorf("graft %q under %q: %w", child.Name, parent.Name, err)
	}
	child.Path = path
	child.parent = parent
	parent.Children = append(parent.Children, child)
	return Reencode(child)
}

// Prune detaches the node at path from the tree and returns it. The
// remaining siblings are not re-encoded; callers run Reencode on the root
// once all edits are done.
func Prune(root *Node, path string) (*Node, error) {
	target := root.Find(path)
	if target == nil {
		return nil, fmt.Errorf("prune: no node at %q", path)
	}
	parent := target.parent
	if parent == nil {
		return nil, fmt.Errorf("prune: cannot detach the root")
	}
	for i, c := range parent.Children {
		if c == target {
			parent.Children = append(parent.Children[:i], parent.Children[i+1:]...)
			break
		}
	}
	target.parent = nil
	return target, nil
}
