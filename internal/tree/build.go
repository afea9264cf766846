package tree

import (
	"fmt"

	"github.com/lkael/arbor/internal/mpath"
)

// Build reconstructs the full tree from records sorted ascending by path.
//
// The pass is iterative and visits each record exactly once, keeping a cursor
// on the most recently created node. Each record attaches relative to the
// cursor according to its classified relation; the only non-constant step is
// the upward walk to find the attachment ancestor, bounded by tree depth.
//
// An empty input is a valid empty tree and returns (nil, nil). Malformed
// input (unsorted, duplicate paths, a path whose parent is absent) fails with
// an error wrapping mpath.ErrOrderViolation or mpath.ErrDuplicatePath; no
// partial tree is ever returned.
func Build(records []Record) (*Node, error) {
	if len(records) == 0 {
		return nil, nil
	}

	root := &Node{Name: records[0].Name, Path: records[0].Path}
	cursor := root

	for _, rec := range records[1:] {
		rel, err := mpath.Classify(cursor.Path, rec.Path)
		if err != nil {
			return nil, fmt.Errorf("build %q: %w", rec.Name, err)
		}

		var parent *Node
		switch rel {
		case mpath.Child:
			parent = cursor
		case mpath.Sibling:
			parent = cursor.parent
		case mpath.AncestorSibling:
			// Walk up to the ancestor whose depth matches the record,
			// then attach beside it.
			anc := cursor.parent
			for anc != nil && anc.Depth() > mpath.Depth(rec.Path) {
				anc = anc.parent
			}
			if anc == nil {
				return nil, fmt.Errorf("build %q: no ancestor at depth %d: %w",
					rec.Name, mpath.Depth(rec.Path), mpath.ErrOrderViolation)
			}
			parent = anc.parent
		}

		if parent == nil {
			return nil, fmt.Errorf("build %q: second root: %w", rec.Name, mpath.ErrOrderViolation)
		}
		if mpath.Parent(rec.Path) != parent.Path {
			return nil, fmt.Errorf("build %q: path %q does not attach under %q: %w",
				rec.Name, rec.Path, parent.Path, mpath.ErrOrderViolation)
		}

		node := &Node{Name: rec.Name, Path: rec.Path, parent: parent}
		parent.Children = append(parent.Children, node)
		cursor = node
	}

	return root, nil
}
