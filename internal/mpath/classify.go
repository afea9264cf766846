package mpath

import "fmt"

// Relation classifies where the next path of a sorted sequence attaches
// relative to the current cursor path.
type Relation int

const (
	// Child: next is one level deeper than cursor; by sortedness it is
	// cursor's next child.
	Child Relation = iota
	// Sibling: next has cursor's length and therefore shares its parent.
	Sibling
	// AncestorSibling: next is shallower than cursor; it is the next sibling
	// of the cursor's ancestor at next's depth.
	AncestorSibling
)

func (r Relation) String() string {
	switch r {
	case Child:
		return "child"
	case Sibling:
		return "sibling"
	case AncestorSibling:
		return "ancestor-sibling"
	}
	return fmt.Sprintf("Relation(%d)", int(r))
}

// Classify determines the structural relation between the cursor path and the
// next path drawn from a path-sorted sequence, using length comparison only.
//
// Both arguments must come from the same globally sorted sequence with cursor
// preceding next. Classify fails fast when that precondition is visibly
// broken: an equal pair is ErrDuplicatePath, a lexicographically decreasing
// pair is ErrOrderViolation.
func Classify(cursor, next string) (Relation, error) {
	if next == cursor {
		return 0, fmt.Errorf("%q: %w", next, ErrDuplicatePath)
	}
	if next < cursor {
		return 0, fmt.Errorf("%q after %q: %w", next, cursor, ErrOrderViolation)
	}
	switch {
	case len(next) > len(cursor):
		return Child, nil
	case len(next) == len(cursor):
		return Sibling, nil
	default:
		return AncestorSibling, nil
	}
}
