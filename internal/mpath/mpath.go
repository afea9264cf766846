// Package mpath implements the materialized-path encoding used to store
// category trees as flat rows. Each node's position is a string of uppercase
// letters, one per level, chosen so that sorting all paths lexicographically
// yields a pre-order traversal: a parent sorts immediately before its first
// child, and a whole subtree sorts before the next sibling.
package mpath

import (
	"errors"
	"fmt"
	"strings"
)

// alphabetSize is the number of encodable children per parent with
// single-letter segments ('A' through 'Z').
const alphabetSize = 26

var (
	// ErrCapacityExceeded is returned when a parent would need more children
	// than single-letter segments can encode.
	ErrCapacityExceeded = errors.New("mpath: sibling ordinal exceeds segment alphabet")

	// ErrOrderViolation is returned when two paths that should come from a
	// sorted sequence are out of order, or when a path cannot attach at the
	// position its length claims.
	ErrOrderViolation = errors.New("mpath: path sequence is not sorted")

	// ErrDuplicatePath is returned when two records share the same path.
	ErrDuplicatePath = errors.New("mpath: duplicate path")
)

// Root returns the path of a tree's root node, the shortest encodable path.
func Root() string {
	return "A"
}

// Encode produces the path for the ordinal-th child (1-based) of the node at
// parent. The result extends parent by exactly one letter, and children sort
// in ordinal order.
//
// Segments are fixed-width on purpose: the comparator classifies relations by
// path length alone, so a variable-width fallback would break the equal
// length implies sibling rule. A parent that needs a 27th child fails with
// ErrCapacityExceeded instead.
func Encode(parent string, ordinal int) (string, error) {
	if ordinal < 1 || ordinal > alphabetSize {
		return "", fmt.Errorf("child %d of %q: %w", ordinal, parent, ErrCapacityExceeded)
	}
	return parent + string(rune('A'+ordinal-1)), nil
}

// Depth returns the depth of the node at path; the root has depth 1.
func Depth(path string) int {
	return len(path)
}

// Parent returns the path of the node's parent, or "" for the root.
func Parent(path string) string {
	if len(path) <= 1 {
		return ""
	}
	return path[:len(path)-1]
}

// IsAncestor reports whether the node at a is a proper ancestor of the node
// at b.
func IsAncestor(a, b string) bool {
	return len(a) < len(b) && strings.HasPrefix(b, a)
}
