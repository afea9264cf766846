package mpath

import (
	"errors"
	"testing"
)

func TestEncode_FirstChild(t *testing.T) {
	path, err := Encode("A", 1)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if path != "AA" {
		t.Fatalf("Encode(A, 1) = %q, want AA", path)
	}
}

func TestEncode_OrdinalsSortInOrder(t *testing.T) {
	prev := ""
	for i := 1; i <= 26; i++ {
		path, err := Encode("AB", i)
		if err != nil {
			t.Fatalf("Encode(AB, %d): %v", i, err)
		}
		if len(path) != 3 {
			t.Fatalf("Encode(AB, %d) = %q, want length 3", i, path)
		}
		if prev != "" && path <= prev {
			t.Fatalf("Encode(AB, %d) = %q does not sort after %q", i, path, prev)
		}
		prev = path
	}
}

func TestEncode_CapacityExceeded(t *testing.T) {
	if _, err := Encode("A", 27); !errors.Is(err, ErrCapacityExceeded) {
		t.Fatalf("Encode(A, 27) = %v, want ErrCapacityExceeded", err)
	}
	if _, err := Encode("A", 0); !errors.Is(err, ErrCapacityExceeded) {
		t.Fatalf("Encode(A, 0) = %v, want ErrCapacityExceeded", err)
	}
}

func TestRoot(t *testing.T) {
	if Root() != "A" {
		t.Fatalf("Root() = %q, want A", Root())
	}
	if Depth(Root()) != 1 {
		t.Fatalf("Depth(Root()) = %d, want 1", Depth(Root()))
	}
}

func TestParent(t *testing.T) {
	if p := Parent("AAB"); p != "AA" {
		t.Fatalf("Parent(AAB) = %q, want AA", p)
	}
	if p := Parent("A"); p != "" {
		t.Fatalf("Parent(A) = %q, want empty", p)
	}
}

func TestIsAncestor(t *testing.T) {
	cases := []struct {
		a, b string
		want bool
	}{
		{"A", "AAB", true},
		{"AA", "AAB", true},
		{"AAB", "AAB", false},
		{"AB", "AAB", false},
		{"AAB", "AA", false},
	}
	for _, c := range cases {
		if got := IsAncestor(c.a, c.b); got != c.want {
			t.Errorf("IsAncestor(%q, %q) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}

func TestClassify_Relations(t *testing.T) {
	cases := []struct {
		cursor, next string
		want         Relation
	}{
		{"A", "AA", Child},
		{"AA", "AAA", Child},
		{"AAA", "AAB", Sibling},
		{"AABB", "AB", AncestorSibling},
		{"ABAA", "ABB", AncestorSibling},
		{"ABB", "AC", AncestorSibling},
	}
	for _, c := range cases {
		got, err := Classify(c.cursor, c.next)
		if err != nil {
			t.Errorf("Classify(%q, %q): %v", c.cursor, c.next, err)
			continue
		}
		if got != c.want {
			t.Errorf("Classify(%q, %q) = %v, want %v", c.cursor, c.next, got, c.want)
		}
	}
}

func TestClassify_OutOfOrder(t *testing.T) {
	if _, err := Classify("AB", "AA"); !errors.Is(err, ErrOrderViolation) {
		t.Fatalf("Classify(AB, AA) = %v, want ErrOrderViolation", err)
	}
}

func TestClassify_Duplicate(t *testing.T) {
	if _, err := Classify("AB", "AB"); !errors.Is(err, ErrDuplicatePath) {
		t.Fatalf("Classify(AB, AB) = %v, want ErrDuplicatePath", err)
	}
}
