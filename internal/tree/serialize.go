package tree

// Nested is the serialization shape handed to caching and delivery
// collaborators. Children keep their sibling order; a leaf has an empty
// (never null) children array. The empty tree is represented by no Nested
// value at all: callers serialize a nil root as JSON null.
type Nested struct {
	Name     string   `json:"name"`
	Path     string   `json:"path"`
	Children []Nested `json:"children"`
}

// Nested converts the subtree rooted at n into its serializable form.
func (n *Node) Nested() Nested {
	out := Nested{Name: n.Name, Path: n.Path, Children: []Nested{}}
	for _, c := range n.Children {
		out.Children = append(out.Children, c.Nested())
	}
	return out
}

// Flatten walks the tree in pre-order and returns its flat records. Because
// paths sort in pre-order, the result is already sorted ascending by path,
// ready to be persisted or rebuilt.
func Flatten(root *Node) []Record {
	if root == nil {
		return nil
	}
	records := make([]Record, 0, root.Size())
	stack := []*Node{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		records = append(records, Record{Name: n.Name, Path: n.Path})
		for i := len(n.Children) - 1; i >= 0; i-- {
			stack = append(stack, n.Children[i])
		}
	}
	return records
}
