package tree

import (
	"fmt"

	tp "github.com/xlab/treeprint"
)

// Render prints the tree as an ASCII diagram, one node per line with its
// path beside the name. An empty tree renders as the empty string.
func Render(root *Node) string {
	if root == nil {
		return ""
	}
	p := tp.NewWithRoot(label(root))
	for _, c := range root.Children {
		renderInto(p, c)
	}
	return p.String()
}

func renderInto(p tp.Tree, n *Node) {
	if len(n.Children) == 0 {
		p.AddNode(label(n))
		return
	}
	branch := p.AddBranch(label(n))
	for _, c := range n.Children {
		renderInto(branch, c)
	}
}

func label(n *Node) string {
	return fmt.Sprintf("%s (%s)", n.Name, n.Path)
}
