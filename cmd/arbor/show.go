package main

import (
	"encoding/json"
	"fmt"

	"github.com/lkael/arbor/internal/tree"
)

// ShowCmd prints the current tree, as an ASCII diagram or as the nested JSON
// contract.
type ShowCmd struct {
	JSON bool `help:"Emit the nested JSON representation instead of a diagram."`
}

func (cmd *ShowCmd) Run(g *Globals) error {
	s, err := openStore(g)
	if err != nil {
		return err
	}
	defer s.Close()

	root, err := s.LoadTree()
	if err != nil {
		return err
	}

	if cmd.JSON {
		payload, err := treeJSON(root)
		if err != nil {
			return err
		}
		fmt.Println(string(payload))
		return nil
	}

	fmt.Print(tree.Render(root))
	return nil
}

// treeJSON serializes a tree for delivery. The empty tree is JSON null.
func treeJSON(root *tree.Node) ([]byte, error) {
	if root == nil {
		return []byte("null"), nil
	}
	out, err := json.Marshal(root.Nested())
	if err != nil {
		return nil, fmt.Errorf("marshal tree: %w", err)
	}
	return out, nil
}
