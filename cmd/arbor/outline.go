package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lkael/arbor/internal/mpath"
	"github.com/lkael/arbor/internal/tree"
)

// outline is the YAML shape for import/export: names nested under names,
// paths implied by position.
type outline struct {
	Name     string    `yaml:"name"`
	Children []outline `yaml:"children,omitempty"`
}

// outlineToTree turns an outline into a fully pathed tree, encoding each
// node's path from its position.
func outlineToTree(o outline) (*tree.Node, error) {
	root := &tree.Node{Name: o.Name, Path: mpath.Root()}
	if err := attachOutline(root, o.Children); err != nil {
		return nil, err
	}
	return root, nil
}

func attachOutline(parent *tree.Node, children []outline) error {
	for i, c := range children {
		path, err := mpath.Encode(parent.Path, i+1)
		if err != nil {
			return fmt.Errorf("outline under %q: %w", parent.Name, err)
		}
		node := &tree.Node{Name: c.Name, Path: path}
		parent.Children = append(parent.Children, node)
		if err := attachOutline(node, c.Children); err != nil {
			return err
		}
	}
	return nil
}

func treeToOutline(n *tree.Node) outline {
	o := outline{Name: n.Name}
	for _, c := range n.Children {
		o.Children = append(o.Children, treeToOutline(c))
	}
	return o
}

// ImportCmd replaces the stored tree with a YAML outline.
type ImportCmd struct {
	File string `arg:"" type:"existingfile" help:"YAML outline file."`
}

func (cmd *ImportCmd) Run(g *Globals) error {
	data, err := os.ReadFile(cmd.File)
	if err != nil {
		return fmt.Errorf("read outline: %w", err)
	}

	var o outline
	if err := yaml.Unmarshal(data, &o); err != nil {
		return fmt.Errorf("parse outline: %w", err)
	}
	if o.Name == "" {
		return fmt.Errorf("outline root has no name")
	}

	root, err := outlineToTree(o)
	if err != nil {
		return err
	}

	s, err := openStore(g)
	if err != nil {
		return err
	}
	defer s.Close()

	return s.ReplaceAll(root)
}

// ExportCmd writes the stored tree as a YAML outline to stdout.
type ExportCmd struct{}

func (cmd *ExportCmd) Run(g *Globals) error {
	s, err := openStore(g)
	if err != nil {
		return err
	}
	defer s.Close()

	root, err := s.LoadTree()
	if err != nil {
		return err
	}
	if root == nil {
		return nil
	}

	out, err := yaml.Marshal(treeToOutline(root))
	if err != nil {
		return fmt.Errorf("marshal outline: %w", err)
	}
	_, err = os.Stdout.Write(out)
	return err
}
