package main

import "fmt"

// InitCmd creates the database and seeds the root category.
type InitCmd struct {
	Root string `default:"root" help:"Name of the root category."`
}

func (cmd *InitCmd) Run(g *Globals) error {
	s, err := openStore(g)
	if err != nil {
		return err
	}
	defer s.Close()

	return s.Init(cmd.Root)
}

// AddCmd inserts a child category under an existing parent.
type AddCmd struct {
	Parent string `arg:"" help:"Materialized path of the parent category."`
	Name   string `arg:"" help:"Name of the new category."`
}

func (cmd *AddCmd) Run(g *Globals) error {
	s, err := openStore(g)
	if err != nil {
		return err
	}
	defer s.Close()

	path, err := s.AddCategory(cmd.Parent, cmd.Name)
	if err != nil {
		return err
	}
	fmt.Println(path)
	return nil
}

// MvCmd moves a subtree under a new parent.
type MvCmd struct {
	Src string `arg:"" help:"Path of the subtree to move."`
	Dst string `arg:"" help:"Path of the new parent."`
}

func (cmd *MvCmd) Run(g *Globals) error {
	s, err := openStore(g)
	if err != nil {
		return err
	}
	defer s.Close()

	return s.MoveCategory(cmd.Src, cmd.Dst)
}

// RmCmd deletes a subtree.
type RmCmd struct {
	Path string `arg:"" help:"Path of the subtree to delete."`
}

func (cmd *RmCmd) Run(g *Globals) error {
	s, err := openStore(g)
	if err != nil {
		return err
	}
	defer s.Close()

	return s.DeleteCategory(cmd.Path)
}
