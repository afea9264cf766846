package store

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/lkael/arbor/internal/mpath"
	"github.com/lkael/arbor/internal/tree"
)

// Init seeds the store with a root category. Fails if a root already exists.
func (s *Store) Init(rootName string) error {
	var existing string
	err := s.db.QueryRow(`SELECT name FROM categories WHERE path = ?`, mpath.Root()).Scan(&existing)
	if err == nil {
		return fmt.Errorf("store already initialized with root %q", existing)
	}
	if err != sql.ErrNoRows {
		return fmt.Errorf("check root: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT INTO categories (id, name, path) VALUES (?, ?, ?)`,
		uuid.NewString(), rootName, mpath.Root(),
	)
	if err != nil {
		return fmt.Errorf("insert root: %w", err)
	}
	slog.Info("store initialized", "root", rootName)
	return nil
}

// AddCategory inserts a new child under the category at parentPath, encoding
// its path from the next free sibling ordinal. Surfaces
// mpath.ErrCapacityExceeded when the parent is full and
// mpath.ErrDuplicatePath when the encoded path is already taken.
func (s *Store) AddCategory(parentPath, name string) (string, error) {
	var parentName string
	err := s.db.QueryRow(`SELECT name FROM categories WHERE path = ?`, parentPath).Scan(&parentName)
	if err == sql.ErrNoRows {
		return "", fmt.Errorf("no category at %q", parentPath)
	}
	if err != nil {
		return "", fmt.Errorf("find parent: %w", err)
	}

	count, err := s.childCount(parentPath)
	if err != nil {
		return "", err
	}

	path, err := mpath.Encode(parentPath, count+1)
	if err != nil {
		return "", err
	}

	var taken int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM categories WHERE path = ?`, path).Scan(&taken); err != nil {
		return "", fmt.Errorf("check path: %w", err)
	}
	if taken > 0 {
		return "", fmt.Errorf("%q: %w", path, mpath.ErrDuplicatePath)
	}

	_, err = s.db.Exec(
		`INSERT INTO categories (id, name, path) VALUES (?, ?, ?)`,
		uuid.NewString(), name, path,
	)
	if err != nil {
		return "", fmt.Errorf("insert category: %w", err)
	}
	slog.Info("category added", "name", name, "path", path, "parent", parentName)
	return path, nil
}

// MoveCategory re-parents the subtree at srcPath under the category at
// dstParentPath. This is the expensive edit: the moved subtree and the
// source's remaining siblings are re-encoded, and the whole snapshot is
// rewritten.
func (s *Store) MoveCategory(srcPath, dstParentPath string) error {
	if srcPath == dstParentPath || mpath.IsAncestor(srcPath, dstParentPath) {
		return fmt.Errorf("cannot move %q under its own subtree", srcPath)
	}

	root, err := s.LoadTree()
	if err != nil {
		return err
	}
	if root == nil {
		return fmt.Errorf("store is empty")
	}

	sub, err := tree.Prune(root, srcPath)
	if err != nil {
		return err
	}
	dst := root.Find(dstParentPath)
	if dst == nil {
		return fmt.Errorf("no category at %q", dstParentPath)
	}
	if err := tree.Graft(dst, sub); err != nil {
		return err
	}
	if err := tree.Reencode(root); err != nil {
		return err
	}

	if err := s.ReplaceAll(root); err != nil {
		return err
	}
	slog.Info("category moved", "name", sub.Name, "from", srcPath, "to", sub.Path)
	return nil
}

// DeleteCategory removes the subtree at path and compacts the remaining
// sibling paths so ordinals stay contiguous.
func (s *Store) DeleteCategory(path string) error {
	root, err := s.LoadTree()
	if err != nil {
		return err
	}
	if root == nil {
		return fmt.Errorf("store is empty")
	}

	if root.Path == path {
		if err := s.ReplaceAll(nil); err != nil {
			return err
		}
		slog.Info("root deleted", "name", root.Name)
		return nil
	}

	sub, err := tree.Prune(root, path)
	if err != nil {
		return err
	}
	if err := tree.Reencode(root); err != nil {
		return err
	}

	if err := s.ReplaceAll(root); err != nil {
		return err
	}
	slog.Info("category deleted", "name", sub.Name, "path", path, "removed", sub.Size())
	return nil
}

func (s *Store) childCount(parentPath string) (int, error) {
	var count int
	err := s.db.QueryRow(
		`SELECT COUNT(*) FROM categories WHERE path LIKE ? AND length(path) = ?`,
		parentPath+"_", len(parentPath)+1,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count children: %w", err)
	}
	return count, nil
}
