package store

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/lkael/arbor/internal/tree"
)

// LoadRecords returns all category rows sorted ascending by path. This is
// the builder's input contract: byte lexicographic order, shorter prefixes
// first, which SQLite's default BINARY collation provides.
func (s *Store) LoadRecords() ([]tree.Record, error) {
	rows, err := s.db.Query(`SELECT name, path FROM categories ORDER BY path ASC`)
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}
	defer rows.Close()

	var records []tree.Record
	for rows.Next() {
		var r tree.Record
		if err := rows.Scan(&r.Name, &r.Path); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// LoadTree loads all rows and rebuilds the tree. An empty store yields a nil
// root.
func (s *Store) LoadTree() (*tree.Node, error) {
	records, err := s.LoadRecords()
	if err != nil {
		return nil, err
	}
	root, err := tree.Build(records)
	if err != nil {
		return nil, fmt.Errorf("rebuild tree: %w", err)
	}
	return root, nil
}

// ReplaceAll replaces the stored rows with a snapshot of the given tree, in
// one transaction. The tree is flattened in pre-order, so the new rows keep
// the sorted-rebuild invariant. A nil root empties the store.
func (s *Store) ReplaceAll(root *tree.Node) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM categories`); err != nil {
		return fmt.Errorf("clear categories: %w", err)
	}

	for _, r := range tree.Flatten(root) {
		_, err := tx.Exec(
			`INSERT INTO categories (id, name, path) VALUES (?, ?, ?)`,
			uuid.NewString(), r.Name, r.Path,
		)
		if err != nil {
			return fmt.Errorf("insert %q: %w", r.Path, err)
		}
	}

	return tx.Commit()
}
