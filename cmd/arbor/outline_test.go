package main

import (
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/lkael/arbor/internal/tree"
)

const recipesYAML = `
name: recipes
children:
  - name: dessert
    children:
      - name: jelly
      - name: pudding
  - name: main
  - name: starter
`

func TestOutlineToTree_EncodesPaths(t *testing.T) {
	var o outline
	if err := yaml.Unmarshal([]byte(recipesYAML), &o); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	root, err := outlineToTree(o)
	if err != nil {
		t.Fatalf("outlineToTree: %v", err)
	}

	want := []tree.Record{
		{Name: "recipes", Path: "A"},
		{Name: "dessert", Path: "AA"},
		{Name: "jelly", Path: "AAA"},
		{Name: "pudding", Path: "AAB"},
		{Name: "main", Path: "AB"},
		{Name: "starter", Path: "AC"},
	}
	got := tree.Flatten(root)
	if len(got) != len(want) {
		t.Fatalf("flattened %d records, want %d", len(got), len(want))
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("record %d = %+v, want %+v", i, got[i], want[i])
		}
	}

	// The encoded paths must rebuild to the same shape.
	if _, err := tree.Build(got); err != nil {
		t.Fatalf("rebuild: %v", err)
	}
}

func TestTreeToOutline_RoundTrip(t *testing.T) {
	var o outline
	if err := yaml.Unmarshal([]byte(recipesYAML), &o); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	root, err := outlineToTree(o)
	if err != nil {
		t.Fatalf("outlineToTree: %v", err)
	}

	back := treeToOutline(root)
	if back.Name != "recipes" || len(back.Children) != 3 {
		t.Fatalf("round-trip outline = %+v", back)
	}
	if back.Children[0].Children[1].Name != "pudding" {
		t.Fatalf("round-trip lost pudding: %+v", back.Children[0])
	}
}

func TestTreeJSON_EmptyTree(t *testing.T) {
	payload, err := treeJSON(nil)
	if err != nil {
		t.Fatalf("treeJSON(nil): %v", err)
	}
	if string(payload) != "null" {
		t.Fatalf("treeJSON(nil) = %q, want null", payload)
	}
}
