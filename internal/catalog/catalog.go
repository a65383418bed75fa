// Package catalog holds the static category reference data: a mapping of
// category name to the canonical item names shown in the category browser.
// It is loaded once at startup and never mutated.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
)

//go:embed categories.json
var defaultCategories []byte

type Catalog struct {
	categories map[string][]string
}

// Load builds a catalog from the JSON file at path, or from the embedded
// default data when path is empty.
func Load(path string) (*Catalog, error) {
	data := defaultCategories
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read categories: %w", err)
		}
	}

	var categories map[string][]string
	if err := json.Unmarshal(data, &categories); err != nil {
		return nil, fmt.Errorf("parse categories: %w", err)
	}
	return &Catalog{categories: categories}, nil
}

// List returns every category and its item names. The returned map is a copy;
// callers cannot mutate the catalog through it.
func (c *Catalog) List() map[string][]string {
	out := make(map[string][]string, len(c.categories))
	for name, items := range c.categories {
		copied := make([]string, len(items))
		copy(copied, items)
		out[name] = copied
	}
	return out
}

// Items returns the item names in one category. Unknown categories yield an
// empty slice.
func (c *Catalog) Items(category string) []string {
	items := make([]string, len(c.categories[category]))
	copy(items, c.categories[category])
	return items
}

// Categorize returns the category whose item list contains the given name
// (case-insensitive), or "" when no category knows the item. Categories are
// scanned in sorted order so the answer is deterministic.
func (c *Catalog) Categorize(itemName string) string {
	name := strings.ToLower(strings.TrimSpace(itemName))
	if name == "" {
		return ""
	}

	categories := make([]string, 0, len(c.categories))
	for cat := range c.categories {
		categories = append(categories, cat)
	}
	sort.Strings(categories)

	for _, cat := range categories {
		for _, item := range c.categories[cat] {
			if strings.ToLower(item) == name {
				return cat
			}
		}
	}
	return ""
}
