// Package suggest derives shopping suggestions from the active list and the
// purchase history. Both derivations are pure: they take snapshots and never
// touch the store.
package suggest

import (
	"sort"
	"strings"
	"time"

	"github.com/mstead/pantry/internal/model"
)

// An item bought at least this long ago, and not on the list, is probably
// running low.
const missingAfter = 7 * 24 * time.Hour

// Missing returns the names of previously purchased items that are absent
// from the active list and were last purchased seven or more days before now.
// Names are deduplicated and sorted.
func Missing(items []model.GroceryItem, history []model.PurchaseRecord, now time.Time) []string {
	current := make(map[string]struct{}, len(items))
	for _, item := range items {
		current[strings.ToLower(item.Name)] = struct{}{}
	}

	seen := make(map[string]struct{}, len(history))
	suggestions := []string{}
	for _, rec := range history {
		key := strings.ToLower(rec.Name)
		if _, onList := current[key]; onList {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		if now.Sub(rec.LastPurchasedAt) < missingAfter {
			continue
		}
		seen[key] = struct{}{}
		suggestions = append(suggestions, rec.Name)
	}

	sort.Strings(suggestions)
	return suggestions
}

// healthierAlternatives maps an item name (lower case) to a suggested swap.
var healthierAlternatives = map[string]string{
	"white bread":  "brown bread",
	"soda":         "water",
	"chips":        "nuts",
	"white rice":   "brown rice",
	"regular milk": "almond milk",
	"butter":       "olive oil",
	"ice cream":    "greek yogurt",
	"cookies":      "whole grain oats",
	"candy":        "fresh fruit",
}

// Healthier returns the substitution for every item on the active list that
// appears in the alternatives table, in list order, with identical
// suggestions deduplicated.
func Healthier(items []model.GroceryItem) []string {
	seen := make(map[string]struct{})
	suggestions := []string{}
	for _, item := range items {
		alt, ok := healthierAlternatives[strings.ToLower(strings.TrimSpace(item.Name))]
		if !ok {
			continue
		}
		if _, dup := seen[alt]; dup {
			continue
		}
		seen[alt] = struct{}{}
		suggestions = append(suggestions, alt)
	}
	return suggestions
}
