package store

import (
	"fmt"
	"sort"
	"strings"

	"hypercart/internal/model"
)

// SortCategories sorts in place by position, then CreatedAt, then ID. This is the
// order every listing and the TUI render.
func SortCategories(cs []model.Category) {
	sort.SliceStable(cs, func(i, j int) bool {
		return compareCategories(cs[i], cs[j]) < 0
	})
}

func compareCategories(a, b model.Category) int {
	if a.Position != b.Position {
		if a.Position < b.Position {
			return -1
		}
		return 1
	}
	if a.CreatedAt.Before(b.CreatedAt) {
		return -1
	}
	if a.CreatedAt.After(b.CreatedAt) {
		return 1
	}
	return strings.Compare(a.ID, b.ID)
}

// PlanCategoryOrder returns the position updates that turn current into orderedIDs.
// Only categories whose position actually changes are included.
//
// orderedIDs must name every category in current exactly once.
func PlanCategoryOrder(current []model.Category, orderedIDs []string) (map[string]int, error) {
	if len(orderedIDs) != len(current) {
		return nil, fmt.Errorf("order names %d categories, store has %d", len(orderedIDs), len(current))
	}
	byID := make(map[string]model.Category, len(current))
	for _, c := range current {
		byID[c.ID] = c
	}
	seen := make(map[string]bool, len(orderedIDs))
	out := map[string]int{}
	for pos, raw := range orderedIDs {
		id := strings.TrimSpace(raw)
		c, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("category %s: %w", id, ErrNotFound)
		}
		if seen[id] {
			return nil, fmt.Errorf("duplicate category in order: %s", id)
		}
		seen[id] = true
		if c.Position != pos {
			out[id] = pos
		}
	}
	return out, nil
}

// MoveID returns a copy of ids with id moved to insertAt (clamped to the list bounds).
func MoveID(ids []string, id string, insertAt int) ([]string, error) {
	from := -1
	for i, x := range ids {
		if x == id {
			from = i
			break
		}
	}
	if from < 0 {
		return nil, fmt.Errorf("category %s: %w", id, ErrNotFound)
	}
	rest := make([]string, 0, len(ids))
	rest = append(rest, ids[:from]...)
	rest = append(rest, ids[from+1:]...)
	if insertAt < 0 {
		insertAt = 0
	}
	if insertAt > len(rest) {
		insertAt = len(rest)
	}
	out := make([]string, 0, len(ids))
	out = append(out, rest[:insertAt]...)
	out = append(out, id)
	out = append(out, rest[insertAt:]...)
	return out, nil
}
