package filter

import (
	"strings"

	"github.com/hammamikhairi/recipebrowser/internal/domain"
)

// ComputeVisible returns the records passing both the search and the tag
// predicates, in input order. The result is never nil.
//
// Search: the trimmed, lower-cased query must be a substring of the
// lower-cased name or of any set tag value. An empty query matches
// everything.
//
// Tags: every category with at least one selection must have a set tag
// equal to one of the selected values. Values within a category are OR-ed,
// categories are AND-ed, and empty categories are skipped.
func ComputeVisible(records []domain.RecipeRecord, state domain.FilterState) []domain.RecipeRecord {
	query := normalizeQuery(state.Query())

	out := make([]domain.RecipeRecord, 0, len(records))
	for _, r := range records {
		if matchesSearch(r, query) && matchesTags(r, state) {
			out = append(out, r)
		}
	}
	return out
}

func normalizeQuery(q string) string {
	return strings.TrimSpace(strings.ToLower(q))
}

func matchesSearch(r domain.RecipeRecord, query string) bool {
	if query == "" {
		return true
	}
	if strings.Contains(strings.ToLower(r.Name), query) {
		return true
	}
	for _, c := range domain.Categories() {
		v, ok := r.Tags.Get(c)
		if ok && strings.Contains(strings.ToLower(string(v)), query) {
			return true
		}
	}
	return false
}

func matchesTags(r domain.RecipeRecord, state domain.FilterState) bool {
	for _, c := range domain.Categories() {
		if state.Count(c) == 0 {
			continue
		}
		v, ok := r.Tags.Get(c)
		if !ok || !state.Has(c, v) {
			return false
		}
	}
	return true
}
