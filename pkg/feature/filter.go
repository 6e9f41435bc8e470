package feature

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"
)

// Filter returns the flags matching every constraint in sel, preserving the
// input order. The result shares element pointers with the input but is
// always a freshly allocated slice; the input is never mutated.
func Filter(flags []*Flag, sel Selection) []*Flag {
	// cases.Caser is stateful, so each call gets its own folder.
	fold := cases.Fold()
	search := fold.String(sel.Search)

	result := make([]*Flag, 0, len(flags))
	for _, f := range flags {
		if f == nil {
			continue
		}
		if !matchesSearch(fold, f, search) {
			continue
		}
		if !matchesStatus(f, sel.Status) {
			continue
		}
		if sel.Category != "" && f.Category != sel.Category {
			continue
		}
		result = append(result, f)
	}
	return result
}

func matchesSearch(fold cases.Caser, f *Flag, foldedSearch string) bool {
	if foldedSearch == "" {
		return true
	}
	return strings.Contains(fold.String(f.Name), foldedSearch) ||
		strings.Contains(fold.String(f.Description), foldedSearch)
}

func matchesStatus(f *Flag, status Status) bool {
	switch status {
	case StatusEnabled:
		return f.Enabled
	case StatusDisabled:
		return !f.Enabled
	default:
		return true
	}
}

// GroupByCategory groups flags by their category label. Flags with a blank
// category fall under the reserved Uncategorized label. Within each group
// the input order is preserved.
func GroupByCategory(flags []*Flag) map[string][]*Flag {
	groups := make(map[string][]*Flag)
	for _, f := range flags {
		if f == nil {
			continue
		}
		label := f.Category
		if strings.TrimSpace(label) == "" {
			label = Uncategorized
		}
		groups[label] = append(groups[label], f)
	}
	return groups
}

// Categories returns the distinct non-blank category labels present in the
// collection, sorted in ascending lexicographic order.
func Categories(flags []*Flag) []string {
	seen := make(map[string]struct{}, len(flags))
	labels := make([]string, 0, len(flags))
	for _, f := range flags {
		if f == nil || strings.TrimSpace(f.Category) == "" {
			continue
		}
		if _, ok := seen[f.Category]; ok {
			continue
		}
		seen[f.Category] = struct{}{}
		labels = append(labels, f.Category)
	}
	slices.Sort(labels)
	return labels
}

// CountByStatus counts enabled and disabled flags over the whole collection.
func CountByStatus(flags []*Flag) StatusCounts {
	enabled := 0
	for _, f := range flags {
		if f != nil && f.Enabled {
			enabled++
		}
	}
	return StatusCounts{
		Enabled:  enabled,
		Disabled: len(flags) - enabled,
		Total:    len(flags),
	}
}
