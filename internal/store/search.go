package store

import (
	"strings"

	"github.com/mesh-intelligence/worktop/pkg/types"
)

// FilterBySearchTerm returns the items whose searchable fields contain term
// as a case-insensitive substring. A record matches when ANY field matches.
// An empty term returns the input unchanged.
func FilterBySearchTerm[T any](items []T, term string, fields func(T) []string) []T {
	if term == "" {
		return items
	}
	needle := strings.ToLower(term)

	out := []T{}
	for _, item := range items {
		for _, field := range fields(item) {
			if strings.Contains(strings.ToLower(field), needle) {
				out = append(out, item)
				break
			}
		}
	}
	return out
}

// Searchable field accessors for the entity types the UI filters.

// RequestSearchFields returns the fields the global search matches against.
func RequestSearchFields(r types.Request) []string {
	return []string{r.Description, r.Requester}
}

// ItemSearchFields returns the fields the global search matches against.
func ItemSearchFields(i types.InProgressItem) []string {
	return []string{i.TaskDescription, i.Requester}
}

// ReportSearchFields returns the fields the reports search matches against.
func ReportSearchFields(r types.Report) []string {
	return []string{r.Title, r.Description}
}

// DocumentSearchFields returns the fields the reports search matches against.
func DocumentSearchFields(d types.Document) []string {
	return []string{d.Title, d.Description}
}

// ProjectSearchFields returns the fields the global search matches against.
func ProjectSearchFields(p types.Project) []string {
	return []string{p.Name}
}
