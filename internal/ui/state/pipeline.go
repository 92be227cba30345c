package state

import (
	"cmp"
	"slices"
	"strings"

	"github.com/atomicstack/pokedex-table/internal/catalog"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Page is the derived, render-ready slice of records for a View.
type Page struct {
	Rows    []catalog.Record
	Number  int
	MaxPage int
	Total   int
	Matched int
	NoMatch bool
}

// Derive runs filter, sort and paginate over records for the given view.
func Derive(records []catalog.Record, v View) Page {
	filtered := FilterByName(FilterByType(records, v.Filter), v.Query)
	sorted := Sort(filtered, v.SortColumn, v.Ascending)
	return Page{
		Rows:    Paginate(sorted, PageSize, v.Page),
		Number:  v.Page,
		MaxPage: MaxPage(len(sorted), PageSize),
		Total:   len(records),
		Matched: len(sorted),
		NoMatch: v.Filtering() && len(sorted) == 0,
	}
}

// FilterByType keeps records having a type named category. An empty category
// keeps everything in the original order.
func FilterByType(records []catalog.Record, category string) []catalog.Record {
	if category == "" {
		return CloneRecords(records)
	}
	filtered := make([]catalog.Record, 0, len(records))
	for _, rec := range records {
		if rec.HasType(category) {
			filtered = append(filtered, rec)
		}
	}
	return filtered
}

// FilterByName keeps records whose name fuzzily matches query, preserving the
// input order.
func FilterByName(records []catalog.Record, query string) []catalog.Record {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return CloneRecords(records)
	}
	names := make([]string, len(records))
	for i, rec := range records {
		names[i] = rec.Name
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, names)
	if len(ranks) == 0 {
		return []catalog.Record{}
	}
	matches := make(map[int]struct{}, len(ranks))
	for _, rank := range ranks {
		matches[rank.OriginalIndex] = struct{}{}
	}
	filtered := make([]catalog.Record, 0, len(matches))
	for idx, rec := range records {
		if _, ok := matches[idx]; ok {
			filtered = append(filtered, rec)
		}
	}
	return filtered
}

// Sort orders a copy of records by col. Ties fall back to the name and then
// to the input order, so the result is deterministic. ColumnNone keeps the
// input order.
func Sort(records []catalog.Record, col Column, ascending bool) []catalog.Record {
	sorted := CloneRecords(records)
	if col == ColumnNone {
		return sorted
	}
	slices.SortStableFunc(sorted, func(a, b catalog.Record) int {
		c := compareBy(col, a, b)
		if !ascending {
			c = -c
		}
		if c == 0 && col != ColumnName {
			c = strings.Compare(a.Name, b.Name)
		}
		return c
	})
	return sorted
}

func compareBy(col Column, a, b catalog.Record) int {
	switch col {
	case ColumnName:
		return strings.Compare(a.Name, b.Name)
	case ColumnHeight:
		return cmp.Compare(a.Height, b.Height)
	case ColumnWeight:
		return cmp.Compare(a.Weight, b.Weight)
	case ColumnAbilities:
		return strings.Compare(a.AbilityList(), b.AbilityList())
	case ColumnExperience:
		return cmp.Compare(a.BaseExperience, b.BaseExperience)
	}
	return 0
}

// Paginate returns the 1-based page of seq. Pages past the end are empty.
func Paginate[T any](seq []T, size, page int) []T {
	if size <= 0 || page < 1 {
		return nil
	}
	start := (page - 1) * size
	if start >= len(seq) {
		return nil
	}
	end := start + size
	if end > len(seq) {
		end = len(seq)
	}
	return seq[start:end]
}

// MaxPage returns ceil(count / size).
func MaxPage(count, size int) int {
	if size <= 0 || count <= 0 {
		return 0
	}
	return (count + size - 1) / size
}

// ClampPage restricts page to [1, maxPage]; a maxPage below 1 yields 1.
func ClampPage(page, maxPage int) int {
	if page > maxPage {
		page = maxPage
	}
	if page < 1 {
		page = 1
	}
	return page
}

// CloneRecords produces a shallow copy of records.
func CloneRecords(records []catalog.Record) []catalog.Record {
	dup := make([]catalog.Record, len(records))
	copy(dup, records)
	return dup
}
