package state

import "strings"

// View is the complete set of user selections that decide which rows are
// displayed. It is a value: every transition returns a new View.
type View struct {
	Filter     string
	Query      string
	SortColumn Column
	Ascending  bool
	Page       int
}

// NewView returns the initial selection: no filter, listing order, page 1.
func NewView() View {
	return View{Page: 1}
}

// SelectFilter narrows to a category and returns to the first page.
func (v View) SelectFilter(category string) View {
	v.Filter = category
	v.Page = 1
	return v
}

// SetQuery changes the name search and returns to the first page.
func (v View) SetQuery(query string) View {
	v.Query = query
	v.Page = 1
	return v
}

// SortBy selects a column and flips the direction, regardless of whether the
// column changed.
func (v View) SortBy(col Column) View {
	v.SortColumn = col
	v.Ascending = !v.Ascending
	return v
}

// NextPage advances one page, clamped to [1, maxPage].
func (v View) NextPage(maxPage int) View {
	v.Page = ClampPage(v.Page+1, maxPage)
	return v
}

// PrevPage goes back one page, clamped to [1, maxPage].
func (v View) PrevPage(maxPage int) View {
	v.Page = ClampPage(v.Page-1, maxPage)
	return v
}

// Filtering reports whether a category or name search is active.
func (v View) Filtering() bool {
	return v.Filter != "" || strings.TrimSpace(v.Query) != ""
}
