package ui

import (
	"github.com/atomicstack/pokedex-table/internal/logging/events"
	uistate "github.com/atomicstack/pokedex-table/internal/ui/state"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if m.picker != nil {
		return m.handlePickerKey(keyMsg)
	}
	if m.searching {
		return m.handleSearchKey(keyMsg)
	}
	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return tea.Quit
	case key.Matches(keyMsg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return nil
	}
	if !m.ready() {
		return nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Up):
		m.moveRowCursor(-1)
	case key.Matches(keyMsg, m.keys.Down):
		m.moveRowCursor(1)
	case key.Matches(keyMsg, m.keys.PrevPage):
		m.prevPage()
	case key.Matches(keyMsg, m.keys.NextPage):
		m.nextPage()
	case key.Matches(keyMsg, m.keys.Picker):
		m.openCategoryPicker()
	case key.Matches(keyMsg, m.keys.PrevType):
		m.selectFilter(uistate.CycleCategory(m.view.Filter, -1))
	case key.Matches(keyMsg, m.keys.NextType):
		m.selectFilter(uistate.CycleCategory(m.view.Filter, 1))
	case key.Matches(keyMsg, m.keys.SortName):
		m.sortBy(uistate.ColumnName)
	case key.Matches(keyMsg, m.keys.SortHeight):
		m.sortBy(uistate.ColumnHeight)
	case key.Matches(keyMsg, m.keys.SortWeight):
		m.sortBy(uistate.ColumnWeight)
	case key.Matches(keyMsg, m.keys.SortAbil):
		m.sortBy(uistate.ColumnAbilities)
	case key.Matches(keyMsg, m.keys.SortExp):
		m.sortBy(uistate.ColumnExperience)
	case key.Matches(keyMsg, m.keys.Search):
		return m.focusSearch()
	case key.Matches(keyMsg, m.keys.Clear):
		if m.view.Query != "" {
			m.search.SetValue("")
			m.setQuery("")
		}
	}
	return nil
}

// applyView replaces the view state and resets the row cursor.
func (m *Model) applyView(v uistate.View) {
	m.view = v
	m.rowCursor = 0
}

func (m *Model) selectFilter(category string) {
	m.applyView(m.view.SelectFilter(category))
	events.View.Filter(category)
}

func (m *Model) setQuery(query string) {
	if query == m.view.Query {
		return
	}
	m.applyView(m.view.SetQuery(query))
	events.View.Query(query)
}

func (m *Model) sortBy(col uistate.Column) {
	m.applyView(m.view.SortBy(col))
	events.View.Sort(string(col), m.view.Ascending)
}

func (m *Model) nextPage() {
	page := m.currentPage()
	before := m.view.Page
	m.applyView(m.view.NextPage(page.MaxPage))
	if m.view.Page != before {
		events.View.Page(m.view.Page, page.MaxPage)
	}
}

func (m *Model) prevPage() {
	page := m.currentPage()
	before := m.view.Page
	m.applyView(m.view.PrevPage(page.MaxPage))
	if m.view.Page != before {
		events.View.Page(m.view.Page, page.MaxPage)
	}
}

// moveRowCursor moves the row selection within the current page, wrapping at
// either end.
func (m *Model) moveRowCursor(delta int) {
	n := len(m.currentPage().Rows)
	if n == 0 {
		m.rowCursor = 0
		return
	}
	m.rowCursor = ((m.rowCursor+delta)%n + n) % n
	events.View.Cursor(m.rowCursor)
}
