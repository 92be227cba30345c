package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) focusSearch() tea.Cmd {
	m.searching = true
	m.search.CursorEnd()
	return m.search.Focus()
}

func (m *Model) blurSearch() {
	m.searching = false
	m.search.Blur()
}

// handleSearchKey feeds keys to the search input and re-derives the view
// after every edit. Enter keeps the query; esc discards it.
func (m *Model) handleSearchKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c":
		return tea.Quit
	case "enter":
		m.blurSearch()
		return nil
	case "esc":
		m.search.SetValue("")
		m.setQuery("")
		m.blurSearch()
		return nil
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.setQuery(m.search.Value())
	return cmd
}
