package ui

import (
	"github.com/atomicstack/pokedex-table/internal/logging/events"
	uistate "github.com/atomicstack/pokedex-table/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
)

const pickerTitle = "Filter by type"

func (m *Model) openCategoryPicker() {
	m.picker = uistate.NewPicker(categoryPicker, pickerTitle, uistate.CategoryOptions(), m.view.Filter)
	m.picker.EnsureCursorVisible(m.pickerMaxVisible())
	events.Picker.Open(m.picker.ID, m.picker.Cursor)
}

func (m *Model) handlePickerKey(msg tea.KeyMsg) tea.Cmd {
	p := m.picker
	maxVisible := m.pickerMaxVisible()
	switch msg.String() {
	case "ctrl+c":
		return tea.Quit
	case "esc", "q":
		m.picker = nil
		events.Picker.Cancel(p.ID)
	case "enter":
		m.picker = nil
		if opt, ok := p.Current(); ok {
			events.Picker.Select(p.ID, opt.Value)
			m.selectFilter(opt.Value)
		}
	case "up", "k":
		p.MoveCursorUp()
	case "down", "j":
		p.MoveCursorDown()
	case "home":
		p.MoveCursorHome()
	case "end":
		p.MoveCursorEnd()
	case "pgup":
		p.MoveCursorPageUp(maxVisible)
	case "pgdown":
		p.MoveCursorPageDown(maxVisible)
	}
	if m.picker != nil {
		m.picker.EnsureCursorVisible(maxVisible)
	}
	return nil
}

// pickerMaxVisible returns how many picker entries fit on screen; -1 means
// no limit is known.
func (m *Model) pickerMaxVisible() int {
	if m.height <= 0 {
		return -1
	}
	remain := m.height - 3 // title, blank, hint
	if remain < 1 {
		return 1
	}
	return remain
}
