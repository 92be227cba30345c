package ui

import (
	"errors"
	"fmt"

	"github.com/atomicstack/pokedex-table/internal/backend"
	"github.com/atomicstack/pokedex-table/internal/catalog"
	"github.com/atomicstack/pokedex-table/internal/logging"
	"github.com/atomicstack/pokedex-table/internal/logging/events"
	"github.com/atomicstack/pokedex-table/internal/stats"
	tea "github.com/charmbracelet/bubbletea"
)

// Loader is the part of backend.Loader the UI depends on.
type Loader interface {
	Start()
	Events() <-chan backend.Event
}

func waitForBackendEvent(l Loader) tea.Cmd {
	return func() tea.Msg {
		l.Start()
		evt, ok := <-l.Events()
		if !ok {
			return backendDoneMsg{}
		}
		return backendEventMsg{event: evt}
	}
}

type backendEventMsg struct {
	event backend.Event
}

type backendDoneMsg struct{}

func (m *Model) handleBackendEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(backendEventMsg)
	if !ok {
		return nil
	}
	m.applyBackendEvent(eventMsg.event)
	if m.loader != nil {
		return waitForBackendEvent(m.loader)
	}
	return nil
}

func (m *Model) handleBackendDoneMsg(msg tea.Msg) tea.Cmd {
	m.loader = nil
	if m.loading() {
		// The channel closed without delivering records.
		m.fail(errors.New("loader stopped before records arrived"))
	}
	return nil
}

func (m *Model) applyBackendEvent(evt backend.Event) {
	if evt.Err != nil {
		m.fail(evt.Err)
		return
	}
	res := m.dispatcher.Handle(evt)
	if res.ListingUpdated {
		m.pending = len(m.records.Summaries())
	}
	if !res.RecordsUpdated {
		return
	}
	records := m.records.Records()
	m.summary = stats.Summarize(records)
	m.errMsg = ""
	m.rowCursor = 0
	events.Action.Loaded(len(records))
}

func (m *Model) fail(err error) {
	m.errMsg = loadErrorText(err)
	logging.Error(err)
	events.Action.Error(err)
}

// loadingStatusText reports the fetch stage: the listing size once it is
// known, plain loading text before that.
func (m *Model) loadingStatusText() string {
	if m.pending > 0 {
		return fmt.Sprintf("%s resolving %d entries", loadingText, m.pending)
	}
	return loadingText
}

// loadErrorText maps a fetch failure to the text shown in place of the table.
func loadErrorText(err error) string {
	var detailErr *catalog.DetailError
	if errors.As(err, &detailErr) && detailErr.Name != "" {
		return fmt.Sprintf("%s (%s)", loadFailureText, detailErr.Name)
	}
	return loadFailureText
}
