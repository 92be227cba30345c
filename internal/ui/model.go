package ui

import (
	"reflect"

	"github.com/atomicstack/pokedex-table/internal/data/dispatcher"
	"github.com/atomicstack/pokedex-table/internal/state"
	"github.com/atomicstack/pokedex-table/internal/stats"
	"github.com/atomicstack/pokedex-table/internal/theme"
	uistate "github.com/atomicstack/pokedex-table/internal/ui/state"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	appTitle        = "Pokédex"
	categoryPicker  = "category"
	searchPrompt    = "/ "
	searchHint      = "search by name"
	loadingText     = "loading..."
	loadFailureText = "failed to load"
	noMatchText     = "No pokemon match that type - try another one!"
	noQueryText     = "No pokemon match that name - try another search!"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Model implements the Bubble Tea model for the catalog table.
type Model struct {
	view      uistate.View
	summary   stats.Summary
	rowCursor int

	errMsg  string
	pending int

	picker    *uistate.Picker
	search    textinput.Model
	searching bool
	spinner   spinner.Model
	keys      keyMap
	help      help.Model

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool

	handlers map[reflect.Type]msgHandler

	loader     Loader
	records    state.RecordStore
	dispatcher *dispatcher.Dispatcher
}

// NewModel initialises the UI in the loading state. The loader is started by
// Init; a nil loader leaves the model waiting for events sent by the caller.
func NewModel(loader Loader, width, height int, showFooter bool) *Model {
	records := state.NewRecordStore()
	m := &Model{
		view:       uistate.NewView(),
		keys:       newKeyMap(),
		help:       help.New(),
		showFooter: showFooter,
		loader:     loader,
		records:    records,
		dispatcher: dispatcher.New(records),
	}
	if width > 0 {
		m.width = width
		m.fixedWidth = true
		m.help.Width = width
	}
	if height > 0 {
		m.height = height
		m.fixedHeight = true
	}
	m.spinner = spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(*styles.Spinner))
	m.search = newSearchInput()
	m.registerHandlers()
	return m
}

func newSearchInput() textinput.Model {
	ti := textinput.New()
	ti.Prompt = searchPrompt
	ti.Placeholder = searchHint
	ti.PromptStyle = *styles.SearchPrompt
	ti.TextStyle = *styles.SearchText
	ti.PlaceholderStyle = *styles.Muted
	ti.CharLimit = 32
	ti.Cursor.SetMode(cursor.CursorStatic)
	return ti
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{}
	if m.loader != nil {
		cmds = append(cmds, waitForBackendEvent(m.loader))
	}
	if m.loading() {
		cmds = append(cmds, m.spinner.Tick)
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 2)
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(spinner.TickMsg{}):   m.handleSpinnerTickMsg,
		reflect.TypeOf(backendEventMsg{}):   m.handleBackendEventMsg,
		reflect.TypeOf(backendDoneMsg{}):    m.handleBackendDoneMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (m *Model) handleSpinnerTickMsg(msg tea.Msg) tea.Cmd {
	if !m.loading() {
		return nil
	}
	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return cmd
}

// currentPage derives the rows for the active view from the stored records.
func (m *Model) currentPage() uistate.Page {
	return uistate.Derive(m.records.Records(), m.view)
}

// loading reports whether the model is still waiting for records.
func (m *Model) loading() bool {
	return !m.records.Loaded() && m.errMsg == ""
}

// ready reports whether records are available for interaction.
func (m *Model) ready() bool {
	return m.records.Loaded() && m.errMsg == ""
}

// View state accessors used by tests and the app layer.

func (m *Model) ViewState() uistate.View {
	return m.view
}

func (m *Model) Summary() stats.Summary {
	return m.summary
}

func (m *Model) Loading() bool {
	return m.loading()
}

func (m *Model) Err() string {
	return m.errMsg
}
