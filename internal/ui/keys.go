package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up         key.Binding
	Down       key.Binding
	PrevPage   key.Binding
	NextPage   key.Binding
	Picker     key.Binding
	PrevType   key.Binding
	NextType   key.Binding
	SortName   key.Binding
	SortHeight key.Binding
	SortWeight key.Binding
	SortAbil   key.Binding
	SortExp    key.Binding
	Search     key.Binding
	Clear      key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		PrevPage:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev page")),
		NextPage:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next page")),
		Picker:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "type")),
		PrevType:   key.NewBinding(key.WithKeys("["), key.WithHelp("[", "prev type")),
		NextType:   key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next type")),
		SortName:   key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "sort name")),
		SortHeight: key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "sort height")),
		SortWeight: key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "sort weight")),
		SortAbil:   key.NewBinding(key.WithKeys("4"), key.WithHelp("4", "sort abilities")),
		SortExp:    key.NewBinding(key.WithKeys("5"), key.WithHelp("5", "sort experience")),
		Search:     key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Clear:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear search")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PrevPage, k.NextPage, k.Picker, k.SortName, k.Search, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PrevPage, k.NextPage},
		{k.Picker, k.PrevType, k.NextType, k.Search, k.Clear},
		{k.SortName, k.SortHeight, k.SortWeight, k.SortAbil, k.SortExp},
		{k.Help, k.Quit},
	}
}
