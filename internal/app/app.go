package app

import (
	"errors"
	"time"

	"github.com/atomicstack/pokedex-table/internal/backend"
	"github.com/atomicstack/pokedex-table/internal/catalog"
	"github.com/atomicstack/pokedex-table/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	CatalogURL      string
	Limit           int
	Concurrency     int
	RequestInterval time.Duration
	Timeout         time.Duration
	Width           int
	Height          int
	ShowFooter      bool
}

// CatalogOptions converts the fetch settings into client options.
func (c Config) CatalogOptions() catalog.Options {
	return catalog.Options{
		BaseURL:         c.CatalogURL,
		Concurrency:     c.Concurrency,
		RequestInterval: c.RequestInterval,
		Timeout:         c.Timeout,
	}
}

// NewModel wires the catalog client and loader into a UI model. The caller
// owns the returned loader and must Stop it.
func NewModel(cfg Config) (*ui.Model, *backend.Loader) {
	client := catalog.New(cfg.CatalogOptions())
	loader := backend.NewLoader(client, cfg.Limit)
	return ui.NewModel(loader, cfg.Width, cfg.Height, cfg.ShowFooter), loader
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	model, loader := NewModel(cfg)
	defer loader.Stop()
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
