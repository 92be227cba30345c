package ui

import (
	"fmt"

	"github.com/atomicstack/pokedex-table/internal/backend"
	"github.com/atomicstack/pokedex-table/internal/catalog"
	tea "github.com/charmbracelet/bubbletea"
)

// sampleRecords builds n grass records named mon-00.. whose weights average
// to 5*(n+1) and whose highest base experience belongs to mon-37 when n > 37.
func sampleRecords(n int) []catalog.Record {
	records := make([]catalog.Record, n)
	for i := range records {
		exp := i
		if i == 37 {
			exp = 300
		}
		name := fmt.Sprintf("mon-%02d", i)
		records[i] = catalog.Record{
			Name:           name,
			Height:         n - i,
			Weight:         (i + 1) * 10,
			BaseExperience: exp,
			Abilities: []catalog.AbilitySlot{
				{Ability: catalog.NamedResource{Name: "overgrow"}, Slot: 1},
				{Ability: catalog.NamedResource{Name: "chlorophyll"}, IsHidden: true, Slot: 3},
			},
			Forms: []catalog.NamedResource{{Name: name}},
			Moves: make([]catalog.MoveEntry, i%4),
			Types: []catalog.TypeSlot{{Slot: 1, Type: catalog.NamedResource{Name: "grass"}}},
			Sprites: catalog.Sprites{
				FrontDefault: "https://img.test/" + name + ".png",
			},
		}
	}
	return records
}

func loadedHarness(width, height int, records []catalog.Record) *Harness {
	h := NewHarness(NewModel(nil, width, height, false))
	h.Send(backendEventMsg{event: backend.Event{Kind: backend.KindRecords, Data: records}})
	return h
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}
