package ui

import (
	"fmt"
	"strings"

	"github.com/atomicstack/pokedex-table/internal/catalog"
)

const noneText = "-"

// selectedRecord returns the record under the row cursor on the current page.
func (m *Model) selectedRecord() (catalog.Record, bool) {
	rows := m.currentPage().Rows
	if len(rows) == 0 {
		return catalog.Record{}, false
	}
	idx := m.rowCursor
	if idx < 0 || idx >= len(rows) {
		idx = 0
	}
	return rows[idx], true
}

func previewTitleText(rec catalog.Record) string {
	return fmt.Sprintf("Preview: %s", rec.Name)
}

// previewLines describes a record in place of the sprite image.
func previewLines(rec catalog.Record) []string {
	forms := make([]string, 0, len(rec.Forms))
	for _, f := range rec.Forms {
		forms = append(forms, f.Name)
	}
	sprite := strings.TrimSpace(rec.Sprites.FrontDefault)
	return []string{
		"Types: " + joinOrNone(rec.TypeNames()),
		fmt.Sprintf("Base experience: %d", rec.BaseExperience),
		"Forms: " + joinOrNone(forms),
		fmt.Sprintf("Moves: %d", len(rec.Moves)),
		"Sprite: " + orNone(sprite),
	}
}

func joinOrNone(values []string) string {
	return orNone(strings.Join(values, ", "))
}

func orNone(value string) string {
	if value == "" {
		return noneText
	}
	return value
}
