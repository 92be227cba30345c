package table

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

// Column describes how a single column is laid out. Max caps the column's
// width in cells; zero means unbounded.
type Column struct {
	Align Alignment
	Max   int
}

const separator = "  "

// Format returns the rows padded according to the widest entry in each column.
// Cells wider than their column's Max are truncated with an ellipsis.
func Format(rows [][]string, cols []Column) []string {
	if len(rows) == 0 {
		return nil
	}
	widths := Widths(rows, cols)
	out := make([]string, len(rows))
	for i, row := range rows {
		var b strings.Builder
		for c, cell := range row {
			if c > 0 {
				b.WriteString(separator)
			}
			if cellWidth(cell) > widths[c] {
				cell = ansi.Truncate(cell, widths[c], "…")
			}
			pad := widths[c] - cellWidth(cell)
			if c < len(cols) && cols[c].Align == AlignRight {
				writeSpaces(&b, pad)
				b.WriteString(cell)
				continue
			}
			b.WriteString(cell)
			if c < len(row)-1 {
				writeSpaces(&b, pad)
			}
		}
		out[i] = b.String()
	}
	return out
}

// Widths returns the rendered width of every column.
func Widths(rows [][]string, cols []Column) []int {
	colCount := 0
	for _, row := range rows {
		if len(row) > colCount {
			colCount = len(row)
		}
	}
	widths := make([]int, colCount)
	for _, row := range rows {
		for c, cell := range row {
			if w := cellWidth(cell); w > widths[c] {
				widths[c] = w
			}
		}
	}
	for c := range widths {
		if c < len(cols) && cols[c].Max > 0 && widths[c] > cols[c].Max {
			widths[c] = cols[c].Max
		}
	}
	return widths
}

func cellWidth(text string) int {
	return ansi.StringWidth(text)
}

func writeSpaces(b *strings.Builder, count int) {
	if count <= 0 {
		return
	}
	b.WriteString(strings.Repeat(" ", count))
}
