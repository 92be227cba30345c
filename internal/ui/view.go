package ui

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/atomicstack/pokedex-table/internal/catalog"
	"github.com/atomicstack/pokedex-table/internal/format/table"
	uistate "github.com/atomicstack/pokedex-table/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

const (
	rowIndicator  = "▌"
	ascendingMark = "▲"
	descendMark   = "▼"
)

var columnOrder = []struct {
	col   uistate.Column
	title string
	align table.Alignment
	max   int
}{
	{uistate.ColumnName, "Pokemon", table.AlignLeft, 18},
	{uistate.ColumnHeight, "Height (decimetres)", table.AlignRight, 0},
	{uistate.ColumnWeight, "Weight (hectograms)", table.AlignRight, 0},
	{uistate.ColumnAbilities, "Abilities", table.AlignLeft, 48},
}

var columnLabels = map[uistate.Column]string{
	uistate.ColumnName:       "name",
	uistate.ColumnHeight:     "height",
	uistate.ColumnWeight:     "weight",
	uistate.ColumnAbilities:  "abilities",
	uistate.ColumnExperience: "base experience",
}

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
	raw           bool // text contains ANSI escapes; skip style wrapping, use ANSI-aware truncation
}

// View implements tea.Model.
func (m *Model) View() string {
	lines := make([]styledLine, 0, 40)
	lines = append(lines, styledLine{text: appTitle, style: styles.Title})
	switch {
	case m.loading():
		lines = append(lines, styledLine{text: m.spinner.View() + " " + m.loadingStatusText(), raw: true})
	case m.errMsg != "":
		lines = append(lines, styledLine{text: m.errMsg, style: styles.Error})
	case m.picker != nil:
		lines = append(lines, m.pickerLines()...)
	default:
		lines = append(lines, m.tableLines()...)
	}
	if footer := m.footerLines(); len(footer) > 0 {
		lines = append(lines, styledLine{})
		lines = append(lines, footer...)
	}
	lines = limitHeight(lines, m.height, m.width)
	lines = applyWidth(lines, m.width)
	return renderLines(lines)
}

// noMatchMessage names the type filter when one is active, the name search otherwise.
func noMatchMessage(v uistate.View) string {
	if v.Filter == "" {
		return noQueryText
	}
	return noMatchText
}

func (m *Model) tableLines() []styledLine {
	lines := make([]styledLine, 0, 32)
	lines = append(lines, rawLines(m.aggregateBoxes())...)
	lines = append(lines, m.filterLine())
	if m.searching || m.view.Query != "" {
		if m.searching {
			lines = append(lines, styledLine{text: m.search.View(), raw: true})
		} else {
			lines = append(lines, styledLine{text: searchPrompt + m.view.Query, style: styles.FilterActive})
		}
	}
	page := m.currentPage()
	if page.NoMatch {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: noMatchMessage(m.view), style: styles.Info})
		return lines
	}
	lines = append(lines, styledLine{text: paginationText(page, m.view), style: styles.Pagination})
	lines = append(lines, m.rowLines(page)...)
	if rec, ok := m.selectedRecord(); ok {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: previewTitleText(rec), style: styles.PreviewTitle})
		for _, text := range previewLines(rec) {
			lines = append(lines, styledLine{text: "  " + text, style: styles.PreviewBody})
		}
	}
	return lines
}

// aggregateBoxes renders the two summary boxes side by side.
func (m *Model) aggregateBoxes() string {
	avg, most := noneText, noneText
	if m.summary.OK {
		avg = formatWeight(m.summary.AverageWeight) + " hectograms"
		most = m.summary.MostExperienced
	}
	left := styles.Box.Render(styles.BoxLabel.Render("Average Weight: ") + styles.BoxValue.Render(avg))
	right := styles.Box.Render(styles.BoxLabel.Render("Most Experienced: ") + styles.BoxValue.Render(most))
	return lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)
}

// formatWeight prints the mean with at most two decimals and no trailing zeros.
func formatWeight(avg float64) string {
	return strconv.FormatFloat(math.Round(avg*100)/100, 'f', -1, 64)
}

func (m *Model) filterLine() styledLine {
	label := m.view.Filter
	style := styles.FilterActive
	if label == "" {
		label = uistate.AnyCategoryLabel
		style = styles.Filter
	}
	return styledLine{text: fmt.Sprintf("Type: %s", label), style: style}
}

func paginationText(page uistate.Page, v uistate.View) string {
	maxPage := page.MaxPage
	if maxPage < 1 {
		maxPage = 1
	}
	text := fmt.Sprintf("← Prev  %d / %d  Next →", page.Number, maxPage)
	if v.SortColumn != uistate.ColumnNone {
		text += fmt.Sprintf("   sorted by %s %s", columnLabels[v.SortColumn], sortMark(v.Ascending))
	}
	return text
}

func sortMark(ascending bool) string {
	if ascending {
		return ascendingMark
	}
	return descendMark
}

// rowLines renders the header and the visible rows as an aligned table.
func (m *Model) rowLines(page uistate.Page) []styledLine {
	rows := make([][]string, 0, len(page.Rows)+1)
	cols := make([]table.Column, len(columnOrder))
	header := make([]string, len(columnOrder))
	for i, c := range columnOrder {
		title := c.title
		if m.view.SortColumn == c.col {
			title += " " + sortMark(m.view.Ascending)
		}
		header[i] = title
		cols[i] = table.Column{Align: c.align, Max: c.max}
	}
	rows = append(rows, header)
	for _, rec := range page.Rows {
		rows = append(rows, recordCells(rec))
	}
	formatted := table.Format(rows, cols)
	lines := make([]styledLine, 0, len(formatted))
	lines = append(lines, styledLine{text: "  " + formatted[0], style: styles.Header})
	for i, text := range formatted[1:] {
		lines = append(lines, m.buildRowLine(text, i == m.rowCursor))
	}
	return lines
}

func recordCells(rec catalog.Record) []string {
	return []string{
		rec.Name,
		strconv.Itoa(rec.Height),
		strconv.Itoa(rec.Weight),
		rec.AbilityList(),
	}
}

func (m *Model) buildRowLine(text string, selected bool) styledLine {
	if !selected {
		return styledLine{text: "  " + text, style: styles.Row}
	}
	fullText := rowIndicator + " " + text
	if m.width > 0 {
		if pad := m.width - len([]rune(fullText)); pad > 0 {
			fullText += strings.Repeat(" ", pad)
		}
	}
	return styledLine{
		text:          fullText,
		style:         styles.SelectedRow,
		prefixStyle:   styles.RowIndicator,
		highlightFrom: 1,
	}
}

func (m *Model) pickerLines() []styledLine {
	p := m.picker
	lines := []styledLine{{text: p.Title, style: styles.PickerTitle}}
	visible, start := p.Visible(m.pickerMaxVisible())
	for i, opt := range visible {
		if start+i == p.Cursor {
			lines = append(lines, styledLine{text: rowIndicator + " " + opt.Label, style: styles.PickerSelected, prefixStyle: styles.RowIndicator, highlightFrom: 1})
			continue
		}
		lines = append(lines, styledLine{text: "  " + opt.Label, style: styles.PickerItem})
	}
	lines = append(lines, styledLine{text: "↑/↓ move  enter select  esc cancel", style: styles.Footer})
	return lines
}

func (m *Model) footerLines() []styledLine {
	if !m.showFooter && !m.help.ShowAll {
		return nil
	}
	return rawLines(m.help.View(m.keys))
}

func rawLines(block string) []styledLine {
	if block == "" {
		return nil
	}
	parts := strings.Split(block, "\n")
	lines := make([]styledLine, len(parts))
	for i, part := range parts {
		lines[i] = styledLine{text: part, raw: true}
	}
	return lines
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
		m.help.Width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	if m.picker != nil {
		m.picker.EnsureCursorVisible(m.pickerMaxVisible())
	}
	return nil
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			if lipgloss.Width(text) > width {
				text = truncate.StringWithTail(text, uint(width-1), "…")
			}
		} else {
			text = truncateText(text, width)
		}
		line.text = text
		result[i] = line
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			out[i] = text
			continue
		}
		runes := []rune(text)
		if line.highlightFrom > 0 && line.highlightFrom < len(runes) {
			head := string(runes[:line.highlightFrom])
			tail := string(runes[line.highlightFrom:])
			if line.prefixStyle != nil {
				head = line.prefixStyle.Render(head)
			}
			if line.style != nil {
				tail = line.style.Render(tail)
			}
			text = head + tail
		} else if line.style != nil {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	if width == 1 {
		return string(runes[:1])
	}
	return string(runes[:width-1]) + "…"
}
