package state

// Option is a single selectable picker entry.
type Option struct {
	Value string
	Label string
}

// Picker tracks the cursor and viewport of a selectable list.
type Picker struct {
	ID             string
	Title          string
	Items          []Option
	Cursor         int
	ViewportOffset int
}

// NewPicker builds a picker with the cursor on the entry whose value is
// selected, or on the first entry when none matches.
func NewPicker(id, title string, items []Option, selected string) *Picker {
	p := &Picker{
		ID:    id,
		Title: title,
		Items: append([]Option(nil), items...),
	}
	if idx := p.IndexOf(selected); idx >= 0 {
		p.Cursor = idx
	}
	return p
}

// IndexOf returns the index of the entry with the given value.
func (p *Picker) IndexOf(value string) int {
	for i, item := range p.Items {
		if item.Value == value {
			return i
		}
	}
	return -1
}

// Current returns the entry under the cursor.
func (p *Picker) Current() (Option, bool) {
	if p.Cursor < 0 || p.Cursor >= len(p.Items) {
		return Option{}, false
	}
	return p.Items[p.Cursor], true
}
