package state

import "testing"

func newTestPicker(values ...string) *Picker {
	items := make([]Option, len(values))
	for i, v := range values {
		items[i] = Option{Value: v, Label: v}
	}
	return NewPicker("test", "Test", items, "")
}

func TestNewPickerPlacesCursorOnSelection(t *testing.T) {
	p := NewPicker("type", "Type", CategoryOptions(), "water")
	if p.Cursor != 3 {
		t.Fatalf("expected cursor on water (3), got %d", p.Cursor)
	}
	if opt, ok := p.Current(); !ok || opt.Value != "water" {
		t.Fatalf("expected current option water, got %#v", opt)
	}
	unknown := NewPicker("type", "Type", CategoryOptions(), "plasma")
	if unknown.Cursor != 0 {
		t.Fatalf("expected cursor on first entry for unknown value, got %d", unknown.Cursor)
	}
}

func TestMoveCursorWraps(t *testing.T) {
	p := newTestPicker("a", "b", "c")
	if !p.MoveCursorUp() || p.Cursor != 2 {
		t.Fatalf("expected wrap to bottom, got %d", p.Cursor)
	}
	if !p.MoveCursorDown() || p.Cursor != 0 {
		t.Fatalf("expected wrap to top, got %d", p.Cursor)
	}
	empty := newTestPicker()
	if empty.MoveCursorDown() || empty.MoveCursorUp() {
		t.Fatalf("expected no movement for empty picker")
	}
}

func TestMoveCursorHome(t *testing.T) {
	p := newTestPicker("a", "b", "c")
	p.Cursor = 2
	if !p.MoveCursorHome() {
		t.Fatalf("expected move when items exist")
	}
	if p.Cursor != 0 {
		t.Fatalf("expected cursor 0, got %d", p.Cursor)
	}

	empty := newTestPicker()
	empty.Cursor = 5
	if empty.MoveCursorHome() {
		t.Fatalf("expected no movement for empty picker")
	}
	if empty.Cursor != 0 {
		t.Fatalf("expected cursor reset to 0, got %d", empty.Cursor)
	}
}

func TestMoveCursorEnd(t *testing.T) {
	p := newTestPicker("a", "b", "c")
	if !p.MoveCursorEnd() {
		t.Fatalf("expected movement to end")
	}
	if p.Cursor != 2 {
		t.Fatalf("expected cursor 2, got %d", p.Cursor)
	}
	if p.MoveCursorEnd() {
		t.Fatalf("expected no movement when already at end")
	}
}

func TestMoveCursorPaging(t *testing.T) {
	p := newTestPicker("a", "b", "c", "d", "e")
	if !p.MoveCursorPageDown(2) || p.Cursor != 2 {
		t.Fatalf("expected cursor 2, got %d", p.Cursor)
	}
	if !p.MoveCursorPageDown(2) || p.Cursor != 4 {
		t.Fatalf("expected cursor 4, got %d", p.Cursor)
	}
	if p.MoveCursorPageDown(2) {
		t.Fatalf("expected no further movement past end")
	}
	if !p.MoveCursorPageUp(2) || p.Cursor != 2 {
		t.Fatalf("expected cursor 2 after page up, got %d", p.Cursor)
	}
	if !p.MoveCursorPageUp(10) || p.Cursor != 0 {
		t.Fatalf("expected cursor at start, got %d", p.Cursor)
	}
}

func TestEnsureCursorVisibleAdjustsViewport(t *testing.T) {
	p := newTestPicker("a", "b", "c", "d", "e")
	p.Cursor = 4
	p.EnsureCursorVisible(2)
	if p.ViewportOffset != 3 {
		t.Fatalf("expected offset 3, got %d", p.ViewportOffset)
	}

	p.Cursor = -1
	p.EnsureCursorVisible(2)
	if p.Cursor != 0 {
		t.Fatalf("expected cursor normalized to 0, got %d", p.Cursor)
	}

	p.ViewportOffset = 4
	p.EnsureCursorVisible(0)
	if p.ViewportOffset != 0 {
		t.Fatalf("expected offset reset when maxVisible <= 0, got %d", p.ViewportOffset)
	}

	p.ViewportOffset = 4
	p.Cursor = 1
	p.EnsureCursorVisible(3)
	if p.ViewportOffset != 1 {
		t.Fatalf("expected offset aligned with cursor, got %d", p.ViewportOffset)
	}
}

func TestVisibleWindow(t *testing.T) {
	p := newTestPicker("a", "b", "c", "d", "e")
	p.Cursor = 4
	items, start := p.Visible(2)
	if start != 3 || len(items) != 2 || items[1].Value != "e" {
		t.Fatalf("unexpected window start=%d items=%#v", start, items)
	}
	all, start := p.Visible(0)
	if start != 0 || len(all) != 5 {
		t.Fatalf("expected full list without a height limit, got start=%d len=%d", start, len(all))
	}
}
