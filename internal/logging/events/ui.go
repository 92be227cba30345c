package events

import "github.com/atomicstack/pokedex-table/internal/logging"

type ViewTracer struct{}

type PickerTracer struct{}

type ActionTracer struct{}

var (
	View   = ViewTracer{}
	Picker = PickerTracer{}
	Action = ActionTracer{}
)

func (ViewTracer) Filter(category string) {
	logging.Trace("view.filter", map[string]interface{}{"category": category})
}

func (ViewTracer) Query(query string) {
	logging.Trace("view.query", map[string]interface{}{"query": query})
}

func (ViewTracer) Sort(column string, ascending bool) {
	logging.Trace("view.sort", map[string]interface{}{"column": column, "ascending": ascending})
}

func (ViewTracer) Page(page, maxPage int) {
	logging.Trace("view.page", map[string]interface{}{"page": page, "max": maxPage})
}

func (ViewTracer) Cursor(row int) {
	logging.Trace("view.cursor", map[string]interface{}{"row": row})
}

func (PickerTracer) Open(id string, cursor int) {
	logging.Trace("picker.open", map[string]interface{}{"picker": id, "cursor": cursor})
}

func (PickerTracer) Select(id, value string) {
	logging.Trace("picker.select", map[string]interface{}{"picker": id, "value": value})
}

func (PickerTracer) Cancel(id string) {
	logging.Trace("picker.cancel", map[string]interface{}{"picker": id})
}

func (ActionTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("action.error", map[string]interface{}{"error": err.Error()})
}

func (ActionTracer) Loaded(count int) {
	logging.Trace("action.loaded", map[string]interface{}{"count": count})
}
