package dispatcher

import (
	"github.com/atomicstack/pokedex-table/internal/backend"
	"github.com/atomicstack/pokedex-table/internal/catalog"
	"github.com/atomicstack/pokedex-table/internal/state"
)

type Result struct {
	ListingUpdated bool
	RecordsUpdated bool
}

type Dispatcher struct {
	records state.RecordStore
}

func New(records state.RecordStore) *Dispatcher {
	return &Dispatcher{records: records}
}

// Handle applies a loader event to the record store.
func (d *Dispatcher) Handle(evt backend.Event) Result {
	var res Result
	if evt.Err != nil {
		return res
	}
	switch evt.Kind {
	case backend.KindListing:
		if refs, ok := evt.Data.([]catalog.Summary); ok {
			d.records.SetSummaries(refs)
			res.ListingUpdated = true
		}
	case backend.KindRecords:
		if records, ok := evt.Data.([]catalog.Record); ok {
			d.records.SetRecords(records)
			res.RecordsUpdated = true
		}
	}
	return res
}
