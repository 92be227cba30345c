package state

import (
	"testing"

	"github.com/atomicstack/pokedex-table/internal/catalog"
)

func TestRecordStoreCopiesOnWrite(t *testing.T) {
	store := NewRecordStore()
	if store.Loaded() {
		t.Fatalf("expected fresh store to be unloaded")
	}
	records := []catalog.Record{{Name: "eevee"}}
	store.SetRecords(records)
	records[0].Name = "changed"
	if got := store.Records(); len(got) != 1 || got[0].Name != "eevee" {
		t.Fatalf("expected stored copy to be unaffected, got %#v", got)
	}
	if !store.Loaded() {
		t.Fatalf("expected store to be loaded after SetRecords")
	}

	out := store.Records()
	out[0].Name = "mutated"
	if store.Records()[0].Name != "eevee" {
		t.Fatalf("expected Records to return a copy")
	}
}

func TestRecordStoreEmptyRecordsStillLoaded(t *testing.T) {
	store := NewRecordStore()
	store.SetRecords(nil)
	if !store.Loaded() {
		t.Fatalf("expected empty resolution to mark the store loaded")
	}
	if store.Records() != nil {
		t.Fatalf("expected nil records")
	}
}

func TestRecordStoreSummaries(t *testing.T) {
	store := NewRecordStore()
	store.SetSummaries([]catalog.Summary{{Name: "a", URL: "u"}})
	if got := store.Summaries(); len(got) != 1 || got[0].URL != "u" {
		t.Fatalf("unexpected summaries %#v", got)
	}
}
