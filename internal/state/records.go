package state

import "github.com/atomicstack/pokedex-table/internal/catalog"

// RecordStore holds the fetched listing and its resolved records.
type RecordStore interface {
	Summaries() []catalog.Summary
	SetSummaries([]catalog.Summary)
	Records() []catalog.Record
	SetRecords([]catalog.Record)
	Loaded() bool
}

type recordStore struct {
	summaries []catalog.Summary
	records   []catalog.Record
	loaded    bool
}

func NewRecordStore() RecordStore {
	return &recordStore{}
}

func (s *recordStore) Summaries() []catalog.Summary {
	return cloneSummaries(s.summaries)
}

func (s *recordStore) SetSummaries(summaries []catalog.Summary) {
	s.summaries = cloneSummaries(summaries)
}

func (s *recordStore) Records() []catalog.Record {
	return cloneRecords(s.records)
}

func (s *recordStore) SetRecords(records []catalog.Record) {
	s.records = cloneRecords(records)
	s.loaded = true
}

func (s *recordStore) Loaded() bool {
	return s.loaded
}

func cloneSummaries(entries []catalog.Summary) []catalog.Summary {
	if len(entries) == 0 {
		return nil
	}
	dup := make([]catalog.Summary, len(entries))
	copy(dup, entries)
	return dup
}

func cloneRecords(entries []catalog.Record) []catalog.Record {
	if len(entries) == 0 {
		return nil
	}
	dup := make([]catalog.Record, len(entries))
	copy(dup, entries)
	return dup
}
