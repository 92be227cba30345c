// Package stats derives the aggregate figures shown above the table.
package stats

import (
	"errors"

	"github.com/atomicstack/pokedex-table/internal/catalog"
)

// ErrNoData is returned when an aggregate is requested over no records.
var ErrNoData = errors.New("no records")

// MaxExperienceName returns the name of the record with the highest base
// experience. Ties keep the earliest record.
func MaxExperienceName(records []catalog.Record) (string, error) {
	if len(records) == 0 {
		return "", ErrNoData
	}
	best := records[0]
	for _, rec := range records[1:] {
		if rec.BaseExperience > best.BaseExperience {
			best = rec
		}
	}
	return best.Name, nil
}

// AverageWeight returns the arithmetic mean of the records' weights.
func AverageWeight(records []catalog.Record) (float64, error) {
	if len(records) == 0 {
		return 0, ErrNoData
	}
	var total float64
	for _, rec := range records {
		total += float64(rec.Weight)
	}
	return total / float64(len(records)), nil
}

// Summary bundles both aggregates for rendering. OK is false when there were
// no records to aggregate.
type Summary struct {
	Count           int
	MostExperienced string
	AverageWeight   float64
	OK              bool
}

// Summarize computes both aggregates in one call.
func Summarize(records []catalog.Record) Summary {
	name, err := MaxExperienceName(records)
	if err != nil {
		return Summary{}
	}
	avg, err := AverageWeight(records)
	if err != nil {
		return Summary{}
	}
	return Summary{
		Count:           len(records),
		MostExperienced: name,
		AverageWeight:   avg,
		OK:              true,
	}
}
