package report

import "github.com/unnativehicles2009-web/Open-RO/internal/model"

// Totals are the sum-style aggregates over a filtered view.
type Totals struct {
	Count       int
	ROAmount    float64
	PartsAmount float64
	LaborAmount float64
}

// Sum aggregates the parsed amounts. An empty input yields all zeros.
func Sum(records []model.Record) Totals {
	t := Totals{Count: len(records)}
	for _, r := range records {
		t.ROAmount += r.ROAmount
		t.PartsAmount += r.PartsAmount
		t.LaborAmount += r.LaborAmount
	}
	return t
}

// Page returns the contiguous window [skip, skip+limit) of records.
// skip clamps into range; limit <= 0 means everything from skip on.
func Page(records []model.Record, skip, limit int) []model.Record {
	if skip < 0 {
		skip = 0
	}
	if skip > len(records) {
		skip = len(records)
	}
	if limit <= 0 {
		return records[skip:]
	}
	end := skip + limit
	if end > len(records) {
		end = len(records)
	}
	return records[skip:end]
}
