package report

import (
	"sort"

	"github.com/unnativehicles2009-web/Open-RO/internal/model"
	"github.com/unnativehicles2009-web/Open-RO/internal/parser"
)

// FilterOptions lists the distinct values offered by the UI dropdowns,
// each prefixed with the "All" sentinel.
type FilterOptions struct {
	Branches    []string `json:"branches"`
	Statuses    []string `json:"statuses"`
	AgeBuckets  []string `json:"age_buckets"`
	SRTypes     []string `json:"sr_types"`
	HoldReasons []string `json:"hold_reasons"`
	ModelNames  []string `json:"model_names"`
}

// Options collects dropdown values from the full dataset. Categorical
// lists are distinct, sorted and skip blank cells; age buckets keep
// their canonical order and include only buckets actually present. An
// empty dataset yields bare ["All"] lists.
func Options(records []model.Record) FilterOptions {
	return FilterOptions{
		Branches:    distinctSorted(records, func(r model.Record) string { return r.DealerCode }),
		Statuses:    distinctSorted(records, func(r model.Record) string { return r.Status }),
		AgeBuckets:  bucketsPresent(records),
		SRTypes:     distinctSorted(records, func(r model.Record) string { return r.SRType }),
		HoldReasons: distinctSorted(records, func(r model.Record) string { return r.HoldReason }),
		ModelNames:  distinctSorted(records, func(r model.Record) string { return r.ModelName }),
	}
}

func distinctSorted(records []model.Record, field func(model.Record) string) []string {
	seen := make(map[string]bool)
	for _, r := range records {
		if v := field(r); v != "" {
			seen[v] = true
		}
	}

	values := make([]string, 0, len(seen))
	for v := range seen {
		values = append(values, v)
	}
	sort.Strings(values)

	return append([]string{"All"}, values...)
}

func bucketsPresent(records []model.Record) []string {
	seen := make(map[string]bool)
	for _, r := range records {
		seen[r.AgeBucket] = true
	}

	out := []string{"All"}
	for _, b := range parser.AgeBucketOrder {
		if seen[b] {
			out = append(out, b)
		}
	}
	return out
}
