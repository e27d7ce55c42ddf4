package report

import (
	"strings"
	"time"

	"github.com/unnativehicles2009-web/Open-RO/internal/model"
	"github.com/unnativehicles2009-web/Open-RO/internal/parser"
)

// Filter is one request's view criteria. Every field is optional: a
// blank or "All" categorical imposes no restriction, as does a blank
// search or an unset date bound. Filters are built per request and AND
// together.
type Filter struct {
	Branch     string
	Status     string
	AgeBucket  string
	SRType     string
	HoldReason string
	ModelName  string

	RegSearch string

	From    time.Time
	HasFrom bool
	To      time.Time
	HasTo   bool
}

// ParseFilter builds a Filter from query parameters. get is typically
// gin's c.Query. Date bounds take ISO YYYY-MM-DD with a lenient
// day-first fallback; unparseable bounds are ignored.
func ParseFilter(get func(string) string) Filter {
	f := Filter{
		Branch:     strings.TrimSpace(get("branch")),
		Status:     strings.TrimSpace(get("status")),
		AgeBucket:  strings.TrimSpace(get("age_bucket")),
		SRType:     strings.TrimSpace(get("sr_type")),
		HoldReason: strings.TrimSpace(get("hold_reason")),
		ModelName:  strings.TrimSpace(get("model_name")),
		RegSearch:  strings.TrimSpace(get("reg_search")),
	}
	f.From, f.HasFrom = parser.ParseISODate(get("from_date"))
	f.To, f.HasTo = parser.ParseISODate(get("to_date"))
	return f
}

// Empty reports whether the filter imposes no restriction at all.
func (f Filter) Empty() bool {
	return noRestriction(f.Branch) &&
		noRestriction(f.Status) &&
		noRestriction(f.AgeBucket) &&
		noRestriction(f.SRType) &&
		noRestriction(f.HoldReason) &&
		noRestriction(f.ModelName) &&
		f.RegSearch == "" &&
		!f.HasFrom && !f.HasTo
}

// Apply filters records preserving their order. An empty filter returns
// the input slice unchanged, not a copy.
func Apply(records []model.Record, f Filter) []model.Record {
	if f.Empty() {
		return records
	}

	out := make([]model.Record, 0, len(records))
	for _, r := range records {
		if f.matches(r) {
			out = append(out, r)
		}
	}
	return out
}

func (f Filter) matches(r model.Record) bool {
	if !matchExact(f.Branch, r.DealerCode) ||
		!matchExact(f.Status, r.Status) ||
		!matchExact(f.AgeBucket, r.AgeBucket) ||
		!matchExact(f.SRType, r.SRType) ||
		!matchExact(f.HoldReason, r.HoldReason) ||
		!matchExact(f.ModelName, r.ModelName) {
		return false
	}

	if f.RegSearch != "" {
		if !strings.Contains(strings.ToUpper(r.RegNo), strings.ToUpper(f.RegSearch)) {
			return false
		}
	}

	// A record without an open date never matches a bounded range.
	if f.HasFrom {
		if !r.HasOpenDate || r.OpenDate.Before(f.From) {
			return false
		}
	}
	if f.HasTo {
		// Inclusive upper bound: extend to the end of that calendar day
		// so a same-day bound admits records with a time component.
		end := f.To.Add(24*time.Hour - time.Second)
		if !r.HasOpenDate || r.OpenDate.After(end) {
			return false
		}
	}

	return true
}

func matchExact(criterion, value string) bool {
	return noRestriction(criterion) || criterion == value
}

func noRestriction(criterion string) bool {
	return criterion == "" || criterion == "All"
}
