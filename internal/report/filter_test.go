package report

import (
	"testing"
	"time"

	"github.com/unnativehicles2009-web/Open-RO/internal/model"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func sampleRecords() []model.Record {
	return []model.Record{
		{
			ROID: "RO-1", DealerCode: "DL01", Status: "Open", SRType: "Repair",
			HoldReason: "Parts awaited", ModelName: "Kwid", RegNo: "MH12AB1234",
			OpenDate: day(2024, 7, 5), HasOpenDate: true, AgeBucket: "0-3 days",
			ROAmount: 1000, PartsAmount: 400, LaborAmount: 600,
		},
		{
			ROID: "RO-2", DealerCode: "DL02", Status: "On Hold", SRType: "Service",
			HoldReason: "No reason", ModelName: "Triber", RegNo: "MH14XY9876",
			OpenDate: day(2024, 7, 3), HasOpenDate: true, AgeBucket: "0-3 days",
			ROAmount: 2000, PartsAmount: 900, LaborAmount: 1100,
		},
		{
			ROID: "RO-3", DealerCode: "DL01", Status: "Open", SRType: "Service",
			HoldReason: "Customer approval", ModelName: "Duster", RegNo: "KA01ZZ1111",
			OpenDate: day(2024, 6, 20), HasOpenDate: true, AgeBucket: "11-15 days",
			ROAmount: -500, PartsAmount: 0, LaborAmount: 0,
		},
		{
			ROID: "RO-4", DealerCode: "DL03", Status: "Ready", SRType: "Repair",
			HoldReason: "No reason", ModelName: "Kwid", RegNo: "MH12CD5678",
			AgeBucket: "0-3 days",
			ROAmount:  750, PartsAmount: 250, LaborAmount: 500,
		},
		{
			ROID: "RO-5", DealerCode: "DL02", Status: "Open", SRType: "Repair",
			HoldReason: "Parts awaited", ModelName: "Unknown", RegNo: "DL08EF4321",
			OpenDate: day(2024, 5, 1), HasOpenDate: true, AgeBucket: "Above 60",
			ROAmount: 3000, PartsAmount: 1500, LaborAmount: 1500,
		},
	}
}

func ids(records []model.Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.ROID
	}
	return out
}

func assertIDs(t *testing.T, got []model.Record, want ...string) {
	t.Helper()
	gotIDs := ids(got)
	if len(gotIDs) != len(want) {
		t.Fatalf("ids = %v, want %v", gotIDs, want)
	}
	for i := range want {
		if gotIDs[i] != want[i] {
			t.Fatalf("ids = %v, want %v", gotIDs, want)
		}
	}
}

func TestApplyEmptyFilterReturnsSameSlice(t *testing.T) {
	t.Parallel()

	records := sampleRecords()

	for _, f := range []Filter{
		{},
		{Branch: "All", Status: "All", AgeBucket: "All", SRType: "All", HoldReason: "All", ModelName: "All"},
	} {
		got := Apply(records, f)
		if len(got) != len(records) {
			t.Fatalf("len = %d, want %d", len(got), len(records))
		}
		if &got[0] != &records[0] {
			t.Error("empty filter should return the input slice, not a copy")
		}
	}
}

func TestApplyCategoricalEquality(t *testing.T) {
	t.Parallel()

	records := sampleRecords()

	got := Apply(records, Filter{Branch: "DL01"})
	assertIDs(t, got, "RO-1", "RO-3")

	got = Apply(records, Filter{HoldReason: "No reason"})
	assertIDs(t, got, "RO-2", "RO-4")

	got = Apply(records, Filter{AgeBucket: "Above 60"})
	assertIDs(t, got, "RO-5")

	got = Apply(records, Filter{ModelName: "Kwid"})
	assertIDs(t, got, "RO-1", "RO-4")
}

func TestApplyComposesByAND(t *testing.T) {
	t.Parallel()

	records := sampleRecords()

	got := Apply(records, Filter{Branch: "DL02", Status: "Open"})
	assertIDs(t, got, "RO-5")

	got = Apply(records, Filter{Branch: "DL02", Status: "Ready"})
	assertIDs(t, got)
}

func TestApplyPreservesRelativeOrder(t *testing.T) {
	t.Parallel()

	records := sampleRecords()
	got := Apply(records, Filter{SRType: "Repair"})

	// Subsequence of the input in original order.
	assertIDs(t, got, "RO-1", "RO-4", "RO-5")
}

func TestRegSearchCaseInsensitiveSubstring(t *testing.T) {
	t.Parallel()

	records := sampleRecords()

	got := Apply(records, Filter{RegSearch: "mh12"})
	assertIDs(t, got, "RO-1", "RO-4")

	got = Apply(records, Filter{RegSearch: "zz11"})
	assertIDs(t, got, "RO-3")

	got = Apply(records, Filter{RegSearch: "nomatch"})
	assertIDs(t, got)
}

func TestDateRangeToDateIsInclusive(t *testing.T) {
	t.Parallel()

	// A record dated exactly on the to_date, with a time-of-day
	// component, must still be included.
	records := []model.Record{
		{ROID: "RO-A", OpenDate: time.Date(2024, 7, 5, 14, 30, 0, 0, time.UTC), HasOpenDate: true},
		{ROID: "RO-B", OpenDate: day(2024, 7, 6), HasOpenDate: true},
	}

	got := Apply(records, Filter{To: day(2024, 7, 5), HasTo: true})
	assertIDs(t, got, "RO-A")
}

func TestDateRangeFromBound(t *testing.T) {
	t.Parallel()

	records := sampleRecords()

	got := Apply(records, Filter{From: day(2024, 7, 1), HasFrom: true})
	assertIDs(t, got, "RO-1", "RO-2")

	got = Apply(records, Filter{
		From: day(2024, 6, 1), HasFrom: true,
		To: day(2024, 6, 30), HasTo: true,
	})
	assertIDs(t, got, "RO-3")
}

func TestAbsentDateNeverMatchesBoundedRange(t *testing.T) {
	t.Parallel()

	records := sampleRecords() // RO-4 has no open date

	got := Apply(records, Filter{From: day(2000, 1, 1), HasFrom: true})
	for _, r := range got {
		if r.ROID == "RO-4" {
			t.Error("record without open date matched a from bound")
		}
	}

	got = Apply(records, Filter{To: day(2100, 1, 1), HasTo: true})
	for _, r := range got {
		if r.ROID == "RO-4" {
			t.Error("record without open date matched a to bound")
		}
	}
}

func TestParseFilter(t *testing.T) {
	t.Parallel()

	params := map[string]string{
		"branch":     "DL01",
		"status":     "All",
		"age_bucket": "0-3 days",
		"reg_search": " MH12 ",
		"from_date":  "2024-07-01",
		"to_date":    "05/07/2024",
	}
	f := ParseFilter(func(k string) string { return params[k] })

	if f.Branch != "DL01" {
		t.Errorf("Branch = %q", f.Branch)
	}
	if f.Status != "All" {
		t.Errorf("Status = %q", f.Status)
	}
	if f.AgeBucket != "0-3 days" {
		t.Errorf("AgeBucket = %q", f.AgeBucket)
	}
	if f.RegSearch != "MH12" {
		t.Errorf("RegSearch = %q, want trimmed", f.RegSearch)
	}
	if !f.HasFrom || !f.From.Equal(day(2024, 7, 1)) {
		t.Errorf("From = %v/%v", f.From, f.HasFrom)
	}
	if !f.HasTo || !f.To.Equal(day(2024, 7, 5)) {
		t.Errorf("To = %v/%v (lenient fallback expected)", f.To, f.HasTo)
	}
	if f.Empty() {
		t.Error("filter with criteria should not be empty")
	}

	blank := ParseFilter(func(string) string { return "" })
	if !blank.Empty() {
		t.Error("blank query should parse to an empty filter")
	}
}
