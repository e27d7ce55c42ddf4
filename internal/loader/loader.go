package loader

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jszwec/csvutil"

	"github.com/unnativehicles2009-web/Open-RO/internal/model"
	"github.com/unnativehicles2009-web/Open-RO/internal/parser"
	"github.com/unnativehicles2009-web/Open-RO/internal/source"
)

// Load fetches raw data from src and builds a snapshot dated now.
func Load(ctx context.Context, src source.Source, now time.Time) (*model.Snapshot, error) {
	tbl, err := src.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	snap, err := BuildSnapshot(tbl, src.Name(), now)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", source.ErrBadFormat, err)
	}
	return snap, nil
}

// BuildSnapshot normalizes a raw table into an enriched, sorted
// snapshot. Per-cell parse failures never fail the build; they resolve
// to field defaults.
func BuildSnapshot(tbl *source.Table, sourceName string, now time.Time) (*model.Snapshot, error) {
	header := normalizeHeader(tbl.Header)
	header, modelCol, modelIdx := resolveModelColumn(header)

	dec, err := csvutil.NewDecoder(&rowReader{rows: tbl.Rows, width: len(header)}, header...)
	if err != nil {
		return nil, fmt.Errorf("decode header: %w", err)
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	records := make([]model.Record, 0, len(tbl.Rows))
	for {
		var raw model.RawRecord
		if err := dec.Decode(&raw); err == io.EOF {
			break
		} else if err != nil {
			continue
		}
		records = append(records, enrich(raw, dec.Record()[modelIdx], today))
	}

	sortByOpenDateDesc(records)

	return &model.Snapshot{
		ID:          uuid.NewString(),
		Records:     records,
		LoadedAt:    now,
		ModelColumn: modelCol,
		Source:      sourceName,
	}, nil
}

// normalizeHeader trims header cells, canonicalizes required column
// names (case-insensitive) and appends any required column that is
// missing, so every record decodes against the full schema.
func normalizeHeader(raw []string) []string {
	header := make([]string, len(raw))
	for i, h := range raw {
		header[i] = strings.TrimSpace(h)
	}

	for _, want := range model.RequiredColumns {
		found := false
		for i, h := range header {
			if strings.EqualFold(h, want) {
				header[i] = want
				found = true
				break
			}
		}
		if !found {
			header = append(header, want)
		}
	}
	return header
}

// resolveModelColumn picks the first candidate column carrying the
// vehicle model, appending a blank "Model Name" column when none is
// present. The reported name is the actual header cell.
func resolveModelColumn(header []string) ([]string, string, int) {
	for _, cand := range model.ModelCandidates {
		for i, col := range header {
			if strings.EqualFold(col, cand) {
				return header, col, i
			}
		}
	}
	header = append(header, "Model Name")
	return header, "Model Name", len(header) - 1
}

// rowReader feeds table rows to the csv decoder, padding or truncating
// each row to the header width.
type rowReader struct {
	rows  [][]string
	width int
	next  int
}

func (r *rowReader) Read() ([]string, error) {
	if r.next >= len(r.rows) {
		return nil, io.EOF
	}
	row := r.rows[r.next]
	r.next++
	if len(row) == r.width {
		return row, nil
	}
	out := make([]string, r.width)
	copy(out, row)
	return out, nil
}

// enrich derives the computed fields for one raw row.
func enrich(raw model.RawRecord, modelCell string, today time.Time) model.Record {
	openDate, hasDate := parser.ParseDateAny(raw.OpenDate)
	days := parser.DaysOpen(openDate, hasDate, today)

	customer := parser.ProperCase(strings.TrimSpace(raw.FirstName + " " + raw.LastName))
	if customer == "" {
		customer = "Unknown"
	}

	return model.Record{
		DealerCode: strings.TrimSpace(raw.DealerCode),
		ROID:       strings.TrimSpace(raw.ROID),
		RegNo:      strings.TrimSpace(raw.RegNo),
		VIN:        strings.TrimSpace(raw.VIN),
		Odometer:   strings.TrimSpace(raw.Odometer),
		SAName:     strings.TrimSpace(raw.SAName),
		Status:     strings.TrimSpace(raw.Status),
		SRType:     strings.TrimSpace(raw.SRType),

		OpenDate:     openDate,
		HasOpenDate:  hasDate,
		DaysOpen:     days,
		AgeBucket:    parser.AgeBucket(days),
		HoldReason:   parser.SafeStr(raw.HoldReason, "No reason"),
		ModelName:    parser.SafeStr(modelCell, "Unknown"),
		CustomerName: customer,
		ROAmount:     parser.CleanMoney(raw.ROAmount),
		PartsAmount:  parser.CleanMoney(raw.PartsAmount),
		LaborAmount:  parser.CleanMoney(raw.LaborAmount),
	}
}

// sortByOpenDateDesc orders newest first with date-absent rows last,
// keeping source order for ties.
func sortByOpenDateDesc(records []model.Record) {
	sort.SliceStable(records, func(i, j int) bool {
		a, b := records[i], records[j]
		if a.HasOpenDate != b.HasOpenDate {
			return a.HasOpenDate
		}
		return a.OpenDate.After(b.OpenDate)
	})
}
