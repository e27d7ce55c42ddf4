package source

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// SheetSource fetches a published Google Sheet CSV export.
type SheetSource struct {
	url    string
	client *http.Client
}

// NewSheetSource creates the remote CSV source. Connect and read
// timeouts are bounded so a reload fails fast instead of hanging a
// request.
func NewSheetSource(url string) *SheetSource {
	return &SheetSource{
		url: url,
		client: &http.Client{
			Timeout: 20 * time.Second,
			Transport: &http.Transport{
				DialContext:         (&net.Dialer{Timeout: 8 * time.Second}).DialContext,
				TLSHandshakeTimeout: 8 * time.Second,
			},
		},
	}
}

// Name identifies the source in logs and snapshots.
func (s *SheetSource) Name() string { return "google-sheet-csv" }

// Fetch downloads and parses the CSV export.
func (s *SheetSource) Fetch(ctx context.Context) (*Table, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: unexpected status %s", ErrUnavailable, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", ErrUnavailable, err)
	}

	return parseCSV(data)
}

// parseCSV decodes UTF-8 CSV text (optional byte-order mark) into a
// Table. Rows may be ragged and cells may carry stray quotes; the
// loader squares the rows off.
func parseCSV(data []byte) (*Table, error) {
	data = bytes.TrimPrefix(data, utf8BOM)

	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadFormat, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: empty csv", ErrBadFormat)
	}

	return &Table{Header: records[0], Rows: records[1:]}, nil
}
