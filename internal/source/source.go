package source

import (
	"context"
	"errors"
)

var (
	// ErrUnavailable marks transport-level failures fetching raw data.
	ErrUnavailable = errors.New("source unavailable")
	// ErrBadFormat marks structurally unparseable raw data.
	ErrBadFormat = errors.New("source format invalid")
)

// Table is raw tabular data: a header row plus data rows, all text.
type Table struct {
	Header []string
	Rows   [][]string
}

// Source fetches raw tabular data. Implementations share the same output
// shape so the loader never cares where rows came from.
type Source interface {
	Fetch(ctx context.Context) (*Table, error)
	Name() string
}
