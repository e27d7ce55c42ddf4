package cache

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/unnativehicles2009-web/Open-RO/internal/source"
)

type fakeSource struct {
	mu      sync.Mutex
	fetches int
	tbl     *source.Table
	err     error
}

func (f *fakeSource) Fetch(ctx context.Context) (*source.Table, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fetches++
	if f.err != nil {
		return nil, f.err
	}
	return f.tbl, nil
}

func (f *fakeSource) Name() string { return "fake" }

func (f *fakeSource) fetchCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fetches
}

func (f *fakeSource) setErr(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.err = err
}

func threeRowTable() *source.Table {
	return &source.Table{
		Header: []string{"Dealer Code", "Repair Order #", "RO Open Date", "Total RO Amount"},
		Rows: [][]string{
			{"DL01", "RO-1", "05/07/2024", "Rs 1,000"},
			{"DL02", "RO-2", "03/07/2024", "Rs 2,000"},
			{"DL01", "RO-3", "01/07/2024", "Rs 3,000"},
		},
	}
}

func TestGetWithinTTLReturnsSameSnapshot(t *testing.T) {
	src := &fakeSource{tbl: threeRowTable()}
	c := New(src, time.Minute)

	first := c.Get(context.Background())
	if first.Rows() != 3 {
		t.Fatalf("rows = %d, want 3", first.Rows())
	}

	second := c.Get(context.Background())
	if second != first {
		t.Error("Get within TTL should return the identical snapshot")
	}
	if src.fetchCount() != 1 {
		t.Errorf("fetches = %d, want 1", src.fetchCount())
	}
}

func TestGetRefreshesAfterTTL(t *testing.T) {
	src := &fakeSource{tbl: threeRowTable()}
	c := New(src, time.Minute)

	first := c.Get(context.Background())

	c.now = func() time.Time { return time.Now().Add(2 * time.Minute) }

	second := c.Get(context.Background())
	if second == first {
		t.Error("Get after TTL should have rebuilt the snapshot")
	}
	if src.fetchCount() != 2 {
		t.Errorf("fetches = %d, want 2", src.fetchCount())
	}
}

func TestForceReloadAlwaysFetches(t *testing.T) {
	src := &fakeSource{tbl: threeRowTable()}
	c := New(src, time.Minute)

	c.Get(context.Background())
	c.ForceReload(context.Background())
	c.ForceReload(context.Background())

	if src.fetchCount() != 3 {
		t.Errorf("fetches = %d, want 3", src.fetchCount())
	}
}

func TestFailedReloadKeepsPriorData(t *testing.T) {
	src := &fakeSource{tbl: threeRowTable()}
	c := New(src, time.Minute)

	good := c.Get(context.Background())
	if good.Err != "" {
		t.Fatalf("unexpected load error: %s", good.Err)
	}

	src.setErr(errors.New("boom"))
	failed := c.ForceReload(context.Background())

	if failed.Rows() != 3 {
		t.Errorf("rows after failed reload = %d, want 3", failed.Rows())
	}
	if failed.Err == "" {
		t.Error("failed reload should record the error")
	}
	if failed.ID != good.ID {
		t.Error("failed reload should keep the prior snapshot generation")
	}
	if failed.Records[0].ROID != good.Records[0].ROID {
		t.Error("failed reload changed record content")
	}
}

func TestColdStartFailureServesEmptyThenRetries(t *testing.T) {
	src := &fakeSource{tbl: threeRowTable(), err: errors.New("network down")}
	c := New(src, time.Minute)

	empty := c.Get(context.Background())
	if empty.Rows() != 0 {
		t.Fatalf("rows = %d, want 0", empty.Rows())
	}
	if empty.Err == "" {
		t.Error("cold-start failure should record the error")
	}

	// The empty snapshot must not be pinned for a TTL window.
	src.setErr(nil)
	recovered := c.Get(context.Background())
	if recovered.Rows() != 3 {
		t.Errorf("rows after recovery = %d, want 3", recovered.Rows())
	}
	if recovered.Err != "" {
		t.Errorf("recovered snapshot still carries error %q", recovered.Err)
	}
}

func TestConcurrentColdReadsFetchOnce(t *testing.T) {
	src := &fakeSource{tbl: threeRowTable()}
	c := New(src, time.Minute)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if snap := c.Get(context.Background()); snap.Rows() != 3 {
				t.Errorf("rows = %d, want 3", snap.Rows())
			}
		}()
	}
	wg.Wait()

	if src.fetchCount() != 1 {
		t.Errorf("fetches = %d, want 1", src.fetchCount())
	}
}

func TestConcurrentReadersAndReloaders(t *testing.T) {
	src := &fakeSource{tbl: threeRowTable()}
	c := New(src, time.Minute)

	var wg sync.WaitGroup
	for i := 0; i < 30; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = c.Get(context.Background())
		}()
	}
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = c.ForceReload(context.Background())
		}()
	}
	wg.Wait()

	if snap := c.Snapshot(); snap.Rows() != 3 {
		t.Errorf("rows = %d, want 3", snap.Rows())
	}
}
