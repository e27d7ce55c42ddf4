package cache

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/unnativehicles2009-web/Open-RO/internal/loader"
	"github.com/unnativehicles2009-web/Open-RO/internal/model"
	"github.com/unnativehicles2009-web/Open-RO/internal/source"
)

// DefaultTTL is the snapshot age beyond which a read triggers a refresh.
const DefaultTTL = 60 * time.Second

// Cache holds the most recently loaded snapshot. Readers always see a
// complete snapshot: the pointer is swapped only after a reload finishes,
// and a failed reload keeps the previous records while recording the
// error on a fresh snapshot generation.
type Cache struct {
	src source.Source
	ttl time.Duration
	now func() time.Time

	mu   sync.RWMutex
	snap *model.Snapshot

	// flight serializes reload attempts so concurrent cold reads fetch
	// once instead of stampeding the source.
	flight sync.Mutex
}

// New creates a cache over src. A non-positive ttl falls back to
// DefaultTTL.
func New(src source.Source, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{src: src, ttl: ttl, now: time.Now}
}

// TTL reports the configured time-to-live.
func (c *Cache) TTL() time.Duration { return c.ttl }

// Snapshot returns the current snapshot without triggering a refresh.
// It is nil until the first load attempt.
func (c *Cache) Snapshot() *model.Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snap
}

// Get returns the current snapshot, refreshing first when none exists,
// the snapshot is empty, or its age exceeds the TTL. When usable data is
// already present and another refresh is in flight, the stale snapshot
// is returned immediately instead of waiting.
func (c *Cache) Get(ctx context.Context) *model.Snapshot {
	snap := c.Snapshot()
	if !c.needsRefresh(snap) {
		return snap
	}

	if snap.Rows() > 0 {
		if !c.flight.TryLock() {
			return snap
		}
	} else {
		c.flight.Lock()
	}
	defer c.flight.Unlock()

	// Another caller may have finished a reload while we waited.
	if cur := c.Snapshot(); !c.needsRefresh(cur) {
		return cur
	}
	return c.reload(ctx)
}

// ForceReload attempts a refresh regardless of snapshot age. Failure
// semantics match Get: prior records survive, the error is recorded.
func (c *Cache) ForceReload(ctx context.Context) *model.Snapshot {
	c.flight.Lock()
	defer c.flight.Unlock()
	return c.reload(ctx)
}

// needsRefresh is the age check consulted by every read. An empty
// snapshot is always refreshed, so a failed cold start retries on the
// next request instead of pinning an empty dataset for a TTL window.
func (c *Cache) needsRefresh(snap *model.Snapshot) bool {
	if snap == nil || snap.Rows() == 0 {
		return true
	}
	return c.now().Sub(snap.LoadedAt) >= c.ttl
}

func (c *Cache) reload(ctx context.Context) *model.Snapshot {
	now := c.now()

	snap, err := loader.Load(ctx, c.src, now)
	if err != nil {
		failed := c.failedSnapshot(err, now)
		c.publish(failed)
		slog.Warn("dataset reload failed",
			"source", c.src.Name(),
			"rows_kept", failed.Rows(),
			"error", err,
		)
		return failed
	}

	c.publish(snap)
	slog.Info("dataset loaded",
		"source", snap.Source,
		"rows", snap.Rows(),
		"model_col", snap.ModelColumn,
	)
	return snap
}

// failedSnapshot carries the previous records forward under the prior
// generation ID, stamping the attempt time so retries are throttled to
// one per TTL window while data is present.
func (c *Cache) failedSnapshot(err error, now time.Time) *model.Snapshot {
	failed := &model.Snapshot{
		LoadedAt: now,
		Err:      err.Error(),
		Source:   c.src.Name(),
	}
	if prior := c.Snapshot(); prior != nil {
		failed.ID = prior.ID
		failed.Records = prior.Records
		failed.ModelColumn = prior.ModelColumn
	}
	return failed
}

func (c *Cache) publish(snap *model.Snapshot) {
	c.mu.Lock()
	c.snap = snap
	c.mu.Unlock()
}
