package stats

import (
	"context"
	"sort"
	"sync"
	"time"
)

// unitKey identifies one pending recompute. Duplicate events for the same
// entity collapse onto a single key while they wait out the window.
type unitKey struct {
	kind    string
	id      uint
	anidbID int
	hash    string
}

// Debouncer batches recompute triggers. Import and scan pipelines emit
// bursts of events for the same series; instead of recomputing per event,
// callers queue here and the debouncer drains every pending entity once
// per window.
type Debouncer struct {
	cache  *Cache
	window time.Duration

	mu      sync.Mutex
	pending map[unitKey]struct{}

	kick chan struct{}
	wg   sync.WaitGroup
}

// NewDebouncer creates a stopped debouncer; call Run to start draining.
func NewDebouncer(cache *Cache, window time.Duration) *Debouncer {
	if window <= 0 {
		window = time.Second
	}
	return &Debouncer{
		cache:   cache,
		window:  window,
		pending: make(map[unitKey]struct{}),
		kick:    make(chan struct{}, 1),
	}
}

// QueueGroup schedules a recompute for a restructured group.
func (d *Debouncer) QueueGroup(groupID uint) {
	d.enqueue(unitKey{kind: "group", id: groupID})
}

// QueueSeries schedules a recompute for a changed series.
func (d *Debouncer) QueueSeries(seriesID uint) {
	d.enqueue(unitKey{kind: "series", id: seriesID})
}

// QueueFile schedules a recompute for a hashed or relinked file.
func (d *Debouncer) QueueFile(hash string) {
	d.enqueue(unitKey{kind: "file", hash: hash})
}

// QueueCatalogEntry schedules a recompute for a refreshed title.
func (d *Debouncer) QueueCatalogEntry(anidbID int) {
	d.enqueue(unitKey{kind: "catalog_entry", anidbID: anidbID})
}

func (d *Debouncer) enqueue(key unitKey) {
	d.mu.Lock()
	d.pending[key] = struct{}{}
	d.mu.Unlock()

	select {
	case d.kick <- struct{}{}:
	default:
	}
}

// Run drains batches until the context is cancelled, then performs one
// final drain so queued work is not lost on shutdown.
func (d *Debouncer) Run(ctx context.Context) {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		for {
			select {
			case <-ctx.Done():
				d.Flush(context.Background())
				return
			case <-d.kick:
			}

			timer := time.NewTimer(d.window)
			select {
			case <-ctx.Done():
				timer.Stop()
				d.Flush(context.Background())
				return
			case <-timer.C:
			}

			d.Flush(ctx)
		}
	}()
}

// Wait blocks until the drain goroutine has exited after cancellation.
func (d *Debouncer) Wait() {
	d.wg.Wait()
}

// Flush drains everything currently pending, one recompute per coalesced
// entity, in a stable order. Failures are already logged by the cache;
// the batch keeps going so one bad entity cannot starve the rest.
func (d *Debouncer) Flush(ctx context.Context) {
	d.mu.Lock()
	batch := d.pending
	d.pending = make(map[unitKey]struct{})
	d.mu.Unlock()

	if len(batch) == 0 {
		return
	}

	keys := make([]unitKey, 0, len(batch))
	for key := range batch {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, b := keys[i], keys[j]
		if a.kind != b.kind {
			return a.kind < b.kind
		}
		if a.id != b.id {
			return a.id < b.id
		}
		if a.anidbID != b.anidbID {
			return a.anidbID < b.anidbID
		}
		return a.hash < b.hash
	})

	for _, key := range keys {
		d.dispatch(ctx, key)
	}
}

func (d *Debouncer) dispatch(ctx context.Context, key unitKey) {
	switch key.kind {
	case "group":
		_ = d.cache.UpdateUsingGroup(ctx, key.id)
	case "series":
		_ = d.cache.UpdateUsingSeries(ctx, key.id)
	case "file":
		_ = d.cache.UpdateUsingFile(ctx, key.hash)
	case "catalog_entry":
		_ = d.cache.UpdateUsingCatalogEntry(ctx, key.anidbID)
	}
}

// PendingCount reports how many coalesced entities are waiting.
func (d *Debouncer) PendingCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.pending)
}
