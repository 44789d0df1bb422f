// Package anchors implements the transit-anchor snapshot cache from
// spec.md §4.2: a bounded LRU of time-bucketed projected-location
// snapshots that answers "where will location L be at game time T?" so
// interplanetary transit arcs can target future body positions.
package anchors

import (
	"container/list"
	"context"
	"math"
	"sync"

	"orbitalmap/engine/model"
)

// BucketSeconds is the game-time bucket width (6 hours), per spec.md §3.
const BucketSeconds = 21600

// MaxBuckets bounds the LRU, per spec.md §3/§8.
const MaxBuckets = 16

// Bucket returns floor(t / BucketSeconds).
func Bucket(gameTimeSeconds float64) int64 {
	return int64(math.Floor(gameTimeSeconds / BucketSeconds))
}

// BucketCenter returns the game-time seconds at the middle of a bucket,
// used as the `t` query parameter for `/api/locations?dynamic=1&t=...`.
func BucketCenter(bucket int64) float64 {
	return float64(bucket)*BucketSeconds + BucketSeconds/2
}

// Fetcher resolves the raw (unprojected) location set as it will be at
// the given game time. Production code backs this with engine/apiclient;
// tests supply a stub.
type Fetcher func(ctx context.Context, gameTimeSeconds float64) ([]model.Location, error)

// entry is the LRU payload for one bucket.
type entry struct {
	bucket int64
	snap   model.AnchorSnapshot
}

// Cache is the bounded, deduplicating anchor snapshot store described in
// spec.md §4.2. It is safe for concurrent use: mu guards the LRU list,
// the bucket index and the in-flight map, and EnsureAll fetches its
// buckets on separate goroutines.
type Cache struct {
	mu       sync.Mutex
	fetch    Fetcher
	ll       *list.List // front = most recently used
	elements map[int64]*list.Element

	inFlight map[int64]*inflightCall // per-bucket request coalescing
}

// inflightCall is a singleflight-style coalesced request: every caller
// for the same bucket waits on done closing, then reads the one shared
// result.
type inflightCall struct {
	done chan struct{}
	err  error
}

// New creates an anchor cache backed by fetch.
func New(fetch Fetcher) *Cache {
	return &Cache{
		fetch:    fetch,
		ll:       list.New(),
		elements: make(map[int64]*list.Element),
		inFlight: make(map[int64]*inflightCall),
	}
}

// Get returns the stored projected position for location id in the
// bucket containing gameTimeSeconds, or (Point{}, false) if that bucket
// has not been ensured yet.
func (c *Cache) Get(id string, gameTimeSeconds float64) (model.Point, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	b := Bucket(gameTimeSeconds)
	el, ok := c.elements[b]
	if !ok {
		return model.Point{}, false
	}
	c.ll.MoveToFront(el)
	p, ok := el.Value.(*entry).snap[id]
	return p, ok
}

// Ensure fetches and stores the given bucket if absent, deduplicating
// concurrent callers for the same bucket onto a single in-flight request
// (spec.md §4.2, "ensure deduplicates in-flight requests per bucket").
func (c *Cache) Ensure(ctx context.Context, bucket int64, project func([]model.Location) []model.Location) error {
	c.mu.Lock()
	if _, ok := c.elements[bucket]; ok {
		c.ll.MoveToFront(c.elements[bucket])
		c.mu.Unlock()
		return nil
	}
	if call, ok := c.inFlight[bucket]; ok {
		c.mu.Unlock()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-call.done:
			return call.err
		}
	}
	call := &inflightCall{done: make(chan struct{})}
	c.inFlight[bucket] = call
	c.mu.Unlock()

	raw, err := c.fetch(ctx, BucketCenter(bucket))
	if err == nil {
		projected := project(raw)
		snap := make(model.AnchorSnapshot, len(projected))
		for _, l := range projected {
			snap[l.ID] = model.Point{X: l.RX, Y: l.RY}
		}
		c.store(bucket, snap)
	}
	call.err = err

	c.mu.Lock()
	delete(c.inFlight, bucket)
	c.mu.Unlock()
	close(call.done)
	return err
}

// EnsureAll ensures every bucket in buckets concurrently, returning the
// first error encountered (if any). Used by the sync loop after every
// ship-list update (spec.md §4.2).
func (c *Cache) EnsureAll(ctx context.Context, buckets []int64, project func([]model.Location) []model.Location) error {
	type result struct{ err error }
	results := make(chan result, len(buckets))
	seen := make(map[int64]bool, len(buckets))
	for _, b := range buckets {
		if seen[b] {
			continue
		}
		seen[b] = true
		b := b
		go func() {
			results <- result{c.Ensure(ctx, b, project)}
		}()
	}
	var firstErr error
	for range seen {
		if r := <-results; r.err != nil && firstErr == nil {
			firstErr = r.err
		}
	}
	return firstErr
}

func (c *Cache) store(bucket int64, snap model.AnchorSnapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.elements[bucket]; ok {
		el.Value.(*entry).snap = snap
		c.ll.MoveToFront(el)
		return
	}
	el := c.ll.PushFront(&entry{bucket: bucket, snap: snap})
	c.elements[bucket] = el

	for c.ll.Len() > MaxBuckets {
		oldest := c.ll.Back()
		if oldest == nil {
			break
		}
		c.ll.Remove(oldest)
		delete(c.elements, oldest.Value.(*entry).bucket)
	}
}

// Len returns the number of buckets currently cached.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ll.Len()
}

// LegBuckets returns the set of buckets a ship's transfer legs and
// overall departure/arrival span touch, per spec.md §4.2 ("the set of
// buckets derived from every leg's departure_time and arrival_time (and
// the ship-level departed_at/arrives_at) is ensured in parallel").
func LegBuckets(ship model.Ship) []int64 {
	var times []float64
	if ship.Status == model.StatusTransit {
		times = append(times, ship.DepartedAt, ship.ArrivesAt)
	}
	for _, leg := range ship.TransferLegs {
		times = append(times, leg.DepartureTime, leg.ArrivalTime)
	}
	seen := make(map[int64]bool, len(times))
	var buckets []int64
	for _, t := range times {
		b := Bucket(t)
		if !seen[b] {
			seen[b] = true
			buckets = append(buckets, b)
		}
	}
	return buckets
}
