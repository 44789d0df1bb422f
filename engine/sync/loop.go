package sync

import (
	"context"
	"fmt"
	"log"
	"sort"

	"github.com/robfig/cron/v3"

	"orbitalmap/engine/anchors"
	"orbitalmap/engine/apiclient"
	"orbitalmap/engine/model"
	"orbitalmap/engine/projection"
)

// Loop drives the three independent sync cadences described in
// spec.md §4.7 via github.com/robfig/cron/v3 `@every` jobs, instead of
// hand-rolled time.Ticker loops, matching the ecosystem idiom for
// recurring jobs (adopted from eveonline-it-go-falcon's scheduler).
type Loop struct {
	client      *apiclient.Client
	cron        *cron.Cron
	coal        *Coalescer
	clock       *ServerClock
	anchorCache *anchors.Cache

	ringCenters map[string]string // orbit ring id -> center body id

	OnLocations func([]model.Location)
	OnState     func(apiclient.StateResponse)
	OnOrg       func(apiclient.OrgSummary)
	OnError     func(task string, err error)
}

// NewLoop builds a sync loop against client. ringCenters classifies
// fetched locations the same way the rest of the engine does.
// anchorCache may be nil, in which case the state cadence never primes
// transit anchors (tests exercising the loop without a cache).
func NewLoop(client *apiclient.Client, ringCenters map[string]string, anchorCache *anchors.Cache) *Loop {
	return &Loop{
		client:      client,
		cron:        cron.New(),
		coal:        NewCoalescer(),
		clock:       NewServerClock(),
		anchorCache: anchorCache,
		ringCenters: ringCenters,
	}
}

// Clock exposes the server-time estimator for the render loop.
func (l *Loop) Clock() *ServerClock { return l.clock }

// Start registers the three cadences and begins running them. The
// returned error is from AddFunc registration only; per-tick failures
// are logged and never stop subsequent ticks (spec.md §7).
func (l *Loop) Start(ctx context.Context) error {
	if _, err := l.cron.AddFunc("@every 5s", l.wrap("locations", func() error { return l.syncLocations(ctx) })); err != nil {
		return fmt.Errorf("sync: register locations job: %w", err)
	}
	if _, err := l.cron.AddFunc("@every 1s", l.wrap("state", func() error { return l.syncState(ctx) })); err != nil {
		return fmt.Errorf("sync: register state job: %w", err)
	}
	if _, err := l.cron.AddFunc("@every 30s", l.wrap("org", func() error { return l.syncOrg(ctx) })); err != nil {
		return fmt.Errorf("sync: register org job: %w", err)
	}
	l.cron.Start()
	return nil
}

// Stop halts all cadences and waits for any in-flight job to finish.
func (l *Loop) Stop() {
	<-l.cron.Stop().Done()
}

// wrap coalesces a named task through the singleton-promise coalescer
// and recovers panics so one bad tick never kills the scheduler,
// mirroring robfig/cron's own per-job recovery plus spec.md §7's
// "every periodic task is wrapped so exceptions are logged and do not
// stop subsequent ticks".
func (l *Loop) wrap(name string, fn func() error) func() {
	return func() {
		defer func() {
			if r := recover(); r != nil {
				l.reportError(name, fmt.Errorf("panic: %v", r))
			}
		}()
		_, err := l.coal.Do(name, func() (interface{}, error) { return nil, fn() })
		if err != nil {
			l.reportError(name, err)
		}
	}
}

func (l *Loop) reportError(task string, err error) {
	if l.OnError != nil {
		l.OnError(task, err)
		return
	}
	log.Printf("sync: %s: %v", task, err)
}

func (l *Loop) syncLocations(ctx context.Context) error {
	t := l.clock.Estimate()
	raw, err := l.client.Locations(ctx, true, &t)
	if err != nil {
		return fmt.Errorf("locations: %w", err)
	}
	idx := model.NewIndex(raw)
	classified := model.ClassifyAll(idx, l.ringCenters)
	if l.OnLocations != nil {
		l.OnLocations(classified)
	}
	return nil
}

func (l *Loop) syncState(ctx context.Context) error {
	resp, err := l.client.State(ctx)
	if err != nil {
		return fmt.Errorf("state: %w", err)
	}
	l.clock.Sync(resp.ServerTime, resp.TimeScale)
	sort.Slice(resp.Ships, func(i, j int) bool { return resp.Ships[i].ID < resp.Ships[j].ID })

	if l.anchorCache != nil {
		var buckets []int64
		for _, ship := range resp.Ships {
			buckets = append(buckets, anchors.LegBuckets(ship)...)
		}
		if len(buckets) > 0 {
			if err := l.anchorCache.EnsureAll(ctx, buckets, l.projectRaw); err != nil {
				l.reportError("anchors", err)
			}
		}
	}

	if l.OnState != nil {
		l.OnState(resp)
	}
	return nil
}

// projectRaw classifies and projects a raw (unclassified) location
// snapshot the same way syncLocations does, so anchor cache buckets
// carry fully projected world positions (spec.md §4.2).
func (l *Loop) projectRaw(raw []model.Location) []model.Location {
	idx := model.NewIndex(raw)
	classified := model.ClassifyAll(idx, l.ringCenters)
	return projection.Project(classified)
}

func (l *Loop) syncOrg(ctx context.Context) error {
	org, err := l.client.Org(ctx)
	if err != nil {
		return fmt.Errorf("org: %w", err)
	}
	if l.OnOrg != nil {
		l.OnOrg(org)
	}
	return nil
}
