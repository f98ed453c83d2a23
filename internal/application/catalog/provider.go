package catalog

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/jaras-platform/jaras/internal/domain/catalog"
	"github.com/jaras-platform/jaras/internal/infrastructure/metrics"
	"github.com/jaras-platform/jaras/internal/shared/goroutine"
	"github.com/jaras-platform/jaras/internal/shared/logger"
)

// Status is the lifecycle of the shared catalog snapshot.
type Status string

const (
	StatusLoading Status = "loading"
	StatusReady   Status = "ready"
	StatusFailed  Status = "failed"
)

const loadKey = "catalog"

// SnapshotCache is the optional second-level store consulted before the
// source. Get returns nil, nil on a miss.
type SnapshotCache interface {
	Get(ctx context.Context) (*catalog.Snapshot, error)
	Set(ctx context.Context, snap *catalog.Snapshot) error
	Invalidate(ctx context.Context) error
}

// Provider loads the catalog once and hands the same immutable snapshot to
// every request. A failed load stays failed until Reload.
type Provider struct {
	source catalog.Source
	cache  SnapshotCache
	logger logger.Interface

	group singleflight.Group

	mu       sync.RWMutex
	status   Status
	snapshot *catalog.Snapshot
	err      error

	// generation is bumped by Reload; results of older loads are dropped.
	generation uint64
}

// NewProvider builds a provider in the loading state. cache may be nil.
func NewProvider(source catalog.Source, cache SnapshotCache, log logger.Interface) *Provider {
	return &Provider{
		source: source,
		cache:  cache,
		logger: log,
		status: StatusLoading,
	}
}

// Start loads the catalog in the background so the first request does not
// pay for it.
func (p *Provider) Start(ctx context.Context) {
	goroutine.SafeGo(p.logger, "catalog-initial-load", func() {
		if _, err := p.Snapshot(ctx); err != nil {
			p.logger.Errorw("initial catalog load failed", "error", err)
		}
	})
}

// Status reports the current state and, when failed, the load error.
func (p *Provider) Status() (Status, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.status, p.err
}

// Snapshot returns the loaded snapshot, loading it on first use. Concurrent
// callers share one load.
func (p *Provider) Snapshot(ctx context.Context) (*catalog.Snapshot, error) {
	if snap, err, done := p.current(); done {
		return snap, err
	}

	ch := p.group.DoChan(loadKey, func() (interface{}, error) {
		if snap, err, done := p.current(); done {
			return snap, err
		}
		// Detached from the caller so one cancelled request does not fail
		// the load for everyone waiting on it.
		return p.load(context.WithoutCancel(ctx), p.currentGeneration())
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*catalog.Snapshot), nil
	}
}

// Reload drops the snapshot and the cached copy, then loads again.
func (p *Provider) Reload(ctx context.Context) (*catalog.Snapshot, error) {
	p.mu.Lock()
	p.generation++
	p.status = StatusLoading
	p.snapshot = nil
	p.err = nil
	p.mu.Unlock()
	p.group.Forget(loadKey)

	if p.cache != nil {
		if err := p.cache.Invalidate(ctx); err != nil {
			p.logger.Warnw("failed to invalidate catalog cache", "error", err)
		}
	}

	p.logger.Infow("catalog reload requested")
	return p.Snapshot(ctx)
}

func (p *Provider) currentGeneration() uint64 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.generation
}

func (p *Provider) current() (*catalog.Snapshot, error, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	switch p.status {
	case StatusReady:
		return p.snapshot, nil, true
	case StatusFailed:
		return nil, p.err, true
	}
	return nil, nil, false
}

func (p *Provider) load(ctx context.Context, gen uint64) (*catalog.Snapshot, error) {
	if snap := p.fromCache(ctx); snap != nil {
		p.setReady(gen, snap)
		metrics.RecordCatalogLoad("cache", 0, len(snap.Plans()), len(snap.Addons()))
		p.logger.Infow("catalog loaded from cache",
			"plans", len(snap.Plans()),
			"addons", len(snap.Addons()))
		return snap, nil
	}

	start := time.Now()

	var (
		plans  []*catalog.Plan
		addons []*catalog.Addon
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		plans, err = p.source.ListActivePlans(gctx)
		if err != nil {
			return fmt.Errorf("failed to list plans: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		addons, err = p.source.ListActiveAddons(gctx)
		if err != nil {
			return fmt.Errorf("failed to list add-ons: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		loadErr := fmt.Errorf("%w: %v", catalog.ErrCatalogUnavailable, err)
		p.setFailed(gen, loadErr)
		metrics.RecordCatalogLoad("failure", time.Since(start), 0, 0)
		p.logger.Errorw("catalog load failed", "error", err)
		return nil, loadErr
	}

	snap := catalog.NewSnapshot(plans, addons)
	if !p.setReady(gen, snap) {
		p.logger.Infow("discarding catalog superseded by a reload",
			"plans", len(snap.Plans()),
			"addons", len(snap.Addons()))
		return snap, nil
	}
	metrics.RecordCatalogLoad("success", time.Since(start), len(snap.Plans()), len(snap.Addons()))
	p.logger.Infow("catalog loaded",
		"plans", len(snap.Plans()),
		"addons", len(snap.Addons()),
		"duration", time.Since(start))

	if p.cache != nil {
		if err := p.cache.Set(ctx, snap); err != nil {
			p.logger.Warnw("failed to cache catalog", "error", err)
		}
	}

	return snap, nil
}

func (p *Provider) fromCache(ctx context.Context) *catalog.Snapshot {
	if p.cache == nil {
		return nil
	}
	snap, err := p.cache.Get(ctx)
	switch {
	case err != nil:
		metrics.RecordCacheLookup("error")
		p.logger.Warnw("catalog cache lookup failed", "error", err)
		return nil
	case snap == nil:
		metrics.RecordCacheLookup("miss")
		return nil
	}
	metrics.RecordCacheLookup("hit")
	return snap
}

// setReady and setFailed report false when a Reload started after the load
// for gen, in which case the state is left alone.
func (p *Provider) setReady(gen uint64, snap *catalog.Snapshot) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if gen != p.generation {
		return false
	}
	p.status = StatusReady
	p.snapshot = snap
	p.err = nil
	return true
}

func (p *Provider) setFailed(gen uint64, err error) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if gen != p.generation {
		return false
	}
	p.status = StatusFailed
	p.snapshot = nil
	p.err = err
	return true
}

// IsUnavailable reports whether err came from a failed catalog load.
func IsUnavailable(err error) bool {
	return errors.Is(err, catalog.ErrCatalogUnavailable)
}
