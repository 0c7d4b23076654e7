package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"mytargets/domain"
	"mytargets/helpers"
	"mytargets/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/google/uuid"
)

// Write kinds reported to Metrics.ObserveWrite.
const (
	writeKindManifest = "manifest"
	writeKindFallback = "fallback"
)

// PollerConfig holds the poller's tunables.
type PollerConfig struct {
	// Interval between cycle starts.
	Interval time.Duration
	// HostAlias replaces localhost/127.0.0.1 in scrape addresses.
	HostAlias string
	// AllowOverlap lets a tick start a cycle while the previous one is still running.
	AllowOverlap bool
	// SnapshotKey and SnapshotTTL are used when a publisher is configured.
	SnapshotKey string
	SnapshotTTL time.Duration
}

// Poller keeps the Prometheus targets file in sync with the gateway registry.
// A cycle fetches the registry, builds the manifest, and writes it only when its fingerprint changed.
// On any registry failure it writes [] so Prometheus never scrapes stale targets.
type Poller struct {
	registry  interfaces.Registry
	store     interfaces.ManifestStore
	publisher interfaces.Cache[domain.Snapshot]
	metrics   *Metrics
	clock     interfaces.TimeProvider
	logger    log.Logger
	cfg       PollerConfig

	inFlight atomic.Bool

	// mu guards the compare -> write -> update sequence and the snapshot.
	mu          sync.Mutex
	fingerprint string
	snapshot    domain.Snapshot
	cycles      int
}

// NewPoller creates a Poller. publisher may be nil, which disables snapshot publishing.
// Panics on a nil registry, store, metrics, clock or logger, on a non-positive interval and on an empty host alias.
func NewPoller(
	registry interfaces.Registry,
	store interfaces.ManifestStore,
	publisher interfaces.Cache[domain.Snapshot],
	metrics *Metrics,
	clock interfaces.TimeProvider,
	logger log.Logger,
	cfg PollerConfig,
) *Poller {
	cfg.Interval = helpers.PositivePanic(cfg.Interval, "service.poller.go: interval must be positive")
	cfg.HostAlias = helpers.StrPanic(cfg.HostAlias, "service.poller.go: host alias is required")
	if publisher != nil {
		cfg.SnapshotKey = helpers.StrPanic(cfg.SnapshotKey, "service.poller.go: snapshot key is required")
		cfg.SnapshotTTL = helpers.PositivePanic(cfg.SnapshotTTL, "service.poller.go: snapshot ttl must be positive")
	}
	return &Poller{
		registry:  helpers.NilPanic(registry, "service.poller.go: registry is required"),
		store:     helpers.NilPanic(store, "service.poller.go: store is required"),
		publisher: publisher,
		metrics:   helpers.NilPanic(metrics, "service.poller.go: metrics is required"),
		clock:     helpers.NilPanic(clock, "service.poller.go: clock is required"),
		logger:    log.With(helpers.NilPanic(logger, "service.poller.go: logger is required"), "component", "Poller"),
		cfg:       cfg,
	}
}

// Run runs a cycle immediately and then one per Interval until ctx is cancelled.
// Without AllowOverlap a tick that finds a cycle in flight is skipped. Run waits for running
// cycles before returning; their registry requests see the same cancelled ctx.
func (p *Poller) Run(ctx context.Context) error {
	level.Info(p.logger).Log(
		"msg", "service discovery started",
		"interval", p.cfg.Interval,
		"allow_overlap", p.cfg.AllowOverlap,
		"targets_file", p.store.Location(),
	)

	var wg sync.WaitGroup
	p.tick(ctx, &wg)

	ticker := time.NewTicker(p.cfg.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			wg.Wait()
			level.Info(p.logger).Log("msg", "service discovery stopped")
			return nil
		case <-ticker.C:
			p.tick(ctx, &wg)
		}
	}
}

func (p *Poller) tick(ctx context.Context, wg *sync.WaitGroup) {
	if ctx.Err() != nil {
		return
	}
	if !p.cfg.AllowOverlap && !p.inFlight.CompareAndSwap(false, true) {
		level.Warn(p.logger).Log("msg", "previous cycle still running, skipping tick")
		p.metrics.SkippedTick()
		return
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		if !p.cfg.AllowOverlap {
			defer p.inFlight.Store(false)
		}
		p.RunCycle(ctx)
	}()
}

// RunCycle performs one fetch -> build -> persist cycle. It never returns an error: failures are
// logged, counted and reported in the result.
func (p *Poller) RunCycle(ctx context.Context) domain.CycleResult {
	res := domain.CycleResult{ID: uuid.NewString(), StartedAt: p.clock.Now()}
	logger := log.With(p.logger, "cycle_id", res.ID)
	level.Debug(logger).Log("msg", "polling registry for active servers")

	fetchStart := time.Now()
	resp, err := p.registry.FetchServers(ctx)
	p.metrics.ObserveFetch(time.Since(fetchStart))
	if err != nil && ctx.Err() != nil && errors.Is(err, ctx.Err()) {
		level.Info(logger).Log("msg", "cycle cancelled", "err", err)
		res.Outcome = domain.CycleCancelled
		res.Err = err
		res.FinishedAt = p.clock.Now()
		return res
	}
	if err == nil {
		err = RegistryFailure(resp)
	}
	if err != nil {
		level.Error(logger).Log("msg", "error during service discovery", "code", ToMyErrorCode(err), "err", err)
		res.Err = err
		res.Outcome = domain.CycleFallback
		if werr := p.writeFallback(ctx); werr != nil {
			level.Error(logger).Log("msg", "failed to write empty targets file", "file", p.store.Location(), "err", werr)
			res.Outcome = domain.CycleFallbackFailed
		} else {
			level.Info(logger).Log("msg", "empty targets file written to prevent stale targets", "file", p.store.Location())
		}
		return p.finish(ctx, logger, res)
	}

	manifest := BuildManifest(resp, p.cfg.HostAlias)
	res.Count = len(manifest)
	outcome, err := p.persist(ctx, manifest)
	switch {
	case err != nil:
		level.Error(logger).Log("msg", "failed to write targets file", "file", p.store.Location(), "err", err)
		res.Outcome = domain.CyclePersistFailed
		res.Err = err
	case outcome.Kind == domain.WriteKindWritten:
		level.Info(logger).Log("msg", "discovery completed", "active", outcome.Count, "file", p.store.Location())
		res.Outcome = domain.CycleWritten
	default:
		level.Info(logger).Log("msg", "no changes detected, skipping file write", "active", len(manifest))
		res.Outcome = domain.CycleSkipped
	}
	p.logSummary(logger, resp, manifest)
	return p.finish(ctx, logger, res)
}

// persist writes manifest unless it matches the last written fingerprint.
// On a failed write the fingerprint is kept, so the next cycle retries the same content.
func (p *Poller) persist(ctx context.Context, manifest domain.Manifest) (domain.WriteOutcome, error) {
	data, err := EncodeManifest(manifest)
	if err != nil {
		return domain.WriteOutcome{}, err
	}
	fingerprint := Fingerprint(data)

	p.mu.Lock()
	defer p.mu.Unlock()
	if fingerprint == p.fingerprint {
		return domain.WriteOutcome{Kind: domain.WriteKindSkipped, Count: len(manifest)}, nil
	}
	err = p.store.Write(ctx, data)
	p.metrics.ObserveWrite(writeKindManifest, err)
	if err != nil {
		return domain.WriteOutcome{}, NewFilesystemError("write targets file", err)
	}
	p.recordWriteLocked(fingerprint, manifest)
	return domain.WriteOutcome{Kind: domain.WriteKindWritten, Count: len(manifest)}, nil
}

// writeFallback writes [] without looking at the fingerprint. After a successful write the
// fingerprint is the one of [], so it always describes what is on disk.
func (p *Poller) writeFallback(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	err := p.store.Write(ctx, emptyManifest)
	p.metrics.ObserveWrite(writeKindFallback, err)
	if err != nil {
		return NewFilesystemError("write empty targets file", err)
	}
	p.recordWriteLocked(Fingerprint(emptyManifest), domain.Manifest{})
	return nil
}

func (p *Poller) recordWriteLocked(fingerprint string, manifest domain.Manifest) {
	p.fingerprint = fingerprint
	p.snapshot.Fingerprint = fingerprint
	p.snapshot.Targets = manifest
	p.snapshot.UpdatedAt = p.clock.Now()
	p.metrics.SetTargets(len(manifest))
}

func (p *Poller) finish(ctx context.Context, logger log.Logger, res domain.CycleResult) domain.CycleResult {
	res.FinishedAt = p.clock.Now()
	p.metrics.ObserveCycle(res)

	p.mu.Lock()
	p.cycles++
	p.snapshot.Healthy = res.Outcome == domain.CycleWritten || res.Outcome == domain.CycleSkipped
	p.snapshot.LastCycle = res.Outcome
	p.snapshot.LastCycleAt = res.FinishedAt
	p.snapshot.Duration = res.FinishedAt.Sub(res.StartedAt)
	p.snapshot.LastError = ""
	if res.Err != nil {
		p.snapshot.LastError = res.Err.Error()
	}
	snapshot := p.snapshot
	p.mu.Unlock()

	p.publish(ctx, logger, snapshot)
	return res
}

func (p *Poller) publish(ctx context.Context, logger log.Logger, snapshot domain.Snapshot) {
	if p.publisher == nil || ctx.Err() != nil {
		return
	}
	if err := p.publisher.WriteValue(ctx, p.cfg.SnapshotKey, snapshot, int(p.cfg.SnapshotTTL.Milliseconds())); err != nil {
		level.Warn(logger).Log("msg", "failed to publish snapshot", "key", p.cfg.SnapshotKey, "err", err)
	}
}

func (p *Poller) logSummary(logger log.Logger, resp *domain.RegistryResponse, manifest domain.Manifest) {
	if len(manifest) == 0 {
		level.Warn(logger).Log(
			"msg", "no active servers found in gateway",
			"registry_total", resp.TotalServers,
			"registry_active", resp.ActiveServers,
		)
		return
	}
	for _, target := range manifest {
		level.Info(logger).Log(
			"msg", "target generated for scraping",
			"address", target.Address(),
			"server_name", target.Labels.ServerName,
			"server_id", target.Labels.ServerID,
		)
	}
}

// Snapshot returns the current snapshot, and false until the first cycle has finished.
func (p *Poller) Snapshot() (domain.Snapshot, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.snapshot, p.cycles > 0
}

// Close withdraws the published snapshot. It is a no-op without a publisher.
func (p *Poller) Close(ctx context.Context) error {
	if p.publisher == nil {
		return nil
	}
	if err := p.publisher.DeleteValue(ctx, p.cfg.SnapshotKey); err != nil {
		return err
	}
	level.Info(p.logger).Log("msg", "published snapshot withdrawn", "key", p.cfg.SnapshotKey)
	return nil
}
