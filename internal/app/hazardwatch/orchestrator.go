package hazardwatch

import (
	"context"
	"sync"
	"time"

	"github.com/diwise/hazard-watch/internal/app/hazardwatch/clip"
	"github.com/diwise/hazard-watch/internal/app/hazardwatch/cluster"
	"github.com/diwise/hazard-watch/internal/pkg/fetch"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/paulmach/orb/geojson"
)

// SyncOptions are the orchestrator tunables, derived from Config.
type SyncOptions struct {
	Debounce     time.Duration
	MinZoom      int
	TTL          time.Duration
	Timeout      time.Duration
	KeyPrecision int
}

// Orchestrator drives the viewport sync state machine. Viewport events are
// debounced, evaluated against the last rendered key, fetched through the
// TTL cache with supersession of outstanding requests, then clipped,
// clustered and handed to the renderer.
type Orchestrator struct {
	ctx  context.Context
	opts SyncOptions

	cache     *fetch.Cache
	source    ViewportSource
	fallback  func() *geojson.FeatureCollection
	region    func() *clip.Region
	clusterer *cluster.Clusterer
	renderer  Renderer

	mu       sync.Mutex
	timer    *time.Timer
	cancel   context.CancelFunc
	seq      uint64
	pending  uint64
	rendered string
	state    SyncState
	health   SourceHealth
	offline  bool
}

func NewOrchestrator(ctx context.Context, opts SyncOptions, cache *fetch.Cache, source ViewportSource, fallback func() *geojson.FeatureCollection, region func() *clip.Region, clusterer *cluster.Clusterer, renderer Renderer) *Orchestrator {
	if region == nil {
		region = func() *clip.Region { return nil }
	}

	return &Orchestrator{
		ctx:       ctx,
		opts:      opts,
		cache:     cache,
		source:    source,
		fallback:  fallback,
		region:    region,
		clusterer: clusterer,
		renderer:  renderer,
		state:     StateIdle,
		health:    HealthLive,
	}
}

// OnViewportChanged (re)starts the debounce timer. A burst of events
// coalesces into a single evaluation of the last viewport.
func (o *Orchestrator) OnViewportChanged(vp Viewport) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.timer != nil {
		o.timer.Stop()
	}

	o.timer = time.AfterFunc(o.opts.Debounce, func() {
		o.evaluate(vp)
	})
}

func (o *Orchestrator) evaluate(vp Viewport) {
	o.mu.Lock()

	if vp.Zoom < o.opts.MinZoom {
		o.abortLocked()
		o.state = StatePaused
		o.health = HealthPaused
		o.rendered = ""
		o.mu.Unlock()

		o.renderer.RenderPoints(o.ctx, geojson.NewFeatureCollection())
		return
	}

	key := vp.Key(o.opts.KeyPrecision)
	if key == o.rendered {
		o.state = StateIdle
		o.mu.Unlock()
		return
	}

	o.abortLocked()

	fetchCtx, cancel := context.WithCancel(o.ctx)
	o.cancel = cancel

	// Each fetch carries its own sequence number. Comparing sequence
	// rather than key keeps a stale fetch for a re-issued key from
	// touching the state of its successor.
	o.seq++
	seq := o.seq
	o.pending = seq
	o.state = StateFetching
	offline := o.offline
	o.mu.Unlock()

	go o.fetch(fetchCtx, seq, key, vp, offline)
}

func (o *Orchestrator) fetch(ctx context.Context, seq uint64, key string, vp Viewport, offline bool) {
	log := logging.GetFromContext(ctx)

	var fc *geojson.FeatureCollection
	health := HealthLive

	if offline {
		fc = o.fallback()
		health = HealthOffline
	} else {
		payload, err := o.cache.Get(ctx, key, func(ctx context.Context) (any, error) {
			return o.source.Fetch(ctx, vp)
		}, o.opts.TTL, o.opts.Timeout)

		if err != nil {
			if fetch.IsSuperseded(err) {
				o.mu.Lock()
				if o.pending == seq {
					o.pending = 0
					o.state = StateIdle
					o.health = HealthAborted
				}
				o.mu.Unlock()
				return
			}

			log.Warn("viewport fetch failed, using fallback data", "key", key, "err", err.Error())
			fc = o.fallback()
			health = HealthFallback
		} else {
			fc = payload.(*geojson.FeatureCollection)
		}
	}

	clipped := clip.Filter(fc, o.region())
	buckets := o.clusterer.Partition(clipped, vp.Zoom)

	o.mu.Lock()
	if o.pending != seq {
		// a newer fetch took over while we were clustering
		o.mu.Unlock()
		return
	}
	o.pending = 0
	o.cancel = nil
	o.rendered = key
	o.state = StateIdle
	o.health = health
	o.mu.Unlock()

	if hasClusters(buckets) {
		o.renderer.RenderClusters(o.ctx, buckets)
	} else {
		o.renderer.RenderPoints(o.ctx, clipped)
	}
}

func hasClusters(buckets []cluster.Bucket) bool {
	for _, b := range buckets {
		if b.Count > 1 {
			return true
		}
	}
	return false
}

// SetOffline toggles offline mode. The cache and the rendered key are
// reset so the next evaluation resolves from scratch.
func (o *Orchestrator) SetOffline(offline bool) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.offline = offline
	o.cache.Reset()
	o.rendered = ""
	o.abortLocked()

	if offline {
		o.health = HealthOffline
	}
}

func (o *Orchestrator) Offline() bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	return o.offline
}

func (o *Orchestrator) State() SyncState {
	o.mu.Lock()
	defer o.mu.Unlock()

	return o.state
}

func (o *Orchestrator) Health() SourceHealth {
	o.mu.Lock()
	defer o.mu.Unlock()

	return o.health
}

// Close stops the debounce timer and aborts any outstanding fetch.
func (o *Orchestrator) Close() {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.timer != nil {
		o.timer.Stop()
	}
	o.abortLocked()
}

func (o *Orchestrator) abortLocked() {
	if o.cancel != nil {
		o.cancel()
		o.cancel = nil
	}
	o.pending = 0
}
