package hazardwatch

import (
	"context"
	"sync"
	"time"

	"github.com/diwise/hazard-watch/internal/app/hazardwatch/alerts"
	"github.com/diwise/hazard-watch/internal/app/hazardwatch/clip"
	"github.com/diwise/hazard-watch/internal/app/hazardwatch/cluster"
	"github.com/diwise/hazard-watch/internal/pkg/fetch"
	"github.com/diwise/hazard-watch/internal/pkg/sources"
	"github.com/diwise/hazard-watch/pkg/types"
	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

//go:generate moq -rm -out app_mock.go . HazardApp
type HazardApp interface {
	Refresh(ctx context.Context) error
	Layers(ctx context.Context) LayerSet
	Alerts(ctx context.Context) AlertReport
	Health(ctx context.Context) map[string]SourceHealth

	OnViewportChanged(ctx context.Context, vp Viewport)
	ViewportState() (SyncState, SourceHealth)

	SetOffline(ctx context.Context, offline bool)
	Offline() bool

	Observe(ctx context.Context, path string, value float64)
}

type app struct {
	cfg   *Config
	cache *fetch.Cache
	src   Sources

	renderer Renderer
	orch     *Orchestrator
	msgCtx   messaging.MsgContext

	mu      sync.RWMutex
	region  *clip.Region
	layers  LayerSet
	report  AlertReport
	metrics alerts.Metrics
	offline bool
}

func New(ctx context.Context, cfg *Config, src Sources, renderer Renderer, msgCtx messaging.MsgContext) HazardApp {
	a := &app{
		cfg:      cfg,
		cache:    fetch.NewCache(cfg.CacheMaxKeys),
		src:      src,
		renderer: renderer,
		msgCtx:   msgCtx,
		metrics:  alerts.Metrics{},
		layers:   LayerSet{Health: map[string]SourceHealth{}},
	}

	a.orch = NewOrchestrator(ctx, SyncOptions{
		Debounce:     cfg.Debounce(),
		MinZoom:      cfg.MinZoom,
		TTL:          cfg.TTL(),
		Timeout:      cfg.Timeout(),
		KeyPrecision: cfg.KeyPrecision,
	}, a.cache, src.Assets, sources.FallbackAssets, a.Region, cluster.New(cfg.Cluster, nil), renderer)

	return a
}

// Region returns the current clip mask. Nil until a boundary has loaded,
// which callers treat as "no clipping".
func (a *app) Region() *clip.Region {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return a.region
}

// Refresh loads the boot layers through the cache, derives the clip mask
// from the boundary, clips the point and line layers, reduces the flood
// signal and re-evaluates the alerts.
func (a *app) Refresh(ctx context.Context) error {
	log := logging.GetFromContext(ctx)

	layers := LayerSet{Health: map[string]SourceHealth{}}

	boundary, health := a.loadLayer(ctx, "boundary", a.src.Boundary, sources.FallbackBoundary)
	layers.Boundary = boundary
	layers.Health["boundary"] = health

	region := clip.MainRegion(boundary)
	if region == nil {
		log.Warn("no usable boundary geometry, layers will not be clipped")
	}

	positions, health := a.loadLayer(ctx, "storm-positions", a.src.StormPositions, sources.FallbackStormPositions)
	layers.StormPositions = clip.Filter(positions, region)
	layers.Health["storm-positions"] = health

	tracks, health := a.loadLayer(ctx, "storm-tracks", a.src.StormTracks, sources.FallbackStormTracks)
	layers.StormTracks = clip.Filter(tracks, region)
	layers.Health["storm-tracks"] = health

	slides, health := a.loadLayer(ctx, "landslides", a.src.Landslides, sources.FallbackLandslides)
	layers.Landslides = clip.Filter(slides, region)
	layers.Health["landslides"] = health

	floodSites, health, signal := a.loadFlood(ctx)
	layers.FloodSites = floodSites
	layers.Health["flood"] = health

	layers.UpdatedAt = time.Now().UTC()

	a.mu.Lock()
	a.region = region
	a.layers = layers
	if signal != nil {
		for k, v := range signal.Metrics() {
			a.metrics.Set("flood_live."+k, v)
		}
	}
	a.mu.Unlock()

	if b, ok := collectionBound(boundary); ok {
		a.renderer.FitView(ctx, b)
	}

	a.evaluateAlerts(ctx)

	return nil
}

func (a *app) loadLayer(ctx context.Context, name string, src FeatureSource, fallback func() *geojson.FeatureCollection) (*geojson.FeatureCollection, SourceHealth) {
	log := logging.GetFromContext(ctx)

	if a.Offline() || src == nil {
		return fallback(), HealthOffline
	}

	payload, err := a.cache.Get(ctx, "layer:"+name, func(ctx context.Context) (any, error) {
		return src.Query(ctx, "", "")
	}, a.cfg.TTL(), a.cfg.Timeout())

	if err != nil {
		log.Warn("layer fetch failed, using fallback data", "layer", name, "err", err.Error())
		return fallback(), HealthFallback
	}

	return payload.(*geojson.FeatureCollection), HealthLive
}

func (a *app) loadFlood(ctx context.Context) (*geojson.FeatureCollection, SourceHealth, *sources.FloodSignal) {
	log := logging.GetFromContext(ctx)

	if a.Offline() || a.src.Flood == nil {
		return sources.FallbackFloodSites(a.cfg.Sites), HealthOffline, nil
	}

	payload, err := a.cache.Get(ctx, "layer:flood", func(ctx context.Context) (any, error) {
		return a.src.Flood.Signals(ctx, a.cfg.Sites)
	}, a.cfg.TTL(), a.cfg.FloodTimeout())

	if err != nil {
		log.Warn("flood signal fetch failed, using fallback data", "err", err.Error())
		return sources.FallbackFloodSites(a.cfg.Sites), HealthFallback, nil
	}

	signal := payload.(*sources.FloodSignal)

	return sources.FeatureCollectionFromSignal(signal), HealthLive, signal
}

func (a *app) Layers(ctx context.Context) LayerSet {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return a.layers
}

func (a *app) Alerts(ctx context.Context) AlertReport {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return a.report
}

func (a *app) Health(ctx context.Context) map[string]SourceHealth {
	a.mu.RLock()
	defer a.mu.RUnlock()

	out := make(map[string]SourceHealth, len(a.layers.Health)+1)
	for k, v := range a.layers.Health {
		out[k] = v
	}
	out["assets"] = a.orch.Health()

	return out
}

func (a *app) OnViewportChanged(ctx context.Context, vp Viewport) {
	a.orch.OnViewportChanged(vp)
}

func (a *app) ViewportState() (SyncState, SourceHealth) {
	return a.orch.State(), a.orch.Health()
}

// SetOffline toggles offline mode for the whole app. The shared cache is
// reset so live entries never leak into the offline view, or the other way
// around.
func (a *app) SetOffline(ctx context.Context, offline bool) {
	a.mu.Lock()
	a.offline = offline
	a.mu.Unlock()

	a.orch.SetOffline(offline)
}

func (a *app) Offline() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return a.offline
}

// Observe merges a live metric observation into the snapshot and
// re-evaluates the alerts.
func (a *app) Observe(ctx context.Context, path string, value float64) {
	a.mu.Lock()
	a.metrics.Set(path, value)
	a.mu.Unlock()

	a.evaluateAlerts(ctx)
}

func (a *app) evaluateAlerts(ctx context.Context) {
	log := logging.GetFromContext(ctx)

	rules := a.cfg.Rules
	if len(rules) == 0 {
		rules = alerts.DefaultRules()
	}

	a.mu.Lock()
	fired := alerts.Evaluate(a.metrics, rules)
	report := AlertReport{
		ID:          uuid.NewString(),
		Alerts:      fired,
		Evidence:    alerts.EvidenceUnion(fired),
		EvaluatedAt: time.Now().UTC(),
	}
	a.report = report
	a.mu.Unlock()

	if a.msgCtx == nil {
		return
	}

	err := a.msgCtx.PublishOnTopic(ctx, &types.AlertsEvaluated{
		ID:        report.ID,
		Alerts:    fired,
		Evidence:  report.Evidence,
		Timestamp: report.EvaluatedAt,
	})
	if err != nil {
		log.Error("could not publish alert evaluation", "err", err.Error())
	}
}

func collectionBound(fc *geojson.FeatureCollection) (orb.Bound, bool) {
	if fc == nil || len(fc.Features) == 0 {
		return orb.Bound{}, false
	}

	var b orb.Bound
	found := false

	for _, f := range fc.Features {
		if f == nil || f.Geometry == nil {
			continue
		}
		if !found {
			b = f.Geometry.Bound()
			found = true
			continue
		}
		b = b.Union(f.Geometry.Bound())
	}

	return b, found
}
