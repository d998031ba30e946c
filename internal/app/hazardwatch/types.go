package hazardwatch

import (
	"fmt"
	"time"

	"github.com/diwise/hazard-watch/internal/app/hazardwatch/alerts"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// Viewport is the visible bbox plus zoom, as reported by a client.
type Viewport struct {
	South float64 `json:"south"`
	West  float64 `json:"west"`
	North float64 `json:"north"`
	East  float64 `json:"east"`
	Zoom  int     `json:"zoom"`
}

// Key identifies a viewport for caching and supersession checks. Edges are
// rounded so that sub-precision pans map to the same key.
func (v Viewport) Key(precision int) string {
	return fmt.Sprintf("%.*f:%.*f:%.*f:%.*f@%d",
		precision, v.South, precision, v.West, precision, v.North, precision, v.East, v.Zoom)
}

func (v Viewport) Bound() orb.Bound {
	return orb.Bound{Min: orb.Point{v.West, v.South}, Max: orb.Point{v.East, v.North}}
}

// SyncState is the orchestrator's lifecycle state.
type SyncState string

const (
	StateIdle     SyncState = "idle"
	StateFetching SyncState = "fetching"
	StatePaused   SyncState = "paused"
)

// SourceHealth describes where a layer's data last came from.
type SourceHealth string

const (
	HealthLive     SourceHealth = "live"
	HealthFallback SourceHealth = "fallback"
	HealthOffline  SourceHealth = "offline"
	HealthPaused   SourceHealth = "paused"
	HealthAborted  SourceHealth = "aborted"
)

// LayerSet is the clipped result of a boot or refresh pass, together with
// per source health.
type LayerSet struct {
	Boundary       *geojson.FeatureCollection `json:"boundary"`
	StormPositions *geojson.FeatureCollection `json:"stormPositions"`
	StormTracks    *geojson.FeatureCollection `json:"stormTracks"`
	Landslides     *geojson.FeatureCollection `json:"landslides"`
	FloodSites     *geojson.FeatureCollection `json:"floodSites"`

	Health    map[string]SourceHealth `json:"health"`
	UpdatedAt time.Time               `json:"updatedAt"`
}

// AlertReport is the evaluated alert list plus the union of its evidence.
// ID identifies one evaluation across the API and the published message.
type AlertReport struct {
	ID          string         `json:"id"`
	Alerts      []alerts.Alert `json:"alerts"`
	Evidence    []string       `json:"evidence"`
	EvaluatedAt time.Time      `json:"evaluatedAt"`
}
