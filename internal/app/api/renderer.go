package api

import (
	"context"
	"sync"
	"time"

	"github.com/diwise/hazard-watch/internal/app/hazardwatch/cluster"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// Snapshot is the renderer the API installs in the orchestrator. It keeps
// the latest render result so viewport requests can be answered without
// waiting for an evaluation.
type Snapshot struct {
	mu       sync.RWMutex
	mode     string
	points   *geojson.FeatureCollection
	clusters []cluster.Bucket
	bound    *orb.Bound
	updated  time.Time
}

// RenderView is the serializable view of a snapshot. Bound is west, south,
// east, north.
type RenderView struct {
	Mode      string                     `json:"mode"`
	Points    *geojson.FeatureCollection `json:"points,omitempty"`
	Clusters  []cluster.Bucket           `json:"clusters,omitempty"`
	Bound     []float64                  `json:"bound,omitempty"`
	UpdatedAt time.Time                  `json:"updatedAt"`
}

func NewSnapshot() *Snapshot {
	return &Snapshot{mode: "none"}
}

func (s *Snapshot) RenderPoints(ctx context.Context, fc *geojson.FeatureCollection) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.mode = "points"
	s.points = fc
	s.clusters = nil
	s.updated = time.Now().UTC()
}

func (s *Snapshot) RenderClusters(ctx context.Context, buckets []cluster.Bucket) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.mode = "clusters"
	s.clusters = buckets
	s.points = nil
	s.updated = time.Now().UTC()
}

func (s *Snapshot) FitView(ctx context.Context, bound orb.Bound) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.bound = &bound
}

func (s *Snapshot) View() RenderView {
	s.mu.RLock()
	defer s.mu.RUnlock()

	view := RenderView{
		Mode:      s.mode,
		Points:    s.points,
		Clusters:  s.clusters,
		UpdatedAt: s.updated,
	}
	if s.bound != nil {
		view.Bound = []float64{s.bound.Min[0], s.bound.Min[1], s.bound.Max[0], s.bound.Max[1]}
	}

	return view
}
