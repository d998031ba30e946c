package hazardwatch

import (
	"context"

	"github.com/diwise/hazard-watch/internal/pkg/sources"
	"github.com/paulmach/orb/geojson"
)

//go:generate moq -rm -out featuresource_mock.go . FeatureSource
type FeatureSource interface {
	Query(ctx context.Context, where, outFields string) (*geojson.FeatureCollection, error)
}

//go:generate moq -rm -out viewportsource_mock.go . ViewportSource
type ViewportSource interface {
	Fetch(ctx context.Context, vp Viewport) (*geojson.FeatureCollection, error)
}

//go:generate moq -rm -out floodsource_mock.go . FloodSource
type FloodSource interface {
	Signals(ctx context.Context, sites []sources.Site) (*sources.FloodSignal, error)
}

// Sources bundles the upstream clients the app reads from. Nil members fall
// back to the bundled demo data.
type Sources struct {
	Boundary       FeatureSource
	StormPositions FeatureSource
	StormTracks    FeatureSource
	Landslides     FeatureSource
	Assets         ViewportSource
	Flood          FloodSource
}
