package hazardwatch

import (
	"context"

	"github.com/diwise/hazard-watch/internal/app/hazardwatch/cluster"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// Renderer receives the result of a viewport evaluation. The presentation
// layer installs a snapshot renderer whose latest state is served over HTTP.

//go:generate moq -rm -out renderer_mock.go . Renderer
type Renderer interface {
	RenderPoints(ctx context.Context, fc *geojson.FeatureCollection)
	RenderClusters(ctx context.Context, buckets []cluster.Bucket)
	FitView(ctx context.Context, bound orb.Bound)
}
