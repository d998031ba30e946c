package hazardwatch

import (
	"context"
	"testing"

	"github.com/diwise/hazard-watch/internal/app/hazardwatch/cluster"
	"github.com/diwise/hazard-watch/internal/pkg/fetch"
	"github.com/diwise/hazard-watch/internal/pkg/sources"
	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/matryer/is"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

func boundaryFC() *geojson.FeatureCollection {
	f := geojson.NewFeature(orb.Polygon{
		{{-85, 19.8}, {-74, 19.8}, {-74, 23.5}, {-85, 23.5}, {-85, 19.8}},
	})
	fc := geojson.NewFeatureCollection()
	fc.Append(f)
	return fc
}

func stormsFC() *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	inside := geojson.NewFeature(orb.Point{-82.4, 22.9})
	inside.Properties["name"] = "IDA"
	inside.Properties["storm_id"] = "AL092021"
	fc.Append(inside)

	outside := geojson.NewFeature(orb.Point{0, 0})
	outside.Properties["name"] = "FARAWAY"
	outside.Properties["storm_id"] = "AL990099"
	fc.Append(outside)

	return fc
}

func fcSource(fc *geojson.FeatureCollection) *FeatureSourceMock {
	return &FeatureSourceMock{
		QueryFunc: func(ctx context.Context, where, outFields string) (*geojson.FeatureCollection, error) {
			return fc, nil
		},
	}
}

func failingSource() *FeatureSourceMock {
	return &FeatureSourceMock{
		QueryFunc: func(ctx context.Context, where, outFields string) (*geojson.FeatureCollection, error) {
			return nil, &fetch.NetworkError{Status: 503, Message: "unavailable"}
		},
	}
}

func testSources(flood *FloodSourceMock) Sources {
	return Sources{
		Boundary:       fcSource(boundaryFC()),
		StormPositions: fcSource(stormsFC()),
		StormTracks:    fcSource(geojson.NewFeatureCollection()),
		Landslides:     fcSource(geojson.NewFeatureCollection()),
		Flood:          flood,
	}
}

func noopRenderer() *RendererMock {
	return &RendererMock{
		RenderPointsFunc:   func(ctx context.Context, fc *geojson.FeatureCollection) {},
		RenderClustersFunc: func(ctx context.Context, buckets []cluster.Bucket) {},
		FitViewFunc:        func(ctx context.Context, bound orb.Bound) {},
	}
}

func publishRecorder() (*messaging.MsgContextMock, *[]messaging.TopicMessage) {
	published := []messaging.TopicMessage{}
	return &messaging.MsgContextMock{
		PublishOnTopicFunc: func(ctx context.Context, message messaging.TopicMessage) error {
			published = append(published, message)
			return nil
		},
	}, &published
}

func TestRefreshClipsLayersAndGradesAlerts(t *testing.T) {
	ctx := context.Background()
	is := is.New(t)

	flood := &FloodSourceMock{
		SignalsFunc: func(ctx context.Context, sites []sources.Site) (*sources.FloodSignal, error) {
			return &sources.FloodSignal{
				MaxRatioP75: 1.7,
				SiteMax:     "Havana (2026-09-02)",
				Details: []sources.SiteSignal{
					{Site: sources.Site{ID: "HAV", Name: "Havana", Lat: 23.1, Lon: -82.4}, Ratio: 1.7},
				},
			}, nil
		},
	}

	msgCtx, published := publishRecorder()
	cfg := DefaultConfig()
	cfg.Sites = []sources.Site{{ID: "HAV", Name: "Havana", Lat: 23.1, Lon: -82.4}}

	a := New(ctx, cfg, testSources(flood), noopRenderer(), msgCtx)

	err := a.Refresh(ctx)
	is.NoErr(err)

	layers := a.Layers(ctx)
	is.Equal(len(layers.StormPositions.Features), 1) // the faraway storm is clipped away
	is.Equal(layers.StormPositions.Features[0].Properties["name"], "IDA")
	is.Equal(layers.Health["boundary"], HealthLive)
	is.Equal(layers.Health["flood"], HealthLive)
	is.Equal(len(layers.FloodSites.Features), 1)

	report := a.Alerts(ctx)
	is.Equal(len(report.Alerts), 1)
	is.Equal(report.Alerts[0].RuleID, "flood_live")
	is.Equal(string(report.Alerts[0].Severity), "critical")
	is.True(len(report.Evidence) > 0)

	is.Equal(len(*published), 1)
	is.Equal((*published)[0].TopicName(), "hazard.alerts")
}

func TestRefreshFallsBackWhenSourcesFail(t *testing.T) {
	ctx := context.Background()
	is := is.New(t)

	flood := &FloodSourceMock{
		SignalsFunc: func(ctx context.Context, sites []sources.Site) (*sources.FloodSignal, error) {
			return nil, &fetch.NetworkError{Message: "no flood data returned"}
		},
	}

	src := testSources(flood)
	src.Boundary = failingSource()

	msgCtx, _ := publishRecorder()
	cfg := DefaultConfig()
	cfg.Sites = []sources.Site{{ID: "HAV", Name: "Havana", Lat: 23.1, Lon: -82.4}}

	a := New(ctx, cfg, src, noopRenderer(), msgCtx)

	err := a.Refresh(ctx)
	is.NoErr(err)

	layers := a.Layers(ctx)
	is.Equal(layers.Health["boundary"], HealthFallback)
	is.Equal(layers.Health["flood"], HealthFallback)
	is.True(len(layers.Boundary.Features) > 0)
	is.Equal(layers.FloodSites.Features[0].Properties["_fallback"], true)
}

func TestOfflineRefreshServesBundledData(t *testing.T) {
	ctx := context.Background()
	is := is.New(t)

	flood := &FloodSourceMock{
		SignalsFunc: func(ctx context.Context, sites []sources.Site) (*sources.FloodSignal, error) {
			return &sources.FloodSignal{MaxRatioP75: 1.7}, nil
		},
	}

	src := testSources(flood)
	msgCtx, _ := publishRecorder()
	cfg := DefaultConfig()
	cfg.Sites = []sources.Site{{ID: "HAV", Name: "Havana", Lat: 23.1, Lon: -82.4}}

	a := New(ctx, cfg, src, noopRenderer(), msgCtx)
	a.SetOffline(ctx, true)

	err := a.Refresh(ctx)
	is.NoErr(err)

	layers := a.Layers(ctx)
	is.Equal(layers.Health["boundary"], HealthOffline)
	is.Equal(layers.Health["flood"], HealthOffline)
	is.Equal(len(src.Boundary.(*FeatureSourceMock).QueryCalls()), 0)
	is.Equal(len(flood.SignalsCalls()), 0)
	is.True(a.Offline())
}

func TestObserveMergesMetricsAndReevaluates(t *testing.T) {
	ctx := context.Background()
	is := is.New(t)

	msgCtx, published := publishRecorder()
	a := New(ctx, DefaultConfig(), Sources{}, noopRenderer(), msgCtx)

	a.Observe(ctx, "forecast.rain_mm_24h", 160)

	report := a.Alerts(ctx)
	is.Equal(len(report.Alerts), 1)
	is.Equal(report.Alerts[0].RuleID, "flood_local")
	is.Equal(string(report.Alerts[0].Severity), "critical")

	is.Equal(len(*published), 1)
}
