package sources

import (
	"time"

	"github.com/diwise/hazard-watch/internal/pkg/features"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// Bundled demo datasets, served when a source is unreachable or the
// dashboard runs offline. Every fallback feature carries _fallback so the
// UI can label it.

func FallbackBoundary() *geojson.FeatureCollection {
	f := geojson.NewFeature(orb.MultiPolygon{
		{orb.Ring{
			{-84.95, 19.85}, {-74.10, 19.85}, {-74.10, 23.45}, {-84.95, 23.45}, {-84.95, 19.85},
		}},
	})
	f.Properties["name"] = "Main island (demo extent)"
	f.Properties["_fallback"] = true

	fc := geojson.NewFeatureCollection()
	fc.Append(f)

	return features.Normalize(fc, features.KindBoundary)
}

func FallbackStormPositions() *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	a := geojson.NewFeature(orb.Point{-82.4, 22.9})
	a.Properties["name"] = "Sample Storm A"
	a.Properties["storm_id"] = "SAMPLE_A"
	a.Properties["intensity_kt"] = 55
	a.Properties["observed_at"] = time.Now().UTC().Format(time.RFC3339)
	a.Properties["_fallback"] = true
	fc.Append(a)

	b := geojson.NewFeature(orb.Point{-77.8, 20.8})
	b.Properties["name"] = "Sample Storm B"
	b.Properties["storm_id"] = "SAMPLE_B"
	b.Properties["intensity_kt"] = 40
	b.Properties["observed_at"] = time.Now().UTC().Format(time.RFC3339)
	b.Properties["_fallback"] = true
	fc.Append(b)

	return features.Normalize(fc, features.KindStormPosition)
}

func FallbackStormTracks() *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	a := geojson.NewFeature(orb.LineString{{-83.1, 22.2}, {-82.7, 22.6}, {-82.4, 22.9}})
	a.Properties["name"] = "Sample Storm A"
	a.Properties["storm_id"] = "SAMPLE_A"
	a.Properties["_fallback"] = true
	fc.Append(a)

	b := geojson.NewFeature(orb.LineString{{-78.6, 20.3}, {-78.1, 20.6}, {-77.8, 20.8}})
	b.Properties["name"] = "Sample Storm B"
	b.Properties["storm_id"] = "SAMPLE_B"
	b.Properties["_fallback"] = true
	fc.Append(b)

	return features.Normalize(fc, features.KindStormTrack)
}

func FallbackLandslides() *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	for _, p := range []struct {
		pt   orb.Point
		date string
	}{
		{orb.Point{-76.0, 20.2}, "2025-09-10"},
		{orb.Point{-79.9, 22.4}, "2025-05-22"},
	} {
		f := geojson.NewFeature(p.pt)
		f.Properties["event_date"] = p.date
		f.Properties["trigger"] = "rain"
		f.Properties["_fallback"] = true
		fc.Append(f)
	}

	return features.Normalize(fc, features.KindLandslide)
}

func FallbackAssets() *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	h := geojson.NewFeature(orb.Point{-82.381, 23.135})
	h.Properties["asset"] = "hospital"
	h.Properties["name"] = "Hospital (sample)"
	h.Properties["_fallback"] = true
	fc.Append(h)

	s := geojson.NewFeature(orb.Point{-79.965, 22.408})
	s.Properties["asset"] = "school"
	s.Properties["name"] = "School (sample)"
	s.Properties["_fallback"] = true
	fc.Append(s)

	return features.Normalize(fc, features.KindOSMAsset)
}

// FallbackFloodSites derives demo flood-site features from the configured
// site list, with a spread of severities for the legend.
func FallbackFloodSites(sites []Site) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	severities := []string{"warning", "watch", "critical"}

	for i, s := range sites {
		f := geojson.NewFeature(orb.Point{s.Lon, s.Lat})
		f.Properties["id"] = s.ID
		f.Properties["name"] = s.Name
		f.Properties["severity"] = severities[min(i, len(severities)-1)]
		f.Properties["ratio_p75"] = 0.95
		f.Properties["day"] = time.Now().UTC().Format("2006-01-02")
		f.Properties["_fallback"] = true
		fc.Append(f)
	}

	return features.Normalize(fc, features.KindFloodSite)
}
