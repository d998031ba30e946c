package features

import (
	"errors"
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// Kind is the closed set of feature variants the dashboard renders.
// Features are tagged and validated at the source-adapter boundary, the
// core pipeline never inspects untyped property bags.
type Kind string

const (
	KindBoundary      Kind = "boundary"
	KindStormPosition Kind = "storm-position"
	KindStormTrack    Kind = "storm-track"
	KindLandslide     Kind = "landslide"
	KindFloodSite     Kind = "flood-site"
	KindOSMAsset      Kind = "osm-asset"
)

var ErrUnknownKind = errors.New("unknown feature kind")

func (k Kind) Valid() bool {
	switch k {
	case KindBoundary, KindStormPosition, KindStormTrack, KindLandslide, KindFloodSite, KindOSMAsset:
		return true
	default:
		return false
	}
}

func KindOf(f *geojson.Feature) Kind {
	if f == nil || f.Properties == nil {
		return ""
	}
	if s, ok := f.Properties["kind"].(string); ok {
		return Kind(s)
	}
	return ""
}

func Tag(f *geojson.Feature, k Kind) {
	if f.Properties == nil {
		f.Properties = make(geojson.Properties)
	}
	f.Properties["kind"] = string(k)
}

// Validate checks that a feature carries the geometry and the required
// properties of its kind.
func Validate(f *geojson.Feature) error {
	if f == nil || f.Geometry == nil {
		return errors.New("feature has no geometry")
	}

	k := KindOf(f)

	switch k {
	case KindBoundary:
		switch f.Geometry.(type) {
		case orb.Polygon, orb.MultiPolygon:
			return nil
		}
		return fmt.Errorf("%s requires Polygon or MultiPolygon geometry", k)
	case KindStormPosition:
		return requirePoint(f, "name", "storm_id")
	case KindStormTrack:
		if _, ok := f.Geometry.(orb.LineString); !ok {
			return fmt.Errorf("%s requires LineString geometry", k)
		}
		return requireProps(f, "storm_id")
	case KindLandslide:
		return requirePoint(f)
	case KindFloodSite:
		return requirePoint(f, "id", "name", "severity")
	case KindOSMAsset:
		return requirePoint(f, "asset", "name")
	default:
		return ErrUnknownKind
	}
}

// Normalize tags every feature of fc with kind and drops the ones that do
// not validate. Offending features are skipped silently, the collection is
// rebuilt rather than mutated.
func Normalize(fc *geojson.FeatureCollection, k Kind) *geojson.FeatureCollection {
	out := geojson.NewFeatureCollection()
	if fc == nil {
		return out
	}

	for _, f := range fc.Features {
		if f == nil {
			continue
		}

		g := &geojson.Feature{
			ID:         f.ID,
			Type:       f.Type,
			BBox:       f.BBox,
			Geometry:   f.Geometry,
			Properties: make(geojson.Properties, len(f.Properties)+1),
		}
		for key, v := range f.Properties {
			g.Properties[key] = v
		}

		Tag(g, k)

		if Validate(g) != nil {
			continue
		}

		out.Append(g)
	}

	return out
}

func requirePoint(f *geojson.Feature, props ...string) error {
	if _, ok := f.Geometry.(orb.Point); !ok {
		return fmt.Errorf("%s requires Point geometry", KindOf(f))
	}
	return requireProps(f, props...)
}

func requireProps(f *geojson.Feature, props ...string) error {
	for _, p := range props {
		if _, ok := f.Properties[p]; !ok {
			return fmt.Errorf("%s is missing required property %q", KindOf(f), p)
		}
	}
	return nil
}
