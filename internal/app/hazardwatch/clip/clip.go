package clip

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// Region is the authoritative clip boundary, a single polygon with one
// exterior ring and zero or more hole rings. It is derived once per
// boundary load and shared read only between Filter calls.
type Region struct {
	polygon orb.Polygon
}

// MainRegion derives the clip mask from a boundary collection. A Polygon
// is used as is. For a MultiPolygon the part with the largest area wins.
// Returns nil when no usable geometry is present, which callers must treat
// as "no clipping".
func MainRegion(fc *geojson.FeatureCollection) *Region {
	if fc == nil || len(fc.Features) == 0 {
		return nil
	}

	switch g := fc.Features[0].Geometry.(type) {
	case orb.Polygon:
		return &Region{polygon: g}
	case orb.MultiPolygon:
		var best orb.Polygon
		bestArea := -1.0

		for _, p := range g {
			if a := polygonArea(p); a > bestArea {
				bestArea = a
				best = p
			}
		}

		if best == nil {
			return nil
		}
		return &Region{polygon: best}
	default:
		return nil
	}
}

// Contains reports whether pt lies inside the region, using ray casting
// against the exterior ring. Points inside a hole ring are excluded. A nil
// region contains nothing.
func (r *Region) Contains(pt orb.Point) bool {
	if r == nil || len(r.polygon) == 0 {
		return false
	}

	if !pointInRing(pt, r.polygon[0]) {
		return false
	}

	for _, hole := range r.polygon[1:] {
		if pointInRing(pt, hole) {
			return false
		}
	}

	return true
}

// Filter returns a new collection holding the features of fc that fall
// inside region. Points are kept when their coordinate is interior,
// LineStrings when any vertex is, any other geometry passes through.
// A nil region disables clipping and fc is returned unchanged. The input
// collection is never mutated.
func Filter(fc *geojson.FeatureCollection, region *Region) *geojson.FeatureCollection {
	if region == nil || fc == nil {
		return fc
	}

	out := geojson.NewFeatureCollection()

	for _, f := range fc.Features {
		if f == nil || f.Geometry == nil {
			continue
		}

		switch g := f.Geometry.(type) {
		case orb.Point:
			if region.Contains(g) {
				out.Append(f)
			}
		case orb.LineString:
			for _, pt := range g {
				if region.Contains(pt) {
					out.Append(f)
					break
				}
			}
		default:
			out.Append(f)
		}
	}

	return out
}

// ringArea computes the absolute shoelace area of a ring.
func ringArea(ring orb.Ring) float64 {
	if len(ring) == 0 {
		return 0
	}

	a := 0.0
	for i := range ring {
		p1 := ring[i]
		p2 := ring[(i+1)%len(ring)]
		a += p1[0]*p2[1] - p2[0]*p1[1]
	}

	return math.Abs(a / 2)
}

// polygonArea is the exterior ring area minus the hole areas, never
// negative.
func polygonArea(p orb.Polygon) float64 {
	if len(p) == 0 {
		return 0
	}

	a := ringArea(p[0])
	for _, hole := range p[1:] {
		a -= ringArea(hole)
	}

	return math.Max(0, a)
}

func pointInRing(pt orb.Point, ring orb.Ring) bool {
	x, y := pt[0], pt[1]
	inside := false

	j := len(ring) - 1
	for i := 0; i < len(ring); j, i = i, i+1 {
		xi, yi := ring[i][0], ring[i][1]
		xj, yj := ring[j][0], ring[j][1]

		if (yi > y) != (yj > y) && x < (xj-xi)*(y-yi)/(yj-yi)+xi {
			inside = !inside
		}
	}

	return inside
}
