package cluster

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// Projector maps a lon/lat coordinate to pixel space at a zoom level. The
// rendering collaborator supplies one, WebMercator is the default.
type Projector interface {
	Project(pt orb.Point, zoom int) (x, y float64)
}

type WebMercator struct {
	TileSize float64
}

func (m WebMercator) Project(pt orb.Point, zoom int) (float64, float64) {
	size := m.TileSize
	if size == 0 {
		size = 256
	}
	scale := size * math.Exp2(float64(zoom))

	lat := math.Min(math.Max(pt[1], -85.05112878), 85.05112878)
	rad := lat * math.Pi / 180

	x := (pt[0] + 180) / 360 * scale
	y := (1 - math.Log(math.Tan(rad)+1/math.Cos(rad))/math.Pi) / 2 * scale

	return x, y
}

// CellSize holds the grid cell size in pixels for zoom levels up to and
// including MaxZoom. Bands are evaluated in order, the last entry with
// MaxZoom 0 is the catch-all.
type CellSize struct {
	MaxZoom int `yaml:"maxZoom"`
	Px      int `yaml:"px"`
}

type Options struct {
	IndividualZoom int        `yaml:"individualZoom"`
	SmallCount     int        `yaml:"smallCount"`
	SampleCap      int        `yaml:"sampleCap"`
	MaxZoomIn      int        `yaml:"maxZoomIn"`
	CellSizes      []CellSize `yaml:"cellSizes"`
	SizeTiers      []int      `yaml:"sizeTiers"`
}

func DefaultOptions() Options {
	return Options{
		IndividualZoom: 12,
		SmallCount:     250,
		SampleCap:      8,
		MaxZoomIn:      14,
		CellSizes: []CellSize{
			{MaxZoom: 7, Px: 90},
			{MaxZoom: 9, Px: 75},
			{MaxZoom: 0, Px: 60},
		},
		SizeTiers: []int{10, 100},
	}
}

// Bucket is the ephemeral unit of one render pass. A bucket of count one
// renders as an individual marker using its single sample, larger buckets
// render as cluster markers sized by tier, clicking one recenters on the
// centroid and zooms to ZoomTo.
type Bucket struct {
	Count    int
	Centroid orb.Point
	Samples  []*geojson.Feature
	SizeTier int
	ZoomTo   int
}

type Clusterer struct {
	opts      Options
	projector Projector
}

func New(opts Options, p Projector) *Clusterer {
	if p == nil {
		p = WebMercator{}
	}
	return &Clusterer{opts: opts, projector: p}
}

// Partition buckets the Point features of fc for rendering at zoom. At or
// above the individual zoom threshold, or at small feature counts, every
// point gets its own bucket. Otherwise points are bucketed on a fixed
// pixel grid, coarser at lower zoom. The bucket counts always sum to the
// number of Point features, features without Point geometry are skipped.
func (c *Clusterer) Partition(fc *geojson.FeatureCollection, zoom int) []Bucket {
	points := make([]*geojson.Feature, 0)
	if fc != nil {
		for _, f := range fc.Features {
			if f == nil {
				continue
			}
			if _, ok := f.Geometry.(orb.Point); ok {
				points = append(points, f)
			}
		}
	}

	if zoom >= c.opts.IndividualZoom || len(points) <= c.opts.SmallCount {
		out := make([]Bucket, 0, len(points))
		for _, f := range points {
			pt := f.Geometry.(orb.Point)
			out = append(out, Bucket{
				Count:    1,
				Centroid: pt,
				Samples:  []*geojson.Feature{f},
				ZoomTo:   c.zoomTo(zoom),
			})
		}
		return out
	}

	cell := float64(c.cellSize(zoom))
	buckets := make(map[string]*Bucket)
	order := make([]string, 0)
	sums := make(map[string]orb.Point)

	for _, f := range points {
		pt := f.Geometry.(orb.Point)
		x, y := c.projector.Project(pt, zoom)
		key := fmt.Sprintf("%d:%d", int(math.Floor(x/cell)), int(math.Floor(y/cell)))

		b, ok := buckets[key]
		if !ok {
			b = &Bucket{}
			buckets[key] = b
			order = append(order, key)
		}

		b.Count++
		sum := sums[key]
		sum[0] += pt[0]
		sum[1] += pt[1]
		sums[key] = sum

		if len(b.Samples) < c.opts.SampleCap {
			b.Samples = append(b.Samples, f)
		}
	}

	out := make([]Bucket, 0, len(buckets))
	for _, key := range order {
		b := buckets[key]
		sum := sums[key]
		b.Centroid = orb.Point{sum[0] / float64(b.Count), sum[1] / float64(b.Count)}
		b.SizeTier = c.sizeTier(b.Count)
		b.ZoomTo = c.zoomTo(zoom)
		out = append(out, *b)
	}

	return out
}

func (c *Clusterer) cellSize(zoom int) int {
	for _, band := range c.opts.CellSizes {
		if band.MaxZoom == 0 || zoom <= band.MaxZoom {
			return band.Px
		}
	}
	return 60
}

func (c *Clusterer) zoomTo(zoom int) int {
	z := zoom + 2
	if c.opts.MaxZoomIn > 0 && z > c.opts.MaxZoomIn {
		z = c.opts.MaxZoomIn
	}
	return z
}

// sizeTier counts how many of the ascending cutoffs the bucket reaches.
func (c *Clusterer) sizeTier(count int) int {
	tiers := c.opts.SizeTiers
	if len(tiers) == 0 {
		tiers = []int{10, 100}
	}

	tier := 0
	for _, cutoff := range tiers {
		if count >= cutoff {
			tier++
		}
	}

	return tier
}
