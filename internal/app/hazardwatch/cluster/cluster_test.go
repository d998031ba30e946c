package cluster

import (
	"fmt"
	"testing"

	"github.com/matryer/is"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

func pointGrid(n int) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for i := 0; i < n; i++ {
		f := geojson.NewFeature(orb.Point{float64(i%20) * 0.01, float64(i/20) * 0.01})
		f.Properties["kind"] = "osm-asset"
		f.Properties["name"] = fmt.Sprintf("asset %d", i)
		fc.Append(f)
	}
	return fc
}

func countSum(buckets []Bucket) int {
	sum := 0
	for _, b := range buckets {
		sum += b.Count
	}
	return sum
}

func TestPartitionConservesEveryPoint(t *testing.T) {
	is := is.New(t)

	opts := DefaultOptions()
	opts.SmallCount = 10
	c := New(opts, nil)

	fc := pointGrid(400)
	buckets := c.Partition(fc, 6)

	is.Equal(countSum(buckets), 400)
	is.True(len(buckets) < 400) // at zoom 6 the grid actually aggregates
}

func TestPartitionIsIdentityBelowSmallCount(t *testing.T) {
	is := is.New(t)

	c := New(DefaultOptions(), nil)

	fc := pointGrid(25)
	buckets := c.Partition(fc, 5)

	is.Equal(len(buckets), 25)
	for _, b := range buckets {
		is.Equal(b.Count, 1)
		is.Equal(len(b.Samples), 1)
	}
}

func TestPartitionIsIdentityAtHighZoom(t *testing.T) {
	is := is.New(t)

	opts := DefaultOptions()
	opts.SmallCount = 10
	c := New(opts, nil)

	fc := pointGrid(300)
	buckets := c.Partition(fc, 12)

	is.Equal(len(buckets), 300)
	is.Equal(countSum(buckets), 300)
}

func TestPartitionSkipsNonPointFeatures(t *testing.T) {
	is := is.New(t)

	c := New(DefaultOptions(), nil)

	fc := pointGrid(3)
	fc.Append(geojson.NewFeature(orb.LineString{{0, 0}, {1, 1}}))
	fc.Append(&geojson.Feature{Type: "Feature"})

	buckets := c.Partition(fc, 12)
	is.Equal(countSum(buckets), 3)
}

type fixedProjector struct{}

// Project puts everything in the same pixel, forcing a single bucket.
func (fixedProjector) Project(pt orb.Point, zoom int) (float64, float64) {
	return 1, 1
}

func TestPartitionCentroidIsMeanOfMembers(t *testing.T) {
	is := is.New(t)

	opts := DefaultOptions()
	opts.SmallCount = 1
	c := New(opts, fixedProjector{})

	fc := geojson.NewFeatureCollection()
	fc.Append(geojson.NewFeature(orb.Point{0, 0}))
	fc.Append(geojson.NewFeature(orb.Point{2, 0}))
	fc.Append(geojson.NewFeature(orb.Point{1, 3}))

	buckets := c.Partition(fc, 5)

	is.Equal(len(buckets), 1)
	is.Equal(buckets[0].Count, 3)
	is.Equal(buckets[0].Centroid, orb.Point{1, 1})
}

func TestPartitionCapsSamples(t *testing.T) {
	is := is.New(t)

	opts := DefaultOptions()
	opts.SmallCount = 1
	c := New(opts, fixedProjector{})

	fc := pointGrid(30)
	buckets := c.Partition(fc, 5)

	is.Equal(len(buckets), 1)
	is.Equal(buckets[0].Count, 30)
	is.Equal(len(buckets[0].Samples), opts.SampleCap)
	is.Equal(buckets[0].SizeTier, 1)
}

func TestSizeTierCutoffsAreConfigurable(t *testing.T) {
	is := is.New(t)

	opts := DefaultOptions()
	opts.SmallCount = 1
	opts.SizeTiers = []int{5, 50}
	c := New(opts, fixedProjector{})

	buckets := c.Partition(pointGrid(6), 5)
	is.Equal(len(buckets), 1)
	is.Equal(buckets[0].SizeTier, 1) // 6 reaches the first custom cutoff

	buckets = c.Partition(pointGrid(60), 5)
	is.Equal(buckets[0].SizeTier, 2)

	// the default cutoffs grade a bucket of six below the first tier
	opts = DefaultOptions()
	opts.SmallCount = 1
	c = New(opts, fixedProjector{})

	buckets = c.Partition(pointGrid(6), 5)
	is.Equal(len(buckets), 1)
	is.Equal(buckets[0].SizeTier, 0)
}

func TestWebMercatorProjectsWestToEast(t *testing.T) {
	is := is.New(t)

	m := WebMercator{}

	x1, _ := m.Project(orb.Point{-80, 22}, 6)
	x2, _ := m.Project(orb.Point{-75, 22}, 6)
	is.True(x1 < x2)

	_, y1 := m.Project(orb.Point{-80, 23}, 6)
	_, y2 := m.Project(orb.Point{-80, 20}, 6)
	is.True(y1 < y2) // north maps to smaller y
}
