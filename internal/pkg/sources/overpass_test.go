package sources

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/diwise/hazard-watch/internal/pkg/features"
	"github.com/matryer/is"
)

const overpassBody = `{
	"elements": [
		{"type": "node", "id": 1, "lat": 23.135, "lon": -82.381, "tags": {"amenity": "hospital", "name": "Calixto García"}},
		{"type": "way", "id": 2, "center": {"lat": 22.408, "lon": -79.965}, "tags": {"amenity": "school", "operator": "MinEd"}},
		{"type": "node", "id": 3, "lat": 21.0, "lon": -78.0, "tags": {"amenity": "fuel"}},
		{"type": "way", "id": 4, "tags": {"amenity": "school"}}
	]
}`

func TestOverpassQueryAdaptsElements(t *testing.T) {
	is := is.New(t)

	var body string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		body = string(b)
		w.Write([]byte(overpassBody))
	}))
	defer srv.Close()

	o := NewOverpass(srv.URL, 0, srv.Client())

	fc, err := o.Query(context.Background(), AssetQuery(19.8, -85.0, 23.5, -74.1))
	is.NoErr(err)

	// the fuel station and the way without coordinates are dropped
	is.Equal(len(fc.Features), 2)

	is.Equal(fc.Features[0].Properties["asset"], "hospital")
	is.Equal(fc.Features[0].Properties["name"], "Calixto García")
	is.Equal(features.KindOf(fc.Features[0]), features.KindOSMAsset)

	// the school has no name tag, the operator steps in
	is.Equal(fc.Features[1].Properties["name"], "MinEd")

	is.True(strings.HasPrefix(body, "data="))
	is.True(strings.Contains(body, "amenity"))
}

func TestOverpassCapsFeatureCount(t *testing.T) {
	is := is.New(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(overpassBody))
	}))
	defer srv.Close()

	o := NewOverpass(srv.URL, 1, srv.Client())

	fc, err := o.Query(context.Background(), AssetQuery(19.8, -85.0, 23.5, -74.1))
	is.NoErr(err)
	is.Equal(len(fc.Features), 1)
}

func TestAssetQueryContainsBBox(t *testing.T) {
	is := is.New(t)

	ql := AssetQuery(19.85, -84.95, 23.45, -74.10)
	is.True(strings.Contains(ql, "(19.850000,-84.950000,23.450000,-74.100000)"))
	is.True(strings.Contains(ql, "out center tags"))
}
