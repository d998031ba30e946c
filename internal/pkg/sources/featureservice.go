package sources

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/diwise/hazard-watch/internal/pkg/features"
	"github.com/diwise/hazard-watch/internal/pkg/fetch"
	"github.com/paulmach/orb/geojson"
)

// FeatureService queries an ArcGIS style feature layer and normalizes the
// result into tagged features of one kind.
type FeatureService struct {
	layerURL string
	kind     features.Kind
	proxy    Proxy
	client   *http.Client
}

func NewFeatureService(layerURL string, kind features.Kind, proxy Proxy, client *http.Client) *FeatureService {
	return &FeatureService{
		layerURL: layerURL,
		kind:     kind,
		proxy:    proxy,
		client:   client,
	}
}

// QueryURL builds the geojson query URL for a layer.
func QueryURL(layerURL, where, outFields string) string {
	if where == "" {
		where = "1=1"
	}
	if outFields == "" {
		outFields = "*"
	}

	q := url.Values{}
	q.Set("where", where)
	q.Set("outFields", outFields)
	q.Set("outSR", "4326")
	q.Set("returnGeometry", "true")
	q.Set("f", "geojson")

	return strings.TrimRight(layerURL, "/") + "/query?" + q.Encode()
}

func (s *FeatureService) Query(ctx context.Context, where, outFields string) (*geojson.FeatureCollection, error) {
	u := s.proxy.Maybe(QueryURL(s.layerURL, where, outFields))

	b, err := getJSON(ctx, s.client, u)
	if err != nil {
		return nil, err
	}

	fc, err := geojson.UnmarshalFeatureCollection(b)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", fetch.ErrParse, err.Error())
	}

	remapProperties(fc, s.kind)

	return features.Normalize(fc, s.kind), nil
}

// remapProperties maps upstream layer attributes onto the canonical
// property names the feature kinds require. The collection was decoded
// from the wire a moment ago, so mutating it here is fine.
func remapProperties(fc *geojson.FeatureCollection, kind features.Kind) {
	if kind != features.KindStormPosition && kind != features.KindStormTrack {
		return
	}

	for _, f := range fc.Features {
		if f == nil || f.Properties == nil {
			continue
		}
		if v, ok := f.Properties["STORMNAME"]; ok {
			f.Properties["name"] = v
		}
		if v, ok := f.Properties["STORMID"]; ok {
			f.Properties["storm_id"] = v
		}
	}
}
