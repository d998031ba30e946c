package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/diwise/hazard-watch/internal/pkg/features"
	"github.com/diwise/hazard-watch/internal/pkg/fetch"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// Overpass is a generic spatial query source speaking the Overpass QL
// protocol. Elements are normalized into tagged osm-asset point features
// by a thin adapter, capped at maxFeatures.
type Overpass struct {
	base        string
	maxFeatures int
	client      *http.Client
}

func NewOverpass(base string, maxFeatures int, client *http.Client) *Overpass {
	return &Overpass{
		base:        base,
		maxFeatures: maxFeatures,
		client:      client,
	}
}

// AssetQuery builds the QL statement that loads hospitals and schools
// within a bounding box.
func AssetQuery(south, west, north, east float64) string {
	bbox := fmt.Sprintf("(%f,%f,%f,%f)", south, west, north, east)

	return "[out:json][timeout:25];\n(\n" +
		"  nwr[\"amenity\"=\"hospital\"]" + bbox + ";\n" +
		"  nwr[\"amenity\"=\"school\"]" + bbox + ";\n" +
		");\nout center tags;\n"
}

type overpassElement struct {
	Type   string            `json:"type"`
	ID     int64             `json:"id"`
	Lat    *float64          `json:"lat,omitempty"`
	Lon    *float64          `json:"lon,omitempty"`
	Center *struct {
		Lat float64 `json:"lat"`
		Lon float64 `json:"lon"`
	} `json:"center,omitempty"`
	Tags map[string]string `json:"tags,omitempty"`
}

type overpassResponse struct {
	Elements []overpassElement `json:"elements"`
}

func (o *Overpass) Query(ctx context.Context, ql string) (*geojson.FeatureCollection, error) {
	b, err := postForm(ctx, o.client, o.base, "data="+url.QueryEscape(ql))
	if err != nil {
		return nil, err
	}

	resp := overpassResponse{}
	err = json.Unmarshal(b, &resp)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", fetch.ErrParse, err.Error())
	}

	return o.toFeatureCollection(resp.Elements), nil
}

func (o *Overpass) toFeatureCollection(elements []overpassElement) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	for _, el := range elements {
		asset := el.Tags["amenity"]
		if asset != "hospital" && asset != "school" {
			continue
		}

		lat, lon := el.Lat, el.Lon
		if lat == nil || lon == nil {
			if el.Center == nil {
				continue
			}
			lat, lon = &el.Center.Lat, &el.Center.Lon
		}

		f := geojson.NewFeature(orb.Point{*lon, *lat})
		f.Properties["asset"] = asset
		f.Properties["name"] = firstTag(el.Tags, "name", "name:en", "operator")
		if f.Properties["name"] == "" {
			f.Properties["name"] = asset
		}
		f.Properties["operator"] = el.Tags["operator"]
		f.Properties["phone"] = firstTag(el.Tags, "phone", "contact:phone")
		f.Properties["website"] = firstTag(el.Tags, "website", "contact:website")
		f.Properties["opening_hours"] = el.Tags["opening_hours"]
		f.Properties["addr"] = address(el.Tags)
		f.Properties["osm_type"] = el.Type
		f.Properties["osm_id"] = el.ID

		fc.Append(f)

		if o.maxFeatures > 0 && len(fc.Features) >= o.maxFeatures {
			break
		}
	}

	return features.Normalize(fc, features.KindOSMAsset)
}

func firstTag(tags map[string]string, keys ...string) string {
	for _, k := range keys {
		if v := tags[k]; v != "" {
			return v
		}
	}
	return ""
}

func address(tags map[string]string) string {
	parts := make([]string, 0, 4)
	for _, k := range []string{"addr:street", "addr:housenumber", "addr:city", "addr:postcode"} {
		if v := tags[k]; v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, " ")
}
