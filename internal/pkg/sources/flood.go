package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"

	"github.com/diwise/hazard-watch/internal/app/hazardwatch/alerts"
	"github.com/diwise/hazard-watch/internal/pkg/features"
	"github.com/diwise/hazard-watch/internal/pkg/fetch"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// Site is a configured river discharge observation site.
type Site struct {
	ID   string  `yaml:"id" json:"id"`
	Name string  `yaml:"name" json:"name"`
	Lat  float64 `yaml:"lat" json:"lat"`
	Lon  float64 `yaml:"lon" json:"lon"`
}

// SiteSignal is the reduced discharge signal for one site: the worst day
// among the first three forecast days, graded by the max over p75 ratio.
type SiteSignal struct {
	Site         Site            `json:"site"`
	Day          string          `json:"day"`
	DischargeMax float64         `json:"discharge_max"`
	DischargeP75 float64         `json:"discharge_p75"`
	Ratio        float64         `json:"ratio_p75"`
	Severity     alerts.Severity `json:"severity"`
	URL          string          `json:"url"`
}

// FloodSignal aggregates the site signals, worst site first.
type FloodSignal struct {
	MaxRatioP75 float64      `json:"max_ratio_p75"`
	SiteMax     string       `json:"site_max"`
	Details     []SiteSignal `json:"details"`
}

type FloodAPI struct {
	base   string
	proxy  Proxy
	client *http.Client
}

func NewFloodAPI(base string, proxy Proxy, client *http.Client) *FloodAPI {
	return &FloodAPI{
		base:   base,
		proxy:  proxy,
		client: client,
	}
}

func (f *FloodAPI) SiteURL(s Site) string {
	q := url.Values{}
	q.Set("latitude", fmt.Sprintf("%g", s.Lat))
	q.Set("longitude", fmt.Sprintf("%g", s.Lon))
	q.Set("daily", "river_discharge,river_discharge_p75,river_discharge_max")
	q.Set("forecast_days", "7")
	q.Set("past_days", "0")
	q.Set("timeformat", "iso8601")

	return f.proxy.Maybe(f.base + "?" + q.Encode())
}

type floodResponse struct {
	Daily struct {
		Time              []string  `json:"time"`
		RiverDischargeMax []float64 `json:"river_discharge_max"`
		RiverDischargeP75 []float64 `json:"river_discharge_p75"`
	} `json:"daily"`
}

// Signals queries every configured site and reduces the daily series to a
// per site worst ratio. Sites that fail or return unusable series are
// skipped, only a fully empty result is an error.
func (f *FloodAPI) Signals(ctx context.Context, sites []Site) (*FloodSignal, error) {
	details := make([]SiteSignal, 0, len(sites))

	for _, s := range sites {
		u := f.SiteURL(s)

		b, err := getJSON(ctx, f.client, u)
		if err != nil {
			continue
		}

		resp := floodResponse{}
		if json.Unmarshal(b, &resp) != nil {
			continue
		}

		signal, ok := reduceSite(s, u, resp)
		if !ok {
			continue
		}

		details = append(details, signal)
	}

	if len(details) == 0 {
		return nil, &fetch.NetworkError{Message: "no flood data returned"}
	}

	sort.SliceStable(details, func(i, j int) bool {
		return details[i].Ratio > details[j].Ratio
	})

	return &FloodSignal{
		MaxRatioP75: details[0].Ratio,
		SiteMax:     fmt.Sprintf("%s (%s)", details[0].Site.Name, details[0].Day),
		Details:     details,
	}, nil
}

func reduceSite(s Site, u string, resp floodResponse) (SiteSignal, bool) {
	dm := resp.Daily.RiverDischargeMax
	p75 := resp.Daily.RiverDischargeP75

	if len(dm) == 0 || len(p75) == 0 {
		return SiteSignal{}, false
	}

	n := min(3, min(len(dm), len(p75)))

	signal := SiteSignal{Site: s, Day: "", URL: u}
	found := false

	for i := 0; i < n; i++ {
		if p75[i] <= 0 {
			continue
		}

		ratio := dm[i] / p75[i]
		if ratio > signal.Ratio {
			signal.Ratio = ratio
			signal.DischargeMax = dm[i]
			signal.DischargeP75 = p75[i]
			if i < len(resp.Daily.Time) {
				signal.Day = resp.Daily.Time[i]
			}
			found = true
		}
	}

	if !found {
		return SiteSignal{}, false
	}

	signal.Severity = alerts.SeverityFromRatio(signal.Ratio)

	return signal, true
}

// FeatureCollectionFromSignal turns the site signals into flood-site point
// features for the map.
func FeatureCollectionFromSignal(signal *FloodSignal) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	if signal == nil {
		return fc
	}

	for _, d := range signal.Details {
		f := geojson.NewFeature(orb.Point{d.Site.Lon, d.Site.Lat})
		f.Properties["id"] = d.Site.ID
		f.Properties["name"] = d.Site.Name
		f.Properties["severity"] = string(d.Severity)
		f.Properties["ratio_p75"] = d.Ratio
		f.Properties["day"] = d.Day
		f.Properties["discharge_max"] = d.DischargeMax
		f.Properties["discharge_p75"] = d.DischargeP75
		f.Properties["url"] = d.URL
		fc.Append(f)
	}

	return features.Normalize(fc, features.KindFloodSite)
}

// Metrics exposes the live flood signal in the shape the alert rules
// address it.
func (s *FloodSignal) Metrics() map[string]any {
	if s == nil {
		return nil
	}
	return map[string]any{
		"max_ratio_p75": s.MaxRatioP75,
		"site_max":      s.SiteMax,
	}
}
