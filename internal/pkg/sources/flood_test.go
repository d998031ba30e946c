package sources

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/diwise/hazard-watch/internal/app/hazardwatch/alerts"
	"github.com/matryer/is"
)

func floodBody(maxes, p75s []float64) string {
	days := ""
	dm := ""
	p75 := ""
	for i := range maxes {
		if i > 0 {
			days, dm, p75 = days+",", dm+",", p75+","
		}
		days += fmt.Sprintf(`"2026-09-%02d"`, i+1)
		dm += fmt.Sprintf("%g", maxes[i])
		p75 += fmt.Sprintf("%g", p75s[i])
	}
	return fmt.Sprintf(`{"daily": {"time": [%s], "river_discharge_max": [%s], "river_discharge_p75": [%s]}}`, days, dm, p75)
}

func TestSignalsReducesToWorstDayPerSite(t *testing.T) {
	is := is.New(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("latitude") {
		case "23.1":
			// worst ratio 1800/1000 = 1.8 on day two
			w.Write([]byte(floodBody([]float64{900, 1800, 600}, []float64{850, 1000, 700})))
		default:
			// worst ratio 950/1000 = 0.95 on day one; day four would be
			// worse but only the first three days count
			w.Write([]byte(floodBody([]float64{950, 100, 100, 9000}, []float64{1000, 1000, 1000, 1000})))
		}
	}))
	defer srv.Close()

	f := NewFloodAPI(srv.URL, Proxy{}, srv.Client())

	signal, err := f.Signals(context.Background(), []Site{
		{ID: "HAV", Name: "Havana", Lat: 23.1, Lon: -82.4},
		{ID: "SCU", Name: "Santiago", Lat: 20.0, Lon: -75.8},
	})
	is.NoErr(err)

	is.Equal(len(signal.Details), 2)
	is.Equal(signal.Details[0].Site.ID, "HAV") // worst site first
	is.Equal(signal.Details[0].Ratio, 1.8)
	is.Equal(signal.Details[0].Day, "2026-09-02")
	is.Equal(signal.Details[0].Severity, alerts.SeverityCritical)
	is.Equal(signal.Details[1].Severity, alerts.SeverityWatch)

	is.Equal(signal.MaxRatioP75, 1.8)
	is.Equal(signal.SiteMax, "Havana (2026-09-02)")

	m := signal.Metrics()
	is.Equal(m["max_ratio_p75"], 1.8)
}

func TestSignalsSkipsFailingSites(t *testing.T) {
	is := is.New(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("latitude") == "23.1" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(floodBody([]float64{1200}, []float64{1000})))
	}))
	defer srv.Close()

	f := NewFloodAPI(srv.URL, Proxy{}, srv.Client())

	signal, err := f.Signals(context.Background(), []Site{
		{ID: "HAV", Lat: 23.1},
		{ID: "SCU", Name: "Santiago", Lat: 20.0},
	})
	is.NoErr(err)
	is.Equal(len(signal.Details), 1)
	is.Equal(signal.Details[0].Site.ID, "SCU")
}

func TestSignalsFailsWhenNoSiteResponds(t *testing.T) {
	is := is.New(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	f := NewFloodAPI(srv.URL, Proxy{}, srv.Client())

	_, err := f.Signals(context.Background(), []Site{{ID: "HAV", Lat: 23.1}})
	is.True(err != nil)
}

func TestSignalsIgnoresNonPositiveP75(t *testing.T) {
	is := is.New(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(floodBody([]float64{100, 500}, []float64{0, 400})))
	}))
	defer srv.Close()

	f := NewFloodAPI(srv.URL, Proxy{}, srv.Client())

	signal, err := f.Signals(context.Background(), []Site{{ID: "HAV", Name: "Havana", Lat: 23.1}})
	is.NoErr(err)
	is.Equal(signal.Details[0].Ratio, 1.25) // the zero p75 day is skipped
}

func TestFeatureCollectionFromSignal(t *testing.T) {
	is := is.New(t)

	fc := FeatureCollectionFromSignal(&FloodSignal{
		Details: []SiteSignal{
			{Site: Site{ID: "HAV", Name: "Havana", Lat: 23.1, Lon: -82.4}, Ratio: 1.8, Severity: alerts.SeverityCritical, Day: "2026-09-02"},
		},
	})

	is.Equal(len(fc.Features), 1)
	is.Equal(fc.Features[0].Properties["severity"], "critical")
	is.Equal(fc.Features[0].Point(), fc.Features[0].Geometry)
}
