package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/diwise/hazard-watch/internal/app/api"
	app "github.com/diwise/hazard-watch/internal/app/hazardwatch"
	"github.com/diwise/hazard-watch/internal/pkg/features"
	"github.com/diwise/hazard-watch/internal/pkg/sources"
	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/buildinfo"
	"github.com/diwise/service-chassis/pkg/infrastructure/env"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/go-chi/chi/v5"
	"github.com/paulmach/orb/geojson"
)

const serviceName string = "hazard-watch"

func main() {
	serviceVersion := buildinfo.SourceVersion()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ctx, log, cleanup := o11y.Init(ctx, serviceName, serviceVersion, "json")
	defer cleanup()

	var opa, fp string

	flag.StringVar(&opa, "policies", "/opt/diwise/config/authz.rego", "An authorization policy file")
	flag.StringVar(&fp, "config", "/opt/diwise/config/hazard-watch.yaml", "A configuration file with sync tunables, flood sites and alert rules")
	flag.Parse()

	cfg, err := loadConfig(ctx, fp)
	if err != nil {
		log.Error("could not load configuration", "err", err.Error())
		os.Exit(1)
	}

	config := messaging.LoadConfiguration(ctx, serviceName, log)
	messenger, err := messaging.Initialize(ctx, config)
	if err != nil {
		log.Error("failed to init messenger")
		os.Exit(1)
	}
	messenger.Start()

	snapshot := api.NewSnapshot()
	a := app.New(ctx, cfg, newSources(ctx, cfg), snapshot, messenger)

	messenger.RegisterTopicMessageHandler("discharge.observed", app.NewDischargeHandler(a))

	err = a.Refresh(ctx)
	if err != nil {
		log.Error("initial refresh failed", "err", err.Error())
	}

	r, err := newRouter(ctx, opa, a, snapshot)
	if err != nil {
		log.Error("could not setup router", "err", err.Error())
		os.Exit(1)
	}

	port := env.GetVariableOrDefault(ctx, "SERVICE_PORT", "8080")
	webServer := &http.Server{Addr: ":" + port, Handler: r}

	go func() {
		if err := webServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("could not listen and serve", "err", err.Error())
			os.Exit(1)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	webServer.Shutdown(ctx)
	messenger.Close()
}

func newRouter(ctx context.Context, opa string, a app.HazardApp, snapshot *api.Snapshot) (*chi.Mux, error) {
	policies, err := os.Open(opa)
	if err != nil {
		return nil, fmt.Errorf("unable to open opa policy file: %s", err.Error())
	}
	defer policies.Close()

	return api.Register(ctx, a, snapshot, policies)
}

func loadConfig(ctx context.Context, fp string) (*app.Config, error) {
	log := logging.GetFromContext(ctx)

	f, err := os.Open(fp)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Debug("no configuration file found, using defaults", "path", fp)
			return app.DefaultConfig(), nil
		}
		return nil, err
	}
	defer f.Close()

	return app.LoadConfig(ctx, f)
}

func newSources(ctx context.Context, cfg *app.Config) app.Sources {
	proxy := sources.Proxy{Base: env.GetVariableOrDefault(ctx, "PROXY_BASE_URL", "")}

	overpass := sources.NewOverpass(
		env.GetVariableOrDefault(ctx, "OVERPASS_URL", "https://overpass-api.de/api/interpreter"),
		cfg.MaxFeatures, nil)

	flood := sources.NewFloodAPI(
		env.GetVariableOrDefault(ctx, "FLOOD_API_URL", "https://flood-api.open-meteo.com/v1/flood"),
		proxy, nil)

	return app.Sources{
		Boundary:       featureService(ctx, "BOUNDARY_LAYER_URL", features.KindBoundary, proxy),
		StormPositions: featureService(ctx, "STORM_POSITIONS_LAYER_URL", features.KindStormPosition, proxy),
		StormTracks:    featureService(ctx, "STORM_TRACKS_LAYER_URL", features.KindStormTrack, proxy),
		Landslides:     featureService(ctx, "LANDSLIDES_LAYER_URL", features.KindLandslide, proxy),
		Assets:         &assetSource{overpass: overpass},
		Flood:          flood,
	}
}

func featureService(ctx context.Context, envVar string, kind features.Kind, proxy sources.Proxy) app.FeatureSource {
	u := env.GetVariableOrDefault(ctx, envVar, "")
	if u == "" {
		return nil
	}
	return sources.NewFeatureService(u, kind, proxy, nil)
}

type assetSource struct {
	overpass *sources.Overpass
}

func (s *assetSource) Fetch(ctx context.Context, vp app.Viewport) (*geojson.FeatureCollection, error) {
	return s.overpass.Query(ctx, sources.AssetQuery(vp.South, vp.West, vp.North, vp.East))
}
