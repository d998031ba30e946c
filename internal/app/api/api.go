package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/diwise/hazard-watch/internal/app/hazardwatch"
	"github.com/diwise/hazard-watch/internal/pkg/presentation/auth"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("hazard-watch/api")

var _ hazardwatch.Renderer = &Snapshot{}

func Register(ctx context.Context, app hazardwatch.HazardApp, snapshot *Snapshot, policies io.Reader) (*chi.Mux, error) {
	log := logging.GetFromContext(ctx)

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	authenticator, err := auth.NewAuthenticator(ctx, log, policies)
	if err != nil {
		return nil, fmt.Errorf("failed to create api authenticator: %w", err)
	}

	r.Route("/api/v0", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(authenticator)

			r.Get("/viewport", viewportHandler(log, app, snapshot))
			r.Get("/layers", layersHandler(log, app))
			r.Get("/alerts", alertsHandler(log, app))
			r.Post("/offline", offlineHandler(log, app))
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	return r, nil
}

func viewportHandler(log *slog.Logger, a hazardwatch.HazardApp, snapshot *Snapshot) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "sync-viewport")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, logger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		w.Header().Set("Content-Type", "application/vnd.api+json")

		vp, err := parseViewport(r)
		if err != nil {
			logger.Debug("invalid viewport parameters", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(err.Error()))
			return
		}

		a.OnViewportChanged(ctx, vp)

		state, health := a.ViewportState()

		response := NewApiResponse(r, ViewportStatus{
			State:  state,
			Health: health,
			Render: snapshot.View(),
		}, 1, 1, 0, 1)

		w.WriteHeader(http.StatusOK)
		w.Write(response.Byte())
	}
}

func layersHandler(log *slog.Logger, a hazardwatch.HazardApp) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "get-layers")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, _ = o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		w.Header().Set("Content-Type", "application/vnd.api+json")

		layers := a.Layers(ctx)
		layers.Health = a.Health(ctx)

		response := NewApiResponse(r, layers, 1, 1, 0, 1)

		w.WriteHeader(http.StatusOK)
		w.Write(response.Byte())
	}
}

func alertsHandler(log *slog.Logger, a hazardwatch.HazardApp) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "get-alerts")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, logger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		w.Header().Set("Content-Type", "application/vnd.api+json")

		report := a.Alerts(ctx)
		total := uint64(len(report.Alerts))

		offset, limit, err := parsePaging(r, total)
		if err != nil {
			logger.Debug("invalid paging parameters", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(err.Error()))
			return
		}

		if offset > total {
			offset = total
		}
		end := offset + limit
		if end > total {
			end = total
		}
		report.Alerts = report.Alerts[offset:end]

		response := NewApiResponse(r, report, end-offset, total, offset, limit)

		w.WriteHeader(http.StatusOK)
		w.Write(response.Byte())
	}
}

// parsePaging reads optional offset and limit query parameters. The limit
// defaults to the full result size so unpaged requests behave as before.
func parsePaging(r *http.Request, total uint64) (uint64, uint64, error) {
	q := r.URL.Query()

	var offset uint64
	limit := total

	if s := q.Get("offset"); s != "" {
		v, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return 0, 0, fmt.Errorf("invalid offset %q", s)
		}
		offset = v
	}

	if s := q.Get("limit"); s != "" {
		v, err := strconv.ParseUint(s, 10, 64)
		if err != nil || v == 0 {
			return 0, 0, fmt.Errorf("invalid limit %q", s)
		}
		limit = v
	}

	return offset, limit, nil
}

func offlineHandler(log *slog.Logger, a hazardwatch.HazardApp) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "toggle-offline")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, logger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		w.Header().Set("Content-Type", "application/vnd.api+json")

		body := struct {
			Offline bool `json:"offline"`
		}{}

		err = json.NewDecoder(r.Body).Decode(&body)
		if err != nil {
			logger.Debug("could not decode offline toggle", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		a.SetOffline(ctx, body.Offline)

		response := NewApiResponse(r, body, 1, 1, 0, 1)

		w.WriteHeader(http.StatusOK)
		w.Write(response.Byte())
	}
}

func parseViewport(r *http.Request) (hazardwatch.Viewport, error) {
	q := r.URL.Query()

	edge := func(name string) (float64, error) {
		s := q.Get(name)
		if s == "" {
			return 0, fmt.Errorf("missing required parameter %q", name)
		}
		return strconv.ParseFloat(s, 64)
	}

	vp := hazardwatch.Viewport{}
	var err error

	if vp.South, err = edge("south"); err != nil {
		return vp, err
	}
	if vp.West, err = edge("west"); err != nil {
		return vp, err
	}
	if vp.North, err = edge("north"); err != nil {
		return vp, err
	}
	if vp.East, err = edge("east"); err != nil {
		return vp, err
	}

	zoom := q.Get("zoom")
	if zoom == "" {
		return vp, fmt.Errorf("missing required parameter %q", "zoom")
	}
	if vp.Zoom, err = strconv.Atoi(zoom); err != nil {
		return vp, err
	}

	if vp.South > vp.North || vp.West > vp.East {
		return vp, fmt.Errorf("viewport edges are out of order")
	}

	return vp, nil
}
