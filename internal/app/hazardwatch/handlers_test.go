package hazardwatch

import (
	"context"
	"log/slog"
	"testing"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/matryer/is"
)

func TestDischargeObservationsMergeIntoMetrics(t *testing.T) {
	ctx := context.Background()
	is := is.New(t)

	observed := map[string]float64{}
	app := &HazardAppMock{
		ObserveFunc: func(ctx context.Context, path string, value float64) {
			observed[path] = value
		},
	}

	NewDischargeHandler(app)(ctx, msgMock(dischargeMsg), slog.Default())

	is.Equal(len(observed), 2)
	is.Equal(observed["flood_live.max_ratio_p75"], 1.7)
	is.Equal(observed["forecast.rain_mm_24h"], 120.0)
}

func TestMalformedDischargeMessageIsIgnored(t *testing.T) {
	ctx := context.Background()
	is := is.New(t)

	app := &HazardAppMock{
		ObserveFunc: func(ctx context.Context, path string, value float64) {},
	}

	NewDischargeHandler(app)(ctx, msgMock(`{"pack": "not a pack"`), slog.Default())

	is.Equal(len(app.ObserveCalls()), 0)
}

func msgMock(body string) *messaging.IncomingTopicMessageMock {
	return &messaging.IncomingTopicMessageMock{
		BodyFunc: func() []byte {
			return []byte(body)
		},
		TopicNameFunc: func() string {
			return "discharge.observed"
		},
		ContentTypeFunc: func() string {
			return "application/json"
		},
	}
}

var dischargeMsg = `{"pack":[{"bn":"HAV/discharge/","bt":1756713600,"n":"0","vs":"urn:oma:lwm2m:ext:3424"},{"n":"flood_live.max_ratio_p75","v":1.7},{"n":"forecast.rain_mm_24h","v":120},{"n":"tenant","vs":"default"}],"timestamp":"2026-09-01T08:00:00Z"}`
