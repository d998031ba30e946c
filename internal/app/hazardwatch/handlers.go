package hazardwatch

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/senml"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("hazard-watch")

// NewDischargeHandler accepts discharge.observed messages. Each senml
// record whose name is a dotted metric path is merged into the live
// metrics snapshot, which re-evaluates the alerts.
func NewDischargeHandler(app HazardApp) messaging.TopicMessageHandler {
	return func(ctx context.Context, d messaging.IncomingTopicMessage, logger *slog.Logger) {
		var err error

		ctx, span := tracer.Start(ctx, d.TopicName())
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logger, ctx)

		msg := struct {
			Pack      senml.Pack `json:"pack"`
			Timestamp time.Time  `json:"timestamp"`
		}{}

		err = json.Unmarshal(d.Body(), &msg)
		if err != nil {
			log.Error("could not unmarshal message", "err", err.Error())
			return
		}

		if msg.Pack.Validate() != nil {
			log.Error("message contains an invalid package")
			return
		}

		observed := 0

		for _, r := range msg.Pack {
			if r.Value == nil || !strings.Contains(r.Name, ".") {
				continue
			}

			app.Observe(ctx, r.Name, *r.Value)
			observed++
		}

		if observed == 0 {
			log.Debug("no metric records found in pack")
			return
		}

		log.Debug("merged live observations", "count", observed)
	}
}
