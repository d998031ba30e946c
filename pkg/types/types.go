package types

import (
	"encoding/json"
	"time"
)

// AlertsEvaluated is published on every alert evaluation, carrying the
// fired alerts and the union of their evidence keys.
type AlertsEvaluated struct {
	ID        string    `json:"id"`
	Alerts    any       `json:"alerts"`
	Evidence  []string  `json:"evidence"`
	Timestamp time.Time `json:"timestamp"`
}

func (a *AlertsEvaluated) Body() []byte {
	b, _ := json.Marshal(a)
	return b
}
func (a *AlertsEvaluated) ContentType() string {
	return "application/vnd.diwise.hazard.alerts+json"
}
func (a *AlertsEvaluated) TopicName() string {
	return "hazard.alerts"
}
