package alerts

import (
	"strings"
	"testing"

	"github.com/matryer/is"
)

func TestFloodRuleAtHeavyRainIsCritical(t *testing.T) {
	is := is.New(t)

	m := Metrics{"forecast": map[string]any{"rain_mm_24h": 160.0}}

	out := Evaluate(m, DefaultRules())

	is.Equal(len(out), 1)
	is.Equal(out[0].RuleID, "flood_local")
	is.Equal(out[0].Severity, SeverityCritical)
}

func TestFloodRuleStaysQuietWithoutRain(t *testing.T) {
	is := is.New(t)

	m := Metrics{
		"forecast": map[string]any{"rain_mm_24h": 0.0},
		"anomaly":  map[string]any{"rain_mm_14d": 0.0},
	}

	out := Evaluate(m, DefaultRules())
	is.Equal(len(out), 0)
}

func TestCombinedClauseTriggersCritical(t *testing.T) {
	is := is.New(t)

	m := Metrics{
		"forecast": map[string]any{"rain_mm_24h": 110.0},
		"anomaly":  map[string]any{"rain_mm_14d": 80.0},
	}

	out := Evaluate(m, DefaultRules())
	is.Equal(len(out), 1)
	is.Equal(out[0].Severity, SeverityCritical)
}

func TestRuleContributesAtMostOneAlert(t *testing.T) {
	is := is.New(t)

	// both the critical and the watch cutoff hold, the first wins
	m := Metrics{"forecast": map[string]any{"rain_mm_24h": 200.0}}

	out := Evaluate(m, DefaultRules())
	is.Equal(len(out), 1)
	is.Equal(out[0].Severity, SeverityCritical)
}

func TestAlertsSortCriticalFirst(t *testing.T) {
	is := is.New(t)

	m := Metrics{
		"forecast":   map[string]any{"rain_mm_24h": 60.0},
		"flood_live": map[string]any{"max_ratio_p75": 1.7},
	}

	out := Evaluate(m, DefaultRules())

	is.Equal(len(out), 2)
	is.Equal(out[0].RuleID, "flood_live")
	is.Equal(out[0].Severity, SeverityCritical)
	is.Equal(out[1].RuleID, "flood_local")
	is.Equal(out[1].Severity, SeverityWatch)
}

func TestMissingMetricsDoNotTrigger(t *testing.T) {
	is := is.New(t)

	out := Evaluate(Metrics{}, DefaultRules())
	is.Equal(len(out), 0)
}

func TestMetricsGetAndSet(t *testing.T) {
	is := is.New(t)

	m := Metrics{}
	m.Set("flood_live.max_ratio_p75", 1.2)

	v, ok := m.Get("flood_live.max_ratio_p75")
	is.True(ok)
	is.Equal(v, 1.2)

	_, ok = m.Get("flood_live.missing")
	is.True(!ok)

	_, ok = m.Get("flood_live.max_ratio_p75.too_deep")
	is.True(!ok)
}

func TestEvidenceUnionKeepsFirstAppearanceOrder(t *testing.T) {
	is := is.New(t)

	union := EvidenceUnion([]Alert{
		{Evidence: []string{"a", "b"}},
		{Evidence: []string{"b", "c", "a"}},
	})

	is.Equal(union, []string{"a", "b", "c"})
}

func TestSeverityFromRatio(t *testing.T) {
	is := is.New(t)

	is.Equal(SeverityFromRatio(1.7), SeverityCritical)
	is.Equal(SeverityFromRatio(1.2), SeverityWarning)
	is.Equal(SeverityFromRatio(0.95), SeverityWatch)
	is.Equal(SeverityFromRatio(0.1), SeverityWatch)
}

func TestLoadRules(t *testing.T) {
	is := is.New(t)

	yamlConfig := `
rules:
  - id: "heat"
    title: "Heat stress"
    evidence:
      - "met.heat_index_c_max"
    thresholds:
      - severity: "warning"
        any:
          - all:
              - metric: "met.heat_index_c_max"
                gte: 41
`

	rules, err := LoadRules(strings.NewReader(yamlConfig))
	is.NoErr(err)
	is.Equal(len(rules), 1)
	is.Equal(rules[0].ID, "heat")

	out := Evaluate(Metrics{"met": map[string]any{"heat_index_c_max": 42.0}}, rules)
	is.Equal(len(out), 1)
	is.Equal(out[0].Severity, SeverityWarning)
}
