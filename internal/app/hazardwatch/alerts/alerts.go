package alerts

import (
	"io"
	"sort"
	"strings"

	"gopkg.in/yaml.v2"
)

type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityWarning  Severity = "warning"
	SeverityWatch    Severity = "watch"
)

func (s Severity) Rank() int {
	switch s {
	case SeverityCritical:
		return 0
	case SeverityWarning:
		return 1
	case SeverityWatch:
		return 2
	default:
		return 3
	}
}

// Metrics is a nested snapshot of domain signals, addressed by dotted
// paths such as "forecast.rain_mm_24h". Absent paths read as not present,
// which makes any ≥ comparison fail.
type Metrics map[string]any

func (m Metrics) Get(path string) (float64, bool) {
	parts := strings.Split(path, ".")

	var cur any = map[string]any(m)
	for _, p := range parts {
		node, ok := cur.(map[string]any)
		if !ok {
			return 0, false
		}
		cur, ok = node[p]
		if !ok {
			return 0, false
		}
	}

	switch v := cur.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	default:
		return 0, false
	}
}

// Set writes a value at a dotted path, creating intermediate maps.
func (m Metrics) Set(path string, value any) {
	parts := strings.Split(path, ".")

	cur := map[string]any(m)
	for _, p := range parts[:len(parts)-1] {
		next, ok := cur[p].(map[string]any)
		if !ok {
			next = make(map[string]any)
			cur[p] = next
		}
		cur = next
	}

	cur[parts[len(parts)-1]] = value
}

// Clause is a single metric ≥ bound comparison.
type Clause struct {
	Metric string  `yaml:"metric" json:"metric"`
	Gte    float64 `yaml:"gte" json:"gte"`
}

// Predicate holds clauses that must all hold.
type Predicate struct {
	All []Clause `yaml:"all" json:"all"`
}

// Threshold fires when any of its predicates holds. Thresholds are listed
// most severe first and the first match wins.
type Threshold struct {
	Severity Severity    `yaml:"severity" json:"severity"`
	Any      []Predicate `yaml:"any" json:"any"`
}

type Rule struct {
	ID         string      `yaml:"id" json:"id"`
	Title      string      `yaml:"title" json:"title"`
	Evidence   []string    `yaml:"evidence" json:"evidence"`
	Thresholds []Threshold `yaml:"thresholds" json:"thresholds"`
}

type Alert struct {
	RuleID   string   `json:"ruleId"`
	Title    string   `json:"title"`
	Severity Severity `json:"severity"`
	Evidence []string `json:"evidence"`
}

type config struct {
	Rules []Rule `yaml:"rules"`
}

func LoadRules(r io.Reader) ([]Rule, error) {
	c := config{}
	err := yaml.NewDecoder(r).Decode(&c)
	if err != nil {
		return nil, err
	}
	return c.Rules, nil
}

// Evaluate scans every rule's thresholds in declared order and takes the
// first whose predicate holds over metrics, so a rule contributes at most
// one alert. The result is sorted critical before warning before watch.
// Evaluate never fails, absent metrics simply do not trigger.
func Evaluate(m Metrics, rules []Rule) []Alert {
	out := make([]Alert, 0)

	for _, r := range rules {
		for _, t := range r.Thresholds {
			if !holds(m, t.Any) {
				continue
			}

			out = append(out, Alert{
				RuleID:   r.ID,
				Title:    r.Title,
				Severity: t.Severity,
				Evidence: r.Evidence,
			})
			break
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Severity.Rank() < out[j].Severity.Rank()
	})

	return out
}

// EvidenceUnion deduplicates the evidence keys of the fired alerts,
// keeping the order of first appearance.
func EvidenceUnion(alerts []Alert) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)

	for _, a := range alerts {
		for _, e := range a.Evidence {
			if _, ok := seen[e]; ok {
				continue
			}
			seen[e] = struct{}{}
			out = append(out, e)
		}
	}

	return out
}

// SeverityFromRatio grades a discharge max over p75 ratio.
func SeverityFromRatio(ratio float64) Severity {
	switch {
	case ratio >= 1.5:
		return SeverityCritical
	case ratio >= 1.1:
		return SeverityWarning
	default:
		return SeverityWatch
	}
}

func holds(m Metrics, any_ []Predicate) bool {
	for _, p := range any_ {
		if len(p.All) == 0 {
			continue
		}

		ok := true
		for _, c := range p.All {
			v, present := m.Get(c.Metric)
			if !present || v < c.Gte {
				ok = false
				break
			}
		}

		if ok {
			return true
		}
	}

	return false
}
