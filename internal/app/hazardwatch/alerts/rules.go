package alerts

// DefaultRules mirrors the rule set shipped with the dashboard. Deployments
// override the cutoffs through the yaml configuration.
func DefaultRules() []Rule {
	return []Rule{
		{
			ID:       "flood_local",
			Title:    "Flood (precipitation)",
			Evidence: []string{"forecast.rain_mm_24h", "forecast.rain_mm_72h", "anomaly.rain_mm_14d"},
			Thresholds: []Threshold{
				{
					Severity: SeverityCritical,
					Any: []Predicate{
						{All: []Clause{{Metric: "forecast.rain_mm_24h", Gte: 150}}},
						{All: []Clause{
							{Metric: "forecast.rain_mm_24h", Gte: 100},
							{Metric: "anomaly.rain_mm_14d", Gte: 75},
						}},
					},
				},
				{
					Severity: SeverityWarning,
					Any: []Predicate{
						{All: []Clause{{Metric: "forecast.rain_mm_24h", Gte: 100}}},
						{All: []Clause{{Metric: "forecast.rain_mm_72h", Gte: 150}}},
					},
				},
				{
					Severity: SeverityWatch,
					Any: []Predicate{
						{All: []Clause{{Metric: "forecast.rain_mm_24h", Gte: 50}}},
					},
				},
			},
		},
		{
			ID:       "flood_live",
			Title:    "Flood (rivers, live)",
			Evidence: []string{"flood_live.max_ratio_p75", "flood_live.site_max"},
			Thresholds: []Threshold{
				{
					Severity: SeverityCritical,
					Any:      []Predicate{{All: []Clause{{Metric: "flood_live.max_ratio_p75", Gte: 1.5}}}},
				},
				{
					Severity: SeverityWarning,
					Any:      []Predicate{{All: []Clause{{Metric: "flood_live.max_ratio_p75", Gte: 1.1}}}},
				},
				{
					Severity: SeverityWatch,
					Any:      []Predicate{{All: []Clause{{Metric: "flood_live.max_ratio_p75", Gte: 0.9}}}},
				},
			},
		},
	}
}
