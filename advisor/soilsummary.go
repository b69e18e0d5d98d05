package advisor

import (
	"github.com/montanaflynn/stats"

	"agroadvisor/models"
)

// MetricSummary aggregates one soil metric across a farmer's tests.
type MetricSummary struct {
	Mean    float64 `json:"mean"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Samples int     `json:"samples"`
}

// SoilSummary condenses a farmer's soil tests into per-metric stats.
// Metrics with no present values are omitted; absent fields contribute
// nothing, they do not count as zero samples.
func SoilSummary(tests []*models.SoilTest) map[string]MetricSummary {
	series := map[string][]float64{}
	add := func(metric string, v *float64) {
		if v != nil {
			series[metric] = append(series[metric], *v)
		}
	}
	for _, t := range tests {
		if t == nil {
			continue
		}
		add("ph", t.PH)
		add("nitrogen_ppm", t.NitrogenPPM)
		add("phosphorus_ppm", t.PhosphorusPPM)
		add("potassium_ppm", t.PotassiumPPM)
		add("organic_matter_pct", t.OrganicMatterPct)
		add("ec_dS_m", t.ECdSm)
	}

	out := make(map[string]MetricSummary, len(series))
	for metric, vals := range series {
		mean, _ := stats.Mean(vals)
		min, _ := stats.Min(vals)
		max, _ := stats.Max(vals)
		mean, _ = stats.Round(mean, 3)
		out[metric] = MetricSummary{Mean: mean, Min: min, Max: max, Samples: len(vals)}
	}
	return out
}
