// Package advisor holds the analysis aggregation engine: pure heuristic
// functions that turn a farmer profile, a soil test and a field
// observation into advisory output. Every rule treats an absent input as
// "skip this rule", never as zero. No function here touches the store.
package advisor

import "agroadvisor/models"

// RiskAssessment maps disease/pest categories to qualitative severities.
type RiskAssessment struct {
	Disease map[string]models.Severity
	Pest    map[string]models.Severity
}

// DiseasePestRisk evaluates the baseline threshold rules against an
// observation. Rules are independent; no category short-circuits another.
// Absent humidity falls through to the "low" branch, so a missing reading
// and a genuinely low one are indistinguishable in the output. That
// matches the deployed behaviour and is pinned by tests; fixing it would
// change the result contract.
func DiseasePestRisk(obs *models.FarmObservation) RiskAssessment {
	risk := RiskAssessment{
		Disease: map[string]models.Severity{},
		Pest:    map[string]models.Severity{},
	}
	if obs == nil {
		obs = &models.FarmObservation{}
	}

	switch {
	case obs.HumidityPct != nil && *obs.HumidityPct >= 80:
		risk.Disease["fungal_general"] = models.SeverityHigh
	case obs.HumidityPct != nil && *obs.HumidityPct >= 60:
		risk.Disease["fungal_general"] = models.SeverityMedium
	default:
		risk.Disease["fungal_general"] = models.SeverityLow
	}

	if obs.TempC != nil && *obs.TempC >= 28 {
		risk.Pest["borers_aphids_general"] = models.SeverityMedium
	}
	if obs.TempC != nil && *obs.TempC >= 32 {
		risk.Pest["borers_aphids_general"] = models.SeverityHigh
	}

	if obs.RainfallMM != nil && *obs.RainfallMM > 50 {
		risk.Disease["washout_root_rot"] = models.SeverityMedium
	}

	if len(obs.PestSigns) > 0 {
		risk.Pest["observed_signs"] = models.SeverityHigh
	}
	if len(obs.DiseaseSigns) > 0 {
		risk.Disease["observed_signs"] = models.SeverityHigh
	}
	return risk
}
