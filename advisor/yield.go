package advisor

import (
	"strings"

	"agroadvisor/models"
)

// Rough heuristic baseline yields, kg per hectare.
var baseYields = map[string]int{
	"wheat":   3500,
	"rice":    4500,
	"maize":   5000,
	"soybean": 2500,
	"cotton":  2200,
	"potato":  20000,
	"tomato":  30000,
}

const defaultBaseYield = 3000

// Yield forecasts per-hectare output. Crop resolution: observation's
// target crop, else the most recent profile crop, else wheat. The
// modifier is additive and unclamped, so pathological inputs can drive
// the forecast negative. Truncation matches int() semantics.
func Yield(profile *models.FarmerProfile, soil *models.SoilTest, obs *models.FarmObservation) models.YieldForecast {
	crop := "wheat"
	switch {
	case obs != nil && obs.TargetCrop != nil && *obs.TargetCrop != "":
		crop = *obs.TargetCrop
	case profile != nil && len(profile.CropHistory) > 0:
		crop = profile.CropHistory[len(profile.CropHistory)-1]
	}
	crop = strings.ToLower(crop)

	base, ok := baseYields[crop]
	if !ok {
		base = defaultBaseYield
	}

	modifier := 1.0
	if soil != nil && soil.PH != nil && (*soil.PH < 5.5 || *soil.PH > 8.5) {
		modifier -= 0.15
	}
	if soil != nil && soil.OrganicMatterPct != nil && *soil.OrganicMatterPct >= 2.0 {
		modifier += 0.05
	}
	if obs != nil && obs.RainfallMM != nil && *obs.RainfallMM < 10 {
		modifier -= 0.1
	}
	if obs != nil && obs.HumidityPct != nil && *obs.HumidityPct > 85 {
		modifier -= 0.05
	}

	return models.YieldForecast{Crop: crop, YieldKgPerHa: int(float64(base) * modifier)}
}
