package advisor

import (
	"strings"

	"agroadvisor/models"
)

// Climate returns ordered advisory tips. Conditional tips come first in
// fixed rule order; the two general tips close every list. A present 0°C
// reading counts as cold stress; only a missing reading skips the
// temperature rules.
func Climate(profile *models.FarmerProfile, obs *models.FarmObservation) []string {
	tips := []string{}
	if profile != nil && profile.SurroundingEnv != nil && strings.Contains(*profile.SurroundingEnv, "forest") {
		tips = append(tips, "Watch for wildlife and pest pressure near forest edges; use traps and barriers.")
	}
	if obs != nil && obs.WindKPH != nil && *obs.WindKPH > 30 {
		tips = append(tips, "High winds expected; stake young plants and secure mulches or covers.")
	}
	if obs != nil && obs.TempC != nil && *obs.TempC > 35 {
		tips = append(tips, "Heat stress risk; irrigate early morning, add shade nets for seedlings.")
	}
	if obs != nil && obs.TempC != nil && *obs.TempC < 10 {
		tips = append(tips, "Cold stress risk; consider row covers or mulches to retain soil heat.")
	}
	tips = append(tips, "Adopt mulching to conserve moisture and suppress weeds.")
	tips = append(tips, "Use integrated pest management (IPM): monitoring, thresholds, biological controls.")
	return tips
}
