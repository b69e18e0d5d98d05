package advisor

import (
	"strings"

	"agroadvisor/models"
)

// Rotation suggests the next crop sequence from the most recent crop in
// the profile history (case-insensitive). No history gets the generic
// default plan.
func Rotation(profile *models.FarmerProfile) []string {
	last := ""
	if profile != nil && len(profile.CropHistory) > 0 {
		last = strings.ToLower(profile.CropHistory[len(profile.CropHistory)-1])
	}
	switch last {
	case "rice", "wheat", "maize":
		return []string{"legume (soybean/chickpea)", "oilseed (mustard/sunflower)", "vegetable (tomato/onion)"}
	case "cotton", "sugarcane":
		return []string{"pulse (cowpea/green gram)", "cereal (maize)", "forage (sorghum/berseem)"}
	default:
		return []string{"cereal", "legume", "vegetable"}
	}
}
