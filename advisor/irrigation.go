package advisor

import "agroadvisor/models"

// Soil-type lookup is a case-sensitive exact match; anything unrecognized
// keeps the default silently.
var soilIrrigation = map[string]struct {
	frequencyDays int
	amountMM      int
	note          string
}{
	"sandy":      {2, 15, "Sandy soils drain fast; irrigate more frequently with smaller amounts."},
	"sandy loam": {2, 15, "Sandy soils drain fast; irrigate more frequently with smaller amounts."},
	"loamy sand": {2, 15, "Sandy soils drain fast; irrigate more frequently with smaller amounts."},
	"loam":       {3, 20, ""},
	"loamy":      {3, 20, ""},
	"clay":       {4, 25, "Clay soils retain water longer; reduce frequency but increase amount."},
	"clayey":     {4, 25, "Clay soils retain water longer; reduce frequency but increase amount."},
	"silty clay": {4, 25, "Clay soils retain water longer; reduce frequency but increase amount."},
}

// Irrigation derives a watering schedule. The soil test is accepted for
// future rules but unused today. Notes accumulate in fixed rule order:
// soil type, recent rainfall, drip method.
func Irrigation(profile *models.FarmerProfile, soil *models.SoilTest, obs *models.FarmObservation) models.IrrigationSchedule {
	_ = soil

	schedule := models.IrrigationSchedule{FrequencyDays: 3, AmountMM: 20, Notes: []string{}}
	if profile != nil && profile.SoilType != nil {
		if entry, ok := soilIrrigation[*profile.SoilType]; ok {
			schedule.FrequencyDays = entry.frequencyDays
			schedule.AmountMM = entry.amountMM
			if entry.note != "" {
				schedule.Notes = append(schedule.Notes, entry.note)
			}
		}
	}

	if obs != nil && obs.RainfallMM != nil && *obs.RainfallMM >= 15 {
		schedule.Notes = append(schedule.Notes, "Recent rainfall detected; skip next irrigation if field is moist.")
	}
	if profile != nil && profile.IrrigationMethod != nil && *profile.IrrigationMethod == "drip" {
		schedule.Notes = append(schedule.Notes, "Using drip? Split daily in small doses for uniform moisture.")
	}
	return schedule
}
