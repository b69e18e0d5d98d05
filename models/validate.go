package models

import (
	"fmt"
	"strings"
)

// FieldError describes one rejected field of an inbound payload.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors collects every out-of-range or missing-required field so
// clients see the full picture in one response.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	parts := make([]string, len(v))
	for i, e := range v {
		parts[i] = e.Field + ": " + e.Message
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Fields returns the errors as a field->message map for JSON responses.
func (v ValidationErrors) Fields() map[string]string {
	out := make(map[string]string, len(v))
	for _, e := range v {
		out[e.Field] = e.Message
	}
	return out
}

func checkRange(errs ValidationErrors, field string, val *float64, min, max float64) ValidationErrors {
	if val == nil {
		return errs
	}
	if *val < min || *val > max {
		return append(errs, FieldError{Field: field, Message: fmt.Sprintf("must be between %g and %g", min, max)})
	}
	return errs
}

func checkMin(errs ValidationErrors, field string, val *float64, min float64) ValidationErrors {
	if val == nil {
		return errs
	}
	if *val < min {
		return append(errs, FieldError{Field: field, Message: fmt.Sprintf("must be >= %g", min)})
	}
	return errs
}

// Validate enforces the declared ranges. Absent optionals always pass.
func (p *FarmerProfile) Validate() error {
	var errs ValidationErrors
	if strings.TrimSpace(p.Name) == "" {
		errs = append(errs, FieldError{Field: "name", Message: "is required"})
	}
	errs = checkMin(errs, "farm_size_ha", p.FarmSizeHa, 0)
	errs = checkRange(errs, "elevation_m", p.ElevationM, -430, 9000)
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (s *SoilTest) Validate() error {
	var errs ValidationErrors
	errs = checkRange(errs, "ph", s.PH, 0, 14)
	errs = checkMin(errs, "nitrogen_ppm", s.NitrogenPPM, 0)
	errs = checkMin(errs, "phosphorus_ppm", s.PhosphorusPPM, 0)
	errs = checkMin(errs, "potassium_ppm", s.PotassiumPPM, 0)
	errs = checkRange(errs, "organic_matter_pct", s.OrganicMatterPct, 0, 100)
	errs = checkMin(errs, "ec_dS_m", s.ECdSm, 0)
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (o *FarmObservation) Validate() error {
	var errs ValidationErrors
	errs = checkRange(errs, "humidity_pct", o.HumidityPct, 0, 100)
	errs = checkMin(errs, "rainfall_mm", o.RainfallMM, 0)
	errs = checkMin(errs, "wind_kph", o.WindKPH, 0)
	if len(errs) > 0 {
		return errs
	}
	return nil
}
