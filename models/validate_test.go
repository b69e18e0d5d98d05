package models

import (
	"errors"
	"testing"
)

func fp(v float64) *float64 { return &v }

func TestFarmerProfileValidate(t *testing.T) {
	p := FarmerProfile{Name: "Asha Patel", FarmSizeHa: fp(2.5), ElevationM: fp(450)}
	if err := p.Validate(); err != nil {
		t.Fatalf("valid profile rejected: %v", err)
	}

	bad := FarmerProfile{Name: "  ", FarmSizeHa: fp(-1), ElevationM: fp(9500)}
	err := bad.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	var verrs ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected ValidationErrors, got %T", err)
	}
	fields := verrs.Fields()
	for _, f := range []string{"name", "farm_size_ha", "elevation_m"} {
		if _, ok := fields[f]; !ok {
			t.Errorf("expected error for field %q, got %v", f, fields)
		}
	}
}

func TestSoilTestValidate(t *testing.T) {
	if err := (&SoilTest{}).Validate(); err != nil {
		t.Fatalf("empty soil test should pass: %v", err)
	}
	if err := (&SoilTest{PH: fp(14), OrganicMatterPct: fp(0)}).Validate(); err != nil {
		t.Fatalf("boundary values should pass: %v", err)
	}

	err := (&SoilTest{PH: fp(14.1), NitrogenPPM: fp(-3)}).Validate()
	var verrs ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected ValidationErrors, got %v", err)
	}
	if len(verrs) != 2 {
		t.Errorf("expected 2 field errors, got %d: %v", len(verrs), verrs)
	}
}

func TestFarmObservationValidate(t *testing.T) {
	obs := FarmObservation{HumidityPct: fp(100), RainfallMM: fp(0), WindKPH: fp(12)}
	if err := obs.Validate(); err != nil {
		t.Fatalf("valid observation rejected: %v", err)
	}
	// Negative temperatures are legitimate readings.
	if err := (&FarmObservation{TempC: fp(-15)}).Validate(); err != nil {
		t.Fatalf("negative temperature rejected: %v", err)
	}
	if err := (&FarmObservation{HumidityPct: fp(101)}).Validate(); err == nil {
		t.Error("humidity above 100 should fail")
	}
}

func TestCollectionMapping(t *testing.T) {
	want := map[Kind]string{
		KindFarmerProfile:   "farmerprofile",
		KindSoilTest:        "soiltest",
		KindFarmObservation: "farmobservation",
		KindAnalysisResult:  "analysisresult",
		KindFarmerAccount:   "farmeraccount",
	}
	for kind, name := range want {
		if got := kind.Collection(); got != name {
			t.Errorf("%s: expected collection %q, got %q", kind, name, got)
		}
	}
}
