package models

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestProfileFromDoc_AllowList(t *testing.T) {
	doc := bson.M{
		"_id":          primitive.NewObjectID(),
		"name":         "Asha Patel",
		"soil_type":    "clay",
		"crop_history": primitive.A{"wheat", "Maize"},
		"elevation_m":  int32(450),
		"legacy_field": "dropped",
		"phone":        12345, // wrong type, treated as absent
	}

	p := ProfileFromDoc(doc)
	if p == nil {
		t.Fatal("expected profile")
	}
	if p.Name != "Asha Patel" {
		t.Errorf("name: got %q", p.Name)
	}
	if p.SoilType == nil || *p.SoilType != "clay" {
		t.Errorf("soil_type: got %v", p.SoilType)
	}
	if len(p.CropHistory) != 2 || p.CropHistory[1] != "Maize" {
		t.Errorf("crop_history: got %v", p.CropHistory)
	}
	if p.ElevationM == nil || *p.ElevationM != 450 {
		t.Errorf("elevation_m: got %v", p.ElevationM)
	}
	if p.Phone != nil {
		t.Errorf("wrong-typed phone should be absent, got %v", *p.Phone)
	}
}

func TestProfileFromDoc_Nil(t *testing.T) {
	if ProfileFromDoc(nil) != nil {
		t.Error("nil doc should yield nil profile")
	}
	if SoilTestFromDoc(nil) != nil {
		t.Error("nil doc should yield nil soil test")
	}
	if ObservationFromDoc(nil) != nil {
		t.Error("nil doc should yield nil observation")
	}
}

func TestSoilTestFromDoc_NumericWidths(t *testing.T) {
	doc := bson.M{"ph": 6.5, "nitrogen_ppm": int64(40), "potassium_ppm": int32(110)}
	s := SoilTestFromDoc(doc)
	if s.PH == nil || *s.PH != 6.5 {
		t.Errorf("ph: got %v", s.PH)
	}
	if s.NitrogenPPM == nil || *s.NitrogenPPM != 40 {
		t.Errorf("nitrogen_ppm: got %v", s.NitrogenPPM)
	}
	if s.PotassiumPPM == nil || *s.PotassiumPPM != 110 {
		t.Errorf("potassium_ppm: got %v", s.PotassiumPPM)
	}
	if s.OrganicMatterPct != nil {
		t.Error("absent field should stay nil, not zero")
	}
}

func TestObservationFromDoc_MixedList(t *testing.T) {
	doc := bson.M{
		"target_crop": "rice",
		"pest_signs":  primitive.A{"aphids", int32(3), "borers"},
	}
	o := ObservationFromDoc(doc)
	if o.TargetCrop == nil || *o.TargetCrop != "rice" {
		t.Errorf("target_crop: got %v", o.TargetCrop)
	}
	// Non-string entries are dropped, not stringified.
	if len(o.PestSigns) != 2 {
		t.Errorf("pest_signs: got %v", o.PestSigns)
	}
}

func TestRecordRoundTrip(t *testing.T) {
	obs := FarmObservation{
		TargetCrop:   sp("rice"),
		HumidityPct:  fp(82),
		PestSigns:    []string{"aphids"},
		DiseaseSigns: []string{"rust"},
	}
	data, err := bson.Marshal(obs)
	if err != nil {
		t.Fatal(err)
	}
	var doc bson.M
	if err := bson.Unmarshal(data, &doc); err != nil {
		t.Fatal(err)
	}

	back := ObservationFromDoc(doc)
	if back.TargetCrop == nil || *back.TargetCrop != "rice" {
		t.Errorf("target_crop lost: %v", back.TargetCrop)
	}
	if back.HumidityPct == nil || *back.HumidityPct != 82 {
		t.Errorf("humidity lost: %v", back.HumidityPct)
	}
	if len(back.PestSigns) != 1 || back.PestSigns[0] != "aphids" {
		t.Errorf("pest_signs lost: %v", back.PestSigns)
	}
}

func sp(s string) *string { return &s }
