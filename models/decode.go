package models

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Allow-listed decoding of stored documents back into records. Only the
// fields named here are kept; anything else in the document (including
// _id and legacy fields) is dropped silently. Wrong-typed values are
// treated as absent rather than erroring, so a partially corrupt document
// still yields a usable record.

func docString(doc bson.M, key string) *string {
	if v, ok := doc[key].(string); ok {
		return &v
	}
	return nil
}

// docFloat tolerates the integer widths the driver may hand back for
// numbers written without a decimal point.
func docFloat(doc bson.M, key string) *float64 {
	switch v := doc[key].(type) {
	case float64:
		return &v
	case int32:
		f := float64(v)
		return &f
	case int64:
		f := float64(v)
		return &f
	}
	return nil
}

func docStringList(doc bson.M, key string) []string {
	raw, ok := doc[key].(primitive.A)
	if !ok {
		if s, ok := doc[key].([]string); ok {
			return s
		}
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// ProfileFromDoc rebuilds a FarmerProfile from a stored document.
func ProfileFromDoc(doc bson.M) *FarmerProfile {
	if doc == nil {
		return nil
	}
	p := &FarmerProfile{
		Phone:            docString(doc, "phone"),
		LocationText:     docString(doc, "location_text"),
		GPSLat:           docFloat(doc, "gps_lat"),
		GPSLng:           docFloat(doc, "gps_lng"),
		FarmSizeHa:       docFloat(doc, "farm_size_ha"),
		SoilType:         docString(doc, "soil_type"),
		ElevationM:       docFloat(doc, "elevation_m"),
		IrrigationMethod: docString(doc, "irrigation_method"),
		WaterSource:      docString(doc, "water_source"),
		FarmingPractices: docStringList(doc, "farming_practices"),
		CropHistory:      docStringList(doc, "crop_history"),
		SurroundingEnv:   docString(doc, "surrounding_env"),
	}
	if name, ok := doc["name"].(string); ok {
		p.Name = name
	}
	return p
}

// SoilTestFromDoc rebuilds a SoilTest from a stored document.
func SoilTestFromDoc(doc bson.M) *SoilTest {
	if doc == nil {
		return nil
	}
	return &SoilTest{
		FarmerID:         docString(doc, "farmer_id"),
		PH:               docFloat(doc, "ph"),
		NitrogenPPM:      docFloat(doc, "nitrogen_ppm"),
		PhosphorusPPM:    docFloat(doc, "phosphorus_ppm"),
		PotassiumPPM:     docFloat(doc, "potassium_ppm"),
		OrganicMatterPct: docFloat(doc, "organic_matter_pct"),
		ECdSm:            docFloat(doc, "ec_dS_m"),
	}
}

// ObservationFromDoc rebuilds a FarmObservation from a stored document.
func ObservationFromDoc(doc bson.M) *FarmObservation {
	if doc == nil {
		return nil
	}
	return &FarmObservation{
		FarmerID:     docString(doc, "farmer_id"),
		TargetCrop:   docString(doc, "target_crop"),
		TempC:        docFloat(doc, "temp_c"),
		HumidityPct:  docFloat(doc, "humidity_pct"),
		RainfallMM:   docFloat(doc, "rainfall_mm"),
		WindKPH:      docFloat(doc, "wind_kph"),
		PestSigns:    docStringList(doc, "pest_signs"),
		DiseaseSigns: docStringList(doc, "disease_signs"),
		Notes:        docString(doc, "notes"),
	}
}
