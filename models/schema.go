package models

// Hand-built JSON-schema documents for external tooling (collection
// viewers, form generators). Kept in sync with the record structs and
// their Validate methods by the schema tests.

type SchemaDoc map[string]any

func prop(typ, desc string) SchemaDoc {
	return SchemaDoc{"type": typ, "description": desc}
}

func numProp(desc string, min, max *float64) SchemaDoc {
	p := SchemaDoc{"type": "number", "description": desc}
	if min != nil {
		p["minimum"] = *min
	}
	if max != nil {
		p["maximum"] = *max
	}
	return p
}

func listProp(desc string) SchemaDoc {
	return SchemaDoc{"type": "array", "items": SchemaDoc{"type": "string"}, "description": desc}
}

func f(v float64) *float64 { return &v }

// Schemas returns the four record schemas keyed by collection name.
func Schemas() map[string]SchemaDoc {
	return map[string]SchemaDoc{
		KindFarmerProfile.Collection(): {
			"title":    "FarmerProfile",
			"type":     "object",
			"required": []string{"name"},
			"properties": SchemaDoc{
				"name":              prop("string", "Farmer's full name"),
				"phone":             prop("string", "Contact number"),
				"location_text":     prop("string", "Village/City, District, State"),
				"gps_lat":           numProp("Latitude", nil, nil),
				"gps_lng":           numProp("Longitude", nil, nil),
				"farm_size_ha":      numProp("Farm size in hectares", f(0), nil),
				"soil_type":         prop("string", "Soil type: sandy, loamy, clayey, silt, peat, chalky"),
				"elevation_m":       numProp("Elevation in meters", f(-430), f(9000)),
				"irrigation_method": prop("string", "drip, sprinkler, flood, furrow, rainfed"),
				"water_source":      prop("string", "canal, borewell, rainwater, river, pond, municipal"),
				"farming_practices": listProp("organic, no-till, mulching, cover crops, IPM, etc."),
				"crop_history":      listProp("Recent crops grown, most recent last"),
				"surrounding_env":   prop("string", "near waterbody, forest edge, urban area, open field, etc."),
			},
		},
		KindSoilTest.Collection(): {
			"title": "SoilTest",
			"type":  "object",
			"properties": SchemaDoc{
				"farmer_id":          prop("string", "Related farmer profile id"),
				"ph":                 numProp("Soil pH", f(0), f(14)),
				"nitrogen_ppm":       numProp("Nitrogen in ppm", f(0), nil),
				"phosphorus_ppm":     numProp("Phosphorus in ppm", f(0), nil),
				"potassium_ppm":      numProp("Potassium in ppm", f(0), nil),
				"organic_matter_pct": numProp("Organic matter percent", f(0), f(100)),
				"ec_dS_m":            numProp("Electrical conductivity", f(0), nil),
			},
		},
		KindFarmObservation.Collection(): {
			"title": "FarmObservation",
			"type":  "object",
			"properties": SchemaDoc{
				"farmer_id":     prop("string", "Related farmer profile id"),
				"target_crop":   prop("string", "Crop being planned or grown now"),
				"temp_c":        numProp("Air temperature in Celsius", nil, nil),
				"humidity_pct":  numProp("Relative humidity percent", f(0), f(100)),
				"rainfall_mm":   numProp("Recent rainfall in mm (last 24-72h)", f(0), nil),
				"wind_kph":      numProp("Wind speed in kph", f(0), nil),
				"pest_signs":    listProp("Observed pest signs"),
				"disease_signs": listProp("Observed disease signs"),
				"notes":         prop("string", "Free-text notes"),
			},
		},
		KindAnalysisResult.Collection(): {
			"title": "AnalysisResult",
			"type":  "object",
			"properties": SchemaDoc{
				"farmer_id":           prop("string", "Analyzed farmer profile id"),
				"target_crop":         prop("string", "Crop the analysis targeted"),
				"disease_risk":        SchemaDoc{"type": "object", "description": "disease -> low|medium|high"},
				"pest_risk":           SchemaDoc{"type": "object", "description": "pest -> low|medium|high"},
				"irrigation_schedule": SchemaDoc{"type": "object", "description": "frequency_days, amount_mm, notes"},
				"climate_advice":      listProp("Ordered advisory strings"),
				"yield_forecast":      SchemaDoc{"type": "object", "description": "crop, yield_kg_per_ha"},
				"rotation_plan":       listProp("Suggested crop rotation sequence"),
				"market_trends":       SchemaDoc{"type": "array", "description": "Synthetic price/demand entries"},
			},
		},
	}
}
