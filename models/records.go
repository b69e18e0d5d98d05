package models

// Record kinds stored in MongoDB. Collection names are the lowercased kind
// names; the mapping is an explicit table so nothing depends on reflection.

type Kind string

const (
	KindFarmerProfile   Kind = "FarmerProfile"
	KindSoilTest        Kind = "SoilTest"
	KindFarmObservation Kind = "FarmObservation"
	KindAnalysisResult  Kind = "AnalysisResult"
	KindFarmerAccount   Kind = "FarmerAccount"
)

var collections = map[Kind]string{
	KindFarmerProfile:   "farmerprofile",
	KindSoilTest:        "soiltest",
	KindFarmObservation: "farmobservation",
	KindAnalysisResult:  "analysisresult",
	KindFarmerAccount:   "farmeraccount",
}

// Collection returns the MongoDB collection name for a record kind.
func (k Kind) Collection() string { return collections[k] }

// FarmerProfile — identity and static farm attributes submitted by a
// farmer-facing client. Every field except Name is optional; optional
// numerics are pointers so "absent" stays distinct from zero.
type FarmerProfile struct {
	Name             string   `bson:"name"                        json:"name"`
	Phone            *string  `bson:"phone,omitempty"             json:"phone,omitempty"`
	LocationText     *string  `bson:"location_text,omitempty"     json:"location_text,omitempty"`
	GPSLat           *float64 `bson:"gps_lat,omitempty"           json:"gps_lat,omitempty"`
	GPSLng           *float64 `bson:"gps_lng,omitempty"           json:"gps_lng,omitempty"`
	FarmSizeHa       *float64 `bson:"farm_size_ha,omitempty"      json:"farm_size_ha,omitempty"`
	SoilType         *string  `bson:"soil_type,omitempty"         json:"soil_type,omitempty"`
	ElevationM       *float64 `bson:"elevation_m,omitempty"       json:"elevation_m,omitempty"`
	IrrigationMethod *string  `bson:"irrigation_method,omitempty" json:"irrigation_method,omitempty"`
	WaterSource      *string  `bson:"water_source,omitempty"      json:"water_source,omitempty"`
	FarmingPractices []string `bson:"farming_practices,omitempty" json:"farming_practices,omitempty"`
	CropHistory      []string `bson:"crop_history,omitempty"      json:"crop_history,omitempty"`
	SurroundingEnv   *string  `bson:"surrounding_env,omitempty"   json:"surrounding_env,omitempty"`
}

// SoilTest — one lab sample. Related to a profile only by the opaque
// farmer_id string; no referential integrity is enforced.
type SoilTest struct {
	FarmerID         *string  `bson:"farmer_id,omitempty"          json:"farmer_id,omitempty"`
	PH               *float64 `bson:"ph,omitempty"                 json:"ph,omitempty"`
	NitrogenPPM      *float64 `bson:"nitrogen_ppm,omitempty"       json:"nitrogen_ppm,omitempty"`
	PhosphorusPPM    *float64 `bson:"phosphorus_ppm,omitempty"     json:"phosphorus_ppm,omitempty"`
	PotassiumPPM     *float64 `bson:"potassium_ppm,omitempty"      json:"potassium_ppm,omitempty"`
	OrganicMatterPct *float64 `bson:"organic_matter_pct,omitempty" json:"organic_matter_pct,omitempty"`
	ECdSm            *float64 `bson:"ec_dS_m,omitempty"            json:"ec_dS_m,omitempty"`
}

// FarmObservation — point-in-time field and weather snapshot.
type FarmObservation struct {
	FarmerID     *string  `bson:"farmer_id,omitempty"     json:"farmer_id,omitempty"`
	TargetCrop   *string  `bson:"target_crop,omitempty"   json:"target_crop,omitempty"`
	TempC        *float64 `bson:"temp_c,omitempty"        json:"temp_c,omitempty"`
	HumidityPct  *float64 `bson:"humidity_pct,omitempty"  json:"humidity_pct,omitempty"`
	RainfallMM   *float64 `bson:"rainfall_mm,omitempty"   json:"rainfall_mm,omitempty"`
	WindKPH      *float64 `bson:"wind_kph,omitempty"      json:"wind_kph,omitempty"`
	PestSigns    []string `bson:"pest_signs,omitempty"    json:"pest_signs,omitempty"`
	DiseaseSigns []string `bson:"disease_signs,omitempty" json:"disease_signs,omitempty"`
	Notes        *string  `bson:"notes,omitempty"         json:"notes,omitempty"`
}
