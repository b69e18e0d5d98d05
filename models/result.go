package models

// Severity is a qualitative risk level produced by the heuristic rules.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// IrrigationSchedule — structured irrigation advice. Notes accumulate in
// rule-evaluation order and never replace frequency/amount.
type IrrigationSchedule struct {
	FrequencyDays int      `bson:"frequency_days" json:"frequency_days"`
	AmountMM      int      `bson:"amount_mm"      json:"amount_mm"`
	Notes         []string `bson:"notes"          json:"notes"`
}

// YieldForecast — heuristic per-hectare baseline for the resolved crop.
type YieldForecast struct {
	Crop         string `bson:"crop"            json:"crop"`
	YieldKgPerHa int    `bson:"yield_kg_per_ha" json:"yield_kg_per_ha"`
}

// MarketTrend — one synthetic price/demand entry. Location is carried
// verbatim from the profile, including when absent.
type MarketTrend struct {
	Crop     string  `bson:"crop"      json:"crop"`
	AvgPrice float64 `bson:"avg_price" json:"avg_price"`
	Unit     string  `bson:"unit"      json:"unit"`
	Demand   string  `bson:"demand"    json:"demand"`
	Location *string `bson:"location"  json:"location"`
}

// AnalysisResult — write-once output of one analysis run. Created only by
// the orchestrator and never mutated after insertion.
type AnalysisResult struct {
	FarmerID           *string             `bson:"farmer_id"           json:"farmer_id"`
	TargetCrop         *string             `bson:"target_crop"         json:"target_crop"`
	DiseaseRisk        map[string]Severity `bson:"disease_risk"        json:"disease_risk"`
	PestRisk           map[string]Severity `bson:"pest_risk"           json:"pest_risk"`
	IrrigationSchedule IrrigationSchedule  `bson:"irrigation_schedule" json:"irrigation_schedule"`
	ClimateAdvice      []string            `bson:"climate_advice"      json:"climate_advice"`
	YieldForecast      YieldForecast       `bson:"yield_forecast"      json:"yield_forecast"`
	RotationPlan       []string            `bson:"rotation_plan"       json:"rotation_plan"`
	MarketTrends       []MarketTrend       `bson:"market_trends"       json:"market_trends"`
}
