package advisor

import "agroadvisor/models"

// TrendProvider supplies market trend entries for a location and crop.
// The default implementation is synthetic; a real price-feed integration
// plugs in here without touching the orchestrator.
type TrendProvider interface {
	Trends(locationText, crop *string) []models.MarketTrend
}

// StaticTrends is the placeholder provider: three fixed entries, with the
// first entry's crop substituted by the requested crop (wheat when
// unspecified) and the supplied location carried verbatim on all entries.
type StaticTrends struct{}

func (StaticTrends) Trends(locationText, crop *string) []models.MarketTrend {
	lead := "wheat"
	if crop != nil && *crop != "" {
		lead = *crop
	}
	return []models.MarketTrend{
		{Crop: lead, AvgPrice: 21.5, Unit: "INR/kg", Demand: "rising", Location: locationText},
		{Crop: "tomato", AvgPrice: 14.2, Unit: "INR/kg", Demand: "stable", Location: locationText},
		{Crop: "onion", AvgPrice: 18.7, Unit: "INR/kg", Demand: "high", Location: locationText},
	}
}
