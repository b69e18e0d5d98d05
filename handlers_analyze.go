package main

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"agroadvisor/advisor"
	"agroadvisor/models"
)

// handleAnalyze runs the full advisory pipeline for a farmer and persists
// the composite result.
func (a *App) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 12*time.Second)
	defer cancel()

	id, result, err := a.analyze(ctx, req)
	if err != nil {
		a.log.Error("analysis persist failed", zap.Error(err))
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, analyzeResp{ID: id, Result: result})
}

// analyze resolves the farmer's latest records, runs the advisory
// functions in fixed order and persists the result. Lookups degrade
// independently: any store failure or miss leaves that input absent
// rather than failing the request.
func (a *App) analyze(ctx context.Context, req analyzeReq) (string, models.AnalysisResult, error) {
	var profile *models.FarmerProfile
	var soil *models.SoilTest
	var obs *models.FarmObservation

	if req.FarmerID != nil && *req.FarmerID != "" {
		profile = models.ProfileFromDoc(a.findOne(ctx, models.KindFarmerProfile, profileFilter(*req.FarmerID)))
		soil = models.SoilTestFromDoc(a.findOne(ctx, models.KindSoilTest, bson.M{"farmer_id": *req.FarmerID}))
		obs = models.ObservationFromDoc(a.findOne(ctx, models.KindFarmObservation, bson.M{"farmer_id": *req.FarmerID}))
	}
	if obs == nil {
		obs = &models.FarmObservation{}
	}
	if req.TargetCrop != nil && *req.TargetCrop != "" {
		obs.TargetCrop = req.TargetCrop
	}

	risk := advisor.DiseasePestRisk(obs)
	schedule := advisor.Irrigation(profile, soil, obs)
	tips := advisor.Climate(profile, obs)
	forecast := advisor.Yield(profile, soil, obs)
	rotation := advisor.Rotation(profile)

	var location *string
	if profile != nil {
		location = profile.LocationText
	}
	trends := a.trends.Trends(location, obs.TargetCrop)

	result := models.AnalysisResult{
		FarmerID:           req.FarmerID,
		TargetCrop:         obs.TargetCrop,
		DiseaseRisk:        risk.Disease,
		PestRisk:           risk.Pest,
		IrrigationSchedule: schedule,
		ClimateAdvice:      tips,
		YieldForecast:      forecast,
		RotationPlan:       rotation,
		MarketTrends:       trends,
	}

	id, err := a.store.Insert(ctx, models.KindAnalysisResult.Collection(), result)
	if err != nil {
		return "", models.AnalysisResult{}, err
	}
	return id, result, nil
}

// findOne fetches the first matching document, swallowing failures: a
// broken filter, store error or empty result all come back nil.
func (a *App) findOne(ctx context.Context, kind models.Kind, filter bson.M) bson.M {
	if filter == nil {
		return nil
	}
	docs, err := a.store.Find(ctx, kind.Collection(), filter, 1)
	if err != nil {
		a.log.Warn("lookup degraded to absent",
			zap.String("collection", kind.Collection()), zap.Error(err))
		return nil
	}
	if len(docs) == 0 {
		return nil
	}
	return docs[0]
}

// profileFilter builds the _id filter, or nil when the id is not a valid
// ObjectID hex (an unknown farmer simply has no profile).
func profileFilter(farmerID string) bson.M {
	oid, err := primitive.ObjectIDFromHex(farmerID)
	if err != nil {
		return nil
	}
	return bson.M{"_id": oid}
}
