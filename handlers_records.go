package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"agroadvisor/advisor"
	"agroadvisor/models"
)

// insertRecord runs the shared decode-validate-insert flow and responds
// with the generated id. Validation failures get field-level detail.
func (a *App) insertRecord(w http.ResponseWriter, r *http.Request, kind models.Kind, record interface {
	Validate() error
}) {
	if err := json.NewDecoder(r.Body).Decode(record); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	if err := record.Validate(); err != nil {
		var verrs models.ValidationErrors
		if errors.As(err, &verrs) {
			writeJSON(w, http.StatusUnprocessableEntity, validationResp{Error: "validation failed", Fields: verrs.Fields()})
			return
		}
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	id, err := a.store.Insert(ctx, kind.Collection(), record)
	if err != nil {
		a.log.Error("insert failed", zap.String("collection", kind.Collection()), zap.Error(err))
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, idResp{ID: id})
}

func (a *App) handleCreateProfile(w http.ResponseWriter, r *http.Request) {
	a.insertRecord(w, r, models.KindFarmerProfile, &models.FarmerProfile{})
}

func (a *App) handleCreateSoilTest(w http.ResponseWriter, r *http.Request) {
	a.insertRecord(w, r, models.KindSoilTest, &models.SoilTest{})
}

func (a *App) handleCreateObservation(w http.ResponseWriter, r *http.Request) {
	a.insertRecord(w, r, models.KindFarmObservation, &models.FarmObservation{})
}

// handleListProfiles returns up to ?limit stored profiles with their ids
// coerced to hex strings.
func (a *App) handleListProfiles(w http.ResponseWriter, r *http.Request) {
	limit := int64(50)
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || n < 0 {
			http.Error(w, "bad limit", http.StatusBadRequest)
			return
		}
		limit = n
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	docs, err := a.store.Find(ctx, models.KindFarmerProfile.Collection(), bson.M{}, limit)
	if err != nil {
		a.log.Error("list profiles failed", zap.Error(err))
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	for _, d := range docs {
		if oid, ok := d["_id"].(primitive.ObjectID); ok {
			d["_id"] = oid.Hex()
		}
	}
	if docs == nil {
		docs = []bson.M{}
	}
	writeJSON(w, http.StatusOK, docs)
}

// handleSoilSummary aggregates a farmer's soil tests into per-metric stats.
func (a *App) handleSoilSummary(w http.ResponseWriter, r *http.Request) {
	farmerID := r.URL.Query().Get("farmer_id")
	if farmerID == "" {
		http.Error(w, "farmer_id is required", http.StatusBadRequest)
		return
	}
	limit := int64(50)
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || n < 0 {
			http.Error(w, "bad limit", http.StatusBadRequest)
			return
		}
		limit = n
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	docs, err := a.store.Find(ctx, models.KindSoilTest.Collection(), bson.M{"farmer_id": farmerID}, limit)
	if err != nil {
		a.log.Error("soil summary lookup failed", zap.Error(err))
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	tests := make([]*models.SoilTest, 0, len(docs))
	for _, d := range docs {
		tests = append(tests, models.SoilTestFromDoc(d))
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"farmer_id": farmerID,
		"tests":     len(tests),
		"metrics":   advisor.SoilSummary(tests),
	})
}
