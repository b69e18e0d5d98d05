package advisor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agroadvisor/models"
)

func TestIrrigation_SoilTypes(t *testing.T) {
	tests := []struct {
		soilType  string
		wantFreq  int
		wantMM    int
		wantNotes int
	}{
		{"sandy", 2, 15, 1},
		{"sandy loam", 2, 15, 1},
		{"loamy sand", 2, 15, 1},
		{"loam", 3, 20, 0},
		{"loamy", 3, 20, 0},
		{"clay", 4, 25, 1},
		{"clayey", 4, 25, 1},
		{"silty clay", 4, 25, 1},
		{"peat", 3, 20, 0},       // unrecognized keeps default silently
		{"Clay", 3, 20, 0},       // match is case-sensitive
		{"silty clay ", 3, 20, 0}, // and exact
	}
	for _, tt := range tests {
		t.Run(tt.soilType, func(t *testing.T) {
			profile := &models.FarmerProfile{SoilType: sp(tt.soilType)}
			got := Irrigation(profile, nil, nil)
			assert.Equal(t, tt.wantFreq, got.FrequencyDays)
			assert.Equal(t, tt.wantMM, got.AmountMM)
			assert.Len(t, got.Notes, tt.wantNotes)
		})
	}
}

func TestIrrigation_Defaults(t *testing.T) {
	got := Irrigation(nil, nil, nil)
	assert.Equal(t, 3, got.FrequencyDays)
	assert.Equal(t, 20, got.AmountMM)
	assert.Empty(t, got.Notes)
}

func TestIrrigation_ClaySchedule(t *testing.T) {
	got := Irrigation(&models.FarmerProfile{SoilType: sp("clay")}, nil, nil)
	require.Len(t, got.Notes, 1)
	assert.Equal(t, models.IrrigationSchedule{
		FrequencyDays: 4,
		AmountMM:      25,
		Notes:         []string{"Clay soils retain water longer; reduce frequency but increase amount."},
	}, got)
}

func TestIrrigation_NoteOrder(t *testing.T) {
	profile := &models.FarmerProfile{
		SoilType:         sp("sandy"),
		IrrigationMethod: sp("drip"),
	}
	obs := &models.FarmObservation{RainfallMM: fp(15)}

	got := Irrigation(profile, nil, obs)
	// Soil note, then rainfall, then drip: fixed rule-evaluation order.
	require.Len(t, got.Notes, 3)
	assert.Contains(t, got.Notes[0], "Sandy soils")
	assert.Contains(t, got.Notes[1], "Recent rainfall")
	assert.Contains(t, got.Notes[2], "drip")
	// Notes never change the numbers.
	assert.Equal(t, 2, got.FrequencyDays)
	assert.Equal(t, 15, got.AmountMM)
}

func TestIrrigation_RainfallBelowThreshold(t *testing.T) {
	got := Irrigation(nil, nil, &models.FarmObservation{RainfallMM: fp(14.9)})
	assert.Empty(t, got.Notes)
}

func TestIrrigation_SoilTestUnused(t *testing.T) {
	soil := &models.SoilTest{PH: fp(4)}
	assert.Equal(t, Irrigation(nil, nil, nil), Irrigation(nil, soil, nil))
}
