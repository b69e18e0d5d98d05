package advisor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agroadvisor/models"
)

func TestClimate_GeneralTipsAlwaysLast(t *testing.T) {
	tips := Climate(nil, nil)
	require.Len(t, tips, 2)
	assert.Contains(t, tips[0], "mulching")
	assert.Contains(t, tips[1], "integrated pest management")
}

func TestClimate_ConditionalTipsInOrder(t *testing.T) {
	profile := &models.FarmerProfile{SurroundingEnv: sp("forest edge")}
	obs := &models.FarmObservation{WindKPH: fp(45), TempC: fp(38)}

	tips := Climate(profile, obs)
	require.Len(t, tips, 5)
	assert.Contains(t, tips[0], "forest edges")
	assert.Contains(t, tips[1], "High winds")
	assert.Contains(t, tips[2], "Heat stress")
}

func TestClimate_ForestSubstring(t *testing.T) {
	tips := Climate(&models.FarmerProfile{SurroundingEnv: sp("open field")}, nil)
	for _, tip := range tips {
		assert.False(t, strings.Contains(tip, "forest edges"))
	}
}

func TestClimate_ColdStress(t *testing.T) {
	tips := Climate(nil, &models.FarmObservation{TempC: fp(4)})
	require.Len(t, tips, 3)
	assert.Contains(t, tips[0], "Cold stress")

	// 0°C is a present reading and counts as cold.
	tips = Climate(nil, &models.FarmObservation{TempC: fp(0)})
	require.Len(t, tips, 3)
	assert.Contains(t, tips[0], "Cold stress")

	// An absent reading skips the temperature rules entirely.
	tips = Climate(nil, &models.FarmObservation{})
	assert.Len(t, tips, 2)
}

func TestClimate_ThresholdsExclusive(t *testing.T) {
	// 35 and 10 sit exactly on the thresholds and trigger nothing.
	assert.Len(t, Climate(nil, &models.FarmObservation{TempC: fp(35)}), 2)
	assert.Len(t, Climate(nil, &models.FarmObservation{TempC: fp(10)}), 2)
	assert.Len(t, Climate(nil, &models.FarmObservation{WindKPH: fp(30)}), 2)
}
