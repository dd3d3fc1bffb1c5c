package reference

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSurfacesOrderedByGrip(t *testing.T) {
	surfaces := Surfaces()
	require.NotEmpty(t, surfaces)
	for i, s := range surfaces {
		assert.Greater(t, s.Peak, s.Slide, "surface %s", s.Code)
		if i > 0 {
			assert.LessOrEqual(t, s.Peak, surfaces[i-1].Peak)
		}
	}
}

func TestWeatherHydroRiskFollowsStandingWaterThreshold(t *testing.T) {
	byCode := map[string]WeatherInfo{}
	for _, w := range WeatherPresets() {
		byCode[w.Code] = w
	}

	assert.False(t, byCode["dry"].HydroRisk)
	assert.False(t, byCode["rain"].HydroRisk)      // 2.0 mm film
	assert.True(t, byCode["heavy_rain"].HydroRisk) // 4.0 mm film
	assert.True(t, byCode["standing_water"].HydroRisk)
}

func TestGradesSpanAtoF(t *testing.T) {
	grades := Grades()
	require.Len(t, grades, 6)
	assert.Equal(t, "A", grades[0].Code)
	assert.Equal(t, 1.0, grades[0].WetMultiplier)
	for i := 1; i < len(grades); i++ {
		assert.Less(t, grades[i].WetMultiplier, grades[i-1].WetMultiplier)
	}
}
