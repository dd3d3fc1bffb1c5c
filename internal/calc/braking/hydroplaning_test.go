package braking

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHydroplaningGatedBelowStandingWater(t *testing.T) {
	// no speed, pressure or tread combination may trigger the model
	// below the standing-water threshold
	for _, speed := range []float64{60, 120, 250} {
		for _, psi := range []float64{15, 32, 50} {
			for _, tread := range []float64{0, 4, 8} {
				res := evaluateHydroplaning(speed, 2.4, psi, tread, 205)
				assert.False(t, res.IsHydroplaning)
				assert.Equal(t, 1.0, res.FrictionMultiplier)
				assert.Equal(t, HydroNone, res.RiskLevel)
			}
		}
	}
}

func TestHydroplaningThresholdComposition(t *testing.T) {
	// NASA flat-plate value for 32 PSI, full tread, narrow tyre, 4 mm water
	res := evaluateHydroplaning(60, 4, 32, 8, 205)
	base := 10.35 * math.Sqrt(32) * mphToKmh
	want := base * 1.0 * 1.0 * 0.85 // tread neutral, no width penalty, 4 mm water
	assert.InDelta(t, want, res.ThresholdSpeedKmh, 0.01)

	// lower pressure, shallow tread and wide tyres all cut the threshold
	lowPsi := evaluateHydroplaning(60, 4, 22, 8, 205)
	assert.Less(t, lowPsi.ThresholdSpeedKmh, res.ThresholdSpeedKmh)
	worn := evaluateHydroplaning(60, 4, 32, 2, 205)
	assert.Less(t, worn.ThresholdSpeedKmh, res.ThresholdSpeedKmh)
	wide := evaluateHydroplaning(60, 4, 32, 8, 255)
	assert.Less(t, wide.ThresholdSpeedKmh, res.ThresholdSpeedKmh)

	// but never below the physical lower bound
	floor := evaluateHydroplaning(60, 20, 15, 0, 355)
	assert.GreaterOrEqual(t, floor.ThresholdSpeedKmh, 35.0)
}

func TestHydroplaningSweepActivatesOnceMonotonically(t *testing.T) {
	threshold := evaluateHydroplaning(60, 4, 32, 8, 205).ThresholdSpeedKmh

	active := false
	lastMult := 1.0
	for speed := 60.0; speed <= 160; speed += 1 {
		res := evaluateHydroplaning(speed, 4, 32, 8, 205)
		if res.IsHydroplaning {
			if !active && speed <= threshold {
				t.Fatalf("activated at %.0f km/h, below the %.1f km/h threshold", speed, threshold)
			}
			active = true
			if res.FrictionMultiplier >= lastMult {
				t.Fatalf("multiplier not strictly decreasing at %.0f km/h", speed)
			}
			lastMult = res.FrictionMultiplier
		} else if active {
			t.Fatalf("deactivated at %.0f km/h after activation", speed)
		}
	}
	assert.True(t, active, "sweep should cross the threshold")
}

func TestHydroplaningRiskLevels(t *testing.T) {
	threshold := evaluateHydroplaning(60, 4, 32, 8, 205).ThresholdSpeedKmh

	warning := evaluateHydroplaning(threshold*0.9, 4, 32, 8, 205)
	assert.Equal(t, HydroWarning, warning.RiskLevel)
	assert.False(t, warning.IsHydroplaning)

	active := evaluateHydroplaning(threshold*1.05, 4, 32, 8, 205)
	assert.Equal(t, HydroActive, active.RiskLevel)

	critical := evaluateHydroplaning(threshold*2, 4, 32, 8, 205)
	assert.Equal(t, HydroCritical, critical.RiskLevel)
	assert.Less(t, critical.FrictionMultiplier, 0.3)
	assert.GreaterOrEqual(t, critical.FrictionMultiplier, 0.05)
}
