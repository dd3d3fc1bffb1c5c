package braking

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDampnessBlend(t *testing.T) {
	tests := []struct {
		depth float64
		want  float64
	}{
		{0, 0},
		{0.25, 0.5},
		{0.5, 1},
		{2, 1},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, dampnessBlend(tt.depth), 1e-9, "depth %.2f", tt.depth)
	}
}

// Every factor interpolating dry and wet curves must be continuous
// across the 0.5 mm damp boundary.
func TestBlendedFactorsContinuousAtDampBoundary(t *testing.T) {
	const eps = 1e-6
	below := dampnessBlend(0.5 - eps)
	above := dampnessBlend(0.5 + eps)

	grade := WetGripGradeByCode("E")
	assert.InDelta(t, gradeFactor(grade, above).Value, gradeFactor(grade, below).Value, 1e-4)

	assert.InDelta(t, treadFactor(3, above).Value, treadFactor(3, below).Value, 1e-4)

	assert.InDelta(t,
		widthFactor(255, 0.5+eps, above).Value,
		widthFactor(255, 0.5-eps, below).Value, 1e-4)

	assert.InDelta(t, speedDecayFactor(120, above).Value, speedDecayFactor(120, below).Value, 1e-4)

	compound := CompoundByCode("track")
	assert.InDelta(t, compoundFactor(compound, above).Value, compoundFactor(compound, below).Value, 1e-4)
}

func TestSurfaceFactorPeakVsSlide(t *testing.T) {
	for _, s := range Surfaces() {
		withABS := surfaceFactor(s, true).Value
		locked := surfaceFactor(s, false).Value
		if withABS <= locked {
			t.Errorf("surface %s: peak %v should exceed slide %v", s.Code, withABS, locked)
		}
	}
}

func TestSurfaceLookupFallsBackToAsphalt(t *testing.T) {
	assert.Equal(t, SurfaceByCode("asphalt"), SurfaceByCode("lava"))
}

func TestWeatherFactorMonotoneNonIncreasing(t *testing.T) {
	prev := weatherFactor(0).Value
	for d := 0.1; d <= 20; d += 0.1 {
		cur := weatherFactor(d).Value
		if cur > prev+1e-12 {
			t.Fatalf("weather factor increased at depth %.1f: %v > %v", d, cur, prev)
		}
		prev = cur
	}
	assert.GreaterOrEqual(t, weatherFactor(100).Value, 0.05)
}

func TestPressureFactor(t *testing.T) {
	assert.Equal(t, 1.0, pressureFactor(32, 32).Value)

	// under-inflation is punished harder than over-inflation
	under := pressureFactor(28.8, 32).Value
	over := pressureFactor(35.2, 32).Value
	assert.Less(t, under, over)

	// floors beyond 30% deviation
	assert.InDelta(t, 0.85, pressureFactor(10, 32).Value, 1e-9)
	assert.InDelta(t, 0.88, pressureFactor(60, 32).Value, 0.03)

	// unknown pressure defaults to recommended inside resolve
	in, _ := resolve(Input{RecommendedPSI: 34})
	assert.Equal(t, 34.0, in.PressurePSI)
}

func TestAgeFactor(t *testing.T) {
	assert.Equal(t, 1.0, ageFactor(0, false).Value)

	// degradation accelerates year over year through mid-life
	loss2 := 1 - ageFactor(2, false).Value
	loss4 := 1 - ageFactor(4, false).Value
	loss8 := 1 - ageFactor(8, false).Value
	assert.Greater(t, loss4-loss2, loss2)
	assert.Greater(t, loss8, loss4)

	// hot climate amplifies the accumulated loss
	assert.Less(t, ageFactor(8, true).Value, ageFactor(8, false).Value)

	// floored no matter how old
	assert.GreaterOrEqual(t, ageFactor(25, true).Value, 0.35)
}

func TestTreadFactorCliffEffect(t *testing.T) {
	// dry barely cares about tread
	dryBald := treadFactor(0, 0).Value
	assert.GreaterOrEqual(t, dryBald, 0.88-1e-9)

	// wet falls off hard below 4 mm
	wet6 := treadFactor(6, 1).Value
	wet3 := treadFactor(3, 1).Value
	wet1 := treadFactor(1, 1).Value
	assert.Greater(t, wet6, wet3)
	assert.Greater(t, wet3, wet1)
	slopeAbove := (wet6 - wet3) / 3
	slopeBelow := (wet3 - wet1) / 2
	assert.Greater(t, slopeBelow, slopeAbove, "wet loss should steepen below 4 mm")

	assert.GreaterOrEqual(t, treadFactor(0, 1).Value, 0.20)
}

func TestTemperatureFactorSummerColdCollapse(t *testing.T) {
	assert.Equal(t, 1.0, temperatureFactor(20, TyreSummer).Value)
	cold := temperatureFactor(-10, TyreSummer).Value
	assert.Less(t, cold, 0.75)
	assert.GreaterOrEqual(t, cold, 0.50)

	// winter compound is happy in the same cold
	assert.Equal(t, 1.0, temperatureFactor(-10, TyreWinter).Value)
	// and unhappy in summer heat
	assert.Less(t, temperatureFactor(30, TyreWinter).Value, 1.0)
}

func TestSpeedDecayFactor(t *testing.T) {
	assert.Equal(t, 1.0, speedDecayFactor(40, 0).Value)
	assert.Equal(t, 1.0, speedDecayFactor(25, 1).Value)

	dry := speedDecayFactor(120, 0).Value
	wet := speedDecayFactor(120, 1).Value
	assert.InDelta(t, 1-0.0012*80, dry, 1e-9)
	assert.Less(t, wet, dry)
	assert.GreaterOrEqual(t, speedDecayFactor(400, 1).Value, 0.75)
}

func TestLoadFactor(t *testing.T) {
	assert.Equal(t, 1.0, loadFactor(1500, 1500).Value)
	assert.Equal(t, 1.0, loadFactor(1500, 1200).Value)
	assert.InDelta(t, 1-0.075*0.5, loadFactor(1500, 2250).Value, 1e-9)
	assert.GreaterOrEqual(t, loadFactor(1500, 20000).Value, 0.85)
}

func TestSlopeDirectionFactorIsNeutral(t *testing.T) {
	// direction is metadata only; the multiplier never bends the product
	for _, slope := range []float64{-15, -3, 0, 3, 15} {
		assert.Equal(t, 1.0, slopeDirectionFactor(slope).Value)
	}
}

func TestBrakeFadeFactor(t *testing.T) {
	assert.Equal(t, 1.0, brakeFadeFactor(0).Value)
	assert.Equal(t, 1.0, brakeFadeFactor(2).Value)
	prev := 1.0
	for level := 3.0; level <= 10; level++ {
		cur := brakeFadeFactor(level).Value
		assert.Less(t, cur, prev, "fade level %.0f", level)
		prev = cur
	}
	assert.GreaterOrEqual(t, brakeFadeFactor(10).Value, 0.40)
}

func TestCamberFactor(t *testing.T) {
	assert.Equal(t, 1.0, camberFactor(1.5).Value)
	assert.Greater(t, camberFactor(4).Value, 1.0)
	assert.LessOrEqual(t, camberFactor(12).Value, 1.05)
	assert.Less(t, camberFactor(-5).Value, 1.0)
	assert.GreaterOrEqual(t, camberFactor(-12).Value, 0.75)
}

func TestDownforceFactor(t *testing.T) {
	// gated below 80 km/h and without the aero flag
	assert.Equal(t, 1.0, downforceFactor(79, 1500, true, 2).Value)
	assert.Equal(t, 1.0, downforceFactor(200, 1500, false, 2).Value)

	v120 := downforceFactor(120, 1500, true, 2).Value
	v200 := downforceFactor(200, 1500, true, 2).Value
	assert.Greater(t, v120, 1.0)
	assert.Greater(t, v200, v120)
	assert.LessOrEqual(t, downforceFactor(400, 600, true, 5).Value, 1.40+1e-9)
}

func TestEraFactor(t *testing.T) {
	assert.Equal(t, 1.0, eraFactor(0).Value)
	assert.Equal(t, 1.0, eraFactor(2020).Value)
	assert.Equal(t, 0.55, eraFactor(1975).Value)
	assert.Equal(t, 0.70, eraFactor(1999).Value)
}

func TestFactorFunctionsArePure(t *testing.T) {
	a := ageFactor(7.3, true)
	b := ageFactor(7.3, true)
	assert.Equal(t, a, b)
	if math.IsNaN(a.Value) {
		t.Fatal("factor produced NaN")
	}
}
