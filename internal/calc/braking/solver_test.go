package braking

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBrakingDeceleration(t *testing.T) {
	flat := brakingDeceleration(0.8, 0)
	assert.InDelta(t, 0.8*Gravity, flat, 1e-9)

	// uphill helps, downhill hurts
	assert.Greater(t, brakingDeceleration(0.8, 6), flat)
	assert.Less(t, brakingDeceleration(0.8, -6), flat)

	// steep ice: gravity wins
	assert.Less(t, brakingDeceleration(0.05, -12), 0.0)
}

func TestBrakingDistanceMonotonic(t *testing.T) {
	// strictly increasing in speed for fixed deceleration
	prev := 0.0
	for speed := 20.0; speed <= 200; speed += 20 {
		d := brakingDistance(speed, 7)
		assert.Greater(t, d, prev)
		prev = d
	}
	// strictly decreasing in deceleration for fixed speed
	prev = math.Inf(1)
	for a := 1.0; a <= 10; a++ {
		d := brakingDistance(100, a)
		assert.Less(t, d, prev)
		prev = d
	}
}

// As drag vanishes the closed form must converge to the plain v^2/(2a)
// kinematic distance.
func TestDragStoppingDistanceNoDragLimit(t *testing.T) {
	v0 := 100 * kmhToMs
	a0 := 5.0
	limit := v0 * v0 / (2 * a0)

	prevErr := math.Inf(1)
	for _, k := range []float64{1e-2, 1e-3, 1e-4, 1e-5, 1e-6} {
		d := dragStoppingDistance(v0, a0, k)
		err := math.Abs(d - limit)
		assert.Less(t, err, prevErr, "error should shrink as k -> 0")
		prevErr = err
	}
	final := dragStoppingDistance(v0, a0, 1e-8)
	assert.InDelta(t, limit, final, limit*1e-3)
}

func TestRollingResistanceCoefficientComposition(t *testing.T) {
	asphalt := SurfaceByCode("asphalt")

	base := rollingResistanceCoefficient("A", TyreSummer, asphalt, 32, 32)
	assert.InDelta(t, 0.00585, base, 1e-9)

	// worse fuel grade, winter tyres and low pressure all add rolling drag
	assert.Greater(t, rollingResistanceCoefficient("E", TyreSummer, asphalt, 32, 32), base)
	assert.Greater(t, rollingResistanceCoefficient("A", TyreWinter, asphalt, 32, 32), base)
	assert.Greater(t, rollingResistanceCoefficient("A", TyreSummer, asphalt, 24, 32), base)

	// surface multiplier scales the lot
	sand := SurfaceByCode("sand")
	assert.InDelta(t, base*3.5, rollingResistanceCoefficient("A", TyreSummer, sand, 32, 32), 1e-9)
}

func TestSolveRollingStopsOnGentleSlope(t *testing.T) {
	// mild descent: brakes may be gone but rolling resistance holds
	res := solveRolling(60, -0.2, 1500, 0.012)
	assert.True(t, res.CanStopEventually)
	assert.Greater(t, res.StoppingDistanceM, 0.0)
	assert.Greater(t, res.StoppingTimeS, 0.0)
	assert.False(t, math.IsInf(res.StoppingDistanceM, 0))
	assert.False(t, math.IsNaN(res.StoppingDistanceM))

	// exact closed form, not the no-drag approximation
	v0 := 60 * kmhToMs
	a0 := 0.012*Gravity*math.Cos(-0.2*math.Pi/180) + Gravity*math.Sin(-0.2*math.Pi/180)
	k := 0.5 * AirDensity * DragCoefficient * FrontalAreaM2 / 1500
	assert.InDelta(t, dragStoppingDistance(v0, a0, k), res.StoppingDistanceM, 1e-9)
	assert.Less(t, res.StoppingDistanceM, v0*v0/(2*a0), "drag must shorten the coast")
}

func TestSolveRollingUnboundedOnSteepSlope(t *testing.T) {
	res := solveRolling(60, -12, 1500, 0.006)
	assert.False(t, res.CanStopEventually)
	assert.Equal(t, 0.0, res.StoppingDistanceM)
	assert.Greater(t, res.TerminalSpeedKmh, 0.0)
	assert.False(t, math.IsInf(res.TerminalSpeedKmh, 0))
	assert.Greater(t, res.RequiredFrictionToStop, 0.0)
	assert.InDelta(t, math.Tan(12*math.Pi/180), res.RequiredFrictionToStop, 1e-9)
}
