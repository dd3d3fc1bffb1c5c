package braking

import (
	"fmt"
	"math"
)

// RollingPhysicsResult is produced only when braking alone cannot stop
// the vehicle on the slope. Distances come from the exact closed-form
// integration of rolling resistance plus quadratic air drag; when even
// rolling resistance loses to gravity the outcome is the explicit
// unbounded variant (CanStopEventually=false, distance zero, terminal
// speed disclosed) rather than a sentinel magnitude.
type RollingPhysicsResult struct {
	CanStopEventually            bool    `json:"can_stop_eventually"`
	StoppingDistanceM            float64 `json:"stopping_distance_m"`
	StoppingTimeS                float64 `json:"stopping_time_s"`
	RollingResistanceCoefficient float64 `json:"rolling_resistance_coefficient"`
	EffectiveDecelerationMS2     float64 `json:"effective_deceleration_ms2"`
	RequiredFrictionToStop       float64 `json:"required_friction_to_stop"`
	TerminalSpeedKmh             float64 `json:"terminal_speed_kmh"`
	Reason                       string  `json:"reason"`
}

// brakingDeceleration is the constant deceleration available from grip
// plus the gravity component along the slope. Uphill (positive angle)
// helps; downhill fights the brakes and can drive this negative.
func brakingDeceleration(mu, slopeDeg float64) float64 {
	theta := slopeDeg * math.Pi / 180
	return Gravity * (mu*math.Cos(theta) + math.Sin(theta))
}

func brakingDistance(speedKmh, decel float64) float64 {
	v := speedKmh * kmhToMs
	return v * v / (2 * decel)
}

// rollingResistanceCoefficient builds Crr compositionally: fuel-economy
// label base, tyre-type addition, surface multiplier, and amplification
// for under-inflation.
func rollingResistanceCoefficient(fuelGrade string, tyre TyreType, surface Surface, actualPSI, recommendedPSI float64) float64 {
	base, ok := crrByFuelGrade[fuelGrade]
	if !ok {
		base = crrByFuelGrade[DefaultFuelGradeCode]
	}
	crr := (base + crrTyreTypeAdd[tyre]) * surface.CrrMultiplier
	if deficit := recommendedPSI - actualPSI; deficit > 0 {
		crr *= 1 + 0.01*deficit
	}
	return crr
}

// solveRolling integrates dv/dt = -(a0 + k*v^2): constant rolling and
// slope terms plus quadratic air drag. The closed forms
//
//	d = ln(1 + k*v0^2/a0) / (2k)
//	t = atan(v0*sqrt(k/a0)) / sqrt(a0*k)
//
// are exact; a linear-drag approximation underestimates long coasts.
func solveRolling(speedKmh, slopeDeg, loadedMassKg, crr float64) RollingPhysicsResult {
	theta := slopeDeg * math.Pi / 180
	a0 := crr*Gravity*math.Cos(theta) + Gravity*math.Sin(theta)

	requiredMu := 0.0
	if slopeDeg < 0 {
		requiredMu = math.Tan(-theta)
	}

	res := RollingPhysicsResult{
		RollingResistanceCoefficient: crr,
		EffectiveDecelerationMS2:     a0,
		RequiredFrictionToStop:       requiredMu,
	}

	if a0 <= 0 {
		// Gravity beats rolling resistance too: the vehicle accelerates
		// toward the speed where drag balances the net slope force.
		net := Gravity * (math.Abs(math.Sin(theta)) - crr*math.Cos(theta))
		vTerm := math.Sqrt(2 * loadedMassKg * net / (AirDensity * DragCoefficient * FrontalAreaM2))
		res.CanStopEventually = false
		res.EffectiveDecelerationMS2 = 0
		res.TerminalSpeedKmh = vTerm / kmhToMs
		res.Reason = fmt.Sprintf(
			"slope overwhelms rolling resistance; coasting toward %.0f km/h terminal speed", res.TerminalSpeedKmh)
		return res
	}

	k := 0.5 * AirDensity * DragCoefficient * FrontalAreaM2 / loadedMassKg
	v0 := speedKmh * kmhToMs
	res.CanStopEventually = true
	res.StoppingDistanceM = dragStoppingDistance(v0, a0, k)
	res.StoppingTimeS = dragStoppingTime(v0, a0, k)
	res.Reason = "brakes cannot hold the slope; rolling resistance and drag stop the vehicle"
	return res
}

func dragStoppingDistance(v0, a0, k float64) float64 {
	return math.Log(1+k*v0*v0/a0) / (2 * k)
}

func dragStoppingTime(v0, a0, k float64) float64 {
	return math.Atan(v0*math.Sqrt(k/a0)) / math.Sqrt(a0*k)
}
