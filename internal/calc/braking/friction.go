package braking

import "math"

// composeFriction multiplies the fifteen grip factors, applies the
// hydroplaning collapse, then exactly one of the two control
// adjustments, and finally clamps to a plausible floor.
//
// The era override replaces the composed value outright: for an old
// vehicle the historically-implied coefficient already bakes in every
// effect the modern calibration tries to model, so scaling it again
// would double-count.
func composeFriction(fs FactorSet, hydro HydroplaningResult) float64 {
	mu := fs.product()
	if hydro.IsHydroplaning {
		mu *= hydro.FrictionMultiplier
	}

	if fs.VehicleEra.Value < 1.0 {
		mu = fs.VehicleEra.Value
	} else {
		mu *= fs.Calibration.Value
	}

	if hydro.IsHydroplaning {
		// a planing tyre may legitimately approach zero grip
		return math.Max(0.01, mu)
	}
	return math.Max(0.05*fs.Surface.Value, mu)
}
