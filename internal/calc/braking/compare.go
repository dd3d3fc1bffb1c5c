package braking

import "math"

// Comparison profiles share the caller's speed, surface, water, slope,
// temperature and vehicle era so the spread isolates what driver and
// equipment choices are worth. Every field a profile does change is taken
// elementwise no worse than the caller's own value, which is what keeps
// bestCase <= total <= worstCase on every valid input. Tyre width and
// road camber stay shared because their effect flips sign with wetness.

func bestCaseInput(in Input, blend float64) Input {
	best := in
	best.GradeEU = "A"
	best.TyreAgeYears = 0
	best.TreadDepthMM = math.Max(in.TreadDepthMM, 8)
	// recommended pressure is the grip optimum; over-inflation beyond it
	// is kept because it raises the hydroplaning threshold
	best.PressurePSI = math.Max(in.PressurePSI, in.RecommendedPSI)
	best.Compound = pickCompound(in.Compound, "performance", blend, false)
	best.ABS = true
	best.ReactionTimeS = math.Min(in.ReactionTimeS, 0.8)
	best.BrakeFadeLevel = 0
	best.LoadedMassKg = best.VehicleMassKg
	best.HotClimate = false
	return best
}

func worstCaseInput(in Input, blend float64) Input {
	worst := in
	worst.GradeEU = pickGrade(in.GradeEU, "E")
	worst.TyreAgeYears = math.Max(in.TyreAgeYears, 12)
	worst.TreadDepthMM = math.Min(in.TreadDepthMM, 1.5)
	worst.PressurePSI = math.Min(in.PressurePSI, in.RecommendedPSI*0.72)
	worst.Compound = pickCompound(in.Compound, "economy", blend, true)
	worst.ABS = false
	worst.ReactionTimeS = math.Max(in.ReactionTimeS, 2.5)
	worst.BrakeFadeLevel = math.Max(in.BrakeFadeLevel, 6)
	// never let the worst case be rescued by an uphill gradient
	if worst.SlopeDeg > 0 {
		worst.SlopeDeg = 0
	}
	return worst
}

// pickCompound keeps the caller's compound when it already beats the
// profile's pick under the current wetness, so the profile never moves a
// scenario in the wrong direction.
func pickCompound(callers, profile string, blend float64, wantWorse bool) string {
	own := compoundGrip(callers, blend)
	alt := compoundGrip(profile, blend)
	if wantWorse == (own <= alt) {
		return callers
	}
	return profile
}

func compoundGrip(code string, blend float64) float64 {
	c := CompoundByCode(code)
	return lerp(c.Dry, c.Wet, blend)
}

// pickGrade returns the grade with the weaker wet multiplier.
func pickGrade(callers, profile string) string {
	if WetGripGradeByCode(callers).WetMultiplier <= WetGripGradeByCode(profile).WetMultiplier {
		return callers
	}
	return profile
}

// compareScenarios returns the best- and worst-case total stopping
// distances, or zero for any scenario that cannot stop. It receives the
// resolved input, so pressure and reaction time carry their defaults.
func compareScenarios(in Input, blend float64) (bestM, worstM float64) {
	if best, err := calculate(bestCaseInput(in, blend), false); err == nil {
		bestM = best.StoppingDistanceM
	}
	if worst, err := calculate(worstCaseInput(in, blend), false); err == nil {
		worstM = worst.StoppingDistanceM
	}
	return bestM, worstM
}
