package braking

import "math"

// Result is the aggregate output of one calculation, always fully
// populated. Distances of zero together with CanStopEventually=false
// mean the scenario never stops; no field ever carries an infinity.
type Result struct {
	ReactionDistanceM    float64 `json:"reaction_distance_m"`
	BrakingDistanceM     float64 `json:"braking_distance_m"`
	StoppingDistanceM    float64 `json:"stopping_distance_m"`
	StoppingDistanceFt   float64 `json:"stopping_distance_ft"`
	StoppingDistanceCars float64 `json:"stopping_distance_cars"`

	CanStopWithBrakes bool `json:"can_stop_with_brakes"`
	CanStopEventually bool `json:"can_stop_eventually"`

	EffectiveFriction  float64 `json:"effective_friction"`
	RawDecelerationMS2 float64 `json:"raw_deceleration_ms2"`
	DecelerationMS2    float64 `json:"deceleration_ms2"`
	DecelerationG      float64 `json:"deceleration_g"`

	EffectiveWaterDepthMM float64 `json:"effective_water_depth_mm"`
	DampnessBlend         float64 `json:"dampness_blend"`

	Factors      FactorSet             `json:"factors"`
	Hydroplaning HydroplaningResult    `json:"hydroplaning"`
	Rolling      *RollingPhysicsResult `json:"rolling_physics,omitempty"`

	BestCaseDistanceM  float64 `json:"best_case_distance_m"`
	WorstCaseDistanceM float64 `json:"worst_case_distance_m"`

	Risk     RiskAssessment      `json:"risk"`
	Warnings []Warning           `json:"warnings"`
	Sparks   CosmeticSparkResult `json:"brake_sparks"`

	Notes string `json:"notes"`
}

// Calculate runs the full pipeline for one scenario. It is pure: for the
// same input it returns bit-identical results, and nothing is shared
// between invocations beyond the read-only reference tables.
func Calculate(in Input) (Result, error) {
	return calculate(in, true)
}

// calculate is the guarded internal entry point; the comparison engine
// re-enters here with withComparison=false so the recursion stops at
// depth one.
func calculate(in Input, withComparison bool) (Result, error) {
	if err := in.validate(); err != nil {
		return Result{}, err
	}
	in, cond := resolve(in)

	factors := computeFactors(in, cond)
	hydro := evaluateHydroplaning(in.SpeedKmh, cond.waterDepthMM, in.PressurePSI, in.TreadDepthMM, in.TyreWidthMM)
	mu := composeFriction(factors, hydro)

	rawA := brakingDeceleration(mu, in.SlopeDeg)
	reactionM := in.SpeedKmh * kmhToMs * in.ReactionTimeS

	res := Result{
		EffectiveFriction:     mu,
		RawDecelerationMS2:    rawA,
		ReactionDistanceM:     reactionM,
		EffectiveWaterDepthMM: cond.waterDepthMM,
		DampnessBlend:         cond.dampBlend,
		Factors:               factors,
		Hydroplaning:          hydro,
	}

	if rawA > 0 {
		res.CanStopWithBrakes = true
		res.CanStopEventually = true
		res.DecelerationMS2 = rawA
		res.DecelerationG = rawA / Gravity
		res.BrakingDistanceM = brakingDistance(in.SpeedKmh, rawA)
		res.StoppingDistanceM = reactionM + res.BrakingDistanceM
	} else {
		// Gravity wins against the brakes: hand over to the coasting model.
		crr := rollingResistanceCoefficient(in.FuelGrade, in.TyreType, cond.surface, in.PressurePSI, in.RecommendedPSI)
		rolling := solveRolling(in.SpeedKmh, in.SlopeDeg, in.LoadedMassKg, crr)
		res.Rolling = &rolling
		res.CanStopWithBrakes = false
		res.CanStopEventually = rolling.CanStopEventually
		res.DecelerationMS2 = 0
		res.DecelerationG = rolling.EffectiveDecelerationMS2 / Gravity
		if rolling.CanStopEventually {
			res.StoppingDistanceM = reactionM + rolling.StoppingDistanceM
		}
	}

	if withComparison {
		res.BestCaseDistanceM, res.WorstCaseDistanceM = compareScenarios(in, cond.dampBlend)
	}

	res.Risk = assessRisk(mu, res.DecelerationG, hydro.IsHydroplaning, res.CanStopWithBrakes)
	res.Warnings = buildWarnings(in, cond, factors, hydro, res.Rolling, res.CanStopWithBrakes)
	res.Sparks = estimateBrakeSparks(in.SpeedKmh, res.DecelerationG, in.ABS)
	res.Notes = "Educational model; not a substitute for real-world judgement."

	res.round()
	return res, nil
}

func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

// round applies the documented presentation precision per field. The
// factor values keep four places so small effects survive display.
func (r *Result) round() {
	r.ReactionDistanceM = roundTo(r.ReactionDistanceM, 2)
	r.BrakingDistanceM = roundTo(r.BrakingDistanceM, 2)
	r.StoppingDistanceM = roundTo(r.StoppingDistanceM, 2)
	r.StoppingDistanceFt = roundTo(r.StoppingDistanceM*mToFeet, 1)
	r.StoppingDistanceCars = roundTo(r.StoppingDistanceM/carLengthM, 1)
	r.EffectiveFriction = roundTo(r.EffectiveFriction, 3)
	r.RawDecelerationMS2 = roundTo(r.RawDecelerationMS2, 2)
	r.DecelerationMS2 = roundTo(r.DecelerationMS2, 2)
	r.DecelerationG = roundTo(r.DecelerationG, 3)
	r.EffectiveWaterDepthMM = roundTo(r.EffectiveWaterDepthMM, 2)
	r.DampnessBlend = roundTo(r.DampnessBlend, 3)
	r.BestCaseDistanceM = roundTo(r.BestCaseDistanceM, 2)
	r.WorstCaseDistanceM = roundTo(r.WorstCaseDistanceM, 2)

	r.Hydroplaning.ThresholdSpeedKmh = roundTo(r.Hydroplaning.ThresholdSpeedKmh, 1)
	r.Hydroplaning.FrictionMultiplier = roundTo(r.Hydroplaning.FrictionMultiplier, 4)

	if r.Rolling != nil {
		r.Rolling.StoppingDistanceM = roundTo(r.Rolling.StoppingDistanceM, 2)
		r.Rolling.StoppingTimeS = roundTo(r.Rolling.StoppingTimeS, 2)
		r.Rolling.RollingResistanceCoefficient = roundTo(r.Rolling.RollingResistanceCoefficient, 5)
		r.Rolling.EffectiveDecelerationMS2 = roundTo(r.Rolling.EffectiveDecelerationMS2, 3)
		r.Rolling.RequiredFrictionToStop = roundTo(r.Rolling.RequiredFrictionToStop, 3)
		r.Rolling.TerminalSpeedKmh = roundTo(r.Rolling.TerminalSpeedKmh, 1)
	}

	roundFactor := func(f *FactorResult) { f.Value = roundTo(f.Value, 4) }
	for _, f := range []*FactorResult{
		&r.Factors.Surface, &r.Factors.Weather, &r.Factors.WetGripGrade,
		&r.Factors.TyreAge, &r.Factors.Tread, &r.Factors.Pressure,
		&r.Factors.TyreWidth, &r.Factors.Temperature, &r.Factors.SpeedDecay,
		&r.Factors.Load, &r.Factors.SlopeDirection, &r.Factors.BrakeFade,
		&r.Factors.Compound, &r.Factors.Camber, &r.Factors.Downforce,
		&r.Factors.VehicleEra, &r.Factors.Calibration,
	} {
		roundFactor(f)
	}
}
