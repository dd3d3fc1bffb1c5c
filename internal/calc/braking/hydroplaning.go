package braking

import (
	"fmt"
	"math"
)

type HydroRiskLevel string

const (
	HydroNone     HydroRiskLevel = "NONE"
	HydroWarning  HydroRiskLevel = "WARNING"
	HydroActive   HydroRiskLevel = "ACTIVE"
	HydroCritical HydroRiskLevel = "CRITICAL"
)

type HydroplaningResult struct {
	IsHydroplaning     bool           `json:"is_hydroplaning"`
	ThresholdSpeedKmh  float64        `json:"threshold_speed_kmh"`
	FrictionMultiplier float64        `json:"friction_multiplier"`
	RiskLevel          HydroRiskLevel `json:"risk_level"`
	Detail             string         `json:"detail"`
}

// evaluateHydroplaning computes the lift-off threshold speed and, when
// exceeded, the grip collapse multiplier. The model is gated: with less
// than 2.5 mm of standing water there is nothing to plane on and the
// result is a fixed neutral value.
func evaluateHydroplaning(speedKmh, waterDepthMM, pressurePSI, treadMM, widthMM float64) HydroplaningResult {
	if waterDepthMM < StandingWaterThresholdMM {
		return HydroplaningResult{
			IsHydroplaning:     false,
			ThresholdSpeedKmh:  0,
			FrictionMultiplier: 1.0,
			RiskLevel:          HydroNone,
			Detail:             "below standing-water threshold",
		}
	}

	// NASA flat-plate formula: threshold (mph) = 10.35 * sqrt(PSI).
	psi := clamp(pressurePSI, 15, 50)
	threshold := 10.35 * math.Sqrt(psi) * mphToKmh

	// Deep tread channels water away and raises the threshold back
	// toward the flat-plate value.
	treadFac := 0.75 + 0.25*clamp(treadMM/8, 0.2, 1.0)

	// Wide tyres have to lift more water per metre travelled.
	widthPenalty := clamp((widthMM-205)*0.0015, 0, 0.15)

	// More than a millimetre of water starts feeding the wedge faster
	// than the grooves can clear it.
	waterFac := 1.0
	if waterDepthMM > 1.0 {
		waterFac = math.Max(0.6, 1-0.05*(waterDepthMM-1.0))
	}

	threshold = threshold * treadFac * (1 - widthPenalty) * waterFac
	threshold = math.Max(35, threshold) // physical lower bound

	res := HydroplaningResult{
		ThresholdSpeedKmh:  threshold,
		FrictionMultiplier: 1.0,
		RiskLevel:          HydroNone,
	}
	switch {
	case speedKmh > threshold:
		res.IsHydroplaning = true
		res.FrictionMultiplier = math.Max(0.05, math.Pow(threshold/speedKmh, 3))
		if res.FrictionMultiplier < 0.3 {
			res.RiskLevel = HydroCritical
		} else {
			res.RiskLevel = HydroActive
		}
		res.Detail = fmt.Sprintf("planing: %.0f km/h over a %.0f km/h threshold", speedKmh, threshold)
	case speedKmh >= threshold*0.85:
		res.RiskLevel = HydroWarning
		res.Detail = fmt.Sprintf("within 15%% of the %.0f km/h threshold", threshold)
	default:
		res.Detail = fmt.Sprintf("threshold %.0f km/h not reached", threshold)
	}
	return res
}
