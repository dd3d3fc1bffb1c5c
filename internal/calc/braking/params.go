package braking

import (
	"fmt"
	"math"
	"strings"
)

// Input is the full scenario description. Every field has a documented
// default; decode request bodies over DefaultInput() so omitted fields
// keep their defaults instead of collapsing to Go zero values.
type Input struct {
	SpeedKmh float64 `json:"speed_kmh"`
	Surface  string  `json:"surface"`
	// Weather, when set to a known preset code, resolves to a water depth
	// and takes precedence over WaterDepthMM.
	Weather      string  `json:"weather"`
	WaterDepthMM float64 `json:"water_depth_mm"`

	GradeEU   string `json:"grade_eu"`   // EU wet-grip label A..F
	FuelGrade string `json:"fuel_grade"` // EU fuel-economy label A..F

	TyreAgeYears float64  `json:"tyre_age_years"`
	TreadDepthMM float64  `json:"tread_depth_mm"`
	TyreWidthMM  float64  `json:"tyre_width_mm"`
	TyreType     TyreType `json:"tyre_type"`
	Compound     string   `json:"compound"`

	PressurePSI    float64 `json:"pressure_psi"` // 0 = use recommended
	RecommendedPSI float64 `json:"recommended_psi"`

	AmbientTempC float64 `json:"ambient_temp_c"`
	HotClimate   bool    `json:"hot_climate"`

	SlopeDeg      float64 `json:"slope_deg"` // signed, positive uphill
	RoadCamberDeg float64 `json:"road_camber_deg"`

	VehicleMassKg float64 `json:"vehicle_mass_kg"`
	LoadedMassKg  float64 `json:"loaded_mass_kg"` // 0 = unloaded

	ABS            bool    `json:"abs"`
	ReactionTimeS  float64 `json:"reaction_time_s"`
	BrakeFadeLevel float64 `json:"brake_fade_level"` // 0..10

	Downforce    bool    `json:"downforce"`
	DownforceClA float64 `json:"downforce_cla"` // lift coefficient x area, m^2

	ModelYear int `json:"model_year"` // 0 = unspecified
}

// DefaultInput is a modern mid-size car on good dry asphalt at 100 km/h.
func DefaultInput() Input {
	return Input{
		SpeedKmh:       100,
		Surface:        DefaultSurfaceCode,
		Weather:        "",
		WaterDepthMM:   0,
		GradeEU:        DefaultGradeCode,
		FuelGrade:      DefaultFuelGradeCode,
		TyreAgeYears:   0,
		TreadDepthMM:   8,
		TyreWidthMM:    205,
		TyreType:       TyreSummer,
		Compound:       DefaultCompoundCode,
		PressurePSI:    0,
		RecommendedPSI: 32,
		AmbientTempC:   20,
		HotClimate:     false,
		SlopeDeg:       0,
		RoadCamberDeg:  0,
		VehicleMassKg:  1500,
		LoadedMassKg:   0,
		ABS:            true,
		ReactionTimeS:  1.5,
		BrakeFadeLevel: 0,
		Downforce:      false,
		DownforceClA:   2.0,
		ModelYear:      0,
	}
}

// conditions holds the per-invocation derived state shared by the factor
// functions: everything wetness-related is resolved exactly once here.
type conditions struct {
	surface      Surface
	grade        WetGripGrade
	compound     CompoundSpec
	waterDepthMM float64
	// dampBlend replaces the old binary wet/dry switch: 0 on a dry road,
	// rising linearly to 1 at 0.5 mm of water, held at 1 beyond. Every
	// factor with separate dry and wet curves interpolates with it, which
	// keeps the model continuous across the damp boundary.
	dampBlend float64
}

func (in Input) validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"speed_kmh", in.SpeedKmh},
		{"water_depth_mm", in.WaterDepthMM},
		{"tyre_age_years", in.TyreAgeYears},
		{"tread_depth_mm", in.TreadDepthMM},
		{"tyre_width_mm", in.TyreWidthMM},
		{"pressure_psi", in.PressurePSI},
		{"recommended_psi", in.RecommendedPSI},
		{"ambient_temp_c", in.AmbientTempC},
		{"slope_deg", in.SlopeDeg},
		{"road_camber_deg", in.RoadCamberDeg},
		{"vehicle_mass_kg", in.VehicleMassKg},
		{"loaded_mass_kg", in.LoadedMassKg},
		{"reaction_time_s", in.ReactionTimeS},
		{"brake_fade_level", in.BrakeFadeLevel},
		{"downforce_cla", in.DownforceClA},
	}
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return fmt.Errorf("field %s is not a finite number", f.name)
		}
	}
	return nil
}

// resolve fills defaults for omitted fields and computes the shared
// derived conditions. Out-of-range numerics are clamped here or inside
// the factor functions that consume them, never rejected.
func resolve(in Input) (Input, conditions) {
	if in.Surface == "" {
		in.Surface = DefaultSurfaceCode
	}
	if in.GradeEU == "" {
		in.GradeEU = DefaultGradeCode
	}
	if in.FuelGrade == "" {
		in.FuelGrade = DefaultFuelGradeCode
	}
	if _, ok := crrByFuelGrade[in.FuelGrade]; !ok {
		in.FuelGrade = DefaultFuelGradeCode
	}
	switch in.TyreType {
	case TyreSummer, TyreWinter, TyreAllSeason:
	default:
		in.TyreType = TyreSummer
	}
	if in.Compound == "" {
		in.Compound = DefaultCompoundCode
	}
	if in.RecommendedPSI <= 0 {
		in.RecommendedPSI = 32
	}
	if in.PressurePSI <= 0 {
		in.PressurePSI = in.RecommendedPSI
	}
	if in.VehicleMassKg <= 0 {
		in.VehicleMassKg = 1500
	}
	if in.LoadedMassKg < in.VehicleMassKg {
		in.LoadedMassKg = in.VehicleMassKg
	}
	if in.ReactionTimeS <= 0 {
		in.ReactionTimeS = 1.5
	}
	if in.TyreWidthMM <= 0 {
		in.TyreWidthMM = 205
	}
	in.SpeedKmh = clamp(in.SpeedKmh, 0, 400)
	in.SlopeDeg = clamp(in.SlopeDeg, -30, 30)
	in.ReactionTimeS = clamp(in.ReactionTimeS, 0.3, 5)

	cond := conditions{
		surface:      SurfaceByCode(in.Surface),
		grade:        WetGripGradeByCode(in.GradeEU),
		compound:     CompoundByCode(in.Compound),
		waterDepthMM: math.Max(0, in.WaterDepthMM),
	}
	if preset, ok := WeatherPresetByCode(in.Weather); ok {
		cond.waterDepthMM = preset.WaterDepthMM
	}
	cond.dampBlend = dampnessBlend(cond.waterDepthMM)
	return in, cond
}

// dampnessBlend maps water depth to the dry-to-wet interpolation weight.
func dampnessBlend(waterDepthMM float64) float64 {
	return clamp(waterDepthMM/0.5, 0, 1)
}

// surfaceConditionFor classifies the road for the calibration tables.
// Frozen surfaces win over water depth; anything holding more than a
// film of water counts as wet.
func surfaceConditionFor(surfaceCode string, waterDepthMM float64) surfaceCondition {
	switch {
	case strings.Contains(surfaceCode, "ice"):
		return condIce
	case strings.Contains(surfaceCode, "snow"):
		return condSnow
	case waterDepthMM > 0.3:
		return condWet
	default:
		return condDry
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
