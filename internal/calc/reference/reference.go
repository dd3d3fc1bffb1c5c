package reference

import braking "Brakelab/internal/calc/braking"

// Read-only views of the model's constant tables, shaped for populating
// selection widgets in the frontend.

type SurfaceInfo struct {
	Code  string  `json:"code"`
	Name  string  `json:"name"`
	Peak  float64 `json:"peak"`
	Slide float64 `json:"slide"`
}

type WeatherInfo struct {
	Code         string  `json:"code"`
	Label        string  `json:"label"`
	WaterDepthMM float64 `json:"water_depth_mm"`
	// HydroRisk is derived from the model's single standing-water
	// threshold, never from a second copy of the constant.
	HydroRisk bool `json:"hydro_risk"`
}

type GradeInfo struct {
	Code          string  `json:"code"`
	Label         string  `json:"label"`
	WetMultiplier float64 `json:"wet_multiplier"`
}

func Surfaces() []SurfaceInfo {
	src := braking.Surfaces()
	out := make([]SurfaceInfo, 0, len(src))
	for _, s := range src {
		out = append(out, SurfaceInfo{Code: s.Code, Name: s.Name, Peak: s.Peak, Slide: s.Slide})
	}
	return out
}

func WeatherPresets() []WeatherInfo {
	src := braking.WeatherPresets()
	out := make([]WeatherInfo, 0, len(src))
	for _, p := range src {
		out = append(out, WeatherInfo{
			Code:         p.Code,
			Label:        p.Label,
			WaterDepthMM: p.WaterDepthMM,
			HydroRisk:    p.WaterDepthMM >= braking.StandingWaterThresholdMM,
		})
	}
	return out
}

func Grades() []GradeInfo {
	src := braking.WetGripGrades()
	out := make([]GradeInfo, 0, len(src))
	for _, g := range src {
		out = append(out, GradeInfo{Code: g.Code, Label: g.Label, WetMultiplier: g.WetMultiplier})
	}
	return out
}
