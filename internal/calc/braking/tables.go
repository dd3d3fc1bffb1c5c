package braking

// Reference tables for the braking model. Everything here is read-only
// after process start and safe to share between concurrent calculations.

const (
	Gravity    = 9.81  // m/s^2
	AirDensity = 1.225 // kg/m^3, sea level

	// Water shallower than this cannot form a wedge under the contact
	// patch; the hydroplaning model is skipped entirely below it.
	StandingWaterThresholdMM = 2.5

	// Generic passenger-car drag figures for the coasting fallback.
	DragCoefficient = 0.30
	FrontalAreaM2   = 2.2

	kmhToMs    = 1.0 / 3.6
	mphToKmh   = 1.60934
	mToFeet    = 3.28084
	carLengthM = 4.5
)

type Surface struct {
	Code  string  `json:"code"`
	Name  string  `json:"name"`
	Peak  float64 `json:"peak"`  // grip just before wheel lock (ABS keeps you here)
	Slide float64 `json:"slide"` // locked-wheel grip
	// Rolling resistance relative to good asphalt, used by the coasting
	// fallback when brakes cannot hold the vehicle on a slope.
	CrrMultiplier float64 `json:"-"`
}

const DefaultSurfaceCode = "asphalt"

var surfaces = []Surface{
	{"asphalt", "Asphalt (good condition)", 1.00, 0.78, 1.0},
	{"asphalt_worn", "Asphalt (worn, polished)", 0.85, 0.65, 1.2},
	{"concrete", "Concrete", 0.95, 0.75, 0.9},
	{"cobblestone", "Cobblestone", 0.75, 0.58, 1.5},
	{"gravel", "Gravel", 0.65, 0.50, 2.0},
	{"dirt", "Dirt road", 0.60, 0.45, 2.5},
	{"sand", "Sand", 0.50, 0.38, 3.5},
	{"snow_packed", "Packed snow", 0.30, 0.22, 2.2},
	{"snow_loose", "Loose snow", 0.22, 0.16, 3.0},
	{"ice", "Ice", 0.12, 0.08, 0.75},
	{"ice_smooth", "Smooth ice", 0.06, 0.04, 0.7},
}

var surfaceByCode = func() map[string]Surface {
	m := make(map[string]Surface, len(surfaces))
	for _, s := range surfaces {
		m[s.Code] = s
	}
	return m
}()

// SurfaceByCode resolves a surface code, falling back to standard asphalt
// for anything it does not recognize.
func SurfaceByCode(code string) Surface {
	if s, ok := surfaceByCode[code]; ok {
		return s
	}
	return surfaceByCode[DefaultSurfaceCode]
}

// Surfaces returns a copy of the surface table for UI population.
func Surfaces() []Surface {
	out := make([]Surface, len(surfaces))
	copy(out, surfaces)
	return out
}

type WetGripGrade struct {
	Code          string  `json:"code"`
	Label         string  `json:"label"`
	WetMultiplier float64 `json:"wet_multiplier"`
}

const DefaultGradeCode = "C"

// EU tyre-label wet grip classes. "F" stands in for unrated imports.
var wetGripGrades = []WetGripGrade{
	{"A", "Best wet grip", 1.00},
	{"B", "Good wet grip", 0.95},
	{"C", "Average wet grip", 0.90},
	{"D", "Below-average wet grip", 0.82},
	{"E", "Poor wet grip", 0.75},
	{"F", "Unrated (non-EU market)", 0.65},
}

func WetGripGradeByCode(code string) WetGripGrade {
	for _, g := range wetGripGrades {
		if g.Code == code {
			return g
		}
	}
	return WetGripGradeByCode(DefaultGradeCode)
}

func WetGripGrades() []WetGripGrade {
	out := make([]WetGripGrade, len(wetGripGrades))
	copy(out, wetGripGrades)
	return out
}

type WeatherPreset struct {
	Code         string  `json:"code"`
	Label        string  `json:"label"`
	WaterDepthMM float64 `json:"water_depth_mm"`
}

var weatherPresets = []WeatherPreset{
	{"dry", "Dry", 0},
	{"damp", "Damp road", 0.3},
	{"light_rain", "Light rain", 1.0},
	{"rain", "Steady rain", 2.0},
	{"heavy_rain", "Heavy rain", 4.0},
	{"downpour", "Downpour", 6.0},
	{"standing_water", "Standing water", 8.0},
}

// WeatherPresetByCode resolves a preset code; unknown codes mean the
// caller supplied an explicit water depth instead.
func WeatherPresetByCode(code string) (WeatherPreset, bool) {
	for _, p := range weatherPresets {
		if p.Code == code {
			return p, true
		}
	}
	return WeatherPreset{}, false
}

func WeatherPresets() []WeatherPreset {
	out := make([]WeatherPreset, len(weatherPresets))
	copy(out, weatherPresets)
	return out
}

type TyreType string

const (
	TyreSummer    TyreType = "summer"
	TyreWinter    TyreType = "winter"
	TyreAllSeason TyreType = "allseason"
)

// Rolling resistance base coefficient by EU fuel-economy label class.
var crrByFuelGrade = map[string]float64{
	"A": 0.00585,
	"B": 0.00730,
	"C": 0.00876,
	"D": 0.01021,
	"E": 0.01166,
	"F": 0.01311,
}

const DefaultFuelGradeCode = "C"

// Winter compounds and deeper sipes roll noticeably worse.
var crrTyreTypeAdd = map[TyreType]float64{
	TyreSummer:    0,
	TyreAllSeason: 0.002,
	TyreWinter:    0.004,
}

type CompoundSpec struct {
	Code  string  `json:"code"`
	Label string  `json:"label"`
	Dry   float64 `json:"dry"`
	Wet   float64 `json:"wet"`
}

const DefaultCompoundCode = "touring"

var compounds = []CompoundSpec{
	{"economy", "Economy", 0.95, 0.93},
	{"touring", "Touring", 0.98, 0.97},
	{"sport", "Sport", 1.02, 0.98},
	{"performance", "Performance", 1.05, 1.00},
	{"semi_slick", "Semi-slick", 1.08, 0.90},
	{"track", "Track", 1.12, 0.82},
}

func CompoundByCode(code string) CompoundSpec {
	for _, c := range compounds {
		if c.Code == code {
			return c
		}
	}
	return CompoundByCode(DefaultCompoundCode)
}

func Compounds() []CompoundSpec {
	out := make([]CompoundSpec, len(compounds))
	copy(out, compounds)
	return out
}

// Friction coefficients implied by regulatory stopping-distance data of
// each production era. A target below 1.0 overrides the composed value
// outright; the modern bracket leaves the model untouched.
type eraBracket struct {
	fromYear int
	toYear   int
	targetMu float64
	label    string
}

var eraBrackets = []eraBracket{
	{0, 1979, 0.55, "pre-1980"},
	{1980, 1989, 0.62, "1980s"},
	{1990, 2003, 0.70, "1990s to early 2000s"},
	{2004, 2011, 0.78, "2004-2011"},
	{2012, 9999, 1.00, "modern (2012+)"},
}

// Real-world calibration. The multiplicative factor model is idealized;
// these corrections were fitted against 285 published stopping-distance
// tests so the composed coefficient lands near measured results.

type surfaceCondition string

const (
	condDry  surfaceCondition = "dry"
	condWet  surfaceCondition = "wet"
	condSnow surfaceCondition = "snow"
	condIce  surfaceCondition = "ice"
)

var calibrationBase = map[surfaceCondition]float64{
	condDry:  1.02,
	condWet:  0.88,
	condSnow: 1.08,
	condIce:  1.12,
}

var calibrationTyre = map[surfaceCondition]map[TyreType]float64{
	condDry:  {TyreSummer: 1.00, TyreWinter: 0.96, TyreAllSeason: 0.99},
	condWet:  {TyreSummer: 1.00, TyreWinter: 1.03, TyreAllSeason: 1.01},
	condSnow: {TyreSummer: 0.80, TyreWinter: 1.25, TyreAllSeason: 1.10},
	condIce:  {TyreSummer: 0.85, TyreWinter: 1.20, TyreAllSeason: 1.05},
}

// Applied in wet conditions only; the label grades certify wet braking.
var calibrationWetGrade = map[string]float64{
	"A": 1.04,
	"B": 1.02,
	"C": 1.00,
	"D": 0.97,
	"E": 0.94,
	"F": 0.90,
}
