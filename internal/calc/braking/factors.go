package braking

import (
	"fmt"
	"math"
)

// FactorResult is one modeled effect on grip: a dimensionless multiplier
// (usually <=1, above 1 for genuine grip gains) plus display metadata.
type FactorResult struct {
	Value          float64 `json:"value"`
	Label          string  `json:"label"`
	Status         string  `json:"status"`
	Classification string  `json:"classification"`
}

// FactorSet collects the fifteen grip factors plus the two control
// factors. Only the grip factors enter the multiplicative composition;
// era and calibration are applied separately by the friction composer.
type FactorSet struct {
	Surface        FactorResult `json:"surface"`
	Weather        FactorResult `json:"weather"`
	WetGripGrade   FactorResult `json:"wet_grip_grade"`
	TyreAge        FactorResult `json:"tyre_age"`
	Tread          FactorResult `json:"tread"`
	Pressure       FactorResult `json:"pressure"`
	TyreWidth      FactorResult `json:"tyre_width"`
	Temperature    FactorResult `json:"temperature"`
	SpeedDecay     FactorResult `json:"speed_decay"`
	Load           FactorResult `json:"load"`
	SlopeDirection FactorResult `json:"slope_direction"`
	BrakeFade      FactorResult `json:"brake_fade"`
	Compound       FactorResult `json:"compound"`
	Camber         FactorResult `json:"camber"`
	Downforce      FactorResult `json:"downforce"`

	VehicleEra  FactorResult `json:"vehicle_era"`
	Calibration FactorResult `json:"real_world_calibration"`
}

func (fs FactorSet) product() float64 {
	grip := []FactorResult{
		fs.Surface, fs.Weather, fs.WetGripGrade, fs.TyreAge, fs.Tread,
		fs.Pressure, fs.TyreWidth, fs.Temperature, fs.SpeedDecay, fs.Load,
		fs.SlopeDirection, fs.BrakeFade, fs.Compound, fs.Camber, fs.Downforce,
	}
	p := 1.0
	for _, f := range grip {
		p *= f.Value
	}
	return p
}

func computeFactors(in Input, cond conditions) FactorSet {
	return FactorSet{
		Surface:        surfaceFactor(cond.surface, in.ABS),
		Weather:        weatherFactor(cond.waterDepthMM),
		WetGripGrade:   gradeFactor(cond.grade, cond.dampBlend),
		TyreAge:        ageFactor(in.TyreAgeYears, in.HotClimate),
		Tread:          treadFactor(in.TreadDepthMM, cond.dampBlend),
		Pressure:       pressureFactor(in.PressurePSI, in.RecommendedPSI),
		TyreWidth:      widthFactor(in.TyreWidthMM, cond.waterDepthMM, cond.dampBlend),
		Temperature:    temperatureFactor(in.AmbientTempC, in.TyreType),
		SpeedDecay:     speedDecayFactor(in.SpeedKmh, cond.dampBlend),
		Load:           loadFactor(in.VehicleMassKg, in.LoadedMassKg),
		SlopeDirection: slopeDirectionFactor(in.SlopeDeg),
		BrakeFade:      brakeFadeFactor(in.BrakeFadeLevel),
		Compound:       compoundFactor(cond.compound, cond.dampBlend),
		Camber:         camberFactor(in.RoadCamberDeg),
		Downforce:      downforceFactor(in.SpeedKmh, in.LoadedMassKg, in.Downforce, in.DownforceClA),
		VehicleEra:     eraFactor(in.ModelYear),
		Calibration:    calibrationFactor(in, cond),
	}
}

// classifyLoss buckets a multiplier by how much grip it removes.
func classifyLoss(value float64) string {
	loss := 1 - value
	switch {
	case loss <= 0:
		return "none"
	case loss <= 0.02:
		return "minimal"
	case loss <= 0.10:
		return "moderate"
	case loss <= 0.25:
		return "significant"
	default:
		return "severe"
	}
}

func surfaceFactor(s Surface, abs bool) FactorResult {
	value := s.Slide
	status := fmt.Sprintf("%s, locked-wheel grip", s.Name)
	if abs {
		value = s.Peak
		status = fmt.Sprintf("%s, ABS holds peak grip", s.Name)
	}
	return FactorResult{
		Value:          value,
		Label:          "Road surface",
		Status:         status,
		Classification: classifyLoss(value),
	}
}

// curvePoint pairs belong to piecewise-linear factor curves.
type curvePoint struct{ x, y float64 }

func interpolateCurve(points []curvePoint, x float64) float64 {
	if x <= points[0].x {
		return points[0].y
	}
	for i := 1; i < len(points); i++ {
		if x <= points[i].x {
			t := (x - points[i-1].x) / (points[i].x - points[i-1].x)
			return lerp(points[i-1].y, points[i].y, t)
		}
	}
	return points[len(points)-1].y
}

var weatherCurve = []curvePoint{
	{0, 1.00}, {0.2, 0.98}, {0.5, 0.93}, {1.0, 0.85},
	{2.0, 0.75}, {3.0, 0.65}, {5.0, 0.50},
}

func weatherFactor(waterDepthMM float64) FactorResult {
	var value float64
	if waterDepthMM > 5.0 {
		// continue the last segment's slope, bottoming out at 0.05
		value = math.Max(0.05, 0.50-0.075*(waterDepthMM-5.0))
	} else {
		value = interpolateCurve(weatherCurve, waterDepthMM)
	}
	return FactorResult{
		Value:          value,
		Label:          "Water on road",
		Status:         fmt.Sprintf("%.1f mm water film", waterDepthMM),
		Classification: classifyLoss(value),
	}
}

func gradeFactor(grade WetGripGrade, blend float64) FactorResult {
	wet := grade.WetMultiplier
	// Label differences are certified wet; dry spread is about 40% as wide.
	dry := 1 + (wet-1)*0.40
	value := lerp(dry, wet, blend)
	return FactorResult{
		Value:          value,
		Label:          "EU wet grip grade",
		Status:         fmt.Sprintf("grade %s (%s)", grade.Code, grade.Label),
		Classification: classifyLoss(value),
	}
}

// ageLossRates: rubber hardening accelerates through mid-life and then
// flattens once the compound is fully oxidized.
var ageLossRates = []struct {
	fromYear float64
	rate     float64 // grip loss per year inside the segment
}{
	{0, 0.010},
	{2, 0.020},
	{4, 0.035},
	{6, 0.050},
	{8, 0.070},
	{10, 0.020},
}

func ageFactor(years float64, hotClimate bool) FactorResult {
	years = clamp(years, 0, 25)
	loss := 0.0
	for i, seg := range ageLossRates {
		segEnd := 25.0
		if i+1 < len(ageLossRates) {
			segEnd = ageLossRates[i+1].fromYear
		}
		if years <= seg.fromYear {
			break
		}
		span := math.Min(years, segEnd) - seg.fromYear
		loss += span * seg.rate
	}
	status := fmt.Sprintf("%.0f years old", years)
	if hotClimate {
		// UV and heat accelerate oxidation
		loss *= 1.35
		status += ", hot climate"
	}
	value := math.Max(0.35, 1-loss)
	return FactorResult{
		Value:          value,
		Label:          "Tyre age",
		Status:         status,
		Classification: classifyLoss(value),
	}
}

var treadWetCurve = []curvePoint{
	{1.6, 0.55}, {4.0, 0.85}, {8.0, 1.00},
}

func treadFactor(treadMM, blend float64) FactorResult {
	treadMM = clamp(treadMM, 0, 12)
	// Dry grip barely cares; a bald tyre still has full rubber on the road.
	dry := 1 - 0.12*(1-clamp(treadMM/8, 0, 1))
	// Wet grip falls off a cliff below 4 mm; extrapolate the steep
	// segment below the 1.6 mm legal minimum.
	var wet float64
	if treadMM < 1.6 {
		wet = 0.55 - 0.125*(1.6-treadMM)
	} else {
		wet = interpolateCurve(treadWetCurve, treadMM)
	}
	value := clamp(lerp(dry, wet, blend), 0.20, 1.00)
	return FactorResult{
		Value:          value,
		Label:          "Tread depth",
		Status:         fmt.Sprintf("%.1f mm remaining", treadMM),
		Classification: classifyLoss(value),
	}
}

func pressureFactor(actualPSI, recommendedPSI float64) FactorResult {
	dev := (actualPSI - recommendedPSI) / recommendedPSI
	dev = clamp(dev, -0.30, 0.30)
	var value float64
	var status string
	switch {
	case dev < 0:
		// Under-inflation folds the shoulders in and overheats the tyre;
		// it is punished harder than the same over-inflation.
		value = math.Max(0.85, 1-0.9129*math.Pow(-dev, 1.5))
		status = fmt.Sprintf("%.0f%% under-inflated", -dev*100)
	case dev > 0:
		value = math.Max(0.88, 1-0.7303*math.Pow(dev, 1.5))
		status = fmt.Sprintf("%.0f%% over-inflated", dev*100)
	default:
		value = 1
		status = "at recommended pressure"
	}
	return FactorResult{
		Value:          value,
		Label:          "Tyre pressure",
		Status:         status,
		Classification: classifyLoss(value),
	}
}

func widthFactor(widthMM, waterDepthMM, blend float64) FactorResult {
	const referenceWidth = 205.0
	dev := clamp((widthMM-referenceWidth)/referenceWidth, -0.30, 0.30)
	// Dry: more rubber, more grip. Wet: a wide tyre has to push more
	// water aside, but most of that is already charged by the weather
	// factor, so the width penalty scales in slowly with depth.
	dry := 1 + 0.25*dev
	depthScale := 0.2
	if waterDepthMM > 0.5 {
		depthScale = clamp(0.2+0.8*(waterDepthMM-0.5)/1.0, 0.2, 1.0)
	}
	wet := 1 - 0.25*dev*depthScale
	value := clamp(lerp(dry, wet, blend), 0.80, 1.15)
	return FactorResult{
		Value:          value,
		Label:          "Tyre width",
		Status:         fmt.Sprintf("%.0f mm section width", widthMM),
		Classification: classifyLoss(value),
	}
}

func temperatureFactor(tempC float64, tyre TyreType) FactorResult {
	tempC = clamp(tempC, -40, 55)
	var value float64
	var status string
	switch tyre {
	case TyreWinter:
		switch {
		case tempC <= 7 && tempC >= -20:
			value, status = 1.0, "winter compound in its range"
		case tempC > 7:
			value = math.Max(0.75, 1-0.010*(tempC-7))
			status = "winter compound too warm, squirming"
		default:
			value = math.Max(0.90, 1-0.003*(-20-tempC))
			status = "extreme cold"
		}
	case TyreAllSeason:
		switch {
		case tempC >= 0 && tempC <= 25:
			value, status = 1.0, "all-season compound in its range"
		case tempC < 0:
			value = math.Max(0.70, 1-0.007*(0-tempC))
			status = "all-season compound below its range"
		default:
			value = math.Max(0.70, 1-0.007*(tempC-25))
			status = "all-season compound above its range"
		}
	default: // summer
		switch {
		case tempC >= 15 && tempC <= 35:
			value, status = 1.0, "summer compound in its range"
		case tempC > 35:
			value = math.Max(0.85, 1-0.005*(tempC-35))
			status = "very hot tarmac"
		case tempC >= 7:
			value = 1 - 0.012*(15-tempC)
			status = "summer compound cooling off"
		default:
			// compound glass transition: grip collapses quickly
			value = math.Max(0.50, 0.904-0.025*(7-tempC))
			status = "summer compound hardened by cold"
		}
	}
	return FactorResult{
		Value:          value,
		Label:          "Temperature",
		Status:         fmt.Sprintf("%.0f°C, %s", tempC, status),
		Classification: classifyLoss(value),
	}
}

func speedDecayFactor(speedKmh, blend float64) FactorResult {
	if speedKmh <= 40 {
		return FactorResult{
			Value:          1,
			Label:          "Speed decay",
			Status:         "no decay at town speeds",
			Classification: "none",
		}
	}
	// Effective grip erodes slightly with speed, faster on a wet film.
	rate := lerp(0.0012, 0.0018, blend)
	value := math.Max(0.75, 1-rate*(speedKmh-40))
	return FactorResult{
		Value:          value,
		Label:          "Speed decay",
		Status:         fmt.Sprintf("grip decay above 40 km/h at %.0f km/h", speedKmh),
		Classification: classifyLoss(value),
	}
}

func loadFactor(massKg, loadedKg float64) FactorResult {
	if loadedKg <= massKg {
		return FactorResult{
			Value:          1,
			Label:          "Vehicle load",
			Status:         "at reference mass",
			Classification: "none",
		}
	}
	overload := loadedKg/massKg - 1
	value := math.Max(0.85, 1-0.075*overload)
	return FactorResult{
		Value:          value,
		Label:          "Vehicle load",
		Status:         fmt.Sprintf("%.0f%% over reference mass", overload*100),
		Classification: classifyLoss(value),
	}
}

// slopeDirectionFactor only classifies the gradient for display and
// warnings. Its multiplier stays neutral: the physical slope term enters
// the solver through sin/cos of the signed angle, not through grip.
func slopeDirectionFactor(slopeDeg float64) FactorResult {
	status := "level road"
	switch {
	case slopeDeg > 0.5:
		status = fmt.Sprintf("uphill %.1f°, gravity assists braking", slopeDeg)
	case slopeDeg < -0.5:
		status = fmt.Sprintf("downhill %.1f°, gravity fights braking", -slopeDeg)
	}
	return FactorResult{
		Value:          1,
		Label:          "Slope direction",
		Status:         status,
		Classification: "none",
	}
}

var fadeLossRates = []struct {
	fromLevel float64
	rate      float64 // grip loss per fade level inside the segment
}{
	{0, 0.00},
	{2, 0.03},
	{4, 0.05},
	{6, 0.08},
	{8, 0.10},
	{9, 0.12},
}

func brakeFadeFactor(level float64) FactorResult {
	level = clamp(level, 0, 10)
	loss := 0.0
	for i, seg := range fadeLossRates {
		segEnd := 10.0
		if i+1 < len(fadeLossRates) {
			segEnd = fadeLossRates[i+1].fromLevel
		}
		if level <= seg.fromLevel {
			break
		}
		loss += (math.Min(level, segEnd) - seg.fromLevel) * seg.rate
	}
	value := math.Max(0.40, 1-loss)
	return FactorResult{
		Value:          value,
		Label:          "Brake fade",
		Status:         fmt.Sprintf("fade level %.0f of 10", level),
		Classification: classifyLoss(value),
	}
}

func compoundFactor(c CompoundSpec, blend float64) FactorResult {
	value := lerp(c.Dry, c.Wet, blend)
	return FactorResult{
		Value:          value,
		Label:          "Compound",
		Status:         fmt.Sprintf("%s compound", c.Label),
		Classification: classifyLoss(value),
	}
}

func camberFactor(camberDeg float64) FactorResult {
	camberDeg = clamp(camberDeg, -12, 12)
	value := 1.0
	status := "flat crown"
	switch {
	case camberDeg > 2:
		// a mild crown drains water and loads the contact patch evenly
		value = 1 + 0.01*(math.Min(camberDeg, 5)-2)
		status = fmt.Sprintf("crowned road, %.1f°", camberDeg)
	case camberDeg < -2:
		value = 1 - 0.015*(-camberDeg-2)
		status = fmt.Sprintf("off-camber, %.1f°", camberDeg)
	}
	value = clamp(value, 0.75, 1.05)
	return FactorResult{
		Value:          value,
		Label:          "Road camber",
		Status:         status,
		Classification: classifyLoss(value),
	}
}

func downforceFactor(speedKmh, loadedKg float64, enabled bool, clA float64) FactorResult {
	if !enabled || speedKmh < 80 {
		return FactorResult{
			Value:          1,
			Label:          "Downforce",
			Status:         "no aero effect",
			Classification: "none",
		}
	}
	if clA <= 0 {
		clA = 2.0
	}
	v := speedKmh * kmhToMs
	// dynamic pressure on the aero surfaces, read as extra vertical load
	downforceN := 0.5 * AirDensity * v * v * clA
	loadRatio := downforceN / (loadedKg * Gravity)
	bonus := math.Min(0.40, 0.8*loadRatio)
	return FactorResult{
		Value:          1 + bonus,
		Label:          "Downforce",
		Status:         fmt.Sprintf("+%.0f kg equivalent load", downforceN/Gravity),
		Classification: "none",
	}
}

// eraFactor is a control factor: a value below 1.0 means the composed
// coefficient is replaced outright by this era's regulatory target.
func eraFactor(modelYear int) FactorResult {
	if modelYear < 1900 {
		return FactorResult{
			Value:          1,
			Label:          "Vehicle era",
			Status:         "model year unspecified",
			Classification: "none",
		}
	}
	for _, b := range eraBrackets {
		if modelYear >= b.fromYear && modelYear <= b.toYear {
			return FactorResult{
				Value:          b.targetMu,
				Label:          "Vehicle era",
				Status:         fmt.Sprintf("%d, %s braking hardware", modelYear, b.label),
				Classification: classifyLoss(b.targetMu),
			}
		}
	}
	return FactorResult{Value: 1, Label: "Vehicle era", Status: "model year unspecified", Classification: "none"}
}

// calibrationFactor reconciles the idealized multiplicative model with
// measured stopping distances for the current road condition.
func calibrationFactor(in Input, cond conditions) FactorResult {
	sc := surfaceConditionFor(cond.surface.Code, cond.waterDepthMM)
	corr := calibrationBase[sc]
	corr *= calibrationTyre[sc][in.TyreType]
	if sc == condWet {
		if g, ok := calibrationWetGrade[cond.grade.Code]; ok {
			corr *= g
		}
	}
	switch {
	case in.SpeedKmh > 160:
		corr *= 0.92
	case in.SpeedKmh > 120:
		corr *= 0.96
	}
	corr = clamp(corr, 0.5, 1.3)
	return FactorResult{
		Value:          corr,
		Label:          "Real-world calibration",
		Status:         fmt.Sprintf("%s-condition correction", sc),
		Classification: "none",
	}
}
