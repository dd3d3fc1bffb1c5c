package braking

import "fmt"

type RiskLevel string

const (
	RiskMinimal  RiskLevel = "MINIMAL"
	RiskLow      RiskLevel = "LOW"
	RiskModerate RiskLevel = "MODERATE"
	RiskHigh     RiskLevel = "HIGH"
	RiskSevere   RiskLevel = "SEVERE"
	RiskExtreme  RiskLevel = "EXTREME"
)

type RiskAssessment struct {
	Level RiskLevel `json:"level"`
	Label string    `json:"label"`
}

type WarningSeverity string

const (
	SeverityInfo     WarningSeverity = "info"
	SeverityWarning  WarningSeverity = "warning"
	SeverityCritical WarningSeverity = "critical"
	SeverityExtreme  WarningSeverity = "extreme"
)

type Warning struct {
	Severity WarningSeverity `json:"severity"`
	Factor   string          `json:"factor"`
	Message  string          `json:"message"`
	Icon     string          `json:"icon"`
}

// assessRisk classifies the scenario by the weaker of effective grip and
// achieved deceleration in g. Active hydroplaning or an unstoppable
// vehicle is EXTREME regardless of the numbers.
func assessRisk(mu, decelG float64, hydroActive, canStopWithBrakes bool) RiskAssessment {
	if hydroActive || !canStopWithBrakes {
		return RiskAssessment{RiskExtreme, "no meaningful braking authority"}
	}
	m := mu
	if decelG < m {
		m = decelG
	}
	switch {
	case m >= 0.80:
		return RiskAssessment{RiskMinimal, "braking performance as designed"}
	case m >= 0.60:
		return RiskAssessment{RiskLow, "mildly degraded braking"}
	case m >= 0.45:
		return RiskAssessment{RiskModerate, "noticeably longer stopping distances"}
	case m >= 0.30:
		return RiskAssessment{RiskHigh, "seriously degraded braking"}
	case m >= 0.15:
		return RiskAssessment{RiskSevere, "marginal braking authority"}
	default:
		return RiskAssessment{RiskExtreme, "almost no braking authority"}
	}
}

// buildWarnings tests each factor against its own thresholds, in a fixed
// order, without deduplication. The cannot-stop condition always leads.
func buildWarnings(in Input, cond conditions, fs FactorSet, hydro HydroplaningResult,
	rolling *RollingPhysicsResult, canStopWithBrakes bool,
) []Warning {
	var ws []Warning
	add := func(sev WarningSeverity, factor, icon, format string, args ...any) {
		ws = append(ws, Warning{Severity: sev, Factor: factor, Icon: icon, Message: fmt.Sprintf(format, args...)})
	}

	if !canStopWithBrakes {
		if rolling != nil && !rolling.CanStopEventually {
			add(SeverityExtreme, "slope", "⛔",
				"brakes cannot stop the vehicle on this slope; it will coast toward %.0f km/h",
				rolling.TerminalSpeedKmh)
		} else {
			add(SeverityExtreme, "slope", "⛔",
				"brakes cannot stop the vehicle; only rolling resistance and drag slow it")
		}
	}

	switch hydro.RiskLevel {
	case HydroCritical:
		add(SeverityExtreme, "hydroplaning", "🌊",
			"hydroplaning: tyres have lifted off the road surface")
	case HydroActive:
		add(SeverityCritical, "hydroplaning", "🌊",
			"hydroplaning above the %.0f km/h threshold", hydro.ThresholdSpeedKmh)
	case HydroWarning:
		add(SeverityWarning, "hydroplaning", "🌊",
			"close to the %.0f km/h hydroplaning threshold", hydro.ThresholdSpeedKmh)
	}

	if fs.Surface.Value < 0.35 {
		add(SeverityCritical, "surface", "🧊", "very low-grip surface: %s", cond.surface.Name)
	} else if fs.Surface.Value < 0.60 {
		add(SeverityWarning, "surface", "🛣", "low-grip surface: %s", cond.surface.Name)
	}
	if cond.waterDepthMM >= StandingWaterThresholdMM {
		add(SeverityWarning, "weather", "🌧", "%.1f mm of standing water on the road", cond.waterDepthMM)
	} else if cond.waterDepthMM > 0.5 {
		add(SeverityInfo, "weather", "🌦", "wet road, %.1f mm water film", cond.waterDepthMM)
	}
	if in.TreadDepthMM < 1.6 {
		add(SeverityCritical, "tread", "🛞", "tread below the 1.6 mm legal minimum")
	} else if in.TreadDepthMM < 3 {
		add(SeverityWarning, "tread", "🛞", "tread at %.1f mm, wet grip already reduced", in.TreadDepthMM)
	}
	if in.TyreAgeYears > 10 {
		add(SeverityCritical, "tyre_age", "⏳", "tyres are %.0f years old and should be replaced", in.TyreAgeYears)
	} else if in.TyreAgeYears > 6 {
		add(SeverityWarning, "tyre_age", "⏳", "tyres are %.0f years old, rubber is hardening", in.TyreAgeYears)
	}
	if fs.Pressure.Value < 0.90 {
		add(SeverityWarning, "pressure", "💨", "tyre pressure far from recommended")
	} else if fs.Pressure.Value < 0.97 {
		add(SeverityInfo, "pressure", "💨", "tyre pressure slightly off recommended")
	}
	if fs.Temperature.Value < 0.70 {
		add(SeverityCritical, "temperature", "🌡", "compound badly outside its temperature range")
	} else if fs.Temperature.Value < 0.90 {
		add(SeverityWarning, "temperature", "🌡", "compound outside its temperature range")
	}
	if in.TyreType == TyreSummer && in.AmbientTempC < 7 {
		add(SeverityWarning, "tyre_type", "❄", "summer tyres below 7°C; fit winter tyres")
	}
	if fs.BrakeFade.Value < 0.70 {
		add(SeverityCritical, "brake_fade", "🔥", "severe brake fade, stop and let the brakes cool")
	} else if fs.BrakeFade.Value < 0.90 {
		add(SeverityWarning, "brake_fade", "🔥", "brake fade is building up")
	}
	if fs.Load.Value < 0.95 {
		add(SeverityInfo, "load", "📦", "vehicle heavily loaded")
	}
	if in.SlopeDeg < -6 {
		add(SeverityWarning, "slope", "⛰", "steep descent of %.1f°", -in.SlopeDeg)
	}
	if fs.Camber.Value < 0.95 {
		add(SeverityInfo, "camber", "↩", "off-camber road reduces effective grip")
	}
	if !in.ABS {
		add(SeverityInfo, "abs", "🔒", "no ABS: locked wheels slide at reduced grip")
	}
	if cond.grade.Code == "E" || cond.grade.Code == "F" {
		add(SeverityInfo, "wet_grip_grade", "🏷", "tyres carry a poor EU wet-grip grade (%s)", cond.grade.Code)
	}
	return ws
}
