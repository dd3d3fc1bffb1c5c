package braking

// CosmeticSparkResult drives a purely visual brake-glow effect in the
// simulator frontend. It is derived from the solver outputs and feeds
// nothing back into the physics.
type CosmeticSparkResult struct {
	Intensity     float64 `json:"intensity"` // 0..100
	Level         string  `json:"level"`
	Color         string  `json:"color"`
	ParticleCount int     `json:"particle_count"`
}

var sparkTiers = []struct {
	minIntensity float64
	level        string
	color        string
	particles    int
}{
	{85, "extreme", "#fff1a8", 90},
	{65, "intense", "#ffb347", 60},
	{45, "high", "#ff7a00", 35},
	{30, "moderate", "#d45500", 20},
	{15, "low", "#a33c12", 10},
	{0.01, "faint", "#6b2f1a", 4},
}

func estimateBrakeSparks(speedKmh, decelG float64, abs bool) CosmeticSparkResult {
	var speedFac float64
	switch {
	case speedKmh < 30:
		speedFac = 0
	case speedKmh < 80:
		speedFac = (speedKmh - 30) / 50 * 0.6
	case speedKmh < 150:
		speedFac = 0.6 + (speedKmh-80)/70*0.4
	default:
		speedFac = 1
	}

	var decelFac float64
	switch {
	case decelG < 0.2:
		decelFac = 0
	case decelG < 0.6:
		decelFac = (decelG - 0.2) / 0.4 * 0.5
	case decelG < 1.0:
		decelFac = 0.5 + (decelG-0.6)/0.4*0.5
	default:
		decelFac = 1
	}

	intensity := speedFac * decelFac * 100
	if abs && intensity > 40 {
		// modulated braking never quite reaches lockup glow
		intensity *= 0.85
	}

	for _, tier := range sparkTiers {
		if intensity >= tier.minIntensity {
			return CosmeticSparkResult{
				Intensity:     roundTo(intensity, 1),
				Level:         tier.level,
				Color:         tier.color,
				ParticleCount: tier.particles,
			}
		}
	}
	return CosmeticSparkResult{Level: "none"}
}
