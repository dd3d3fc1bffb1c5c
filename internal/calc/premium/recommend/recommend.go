package recommend

import (
	"fmt"

	braking "Brakelab/internal/calc/braking"
)

type SafeSpeedInput struct {
	AvailableDistanceM float64       `json:"available_distance_m"`
	Scenario           braking.Input `json:"scenario"`
}

type SafeSpeedResult struct {
	// SafeSpeedKmh is zero when no speed stops the vehicle within the
	// available distance under these conditions.
	SafeSpeedKmh      float64 `json:"safe_speed_kmh"`
	StoppingDistanceM float64 `json:"stopping_distance_m"`
	Notes             string  `json:"notes"`
}

// SafeSpeed searches for the highest speed whose total stopping distance
// fits within the available distance. Stopping distance is strictly
// increasing in speed, so a bisection over the speed range converges.
func SafeSpeed(in SafeSpeedInput) (SafeSpeedResult, error) {
	if in.AvailableDistanceM <= 0 {
		return SafeSpeedResult{}, fmt.Errorf("invalid available distance")
	}

	distanceAt := func(speed float64) (float64, bool) {
		s := in.Scenario
		s.SpeedKmh = speed
		res, err := braking.Calculate(s)
		if err != nil || !res.CanStopEventually {
			return 0, false
		}
		return res.StoppingDistanceM, true
	}

	// If even walking pace cannot stop in the distance, report the zero
	// sentinel rather than a fake small speed.
	if d, ok := distanceAt(5); !ok || d > in.AvailableDistanceM {
		return SafeSpeedResult{
			SafeSpeedKmh: 0,
			Notes:        "No safe speed: the vehicle cannot stop within the available distance.",
		}, nil
	}

	lo, hi := 5.0, 300.0
	for i := 0; i < 48; i++ {
		mid := (lo + hi) / 2
		d, ok := distanceAt(mid)
		if ok && d <= in.AvailableDistanceM {
			lo = mid
		} else {
			hi = mid
		}
	}

	dist, _ := distanceAt(lo)
	return SafeSpeedResult{
		SafeSpeedKmh:      roundDown(lo),
		StoppingDistanceM: dist,
		Notes:             "Highest speed stopping within the available distance for these conditions.",
	}, nil
}

// roundDown keeps the recommendation on the safe side of the search.
func roundDown(v float64) float64 {
	return float64(int(v*10)) / 10
}
