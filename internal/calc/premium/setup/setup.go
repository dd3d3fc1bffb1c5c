package setup

import (
	"fmt"
	"sort"

	braking "Brakelab/internal/calc/braking"
)

// Tyre setup advisor: evaluates every tyre type and compound pairing
// under the caller's conditions and ranks them by stopping distance.

type Input struct {
	Scenario braking.Input `json:"scenario"`
}

type Candidate struct {
	TyreType          braking.TyreType `json:"tyre_type"`
	Compound          string           `json:"compound"`
	CanStop           bool             `json:"can_stop"`
	StoppingDistanceM float64          `json:"stopping_distance_m"`
	RiskLevel         string           `json:"risk_level"`
}

type Result struct {
	Best       Candidate   `json:"best"`
	Candidates []Candidate `json:"candidates"`
	Notes      string      `json:"notes"`
}

func Advise(in Input) (Result, error) {
	types := []braking.TyreType{braking.TyreSummer, braking.TyreWinter, braking.TyreAllSeason}
	compounds := braking.Compounds()

	candidates := make([]Candidate, 0, len(types)*len(compounds))
	for _, tt := range types {
		for _, c := range compounds {
			s := in.Scenario
			s.TyreType = tt
			s.Compound = c.Code
			res, err := braking.Calculate(s)
			if err != nil {
				return Result{}, err
			}
			candidates = append(candidates, Candidate{
				TyreType:          tt,
				Compound:          c.Code,
				CanStop:           res.CanStopEventually,
				StoppingDistanceM: res.StoppingDistanceM,
				RiskLevel:         string(res.Risk.Level),
			})
		}
	}

	// shortest stop first; setups that never stop sort last
	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.CanStop != b.CanStop {
			return a.CanStop
		}
		return a.StoppingDistanceM < b.StoppingDistanceM
	})

	best := candidates[0]
	if !best.CanStop {
		return Result{
			Best:       best,
			Candidates: candidates,
			Notes:      "No tyre setup stops the vehicle under these conditions.",
		}, nil
	}
	return Result{
		Best:       best,
		Candidates: candidates,
		Notes: fmt.Sprintf("Shortest stop: %s tyres with %s compound (%.1f m).",
			best.TyreType, best.Compound, best.StoppingDistanceM),
	}, nil
}
