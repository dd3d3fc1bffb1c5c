package setup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	braking "Brakelab/internal/calc/braking"
)

func TestAdviseEvaluatesEveryPairing(t *testing.T) {
	res, err := Advise(Input{Scenario: braking.DefaultInput()})
	require.NoError(t, err)
	assert.Len(t, res.Candidates, 3*len(braking.Compounds()))

	// ranking is shortest stop first among setups that stop
	for i := 1; i < len(res.Candidates); i++ {
		a, b := res.Candidates[i-1], res.Candidates[i]
		if a.CanStop && b.CanStop {
			assert.LessOrEqual(t, a.StoppingDistanceM, b.StoppingDistanceM)
		}
	}
	assert.Equal(t, res.Candidates[0], res.Best)
}

func TestAdvisePrefersWinterTyresInColdSnow(t *testing.T) {
	scenario := braking.DefaultInput()
	scenario.Surface = "snow_packed"
	scenario.AmbientTempC = -10

	res, err := Advise(Input{Scenario: scenario})
	require.NoError(t, err)
	require.True(t, res.Best.CanStop)
	assert.Equal(t, braking.TyreWinter, res.Best.TyreType)
}

func TestAdviseReportsNoWorkingSetup(t *testing.T) {
	scenario := braking.DefaultInput()
	scenario.Surface = "ice_smooth"
	scenario.SlopeDeg = -15

	res, err := Advise(Input{Scenario: scenario})
	require.NoError(t, err)
	assert.False(t, res.Best.CanStop)
	assert.Contains(t, res.Notes, "No tyre setup")
}
