package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	braking "Brakelab/internal/calc/braking"
)

func TestSafeSpeedDryAsphalt(t *testing.T) {
	res, err := SafeSpeed(SafeSpeedInput{
		AvailableDistanceM: 50,
		Scenario:           braking.DefaultInput(),
	})
	require.NoError(t, err)

	assert.Greater(t, res.SafeSpeedKmh, 40.0)
	assert.Less(t, res.SafeSpeedKmh, 90.0)
	assert.LessOrEqual(t, res.StoppingDistanceM, 50.0)

	// the recommendation must actually hold when fed back in
	check := braking.DefaultInput()
	check.SpeedKmh = res.SafeSpeedKmh
	out, err := braking.Calculate(check)
	require.NoError(t, err)
	assert.LessOrEqual(t, out.StoppingDistanceM, 50.0)
}

func TestSafeSpeedMoreDistanceAllowsMoreSpeed(t *testing.T) {
	short, err := SafeSpeed(SafeSpeedInput{AvailableDistanceM: 30, Scenario: braking.DefaultInput()})
	require.NoError(t, err)
	long, err := SafeSpeed(SafeSpeedInput{AvailableDistanceM: 120, Scenario: braking.DefaultInput()})
	require.NoError(t, err)
	assert.Greater(t, long.SafeSpeedKmh, short.SafeSpeedKmh)
}

func TestSafeSpeedNoneOnSteepIce(t *testing.T) {
	scenario := braking.DefaultInput()
	scenario.Surface = "ice_smooth"
	scenario.SlopeDeg = -12

	res, err := SafeSpeed(SafeSpeedInput{AvailableDistanceM: 100, Scenario: scenario})
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.SafeSpeedKmh)
	assert.Contains(t, res.Notes, "No safe speed")
}

func TestSafeSpeedRejectsNonPositiveDistance(t *testing.T) {
	_, err := SafeSpeed(SafeSpeedInput{AvailableDistanceM: 0, Scenario: braking.DefaultInput()})
	assert.Error(t, err)
}
