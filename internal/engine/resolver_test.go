package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sdiallo/woyofal/internal/config"
)

func TestResolve_EnergyMode(t *testing.T) {
	est, err := Resolve(Input{Mode: ModeEnergy, EnergyKWh: 550}, config.DefaultRates())
	require.NoError(t, err)

	assert.Equal(t, ModeEnergy, est.Mode)
	assert.Equal(t, 550.0, est.EnergyKWh)
	assert.InDelta(t, 73757.0, est.Total, floatTolerance)
}

func TestResolve_PowerMode(t *testing.T) {
	// 175 W for 8 h/day over 30 days is 42 kWh, entirely inside tier 1.
	est, err := Resolve(Input{Mode: ModePower, Watts: 175, HoursPerDay: 8}, config.DefaultRates())
	require.NoError(t, err)

	assert.InDelta(t, 42.0, est.EnergyKWh, floatTolerance)
	assert.InDelta(t, 3444.0, est.Total, floatTolerance)
	assert.InDelta(t, 42.0, est.Breakdown[0].Energy, floatTolerance)
	assert.Equal(t, 0.0, est.Breakdown[1].Energy)
	assert.Equal(t, 0.0, est.Breakdown[2].Energy)
}

func TestResolve_CostMode(t *testing.T) {
	t.Run("displayed total is the original amount", func(t *testing.T) {
		// The input amount is ground truth: it must come back exactly,
		// not recomputed from the inverted energy.
		amount := 10000.0
		est, err := Resolve(Input{Mode: ModeCost, Amount: amount}, config.DefaultRates())
		require.NoError(t, err)

		assert.Equal(t, amount, est.Total)
		assert.InDelta(t, amount, est.Breakdown.Total(), 1e-6,
			"breakdown total should agree with the amount up to float drift")
	})

	t.Run("inversion failure propagates", func(t *testing.T) {
		rates := config.Rates{DaysPerMonth: 30}

		_, err := Resolve(Input{Mode: ModeCost, Amount: 5000}, rates)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidRate)
	})
}

func TestResolve_InvalidRates(t *testing.T) {
	rates := config.DefaultRates()
	rates.DaysPerMonth = 0

	_, err := Resolve(Input{Mode: ModeEnergy, EnergyKWh: 100}, rates)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrDaysNotPositive)
}

func TestResolve_UnknownMode(t *testing.T) {
	_, err := Resolve(Input{Mode: "wishful"}, config.DefaultRates())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownMode)
}

func TestResolve_SanitizesRawFields(t *testing.T) {
	tests := []struct {
		name  string
		input Input
	}{
		{name: "NaN energy", input: Input{Mode: ModeEnergy, EnergyKWh: math.NaN()}},
		{name: "negative energy", input: Input{Mode: ModeEnergy, EnergyKWh: -10}},
		{name: "infinite watts", input: Input{Mode: ModePower, Watts: math.Inf(1), HoursPerDay: 8}},
		{name: "negative hours", input: Input{Mode: ModePower, Watts: 100, HoursPerDay: -4}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			est, err := Resolve(tc.input, config.DefaultRates())
			require.NoError(t, err)
			assert.Equal(t, 0.0, est.EnergyKWh)
			assert.Equal(t, 0.0, est.Total)
		})
	}
}

func TestMonthlyEnergy(t *testing.T) {
	rates := config.DefaultRates()

	assert.InDelta(t, 42.0, MonthlyEnergy(175, 8, rates), floatTolerance)
	assert.InDelta(t, 21.0, MonthlyEnergy(175, 4, rates), floatTolerance)
	assert.Equal(t, 0.0, MonthlyEnergy(0, 8, rates))
}
