package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sdiallo/woyofal/internal/config"
	"github.com/sdiallo/woyofal/internal/engine"
)

func TestApplianceCSV(t *testing.T) {
	rows := engine.Project(175, config.DefaultRates())
	require.Len(t, rows, 4)

	got := strings.Split(strings.TrimRight(ApplianceCSV(rows), "\n"), "\n")
	require.Len(t, got, 5)

	assert.Equal(t, "Usage Time,kWh/month,Cost @ Tier 1,Cost @ Tier 2,Cost @ Tier 3", got[0])
	assert.Equal(t, "4h/day,21.0,1722,2866,3347", got[1])
	assert.Equal(t, "8h/day,42.0,3444,5733,6693", got[2])
	assert.Equal(t, "12h/day,63.0,5166,8599,10040", got[3])
	assert.Equal(t, "24h/day,126.0,10332,17198,20079", got[4])
}

func TestApplianceCSV_Empty(t *testing.T) {
	got := ApplianceCSV(nil)
	assert.Equal(t, "Usage Time,kWh/month,Cost @ Tier 1,Cost @ Tier 2,Cost @ Tier 3\n", got)
}

func TestMonthlyCSV(t *testing.T) {
	est, err := engine.Resolve(
		engine.Input{Mode: engine.ModeEnergy, EnergyKWh: 550},
		config.DefaultRates(),
	)
	require.NoError(t, err)

	got := strings.Split(strings.TrimRight(MonthlyCSV(est), "\n"), "\n")
	require.Len(t, got, 5)

	assert.Equal(t, "Tier,kWh,Price,Cost", got[0])
	assert.Equal(t, "Tier 1,150.0,82.00,12300", got[1])
	assert.Equal(t, "Tier 2,100.0,136.49,13649", got[2])
	assert.Equal(t, "Tier 3,300.0,159.36,47808", got[3])
	assert.Equal(t, "Total,,550.0,73757", got[4])
}

func TestMonthlyCSV_CostModeKeepsOriginalAmount(t *testing.T) {
	est, err := engine.Resolve(
		engine.Input{Mode: engine.ModeCost, Amount: 10000},
		config.DefaultRates(),
	)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(MonthlyCSV(est), "\n"), "\n")
	total := lines[len(lines)-1]
	assert.True(t, strings.HasSuffix(total, ",10000"),
		"totals row should carry the original amount, got %q", total)
}
