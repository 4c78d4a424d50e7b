package finance_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avolkov/voyageplan-go/internal/domain/cargo"
	"github.com/avolkov/voyageplan-go/internal/domain/finance"
	"github.com/avolkov/voyageplan-go/internal/domain/fleet"
	"github.com/avolkov/voyageplan-go/internal/domain/routing"
	"github.com/avolkov/voyageplan-go/test/helpers"
)

func referenceInputs(t *testing.T) (*fleet.Vessel, *cargo.Commitment, *routing.Route, *finance.CalculationParams) {
	t.Helper()
	vessel := helpers.NewVessel(t, "V-001", 10000, 12, 10000)
	commitment := helpers.NewCommitment(t, "C-001", 5000, 30)
	route, err := routing.NewRoute("ROTTERDAM", "HAMBURG", 1000, false, "", "low")
	require.NoError(t, err)
	return vessel, commitment, route, helpers.BaselineParams()
}

func TestCalculator_ReferenceVoyage(t *testing.T) {
	// Arrange
	calc := finance.NewCalculator(nil)
	vessel, commitment, route, params := referenceInputs(t)

	// Act
	fin, err := calc.Calculate(vessel, commitment, route, params)

	// Assert
	require.NoError(t, err)

	// 1,000 nm at 12 kn with a 1.05 weather margin is 87.5 sea hours.
	assert.InDelta(t, 87.5/24, fin.SeaDays, 1e-9)

	// 5,000 MT at 2,000 MT/day both ends plus two 12h waits is 6.0 port days.
	assert.InDelta(t, 6.0, fin.PortDays, 1e-9)
	assert.InDelta(t, 87.5/24+6.0, fin.TotalVoyageDays, 1e-9)

	assert.Equal(t, 100000.0, fin.Revenue)
	assert.Equal(t, 54688.0, fin.BunkerCost)
	assert.Equal(t, 96458.0, fin.HireCost)
	assert.Equal(t, 30000.0, fin.PortCost)
	assert.Equal(t, fin.BunkerCost+fin.HireCost+fin.PortCost, fin.TotalCost)
	assert.Equal(t, fin.Revenue-fin.TotalCost, fin.Profit)
	assert.Equal(t, 1587.0, fin.TCE)
}

func TestCalculator_ProfitIdentityHoldsAfterRounding(t *testing.T) {
	calc := finance.NewCalculator(nil)
	vessel, _, route, params := referenceInputs(t)

	// Odd quantities force fractional intermediate figures.
	for _, quantity := range []float64{1.0, 333.33, 4999.99, 7777.0} {
		commitment := helpers.NewCommitment(t, "C-X", quantity, 10)

		fin, err := calc.Calculate(vessel, commitment, route, params)
		require.NoError(t, err)

		assert.Equal(t, fin.Revenue-(fin.BunkerCost+fin.HireCost+fin.PortCost), fin.Profit,
			"profit identity must hold exactly for quantity %.2f", quantity)
	}
}

func TestCalculator_VesselRatesOverrideParams(t *testing.T) {
	// Arrange: a faster, more expensive vessel than the parameter defaults.
	calc := finance.NewCalculator(nil)
	_, commitment, route, params := referenceInputs(t)
	fast := helpers.NewVessel(t, "V-FAST", 10000, 24, 20000)
	slow := helpers.NewVessel(t, "V-SLOW", 10000, 12, 10000)

	// Act
	fastFin, err := calc.Calculate(fast, commitment, route, params)
	require.NoError(t, err)
	slowFin, err := calc.Calculate(slow, commitment, route, params)
	require.NoError(t, err)

	// Assert: double speed halves sea days; the hire rate comes from the vessel.
	assert.InDelta(t, slowFin.SeaDays/2, fastFin.SeaDays, 1e-9)
	assert.Greater(t, fastFin.HireCost/fastFin.TotalVoyageDays, slowFin.HireCost/slowFin.TotalVoyageDays)
}

func TestCalculator_PluggablePortCost(t *testing.T) {
	// Arrange: a caller-supplied cost model replaces the flat estimate.
	custom := func(c *cargo.Commitment, r *routing.Route, p *finance.CalculationParams) float64 {
		return 99000
	}
	calc := finance.NewCalculator(custom)
	vessel, commitment, route, params := referenceInputs(t)

	// Act
	fin, err := calc.Calculate(vessel, commitment, route, params)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 99000.0, fin.PortCost)
}

func TestCalculator_NilInputsAreErrors(t *testing.T) {
	calc := finance.NewCalculator(nil)
	vessel, commitment, route, params := referenceInputs(t)

	_, err := calc.Calculate(nil, commitment, route, params)
	assert.Error(t, err)

	_, err = calc.Calculate(vessel, nil, route, params)
	assert.Error(t, err)

	_, err = calc.Calculate(vessel, commitment, nil, params)
	assert.Error(t, err)

	_, err = calc.Calculate(vessel, commitment, route, nil)
	assert.Error(t, err)
}

func TestCalculator_InvalidParamsRejected(t *testing.T) {
	calc := finance.NewCalculator(nil)
	vessel, commitment, route, params := referenceInputs(t)

	params.LoadRateMTDay = 0

	_, err := calc.Calculate(vessel, commitment, route, params)
	assert.Error(t, err, "a zero load rate would divide by zero")
}

func TestCalculationParams_Validate(t *testing.T) {
	params := helpers.BaselineParams()
	require.NoError(t, params.Validate())

	bad := helpers.BaselineParams()
	bad.WeatherMargin = 0.9
	assert.Error(t, bad.Validate(), "weather margin below 1 shortens voyages for free")

	var nilParams *finance.CalculationParams
	assert.Error(t, nilParams.Validate())
}
