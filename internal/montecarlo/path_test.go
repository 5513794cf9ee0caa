package montecarlo

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-analyzer/internal/model"
)

// flatAsset never moves: zero median, zero volatility.
func flatAsset() []model.AssetClass {
	return []model.AssetClass{{
		Name:         "Flat",
		MedianReturn: 0,
		StdDeviation: 0,
		MinReturn:    -1,
		MaxReturn:    1,
		Allocation:   1,
	}}
}

func testSampler(seed int64) *Sampler {
	return NewSampler(rand.New(rand.NewSource(seed)))
}

func TestSimulatePathFlatNoDrawdown(t *testing.T) {
	t.Parallel()

	req := &model.SimulationRequest{
		AssetClasses:      flatAsset(),
		InitialInvestment: 1000000,
		TimeHorizon:       3,
		NumSimulations:    5000,
	}

	points, sum := simulatePath(req, testSampler(1))

	require.Len(t, points, 4)
	for i, pt := range points {
		assert.Equal(t, i, pt.Year)
		assert.InDelta(t, 1000000.0, pt.PortfolioValue, 1e-9)
	}
	assert.Zero(t, sum.GrossWithdrawn)
	assert.Zero(t, sum.TaxPaid)
}

func TestSimulatePathForcedDepletionIsSticky(t *testing.T) {
	t.Parallel()

	req := &model.SimulationRequest{
		AssetClasses:      flatAsset(),
		InitialInvestment: 1000000,
		TimeHorizon:       3,
		NumSimulations:    5000,
		EnableDrawdown:    true,
		AnnualDrawdown:    2000000,
		TaxSettings:       model.TaxSettings{AccountType: model.AccountTaxFree},
	}

	points, sum := simulatePath(req, testSampler(1))

	require.Len(t, points, 4)
	assert.InDelta(t, 1000000.0, points[0].PortfolioValue, 1e-9)
	for _, pt := range points[1:] {
		assert.Zero(t, pt.PortfolioValue, "year %d must stay depleted", pt.Year)
	}
	// Only the first (depleting) withdrawal is taken; nothing after.
	assert.InDelta(t, 2000000.0, sum.GrossWithdrawn, 1e-9)
	assert.Zero(t, sum.TaxPaid)
}

func TestSimulatePathInflationIndexedWithdrawals(t *testing.T) {
	t.Parallel()

	req := &model.SimulationRequest{
		AssetClasses:      flatAsset(),
		InitialInvestment: 1000000,
		TimeHorizon:       3,
		NumSimulations:    5000,
		EnableDrawdown:    true,
		AnnualDrawdown:    100000,
		InflationRate:     0.10,
		TaxSettings:       model.TaxSettings{AccountType: model.AccountTaxFree},
	}

	points, sum := simulatePath(req, testSampler(1))

	// Withdrawals: 100k, 110k, 121k against a zero-return portfolio.
	require.Len(t, points, 4)
	assert.InDelta(t, 900000, points[1].PortfolioValue, 1e-6)
	assert.InDelta(t, 790000, points[2].PortfolioValue, 1e-6)
	assert.InDelta(t, 669000, points[3].PortfolioValue, 1e-6)
	assert.InDelta(t, 331000, sum.GrossWithdrawn, 1e-6)
	assert.InDelta(t, 331000, sum.NetReceived, 1e-6)
}

func TestSimulatePathTaxDeferredGrossUp(t *testing.T) {
	t.Parallel()

	req := &model.SimulationRequest{
		AssetClasses:      flatAsset(),
		InitialInvestment: 1000000,
		TimeHorizon:       1,
		NumSimulations:    5000,
		EnableDrawdown:    true,
		AnnualDrawdown:    100000,
		TaxSettings: model.TaxSettings{
			AccountType:           model.AccountTaxDeferred,
			OrdinaryIncomeTaxRate: 0.22,
		},
	}

	points, sum := simulatePath(req, testSampler(1))

	gross := 100000 / (1 - 0.22)
	require.Len(t, points, 2)
	assert.InDelta(t, 1000000-gross, points[1].PortfolioValue, 1e-6)
	assert.InDelta(t, gross, sum.GrossWithdrawn, 1e-6)
	assert.InDelta(t, gross*0.22, sum.TaxPaid, 1e-6)
	assert.InDelta(t, 100000, sum.NetReceived, 1e-6)
}

func TestSimulatePathTaxableBasisReduction(t *testing.T) {
	t.Parallel()

	req := &model.SimulationRequest{
		AssetClasses:      flatAsset(),
		InitialInvestment: 1000000,
		TimeHorizon:       2,
		NumSimulations:    5000,
		EnableDrawdown:    true,
		AnnualDrawdown:    100000,
		TaxSettings: model.TaxSettings{
			AccountType:         model.AccountTaxable,
			CapitalGainsTaxRate: 0.15,
		},
	}

	points, sum := simulatePath(req, testSampler(1))

	// Flat returns: value never exceeds basis, so no gain is ever taxed.
	require.Len(t, points, 3)
	assert.InDelta(t, 900000, points[1].PortfolioValue, 1e-6)
	assert.InDelta(t, 800000, points[2].PortfolioValue, 1e-6)
	assert.Zero(t, sum.TaxPaid)
}

func TestSimulatePathTaxableGainsTaxedAfterGrowth(t *testing.T) {
	t.Parallel()

	// Deterministic +100% growth per year.
	doubling := []model.AssetClass{{
		Name:         "Doubler",
		MedianReturn: 1.0,
		StdDeviation: 0,
		MinReturn:    1.0,
		MaxReturn:    1.0,
		Allocation:   1,
	}}

	req := &model.SimulationRequest{
		AssetClasses:      doubling,
		InitialInvestment: 1000000,
		TimeHorizon:       2,
		NumSimulations:    5000,
		EnableDrawdown:    true,
		AnnualDrawdown:    100000,
		TaxSettings: model.TaxSettings{
			AccountType:         model.AccountTaxable,
			CapitalGainsTaxRate: 0.20,
		},
	}

	points, sum := simulatePath(req, testSampler(1))

	// Year 1: no gain yet (value == basis), withdraw 100k, then double.
	require.Len(t, points, 3)
	assert.InDelta(t, 1800000, points[1].PortfolioValue, 1e-6)

	// Year 2: basis was reduced to 900k on the first withdrawal; value 1.8M.
	// Gains proportion (1.8M-900k)/1.8M = 0.5; tax = 100k*0.5*0.20 = 10k.
	assert.InDelta(t, 10000, sum.TaxPaid, 1e-6)
	assert.InDelta(t, (1800000-100000)*2, points[2].PortfolioValue, 1e-6)
}

func TestSimulatePathValueNeverNegative(t *testing.T) {
	t.Parallel()

	req := &model.SimulationRequest{
		AssetClasses:      DefaultAssetClasses().AssetClasses,
		InitialInvestment: 500000,
		TimeHorizon:       30,
		NumSimulations:    5000,
		EnableDrawdown:    true,
		AnnualDrawdown:    100000,
		InflationRate:     0.05,
		TaxSettings:       model.TaxSettings{AccountType: model.AccountTaxFree},
	}

	for seed := int64(0); seed < 50; seed++ {
		points, _ := simulatePath(req, testSampler(seed))
		require.Len(t, points, req.TimeHorizon+1)
		depleted := false
		for i, pt := range points {
			assert.Equal(t, i, pt.Year)
			assert.GreaterOrEqual(t, pt.PortfolioValue, 0.0,
				"seed %d year %d: negative value", seed, i)
			if depleted {
				assert.Zero(t, pt.PortfolioValue, "seed %d year %d: depletion must be terminal", seed, i)
			}
			if pt.PortfolioValue == 0 && i > 0 {
				depleted = true
			}
		}
	}
}
