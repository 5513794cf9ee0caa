package montecarlo

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"portfolio-analyzer/internal/model"
)

func TestSamplerClampsIntoBounds(t *testing.T) {
	t.Parallel()

	asset := model.AssetClass{
		Name:         "Volatile",
		MedianReturn: 0.05,
		StdDeviation: 0.50, // wide enough to hit both bounds often
		MinReturn:    -0.20,
		MaxReturn:    0.30,
		Allocation:   1,
	}

	s := testSampler(3)
	hitMin, hitMax := false, false
	for i := 0; i < 10000; i++ {
		r := s.Sample(asset)
		assert.GreaterOrEqual(t, r, asset.MinReturn)
		assert.LessOrEqual(t, r, asset.MaxReturn)
		if r == asset.MinReturn {
			hitMin = true
		}
		if r == asset.MaxReturn {
			hitMax = true
		}
	}
	assert.True(t, hitMin, "expected some draws clamped to the floor")
	assert.True(t, hitMax, "expected some draws clamped to the cap")
}

func TestSamplerZeroVolatilityIsDeterministic(t *testing.T) {
	t.Parallel()

	asset := model.AssetClass{MedianReturn: 0.07, StdDeviation: 0, MinReturn: -1, MaxReturn: 1, Allocation: 1}
	s := testSampler(9)
	for i := 0; i < 100; i++ {
		assert.InDelta(t, 0.07, s.Sample(asset), 1e-12)
	}
}

func TestSamplerSameSeedSameSequence(t *testing.T) {
	t.Parallel()

	asset := model.AssetClass{MedianReturn: 0.08, StdDeviation: 0.15, MinReturn: -0.4, MaxReturn: 0.35, Allocation: 1}
	a, b := testSampler(42), testSampler(42)
	for i := 0; i < 1000; i++ {
		assert.Equal(t, a.Sample(asset), b.Sample(asset))
	}
}

func TestWeightedReturnCombinesByAllocation(t *testing.T) {
	t.Parallel()

	// Two deterministic assets: 10% at weight 0.25, 2% at weight 0.75.
	assets := []model.AssetClass{
		{MedianReturn: 0.10, StdDeviation: 0, MinReturn: -1, MaxReturn: 1, Allocation: 0.25},
		{MedianReturn: 0.02, StdDeviation: 0, MinReturn: -1, MaxReturn: 1, Allocation: 0.75},
	}
	s := testSampler(1)
	assert.InDelta(t, 0.10*0.25+0.02*0.75, s.WeightedReturn(assets), 1e-12)
}
