package montecarlo

import "portfolio-analyzer/internal/model"

// Defaults is the static starter configuration the engine exposes. Callers
// may substitute their own; nothing in the engine depends on these values.
type Defaults struct {
	AssetClasses      []model.AssetClass
	InitialInvestment float64
	TimeHorizon       int
	NumSimulations    int
}

// DefaultAssetClasses returns a conventional four-class allocation with
// bounded annual return distributions.
func DefaultAssetClasses() Defaults {
	return Defaults{
		AssetClasses: []model.AssetClass{
			{
				Name:         "Stocks",
				MedianReturn: 0.08,
				StdDeviation: 0.15,
				MinReturn:    -0.40,
				MaxReturn:    0.35,
				Allocation:   0.30,
			},
			{
				Name:         "Bonds",
				MedianReturn: 0.04,
				StdDeviation: 0.08,
				MinReturn:    -0.10,
				MaxReturn:    0.15,
				Allocation:   0.30,
			},
			{
				Name:         "Alternatives",
				MedianReturn: 0.10,
				StdDeviation: 0.20,
				MinReturn:    -0.30,
				MaxReturn:    0.50,
				Allocation:   0.20,
			},
			{
				Name:         "Private Credit",
				MedianReturn: 0.07,
				StdDeviation: 0.12,
				MinReturn:    -0.15,
				MaxReturn:    0.25,
				Allocation:   0.20,
			},
		},
		InitialInvestment: 5000000,
		TimeHorizon:       10,
		NumSimulations:    10000,
	}
}
