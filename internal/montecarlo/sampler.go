package montecarlo

import (
	"math/rand"

	"portfolio-analyzer/internal/model"
)

// Sampler draws bounded-normal annual returns for asset classes.
//
// The randomness source is explicit: callers own seeding, so identical seeds
// yield identical draw sequences. The engine derives one independent Sampler
// per path from the batch seed and path index.
type Sampler struct {
	rng *rand.Rand
}

func NewSampler(rng *rand.Rand) *Sampler {
	return &Sampler{rng: rng}
}

// Sample draws one annual return from a normal distribution with the asset's
// median and standard deviation, clamped into [MinReturn, MaxReturn].
func (s *Sampler) Sample(a model.AssetClass) float64 {
	r := s.rng.NormFloat64()*a.StdDeviation + a.MedianReturn
	if r < a.MinReturn {
		r = a.MinReturn
	}
	if r > a.MaxReturn {
		r = a.MaxReturn
	}
	return r
}

// WeightedReturn draws one return per asset class and combines them by
// allocation into a single portfolio-level annual return.
func (s *Sampler) WeightedReturn(assets []model.AssetClass) float64 {
	annual := 0.0
	for _, a := range assets {
		annual += s.Sample(a) * a.Allocation
	}
	return annual
}
