package model

import (
	"fmt"
	"math"
)

// Allocations across all asset classes must sum to 1 within this tolerance.
const AllocationTolerance = 0.001

// Request bounds.
const (
	MinSimulations = 5000
	MinTimeHorizon = 1
	MaxTimeHorizon = 50
)

// SimulationRequest is the immutable input to one engine run.
// Construct once, hand to the engine, never mutate afterwards.
type SimulationRequest struct {
	AssetClasses      []AssetClass `json:"asset_classes"`
	InitialInvestment float64      `json:"initial_investment"`
	TimeHorizon       int          `json:"time_horizon"` // years
	NumSimulations    int          `json:"num_simulations"`
	EnableDrawdown    bool         `json:"enable_drawdown"`
	AnnualDrawdown    float64      `json:"annual_drawdown"` // net target for year 1, inflation-indexed after
	InflationRate     float64      `json:"inflation_rate"`
	TaxSettings       TaxSettings  `json:"tax_settings"`
}

// TotalAllocation sums the allocation fractions across all asset classes.
func (r *SimulationRequest) TotalAllocation() float64 {
	total := 0.0
	for _, a := range r.AssetClasses {
		total += a.Allocation
	}
	return total
}

// DrawdownActive reports whether withdrawals happen at all during a run.
func (r *SimulationRequest) DrawdownActive() bool {
	return r.EnableDrawdown && r.AnnualDrawdown > 0
}

// Validate checks the request before any simulation work begins (fail fast,
// zero partial computation). All failures are *ValidationError values.
func (r *SimulationRequest) Validate() error {
	if r.NumSimulations < MinSimulations {
		return &ValidationError{
			Kind:    KindTooFewSimulations,
			Message: fmt.Sprintf("minimum %d simulations required, got %d", MinSimulations, r.NumSimulations),
		}
	}
	if r.TimeHorizon > MaxTimeHorizon {
		return &ValidationError{
			Kind:    KindTimeHorizonTooLong,
			Message: fmt.Sprintf("maximum time horizon is %d years, got %d", MaxTimeHorizon, r.TimeHorizon),
		}
	}
	if r.TimeHorizon < MinTimeHorizon {
		return &ValidationError{
			Kind:    KindTimeHorizonTooShort,
			Message: fmt.Sprintf("minimum time horizon is %d year, got %d", MinTimeHorizon, r.TimeHorizon),
		}
	}
	if r.InitialInvestment <= 0 {
		return &ValidationError{
			Kind:    KindInvalidInitialInvestment,
			Message: fmt.Sprintf("initial investment must be > 0, got %g", r.InitialInvestment),
		}
	}
	total := r.TotalAllocation()
	if math.Abs(total-1.0) > AllocationTolerance {
		return &ValidationError{
			Kind:    KindAllocationSumMismatch,
			Message: fmt.Sprintf("asset allocations must sum to 100%%, got %.4f", total),
		}
	}
	for _, a := range r.AssetClasses {
		if err := a.Validate(); err != nil {
			return &ValidationError{Kind: KindInvalidAssetClass, Message: err.Error()}
		}
	}
	if r.DrawdownActive() {
		if r.AnnualDrawdown < 0 {
			return &ValidationError{
				Kind:    KindInvalidDrawdown,
				Message: fmt.Sprintf("annual drawdown must be >= 0, got %g", r.AnnualDrawdown),
			}
		}
		if err := r.TaxSettings.Validate(); err != nil {
			return &ValidationError{Kind: KindInvalidTaxSettings, Message: err.Error()}
		}
		// The tax-deferred gross-up divides by (1 - combined rate); a combined
		// rate at or above 1 would make the withdrawal infinite or negative.
		if r.TaxSettings.AccountType == AccountTaxDeferred && r.TaxSettings.CombinedOrdinaryRate() >= 1 {
			return &ValidationError{
				Kind: KindTaxRateTooHigh,
				Message: fmt.Sprintf("combined ordinary income and state tax rate must be < 1 for tax-deferred withdrawals, got %.4f",
					r.TaxSettings.CombinedOrdinaryRate()),
			}
		}
	}
	return nil
}

// PathPoint is one (year, value) sample of a simulated path.
// Year runs 0..TimeHorizon; PortfolioValue is never negative.
type PathPoint struct {
	Year           int     `json:"year"`
	PortfolioValue float64 `json:"portfolio_value"`
}
