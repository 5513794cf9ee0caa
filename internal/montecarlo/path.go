package montecarlo

import (
	"math"

	"portfolio-analyzer/internal/model"
)

// pathSummary accumulates per-path withdrawal accounting for reporting.
// It never feeds back into the portfolio arithmetic.
type pathSummary struct {
	GrossWithdrawn float64
	TaxPaid        float64
	NetReceived    float64
}

// simulatePath runs one portfolio trajectory over the request's horizon.
//
// A path is a two-state machine: Active while the portfolio holds value,
// Depleted (terminal) once a withdrawal empties it. Per Active year, in
// order: inflation-indexed withdrawal (grossed up for tax-deferred), tax,
// deduction, proportional cost-basis reduction for taxable accounts, then
// the depletion check, then the weighted random return. Depleted years are
// recorded as zero and no further returns apply.
//
// The returned slice always has exactly TimeHorizon+1 points, years
// 0..TimeHorizon, and portfolio value is never negative.
func simulatePath(req *model.SimulationRequest, sampler *Sampler) ([]model.PathPoint, pathSummary) {
	value := req.InitialInvestment
	costBasis := req.InitialInvestment
	var sum pathSummary

	points := make([]model.PathPoint, 0, req.TimeHorizon+1)
	points = append(points, model.PathPoint{Year: 0, PortfolioValue: value})

	for year := 1; year <= req.TimeHorizon; year++ {
		if req.DrawdownActive() {
			// Net target grows with inflation; year 1 withdraws the nominal amount.
			net := req.AnnualDrawdown * math.Pow(1+req.InflationRate, float64(year-1))
			gross := GrossWithdrawal(net, req.TaxSettings)

			// Tax is assessed against the pre-withdrawal value and basis.
			tax := WithdrawalTax(gross, value, costBasis, req.TaxSettings)
			sum.GrossWithdrawn += gross
			sum.TaxPaid += tax
			sum.NetReceived += gross - tax

			remaining := value - gross
			if remaining < 0 {
				remaining = 0
			}
			if req.TaxSettings.AccountType == model.AccountTaxable && remaining > 0 {
				// Withdrawals consume basis in proportion to the value removed.
				costBasis *= remaining / (remaining + gross)
			}
			value = remaining

			if value <= 0 {
				// Depleted is terminal: zero-fill the rest of the horizon.
				for y := year; y <= req.TimeHorizon; y++ {
					points = append(points, model.PathPoint{Year: y, PortfolioValue: 0})
				}
				return points, sum
			}
		}

		value *= 1 + sampler.WeightedReturn(req.AssetClasses)
		if req.TaxSettings.AccountType != model.AccountTaxable {
			// Non-taxable accounts need no gain tracking; keep basis in sync
			// so the value is well-defined if the account type ever matters.
			costBasis = value
		}
		points = append(points, model.PathPoint{Year: year, PortfolioValue: value})
	}

	return points, sum
}
