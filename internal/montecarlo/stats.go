package montecarlo

import (
	"math"
	"sort"

	"portfolio-analyzer/internal/model"
)

// PercentileBand holds one metric evaluated at the reported percentiles.
type PercentileBand struct {
	P5  float64 `json:"p5"`
	P10 float64 `json:"p10"`
	P25 float64 `json:"p25"`
	P50 float64 `json:"p50"`
	P75 float64 `json:"p75"`
	P90 float64 `json:"p90"`
	P95 float64 `json:"p95"`
}

// Statistics summarizes the distribution of final portfolio values.
// Every field is a named number; there is no dynamic keying, so a missing
// metric is a compile error rather than a silent absence.
type Statistics struct {
	FinalValue       PercentileBand `json:"final_value"`
	TotalReturn      PercentileBand `json:"total_return"`
	AnnualizedReturn PercentileBand `json:"annualized_return"`

	MeanFinalValue       float64 `json:"mean_final_value"`
	MeanTotalReturn      float64 `json:"mean_total_return"`
	MeanAnnualizedReturn float64 `json:"mean_annualized_return"`
	StdFinalValue        float64 `json:"std_final_value"`
	MinFinalValue        float64 `json:"min_final_value"`
	MaxFinalValue        float64 `json:"max_final_value"`
	MinTotalReturn       float64 `json:"min_total_return"`
	MaxTotalReturn       float64 `json:"max_total_return"`

	// Empirical frequencies over the final-value sample, each in [0,1].
	ProbabilityOfDepletion   float64 `json:"probability_of_depletion"`   // value <= 0
	ProbabilityOfMaintaining float64 `json:"probability_of_maintaining"` // value >= initial
	ProbabilityOfDoubling    float64 `json:"probability_of_doubling"`    // value >= 2x initial

	// Withdrawal accounting. TotalDrawdown is the nominal (gross-of-tax,
	// pre-depletion) sum of the inflation-indexed schedule; the means are
	// averaged over what paths actually withdrew and paid.
	TotalDrawdown    float64 `json:"total_drawdown"`
	MeanTaxPaid      float64 `json:"mean_tax_paid"`
	MeanNetWithdrawn float64 `json:"mean_net_withdrawn"`

	// Pass-through request metadata for downstream reporting.
	DrawdownEnabled   bool    `json:"drawdown_enabled"`
	AnnualDrawdown    float64 `json:"annual_drawdown"`
	InflationRate     float64 `json:"inflation_rate"`
	TimeHorizon       int     `json:"time_horizon"`
	InitialInvestment float64 `json:"initial_investment"`
}

var reportedPercentiles = []float64{0.05, 0.10, 0.25, 0.50, 0.75, 0.90, 0.95}

// Aggregate computes summary statistics over the final portfolio values of a
// completed batch. It never recomputes paths; drawdown fields are reported
// from the request parameters and the per-path summaries.
func Aggregate(finalValues []float64, req *model.SimulationRequest, summaries []pathSummary) Statistics {
	stats := Statistics{
		DrawdownEnabled:   req.EnableDrawdown,
		AnnualDrawdown:    req.AnnualDrawdown,
		InflationRate:     req.InflationRate,
		TimeHorizon:       req.TimeHorizon,
		InitialInvestment: req.InitialInvestment,
	}
	if len(finalValues) == 0 {
		return stats
	}

	sorted := make([]float64, len(finalValues))
	copy(sorted, finalValues)
	sort.Float64s(sorted)

	values := bandFromSorted(sorted)
	stats.FinalValue = values
	stats.TotalReturn = PercentileBand{
		P5:  totalReturn(values.P5, req.InitialInvestment),
		P10: totalReturn(values.P10, req.InitialInvestment),
		P25: totalReturn(values.P25, req.InitialInvestment),
		P50: totalReturn(values.P50, req.InitialInvestment),
		P75: totalReturn(values.P75, req.InitialInvestment),
		P90: totalReturn(values.P90, req.InitialInvestment),
		P95: totalReturn(values.P95, req.InitialInvestment),
	}
	stats.AnnualizedReturn = PercentileBand{
		P5:  AnnualizedReturn(stats.TotalReturn.P5, req.TimeHorizon),
		P10: AnnualizedReturn(stats.TotalReturn.P10, req.TimeHorizon),
		P25: AnnualizedReturn(stats.TotalReturn.P25, req.TimeHorizon),
		P50: AnnualizedReturn(stats.TotalReturn.P50, req.TimeHorizon),
		P75: AnnualizedReturn(stats.TotalReturn.P75, req.TimeHorizon),
		P90: AnnualizedReturn(stats.TotalReturn.P90, req.TimeHorizon),
		P95: AnnualizedReturn(stats.TotalReturn.P95, req.TimeHorizon),
	}

	n := float64(len(sorted))
	sum := 0.0
	for _, v := range sorted {
		sum += v
	}
	mean := sum / n
	variance := 0.0
	for _, v := range sorted {
		d := v - mean
		variance += d * d
	}
	variance /= n

	stats.MeanFinalValue = mean
	stats.MeanTotalReturn = totalReturn(mean, req.InitialInvestment)
	stats.MeanAnnualizedReturn = AnnualizedReturn(stats.MeanTotalReturn, req.TimeHorizon)
	stats.StdFinalValue = math.Sqrt(variance)
	stats.MinFinalValue = sorted[0]
	stats.MaxFinalValue = sorted[len(sorted)-1]
	stats.MinTotalReturn = totalReturn(stats.MinFinalValue, req.InitialInvestment)
	stats.MaxTotalReturn = totalReturn(stats.MaxFinalValue, req.InitialInvestment)

	depleted, maintained, doubled := 0, 0, 0
	for _, v := range finalValues {
		if v <= 0 {
			depleted++
		}
		if v >= req.InitialInvestment {
			maintained++
		}
		if v >= 2*req.InitialInvestment {
			doubled++
		}
	}
	stats.ProbabilityOfDepletion = float64(depleted) / n
	stats.ProbabilityOfMaintaining = float64(maintained) / n
	stats.ProbabilityOfDoubling = float64(doubled) / n

	if req.DrawdownActive() {
		stats.TotalDrawdown = NominalDrawdownTotal(req.AnnualDrawdown, req.InflationRate, req.TimeHorizon)
	}
	if len(summaries) > 0 {
		var tax, net float64
		for _, s := range summaries {
			tax += s.TaxPaid
			net += s.NetReceived
		}
		stats.MeanTaxPaid = tax / float64(len(summaries))
		stats.MeanNetWithdrawn = net / float64(len(summaries))
	}

	return stats
}

func bandFromSorted(sorted []float64) PercentileBand {
	return PercentileBand{
		P5:  percentileSorted(sorted, reportedPercentiles[0]),
		P10: percentileSorted(sorted, reportedPercentiles[1]),
		P25: percentileSorted(sorted, reportedPercentiles[2]),
		P50: percentileSorted(sorted, reportedPercentiles[3]),
		P75: percentileSorted(sorted, reportedPercentiles[4]),
		P90: percentileSorted(sorted, reportedPercentiles[5]),
		P95: percentileSorted(sorted, reportedPercentiles[6]),
	}
}

// percentileSorted estimates the q-quantile (q in [0,1]) of an ascending
// sample by linear interpolation between adjacent order statistics.
func percentileSorted(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

// totalReturn maps a final value to its total return over the horizon.
// A zero initial investment yields 0 rather than dividing by zero.
func totalReturn(finalValue, initialInvestment float64) float64 {
	if initialInvestment == 0 {
		return 0
	}
	return finalValue/initialInvestment - 1
}

// AnnualizedReturn converts a total return over years into the equivalent
// geometric per-year rate. Zero years yields 0.
func AnnualizedReturn(total float64, years int) float64 {
	if years == 0 {
		return 0
	}
	return math.Pow(1+total, 1/float64(years)) - 1
}

// NominalDrawdownTotal is the gross, pre-tax sum of the inflation-indexed
// withdrawal schedule over the horizon, ignoring depletion.
func NominalDrawdownTotal(annualDrawdown, inflationRate float64, years int) float64 {
	total := 0.0
	for y := 1; y <= years; y++ {
		total += annualDrawdown * math.Pow(1+inflationRate, float64(y-1))
	}
	return total
}
