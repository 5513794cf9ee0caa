package montecarlo

import (
	"encoding/csv"
	"os"
	"strconv"
)

// CSV output is presentation: money columns are rounded to cents here and
// only here. The Result itself always carries full precision.

// WriteFinalValuesCSV writes one row per simulated path with its final value.
func WriteFinalValuesCSV(path string, finalValues []float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"path", "final_value"}); err != nil {
		return err
	}
	for i, v := range finalValues {
		row := []string{
			strconv.Itoa(i),
			fmtMoney(v),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Error()
}

// WritePathsCSV writes the full path ledger: one row per (path, year) point.
func WritePathsCSV(path string, res *Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"path", "year", "portfolio_value"}); err != nil {
		return err
	}
	for i, p := range res.Paths {
		for _, pt := range p {
			row := []string{
				strconv.Itoa(i),
				strconv.Itoa(pt.Year),
				fmtMoney(pt.PortfolioValue),
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
	}
	return w.Error()
}

// WriteStatisticsCSV writes the summary as metric,value rows.
func WriteStatisticsCSV(path string, stats Statistics) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"metric", "value"}); err != nil {
		return err
	}
	rows := [][]string{
		{"final_value_p5", fmtMoney(stats.FinalValue.P5)},
		{"final_value_p10", fmtMoney(stats.FinalValue.P10)},
		{"final_value_p25", fmtMoney(stats.FinalValue.P25)},
		{"final_value_p50", fmtMoney(stats.FinalValue.P50)},
		{"final_value_p75", fmtMoney(stats.FinalValue.P75)},
		{"final_value_p90", fmtMoney(stats.FinalValue.P90)},
		{"final_value_p95", fmtMoney(stats.FinalValue.P95)},
		{"total_return_p5", fmtRate(stats.TotalReturn.P5)},
		{"total_return_p50", fmtRate(stats.TotalReturn.P50)},
		{"total_return_p95", fmtRate(stats.TotalReturn.P95)},
		{"annualized_return_p5", fmtRate(stats.AnnualizedReturn.P5)},
		{"annualized_return_p50", fmtRate(stats.AnnualizedReturn.P50)},
		{"annualized_return_p95", fmtRate(stats.AnnualizedReturn.P95)},
		{"mean_final_value", fmtMoney(stats.MeanFinalValue)},
		{"std_final_value", fmtMoney(stats.StdFinalValue)},
		{"min_final_value", fmtMoney(stats.MinFinalValue)},
		{"max_final_value", fmtMoney(stats.MaxFinalValue)},
		{"probability_of_depletion", fmtRate(stats.ProbabilityOfDepletion)},
		{"probability_of_maintaining", fmtRate(stats.ProbabilityOfMaintaining)},
		{"probability_of_doubling", fmtRate(stats.ProbabilityOfDoubling)},
		{"total_drawdown", fmtMoney(stats.TotalDrawdown)},
		{"mean_tax_paid", fmtMoney(stats.MeanTaxPaid)},
		{"mean_net_withdrawn", fmtMoney(stats.MeanNetWithdrawn)},
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Error()
}

func fmtMoney(x float64) string {
	return strconv.FormatFloat(x, 'f', 2, 64)
}

func fmtRate(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
