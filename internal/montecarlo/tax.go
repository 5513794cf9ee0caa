package montecarlo

import "portfolio-analyzer/internal/model"

// WithdrawalTax computes the tax owed on a gross withdrawal. Pure function.
//
// - tax_free: no tax.
// - tax_deferred: the entire withdrawal is ordinary income.
// - taxable: only the embedded-gain proportion of the withdrawal is taxed,
//   at the capital-gains + state rate. No gain (value <= basis) means no tax.
func WithdrawalTax(gross, portfolioValue, costBasis float64, settings model.TaxSettings) float64 {
	switch settings.AccountType {
	case model.AccountTaxDeferred:
		return gross * settings.CombinedOrdinaryRate()
	case model.AccountTaxable:
		if portfolioValue <= costBasis || portfolioValue <= 0 {
			return 0
		}
		gainsProportion := (portfolioValue - costBasis) / portfolioValue
		taxable := gross * gainsProportion
		return taxable * (settings.CapitalGainsTaxRate + settings.StateTaxRate)
	default:
		// tax_free and anything unrecognized owes nothing.
		return 0
	}
}

// GrossWithdrawal converts a desired net withdrawal into the gross amount to
// take from the portfolio. Tax-deferred accounts are grossed up so the net
// after ordinary income tax matches the target; other account types withdraw
// the target directly (capital gains tax is owed on top, not netted out).
//
// Callers must ensure CombinedOrdinaryRate < 1 for tax-deferred accounts;
// request validation rejects that configuration before any path runs.
func GrossWithdrawal(net float64, settings model.TaxSettings) float64 {
	if settings.AccountType == model.AccountTaxDeferred {
		return net / (1 - settings.CombinedOrdinaryRate())
	}
	return net
}
