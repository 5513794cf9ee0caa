package model

import (
	"errors"
	"fmt"
)

// AssetClass defines the return distribution and portfolio weight of one
// asset class. Units:
// - Returns: annual, as decimal fractions (0.08 = 8%)
// - StdDeviation: annual volatility as a decimal fraction
// - Allocation: portfolio weight as a decimal fraction, all classes sum to 1
type AssetClass struct {
	Name         string  `json:"name" yaml:"name"`
	MedianReturn float64 `json:"median_return" yaml:"median_return"`
	StdDeviation float64 `json:"std_deviation" yaml:"std_deviation"`
	MinReturn    float64 `json:"min_return" yaml:"min_return"`
	MaxReturn    float64 `json:"max_return" yaml:"max_return"`
	Allocation   float64 `json:"allocation" yaml:"allocation"`
}

func (a AssetClass) Validate() error {
	if a.StdDeviation < 0 {
		return fmt.Errorf("asset %q: StdDeviation must be >= 0", a.Name)
	}
	if a.MinReturn > a.MaxReturn {
		return fmt.Errorf("asset %q: MinReturn must be <= MaxReturn", a.Name)
	}
	if a.Allocation < 0 {
		return fmt.Errorf("asset %q: Allocation must be >= 0", a.Name)
	}
	return nil
}

// AccountType selects the tax treatment applied to withdrawals.
type AccountType string

const (
	AccountTaxable     AccountType = "taxable"
	AccountTaxDeferred AccountType = "tax_deferred"
	AccountTaxFree     AccountType = "tax_free"
)

func (t AccountType) Valid() bool {
	switch t {
	case AccountTaxable, AccountTaxDeferred, AccountTaxFree:
		return true
	}
	return false
}

// TaxSettings holds the simplified three-bucket tax treatment.
// Rates are decimal fractions.
type TaxSettings struct {
	AccountType           AccountType `json:"account_type" yaml:"account_type"`
	CapitalGainsTaxRate   float64     `json:"capital_gains_tax_rate" yaml:"capital_gains_tax_rate"`
	OrdinaryIncomeTaxRate float64     `json:"ordinary_income_tax_rate" yaml:"ordinary_income_tax_rate"`
	StateTaxRate          float64     `json:"state_tax_rate" yaml:"state_tax_rate"`
}

// CombinedOrdinaryRate is the rate applied to tax-deferred withdrawals and
// used for the gross-up. The gross-up is undefined when this reaches 1.
func (t TaxSettings) CombinedOrdinaryRate() float64 {
	return t.OrdinaryIncomeTaxRate + t.StateTaxRate
}

func (t TaxSettings) Validate() error {
	if !t.AccountType.Valid() {
		return fmt.Errorf("unknown account type %q", t.AccountType)
	}
	if t.CapitalGainsTaxRate < 0 || t.OrdinaryIncomeTaxRate < 0 || t.StateTaxRate < 0 {
		return errors.New("tax rates must be >= 0")
	}
	return nil
}
