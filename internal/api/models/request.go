package models

import "portfolio-analyzer/internal/model"

// SimulateRequest represents the request body for running a simulation
type SimulateRequest struct {
	AssetClasses      []AssetClassConfig `json:"asset_classes" binding:"required"`
	InitialInvestment float64            `json:"initial_investment" binding:"required"`
	TimeHorizon       int                `json:"time_horizon" binding:"required"`
	NumSimulations    int                `json:"num_simulations" binding:"required"`
	EnableDrawdown    bool               `json:"enable_drawdown,omitempty"`
	AnnualDrawdown    float64            `json:"annual_drawdown,omitempty"`
	InflationRate     float64            `json:"inflation_rate,omitempty"`
	TaxSettings       *TaxSettingsConfig `json:"tax_settings,omitempty"`
	Seed              *int64             `json:"seed,omitempty"` // fixed seed for reproducible runs
	Options           SimulateOptions    `json:"options,omitempty"`
}

// AssetClassConfig defines one asset class in a request
type AssetClassConfig struct {
	Name         string  `json:"name" binding:"required"`
	MedianReturn float64 `json:"median_return"`
	StdDeviation float64 `json:"std_deviation"`
	MinReturn    float64 `json:"min_return"`
	MaxReturn    float64 `json:"max_return"`
	Allocation   float64 `json:"allocation"`
}

// TaxSettingsConfig defines the withdrawal tax treatment
type TaxSettingsConfig struct {
	AccountType           string  `json:"account_type"`
	CapitalGainsTaxRate   float64 `json:"capital_gains_tax_rate"`
	OrdinaryIncomeTaxRate float64 `json:"ordinary_income_tax_rate"`
	StateTaxRate          float64 `json:"state_tax_rate"`
}

// SimulateOptions contains optional simulation parameters
type SimulateOptions struct {
	OmitPaths       bool `json:"omit_paths,omitempty"`        // drop per-path series from the response
	OmitFinalValues bool `json:"omit_final_values,omitempty"` // drop the raw final-value sample
}

// ToModel maps the wire shape onto the engine's request type.
func (r *SimulateRequest) ToModel() *model.SimulationRequest {
	assets := make([]model.AssetClass, len(r.AssetClasses))
	for i, a := range r.AssetClasses {
		assets[i] = model.AssetClass{
			Name:         a.Name,
			MedianReturn: a.MedianReturn,
			StdDeviation: a.StdDeviation,
			MinReturn:    a.MinReturn,
			MaxReturn:    a.MaxReturn,
			Allocation:   a.Allocation,
		}
	}
	req := &model.SimulationRequest{
		AssetClasses:      assets,
		InitialInvestment: r.InitialInvestment,
		TimeHorizon:       r.TimeHorizon,
		NumSimulations:    r.NumSimulations,
		EnableDrawdown:    r.EnableDrawdown,
		AnnualDrawdown:    r.AnnualDrawdown,
		InflationRate:     r.InflationRate,
	}
	if r.TaxSettings != nil {
		req.TaxSettings = model.TaxSettings{
			AccountType:           model.AccountType(r.TaxSettings.AccountType),
			CapitalGainsTaxRate:   r.TaxSettings.CapitalGainsTaxRate,
			OrdinaryIncomeTaxRate: r.TaxSettings.OrdinaryIncomeTaxRate,
			StateTaxRate:          r.TaxSettings.StateTaxRate,
		}
	} else {
		req.TaxSettings = model.TaxSettings{AccountType: model.AccountTaxFree}
	}
	return req
}
