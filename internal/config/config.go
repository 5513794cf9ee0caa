package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"portfolio-analyzer/internal/model"
	"portfolio-analyzer/internal/montecarlo"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk run configuration shape (YAML) used by the CLI and
// demo. Anything omitted falls back to the engine defaults.
type Config struct {
	// Optional: load asset classes from a separate YAML file. Inline Assets,
	// when present, take precedence over AssetsFile.
	AssetsFile string             `yaml:"assets_file"`
	Assets     []model.AssetClass `yaml:"assets"`

	InitialInvestment float64 `yaml:"initial_investment"`
	TimeHorizon       int     `yaml:"time_horizon"`
	NumSimulations    int     `yaml:"num_simulations"`

	Drawdown DrawdownConfig `yaml:"drawdown"`
	Tax      TaxConfig      `yaml:"tax"`

	Seed    int64 `yaml:"seed"`
	Workers int   `yaml:"workers"`
}

type DrawdownConfig struct {
	Enabled       bool    `yaml:"enabled"`
	AnnualAmount  float64 `yaml:"annual_amount"`
	InflationRate float64 `yaml:"inflation_rate"`
}

type TaxConfig struct {
	AccountType        string  `yaml:"account_type"`
	CapitalGainsRate   float64 `yaml:"capital_gains_rate"`
	OrdinaryIncomeRate float64 `yaml:"ordinary_income_rate"`
	StateRate          float64 `yaml:"state_rate"`
}

// Default returns a run configuration built entirely from the engine
// defaults (no drawdown, tax-free account).
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load reads, defaults, and validates a run configuration.
func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	c.applyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not default or validate
// it. Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	// If assets_file is set and no inline assets are given, load the file.
	if c.AssetsFile != "" && len(c.Assets) == 0 {
		assetsPath := c.AssetsFile
		if !filepath.IsAbs(assetsPath) {
			// Prefer interpreting relative paths as relative to the config file
			// directory, falling back to the path as given (relative to cwd).
			cand := filepath.Join(filepath.Dir(path), assetsPath)
			if _, err := os.Stat(cand); err == nil {
				assetsPath = cand
			}
		}
		assets, err := loadAssetsFile(assetsPath)
		if err != nil {
			return nil, err
		}
		c.Assets = assets
	}
	return &c, nil
}

func (c *Config) applyDefaults() {
	defaults := montecarlo.DefaultAssetClasses()
	if len(c.Assets) == 0 {
		c.Assets = defaults.AssetClasses
	}
	if c.InitialInvestment == 0 {
		c.InitialInvestment = defaults.InitialInvestment
	}
	if c.TimeHorizon == 0 {
		c.TimeHorizon = defaults.TimeHorizon
	}
	if c.NumSimulations == 0 {
		c.NumSimulations = defaults.NumSimulations
	}
	if c.Tax.AccountType == "" {
		c.Tax.AccountType = string(model.AccountTaxFree)
	}
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	// Validate by constructing the engine request; it owns the rules.
	req := c.ToRequest()
	if err := req.Validate(); err != nil {
		return fmt.Errorf("run config invalid: %w", err)
	}
	return nil
}

// ToRequest maps the on-disk shape onto the engine's request type.
func (c *Config) ToRequest() *model.SimulationRequest {
	return &model.SimulationRequest{
		AssetClasses:      c.Assets,
		InitialInvestment: c.InitialInvestment,
		TimeHorizon:       c.TimeHorizon,
		NumSimulations:    c.NumSimulations,
		EnableDrawdown:    c.Drawdown.Enabled,
		AnnualDrawdown:    c.Drawdown.AnnualAmount,
		InflationRate:     c.Drawdown.InflationRate,
		TaxSettings: model.TaxSettings{
			AccountType:           model.AccountType(c.Tax.AccountType),
			CapitalGainsTaxRate:   c.Tax.CapitalGainsRate,
			OrdinaryIncomeTaxRate: c.Tax.OrdinaryIncomeRate,
			StateTaxRate:          c.Tax.StateRate,
		},
	}
}

// EngineOptions maps the config's seed/workers onto engine options.
func (c *Config) EngineOptions() montecarlo.Options {
	return montecarlo.Options{Seed: c.Seed, Workers: c.Workers}
}

type assetsFileWrapper struct {
	Assets []model.AssetClass `yaml:"assets"`
}

func loadAssetsFile(path string) ([]model.AssetClass, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var w assetsFileWrapper
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return nil, err
	}
	if len(w.Assets) == 0 {
		return nil, fmt.Errorf("assets file %s contains no assets", path)
	}
	return w.Assets, nil
}
