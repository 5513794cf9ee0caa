package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-analyzer/internal/model"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFullConfig(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "run.yaml", `
assets:
  - name: Stocks
    median_return: 0.08
    std_deviation: 0.15
    min_return: -0.40
    max_return: 0.35
    allocation: 0.60
  - name: Bonds
    median_return: 0.04
    std_deviation: 0.08
    min_return: -0.10
    max_return: 0.15
    allocation: 0.40
initial_investment: 2000000
time_horizon: 15
num_simulations: 6000
drawdown:
  enabled: true
  annual_amount: 80000
  inflation_rate: 0.025
tax:
  account_type: tax_deferred
  ordinary_income_rate: 0.24
  state_rate: 0.05
seed: 42
workers: 2
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	req := cfg.ToRequest()
	assert.Len(t, req.AssetClasses, 2)
	assert.InDelta(t, 2000000, req.InitialInvestment, 1e-9)
	assert.Equal(t, 15, req.TimeHorizon)
	assert.Equal(t, 6000, req.NumSimulations)
	assert.True(t, req.EnableDrawdown)
	assert.InDelta(t, 80000, req.AnnualDrawdown, 1e-9)
	assert.Equal(t, model.AccountTaxDeferred, req.TaxSettings.AccountType)

	opts := cfg.EngineOptions()
	assert.Equal(t, int64(42), opts.Seed)
	assert.Equal(t, 2, opts.Workers)
}

func TestLoadDefaultsEmptyConfig(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "empty.yaml", "{}\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Len(t, cfg.Assets, 4)
	assert.InDelta(t, 5000000, cfg.InitialInvestment, 1e-9)
	assert.Equal(t, 10, cfg.TimeHorizon)
	assert.Equal(t, 10000, cfg.NumSimulations)
	assert.Equal(t, string(model.AccountTaxFree), cfg.Tax.AccountType)
	assert.NoError(t, cfg.ToRequest().Validate())
}

func TestLoadAssetsFileRelativeToConfig(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "assets.yaml", `
assets:
  - name: Everything
    median_return: 0.05
    std_deviation: 0.10
    min_return: -0.30
    max_return: 0.30
    allocation: 1.0
`)
	path := writeFile(t, dir, "run.yaml", "assets_file: assets.yaml\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Len(t, cfg.Assets, 1)
	assert.Equal(t, "Everything", cfg.Assets[0].Name)
}

func TestLoadInlineAssetsBeatAssetsFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "assets.yaml", `
assets:
  - name: FromFile
    allocation: 1.0
`)
	path := writeFile(t, dir, "run.yaml", `
assets_file: assets.yaml
assets:
  - name: Inline
    median_return: 0.05
    std_deviation: 0.10
    min_return: -0.30
    max_return: 0.30
    allocation: 1.0
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Len(t, cfg.Assets, 1)
	assert.Equal(t, "Inline", cfg.Assets[0].Name)
}

func TestLoadRejectsInvalidRun(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "bad.yaml", `
assets:
  - name: Lonely
    median_return: 0.05
    std_deviation: 0.10
    min_return: -0.30
    max_return: 0.30
    allocation: 0.5
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ALLOCATION_SUM_MISMATCH")
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
