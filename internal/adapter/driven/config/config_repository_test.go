package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diillson/prepaid-meter-dashboard-go/internal/domain/numeric"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfigFile_TOML(t *testing.T) {
	path := writeConfig(t, "meter.toml", `
label = "home"
balance = 50.0
tariff = 1.6
horizon = 5

[[history]]
day = 1
kwh = 5.5

[[history]]
day = 2
kwh = 6.1

[[appliances]]
name = "Fridge"
watts = 200.0
hours_per_day = 24.0
`)

	repo := NewConfigRepository()
	cfg, err := repo.LoadConfigFile(path)
	require.NoError(t, err)

	assert.Equal(t, "home", cfg.Label)
	assert.Equal(t, 50.0, cfg.Balance)
	assert.Equal(t, 1.6, cfg.Tariff)
	require.Len(t, cfg.History, 2)
	assert.Equal(t, 2, cfg.History[1].Day)
	assert.Equal(t, 6.1, cfg.History[1].KWh)
	require.Len(t, cfg.Appliances, 1)
	assert.Equal(t, "Fridge", cfg.Appliances[0].Name)
}

func TestLoadConfigFile_YAML(t *testing.T) {
	path := writeConfig(t, "meter.yaml", `
balance: 50
tariff: 1.6
history:
  - day: 1
    kwh: 5.5
  - day: 2
    kwh: 6.1
reduction_max: 0.4
`)

	repo := NewConfigRepository()
	cfg, err := repo.LoadConfigFile(path)
	require.NoError(t, err)

	assert.Equal(t, 0.4, cfg.ReductionMax)
	require.Len(t, cfg.History, 2)
}

func TestLoadConfigFile_JSON(t *testing.T) {
	path := writeConfig(t, "meter.json", `{
  "balance": 25,
  "tariff": 2.0,
  "history": [{"day": 1, "kwh": 4.0}, {"day": 2, "kwh": 4.2}]
}`)

	repo := NewConfigRepository()
	cfg, err := repo.LoadConfigFile(path)
	require.NoError(t, err)

	assert.Equal(t, 25.0, cfg.Balance)
	assert.Equal(t, 2.0, cfg.Tariff)
}

func TestLoadConfigFile_AppliesDefaults(t *testing.T) {
	path := writeConfig(t, "meter.yaml", `
balance: 10
tariff: 1.0
history:
  - day: 1
    kwh: 3.0
  - day: 2
    kwh: 3.0
`)

	repo := NewConfigRepository()
	cfg, err := repo.LoadConfigFile(path)
	require.NoError(t, err)

	assert.Equal(t, DefaultCurrency, cfg.Currency)
	assert.Equal(t, DefaultHorizon, cfg.Horizon)
	assert.Equal(t, DefaultReductionMax, cfg.ReductionMax)
	assert.Equal(t, numeric.DefaultTolerance, cfg.Solver.BisectionTolerance)
	assert.Equal(t, numeric.DefaultTolerance, cfg.Solver.GoldenTolerance)
	assert.Equal(t, numeric.DefaultMaxIterations, cfg.Solver.MaxIterations)
	assert.Equal(t, []string{"csv"}, cfg.ReportType)
}

func TestLoadConfigFile_UnsupportedExtension(t *testing.T) {
	path := writeConfig(t, "meter.ini", "balance = 10")

	repo := NewConfigRepository()
	_, err := repo.LoadConfigFile(path)
	assert.Error(t, err)
}

func TestLoadConfigFile_MissingFile(t *testing.T) {
	repo := NewConfigRepository()
	_, err := repo.LoadConfigFile(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}
