package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diillson/prepaid-meter-dashboard-go/internal/domain/entity"
	"github.com/diillson/prepaid-meter-dashboard-go/internal/shared/types"
)

// baseConfig é um cenário de consumo constante com solução analítica: 6 kWh
// por dia a 1.60/kWh, o custo acumulado no dia d é exatamente 9.6*(d-1).
func baseConfig() *types.Config {
	return &types.Config{
		Currency: "GHS",
		Balance:  48,
		Tariff:   1.6,
		History: []types.UsageSampleConfig{
			{Day: 1, KWh: 6}, {Day: 2, KWh: 6}, {Day: 3, KWh: 6},
			{Day: 4, KWh: 6}, {Day: 5, KWh: 6},
		},
		Horizon:      5,
		ReductionMax: 0.5,
		Solver: types.SolverConfig{
			BisectionTolerance: 1e-4,
			GoldenTolerance:    1e-4,
			MaxIterations:      100,
		},
	}
}

func variedHistoryConfig() *types.Config {
	cfg := baseConfig()
	cfg.Balance = 50
	cfg.History = []types.UsageSampleConfig{
		{Day: 1, KWh: 5.5}, {Day: 2, KWh: 6.1}, {Day: 3, KWh: 5.8},
		{Day: 4, KWh: 6.4}, {Day: 5, KWh: 5.9},
	}
	return cfg
}

func TestBuildEstimate_ConstantUsageHasExactSolution(t *testing.T) {
	uc := NewEstimatorUseCase(nil, nil, nil)

	data, err := uc.BuildEstimate(baseConfig())
	require.NoError(t, err)

	assert.InDelta(t, 6.0, data.AvgDailyKWh, 1e-9)
	assert.InDelta(t, 9.6, data.DailyCost, 1e-9)

	// Polinômio por pontos constantes é constante: previsão de 6 kWh em todos
	// os dias futuros.
	require.Len(t, data.Forecast, 5)
	for _, p := range data.Forecast {
		assert.InDelta(t, 6.0, p.KWh, 1e-9)
	}

	// 48 = 9.6*(d-1) → exaustão exatamente no dia 6.
	require.NotNil(t, data.ExhaustionDay)
	assert.InDelta(t, 6.0, *data.ExhaustionDay, 1e-3)
	require.NotNil(t, data.DaysRemaining)
	assert.InDelta(t, 1.0, *data.DaysRemaining, 1e-3)
	assert.False(t, data.BeyondHorizon)

	// Objetivo monotônico: a recomendação converge para o teto de 50% e a
	// vida projetada dobra (5 dias a mais sobre os 5 do modelo de queima).
	require.NotNil(t, data.OptimalReduction)
	assert.InDelta(t, 0.5, *data.OptimalReduction, 1e-3)
	require.NotNil(t, data.ExtendedLifeDays)
	assert.InDelta(t, 5.0, *data.ExtendedLifeDays, 1e-2)
}

func TestBuildEstimate_DocumentedHistoryScenario(t *testing.T) {
	uc := NewEstimatorUseCase(nil, nil, nil)

	data, err := uc.BuildEstimate(variedHistoryConfig())
	require.NoError(t, err)

	assert.InDelta(t, 5.94, data.AvgDailyKWh, 1e-9)

	// A extrapolação do polinômio de grau 4 mergulha abaixo de zero logo após
	// a janela histórica; toda a previsão fica grampeada em zero.
	require.Len(t, data.Forecast, 5)
	for _, p := range data.Forecast {
		assert.GreaterOrEqual(t, p.KWh, 0.0)
	}

	// Curva de custo monotônica não-decrescente.
	for i := 1; i < len(data.CostCurve); i++ {
		assert.GreaterOrEqual(t, data.CostCurve[i].Cost, data.CostCurve[i-1].Cost)
	}

	// Com a previsão zerada o custo total do horizonte fica abaixo do saldo.
	assert.True(t, data.BeyondHorizon)
	assert.Nil(t, data.ExhaustionDay)
	assert.Nil(t, data.DaysRemaining)

	// O objetivo de redução continua monotônico: recomendação no teto de 50%.
	require.NotNil(t, data.OptimalReduction)
	assert.InDelta(t, 0.5, *data.OptimalReduction, 1e-3)
	require.NotNil(t, data.ExtendedLifeDays)
	assert.Greater(t, *data.ExtendedLifeDays, 0.0)
}

func TestBuildEstimate_ShortInterpolationWindow(t *testing.T) {
	cfg := variedHistoryConfig()
	cfg.InterpolationWindow = 3

	uc := NewEstimatorUseCase(nil, nil, nil)
	data, err := uc.BuildEstimate(cfg)
	require.NoError(t, err)

	// Quadrática pelos dias 3-5: p(6)=4.3 e p(7)=1.6; depois grampeia em zero.
	require.Len(t, data.Forecast, 5)
	assert.InDelta(t, 4.3, data.Forecast[0].KWh, 1e-6)
	assert.InDelta(t, 1.6, data.Forecast[1].KWh, 1e-6)
	assert.Zero(t, data.Forecast[2].KWh)

	// Custo acumulado: 46.56 no dia 6, 51.28 no dia 7; a raiz de 50 fica em
	// 6 + 3.44/4.72 ≈ 6.729.
	require.NotNil(t, data.ExhaustionDay)
	assert.InDelta(t, 6.729, *data.ExhaustionDay, 1e-2)
	require.NotNil(t, data.DaysRemaining)
	assert.InDelta(t, 1.729, *data.DaysRemaining, 1e-2)
	assert.False(t, data.BeyondHorizon)
}

func TestBuildEstimate_ZeroBalanceExhaustsAtCurveStart(t *testing.T) {
	cfg := baseConfig()
	cfg.Balance = 0

	uc := NewEstimatorUseCase(nil, nil, nil)
	data, err := uc.BuildEstimate(cfg)
	require.NoError(t, err)

	require.NotNil(t, data.ExhaustionDay)
	assert.Equal(t, 1.0, *data.ExhaustionDay, "zero balance exhausts at the first metered day")
	require.NotNil(t, data.DaysRemaining)
	assert.Zero(t, *data.DaysRemaining)

	// Sem saldo não há vida a estender: nenhuma recomendação.
	assert.Nil(t, data.OptimalReduction)
}

func TestBuildEstimate_BalanceOutlastsHorizon(t *testing.T) {
	cfg := baseConfig()
	cfg.Balance = 10000

	uc := NewEstimatorUseCase(nil, nil, nil)
	data, err := uc.BuildEstimate(cfg)
	require.NoError(t, err)

	assert.True(t, data.BeyondHorizon)
	assert.Nil(t, data.ExhaustionDay)
	assert.Nil(t, data.DaysRemaining)
}

func TestBuildEstimate_IsDeterministic(t *testing.T) {
	uc := NewEstimatorUseCase(nil, nil, nil)

	first, err := uc.BuildEstimate(baseConfig())
	require.NoError(t, err)
	second, err := uc.BuildEstimate(baseConfig())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestBuildEstimate_InputValidation(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*types.Config)
		wantErr error
	}{
		{"zero tariff", func(c *types.Config) { c.Tariff = 0 }, types.ErrInvalidTariff},
		{"negative tariff", func(c *types.Config) { c.Tariff = -1.6 }, types.ErrInvalidTariff},
		{"negative balance", func(c *types.Config) { c.Balance = -1 }, types.ErrNegativeBalance},
		{"short history", func(c *types.Config) {
			c.History = c.History[:1]
		}, types.ErrHistoryTooShort},
		{"zero horizon", func(c *types.Config) { c.Horizon = 0 }, types.ErrInvalidHorizon},
		{"non-monotonic days", func(c *types.Config) {
			c.History[2].Day = c.History[1].Day
		}, types.ErrNonMonotonicDays},
		{"negative usage", func(c *types.Config) {
			c.History[0].KWh = -0.1
		}, types.ErrNegativeUsage},
		{"negative day index", func(c *types.Config) {
			c.History[0].Day = -1
		}, types.ErrNegativeDayIndex},
		{"bad reduction bounds", func(c *types.Config) {
			c.ReductionMin = 0.6
			c.ReductionMax = 0.5
		}, types.ErrInvalidReductionBounds},
		{"reduction max of one", func(c *types.Config) {
			c.ReductionMax = 1.0
		}, types.ErrInvalidReductionBounds},
		{"window of one day", func(c *types.Config) {
			c.InterpolationWindow = 1
		}, types.ErrInvalidInterpolationWindow},
	}

	uc := NewEstimatorUseCase(nil, nil, nil)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := baseConfig()
			tc.mutate(cfg)

			_, err := uc.BuildEstimate(cfg)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

// --- RunEstimate com colaboradores de teste ---

type stubConfigRepo struct {
	cfg *types.Config
}

func (s *stubConfigRepo) LoadConfigFile(string) (*types.Config, error) {
	clone := *s.cfg
	return &clone, nil
}

type recordingExportRepo struct {
	csvCalls int
	last     entity.EstimateData
}

func (r *recordingExportRepo) ExportToCSV(data entity.EstimateData, filename, outputDir string) (string, error) {
	r.csvCalls++
	r.last = data
	return filename + ".csv", nil
}

func (r *recordingExportRepo) ExportToJSON(data entity.EstimateData, filename, outputDir string) (string, error) {
	return filename + ".json", nil
}

func (r *recordingExportRepo) ExportToPDF(data entity.EstimateData, filename, outputDir string) (string, error) {
	return filename + ".pdf", nil
}

type nopConsole struct{}

func (nopConsole) Print(a ...interface{})                  {}
func (nopConsole) Printf(format string, a ...interface{})  {}
func (nopConsole) Println(a ...interface{})                {}
func (nopConsole) LogInfo(format string, a ...interface{}) {}
func (nopConsole) LogWarning(string, ...interface{})       {}
func (nopConsole) LogError(string, ...interface{})         {}
func (nopConsole) LogSuccess(string, ...interface{})       {}
func (nopConsole) Status(string) types.StatusHandle        { return nopStatus{} }
func (nopConsole) CreateTable() types.TableInterface       { return &nopTable{} }
func (nopConsole) DisplayUsageBars([]types.UsageBar)       {}
func (nopConsole) DisplayCostCurve([]types.CostBar, float64, string) {
}

type nopStatus struct{}

func (nopStatus) Update(string) {}
func (nopStatus) Stop()         {}

type nopTable struct{}

func (*nopTable) AddColumn(string, ...interface{}) {}
func (*nopTable) AddRow(...interface{})            {}
func (*nopTable) Render() string                   { return "" }

func TestRunEstimate_FlagsOverrideConfigAndExport(t *testing.T) {
	cfg := baseConfig()
	cfg.ReportName = "ignored"
	cfg.ReportType = []string{"csv"}

	exporter := &recordingExportRepo{}
	uc := NewEstimatorUseCase(exporter, &stubConfigRepo{cfg: cfg}, nopConsole{})

	balance := 96.0
	args := &types.CLIArgs{
		ConfigFile: "meter.toml",
		Balance:    &balance,
		ReportName: "estimate",
		NoChart:    true,
	}

	require.NoError(t, uc.RunEstimate(args))

	assert.Equal(t, 1, exporter.csvCalls)
	assert.Equal(t, 96.0, exporter.last.Balance, "flag must override the config balance")
	// 96 = 9.6*(d-1) → dia 11, além do horizonte de previsão (dia 10).
	assert.True(t, exporter.last.BeyondHorizon)
}

func TestRunEstimate_RequiresConfigFile(t *testing.T) {
	uc := NewEstimatorUseCase(&recordingExportRepo{}, &stubConfigRepo{cfg: baseConfig()}, nopConsole{})

	err := uc.RunEstimate(&types.CLIArgs{})
	assert.ErrorIs(t, err, types.ErrNoHistoryConfigured)
}
