package usecase

import (
	"errors"
	"fmt"
	"math"

	"github.com/pterm/pterm"

	"github.com/diillson/prepaid-meter-dashboard-go/internal/domain/entity"
	"github.com/diillson/prepaid-meter-dashboard-go/internal/domain/numeric"
	"github.com/diillson/prepaid-meter-dashboard-go/internal/domain/repository"
	"github.com/diillson/prepaid-meter-dashboard-go/internal/shared/types"
)

// EstimatorUseCase handles the main estimation flow: load configuration,
// validate inputs, run the numeric pipeline and present/export the report.
type EstimatorUseCase struct {
	exportRepo repository.ExportRepository
	configRepo repository.ConfigRepository
	console    types.ConsoleInterface
}

// NewEstimatorUseCase cria um novo caso de uso de estimativa.
func NewEstimatorUseCase(
	exportRepo repository.ExportRepository,
	configRepo repository.ConfigRepository,
	console types.ConsoleInterface,
) *EstimatorUseCase {
	return &EstimatorUseCase{
		exportRepo: exportRepo,
		configRepo: configRepo,
		console:    console,
	}
}

// RunEstimate executa a funcionalidade principal: resolve a configuração,
// monta a estimativa e apresenta o dashboard.
func (uc *EstimatorUseCase) RunEstimate(args *types.CLIArgs) error {
	cfg, err := uc.resolveConfig(args)
	if err != nil {
		return err
	}

	status := uc.console.Status("Building estimate...")
	data, err := uc.BuildEstimate(cfg)
	status.Stop()

	// Um estouro do teto de iterações ainda produz um resultado utilizável;
	// o usuário é avisado do bracket alcançado em vez de receber silêncio.
	var convErr *numeric.ConvergenceError
	if errors.As(err, &convErr) {
		uc.console.LogWarning("Solver hit its iteration cap; result is imprecise within [%g, %g]", convErr.Low, convErr.High)
	} else if err != nil {
		return err
	}

	uc.renderSummary(data)

	if !args.NoChart {
		uc.renderCharts(data)
	}

	// Exporta os relatórios, se um nome de relatório foi fornecido.
	if cfg.ReportName != "" {
		for _, reportType := range cfg.ReportType {
			switch reportType {
			case "csv":
				csvPath, err := uc.exportRepo.ExportToCSV(data, cfg.ReportName, cfg.Dir)
				if err != nil {
					uc.console.LogError("Failed to export to CSV: %s", err)
				} else {
					uc.console.LogSuccess("Successfully exported to CSV: %s", csvPath)
				}
			case "json":
				jsonPath, err := uc.exportRepo.ExportToJSON(data, cfg.ReportName, cfg.Dir)
				if err != nil {
					uc.console.LogError("Failed to export to JSON: %s", err)
				} else {
					uc.console.LogSuccess("Successfully exported to JSON: %s", jsonPath)
				}
			case "pdf":
				pdfPath, err := uc.exportRepo.ExportToPDF(data, cfg.ReportName, cfg.Dir)
				if err != nil {
					uc.console.LogError("Failed to export to PDF: %s", err)
				} else {
					uc.console.LogSuccess("Successfully exported to PDF: %s", pdfPath)
				}
			default:
				uc.console.LogWarning("Unknown report type '%s' (expected csv, json or pdf)", reportType)
			}
		}
	}

	return nil
}

// BuildEstimate executa o pipeline numérico puro: interpolação → integração →
// {busca de raiz, otimização}. Não faz I/O; pode ser chamado repetidamente com
// as mesmas entradas e devolve sempre as mesmas saídas.
func (uc *EstimatorUseCase) BuildEstimate(cfg *types.Config) (entity.EstimateData, error) {
	samples, err := validateInputs(cfg)
	if err != nil {
		return entity.EstimateData{}, err
	}

	appliances := make([]entity.Appliance, len(cfg.Appliances))
	for i, a := range cfg.Appliances {
		appliances[i] = entity.Appliance{Name: a.Name, Watts: a.Watts, HoursPerDay: a.HoursPerDay}
	}

	avg := entity.AverageDailyKWh(samples)
	dailyCost := avg * cfg.Tariff

	// Janelas curtas de interpolação extrapolam melhor; 0 usa todo o histórico.
	window := samples
	if cfg.InterpolationWindow > 0 && cfg.InterpolationWindow < len(samples) {
		window = samples[len(samples)-cfg.InterpolationWindow:]
	}

	interp, err := numeric.NewInterpolator(window)
	if err != nil {
		return entity.EstimateData{}, err
	}

	lastDay := samples[len(samples)-1].Day
	forecast := interp.Forecast(lastDay+1, cfg.Horizon)

	rates := make([]numeric.RatePoint, 0, len(samples)+len(forecast))
	for _, s := range samples {
		rates = append(rates, numeric.RatePoint{Day: float64(s.Day), KWh: s.KWh})
	}
	for _, p := range forecast {
		rates = append(rates, numeric.RatePoint{Day: float64(p.Day), KWh: p.KWh})
	}
	curve := numeric.NewCostCurve(rates, cfg.Tariff)

	data := entity.EstimateData{
		Label:         cfg.Label,
		Currency:      cfg.Currency,
		Balance:       cfg.Balance,
		Tariff:        cfg.Tariff,
		AvgDailyKWh:   avg,
		RatedDailyKWh: entity.TotalDailyKWh(appliances),
		DailyCost:     dailyCost,
		History:       samples,
		Forecast:      forecast,
		CostCurve:     curve.Points(),
	}

	var solverErr error

	// Dia de exaustão: raiz de custoAcumulado(dia) − saldo sobre a curva.
	costGap := func(day float64) float64 { return curve.At(day) - cfg.Balance }
	root, err := numeric.Bisect(costGap, curve.Start(), curve.End(), cfg.Solver.BisectionTolerance, cfg.Solver.MaxIterations)
	if errors.Is(err, numeric.ErrInvalidBracket) {
		// O saldo sobrevive ao horizonte inteiro: reportado como tal, nunca
		// como um dia fabricado.
		data.BeyondHorizon = true
	} else {
		var convErr *numeric.ConvergenceError
		if err != nil && !errors.As(err, &convErr) {
			return data, err
		}
		if err != nil {
			solverErr = err
		}
		exhaustion := root
		remaining := math.Max(0, root-float64(lastDay))
		data.ExhaustionDay = &exhaustion
		data.DaysRemaining = &remaining
	}

	// Recomendação de redução: busca da seção áurea sobre a vida projetada do
	// saldo sob um corte proporcional r. O objetivo é monotônico no intervalo,
	// então a busca converge para a borda benéfica.
	if dailyCost > 0 && cfg.Balance > 0 {
		projectedLife := func(r float64) float64 { return cfg.Balance / (dailyCost * (1 - r)) }
		objective := func(r float64) float64 { return -projectedLife(r) }

		reduction, err := numeric.GoldenSectionMin(objective, cfg.ReductionMin, cfg.ReductionMax, cfg.Solver.GoldenTolerance, cfg.Solver.MaxIterations)
		var convErr *numeric.ConvergenceError
		if err != nil && !errors.As(err, &convErr) {
			return data, err
		}
		if err != nil {
			solverErr = err
		}

		extension := projectedLife(reduction) - projectedLife(0)
		if reduction > 0 && extension > 0 {
			data.OptimalReduction = &reduction
			data.ExtendedLifeDays = &extension
		}
	}

	return data, solverErr
}

// validateInputs rejeita entradas inválidas antes de qualquer trabalho
// numérico e converte o histórico para as entidades de domínio.
func validateInputs(cfg *types.Config) ([]entity.UsageSample, error) {
	if cfg.Tariff <= 0 {
		return nil, types.ErrInvalidTariff
	}
	if cfg.Balance < 0 {
		return nil, types.ErrNegativeBalance
	}
	if len(cfg.History) < 2 {
		return nil, types.ErrHistoryTooShort
	}
	if cfg.Horizon < 1 {
		return nil, types.ErrInvalidHorizon
	}
	if cfg.ReductionMin < 0 || cfg.ReductionMax >= 1 || cfg.ReductionMin >= cfg.ReductionMax {
		return nil, types.ErrInvalidReductionBounds
	}
	if cfg.InterpolationWindow < 0 || cfg.InterpolationWindow == 1 {
		return nil, types.ErrInvalidInterpolationWindow
	}

	samples := make([]entity.UsageSample, len(cfg.History))
	for i, h := range cfg.History {
		if h.Day < 0 {
			return nil, types.ErrNegativeDayIndex
		}
		if h.KWh < 0 {
			return nil, types.ErrNegativeUsage
		}
		if i > 0 && h.Day <= cfg.History[i-1].Day {
			return nil, types.ErrNonMonotonicDays
		}
		samples[i] = entity.UsageSample{Day: h.Day, KWh: h.KWh}
	}

	return samples, nil
}

// resolveConfig carrega o arquivo de configuração e aplica as flags da CLI
// por cima dos valores do arquivo.
func (uc *EstimatorUseCase) resolveConfig(args *types.CLIArgs) (*types.Config, error) {
	if args.ConfigFile == "" {
		return nil, types.ErrNoHistoryConfigured
	}

	cfg, err := uc.configRepo.LoadConfigFile(args.ConfigFile)
	if err != nil {
		return nil, err
	}

	if args.Balance != nil {
		cfg.Balance = *args.Balance
	}
	if args.Tariff != nil {
		cfg.Tariff = *args.Tariff
	}
	if args.Horizon != nil {
		cfg.Horizon = *args.Horizon
	}
	if args.ReductionMin != nil {
		cfg.ReductionMin = *args.ReductionMin
	}
	if args.ReductionMax != nil {
		cfg.ReductionMax = *args.ReductionMax
	}
	if args.ReportName != "" {
		cfg.ReportName = args.ReportName
	}
	if len(args.ReportType) > 0 {
		cfg.ReportType = args.ReportType
	}
	if args.Dir != "" {
		cfg.Dir = args.Dir
	}

	return cfg, nil
}

// renderSummary exibe a tabela principal do dashboard.
func (uc *EstimatorUseCase) renderSummary(data entity.EstimateData) {
	table := uc.console.CreateTable()
	table.AddColumn("Metric")
	table.AddColumn("Value")

	label := data.Label
	if label == "" {
		label = "Prepaid Meter"
	}

	table.AddRow(pterm.FgMagenta.Sprint("Meter"), label)
	table.AddRow("Balance", pterm.NewStyle(pterm.FgRed, pterm.Bold).Sprintf("%s %.2f", data.Currency, data.Balance))
	table.AddRow("Tariff", fmt.Sprintf("%s %.2f/kWh", data.Currency, data.Tariff))
	table.AddRow("Average Daily Usage", pterm.FgGreen.Sprintf("%.2f kWh", data.AvgDailyKWh))
	if data.RatedDailyKWh > 0 {
		table.AddRow("Appliance-Rated Daily Usage", pterm.FgGreen.Sprintf("%.2f kWh", data.RatedDailyKWh))
	}
	table.AddRow("Estimated Daily Cost", pterm.FgYellow.Sprintf("%s %.2f", data.Currency, data.DailyCost))

	if data.BeyondHorizon {
		table.AddRow("Estimated Exhaustion", pterm.FgGreen.Sprint("beyond forecast horizon"))
	} else if data.ExhaustionDay != nil {
		table.AddRow("Estimated Exhaustion Day", pterm.NewStyle(pterm.FgRed, pterm.Bold).Sprintf("day %.1f", *data.ExhaustionDay))
		if data.DaysRemaining != nil {
			table.AddRow("Days Remaining", pterm.NewStyle(pterm.FgRed, pterm.Bold).Sprintf("%.1f", *data.DaysRemaining))
		}
	}

	if data.OptimalReduction != nil {
		table.AddRow("Recommended Usage Reduction", pterm.FgCyan.Sprintf("%.1f%%", *data.OptimalReduction*100))
		if data.ExtendedLifeDays != nil {
			table.AddRow("Projected Life Extension", pterm.FgCyan.Sprintf("+%.1f days", *data.ExtendedLifeDays))
		}
	} else {
		table.AddRow("Recommended Usage Reduction", "no benefit found")
	}

	uc.console.Print(table.Render())
}

// renderCharts exibe os gráficos de consumo e da curva de custo acumulado.
func (uc *EstimatorUseCase) renderCharts(data entity.EstimateData) {
	bars := make([]types.UsageBar, 0, len(data.History)+len(data.Forecast))
	for _, s := range data.History {
		bars = append(bars, types.UsageBar{Day: s.Day, KWh: s.KWh})
	}
	for _, p := range data.Forecast {
		bars = append(bars, types.UsageBar{Day: p.Day, KWh: p.KWh, Forecast: true})
	}
	uc.console.DisplayUsageBars(bars)

	costBars := make([]types.CostBar, len(data.CostCurve))
	for i, p := range data.CostCurve {
		costBars[i] = types.CostBar{Day: p.Day, Cost: p.Cost}
	}
	uc.console.DisplayCostCurve(costBars, data.Balance, data.Currency)
}
