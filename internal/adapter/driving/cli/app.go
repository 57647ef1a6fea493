package cli

import (
	"github.com/diillson/prepaid-meter-dashboard-go/pkg/version"

	"github.com/diillson/prepaid-meter-dashboard-go/internal/application/usecase"
	"github.com/diillson/prepaid-meter-dashboard-go/internal/shared/types"
	"github.com/spf13/cobra"
)

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd          *cobra.Command
	estimatorUseCase *usecase.EstimatorUseCase
	version          string
}

// NewCLIApp cria uma nova aplicação CLI.
func NewCLIApp(versionStr string) *CLIApp {
	app := &CLIApp{
		version: versionStr,
	}

	// Obtem a versão formatada
	formattedVersion := version.FormatVersion()

	rootCmd := &cobra.Command{
		Use:     "prepaid-meter",
		Short:   "Prepaid Electricity Meter Dashboard CLI",
		Version: formattedVersion,
		RunE:    app.runCommand,
	}

	rootCmd.SetVersionTemplate(`{{printf "Prepaid Meter Dashboard version: %s\n" .Version}}`)

	// Adiciona flags de linha de comando
	rootCmd.PersistentFlags().StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON configuration file with the usage history")
	rootCmd.PersistentFlags().Float64P("balance", "b", 0, "Prepaid balance remaining, in currency units (overrides the config file)")
	rootCmd.PersistentFlags().Float64P("tariff", "t", 0, "Tariff in currency per kWh (overrides the config file)")
	rootCmd.PersistentFlags().IntP("horizon", "H", 0, "Number of future days to forecast (default: 5)")
	rootCmd.PersistentFlags().Float64("reduction-min", 0, "Lower bound of the usage-reduction search interval")
	rootCmd.PersistentFlags().Float64("reduction-max", 0, "Upper bound of the usage-reduction search interval (default: 0.5)")
	rootCmd.PersistentFlags().StringP("report-name", "n", "", "Specify the base name for the report file (without extension)")
	rootCmd.PersistentFlags().StringSliceP("report-type", "y", nil, "Specify report types: csv, json, pdf")
	rootCmd.PersistentFlags().StringP("dir", "d", "", "Directory to save the report files (default: current directory)")
	rootCmd.PersistentFlags().Bool("no-chart", false, "Skip the usage and cumulative-cost charts")

	app.rootCmd = rootCmd
	return app
}

// Execute runs the CLI application.
func (app *CLIApp) Execute() error {
	return app.rootCmd.Execute()
}

// parseArgs parses command-line arguments into a CLIArgs struct. Numeric
// flags only override the config file when explicitly set.
func (app *CLIApp) parseArgs() (*types.CLIArgs, error) {
	flags := app.rootCmd.Flags()

	configFile, _ := flags.GetString("config-file")
	reportName, _ := flags.GetString("report-name")
	reportType, _ := flags.GetStringSlice("report-type")
	dir, _ := flags.GetString("dir")
	noChart, _ := flags.GetBool("no-chart")

	args := &types.CLIArgs{
		ConfigFile: configFile,
		ReportName: reportName,
		ReportType: reportType,
		Dir:        dir,
		NoChart:    noChart,
	}

	if flags.Changed("balance") {
		balance, _ := flags.GetFloat64("balance")
		args.Balance = &balance
	}
	if flags.Changed("tariff") {
		tariff, _ := flags.GetFloat64("tariff")
		args.Tariff = &tariff
	}
	if flags.Changed("horizon") {
		horizon, _ := flags.GetInt("horizon")
		args.Horizon = &horizon
	}
	if flags.Changed("reduction-min") {
		min, _ := flags.GetFloat64("reduction-min")
		args.ReductionMin = &min
	}
	if flags.Changed("reduction-max") {
		max, _ := flags.GetFloat64("reduction-max")
		args.ReductionMax = &max
	}

	return args, nil
}

// runCommand é o ponto de entrada principal para o comando CLI.
func (app *CLIApp) runCommand(cmd *cobra.Command, args []string) error {
	// Exibe o banner de boas-vindas
	displayWelcomeBanner(app.version)

	// Verifica a versão mais recente disponível
	go version.CheckLatestVersion(app.version)

	// Analisa os argumentos da linha de comando
	cliArgs, err := app.parseArgs()
	if err != nil {
		return err
	}

	// Executa a estimativa
	return app.estimatorUseCase.RunEstimate(cliArgs)
}

// SetEstimatorUseCase sets the estimator use case for the CLI app.
func (app *CLIApp) SetEstimatorUseCase(useCase *usecase.EstimatorUseCase) {
	app.estimatorUseCase = useCase
}
