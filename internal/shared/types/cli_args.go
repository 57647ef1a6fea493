package types

// CLIArgs represents the command-line arguments. Pointer fields are nil when
// the corresponding flag was not set, so config-file values survive.
type CLIArgs struct {
	ConfigFile   string
	Balance      *float64
	Tariff       *float64
	Horizon      *int
	ReductionMin *float64
	ReductionMax *float64
	ReportName   string
	ReportType   []string
	Dir          string
	NoChart      bool
}
