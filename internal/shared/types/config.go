package types

// UsageSampleConfig is one historical (day, kWh) pair as read from a config file.
type UsageSampleConfig struct {
	Day int     `json:"day" yaml:"day" toml:"day"`
	KWh float64 `json:"kwh" yaml:"kwh" toml:"kwh"`
}

// ApplianceConfig is one rated household load as read from a config file.
type ApplianceConfig struct {
	Name        string  `json:"name" yaml:"name" toml:"name"`
	Watts       float64 `json:"watts" yaml:"watts" toml:"watts"`
	HoursPerDay float64 `json:"hours_per_day" yaml:"hours_per_day" toml:"hours_per_day"`
}

// SolverConfig carries tolerances and iteration caps for the iterative
// solvers. Zero values are replaced by the documented defaults on load.
type SolverConfig struct {
	BisectionTolerance float64 `json:"bisection_tolerance" yaml:"bisection_tolerance" toml:"bisection_tolerance"`
	GoldenTolerance    float64 `json:"golden_tolerance" yaml:"golden_tolerance" toml:"golden_tolerance"`
	MaxIterations      int     `json:"max_iterations" yaml:"max_iterations" toml:"max_iterations"`
}

// Config represents the full estimation configuration that can be loaded from
// a TOML, YAML or JSON file. Command-line flags override individual fields.
type Config struct {
	Label    string  `json:"label" yaml:"label" toml:"label"`
	Currency string  `json:"currency" yaml:"currency" toml:"currency"`
	Balance  float64 `json:"balance" yaml:"balance" toml:"balance"`
	Tariff   float64 `json:"tariff" yaml:"tariff" toml:"tariff"`

	History    []UsageSampleConfig `json:"history" yaml:"history" toml:"history"`
	Appliances []ApplianceConfig   `json:"appliances" yaml:"appliances" toml:"appliances"`

	// Horizon é o número de dias futuros a prever (padrão: 5).
	Horizon int `json:"horizon" yaml:"horizon" toml:"horizon"`
	// InterpolationWindow limita a interpolação aos últimos N dias do
	// histórico; 0 usa a janela inteira. Janelas curtas extrapolam melhor.
	InterpolationWindow int `json:"interpolation_window" yaml:"interpolation_window" toml:"interpolation_window"`

	ReductionMin float64 `json:"reduction_min" yaml:"reduction_min" toml:"reduction_min"`
	ReductionMax float64 `json:"reduction_max" yaml:"reduction_max" toml:"reduction_max"`

	Solver SolverConfig `json:"solver" yaml:"solver" toml:"solver"`

	ReportName string   `json:"report_name" yaml:"report_name" toml:"report_name"`
	ReportType []string `json:"report_type" yaml:"report_type" toml:"report_type"`
	Dir        string   `json:"dir" yaml:"dir" toml:"dir"`
}
