package entity

// EstimateData represents all data produced by a single estimation run.
type EstimateData struct {
	Label         string  `json:"label"`
	Currency      string  `json:"currency"`
	Balance       float64 `json:"balance"`
	Tariff        float64 `json:"tariff"`
	AvgDailyKWh   float64 `json:"avg_daily_kwh"`
	RatedDailyKWh float64 `json:"rated_daily_kwh,omitempty"`
	DailyCost     float64 `json:"daily_cost"`

	History   []UsageSample   `json:"history"`
	Forecast  []ForecastPoint `json:"forecast"`
	CostCurve []CostPoint     `json:"cost_curve"`

	// ExhaustionDay é a coordenada (fracionária) no eixo de dias onde o custo
	// acumulado alcança o saldo. Nil quando o saldo sobrevive ao horizonte.
	ExhaustionDay *float64 `json:"exhaustion_day,omitempty"`
	// DaysRemaining is ExhaustionDay measured from the last metered day,
	// clamped at zero. Nil when the balance outlasts the forecast horizon.
	DaysRemaining *float64 `json:"days_remaining,omitempty"`
	BeyondHorizon bool     `json:"beyond_horizon"`

	// OptimalReduction is the recommended proportional cut to future usage.
	// Nil when no reduction extends the projected meter life.
	OptimalReduction *float64 `json:"optimal_reduction,omitempty"`
	// ExtendedLifeDays é o ganho de vida útil projetado ao aplicar a redução.
	ExtendedLifeDays *float64 `json:"extended_life_days,omitempty"`
}
