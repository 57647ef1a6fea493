package entity

// UsageSample represents one day of metered consumption from the historical window.
type UsageSample struct {
	Day int     `json:"day"`
	KWh float64 `json:"kwh"`
}

// ForecastPoint represents the predicted consumption for a day beyond the
// historical window. KWh is clamped to zero when the extrapolation goes negative.
type ForecastPoint struct {
	Day int     `json:"day"`
	KWh float64 `json:"kwh"`
}

// CostPoint represents one sample of the cumulative cost curve.
type CostPoint struct {
	Day  float64 `json:"day"`
	Cost float64 `json:"cost"`
}

// AverageDailyKWh calcula o consumo médio diário da janela histórica.
func AverageDailyKWh(samples []UsageSample) float64 {
	if len(samples) == 0 {
		return 0
	}
	total := 0.0
	for _, s := range samples {
		total += s.KWh
	}
	return total / float64(len(samples))
}
