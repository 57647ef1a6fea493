package entity

// Appliance represents a rated household load and its daily duty cycle.
type Appliance struct {
	Name        string  `json:"name"`
	Watts       float64 `json:"watts"`
	HoursPerDay float64 `json:"hours_per_day"`
}

// DailyKWh returns the rated consumption of the appliance over one day.
func (a Appliance) DailyKWh() float64 {
	return a.Watts * a.HoursPerDay / 1000.0
}

// TotalDailyKWh soma o consumo diário nominal de todos os aparelhos.
func TotalDailyKWh(appliances []Appliance) float64 {
	total := 0.0
	for _, a := range appliances {
		total += a.DailyKWh()
	}
	return total
}
