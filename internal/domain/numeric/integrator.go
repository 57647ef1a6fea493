package numeric

import (
	"github.com/diillson/prepaid-meter-dashboard-go/internal/domain/entity"
)

// RatePoint is one (day, kWh) sample on the usage-rate curve handed to the
// integrator. The pipeline merges historical and forecasted days into a
// single ordered series of these.
type RatePoint struct {
	Day float64
	KWh float64
}

// CostCurve is the cumulative monetary cost of a usage series, integrated
// with the trapezoidal rule. The curve is exact for linearly-varying usage
// and O(h²) accurate elsewhere. Cost at the first sampled day is zero and the
// curve is monotone non-decreasing for non-negative usage and tariff.
type CostCurve struct {
	days  []float64
	costs []float64
}

// NewCostCurve aplica a regra do trapézio sobre a série de consumo: o
// incremento entre os dias i e i+1 é tariff·(u[i]+u[i+1])/2·(d[i+1]−d[i]).
func NewCostCurve(rates []RatePoint, tariff float64) CostCurve {
	days := make([]float64, len(rates))
	costs := make([]float64, len(rates))
	for i, r := range rates {
		days[i] = r.Day
		if i == 0 {
			continue
		}
		prev := rates[i-1]
		costs[i] = costs[i-1] + tariff*(prev.KWh+r.KWh)/2*(r.Day-prev.Day)
	}
	return CostCurve{days: days, costs: costs}
}

// At returns the cumulative cost at a fractional day by linear interpolation
// between the two bracketing samples, making the curve a continuous function
// usable by the root-finder. Days before the curve start return zero and days
// past the end return the final cumulative cost.
func (c CostCurve) At(day float64) float64 {
	if len(c.days) == 0 || day <= c.days[0] {
		return 0
	}
	last := len(c.days) - 1
	if day >= c.days[last] {
		return c.costs[last]
	}
	for i := 1; i <= last; i++ {
		if day <= c.days[i] {
			span := c.days[i] - c.days[i-1]
			frac := (day - c.days[i-1]) / span
			return c.costs[i-1] + frac*(c.costs[i]-c.costs[i-1])
		}
	}
	return c.costs[last]
}

// Start returns the first sampled day of the curve.
func (c CostCurve) Start() float64 {
	if len(c.days) == 0 {
		return 0
	}
	return c.days[0]
}

// End returns the last sampled day of the curve.
func (c CostCurve) End() float64 {
	if len(c.days) == 0 {
		return 0
	}
	return c.days[len(c.days)-1]
}

// Total returns the cumulative cost over the whole curve.
func (c CostCurve) Total() float64 {
	if len(c.costs) == 0 {
		return 0
	}
	return c.costs[len(c.costs)-1]
}

// Points exposes the discretized curve for charting and export.
func (c CostCurve) Points() []entity.CostPoint {
	points := make([]entity.CostPoint, len(c.days))
	for i := range c.days {
		points[i] = entity.CostPoint{Day: c.days[i], Cost: c.costs[i]}
	}
	return points
}
