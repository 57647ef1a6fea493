package numeric

import (
	"errors"

	"github.com/diillson/prepaid-meter-dashboard-go/internal/domain/entity"
)

var (
	// ErrDuplicateAbscissa indica dois pontos históricos com o mesmo dia;
	// a tabela de diferenças divididas teria divisão por zero.
	ErrDuplicateAbscissa = errors.New("duplicate day index in historical samples")
	// ErrInsufficientHistory indica menos de dois pontos históricos.
	ErrInsufficientHistory = errors.New("at least two historical samples are required")
)

// Interpolator is the Newton divided-difference polynomial fitted through a
// set of historical (day, kWh) samples. The polynomial has degree n-1 and
// passes exactly through every sample; extrapolation beyond the historical
// window is the expected use.
type Interpolator struct {
	days []float64
	coef []float64
}

// NewInterpolator builds the divided-difference coefficient table for the
// given samples. Two samples sharing a day index make the polynomial
// undefined, so the constructor fails fast instead of propagating infinities.
func NewInterpolator(samples []entity.UsageSample) (*Interpolator, error) {
	if len(samples) < 2 {
		return nil, ErrInsufficientHistory
	}

	days := make([]float64, len(samples))
	coef := make([]float64, len(samples))
	for i, s := range samples {
		days[i] = float64(s.Day)
		coef[i] = s.KWh
	}

	// Constrói a tabela in-place: após o nível j, coef[i] guarda a diferença
	// dividida de ordem j terminando em i; ao final coef[i] é o coeficiente
	// de ordem i da forma de Newton.
	for j := 1; j < len(coef); j++ {
		for i := len(coef) - 1; i >= j; i-- {
			denom := days[i] - days[i-j]
			if denom == 0 {
				return nil, ErrDuplicateAbscissa
			}
			coef[i] = (coef[i] - coef[i-1]) / denom
		}
	}

	return &Interpolator{days: days, coef: coef}, nil
}

// Evaluate computes the interpolating polynomial at day x using Newton's
// nested form, accumulated from the highest-order coefficient down.
func (p *Interpolator) Evaluate(x float64) float64 {
	result := p.coef[len(p.coef)-1]
	for i := len(p.coef) - 2; i >= 0; i-- {
		result = result*(x-p.days[i]) + p.coef[i]
	}
	return result
}

// Forecast evaluates the polynomial at `horizon` consecutive integer days
// starting at `from`. Negative predictions are clamped to zero: usage cannot
// be negative, so the floor is a physical post-condition on the extrapolation.
func (p *Interpolator) Forecast(from, horizon int) []entity.ForecastPoint {
	points := make([]entity.ForecastPoint, 0, horizon)
	for day := from; day < from+horizon; day++ {
		kwh := p.Evaluate(float64(day))
		if kwh < 0 {
			kwh = 0
		}
		points = append(points, entity.ForecastPoint{Day: day, KWh: kwh})
	}
	return points
}
