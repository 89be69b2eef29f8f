// backend-go/internal/forecast/seasonal.go

// Package forecast fits per-item demand models over daily sales series. The
// model is an ordinary least-squares regression with a linear trend, order-2
// weekly Fourier terms and a binary weekend regressor, which keeps the same
// inputs and outputs as a seasonal forecaster like Prophet without pulling a
// statistics runtime into the service.
package forecast

import (
	"errors"
	"math"
	"time"
)

var (
	// ErrTooFewObservations is returned when a series is too short to fit
	// the model's coefficients.
	ErrTooFewObservations = errors.New("too few observations to fit model")

	// ErrDegenerateSeries is returned when the design matrix is singular,
	// e.g. a series where every observation falls on the same date.
	ErrDegenerateSeries = errors.New("series is degenerate, cannot fit model")
)

// Observation is one aggregated day of sales for one item.
type Observation struct {
	Date     time.Time
	Quantity float64
	Weekend  bool
}

// Model is a fitted per-item demand model.
type Model struct {
	origin time.Time
	coef   []float64
}

const weeklyPeriod = 7.0

// features builds the regression row for a day offset and weekend flag:
// intercept, trend, two harmonics of the weekly cycle, weekend indicator.
func features(t, weekend float64) []float64 {
	w := 2 * math.Pi * t / weeklyPeriod
	return []float64{
		1,
		t,
		math.Sin(w),
		math.Cos(w),
		math.Sin(2 * w),
		math.Cos(2 * w),
		weekend,
	}
}

func dayOffset(origin, date time.Time) float64 {
	return date.Sub(origin).Hours() / 24
}

// Fit estimates model coefficients from the daily series by solving the
// normal equations.
func Fit(series []Observation) (*Model, error) {
	cols := len(features(0, 0))
	if len(series) <= cols {
		return nil, ErrTooFewObservations
	}

	origin := series[0].Date
	for _, obs := range series[1:] {
		if obs.Date.Before(origin) {
			origin = obs.Date
		}
	}

	// Accumulate X'X and X'y directly; the series stays small (one row per
	// calendar day) so there is no need to materialise X.
	xtx := make([][]float64, cols)
	for i := range xtx {
		xtx[i] = make([]float64, cols)
	}
	xty := make([]float64, cols)

	for _, obs := range series {
		weekend := 0.0
		if obs.Weekend {
			weekend = 1.0
		}
		row := features(dayOffset(origin, obs.Date), weekend)
		for i := 0; i < cols; i++ {
			for j := 0; j < cols; j++ {
				xtx[i][j] += row[i] * row[j]
			}
			xty[i] += row[i] * obs.Quantity
		}
	}

	coef, err := solve(xtx, xty)
	if err != nil {
		return nil, err
	}

	return &Model{origin: origin, coef: coef}, nil
}

// Predict returns the expected quantity for a future date. Values are not
// clamped here; callers round and floor at zero for presentation.
func (m *Model) Predict(date time.Time, weekend bool) float64 {
	w := 0.0
	if weekend {
		w = 1.0
	}
	row := features(dayOffset(m.origin, date), w)

	var y float64
	for i, c := range m.coef {
		y += c * row[i]
	}
	return y
}

// solve runs Gaussian elimination with partial pivoting on a (a|b) system,
// destroying its inputs.
func solve(a [][]float64, b []float64) ([]float64, error) {
	n := len(b)

	for col := 0; col < n; col++ {
		pivot := col
		for row := col + 1; row < n; row++ {
			if math.Abs(a[row][col]) > math.Abs(a[pivot][col]) {
				pivot = row
			}
		}
		if math.Abs(a[pivot][col]) < 1e-12 {
			return nil, ErrDegenerateSeries
		}
		a[col], a[pivot] = a[pivot], a[col]
		b[col], b[pivot] = b[pivot], b[col]

		for row := col + 1; row < n; row++ {
			factor := a[row][col] / a[col][col]
			if factor == 0 {
				continue
			}
			for k := col; k < n; k++ {
				a[row][k] -= factor * a[col][k]
			}
			b[row] -= factor * b[col]
		}
	}

	x := make([]float64, n)
	for row := n - 1; row >= 0; row-- {
		sum := b[row]
		for k := row + 1; k < n; k++ {
			sum -= a[row][k] * x[k]
		}
		x[row] = sum / a[row][row]
	}
	return x, nil
}
