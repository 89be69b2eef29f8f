package forecast

import (
	"errors"
	"math"
	"testing"
	"time"
)

func buildSeries(start time.Time, days int, quantity func(day int, weekend bool) float64) []Observation {
	series := make([]Observation, 0, days)
	for i := 0; i < days; i++ {
		date := start.AddDate(0, 0, i)
		weekend := date.Weekday() == time.Saturday || date.Weekday() == time.Sunday
		series = append(series, Observation{
			Date:     date,
			Quantity: quantity(i, weekend),
			Weekend:  weekend,
		})
	}
	return series
}

func TestFit_TooFewObservations(t *testing.T) {
	start := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)
	series := buildSeries(start, 7, func(int, bool) float64 { return 10 })

	_, err := Fit(series)
	if !errors.Is(err, ErrTooFewObservations) {
		t.Fatalf("Expected ErrTooFewObservations for 7-day series, got %v", err)
	}
}

func TestFit_DegenerateSeries(t *testing.T) {
	// Every observation on the same date: the design matrix has rank 1.
	date := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)
	series := make([]Observation, 10)
	for i := range series {
		series[i] = Observation{Date: date, Quantity: 5}
	}

	_, err := Fit(series)
	if !errors.Is(err, ErrDegenerateSeries) {
		t.Fatalf("Expected ErrDegenerateSeries, got %v", err)
	}
}

func TestFit_RecoversConstantDemand(t *testing.T) {
	start := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC) // a Monday
	series := buildSeries(start, 60, func(int, bool) float64 { return 20 })

	model, err := Fit(series)
	if err != nil {
		t.Fatalf("Fit failed: %v", err)
	}

	for offset := 60; offset < 67; offset++ {
		date := start.AddDate(0, 0, offset)
		weekend := date.Weekday() == time.Saturday || date.Weekday() == time.Sunday
		got := model.Predict(date, weekend)
		if math.Abs(got-20) > 0.5 {
			t.Errorf("Predict(%v) = %g, want ~20", date, got)
		}
	}
}

func TestFit_RecoversLinearTrend(t *testing.T) {
	start := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)
	series := buildSeries(start, 60, func(day int, _ bool) float64 {
		return 10 + 0.5*float64(day)
	})

	model, err := Fit(series)
	if err != nil {
		t.Fatalf("Fit failed: %v", err)
	}

	date := start.AddDate(0, 0, 70)
	weekend := date.Weekday() == time.Saturday || date.Weekday() == time.Sunday
	got := model.Predict(date, weekend)
	want := 10 + 0.5*70.0
	if math.Abs(got-want) > 1.0 {
		t.Errorf("Predict at day 70 = %g, want ~%g", got, want)
	}
}

func TestFit_PicksUpWeekendUplift(t *testing.T) {
	start := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)
	series := buildSeries(start, 84, func(_ int, weekend bool) float64 {
		if weekend {
			return 35
		}
		return 20
	})

	model, err := Fit(series)
	if err != nil {
		t.Fatalf("Fit failed: %v", err)
	}

	saturday := start.AddDate(0, 0, 89) // still a Saturday, 12 weeks + 5 days out
	if saturday.Weekday() != time.Saturday {
		t.Fatalf("test setup: expected Saturday, got %v", saturday.Weekday())
	}
	wednesday := start.AddDate(0, 0, 86)
	if wednesday.Weekday() != time.Wednesday {
		t.Fatalf("test setup: expected Wednesday, got %v", wednesday.Weekday())
	}

	weekendPred := model.Predict(saturday, true)
	weekdayPred := model.Predict(wednesday, false)

	if weekendPred <= weekdayPred {
		t.Errorf("Expected weekend prediction (%g) above weekday prediction (%g)",
			weekendPred, weekdayPred)
	}
	if math.Abs(weekendPred-35) > 2.0 {
		t.Errorf("Weekend prediction %g, want ~35", weekendPred)
	}
	if math.Abs(weekdayPred-20) > 2.0 {
		t.Errorf("Weekday prediction %g, want ~20", weekdayPred)
	}
}

func TestFit_UnsortedSeries(t *testing.T) {
	start := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)
	series := buildSeries(start, 30, func(int, bool) float64 { return 12 })

	// Reverse the series; Fit should locate the origin itself.
	for i, j := 0, len(series)-1; i < j; i, j = i+1, j-1 {
		series[i], series[j] = series[j], series[i]
	}

	model, err := Fit(series)
	if err != nil {
		t.Fatalf("Fit failed on unsorted series: %v", err)
	}

	got := model.Predict(start.AddDate(0, 0, 35), false)
	if math.Abs(got-12) > 1.0 {
		t.Errorf("Predict = %g, want ~12", got)
	}
}
