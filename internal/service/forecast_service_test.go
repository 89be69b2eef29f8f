package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/freshserve/backend-go/internal/domain"
	"github.com/freshserve/backend-go/internal/repository/memory"
	"github.com/shopspring/decimal"
)

func seedHistory(t *testing.T, store *memory.Store, item string, days int, quantity func(date time.Time) int) {
	t.Helper()
	start := testNow.AddDate(0, 0, -days)
	for i := 0; i < days; i++ {
		date := start.AddDate(0, 0, i)
		_, err := store.Activities().Append(context.Background(), domain.DailyActivity{
			DateTime:     date,
			ItemName:     item,
			QuantitySold: quantity(date),
			Revenue:      decimal.NewFromFloat(float64(quantity(date)) * 5),
			DayType:      domain.DayTypeFor(date),
		})
		if err != nil {
			t.Fatalf("Failed to seed history for %s: %v", item, err)
		}
	}
}

func newForecastServiceAt(store *memory.Store, minHistory int, now time.Time) *ForecastService {
	svc := NewForecastService(store.Activities(), minHistory)
	svc.now = func() time.Time { return now }
	return svc
}

func TestForecast_InvalidHorizon(t *testing.T) {
	store := memory.NewStore()
	svc := newForecastServiceAt(store, 50, testNow)

	for _, horizon := range []int{0, -1, -30} {
		_, err := svc.Forecast(context.Background(), horizon)
		if !errors.Is(err, domain.ErrInvalidForecastHorizon) {
			t.Errorf("Forecast(%d): expected ErrInvalidForecastHorizon, got %v", horizon, err)
		}
	}
}

func TestForecast_NoQualifyingItems(t *testing.T) {
	store := memory.NewStore()
	seedHistory(t, store, "Bread", 10, func(time.Time) int { return 5 })

	svc := newForecastServiceAt(store, 50, testNow)

	_, err := svc.Forecast(context.Background(), 7)
	if !errors.Is(err, domain.ErrInsufficientForecastData) {
		t.Fatalf("Expected ErrInsufficientForecastData, got %v", err)
	}
}

func TestForecast_ShapeAndBounds(t *testing.T) {
	store := memory.NewStore()
	seedHistory(t, store, "Bread", 60, func(date time.Time) int {
		if domain.IsWeekend(date) {
			return 30
		}
		return 20
	})
	seedHistory(t, store, "Rice Bowl", 60, func(time.Time) int { return 12 })

	svc := newForecastServiceAt(store, 50, testNow)

	const horizon = 7
	points, err := svc.Forecast(context.Background(), horizon)
	if err != nil {
		t.Fatalf("Forecast failed: %v", err)
	}

	if len(points) != 2*horizon {
		t.Fatalf("Expected %d points (2 items x %d days), got %d", 2*horizon, horizon, len(points))
	}

	today := time.Date(testNow.Year(), testNow.Month(), testNow.Day(), 0, 0, 0, 0, testNow.Location())
	byItem := make(map[string][]domain.ForecastPoint)
	for _, p := range points {
		byItem[p.ItemName] = append(byItem[p.ItemName], p)
		if p.PredictedQty < 0 {
			t.Errorf("Prediction for %s on %v is negative: %d", p.ItemName, p.Date, p.PredictedQty)
		}
	}

	for item, series := range byItem {
		if len(series) != horizon {
			t.Errorf("Expected %d points for %s, got %d", horizon, item, len(series))
			continue
		}
		for i, p := range series {
			want := today.AddDate(0, 0, i)
			if !p.Date.Equal(want) {
				t.Errorf("%s point %d: expected date %v, got %v", item, i, want, p.Date)
			}
		}
	}

	// Constant demand stays near its level.
	for _, p := range byItem["Rice Bowl"] {
		if p.PredictedQty < 10 || p.PredictedQty > 14 {
			t.Errorf("Rice Bowl prediction %d on %v, want ~12", p.PredictedQty, p.Date)
		}
	}

	// Bread predictions carry the weekend uplift forward.
	for _, p := range byItem["Bread"] {
		if domain.IsWeekend(p.Date) {
			if p.PredictedQty < 26 {
				t.Errorf("Bread weekend prediction %d on %v, want ~30", p.PredictedQty, p.Date)
			}
		} else if p.PredictedQty > 24 {
			t.Errorf("Bread weekday prediction %d on %v, want ~20", p.PredictedQty, p.Date)
		}
	}
}

func TestForecast_SkipsItemsBelowGate(t *testing.T) {
	store := memory.NewStore()
	seedHistory(t, store, "Bread", 60, func(time.Time) int { return 20 })
	seedHistory(t, store, "New Dish", 5, func(time.Time) int { return 3 })

	svc := newForecastServiceAt(store, 50, testNow)

	points, err := svc.Forecast(context.Background(), 3)
	if err != nil {
		t.Fatalf("Forecast failed: %v", err)
	}

	for _, p := range points {
		if p.ItemName != "Bread" {
			t.Errorf("Item below the history gate leaked into the forecast: %q", p.ItemName)
		}
	}
	if len(points) != 3 {
		t.Errorf("Expected 3 points for the qualifying item, got %d", len(points))
	}
}

func TestForecast_AggregatesIntraDayRecords(t *testing.T) {
	store := memory.NewStore()
	// Two records per day at different hours must collapse into one
	// observation per calendar day.
	start := testNow.AddDate(0, 0, -60)
	for i := 0; i < 60; i++ {
		date := start.AddDate(0, 0, i)
		for _, hour := range []int{12, 19} {
			_, err := store.Activities().Append(context.Background(), domain.DailyActivity{
				DateTime:     date.Add(time.Duration(hour) * time.Hour),
				ItemName:     "Bread",
				QuantitySold: 10,
				DayType:      domain.DayTypeFor(date),
			})
			if err != nil {
				t.Fatalf("Failed to seed history: %v", err)
			}
		}
	}

	svc := newForecastServiceAt(store, 50, testNow)

	points, err := svc.Forecast(context.Background(), 1)
	if err != nil {
		t.Fatalf("Forecast failed: %v", err)
	}
	if len(points) != 1 {
		t.Fatalf("Expected 1 point, got %d", len(points))
	}
	// 10 + 10 per day, so the daily series is a constant 20.
	if points[0].PredictedQty < 18 || points[0].PredictedQty > 22 {
		t.Errorf("Expected prediction ~20 from summed intra-day records, got %d", points[0].PredictedQty)
	}
}
