// backend-go/internal/service/forecast_service.go
package service

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/freshserve/backend-go/internal/domain"
	"github.com/freshserve/backend-go/internal/forecast"
	"github.com/freshserve/backend-go/internal/repository"
	"github.com/rs/zerolog/log"
)

type ForecastService struct {
	activities repository.ActivityRepository
	minHistory int
	now        func() time.Time
}

func NewForecastService(activities repository.ActivityRepository, minHistory int) *ForecastService {
	return &ForecastService{
		activities: activities,
		minHistory: minHistory,
		now:        time.Now,
	}
}

// Forecast projects per-item demand for the next horizonDays days, one model
// per item with enough history. A fit failure for one item is logged and
// skipped rather than aborting the rest of the batch.
func (s *ForecastService) Forecast(ctx context.Context, horizonDays int) ([]domain.ForecastPoint, error) {
	if horizonDays <= 0 {
		return nil, domain.ErrInvalidForecastHorizon
	}

	records, err := s.activities.List(ctx)
	if err != nil {
		return nil, err
	}

	byItem := make(map[string][]domain.DailyActivity)
	for _, record := range records {
		byItem[record.ItemName] = append(byItem[record.ItemName], record)
	}

	items := make([]string, 0, len(byItem))
	for item, history := range byItem {
		if len(history) >= s.minHistory {
			items = append(items, item)
		}
	}
	sort.Strings(items)

	if len(items) == 0 {
		return nil, domain.ErrInsufficientForecastData
	}

	today := truncateToDay(s.now())
	var points []domain.ForecastPoint

	for _, item := range items {
		model, err := forecast.Fit(aggregateDaily(byItem[item]))
		if err != nil {
			log.Warn().Err(err).Str("item", item).Msg("forecast: model fit failed, skipping item")
			continue
		}

		for day := 0; day < horizonDays; day++ {
			date := today.AddDate(0, 0, day)
			predicted := model.Predict(date, domain.IsWeekend(date))

			qty := int(math.Round(predicted))
			if qty < 0 {
				qty = 0
			}

			points = append(points, domain.ForecastPoint{
				Date:         date,
				ItemName:     item,
				PredictedQty: qty,
			})
		}
	}

	if len(points) == 0 {
		return nil, domain.ErrInsufficientForecastData
	}

	return points, nil
}

// aggregateDaily collapses an item's records into one observation per
// calendar date: quantities summed, weekend flag taken from the date.
func aggregateDaily(history []domain.DailyActivity) []forecast.Observation {
	totals := make(map[time.Time]float64)
	for _, record := range history {
		totals[truncateToDay(record.DateTime)] += float64(record.QuantitySold)
	}

	series := make([]forecast.Observation, 0, len(totals))
	for date, quantity := range totals {
		series = append(series, forecast.Observation{
			Date:     date,
			Quantity: quantity,
			Weekend:  domain.IsWeekend(date),
		})
	}
	sort.Slice(series, func(i, j int) bool { return series[i].Date.Before(series[j].Date) })

	return series
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
