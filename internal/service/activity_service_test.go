package service

import (
	"context"
	"testing"

	"github.com/freshserve/backend-go/internal/domain"
	"github.com/freshserve/backend-go/internal/repository/memory"
	"github.com/shopspring/decimal"
)

func TestLogActivity_DerivesDayTypeWhenEmpty(t *testing.T) {
	store := memory.NewStore()
	svc := NewActivityService(store.Activities())

	saturday := testNow.AddDate(0, 0, 5)
	logged, err := svc.LogActivity(context.Background(), domain.DailyActivity{
		DateTime:     saturday,
		ItemName:     "Bread",
		QuantitySold: 3,
		Revenue:      decimal.NewFromFloat(9.0),
	})
	if err != nil {
		t.Fatalf("LogActivity failed: %v", err)
	}

	if logged.DayType != domain.DayTypeWeekend {
		t.Errorf("Expected derived day type %q, got %q", domain.DayTypeWeekend, logged.DayType)
	}
	if logged.ID == 0 {
		t.Error("Expected a persisted activity ID")
	}
}

func TestLogActivity_KeepsCallerDayType(t *testing.T) {
	store := memory.NewStore()
	svc := NewActivityService(store.Activities())

	// A holiday falling on a Monday: the caller's tag wins over derivation.
	logged, err := svc.LogActivity(context.Background(), domain.DailyActivity{
		DateTime:     testNow,
		ItemName:     "Bread",
		QuantitySold: 10,
		Revenue:      decimal.NewFromFloat(30.0),
		DayType:      domain.DayTypeHoliday,
	})
	if err != nil {
		t.Fatalf("LogActivity failed: %v", err)
	}

	if logged.DayType != domain.DayTypeHoliday {
		t.Errorf("Expected caller day type kept, got %q", logged.DayType)
	}
}

func TestListActivities_PreservesOrder(t *testing.T) {
	store := memory.NewStore()
	svc := NewActivityService(store.Activities())

	for i := 0; i < 3; i++ {
		_, err := svc.LogActivity(context.Background(), domain.DailyActivity{
			DateTime:     testNow.AddDate(0, 0, i),
			ItemName:     "Bread",
			QuantitySold: i + 1,
		})
		if err != nil {
			t.Fatalf("LogActivity failed: %v", err)
		}
	}

	activities, err := svc.ListActivities(context.Background())
	if err != nil {
		t.Fatalf("ListActivities failed: %v", err)
	}
	if len(activities) != 3 {
		t.Fatalf("Expected 3 records, got %d", len(activities))
	}
	for i, activity := range activities {
		if activity.QuantitySold != i+1 {
			t.Errorf("Record %d out of order: %+v", i, activity)
		}
	}
}
