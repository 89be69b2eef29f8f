// backend-go/internal/domain/models.go
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order status values.
const (
	OrderFulfilled = "Fulfilled"
	OrderRejected  = "Rejected"
)

// Day type tags carried by activity records. Holiday is accepted on manually
// logged activity but never derived; there is no holiday calendar wired in.
const (
	DayTypeWeekday = "Weekday"
	DayTypeWeekend = "Weekend"
	DayTypeHoliday = "Holiday"
)

// InventoryLot is a quantity of one ingredient with a single expiry date.
// Lots are unique per (item name, expiry date); deduction only ever reduces
// Quantity, it never deletes a lot.
type InventoryLot struct {
	ID              int64           `json:"id" db:"id"`
	ItemName        string          `json:"item_name" db:"item_name"`
	Category        string          `json:"category" db:"category"`
	Quantity        float64         `json:"quantity" db:"quantity"`
	Unit            string          `json:"unit" db:"unit"`
	PricePerUnit    decimal.Decimal `json:"price_per_unit" db:"price_per_unit"`
	ExpiryDate      time.Time       `json:"expiry_date" db:"expiry_date"`
	StorageLocation string          `json:"storage_location" db:"storage_location"`
	DetectedByAI    bool            `json:"detected_by_ai" db:"detected_by_ai"`
	ConfidenceScore float64         `json:"confidence_score" db:"confidence_score"`
}

// Recipe maps a dish to its required ingredient quantities. Ingredient values
// are quantity strings such as "150g" or "2"; see ParseQuantity.
type Recipe struct {
	ID          int64             `json:"id" db:"id"`
	DishName    string            `json:"dish_name" db:"dish_name"`
	Ingredients map[string]string `json:"ingredients" db:"-"`
	Calories    float64           `json:"calories" db:"calories"`
	PrepTime    int               `json:"prep_time" db:"prep_time"`
	CookingTime int               `json:"cooking_time" db:"cooking_time"`
	Price       float64           `json:"price" db:"price"`
}

// Order is only ever created by the order service after every line of the
// order has been deducted successfully.
type Order struct {
	ID           int64           `json:"id" db:"id"`
	Reference    string          `json:"reference" db:"reference"`
	CustomerID   int64           `json:"customer_id" db:"customer_id"`
	DateTime     time.Time       `json:"date_time" db:"date_time"`
	ItemsOrdered map[string]int  `json:"items_ordered" db:"-"`
	TotalBill    decimal.Decimal `json:"total_bill" db:"total_bill"`
	Status       string          `json:"status" db:"status"`
}

// DailyActivity is one day's sales record for one item, written either
// manually or by the order service (one record per dish line).
type DailyActivity struct {
	ID               int64           `json:"id" db:"id"`
	DateTime         time.Time       `json:"date_time" db:"date_time"`
	ItemName         string          `json:"item_name" db:"item_name"`
	QuantitySold     int             `json:"quantity_sold" db:"quantity_sold"`
	Revenue          decimal.Decimal `json:"revenue" db:"revenue"`
	CustomerCount    int             `json:"customer_count" db:"customer_count"`
	WeatherCondition *string         `json:"weather_condition" db:"weather_condition"`
	DayType          string          `json:"day_type" db:"day_type"`
}

// MenuItem is one sellable dish with its expiry-driven price.
type MenuItem struct {
	DishName       string     `json:"dish_name"`
	EarliestExpiry *time.Time `json:"earliest_expiry"`
	Cost           float64    `json:"cost"`
	FinalPrice     float64    `json:"final_price"`
	MarginPct      int        `json:"margin_pct"`
}

// Risk report classification labels.
const (
	RiskHigh = "High Risk - Sell/Dispose"
	RiskSafe = "Safe"
)

// RiskItem classifies one inventory lot for the risk report.
type RiskItem struct {
	ItemName        string    `json:"item_name"`
	Quantity        float64   `json:"quantity"`
	ExpiryDate      time.Time `json:"expiry_date"`
	ExpiryRisk      string    `json:"expiry_risk"`
	ReorderRequired bool      `json:"reorder_required"`
}

// ForecastPoint is one predicted (date, item, quantity) row.
type ForecastPoint struct {
	Date         time.Time `json:"date"`
	ItemName     string    `json:"item_name"`
	PredictedQty int       `json:"predicted_qty"`
}

// DayTypeFor derives the day type tag from a timestamp. Saturday and Sunday
// count as weekend; holidays are never derived.
func DayTypeFor(t time.Time) string {
	switch t.Weekday() {
	case time.Saturday, time.Sunday:
		return DayTypeWeekend
	default:
		return DayTypeWeekday
	}
}

// IsWeekend reports whether the date falls on a Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	return DayTypeFor(t) == DayTypeWeekend
}

// DaysUntil returns the whole number of days from now until t, rounded toward
// negative infinity: 71 hours out is 2 days, 3 hours past due is -1.
func DaysUntil(now, t time.Time) int {
	d := t.Sub(now).Hours() / 24
	day := int(d)
	if d < 0 && d != float64(day) {
		day--
	}
	return day
}
