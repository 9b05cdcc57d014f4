package utils

import (
	"strings"
	"time"
)

// PriceCalculationResult contains the calculated rental price and breakdown
type PriceCalculationResult struct {
	TotalPrice int64          `json:"totalPrice"`
	Days       int64          `json:"days"`
	DailyRate  int64          `json:"dailyRate"`
	WithDriver bool           `json:"withDriver"`
	Breakdown  PriceBreakdown `json:"breakdown"`
}

// PriceBreakdown provides the per-line rental price breakdown
type PriceBreakdown struct {
	VehicleTotal  int64 `json:"vehicleTotal"`
	DriverTotal   int64 `json:"driverTotal"`
	HelmetTotal   int64 `json:"helmetTotal"`
	RaincoatTotal int64 `json:"raincoatTotal"`
	Total         int64 `json:"total"`
}

const (
	// Rates in IDR, whole rupiah
	DriverRatePerDay    int64 = 250000 // daily surcharge for rentals with a driver
	AccessoryRatePerDay int64 = 5000   // per helmet or raincoat, per day
)

// RentalDays returns the billable rental duration in days. The end date is
// exclusive: the calendar-day difference is used, floored at 1 so a same-day
// or inverted range still bills a single day.
func RentalDays(start, end time.Time) int64 {
	s := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	e := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)

	days := int64(e.Sub(s).Hours() / 24)
	if days < 1 {
		return 1
	}
	return days
}

// IsWithDriver reports whether a rental mode string selects the driver
// surcharge. Matching is case-insensitive since the mode arrives as form text.
func IsWithDriver(rentalMode string) bool {
	return strings.EqualFold(strings.TrimSpace(rentalMode), "dengan sopir")
}

// CalculateTotalPrice computes the deterministic rental total for a date range,
// rental mode and accessory counts at the vehicle's daily rate. The driver
// surcharge and accessory surcharges all scale with the rental duration.
func CalculateTotalPrice(start, end time.Time, rentalMode string, helmets, raincoats, dailyRate int64) PriceCalculationResult {
	days := RentalDays(start, end)
	withDriver := IsWithDriver(rentalMode)

	if helmets < 0 {
		helmets = 0
	}
	if raincoats < 0 {
		raincoats = 0
	}

	vehicleTotal := days * dailyRate

	var driverTotal int64
	if withDriver {
		driverTotal = days * DriverRatePerDay
	}

	helmetTotal := days * helmets * AccessoryRatePerDay
	raincoatTotal := days * raincoats * AccessoryRatePerDay

	total := vehicleTotal + driverTotal + helmetTotal + raincoatTotal

	return PriceCalculationResult{
		TotalPrice: total,
		Days:       days,
		DailyRate:  dailyRate,
		WithDriver: withDriver,
		Breakdown: PriceBreakdown{
			VehicleTotal:  vehicleTotal,
			DriverTotal:   driverTotal,
			HelmetTotal:   helmetTotal,
			RaincoatTotal: raincoatTotal,
			Total:         total,
		},
	}
}
