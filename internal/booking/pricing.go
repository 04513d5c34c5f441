package booking

import (
	"fmt"
	"math"
	"time"
)

// DateLayout is the calendar-date form used for check-in and check-out.
const DateLayout = "2006-01-02"

// NightsBetween returns the number of nights between two calendar dates.
// Dates are interpreted at midnight UTC, so the result is the whole-day
// difference; any partial day counts as a full night. Fails with
// ErrInvalidDateRange when a date does not parse or check-out is not
// strictly after check-in.
func NightsBetween(checkIn, checkOut string) (int, error) {
	in, err := time.ParseInLocation(DateLayout, checkIn, time.UTC)
	if err != nil {
		return 0, fmt.Errorf("parse check-in %q: %w", checkIn, ErrInvalidDateRange)
	}

	out, err := time.ParseInLocation(DateLayout, checkOut, time.UTC)
	if err != nil {
		return 0, fmt.Errorf("parse check-out %q: %w", checkOut, ErrInvalidDateRange)
	}

	if !out.After(in) {
		return 0, fmt.Errorf("check-out %s not after check-in %s: %w", checkOut, checkIn, ErrInvalidDateRange)
	}

	nights := int(math.Ceil(out.Sub(in).Hours() / 24))
	return nights, nil
}

// TotalPrice returns the cost of a stay: nightly room price times nights.
func TotalPrice(roomPrice float64, nights int) (float64, error) {
	if nights <= 0 {
		return 0, fmt.Errorf("nights must be positive, got %d: %w", nights, ErrInvalidArgument)
	}
	if roomPrice < 0 {
		return 0, fmt.Errorf("room price must not be negative, got %v: %w", roomPrice, ErrInvalidArgument)
	}

	return roomPrice * float64(nights), nil
}
