package booking

import "errors"

// Validation failures. Each check has its own value so the caller can render
// a field-specific message; the validator stops at the first failure.
var (
	ErrMissingGuestName   = errors.New("guest name is required")
	ErrMissingEmail       = errors.New("email is required")
	ErrInvalidEmailFormat = errors.New("invalid email format")
	ErrMissingRoomType    = errors.New("room type is required")
	ErrRoomTypeNotFound   = errors.New("room type not found")
)

// Pricing failures.
var (
	ErrInvalidDateRange = errors.New("invalid date range: check-out must be after check-in")
	ErrInvalidArgument  = errors.New("invalid pricing argument")
)

// ErrHotelNotFound reports an unknown hotel id lookup.
var ErrHotelNotFound = errors.New("hotel not found")
