package booking

import (
	"regexp"
	"strings"

	"hotel-booking/internal/data/entity"
)

// Same pattern the front end used: no whitespace, one @, at least one dot
// after it.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// GuestInput is the raw booking form input before validation.
type GuestInput struct {
	GuestName      string
	Email          string
	RoomTypeID     string
	NumberOfGuests int
}

// ValidatedGuest is guest input that passed Validate: names trimmed, email
// format checked, and the room type resolved on the target hotel.
type ValidatedGuest struct {
	GuestName      string
	Email          string
	NumberOfGuests int
	RoomType       entity.RoomType
}

// Validate checks the booking form input against the target hotel. Checks
// run in order and stop at the first failure; the returned error is one of
// the validation sentinels.
func Validate(hotel *entity.Hotel, in GuestInput) (ValidatedGuest, error) {
	guestName := strings.TrimSpace(in.GuestName)
	if guestName == "" {
		return ValidatedGuest{}, ErrMissingGuestName
	}

	email := strings.TrimSpace(in.Email)
	if email == "" {
		return ValidatedGuest{}, ErrMissingEmail
	}
	if !emailPattern.MatchString(email) {
		return ValidatedGuest{}, ErrInvalidEmailFormat
	}

	if in.RoomTypeID == "" {
		return ValidatedGuest{}, ErrMissingRoomType
	}
	roomType := hotel.RoomTypeByID(in.RoomTypeID)
	if roomType == nil {
		return ValidatedGuest{}, ErrRoomTypeNotFound
	}

	return ValidatedGuest{
		GuestName:      guestName,
		Email:          email,
		NumberOfGuests: in.NumberOfGuests,
		RoomType:       *roomType,
	}, nil
}
