package booking

import (
	"time"

	"hotel-booking/internal/data/entity"

	"github.com/google/uuid"
)

// New assembles an immutable Booking from validated input. This is the only
// place Booking values are constructed: the id and booking date are
// generated here and never supplied by a caller. The guest must already
// have passed Validate against the same hotel.
func New(hotel *entity.Hotel, guest ValidatedGuest, checkInDate, checkOutDate string) (*entity.Booking, error) {
	nights, err := NightsBetween(checkInDate, checkOutDate)
	if err != nil {
		return nil, err
	}

	total, err := TotalPrice(guest.RoomType.Price, nights)
	if err != nil {
		return nil, err
	}

	return &entity.Booking{
		ID:             uuid.New().String(),
		HotelID:        hotel.ID,
		HotelName:      hotel.Name,
		GuestName:      guest.GuestName,
		Email:          guest.Email,
		NumberOfGuests: guest.NumberOfGuests,
		RoomType:       guest.RoomType.Name,
		CheckInDate:    checkInDate,
		CheckOutDate:   checkOutDate,
		TotalPrice:     total,
		BookingDate:    time.Now().UTC().Format(time.RFC3339),
	}, nil
}
