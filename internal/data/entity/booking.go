package entity

// Booking is an immutable reservation record. Hotel and room type are kept
// as denormalized name copies so the booking stays displayable even if the
// catalog entry it was built from changes later. Created only by the booking
// factory; the only post-creation operation is deletion from the store.
type Booking struct {
	ID             string  `db:"id" json:"id"`
	HotelID        string  `db:"hotel_id" json:"hotel_id"`
	HotelName      string  `db:"hotel_name" json:"hotel_name"`
	GuestName      string  `db:"guest_name" json:"guest_name"`
	Email          string  `db:"email" json:"email"`
	NumberOfGuests int     `db:"number_of_guests" json:"number_of_guests"`
	RoomType       string  `db:"room_type" json:"room_type"`
	CheckInDate    string  `db:"check_in_date" json:"check_in_date"`
	CheckOutDate   string  `db:"check_out_date" json:"check_out_date"`
	TotalPrice     float64 `db:"total_price" json:"total_price"`
	BookingDate    string  `db:"booking_date" json:"booking_date"`
}
