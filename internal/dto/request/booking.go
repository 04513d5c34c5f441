package request

// CreateBookingRequest is the booking form payload. Email format and room
// type resolution are checked by the domain validator so each failure maps
// to a specific error; the tags here only guard the obvious shape problems.
type CreateBookingRequest struct {
	HotelID        string `json:"hotel_id" validate:"required"`
	RoomTypeID     string `json:"room_type_id" validate:"required"`
	GuestName      string `json:"guest_name" validate:"required"`
	Email          string `json:"email" validate:"required"`
	NumberOfGuests int    `json:"number_of_guests" validate:"required,min=1"`
	CheckInDate    string `json:"check_in_date" validate:"required,datetime=2006-01-02"`
	CheckOutDate   string `json:"check_out_date" validate:"required,datetime=2006-01-02"`
}
