package response

import (
	"hotel-booking/internal/data/entity"
)

type BookingResponse struct {
	ID             string  `json:"id"`
	HotelID        string  `json:"hotel_id"`
	HotelName      string  `json:"hotel_name"`
	GuestName      string  `json:"guest_name"`
	Email          string  `json:"email"`
	NumberOfGuests int     `json:"number_of_guests"`
	RoomType       string  `json:"room_type"`
	CheckInDate    string  `json:"check_in_date"`
	CheckOutDate   string  `json:"check_out_date"`
	TotalPrice     float64 `json:"total_price"`
	BookingDate    string  `json:"booking_date"`
}

func BookingToResponse(b *entity.Booking) BookingResponse {
	return BookingResponse{
		ID:             b.ID,
		HotelID:        b.HotelID,
		HotelName:      b.HotelName,
		GuestName:      b.GuestName,
		Email:          b.Email,
		NumberOfGuests: b.NumberOfGuests,
		RoomType:       b.RoomType,
		CheckInDate:    b.CheckInDate,
		CheckOutDate:   b.CheckOutDate,
		TotalPrice:     b.TotalPrice,
		BookingDate:    b.BookingDate,
	}
}

func BookingsToResponse(bookings []*entity.Booking) []BookingResponse {
	out := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		out[i] = BookingToResponse(b)
	}
	return out
}
