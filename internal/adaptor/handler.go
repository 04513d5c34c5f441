package adaptor

import (
	"hotel-booking/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Hotel   *HotelHandler
	Booking *BookingHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Hotel:   NewHotelHandler(service.Hotel, log),
		Booking: NewBookingHandler(service.Booking, log),
	}
}
