package wire

import (
	"hotel-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireBooking(r chi.Router, bookingHandler *adaptor.BookingHandler) {
	// POST /api/booking - create a new booking
	r.Post("/api/booking", bookingHandler.CreateBooking)

	r.Route("/api/bookings", func(r chi.Router) {
		// GET /api/bookings - saved bookings, optionally ?email=
		r.Get("/", bookingHandler.GetBookings)

		// GET /api/bookings/{id} - booking details
		r.Get("/{id}", bookingHandler.GetBookingByID)

		// DELETE /api/bookings/{id} - cancel a booking (idempotent)
		r.Delete("/{id}", bookingHandler.CancelBooking)
	})
}
