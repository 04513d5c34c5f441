package wire

import (
	"hotel-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireHotel(r chi.Router, hotelHandler *adaptor.HotelHandler) {
	r.Route("/api/hotels", func(r chi.Router) {
		// GET /api/hotels/search - search hotels by city and dates
		r.Get("/search", hotelHandler.SearchHotels)

		// GET /api/hotels/filter - narrow a city search by price and rating
		r.Get("/filter", hotelHandler.FilterHotels)

		// GET /api/hotels/recommendations - top rated hotels for a city
		r.Get("/recommendations", hotelHandler.Recommendations)

		// GET /api/hotels/{id} - hotel details
		r.Get("/{id}", hotelHandler.GetHotelByID)
	})

	// GET /api/destinations - cities available in the catalog
	r.Get("/api/destinations", hotelHandler.Destinations)
}
