package response

import (
	"hotel-booking/internal/data/entity"
)

type HotelResponse struct {
	ID            string             `json:"id"`
	Name          string             `json:"name"`
	Description   string             `json:"description"`
	Image         string             `json:"image"`
	Images        []string           `json:"images"`
	PricePerNight float64            `json:"price_per_night"`
	Rating        float64            `json:"rating"`
	City          string             `json:"city"`
	RoomTypes     []RoomTypeResponse `json:"room_types"`
}

type RoomTypeResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Capacity int     `json:"capacity"`
}

// Helper converters
func HotelToResponse(h *entity.Hotel) HotelResponse {
	roomTypes := make([]RoomTypeResponse, len(h.RoomTypes))
	for i, rt := range h.RoomTypes {
		roomTypes[i] = RoomTypeResponse{
			ID:       rt.ID,
			Name:     rt.Name,
			Price:    rt.Price,
			Capacity: rt.Capacity,
		}
	}

	return HotelResponse{
		ID:            h.ID,
		Name:          h.Name,
		Description:   h.Description,
		Image:         h.Image,
		Images:        h.Images,
		PricePerNight: h.PricePerNight,
		Rating:        h.Rating,
		City:          h.City,
		RoomTypes:     roomTypes,
	}
}

func HotelsToResponse(hotels []entity.Hotel) []HotelResponse {
	out := make([]HotelResponse, len(hotels))
	for i := range hotels {
		out[i] = HotelToResponse(&hotels[i])
	}
	return out
}
