package entity

// Hotel is a catalog record. Hotels are loaded once at startup and never
// mutated afterwards; every query returns them as read-only values.
type Hotel struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Description   string     `json:"description"`
	Image         string     `json:"image"`
	Images        []string   `json:"images"`
	PricePerNight float64    `json:"price_per_night"`
	Rating        float64    `json:"rating"`
	City          string     `json:"city"`
	RoomTypes     []RoomType `json:"room_types"`
}

// RoomType is a bookable room category. IDs are unique within the owning
// hotel only.
type RoomType struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Capacity int     `json:"capacity"`
}

// RoomTypeByID resolves a room type id on this hotel. Returns nil when the
// id does not match any room type.
func (h *Hotel) RoomTypeByID(id string) *RoomType {
	for i := range h.RoomTypes {
		if h.RoomTypes[i].ID == id {
			return &h.RoomTypes[i]
		}
	}
	return nil
}
