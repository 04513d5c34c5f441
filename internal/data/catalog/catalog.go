package catalog

import (
	"hotel-booking/internal/data/entity"
)

// Catalog is the static set of hotels the service ships with. It is
// read-only after construction; there are no mutation operations.
type Catalog struct {
	hotels []entity.Hotel
}

// New builds a catalog from the given hotels, preserving their order.
func New(hotels []entity.Hotel) *Catalog {
	return &Catalog{hotels: hotels}
}

// Load returns the catalog backed by the built-in seed data.
func Load() *Catalog {
	return New(seedHotels())
}

// List returns the full catalog in insertion order. The returned slice is a
// copy so callers cannot reorder the catalog itself.
func (c *Catalog) List() []entity.Hotel {
	out := make([]entity.Hotel, len(c.hotels))
	copy(out, c.hotels)
	return out
}

// GetByID returns the hotel with the given id, or nil when absent.
func (c *Catalog) GetByID(id string) *entity.Hotel {
	for i := range c.hotels {
		if c.hotels[i].ID == id {
			return &c.hotels[i]
		}
	}
	return nil
}

// Cities returns the distinct cities in the catalog, first-seen order.
func (c *Catalog) Cities() []string {
	seen := make(map[string]bool, len(c.hotels))
	var cities []string
	for i := range c.hotels {
		city := c.hotels[i].City
		if !seen[city] {
			seen[city] = true
			cities = append(cities, city)
		}
	}
	return cities
}
