package catalog

import (
	"sort"
	"strings"

	"hotel-booking/internal/data/entity"
)

// DefaultRecommendationLimit caps recommendation results when the caller
// does not ask for a specific count.
const DefaultRecommendationLimit = 3

// SearchByCity returns every hotel whose city contains the given string,
// case-insensitively. An empty string matches every hotel; rejecting empty
// input is the caller's job, the engine stays permissive on purpose.
func (c *Catalog) SearchByCity(city string) []entity.Hotel {
	needle := strings.ToLower(city)

	var matched []entity.Hotel
	for i := range c.hotels {
		if strings.Contains(strings.ToLower(c.hotels[i].City), needle) {
			matched = append(matched, c.hotels[i])
		}
	}
	return matched
}

// Filter narrows a city search by optional maximum price and minimum
// rating. Filters are conjunctive; a nil filter is a no-op.
func (c *Catalog) Filter(city string, maxPrice, minRating *float64) []entity.Hotel {
	hotels := c.SearchByCity(city)

	if maxPrice != nil {
		kept := hotels[:0]
		for _, h := range hotels {
			if h.PricePerNight <= *maxPrice {
				kept = append(kept, h)
			}
		}
		hotels = kept
	}

	if minRating != nil {
		kept := hotels[:0]
		for _, h := range hotels {
			if h.Rating >= *minRating {
				kept = append(kept, h)
			}
		}
		hotels = kept
	}

	return hotels
}

// RecommendationsForCity returns the top rated hotels for a city, at most
// limit entries, ties keeping catalog order. limit <= 0 falls back to
// DefaultRecommendationLimit.
func (c *Catalog) RecommendationsForCity(city string, limit int) []entity.Hotel {
	if limit <= 0 {
		limit = DefaultRecommendationLimit
	}

	hotels := c.SearchByCity(city)
	sort.SliceStable(hotels, func(i, j int) bool {
		return hotels[i].Rating > hotels[j].Rating
	})

	if len(hotels) > limit {
		hotels = hotels[:limit]
	}
	return hotels
}
