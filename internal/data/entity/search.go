package entity

// SearchParams carries the search form values from the caller. Dates are
// calendar dates in YYYY-MM-DD form; check-out strictly after check-in is
// the caller's contract, the query engine does not re-check it.
type SearchParams struct {
	City         string `json:"city"`
	CheckInDate  string `json:"check_in_date"`
	CheckOutDate string `json:"check_out_date"`
}

// FilterParams are optional refinements applied on top of a city search.
// A nil field is a no-op, not a zero-match.
type FilterParams struct {
	MaxPrice  *float64 `json:"max_price,omitempty"`
	MinRating *float64 `json:"min_rating,omitempty"`
}
