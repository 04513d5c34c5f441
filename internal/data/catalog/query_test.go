package catalog

import (
	"strings"
	"testing"

	"hotel-booking/internal/data/entity"
)

func TestSearchByCityIncludesEveryHotelOfThatCity(t *testing.T) {
	cat := Load()

	for _, h := range cat.List() {
		results := cat.SearchByCity(h.City)

		found := false
		for _, r := range results {
			if r.ID == h.ID {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("SearchByCity(%q) missing hotel %s", h.City, h.ID)
		}
	}
}

func TestSearchByCityCaseInsensitiveSubstring(t *testing.T) {
	cat := Load()

	tests := []struct {
		query string
		want  int
	}{
		{"Mumbai", 3},
		{"mumbai", 3},
		{"MUMBAI", 3},
		{"mum", 3},
		{"pune", 3},
		{"Atlantis", 0},
	}

	for _, tt := range tests {
		if got := len(cat.SearchByCity(tt.query)); got != tt.want {
			t.Errorf("SearchByCity(%q) returned %d hotels, want %d", tt.query, got, tt.want)
		}
	}
}

// The engine is deliberately permissive: every city contains the empty
// substring, so an empty query matches the whole catalog.
func TestSearchByCityEmptyMatchesAll(t *testing.T) {
	cat := Load()

	if got, want := len(cat.SearchByCity("")), len(cat.List()); got != want {
		t.Errorf("SearchByCity(\"\") returned %d hotels, want all %d", got, want)
	}
}

func TestFilterMaxPrice(t *testing.T) {
	cat := Load()

	maxPrice := 8000.0
	for _, h := range cat.Filter("Mumbai", &maxPrice, nil) {
		if h.PricePerNight > maxPrice {
			t.Errorf("hotel %s price %v exceeds max %v", h.ID, h.PricePerNight, maxPrice)
		}
	}
}

// Tightening the price cap can only shrink the result set.
func TestFilterMaxPriceMonotonic(t *testing.T) {
	cat := Load()

	loose, tight := 10000.0, 7500.0
	looseResults := cat.Filter("Delhi", &loose, nil)
	tightResults := cat.Filter("Delhi", &tight, nil)

	if len(tightResults) > len(looseResults) {
		t.Fatalf("tighter filter returned more hotels (%d > %d)", len(tightResults), len(looseResults))
	}

	looseIDs := make(map[string]bool)
	for _, h := range looseResults {
		looseIDs[h.ID] = true
	}
	for _, h := range tightResults {
		if !looseIDs[h.ID] {
			t.Errorf("hotel %s in tight results but not loose results", h.ID)
		}
	}
}

func TestFilterMinRating(t *testing.T) {
	cat := Load()

	minRating := 4.7
	for _, h := range cat.Filter("Pune", nil, &minRating) {
		if h.Rating < minRating {
			t.Errorf("hotel %s rating %v below min %v", h.ID, h.Rating, minRating)
		}
	}
}

func TestFilterConjunctive(t *testing.T) {
	cat := Load()

	maxPrice, minRating := 9000.0, 4.7
	for _, h := range cat.Filter("Mumbai", &maxPrice, &minRating) {
		if h.PricePerNight > maxPrice || h.Rating < minRating {
			t.Errorf("hotel %s (%v, %v) violates conjunctive filter", h.ID, h.PricePerNight, h.Rating)
		}
	}
}

func TestFilterAbsentFiltersAreNoOps(t *testing.T) {
	cat := Load()

	filtered := cat.Filter("Mumbai", nil, nil)
	searched := cat.SearchByCity("Mumbai")

	if len(filtered) != len(searched) {
		t.Errorf("Filter with no filters returned %d, SearchByCity returned %d", len(filtered), len(searched))
	}
}

func TestRecommendationsForCity(t *testing.T) {
	cat := Load()

	recs := cat.RecommendationsForCity("Pune", 3)
	if len(recs) > 3 {
		t.Fatalf("got %d recommendations, want at most 3", len(recs))
	}

	for i, h := range recs {
		if !strings.Contains(strings.ToLower(h.City), "pune") {
			t.Errorf("recommendation %s city = %q, want Pune match", h.ID, h.City)
		}
		if i > 0 && recs[i-1].Rating < h.Rating {
			t.Errorf("recommendations not sorted descending: %v before %v", recs[i-1].Rating, h.Rating)
		}
	}
}

// Equal ratings keep catalog order.
func TestRecommendationsStableOnTies(t *testing.T) {
	cat := New([]entity.Hotel{
		{ID: "a", City: "Pune", Rating: 4.5},
		{ID: "b", City: "Pune", Rating: 4.8},
		{ID: "c", City: "Pune", Rating: 4.8},
		{ID: "d", City: "Pune", Rating: 4.8},
	})

	recs := cat.RecommendationsForCity("Pune", 4)
	want := []string{"b", "c", "d", "a"}
	for i, id := range want {
		if recs[i].ID != id {
			t.Fatalf("recommendation %d = %s, want %s (ties keep catalog order)", i, recs[i].ID, id)
		}
	}
}

func TestRecommendationsDefaultLimit(t *testing.T) {
	cat := Load()

	if got := len(cat.RecommendationsForCity("", 0)); got != DefaultRecommendationLimit {
		t.Errorf("limit 0 returned %d results, want default %d", got, DefaultRecommendationLimit)
	}
}

func TestQueriesDoNotReorderCatalog(t *testing.T) {
	cat := Load()

	before := cat.List()
	cat.RecommendationsForCity("", 14)
	after := cat.List()

	for i := range before {
		if before[i].ID != after[i].ID {
			t.Fatalf("catalog reordered at %d: %s != %s", i, before[i].ID, after[i].ID)
		}
	}
}
