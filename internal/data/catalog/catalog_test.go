package catalog

import (
	"testing"
)

func TestListPreservesInsertionOrder(t *testing.T) {
	cat := Load()

	hotels := cat.List()
	if len(hotels) != 14 {
		t.Fatalf("List returned %d hotels, want 14", len(hotels))
	}

	for i, h := range hotels {
		if h.ID == "" || h.Name == "" || h.City == "" {
			t.Errorf("hotel %d has empty required fields: %+v", i, h)
		}
		if len(h.RoomTypes) == 0 {
			t.Errorf("hotel %s has no room types", h.ID)
		}
		if h.PricePerNight <= 0 {
			t.Errorf("hotel %s has non-positive price %v", h.ID, h.PricePerNight)
		}
		if h.Rating < 0 || h.Rating > 5 {
			t.Errorf("hotel %s has rating %v outside 0..5", h.ID, h.Rating)
		}
	}

	if hotels[0].Name != "The Taj Mahal Palace" {
		t.Errorf("first hotel = %q, want catalog insertion order preserved", hotels[0].Name)
	}
}

func TestGetByID(t *testing.T) {
	cat := Load()

	hotel := cat.GetByID("1")
	if hotel == nil {
		t.Fatal("GetByID(1) = nil, want hotel")
	}
	if hotel.Name != "The Taj Mahal Palace" {
		t.Errorf("GetByID(1).Name = %q, want %q", hotel.Name, "The Taj Mahal Palace")
	}

	if got := cat.GetByID("does-not-exist"); got != nil {
		t.Errorf("GetByID(unknown) = %+v, want nil", got)
	}
}

func TestCitiesDistinctFirstSeen(t *testing.T) {
	cat := Load()

	cities := cat.Cities()
	seen := make(map[string]bool)
	for _, city := range cities {
		if seen[city] {
			t.Errorf("city %q appears twice", city)
		}
		seen[city] = true
	}

	if len(cities) == 0 || cities[0] != "Mumbai" {
		t.Errorf("Cities() = %v, want Mumbai first (catalog order)", cities)
	}
}

func TestListReturnsCopy(t *testing.T) {
	cat := Load()

	first := cat.List()
	first[0].Name = "mutated"

	if cat.List()[0].Name == "mutated" {
		t.Error("mutating List result changed the catalog")
	}
}
