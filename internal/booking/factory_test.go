package booking

import (
	"errors"
	"testing"
	"time"
)

func TestNewBooking(t *testing.T) {
	hotel := testHotel()
	guest, err := Validate(hotel, GuestInput{
		GuestName:      "Asha Rao",
		Email:          "asha@example.com",
		RoomTypeID:     "1", // Deluxe Room, 8500/night
		NumberOfGuests: 2,
	})
	if err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}

	b, err := New(hotel, guest, "2024-01-01", "2024-01-03")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	if b.TotalPrice != 17000 {
		t.Errorf("TotalPrice = %v, want 17000 (8500 x 2 nights)", b.TotalPrice)
	}
	if b.ID == "" {
		t.Error("ID is empty, want a generated id")
	}
	if b.HotelID != hotel.ID || b.HotelName != hotel.Name {
		t.Errorf("hotel fields = (%q, %q), want denormalized copies of (%q, %q)",
			b.HotelID, b.HotelName, hotel.ID, hotel.Name)
	}
	if b.RoomType != "Deluxe Room" {
		t.Errorf("RoomType = %q, want denormalized name %q", b.RoomType, "Deluxe Room")
	}
	if b.CheckInDate != "2024-01-01" || b.CheckOutDate != "2024-01-03" {
		t.Errorf("dates = (%q, %q), want inputs preserved", b.CheckInDate, b.CheckOutDate)
	}

	if _, err := time.Parse(time.RFC3339, b.BookingDate); err != nil {
		t.Errorf("BookingDate %q is not RFC 3339: %v", b.BookingDate, err)
	}
}

func TestNewBookingDistinctIDs(t *testing.T) {
	hotel := testHotel()
	guest, err := Validate(hotel, validInput())
	if err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		b, err := New(hotel, guest, "2024-01-01", "2024-01-03")
		if err != nil {
			t.Fatalf("New returned error: %v", err)
		}
		if seen[b.ID] {
			t.Fatalf("duplicate booking id %q", b.ID)
		}
		seen[b.ID] = true
	}
}

func TestNewBookingBadDates(t *testing.T) {
	hotel := testHotel()
	guest, err := Validate(hotel, validInput())
	if err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}

	if _, err := New(hotel, guest, "2024-01-03", "2024-01-01"); !errors.Is(err, ErrInvalidDateRange) {
		t.Errorf("New with reversed dates: error = %v, want ErrInvalidDateRange", err)
	}
}
