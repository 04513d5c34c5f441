package repository

import (
	"context"
	"reflect"
	"testing"

	"hotel-booking/internal/data/entity"

	"go.uber.org/zap"
)

func sampleBooking(id, email string) *entity.Booking {
	return &entity.Booking{
		ID:             id,
		HotelID:        "1",
		HotelName:      "The Taj Mahal Palace",
		GuestName:      "Asha Rao",
		Email:          email,
		NumberOfGuests: 2,
		RoomType:       "Deluxe Room",
		CheckInDate:    "2024-01-01",
		CheckOutDate:   "2024-01-03",
		TotalPrice:     17000,
		BookingDate:    "2024-01-01T10:00:00Z",
	}
}

func TestMemoryRoundTrip(t *testing.T) {
	repo := NewMemoryBookingRepository(zap.NewNop())
	ctx := context.Background()

	b := sampleBooking("b-1", "asha@example.com")
	if err := repo.Append(ctx, b); err != nil {
		t.Fatalf("Append returned error: %v", err)
	}

	all, err := repo.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll returned error: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("ListAll returned %d bookings, want 1", len(all))
	}
	if !reflect.DeepEqual(all[0], b) {
		t.Errorf("round-trip mismatch:\n got %+v\nwant %+v", all[0], b)
	}
}

func TestMemoryRemove(t *testing.T) {
	repo := NewMemoryBookingRepository(zap.NewNop())
	ctx := context.Background()

	b1 := sampleBooking("b-1", "asha@example.com")
	b2 := sampleBooking("b-2", "ravi@example.com")
	for _, b := range []*entity.Booking{b1, b2} {
		if err := repo.Append(ctx, b); err != nil {
			t.Fatalf("Append returned error: %v", err)
		}
	}

	if err := repo.Remove(ctx, "b-1"); err != nil {
		t.Fatalf("Remove returned error: %v", err)
	}

	all, err := repo.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll returned error: %v", err)
	}
	if len(all) != 1 || all[0].ID != "b-2" {
		t.Errorf("after Remove, ListAll = %+v, want only b-2", all)
	}
}

func TestMemoryRemoveUnknownIDIsNoop(t *testing.T) {
	repo := NewMemoryBookingRepository(zap.NewNop())
	ctx := context.Background()

	if err := repo.Remove(ctx, "never-existed"); err != nil {
		t.Errorf("Remove of unknown id returned error: %v", err)
	}

	if err := repo.Append(ctx, sampleBooking("b-1", "asha@example.com")); err != nil {
		t.Fatalf("Append returned error: %v", err)
	}
	if err := repo.Remove(ctx, "b-1"); err != nil {
		t.Fatalf("Remove returned error: %v", err)
	}
	// removing again is still fine
	if err := repo.Remove(ctx, "b-1"); err != nil {
		t.Errorf("second Remove returned error: %v", err)
	}
}

func TestMemoryListByEmail(t *testing.T) {
	repo := NewMemoryBookingRepository(zap.NewNop())
	ctx := context.Background()

	for _, b := range []*entity.Booking{
		sampleBooking("b-1", "asha@example.com"),
		sampleBooking("b-2", "ravi@example.com"),
		sampleBooking("b-3", "asha@example.com"),
	} {
		if err := repo.Append(ctx, b); err != nil {
			t.Fatalf("Append returned error: %v", err)
		}
	}

	bookings, err := repo.ListByEmail(ctx, "asha@example.com")
	if err != nil {
		t.Fatalf("ListByEmail returned error: %v", err)
	}
	if len(bookings) != 2 {
		t.Fatalf("ListByEmail returned %d bookings, want 2", len(bookings))
	}
	for _, b := range bookings {
		if b.Email != "asha@example.com" {
			t.Errorf("ListByEmail returned booking for %q", b.Email)
		}
	}
}

func TestMemoryFindByID(t *testing.T) {
	repo := NewMemoryBookingRepository(zap.NewNop())
	ctx := context.Background()

	b := sampleBooking("b-1", "asha@example.com")
	if err := repo.Append(ctx, b); err != nil {
		t.Fatalf("Append returned error: %v", err)
	}

	found, err := repo.FindByID(ctx, "b-1")
	if err != nil {
		t.Fatalf("FindByID returned error: %v", err)
	}
	if found == nil || found.ID != "b-1" {
		t.Errorf("FindByID = %+v, want b-1", found)
	}

	missing, err := repo.FindByID(ctx, "nope")
	if err != nil {
		t.Fatalf("FindByID returned error: %v", err)
	}
	if missing != nil {
		t.Errorf("FindByID(unknown) = %+v, want nil", missing)
	}
}

// Stored bookings are historical facts; mutating what the caller handed in
// or got back must not change the persisted record.
func TestMemoryStoresCopies(t *testing.T) {
	repo := NewMemoryBookingRepository(zap.NewNop())
	ctx := context.Background()

	b := sampleBooking("b-1", "asha@example.com")
	if err := repo.Append(ctx, b); err != nil {
		t.Fatalf("Append returned error: %v", err)
	}

	b.GuestName = "changed after append"

	all, _ := repo.ListAll(ctx)
	if all[0].GuestName != "Asha Rao" {
		t.Error("mutating the appended value changed the stored record")
	}

	all[0].GuestName = "changed after list"
	again, _ := repo.ListAll(ctx)
	if again[0].GuestName != "Asha Rao" {
		t.Error("mutating a listed value changed the stored record")
	}
}
