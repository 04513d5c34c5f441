package repository

import (
	"context"
	"sync"

	"hotel-booking/internal/data/entity"

	"go.uber.org/zap"
)

// memoryBookingRepository keeps bookings in process memory, in append
// order. It backs tests and the no-database demo mode. Stored records are
// copied on the way in and out so callers can never mutate a persisted
// booking.
type memoryBookingRepository struct {
	mu       sync.Mutex
	bookings []entity.Booking
	log      *zap.Logger
}

func NewMemoryBookingRepository(log *zap.Logger) BookingRepository {
	return &memoryBookingRepository{
		log: log.With(zap.String("repository", "booking-memory")),
	}
}

func (r *memoryBookingRepository) Append(_ context.Context, booking *entity.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.bookings = append(r.bookings, *booking)

	r.log.Debug("Booking appended",
		zap.String("booking_id", booking.ID),
		zap.Int("total", len(r.bookings)),
	)
	return nil
}

func (r *memoryBookingRepository) ListAll(_ context.Context) ([]*entity.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*entity.Booking, len(r.bookings))
	for i := range r.bookings {
		b := r.bookings[i]
		out[i] = &b
	}
	return out, nil
}

func (r *memoryBookingRepository) ListByEmail(_ context.Context, email string) ([]*entity.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*entity.Booking
	for i := range r.bookings {
		if r.bookings[i].Email == email {
			b := r.bookings[i]
			out = append(out, &b)
		}
	}
	return out, nil
}

func (r *memoryBookingRepository) FindByID(_ context.Context, id string) (*entity.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.bookings {
		if r.bookings[i].ID == id {
			b := r.bookings[i]
			return &b, nil
		}
	}
	return nil, nil
}

func (r *memoryBookingRepository) Remove(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.bookings {
		if r.bookings[i].ID == id {
			r.bookings = append(r.bookings[:i], r.bookings[i+1:]...)
			break
		}
	}
	return nil
}
