package repository

import (
	"hotel-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Booking BookingRepository
}

// NewRepository wires the Postgres-backed stores.
func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Booking: NewBookingRepository(db, log),
	}
}

// NewMemoryRepository wires the in-memory stores, used in tests and when no
// database is configured.
func NewMemoryRepository(log *zap.Logger) *Repository {
	return &Repository{
		Booking: NewMemoryBookingRepository(log),
	}
}
