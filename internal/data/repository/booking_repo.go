package repository

import (
	"context"
	"fmt"

	"hotel-booking/internal/data/entity"
	"hotel-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// BookingRepository is the persisted booking collection. Append is called
// exactly once per confirmed booking, Remove is idempotent, and ListAll
// makes no ordering promise beyond what the store last wrote.
type BookingRepository interface {
	Append(ctx context.Context, booking *entity.Booking) error
	ListAll(ctx context.Context) ([]*entity.Booking, error)
	ListByEmail(ctx context.Context, email string) ([]*entity.Booking, error)
	FindByID(ctx context.Context, id string) (*entity.Booking, error)
	Remove(ctx context.Context, id string) error
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

const bookingColumns = `id, hotel_id, hotel_name, guest_name, email, number_of_guests, room_type, check_in_date, check_out_date, total_price, booking_date`

func (r *bookingRepository) Append(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (` + bookingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.Exec(ctx, query,
		booking.ID,
		booking.HotelID,
		booking.HotelName,
		booking.GuestName,
		booking.Email,
		booking.NumberOfGuests,
		booking.RoomType,
		booking.CheckInDate,
		booking.CheckOutDate,
		booking.TotalPrice,
		booking.BookingDate,
	)

	if err != nil {
		r.log.Error("Failed to append booking",
			zap.Error(err),
			zap.String("booking_id", booking.ID),
			zap.String("hotel_id", booking.HotelID),
		)
		return fmt.Errorf("append booking %s: %w", booking.ID, err)
	}

	return nil
}

func (r *bookingRepository) ListAll(ctx context.Context) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		ORDER BY booking_date
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list bookings", zap.Error(err))
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

func (r *bookingRepository) ListByEmail(ctx context.Context, email string) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE email = $1
		ORDER BY booking_date
	`

	rows, err := r.db.Query(ctx, query, email)
	if err != nil {
		r.log.Error("Failed to list bookings by email",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("list bookings by email: %w", err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

func (r *bookingRepository) FindByID(ctx context.Context, id string) (*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE id = $1
	`

	var b entity.Booking
	err := r.db.QueryRow(ctx, query, id).Scan(
		&b.ID,
		&b.HotelID,
		&b.HotelName,
		&b.GuestName,
		&b.Email,
		&b.NumberOfGuests,
		&b.RoomType,
		&b.CheckInDate,
		&b.CheckOutDate,
		&b.TotalPrice,
		&b.BookingDate,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id, err)
	}

	return &b, nil
}

// Remove deletes by id. Removing an unknown id is not an error.
func (r *bookingRepository) Remove(ctx context.Context, id string) error {
	query := `DELETE FROM bookings WHERE id = $1`

	_, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to remove booking",
			zap.Error(err),
			zap.String("booking_id", id),
		)
		return fmt.Errorf("remove booking %s: %w", id, err)
	}

	return nil
}

func scanBookings(rows pgx.Rows) ([]*entity.Booking, error) {
	var bookings []*entity.Booking
	for rows.Next() {
		var b entity.Booking
		if err := rows.Scan(
			&b.ID,
			&b.HotelID,
			&b.HotelName,
			&b.GuestName,
			&b.Email,
			&b.NumberOfGuests,
			&b.RoomType,
			&b.CheckInDate,
			&b.CheckOutDate,
			&b.TotalPrice,
			&b.BookingDate,
		); err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		bookings = append(bookings, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate bookings: %w", err)
	}

	return bookings, nil
}
