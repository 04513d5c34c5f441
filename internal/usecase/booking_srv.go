package usecase

import (
	"context"
	"fmt"

	"hotel-booking/internal/booking"
	"hotel-booking/internal/data/catalog"
	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/dto/response"

	"go.uber.org/zap"
)

type BookingService interface {
	CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	GetBookings(ctx context.Context, email string) ([]response.BookingResponse, error)
	GetBookingByID(ctx context.Context, id string) (*response.BookingResponse, error)
	CancelBooking(ctx context.Context, id string) error
}

type bookingService struct {
	catalog *catalog.Catalog
	repo    *repository.Repository
	log     *zap.Logger
}

func NewBookingService(cat *catalog.Catalog, repo *repository.Repository, log *zap.Logger) BookingService {
	return &bookingService{
		catalog: cat,
		repo:    repo,
		log:     log.With(zap.String("service", "booking")),
	}
}

// CreateBooking runs the full booking flow in its fixed order: resolve the
// hotel, validate the guest input, price the stay, build the record, then
// persist it. The first error wins; nothing is defaulted or retried, and a
// failed append means the booking was not confirmed.
func (s *bookingService) CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	hotel := s.catalog.GetByID(req.HotelID)
	if hotel == nil {
		return nil, fmt.Errorf("hotel %s: %w", req.HotelID, booking.ErrHotelNotFound)
	}

	guest, err := booking.Validate(hotel, booking.GuestInput{
		GuestName:      req.GuestName,
		Email:          req.Email,
		RoomTypeID:     req.RoomTypeID,
		NumberOfGuests: req.NumberOfGuests,
	})
	if err != nil {
		s.log.Warn("Booking validation failed",
			zap.Error(err),
			zap.String("hotel_id", req.HotelID),
		)
		return nil, fmt.Errorf("validate booking: %w", err)
	}

	record, err := booking.New(hotel, guest, req.CheckInDate, req.CheckOutDate)
	if err != nil {
		s.log.Warn("Booking pricing failed",
			zap.Error(err),
			zap.String("hotel_id", req.HotelID),
			zap.String("check_in", req.CheckInDate),
			zap.String("check_out", req.CheckOutDate),
		)
		return nil, fmt.Errorf("price booking: %w", err)
	}

	if err := s.repo.Booking.Append(ctx, record); err != nil {
		s.log.Error("Failed to persist booking",
			zap.Error(err),
			zap.String("booking_id", record.ID),
		)
		return nil, fmt.Errorf("persist booking: %w", err)
	}

	s.log.Info("Booking created",
		zap.String("booking_id", record.ID),
		zap.String("hotel_id", record.HotelID),
		zap.String("room_type", record.RoomType),
		zap.Float64("total_price", record.TotalPrice),
	)

	resp := response.BookingToResponse(record)
	return &resp, nil
}

// GetBookings lists persisted bookings, optionally narrowed to one guest
// email.
func (s *bookingService) GetBookings(ctx context.Context, email string) ([]response.BookingResponse, error) {
	var (
		bookings []*entity.Booking
		err      error
	)

	if email != "" {
		bookings, err = s.repo.Booking.ListByEmail(ctx, email)
	} else {
		bookings, err = s.repo.Booking.ListAll(ctx)
	}
	if err != nil {
		s.log.Error("Failed to list bookings", zap.Error(err), zap.String("email", email))
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	return response.BookingsToResponse(bookings), nil
}

func (s *bookingService) GetBookingByID(ctx context.Context, id string) (*response.BookingResponse, error) {
	record, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find booking: %w", err)
	}
	if record == nil {
		return nil, fmt.Errorf("booking %s not found", id)
	}

	resp := response.BookingToResponse(record)
	return &resp, nil
}

// CancelBooking removes a booking by id. Cancelling an unknown id is a
// no-op, matching the store's idempotent remove contract.
func (s *bookingService) CancelBooking(ctx context.Context, id string) error {
	if err := s.repo.Booking.Remove(ctx, id); err != nil {
		s.log.Error("Failed to cancel booking", zap.Error(err), zap.String("booking_id", id))
		return fmt.Errorf("cancel booking %s: %w", id, err)
	}

	s.log.Info("Booking cancelled", zap.String("booking_id", id))
	return nil
}
