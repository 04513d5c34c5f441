package usecase

import (
	"hotel-booking/internal/data/catalog"
	"hotel-booking/internal/data/repository"
	"hotel-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Hotel   HotelService
	Booking BookingService
}

func NewService(cat *catalog.Catalog, repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Hotel:   NewHotelService(cat, config, log),
		Booking: NewBookingService(cat, repo, log),
	}
}
