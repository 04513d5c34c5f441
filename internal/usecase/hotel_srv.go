package usecase

import (
	"context"
	"fmt"

	"hotel-booking/internal/booking"
	"hotel-booking/internal/data/catalog"
	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/dto/response"
	"hotel-booking/pkg/utils"

	"go.uber.org/zap"
)

type HotelService interface {
	// Search and browse
	SearchHotels(ctx context.Context, params entity.SearchParams) ([]response.HotelResponse, error)
	FilterHotels(ctx context.Context, city string, filter entity.FilterParams) ([]response.HotelResponse, error)
	GetHotelByID(ctx context.Context, id string) (*response.HotelResponse, error)

	// Discovery
	Recommendations(ctx context.Context, city string, limit int) ([]response.HotelResponse, error)
	Destinations(ctx context.Context) ([]string, error)
}

type hotelService struct {
	catalog *catalog.Catalog
	config  *utils.Config
	log     *zap.Logger
}

func NewHotelService(cat *catalog.Catalog, config *utils.Config, log *zap.Logger) HotelService {
	return &hotelService{
		catalog: cat,
		config:  config,
		log:     log.With(zap.String("service", "hotel")),
	}
}

// SearchHotels runs a city search. The query engine itself is permissive
// (empty city matches everything), so the caller contract lives here: city
// must be non-empty and check-out must be after check-in.
func (s *hotelService) SearchHotels(ctx context.Context, params entity.SearchParams) ([]response.HotelResponse, error) {
	if params.City == "" {
		return nil, fmt.Errorf("search: city is required: %w", booking.ErrInvalidArgument)
	}

	if _, err := booking.NightsBetween(params.CheckInDate, params.CheckOutDate); err != nil {
		s.log.Warn("Search rejected: bad date range",
			zap.String("check_in", params.CheckInDate),
			zap.String("check_out", params.CheckOutDate),
		)
		return nil, fmt.Errorf("search: %w", err)
	}

	hotels := s.catalog.SearchByCity(params.City)

	s.log.Info("Hotel search",
		zap.String("city", params.City),
		zap.Int("results", len(hotels)),
	)

	return response.HotelsToResponse(hotels), nil
}

func (s *hotelService) FilterHotels(ctx context.Context, city string, filter entity.FilterParams) ([]response.HotelResponse, error) {
	if city == "" {
		return nil, fmt.Errorf("filter: city is required: %w", booking.ErrInvalidArgument)
	}

	hotels := s.catalog.Filter(city, filter.MaxPrice, filter.MinRating)

	s.log.Info("Hotel filter",
		zap.String("city", city),
		zap.Float64p("max_price", filter.MaxPrice),
		zap.Float64p("min_rating", filter.MinRating),
		zap.Int("results", len(hotels)),
	)

	return response.HotelsToResponse(hotels), nil
}

func (s *hotelService) GetHotelByID(ctx context.Context, id string) (*response.HotelResponse, error) {
	hotel := s.catalog.GetByID(id)
	if hotel == nil {
		return nil, fmt.Errorf("hotel %s: %w", id, booking.ErrHotelNotFound)
	}

	resp := response.HotelToResponse(hotel)
	return &resp, nil
}

func (s *hotelService) Recommendations(ctx context.Context, city string, limit int) ([]response.HotelResponse, error) {
	if city == "" {
		return nil, fmt.Errorf("recommendations: city is required: %w", booking.ErrInvalidArgument)
	}

	if limit <= 0 {
		limit = s.config.Search.RecommendationLimit
	}

	hotels := s.catalog.RecommendationsForCity(city, limit)
	return response.HotelsToResponse(hotels), nil
}

func (s *hotelService) Destinations(ctx context.Context) ([]string, error) {
	return s.catalog.Cities(), nil
}
