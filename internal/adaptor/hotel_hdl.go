package adaptor

import (
	"errors"
	"net/http"

	"hotel-booking/internal/booking"
	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/usecase"
	"hotel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type HotelHandler struct {
	service usecase.HotelService
	log     *zap.Logger
}

func NewHotelHandler(service usecase.HotelService, log *zap.Logger) *HotelHandler {
	return &HotelHandler{
		service: service,
		log:     log.With(zap.String("handler", "hotel")),
	}
}

// SearchHotels handles GET /api/hotels/search
func (h *HotelHandler) SearchHotels(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := request.SearchHotelsRequest{
		City:         query.Get("city"),
		CheckInDate:  query.Get("check_in_date"),
		CheckOutDate: query.Get("check_out_date"),
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	hotels, err := h.service.SearchHotels(r.Context(), entity.SearchParams{
		City:         req.City,
		CheckInDate:  req.CheckInDate,
		CheckOutDate: req.CheckOutDate,
	})
	if err != nil {
		h.handleServiceError(w, err, "search hotels")
		return
	}

	utils.ResponseSuccess(w, "success", hotels)
}

// FilterHotels handles GET /api/hotels/filter
func (h *HotelHandler) FilterHotels(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := request.FilterHotelsRequest{
		City:      query.Get("city"),
		MaxPrice:  utils.ParseFloatPtr(query.Get("max_price")),
		MinRating: utils.ParseFloatPtr(query.Get("min_rating")),
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	hotels, err := h.service.FilterHotels(r.Context(), req.City, entity.FilterParams{
		MaxPrice:  req.MaxPrice,
		MinRating: req.MinRating,
	})
	if err != nil {
		h.handleServiceError(w, err, "filter hotels")
		return
	}

	utils.ResponseSuccess(w, "success", hotels)
}

// GetHotelByID handles GET /api/hotels/{id}
func (h *HotelHandler) GetHotelByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	hotel, err := h.service.GetHotelByID(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err, "get hotel")
		return
	}

	utils.ResponseSuccess(w, "success", hotel)
}

// Recommendations handles GET /api/hotels/recommendations
func (h *HotelHandler) Recommendations(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := request.RecommendationsRequest{
		City:  query.Get("city"),
		Limit: utils.ParseInt(query.Get("limit"), 0),
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	hotels, err := h.service.Recommendations(r.Context(), req.City, req.Limit)
	if err != nil {
		h.handleServiceError(w, err, "get recommendations")
		return
	}

	utils.ResponseSuccess(w, "success", hotels)
}

// Destinations handles GET /api/destinations
func (h *HotelHandler) Destinations(w http.ResponseWriter, r *http.Request) {
	cities, err := h.service.Destinations(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "get destinations")
		return
	}

	utils.ResponseSuccess(w, "success", cities)
}

func (h *HotelHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	switch {
	case errors.Is(err, booking.ErrHotelNotFound):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, booking.ErrInvalidDateRange),
		errors.Is(err, booking.ErrInvalidArgument):
		h.log.Warn(operation+" failed - bad input", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	default:
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
