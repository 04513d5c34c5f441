package request

type SearchHotelsRequest struct {
	City         string `json:"city" validate:"required"`
	CheckInDate  string `json:"check_in_date" validate:"required,datetime=2006-01-02"`
	CheckOutDate string `json:"check_out_date" validate:"required,datetime=2006-01-02"`
}

type FilterHotelsRequest struct {
	City      string   `json:"city" validate:"required"`
	MaxPrice  *float64 `json:"max_price,omitempty" validate:"omitempty,gt=0"`
	MinRating *float64 `json:"min_rating,omitempty" validate:"omitempty,gte=0,lte=5"`
}

type RecommendationsRequest struct {
	City  string `json:"city" validate:"required"`
	Limit int    `json:"limit" validate:"omitempty,min=1,max=20"`
}
