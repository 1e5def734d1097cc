package dto

// AnalyzeRequest is the body of POST /api/analyze.
type AnalyzeRequest struct {
	UserID      string  `json:"userId" validate:"required,userref"`
	ImageBase64 string  `json:"imageBase64" validate:"required,min=10"`
	Notes       *string `json:"notes"`
}

// CreateAppointmentRequest is the body of POST /api/appointments.
type CreateAppointmentRequest struct {
	UserID        string  `json:"userId" validate:"required,userref"`
	Dermatologist string  `json:"dermatologist" validate:"required"`
	Location      string  `json:"location" validate:"required"`
	StartTime     string  `json:"startTime" validate:"required,isodatetime"`
	EndTime       string  `json:"endTime" validate:"required,isodatetime"`
	Notes         *string `json:"notes"`
}

type RecommendationRequest struct {
	Concerns []string `json:"concerns"`
}

// ProvidersRequest is the body of the placeholder provider search.
type ProvidersRequest struct {
	Location *string `json:"location"`
}

// DemoProductsRequest is the body of the placeholder product search.
type DemoProductsRequest struct {
	Query    *string  `json:"query"`
	Concerns []string `json:"concerns"`
}

type UpsertConcernRequest struct {
	Name        string  `json:"name" validate:"required,max=100"`
	Description *string `json:"description"`
}

type UpsertProductRequest struct {
	Name          string   `json:"name" validate:"required,max=255"`
	Brand         string   `json:"brand" validate:"required,max=255"`
	PriceCents    int      `json:"priceCents" validate:"gte=0"`
	Currency      string   `json:"currency" validate:"required,len=3"`
	ProductURL    string   `json:"productUrl" validate:"required,url"`
	ImageURL      *string  `json:"imageUrl" validate:"omitempty,url"`
	Retailer      string   `json:"retailer" validate:"required"`
	Ingredients   *string  `json:"ingredients"`
	RatingAverage *float64 `json:"ratingAverage" validate:"omitempty,gte=0,lte=5"`
	RatingCount   int      `json:"ratingCount" validate:"gte=0"`
	SuitableFor   []string `json:"suitableFor"`
}
