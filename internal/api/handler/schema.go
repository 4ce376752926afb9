package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---
//
// Numeric fields are pointers so a missing field fails "required" instead of
// arriving as zero.

type loginRequest struct {
	FName string `json:"FName" validate:"required"`
}

type registerUserRequest struct {
	FName string `json:"FName" validate:"required"`
	LName string `json:"LName" validate:"required"`
}

type bookTicketRequest struct {
	UserID     *int64   `json:"UserID"     validate:"required,gt=0"`
	EventID    *int64   `json:"EventID"    validate:"required,gt=0"`
	TicketType string   `json:"TicketType" validate:"required"`
	Price      *float64 `json:"Price"      validate:"required,gte=0"`
}

type cancelEventRequest struct {
	EventID *int64 `json:"EventID" validate:"required,gt=0"`
}

type addStallRequest struct {
	StallName string   `json:"StallName" validate:"required"`
	Type      string   `json:"Type"      validate:"required"`
	Rental    *float64 `json:"Rental"    validate:"required,gte=0"`
	VendorID  *int64   `json:"VendorID"  validate:"required,gt=0"`
}

type profileRequest struct {
	UserID *int64 `json:"UserID" validate:"required,gt=0"`
}
