package models

// Fixed messages returned to clients
const (
	MsgRestaurantNotFound = "Restaurant not found"
	MsgValidationErrors   = "validation errors"
)

// ErrorResponse is the body returned for lookup and server failures
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationErrorResponse is the body returned when a create payload is rejected.
// It carries no per-field detail.
type ValidationErrorResponse struct {
	Errors []string `json:"errors"`
}

// NewErrorResponse creates an ErrorResponse with the given message
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Error: message}
}

// NewValidationErrorResponse creates the generic validation failure body
func NewValidationErrorResponse() ValidationErrorResponse {
	return ValidationErrorResponse{Errors: []string{MsgValidationErrors}}
}
