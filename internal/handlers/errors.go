package handlers

// ErrorResponse is the JSON error body returned by every endpoint. The
// message never leaks internal detail.
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Invalid request
	Message string `json:"message"`
}
