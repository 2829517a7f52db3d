package global

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type APIResponse struct {
	Success bool              `json:"success"`
	Error   string            `json:"error,omitempty"`
	Message string            `json:"message,omitempty"`
	Errors  []ValidationError `json:"errors,omitempty"`
}

// ErrorResponse builds the error envelope: a short error title, a human
// readable message and optional per-field details.
func ErrorResponse(title, message string, errors []ValidationError) APIResponse {
	return APIResponse{
		Success: false,
		Error:   title,
		Message: message,
		Errors:  errors,
	}
}
