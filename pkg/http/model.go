package http

// ValidationError represents validation error detail.
type ValidationError struct {
	Code    string                 `json:"code,omitempty" example:"ERR_REQUIRED"`
	Field   string                 `json:"field,omitempty" example:"to"`
	Message string                 `json:"message,omitempty" example:"To is required"`
	Params  map[string]interface{} `json:"params,omitempty"`
}

// ErrorBody is the standard error response body for non-data endpoints.
type ErrorBody struct {
	Success bool        `json:"success" example:"false"`
	Error   string      `json:"error"`
	Details interface{} `json:"details,omitempty"`
}
