package model

// ErrorResponse for consistent error handling
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

func (e *ErrorDetail) Error() string {
	return e.Code + ": " + e.Message
}

type ListMinisteriosResponse struct {
	Items []*Ministerio `json:"items"`
	Count int           `json:"count"`
}

type HealthResponse struct {
	Status     string `json:"status"`
	Connection string `json:"connection"`
}
