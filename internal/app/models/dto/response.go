package dto

import "time"

// APIResponse is the standard success envelope for API endpoints.
type APIResponse struct {
	Success   bool         `json:"success" example:"true"`
	Data      interface{}  `json:"data,omitempty"`
	Count     *int         `json:"count,omitempty"`
	Error     *ErrorDetail `json:"error,omitempty"`
	Timestamp time.Time    `json:"timestamp"`
}

// NewAPIResponse wraps data in the standard success envelope.
func NewAPIResponse(data interface{}) APIResponse {
	return APIResponse{
		Success:   true,
		Data:      data,
		Timestamp: time.Now(),
	}
}

// NewListResponse wraps a list in the standard envelope with its count.
func NewListResponse(data interface{}, count int) APIResponse {
	return APIResponse{
		Success:   true,
		Data:      data,
		Count:     &count,
		Timestamp: time.Now(),
	}
}
