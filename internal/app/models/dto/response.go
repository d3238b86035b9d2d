package dto

import "time"

// APIResponse is the standard response envelope for API endpoints
type APIResponse struct {
	Data      interface{}  `json:"data,omitempty"`
	Error     *ErrorDetail `json:"error,omitempty"`
	Timestamp time.Time    `json:"timestamp"`
}

// NewDataResponse wraps payload data in the standard envelope
func NewDataResponse(data interface{}) APIResponse {
	return APIResponse{
		Data:      data,
		Timestamp: time.Now(),
	}
}

// ListMeta carries the displayed-count information for list endpoints
type ListMeta struct {
	Total    int `json:"total"`
	Filtered int `json:"filtered"`
}

// ListResponse is the payload for catalog list endpoints: the filtered rows
// plus the total/filtered counts the toolbar counter displays.
type ListResponse struct {
	Rows interface{} `json:"rows"`
	Meta ListMeta    `json:"meta"`
}
