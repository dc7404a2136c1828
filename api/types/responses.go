package types

import "github.com/ameen-roayan/stremio-cleanstream/internal/models"

// Status constants for API responses
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// BaseResponse contains fields common to all API responses
type BaseResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// SegmentsResponse for segment lists
type SegmentsResponse struct {
	BaseResponse
	TitleID  string           `json:"titleId"`
	Segments []models.Segment `json:"segments"`
	Count    int              `json:"count"`
}

// SingleSegmentResponse for getting a single segment
type SingleSegmentResponse struct {
	BaseResponse
	Segment *models.Segment `json:"segment"`
}

// ImportResponse reports the outcome of a bulk document import
type ImportResponse struct {
	BaseResponse
	TitleID  string `json:"titleId"`
	Imported int    `json:"imported"`
}

// ErrorResponse for detailed error information
type ErrorResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Error   string      `json:"error,omitempty"`   // Error code/type
	Details interface{} `json:"details,omitempty"` // Additional error details
}

// HealthResponse for health check endpoint
type HealthResponse struct {
	BaseResponse
	Version  string                 `json:"version,omitempty"`
	Services map[string]interface{} `json:"services,omitempty"`
}
