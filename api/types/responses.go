package types

import "time"

// Status constants for API responses
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// BaseResponse contains fields common to all API responses
type BaseResponse struct {
	Status  string `json:"status"`            // One of the Status constants above
	Message string `json:"message,omitempty"` // Human-readable message
}

// TranscriptResponse for the transcript endpoint
type TranscriptResponse struct {
	BaseResponse
	VideoID    string `json:"video_id"`
	Transcript string `json:"transcript"`
}

// Video is the API representation of a stored video
type Video struct {
	VideoID    string    `json:"video_id"`
	URL        string    `json:"url,omitempty"`
	Title      string    `json:"title"`
	Author     string    `json:"author,omitempty"`
	Language   string    `json:"language,omitempty"`
	Transcript string    `json:"transcript"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// SingleVideoResponse for getting a single video
type SingleVideoResponse struct {
	BaseResponse
	Video *Video `json:"video"`
}

// VideosResponse for video lists
type VideosResponse struct {
	BaseResponse
	Videos []Video `json:"videos"`
	Count  int     `json:"count"` // Number of results in this response
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
