package youtube

import (
	"errors"
	"fmt"
)

// Sentinel errors for the two provider failure classes. Callers use
// errors.Is against these rather than matching concrete types.
var (
	ErrNoTranscript    = errors.New("no transcript available")
	ErrRetrievalFailed = errors.New("transcript retrieval failed")
)

// NoTranscriptError indicates the video exists but carries no usable
// caption track
type NoTranscriptError struct {
	VideoID string
}

func (e NoTranscriptError) Error() string {
	return fmt.Sprintf("no transcript available for video %q", e.VideoID)
}

func (e NoTranscriptError) Is(target error) bool {
	return target == ErrNoTranscript
}

// TranscriptsDisabledError indicates the uploader has disabled captions
type TranscriptsDisabledError struct {
	VideoID string
}

func (e TranscriptsDisabledError) Error() string {
	return fmt.Sprintf("transcripts are disabled for video %q", e.VideoID)
}

func (e TranscriptsDisabledError) Is(target error) bool {
	return target == ErrRetrievalFailed
}

// VideoUnavailableError indicates the video cannot be played at all
// (removed, private, region locked)
type VideoUnavailableError struct {
	VideoID string
	Reason  string
}

func (e VideoUnavailableError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("video %q is unavailable: %s", e.VideoID, e.Reason)
	}
	return fmt.Sprintf("video %q is unavailable", e.VideoID)
}

func (e VideoUnavailableError) Is(target error) bool {
	return target == ErrRetrievalFailed
}

// RetrievalError covers transport and parsing failures while talking to
// the provider
type RetrievalError struct {
	VideoID string
	Message string
	Cause   error
}

func (e RetrievalError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("retrieving transcript for video %q: %s: %v", e.VideoID, e.Message, e.Cause)
	}
	return fmt.Sprintf("retrieving transcript for video %q: %s", e.VideoID, e.Message)
}

func (e RetrievalError) Is(target error) bool {
	return target == ErrRetrievalFailed
}

func (e RetrievalError) Unwrap() error {
	return e.Cause
}
