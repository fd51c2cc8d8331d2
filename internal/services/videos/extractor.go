package videos

import (
	"net/url"
	"regexp"
	"strings"

	apperrors "github.com/killallgit/transcript-api/pkg/errors"
)

// videoIDPattern matches the 11-character identifier YouTube assigns to videos
var videoIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)

// pathPrefixes are the watch-page path shapes that carry the video ID as the
// following path segment
var pathPrefixes = []string{"/embed/", "/v/", "/shorts/", "/live/"}

// ExtractVideoID pulls the video ID out of the common YouTube URL shapes,
// or passes a bare ID through unchanged.
//
// Supported:
//   - youtube.com/watch?v=VIDEO_ID (any subdomain, extra params ignored)
//   - youtu.be/VIDEO_ID
//   - youtube.com/embed/VIDEO_ID, /v/, /shorts/, /live/
//   - a bare 11-character ID
func ExtractVideoID(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", apperrors.MissingFieldError("url")
	}

	if videoIDPattern.MatchString(raw) {
		return raw, nil
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return "", apperrors.ValidationError("url", "not a valid URL").WithCause(err)
	}

	host := strings.TrimPrefix(strings.ToLower(parsed.Hostname()), "www.")
	host = strings.TrimPrefix(host, "m.")

	var candidate string
	switch {
	case host == "youtu.be":
		candidate = firstPathSegment(parsed.Path)
	case host == "youtube.com" || strings.HasSuffix(host, ".youtube.com"):
		if v := parsed.Query().Get("v"); v != "" {
			candidate = v
			break
		}
		for _, prefix := range pathPrefixes {
			if strings.HasPrefix(parsed.Path, prefix) {
				candidate = firstPathSegment(strings.TrimPrefix(parsed.Path, prefix))
				break
			}
		}
	default:
		return "", apperrors.ValidationError("url", "not a YouTube URL")
	}

	if !videoIDPattern.MatchString(candidate) {
		return "", apperrors.ValidationError("url", "could not extract a video ID")
	}

	return candidate, nil
}

func firstPathSegment(path string) string {
	path = strings.TrimPrefix(path, "/")
	if i := strings.IndexByte(path, '/'); i >= 0 {
		return path[:i]
	}
	return path
}
