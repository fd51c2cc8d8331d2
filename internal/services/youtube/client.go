package youtube

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"html"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const playerResponseMarker = "ytInitialPlayerResponse"

// Config holds configuration for the YouTube caption client
type Config struct {
	BaseURL   string
	OEmbedURL string
	UserAgent string
	Timeout   time.Duration
	Languages []string
}

// Client retrieves caption tracks and video metadata from YouTube. It scrapes
// the watch page for the player response, the same way the common transcript
// libraries do, so no API key is required.
type Client struct {
	httpClient *http.Client
	baseURL    string
	oembedURL  string
	userAgent  string
	languages  []string
}

// NewClient creates a new YouTube caption client
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://www.youtube.com"
	}
	if cfg.OEmbedURL == "" {
		cfg.OEmbedURL = "https://www.youtube.com/oembed"
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = "TranscriptAPI/1.0"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if len(cfg.Languages) == 0 {
		cfg.Languages = []string{"en"}
	}

	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		oembedURL:  cfg.OEmbedURL,
		userAgent:  cfg.UserAgent,
		languages:  cfg.Languages,
	}
}

// FetchTranscript retrieves the ordered caption fragments for a video.
// Failure classes are distinguished with the sentinel errors in this package:
// ErrNoTranscript when the video has no usable track, ErrRetrievalFailed for
// everything between here and YouTube.
func (c *Client) FetchTranscript(ctx context.Context, videoID string) ([]Fragment, error) {
	player, err := c.fetchPlayerResponse(ctx, videoID)
	if err != nil {
		return nil, err
	}

	status := player.PlayabilityStatus.Status
	if status == "ERROR" || status == "LOGIN_REQUIRED" {
		return nil, VideoUnavailableError{VideoID: videoID, Reason: player.PlayabilityStatus.Reason}
	}

	if player.Captions == nil {
		return nil, TranscriptsDisabledError{VideoID: videoID}
	}

	tracks := player.Captions.PlayerCaptionsTracklistRenderer.CaptionTracks
	if len(tracks) == 0 {
		return nil, NoTranscriptError{VideoID: videoID}
	}

	track := selectTrack(tracks, c.languages)
	return c.fetchTimedText(ctx, videoID, track.BaseURL)
}

// GetVideoMetadata fetches title and author for a video via the oEmbed endpoint
func (c *Client) GetVideoMetadata(ctx context.Context, videoID string) (*VideoMetadata, error) {
	params := url.Values{}
	params.Set("url", fmt.Sprintf("%s/watch?v=%s", c.baseURL, videoID))
	params.Set("format", "json")

	endpoint := fmt.Sprintf("%s?%s", c.oembedURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return nil, RetrievalError{VideoID: videoID, Message: "creating oEmbed request", Cause: err}
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, RetrievalError{VideoID: videoID, Message: "executing oEmbed request", Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusUnauthorized {
		return nil, VideoUnavailableError{VideoID: videoID, Reason: fmt.Sprintf("oEmbed returned status %d", resp.StatusCode)}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, RetrievalError{VideoID: videoID, Message: fmt.Sprintf("oEmbed returned status %d", resp.StatusCode)}
	}

	var oembed oembedResponse
	if err := json.NewDecoder(resp.Body).Decode(&oembed); err != nil {
		return nil, RetrievalError{VideoID: videoID, Message: "decoding oEmbed response", Cause: err}
	}

	return &VideoMetadata{Title: oembed.Title, Author: oembed.AuthorName}, nil
}

// fetchPlayerResponse downloads the watch page and extracts the embedded
// ytInitialPlayerResponse JSON
func (c *Client) fetchPlayerResponse(ctx context.Context, videoID string) (*playerResponse, error) {
	watchURL := fmt.Sprintf("%s/watch?v=%s", c.baseURL, url.QueryEscape(videoID))

	req, err := http.NewRequestWithContext(ctx, "GET", watchURL, nil)
	if err != nil {
		return nil, RetrievalError{VideoID: videoID, Message: "creating watch page request", Cause: err}
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept-Language", "en-US,en")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, RetrievalError{VideoID: videoID, Message: "fetching watch page", Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, RetrievalError{VideoID: videoID, Message: fmt.Sprintf("watch page returned status %d", resp.StatusCode)}
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, RetrievalError{VideoID: videoID, Message: "parsing watch page", Cause: err}
	}

	var raw string
	doc.Find("script").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		text := s.Text()
		if !strings.Contains(text, playerResponseMarker) {
			return true
		}
		if extracted, ok := extractJSONObject(text, playerResponseMarker); ok {
			raw = extracted
			return false
		}
		return true
	})

	if raw == "" {
		return nil, RetrievalError{VideoID: videoID, Message: "player response not found in watch page"}
	}

	var player playerResponse
	if err := json.Unmarshal([]byte(raw), &player); err != nil {
		return nil, RetrievalError{VideoID: videoID, Message: "decoding player response", Cause: err}
	}

	return &player, nil
}

// fetchTimedText downloads and decodes the timedtext XML for a caption track
func (c *Client) fetchTimedText(ctx context.Context, videoID, trackURL string) ([]Fragment, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", trackURL, nil)
	if err != nil {
		return nil, RetrievalError{VideoID: videoID, Message: "creating timedtext request", Cause: err}
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, RetrievalError{VideoID: videoID, Message: "fetching timedtext", Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, RetrievalError{VideoID: videoID, Message: fmt.Sprintf("timedtext returned status %d", resp.StatusCode)}
	}

	var tt timedText
	if err := xml.NewDecoder(resp.Body).Decode(&tt); err != nil {
		return nil, RetrievalError{VideoID: videoID, Message: "decoding timedtext", Cause: err}
	}

	fragments := make([]Fragment, 0, len(tt.Texts))
	for _, node := range tt.Texts {
		fragments = append(fragments, Fragment{
			// The timedtext payload is double-escaped, the XML decoder
			// only resolves the outer layer
			Text:     html.UnescapeString(node.Content),
			Start:    node.Start,
			Duration: node.Duration,
		})
	}

	return fragments, nil
}

// selectTrack picks a caption track by language preference, falling back to
// the first track when nothing matches
func selectTrack(tracks []CaptionTrack, languages []string) CaptionTrack {
	for _, lang := range languages {
		for _, track := range tracks {
			if track.LanguageCode == lang {
				return track
			}
		}
	}
	// Second pass tolerates regional variants like en-US against a plain "en"
	for _, lang := range languages {
		for _, track := range tracks {
			if strings.HasPrefix(track.LanguageCode, lang+"-") {
				return track
			}
		}
	}
	return tracks[0]
}

// extractJSONObject finds the first balanced JSON object following marker in s.
// The scan is string-aware so braces inside JSON string values do not
// unbalance it.
func extractJSONObject(s, marker string) (string, bool) {
	idx := strings.Index(s, marker)
	if idx < 0 {
		return "", false
	}

	start := strings.Index(s[idx:], "{")
	if start < 0 {
		return "", false
	}
	start += idx

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		ch := s[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}

		switch ch {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}

	return "", false
}
