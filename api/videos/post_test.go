package videos

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/killallgit/transcript-api/api/types"
	"github.com/killallgit/transcript-api/internal/models"
	apperrors "github.com/killallgit/transcript-api/pkg/errors"
)

type stubVideoService struct {
	process func(ctx context.Context, rawURL string) (*models.Video, error)
	get     func(ctx context.Context, videoID string) (*models.Video, error)
	list    func(ctx context.Context, limit int) ([]models.Video, error)
}

func (s *stubVideoService) ProcessVideo(ctx context.Context, rawURL string) (*models.Video, error) {
	return s.process(ctx, rawURL)
}

func (s *stubVideoService) GetVideo(ctx context.Context, videoID string) (*models.Video, error) {
	return s.get(ctx, videoID)
}

func (s *stubVideoService) ListRecent(ctx context.Context, limit int) ([]models.Video, error) {
	return s.list(ctx, limit)
}

func newTestRouter(service *stubVideoService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	deps := &types.Dependencies{VideoService: service}
	RegisterRoutes(engine.Group("/api/v1/videos"), deps)
	return engine
}

func TestPostProcessesVideo(t *testing.T) {
	engine := newTestRouter(&stubVideoService{
		process: func(ctx context.Context, rawURL string) (*models.Video, error) {
			assert.Equal(t, "https://youtu.be/dQw4w9WgXcQ", rawURL)
			return &models.Video{
				VideoID:    "dQw4w9WgXcQ",
				Title:      "Never Gonna Give You Up",
				Transcript: "never gonna give you up",
			}, nil
		},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/videos",
		strings.NewReader(`{"url": "https://youtu.be/dQw4w9WgXcQ"}`))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response types.SingleVideoResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "ok", response.Status)
	require.NotNil(t, response.Video)
	assert.Equal(t, "dQw4w9WgXcQ", response.Video.VideoID)
	assert.Equal(t, "never gonna give you up", response.Video.Transcript)
}

func TestPostRejectsMissingURL(t *testing.T) {
	engine := newTestRouter(&stubVideoService{
		process: func(ctx context.Context, rawURL string) (*models.Video, error) {
			t.Fatal("service must not be called without a url")
			return nil, nil
		},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/videos", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPostPropagatesServiceError(t *testing.T) {
	engine := newTestRouter(&stubVideoService{
		process: func(ctx context.Context, rawURL string) (*models.Video, error) {
			return nil, apperrors.ValidationError("url", "not a YouTube URL")
		},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/videos",
		strings.NewReader(`{"url": "https://example.com/video"}`))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response types.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "error", response.Status)
	assert.Equal(t, "VALIDATION", response.Error)
}

func TestGetByIDNotFound(t *testing.T) {
	engine := newTestRouter(&stubVideoService{
		get: func(ctx context.Context, videoID string) (*models.Video, error) {
			return nil, apperrors.Newf(apperrors.ErrCodeNotFound, "video %q not found", videoID)
		},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/videos/missing00ID", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetRecentReturnsVideos(t *testing.T) {
	engine := newTestRouter(&stubVideoService{
		list: func(ctx context.Context, limit int) ([]models.Video, error) {
			assert.Equal(t, 5, limit)
			return []models.Video{
				{VideoID: "video000001", Title: "First"},
				{VideoID: "video000002", Title: "Second"},
			}, nil
		},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/videos?limit=5", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response types.VideosResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, 2, response.Count)
	require.Len(t, response.Videos, 2)
	assert.Equal(t, "First", response.Videos[0].Title)
}
