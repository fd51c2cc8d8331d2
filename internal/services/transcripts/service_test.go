package transcripts

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/killallgit/transcript-api/internal/services/workers"
	"github.com/killallgit/transcript-api/internal/services/youtube"
	apperrors "github.com/killallgit/transcript-api/pkg/errors"
	"github.com/killallgit/transcript-api/pkg/textclean"
)

// fakeProvider implements TranscriptProvider with a configurable fetch func
type fakeProvider struct {
	fetch func(ctx context.Context, videoID string) ([]youtube.Fragment, error)
}

func (f *fakeProvider) FetchTranscript(ctx context.Context, videoID string) ([]youtube.Fragment, error) {
	return f.fetch(ctx, videoID)
}

func newTestService(fetch func(ctx context.Context, videoID string) ([]youtube.Fragment, error)) *Service {
	return NewService(
		&fakeProvider{fetch: fetch},
		textclean.New(textclean.DefaultOptions()),
		workers.NewPool(4),
	)
}

func fragments(texts ...string) []youtube.Fragment {
	out := make([]youtube.Fragment, len(texts))
	for i, text := range texts {
		out[i] = youtube.Fragment{Text: text}
	}
	return out
}

func TestGetTranscriptJoinsFragments(t *testing.T) {
	service := newTestService(func(ctx context.Context, videoID string) ([]youtube.Fragment, error) {
		return fragments("Hello", "world"), nil
	})

	text, err := service.GetTranscript(context.Background(), "dQw4w9WgXcQ")
	require.NoError(t, err)
	assert.Equal(t, "Hello world", text)
}

func TestGetTranscriptStripsEmoji(t *testing.T) {
	service := newTestService(func(ctx context.Context, videoID string) ([]youtube.Fragment, error) {
		return fragments("Hi 😀", "there"), nil
	})

	text, err := service.GetTranscript(context.Background(), "dQw4w9WgXcQ")
	require.NoError(t, err)
	assert.Equal(t, "Hi there", text)
}

func TestGetTranscriptDropsEmptyFragments(t *testing.T) {
	service := newTestService(func(ctx context.Context, videoID string) ([]youtube.Fragment, error) {
		return fragments("one", "  ", "😀", "two"), nil
	})

	text, err := service.GetTranscript(context.Background(), "dQw4w9WgXcQ")
	require.NoError(t, err)
	assert.Equal(t, "one two", text)
}

func TestGetTranscriptEmptyListIsNotAnError(t *testing.T) {
	service := newTestService(func(ctx context.Context, videoID string) ([]youtube.Fragment, error) {
		return []youtube.Fragment{}, nil
	})

	text, err := service.GetTranscript(context.Background(), "dQw4w9WgXcQ")
	require.NoError(t, err)
	assert.Equal(t, "", text)
}

func TestGetTranscriptNotFound(t *testing.T) {
	service := newTestService(func(ctx context.Context, videoID string) ([]youtube.Fragment, error) {
		return nil, youtube.NoTranscriptError{VideoID: videoID}
	})

	_, err := service.GetTranscript(context.Background(), "dQw4w9WgXcQ")
	require.Error(t, err)

	assert.Equal(t, apperrors.ErrCodeTranscriptNotFound, apperrors.GetCode(err))
	assert.Equal(t, http.StatusNotFound, apperrors.GetHTTPCode(err))
}

func TestGetTranscriptRetrievalFailure(t *testing.T) {
	service := newTestService(func(ctx context.Context, videoID string) ([]youtube.Fragment, error) {
		return nil, youtube.TranscriptsDisabledError{VideoID: videoID}
	})

	_, err := service.GetTranscript(context.Background(), "dQw4w9WgXcQ")
	require.Error(t, err)

	assert.Equal(t, apperrors.ErrCodeTranscriptRetrieval, apperrors.GetCode(err))
	assert.Equal(t, http.StatusInternalServerError, apperrors.GetHTTPCode(err))

	// The provider's own message must survive into the client-facing error
	appErr := err.(*apperrors.AppError)
	assert.Contains(t, appErr.Message, "transcripts are disabled")
}

func TestGetTranscriptUnexpectedFailure(t *testing.T) {
	service := newTestService(func(ctx context.Context, videoID string) ([]youtube.Fragment, error) {
		return nil, errors.New("dial tcp: i/o timeout")
	})

	_, err := service.GetTranscript(context.Background(), "dQw4w9WgXcQ")
	require.Error(t, err)

	assert.Equal(t, apperrors.ErrCodeInternal, apperrors.GetCode(err))
	assert.Equal(t, http.StatusInternalServerError, apperrors.GetHTTPCode(err))

	appErr := err.(*apperrors.AppError)
	assert.Contains(t, appErr.Message, "dial tcp: i/o timeout")
}

func TestGetTranscriptEmptyVideoID(t *testing.T) {
	service := newTestService(func(ctx context.Context, videoID string) ([]youtube.Fragment, error) {
		t.Fatal("provider must not be called for an empty video ID")
		return nil, nil
	})

	_, err := service.GetTranscript(context.Background(), "  ")
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperrors.GetHTTPCode(err))
}

func TestGetTranscriptConcurrentCallsAreIndependent(t *testing.T) {
	service := newTestService(func(ctx context.Context, videoID string) ([]youtube.Fragment, error) {
		return fragments("transcript", "for", videoID), nil
	})

	const calls = 16
	var wg sync.WaitGroup
	results := make([]string, calls)
	errs := make([]error, calls)

	for i := 0; i < calls; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = service.GetTranscript(context.Background(), fmt.Sprintf("video%02d", i))
		}(i)
	}
	wg.Wait()

	for i := 0; i < calls; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, fmt.Sprintf("transcript for video%02d", i), results[i])
	}
}

func TestGetTranscriptContextCanceled(t *testing.T) {
	blocked := make(chan struct{})
	defer close(blocked)

	service := newTestService(func(ctx context.Context, videoID string) ([]youtube.Fragment, error) {
		<-blocked
		return nil, nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := service.GetTranscript(ctx, "dQw4w9WgXcQ")
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeInternal, apperrors.GetCode(err))
}
