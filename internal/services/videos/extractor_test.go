package videos

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/killallgit/transcript-api/pkg/errors"
)

func TestExtractVideoID(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{
			name:     "standard watch URL",
			input:    "https://www.youtube.com/watch?v=xnmz0u71xLk",
			expected: "xnmz0u71xLk",
		},
		{
			name:     "watch URL with extra params",
			input:    "https://www.youtube.com/watch?v=xnmz0u71xLk&list=LL&index=19&ab_channel=SarahBanh",
			expected: "xnmz0u71xLk",
		},
		{
			name:     "short URL",
			input:    "https://youtu.be/dQw4w9WgXcQ",
			expected: "dQw4w9WgXcQ",
		},
		{
			name:     "short URL with query",
			input:    "https://youtu.be/dQw4w9WgXcQ?t=42",
			expected: "dQw4w9WgXcQ",
		},
		{
			name:     "embed URL",
			input:    "https://www.youtube.com/embed/dQw4w9WgXcQ",
			expected: "dQw4w9WgXcQ",
		},
		{
			name:     "shorts URL",
			input:    "https://youtube.com/shorts/dQw4w9WgXcQ",
			expected: "dQw4w9WgXcQ",
		},
		{
			name:     "live URL",
			input:    "https://www.youtube.com/live/dQw4w9WgXcQ",
			expected: "dQw4w9WgXcQ",
		},
		{
			name:     "mobile watch URL",
			input:    "https://m.youtube.com/watch?v=dQw4w9WgXcQ",
			expected: "dQw4w9WgXcQ",
		},
		{
			name:     "bare video ID",
			input:    "dQw4w9WgXcQ",
			expected: "dQw4w9WgXcQ",
		},
		{
			name:    "empty input",
			input:   "",
			wantErr: true,
		},
		{
			name:    "non-YouTube host",
			input:   "https://vimeo.com/123456",
			wantErr: true,
		},
		{
			name:    "watch URL without v param",
			input:   "https://www.youtube.com/watch?list=LL",
			wantErr: true,
		},
		{
			name:    "malformed ID in path",
			input:   "https://youtu.be/short",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := ExtractVideoID(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, http.StatusBadRequest, apperrors.GetHTTPCode(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, id)
		})
	}
}
