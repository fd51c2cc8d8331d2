package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	setDefaults()

	assert.Equal(t, 8080, GetInt("server.port"))
	assert.Equal(t, "https://www.youtube.com", GetString("youtube.base_url"))
	assert.Equal(t, []string{"en"}, GetStringSlice("youtube.languages"))
	assert.Equal(t, 4, GetInt("processing.workers"))
	assert.Equal(t, 30*time.Second, GetDuration("youtube.timeout"))
	assert.True(t, GetBool("cleaning.strip_emoji"))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		setup   func()
		wantErr bool
	}{
		{
			name:    "defaults are valid",
			setup:   func() {},
			wantErr: false,
		},
		{
			name: "invalid port",
			setup: func() {
				viper.Set("server.port", 0)
			},
			wantErr: true,
		},
		{
			name: "empty youtube base url",
			setup: func() {
				viper.Set("youtube.base_url", "")
			},
			wantErr: true,
		},
		{
			name: "worker count auto-corrected",
			setup: func() {
				viper.Set("processing.workers", -1)
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Reset()
			defer viper.Reset()

			setDefaults()
			tt.setup()

			err := validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Greater(t, GetInt("processing.workers"), 0)
		})
	}
}

func TestConfigStructValidate(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	setDefaults()

	cfg, err := GetConfig()
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, "./data/transcripts.db", cfg.Database.Path)
	assert.Equal(t, "TranscriptAPI/1.0", cfg.YouTube.UserAgent)

	cfg.Server.Port = -1
	assert.Error(t, cfg.Validate())
}
