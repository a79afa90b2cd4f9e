package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"DOCLAIR_API_URL", "DOCLAIR_API_TIMEOUT", "DOCLAIR_MAX_UPLOAD_MB",
		"DOCLAIR_PREVIEW_MAX_EDGE", "DOCLAIR_DEBOUNCE_MS", "DOCLAIR_LOG_LEVEL",
	} {
		t.Setenv(key, "")
	}
}

func TestFromEnvDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, DefaultAPIBaseURL, cfg.APIBaseURL)
	assert.Equal(t, DefaultAPITimeout, cfg.APITimeout)
	assert.Equal(t, int64(DefaultMaxUploadMB), cfg.MaxUploadMB)
	assert.Equal(t, DefaultPreviewMaxEdge, cfg.PreviewMaxEdge)
	assert.Equal(t, DefaultDebounce, cfg.Debounce)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
}

func TestFromEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("DOCLAIR_API_URL", "http://localhost:9000")
	t.Setenv("DOCLAIR_API_TIMEOUT", "90s")
	t.Setenv("DOCLAIR_MAX_UPLOAD_MB", "5")
	t.Setenv("DOCLAIR_PREVIEW_MAX_EDGE", "800")
	t.Setenv("DOCLAIR_DEBOUNCE_MS", "250")
	t.Setenv("DOCLAIR_LOG_LEVEL", "debug")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9000", cfg.APIBaseURL)
	assert.Equal(t, 90*time.Second, cfg.APITimeout)
	assert.Equal(t, int64(5), cfg.MaxUploadMB)
	assert.Equal(t, 800, cfg.PreviewMaxEdge)
	assert.Equal(t, 250*time.Millisecond, cfg.Debounce)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestFromEnvRejectsBadValues(t *testing.T) {
	cases := map[string]string{
		"DOCLAIR_API_TIMEOUT":      "ninety seconds",
		"DOCLAIR_MAX_UPLOAD_MB":    "-1",
		"DOCLAIR_PREVIEW_MAX_EDGE": "huge",
		"DOCLAIR_DEBOUNCE_MS":      "0.5",
	}
	for key, val := range cases {
		t.Run(key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(key, val)
			_, err := FromEnv()
			require.Error(t, err)
			assert.Contains(t, err.Error(), key)
		})
	}
}

func TestMaxUploadBytes(t *testing.T) {
	assert.Equal(t, int64(25<<20), Config{MaxUploadMB: 25}.MaxUploadBytes())
	assert.Equal(t, int64(0), Config{}.MaxUploadBytes())
}
