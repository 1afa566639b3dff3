package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "GIN_MODE", "CORS_ALLOWED_ORIGINS", "PUBLIC_HOST", "VOICE_GREETING", "VERIFY_BACKEND_URL", "VERIFY_TIMEOUT"} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "debug", cfg.GinMode)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "http://0.0.0.0:3000", cfg.BackendURL)
	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
	assert.NotEmpty(t, cfg.VoiceGreeting)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com,")
	t.Setenv("VERIFY_BACKEND_URL", "https://api.example.com/")
	t.Setenv("VERIFY_TIMEOUT", "3s")
	t.Setenv("PUBLIC_HOST", "abc.ngrok.app")

	cfg := LoadConfig()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "https://api.example.com", cfg.BackendURL)
	assert.Equal(t, 3*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "abc.ngrok.app", cfg.PublicHost)
}

func TestLoadConfigBadTimeoutFallsBack(t *testing.T) {
	t.Setenv("VERIFY_TIMEOUT", "soon")
	assert.Equal(t, 15*time.Second, LoadConfig().RequestTimeout)
}
