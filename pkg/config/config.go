package config

import (
	"os"
	"strings"
	"time"
)

const (
	defaultPort       = "3000"
	defaultBackendURL = "http://0.0.0.0:3000"
	defaultTimeout    = 15 * time.Second
	defaultGreeting   = "Hello! Are you ready for your verification interview?"
)

// Config holds all application configuration values
type Config struct {
	Port               string
	GinMode            string
	CORSAllowedOrigins []string
	PublicHost         string
	VoiceGreeting      string

	// Used by the verify-form client
	BackendURL     string
	RequestTimeout time.Duration
}

// LoadConfig reads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Port:               getEnv("PORT", defaultPort),
		GinMode:            getEnv("GIN_MODE", "debug"),
		CORSAllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		PublicHost:         os.Getenv("PUBLIC_HOST"),
		VoiceGreeting:      getEnv("VOICE_GREETING", defaultGreeting),
		BackendURL:         strings.TrimRight(getEnv("VERIFY_BACKEND_URL", defaultBackendURL), "/"),
		RequestTimeout:     getDuration("VERIFY_TIMEOUT", defaultTimeout),
	}
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
