package utils

import (
	"os"
	"strconv"
	"time"
)

type AuthConfig struct {
	JWTSecret   string
	JWTIssuer   string
	JWTDuration time.Duration
}

// GenConfig tunes the generation queue and the seasonal feed. The quota
// and retry counts were hardcoded in earlier builds; they are env inputs
// now so they can be tuned without a redeploy.
type GenConfig struct {
	BaseURL       string        // generative backend endpoint
	APIKey        string        // backend API key
	Interval      time.Duration // minimum gap between generation starts
	Retries       int           // extra attempts after a throttled first try
	SeasonalQuota int           // target entries per seasonal period
	ImageDir      string        // root of the shared image object store
}

func LoadAuthConfig() AuthConfig {
	secret := os.Getenv("BARTRENDER_JWT_SECRET")
	if secret == "" {
		// dev default (change for demo / production)
		secret = "dev-secret-change-me"
	}

	issuer := os.Getenv("BARTRENDER_JWT_ISSUER")
	if issuer == "" {
		issuer = "bartrender"
	}

	days := envInt("BARTRENDER_ENTITLEMENT_DAYS", 30)
	return AuthConfig{
		JWTSecret:   secret,
		JWTIssuer:   issuer,
		JWTDuration: time.Duration(days) * 24 * time.Hour,
	}
}

func LoadGenConfig() GenConfig {
	base := os.Getenv("BARTRENDER_GEN_URL")
	if base == "" {
		base = "https://generativelanguage.googleapis.com"
	}

	imageDir := os.Getenv("BARTRENDER_IMAGE_DIR")
	if imageDir == "" {
		home, err := os.UserHomeDir()
		if err != nil || home == "" {
			home = "."
		}
		imageDir = home + "/.bartrender/images"
	}

	return GenConfig{
		BaseURL:       base,
		APIKey:        os.Getenv("BARTRENDER_API_KEY"),
		Interval:      time.Duration(envInt("BARTRENDER_GEN_INTERVAL_MS", 2000)) * time.Millisecond,
		Retries:       envInt("BARTRENDER_GEN_RETRIES", 3),
		SeasonalQuota: envInt("BARTRENDER_SEASONAL_QUOTA", 20),
		ImageDir:      imageDir,
	}
}

func envInt(key string, def int) int {
	s := os.Getenv(key)
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return def
	}
	return n
}
