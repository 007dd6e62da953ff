package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	GeminiAPIKey  string
	GeminiModel   string
	GeminiBaseURL string

	Port        string
	CORSOrigins []string

	ProviderName string
	SeedListings bool

	ImageMaxWidth  uint
	ImageMaxHeight uint
}

// Load reads the .env file (outside production) and returns a populated Config.
func Load() *Config {
	if os.Getenv("APP_ENV") != "production" {
		if err := godotenv.Load(); err != nil {
			log.Println("[config] No .env file found, falling back to system env vars")
		}
	}

	return &Config{
		GeminiAPIKey:  os.Getenv("GEMINI_API_KEY"),
		GeminiModel:   getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		GeminiBaseURL: getEnv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta"),

		Port:        getEnv("PORT", "8000"),
		CORSOrigins: splitList(getEnv("CORS_ORIGINS", "http://localhost:3000,http://localhost:5173")),

		ProviderName: getEnv("PROVIDER_NAME", "My Restaurant"),
		SeedListings: getEnvBool("SEED_LISTINGS", true),

		ImageMaxWidth:  uint(getEnvInt("IMAGE_MAX_WIDTH", 800)),
		ImageMaxHeight: uint(getEnvInt("IMAGE_MAX_HEIGHT", 600)),
	}
}

// Validate reports every required key that is missing.
func (c *Config) Validate() error {
	var missing []string
	if c.GeminiAPIKey == "" {
		missing = append(missing, "GEMINI_API_KEY")
	}
	if c.GeminiModel == "" {
		missing = append(missing, "GEMINI_MODEL")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing env var: %s", strings.Join(missing, ", "))
	}
	return nil
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		n, err := strconv.Atoi(val)
		if err == nil && n > 0 {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if val := os.Getenv(key); val != "" {
		b, err := strconv.ParseBool(val)
		if err == nil {
			return b
		}
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
