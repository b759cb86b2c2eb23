package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// JWTConfig defines the signing parameters used for issuing and verifying tokens.
type JWTConfig struct {
	Issuer   string
	Audience string
	Secret   []byte
	TTL      time.Duration
}

// SearchPolicy resolves validation knobs that drifted across deployments into a
// single explicit configuration surface.
type SearchPolicy struct {
	MaxQueryLength      int
	DefaultLimit        int
	MaxLimit            int
	MinImages           int
	MaxImages           int
	CaseSensitiveSearch bool
}

// Config holds runtime configuration shared across the application.
type Config struct {
	Addr            string
	MongoURI        string
	MongoDatabase   string
	PlaceCollection string
	UserCollection  string
	Timeout         time.Duration
	ServerLog       *log.Logger
	JWT             JWTConfig
	AllowedOrigins  []string
	Search          SearchPolicy
}

// Load reads environment variables and returns a fully populated Config.
func Load() Config {
	timeout := 10 * time.Second
	if v := os.Getenv("MONGO_CONNECT_TIMEOUT"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			timeout = parsed
		}
	}

	secret := strings.TrimSpace(os.Getenv("AUTH_JWT_SECRET"))
	if secret == "" {
		log.Fatal("AUTH_JWT_SECRET must be configured")
	}

	ttl := 24 * time.Hour
	if raw := strings.TrimSpace(os.Getenv("AUTH_JWT_TTL")); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil {
			ttl = parsed
		}
	}

	return Config{
		Addr:            envOrDefault("HTTP_ADDR", ":8080"),
		MongoURI:        envOrDefault("MONGO_URI", "mongodb://mongo:27017"),
		MongoDatabase:   envOrDefault("MONGO_DB", "foodatlas"),
		PlaceCollection: envOrDefault("PLACE_COLLECTION", "foodplaces"),
		UserCollection:  envOrDefault("USER_COLLECTION", "users"),
		Timeout:         timeout,
		ServerLog:       log.New(os.Stdout, "[foodatlas-api] ", log.LstdFlags|log.Lshortfile),
		JWT: JWTConfig{
			Issuer:   envOrDefault("AUTH_JWT_ISSUER", "foodatlas-api"),
			Audience: strings.TrimSpace(os.Getenv("AUTH_JWT_AUDIENCE")),
			Secret:   []byte(secret),
			TTL:      ttl,
		},
		AllowedOrigins: parseList("API_ALLOWED_ORIGINS", []string{"*"}),
		Search: SearchPolicy{
			MaxQueryLength:      100,
			DefaultLimit:        envInt("SEARCH_DEFAULT_LIMIT", 10),
			MaxLimit:            envInt("SEARCH_MAX_LIMIT", 100),
			MinImages:           envInt("SEARCH_MIN_IMAGES", 0),
			MaxImages:           30,
			CaseSensitiveSearch: strings.EqualFold(strings.TrimSpace(os.Getenv("SEARCH_CASE_SENSITIVE")), "true"),
		},
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil || parsed < 0 {
		return fallback
	}
	return parsed
}

func parseList(key string, fallback []string) []string {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}

	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			values = append(values, part)
		}
	}

	if len(values) == 0 {
		return fallback
	}
	return values
}
