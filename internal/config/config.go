package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"techrec/internal/domain/matching"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Matching MatchingConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
}

type DatabaseConfig struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	ConnectTimeout        time.Duration
	PoolMaxConns          int32
	PoolMinConns          int32
	PoolMaxConnLifetime   time.Duration
	PoolMaxConnIdleTime   time.Duration
	PoolHealthCheckPeriod time.Duration
}

type JWTConfig struct {
	AccessSecret    string
	AccessExpiresIn time.Duration
}

type MatchingConfig struct {
	MinimumConfidence   float64
	FuzzyMatchThreshold float64
	HighLevelBonus      float64
	NoSkillsIsError     bool
	BatchWorkers        int
}

var errMissingRequiredEnv = errors.New("missing required environment variables")

func Load() (Config, error) {
	cfg := Config{}

	var missing []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key string) string {
		return strings.TrimSpace(os.Getenv(key))
	}

	cfg.App = AppConfig{
		AppName:     req("APP_NAME"),
		Environment: req("APP_ENV"),
		HTTPPort:    req("HTTP_PORT"),
	}

	cfg.Database = DatabaseConfig{
		DBHost:     opt("DB_HOST"),
		DBPort:     opt("DB_PORT"),
		DBName:     opt("DB_NAME"),
		DBUser:     opt("DB_USER"),
		DBPassword: opt("DB_PASSWORD"),
		DBSSLMode:  opt("DB_SSL_MODE"),

		ConnectTimeout:        durationEnv("DB_CONNECT_TIMEOUT", 0),
		PoolMaxConns:          int32(intEnv("DB_POOL_MAX_CONNS", 0)),
		PoolMinConns:          int32(intEnv("DB_POOL_MIN_CONNS", 0)),
		PoolMaxConnLifetime:   durationEnv("DB_POOL_MAX_CONN_LIFETIME", 0),
		PoolMaxConnIdleTime:   durationEnv("DB_POOL_MAX_CONN_IDLE_TIME", 0),
		PoolHealthCheckPeriod: durationEnv("DB_POOL_HEALTH_CHECK_PERIOD", 0),
	}

	cfg.JWT = JWTConfig{
		AccessSecret:    req("JWT_ACCESS_SECRET"),
		AccessExpiresIn: durationEnv("JWT_ACCESS_EXPIRES_IN", 15*time.Minute),
	}

	cfg.Matching = MatchingConfig{
		MinimumConfidence:   floatEnv("MATCH_MINIMUM_CONFIDENCE", 0.7),
		FuzzyMatchThreshold: floatEnv("MATCH_FUZZY_THRESHOLD", 0.8),
		HighLevelBonus:      floatEnv("MATCH_HIGH_LEVEL_BONUS", 1.2),
		NoSkillsIsError:     boolEnv("MATCH_NO_SKILLS_IS_ERROR", false),
		BatchWorkers:        intEnv("MATCH_BATCH_WORKERS", 4),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	return cfg, nil
}

// EngineConfig materializes the env overrides into the matching engine's
// config value; callers pass it down explicitly, never through a global.
func (c Config) EngineConfig() matching.Config {
	out := matching.DefaultConfig()
	if c.Matching.MinimumConfidence > 0 {
		out.MinimumConfidence = c.Matching.MinimumConfidence
	}
	if c.Matching.FuzzyMatchThreshold > 0 {
		out.FuzzyMatchThreshold = c.Matching.FuzzyMatchThreshold
	}
	if c.Matching.HighLevelBonus > 0 {
		out.HighLevelBonus = c.Matching.HighLevelBonus
	}
	out.TreatMissingSkillsAsError = c.Matching.NoSkillsIsError
	return out
}

func intEnv(key string, fallback int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

func floatEnv(key string, fallback float64) float64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fallback
	}
	return v
}

func boolEnv(key string, fallback bool) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return fallback
	}
	return v
}

func durationEnv(key string, fallback time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}
	return v
}
