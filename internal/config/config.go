package config

import "os"

// Config holds the runtime settings, all sourced from the environment.
type Config struct {
	MongoURI          string
	MongoDB           string
	RedisAddr         string
	HTTPPort          string
	AppEnv            string
	ScoringConfigPath string // optional YAML override for weights/thresholds
}

// Load reads the environment with sensible local defaults.
func Load() *Config {
	return &Config{
		MongoURI:          getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:           getEnv("MONGO_DB", "decisions"),
		RedisAddr:         getEnv("REDIS_ADDR", "localhost:6379"),
		HTTPPort:          getEnv("HTTP_PORT", "8080"),
		AppEnv:            getEnv("APP_ENV", "dev"),
		ScoringConfigPath: os.Getenv("SCORING_CONFIG"),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
