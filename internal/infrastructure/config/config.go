package config

import (
	"os"
	"strconv"
)

// SiteTagline 站点固定标语
const SiteTagline = "Official MCA 2027 Platform for Magadi Ward"

// Config stores all configuration of the application
type Config struct {
	// Server
	ServerPort string

	// Database
	DBPath string

	// Site identity
	CandidateName string

	// Admin
	AdminToken string

	// Redis
	RedisHost string
	RedisPort string
	RedisDB   int

	// Presentation
	TemplateGlob string
	PublicDir    string
}

// LoadConfig loads config from environment variables; the result is built
// once in main and passed by reference, never read as a global.
func LoadConfig() *Config {
	return &Config{
		// Server config
		ServerPort: getEnv("PORT", "3000"),

		// Database config
		DBPath: getEnv("DB_PATH", "data/campaign.db"),

		// Site identity
		CandidateName: getEnv("CANDIDATE_NAME", "Abraham Senteu"),

		// Admin config
		AdminToken: getEnv("ADMIN_TOKEN", "change-me"),

		// Redis config
		RedisHost: getEnv("REDIS_HOST", ""),
		RedisPort: getEnv("REDIS_PORT", "6379"),
		RedisDB:   getEnvAsInt("REDIS_DB", 0),

		// Presentation config
		TemplateGlob: getEnv("TEMPLATE_GLOB", "templates/*.html"),
		PublicDir:    getEnv("PUBLIC_DIR", "public"),
	}
}

// GetRedisAddr returns the Redis address
func (c *Config) GetRedisAddr() string {
	return c.RedisHost + ":" + c.RedisPort
}

// Helper function to get environment variable with default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// Helper function to get environment variable as integer with default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}
