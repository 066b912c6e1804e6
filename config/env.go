package config

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/joho/godotenv"
)

// Config holds all environment configuration
type Config struct {
	// Database
	DatabaseHost     string
	DatabasePort     string
	PostgresUser     string
	PostgresPassword string
	DatabaseName     string

	// Authentication
	JWTSecret string

	// HTTP
	Port            string
	CorsOrigins     []string
	CacheTTLSeconds int

	// Discord - winner announcements
	DiscordBotToken          string
	DiscordAnnounceChannelID string

	// Other
	KafkaBroker string
}

var (
	appConfig *Config
	onceEnv   sync.Once
)

func loadConfig() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	config := &Config{
		DatabaseHost:     getEnvWithDefault("DATABASE_HOST", "localhost"),
		DatabasePort:     getEnvWithDefault("DATABASE_PORT", "5432"),
		PostgresUser:     getEnvWithDefault("POSTGRES_USER", "postgres"),
		PostgresPassword: getEnvWithDefault("POSTGRES_PASSWORD", "postgres"),
		DatabaseName:     getEnvWithDefault("DATABASE_NAME", "postgres"),

		JWTSecret: getEnv("JWT_SECRET"),

		Port:            getEnvWithDefault("PORT", "8000"),
		CorsOrigins:     splitList(getEnvWithDefault("CORS_ORIGINS", "http://localhost,http://localhost:3000")),
		CacheTTLSeconds: getEnvAsInt("CACHE_TTL_SECONDS", 30),

		// optional, announcements are skipped when unset
		DiscordBotToken:          os.Getenv("DISCORD_BOT_TOKEN"),
		DiscordAnnounceChannelID: os.Getenv("DISCORD_ANNOUNCE_CHANNEL_ID"),

		// optional, domain events are not published when unset
		KafkaBroker: os.Getenv("KAFKA_BROKER"),
	}
	if config.JWTSecret == "" {
		config.JWTSecret = "dummyjwt"
	}
	return config
}

func Env() *Config {
	onceEnv.Do(func() {
		appConfig = loadConfig()
	})
	return appConfig
}

func getEnv(key string) string {
	value := os.Getenv(key)
	if value == "" && IsProduction() {
		panic(fmt.Sprintf("Required environment variable %s is not set", key))
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	var value int
	_, err := fmt.Sscanf(valueStr, "%d", &value)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func splitList(value string) []string {
	items := make([]string, 0)
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// IsProduction returns true if running in production
func IsProduction() bool {
	return getEnvWithDefault("ENVIRONMENT", "development") == "production"
}
