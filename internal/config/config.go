package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	// Ozon seller API
	OzonBaseURL  string
	OzonClientID string
	OzonAPIKey   string

	// Yandex.Market partner API
	MarketBaseURL  string
	MarketToken    string
	FBSCampaignID  string
	DBSCampaignID  string
	FBSWarehouseID string
	DBSWarehouseID string

	// Remnants feed
	RemnantsURL       string
	RemnantsHeaderRow int

	// Database
	DatabaseURL string

	// Kafka
	KafkaBrokers string
	SyncTopic    string

	// API Configuration
	APIPort string
	APIHost string

	// Environment
	Env      string
	LogLevel string
}

func Load() (*Config, error) {
	// Load .env file
	godotenv.Load()

	return &Config{
		OzonBaseURL:  getEnv("OZON_BASE_URL", "https://api-seller.ozon.ru"),
		OzonClientID: getEnv("OZON_CLIENT_ID", ""),
		OzonAPIKey:   getEnv("OZON_API_KEY", ""),

		MarketBaseURL:  getEnv("MARKET_BASE_URL", "https://api.partner.market.yandex.ru"),
		MarketToken:    getEnv("MARKET_TOKEN", ""),
		FBSCampaignID:  getEnv("FBS_CAMPAIGN_ID", ""),
		DBSCampaignID:  getEnv("DBS_CAMPAIGN_ID", ""),
		FBSWarehouseID: getEnv("FBS_WAREHOUSE_ID", ""),
		DBSWarehouseID: getEnv("DBS_WAREHOUSE_ID", ""),

		RemnantsURL:       getEnv("REMNANTS_URL", "https://timeworld.ru/upload/files/ostatki.zip"),
		RemnantsHeaderRow: getEnvAsInt("REMNANTS_HEADER_ROW", 17),

		DatabaseURL: getEnv("DATABASE_URL", ""),

		KafkaBrokers: getEnv("KAFKA_BROKERS", "localhost:9092"),
		SyncTopic:    getEnv("SYNC_TOPIC", "sync-requests"),

		APIPort: getEnv("API_PORT", "8080"),
		APIHost: getEnv("API_HOST", "0.0.0.0"),

		Env:      getEnv("ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
