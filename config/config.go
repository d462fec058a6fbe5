package config

import (
	"os"
	"strconv"
	"time"
)

// Config carries every credential and connection string the pipeline needs.
// Values are read once at process start; the pipeline treats them as opaque
// pre-validated strings.
type Config struct {
	YouTubeAPIKey      string
	RedditClientID     string
	RedditClientSecret string
	TwitterBearerToken string

	DatabaseURI   string
	StoreBackend  string // "postgres" or "dynamodb"
	DynamoTable   string
	AWSEndpoint   string
	ValkeyAddress string
	ValkeyTLS     bool

	OpenAIAPIKey string

	RequestTimeout time.Duration
}

func Load() Config {
	return Config{
		YouTubeAPIKey:      os.Getenv("YOUTUBE_API_KEY"),
		RedditClientID:     os.Getenv("REDDIT_CLIENT_ID"),
		RedditClientSecret: os.Getenv("REDDIT_CLIENT_SECRET"),
		TwitterBearerToken: os.Getenv("TWITTER_BEARER_TOKEN"),

		DatabaseURI:   os.Getenv("DB_URI"),
		StoreBackend:  getEnv("STORE_BACKEND", "postgres"),
		DynamoTable:   getEnv("DYNAMO_COMMENTS_TABLE", "Comments"),
		AWSEndpoint:   os.Getenv("AWS_ENDPOINT"),
		ValkeyAddress: os.Getenv("VALKEY_INIT_ADDRESS"),
		ValkeyTLS:     getEnvAsBool("VALKEY_TLS", false),

		OpenAIAPIKey: os.Getenv("OPENAI_API_KEY"),

		RequestTimeout: getEnvAsDuration("HTTP_REQUEST_TIMEOUT", 10*time.Second),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, err := time.ParseDuration(os.Getenv(key)); err == nil {
		return value
	}
	return defaultValue
}
