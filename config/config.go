// config/config.go
package config

import (
	"fmt"
	"os"
)

type Config struct {
	Env string

	// Sports data API
	APIKey        string
	ScoresBaseURL string
	GamesFile     string
	DateOverride  string

	// Pub/Sub configuration
	ProjectID string
	TopicID   string

	// Cloud Tasks configuration (trigger tool)
	QueueID           string
	LocationID        string
	UseEmulator       bool
	CloudTasksAddress string
	HandlerAddress    string

	// Redis configuration (worker mode)
	RedisAddress  string
	RedisPassword string
	RedisDB       int
}

func LoadConfig() *Config {
	return &Config{
		Env: os.Getenv("APP_ENV"),

		// Sports data API
		APIKey:        os.Getenv("SPORTSDATA_API_KEY"),
		ScoresBaseURL: getEnvOrDefault("SPORTSDATA_BASE_URL", "https://api.sportsdata.io"),
		GamesFile:     os.Getenv("GAMES_FILE"),
		DateOverride:  os.Getenv("GAME_DATE"),

		// Pub/Sub
		ProjectID: os.Getenv("GCP_PROJECT_ID"),
		TopicID:   os.Getenv("PUBSUB_TOPIC"),

		// Cloud Tasks (trigger tool)
		QueueID:           os.Getenv("CLOUD_TASKS_QUEUE"),
		LocationID:        os.Getenv("GCP_LOCATION"),
		UseEmulator:       os.Getenv("USE_TASKS_EMULATOR") == "true",
		CloudTasksAddress: os.Getenv("CLOUD_TASKS_EMULATOR_HOST"),
		HandlerAddress:    os.Getenv("HANDLER_HOST"),

		// Redis (worker mode)
		RedisAddress:  getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB: func() int {
			if val, ok := os.LookupEnv("REDIS_DB"); ok {
				var intVal int
				_, err := fmt.Sscanf(val, "%d", &intVal)
				if err == nil && intVal >= 0 {
					return intVal
				}
			}
			return 0
		}(),
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
