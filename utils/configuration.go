package utils

import (
	"encoding/json"
	"log"
	"os"
)

type Config struct {
	ServerPort        string `json:"SERVER_PORT"`
	RequestsPerMinute int    `json:"REQUESTS_PER_MINUTE"`
	DBHealthInterval  int64  `json:"DATABASE_HEALTH_LOOP_INTERVAL"`
	CacheTTL          int64  `json:"CACHE_TTL_SECONDS"`
	DBUser            string `json:"DB_USER"`
	DBPassword        string `json:"DB_PASSWORD"`
	DBName            string `json:"DB_NAME"`
	DBHost            string `json:"DB_HOST"`
	DBPort            string `json:"DB_PORT"`
	DBSSLMode         string `json:"DB_SSLMODE"`
	RedisAddress      string `json:"REDIS_ADDRESS"`
	RedisPassword     string `json:"REDIS_PASSWORD"`
	RedisDB           int    `json:"REDIS_DB"`
}

func LoadConfiguration(file string) Config {
	var config Config
	// open file from a string
	configFile, err := os.Open(file)
	if err != nil {
		log.Fatalf("Could not open configuration file: %v", err)
	}
	defer configFile.Close()
	if err := json.NewDecoder(configFile).Decode(&config); err != nil {
		log.Fatalf("Could not parse configuration file: %v", err)
	}
	applyDefaults(&config)
	return config
}

// applyDefaults - fields the file leaves unset fall back to sane values so a
// minimal config only needs the connection credentials.
func applyDefaults(config *Config) {
	if config.ServerPort == "" {
		config.ServerPort = "3000"
	}
	if config.RequestsPerMinute == 0 {
		config.RequestsPerMinute = 60
	}
	if config.DBHealthInterval == 0 {
		config.DBHealthInterval = 10
	}
	if config.CacheTTL == 0 {
		config.CacheTTL = 60
	}
}
