package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort   string
	DatabaseDSN  string
	AccessSecret string
	BaseURL      string
	KafkaBroker  string
	KafkaTopic   string
	KafkaUser    string
	KafkaPass    string
}

func LoadConfig() Config {
	if os.Getenv("ENV") != "prod" {
		if err := godotenv.Overload(); err != nil {
			log.Println("Warning: env file not found or could not be loaded:", err)
		}
	}

	cfg := Config{
		ServerPort:   os.Getenv("SERVER_PORT"),
		DatabaseDSN:  os.Getenv("DATABASE_DSN"),
		AccessSecret: os.Getenv("ACCESS_SECRET"),
		BaseURL:      os.Getenv("BASE_URL"),
		KafkaBroker:  os.Getenv("KAFKA_BROKER"),
		KafkaTopic:   os.Getenv("KAFKA_TOPIC"),
		KafkaUser:    os.Getenv("KAFKA_USERNAME"),
		KafkaPass:    os.Getenv("KAFKA_PASSWORD"),
	}

	if cfg.ServerPort == "" {
		cfg.ServerPort = ":3000"
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "*"
	}

	return cfg
}
