package config

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Listen   string       `yaml:"listen"`
	LogLevel string       `yaml:"log_level"`
	ImageDir string       `yaml:"image_dir"`
	Vision   VisionConfig `yaml:"vision"`
	Store    StoreConfig  `yaml:"store"`
	Kafka    KafkaConfig  `yaml:"kafka"`
	Auth     AuthConfig   `yaml:"auth"`
}

type VisionConfig struct {
	GeminiAPIKey  string `yaml:"gemini_api_key"`
	GeminiModel   string `yaml:"gemini_model"`
	OpenAIAPIKey  string `yaml:"openai_api_key"`
	OpenAIModel   string `yaml:"openai_model"`
	OpenAIBaseURL string `yaml:"openai_base_url"`
}

type StoreConfig struct {
	PostgresDSN string `yaml:"postgres_dsn"`
	RecordsFile string `yaml:"records_file"`
}

type KafkaConfig struct {
	Brokers []string `yaml:"brokers"`
	Topic   string   `yaml:"topic"`
}

type AuthConfig struct {
	OktaIssuer   string `yaml:"okta_issuer"`
	OktaAudience string `yaml:"okta_audience"`
}

// Load builds the config from defaults, an optional config.yaml, and
// environment overrides, in that precedence order.
func Load() (*Config, error) {
	cfg := &Config{
		Listen:   ":8080",
		LogLevel: "info",
		ImageDir: "images",
		Vision: VisionConfig{
			GeminiModel: "gemini-2.5-flash",
			OpenAIModel: "gpt-4o-mini",
		},
		Store: StoreConfig{
			RecordsFile: "TriageRecords.json",
		},
		Kafka: KafkaConfig{
			Topic: "straysense-reports",
		},
	}

	if data, err := os.ReadFile("config.yaml"); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	}

	if v := os.Getenv("PORT"); v != "" {
		cfg.Listen = ":" + v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("IMAGE_DIR"); v != "" {
		cfg.ImageDir = v
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		cfg.Vision.GeminiAPIKey = v
	}
	if v := os.Getenv("GEMINI_MODEL"); v != "" {
		cfg.Vision.GeminiModel = v
	}
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		cfg.Vision.OpenAIAPIKey = v
	}
	if v := os.Getenv("OPENAI_MODEL"); v != "" {
		cfg.Vision.OpenAIModel = v
	}
	if v := os.Getenv("OPENAI_BASE_URL"); v != "" {
		cfg.Vision.OpenAIBaseURL = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.Store.PostgresDSN = v
	}
	if v := os.Getenv("RECORDS_FILE"); v != "" {
		cfg.Store.RecordsFile = v
	}
	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		cfg.Kafka.Brokers = strings.Split(v, ",")
	}
	if v := os.Getenv("KAFKA_TOPIC"); v != "" {
		cfg.Kafka.Topic = v
	}
	if v := os.Getenv("OKTA_ISSUER"); v != "" {
		cfg.Auth.OktaIssuer = v
	}
	if v := os.Getenv("OKTA_AUDIENCE"); v != "" {
		cfg.Auth.OktaAudience = v
	}

	return cfg, nil
}
