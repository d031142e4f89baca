package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	sharedcfg "github.com/couchcryptid/storm-data-shared/config"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	DataPath        string
	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration
	RefreshInterval time.Duration
	CacheSize       int

	// Kafka report publishing.
	KafkaEnabled   bool
	KafkaBrokers   []string
	KafkaSinkTopic string
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	shutdownTimeout, err := sharedcfg.ParseShutdownTimeout()
	if err != nil {
		return nil, err
	}

	refreshInterval, err := parseRefreshInterval()
	if err != nil {
		return nil, err
	}

	cacheSize, err := parseCacheSize()
	if err != nil {
		return nil, err
	}

	logLevel, err := parseLogLevel()
	if err != nil {
		return nil, err
	}

	logFormat := strings.ToLower(sharedcfg.EnvOrDefault("LOG_FORMAT", "json"))
	switch logFormat {
	case "json", "text":
	default:
		return nil, fmt.Errorf("invalid LOG_FORMAT %q (allowed: json, text)", logFormat)
	}

	cfg := &Config{
		DataPath:        sharedcfg.EnvOrDefault("WEATHER_DATA_PATH", "data/weather.csv"),
		HTTPAddr:        sharedcfg.EnvOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:        logLevel,
		LogFormat:       logFormat,
		ShutdownTimeout: shutdownTimeout,
		RefreshInterval: refreshInterval,
		CacheSize:       cacheSize,

		KafkaEnabled:   os.Getenv("KAFKA_ENABLED") == "true",
		KafkaBrokers:   sharedcfg.ParseBrokers(sharedcfg.EnvOrDefault("KAFKA_BROKERS", "localhost:9092")),
		KafkaSinkTopic: strings.TrimSpace(sharedcfg.EnvOrDefault("KAFKA_SINK_TOPIC", "weather-summaries")),
	}

	if cfg.KafkaEnabled {
		if len(cfg.KafkaBrokers) == 0 {
			return nil, errors.New("KAFKA_ENABLED is true but KAFKA_BROKERS is empty")
		}
		if cfg.KafkaSinkTopic == "" {
			return nil, errors.New("KAFKA_SINK_TOPIC is required")
		}
	}

	return cfg, nil
}

// parseLogLevel normalizes LOG_LEVEL to one of debug, info, warn, error.
func parseLogLevel() (string, error) {
	level := strings.ToLower(strings.TrimSpace(sharedcfg.EnvOrDefault("LOG_LEVEL", "info")))
	switch level {
	case "debug", "info", "warn", "error":
		return level, nil
	case "warning":
		return "warn", nil
	default:
		return "", fmt.Errorf("invalid LOG_LEVEL %q (allowed: debug, info, warn, error)", level)
	}
}

func parseRefreshInterval() (time.Duration, error) {
	s := sharedcfg.EnvOrDefault("REFRESH_INTERVAL", "1m")
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid REFRESH_INTERVAL %q", s)
	}
	return d, nil
}

func parseCacheSize() (int, error) {
	s := sharedcfg.EnvOrDefault("CACHE_SIZE", "16")
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid CACHE_SIZE %q", s)
	}
	return n, nil
}
