package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const DefaultSourceURL = "https://github.com/athulvssc/GRD-data/raw/main/goodsReceiptData.csv"

type Config struct {
	Port         string
	SourceURL    string
	FetchTimeout time.Duration
	LogLevel     logrus.Level
}

// ProcessEnvironmentVariables loads a .env file when one exists, then applies
// environment overrides to the defaults.
func ProcessEnvironmentVariables() (*Config, error) {
	_ = godotenv.Load()
	return fromEnvironment(os.Getenv)
}

func fromEnvironment(getenv func(string) string) (*Config, error) {
	env := Config{
		Port:         "9446",
		SourceURL:    DefaultSourceURL,
		FetchTimeout: 30 * time.Second,
		LogLevel:     logrus.InfoLevel,
	}

	envPort := getenv("PORT")
	envSourceURL := getenv("SOURCE_URL")
	envFetchTimeout := getenv("FETCH_TIMEOUT")
	envLogLevel := getenv("LOG_LEVEL")

	if len(envPort) != 0 {
		env.Port = envPort
	}

	if len(envSourceURL) != 0 {
		env.SourceURL = envSourceURL
	}

	if len(envFetchTimeout) != 0 {
		timeout, err := time.ParseDuration(envFetchTimeout)
		if err != nil {
			return nil, fmt.Errorf("FETCH_TIMEOUT: %w", err)
		}
		if timeout < 0 {
			return nil, fmt.Errorf("FETCH_TIMEOUT: must not be negative, got %s", timeout)
		}
		env.FetchTimeout = timeout
	}

	if len(envLogLevel) != 0 {
		level, err := logrus.ParseLevel(envLogLevel)
		if err != nil {
			return nil, fmt.Errorf("LOG_LEVEL: %w", err)
		}
		env.LogLevel = level
	}

	return &env, nil
}
