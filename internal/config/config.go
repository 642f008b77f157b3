package config

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	DatabaseURL      string
	TwilioAccountSID string
	TwilioAuthToken  string
	Port             string
	PublicHost       string
	ReportDir        string
}

func ProcessEnvironmentVariables() (*Config, error) {
	// A .env file is optional; deployed environments supply everything
	// through the process environment.
	if err := godotenv.Load(); err != nil {
		logrus.Debug("no .env file found, relying on process environment")
	}

	env := Config{
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		TwilioAccountSID: os.Getenv("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:  os.Getenv("TWILIO_AUTH_TOKEN"),
		Port:             getEnv("PORT", "9446"),
		PublicHost:       getEnv("PUBLIC_HOST", "localhost:9446"),
		ReportDir:        getEnv("REPORT_DIR", "reports"),
	}

	if env.DatabaseURL == "" {
		return nil, errors.New("DATABASE_URL is not set")
	}

	return &env, nil
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultVal
}
