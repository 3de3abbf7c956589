package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// loads configuration from environment variables
func LoadEnvironmentVariables() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		_ = err // not an error - production environments may not have .env file
	}

	baseURL := os.Getenv("BASE_URL")
	auth0Domain := os.Getenv("AUTH0_DOMAIN")
	clientID := os.Getenv("AUTH0_CLIENT_ID")
	clientSecret := os.Getenv("AUTH0_CLIENT_SECRET")
	databaseURL := os.Getenv("DATABASE_URL")
	environment := os.Getenv("ENVIRONMENT")
	port := os.Getenv("PORT")

	if baseURL == "" {
		return nil, fmt.Errorf("BASE_URL environment variable is required")
	}

	if auth0Domain == "" {
		return nil, fmt.Errorf("AUTH0_DOMAIN environment variable is required")
	}

	if clientID == "" {
		return nil, fmt.Errorf("AUTH0_CLIENT_ID environment variable is required")
	}

	if clientSecret == "" {
		return nil, fmt.Errorf("AUTH0_CLIENT_SECRET environment variable is required")
	}

	if databaseURL == "" {
		databaseURL = "sqlite:./data/todos.sqlite"
	}

	if environment == "" {
		environment = "development"
	}

	if port == "" {
		port = "3000"
	}

	// the identity provider domain is used to build URLs, never with a trailing slash
	auth0Domain = strings.TrimSuffix(auth0Domain, "/")
	baseURL = strings.TrimSuffix(baseURL, "/")

	return &Config{
		BaseURL:      baseURL,
		Auth0Domain:  auth0Domain,
		ClientID:     clientID,
		ClientSecret: clientSecret,
		DatabaseURL:  databaseURL,
		Environment:  environment,
		Port:         port,
	}, nil
}
