package config

type Config struct {
	BaseURL      string
	Auth0Domain  string
	ClientID     string
	ClientSecret string
	DatabaseURL  string
	Environment  string
	Port         string
}

// reports whether the server runs in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
