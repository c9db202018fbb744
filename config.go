package upvest

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/upvest/upvest-go/auth"
)

type envConfig struct {
	BaseURL      string `env:"UPVEST_BASE_URL" envDefault:"https://api.playground.upvest.co"`
	APIKey       string `env:"UPVEST_API_KEY"`
	APISecret    string `env:"UPVEST_API_SECRET"`
	Passphrase   string `env:"UPVEST_PASSPHRASE"`
	ClientID     string `env:"UPVEST_CLIENT_ID"`
	ClientSecret string `env:"UPVEST_CLIENT_SECRET"`
	Username     string `env:"UPVEST_USERNAME"`
	Password     string `env:"UPVEST_PASSWORD"`
}

// NewFromEnv builds a client from UPVEST_* environment variables. A .env
// file in the working directory is loaded first if present. API key
// variables take precedence when both credential sets are present.
func NewFromEnv() (*Client, error) {
	_ = godotenv.Load()

	var ec envConfig
	if err := env.Parse(&ec); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	cfg := Config{BaseURL: ec.BaseURL}

	switch {
	case ec.APIKey != "":
		cfg.Auth.APIKey = &auth.APIKeyCredentials{
			Key:        ec.APIKey,
			Secret:     ec.APISecret,
			Passphrase: ec.Passphrase,
		}
	case ec.ClientID != "":
		cfg.Auth.OAuth = &auth.OAuthCredentials{
			ClientID:     ec.ClientID,
			ClientSecret: ec.ClientSecret,
			Username:     ec.Username,
			Password:     ec.Password,
		}
	default:
		return nil, fmt.Errorf("no credentials found in environment (set UPVEST_API_KEY or UPVEST_CLIENT_ID)")
	}

	return New(cfg)
}
