package config

import "github.com/caarlos0/env/v11"

type ClientConfig struct {
	ServerURL       string `env:"SERVER_URL" envDefault:"http://localhost:5001"`
	PollIntervalMS  int    `env:"POLL_INTERVAL_MS" envDefault:"1000"`
	PollMaxAttempts int    `env:"POLL_MAX_ATTEMPTS" envDefault:"3"`
	PollBackoffMS   int    `env:"POLL_BACKOFF_MS" envDefault:"1000"`
	PlayerName      string `env:"PLAYER_NAME"`
}

func LoadClient() (ClientConfig, error) {
	var cfg ClientConfig
	err := env.Parse(&cfg)
	return cfg, err
}
