package config

import "github.com/caarlos0/env/v11"

type ServerConfig struct {
	HTTPAddr string `env:"HTTP_ADDR" envDefault:":5001"`

	StartingChips int64 `env:"STARTING_CHIPS" envDefault:"1000"`
	SmallBlind    int64 `env:"SMALL_BLIND" envDefault:"10"`
	BigBlind      int64 `env:"BIG_BLIND" envDefault:"20"`

	// Pause before each scripted opponent acts, so the table log reads
	// like a real game instead of resolving instantly.
	OpponentThinkMS int `env:"OPPONENT_THINK_MS" envDefault:"400"`
}

func LoadServer() (ServerConfig, error) {
	var cfg ServerConfig
	err := env.Parse(&cfg)
	return cfg, err
}
