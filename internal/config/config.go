package config

import (
	"encoding/json"
	"os"
)

// Config is an application configuration struct.
type Config struct {
	Discord *Discord `json:"discord"`
	Mongo   *Mongo   `json:"mongo"`
	Redis   *Redis   `json:"redis"`
	TopGG   *TopGG   `json:"topgg"`
	Stats   *Stats   `json:"stats"`
	Sentry  string   `json:"sentry"`
}

// Discord stores Discord bot configuration. Acquire bot token on Discord's Developer Portal.
// AuthorID is required to enable owner commands. Empty AuthorID may lead to undefined behavior.
type Discord struct {
	Token    string   `json:"token"`
	AuthorID string   `json:"author_id"`
	Prefixes []string `json:"prefixes"`
}

// Mongo stores Mongo connection configuration. Required.
type Mongo struct {
	URI      string `json:"uri"`
	Database string `json:"default_db"`
}

// Redis stores the address of the Redis instance backing lifetime counters.
// Lifetime counters are disabled when empty.
type Redis struct {
	URI string `json:"uri"`
}

// TopGG stores the top.gg API token. Vote statistics are skipped when empty.
type TopGG struct {
	Token string `json:"token"`
}

// Stats overrides statistics collection intervals, in seconds. Zero values
// fall back to the defaults (60s interval, 10s retry).
type Stats struct {
	Interval   int `json:"interval"`
	RetryDelay int `json:"retry_delay"`
}

func FromFile(path string) (*Config, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	err = json.Unmarshal(file, &cfg)
	if err != nil {
		return nil, err
	}

	if cfg.Discord != nil && len(cfg.Discord.Prefixes) == 0 {
		cfg.Discord.Prefixes = []string{"m!"}
	}

	return &cfg, nil
}
