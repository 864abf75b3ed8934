package app

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config is the process configuration, read from the environment.
type Config struct {
	Env      string `envconfig:"APP_ENV" default:"dev"`
	HTTPAddr string `envconfig:"HTTP_ADDR" default:":8000"`

	CORSAllow []string `envconfig:"CORS_ALLOW" default:"*"`
	StaticDir string   `envconfig:"STATIC_DIR" default:"public"`

	// LobbyTitle names the shared public room provisioned at startup
	LobbyTitle string `envconfig:"LOBBY_TITLE" default:"Lobby"`

	RateMax    int           `envconfig:"RATE_MAX" default:"120"`
	RateWindow time.Duration `envconfig:"RATE_WINDOW" default:"1m"`
}

// LoadConfig parses the environment into a Config
func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
