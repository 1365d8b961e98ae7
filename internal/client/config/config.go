// Package config loads client settings from defaults, a .env file, the environment and flags.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// Виды хранилища сессии
const (
	StoreBolt   = "bolt"
	StoreSQLite = "sqlite"
)

// Config настройки клиента
type Config struct {
	APIURL     string        `env:"CHAT_API_URL"     envDefault:"http://localhost:4000/api"`
	Store      string        `env:"CHAT_STORE"       envDefault:"bolt"`
	DBPath     string        `env:"CHAT_DB"          envDefault:"chatcli-session.db"`
	LogLevel   string        `env:"CHAT_LOG_LEVEL"   envDefault:"warn"`
	APITimeout time.Duration `env:"CHAT_API_TIMEOUT" envDefault:"10s"`
}

// Load reads the .env file (if any) and then the environment.
// Variables already set in the environment win over the file.
// An empty envFile means ".env" in the working directory, which may be absent.
func Load(envFile string) (Config, error) {
	if err := loadDotEnv(envFile); err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

func loadDotEnv(envFile string) error {
	if envFile == "" {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load .env: %w", err)
		}
		return nil
	}
	if err := godotenv.Load(envFile); err != nil {
		return fmt.Errorf("failed to load %s: %w", envFile, err)
	}
	return nil
}

// BindFlags registers persistent flags that override the loaded values.
// Current values of cfg become flag defaults, so unset flags keep env values.
func (c *Config) BindFlags(fs *pflag.FlagSet) {
	fs.StringVar(&c.APIURL, "api-url", c.APIURL, "backend base URL (CHAT_API_URL)")
	fs.DurationVar(&c.APITimeout, "timeout", c.APITimeout, "request timeout (CHAT_API_TIMEOUT)")
	fs.StringVar(&c.Store, "store", c.Store, "session store: bolt or sqlite (CHAT_STORE)")
	fs.StringVar(&c.DBPath, "db", c.DBPath, "path to the session database (CHAT_DB)")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "debug, info, warn or error (CHAT_LOG_LEVEL)")
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	u, err := url.Parse(c.APIURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid api url %q: must be http(s)://host[/path]", c.APIURL)
	}
	switch c.Store {
	case StoreBolt, StoreSQLite:
	default:
		return fmt.Errorf("unknown store %q: use %s or %s", c.Store, StoreBolt, StoreSQLite)
	}
	if strings.TrimSpace(c.DBPath) == "" {
		return errors.New("db path is empty")
	}
	if c.APITimeout <= 0 {
		return fmt.Errorf("api timeout must be positive, got %s", c.APITimeout)
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel converts LogLevel to slog.Level.
func (c Config) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return lvl, nil
}
