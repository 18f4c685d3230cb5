package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel  string        `yaml:"log-level" env:"GOBBLET_LOG_LEVEL" env-default:"info"`
	HTTPAddr  string        `yaml:"http-addr" env:"GOBBLET_HTTP_ADDR" env-default:":8080"`
	Heartbeat time.Duration `yaml:"heartbeat" env:"GOBBLET_HEARTBEAT" env-default:"15s"`
}

// Load reads the yaml file at path, then env overrides. An empty path reads env only.
func Load(path string) (*Config, error) {
	conf := &Config{}
	var err error
	if path == "" {
		err = cleanenv.ReadEnv(conf)
	} else {
		err = cleanenv.ReadConfig(path, conf)
	}
	if err != nil {
		return nil, fmt.Errorf("unable to load config: %w", err)
	}
	if _, err := ParseLevel(conf.LogLevel); err != nil {
		return nil, err
	}
	return conf, nil
}

// MustLoad - load configuration or panic.
func MustLoad(path string) *Config {
	conf, err := Load(path)
	if err != nil {
		panic(err)
	}
	return conf
}

// ParseLevel maps a config log level onto slog.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
}
