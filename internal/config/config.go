package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/benbeisheim/hotseat-chess/internal/model"
	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	ListenAddr     string
	AllowedOrigins []string
	ViewerSide     model.Side
	TurnOverDelay  time.Duration
	LogLevel       string
	LogFormat      string
}

func defaults() *AppConfig {
	return &AppConfig{
		ListenAddr:     ":3000",
		AllowedOrigins: []string{"http://localhost:5173"},
		ViewerSide:     model.Light,
		TurnOverDelay:  model.DefaultTurnOverDelay,
		LogLevel:       "info",
		LogFormat:      "console",
	}
}

// Load reads the optional YAML file named by CHESS_CONFIG, then applies
// environment overrides. Unparseable numbers keep the previous value; an
// unknown viewer side is an error.
func Load() (*AppConfig, error) {
	return load(os.Getenv)
}

func load(getenv func(string) string) (*AppConfig, error) {
	cfg := defaults()

	if path := strings.TrimSpace(getenv("CHESS_CONFIG")); path != "" {
		if err := cfg.readFile(path); err != nil {
			return nil, err
		}
	}

	if v := strings.TrimSpace(getenv("LISTEN_ADDR")); v != "" {
		cfg.ListenAddr = v
	}
	if v := strings.TrimSpace(getenv("ALLOWED_ORIGINS")); v != "" {
		cfg.AllowedOrigins = splitList(v)
	}
	if v := strings.TrimSpace(getenv("VIEWER_SIDE")); v != "" {
		side, err := model.ParseSide(v)
		if err != nil {
			return nil, fmt.Errorf("VIEWER_SIDE: %w", err)
		}
		cfg.ViewerSide = side
	}
	if v := strings.TrimSpace(getenv("TURN_OVER_DELAY_MS")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.TurnOverDelay = time.Duration(n) * time.Millisecond
		}
	}
	if v := strings.TrimSpace(getenv("LOG_LEVEL")); v != "" {
		cfg.LogLevel = v
	}
	if v := strings.ToLower(strings.TrimSpace(getenv("LOG_FORMAT"))); v == "json" || v == "console" {
		cfg.LogFormat = v
	}

	return cfg, nil
}

type fileConfig struct {
	ListenAddr     string   `yaml:"listen_addr"`
	AllowedOrigins []string `yaml:"allowed_origins"`
	ViewerSide     string   `yaml:"viewer_side"`
	TurnOverDelay  string   `yaml:"turn_over_delay"`
	LogLevel       string   `yaml:"log_level"`
	LogFormat      string   `yaml:"log_format"`
}

func (cfg *AppConfig) readFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	if fc.ListenAddr != "" {
		cfg.ListenAddr = fc.ListenAddr
	}
	if len(fc.AllowedOrigins) > 0 {
		cfg.AllowedOrigins = fc.AllowedOrigins
	}
	if fc.ViewerSide != "" {
		side, err := model.ParseSide(fc.ViewerSide)
		if err != nil {
			return fmt.Errorf("viewer_side: %w", err)
		}
		cfg.ViewerSide = side
	}
	if fc.TurnOverDelay != "" {
		if d, err := time.ParseDuration(fc.TurnOverDelay); err == nil && d >= 0 {
			cfg.TurnOverDelay = d
		}
	}
	if fc.LogLevel != "" {
		cfg.LogLevel = fc.LogLevel
	}
	if f := strings.ToLower(fc.LogFormat); f == "json" || f == "console" {
		cfg.LogFormat = f
	}
	return nil
}

func splitList(v string) []string {
	var out []string
	for _, p := range strings.Split(v, ",") {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
