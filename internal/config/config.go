package config

import (
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Address        string   `yaml:"address"`
		AllowedOrigins []string `yaml:"allowed_origins"`
	} `yaml:"server"`
	Backend struct {
		BaseURL        string        `yaml:"base_url"`
		RequestTimeout time.Duration `yaml:"request_timeout"`
	} `yaml:"backend"`
	Redis struct {
		Addr     string        `yaml:"addr"`
		Password string        `yaml:"password"`
		DB       int           `yaml:"db"`
		HomeTTL  time.Duration `yaml:"home_ttl"`
	} `yaml:"redis"`
	Pages struct {
		FavoritesSize int `yaml:"favorites_size"`
		AdminSize     int `yaml:"admin_size"`
		ReportsSize   int `yaml:"reports_size"`
	} `yaml:"pages"`
}

// LoadConfig reads config/config.yaml when present and applies env overrides.
// A missing file falls back to defaults so the gateway runs with nothing but
// API_BASE_URL set.
func LoadConfig() Config {
	var cfg Config

	data, err := os.ReadFile("config/config.yaml")
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			log.Fatalf("Failed to unmarshal config data: %v", err)
		}
	}

	if cfg.Server.Address == "" {
		cfg.Server.Address = ":4001"
	}
	if port := os.Getenv("PORT"); port != "" {
		cfg.Server.Address = ":" + port
	}
	if len(cfg.Server.AllowedOrigins) == 0 {
		cfg.Server.AllowedOrigins = []string{
			"http://localhost:3000",
			"http://localhost:5173",
			"http://localhost:5174",
		}
	}

	if cfg.Backend.BaseURL == "" {
		cfg.Backend.BaseURL = "http://localhost:8080/api"
	}
	if base := os.Getenv("API_BASE_URL"); base != "" {
		cfg.Backend.BaseURL = base
	}
	if cfg.Backend.RequestTimeout <= 0 {
		cfg.Backend.RequestTimeout = 10 * time.Second
	}

	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		cfg.Redis.Addr = addr
	}
	if cfg.Redis.HomeTTL <= 0 {
		cfg.Redis.HomeTTL = 5 * time.Minute
	}

	if cfg.Pages.FavoritesSize <= 0 {
		cfg.Pages.FavoritesSize = 12
	}
	if cfg.Pages.AdminSize <= 0 {
		cfg.Pages.AdminSize = 10
	}
	if cfg.Pages.ReportsSize <= 0 {
		cfg.Pages.ReportsSize = 10
	}

	return cfg
}
