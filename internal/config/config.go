package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const envFile = ".env.dev"

type Config struct {
	GinMode   string `env:"GIN_MODE" envDefault:"debug"`
	TZ        string `env:"TZ" envDefault:"UTC"`
	Port      string `env:"PORT" envDefault:"8080"`
	DBDriver  string `env:"DB_DRIVER" envDefault:"postgres"`
	DBHost    string `env:"DB_HOST" envDefault:"localhost"`
	DBPort    string `env:"DB_PORT"`
	DBUser    string `env:"DB_USER" envDefault:"postgres"`
	DBPass    string `env:"DB_PASS"`
	DBName    string `env:"DB_NAME" envDefault:"bookverse"`
	DBSSLMode string `env:"DB_SSLMODE"`
	// SQLitePath is used when DBDriver is sqlite.
	SQLitePath string `env:"SQLITE_PATH" envDefault:"bookverse.db"`

	UploadDir       string `env:"UPLOAD_DIR" envDefault:"uploads/img"`
	MaxImageBytes   int64  `env:"MAX_IMAGE_BYTES" envDefault:"5242880"`
	AuthorCacheSize int    `env:"AUTHOR_CACHE_SIZE" envDefault:"256"`
	SiteTitle       string `env:"SITE_TITLE" envDefault:"Bookverse"`
}

// Load reads the configuration from the environment. In debug mode a .env.dev
// file found in the working directory or any parent is loaded first.
func Load() (*Config, error) {
	if getenv("GIN_MODE", "debug") == "debug" {
		if path, ok := findEnvFile(); ok {
			if err := godotenv.Load(path); err != nil {
				log.Printf("warning: could not load %s: %v", path, err)
			} else {
				log.Printf("loaded %s from %s", envFile, path)
			}
		}
	}

	return Parse()
}

// Parse reads the configuration from the environment without touching env files.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if cfg.DBSSLMode == "" {
		if cfg.GinMode == "release" {
			cfg.DBSSLMode = "require"
		} else {
			cfg.DBSSLMode = "disable"
		}
	}

	if cfg.DBPort == "" {
		switch cfg.DBDriver {
		case "mysql":
			cfg.DBPort = "3306"
		default:
			cfg.DBPort = "5432"
		}
	}

	switch cfg.DBDriver {
	case "postgres", "mysql", "sqlite":
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	return cfg, nil
}

func (c *Config) DSN() string {
	switch c.DBDriver {
	case "sqlite":
		if strings.Contains(c.SQLitePath, "?") {
			return c.SQLitePath
		}
		return c.SQLitePath + "?_foreign_keys=on"
	case "mysql":
		return fmt.Sprintf(
			"%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=%s",
			c.DBUser,
			c.DBPass,
			c.DBHost,
			c.DBPort,
			c.DBName,
			url.QueryEscape(c.TZ),
		)
	default:
		return fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
			c.DBHost,
			c.DBUser,
			c.DBPass,
			c.DBName,
			c.DBPort,
			c.DBSSLMode,
			c.TZ,
		)
	}
}

func (c *Config) Addr() string {
	return ":" + c.Port
}

func findEnvFile() (string, bool) {
	dir, err := os.Getwd()
	if err != nil {
		return "", false
	}

	for {
		candidate := filepath.Join(dir, envFile)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
