package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	Port            string `yaml:"port"`
	DBPath          string `yaml:"db_path"`
	AppVersion      string `yaml:"app_version"`
	LogLevel        string `yaml:"log_level"`
	LogPretty       bool   `yaml:"log_pretty"`
	EnableDevLogin  bool   `yaml:"enable_dev_login"`
	EnableLIFF      bool   `yaml:"enable_liff"`
	JWTSecret       string `yaml:"jwt_secret"`
	JWTTTLHours     int    `yaml:"jwt_ttl_hours"`
	ImportMaxBody   string `yaml:"import_max_body"`
	ExportBatchSize int    `yaml:"export_batch_size"`
	CatalogCSV      string `yaml:"catalog_csv"`
	CatalogXLSX     string `yaml:"catalog_xlsx"`
}

func Default() AppConfig {
	return AppConfig{
		Port:            "8080",
		DBPath:          "gardenbook.db",
		AppVersion:      "dev",
		LogLevel:        "info",
		EnableDevLogin:  true,
		JWTTTLHours:     24,
		ImportMaxBody:   "50M",
		ExportBatchSize: 500,
	}
}

// Load builds the config from defaults, then the YAML file named by
// CONFIG_FILE (if any), then the environment. A .env file in the working
// directory is folded into the environment first.
func Load() (AppConfig, error) {
	_ = godotenv.Load()

	cfg := Default()
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return cfg, err
		}
	}
	if err := cfg.mergeEnv(os.Getenv); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func (c *AppConfig) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func (c *AppConfig) mergeEnv(getenv func(string) string) error {
	str := func(k string, dst *string) {
		if v := getenv(k); v != "" {
			*dst = v
		}
	}
	var errs []error
	boolean := func(k string, dst *bool) {
		if v := getenv(k); v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", k, err))
				return
			}
			*dst = b
		}
	}
	integer := func(k string, dst *int) {
		if v := getenv(k); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", k, err))
				return
			}
			*dst = n
		}
	}

	str("PORT", &c.Port)
	str("DB_PATH", &c.DBPath)
	str("APP_VERSION", &c.AppVersion)
	str("LOG_LEVEL", &c.LogLevel)
	boolean("LOG_PRETTY", &c.LogPretty)
	boolean("ENABLE_DEV_LOGIN", &c.EnableDevLogin)
	boolean("ENABLE_LIFF", &c.EnableLIFF)
	str("JWT_SECRET", &c.JWTSecret)
	integer("JWT_TTL_HOURS", &c.JWTTTLHours)
	str("IMPORT_MAX_BODY", &c.ImportMaxBody)
	integer("EXPORT_BATCH_SIZE", &c.ExportBatchSize)
	str("CATALOG_CSV", &c.CatalogCSV)
	str("CATALOG_XLSX", &c.CatalogXLSX)
	return errors.Join(errs...)
}

func (c *AppConfig) Validate() error {
	if strings.TrimSpace(c.DBPath) == "" {
		return errors.New("db_path is required")
	}
	if c.ExportBatchSize <= 0 {
		return fmt.Errorf("export_batch_size must be > 0, got %d", c.ExportBatchSize)
	}
	if c.JWTTTLHours <= 0 {
		return fmt.Errorf("jwt_ttl_hours must be > 0, got %d", c.JWTTTLHours)
	}
	if !c.EnableDevLogin && !c.EnableLIFF && c.JWTSecret == "" {
		return errors.New("no authentication enabled: set jwt_secret, enable_liff or enable_dev_login")
	}
	return nil
}

// Redacted returns a copy safe to log.
func (c AppConfig) Redacted() AppConfig {
	if c.JWTSecret != "" {
		c.JWTSecret = "***"
	}
	return c
}
