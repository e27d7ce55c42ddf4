package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

// DefaultSheetCSVURL is the published Google Sheet export the dashboard
// reads when nothing else is configured.
const DefaultSheetCSVURL = "https://docs.google.com/spreadsheets/d/e/2PACX-1vS5ZtziwobOOI3q4nOCyd0bJoQk0IW7GtSeszy23yLveqRZHBZJajVw7BTFngJnREqS8xaIH93RzGOe/pub?gid=0&single=true&output=csv"

// AppConfig is the runtime configuration, read from openro.toml with
// environment overrides on top (env wins).
type AppConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	AutoOpenBrowser bool   `toml:"auto_open_browser"`

	SheetCSVURL  string `toml:"sheet_csv_url"`
	CacheSeconds int    `toml:"cache_seconds"`

	Source     string `toml:"source"`
	ExcelPath  string `toml:"excel_path"`
	ExcelSheet string `toml:"excel_sheet"`

	LogLevel  string `toml:"log_level"`
	LogFormat string `toml:"log_format"`
}

// LoadConfigInfo reports where values came from, so a --port flag can
// fill in only a defaulted port.
type LoadConfigInfo struct {
	File          string
	PortSpecified bool
}

// DefaultConfig mirrors the deployment defaults.
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Host:            "0.0.0.0",
		Port:            5000,
		AutoOpenBrowser: true,
		SheetCSVURL:     DefaultSheetCSVURL,
		CacheSeconds:    60,
		Source:          "sheet",
		ExcelSheet:      "Details",
		LogLevel:        "info",
		LogFormat:       "text",
	}
}

// Addr is the listen address.
func (c *AppConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// CacheTTL converts the configured cache window.
func (c *AppConfig) CacheTTL() time.Duration {
	return time.Duration(c.CacheSeconds) * time.Second
}

// GetExeDir returns the directory holding the running executable; the
// default config file lives beside it.
func GetExeDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

// LoadConfigWithInfo loads configuration: .env first (missing is fine),
// then the TOML file, then environment overrides. An empty path means
// openro.toml beside the executable, which may be absent; an explicit
// path must exist.
func LoadConfigWithInfo(path string) (*AppConfig, LoadConfigInfo, error) {
	_ = godotenv.Load()

	info := LoadConfigInfo{}
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		exeDir, err := GetExeDir()
		if err != nil {
			exeDir = "."
		}
		path = filepath.Join(exeDir, "openro.toml")
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if uerr := toml.Unmarshal(data, cfg); uerr != nil {
			return nil, info, fmt.Errorf("parse %s: %w", path, uerr)
		}
		info.File = path
		info.PortSpecified = isPortSpecifiedInTOML(data)
	case os.IsNotExist(err) && !explicit:
		// No file next to the executable; defaults plus env suffice.
	default:
		return nil, info, err
	}

	applyEnvOverrides(cfg, &info)
	return cfg, info, nil
}

// LoadConfig loads configuration without the source metadata.
func LoadConfig(path string) (*AppConfig, error) {
	cfg, _, err := LoadConfigWithInfo(path)
	return cfg, err
}

// IsRender reports whether the process runs on Render, where the
// browser launch is suppressed.
func IsRender() bool {
	if strings.EqualFold(strings.TrimSpace(os.Getenv("RENDER")), "true") {
		return true
	}
	return os.Getenv("RENDER_SERVICE_ID") != ""
}

func applyEnvOverrides(cfg *AppConfig, info *LoadConfigInfo) {
	cfg.Host = getEnv("HOST", cfg.Host)
	if v := os.Getenv("PORT"); v != "" {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			cfg.Port = n
			info.PortSpecified = true
		}
	}
	cfg.AutoOpenBrowser = getEnvBool("AUTO_OPEN_BROWSER", cfg.AutoOpenBrowser)
	cfg.SheetCSVURL = getEnv("GOOGLE_SHEET_CSV_URL", cfg.SheetCSVURL)
	cfg.CacheSeconds = getEnvInt("CACHE_SECONDS", cfg.CacheSeconds)
	cfg.Source = getEnv("OPEN_RO_SOURCE", cfg.Source)
	cfg.ExcelPath = getEnv("OPEN_RO_XLSX", cfg.ExcelPath)
	cfg.ExcelSheet = getEnv("OPEN_RO_SHEET", cfg.ExcelSheet)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.LogFormat = getEnv("LOG_FORMAT", cfg.LogFormat)
}

func isPortSpecifiedInTOML(data []byte) bool {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return false
	}
	_, ok := raw["port"]
	return ok
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return strings.EqualFold(v, "true")
}
