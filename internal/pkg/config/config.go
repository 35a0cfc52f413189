package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/spf13/viper"
)

var GlobalConfig *Config

// Config is the full service configuration.
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Sheets SheetsConfig `mapstructure:"sheets"`
	Auth   AuthConfig   `mapstructure:"auth"`
	Log    LogConfig    `mapstructure:"log"`
}

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Name string `mapstructure:"name"`
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release
}

// SheetsConfig points the service at the externally owned spreadsheet
// and the script endpoint that performs writes.
type SheetsConfig struct {
	SpreadsheetURL string `mapstructure:"spreadsheet_url"`
	WriteEndpoint  string `mapstructure:"write_endpoint"`
	RequestTimeout int    `mapstructure:"request_timeout"` // seconds
	CacheTTL       int    `mapstructure:"cache_ttl"`       // seconds, default per-tab reuse window
	RefreshCron    string `mapstructure:"refresh_cron"`    // pre-warm schedule, with seconds field
}

// AuthConfig groups authentication settings.
type AuthConfig struct {
	JWT JWTConfig `mapstructure:"jwt"`
}

// JWTConfig holds token signing settings.
type JWTConfig struct {
	Secret             string `mapstructure:"secret"`
	AccessTokenExpire  int    `mapstructure:"access_token_expire"`  // seconds
	RefreshTokenExpire int    `mapstructure:"refresh_token_expire"` // seconds
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level    string `mapstructure:"level"`  // debug, info, warn, error
	Format   string `mapstructure:"format"` // json, console
	Output   string `mapstructure:"output"` // stdout, file
	FilePath string `mapstructure:"file_path"`
}

// Load reads configuration from the given path, falling back to the
// conventional search locations.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath(".")
	}

	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	GlobalConfig = config

	return config, nil
}

// Validate enforces the startup-fatal settings: both external endpoints
// must be present and the spreadsheet URL must carry a document ID.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Sheets.SpreadsheetURL) == "" {
		return fmt.Errorf("sheets.spreadsheet_url is required")
	}
	if strings.TrimSpace(c.Sheets.WriteEndpoint) == "" {
		return fmt.Errorf("sheets.write_endpoint is required")
	}
	if _, err := c.Sheets.SpreadsheetID(); err != nil {
		return err
	}
	if _, err := url.Parse(c.Sheets.WriteEndpoint); err != nil {
		return fmt.Errorf("sheets.write_endpoint is not a valid URL: %w", err)
	}
	if c.Auth.JWT.Secret == "" {
		return fmt.Errorf("auth.jwt.secret is required")
	}
	return nil
}

// SpreadsheetID extracts the document ID from a standard sheets URL
// ("…/d/<id>/…"). A bare ID is accepted as-is.
func (s *SheetsConfig) SpreadsheetID() (string, error) {
	raw := strings.TrimSpace(s.SpreadsheetURL)
	if raw == "" {
		return "", fmt.Errorf("sheets.spreadsheet_url is required")
	}

	if idx := strings.Index(raw, "/d/"); idx >= 0 {
		rest := raw[idx+len("/d/"):]
		if end := strings.IndexByte(rest, '/'); end >= 0 {
			rest = rest[:end]
		}
		if rest == "" {
			return "", fmt.Errorf("sheets.spreadsheet_url has an empty document id")
		}
		return rest, nil
	}

	if strings.Contains(raw, "/") {
		return "", fmt.Errorf("sheets.spreadsheet_url: cannot find /d/<id> segment in %q", raw)
	}
	return raw, nil
}
