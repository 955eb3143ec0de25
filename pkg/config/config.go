package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Environment string `yaml:"environment"`
	Server      struct {
		Port            int           `yaml:"port"`
		ReadTimeout     time.Duration `yaml:"read_timeout"`
		WriteTimeout    time.Duration `yaml:"write_timeout"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	} `yaml:"server"`
	Metrics struct {
		Enabled bool   `yaml:"enabled"`
		Path    string `yaml:"path"`
	} `yaml:"metrics"`
	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
		Output string `yaml:"output"`
	} `yaml:"log"`
	Quotes struct {
		BaseURL       string        `yaml:"base_url"`
		QuoteAsset    string        `yaml:"quote_asset"`
		DefaultSymbol string        `yaml:"default_symbol"`
		Timeout       time.Duration `yaml:"timeout"`
	} `yaml:"quotes"`
	Mail MailConfig `yaml:"mail"`
	CORS struct {
		AllowOrigins []string `yaml:"allow_origins"`
	} `yaml:"cors"`
}

// MailConfig carries the transactional mail transport credentials. All fields
// must be non-empty before a send is attempted; an incomplete config fails the
// mail path only, never startup.
type MailConfig struct {
	SenderEmail  string `yaml:"sender_email"`
	TenantID     string `yaml:"tenant_id"`
	ClientID     string `yaml:"client_id"`
	ClientSecret string `yaml:"client_secret"`
	PublicAppURL string `yaml:"public_app_url"`
}

// Readiness reports per-field presence, keyed the way the API exposes them.
func (m MailConfig) Readiness() map[string]bool {
	return map[string]bool{
		"senderEmail":  m.SenderEmail != "",
		"tenantId":     m.TenantID != "",
		"clientId":     m.ClientID != "",
		"clientSecret": m.ClientSecret != "",
		"publicAppUrl": m.PublicAppURL != "",
	}
}

// Complete reports whether every required mail field is present.
func (m MailConfig) Complete() bool {
	for _, ok := range m.Readiness() {
		if !ok {
			return false
		}
	}
	return true
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	c.applyDefaults()

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			c.Server.Port = p
		}
	}
	if v := os.Getenv("QUOTES_BASE_URL"); v != "" {
		c.Quotes.BaseURL = v
	}
	if v := os.Getenv("DEFAULT_SYMBOL"); v != "" {
		c.Quotes.DefaultSymbol = v
	}
	if v := os.Getenv("MAIL_SENDER_EMAIL"); v != "" {
		c.Mail.SenderEmail = v
	}
	if v := os.Getenv("MAIL_TENANT_ID"); v != "" {
		c.Mail.TenantID = v
	}
	if v := os.Getenv("MAIL_CLIENT_ID"); v != "" {
		c.Mail.ClientID = v
	}
	if v := os.Getenv("MAIL_CLIENT_SECRET"); v != "" {
		c.Mail.ClientSecret = v
	}
	if v := os.Getenv("PUBLIC_APP_URL"); v != "" {
		c.Mail.PublicAppURL = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}

	return c, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 10 * time.Second
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 10 * time.Second
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10 * time.Second
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "console"
	}
	if c.Log.Output == "" {
		c.Log.Output = "stdout"
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Quotes.QuoteAsset == "" {
		c.Quotes.QuoteAsset = "USDT"
	}
	if c.Quotes.DefaultSymbol == "" {
		c.Quotes.DefaultSymbol = "BTC"
	}
	if c.Quotes.Timeout == 0 {
		c.Quotes.Timeout = 4 * time.Second
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	if c.Quotes.BaseURL == "" {
		return fmt.Errorf("quotes.base_url is required")
	}
	if c.Quotes.Timeout < 0 {
		return fmt.Errorf("quotes.timeout must be positive")
	}
	// Mail credentials are deliberately not required here: data endpoints must
	// serve even when the mail path is unconfigured.
	return nil
}
