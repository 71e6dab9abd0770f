package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"go-altscan/internal/common"
)

type ExchangeConfig struct {
	BaseURL string `yaml:"base_url"`
	APIKey  string `yaml:"api_key"`
}

type OutputConfig struct {
	DualPath   string `yaml:"dual_path"`
	SinglePath string `yaml:"single_path"`
}

// Config is read once at startup and treated as read-only afterwards.
type Config struct {
	Exchange ExchangeConfig `yaml:"exchange"`
	Output   OutputConfig   `yaml:"output"`
	LogLevel string         `yaml:"log_level"`
}

// LoadConfig reads the YAML file at path and applies environment overrides.
// An empty path skips the file and yields defaults plus environment.
func LoadConfig(path string) (*Config, error) {
	config := &Config{
		LogLevel: common.DefaultLogLevel,
	}

	if path != "" {
		file, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer file.Close()

		d := yaml.NewDecoder(file)
		if err := d.Decode(config); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
	}

	if err := config.applyEnv(); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// applyEnv loads an optional .env file and lets BINANCE_API_KEY,
// BINANCE_BASE_URL and LOG_LEVEL override the file values.
func (c *Config) applyEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}

	if v, ok := os.LookupEnv("BINANCE_API_KEY"); ok {
		c.Exchange.APIKey = v
	}
	if v, ok := os.LookupEnv("BINANCE_BASE_URL"); ok {
		c.Exchange.BaseURL = v
	}
	if v, ok := os.LookupEnv("LOG_LEVEL"); ok {
		c.LogLevel = v
	}
	return nil
}

func (c *Config) Validate() error {
	u, err := url.Parse(c.GetBaseURL())
	if err != nil {
		return fmt.Errorf("invalid exchange base_url: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid exchange base_url %q: absolute http(s) URL required", c.GetBaseURL())
	}
	return nil
}

// GetBaseURL always returns the URL with a trailing slash so endpoint
// paths can be appended directly.
func (c *Config) GetBaseURL() string {
	base := c.Exchange.BaseURL
	if base == "" {
		base = common.DefaultBinanceBaseURL
	}
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return base
}

func (c *Config) GetDualPath() string {
	if c.Output.DualPath == "" {
		return common.DefaultDualOutputPath
	}
	return c.Output.DualPath
}

func (c *Config) GetSinglePath() string {
	if c.Output.SinglePath == "" {
		return common.DefaultSingleOutputPath
	}
	return c.Output.SinglePath
}
