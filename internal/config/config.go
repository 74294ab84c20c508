// Package config holds the scraper defaults and the optional YAML override
// layer on top of them.
package config

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Compiled-in defaults. A YAML file can override any of them.
const (
	BaseURL          = "https://www.olx.in"
	DefaultSearchURL = "https://www.olx.in/items/q-car-cover"
	DefaultMaxPages  = 2
	MinPages         = 1
	MaxPages         = 10
	DefaultTimeout   = 10 * time.Second
	DefaultDelay     = 2 * time.Second
	DefaultOutput    = "olx_car_covers.csv"
	DefaultFormat    = "csv"
	DefaultMockCount = 15
)

// SelectorConfig names the CSS selectors used to locate and read listings.
// Containers are tried in order; the first one matching anything wins.
type SelectorConfig struct {
	Containers  []string `yaml:"containers"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Price       string   `yaml:"price"`
}

// ScraperConfig is the full runtime configuration.
type ScraperConfig struct {
	SearchURL      string            `yaml:"search_url"`
	MaxPages       int               `yaml:"max_pages"`
	OutputFile     string            `yaml:"output_file"`
	Format         string            `yaml:"format"`
	RequestTimeout time.Duration     `yaml:"request_timeout"`
	RequestDelay   time.Duration     `yaml:"request_delay"`
	MockCount      int               `yaml:"mock_count"`
	Headers        map[string]string `yaml:"headers"`
	UserAgents     []string          `yaml:"user_agents"`
	Selectors      SelectorConfig    `yaml:"selectors"`
}

// Default returns the built-in configuration.
func Default() *ScraperConfig {
	cfg := &ScraperConfig{}
	applyDefaults(cfg)
	return cfg
}

// LoadFromFile loads configuration overrides from a YAML file.
func LoadFromFile(filename string) (*ScraperConfig, error) {
	if filename == "" {
		return nil, fmt.Errorf("configuration filename cannot be empty")
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file: %w", err)
	}

	return LoadFromBytes(data)
}

// LoadFromBytes parses YAML configuration, fills defaults, and validates.
func LoadFromBytes(data []byte) (*ScraperConfig, error) {
	var cfg ScraperConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML configuration: %w", err)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func applyDefaults(cfg *ScraperConfig) {
	if cfg.SearchURL == "" {
		cfg.SearchURL = DefaultSearchURL
	}
	if cfg.MaxPages == 0 {
		cfg.MaxPages = DefaultMaxPages
	}
	if cfg.OutputFile == "" {
		cfg.OutputFile = DefaultOutput
	}
	if cfg.Format == "" {
		cfg.Format = DefaultFormat
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = DefaultTimeout
	}
	if cfg.RequestDelay <= 0 {
		cfg.RequestDelay = DefaultDelay
	}
	if cfg.MockCount <= 0 {
		cfg.MockCount = DefaultMockCount
	}
	if len(cfg.Headers) == 0 {
		cfg.Headers = defaultHeaders()
	}
	if len(cfg.UserAgents) == 0 {
		cfg.UserAgents = defaultUserAgents()
	}
	if len(cfg.Selectors.Containers) == 0 {
		cfg.Selectors.Containers = []string{
			`div[data-aut-id="itemBox"]`,
			`div[class*="EIR5N"]`,
			`li[data-aut-id="itemBox"]`,
		}
	}
	if cfg.Selectors.Title == "" {
		cfg.Selectors.Title = `span[data-aut-id="itemTitle"]`
	}
	if cfg.Selectors.Description == "" {
		cfg.Selectors.Description = `span[data-aut-id="itemDescription"]`
	}
	if cfg.Selectors.Price == "" {
		cfg.Selectors.Price = `span[data-aut-id="itemPrice"]`
	}
}

// Validate checks the fields a run depends on. It runs before any network
// activity so bad input never reaches the transport.
func (c *ScraperConfig) Validate() error {
	if err := ValidateSearchURL(c.SearchURL); err != nil {
		return err
	}
	if err := ValidatePageCount(c.MaxPages); err != nil {
		return err
	}
	if c.OutputFile == "" {
		return fmt.Errorf("output file cannot be empty")
	}
	return nil
}

// ValidateSearchURL requires an absolute http(s) URL. Any host is accepted;
// restricting to one marketplace domain would break mirror sites.
func ValidateSearchURL(raw string) error {
	if raw == "" {
		return fmt.Errorf("search URL cannot be empty")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("search URL is not parseable: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("search URL must be an absolute http(s) URL, got %q", raw)
	}
	return nil
}

// ValidatePageCount bounds the page count to [1, 10].
func ValidatePageCount(pages int) error {
	if pages < MinPages || pages > MaxPages {
		return fmt.Errorf("pages must be between %d and %d, got %d", MinPages, MaxPages, pages)
	}
	return nil
}

func defaultHeaders() map[string]string {
	// Accept-Encoding is left to the transport so gzip responses are
	// decompressed transparently.
	return map[string]string{
		"Accept":          "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8",
		"Accept-Language": "en-US,en;q=0.5",
		"Connection":      "keep-alive",
	}
}

func defaultUserAgents() []string {
	return []string{
		"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36",
		"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
		"Mozilla/5.0 (X11; Linux x86_64; rv:121.0) Gecko/20100101 Firefox/121.0",
	}
}
