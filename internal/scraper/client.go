// Package scraper implements the live harvesting path: HTTP client, field
// extraction, page harvesting, and pagination.
package scraper

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/sbmraj03/OLX-car-cover-scraper/internal/utils"
)

// HTTPClient fetches pages with browser-like headers and a hard timeout.
type HTTPClient struct {
	httpClient *http.Client
	headers    map[string]string
	userAgents []string
	currentUA  int
	uaMutex    sync.Mutex
	logger     utils.Logger
}

// ClientConfig defines configuration options for the HTTP client.
type ClientConfig struct {
	Timeout    time.Duration
	Headers    map[string]string
	UserAgents []string
}

// NewHTTPClient creates an HTTP client with the given configuration.
func NewHTTPClient(cfg ClientConfig, logger utils.Logger) *HTTPClient {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if len(cfg.UserAgents) == 0 {
		cfg.UserAgents = []string{
			"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36",
		}
	}

	return &HTTPClient{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		headers:    cfg.Headers,
		userAgents: cfg.UserAgents,
		logger:     logger,
	}
}

// Fetch performs a GET against url and parses the response body. A non-2xx
// status is a fetch failure.
func (c *HTTPClient) Fetch(ctx context.Context, url string) (*goquery.Document, error) {
	c.logger.Infof("fetching URL: %s", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", c.nextUserAgent())
	for key, value := range c.headers {
		req.Header.Set(key, value)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status: %s", resp.Status)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	return doc, nil
}

// nextUserAgent rotates through the configured user agents.
func (c *HTTPClient) nextUserAgent() string {
	c.uaMutex.Lock()
	defer c.uaMutex.Unlock()

	ua := c.userAgents[c.currentUA]
	c.currentUA = (c.currentUA + 1) % len(c.userAgents)
	return ua
}

// Close releases idle connections held by the client.
func (c *HTTPClient) Close() {
	if transport, ok := c.httpClient.Transport.(*http.Transport); ok {
		transport.CloseIdleConnections()
	}
}
