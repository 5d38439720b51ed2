// Package artacom contains the HTTP client for the partner inventory API.
package artacom

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	appartacom "github.com/Ahmad-Rizki21/InventorySaS-sub001/internal/application/artacom"
	"github.com/Ahmad-Rizki21/InventorySaS-sub001/pkg/config"
)

var _ appartacom.Fetcher = (*Client)(nil)

// Client implements the Fetcher port against the Artacom REST API.
// Authentication is an API key sent in the X-API-Key header.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient builds the partner API client from configuration.
func NewClient(cfg config.ArtacomConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type inventoryEnvelope struct {
	Data []appartacom.Record `json:"data"`
}

// FetchInventory pulls the full inventory snapshot from GET /v1/inventory.
func (c *Client) FetchInventory(ctx context.Context) ([]appartacom.Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1/inventory", nil)
	if err != nil {
		return nil, fmt.Errorf("build artacom request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-API-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call artacom: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("artacom returned %d: %s", resp.StatusCode, string(body))
	}

	var env inventoryEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("decode artacom response: %w", err)
	}
	return env.Data, nil
}
