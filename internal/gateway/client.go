// internal/gateway/client.go
package gateway

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Config represents the configuration for the payment gateway client.
type Config struct {
	// BaseURL is the base URL of the gateway API
	BaseURL string
	// ServerKey authenticates the merchant (HTTP basic, key as username)
	ServerKey string
	// HTTPClient is an optional custom HTTP client
	HTTPClient *http.Client
	// Timeout is the default request timeout
	Timeout time.Duration
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		BaseURL:    "https://api.sandbox.midtrans.com",
		HTTPClient: http.DefaultClient,
		Timeout:    10 * time.Second,
	}
}

// Client talks to the external payment gateway. It only initiates charges
// and polls status; settlement always arrives through the asynchronous
// notification, never synchronously from these calls.
type Client struct {
	config *Config
	client *http.Client
}

// NewClient creates a new gateway client with the given configuration
func NewClient(config *Config) *Client {
	if config == nil {
		config = DefaultConfig()
	}

	client := config.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}

	return &Client{
		config: config,
		client: client,
	}
}

// ChargeRequest represents a charge initiation request
type ChargeRequest struct {
	OrderRef      string `json:"order_id"`
	GrossAmount   int64  `json:"gross_amount"`
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
	Description   string `json:"description,omitempty"`
}

// ChargeResponse represents a charge initiation response
type ChargeResponse struct {
	OrderRef          string `json:"order_id"`
	TransactionStatus string `json:"transaction_status"`
	RedirectURL       string `json:"redirect_url"`
	Error             string `json:"error,omitempty"`
}

// Charge initiates a payment for the given order
func (c *Client) Charge(ctx context.Context, req *ChargeRequest) (*ChargeResponse, error) {
	if req == nil {
		return nil, errors.New("request cannot be nil")
	}
	if req.OrderRef == "" || req.GrossAmount <= 0 {
		return nil, errors.New("order_id and a positive gross_amount are required")
	}

	endpoint := fmt.Sprintf("%s/v2/charge", c.config.BaseURL)

	var resp ChargeResponse
	if err := c.doRequest(ctx, http.MethodPost, endpoint, req, &resp); err != nil {
		return nil, err
	}
	if resp.Error != "" {
		return nil, fmt.Errorf("gateway error: %s", resp.Error)
	}
	return &resp, nil
}

// StatusResponse represents a transaction status response
type StatusResponse struct {
	OrderRef          string `json:"order_id"`
	TransactionStatus string `json:"transaction_status"`
	FraudStatus       string `json:"fraud_status,omitempty"`
	SettlementTime    string `json:"settlement_time,omitempty"`
}

// Status fetches the current gateway-side status of an order
func (c *Client) Status(ctx context.Context, orderRef string) (*StatusResponse, error) {
	if orderRef == "" {
		return nil, errors.New("order reference is required")
	}

	endpoint := fmt.Sprintf("%s/v2/%s/status", c.config.BaseURL, orderRef)

	var resp StatusResponse
	if err := c.doRequest(ctx, http.MethodGet, endpoint, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) doRequest(ctx context.Context, method, endpoint string, payload, out interface{}) error {
	var body *bytes.Buffer
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("marshaling request: %w", err)
		}
		body = bytes.NewBuffer(data)
	} else {
		body = bytes.NewBuffer(nil)
	}

	ctx, cancel := context.WithTimeout(ctx, c.config.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Basic "+base64.StdEncoding.EncodeToString([]byte(c.config.ServerKey+":")))

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected gateway status code: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
