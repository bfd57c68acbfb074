package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

// IPEchoClient asks an external echo service for the caller's public address.
type IPEchoClient struct {
	httpClient *retryablehttp.Client
	url        string
}

type ipEchoResponse struct {
	IP string `json:"ip"`
}

// NewIPEchoClient builds a client that makes exactly one attempt per lookup.
func NewIPEchoClient(url string, timeout time.Duration, logger *log.Logger) *IPEchoClient {
	rc := retryablehttp.NewClient()
	rc.RetryMax = 0
	rc.HTTPClient.Timeout = timeout
	rc.Logger = logger
	rc.ErrorHandler = retryablehttp.PassthroughErrorHandler

	return &IPEchoClient{httpClient: rc, url: url}
}

func (c *IPEchoClient) Query(ctx context.Context) (string, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build ip echo request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to reach ip echo service: %w", err)
	}
	defer resp.Body.Close()

	if err := checkResponse(resp); err != nil {
		return "", fmt.Errorf("ip echo failed: %w", err)
	}

	var body ipEchoResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("failed to decode ip echo response: %w", err)
	}
	ip := strings.TrimSpace(body.IP)
	if ip == "" {
		return "", fmt.Errorf("ip echo response has no ip field")
	}
	return ip, nil
}

func checkResponse(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	resp.Body = io.NopCloser(bytes.NewBuffer(body))
	return fmt.Errorf("status: %d, body: %s", resp.StatusCode, string(body))
}
