// Package planningcenter is a minimal client for the hosted groups API. It
// covers the single listing call the proxy needs and nothing else.
package planningcenter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const defaultBaseURL = "https://api.planningcenteronline.com/groups/v2"

type Client struct {
	httpClient *http.Client
	baseURL    string
	appID      string
	secret     string
}

// NewClient builds a client authenticating with the app-id/secret pair.
func NewClient(appID, secret string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    defaultBaseURL,
		appID:      appID,
		secret:     secret,
	}
}

// NewClientWithBaseURL targets an alternate endpoint, used by tests.
func NewClientWithBaseURL(appID, secret, baseURL string) *Client {
	c := NewClient(appID, secret)
	c.baseURL = baseURL
	return c
}

// ListGroups fetches the full group list. Errors cover network failure,
// non-2xx responses, and undecodable payloads; callers decide how to
// recover.
func (c *Client) ListGroups(ctx context.Context) (*ListResponse, error) {
	apiURL := fmt.Sprintf("%s/groups?per_page=100", c.baseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return nil, err
	}
	req.SetBasicAuth(c.appID, c.secret)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("groups API request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("groups API returned unexpected status: %s", resp.Status)
	}

	var listResp ListResponse
	if err := json.NewDecoder(resp.Body).Decode(&listResp); err != nil {
		return nil, fmt.Errorf("failed to decode groups response: %v", err)
	}
	return &listResp, nil
}
