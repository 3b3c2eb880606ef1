// Package tablestore is a thin client for the hosted table API that backs
// the production Property Store. Records come back as raw field maps; the
// repositories transform them into domain models.
package tablestore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"homescout-listings/pkg/logger"
)

// Client issues authenticated requests against one table-API project.
type Client struct {
	baseURL    string
	projectID  string
	publicKey  string
	httpClient *http.Client
}

// NewClient creates a table-API client.
func NewClient(baseURL, projectID, publicKey string) *Client {
	return &Client{
		baseURL:   baseURL,
		projectID: projectID,
		publicKey: publicKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type apiResponse struct {
	Success bool                     `json:"success"`
	Message string                   `json:"message"`
	Data    json.RawMessage          `json:"data"`
	Results []map[string]interface{} `json:"results"`
}

func (c *Client) post(ctx context.Context, path string, payload interface{}) (*apiResponse, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal table API request: %v", err)
	}

	url := fmt.Sprintf("%s/projects/%s%s", c.baseURL, c.projectID, path)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create table API request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Api-Key", c.publicKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.GlobalLogger.Errorf("Table API request failed: url=%s, error=%v", url, err)
		return nil, fmt.Errorf("table API request failed: %v", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read table API response: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		logger.GlobalLogger.Errorf("Table API returned %s: url=%s, response=%s", resp.Status, url, string(raw))
		return nil, fmt.Errorf("table API returned %s", resp.Status)
	}

	var parsed apiResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode table API response: %v", err)
	}
	if !parsed.Success {
		return nil, fmt.Errorf("table API error: %s", parsed.Message)
	}
	return &parsed, nil
}
