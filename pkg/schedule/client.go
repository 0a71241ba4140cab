// Package schedule is the client for the remote voyage-schedule API:
// publishing, fetching, listing and deleting saved voyage documents.
// Authentication/session handling lives server-side; the client only
// carries a bearer token.
package schedule

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/venuedeck/venuedeck/pkg/models"
)

// ErrConflict is returned when a publish is rejected because the stored
// schedule changed since hydration.
var ErrConflict = errors.New("schedule: voyage changed on server")

// VoyageSummary is one row of the saved-voyages listing.
type VoyageSummary struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Ship      string    `json:"ship"`
	SailDate  time.Time `json:"sail_date"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Client talks to the schedule API over JSON/HTTP.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// NewClient creates a client for the given API base URL.
func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// ListVoyages fetches the saved-voyages listing.
func (c *Client) ListVoyages() ([]VoyageSummary, error) {
	var out []VoyageSummary
	if err := c.do(http.MethodGet, "/voyages", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Hydrate fetches a voyage's full document.
func (c *Client) Hydrate(voyageID string) (models.Document, error) {
	var doc models.Document
	if err := c.do(http.MethodGet, "/voyages/"+voyageID, nil, &doc); err != nil {
		return models.Document{}, err
	}
	return doc, nil
}

// Persist publishes a voyage document. A 409 from the server maps to
// ErrConflict.
func (c *Client) Persist(voyageID string, doc models.Document) error {
	return c.do(http.MethodPut, "/voyages/"+voyageID, doc, nil)
}

// Delete removes a saved voyage.
func (c *Client) Delete(voyageID string) error {
	return c.do(http.MethodDelete, "/voyages/"+voyageID, nil, nil)
}

func (c *Client) do(method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusConflict:
		return ErrConflict
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 200))
		return fmt.Errorf("%s %s: unexpected status %d: %s", method, path, resp.StatusCode, snippet)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}
