// Package remote talks to the shipping-request service. Requests live
// there, not in the local collections; this client covers only the contract
// the rest of the app depends on: lookup by request number and status
// updates.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"kurir/internal/model"
)

// ErrNotFound is returned when no request matches the lookup. The lookup
// never returns multiple records.
var ErrNotFound = errors.New("shipping request not found")

// ErrInvalidTransition is returned when a status update would move a request
// backwards or out of a terminal state.
var ErrInvalidTransition = errors.New("invalid status transition")

// Client is an HTTP client for the request service.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient returns a client for the service at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// RequestByNumber looks up the single request with the given request number.
// Returns ErrNotFound when no record matches.
func (c *Client) RequestByNumber(ctx context.Context, number string) (*model.ShippingRequest, error) {
	endpoint := fmt.Sprintf("%s/requests/%s", c.BaseURL, url.PathEscape(number))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("building request lookup: %w", err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("looking up request %s: %w", number, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, ErrNotFound
	default:
		return nil, fmt.Errorf("looking up request %s: unexpected status %d", number, resp.StatusCode)
	}

	var record model.ShippingRequest
	if err := json.NewDecoder(resp.Body).Decode(&record); err != nil {
		return nil, fmt.Errorf("decoding request %s: %w", number, err)
	}
	return &record, nil
}

// UpdateStatus moves a request along its lifecycle. The transition is
// validated locally before the call; on any failure the operation is
// aborted and the remote state is unchanged.
func (c *Client) UpdateStatus(ctx context.Context, id, from, to string) error {
	if !model.ValidRequestTransition(from, to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
	}

	body, err := json.Marshal(map[string]string{"status": to})
	if err != nil {
		return fmt.Errorf("encoding status update: %w", err)
	}

	endpoint := fmt.Sprintf("%s/requests/%s/status", c.BaseURL, url.PathEscape(id))
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("building status update: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("updating request %s status: %w", id, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusNoContent:
		return nil
	case http.StatusNotFound:
		return ErrNotFound
	default:
		return fmt.Errorf("updating request %s status: unexpected status %d", id, resp.StatusCode)
	}
}
