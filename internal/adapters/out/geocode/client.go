// Package geocode implements the outbound client for the address-resolution
// service used at order-creation time.
package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"assistance/internal/core/domain/model/kernel"
	"assistance/internal/core/ports"
	"assistance/internal/pkg/errs"
)

const defaultTimeout = 10 * time.Second

var _ ports.Geocoder = (*Client)(nil)

// Client resolves street addresses via GET /geocode?address=.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a geocoding client for the given base URL.
func NewClient(baseURL string) (*Client, error) {
	if baseURL == "" {
		return nil, errs.NewValueIsRequiredError("baseURL")
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("baseURL", err)
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}, nil
}

// coordinatesResponse mirrors the geocoding service payload.
type coordinatesResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Geocode resolves an address to coordinates.
func (c *Client) Geocode(ctx context.Context, address string) (kernel.Coordinates, error) {
	if address == "" {
		return kernel.Coordinates{}, errs.NewValueIsRequiredError("address")
	}

	endpoint := fmt.Sprintf("%s/geocode?address=%s", c.baseURL, url.QueryEscape(address))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return kernel.Coordinates{}, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return kernel.Coordinates{}, fmt.Errorf("geocode %q: %w", address, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return kernel.Coordinates{}, fmt.Errorf("geocode %q: service returned status %d", address, resp.StatusCode)
	}

	var dto coordinatesResponse
	if err := json.NewDecoder(resp.Body).Decode(&dto); err != nil {
		return kernel.Coordinates{}, fmt.Errorf("geocode %q: decode response: %w", address, err)
	}

	return kernel.NewCoordinates(dto.Latitude, dto.Longitude)
}
