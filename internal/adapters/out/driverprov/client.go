// Package driverprov implements the REST client for the external
// driver-provider service. The provider owns the drivers; this service only
// reads them and flips their availability flag.
package driverprov

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"assistance/internal/core/domain/model/kernel"
	"assistance/internal/core/ports"
	"assistance/internal/pkg/errs"
)

const defaultTimeout = 10 * time.Second

var _ ports.DriverProviderClient = (*Client)(nil)

// Client talks to the driver-provider REST API:
// GET /driver/{id}, GET /provider/availables, PATCH /driver/{id}.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a provider client for the given base URL.
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

// driverResponse mirrors the provider's driver payload.
type driverResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	IsAvailable bool   `json:"isAvailable"`
}

// availabilityRequest is the PATCH /driver/{id} body.
type availabilityRequest struct {
	IsAvailable bool `json:"isAvailable"`
}

// GetDriver fetches one driver by identifier.
func (c *Client) GetDriver(ctx context.Context, driverID kernel.UUID) (ports.ProviderDriver, error) {
	if err := driverID.Validate(); err != nil {
		return ports.ProviderDriver{}, err
	}

	endpoint := fmt.Sprintf("%s/driver/%s", c.baseURL, driverID.String())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return ports.ProviderDriver{}, err
	}

	var dto driverResponse
	if err := c.do(req, &dto); err != nil {
		return ports.ProviderDriver{}, fmt.Errorf("get driver %s: %w", driverID, err)
	}

	return toProviderDriver(dto)
}

// GetAvailableDrivers fetches the roster of currently available drivers.
func (c *Client) GetAvailableDrivers(ctx context.Context) ([]ports.ProviderDriver, error) {
	endpoint := c.baseURL + "/provider/availables"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	var dtos []driverResponse
	if err := c.do(req, &dtos); err != nil {
		return nil, fmt.Errorf("get available drivers: %w", err)
	}

	drivers := make([]ports.ProviderDriver, 0, len(dtos))
	for _, dto := range dtos {
		driver, err := toProviderDriver(dto)
		if err != nil {
			return nil, fmt.Errorf("get available drivers: %w", err)
		}
		drivers = append(drivers, driver)
	}

	return drivers, nil
}

// SetAvailability flips the driver's availability flag.
func (c *Client) SetAvailability(ctx context.Context, driverID kernel.UUID, available bool) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	body, err := json.Marshal(availabilityRequest{IsAvailable: available})
	if err != nil {
		return err
	}

	endpoint := fmt.Sprintf("%s/driver/%s", c.baseURL, driverID.String())
	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	if err := c.do(req, nil); err != nil {
		return fmt.Errorf("set driver %s availability to %t: %w", driverID, available, err)
	}

	return nil
}

// do executes the request and decodes a JSON body into out when non-nil.
// Any non-2xx status is an infrastructure fault.
func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("provider returned status %d", resp.StatusCode)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode provider response: %w", err)
	}

	return nil
}

func toProviderDriver(dto driverResponse) (ports.ProviderDriver, error) {
	id, err := kernel.UUIDFromString(dto.ID)
	if err != nil {
		return ports.ProviderDriver{}, fmt.Errorf("driver id %q: %w", dto.ID, err)
	}

	return ports.ProviderDriver{
		ID:          id,
		Name:        dto.Name,
		IsAvailable: dto.IsAvailable,
	}, nil
}
