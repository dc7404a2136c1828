// Package metadata looks up title details from the Cinemeta catalog so
// responses and exports can carry human-readable names.
package metadata

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	apperrors "github.com/ameen-roayan/stremio-cleanstream/pkg/errors"
)

// Config holds Cinemeta client settings.
type Config struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
}

// Meta is the subset of a Cinemeta meta object the service uses.
type Meta struct {
	ID     string `json:"id"`
	Type   string `json:"type"`
	Name   string `json:"name"`
	Poster string `json:"poster"`
	Year   string `json:"year"`
}

type metaResponse struct {
	Meta *Meta `json:"meta"`
}

// Client fetches title metadata over HTTP.
type Client struct {
	config     Config
	httpClient *http.Client
}

// NewClient creates a Cinemeta client. Zero config fields get sensible
// defaults.
func NewClient(config Config) *Client {
	if config.BaseURL == "" {
		config.BaseURL = "https://v3-cinemeta.strem.io"
	}
	if config.Timeout == 0 {
		config.Timeout = 10 * time.Second
	}

	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
	}
}

// GetMeta fetches metadata for a title. contentType is "movie" or
// "series" per the Stremio catalog convention.
func (c *Client) GetMeta(ctx context.Context, contentType, titleID string) (*Meta, error) {
	url := fmt.Sprintf("%s/meta/%s/%s.json", c.config.BaseURL, contentType, titleID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "failed to create metadata request")
	}
	if c.config.UserAgent != "" {
		req.Header.Set("User-Agent", c.config.UserAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.ExternalServiceError("cinemeta", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, apperrors.NotFound("title metadata", titleID)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, apperrors.New(apperrors.ErrCodeExternalService,
			"cinemeta returned status "+strconv.Itoa(resp.StatusCode))
	}

	var decoded metaResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, apperrors.ExternalServiceError("cinemeta", err)
	}
	if decoded.Meta == nil {
		return nil, apperrors.NotFound("title metadata", titleID)
	}

	return decoded.Meta, nil
}
