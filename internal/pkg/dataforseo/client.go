// Package dataforseo is a client for the DataForSEO business listings API,
// the paid provider behind vendor search. Every call is metered, so callers
// are expected to cache results.
package dataforseo

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/bloomday/bloomday/internal/domain"
	"github.com/bloomday/bloomday/internal/pkg/constants"
	"github.com/bytedance/sonic"
	"github.com/cenkalti/backoff/v4"
)

const (
	searchPath = "/v3/business_data/business_listings/search/live"

	// DataForSEO reports success as 20000 in its envelope status codes.
	statusOK = 20000
)

type Config struct {
	Login    string
	Password string
	BaseURL  string
}

type Client struct {
	cfg        Config
	httpClient *http.Client
}

// NewClient fails fast when credentials are missing: that is a deployment
// defect, not a runtime condition to recover from.
func NewClient(cfg Config) (*Client, error) {
	if cfg.Login == "" || cfg.Password == "" {
		return nil, constants.ErrProviderNotConfigured
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.dataforseo.com"
	}

	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}, nil
}

// SearchBusinesses queries the provider for a keyword within a resolved
// location. An empty result list is a valid, non-error outcome.
func (c *Client) SearchBusinesses(ctx context.Context, keyword string, locationCode int) ([]domain.GoogleListing, error) {
	body, err := sonic.Marshal([]taskRequest{{
		Keyword:      keyword,
		LocationCode: locationCode,
		LanguageCode: "en",
		Device:       "desktop",
		OS:           "windows",
	}})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal task request: %w", err)
	}

	var respBody []byte
	err = backoff.Retry(
		func() error {
			req, reqErr := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+searchPath, bytes.NewReader(body))
			if reqErr != nil {
				return backoff.Permanent(reqErr)
			}
			req.SetBasicAuth(c.cfg.Login, c.cfg.Password)
			req.Header.Set("Content-Type", "application/json")

			resp, httpErr := c.httpClient.Do(req)
			if httpErr != nil {
				return fmt.Errorf("httpClient.Do: %w", httpErr)
			}
			defer resp.Body.Close()

			if resp.StatusCode >= http.StatusInternalServerError {
				return fmt.Errorf("status code error: %d %s", resp.StatusCode, resp.Status)
			}
			if resp.StatusCode != http.StatusOK {
				return backoff.Permanent(fmt.Errorf("status code error: %d %s", resp.StatusCode, resp.Status))
			}

			respBody, httpErr = io.ReadAll(resp.Body)
			if httpErr != nil {
				return fmt.Errorf("failed to read response body: %w", httpErr)
			}

			return nil
		},
		backoff.WithContext(
			backoff.WithMaxRetries(backoff.NewConstantBackOff(500*time.Millisecond), 3),
			ctx,
		),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", constants.ErrProviderFailure, err.Error())
	}

	var parsed searchResponse
	if err := sonic.Unmarshal(respBody, &parsed); err != nil {
		return nil, fmt.Errorf("%w: malformed response: %s", constants.ErrProviderFailure, err.Error())
	}

	if parsed.StatusCode != statusOK {
		return nil, fmt.Errorf("%w: %d %s", constants.ErrProviderFailure, parsed.StatusCode, parsed.StatusMessage)
	}

	listings := make([]domain.GoogleListing, 0, 20)
	for _, t := range parsed.Tasks {
		if t.StatusCode != statusOK {
			return nil, fmt.Errorf("%w: task failed: %d %s", constants.ErrProviderFailure, t.StatusCode, t.StatusMessage)
		}
		for _, res := range t.Result {
			for _, item := range res.Items {
				listings = append(listings, item.toListing())
			}
		}
	}

	return listings, nil
}
