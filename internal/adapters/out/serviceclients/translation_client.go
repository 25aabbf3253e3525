package serviceclients

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"oms/internal/core/domain/model/kernel"
)

// TranslationClient queries the translation service for partitioning estimates.
type TranslationClient struct {
	client  *http.Client
	baseURL string
}

// NewTranslationClient creates a new TranslationClient instance.
func NewTranslationClient(baseURL string) *TranslationClient {
	return &TranslationClient{
		client: &http.Client{
			Timeout: clientTimeout,
		},
		baseURL: baseURL,
	}
}

type partCountResponse struct {
	PartCount int `json:"partCount"`
}

// GetAverageDocumentPartCount returns the estimated number of parts the
// order's document will be split into.
func (c *TranslationClient) GetAverageDocumentPartCount(ctx context.Context, orderID kernel.UUID) (int, error) {
	// GET /api/orders/{orderId}/part-count
	endpoint, err := url.JoinPath(c.baseURL, "api", "orders", orderID.String(), "part-count")
	if err != nil {
		return 0, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, err
	}

	resp, err := c.client.Do(req)
	if resp != nil {
		defer resp.Body.Close()
	}
	if err != nil {
		return 0, err
	}

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("translation service returned status %d", resp.StatusCode)
	}

	var countResp partCountResponse
	if err = json.NewDecoder(resp.Body).Decode(&countResp); err != nil {
		return 0, err
	}

	return countResp.PartCount, nil
}
