package serviceclients

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"oms/internal/core/domain/model/kernel"
	"oms/internal/core/ports"
)

// UserClient looks up marketplace participants in the user service.
type UserClient struct {
	client  *http.Client
	baseURL string
}

// NewUserClient creates a new UserClient instance.
func NewUserClient(baseURL string) *UserClient {
	return &UserClient{
		client: &http.Client{
			Timeout: clientTimeout,
		},
		baseURL: baseURL,
	}
}

type userResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// GetTranslatorsByQuality returns translators eligible for the quality tier.
func (c *UserClient) GetTranslatorsByQuality(
	ctx context.Context, translationQualityID kernel.UUID,
) ([]ports.User, error) {
	return c.getUsersByQuality(ctx, "translators", translationQualityID)
}

// GetEditorsByQuality returns editors eligible for the quality tier.
func (c *UserClient) GetEditorsByQuality(
	ctx context.Context, translationQualityID kernel.UUID,
) ([]ports.User, error) {
	return c.getUsersByQuality(ctx, "editors", translationQualityID)
}

// GetProofReadersByQuality returns proof readers eligible for the quality tier.
func (c *UserClient) GetProofReadersByQuality(
	ctx context.Context, translationQualityID kernel.UUID,
) ([]ports.User, error) {
	return c.getUsersByQuality(ctx, "proof-readers", translationQualityID)
}

func (c *UserClient) getUsersByQuality(
	ctx context.Context, role string, translationQualityID kernel.UUID,
) ([]ports.User, error) {
	// GET /api/users/{role}?translationQualityId={id}
	endpoint, err := url.JoinPath(c.baseURL, "api", "users", role)
	if err != nil {
		return nil, err
	}
	endpoint += "?translationQualityId=" + url.QueryEscape(translationQualityID.String())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if resp != nil {
		defer resp.Body.Close()
	}
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("user service returned status %d", resp.StatusCode)
	}

	var userResponses []userResponse
	if err = json.NewDecoder(resp.Body).Decode(&userResponses); err != nil {
		return nil, err
	}

	users := make([]ports.User, 0, len(userResponses))
	for _, u := range userResponses {
		id, idErr := kernel.UUIDFromString(u.ID)
		if idErr != nil {
			return nil, fmt.Errorf("user service returned invalid id: %w", idErr)
		}
		users = append(users, ports.User{ID: id, Email: u.Email})
	}

	return users, nil
}
