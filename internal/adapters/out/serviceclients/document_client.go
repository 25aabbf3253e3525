// Package serviceclients holds the HTTP clients for the external
// collaborators: the document service, the translation (partitioning)
// service, and the user service.
package serviceclients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"oms/internal/core/domain/model/kernel"
	"oms/internal/core/ports"
)

const clientTimeout = 5 * time.Second

// DocumentClient registers source documents with the document service.
type DocumentClient struct {
	client  *http.Client
	baseURL string
}

// NewDocumentClient creates a new DocumentClient instance.
func NewDocumentClient(baseURL string) *DocumentClient {
	return &DocumentClient{
		client: &http.Client{
			Timeout: clientTimeout,
		},
		baseURL: baseURL,
	}
}

type createDocumentRequest struct {
	CharCount           int    `json:"charCount"`
	CharCountWithSpaces int    `json:"charCountWithSpaces"`
	PageCount           int    `json:"pageCount"`
	Path                string `json:"path"`
}

type createDocumentResponse struct {
	ID                  string `json:"id"`
	CharCount           int    `json:"charCount"`
	CharCountWithSpaces int    `json:"charCountWithSpaces"`
	PageCount           int    `json:"pageCount"`
	Path                string `json:"path"`
}

// CreateDocument registers the document and returns its assigned identity.
func (c *DocumentClient) CreateDocument(
	ctx context.Context, charCount int, charCountWithSpaces int, pageCount int, path string,
) (ports.Document, error) {
	// POST /api/documents
	endpoint, err := url.JoinPath(c.baseURL, "api", "documents")
	if err != nil {
		return ports.Document{}, err
	}

	body, err := json.Marshal(createDocumentRequest{
		CharCount:           charCount,
		CharCountWithSpaces: charCountWithSpaces,
		PageCount:           pageCount,
		Path:                path,
	})
	if err != nil {
		return ports.Document{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return ports.Document{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if resp != nil {
		defer resp.Body.Close()
	}
	if err != nil {
		return ports.Document{}, err
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return ports.Document{}, fmt.Errorf("document service returned status %d", resp.StatusCode)
	}

	var docResp createDocumentResponse
	if err = json.NewDecoder(resp.Body).Decode(&docResp); err != nil {
		return ports.Document{}, err
	}

	id, err := kernel.UUIDFromString(docResp.ID)
	if err != nil {
		return ports.Document{}, fmt.Errorf("document service returned invalid id: %w", err)
	}

	return ports.Document{
		ID:                  id,
		CharCount:           docResp.CharCount,
		CharCountWithSpaces: docResp.CharCountWithSpaces,
		PageCount:           docResp.PageCount,
		Path:                docResp.Path,
	}, nil
}
