package ledger

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/remybar/cta-server/internal/adapter"
)

const PROVIDER_NAME = "ledger"

// AssetMetadata is the loosely-typed metadata block attached to each asset.
// Only the fields relevant to the recognized asset kinds are decoded; the
// kind tag decides which of them are meaningful.
type AssetMetadata struct {
	Type        string `json:"type"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Element     string `json:"element"`
	Rarity      string `json:"rarity"`
	Family      string `json:"family"`
	ImageURL    string `json:"image_url"`
	Foil        bool   `json:"foil"`
	Rank        int    `json:"rank"`
	Grade       string `json:"grade"`
	Power       int    `json:"power"`
	Numbering   int    `json:"numbering"`
}

// Asset represents one record of the paged asset listing
type Asset struct {
	TokenID   string        `json:"token_id"`
	User      string        `json:"user"`
	Status    string        `json:"status"`
	Metadata  AssetMetadata `json:"metadata"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// AssetPage is one page of the asset listing with its continuation token
type AssetPage struct {
	Cursor string  `json:"cursor"`
	Result []Asset `json:"result"`
}

// ListAssetsParams holds the query parameters of the paged asset listing
type ListAssetsParams struct {
	Collection string
	PageSize   int
	OrderBy    string
	Direction  string
	Cursor     string
}

// Client defines the interface for ledger API operations to enable mocking
//
//go:generate mockgen -source=client.go -destination=../../mocks/ledger_client.go -package=mocks -mock_names=Client=MockLedgerClient
type Client interface {
	// ListAssets fetches one page of the collection's assets
	ListAssets(ctx context.Context, params ListAssetsParams) (*AssetPage, error)
}

// LedgerClient implements the ledger asset API client
type LedgerClient struct {
	httpClient adapter.HTTPClient
	apiURL     string
	json       adapter.JSON
}

// NewClient creates a new ledger API client
func NewClient(httpClient adapter.HTTPClient, apiURL string, json adapter.JSON) Client {
	return &LedgerClient{
		httpClient: httpClient,
		apiURL:     apiURL,
		json:       json,
	}
}

// ListAssets fetches one page of the collection's assets
func (c *LedgerClient) ListAssets(ctx context.Context, params ListAssetsParams) (*AssetPage, error) {
	query := url.Values{}
	query.Set("collection", params.Collection)
	query.Set("page_size", fmt.Sprintf("%d", params.PageSize))
	query.Set("order_by", params.OrderBy)
	query.Set("direction", params.Direction)
	if params.Cursor != "" {
		query.Set("cursor", params.Cursor)
	}

	requestURL := fmt.Sprintf("%s/v1/assets?%s", c.apiURL, query.Encode())

	respBody, err := c.httpClient.GetBytes(ctx, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to call ledger API: %w", err)
	}

	var page AssetPage
	if err := c.json.Unmarshal(respBody, &page); err != nil {
		return nil, fmt.Errorf("failed to unmarshal asset page: %w", err)
	}

	return &page, nil
}
