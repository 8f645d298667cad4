// Package storefront adapts the commerce platform's Admin REST API to the
// pipeline's ItemSource and CopyCache ports.
package storefront

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	jmespath "github.com/jmespath-community/go-jmespath"

	"github.com/curiogoods/catalog-api/internal/domain/model"
	apperrors "github.com/curiogoods/catalog-api/internal/errors"
	"github.com/curiogoods/catalog-api/internal/ports"
)

// Expressions are the JMESPath selectors used to pull item data out of the
// platform's JSON payloads. A payload reshape on the platform side is a
// config change here, not a code change.
type Expressions struct {
	// Items selects the array of item objects from the listing response.
	Items string
	// CachedCopy selects the cached copy value from the metafield response.
	CachedCopy string
}

// DefaultExpressions matches the platform's stock Admin REST payloads.
func DefaultExpressions() Expressions {
	return Expressions{
		Items:      "products[]",
		CachedCopy: "metafields[0].value",
	}
}

// Options configure the storefront client.
type Options struct {
	// BaseURL is the Admin API root, e.g. "https://shop.example.com/admin/api/2024-10".
	BaseURL string
	// AccessToken authenticates Admin API calls.
	AccessToken string
	// CopyNamespace and CopyKey locate the cached-copy metafield on an item.
	CopyNamespace string
	CopyKey       string
	Expressions   Expressions
	HTTPClient    *http.Client
	Logger        *slog.Logger
}

// Client talks to the commerce platform's Admin API.
type Client struct {
	baseURL       string
	accessToken   string
	copyNamespace string
	copyKey       string
	exprs         Expressions
	http          *http.Client
	itemsExpr     jmespath.JMESPath
	copyExpr      jmespath.JMESPath
	logger        *slog.Logger
}

const defaultRequestTimeout = 10 * time.Second

// NewClient constructs a storefront client, compiling the configured
// JMESPath expressions up front so a bad expression fails at wiring time.
func NewClient(opts Options) (*Client, error) {
	if opts.BaseURL == "" {
		return nil, apperrors.Validation("storefront base URL is required")
	}
	if opts.AccessToken == "" {
		return nil, apperrors.Validation("storefront access token is required")
	}

	exprs := opts.Expressions
	if exprs.Items == "" {
		exprs.Items = DefaultExpressions().Items
	}
	if exprs.CachedCopy == "" {
		exprs.CachedCopy = DefaultExpressions().CachedCopy
	}

	itemsExpr, err := jmespath.Compile(exprs.Items)
	if err != nil {
		return nil, fmt.Errorf("compile items expression: %w", err)
	}
	copyExpr, err := jmespath.Compile(exprs.CachedCopy)
	if err != nil {
		return nil, fmt.Errorf("compile cached-copy expression: %w", err)
	}

	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: defaultRequestTimeout}
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	namespace := opts.CopyNamespace
	if namespace == "" {
		namespace = "branding"
	}
	key := opts.CopyKey
	if key == "" {
		key = "generated_copy"
	}

	return &Client{
		baseURL:       strings.TrimRight(opts.BaseURL, "/"),
		accessToken:   opts.AccessToken,
		copyNamespace: namespace,
		copyKey:       key,
		exprs:         exprs,
		http:          client,
		itemsExpr:     itemsExpr,
		copyExpr:      copyExpr,
		logger:        logger,
	}, nil
}

var (
	_ ports.ItemSource = (*Client)(nil)
	_ ports.CopyCache  = (*Client)(nil)
)

// FetchItemsNeedingEnrichment lists up to limit catalog items from the platform.
func (c *Client) FetchItemsNeedingEnrichment(ctx context.Context, limit int) ([]model.CatalogItem, error) {
	endpoint := fmt.Sprintf("%s/products.json?limit=%d&status=active", c.baseURL, limit)

	payload, err := c.getJSON(ctx, endpoint)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeUnavailable, "fetch catalog items")
	}

	raw, err := c.itemsExpr.Search(payload)
	if err != nil {
		return nil, fmt.Errorf("extract items (%q): %w", c.exprs.Items, err)
	}

	entries, ok := raw.([]any)
	if !ok {
		return nil, apperrors.Internalf("items expression %q did not select an array", c.exprs.Items)
	}

	items := make([]model.CatalogItem, 0, len(entries))
	for _, entry := range entries {
		obj, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		items = append(items, itemFromPayload(obj))
	}

	c.logger.DebugContext(ctx, "fetched catalog items", "requested", limit, "returned", len(items))
	return items, nil
}

// ReadCachedCopy returns the cached copy metafield for the item, or "" when absent.
func (c *Client) ReadCachedCopy(ctx context.Context, itemID string) (string, error) {
	endpoint := fmt.Sprintf("%s/products/%s/metafields.json?namespace=%s&key=%s",
		c.baseURL, url.PathEscape(itemID), url.QueryEscape(c.copyNamespace), url.QueryEscape(c.copyKey))

	payload, err := c.getJSON(ctx, endpoint)
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.ErrCodeUnavailable, "read cached copy")
	}

	raw, err := c.copyExpr.Search(payload)
	if err != nil {
		return "", fmt.Errorf("extract cached copy (%q): %w", c.exprs.CachedCopy, err)
	}

	text, _ := raw.(string)
	return strings.TrimSpace(text), nil
}

// WriteCachedCopy persists generated copy to the item's metafield.
func (c *Client) WriteCachedCopy(ctx context.Context, itemID, text string) error {
	endpoint := fmt.Sprintf("%s/products/%s/metafields.json", c.baseURL, url.PathEscape(itemID))

	body := map[string]any{
		"metafield": map[string]any{
			"namespace": c.copyNamespace,
			"key":       c.copyKey,
			"type":      "multi_line_text_field",
			"value":     text,
		},
	}
	encoded, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode metafield payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(encoded))
	if err != nil {
		return fmt.Errorf("build metafield request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Shopify-Access-Token", c.accessToken)

	resp, err := c.http.Do(req)
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeUnavailable, "write cached copy")
	}
	defer drainAndClose(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return apperrors.Internalf("write cached copy: platform returned %d", resp.StatusCode)
	}
	return nil
}

// Health verifies the platform is reachable with the configured credentials.
func (c *Client) Health(ctx context.Context) error {
	_, err := c.getJSON(ctx, c.baseURL+"/products/count.json")
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeUnavailable, "storefront health")
	}
	return nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string) (any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Shopify-Access-Token", c.accessToken)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer drainAndClose(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("platform returned %d", resp.StatusCode)
	}

	var payload any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return payload, nil
}

// itemFromPayload maps one platform item object into the pipeline's snapshot
// shape. Field shapes follow the stock Admin REST payload; unknown or missing
// fields degrade to zero values rather than failing the whole listing.
func itemFromPayload(obj map[string]any) model.CatalogItem {
	item := model.CatalogItem{
		ID:          stringField(obj, "id"),
		Handle:      stringField(obj, "handle"),
		Title:       stringField(obj, "title"),
		Category:    stringField(obj, "product_type"),
		Description: stringField(obj, "body_html"),
	}

	if tags, ok := obj["tags"].(string); ok && tags != "" {
		for _, tag := range strings.Split(tags, ",") {
			if trimmed := strings.TrimSpace(tag); trimmed != "" {
				item.Tags = append(item.Tags, trimmed)
			}
		}
	}

	if images, ok := obj["images"].([]any); ok {
		item.ImageCount = len(images)
	}

	return item
}

// stringField pulls a string out of a decoded JSON object, converting the
// platform's numeric identifiers to their decimal string form.
func stringField(obj map[string]any, key string) string {
	switch v := obj[key].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case json.Number:
		return v.String()
	default:
		return ""
	}
}

func drainAndClose(body io.ReadCloser) {
	_, _ = io.Copy(io.Discard, body)
	_ = body.Close()
}
