package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/dmitrymomot/storefront/core/logger"
)

// DefaultTimeout bounds a single API request.
const DefaultTimeout = 10 * time.Second

// Client talks to the product API.
type Client struct {
	base   string
	http   *http.Client
	logger *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithTimeout sets the per-request timeout of the default HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// WithLogger sets the logger for request tracing.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.logger = log
		}
	}
}

// NewClient creates a client for the API mounted at baseURL, e.g. "/api" or
// "http://localhost:5173/api".
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if base == "" {
		return nil, ErrInvalidBaseURL
	}
	if _, err := url.Parse(base); err != nil {
		return nil, errors.Join(ErrInvalidBaseURL, err)
	}

	c := &Client{
		base:   base,
		http:   &http.Client{Timeout: DefaultTimeout},
		logger: logger.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the normalized base URL.
func (c *Client) BaseURL() string {
	return c.base
}

// Products fetches a page of products.
func (c *Client) Products(ctx context.Context, q ProductsQuery) (*ProductsPage, error) {
	var page ProductsPage
	if _, err := c.get(ctx, "/products?"+EncodeProductsQuery(q), &page); err != nil {
		return nil, err
	}
	if page.Products == nil {
		page.Products = []Product{}
	}
	return &page, nil
}

// Product fetches the detail of one product. Unknown ids yield ErrProductNotFound.
func (c *Client) Product(ctx context.Context, id string) (*ProductDetail, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrEmptyProductID
	}

	var detail ProductDetail
	body, err := c.get(ctx, "/products/"+url.PathEscape(id), &detail)
	if err != nil {
		if IsStatus(err, http.StatusNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrProductNotFound, id)
		}
		return nil, err
	}
	// The API may answer 200 with an {"error": ...} body for unknown ids.
	if gjson.GetBytes(body, "error").Exists() || detail.ProductID == "" {
		return nil, fmt.Errorf("%w: %s", ErrProductNotFound, id)
	}
	return &detail, nil
}

// Categories fetches the category tree.
func (c *Client) Categories(ctx context.Context) (Categories, error) {
	cats := Categories{}
	if _, err := c.get(ctx, "/categories", &cats); err != nil {
		return nil, err
	}
	return cats, nil
}

// EncodeProductsQuery renders q as a query string with defaults applied.
func EncodeProductsQuery(q ProductsQuery) string {
	page := q.Page
	if page < 1 {
		page = 1
	}
	limit := q.Limit
	if limit < 1 {
		limit = DefaultLimit
	}
	sort := q.Sort
	if sort == "" {
		sort = SortPriceAsc
	}

	values := url.Values{}
	values.Set("page", strconv.Itoa(page))
	values.Set("limit", strconv.Itoa(limit))
	if q.Search != "" {
		values.Set("search", q.Search)
	}
	if q.Category1 != "" {
		values.Set("category1", q.Category1)
	}
	if q.Category2 != "" {
		values.Set("category2", q.Category2)
	}
	values.Set("sort", sort)
	return values.Encode()
}

// get performs the request and decodes a 2xx body into v. The raw body is returned
// for callers that need to probe it.
func (c *Client) get(ctx context.Context, path string, v any) ([]byte, error) {
	start := time.Now()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+path, nil)
	if err != nil {
		return nil, errors.Join(ErrRequestFailed, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.DebugContext(ctx, "api request failed", logger.Path(path), logger.Error(err))
		return nil, errors.Join(ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Join(ErrRequestFailed, err)
	}

	c.logger.DebugContext(ctx, "api request",
		logger.Method(http.MethodGet),
		logger.Path(path),
		logger.StatusCode(resp.StatusCode),
		logger.Elapsed(start),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return body, &Error{
			Status:  resp.StatusCode,
			Message: gjson.GetBytes(body, "error").String(),
		}
	}

	if err := json.Unmarshal(body, v); err != nil {
		return body, errors.Join(ErrDecodingResponse, err)
	}
	return body, nil
}
