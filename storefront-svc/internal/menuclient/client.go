package menuclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"overcooked-ordering/domain"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

var ErrNotFound = errors.New("not found on menu-svc")

// StatusError is a non-2xx answer from menu-svc.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("menu-svc answered %d", e.StatusCode)
	}
	return fmt.Sprintf("menu-svc answered %d: %s", e.StatusCode, e.Message)
}

// Catalog is the read-only menu snapshot shown to customers.
type Catalog struct {
	Categories []domain.Category    `json:"categories"`
	Dishes     []domain.CatalogItem `json:"dishes"`
}

type Client struct {
	baseURL string
	client  HTTPClient
	logger  *zap.Logger
	now     func() time.Time
}

func New(baseURL string, client HTTPClient, logger *zap.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		client:  client,
		logger:  logger,
		now:     time.Now,
	}
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var errBody struct {
			Error string `json:"error"`
		}
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		if json.Unmarshal(raw, &errBody) != nil || errBody.Error == "" {
			errBody.Error = string(bytes.TrimSpace(raw))
		}
		return &StatusError{StatusCode: resp.StatusCode, Message: errBody.Error}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

func restaurantPath(restaurantID, suffix string) string {
	return "/api/restaurants/" + url.PathEscape(restaurantID) + suffix
}

// GetDish refetches one dish so the cart captures the current price.
func (c *Client) GetDish(ctx context.Context, restaurantID, dishID string) (domain.CatalogItem, error) {
	var dish domain.CatalogItem
	err := c.do(ctx, http.MethodGet, restaurantPath(restaurantID, "/dishes/"+url.PathEscape(dishID)), nil, &dish)
	var statusErr *StatusError
	if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound {
		return dish, fmt.Errorf("dish %s: %w", dishID, ErrNotFound)
	}
	return dish, err
}

func (c *Client) ListDishes(ctx context.Context, restaurantID string) ([]domain.CatalogItem, error) {
	var dishes []domain.CatalogItem
	if err := c.do(ctx, http.MethodGet, restaurantPath(restaurantID, "/dishes"), nil, &dishes); err != nil {
		return nil, err
	}
	return dishes, nil
}

func (c *Client) ListCategories(ctx context.Context, restaurantID string) ([]domain.Category, error) {
	var categories []domain.Category
	if err := c.do(ctx, http.MethodGet, restaurantPath(restaurantID, "/categories"), nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *Client) Catalog(ctx context.Context, restaurantID string) (Catalog, error) {
	categories, err := c.ListCategories(ctx, restaurantID)
	if err != nil {
		return Catalog{}, fmt.Errorf("list categories: %w", err)
	}
	dishes, err := c.ListDishes(ctx, restaurantID)
	if err != nil {
		return Catalog{}, fmt.Errorf("list dishes: %w", err)
	}
	if categories == nil {
		categories = []domain.Category{}
	}
	if dishes == nil {
		dishes = []domain.CatalogItem{}
	}
	return Catalog{Categories: categories, Dishes: dishes}, nil
}

// Settings always returns usable settings. When menu-svc cannot be reached
// or answers non-2xx, the defaults come back with an error wrapping
// domain.ErrSettingsFetchFailed.
func (c *Client) Settings(ctx context.Context, restaurantID string) (domain.CartSettings, error) {
	var settings domain.CartSettings
	err := c.do(ctx, http.MethodGet, "/api/cart-settings?restaurantId="+url.QueryEscape(restaurantID), nil, &settings)
	if err != nil {
		return domain.DefaultCartSettings(restaurantID, c.now().UTC()),
			fmt.Errorf("%w: %w", domain.ErrSettingsFetchFailed, err)
	}
	return settings, nil
}

// CreateOrder makes exactly one POST /api/orders call.
func (c *Client) CreateOrder(ctx context.Context, req domain.OrderRequest) (*domain.SubmittedOrder, error) {
	var order domain.SubmittedOrder
	if err := c.do(ctx, http.MethodPost, "/api/orders", req, &order); err != nil {
		c.logger.Error("order creation failed",
			zap.String("restaurant_id", req.RestaurantID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %w", domain.ErrSubmissionFailed, err)
	}
	return &order, nil
}
