package client

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/cloudwego/hertz/pkg/app/client"
	"github.com/cloudwego/hertz/pkg/protocol"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/google/uuid"

	"github.com/johnnywang-byte/aura-quiet-living/internal/cli/types"
)

// Client wraps a Hertz client for HTTP communication with the Aura backend.
// It is the single point translating an unreliable network into reliable
// in-process results: envelope-returning operations never surface transport
// errors to their callers.
type Client struct {
	client  *client.Client
	baseURL string
}

// New creates a gateway client for the given API base URL
// (for example http://localhost:8080/api).
func New(baseURL string) (*Client, error) {
	normalized, err := normalizeBaseURL(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid API base URL: %w", err)
	}

	c, err := client.NewClient(
		client.WithDialTimeout(10*time.Second),
		client.WithMaxIdleConnDuration(60*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP client: %w", err)
	}

	return &Client{
		client:  c,
		baseURL: normalized,
	}, nil
}

// normalizeBaseURL ensures the base URL has a scheme and no trailing slash.
// The path component is kept because the API lives under a prefix.
func normalizeBaseURL(raw string) (string, error) {
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return "", fmt.Errorf("invalid base URL")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// call issues one request and decodes the uniform envelope. The returned
// error is non-nil only for transport-level failures: network unreachable,
// timeout, or a body that is not valid JSON.
func call[T any](ctx context.Context, c *Client, method, path string, body any) (types.Envelope[T], error) {
	var env types.Envelope[T]

	req := protocol.AcquireRequest()
	resp := protocol.AcquireResponse()
	defer func() {
		protocol.ReleaseRequest(req)
		protocol.ReleaseResponse(resp)
	}()

	req.SetMethod(method)
	req.SetRequestURI(c.baseURL + path)
	req.Header.SetContentTypeBytes([]byte("application/json"))
	req.Header.Set("X-Request-ID", uuid.New().String())

	if body != nil {
		bodyBytes, err := sonic.Marshal(body)
		if err != nil {
			return env, fmt.Errorf("failed to marshal request: %w", err)
		}
		req.SetBody(bodyBytes)
	}

	if err := c.client.Do(ctx, req, resp); err != nil {
		return env, fmt.Errorf("request failed: %w", err)
	}

	if err := sonic.Unmarshal(resp.Body(), &env); err != nil {
		return env, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return env, nil
}

// request is call with transport failures folded into a failed envelope,
// so callers never need their own error handling around the network.
func request[T any](ctx context.Context, c *Client, method, path string, body any) types.Envelope[T] {
	env, err := call[T](ctx, c, method, path, body)
	if err != nil {
		slog.Warn("api request failed", "method", method, "path", path, "error", err)
		return types.Failure[T](err.Error())
	}
	return env
}

// GetProducts fetches the full product catalog
func (c *Client) GetProducts(ctx context.Context) types.Envelope[[]types.Product] {
	return request[[]types.Product](ctx, c, consts.MethodGet, endpointProducts, nil)
}

// GetProduct fetches a single product by id
func (c *Client) GetProduct(ctx context.Context, id string) types.Envelope[types.Product] {
	path := fmt.Sprintf(endpointProductByID, url.PathEscape(id))
	return request[types.Product](ctx, c, consts.MethodGet, path, nil)
}

// GetProductsByCategory fetches all products in a category
func (c *Client) GetProductsByCategory(ctx context.Context, category string) types.Envelope[[]types.Product] {
	path := fmt.Sprintf(endpointProductsCategory, url.PathEscape(category))
	return request[[]types.Product](ctx, c, consts.MethodGet, path, nil)
}

// SearchProducts searches the catalog by keyword
func (c *Client) SearchProducts(ctx context.Context, keyword string) types.Envelope[[]types.Product] {
	path := fmt.Sprintf(endpointProductsSearch, url.QueryEscape(keyword))
	return request[[]types.Product](ctx, c, consts.MethodGet, path, nil)
}

// CreateOrder submits a new order. Transport failures come back as a failed
// envelope, never as an error.
func (c *Client) CreateOrder(ctx context.Context, order *types.OrderRequest) types.Envelope[types.Order] {
	return request[types.Order](ctx, c, consts.MethodPost, endpointOrders, order)
}

// GetOrder fetches an order by order number
func (c *Client) GetOrder(ctx context.Context, orderNumber string) types.Envelope[types.Order] {
	path := fmt.Sprintf(endpointOrderByNumber, url.PathEscape(orderNumber))
	return request[types.Order](ctx, c, consts.MethodGet, path, nil)
}

// GetOrders fetches all orders
func (c *Client) GetOrders(ctx context.Context) types.Envelope[[]types.Order] {
	return request[[]types.Order](ctx, c, consts.MethodGet, endpointOrders, nil)
}

// UpdateOrderAddress updates the shipping address of an existing order.
// The backend expects the new address as a bare JSON string body.
func (c *Client) UpdateOrderAddress(ctx context.Context, orderNumber, newAddress string) types.Envelope[types.Order] {
	path := fmt.Sprintf(endpointOrderAddress, url.PathEscape(orderNumber))
	return request[types.Order](ctx, c, consts.MethodPut, path, newAddress)
}

// SendChatMessage sends one chat message to the assistant.
//
// Transport failures surface as the returned error; a structurally valid
// envelope whose data is absent returns (nil, nil). The two outcomes are
// distinct on purpose: the session layer shows a different fallback message
// for each.
func (c *Client) SendChatMessage(ctx context.Context, req *types.ChatRequest) (*types.ChatResponse, error) {
	env, err := call[types.ChatResponse](ctx, c, consts.MethodPost, endpointChat, req)
	if err != nil {
		return nil, err
	}
	return env.Data, nil
}
