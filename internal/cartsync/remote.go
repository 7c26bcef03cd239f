package cartsync

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// StatusError is returned when the API answers with a non-2xx status.
type StatusError struct {
	Method  string
	Path    string
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.Code, e.Message)
	}
	return fmt.Sprintf("%s %s: %d", e.Method, e.Path, e.Code)
}

// RemoteClient talks to the storefront API's cart and product endpoints.
// It sets no timeout of its own; callers bound calls through ctx if they
// want one.
type RemoteClient struct {
	baseURL string
	http    *http.Client
}

func NewRemoteClient(baseURL string, httpClient *http.Client) *RemoteClient {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &RemoteClient{baseURL: strings.TrimRight(baseURL, "/"), http: httpClient}
}

type cartResponse struct {
	Items []RemoteRow `json:"items"`
}

type addItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type setQuantityRequest struct {
	Quantity int `json:"quantity"`
}

func (c *RemoteClient) FetchCart(ctx context.Context, token string) ([]RemoteRow, error) {
	var resp cartResponse
	if err := c.do(ctx, http.MethodGet, "/api/cart", token, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

func (c *RemoteClient) AddItem(ctx context.Context, token, productID string, quantity int) error {
	return c.do(ctx, http.MethodPost, "/api/cart", token, addItemRequest{ProductID: productID, Quantity: quantity}, nil)
}

func (c *RemoteClient) SetItemQuantity(ctx context.Context, token, productID string, quantity int) error {
	return c.do(ctx, http.MethodPut, "/api/cart/"+url.PathEscape(productID), token, setQuantityRequest{Quantity: quantity}, nil)
}

func (c *RemoteClient) RemoveItem(ctx context.Context, token, productID string) error {
	return c.do(ctx, http.MethodDelete, "/api/cart/"+url.PathEscape(productID), token, nil, nil)
}

func (c *RemoteClient) ClearCart(ctx context.Context, token string) error {
	return c.do(ctx, http.MethodDelete, "/api/cart", token, nil, nil)
}

// Product fetches one catalog product. No token is needed.
func (c *RemoteClient) Product(ctx context.Context, id string) (Product, error) {
	var p Product
	err := c.do(ctx, http.MethodGet, "/api/products/"+url.PathEscape(id), "", nil, &p)
	return p, err
}

func (c *RemoteClient) do(ctx context.Context, method, path, token string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var msg struct {
			Message string `json:"message"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&msg)
		return &StatusError{Method: method, Path: path, Code: resp.StatusCode, Message: msg.Message}
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}
