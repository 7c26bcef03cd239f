package cartsync

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type seenRequest struct {
	method string
	path   string
	auth   string
	body   string
}

func newTestAPI(t *testing.T, status int, response string) (*RemoteClient, *[]seenRequest) {
	t.Helper()
	var seen []seenRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		seen = append(seen, seenRequest{method: r.Method, path: r.URL.EscapedPath(), auth: r.Header.Get("Authorization"), body: string(b)})
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		io.WriteString(w, response)
	}))
	t.Cleanup(srv.Close)
	return NewRemoteClient(srv.URL+"/", srv.Client()), &seen
}

func TestRemoteClient_FetchCart(t *testing.T) {
	c, seen := newTestAPI(t, http.StatusOK, `{"items":[{"product_id":"p1","name":"Mala","price":750,"image":"m.jpg","category":"Spiritual Jewelry","brand":"Parivartan","quantity":2}]}`)

	rows, err := c.FetchCart(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, []RemoteRow{{ProductID: "p1", Name: "Mala", Price: 750, Image: "m.jpg", Category: "Spiritual Jewelry", Brand: BrandParivartan, Quantity: 2}}, rows)
	require.Len(t, *seen, 1)
	assert.Equal(t, seenRequest{method: "GET", path: "/api/cart", auth: "Bearer tok"}, (*seen)[0])
}

func TestRemoteClient_Writes(t *testing.T) {
	ctx := context.Background()
	c, seen := newTestAPI(t, http.StatusOK, `{"message":"ok"}`)

	require.NoError(t, c.AddItem(ctx, "tok", "p1", 3))
	require.NoError(t, c.SetItemQuantity(ctx, "tok", "p 2", 5))
	require.NoError(t, c.RemoveItem(ctx, "tok", "p1"))
	require.NoError(t, c.ClearCart(ctx, "tok"))

	require.Len(t, *seen, 4)
	assert.Equal(t, "POST", (*seen)[0].method)
	assert.Equal(t, "/api/cart", (*seen)[0].path)
	assert.JSONEq(t, `{"productId":"p1","quantity":3}`, (*seen)[0].body)

	assert.Equal(t, "PUT", (*seen)[1].method)
	assert.Equal(t, "/api/cart/p%202", (*seen)[1].path)
	assert.JSONEq(t, `{"quantity":5}`, (*seen)[1].body)

	assert.Equal(t, seenRequest{method: "DELETE", path: "/api/cart/p1", auth: "Bearer tok"}, (*seen)[2])
	assert.Equal(t, seenRequest{method: "DELETE", path: "/api/cart", auth: "Bearer tok"}, (*seen)[3])
}

func TestRemoteClient_ErrorStatus(t *testing.T) {
	c, _ := newTestAPI(t, http.StatusUnauthorized, `{"message":"Invalid token"}`)

	_, err := c.FetchCart(context.Background(), "bad")
	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusUnauthorized, se.Code)
	assert.Equal(t, "Invalid token", se.Message)
	assert.Contains(t, err.Error(), "GET /api/cart: 401")
}

func TestRemoteClient_Product(t *testing.T) {
	want := Product{ID: "p1", Name: "Mala", Price: 750, Brand: BrandParivartan, Stock: 45}
	body, err := json.Marshal(want)
	require.NoError(t, err)
	c, seen := newTestAPI(t, http.StatusOK, string(body))

	got, err := c.Product(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Empty(t, (*seen)[0].auth)
}

func TestRemoteClient_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	err := NewRemoteClient(url, nil).ClearCart(context.Background(), "tok")
	assert.Error(t, err)
}
