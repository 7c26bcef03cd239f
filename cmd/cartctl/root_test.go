package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const malaID = "5f0c1c64-1111-4c4e-9a36-2d3c2b0a0001"

func newAPI(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/products/"+malaID, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"id": malaID, "name": "Rudraksha Mala", "price": 750,
			"category": "Spiritual Jewelry", "brand": "Parivartan", "stock": 45,
		})
	})
	mux.HandleFunc("/api/cart", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		json.NewEncoder(w).Encode(map[string]string{"message": "down"})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(&out, zap.NewNop())
	cmd.SetArgs(args)
	cmd.SetErr(&bytes.Buffer{})
	err := cmd.Execute()
	return out.String(), err
}

func TestAnonymousCartPersistsLocally(t *testing.T) {
	srv := newAPI(t)
	file := filepath.Join(t.TempDir(), "cart.json")
	base := []string{"--api", srv.URL, "--file", file, "--token", ""}

	out, err := execute(t, append([]string{"add", malaID, "2"}, base...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "Rudraksha Mala")
	assert.Contains(t, out, "2 item(s), total ₹1500")

	out, err = execute(t, append([]string{"show"}, base...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "2 item(s), total ₹1500")

	out, err = execute(t, append([]string{"set", malaID, "0"}, base...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "Your cart is empty.")
}

func TestSignedInFallsBackWhenRemoteFails(t *testing.T) {
	srv := newAPI(t)
	file := filepath.Join(t.TempDir(), "cart.json")
	base := []string{"--api", srv.URL, "--file", file, "--token", "tok", "--user", "u1"}

	out, err := execute(t, append([]string{"add", malaID}, base...)...)
	require.NoError(t, err, "remote failures never fail a mutation")
	assert.Contains(t, out, "1 item(s), total ₹750")

	out, err = execute(t, append([]string{"show"}, base...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "1 item(s), total ₹750")
}

func TestBadArguments(t *testing.T) {
	_, err := execute(t, "set", malaID, "many", "--file", filepath.Join(t.TempDir(), "c.json"))
	assert.Error(t, err)

	srv := newAPI(t)
	_, err = execute(t, "add", "missing", "--api", srv.URL, "--file", filepath.Join(t.TempDir(), "c.json"))
	assert.Error(t, err)
}

func TestRedisBackedLocalCart(t *testing.T) {
	srv := newAPI(t)
	mr := miniredis.RunT(t)
	base := []string{"--api", srv.URL, "--redis", "redis://" + mr.Addr(), "--device", "kiosk-7", "--token", ""}

	_, err := execute(t, append([]string{"add", malaID, "3"}, base...)...)
	require.NoError(t, err)
	assert.True(t, mr.Exists("cart:local:kiosk-7"))

	out, err := execute(t, append([]string{"show"}, base...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "3 item(s), total ₹2250")

	out, err = execute(t, append(append([]string{"show"}, base...), "--device", "kiosk-8")...)
	require.NoError(t, err)
	assert.Contains(t, out, "Your cart is empty.")
}
