package cart_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/georgemunganga/pooja-store/internal/cartsync"
	"github.com/georgemunganga/pooja-store/internal/modules/auth"
	"github.com/georgemunganga/pooja-store/internal/modules/cart"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	malaID  = uuid.New()
	diyaID  = uuid.New()
	catalog = map[uuid.UUID]product{
		malaID: {name: "Rudraksha Mala", price: 750, category: "Spiritual Jewelry", brand: "Parivartan"},
		diyaID: {name: "Brass Diya Set", price: 650, category: "Lighting", brand: "Parivartan"},
	}
)

func TestService_DeltaSemantics(t *testing.T) {
	ctx := context.Background()
	svc := cart.NewService(newMemoryRepo(catalog))
	userID := uuid.NewString()

	require.NoError(t, svc.AddItem(ctx, userID, cart.AddItemRequest{ProductID: malaID.String(), Quantity: 2}))
	require.NoError(t, svc.AddItem(ctx, userID, cart.AddItemRequest{ProductID: malaID.String(), Quantity: 3}))
	require.NoError(t, svc.AddItem(ctx, userID, cart.AddItemRequest{ProductID: diyaID.String()}))

	items, err := svc.GetCart(ctx, userID)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, 5, items[0].Quantity)
	assert.Equal(t, 1, items[1].Quantity, "non-positive add counts as one")

	require.NoError(t, svc.SetQuantity(ctx, userID, malaID.String(), 8))
	require.NoError(t, svc.SetQuantity(ctx, userID, diyaID.String(), 0))
	items, err = svc.GetCart(ctx, userID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 8, items[0].Quantity)

	require.NoError(t, svc.RemoveItem(ctx, userID, malaID.String()))
	items, err = svc.GetCart(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestService_RejectsBadIDs(t *testing.T) {
	ctx := context.Background()
	svc := cart.NewService(newMemoryRepo(catalog))

	err := svc.AddItem(ctx, uuid.NewString(), cart.AddItemRequest{ProductID: "7"})
	assert.ErrorIs(t, err, cart.ErrInvalidProduct)

	err = svc.AddItem(ctx, uuid.NewString(), cart.AddItemRequest{ProductID: uuid.NewString()})
	assert.ErrorIs(t, err, cart.ErrUnknownProduct)

	_, err = svc.GetCart(ctx, "not-a-user")
	assert.Error(t, err)
}

type harness struct {
	router *chi.Mux
	tokens *auth.Tokens
	repo   *memoryRepo
}

func newHarness() *harness {
	tokens := auth.NewTokens("test-secret", time.Hour)
	repo := newMemoryRepo(catalog)
	router := chi.NewRouter()
	cart.NewHandler(cart.NewService(repo), tokens, nil).RegisterRoutes(router)
	return &harness{router: router, tokens: tokens, repo: repo}
}

func (h *harness) do(t *testing.T, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.router.ServeHTTP(rec, req)
	return rec
}

func TestHandler_RequiresAuth(t *testing.T) {
	h := newHarness()
	rec := h.do(t, http.MethodGet, "/api/cart", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandler_Routes(t *testing.T) {
	h := newHarness()
	token, err := h.tokens.Issue(uuid.NewString(), "a@example.com")
	require.NoError(t, err)

	rec := h.do(t, http.MethodPost, "/api/cart", `{"productId":"`+malaID.String()+`","quantity":2}`, token)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"message":"Added to cart"}`, rec.Body.String())

	rec = h.do(t, http.MethodGet, "/api/cart", "", token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"items":[{"product_id":"`+malaID.String()+`","name":"Rudraksha Mala","price":750,"image":"","category":"Spiritual Jewelry","brand":"Parivartan","quantity":2}]}`, rec.Body.String())

	rec = h.do(t, http.MethodPut, "/api/cart/"+malaID.String(), `{"quantity":4}`, token)
	assert.JSONEq(t, `{"message":"Updated cart item"}`, rec.Body.String())

	rec = h.do(t, http.MethodPut, "/api/cart/"+malaID.String(), `{"quantity":0}`, token)
	assert.JSONEq(t, `{"message":"Removed from cart"}`, rec.Body.String())

	rec = h.do(t, http.MethodPost, "/api/cart", `{"productId":"bogus"}`, token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = h.do(t, http.MethodPost, "/api/cart", `{"productId":"`+uuid.NewString()+`"}`, token)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = h.do(t, http.MethodPost, "/api/cart", `{`, token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = h.do(t, http.MethodDelete, "/api/cart", "", token)
	assert.JSONEq(t, `{"message":"Cart cleared"}`, rec.Body.String())

	h.repo.err = errors.New("db down")
	rec = h.do(t, http.MethodGet, "/api/cart", "", token)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

// The cart sync client and this handler must agree on the wire contract.
func TestHandler_ServesCartSyncClient(t *testing.T) {
	h := newHarness()
	srv := httptest.NewServer(h.router)
	defer srv.Close()

	userID := uuid.NewString()
	token, err := h.tokens.Issue(userID, "a@example.com")
	require.NoError(t, err)

	client := cartsync.NewRemoteClient(srv.URL, srv.Client())
	local := cartsync.NewFileStore(t.TempDir() + "/cart.json")
	c := cartsync.NewCart(cartsync.NewStore(), cartsync.Config{
		Local:  cartsync.NewLocalSink(local),
		Remote: cartsync.NewRemoteSink(client),
		Loader: cartsync.NewLoader(client, local, nil),
	})
	session := cartsync.Session{Token: token, UserID: userID}
	require.Equal(t, cartsync.PhaseHydratedRemote, c.SetSession(context.Background(), session))

	mala := cartsync.Product{ID: malaID.String(), Name: "Rudraksha Mala", Price: 750, Brand: cartsync.BrandParivartan, Stock: 45}
	diya := cartsync.Product{ID: diyaID.String(), Name: "Brass Diya Set", Price: 650, Brand: cartsync.BrandParivartan, Stock: 30}
	c.AddToCart(mala, 2)
	c.Wait()
	c.AddToCart(diya, 1)
	c.Wait()
	c.UpdateQuantity(mala.ID, 3)
	c.Wait()
	c.RemoveFromCart(diya.ID)
	c.Wait()

	// A second device for the same user hydrates from the server.
	other := cartsync.NewCart(cartsync.NewStore(), cartsync.Config{Loader: cartsync.NewLoader(client, nil, nil)})
	require.Equal(t, cartsync.PhaseHydratedRemote, other.SetSession(context.Background(), session))

	st := other.State()
	require.Len(t, st.Items, 1)
	assert.Equal(t, mala.ID, st.Items[0].Product.ID)
	assert.Equal(t, 3, st.Items[0].Quantity)
	assert.Equal(t, cartsync.SentinelStock, st.Items[0].Product.Stock)
	assert.Equal(t, int64(2250), st.Total)

	c.ClearCart()
	c.Wait()
	items, err := client.FetchCart(context.Background(), token)
	require.NoError(t, err)
	assert.Empty(t, items)
}
