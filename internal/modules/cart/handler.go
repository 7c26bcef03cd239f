package cart

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/georgemunganga/pooja-store/internal/modules/auth"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Handler exposes the authenticated cart endpoints.
type Handler struct {
	service Service
	tokens  *auth.Tokens
	logger  *zap.Logger
}

func NewHandler(service Service, tokens *auth.Tokens, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{service: service, tokens: tokens, logger: logger}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/api/cart", func(r chi.Router) {
		r.Use(auth.Authenticate(h.tokens))
		r.Get("/", h.getCart)                  // GET    /api/cart
		r.Post("/", h.addItem)                 // POST   /api/cart
		r.Delete("/", h.clearCart)             // DELETE /api/cart
		r.Put("/{productId}", h.setQuantity)   // PUT    /api/cart/{productId}
		r.Delete("/{productId}", h.removeItem) // DELETE /api/cart/{productId}
	})
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	p, _ := auth.PrincipalFrom(r.Context())
	items, err := h.service.GetCart(r.Context(), p.UserID)
	if err != nil {
		h.fail(w, err)
		return
	}
	respond(w, http.StatusOK, map[string]interface{}{"items": items})
}

func (h *Handler) addItem(w http.ResponseWriter, r *http.Request) {
	p, _ := auth.PrincipalFrom(r.Context())
	var req AddItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"message": err.Error()})
		return
	}
	if err := h.service.AddItem(r.Context(), p.UserID, req); err != nil {
		h.fail(w, err)
		return
	}
	respond(w, http.StatusCreated, map[string]string{"message": "Added to cart"})
}

func (h *Handler) setQuantity(w http.ResponseWriter, r *http.Request) {
	p, _ := auth.PrincipalFrom(r.Context())
	productID := chi.URLParam(r, "productId")
	var req SetQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"message": err.Error()})
		return
	}
	if err := h.service.SetQuantity(r.Context(), p.UserID, productID, req.Quantity); err != nil {
		h.fail(w, err)
		return
	}
	if req.Quantity <= 0 {
		respond(w, http.StatusOK, map[string]string{"message": "Removed from cart"})
		return
	}
	respond(w, http.StatusOK, map[string]string{"message": "Updated cart item"})
}

func (h *Handler) removeItem(w http.ResponseWriter, r *http.Request) {
	p, _ := auth.PrincipalFrom(r.Context())
	if err := h.service.RemoveItem(r.Context(), p.UserID, chi.URLParam(r, "productId")); err != nil {
		h.fail(w, err)
		return
	}
	respond(w, http.StatusOK, map[string]string{"message": "Removed from cart"})
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	p, _ := auth.PrincipalFrom(r.Context())
	if err := h.service.ClearCart(r.Context(), p.UserID); err != nil {
		h.fail(w, err)
		return
	}
	respond(w, http.StatusOK, map[string]string{"message": "Cart cleared"})
}

func (h *Handler) fail(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidProduct):
		respond(w, http.StatusBadRequest, map[string]string{"message": err.Error()})
	case errors.Is(err, ErrUnknownProduct):
		respond(w, http.StatusNotFound, map[string]string{"message": "Product not found"})
	default:
		h.logger.Error("cart request failed", zap.Error(err))
		respond(w, http.StatusInternalServerError, map[string]string{"message": "Internal server error"})
	}
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
