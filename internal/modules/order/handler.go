package order

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/georgemunganga/pooja-store/internal/modules/auth"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Handler exposes checkout and order history endpoints.
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
	r.Route("/api/orders", func(r chi.Router) {
		r.Use(auth.Authenticate(h.tokens))
		r.Post("/", h.placeOrder)  // POST /api/orders
		r.Get("/", h.listOrders)   // GET  /api/orders
		r.Get("/{id}", h.getOrder) // GET  /api/orders/{id}
	})
}

func (h *Handler) placeOrder(w http.ResponseWriter, r *http.Request) {
	p, _ := auth.PrincipalFrom(r.Context())
	var req PlaceOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"message": err.Error()})
		return
	}
	o, err := h.service.PlaceOrder(r.Context(), p.UserID, req)
	if err != nil {
		h.fail(w, err)
		return
	}
	h.logger.Info("order placed",
		zap.String("order_id", o.ID.String()),
		zap.String("order_number", o.OrderNumber),
		zap.Int("lines", len(o.Items)))
	respond(w, http.StatusCreated, o)
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	p, _ := auth.PrincipalFrom(r.Context())
	orders, err := h.service.ListOrders(r.Context(), p.UserID)
	if err != nil {
		h.fail(w, err)
		return
	}
	respond(w, http.StatusOK, map[string]interface{}{"items": orders})
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	p, _ := auth.PrincipalFrom(r.Context())
	o, err := h.service.GetOrder(r.Context(), p.UserID, chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, err)
		return
	}
	respond(w, http.StatusOK, o)
}

func (h *Handler) fail(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidOrder):
		respond(w, http.StatusBadRequest, map[string]string{"message": err.Error()})
	case errors.Is(err, ErrUnknownProduct):
		respond(w, http.StatusUnprocessableEntity, map[string]string{"message": err.Error()})
	case errors.Is(err, ErrNotFound):
		respond(w, http.StatusNotFound, map[string]string{"message": "Order not found"})
	default:
		h.logger.Error("order request failed", zap.Error(err))
		respond(w, http.StatusInternalServerError, map[string]string{"message": "Internal server error"})
	}
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
