package auth

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/georgemunganga/pooja-store/internal/modules/user"
	"github.com/go-chi/chi/v5"
)

// Handler exposes auth HTTP endpoints.
type Handler struct {
	service Service
	tokens  *Tokens
}

func NewHandler(service Service, tokens *Tokens) *Handler {
	return &Handler{service: service, tokens: tokens}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/register", h.register)
		r.Post("/login", h.login)
		r.With(Authenticate(h.tokens)).Get("/me", h.me)
	})
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req credentials
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"message": err.Error()})
		return
	}
	s, err := h.service.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrInvalidInput):
			respond(w, http.StatusBadRequest, map[string]string{"message": err.Error()})
			return
		case errors.Is(err, user.ErrEmailTaken):
			respond(w, http.StatusConflict, map[string]string{"message": "Email already registered"})
			return
		}
		respond(w, http.StatusInternalServerError, map[string]string{"message": "Internal server error"})
		return
	}
	respond(w, http.StatusCreated, s)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req credentials
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"message": err.Error()})
		return
	}
	s, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			respond(w, http.StatusUnauthorized, map[string]string{"message": "Invalid credentials"})
			return
		}
		respond(w, http.StatusInternalServerError, map[string]string{"message": "Internal server error"})
		return
	}
	respond(w, http.StatusOK, s)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	p, _ := PrincipalFrom(r.Context())
	respond(w, http.StatusOK, map[string]Principal{"user": p})
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
