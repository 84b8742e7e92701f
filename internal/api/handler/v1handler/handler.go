// Package v1handler serves the JSON API: signup, the checkout handoff and the
// content lists the pages load more items from.
package v1handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"podium/internal/checkout"
	"podium/internal/content"
	"podium/internal/signup"
	"podium/pkg/logger"
	"podium/pkg/serrors"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// maxBodyBytes bounds request bodies.
const maxBodyBytes = 64 << 10

// Deps are the services behind the API.
type Deps struct {
	Signup   signup.Service
	Checkout checkout.Service
	Content  content.Service
}

type Handler struct {
	deps Deps
}

func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// Routes mounts the API on r. signupLimit wraps the signup POST; nil leaves
// it unlimited.
func (h *Handler) Routes(r chi.Router, signupLimit func(http.Handler) http.Handler) {
	r.Route("/api", func(r chi.Router) {
		r.Route("/auth/signup", func(r chi.Router) {
			if signupLimit != nil {
				r.With(signupLimit).Post("/", h.PostSignup)
			} else {
				r.Post("/", h.PostSignup)
			}
			r.Get("/", h.GetSignup)
		})
		r.Get("/checkout/handoff", h.CheckoutHandoff)
		r.Route("/content", func(r chi.Router) {
			r.Get("/articles", h.ListArticles)
			r.Get("/faqs", h.ListFAQs)
			r.Get("/help", h.ListHelp)
			r.Get("/speakers", h.ListSpeakers)
			r.Get("/organizations", h.ListOrganizations)
			r.Get("/opportunities", h.ListOpportunities)
			r.Get("/plans", h.ListPlans)
		})
	})
}

type errorBody struct {
	Error string `json:"error"`
}

// NewError writes err as a JSON error body with the status its kind maps to.
func (h *Handler) NewError(ctx context.Context, w http.ResponseWriter, err error) {
	h.writeError(ctx, w, serrors.HTTPStatus(err), err)
}

func (h *Handler) writeError(ctx context.Context, w http.ResponseWriter, status int, err error) {
	if status >= http.StatusInternalServerError {
		logger.Error(ctx, "request failed", zap.Error(err), zap.Int("status", status))
	} else {
		logger.Debug(ctx, "request rejected", zap.Error(err), zap.Int("status", status))
	}

	writeJSON(ctx, w, status, errorBody{Error: serrors.PublicMessage(err)})
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Warn(ctx, "could not write response", zap.Error(err))
	}
}

// decodeJSON reads a single JSON object from r into dst.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return serrors.Wrap(serrors.ErrBadRequest, err, "Request body is too large")
		}

		return serrors.Wrap(serrors.ErrBadRequest, err, "Invalid request body")
	}

	return nil
}
