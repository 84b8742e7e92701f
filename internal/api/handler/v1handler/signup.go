package v1handler

import (
	"net/http"
	"podium/internal/signup"
	"podium/pkg/domain"
	"podium/pkg/serrors"
)

type signupUser struct {
	ID       string          `json:"id"`
	Email    string          `json:"email"`
	Name     string          `json:"name"`
	UserType domain.UserType `json:"userType"`
	PlanID   string          `json:"planId,omitempty"`
}

type signupResponse struct {
	Success          bool       `json:"success"`
	RedirectURL      string     `json:"redirectUrl"`
	RequiresCheckout bool       `json:"requiresCheckout"`
	User             signupUser `json:"user"`
	Message          string     `json:"message"`
}

type signupHealthResponse struct {
	Status string `json:"status"`
	signup.Health
}

// signupStatus maps signup failures onto the route's public contract, which
// only knows 400 and 500.
func signupStatus(err error) int {
	switch serrors.KindOf(err) {
	case serrors.ErrBadRequest, serrors.ErrConflict:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// PostSignup creates an account and returns where the browser goes next.
func (h *Handler) PostSignup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req signup.Request
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(ctx, w, http.StatusBadRequest, err)

		return
	}

	res, err := h.deps.Signup.Signup(ctx, req)
	if err != nil {
		h.writeError(ctx, w, signupStatus(err), err)

		return
	}

	writeJSON(ctx, w, http.StatusOK, signupResponse{
		Success:          true,
		RedirectURL:      res.RedirectURL,
		RequiresCheckout: res.RequiresCheckout,
		User: signupUser{
			ID:       res.Member.ID.String(),
			Email:    res.Member.Email,
			Name:     res.Member.Name,
			UserType: res.Member.UserType,
			PlanID:   res.Member.PlanID,
		},
		Message: res.Message,
	})
}

// GetSignup reports integration configuration and row counts.
func (h *Handler) GetSignup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	health, err := h.deps.Signup.Health(ctx)
	if err != nil {
		h.writeError(ctx, w, http.StatusInternalServerError, err)

		return
	}

	writeJSON(ctx, w, http.StatusOK, signupHealthResponse{Status: "ok", Health: health})
}
