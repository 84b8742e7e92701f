package v1handler

import (
	"net/http"
)

// CheckoutHandoff creates a checkout session for the member in the token
// query parameter and redirects the browser to it.
func (h *Handler) CheckoutHandoff(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	target, err := h.deps.Checkout.Handoff(ctx, q.Get("token"), q.Get("priceId"), q.Get("planId"))
	if err != nil {
		h.NewError(ctx, w, err)

		return
	}

	w.Header().Set("Cache-Control", "no-store")
	http.Redirect(w, r, target, http.StatusSeeOther)
}
