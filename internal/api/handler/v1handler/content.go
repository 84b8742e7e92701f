package v1handler

import (
	"net/http"
	"podium/internal/api/handler/query"
)

func (h *Handler) ListArticles(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	list, err := h.deps.Content.Articles(ctx, query.Articles(r.URL.Query()))
	if err != nil {
		h.NewError(ctx, w, err)

		return
	}
	writeJSON(ctx, w, http.StatusOK, list)
}

func (h *Handler) ListFAQs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	list, err := h.deps.Content.FAQs(ctx, query.FAQs(r.URL.Query()))
	if err != nil {
		h.NewError(ctx, w, err)

		return
	}
	writeJSON(ctx, w, http.StatusOK, list)
}

func (h *Handler) ListHelp(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	list, err := h.deps.Content.Help(ctx, query.Help(r.URL.Query()))
	if err != nil {
		h.NewError(ctx, w, err)

		return
	}
	writeJSON(ctx, w, http.StatusOK, list)
}

func (h *Handler) ListSpeakers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q, err := query.Speakers(r.URL.Query())
	if err != nil {
		h.NewError(ctx, w, err)

		return
	}
	list, err := h.deps.Content.Speakers(ctx, q)
	if err != nil {
		h.NewError(ctx, w, err)

		return
	}
	writeJSON(ctx, w, http.StatusOK, list)
}

func (h *Handler) ListOrganizations(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	list, err := h.deps.Content.Organizations(ctx, query.Organizations(r.URL.Query()))
	if err != nil {
		h.NewError(ctx, w, err)

		return
	}
	writeJSON(ctx, w, http.StatusOK, list)
}

func (h *Handler) ListOpportunities(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	f, err := query.Opportunities(r.URL.Query())
	if err != nil {
		h.NewError(ctx, w, err)

		return
	}
	list, err := h.deps.Content.Opportunities(ctx, f)
	if err != nil {
		h.NewError(ctx, w, err)

		return
	}
	writeJSON(ctx, w, http.StatusOK, list)
}

// ListPlans returns the pricing plans, optionally for one user type.
func (h *Handler) ListPlans(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userType, err := query.PlanUserType(r.URL.Query())
	if err != nil {
		h.NewError(ctx, w, err)

		return
	}
	writeJSON(ctx, w, http.StatusOK, map[string]any{"items": h.deps.Content.Plans(userType)})
}
