// Package pages renders the public HTML site from embedded templates. Lists
// are read through the content service; authenticated features live on the
// application subdomain and are reached by redirect.
package pages

import (
	"errors"
	"html/template"
	"net/http"
	"podium/internal/api/handler/query"
	"podium/internal/content"
	"podium/internal/pricing"
	"podium/pkg/domain"
	"podium/pkg/logger"
	"podium/pkg/serrors"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const (
	errorPage = "error"
	// homeArticles is how many articles the home page previews.
	homeArticles = 3
)

// AppPaths are forwarded to the application subdomain.
var AppPaths = []string{"/login", "/dashboard", "/messages", "/applications"} //nolint: gochecknoglobals

// Options configure the pages.
type Options struct {
	SiteURL           string
	AppURL            string
	MinPasswordLength int
}

type Handler struct {
	options   Options
	content   content.Service
	templates map[string]*template.Template
	now       func() time.Time
}

// New parses the embedded templates.
func New(c content.Service, options Options) (*Handler, error) {
	templates, err := parseTemplates()
	if err != nil {
		return nil, err
	}
	if options.MinPasswordLength <= 0 {
		options.MinPasswordLength = 8
	}

	return &Handler{
		options:   options,
		content:   c,
		templates: templates,
		now:       time.Now,
	}, nil
}

// Routes mounts the pages and the application redirects on r.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.Home)
	r.Get("/about", h.About)
	r.Get("/pricing", h.Pricing)
	r.Get("/faq", h.FAQ)
	r.Get("/help", h.Help)
	r.Get("/help/{slug}", h.HelpArticle)
	r.Get("/articles", h.Articles)
	r.Get("/articles/{slug}", h.Article)
	r.Get("/speakers", h.Speakers)
	r.Get("/organizations", h.Organizations)
	r.Get("/opportunities", h.Opportunities)
	r.Get("/signup", h.Signup)
	for _, p := range AppPaths {
		r.Get(p, h.ToApp)
		r.Get(p+"/*", h.ToApp)
	}
	r.NotFound(h.NotFound)
}

// fail renders the error page for err. Not found keeps its status; anything
// else is logged and shown as a generic 500.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	msg := "Something went wrong on our side. Please try again."
	if errors.Is(err, serrors.ErrNotFound) {
		status = http.StatusNotFound
		msg = "We could not find that page."
	} else if errors.Is(err, serrors.ErrBadRequest) {
		status = http.StatusBadRequest
		msg = serrors.PublicMessage(err)
	} else {
		logger.Error(r.Context(), "could not render page", zap.Error(err), zap.String("path", r.URL.Path))
	}

	h.render(w, r, status, errorPage, http.StatusText(status), errorData{Status: status, Message: msg})
}

type errorData struct {
	Status  int
	Message string
}

// NotFound renders the 404 page.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.fail(w, r, serrors.KindOnly(serrors.ErrNotFound))
}

// ToApp redirects to the same path on the application subdomain.
func (h *Handler) ToApp(w http.ResponseWriter, r *http.Request) {
	target := strings.TrimRight(h.options.AppURL, "/") + r.URL.Path
	if r.URL.RawQuery != "" {
		target += "?" + r.URL.RawQuery
	}

	http.Redirect(w, r, target, http.StatusFound)
}

type homeData struct {
	Articles     []domain.Article
	SpeakerPlans []domain.Plan
}

func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	list, err := h.content.Articles(r.Context(), content.ArticleQuery{Page: 1})
	if err != nil {
		// the home page still renders without articles
		logger.Warn(r.Context(), "could not load home articles", zap.Error(err))
	}
	articles := list.Items
	if len(articles) > homeArticles {
		articles = articles[:homeArticles]
	}

	h.render(w, r, http.StatusOK, "home", "", homeData{
		Articles:     articles,
		SpeakerPlans: h.content.Plans(domain.UserTypeSpeaker),
	})
}

func (h *Handler) About(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "about", "About", nil)
}

type pricingData struct {
	Speaker      []domain.Plan
	Organization []domain.Plan
	Canceled     bool
}

func (h *Handler) Pricing(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "pricing", "Pricing", pricingData{
		Speaker:      h.content.Plans(domain.UserTypeSpeaker),
		Organization: h.content.Plans(domain.UserTypeOrganization),
		Canceled:     r.URL.Query().Get("canceled") != "",
	})
}

type listData[T any] struct {
	List    content.List[T]
	NextURL string
}

func newListData[T any](r *http.Request, list content.List[T]) listData[T] {
	data := listData[T]{List: list}
	if list.HasMore {
		data.NextURL = r.URL.Path + "?" + query.NextPage(r.URL.Query(), list.Page).Encode()
	}

	return data
}

func (h *Handler) FAQ(w http.ResponseWriter, r *http.Request) {
	list, err := h.content.FAQs(r.Context(), query.FAQs(r.URL.Query()))
	if err != nil {
		h.fail(w, r, err)

		return
	}
	h.render(w, r, http.StatusOK, "faq", "FAQ", newListData(r, list))
}

func (h *Handler) Help(w http.ResponseWriter, r *http.Request) {
	list, err := h.content.Help(r.Context(), query.Help(r.URL.Query()))
	if err != nil {
		h.fail(w, r, err)

		return
	}
	h.render(w, r, http.StatusOK, "help", "Help center", newListData(r, list))
}

type helpArticleData struct {
	Article *domain.HelpArticle
	Body    template.HTML
}

func (h *Handler) HelpArticle(w http.ResponseWriter, r *http.Request) {
	a, err := h.content.HelpArticle(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		h.fail(w, r, err)

		return
	}
	// the body was sanitized by the content service
	h.render(w, r, http.StatusOK, "help_article", a.Title, helpArticleData{
		Article: a,
		Body:    template.HTML(a.Body), //nolint: gosec
	})
}

func (h *Handler) Articles(w http.ResponseWriter, r *http.Request) {
	list, err := h.content.Articles(r.Context(), query.Articles(r.URL.Query()))
	if err != nil {
		h.fail(w, r, err)

		return
	}
	h.render(w, r, http.StatusOK, "articles", "Articles", newListData(r, list))
}

type articleData struct {
	Article *domain.Article
	Body    template.HTML
}

func (h *Handler) Article(w http.ResponseWriter, r *http.Request) {
	a, err := h.content.Article(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		h.fail(w, r, err)

		return
	}
	h.render(w, r, http.StatusOK, "article", a.Title, articleData{
		Article: a,
		Body:    template.HTML(a.Body), //nolint: gosec
	})
}

func (h *Handler) Speakers(w http.ResponseWriter, r *http.Request) {
	q, err := query.Speakers(r.URL.Query())
	if err != nil {
		h.fail(w, r, err)

		return
	}
	list, err := h.content.Speakers(r.Context(), q)
	if err != nil {
		h.fail(w, r, err)

		return
	}
	h.render(w, r, http.StatusOK, "speakers", "Speakers", newListData(r, list))
}

func (h *Handler) Organizations(w http.ResponseWriter, r *http.Request) {
	list, err := h.content.Organizations(r.Context(), query.Organizations(r.URL.Query()))
	if err != nil {
		h.fail(w, r, err)

		return
	}
	h.render(w, r, http.StatusOK, "organizations", "Organizations", newListData(r, list))
}

func (h *Handler) Opportunities(w http.ResponseWriter, r *http.Request) {
	f, err := query.Opportunities(r.URL.Query())
	if err != nil {
		h.fail(w, r, err)

		return
	}
	list, err := h.content.Opportunities(r.Context(), f)
	if err != nil {
		h.fail(w, r, err)

		return
	}
	h.render(w, r, http.StatusOK, "opportunities", "Opportunities", listData[domain.Opportunity]{List: list})
}

type signupData struct {
	UserType          string
	PlanID            string
	Plans             []domain.Plan
	MinPasswordLength int
}

func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	data := signupData{
		UserType:          string(domain.UserType(q.Get(query.UserType)).Normalize()),
		PlanID:            q.Get("planId"),
		Plans:             h.content.Plans(domain.UserTypeSpeaker),
		MinPasswordLength: h.options.MinPasswordLength,
	}
	if data.PlanID == "" {
		data.PlanID = pricing.FreeSpeakerPlanID
	}

	h.render(w, r, http.StatusOK, "signup", "Sign up", data)
}
