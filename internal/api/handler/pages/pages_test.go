package pages_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"podium/internal/api/handler/pages"
	"podium/internal/catalog"
	"podium/internal/content"
	mockcontent "podium/internal/content/mock"
	"podium/pkg/domain"
	"podium/pkg/logger"
	"podium/pkg/serrors"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func newRouter(t *testing.T) (*mockcontent.MockService, chi.Router) {
	t.Helper()

	svc := mockcontent.NewMockService(gomock.NewController(t))
	h, err := pages.New(svc, pages.Options{
		SiteURL: "https://podium.test",
		AppURL:  "https://app.podium.test",
	})
	require.NoError(t, err)

	r := chi.NewRouter()
	h.Routes(r)

	return svc, r
}

func get(r http.Handler, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))

	return rec
}

func speakerPlans() []domain.Plan {
	return []domain.Plan{
		{ID: "speaker-free", Name: "Starter", UserType: domain.UserTypeSpeaker, Interval: "month"},
		{
			ID:       "speaker-pro",
			Name:     "Pro",
			UserType: domain.UserTypeSpeaker,
			Price:    decimal.NewFromInt(29),
			Interval: "month",
			PriceID:  "price_pro",
		},
	}
}

func TestHome(t *testing.T) {
	svc, r := newRouter(t)
	published := time.Date(2026, 5, 4, 0, 0, 0, 0, time.UTC)
	svc.EXPECT().Articles(gomock.Any(), content.ArticleQuery{Page: 1}).Return(content.List[domain.Article]{
		Window: catalog.Window[domain.Article]{Items: []domain.Article{
			{Slug: "a", Title: "Landing your first keynote", PublishedAt: published},
			{Slug: "b", Title: "B"}, {Slug: "c", Title: "C"}, {Slug: "d", Title: "Fourth"},
		}},
	}, nil)
	svc.EXPECT().Plans(domain.UserTypeSpeaker).Return(speakerPlans())

	rec := get(r, "/")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	body := rec.Body.String()
	require.Contains(t, body, "Landing your first keynote")
	require.Contains(t, body, "May 4, 2026")
	require.Contains(t, body, "$29/month")
	require.NotContains(t, body, "Fourth")
}

func TestHome_ArticlesFailureStillRenders(t *testing.T) {
	svc, r := newRouter(t)
	svc.EXPECT().Articles(gomock.Any(), gomock.Any()).Return(content.List[domain.Article]{}, errors.New("db down"))
	svc.EXPECT().Plans(domain.UserTypeSpeaker).Return(nil)

	require.Equal(t, http.StatusOK, get(r, "/").Code)
}

func TestAboutAndPricing(t *testing.T) {
	svc, r := newRouter(t)
	require.Equal(t, http.StatusOK, get(r, "/about").Code)

	svc.EXPECT().Plans(domain.UserTypeSpeaker).Return(speakerPlans())
	svc.EXPECT().Plans(domain.UserTypeOrganization).Return([]domain.Plan{{ID: "org-free", Name: "Host"}})
	rec := get(r, "/pricing?canceled=1")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	require.Contains(t, body, "Checkout was canceled")
	require.Contains(t, body, "planId=speaker-pro&amp;priceId=price_pro")
	require.Contains(t, body, "Host")
}

func TestArticleDetail(t *testing.T) {
	svc, r := newRouter(t)
	svc.EXPECT().Article(gomock.Any(), "keynotes").Return(&domain.Article{
		Slug:  "keynotes",
		Title: "Keynotes 101",
		Body:  "<p>Open <strong>strong</strong></p>",
	}, nil)
	svc.EXPECT().Article(gomock.Any(), "missing").Return(nil, serrors.KindOnly(serrors.ErrNotFound))

	rec := get(r, "/articles/keynotes")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "<p>Open <strong>strong</strong></p>")
	require.Contains(t, rec.Body.String(), "<title>Keynotes 101 | Podium</title>")

	rec = get(r, "/articles/missing")
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Contains(t, rec.Body.String(), "We could not find that page.")
}

func TestHelpArticleDetail(t *testing.T) {
	svc, r := newRouter(t)
	svc.EXPECT().HelpArticle(gomock.Any(), "billing").Return(&domain.HelpArticle{
		Slug:     "billing",
		Title:    "Billing",
		Category: "Account",
		Body:     "<p>Invoices</p>",
	}, nil)

	rec := get(r, "/help/billing")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "<p>Invoices</p>")
	require.Contains(t, rec.Body.String(), "Account")
}

func TestSpeakers_LoadMore(t *testing.T) {
	svc, r := newRouter(t)
	fee := decimal.NewFromInt(1500)
	svc.EXPECT().Speakers(gomock.Any(), gomock.Any()).Return(content.List[domain.Speaker]{
		Window: catalog.Window[domain.Speaker]{
			Items: []domain.Speaker{{
				Name:     "Grace Hopper",
				Topics:   []string{"Compilers", "Leadership"},
				Location: "Arlington",
				FeeMin:   &fee,
				Rating:   decimal.RequireFromString("4.8"),
			}},
			Page:    1,
			HasMore: true,
		},
		Categories: []string{"Compilers", "Leadership"},
	}, nil)

	rec := get(r, "/speakers?specialty=Compilers")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	require.Contains(t, body, "Grace Hopper")
	require.Contains(t, body, "Compilers, Leadership")
	require.Contains(t, body, "$1500")
	require.Contains(t, body, "rated 4.8")
	require.Contains(t, body, "<option selected>Compilers</option>")
	require.Contains(t, body, "/speakers?page=2&amp;specialty=Compilers")
}

func TestSpeakers_BadFilter(t *testing.T) {
	_, r := newRouter(t)

	rec := get(r, "/speakers?minFee=abc")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "minFee must be a non-negative number")
}

func TestLists_Empty(t *testing.T) {
	svc, r := newRouter(t)
	svc.EXPECT().Organizations(gomock.Any(), gomock.Any()).Return(content.List[domain.Organization]{}, nil)
	svc.EXPECT().Opportunities(gomock.Any(), gomock.Any()).Return(content.List[domain.Opportunity]{}, nil)
	svc.EXPECT().FAQs(gomock.Any(), gomock.Any()).Return(content.List[domain.FAQ]{}, nil)
	svc.EXPECT().Help(gomock.Any(), gomock.Any()).Return(content.List[domain.HelpArticle]{}, nil)
	svc.EXPECT().Articles(gomock.Any(), gomock.Any()).Return(content.List[domain.Article]{}, nil)

	require.Contains(t, get(r, "/organizations").Body.String(), "No organizations match your filters.")
	require.Contains(t, get(r, "/opportunities").Body.String(), "No open opportunities match your filters.")
	require.Contains(t, get(r, "/faq").Body.String(), "No questions match your search.")
	require.Contains(t, get(r, "/help").Body.String(), "No help articles match your search.")
	require.Contains(t, get(r, "/articles").Body.String(), "No articles match your filters.")
}

func TestLists_ContentFailure(t *testing.T) {
	svc, r := newRouter(t)
	svc.EXPECT().Organizations(gomock.Any(), gomock.Any()).Return(content.List[domain.Organization]{}, errors.New("db down"))

	rec := get(r, "/organizations")
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.NotContains(t, rec.Body.String(), "db down")
}

func TestSignupPage(t *testing.T) {
	svc, r := newRouter(t)
	svc.EXPECT().Plans(domain.UserTypeSpeaker).Return(speakerPlans())

	rec := get(r, "/signup?planId=speaker-pro")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	require.Contains(t, body, `<option value="speaker-pro" data-price-id="price_pro" selected>`)
	require.Contains(t, body, `minlength="8"`)
}

func TestToApp(t *testing.T) {
	_, r := newRouter(t)

	for _, p := range pages.AppPaths {
		rec := get(r, p)
		require.Equal(t, http.StatusFound, rec.Code, p)
		require.Equal(t, "https://app.podium.test"+p, rec.Header().Get("Location"))
	}

	rec := get(r, "/login?email=ada%40example.com")
	require.Equal(t, "https://app.podium.test/login?email=ada%40example.com", rec.Header().Get("Location"))

	rec = get(r, "/messages/42")
	require.Equal(t, "https://app.podium.test/messages/42", rec.Header().Get("Location"))
}

func TestNotFound(t *testing.T) {
	_, r := newRouter(t)

	rec := get(r, "/nope")
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Contains(t, rec.Body.String(), "<h1>404</h1>")
}
