package api_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"podium/internal/api"
	"podium/internal/api/handler/v1handler"
	mockcheckout "podium/internal/checkout/mock"
	mockcontent "podium/internal/content/mock"
	mocksignup "podium/internal/signup/mock"
	"podium/pkg/domain"
	"podium/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func newHandler(t *testing.T, db api.Pinger) (*mockcontent.MockService, http.Handler) {
	t.Helper()

	ctrl := gomock.NewController(t)
	content := mockcontent.NewMockService(ctrl)
	h, err := api.NewHandler(t.Context(), api.Deps{
		Deps: v1handler.Deps{
			Signup:   mocksignup.NewMockService(ctrl),
			Checkout: mockcheckout.NewMockService(ctrl),
			Content:  content,
		},
		Database: db,
	}, api.Options{
		MetricsPath:          "/metrics",
		SignupRateLimitRPS:   1,
		SignupRateLimitBurst: 1,
	})
	require.NoError(t, err)

	return content, h
}

func serve(h http.Handler, method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, target, nil))

	return rec
}

func TestOperationalRoutes(t *testing.T) {
	_, h := newHandler(t, nil)

	rec := serve(h, http.MethodGet, "/specs/v1.yaml")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/yaml", rec.Header().Get("Content-Type"))
	require.Contains(t, rec.Body.String(), "/api/auth/signup")

	require.Equal(t, http.StatusOK, serve(h, http.MethodGet, "/metrics").Code)
	require.Equal(t, http.StatusOK, serve(h, http.MethodGet, "/docs/").Code)
	require.Equal(t, http.StatusOK, serve(h, http.MethodGet, "/debug/pprof/").Code)

	rec = serve(h, http.MethodGet, "/healthz")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	require.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestHealthz_DatabaseDown(t *testing.T) {
	_, h := newHandler(t, pingFunc(func(context.Context) error { return errors.New("refused") }))

	rec := serve(h, http.MethodGet, "/healthz")
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestRoutesMounted(t *testing.T) {
	content, h := newHandler(t, pingFunc(func(context.Context) error { return nil }))
	content.EXPECT().Plans(domain.UserTypeSpeaker).Return(nil).Times(2)
	content.EXPECT().Plans(domain.UserTypeOrganization).Return(nil)

	require.Equal(t, http.StatusOK, serve(h, http.MethodGet, "/api/content/plans?userType=speaker").Code)
	require.Equal(t, http.StatusOK, serve(h, http.MethodGet, "/pricing").Code)
	require.Equal(t, http.StatusFound, serve(h, http.MethodGet, "/dashboard").Code)
	require.Equal(t, http.StatusNotFound, serve(h, http.MethodGet, "/nowhere").Code)

	rec := serve(h, http.MethodOptions, "/api/auth/signup")
	require.Equal(t, http.StatusNoContent, rec.Code)
}

func TestSignupRateLimit(t *testing.T) {
	_, h := newHandler(t, nil)

	post := func() int {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/auth/signup", strings.NewReader(`{`)))

		return rec.Code
	}
	require.Equal(t, http.StatusBadRequest, post())
	require.Equal(t, http.StatusTooManyRequests, post())

	t.Run("rotating forwarded headers share the bucket", func(t *testing.T) {
		_, h := newHandler(t, nil)

		for i := range 4 {
			req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", strings.NewReader(`{`))
			req.RemoteAddr = "203.0.113.7:5555"
			req.Header.Set("X-Forwarded-For", fmt.Sprintf("198.51.100.%d", i+1))
			req.Header.Set("X-Real-IP", fmt.Sprintf("198.51.101.%d", i+1))
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			want := http.StatusTooManyRequests
			if i == 0 {
				want = http.StatusBadRequest
			}
			require.Equal(t, want, rec.Code, "request %d", i)
		}
	})
}

func TestRecoverer(t *testing.T) {
	content, h := newHandler(t, nil)
	content.EXPECT().Plans(gomock.Any()).DoAndReturn(func(domain.UserType) []domain.Plan { panic("boom") })

	require.Equal(t, http.StatusInternalServerError, serve(h, http.MethodGet, "/api/content/plans").Code)
}
