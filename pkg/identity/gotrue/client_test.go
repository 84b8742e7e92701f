package gotrue_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"podium/pkg/identity"
	"podium/pkg/identity/gotrue"
	"podium/pkg/serrors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// rtFunc allows using a function as an http.RoundTripper.
type rtFunc func(*http.Request) (*http.Response, error)

func (f rtFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func newTestClient(fn rtFunc) *gotrue.Client {
	return gotrue.New(&http.Client{Transport: fn}, "https://project.example.co/", "service-key")
}

func respond(status int, body string) (*http.Response, error) {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(body)),
	}, nil
}

func TestClient_CreateUser_success(t *testing.T) {
	id := uuid.New()
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "project.example.co", r.URL.Host)
		require.Equal(t, "/auth/v1/admin/users", r.URL.Path)
		require.Equal(t, "service-key", r.Header.Get("apikey"))
		require.Equal(t, "Bearer service-key", r.Header.Get("Authorization"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "ada@example.com", body["email"])
		require.Equal(t, "secret123", body["password"])
		require.Equal(t, true, body["email_confirm"])
		require.Equal(t, map[string]any{"name": "Ada", "user_type": "speaker"}, body["user_metadata"])

		return respond(http.StatusOK, fmt.Sprintf(`{"id":"%s","email":"ada@example.com","aud":"authenticated"}`, id))
	})

	user, err := c.CreateUser(context.Background(), identity.CreateUserReq{
		Email:        "ada@example.com",
		Password:     "secret123",
		Metadata:     map[string]any{"name": "Ada", "user_type": "speaker"},
		EmailConfirm: true,
	})
	require.NoError(t, err)
	require.Equal(t, id, user.ID)
	require.Equal(t, "ada@example.com", user.Email)
}

func TestClient_CreateUser_errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		kind    serrors.Kind
		message string
	}{
		{
			name:    "email_exists error code",
			status:  http.StatusUnprocessableEntity,
			body:    `{"code":422,"error_code":"email_exists","msg":"A user with this email address has already been registered"}`,
			kind:    serrors.ErrConflict,
			message: "A user with this email address has already been registered",
		},
		{
			name:    "legacy message only",
			status:  http.StatusUnprocessableEntity,
			body:    `{"code":422,"msg":"A user with this email address has already been registered"}`,
			kind:    serrors.ErrConflict,
			message: "A user with this email address has already been registered",
		},
		{
			name:    "weak password",
			status:  http.StatusUnprocessableEntity,
			body:    `{"code":422,"error_code":"weak_password","msg":"Password should be at least 6 characters."}`,
			kind:    serrors.ErrBadRequest,
			message: "Password should be at least 6 characters.",
		},
		{
			name:    "invalid key",
			status:  http.StatusUnauthorized,
			body:    `{"message":"Invalid API key"}`,
			kind:    serrors.ErrBadRequest,
			message: "Invalid API key",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(func(*http.Request) (*http.Response, error) {
				return respond(tt.status, tt.body)
			})

			_, err := c.CreateUser(context.Background(), identity.CreateUserReq{Email: "a@b.co", Password: "x"})
			require.ErrorIs(t, err, tt.kind)
			require.Equal(t, tt.message, serrors.PublicMessage(err))
		})
	}
}

func TestClient_CreateUser_serverError(t *testing.T) {
	c := newTestClient(func(*http.Request) (*http.Response, error) {
		return respond(http.StatusBadGateway, "upstream bad")
	})

	_, err := c.CreateUser(context.Background(), identity.CreateUserReq{Email: "a@b.co", Password: "x"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "upstream bad")
	require.Equal(t, serrors.ErrInternal, serrors.KindOf(err))
}

func TestClient_UserByEmail(t *testing.T) {
	id := uuid.New()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/v1/admin/users", r.URL.Path)
		require.Equal(t, "1", r.URL.Query().Get("page"))
		_, _ = fmt.Fprintf(w, `{"users":[{"id":"%s","email":"Other@example.com"},{"id":"%s","email":"Ada@Example.com"}]}`,
			uuid.New(), id)
	}))
	defer srv.Close()

	c := gotrue.New(srv.Client(), srv.URL, "service-key")

	user, err := c.UserByEmail(context.Background(), "ada@example.com")
	require.NoError(t, err)
	require.NotNil(t, user)
	require.Equal(t, id, user.ID)

	user, err = c.UserByEmail(context.Background(), "nobody@example.com")
	require.NoError(t, err)
	require.Nil(t, user)
}

func TestClient_DeleteUser(t *testing.T) {
	existing := uuid.New()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		if r.URL.Path == "/auth/v1/admin/users/"+existing.String() {
			_, _ = w.Write([]byte(`{}`))

			return
		}
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"code":404,"error_code":"user_not_found","msg":"User not found"}`))
	}))
	defer srv.Close()

	c := gotrue.New(srv.Client(), srv.URL, "service-key")

	require.NoError(t, c.DeleteUser(context.Background(), existing))
	require.ErrorIs(t, c.DeleteUser(context.Background(), uuid.New()), serrors.ErrNotFound)
}
