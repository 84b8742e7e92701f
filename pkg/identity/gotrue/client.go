// Package gotrue provides an identity.Client backed by the GoTrue admin API
// of the hosted backend (served under /auth/v1).
package gotrue

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"podium/pkg/identity"
	"podium/pkg/serrors"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

const (
	adminUsersPath = "/auth/v1/admin/users"
	// listPageSize is the page size used when scanning users by email.
	listPageSize = 1000
	// maxListPages bounds the email scan.
	maxListPages = 50
)

// Client talks to the GoTrue admin endpoints with the service role key. It is
// safe for concurrent use.
type Client struct {
	httpClient *http.Client
	baseURL    string
	serviceKey string
}

var _ identity.Client = (*Client)(nil)

// New constructs a Client for the backend at baseURL (e.g.
// https://xyz.supabase.co).
func New(httpClient *http.Client, baseURL, serviceKey string) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		serviceKey: serviceKey,
	}
}

type apiUser struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

func (u apiUser) toIdentity() identity.User {
	return identity.User{ID: u.ID, Email: u.Email}
}

// apiError covers both error shapes GoTrue has used over time.
type apiError struct {
	Code             any    `json:"code"`
	ErrorCode        string `json:"error_code"`
	Msg              string `json:"msg"`
	Message          string `json:"message"`
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

func (e apiError) message() string {
	for _, m := range []string{e.Msg, e.Message, e.ErrorDescription, e.Error} {
		if m != "" {
			return m
		}
	}

	return ""
}

func (e apiError) alreadyExists() bool {
	switch e.ErrorCode {
	case "email_exists", "user_already_exists":
		return true
	}
	if code, ok := e.Code.(string); ok && (code == "email_exists" || code == "user_already_exists") {
		return true
	}

	return strings.Contains(strings.ToLower(e.message()), "already been registered")
}

func (c *Client) do(ctx context.Context, method, path string, body any) (int, []byte, error) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return 0, nil, fmt.Errorf("could not marshal request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return 0, nil, fmt.Errorf("could not create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("apikey", c.serviceKey)
	req.Header.Set("Authorization", "Bearer "+c.serviceKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("could not send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("could not read response body: %w", err)
	}

	return resp.StatusCode, b, nil
}

func decodeError(b []byte) apiError {
	var e apiError
	_ = json.Unmarshal(b, &e)

	return e
}

// CreateUser creates a user through POST /auth/v1/admin/users.
func (c *Client) CreateUser(ctx context.Context, req identity.CreateUserReq) (identity.User, error) {
	type createReq struct {
		Email        string         `json:"email"`
		Password     string         `json:"password"`
		EmailConfirm bool           `json:"email_confirm"`
		UserMetadata map[string]any `json:"user_metadata,omitempty"`
	}

	status, b, err := c.do(ctx, http.MethodPost, adminUsersPath, createReq{
		Email:        req.Email,
		Password:     req.Password,
		EmailConfirm: req.EmailConfirm,
		UserMetadata: req.Metadata,
	})
	if err != nil {
		return identity.User{}, err
	}
	if status < 200 || status >= 300 {
		apiErr := decodeError(b)
		switch {
		case apiErr.alreadyExists():
			return identity.User{}, serrors.With(serrors.ErrConflict, "%s", apiErr.message())
		case status >= 400 && status < 500:
			msg := apiErr.message()
			if msg == "" {
				msg = strings.TrimSpace(string(b))
			}

			return identity.User{}, serrors.With(serrors.ErrBadRequest, "%s", msg)
		default:
			return identity.User{}, fmt.Errorf("create user failed with %d: %s", status, strings.TrimSpace(string(b)))
		}
	}

	var user apiUser
	if err := json.Unmarshal(b, &user); err != nil {
		return identity.User{}, fmt.Errorf("could not decode response: %w", err)
	}
	if user.ID == uuid.Nil {
		return identity.User{}, fmt.Errorf("create user response has no id: %s", strings.TrimSpace(string(b)))
	}

	return user.toIdentity(), nil
}

// UserByEmail pages through GET /auth/v1/admin/users until it finds the email.
func (c *Client) UserByEmail(ctx context.Context, email string) (*identity.User, error) {
	want := strings.ToLower(strings.TrimSpace(email))

	for page := 1; page <= maxListPages; page++ {
		q := url.Values{}
		q.Set("page", strconv.Itoa(page))
		q.Set("per_page", strconv.Itoa(listPageSize))

		status, b, err := c.do(ctx, http.MethodGet, adminUsersPath+"?"+q.Encode(), nil)
		if err != nil {
			return nil, err
		}
		if status < 200 || status >= 300 {
			return nil, fmt.Errorf("list users failed with %d: %s", status, strings.TrimSpace(string(b)))
		}

		var res struct {
			Users []apiUser `json:"users"`
		}
		if err := json.Unmarshal(b, &res); err != nil {
			return nil, fmt.Errorf("could not decode response: %w", err)
		}
		for _, u := range res.Users {
			if strings.ToLower(u.Email) == want {
				user := u.toIdentity()

				return &user, nil
			}
		}
		if len(res.Users) < listPageSize {
			return nil, nil
		}
	}

	return nil, nil
}

// DeleteUser removes a user through DELETE /auth/v1/admin/users/{id}.
func (c *Client) DeleteUser(ctx context.Context, id uuid.UUID) error {
	status, b, err := c.do(ctx, http.MethodDelete, adminUsersPath+"/"+id.String(), nil)
	if err != nil {
		return err
	}
	if status == http.StatusNotFound {
		return serrors.With(serrors.ErrNotFound, "identity user %s not found", id)
	}
	if status < 200 || status >= 300 {
		return fmt.Errorf("delete user failed with %d: %s", status, strings.TrimSpace(string(b)))
	}

	return nil
}
