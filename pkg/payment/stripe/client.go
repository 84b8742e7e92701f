// Package stripe provides a payment.Client backed by stripe-go.
package stripe

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"podium/pkg/payment"
	"podium/pkg/serrors"

	stripego "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/checkout/session"
)

// DefaultBaseURL is the public Stripe API endpoint.
const DefaultBaseURL = stripego.APIURL

// Client creates Stripe Checkout sessions. It is safe for concurrent use.
type Client struct {
	sessions session.Client
}

var _ payment.Client = (*Client)(nil)

// New constructs a Client. An empty baseURL means DefaultBaseURL.
func New(httpClient *http.Client, baseURL, secretKey string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	backend := stripego.GetBackendWithConfig(stripego.APIBackend, &stripego.BackendConfig{
		HTTPClient: httpClient,
		URL:        stripego.String(strings.TrimRight(baseURL, "/")),
		// checkout retries happen in the browser, not here
		MaxNetworkRetries: stripego.Int64(0),
		LeveledLogger:     &stripego.LeveledLogger{Level: stripego.LevelNull},
	})

	return &Client{
		sessions: session.Client{B: backend, Key: secretKey},
	}
}

// CreateCheckoutSession creates a subscription-mode session.
func (c *Client) CreateCheckoutSession(ctx context.Context, req payment.CheckoutReq) (payment.Session, error) {
	params := &stripego.CheckoutSessionParams{
		Mode: stripego.String(string(stripego.CheckoutSessionModeSubscription)),
		LineItems: []*stripego.CheckoutSessionLineItemParams{{
			Price:    stripego.String(req.PriceID),
			Quantity: stripego.Int64(1),
		}},
		SuccessURL: stripego.String(req.SuccessURL),
		CancelURL:  stripego.String(req.CancelURL),
	}
	params.Context = ctx
	if req.CustomerEmail != "" {
		params.CustomerEmail = stripego.String(req.CustomerEmail)
	}
	if req.ClientReferenceID != "" {
		params.ClientReferenceID = stripego.String(req.ClientReferenceID)
	}
	if len(req.Metadata) > 0 {
		params.SubscriptionData = &stripego.CheckoutSessionSubscriptionDataParams{}
		for k, v := range req.Metadata {
			params.AddMetadata(k, v)
			params.SubscriptionData.AddMetadata(k, v)
		}
	}

	s, err := c.sessions.New(params)
	if err != nil {
		return payment.Session{}, mapError(err)
	}
	if s.URL == "" {
		return payment.Session{}, fmt.Errorf("checkout session %s has no url", s.ID)
	}

	return payment.Session{ID: s.ID, URL: s.URL}, nil
}

func mapError(err error) error {
	var apiErr *stripego.Error
	if !errors.As(err, &apiErr) {
		return fmt.Errorf("could not create checkout session: %w", err)
	}

	switch {
	case apiErr.HTTPStatusCode == http.StatusTooManyRequests:
		return serrors.With(serrors.ErrRateLimited, "%s", apiErr.Msg)
	case apiErr.HTTPStatusCode >= 400 && apiErr.HTTPStatusCode < 500:
		return serrors.With(serrors.ErrBadRequest, "%s", apiErr.Msg)
	default:
		return fmt.Errorf("create checkout session failed with %d: %w", apiErr.HTTPStatusCode, err)
	}
}
