// Package payment defines the hosted checkout used to start paid
// subscriptions.
package payment

import "context"

// CheckoutReq describes a subscription checkout session.
type CheckoutReq struct {
	PriceID       string
	CustomerEmail string
	// ClientReferenceID ties the session back to a member.
	ClientReferenceID string
	SuccessURL        string
	CancelURL         string
	Metadata          map[string]string
}

// Session is a created checkout session. URL is where the customer is sent.
type Session struct {
	ID  string
	URL string
}

// Client creates checkout sessions with the payment provider.
//
//go:generate mockgen -package mockpayment -source=interface.go -destination=mock/mockpayment.go *
type Client interface {
	CreateCheckoutSession(ctx context.Context, req CheckoutReq) (Session, error)
}
