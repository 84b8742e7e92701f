// Package signup creates member accounts: it validates the request, creates
// the identity user, writes the member and profile rows and hands back the
// redirect that logs the new member in or starts a checkout.
package signup

import (
	"context"
	"podium/pkg/domain"
)

// Request is the signup payload.
type Request struct {
	Email    string          `json:"email"              validate:"required,email"`
	Password string          `json:"password"           validate:"required"`
	Name     string          `json:"name"               validate:"required,max=200"`
	UserType domain.UserType `json:"userType"           validate:"required,oneof=speaker organization"`
	PlanID   string          `json:"planId,omitempty"   validate:"max=100"`
	PriceID  string          `json:"priceId,omitempty"  validate:"max=255"`
}

// Result describes a created account.
type Result struct {
	Member domain.Member
	// RedirectURL is the checkout handoff for paid speaker plans and the
	// auto-login landing page otherwise.
	RedirectURL      string
	RequiresCheckout bool
	Message          string
}

// Health reports which integrations are configured and how many rows the
// database holds.
type Health struct {
	IdentityConfigured bool         `json:"identityConfigured"`
	PaymentConfigured  bool         `json:"paymentConfigured"`
	TokenConfigured    bool         `json:"tokenConfigured"`
	CacheConfigured    bool         `json:"cacheConfigured"`
	Counts             domain.Stats `json:"counts"`
}

//go:generate mockgen -package mocksignup -source=interface.go -destination=mock/mocksignup.go *
type Service interface {
	Signup(ctx context.Context, req Request) (*Result, error)
	Health(ctx context.Context) (Health, error)
}
