// Package checkout hands a freshly signed-up speaker over to the payment
// provider's hosted checkout.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"podium/internal/authtoken"
	"podium/internal/config"
	"podium/internal/pricing"
	"podium/pkg/domain"
	"podium/pkg/logger"
	"podium/pkg/payment"
	"podium/pkg/serrors"
	"podium/pkg/storage"
	"strings"

	"go.uber.org/zap"
)

// Options configure the redirect targets around checkout.
type Options struct {
	SiteURL           string
	AppURL            string
	PaymentConfigured bool
}

// NewOptions constructs Options from the application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		SiteURL:           cfg.Site.URL,
		AppURL:            cfg.Site.AppURL,
		PaymentConfigured: cfg.Payment.SecretKey != "",
	}
}

// Verifier checks auto-login tokens.
type Verifier interface {
	Verify(token string) (*authtoken.Claims, error)
}

//go:generate mockgen -package mockcheckout -source=checkout.go -destination=mock/mockcheckout.go *
type Service interface {
	// Handoff creates a checkout session for the member identified by token
	// and returns the provider URL to redirect to.
	Handoff(ctx context.Context, token, priceID, planID string) (string, error)
}

type service struct {
	options Options
	storage storage.Storage
	payment payment.Client
	tokens  Verifier
	plans   *pricing.Catalog
}

// New constructs the checkout Service.
func New(st storage.Storage, pay payment.Client, tokens Verifier, plans *pricing.Catalog, options Options) Service {
	return &service{
		options: options,
		storage: st,
		payment: pay,
		tokens:  tokens,
		plans:   plans,
	}
}

func (s *service) Handoff(ctx context.Context, token, priceID, planID string) (string, error) {
	token = strings.TrimSpace(token)
	priceID = strings.TrimSpace(priceID)
	planID = strings.TrimSpace(planID)
	if token == "" {
		return "", serrors.With(serrors.ErrBadRequest, "Missing token")
	}
	plan, err := s.paidPlan(planID, priceID)
	if err != nil {
		return "", err
	}
	if !s.options.PaymentConfigured {
		return "", serrors.With(serrors.ErrUnavailable, "Payments are temporarily unavailable")
	}

	claims, err := s.tokens.Verify(token)
	if err != nil {
		if errors.Is(err, serrors.ErrUnauthorized) {
			return "", err //nolint: wrapcheck
		}

		return "", serrors.Wrap(serrors.ErrUnauthorized, err, "Invalid or expired token")
	}
	memberID, err := claims.MemberID()
	if err != nil {
		return "", serrors.Wrap(serrors.ErrUnauthorized, err, "Invalid or expired token")
	}

	member, err := s.storage.MemberByID(ctx, memberID)
	if err != nil {
		return "", fmt.Errorf("could not load member: %w", err)
	}
	if member == nil {
		return "", serrors.With(serrors.ErrNotFound, "Member not found")
	}

	if member.UserType != domain.UserTypeSpeaker {
		return "", serrors.With(serrors.ErrForbidden, "Plan %q is not available for this account", plan.ID)
	}

	session, err := s.payment.CreateCheckoutSession(ctx, payment.CheckoutReq{
		PriceID:           plan.PriceID,
		CustomerEmail:     member.Email,
		ClientReferenceID: member.ID.String(),
		SuccessURL:        strings.TrimRight(s.options.AppURL, "/") + "/welcome?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:         strings.TrimRight(s.options.SiteURL, "/") + "/pricing?canceled=1",
		Metadata: map[string]string{
			"member_id": member.ID.String(),
			"plan_id":   plan.ID,
		},
	})
	if err != nil {
		return "", fmt.Errorf("could not create checkout session: %w", err)
	}

	logger.Info(ctx, "checkout session created",
		zap.String("memberID", member.ID.String()),
		zap.String("sessionID", session.ID),
		zap.String("planID", plan.ID),
		zap.String("priceID", plan.PriceID))

	return session.URL, nil
}

// paidPlan resolves the paid speaker plan being bought. The price always
// comes from the catalog; a priceID from the request must agree with it.
func (s *service) paidPlan(planID, priceID string) (domain.Plan, error) {
	if planID == "" {
		return domain.Plan{}, serrors.With(serrors.ErrBadRequest, "Missing plan")
	}
	plan, ok := s.plans.Plan(planID)
	if !ok {
		return domain.Plan{}, serrors.With(serrors.ErrBadRequest, "Unknown plan %q", planID)
	}
	if plan.UserType != domain.UserTypeSpeaker || !plan.Paid() || plan.PriceID == "" {
		return domain.Plan{}, serrors.With(serrors.ErrBadRequest, "Plan %q cannot be purchased", planID)
	}
	if priceID != "" && priceID != plan.PriceID {
		return domain.Plan{}, serrors.With(serrors.ErrBadRequest, "Price does not match plan %q", planID)
	}

	return plan, nil
}
