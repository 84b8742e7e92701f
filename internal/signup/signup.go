package signup

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"podium/internal/config"
	"podium/internal/pricing"
	"podium/pkg/domain"
	"podium/pkg/identity"
	"podium/pkg/logger"
	"podium/pkg/metrics"
	"podium/pkg/serrors"
	"podium/pkg/storage"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const (
	duplicateMessage = "An account with this email already exists"
	createdMessage   = "Account created successfully"
	checkoutMessage  = "Account created. Redirecting to checkout"
	loginMessage     = "Account created. Please sign in"
)

var tracer = otel.Tracer("podium/internal/signup") //nolint: gochecknoglobals

// Options configure signup. They are derived from application configuration.
type Options struct {
	MinPasswordLength int
	// SiteURL is the public site hosting the checkout handoff route.
	SiteURL string
	// AppURL is the application subdomain hosting auto-login.
	AppURL string
	// CleanupMaxAttempts bounds retries of the identity cleanup job.
	CleanupMaxAttempts int

	IdentityConfigured bool
	PaymentConfigured  bool
	CacheConfigured    bool
}

// NewOptions constructs Options from the application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MinPasswordLength:  cfg.Signup.MinPasswordLength,
		SiteURL:            cfg.Site.URL,
		AppURL:             cfg.Site.AppURL,
		CleanupMaxAttempts: cfg.Signup.CleanupMaxAttempts,
		IdentityConfigured: cfg.Identity.URL != "" && cfg.Identity.ServiceKey != "",
		PaymentConfigured:  cfg.Payment.SecretKey != "",
		CacheConfigured:    cfg.Redis.Addr != "",
	}
}

// Tokens issues the auto-login token embedded in the redirect.
type Tokens interface {
	Configured() bool
	Issue(member domain.Member) (string, error)
}

type service struct {
	options   Options
	storage   storage.Storage
	identity  identity.Client
	plans     *pricing.Catalog
	tokens    Tokens
	metrics   *metrics.Signup
	validator *validator.Validate
}

// New constructs the signup Service. m may be nil.
func New(st storage.Storage,
	idp identity.Client,
	plans *pricing.Catalog,
	tokens Tokens,
	m *metrics.Signup,
	options Options) Service {
	if options.MinPasswordLength <= 0 {
		options.MinPasswordLength = 8
	}
	if options.CleanupMaxAttempts <= 0 {
		options.CleanupMaxAttempts = 10
	}

	return &service{
		options:   options,
		storage:   st,
		identity:  idp,
		plans:     plans,
		tokens:    tokens,
		metrics:   m,
		validator: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Signup creates the account described by req. Validation failures and
// duplicate emails are serrors.ErrBadRequest and serrors.ErrConflict.
func (s *service) Signup(ctx context.Context, req Request) (*Result, error) {
	start := time.Now()
	ctx, span := tracer.Start(ctx, "signup.Signup",
		trace.WithAttributes(attribute.String("user_type", string(req.UserType.Normalize()))))
	defer span.End()

	res, outcome, err := s.signup(ctx, req)
	s.metrics.Record(ctx, string(req.UserType.Normalize()), outcome, time.Since(start).Seconds())
	span.SetAttributes(attribute.String("outcome", outcome))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, serrors.PublicMessage(err))
	}

	return res, err
}

func (s *service) signup(ctx context.Context, req Request) (*Result, string, error) {
	req = normalize(req)
	if err := s.validate(req); err != nil {
		return nil, metrics.OutcomeInvalid, err
	}

	plan, err := s.resolvePlan(req)
	if err != nil {
		return nil, metrics.OutcomeInvalid, err
	}

	if !s.options.IdentityConfigured || !s.tokens.Configured() {
		return nil, metrics.OutcomeFailed, serrors.With(serrors.ErrUnavailable, "Signup is temporarily unavailable")
	}
	if plan.requiresCheckout && !s.options.PaymentConfigured {
		return nil, metrics.OutcomeFailed, serrors.With(serrors.ErrUnavailable, "Paid plans are temporarily unavailable")
	}

	ctx = logger.WithFields(ctx, zap.String("email", req.Email), zap.String("userType", string(req.UserType)))

	user, orphanRecovered, err := s.createIdentityUser(ctx, req)
	if err != nil {
		if errors.Is(err, serrors.ErrConflict) {
			return nil, metrics.OutcomeDuplicate, err
		}
		if errors.Is(err, serrors.ErrBadRequest) {
			return nil, metrics.OutcomeInvalid, err
		}

		return nil, metrics.OutcomeFailed, fmt.Errorf("could not create identity user: %w", err)
	}
	ctx = logger.WithFields(ctx, zap.String("memberID", user.ID.String()))

	member, err := s.storeMember(ctx, req, user, plan)
	if err != nil {
		s.compensate(ctx, user)
		if errors.Is(err, serrors.ErrConflict) {
			return nil, metrics.OutcomeDuplicate, serrors.Wrap(serrors.ErrConflict, err, duplicateMessage)
		}

		return nil, metrics.OutcomeFailed, fmt.Errorf("could not store member: %w", err)
	}

	res := s.result(ctx, *member, plan)
	outcome := metrics.OutcomeCreated
	if orphanRecovered {
		outcome = metrics.OutcomeOrphan
	}
	logger.Info(ctx, "member signed up",
		zap.String("planID", member.PlanID),
		zap.Bool("requiresCheckout", res.RequiresCheckout),
		zap.Bool("orphanRecovered", orphanRecovered))

	return res, outcome, nil
}

type resolvedPlan struct {
	id               string
	priceID          string
	requiresCheckout bool
}

// resolvePlan picks the plan for a new member. Organizations have no plan;
// speakers default to the free plan.
func (s *service) resolvePlan(req Request) (resolvedPlan, error) {
	if req.UserType == domain.UserTypeOrganization {
		return resolvedPlan{}, nil
	}

	id := req.PlanID
	if id == "" {
		id = pricing.FreeSpeakerPlanID
	}
	plan, ok := s.plans.Plan(id)
	if !ok {
		return resolvedPlan{}, serrors.With(serrors.ErrBadRequest, "Unknown plan %q", id)
	}
	if plan.UserType != domain.UserTypeSpeaker {
		return resolvedPlan{}, serrors.With(serrors.ErrBadRequest, "Plan %q is not available for speakers", id)
	}
	if !plan.Paid() {
		return resolvedPlan{id: plan.ID}, nil
	}

	priceID := plan.PriceID
	if req.PriceID != "" && req.PriceID != plan.PriceID {
		return resolvedPlan{}, serrors.With(serrors.ErrBadRequest, "Price does not match plan %q", id)
	}

	return resolvedPlan{id: plan.ID, priceID: priceID, requiresCheckout: true}, nil
}

// createIdentityUser creates the identity user. When the provider reports
// the email as taken but no member row exists, the identity user is an
// orphan of an earlier failed signup: it is deleted and creation is retried
// once.
func (s *service) createIdentityUser(ctx context.Context, req Request) (identity.User, bool, error) {
	ctx, span := tracer.Start(ctx, "signup.createIdentityUser")
	defer span.End()

	createReq := identity.CreateUserReq{
		Email:    req.Email,
		Password: req.Password,
		Metadata: map[string]any{
			"name":      req.Name,
			"user_type": string(req.UserType),
		},
		EmailConfirm: true,
	}

	user, err := s.identity.CreateUser(ctx, createReq)
	if err == nil {
		return user, false, nil
	}
	if !errors.Is(err, serrors.ErrConflict) {
		return identity.User{}, false, err //nolint: wrapcheck
	}

	existing, err := s.storage.MemberByEmail(ctx, req.Email)
	if err != nil {
		return identity.User{}, false, fmt.Errorf("could not check member by email: %w", err)
	}
	if existing != nil {
		return identity.User{}, false, serrors.With(serrors.ErrConflict, duplicateMessage)
	}

	orphan, err := s.identity.UserByEmail(ctx, req.Email)
	if err != nil {
		return identity.User{}, false, fmt.Errorf("could not look up orphaned identity user: %w", err)
	}
	if orphan != nil {
		logger.Warn(ctx, "deleting orphaned identity user", zap.String("orphanID", orphan.ID.String()))
		if err := s.identity.DeleteUser(ctx, orphan.ID); err != nil && !errors.Is(err, serrors.ErrNotFound) {
			return identity.User{}, false, fmt.Errorf("could not delete orphaned identity user: %w", err)
		}
	}

	user, err = s.identity.CreateUser(ctx, createReq)
	if err != nil {
		if errors.Is(err, serrors.ErrConflict) {
			return identity.User{}, false, serrors.Wrap(serrors.ErrConflict, err, duplicateMessage)
		}

		return identity.User{}, false, err //nolint: wrapcheck
	}

	return user, true, nil
}

func (s *service) storeMember(ctx context.Context,
	req Request,
	user identity.User,
	plan resolvedPlan) (*domain.Member, error) {
	member := domain.Member{
		ID:       domain.MemberID(user.ID),
		Email:    req.Email,
		Name:     req.Name,
		UserType: req.UserType,
		PlanID:   plan.id,
	}
	var profile domain.Profile
	switch req.UserType {
	case domain.UserTypeSpeaker:
		profile.Speaker = &domain.Speaker{Name: req.Name, Topics: []string{}}
	case domain.UserTypeOrganization:
		profile.Organization = &domain.Organization{Name: req.Name}
	}

	var stored *domain.Member
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		var err error
		stored, err = tx.StoreMember(ctx, member, profile)

		return err //nolint: wrapcheck
	}); err != nil {
		return nil, err //nolint: wrapcheck
	}

	return stored, nil
}

// compensate removes the identity user created for a signup whose rows could
// not be written. When the provider cannot be reached the removal is queued.
func (s *service) compensate(ctx context.Context, user identity.User) {
	ctx = context.WithoutCancel(ctx)

	err := s.identity.DeleteUser(ctx, user.ID)
	if err == nil || errors.Is(err, serrors.ErrNotFound) {
		return
	}
	logger.Warn(ctx, "could not delete identity user, queueing cleanup", zap.Error(err))

	if _, err := s.storage.AddJob(ctx,
		NewCleanupJobArgs(user.ID, user.Email, s.options.CleanupMaxAttempts), nil); err != nil {
		logger.Error(ctx, "could not queue identity cleanup", zap.Error(err))
	}
}

func (s *service) result(ctx context.Context, member domain.Member, plan resolvedPlan) *Result {
	token, err := s.tokens.Issue(member)
	if err != nil {
		logger.Error(ctx, "could not issue auto-login token", zap.Error(err))

		q := url.Values{}
		q.Set("email", member.Email)

		return &Result{
			Member:      member,
			RedirectURL: joinURL(s.options.AppURL, "/login", q),
			Message:     loginMessage,
		}
	}

	if plan.requiresCheckout {
		q := url.Values{}
		q.Set("token", token)
		q.Set("priceId", plan.priceID)
		q.Set("planId", plan.id)

		return &Result{
			Member:           member,
			RedirectURL:      joinURL(s.options.SiteURL, "/api/checkout/handoff", q),
			RequiresCheckout: true,
			Message:          checkoutMessage,
		}
	}

	q := url.Values{}
	q.Set("token", token)

	return &Result{
		Member:      member,
		RedirectURL: joinURL(s.options.AppURL, "/auth/auto-login", q),
		Message:     createdMessage,
	}
}

// Health reports configuration flags and row counts.
func (s *service) Health(ctx context.Context) (Health, error) {
	counts, err := s.storage.Counts(ctx)
	if err != nil {
		return Health{}, fmt.Errorf("could not count rows: %w", err)
	}

	return Health{
		IdentityConfigured: s.options.IdentityConfigured,
		PaymentConfigured:  s.options.PaymentConfigured,
		TokenConfigured:    s.tokens.Configured(),
		CacheConfigured:    s.options.CacheConfigured,
		Counts:             counts,
	}, nil
}

func joinURL(base, path string, q url.Values) string {
	return strings.TrimRight(base, "/") + path + "?" + q.Encode()
}
