// Package authtoken issues and verifies the short-lived RS256 tokens that let
// a freshly signed-up member land in the application already logged in.
package authtoken

import (
	"crypto/rsa"
	"errors"
	"fmt"
	"podium/pkg/domain"
	"podium/pkg/serrors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrNotConfigured is returned when no signing key was provided.
var ErrNotConfigured = errors.New("auto-login token key is not configured")

// Claims are the JWT claims carried by an auto-login token.
type Claims struct {
	Email    string          `json:"email"`
	UserType domain.UserType `json:"user_type"`
	jwt.RegisteredClaims
}

// MemberID parses the subject as a member ID.
func (c Claims) MemberID() (domain.MemberID, error) {
	id, err := uuid.Parse(c.Subject)
	if err != nil {
		return domain.MemberID{}, fmt.Errorf("invalid subject: %w", err)
	}

	return domain.MemberID(id), nil
}

// Options configure an Issuer.
type Options struct {
	// PrivateKey is the PEM encoded RSA private key.
	PrivateKey string
	// TTL is how long an issued token stays valid.
	TTL time.Duration
	// Issuer is set as the iss claim and required on verification.
	Issuer string
}

// Issuer signs and verifies tokens.
type Issuer struct {
	key    *rsa.PrivateKey
	ttl    time.Duration
	issuer string
	now    func() time.Time
}

// New parses the signing key. An empty key yields an Issuer whose Issue and
// Verify return ErrNotConfigured, so the site can still serve content.
func New(opts Options) (*Issuer, error) {
	i := &Issuer{ttl: opts.TTL, issuer: opts.Issuer, now: time.Now}
	if i.ttl <= 0 {
		i.ttl = 5 * time.Minute
	}
	if opts.PrivateKey == "" {
		return i, nil
	}

	key, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(opts.PrivateKey))
	if err != nil {
		return nil, fmt.Errorf("could not parse RSA private key: %w", err)
	}
	i.key = key

	return i, nil
}

// Configured reports whether a signing key is loaded.
func (i *Issuer) Configured() bool { return i.key != nil }

// TTL returns the lifetime of issued tokens.
func (i *Issuer) TTL() time.Duration { return i.ttl }

// Issue signs a token for member.
func (i *Issuer) Issue(member domain.Member) (string, error) {
	if i.key == nil {
		return "", ErrNotConfigured
	}

	now := i.now()
	claims := Claims{
		Email:    member.Email,
		UserType: member.UserType,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    i.issuer,
			Subject:   member.ID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ID:        uuid.NewString(),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(i.key)
	if err != nil {
		return "", fmt.Errorf("could not sign token: %w", err)
	}

	return signed, nil
}

// Verify checks signature, algorithm, issuer and expiry of token. All
// failures are reported as serrors.ErrUnauthorized.
func (i *Issuer) Verify(token string) (*Claims, error) {
	if i.key == nil {
		return nil, ErrNotConfigured
	}

	var claims Claims
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(i.now),
	}
	if i.issuer != "" {
		opts = append(opts, jwt.WithIssuer(i.issuer))
	}
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return &i.key.PublicKey, nil
	}, opts...)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid or expired token")
	}
	if _, err := claims.MemberID(); err != nil {
		return nil, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid or expired token")
	}

	return &claims, nil
}
