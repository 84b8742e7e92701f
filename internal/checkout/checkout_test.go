package checkout_test

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"testing"
	"time"

	"podium/internal/authtoken"
	"podium/internal/checkout"
	"podium/internal/pricing"
	"podium/pkg/domain"
	"podium/pkg/payment"
	mockpayment "podium/pkg/payment/mock"
	"podium/pkg/serrors"
	mockstorage "podium/pkg/storage/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	storage *mockstorage.MockStorage
	payment *mockpayment.MockClient
	issuer  *authtoken.Issuer
	svc     checkout.Service
}

func newFixture(t *testing.T, paymentConfigured bool) *fixture {
	t.Helper()

	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	keyPEM := pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(priv)})
	issuer, err := authtoken.New(authtoken.Options{PrivateKey: string(keyPEM), TTL: time.Minute, Issuer: "podium"})
	require.NoError(t, err)

	plans, err := pricing.Default()
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	pay := mockpayment.NewMockClient(ctrl)

	return &fixture{
		storage: st,
		payment: pay,
		issuer:  issuer,
		svc: checkout.New(st, pay, issuer, plans, checkout.Options{
			SiteURL:           "https://podium.example",
			AppURL:            "https://app.podium.example",
			PaymentConfigured: paymentConfigured,
		}),
	}
}

func member() domain.Member {
	return domain.Member{
		ID:       domain.MemberID(uuid.New()),
		Email:    "ada@example.com",
		Name:     "Ada",
		UserType: domain.UserTypeSpeaker,
		PlanID:   "speaker-pro",
	}
}

func TestHandoff_Success(t *testing.T) {
	f := newFixture(t, true)
	m := member()
	tkn, err := f.issuer.Issue(m)
	require.NoError(t, err)

	f.storage.EXPECT().MemberByID(gomock.Any(), m.ID).Return(&m, nil)
	f.payment.EXPECT().CreateCheckoutSession(gomock.Any(), payment.CheckoutReq{
		PriceID:           "price_speaker_pro_monthly",
		CustomerEmail:     "ada@example.com",
		ClientReferenceID: m.ID.String(),
		SuccessURL:        "https://app.podium.example/welcome?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:         "https://podium.example/pricing?canceled=1",
		Metadata:          map[string]string{"member_id": m.ID.String(), "plan_id": "speaker-pro"},
	}).Return(payment.Session{ID: "cs_1", URL: "https://checkout.example/cs_1"}, nil)

	redirect, err := f.svc.Handoff(context.Background(), tkn, "", "speaker-pro")
	require.NoError(t, err)
	require.Equal(t, "https://checkout.example/cs_1", redirect)
}

func TestHandoff_MatchingPriceAccepted(t *testing.T) {
	f := newFixture(t, true)
	m := member()
	tkn, err := f.issuer.Issue(m)
	require.NoError(t, err)

	f.storage.EXPECT().MemberByID(gomock.Any(), m.ID).Return(&m, nil)
	f.payment.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req payment.CheckoutReq) (payment.Session, error) {
			require.Equal(t, "price_speaker_premium_monthly", req.PriceID)
			require.Equal(t, "speaker-premium", req.Metadata["plan_id"])

			return payment.Session{ID: "cs_2", URL: "https://checkout.example/cs_2"}, nil
		})

	redirect, err := f.svc.Handoff(context.Background(), tkn, " price_speaker_premium_monthly ", "speaker-premium")
	require.NoError(t, err)
	require.Equal(t, "https://checkout.example/cs_2", redirect)
}

func TestHandoff_TamperedPriceRejected(t *testing.T) {
	f := newFixture(t, true)
	m := member()
	m.PlanID = "speaker-premium"
	tkn, err := f.issuer.Issue(m)
	require.NoError(t, err)

	// no session may be created, whatever the price names
	f.payment.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).Times(0)

	tests := []struct {
		name    string
		priceID string
		planID  string
		msg     string
	}{
		{"cheaper speaker price", "price_speaker_pro_monthly", "speaker-premium", `Price does not match plan "speaker-premium"`},
		{"arbitrary price", "price_1_cent", "speaker-premium", `Price does not match plan "speaker-premium"`},
		{"price without plan", "price_speaker_pro_monthly", "", "Missing plan"},
		{"unknown plan", "", "speaker-gold", `Unknown plan "speaker-gold"`},
		{"free plan", "", "speaker-free", `Plan "speaker-free" cannot be purchased`},
		{"organization plan", "", "organization-free", `Plan "organization-free" cannot be purchased`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.Handoff(context.Background(), tkn, tt.priceID, tt.planID)
			require.ErrorIs(t, err, serrors.ErrBadRequest)
			require.Equal(t, tt.msg, serrors.PublicMessage(err))
		})
	}
}

func TestHandoff_OrganizationMemberForbidden(t *testing.T) {
	f := newFixture(t, true)
	m := member()
	m.UserType = domain.UserTypeOrganization
	m.PlanID = ""
	tkn, err := f.issuer.Issue(m)
	require.NoError(t, err)

	f.storage.EXPECT().MemberByID(gomock.Any(), m.ID).Return(&m, nil)

	_, err = f.svc.Handoff(context.Background(), tkn, "", "speaker-pro")
	require.ErrorIs(t, err, serrors.ErrForbidden)
}

func TestHandoff_BadInput(t *testing.T) {
	f := newFixture(t, true)

	_, err := f.svc.Handoff(context.Background(), "", "", "speaker-pro")
	require.ErrorIs(t, err, serrors.ErrBadRequest)
	require.Equal(t, "Missing token", serrors.PublicMessage(err))

	_, err = f.svc.Handoff(context.Background(), "tkn", "", "")
	require.ErrorIs(t, err, serrors.ErrBadRequest)
	require.Equal(t, "Missing plan", serrors.PublicMessage(err))

	_, err = f.svc.Handoff(context.Background(), "not-a-jwt", "", "speaker-pro")
	require.ErrorIs(t, err, serrors.ErrUnauthorized)
}

func TestHandoff_PaymentNotConfigured(t *testing.T) {
	f := newFixture(t, false)

	_, err := f.svc.Handoff(context.Background(), "tkn", "", "speaker-pro")
	require.ErrorIs(t, err, serrors.ErrUnavailable)
}

func TestHandoff_MemberMissing(t *testing.T) {
	f := newFixture(t, true)
	m := member()
	tkn, err := f.issuer.Issue(m)
	require.NoError(t, err)

	f.storage.EXPECT().MemberByID(gomock.Any(), m.ID).Return(nil, nil)

	_, err = f.svc.Handoff(context.Background(), tkn, "", "speaker-pro")
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestHandoff_ProviderError(t *testing.T) {
	f := newFixture(t, true)
	m := member()
	tkn, err := f.issuer.Issue(m)
	require.NoError(t, err)

	f.storage.EXPECT().MemberByID(gomock.Any(), m.ID).Return(&m, nil)
	f.payment.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).
		Return(payment.Session{}, serrors.With(serrors.ErrBadRequest, "No such price"))

	_, err = f.svc.Handoff(context.Background(), tkn, "", "speaker-pro")
	require.ErrorIs(t, err, serrors.ErrBadRequest)
	require.Equal(t, "No such price", serrors.PublicMessage(err))

	f.storage.EXPECT().MemberByID(gomock.Any(), m.ID).Return(nil, errors.New("db down"))
	_, err = f.svc.Handoff(context.Background(), tkn, "", "speaker-pro")
	require.Equal(t, serrors.ErrInternal, serrors.KindOf(err))
}
