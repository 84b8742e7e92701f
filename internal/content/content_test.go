package content_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"podium/internal/catalog"
	"podium/internal/content"
	"podium/internal/pricing"
	"podium/pkg/cache"
	mockcache "podium/pkg/cache/mock"
	"podium/pkg/domain"
	"podium/pkg/serrors"
	mockstorage "podium/pkg/storage/mock"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var now = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func newService(t *testing.T, c cache.Cache) (*mockstorage.MockStorage, content.Service) {
	t.Helper()

	plans, err := pricing.Default()
	require.NoError(t, err)

	st := mockstorage.NewMockStorage(gomock.NewController(t))
	svc := content.New(st, c, plans, content.Options{ArticlesPageSize: 2, HelpPageSize: 2, DirectoryPageSize: 3})
	content.SetNow(svc, func() time.Time { return now })

	return st, svc
}

func articles() []domain.Article {
	return []domain.Article{
		{Slug: "a", Title: "Keynote tips", Category: "Tips", Body: "<p>body</p>", PublishedAt: now.AddDate(0, 0, -2)},
		{Slug: "b", Title: "Booking speakers", Category: "News", Body: "x", PublishedAt: now.AddDate(0, 0, -20)},
		{Slug: "c", Title: "Panel formats", Category: "tips", Body: "y", PublishedAt: now.AddDate(-2, 0, 0)},
	}
}

func TestArticles_FilterAndPage(t *testing.T) {
	st, svc := newService(t, nil)
	st.EXPECT().Articles(gomock.Any()).Return(articles(), nil).Times(2)

	list, err := svc.Articles(context.Background(), content.ArticleQuery{Page: 1})
	require.NoError(t, err)
	require.Equal(t, 3, list.Total)
	require.True(t, list.HasMore)
	require.Len(t, list.Items, 2)
	require.Equal(t, "a", list.Items[0].Slug)
	require.Empty(t, list.Items[0].Body)
	require.Equal(t, []string{"News", "Tips"}, list.Categories)

	list, err = svc.Articles(context.Background(), content.ArticleQuery{
		Filter: catalog.ArticleFilter{Category: "tips", Window: catalog.WindowYear},
		Page:   1,
	})
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
	require.Equal(t, "a", list.Items[0].Slug)
	require.False(t, list.HasMore)
}

func TestArticles_ReadThroughCache(t *testing.T) {
	c := mockcache.NewMockCache(gomock.NewController(t))
	st, svc := newService(t, c)

	c.EXPECT().Get(gomock.Any(), "content:articles", gomock.Any()).Return(false, nil)
	st.EXPECT().Articles(gomock.Any()).Return(articles(), nil)
	c.EXPECT().Set(gomock.Any(), "content:articles", articles()).Return(nil)

	_, err := svc.Articles(context.Background(), content.ArticleQuery{Page: 1})
	require.NoError(t, err)
}

func TestArticle_SanitizedAndNotFound(t *testing.T) {
	st, svc := newService(t, nil)

	st.EXPECT().ArticleBySlug(gomock.Any(), "a").Return(&domain.Article{
		Slug: "a",
		Body: `<p onclick="steal()">Hello</p><script>alert(1)</script>`,
	}, nil)
	a, err := svc.Article(context.Background(), "a")
	require.NoError(t, err)
	require.Equal(t, "<p>Hello</p>", a.Body)

	st.EXPECT().ArticleBySlug(gomock.Any(), "missing").Return(nil, nil)
	_, err = svc.Article(context.Background(), "missing")
	require.ErrorIs(t, err, serrors.ErrNotFound)

	st.EXPECT().ArticleBySlug(gomock.Any(), "boom").Return(nil, errors.New("db down"))
	_, err = svc.Article(context.Background(), "boom")
	require.Equal(t, serrors.ErrInternal, serrors.KindOf(err))
}

func TestFAQs(t *testing.T) {
	st, svc := newService(t, nil)
	st.EXPECT().FAQs(gomock.Any()).Return([]domain.FAQ{
		{Question: "Fees?", Answer: "Per talk", Category: "Billing", Position: 2},
		{Question: "Sign up?", Answer: "Use the form", Category: "Account", Position: 1},
	}, nil)

	list, err := svc.FAQs(context.Background(), catalog.FAQFilter{})
	require.NoError(t, err)
	require.Len(t, list.Items, 2)
	require.Equal(t, "Sign up?", list.Items[0].Question)
	require.False(t, list.HasMore)
	require.Equal(t, []string{"Account", "Billing"}, list.Categories)
}

func TestHelp(t *testing.T) {
	st, svc := newService(t, nil)
	st.EXPECT().HelpArticles(gomock.Any()).Return([]domain.HelpArticle{
		{Slug: "one", Title: "One", Position: 1, Body: "b"},
		{Slug: "two", Title: "Two", Position: 2},
		{Slug: "three", Title: "Three", Position: 3},
	}, nil)

	list, err := svc.Help(context.Background(), content.HelpQuery{Page: 2})
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
	require.Equal(t, "three", list.Items[0].Slug)
	require.Equal(t, catalog.Page(2), list.Page)

	st.EXPECT().HelpArticleBySlug(gomock.Any(), "nope").Return(nil, nil)
	_, err = svc.HelpArticle(context.Background(), "nope")
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestSpeakers_DatabaseRange(t *testing.T) {
	st, svc := newService(t, nil)
	fee := decimal.NewFromInt(500)

	st.EXPECT().Speakers(gomock.Any(), uint(3), uint(3)).Return([]domain.Speaker{
		{Name: "Ada", Topics: []string{"AI"}, FeeMin: &fee, FeeMax: &fee, Rating: decimal.NewFromInt(5)},
		{Name: "Grace", Topics: []string{"Compilers"}, Rating: decimal.NewFromInt(4)},
		{Name: "Linus", Topics: []string{"ai"}, Rating: decimal.NewFromInt(3)},
	}, nil)

	list, err := svc.Speakers(context.Background(), content.SpeakerQuery{
		Filter: catalog.SpeakerFilter{Specialty: "AI"},
		Page:   2,
	})
	require.NoError(t, err)
	require.True(t, list.HasMore)
	require.Len(t, list.Items, 2)
	require.Equal(t, "Ada", list.Items[0].Name)
	require.Equal(t, []string{"AI", "Compilers"}, list.Categories)

	st.EXPECT().Speakers(gomock.Any(), uint(0), uint(3)).Return(nil, nil)
	list, err = svc.Speakers(context.Background(), content.SpeakerQuery{Page: 0})
	require.NoError(t, err)
	require.False(t, list.HasMore)
	require.Empty(t, list.Items)
}

func TestDirectories_HugePageBoundsOffset(t *testing.T) {
	st, svc := newService(t, nil)
	page := catalog.ParsePage("1024819115206086202")

	st.EXPECT().Speakers(gomock.Any(), uint(catalog.MaxOffset), uint(3)).Return(nil, nil)
	list, err := svc.Speakers(context.Background(), content.SpeakerQuery{Page: page})
	require.NoError(t, err)
	require.Empty(t, list.Items)

	st.EXPECT().Organizations(gomock.Any(), uint(catalog.MaxOffset), uint(3)).Return(nil, nil)
	orgs, err := svc.Organizations(context.Background(), content.OrganizationQuery{Page: page})
	require.NoError(t, err)
	require.Empty(t, orgs.Items)

	st.EXPECT().Articles(gomock.Any()).Return(articles(), nil)
	arts, err := svc.Articles(context.Background(), content.ArticleQuery{Page: page})
	require.NoError(t, err)
	require.Empty(t, arts.Items)
	require.Equal(t, 3, arts.Total)
}

func TestOrganizations(t *testing.T) {
	st, svc := newService(t, nil)
	st.EXPECT().Organizations(gomock.Any(), uint(0), uint(3)).Return([]domain.Organization{
		{Name: "Zeta Conf", Industry: "Tech", Location: "Berlin"},
		{Name: "Alpha Summit", Industry: "Finance", Location: "London"},
	}, nil)

	list, err := svc.Organizations(context.Background(), content.OrganizationQuery{
		Filter: catalog.OrganizationFilter{Location: "lon"},
		Page:   1,
	})
	require.NoError(t, err)
	require.False(t, list.HasMore)
	require.Len(t, list.Items, 1)
	require.Equal(t, "Alpha Summit", list.Items[0].Name)
	require.Equal(t, []string{"Finance", "Tech"}, list.Categories)
}

func TestOpportunities_UsesStartOfDay(t *testing.T) {
	st, svc := newService(t, nil)
	today := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	st.EXPECT().OpenOpportunities(gomock.Any(), today).Return([]domain.Opportunity{
		{Title: "Later", Topics: []string{"Go"}, EventDate: now.AddDate(0, 2, 0)},
		{Title: "Sooner", Topics: []string{"Rust"}, EventDate: now.AddDate(0, 1, 0)},
	}, nil)

	list, err := svc.Opportunities(context.Background(), catalog.OpportunityFilter{})
	require.NoError(t, err)
	require.Equal(t, "Sooner", list.Items[0].Title)
	require.Equal(t, []string{"Go", "Rust"}, list.Categories)
}

func TestPlans(t *testing.T) {
	_, svc := newService(t, nil)

	speakers := svc.Plans(domain.UserTypeSpeaker)
	require.NotEmpty(t, speakers)
	for _, p := range speakers {
		require.Equal(t, domain.UserTypeSpeaker, p.UserType)
	}
	require.Greater(t, len(svc.Plans("")), len(speakers))
}
