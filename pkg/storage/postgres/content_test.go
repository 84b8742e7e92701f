package postgres_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"podium/pkg/domain"

	"github.com/stretchr/testify/require"
)

func seedContent(t *testing.T, db *sql.DB) {
	t.Helper()
	ctx := context.Background()

	for _, q := range []string{
		`INSERT INTO articles (slug, title, category, published, published_at) VALUES
			('older', 'Older', 'tips', TRUE, '2024-01-01T00:00:00Z'),
			('newer', 'Newer', 'news', TRUE, '2024-06-01T00:00:00Z'),
			('draft', 'Draft', 'news', FALSE, '2024-07-01T00:00:00Z')`,
		`INSERT INTO faqs (question, answer, position) VALUES
			('Second?', 'b', 2),
			('First?', 'a', 1)`,
		`INSERT INTO help_articles (slug, title, position) VALUES
			('billing', 'Billing', 2),
			('getting-started', 'Getting started', 1)`,
	} {
		_, err := db.ExecContext(ctx, q)
		require.NoError(t, err)
	}
}

func TestPgSQL_Articles(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()
	seedContent(t, pg.DB.(*sql.DB))

	ctx := context.Background()
	articles, err := pg.Articles(ctx)
	require.NoError(t, err)
	require.Len(t, articles, 2)
	require.Equal(t, "newer", articles[0].Slug)
	require.Equal(t, "older", articles[1].Slug)

	article, err := pg.ArticleBySlug(ctx, "older")
	require.NoError(t, err)
	require.Equal(t, "Older", article.Title)

	draft, err := pg.ArticleBySlug(ctx, "draft")
	require.NoError(t, err)
	require.Nil(t, draft)
}

func TestPgSQL_FAQsAndHelp(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()
	seedContent(t, pg.DB.(*sql.DB))

	ctx := context.Background()
	faqs, err := pg.FAQs(ctx)
	require.NoError(t, err)
	require.Len(t, faqs, 2)
	require.Equal(t, "First?", faqs[0].Question)

	help, err := pg.HelpArticles(ctx)
	require.NoError(t, err)
	require.Len(t, help, 2)
	require.Equal(t, "getting-started", help[0].Slug)

	one, err := pg.HelpArticleBySlug(ctx, "billing")
	require.NoError(t, err)
	require.Equal(t, "Billing", one.Title)

	none, err := pg.HelpArticleBySlug(ctx, "nope")
	require.NoError(t, err)
	require.Nil(t, none)
}

func TestPgSQL_DirectoryPaging(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	for _, email := range []string{"a@example.com", "b@example.com", "c@example.com"} {
		_, err := pg.StoreMember(ctx, newOrganizationMember(email), domain.Profile{})
		require.NoError(t, err)
	}

	first, err := pg.Organizations(ctx, 0, 2)
	require.NoError(t, err)
	require.Len(t, first, 2)

	second, err := pg.Organizations(ctx, 2, 2)
	require.NoError(t, err)
	require.Len(t, second, 1)
	require.NotContains(t, first, second[0])
}

func TestPgSQL_OpenOpportunities(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	org := newOrganizationMember("host@example.com")
	_, err := pg.StoreMember(ctx, org, domain.Profile{})
	require.NoError(t, err)

	now := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	_, err = pg.DB.ExecContext(ctx, `INSERT INTO opportunities
		(organization_id, title, topics, event_date, deadline, fee, status) VALUES
		($1, 'Later', '{go}', '2025-05-01T00:00:00Z', '2025-04-01T00:00:00Z', 1000, 'open'),
		($1, 'Sooner', '{}', '2025-04-01T00:00:00Z', '2025-03-15T00:00:00Z', NULL, 'open'),
		($1, 'Expired', '{}', '2025-03-10T00:00:00Z', '2025-02-01T00:00:00Z', NULL, 'open'),
		($1, 'Closed', '{}', '2025-06-01T00:00:00Z', '2025-05-01T00:00:00Z', NULL, 'closed')`,
		org.ID.String())
	require.NoError(t, err)

	opps, err := pg.OpenOpportunities(ctx, now)
	require.NoError(t, err)
	require.Len(t, opps, 2)
	require.Equal(t, "Sooner", opps[0].Title)
	require.Nil(t, opps[0].Fee)
	require.Equal(t, "Later", opps[1].Title)
	require.Equal(t, []string{"go"}, opps[1].Topics)
	require.Equal(t, "1000", opps[1].Fee.String())

	stats, err := pg.Counts(ctx)
	require.NoError(t, err)
	require.Equal(t, domain.Stats{Members: 1, Organizations: 1, Opportunities: 4}, stats)
}
