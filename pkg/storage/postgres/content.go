package postgres

import (
	"context"
	"fmt"
	"podium/pkg/domain"
	"time"

	"github.com/doug-martin/goqu/v9"
)

const (
	articlesTable      = "articles"
	faqsTable          = "faqs"
	helpArticlesTable  = "help_articles"
	opportunitiesTable = "opportunities"
)

// Articles returns published articles, newest first.
func (p *PgSQL) Articles(ctx context.Context) ([]domain.Article, error) {
	var rows []PgArticle
	if err := p.Builder.From(articlesTable).
		Where(goqu.I("published").IsTrue()).
		Order(goqu.I("published_at").Desc(), goqu.I("id").Desc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch articles from pg: %w", err)
	}

	return toDomain(rows, (*PgArticle).ToDomain), nil
}

func (p *PgSQL) ArticleBySlug(ctx context.Context, slug string) (*domain.Article, error) {
	var row PgArticle
	found, err := p.Builder.From(articlesTable).
		Where(
			goqu.I("slug").Eq(slug),
			goqu.I("published").IsTrue(),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch article by slug: %w", err)
	}
	if !found {
		return nil, nil
	}
	article := row.ToDomain()

	return &article, nil
}

func (p *PgSQL) FAQs(ctx context.Context) ([]domain.FAQ, error) {
	var rows []PgFAQ
	if err := p.Builder.From(faqsTable).
		Order(goqu.I("position").Asc(), goqu.I("id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch faqs from pg: %w", err)
	}

	return toDomain(rows, (*PgFAQ).ToDomain), nil
}

func (p *PgSQL) HelpArticles(ctx context.Context) ([]domain.HelpArticle, error) {
	var rows []PgHelpArticle
	if err := p.Builder.From(helpArticlesTable).
		Order(goqu.I("position").Asc(), goqu.I("title").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch help articles from pg: %w", err)
	}

	return toDomain(rows, (*PgHelpArticle).ToDomain), nil
}

func (p *PgSQL) HelpArticleBySlug(ctx context.Context, slug string) (*domain.HelpArticle, error) {
	var row PgHelpArticle
	found, err := p.Builder.From(helpArticlesTable).
		Where(goqu.I("slug").Eq(slug)).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch help article by slug: %w", err)
	}
	if !found {
		return nil, nil
	}
	article := row.ToDomain()

	return &article, nil
}

// Speakers returns one directory page of speakers, newest first.
func (p *PgSQL) Speakers(ctx context.Context, offset, limit uint) ([]domain.Speaker, error) {
	var rows []PgSpeaker
	if err := p.Builder.From(speakersTable).
		Order(goqu.I("created_at").Desc(), goqu.I("member_id").Desc()).
		Offset(offset).
		Limit(limit).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch speakers from pg: %w", err)
	}

	return toDomain(rows, (*PgSpeaker).ToDomain), nil
}

// Organizations returns one directory page of organizations, newest first.
func (p *PgSQL) Organizations(ctx context.Context, offset, limit uint) ([]domain.Organization, error) {
	var rows []PgOrganization
	if err := p.Builder.From(organizationsTable).
		Order(goqu.I("created_at").Desc(), goqu.I("member_id").Desc()).
		Offset(offset).
		Limit(limit).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch organizations from pg: %w", err)
	}

	return toDomain(rows, (*PgOrganization).ToDomain), nil
}

// OpenOpportunities returns open opportunities still accepting applications
// at now, soonest event first.
func (p *PgSQL) OpenOpportunities(ctx context.Context, now time.Time) ([]domain.Opportunity, error) {
	var rows []PgOpportunity
	if err := p.Builder.From(opportunitiesTable).
		Where(
			goqu.I("status").Eq(string(domain.OpportunityStatusOpen)),
			goqu.I("deadline").Gte(now),
		).
		Order(goqu.I("event_date").Asc(), goqu.I("id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch opportunities from pg: %w", err)
	}

	return toDomain(rows, (*PgOpportunity).ToDomain), nil
}
