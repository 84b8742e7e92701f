// Package content is the read side of the public site. It loads lists from
// storage through the cache, filters them with the catalog helpers and cuts
// them into pages.
package content

import (
	"context"
	"podium/internal/catalog"
	"podium/pkg/domain"
)

// List is one page of filtered items plus the filter values available for
// the full list.
type List[T any] struct {
	catalog.Window[T]
	Categories []string `json:"categories,omitempty"`
}

// ArticleQuery selects a page of articles.
type ArticleQuery struct {
	Filter catalog.ArticleFilter
	Page   catalog.Page
}

// HelpQuery selects a page of help articles.
type HelpQuery struct {
	Filter catalog.HelpFilter
	Page   catalog.Page
}

// SpeakerQuery selects a directory page of speakers. The page picks the
// database range; the filter narrows that range.
type SpeakerQuery struct {
	Filter catalog.SpeakerFilter
	Page   catalog.Page
}

// OrganizationQuery selects a directory page of organizations.
type OrganizationQuery struct {
	Filter catalog.OrganizationFilter
	Page   catalog.Page
}

//go:generate mockgen -package mockcontent -source=interface.go -destination=mock/mockcontent.go *
type Service interface {
	Articles(ctx context.Context, q ArticleQuery) (List[domain.Article], error)
	Article(ctx context.Context, slug string) (*domain.Article, error)
	FAQs(ctx context.Context, f catalog.FAQFilter) (List[domain.FAQ], error)
	Help(ctx context.Context, q HelpQuery) (List[domain.HelpArticle], error)
	HelpArticle(ctx context.Context, slug string) (*domain.HelpArticle, error)
	Speakers(ctx context.Context, q SpeakerQuery) (List[domain.Speaker], error)
	Organizations(ctx context.Context, q OrganizationQuery) (List[domain.Organization], error)
	Opportunities(ctx context.Context, f catalog.OpportunityFilter) (List[domain.Opportunity], error)
	Plans(userType domain.UserType) []domain.Plan
}
