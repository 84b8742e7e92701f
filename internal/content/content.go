package content

import (
	"context"
	"fmt"
	"podium/internal/catalog"
	"podium/internal/config"
	"podium/internal/pricing"
	"podium/pkg/cache"
	"podium/pkg/domain"
	"podium/pkg/serrors"
	"podium/pkg/storage"
	"time"

	"github.com/microcosm-cc/bluemonday"
)

// Cache keys. Directory and opportunity keys get a suffix.
const (
	articlesKey      = "content:articles"
	faqsKey          = "content:faqs"
	helpKey          = "content:help"
	speakersKey      = "content:speakers"
	organizationsKey = "content:organizations"
	opportunitiesKey = "content:opportunities"
)

// Options set the page sizes of paginated lists.
type Options struct {
	ArticlesPageSize  int
	HelpPageSize      int
	DirectoryPageSize int
}

// NewOptions constructs Options from the application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		ArticlesPageSize:  cfg.Content.ArticlesPageSize,
		HelpPageSize:      cfg.Content.HelpPageSize,
		DirectoryPageSize: cfg.Content.DirectoryPageSize,
	}
}

type service struct {
	options Options
	storage storage.Storage
	cache   cache.Cache
	plans   *pricing.Catalog
	policy  *bluemonday.Policy
	now     func() time.Time
}

// New constructs the content Service. A nil cache disables caching.
func New(st storage.Storage, c cache.Cache, plans *pricing.Catalog, options Options) Service {
	if c == nil {
		c = cache.Nop{}
	}
	if options.ArticlesPageSize <= 0 {
		options.ArticlesPageSize = 9
	}
	if options.HelpPageSize <= 0 {
		options.HelpPageSize = 12
	}
	if options.DirectoryPageSize <= 0 {
		options.DirectoryPageSize = 12
	}

	return &service{
		options: options,
		storage: st,
		cache:   c,
		plans:   plans,
		policy:  bluemonday.UGCPolicy(),
		now:     time.Now,
	}
}

func (s *service) Articles(ctx context.Context, q ArticleQuery) (List[domain.Article], error) {
	all, err := cache.GetOrLoad(ctx, s.cache, articlesKey, s.storage.Articles)
	if err != nil {
		return List[domain.Article]{}, fmt.Errorf("could not load articles: %w", err)
	}

	w := catalog.Paginate(q.Filter.Apply(all, s.now()), q.Page, s.options.ArticlesPageSize)
	w.Items = withoutBodies(w.Items, func(a *domain.Article) { a.Body = "" })

	return List[domain.Article]{
		Window:     w,
		Categories: catalog.Categories(all, func(a domain.Article) string { return a.Category }),
	}, nil
}

// Article returns a published article with its body sanitized for rendering.
func (s *service) Article(ctx context.Context, slug string) (*domain.Article, error) {
	article, err := s.storage.ArticleBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("could not load article: %w", err)
	}
	if article == nil {
		return nil, serrors.With(serrors.ErrNotFound, "Article not found")
	}
	article.Body = s.policy.Sanitize(article.Body)

	return article, nil
}

func (s *service) FAQs(ctx context.Context, f catalog.FAQFilter) (List[domain.FAQ], error) {
	all, err := cache.GetOrLoad(ctx, s.cache, faqsKey, s.storage.FAQs)
	if err != nil {
		return List[domain.FAQ]{}, fmt.Errorf("could not load faqs: %w", err)
	}

	return List[domain.FAQ]{
		Window:     catalog.Paginate(f.Apply(all), 1, 0),
		Categories: catalog.Categories(all, func(q domain.FAQ) string { return q.Category }),
	}, nil
}

func (s *service) Help(ctx context.Context, q HelpQuery) (List[domain.HelpArticle], error) {
	all, err := cache.GetOrLoad(ctx, s.cache, helpKey, s.storage.HelpArticles)
	if err != nil {
		return List[domain.HelpArticle]{}, fmt.Errorf("could not load help articles: %w", err)
	}

	w := catalog.Paginate(q.Filter.Apply(all), q.Page, s.options.HelpPageSize)
	w.Items = withoutBodies(w.Items, func(a *domain.HelpArticle) { a.Body = "" })

	return List[domain.HelpArticle]{
		Window:     w,
		Categories: catalog.Categories(all, func(a domain.HelpArticle) string { return a.Category }),
	}, nil
}

func (s *service) HelpArticle(ctx context.Context, slug string) (*domain.HelpArticle, error) {
	article, err := s.storage.HelpArticleBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("could not load help article: %w", err)
	}
	if article == nil {
		return nil, serrors.With(serrors.ErrNotFound, "Help article not found")
	}
	article.Body = s.policy.Sanitize(article.Body)

	return article, nil
}

// Speakers loads the page's database range and filters it in memory. HasMore
// reports whether the database returned a full range, not whether the
// filter left a full page.
func (s *service) Speakers(ctx context.Context, q SpeakerQuery) (List[domain.Speaker], error) {
	size := s.options.DirectoryPageSize
	page := max(q.Page, 1)
	offset := page.Offset(size)

	rows, err := cache.GetOrLoad(ctx, s.cache, fmt.Sprintf("%s:%d:%d", speakersKey, offset, size),
		func(ctx context.Context) ([]domain.Speaker, error) {
			return s.storage.Speakers(ctx, uint(offset), uint(size)) //nolint: gosec
		})
	if err != nil {
		return List[domain.Speaker]{}, fmt.Errorf("could not load speakers: %w", err)
	}

	items := q.Filter.Apply(rows)

	return List[domain.Speaker]{
		Window: catalog.Window[domain.Speaker]{
			Items:   items,
			Page:    page,
			Total:   len(items),
			HasMore: len(rows) == size,
		},
		Categories: specialties(rows),
	}, nil
}

func (s *service) Organizations(ctx context.Context, q OrganizationQuery) (List[domain.Organization], error) {
	size := s.options.DirectoryPageSize
	page := max(q.Page, 1)
	offset := page.Offset(size)

	rows, err := cache.GetOrLoad(ctx, s.cache, fmt.Sprintf("%s:%d:%d", organizationsKey, offset, size),
		func(ctx context.Context) ([]domain.Organization, error) {
			return s.storage.Organizations(ctx, uint(offset), uint(size)) //nolint: gosec
		})
	if err != nil {
		return List[domain.Organization]{}, fmt.Errorf("could not load organizations: %w", err)
	}

	items := q.Filter.Apply(rows)

	return List[domain.Organization]{
		Window: catalog.Window[domain.Organization]{
			Items:   items,
			Page:    page,
			Total:   len(items),
			HasMore: len(rows) == size,
		},
		Categories: catalog.Categories(rows, func(o domain.Organization) string { return o.Industry }),
	}, nil
}

// Opportunities returns open opportunities whose deadline has not passed.
func (s *service) Opportunities(ctx context.Context, f catalog.OpportunityFilter) (List[domain.Opportunity], error) {
	now := s.now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	all, err := cache.GetOrLoad(ctx, s.cache, opportunitiesKey+":"+today.Format(time.DateOnly),
		func(ctx context.Context) ([]domain.Opportunity, error) {
			return s.storage.OpenOpportunities(ctx, today)
		})
	if err != nil {
		return List[domain.Opportunity]{}, fmt.Errorf("could not load opportunities: %w", err)
	}

	topics := make([]string, 0)
	for _, o := range all {
		topics = append(topics, o.Topics...)
	}

	return List[domain.Opportunity]{
		Window:     catalog.Paginate(f.Apply(all), 1, 0),
		Categories: catalog.Categories(topics, func(t string) string { return t }),
	}, nil
}

func (s *service) Plans(userType domain.UserType) []domain.Plan {
	return s.plans.Plans(userType)
}

func specialties(speakers []domain.Speaker) []string {
	var topics []string
	for _, s := range speakers {
		topics = append(topics, s.Topics...)
	}

	return catalog.Categories(topics, func(t string) string { return t })
}

// withoutBodies returns a copy of items with strip applied, so list
// responses do not carry full article bodies.
func withoutBodies[T any](items []T, strip func(*T)) []T {
	out := make([]T, len(items))
	copy(out, items)
	for i := range out {
		strip(&out[i])
	}

	return out
}
