package catalog

import (
	"cmp"
	"podium/pkg/domain"
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ArticleFilter selects articles for the articles page.
type ArticleFilter struct {
	Search   string
	Category string
	// Window is one of the Window* constants.
	Window string
}

// Apply returns the matching articles, newest first.
func (f ArticleFilter) Apply(articles []domain.Article, now time.Time) []domain.Article {
	cutoff := DateCutoff(f.Window, now)
	out := make([]domain.Article, 0, len(articles))
	for _, a := range articles {
		if !ContainsAny(f.Search, a.Title, a.Excerpt, a.Body) {
			continue
		}
		if !categoryMatches(a.Category, f.Category) {
			continue
		}
		if !cutoff.IsZero() && a.PublishedAt.Before(cutoff) {
			continue
		}
		out = append(out, a)
	}
	slices.SortStableFunc(out, func(a, b domain.Article) int {
		if c := b.PublishedAt.Compare(a.PublishedAt); c != 0 {
			return c
		}

		return strings.Compare(a.Title, b.Title)
	})

	return out
}

// FAQFilter selects questions for the FAQ page.
type FAQFilter struct {
	Search   string
	Category string
}

// Apply returns the matching FAQs in display order.
func (f FAQFilter) Apply(faqs []domain.FAQ) []domain.FAQ {
	out := make([]domain.FAQ, 0, len(faqs))
	for _, q := range faqs {
		if ContainsAny(f.Search, q.Question, q.Answer) && categoryMatches(q.Category, f.Category) {
			out = append(out, q)
		}
	}
	slices.SortStableFunc(out, func(a, b domain.FAQ) int { return cmp.Compare(a.Position, b.Position) })

	return out
}

// HelpFilter selects help-center articles.
type HelpFilter struct {
	Search   string
	Category string
}

// Apply returns the matching help articles ordered by position, then title.
func (f HelpFilter) Apply(articles []domain.HelpArticle) []domain.HelpArticle {
	out := make([]domain.HelpArticle, 0, len(articles))
	for _, a := range articles {
		if ContainsAny(f.Search, a.Title, a.Summary, a.Body) && categoryMatches(a.Category, f.Category) {
			out = append(out, a)
		}
	}
	slices.SortStableFunc(out, func(a, b domain.HelpArticle) int {
		if c := cmp.Compare(a.Position, b.Position); c != 0 {
			return c
		}

		return strings.Compare(a.Title, b.Title)
	})

	return out
}

// SpeakerFilter selects speakers in the directory.
type SpeakerFilter struct {
	Search string
	// Specialty must equal one of the speaker's topics.
	Specialty string
	Location  string
	// MinFee and MaxFee bound the budget; nil leaves that side open.
	MinFee *decimal.Decimal
	MaxFee *decimal.Decimal
}

// Apply returns the matching speakers, best rated first, then by name.
func (f SpeakerFilter) Apply(speakers []domain.Speaker) []domain.Speaker {
	out := make([]domain.Speaker, 0, len(speakers))
	for _, s := range speakers {
		if !ContainsAny(f.Search, append([]string{s.Name, s.Headline, s.Bio}, s.Topics...)...) {
			continue
		}
		if !hasTopic(s.Topics, f.Specialty) {
			continue
		}
		if !Contains(s.Location, f.Location) {
			continue
		}
		if !f.feeOverlaps(s) {
			continue
		}
		out = append(out, s)
	}
	slices.SortStableFunc(out, func(a, b domain.Speaker) int {
		if c := b.Rating.Cmp(a.Rating); c != 0 {
			return c
		}

		return strings.Compare(fold(a.Name), fold(b.Name))
	})

	return out
}

// feeOverlaps keeps a speaker whose published fee range intersects the
// budget. Speakers without a published fee are excluded only when a budget
// bound is set.
func (f SpeakerFilter) feeOverlaps(s domain.Speaker) bool {
	if f.MinFee == nil && f.MaxFee == nil {
		return true
	}
	if s.FeeMin == nil && s.FeeMax == nil {
		return false
	}
	low, high := s.FeeMin, s.FeeMax
	if low == nil {
		low = high
	}
	if high == nil {
		high = low
	}
	if f.MaxFee != nil && low.GreaterThan(*f.MaxFee) {
		return false
	}
	if f.MinFee != nil && high.LessThan(*f.MinFee) {
		return false
	}

	return true
}

func hasTopic(topics []string, want string) bool {
	if fold(want) == "" || fold(want) == AllCategories {
		return true
	}

	return slices.ContainsFunc(topics, func(t string) bool { return Equal(t, want) })
}

// OrganizationFilter selects organizations in the directory.
type OrganizationFilter struct {
	Search   string
	Industry string
	Location string
	Size     string
}

// Apply returns the matching organizations ordered by name.
func (f OrganizationFilter) Apply(orgs []domain.Organization) []domain.Organization {
	out := make([]domain.Organization, 0, len(orgs))
	for _, o := range orgs {
		if !ContainsAny(f.Search, o.Name, o.Description) {
			continue
		}
		if !categoryMatches(o.Industry, f.Industry) || !categoryMatches(o.Size, f.Size) {
			continue
		}
		if !Contains(o.Location, f.Location) {
			continue
		}
		out = append(out, o)
	}
	slices.SortStableFunc(out, func(a, b domain.Organization) int {
		return strings.Compare(fold(a.Name), fold(b.Name))
	})

	return out
}

// OpportunityFilter selects open opportunities.
type OpportunityFilter struct {
	Search string
	Topic  string
	// From and To bound the event date; zero values leave that side open.
	From time.Time
	To   time.Time
}

// Apply returns the matching opportunities, soonest event first.
func (f OpportunityFilter) Apply(opps []domain.Opportunity) []domain.Opportunity {
	out := make([]domain.Opportunity, 0, len(opps))
	for _, o := range opps {
		if !ContainsAny(f.Search, o.Title, o.Description) {
			continue
		}
		if !hasTopic(o.Topics, f.Topic) {
			continue
		}
		if !f.From.IsZero() && o.EventDate.Before(f.From) {
			continue
		}
		if !f.To.IsZero() && o.EventDate.After(f.To) {
			continue
		}
		out = append(out, o)
	}
	slices.SortStableFunc(out, func(a, b domain.Opportunity) int { return a.EventDate.Compare(b.EventDate) })

	return out
}
