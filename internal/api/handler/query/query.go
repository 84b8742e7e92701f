// Package query turns URL query parameters into content queries. The page
// handlers and the JSON API share it so both read the same parameter names.
package query

import (
	"net/url"
	"podium/internal/catalog"
	"podium/internal/content"
	"podium/pkg/domain"
	"podium/pkg/serrors"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the format of the from and to parameters.
const DateLayout = "2006-01-02"

// Parameter names.
const (
	Search    = "q"
	Category  = "category"
	Window    = "window"
	Page      = "page"
	Specialty = "specialty"
	Location  = "location"
	MinFee    = "minFee"
	MaxFee    = "maxFee"
	Industry  = "industry"
	Size      = "size"
	Topic     = "topic"
	From      = "from"
	To        = "to"
	UserType  = "userType"
)

func get(v url.Values, key string) string {
	return strings.TrimSpace(v.Get(key))
}

// Articles reads q, category, window and page.
func Articles(v url.Values) content.ArticleQuery {
	return content.ArticleQuery{
		Filter: catalog.ArticleFilter{
			Search:   get(v, Search),
			Category: get(v, Category),
			Window:   get(v, Window),
		},
		Page: catalog.ParsePage(v.Get(Page)),
	}
}

// FAQs reads q and category.
func FAQs(v url.Values) catalog.FAQFilter {
	return catalog.FAQFilter{
		Search:   get(v, Search),
		Category: get(v, Category),
	}
}

// Help reads q, category and page.
func Help(v url.Values) content.HelpQuery {
	return content.HelpQuery{
		Filter: catalog.HelpFilter{
			Search:   get(v, Search),
			Category: get(v, Category),
		},
		Page: catalog.ParsePage(v.Get(Page)),
	}
}

// Speakers reads q, specialty, location, minFee, maxFee and page. A
// malformed or negative fee is a bad request.
func Speakers(v url.Values) (content.SpeakerQuery, error) {
	minFee, err := fee(v, MinFee)
	if err != nil {
		return content.SpeakerQuery{}, err
	}
	maxFee, err := fee(v, MaxFee)
	if err != nil {
		return content.SpeakerQuery{}, err
	}
	if minFee != nil && maxFee != nil && minFee.GreaterThan(*maxFee) {
		return content.SpeakerQuery{}, serrors.With(serrors.ErrBadRequest, "minFee must not exceed maxFee")
	}

	return content.SpeakerQuery{
		Filter: catalog.SpeakerFilter{
			Search:    get(v, Search),
			Specialty: get(v, Specialty),
			Location:  get(v, Location),
			MinFee:    minFee,
			MaxFee:    maxFee,
		},
		Page: catalog.ParsePage(v.Get(Page)),
	}, nil
}

func fee(v url.Values, key string) (*decimal.Decimal, error) {
	raw := get(v, key)
	if raw == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil || d.IsNegative() {
		return nil, serrors.With(serrors.ErrBadRequest, "%s must be a non-negative number", key)
	}

	return &d, nil
}

// Organizations reads q, industry, location, size and page.
func Organizations(v url.Values) content.OrganizationQuery {
	return content.OrganizationQuery{
		Filter: catalog.OrganizationFilter{
			Search:   get(v, Search),
			Industry: get(v, Industry),
			Location: get(v, Location),
			Size:     get(v, Size),
		},
		Page: catalog.ParsePage(v.Get(Page)),
	}
}

// Opportunities reads q, topic, from and to. The to date is inclusive.
func Opportunities(v url.Values) (catalog.OpportunityFilter, error) {
	f := catalog.OpportunityFilter{
		Search: get(v, Search),
		Topic:  get(v, Topic),
	}

	var err error
	if f.From, err = date(v, From); err != nil {
		return catalog.OpportunityFilter{}, err
	}
	if f.To, err = date(v, To); err != nil {
		return catalog.OpportunityFilter{}, err
	}
	if !f.To.IsZero() {
		f.To = f.To.Add(24*time.Hour - time.Nanosecond)
	}
	if !f.From.IsZero() && !f.To.IsZero() && f.From.After(f.To) {
		return catalog.OpportunityFilter{}, serrors.With(serrors.ErrBadRequest, "from must not be after to")
	}

	return f, nil
}

func date(v url.Values, key string) (time.Time, error) {
	raw := get(v, key)
	if raw == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(DateLayout, raw)
	if err != nil {
		return time.Time{}, serrors.With(serrors.ErrBadRequest, "%s must be a date like %s", key, DateLayout)
	}

	return t, nil
}

// PlanUserType reads userType. Empty selects every plan.
func PlanUserType(v url.Values) (domain.UserType, error) {
	t := domain.UserType(v.Get(UserType)).Normalize()
	if t != "" && !t.Valid() {
		return "", serrors.With(serrors.ErrBadRequest, "userType must be speaker or organization")
	}

	return t, nil
}

// NextPage returns v with page set to the page after current.
func NextPage(v url.Values, current catalog.Page) url.Values {
	out := make(url.Values, len(v)+1)
	for k, vals := range v {
		out[k] = append([]string(nil), vals...)
	}
	out.Set(Page, strconv.Itoa(int(current.Next())))

	return out
}
