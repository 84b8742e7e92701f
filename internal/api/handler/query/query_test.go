package query_test

import (
	"net/url"
	"podium/internal/api/handler/query"
	"podium/internal/catalog"
	"podium/pkg/domain"
	"podium/pkg/serrors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestArticles(t *testing.T) {
	q := query.Articles(url.Values{"q": {" keynote "}, "category": {"Tips"}, "window": {"month"}, "page": {"3"}})
	require.Equal(t, "keynote", q.Filter.Search)
	require.Equal(t, "Tips", q.Filter.Category)
	require.Equal(t, catalog.WindowMonth, q.Filter.Window)
	require.Equal(t, catalog.Page(3), q.Page)

	require.Equal(t, catalog.Page(1), query.Articles(url.Values{"page": {"abc"}}).Page)
}

func TestSpeakers_Fees(t *testing.T) {
	q, err := query.Speakers(url.Values{"minFee": {"500"}, "maxFee": {"2500.50"}, "specialty": {"AI"}})
	require.NoError(t, err)
	require.Equal(t, "500", q.Filter.MinFee.String())
	require.Equal(t, "2500.5", q.Filter.MaxFee.String())
	require.Equal(t, "AI", q.Filter.Specialty)

	q, err = query.Speakers(url.Values{})
	require.NoError(t, err)
	require.Nil(t, q.Filter.MinFee)
	require.Nil(t, q.Filter.MaxFee)

	for _, v := range []url.Values{
		{"minFee": {"cheap"}},
		{"maxFee": {"-1"}},
		{"minFee": {"10"}, "maxFee": {"5"}},
	} {
		_, err = query.Speakers(v)
		require.ErrorIs(t, err, serrors.ErrBadRequest, v.Encode())
	}
}

func TestOpportunities_Dates(t *testing.T) {
	f, err := query.Opportunities(url.Values{"from": {"2026-03-01"}, "to": {"2026-03-31"}, "topic": {"Leadership"}})
	require.NoError(t, err)
	require.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), f.From)
	require.Equal(t, time.Date(2026, 3, 31, 23, 59, 59, 999999999, time.UTC), f.To)
	require.Equal(t, "Leadership", f.Topic)

	_, err = query.Opportunities(url.Values{"from": {"March"}})
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	_, err = query.Opportunities(url.Values{"from": {"2026-04-01"}, "to": {"2026-03-01"}})
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestOrganizationsAndHelp(t *testing.T) {
	o := query.Organizations(url.Values{"industry": {"Tech"}, "size": {"51-200"}, "location": {"Berlin"}})
	require.Equal(t, "Tech", o.Filter.Industry)
	require.Equal(t, "51-200", o.Filter.Size)
	require.Equal(t, "Berlin", o.Filter.Location)
	require.Equal(t, catalog.Page(1), o.Page)

	h := query.Help(url.Values{"q": {"billing"}, "page": {"2"}})
	require.Equal(t, "billing", h.Filter.Search)
	require.Equal(t, catalog.Page(2), h.Page)

	f := query.FAQs(url.Values{"category": {"all"}})
	require.Equal(t, catalog.AllCategories, f.Category)
}

func TestPlanUserType(t *testing.T) {
	ut, err := query.PlanUserType(url.Values{"userType": {" Speaker "}})
	require.NoError(t, err)
	require.Equal(t, domain.UserTypeSpeaker, ut)

	ut, err = query.PlanUserType(url.Values{})
	require.NoError(t, err)
	require.Empty(t, ut)

	_, err = query.PlanUserType(url.Values{"userType": {"admin"}})
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestNextPage(t *testing.T) {
	in := url.Values{"q": {"ai"}, "page": {"2"}}
	out := query.NextPage(in, catalog.Page(2))
	require.Equal(t, "3", out.Get("page"))
	require.Equal(t, "ai", out.Get("q"))
	require.Equal(t, "2", in.Get("page"))
}
