// Package catalog filters, sorts and paginates in-memory lists of site
// content: articles, FAQs, help articles, speakers, organizations and
// opportunities. Filters are sequential predicate checks followed by a
// fixed re-sort; nothing here keeps indexes or state between calls.
package catalog

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// Page is a 1-based page number taken from a URL query parameter.
type Page int

const (
	// MaxPage is the largest page ParsePage returns.
	MaxPage Page = math.MaxInt32
	// MaxOffset bounds Offset so it stays a valid slice index and SQL OFFSET.
	MaxOffset = math.MaxInt32
)

// ParsePage parses raw as a page number. Empty, malformed and values below 1
// all yield the first page; values above MaxPage yield MaxPage.
func ParsePage(raw string) Page {
	n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	switch {
	case errors.Is(err, strconv.ErrRange) && n > 0:
		return MaxPage
	case err != nil || n < 1:
		return 1
	case n > int64(MaxPage):
		return MaxPage
	}

	return Page(n)
}

// Offset returns the index of the first row of the page, capped at MaxOffset.
func (p Page) Offset(size int) int {
	if p < 1 || size < 1 {
		return 0
	}
	if int(p)-1 > MaxOffset/size {
		return MaxOffset
	}

	return min((int(p)-1)*size, MaxOffset)
}

// Range returns the inclusive row range [from, to] the page covers, the form
// hosted Postgres APIs take for ranged selects.
func (p Page) Range(size int) (int, int) {
	from := p.Offset(size)

	return from, from + max(size, 1) - 1
}

// Next returns the following page.
func (p Page) Next() Page { return max(p, 1) + 1 }

// Window is one page of a longer list.
type Window[T any] struct {
	Items   []T  `json:"items"`
	Page    Page `json:"page"`
	Total   int  `json:"total"`
	HasMore bool `json:"hasMore"`
}

// Paginate cuts the page-th window of size items out of items.
func Paginate[T any](items []T, page Page, size int) Window[T] {
	if size < 1 {
		size = len(items)
	}
	page = max(page, 1)
	from := min(page.Offset(size), len(items))
	to := min(from+size, len(items))

	return Window[T]{
		Items:   items[from:to],
		Page:    page,
		Total:   len(items),
		HasMore: to < len(items),
	}
}
