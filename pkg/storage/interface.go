// Package storage defines the persistence interfaces the website relies on.
// The database itself is externally owned; these interfaces cover the rows
// this service reads for its pages and the member rows it writes at signup.
//
//go:generate mockgen -package mockstorage -source=interface.go -destination=mock/mockstorage.go *
package storage

import (
	"context"
	"podium/pkg/domain"
	"time"

	"github.com/riverqueue/river"
)

// AllStorage groups every capability available both inside and outside a
// transaction.
type AllStorage interface {
	MemberStorage
	ContentStorage
	StatsStorage
	JobStorage
}

// TxStorage is a storage handle bound to a database transaction.
// Implementations become unusable after Commit or Rollback.
type TxStorage interface {
	AllStorage
	Commit() error
	Rollback() error
}

// Storage is the non-transactional handle owned by the process.
type Storage interface {
	AllStorage
	// Ping checks connectivity with the database.
	Ping(ctx context.Context) error
	// Close releases the underlying connection pool.
	Close() error
	// Begin starts a new transaction.
	Begin(ctx context.Context) (TxStorage, error)
	// WithTx runs cb inside a transaction, committing when cb returns nil and
	// rolling back otherwise.
	WithTx(ctx context.Context, cb func(storage AllStorage) error) error
}

// MemberStorage reads and writes member accounts and their profiles.
type MemberStorage interface {
	// StoreMember inserts the member row and the role-specific profile row and
	// returns the member as stored (with generated timestamps).
	StoreMember(ctx context.Context, member domain.Member, profile domain.Profile) (*domain.Member, error)
	// MemberByEmail returns the member with the given email, or nil.
	MemberByEmail(ctx context.Context, email string) (*domain.Member, error)
	// MemberByID returns the member with the given ID, or nil.
	MemberByID(ctx context.Context, id domain.MemberID) (*domain.Member, error)
	// DeleteMember removes a member and, by cascade, its profile. It reports
	// whether a row was deleted.
	DeleteMember(ctx context.Context, id domain.MemberID) (bool, error)
}

// ContentStorage reads the rows rendered on public pages.
type ContentStorage interface {
	// Articles returns every published article.
	Articles(ctx context.Context) ([]domain.Article, error)
	// ArticleBySlug returns a published article, or nil.
	ArticleBySlug(ctx context.Context, slug string) (*domain.Article, error)
	// FAQs returns every FAQ entry.
	FAQs(ctx context.Context) ([]domain.FAQ, error)
	// HelpArticles returns every help-center article.
	HelpArticles(ctx context.Context) ([]domain.HelpArticle, error)
	// HelpArticleBySlug returns a help article, or nil.
	HelpArticleBySlug(ctx context.Context, slug string) (*domain.HelpArticle, error)
	// Speakers returns up to limit speaker profiles starting at offset,
	// newest first.
	Speakers(ctx context.Context, offset, limit uint) ([]domain.Speaker, error)
	// Organizations returns up to limit organization profiles starting at
	// offset, newest first.
	Organizations(ctx context.Context, offset, limit uint) ([]domain.Organization, error)
	// OpenOpportunities returns open opportunities whose deadline is not
	// before now.
	OpenOpportunities(ctx context.Context, now time.Time) ([]domain.Opportunity, error)
}

// StatsStorage reports row counts for diagnostics.
type StatsStorage interface {
	Counts(ctx context.Context) (domain.Stats, error)
}

// JobStorage enqueues background jobs. Inside a transaction the insert is
// part of that transaction and becomes visible only on commit.
type JobStorage interface {
	// AddJob enqueues a job and reports whether it was inserted (false when a
	// unique job with the same arguments already exists).
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}
