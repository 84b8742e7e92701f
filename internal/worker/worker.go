// Package worker runs the background jobs queued by the website.
package worker

import (
	"context"
	"fmt"
	"podium/pkg/identity"
	"podium/pkg/logger"
	"podium/pkg/storage"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
)

// Options configure the river client.
type Options struct {
	// MaxWorkers is the concurrency of the default queue.
	MaxWorkers int
}

// Start registers the workers and starts a river client on dbPool. The
// caller stops it with Stop on shutdown.
func Start(ctx context.Context,
	dbPool *pgxpool.Pool,
	members storage.MemberStorage,
	idp identity.Client,
	opts Options) (*river.Client[pgx.Tx], error) {
	if opts.MaxWorkers <= 0 {
		opts.MaxWorkers = 10
	}

	workers := river.NewWorkers()
	river.AddWorker(workers, NewIdentityCleanupWorker(members, idp))

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: opts.MaxWorkers},
		},
		Workers: workers,
		Logger:  logger.Slog(ctx),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}
