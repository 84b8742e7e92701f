package worker

import (
	"context"
	"errors"
	"fmt"
	"podium/internal/signup"
	"podium/pkg/domain"
	"podium/pkg/identity"
	"podium/pkg/logger"
	"podium/pkg/serrors"
	"podium/pkg/storage"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// rateLimitedSnooze is how long a job waits after the identity provider
// throttled it.
const rateLimitedSnooze = time.Minute

// IdentityCleanupWorker deletes identity users left behind by signups whose
// member row could not be written.
//
// The member row is checked first: if one exists by the time the job runs,
// the identity user is in use and is kept.
type IdentityCleanupWorker struct {
	river.WorkerDefaults[signup.CleanupJobArgs]

	members  storage.MemberStorage
	identity identity.Client
}

// NewIdentityCleanupWorker constructs the worker.
func NewIdentityCleanupWorker(members storage.MemberStorage, idp identity.Client) *IdentityCleanupWorker {
	return &IdentityCleanupWorker{
		members:  members,
		identity: idp,
	}
}

func (w *IdentityCleanupWorker) Work(ctx context.Context, job *river.Job[signup.CleanupJobArgs]) error {
	ctx = logger.WithFields(ctx,
		zap.Int64("jobID", job.ID),
		zap.String("userID", job.Args.UserID.String()),
		zap.String("email", job.Args.Email))

	member, err := w.members.MemberByID(ctx, domain.MemberID(job.Args.UserID))
	if err != nil {
		return fmt.Errorf("could not check member row: %w", err)
	}
	if member != nil {
		logger.Info(ctx, "member row exists, keeping identity user")

		return nil
	}

	if err := w.identity.DeleteUser(ctx, job.Args.UserID); err != nil {
		if errors.Is(err, serrors.ErrNotFound) {
			logger.Info(ctx, "identity user already gone")

			return nil
		}
		if errors.Is(err, serrors.ErrRateLimited) {
			return river.JobSnooze(rateLimitedSnooze) //nolint: wrapcheck
		}

		logger.Error(ctx, "could not delete identity user", zap.Error(err))

		return fmt.Errorf("could not delete identity user: %w", err)
	}

	logger.Info(ctx, "orphaned identity user deleted")

	return nil
}
