package signup

import (
	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// CleanupJobArgs asks the worker to delete an identity user whose member row
// could not be written.
type CleanupJobArgs struct {
	UserID uuid.UUID `json:"userId" river:"unique"`
	Email  string    `json:"email"`

	maxAttempts int
}

// NewCleanupJobArgs builds job args retried at most maxAttempts times.
func NewCleanupJobArgs(userID uuid.UUID, email string, maxAttempts int) CleanupJobArgs {
	return CleanupJobArgs{UserID: userID, Email: email, maxAttempts: maxAttempts}
}

func (args CleanupJobArgs) Kind() string { return "IdentityCleanupJob" }

// InsertOpts keeps a single pending cleanup per identity user.
func (args CleanupJobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
		UniqueOpts: river.UniqueOpts{
			ByArgs: true,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
	}
}
