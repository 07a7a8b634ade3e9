package repositories

import (
	"context"

	"witnessconsole/internal/domain/submission"
)

// SubmissionRepository defines the contract for submission history access
type SubmissionRepository interface {
	Save(ctx context.Context, s *submission.Submission) error
	FindRecent(ctx context.Context, limit int) ([]*submission.Submission, error)
}
