package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"witnessconsole/internal/domain/submission"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// submissionRepository implements SubmissionRepository on Postgres
type submissionRepository struct {
	db *pgxpool.Pool
}

// NewSubmissionRepository creates a new submission repository
func NewSubmissionRepository(db *pgxpool.Pool) *submissionRepository {
	return &submissionRepository{db: db}
}

// Save inserts a submission, or updates status and message if it exists
func (r *submissionRepository) Save(ctx context.Context, s *submission.Submission) error {
	opts, err := json.Marshal(s.Options)
	if err != nil {
		return fmt.Errorf("marshal options: %w", err)
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO console_submissions (id, urls, mode, options, status, message, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE
		   SET status = EXCLUDED.status,
		       message = EXCLUDED.message`,
		s.ID.String(), s.URLs, string(s.Mode), opts, string(s.Status), s.Message, s.CreatedAt)
	return err
}

// FindRecent returns the newest submissions first
func (r *submissionRepository) FindRecent(ctx context.Context, limit int) ([]*submission.Submission, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := r.db.Query(ctx, `
		SELECT id, urls, mode, options, status, message, created_at
		FROM console_submissions
		ORDER BY created_at DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*submission.Submission
	for rows.Next() {
		s, err := r.scanSubmission(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// scanSubmission scans a submission from a row
func (r *submissionRepository) scanSubmission(row pgx.Row) (*submission.Submission, error) {
	var (
		s         submission.Submission
		id        string
		mode      string
		status    string
		opts      []byte
		createdAt time.Time
	)

	if err := row.Scan(&id, &s.URLs, &mode, &opts, &status, &s.Message, &createdAt); err != nil {
		return nil, err
	}

	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("bad submission id %q: %w", id, err)
	}
	if err := json.Unmarshal(opts, &s.Options); err != nil {
		return nil, fmt.Errorf("decode options: %w", err)
	}

	s.ID = parsed
	s.Mode = submission.Mode(mode)
	s.Status = submission.Status(status)
	s.CreatedAt = createdAt
	return &s, nil
}
