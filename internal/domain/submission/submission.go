package submission

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"witnessconsole/internal/api"
)

// Submission is one probing job handed to the backend from the console
type Submission struct {
	ID        uuid.UUID         `json:"id"`
	URLs      []string          `json:"urls"`
	Mode      Mode              `json:"mode"`
	Options   api.SubmitOptions `json:"options"`
	Status    Status            `json:"status"`
	Message   string            `json:"message,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
}

// Mode tells whether the job ran as a batch or as a synchronous single probe
type Mode string

const (
	ModeBatch  Mode = "batch"
	ModeSingle Mode = "single"
)

// Status represents the outcome recorded for a submission
type Status string

const (
	StatusAccepted Status = "accepted"
	StatusFailed   Status = "failed"
)

// NewSubmission creates a submission with validation
func NewSubmission(urls []string, mode Mode, opts api.SubmitOptions) (*Submission, error) {
	if len(urls) == 0 {
		return nil, fmt.Errorf("at least one url is required")
	}
	if mode == ModeSingle && len(urls) != 1 {
		return nil, fmt.Errorf("single mode takes exactly one url, got %d", len(urls))
	}

	return &Submission{
		ID:        uuid.New(),
		URLs:      append([]string(nil), urls...),
		Mode:      mode,
		Options:   opts,
		Status:    StatusAccepted,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// Fail marks the submission as rejected by the backend
func (s *Submission) Fail(reason string) {
	s.Status = StatusFailed
	s.Message = reason
}
