// Package views assembles what each console screen needs from the backend.
// Controllers are stateless; every call takes the caller's context and a
// per-request notifier.
package views

import (
	"context"
	"fmt"
	"time"

	"witnessconsole/internal/api"
	"witnessconsole/internal/cache"
	"witnessconsole/internal/domain/submission"
	"witnessconsole/internal/store/repositories"
)

// Backend is the subset of api.Client the controllers call
type Backend interface {
	Statistics(ctx context.Context) (*api.Statistics, error)
	Wappalyzer(ctx context.Context) (map[string]string, error)
	Gallery(ctx context.Context, q api.GalleryQuery) (*api.GalleryResponse, error)
	List(ctx context.Context) ([]api.ListRow, error)
	Detail(ctx context.Context, id string) (*api.Detail, error)
	Technologies(ctx context.Context) ([]string, error)
	Search(ctx context.Context, query string) ([]api.SearchHit, error)
	Delete(ctx context.Context, id int) (string, error)
	Submit(ctx context.Context, req api.SubmitRequest) (string, error)
	SubmitSingle(ctx context.Context, req api.SubmitSingleRequest) (*api.Detail, error)
}

// Service handles the console view logic
type Service struct {
	backend        Backend
	cache          cache.Reference
	history        repositories.SubmissionRepository
	screenshotBase string
	sideTimeout    time.Duration
}

// NewService creates a view service. cache and history may be nil.
func NewService(backend Backend, ref cache.Reference, history repositories.SubmissionRepository, screenshotBase string) *Service {
	if ref == nil {
		ref = cache.Noop{}
	}
	return &Service{
		backend:        backend,
		cache:          ref,
		history:        history,
		screenshotBase: screenshotBase,
		sideTimeout:    5 * time.Second,
	}
}

// HistoryEnabled reports whether submissions are being recorded
func (s *Service) HistoryEnabled() bool {
	return s.history != nil
}

// Submissions returns the most recent recorded submissions
func (s *Service) Submissions(ctx context.Context, limit int) ([]*submission.Submission, error) {
	if s.history == nil {
		return nil, &FormError{Field: "history", Message: "submission history is not configured"}
	}
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	subs, err := s.history.FindRecent(ctx, limit)
	if err != nil {
		return nil, &ServiceError{Op: "submissions", Err: err}
	}
	return subs, nil
}

// ServiceError represents a view service error
type ServiceError struct {
	Op  string
	Err error
}

func (e *ServiceError) Error() string {
	return "view " + e.Op + ": " + e.Err.Error()
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

// FormError is a client-side validation failure. No request was sent.
type FormError struct {
	Field   string
	Message string
}

func (e *FormError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
