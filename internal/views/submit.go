package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"witnessconsole/internal/api"
	"witnessconsole/internal/domain/submission"
	"witnessconsole/internal/notify"
)

// Defaults applied to unset submit options
const (
	DefaultFormat    = "jpeg"
	DefaultTimeout   = 60
	DefaultDelay     = 3
	DefaultWindowX   = 1920
	DefaultWindowY   = 1080
	DefaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/127.0.0.0 Safari/537.36"
)

var formats = map[string]bool{"jpeg": true, "png": true}

// SubmitForm is what the submit screen posts. URLs may hold one url per
// line; List is appended as-is.
type SubmitForm struct {
	URLs    string            `json:"urls"`
	List    []string          `json:"list"`
	Single  bool              `json:"single"`
	Options api.SubmitOptions `json:"options"`
}

// Validate normalizes the form and returns the urls to probe
func (f *SubmitForm) Validate() ([]string, error) {
	urls := ParseURLs(f.URLs, f.List...)
	if len(urls) == 0 {
		return nil, &FormError{Field: "urls", Message: "at least one url is required"}
	}
	if f.Single && len(urls) != 1 {
		return nil, &FormError{Field: "urls", Message: "single mode takes exactly one url"}
	}

	opts := &f.Options
	opts.Format = strings.ToLower(strings.TrimSpace(opts.Format))
	if opts.Format == "" {
		opts.Format = DefaultFormat
	}
	if !formats[opts.Format] {
		return nil, &FormError{Field: "format", Message: fmt.Sprintf("unsupported format %q, use jpeg or png", opts.Format)}
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.Delay < 0 {
		return nil, &FormError{Field: "delay", Message: "delay cannot be negative"}
	}
	if opts.Delay == 0 {
		opts.Delay = DefaultDelay
	}
	if opts.X <= 0 {
		opts.X = DefaultWindowX
	}
	if opts.Y <= 0 {
		opts.Y = DefaultWindowY
	}
	opts.UserAgent = strings.TrimSpace(opts.UserAgent)
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUserAgent
	}
	return urls, nil
}

// ParseURLs splits text on newlines, appends extra, trims and drops empties
func ParseURLs(text string, extra ...string) []string {
	lines := strings.Split(text, "\n")
	lines = append(lines, extra...)

	out := make([]string, 0, len(lines))
	for _, l := range lines {
		if l = strings.TrimSpace(l); l != "" {
			out = append(out, l)
		}
	}
	return out
}

type SubmitResult struct {
	Submission *submission.Submission `json:"submission"`
	Message    string                 `json:"message,omitempty"`
	Result     *api.Detail            `json:"result,omitempty"`
}

// Submit validates the form and hands the urls to the backend. Nothing is
// sent when validation fails.
func (s *Service) Submit(ctx context.Context, n *notify.Notifier, form SubmitForm) (*SubmitResult, error) {
	urls, err := form.Validate()
	if err != nil {
		n.Warning(err.Error())
		return nil, err
	}

	mode := submission.ModeBatch
	if form.Single {
		mode = submission.ModeSingle
	}
	sub, err := submission.NewSubmission(urls, mode, form.Options)
	if err != nil {
		return nil, &FormError{Field: "urls", Message: err.Error()}
	}

	out := &SubmitResult{Submission: sub}
	opts := form.Options
	if mode == submission.ModeSingle {
		out.Result, err = s.backend.SubmitSingle(ctx, api.SubmitSingleRequest{URL: urls[0], Options: &opts})
	} else {
		out.Message, err = s.backend.Submit(ctx, api.SubmitRequest{URLs: urls, Options: &opts})
	}

	if err != nil {
		sub.Fail(err.Error())
		s.record(ctx, sub, n)
		n.Error("Failed to submit urls")
		return nil, &ServiceError{Op: "submit", Err: err}
	}

	s.record(ctx, sub, n)
	if mode == submission.ModeSingle {
		n.Success(fmt.Sprintf("Probed %s", urls[0]))
	} else {
		n.Success(fmt.Sprintf("Submitted %d url(s) for probing", len(urls)))
	}
	log.Info().
		Str("submission_id", sub.ID.String()).
		Str("mode", string(mode)).
		Int("urls", len(urls)).
		Msg("submission accepted")
	return out, nil
}

// record writes sub to history. A failed write only warns; the backend
// already has the job.
func (s *Service) record(ctx context.Context, sub *submission.Submission, n *notify.Notifier) {
	if s.history == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.sideTimeout)
	defer cancel()

	if err := s.history.Save(ctx, sub); err != nil {
		log.Warn().Err(err).Str("submission_id", sub.ID.String()).Msg("failed to record submission")
		n.Warning("Submission was sent but not recorded in history")
	}
}
