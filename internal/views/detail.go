package views

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"witnessconsole/internal/api"
	"witnessconsole/internal/notify"
)

// TechnologyBadge pairs a detected technology with its icon, if known
type TechnologyBadge struct {
	Name string `json:"name"`
	Icon string `json:"icon,omitempty"`
}

type DetailPage struct {
	Result        *api.Detail       `json:"result"`
	ScreenshotURL string            `json:"screenshot_url"`
	Technologies  []TechnologyBadge `json:"technologies"`
}

// Detail fetches a result and the icon table side by side. A failed icon
// lookup leaves the badges without icons.
func (s *Service) Detail(ctx context.Context, n *notify.Notifier, id string) (*DetailPage, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, &FormError{Field: "id", Message: "result id is required"}
	}

	var (
		result *api.Detail
		icons  map[string]string
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		result, err = s.backend.Detail(gctx, id)
		return err
	})
	g.Go(func() error {
		icons = s.icons(gctx, n)
		return nil
	})
	if err := g.Wait(); err != nil {
		if api.IsNotFound(err) {
			n.Error(fmt.Sprintf("Result %s not found", id))
		} else {
			n.Error("Failed to load result")
		}
		return nil, &ServiceError{Op: "detail", Err: err}
	}

	badges := make([]TechnologyBadge, 0, len(result.Technologies))
	for _, t := range result.Technologies {
		badges = append(badges, TechnologyBadge{Name: t.Value, Icon: icons[t.Value]})
	}

	return &DetailPage{
		Result:        result,
		ScreenshotURL: api.ScreenshotURL(s.screenshotBase, result.Filename, result.Screenshot),
		Technologies:  badges,
	}, nil
}

// Delete removes a result by its id
func (s *Service) Delete(ctx context.Context, n *notify.Notifier, id string) error {
	num, err := strconv.Atoi(strings.TrimSpace(id))
	if err != nil || num <= 0 {
		return &FormError{Field: "id", Message: "result id must be a positive number"}
	}

	if _, err := s.backend.Delete(ctx, num); err != nil {
		n.Error("Failed to delete result")
		return &ServiceError{Op: "delete", Err: err}
	}
	n.Success(fmt.Sprintf("Result %d deleted", num))
	return nil
}
