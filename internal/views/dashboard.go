package views

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"witnessconsole/internal/api"
	"witnessconsole/internal/notify"
)

// ChartPoint is one bar of the response code chart
type ChartPoint struct {
	Code  int   `json:"code"`
	Count int64 `json:"count"`
}

type Dashboard struct {
	Statistics   *api.Statistics `json:"statistics"`
	Technologies []string        `json:"technologies"`
	Chart        []ChartPoint    `json:"chart"`
}

// Dashboard fetches statistics and technologies concurrently
func (s *Service) Dashboard(ctx context.Context, n *notify.Notifier) (*Dashboard, error) {
	var (
		stats *api.Statistics
		techs []string
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		stats, err = s.backend.Statistics(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		techs, err = s.technologies(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		n.Error("Failed to load dashboard")
		return nil, &ServiceError{Op: "dashboard", Err: err}
	}

	return &Dashboard{
		Statistics:   stats,
		Technologies: techs,
		Chart:        chartData(stats.ResponseCodes),
	}, nil
}

func chartData(stats []api.ResponseCodeStat) []ChartPoint {
	points := make([]ChartPoint, 0, len(stats))
	for _, st := range stats {
		points = append(points, ChartPoint{Code: st.Code, Count: st.Count})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Code < points[j].Code })
	return points
}
