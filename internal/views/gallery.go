package views

import (
	"context"
	"net/url"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"witnessconsole/internal/api"
	"witnessconsole/internal/notify"
	"witnessconsole/internal/viewstate"
)

// GalleryCard is a gallery item with its screenshot address and
// technology icons resolved
type GalleryCard struct {
	api.GalleryItem
	ScreenshotURL string            `json:"screenshot_url"`
	Badges        []TechnologyBadge `json:"technology_badges"`
}

type GalleryPage struct {
	State        viewstate.Gallery    `json:"state"`
	Query        string               `json:"query"`
	Cards        []GalleryCard        `json:"cards"`
	Pagination   viewstate.Pagination `json:"pagination"`
	Technologies []string             `json:"technologies"`
	LimitOptions []int                `json:"limit_options"`
}

// Gallery loads one page of screenshots for the state encoded in q. A page
// past the end is clamped and refetched so the cards match the page
// reported back.
func (s *Service) Gallery(ctx context.Context, n *notify.Notifier, q url.Values) (*GalleryPage, error) {
	state := viewstate.DecodeGallery(q)

	var (
		resp  *api.GalleryResponse
		pager viewstate.Pagination
		techs []string
		icons map[string]string
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		resp, err = s.backend.Gallery(gctx, state.Query())
		if err != nil {
			return err
		}

		pager = viewstate.NewPagination(state.Page, state.Limit, resp.TotalCount)
		if pager.Page == state.Page {
			return nil
		}
		log.Debug().Int("requested", state.Page).Int("clamped", pager.Page).Msg("gallery page out of range")
		state.Page = pager.Page

		resp, err = s.backend.Gallery(gctx, state.Query())
		if err != nil {
			return err
		}
		pager = viewstate.NewPagination(state.Page, state.Limit, resp.TotalCount)
		return nil
	})
	g.Go(func() error {
		var err error
		if techs, err = s.technologies(gctx); err != nil {
			log.Warn().Err(err).Msg("technology filter options unavailable")
			n.Warning("Technology filter is unavailable")
		}
		return nil
	})
	g.Go(func() error {
		icons = s.icons(gctx, n)
		return nil
	})
	if err := g.Wait(); err != nil {
		n.Error("Failed to load gallery")
		return nil, &ServiceError{Op: "gallery", Err: err}
	}

	cards := make([]GalleryCard, 0, len(resp.Results))
	for _, item := range resp.Results {
		badges := make([]TechnologyBadge, 0, len(item.Technologies))
		for _, t := range item.Technologies {
			badges = append(badges, TechnologyBadge{Name: t, Icon: icons[t]})
		}
		cards = append(cards, GalleryCard{
			GalleryItem:   item,
			ScreenshotURL: api.ScreenshotURL(s.screenshotBase, item.Filename, item.Screenshot),
			Badges:        badges,
		})
	}

	return &GalleryPage{
		State:        state,
		Query:        state.Encode(url.Values{}).Encode(),
		Cards:        cards,
		Pagination:   pager,
		Technologies: techs,
		LimitOptions: viewstate.LimitOptions,
	}, nil
}
