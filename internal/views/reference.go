package views

import (
	"context"

	"github.com/rs/zerolog/log"

	"witnessconsole/internal/notify"
)

const (
	technologiesKey = "technologies"
	iconsKey        = "wappalyzer"
)

// technologies reads through the reference cache
func (s *Service) technologies(ctx context.Context) ([]string, error) {
	var techs []string
	if hit, err := s.cache.Load(ctx, technologiesKey, &techs); err != nil {
		log.Warn().Err(err).Str("key", technologiesKey).Msg("cache read failed")
	} else if hit {
		return techs, nil
	}

	techs, err := s.backend.Technologies(ctx)
	if err != nil {
		return nil, err
	}
	s.remember(technologiesKey, techs)
	return techs, nil
}

// icons never fails the caller: a lookup error only yields a warning
func (s *Service) icons(ctx context.Context, n *notify.Notifier) map[string]string {
	var icons map[string]string
	if hit, err := s.cache.Load(ctx, iconsKey, &icons); err == nil && hit {
		return icons
	}

	icons, err := s.backend.Wappalyzer(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("technology icon lookup failed")
		n.Warning("Technology icons are unavailable")
		return map[string]string{}
	}
	s.remember(iconsKey, icons)
	return icons
}

// remember stores v without holding up the response
func (s *Service) remember(key string, v any) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.sideTimeout)
		defer cancel()

		if err := s.cache.Store(ctx, key, v); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("cache write failed")
		}
	}()
}
