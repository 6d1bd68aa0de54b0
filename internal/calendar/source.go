package calendar

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/filmtv1308-cmyk/Big-TeleSales/internal/domain"
)

// Source builds resolvers for the active zone kept in settings, falling back to
// a configured zone when none is stored or the stored one no longer loads.
type Source struct {
	settings domain.SettingsRepository
	fallback string
	opts     []Option
}

func NewSource(settings domain.SettingsRepository, fallback string, opts ...Option) *Source {
	return &Source{
		settings: settings,
		fallback: fallback,
		opts:     opts,
	}
}

func (s *Source) Resolver(ctx context.Context) (*Resolver, error) {
	name, err := s.settings.GetTimeZone(ctx)
	switch {
	case errors.Is(err, domain.ErrSettingNotFound):
		return NewResolver(s.fallback, s.opts...)
	case err != nil:
		slog.WarnContext(ctx, "failed to read time zone setting, using fallback",
			slog.String("fallback", s.fallback),
			slog.String("error", err.Error()),
		)
		return NewResolver(s.fallback, s.opts...)
	}

	resolver, err := NewResolver(name, s.opts...)
	if err != nil {
		slog.WarnContext(ctx, "stored time zone is invalid, using fallback",
			slog.String("stored", name),
			slog.String("fallback", s.fallback),
			slog.String("error", err.Error()),
		)
		return NewResolver(s.fallback, s.opts...)
	}
	return resolver, nil
}

// Set validates name and stores it as the active zone.
func (s *Source) Set(ctx context.Context, name string) (*Resolver, error) {
	resolver, err := NewResolver(name, s.opts...)
	if err != nil {
		return nil, err
	}
	if err := s.settings.SetTimeZone(ctx, resolver.Name()); err != nil {
		return nil, fmt.Errorf("store time zone: %w", err)
	}
	return resolver, nil
}
