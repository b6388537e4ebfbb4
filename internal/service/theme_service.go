package service

import (
	"log/slog"

	"github.com/tejashwikalptaru/radiodial/internal/config"
	"github.com/tejashwikalptaru/radiodial/internal/dial"
	"github.com/tejashwikalptaru/radiodial/internal/domain"
	"github.com/tejashwikalptaru/radiodial/internal/ports"
)

// ThemeService applies TOML theme files to the dial.
//
// The band and scroll flag of a theme go through the preference service so
// they are persisted like a manual selection; the rest is applied directly.
type ThemeService struct {
	logger *slog.Logger
	dial   *dial.Dial
	prefs  *PreferenceService
	bus    ports.EventBus
}

// NewThemeService creates a new theme service.
func NewThemeService(logger *slog.Logger, d *dial.Dial, prefs *PreferenceService, bus ports.EventBus) *ThemeService {
	return &ThemeService{
		logger: logger,
		dial:   d,
		prefs:  prefs,
		bus:    bus,
	}
}

// ApplyFile loads, applies and remembers the theme at path.
// A theme that fails to load or validate leaves the dial untouched.
func (s *ThemeService) ApplyFile(path string) error {
	cfg, err := config.Load(path)
	if err != nil {
		s.logger.Warn("theme rejected", slog.String("path", path), slog.Any("error", err))
		return domain.NewServiceError("ThemeService", "ApplyFile", "failed to load theme", err)
	}

	if err := s.apply(cfg); err != nil {
		return domain.NewServiceError("ThemeService", "ApplyFile", "failed to apply theme", err)
	}

	if err := s.prefs.SetThemePath(path); err != nil {
		return err
	}

	s.logger.Info("theme applied", slog.String("path", path))
	s.bus.Publish(domain.NewThemeAppliedEvent(path))
	return nil
}

// RestoreSaved re-applies the last theme file, if any.
// A missing or broken file is forgotten.
func (s *ThemeService) RestoreSaved() {
	path := s.prefs.ThemePath()
	if path == "" {
		return
	}
	if err := s.ApplyFile(path); err != nil {
		s.logger.Warn("forgetting saved theme", slog.String("path", path), slog.Any("error", err))
		if err := s.prefs.SetThemePath(""); err != nil {
			s.logger.Warn("failed to forget theme", slog.Any("error", err))
		}
	}
}

// Reset drops any theme: the built-in style and the saved band's range.
func (s *ThemeService) Reset() {
	s.dial.SetStyle(dial.DefaultStyle())
	s.dial.ApplyPreset(s.prefs.Preset())
	if err := s.prefs.SetThemePath(""); err != nil {
		s.logger.Warn("failed to forget theme", slog.Any("error", err))
	}
	s.logger.Info("theme reset")
}

// apply saves the band and scroll flag first so the view follows them, then
// pushes the whole theme. The preset is re-applied even when the saved one
// already matches, since an earlier theme may have left a custom range.
func (s *ThemeService) apply(cfg config.DialConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	if cfg.Preset != "" {
		preset, _ := domain.ParsePreset(cfg.Preset)
		if err := s.prefs.SetPreset(preset); err != nil {
			return err
		}
	}
	if cfg.ScrollEnabled != nil {
		if err := s.prefs.SetScrollEnabled(*cfg.ScrollEnabled); err != nil {
			return err
		}
	}

	return cfg.Apply(s.dial)
}
