// Package service provides the application logic around the dial.
package service

import (
	"log/slog"
	"sync"

	"github.com/tejashwikalptaru/radiodial/internal/domain"
	"github.com/tejashwikalptaru/radiodial/internal/ports"
)

// PreferenceService manages the persisted dial settings: the band, the
// scroll flag and the last applied theme file.
// All operations are thread-safe via sync.RWMutex.
type PreferenceService struct {
	// Dependencies (injected)
	logger     *slog.Logger
	repository ports.PreferencesRepository
	bus        ports.EventBus

	// Cached preferences
	preset        domain.Preset
	scrollEnabled bool
	themePath     string

	mu sync.RWMutex
}

// NewPreferenceService creates a new preference service and loads the saved values.
func NewPreferenceService(
	logger *slog.Logger,
	repository ports.PreferencesRepository,
	bus ports.EventBus,
) *PreferenceService {
	service := &PreferenceService{
		logger:        logger,
		repository:    repository,
		bus:           bus,
		preset:        domain.PresetFM,
		scrollEnabled: true,
	}

	service.loadPreferences()

	logger.Debug("preference service initialized",
		slog.String("preset", service.preset.String()),
		slog.Bool("scroll_enabled", service.scrollEnabled))

	return service
}

// loadPreferences fills the cache. Unreadable values keep their defaults.
func (s *PreferenceService) loadPreferences() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if preset, err := s.repository.LoadPreset(); err == nil {
		s.preset = preset
	} else {
		s.logger.Warn("failed to load preset, using default", slog.Any("error", err))
	}

	if enabled, err := s.repository.LoadScrollEnabled(); err == nil {
		s.scrollEnabled = enabled
	}

	if path, err := s.repository.LoadThemePath(); err == nil {
		s.themePath = path
	}
}

// Preset returns the saved band.
func (s *PreferenceService) Preset() domain.Preset {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.preset
}

// SetPreset saves the band and publishes PresetChangedEvent.
// Selecting the band that is already saved publishes nothing.
func (s *PreferenceService) SetPreset(preset domain.Preset) error {
	if preset != domain.PresetFM && preset != domain.PresetAM {
		return domain.NewValidationError("preset", preset, "must be fm or am", domain.ErrUnknownPreset)
	}

	s.mu.Lock()
	changed := s.preset != preset
	s.preset = preset
	s.mu.Unlock()

	if err := s.repository.SavePreset(preset); err != nil {
		return domain.NewServiceError("PreferenceService", "SetPreset", "failed to save preset", err)
	}

	if changed {
		s.bus.Publish(domain.NewPresetChangedEvent(preset))
	}
	return nil
}

// ScrollEnabled returns the saved scroll flag.
func (s *PreferenceService) ScrollEnabled() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.scrollEnabled
}

// SetScrollEnabled saves the scroll flag and publishes ScrollToggledEvent.
func (s *PreferenceService) SetScrollEnabled(enabled bool) error {
	s.mu.Lock()
	changed := s.scrollEnabled != enabled
	s.scrollEnabled = enabled
	s.mu.Unlock()

	if err := s.repository.SaveScrollEnabled(enabled); err != nil {
		return domain.NewServiceError("PreferenceService", "SetScrollEnabled", "failed to save scroll flag", err)
	}

	if changed {
		s.bus.Publish(domain.NewScrollToggledEvent(enabled))
	}
	return nil
}

// ThemePath returns the last applied theme file, "" if none.
func (s *PreferenceService) ThemePath() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.themePath
}

// SetThemePath saves the last applied theme file.
func (s *PreferenceService) SetThemePath(path string) error {
	s.mu.Lock()
	s.themePath = path
	s.mu.Unlock()

	if err := s.repository.SaveThemePath(path); err != nil {
		return domain.NewServiceError("PreferenceService", "SetThemePath", "failed to save theme path", err)
	}
	return nil
}

// ResetToDefaults clears the stored preferences and restores FM with scrolling on.
func (s *PreferenceService) ResetToDefaults() error {
	if err := s.repository.Clear(); err != nil {
		return domain.NewServiceError("PreferenceService", "ResetToDefaults", "failed to clear preferences", err)
	}

	s.mu.Lock()
	presetChanged := s.preset != domain.PresetFM
	scrollChanged := !s.scrollEnabled
	s.preset = domain.PresetFM
	s.scrollEnabled = true
	s.themePath = ""
	s.mu.Unlock()

	if presetChanged {
		s.bus.Publish(domain.NewPresetChangedEvent(domain.PresetFM))
	}
	if scrollChanged {
		s.bus.Publish(domain.NewScrollToggledEvent(true))
	}
	return nil
}

// Shutdown cleans up resources.
func (s *PreferenceService) Shutdown() error {
	return nil
}
