// Package memory provides repository implementations backed by Fyne preferences.
package memory

import (
	"sync"

	"fyne.io/fyne/v2"
	"github.com/tejashwikalptaru/radiodial/internal/domain"
	"github.com/tejashwikalptaru/radiodial/internal/ports"
)

const (
	keyPreset        = "preferences.preset"
	keyScrollEnabled = "preferences.scroll_enabled"
	keyThemePath     = "preferences.theme_path"
)

// PreferencesRepository implements ports.PreferencesRepository using Fyne preferences.
//
// Fyne stores them in the OS-specific app data directory, e.g.
// ~/.config/fyne/com.radiodial.app/preferences.json on Linux.
//
// Thread-safe: All operations protected by sync.RWMutex.
type PreferencesRepository struct {
	prefs fyne.Preferences
	mu    sync.RWMutex
}

// NewPreferencesRepository creates a new preferences repository.
// The preferences parameter should be obtained from fyne.CurrentApp().Preferences().
func NewPreferencesRepository(prefs fyne.Preferences) *PreferencesRepository {
	return &PreferencesRepository{
		prefs: prefs,
	}
}

// SavePreset persists the selected band by name.
func (r *PreferencesRepository) SavePreset(preset domain.Preset) error {
	if preset != domain.PresetFM && preset != domain.PresetAM {
		return domain.NewRepositoryError("save", "preferences", "unknown preset", domain.ErrUnknownPreset)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.prefs.SetString(keyPreset, preset.String())
	return nil
}

// LoadPreset retrieves the saved band, FM when nothing was saved.
func (r *PreferencesRepository) LoadPreset() (domain.Preset, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	name := r.prefs.StringWithFallback(keyPreset, domain.PresetFM.String())
	preset, err := domain.ParsePreset(name)
	if err != nil {
		return domain.PresetFM, domain.NewRepositoryError("load", "preferences", "stored preset is unreadable", err)
	}
	return preset, nil
}

// SaveScrollEnabled persists the scroll flag.
func (r *PreferencesRepository) SaveScrollEnabled(enabled bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.prefs.SetBool(keyScrollEnabled, enabled)
	return nil
}

// LoadScrollEnabled retrieves the scroll flag, true when nothing was saved.
func (r *PreferencesRepository) LoadScrollEnabled() (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.prefs.BoolWithFallback(keyScrollEnabled, true), nil
}

// SaveThemePath persists the last applied theme file.
func (r *PreferencesRepository) SaveThemePath(path string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.prefs.SetString(keyThemePath, path)
	return nil
}

// LoadThemePath retrieves the last applied theme file.
func (r *PreferencesRepository) LoadThemePath() (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.prefs.String(keyThemePath), nil
}

// Clear removes all saved preferences.
func (r *PreferencesRepository) Clear() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.prefs.RemoveValue(keyPreset)
	r.prefs.RemoveValue(keyScrollEnabled)
	r.prefs.RemoveValue(keyThemePath)

	return nil
}

// Verify interface implementation
var _ ports.PreferencesRepository = (*PreferencesRepository)(nil)
