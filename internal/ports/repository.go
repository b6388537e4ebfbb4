// Package ports define repository interfaces for data persistence abstraction.
// These interfaces enable the repository pattern and allow swapping persistence mechanisms.
package ports

import (
	"github.com/tejashwikalptaru/radiodial/internal/domain"
)

// PreferencesRepository handles the persistence of dial preferences.
// This abstracts the Fyne preferences storage.
//
// The selected frequency is deliberately not part of it.
//
// Thread-safety: Implementations must be thread-safe.
type PreferencesRepository interface {
	// SavePreset persists the selected band.
	//
	// Returns an error if saving fails.
	SavePreset(preset domain.Preset) error

	// LoadPreset retrieves the saved band.
	// If nothing was saved, returns domain.PresetFM as default.
	//
	// Returns the preset or an error if the stored value is unreadable.
	LoadPreset() (domain.Preset, error)

	// SaveScrollEnabled persists whether the ruler accepts drags.
	SaveScrollEnabled(enabled bool) error

	// LoadScrollEnabled retrieves the saved scroll flag.
	// If nothing was saved, returns true as default.
	LoadScrollEnabled() (bool, error)

	// SaveThemePath persists the last applied theme file.
	SaveThemePath(path string) error

	// LoadThemePath retrieves the last applied theme file ("" if none).
	LoadThemePath() (string, error)

	// Clear removes all saved preferences.
	//
	// Returns an error if clearing fails.
	Clear() error
}
