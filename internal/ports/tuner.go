package ports

import (
	"github.com/tejashwikalptaru/radiodial/internal/domain"
)

// Tuner is the part of the dial the tuning service drives.
// *dial.Dial implements it.
//
// Thread-safety: All methods must be called from the main UI thread.
type Tuner interface {
	// Frequency returns the committed frequency.
	Frequency() float64

	// SetFrequency moves the dial without notifying the listener.
	SetFrequency(v float64)

	// Range returns the active band.
	Range() domain.FrequencyRange

	// ApplyPreset switches band and recenters on its start.
	ApplyPreset(p domain.Preset)

	// Preset returns the last applied band and whether the range still matches it.
	Preset() (domain.Preset, bool)

	// SetScrollEnabled toggles user scrolling.
	SetScrollEnabled(enabled bool)

	// SetListener replaces the commit listener; nil unsubscribes.
	SetListener(l FrequencyListener)
}
