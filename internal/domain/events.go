// Package domain defines events for the event-driven architecture.
// Events let the dial, the preference service and the view stay decoupled.
package domain

import (
	"time"
)

// Event is the base interface for all events in the system.
// All events must implement this interface to be published via the event bus.
type Event interface {
	// Type returns the event type identifier
	Type() EventType

	// Timestamp returns when the event occurred
	Timestamp() time.Time
}

// EventType is a string identifier for different event types.
type EventType string

// Event type constants define all possible events in the system.
const (
	// Tuning events
	EventFrequencyChanged EventType = "frequency.changed"

	// Configuration events
	EventPresetChanged EventType = "preset.changed"
	EventScrollToggled EventType = "scroll.toggled"
	EventThemeApplied  EventType = "theme.applied"
)

// EventHandler is a function that handles events.
type EventHandler func(event Event)

// SubscriptionID uniquely identifies an event subscription.
type SubscriptionID string

// baseEvent provides common event functionality.
// All concrete events should embed this struct.
type baseEvent struct {
	timestamp time.Time
}

// Timestamp returns when the event occurred.
func (e baseEvent) Timestamp() time.Time {
	return e.timestamp
}

// newBaseEvent creates a new base event with the current timestamp.
func newBaseEvent() baseEvent {
	return baseEvent{timestamp: time.Now()}
}

// FrequencyChangedEvent is published when the user commits a new frequency.
// Programmatic changes never produce this event.
type FrequencyChangedEvent struct {
	baseEvent
	Frequency float64
	Label     string
}

// Type returns the event type.
func (e FrequencyChangedEvent) Type() EventType {
	return EventFrequencyChanged
}

// NewFrequencyChangedEvent creates a new FrequencyChangedEvent.
func NewFrequencyChangedEvent(frequency float64, label string) FrequencyChangedEvent {
	return FrequencyChangedEvent{
		baseEvent: newBaseEvent(),
		Frequency: frequency,
		Label:     label,
	}
}

// PresetChangedEvent is published when the selected band changes.
type PresetChangedEvent struct {
	baseEvent
	Preset Preset
}

// Type returns the event type.
func (e PresetChangedEvent) Type() EventType {
	return EventPresetChanged
}

// NewPresetChangedEvent creates a new PresetChangedEvent.
func NewPresetChangedEvent(preset Preset) PresetChangedEvent {
	return PresetChangedEvent{
		baseEvent: newBaseEvent(),
		Preset:    preset,
	}
}

// ScrollToggledEvent is published when user scrolling is enabled or disabled.
type ScrollToggledEvent struct {
	baseEvent
	Enabled bool
}

// Type returns the event type.
func (e ScrollToggledEvent) Type() EventType {
	return EventScrollToggled
}

// NewScrollToggledEvent creates a new ScrollToggledEvent.
func NewScrollToggledEvent(enabled bool) ScrollToggledEvent {
	return ScrollToggledEvent{
		baseEvent: newBaseEvent(),
		Enabled:   enabled,
	}
}

// ThemeAppliedEvent is published after a dial theme file was applied.
type ThemeAppliedEvent struct {
	baseEvent
	Path string
}

// Type returns the event type.
func (e ThemeAppliedEvent) Type() EventType {
	return EventThemeApplied
}

// NewThemeAppliedEvent creates a new ThemeAppliedEvent.
func NewThemeAppliedEvent(path string) ThemeAppliedEvent {
	return ThemeAppliedEvent{
		baseEvent: newBaseEvent(),
		Path:      path,
	}
}
