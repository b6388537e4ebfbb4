// Package fyne provides Fyne UI adapter implementations.
// This package implements the UI layer using the Fyne toolkit.
package fyne

import (
	"log/slog"
	"path/filepath"
	"strings"
	"sync"

	"github.com/tejashwikalptaru/radiodial/internal/domain"
	"github.com/tejashwikalptaru/radiodial/internal/ports"
	"github.com/tejashwikalptaru/radiodial/internal/service"
)

// DialView defines the interface for UI updates around the tuner dial.
// The actual UI implementation (MainWindow) must implement this interface.
type DialView interface {
	// SetReadout shows the committed frequency label and its unit
	SetReadout(label, unit string)

	// SetPreset selects the band in the band switch
	SetPreset(preset domain.Preset)

	// SetScrollEnabled updates the scroll toggle
	SetScrollEnabled(enabled bool)

	// SetThemeName shows the loaded theme, empty for the built-in look
	SetThemeName(name string)

	// ShowError reports a failed user action
	ShowError(title string, err error)
}

// Presenter implements the Presenter pattern (MVP architecture).
// It maps dial events to readout updates and forwards band, scroll and theme
// choices to the services.
//
// Events are published on the UI goroutine by the dial and the services, so
// handlers update the view directly.
type Presenter struct {
	// Dependencies
	logger *slog.Logger

	// Services (injected)
	tuningService     *service.TuningService
	preferenceService *service.PreferenceService
	themeService      *service.ThemeService

	eventBus ports.EventBus
	view     DialView

	subscriptions []domain.SubscriptionID

	mu           sync.Mutex
	shutdownOnce sync.Once
}

// NewPresenter creates a new presenter and syncs the view with the services.
func NewPresenter(
	logger *slog.Logger,
	tuningService *service.TuningService,
	preferenceService *service.PreferenceService,
	themeService *service.ThemeService,
	eventBus ports.EventBus,
	view DialView,
) *Presenter {
	p := &Presenter{
		logger:            logger,
		tuningService:     tuningService,
		preferenceService: preferenceService,
		themeService:      themeService,
		eventBus:          eventBus,
		view:              view,
	}

	p.subscribeToEvents()
	p.syncInitialState()

	return p
}

func (p *Presenter) subscribeToEvents() {
	subscriptions := map[domain.EventType]domain.EventHandler{
		domain.EventFrequencyChanged: p.onFrequencyChanged,
		domain.EventPresetChanged:    p.onPresetChanged,
		domain.EventScrollToggled:    p.onScrollToggled,
		domain.EventThemeApplied:     p.onThemeApplied,
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	for eventType, handler := range subscriptions {
		p.subscriptions = append(p.subscriptions, p.eventBus.Subscribe(eventType, handler))
	}
}

func (p *Presenter) syncInitialState() {
	preset := p.preferenceService.Preset()
	p.view.SetPreset(preset)
	p.view.SetScrollEnabled(p.preferenceService.ScrollEnabled())
	p.view.SetReadout(p.tuningService.Label(), bandUnit(preset))
	p.view.SetThemeName(themeName(p.preferenceService.ThemePath()))
}

// Event handlers

func (p *Presenter) onFrequencyChanged(event domain.Event) {
	e, ok := event.(domain.FrequencyChangedEvent)
	if !ok {
		return
	}
	p.view.SetReadout(e.Label, bandUnit(p.preferenceService.Preset()))
}

func (p *Presenter) onPresetChanged(event domain.Event) {
	e, ok := event.(domain.PresetChangedEvent)
	if !ok {
		return
	}
	p.view.SetPreset(e.Preset)
	// The tuning service has already moved the dial to the band start
	p.view.SetReadout(p.tuningService.Label(), bandUnit(e.Preset))
}

func (p *Presenter) onScrollToggled(event domain.Event) {
	e, ok := event.(domain.ScrollToggledEvent)
	if !ok {
		return
	}
	p.view.SetScrollEnabled(e.Enabled)
}

func (p *Presenter) onThemeApplied(event domain.Event) {
	e, ok := event.(domain.ThemeAppliedEvent)
	if !ok {
		return
	}
	p.view.SetThemeName(themeName(e.Path))
	p.view.SetReadout(p.tuningService.Label(), bandUnit(p.preferenceService.Preset()))
}

// User commands

// OnPresetSelected handles the band switch.
func (p *Presenter) OnPresetSelected(preset domain.Preset) {
	if err := p.preferenceService.SetPreset(preset); err != nil {
		p.logger.Error("failed to switch band", slog.Any("error", err))
		p.view.ShowError("Band Error", err)
	}
}

// OnScrollToggled handles the scroll toggle.
func (p *Presenter) OnScrollToggled(enabled bool) {
	if err := p.preferenceService.SetScrollEnabled(enabled); err != nil {
		p.logger.Error("failed to toggle scrolling", slog.Any("error", err))
		p.view.ShowError("Preference Error", err)
	}
}

// OnReadoutDoubleTapped jumps to the start of the band.
func (p *Presenter) OnReadoutDoubleTapped() {
	p.tuningService.TuneToStart()
	p.view.SetReadout(p.tuningService.Label(), bandUnit(p.preferenceService.Preset()))
}

// OnThemeOpened applies a theme file chosen by the user.
func (p *Presenter) OnThemeOpened(path string) error {
	return p.themeService.ApplyFile(path)
}

// OnResetClicked restores the default band, scrolling and look.
func (p *Presenter) OnResetClicked() error {
	if err := p.preferenceService.ResetToDefaults(); err != nil {
		return err
	}
	p.themeService.Reset()
	p.view.SetThemeName("")
	p.view.SetReadout(p.tuningService.Label(), bandUnit(p.preferenceService.Preset()))
	return nil
}

// Shutdown unsubscribes from the event bus.
// It's safe to call multiple times (idempotent).
func (p *Presenter) Shutdown() {
	p.shutdownOnce.Do(func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		for _, id := range p.subscriptions {
			p.eventBus.Unsubscribe(id)
		}
		p.subscriptions = nil
	})
}

func bandUnit(preset domain.Preset) string {
	if preset == domain.PresetAM {
		return "kHz"
	}
	return "MHz"
}

// themeName turns a theme path into a display name.
func themeName(path string) string {
	if path == "" {
		return ""
	}
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
