package service

import (
	"log/slog"
	"sync"

	"github.com/tejashwikalptaru/radiodial/internal/domain"
	"github.com/tejashwikalptaru/radiodial/internal/ports"
)

// TuningService connects the dial to the rest of the application.
//
// It listens for committed frequencies and republishes them as
// FrequencyChangedEvent, and it applies PresetChangedEvent and
// ScrollToggledEvent to the dial.
//
// Event handlers call into the dial, so events must be published from the UI
// thread (fyne callbacks already are).
type TuningService struct {
	// Dependencies (injected)
	logger *slog.Logger
	tuner  ports.Tuner
	bus    ports.EventBus

	subscriptions []domain.SubscriptionID
	mu            sync.Mutex
}

// NewTuningService creates the service, applies the initial preset and
// scroll flag and starts listening.
func NewTuningService(
	logger *slog.Logger,
	tuner ports.Tuner,
	bus ports.EventBus,
	preset domain.Preset,
	scrollEnabled bool,
) *TuningService {
	s := &TuningService{
		logger: logger,
		tuner:  tuner,
		bus:    bus,
	}

	tuner.ApplyPreset(preset)
	tuner.SetScrollEnabled(scrollEnabled)
	tuner.SetListener(ports.FrequencyListenerFunc(s.onCommit))

	s.subscriptions = append(s.subscriptions,
		s.subscribePresets(),
		bus.Subscribe(domain.EventScrollToggled, s.handleScrollToggled),
	)

	logger.Debug("tuning service initialized",
		slog.String("preset", preset.String()),
		slog.Bool("scroll_enabled", scrollEnabled))

	return s
}

// subscribePresets follows band changes. On a filtering bus, a band the dial
// already shows unmodified is skipped so it is not rebuilt and recentred.
func (s *TuningService) subscribePresets() domain.SubscriptionID {
	fb, ok := s.bus.(ports.FilteringEventBus)
	if !ok {
		return s.bus.Subscribe(domain.EventPresetChanged, s.handlePresetChanged)
	}
	return fb.SubscribeFiltered(domain.EventPresetChanged, s.presetDiffers, s.handlePresetChanged)
}

func (s *TuningService) presetDiffers(e domain.Event) bool {
	ev, ok := e.(domain.PresetChangedEvent)
	if !ok {
		return false
	}
	current, intact := s.tuner.Preset()
	return !intact || current != ev.Preset
}

// onCommit runs for every user-committed frequency.
func (s *TuningService) onCommit(v float64) {
	label := s.tuner.Range().Label(v)
	s.logger.Info("frequency tuned", slog.Float64("frequency", v), slog.String("label", label))
	if !s.bus.HasSubscribers(domain.EventFrequencyChanged) {
		return
	}
	s.bus.Publish(domain.NewFrequencyChangedEvent(v, label))
}

func (s *TuningService) handlePresetChanged(e domain.Event) {
	ev, ok := e.(domain.PresetChangedEvent)
	if !ok {
		return
	}
	s.tuner.ApplyPreset(ev.Preset)
}

func (s *TuningService) handleScrollToggled(e domain.Event) {
	ev, ok := e.(domain.ScrollToggledEvent)
	if !ok {
		return
	}
	s.tuner.SetScrollEnabled(ev.Enabled)
}

// Frequency returns the committed frequency.
func (s *TuningService) Frequency() float64 {
	return s.tuner.Frequency()
}

// Label returns the committed frequency formatted like the ruler labels.
func (s *TuningService) Label() string {
	return s.tuner.Range().Label(s.tuner.Frequency())
}

// Tune moves the dial to v. Like every programmatic change it publishes nothing.
func (s *TuningService) Tune(v float64) {
	s.tuner.SetFrequency(v)
}

// TuneToStart moves the dial to the first tick of the active band.
func (s *TuningService) TuneToStart() {
	s.tuner.SetFrequency(s.tuner.Range().Start)
}

// Shutdown detaches the service from the dial and the bus.
func (s *TuningService) Shutdown() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tuner.SetListener(nil)
	for _, id := range s.subscriptions {
		s.bus.Unsubscribe(id)
	}
	s.subscriptions = nil
	return nil
}
