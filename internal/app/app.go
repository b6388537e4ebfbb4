// Package app provides application-level orchestration and dependency injection.
// This package wires together all components and manages the application lifecycle.
package app

import (
	"fmt"
	"io"
	"log/slog"
	"sync"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"github.com/tejashwikalptaru/radiodial/internal/adapter/eventbus"
	"github.com/tejashwikalptaru/radiodial/internal/adapter/repository/memory"
	fyneui "github.com/tejashwikalptaru/radiodial/internal/adapter/ui/fyne"
	"github.com/tejashwikalptaru/radiodial/internal/domain"
	"github.com/tejashwikalptaru/radiodial/internal/logger"
	"github.com/tejashwikalptaru/radiodial/internal/ports"
	"github.com/tejashwikalptaru/radiodial/internal/service"
)

// Application is the root application structure that holds all dependencies.
// It follows the Dependency Injection pattern with constructor-based injection.
//
// The Application struct is responsible for:
// - Creating and wiring all dependencies
// - Managing the application lifecycle (startup, shutdown)
// - Providing a clean entry point for main.go
type Application struct {
	// Core dependencies
	logger  *slog.Logger
	fyneApp fyne.App

	// Infrastructure
	eventBus        ports.EventBus
	preferencesRepo ports.PreferencesRepository

	// Services
	preferenceService *service.PreferenceService
	tuningService     *service.TuningService
	themeService      *service.ThemeService

	// UI
	presenter  *fyneui.Presenter
	mainWindow *fyneui.MainWindow

	shutdownOnce sync.Once
	shutdownErr  error
}

// Config holds application configuration.
type Config struct {
	// AppID is the unique application identifier, also naming the preferences store
	AppID string

	// AppName is the window title
	AppName string

	// WindowWidth and WindowHeight size the main window
	WindowWidth  float32
	WindowHeight float32

	// Preset overrides the saved band when not empty ("fm" or "am")
	Preset string

	// ScrollEnabled overrides the saved scroll flag when not nil
	ScrollEnabled *bool

	// ThemePath loads a theme file instead of the saved one when not empty
	ThemePath string

	// LogLevel controls logging verbosity
	LogLevel slog.Level

	// LogFormat is "text" or "json"
	LogFormat string

	// LogOutput defaults to os.Stderr
	LogOutput io.Writer

	// TestFyneApp allows injecting a test Fyne app for testing (nil for production)
	TestFyneApp fyne.App
}

// DefaultConfig returns the default application configuration.
func DefaultConfig() Config {
	loggerCfg := logger.DefaultConfig()
	return Config{
		AppID:        "com.radiodial.app",
		AppName:      "Radio Dial",
		WindowWidth:  480,
		WindowHeight: 180,
		LogLevel:     loggerCfg.Level,
		LogFormat:    loggerCfg.Format,
	}
}

// NewApplication creates a new application with all dependencies wired.
// This is the main dependency injection function.
func NewApplication(config Config) (*Application, error) {
	app := &Application{}

	// Step 1: Create Fyne application
	if config.TestFyneApp != nil {
		app.fyneApp = config.TestFyneApp
	} else {
		app.fyneApp = fyneapp.NewWithID(config.AppID)
	}

	// Step 2: Create logger
	app.logger = logger.NewLogger(logger.Config{
		Level:  config.LogLevel,
		Format: config.LogFormat,
		Output: config.LogOutput,
	})
	app.logger.Info("initializing application",
		slog.String("app_id", config.AppID),
		slog.String("app_name", config.AppName))

	// Step 3: Create an event bus
	app.eventBus = eventbus.NewSyncEventBus(app.logger.With(slog.String("component", "eventbus")))
	app.eventBus.SubscribeAll(app.traceEvent)

	// Step 4: Create repositories
	app.preferencesRepo = memory.NewPreferencesRepository(app.fyneApp.Preferences())

	// Step 5: Create the preference service and apply command line overrides
	app.preferenceService = service.NewPreferenceService(
		app.logger.With(slog.String("service", "preference")),
		app.preferencesRepo,
		app.eventBus,
	)
	if err := app.applyOverrides(config); err != nil {
		return nil, err
	}

	// Step 6: Create UI; the dial widget lives in the main window
	app.mainWindow = fyneui.NewMainWindow(app.fyneApp, app.logger, fyneui.WindowConfig{
		Title:  config.AppName,
		Width:  config.WindowWidth,
		Height: config.WindowHeight,
	})

	// Step 7: Create dial services
	dial := app.mainWindow.Tuner().Dial()
	app.tuningService = service.NewTuningService(
		app.logger.With(slog.String("service", "tuning")),
		dial,
		app.eventBus,
		app.preferenceService.Preset(),
		app.preferenceService.ScrollEnabled(),
	)
	app.themeService = service.NewThemeService(
		app.logger.With(slog.String("service", "theme")),
		dial,
		app.preferenceService,
		app.eventBus,
	)

	// Step 8: Restore or load the theme
	if config.ThemePath != "" {
		if err := app.themeService.ApplyFile(config.ThemePath); err != nil {
			_ = app.Shutdown()
			return nil, fmt.Errorf("failed to load theme: %w", err)
		}
	} else {
		app.themeService.RestoreSaved()
	}

	// Step 9: Create Presenter and wire with UI
	app.presenter = fyneui.NewPresenter(
		app.logger.With(slog.String("component", "presenter")),
		app.tuningService,
		app.preferenceService,
		app.themeService,
		app.eventBus,
		app.mainWindow,
	)
	app.mainWindow.SetPresenter(app.presenter)

	return app, nil
}

// traceEvent logs every event with its payload at debug level.
func (a *Application) traceEvent(e domain.Event) {
	a.logger.Debug("event", slog.String("type", string(e.Type())), slog.Any("payload", e))
}

// applyOverrides persists command line choices like a selection in the UI.
func (a *Application) applyOverrides(config Config) error {
	if config.Preset != "" {
		preset, err := domain.ParsePreset(config.Preset)
		if err != nil {
			return fmt.Errorf("invalid preset: %w", err)
		}
		if err := a.preferenceService.SetPreset(preset); err != nil {
			return err
		}
	}
	if config.ScrollEnabled != nil {
		if err := a.preferenceService.SetScrollEnabled(*config.ScrollEnabled); err != nil {
			return err
		}
	}
	return nil
}

// Run starts the application.
// This is called from main.go after the application is created.
func (a *Application) Run() error {
	a.logger.Info("application started", slog.String("version", GetVersionInfo().FullString()))

	// Show and run UI (blocks until the window is closed)
	a.mainWindow.ShowAndRun()
	return nil
}

// Shutdown gracefully shuts down the application.
// It's safe to call multiple times (idempotent).
func (a *Application) Shutdown() error {
	a.shutdownOnce.Do(func() {
		a.logger.Info("shutting down application")

		if a.presenter != nil {
			a.presenter.Shutdown()
		}

		// Shutdown services (in reverse order of creation)
		if a.tuningService != nil {
			if err := a.tuningService.Shutdown(); err != nil {
				a.logger.Warn("failed to shutdown tuning service", slog.Any("error", err))
			}
		}

		if a.preferenceService != nil {
			if err := a.preferenceService.Shutdown(); err != nil {
				a.logger.Warn("failed to shutdown preference service", slog.Any("error", err))
			}
		}

		if err := a.eventBus.Close(); err != nil {
			a.shutdownErr = fmt.Errorf("failed to close event bus: %w", err)
		}

		a.logger.Info("application shutdown complete")
	})
	return a.shutdownErr
}

// GetServices returns the services for testing.
func (a *Application) GetServices() (*service.TuningService, *service.PreferenceService, *service.ThemeService) {
	return a.tuningService, a.preferenceService, a.themeService
}

// GetEventBus returns the event bus for testing.
func (a *Application) GetEventBus() ports.EventBus {
	return a.eventBus
}

// GetFyneApp returns the Fyne application.
func (a *Application) GetFyneApp() fyne.App {
	return a.fyneApp
}

// GetMainWindow returns the main window.
func (a *Application) GetMainWindow() *fyneui.MainWindow {
	return a.mainWindow
}
