package fyne

import (
	"fmt"
	"log/slog"
	"sync"

	fyneapp "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
	"github.com/tejashwikalptaru/radiodial/internal/adapter/ui/fyne/widgets"
	"github.com/tejashwikalptaru/radiodial/internal/domain"
	"github.com/tejashwikalptaru/radiodial/res"
)

const (
	bandFM = "FM"
	bandAM = "AM"
)

// WindowConfig holds the main window properties.
type WindowConfig struct {
	Title  string
	Width  float32
	Height float32
}

// MainWindow is the main UI window implementing the DialView interface.
//
// The MainWindow follows the MVP pattern:
// - It's a "dumb view" that just displays data
// - All business logic is in the Presenter
// - User interactions are forwarded to the Presenter
type MainWindow struct {
	app    fyneapp.App
	window fyneapp.Window
	logger *slog.Logger

	// UI components
	tuner       *widgets.TunerDial
	readout     *widgets.ReadoutLabel
	unit        *widget.Label
	themeLabel  *widget.Label
	bandSwitch  *widget.RadioGroup
	scrollCheck *widget.Check

	// syncing is set while the presenter updates inputs, whose change
	// callbacks must not be forwarded back.
	syncing bool

	// Lifecycle management
	closeOnce sync.Once

	// Presenter (set after construction)
	presenter *Presenter
}

// NewMainWindow creates a new main window with its tuner dial.
func NewMainWindow(app fyneapp.App, logger *slog.Logger, cfg WindowConfig) *MainWindow {
	w := &MainWindow{
		app:    app,
		logger: logger,
	}

	w.window = app.NewWindow(cfg.Title)
	w.buildUI(logger)
	w.window.Resize(fyneapp.NewSize(cfg.Width, cfg.Height))

	return w
}

// Tuner returns the dial widget so services can drive it.
func (w *MainWindow) Tuner() *widgets.TunerDial {
	return w.tuner
}

// SetPresenter connects the presenter to this view.
// This must be called before showing the window.
func (w *MainWindow) SetPresenter(presenter *Presenter) {
	w.presenter = presenter
	w.wirePresenterHandlers()
	w.addShortcuts()
}

func (w *MainWindow) buildUI(logger *slog.Logger) {
	w.tuner = widgets.NewTunerDial(logger.With(slog.String("component", "dial")))

	w.readout = widgets.NewReadoutLabel(func() {
		if w.presenter != nil {
			w.presenter.OnReadoutDoubleTapped()
		}
	})
	w.readout.SetSecondaryTapped(w.showReadoutMenu)
	w.unit = widget.NewLabel("")
	w.themeLabel = widget.NewLabel("")
	w.themeLabel.TextStyle = fyneapp.TextStyle{Italic: true}
	w.themeLabel.Truncation = fyneapp.TextTruncateEllipsis

	w.bandSwitch = widget.NewRadioGroup([]string{bandFM, bandAM}, nil)
	w.bandSwitch.Horizontal = true
	w.bandSwitch.Required = true
	w.scrollCheck = widget.NewCheck("Scroll", nil)

	header := container.NewBorder(nil, nil, container.NewHBox(w.readout, w.unit), nil, w.themeLabel)
	footer := container.NewHBox(w.bandSwitch, layout.NewSpacer(), w.scrollCheck)
	w.window.SetContent(container.NewPadded(container.NewBorder(header, footer, nil, nil, w.tuner)))

	w.window.SetMainMenu(fyneapp.NewMainMenu(w.createMenu()...))
}

func (w *MainWindow) wirePresenterHandlers() {
	if w.presenter == nil {
		return
	}

	w.bandSwitch.OnChanged = func(selected string) {
		if w.syncing || selected == "" {
			return
		}
		w.presenter.OnPresetSelected(presetForBand(selected))
	}

	w.scrollCheck.OnChanged = func(checked bool) {
		if w.syncing {
			return
		}
		w.presenter.OnScrollToggled(checked)
	}
}

func (w *MainWindow) createMenu() []*fyneapp.Menu {
	loadTheme := fyneapp.NewMenuItem("Load Theme…", func() {
		w.handleLoadTheme()
	})

	reset := fyneapp.NewMenuItem("Reset to Defaults", func() {
		if w.presenter == nil {
			return
		}
		if err := w.presenter.OnResetClicked(); err != nil {
			w.ShowError("Reset Error", err)
		}
	})

	exitMenu := fyneapp.NewMenuItem("Exit", func() {
		w.window.Close()
	})

	about := fyneapp.NewMenuItem("About", func() {
		w.showAbout()
	})

	separator := fyneapp.NewMenuItemSeparator()
	return []*fyneapp.Menu{
		fyneapp.NewMenu("File", loadTheme, reset, separator, exitMenu),
		fyneapp.NewMenu("Help", about),
	}
}

func (w *MainWindow) handleLoadTheme() {
	if w.presenter == nil {
		return
	}

	NewThemeDialog(w.window, func(path string) {
		if err := w.presenter.OnThemeOpened(path); err != nil {
			w.ShowError("Theme Error", err)
		}
	}, w.logger).Show()
}

func (w *MainWindow) showAbout() {
	content := widget.NewRichTextFromMarkdown(res.AboutContent)
	content.Wrapping = fyneapp.TextWrapWord
	dialog.ShowCustom("About "+w.window.Title(), "Close", content, w.window)
}

// showReadoutMenu offers to copy the tuned frequency.
func (w *MainWindow) showReadoutMenu(pos fyneapp.Position) {
	copyItem := fyneapp.NewMenuItem("Copy Frequency", func() {
		w.window.Clipboard().SetContent(w.readoutText())
	})
	widget.ShowPopUpMenuAtPosition(fyneapp.NewMenu("", copyItem), w.window.Canvas(), pos)
}

func (w *MainWindow) readoutText() string {
	return fmt.Sprintf("%s %s", w.readout.Text, w.unit.Text)
}

// addShortcuts binds Alt+Left and Alt+Right to the step buttons so the dial
// can be tuned without focusing it.
func (w *MainWindow) addShortcuts() {
	w.window.Canvas().AddShortcut(&desktop.CustomShortcut{
		KeyName:  fyneapp.KeyLeft,
		Modifier: fyneapp.KeyModifierAlt,
	}, func(fyneapp.Shortcut) {
		w.tuner.Dial().StepLeft()
	})

	w.window.Canvas().AddShortcut(&desktop.CustomShortcut{
		KeyName:  fyneapp.KeyRight,
		Modifier: fyneapp.KeyModifierAlt,
	}, func(fyneapp.Shortcut) {
		w.tuner.Dial().StepRight()
	})
}

// ShowAndRun shows the window and runs the application.
func (w *MainWindow) ShowAndRun() {
	w.window.ShowAndRun()
}

// Close closes the window.
// It's safe to call multiple times (idempotent).
func (w *MainWindow) Close() {
	w.closeOnce.Do(func() {
		w.window.Close()
	})
}

// GetWindow returns the underlying Fyne window.
func (w *MainWindow) GetWindow() fyneapp.Window {
	return w.window
}

// DialView interface implementation

// SetReadout updates the frequency display.
func (w *MainWindow) SetReadout(label, unit string) {
	w.readout.SetText(label)
	w.unit.SetText(unit)
}

// SetPreset updates the band switch.
func (w *MainWindow) SetPreset(preset domain.Preset) {
	w.syncing = true
	defer func() { w.syncing = false }()
	w.bandSwitch.SetSelected(bandForPreset(preset))
}

// SetScrollEnabled updates the scroll toggle.
func (w *MainWindow) SetScrollEnabled(enabled bool) {
	w.syncing = true
	defer func() { w.syncing = false }()
	w.scrollCheck.SetChecked(enabled)
}

// SetThemeName shows the loaded theme.
func (w *MainWindow) SetThemeName(name string) {
	if name == "" {
		w.themeLabel.SetText("")
		return
	}
	w.themeLabel.SetText(fmt.Sprintf("Theme: %s", name))
}

// ShowError displays an error dialog.
func (w *MainWindow) ShowError(title string, err error) {
	dialog.ShowInformation(title, err.Error(), w.window)
}

func bandForPreset(p domain.Preset) string {
	if p == domain.PresetAM {
		return bandAM
	}
	return bandFM
}

func presetForBand(band string) domain.Preset {
	if band == bandAM {
		return domain.PresetAM
	}
	return domain.PresetFM
}

// Verify DialView implementation
var _ DialView = (*MainWindow)(nil)
