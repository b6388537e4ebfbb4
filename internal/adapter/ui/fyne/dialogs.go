package fyne

import (
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
)

// ThemeDialog is a helper for picking a TOML theme file.
type ThemeDialog struct {
	window   fyne.Window
	callback func(string)
	logger   *slog.Logger
}

// NewThemeDialog creates a new theme file dialog.
func NewThemeDialog(window fyne.Window, callback func(string), logger *slog.Logger) *ThemeDialog {
	return &ThemeDialog{
		window:   window,
		callback: callback,
		logger:   logger,
	}
}

// Show displays the file dialog filtered to .toml files.
func (d *ThemeDialog) Show() {
	open := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			d.logger.Error("theme dialog error", slog.Any("error", err))
			return
		}
		if reader == nil {
			return // User cancelled
		}
		defer reader.Close()

		filePath := reader.URI().Path()
		if d.callback != nil {
			d.callback(filePath)
		}
	}, d.window)
	open.SetFilter(storage.NewExtensionFileFilter([]string{".toml"}))
	open.Show()
}
