package widgets

import (
	fyneapp "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// Ensure ReadoutLabel implements the tap interfaces
var (
	_ fyneapp.DoubleTappable    = (*ReadoutLabel)(nil)
	_ fyneapp.SecondaryTappable = (*ReadoutLabel)(nil)
)

// ReadoutLabel is a label showing the tuned frequency.
// A double tap and a secondary tap (right click) are forwarded to callbacks,
// which the main window uses to jump to the band start and to offer a
// copy menu.
type ReadoutLabel struct {
	widget.Label
	doubleTapped    func()
	secondaryTapped func(pos fyneapp.Position)
}

// NewReadoutLabel creates a new ReadoutLabel with the given double-tap callback.
func NewReadoutLabel(doubleTapped func()) *ReadoutLabel {
	label := &ReadoutLabel{
		doubleTapped: doubleTapped,
	}
	label.TextStyle = fyneapp.TextStyle{Bold: true, Monospace: true}
	label.ExtendBaseWidget(label)
	return label
}

// DoubleTapped implements the fyne.DoubleTappable interface.
func (l *ReadoutLabel) DoubleTapped(_ *fyneapp.PointEvent) {
	if l.doubleTapped != nil {
		l.doubleTapped()
	}
}

// SetSecondaryTapped sets the callback for right-click (secondary tap) events.
// It receives the absolute position for placing a popup menu.
func (l *ReadoutLabel) SetSecondaryTapped(callback func(pos fyneapp.Position)) {
	l.secondaryTapped = callback
}

// TappedSecondary implements the fyne.SecondaryTappable interface.
func (l *ReadoutLabel) TappedSecondary(pe *fyneapp.PointEvent) {
	if l.secondaryTapped != nil {
		l.secondaryTapped(pe.AbsolutePosition)
	}
}
