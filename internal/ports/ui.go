// Package ports define the UI interfaces the dial core needs from its host.
// These interfaces allow the dial to run without depending on Fyne directly.
package ports

import (
	"image/color"

	"github.com/tejashwikalptaru/radiodial/internal/domain"
)

// ScrollView is the scroll-container abstraction hosting the ruler.
//
// Offsets are in content pixels along the horizontal axis. The content offset
// may be negative down to -leading inset.
//
// Thread-safety: All methods must be called from the main UI thread.
type ScrollView interface {
	// ContentOffset returns the current horizontal scroll offset.
	ContentOffset() float64

	// ContentInset returns the leading inset.
	ContentInset() float64

	// SetContentInset sets the leading and trailing insets.
	SetContentInset(leading, trailing float64)

	// SetContentWidth sets the full scrollable width of the ruler.
	SetContentWidth(width float64)

	// SetContentOffset scrolls to x, animated or immediately.
	// An animated scroll supersedes any scroll animation in flight and
	// must end with a call to Dial.OnSeekEnd.
	SetContentOffset(x float64, animated bool)

	// IsDragging reports whether the user is dragging the content.
	IsDragging() bool

	// IsDecelerating reports whether the content is still moving after a drag.
	IsDecelerating() bool

	// SetScrollEnabled toggles user interaction with the scroll container.
	SetScrollEnabled(enabled bool)
}

// TextMeasurer measures text for layout.
type TextMeasurer interface {
	// MeasureText returns the size of str rendered with font.
	MeasureText(str string, font domain.Font) domain.Size
}

// Surface is the drawing-surface abstraction the ruler paints onto.
// Coordinates are content coordinates of the ruler.
type Surface interface {
	TextMeasurer

	// StrokeLine draws a line from p1 to p2.
	StrokeLine(p1, p2 domain.Point, c color.Color, width float64)

	// DrawText draws str inside rect.
	DrawText(str string, rect domain.Rect, font domain.Font, c color.Color, align domain.TextAlign)
}

// Host is everything the dial asks of the view system it lives in.
//
// RequestRedraw and RequestFrame are deferred by the host to the next paint
// and are idempotent: several requests before a paint collapse into one.
type Host interface {
	ScrollView
	TextMeasurer

	// RequestRedraw schedules a full paint of the ruler.
	// The host answers by calling Dial.Draw with a Surface.
	RequestRedraw()

	// RequestFrame asks for Dial.Frame to be called on the next display refresh.
	RequestFrame()

	// RebuildOverlay repositions the indicator, shadows and step buttons.
	RebuildOverlay(layout domain.OverlayLayout)
}

// FrequencyListener receives committed frequency changes.
//
// The dial holds a non-owning reference: callers unsubscribe by setting nil
// before the listener goes away.
type FrequencyListener interface {
	// OnFrequencyChanged is called once per user-committed change.
	// It is never called for programmatic changes, transient drag positions
	// or on construction.
	OnFrequencyChanged(newValue float64)
}

// FrequencyListenerFunc adapts a function to FrequencyListener.
type FrequencyListenerFunc func(newValue float64)

// OnFrequencyChanged calls f(newValue).
func (f FrequencyListenerFunc) OnFrequencyChanged(newValue float64) {
	f(newValue)
}
