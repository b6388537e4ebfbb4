package testutil

import (
	"github.com/tejashwikalptaru/radiodial/internal/domain"
)

// StubHost is a minimal ports.Host for tests outside the dial package.
// Scrolls complete immediately and every character is half the font size wide.
type StubHost struct {
	Offset        float64
	Leading       float64
	ContentWidth  float64
	ScrollEnabled bool
	Redraws       int

	// OnSeekEnd is called after an animated SetContentOffset, normally dial.OnSeekEnd
	OnSeekEnd func()
}

func (h *StubHost) ContentOffset() float64 { return h.Offset }

func (h *StubHost) ContentInset() float64 { return h.Leading }

func (h *StubHost) SetContentInset(leading, _ float64) { h.Leading = leading }

func (h *StubHost) SetContentWidth(width float64) { h.ContentWidth = width }

func (h *StubHost) SetContentOffset(x float64, animated bool) {
	h.Offset = x
	if animated && h.OnSeekEnd != nil {
		h.OnSeekEnd()
	}
}

func (h *StubHost) IsDragging() bool { return false }

func (h *StubHost) IsDecelerating() bool { return false }

func (h *StubHost) SetScrollEnabled(enabled bool) { h.ScrollEnabled = enabled }

func (h *StubHost) RequestRedraw() { h.Redraws++ }

func (h *StubHost) RequestFrame() {}

func (h *StubHost) RebuildOverlay(domain.OverlayLayout) {}

func (h *StubHost) MeasureText(str string, font domain.Font) domain.Size {
	w := float64(len(str)) * font.Size / 2
	if font.Bold {
		w += 2
	}
	return domain.Size{Width: w, Height: font.Size + 2}
}
