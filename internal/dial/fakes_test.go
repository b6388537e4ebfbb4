package dial

import (
	"image/color"
	"io"
	"log/slog"

	"github.com/tejashwikalptaru/radiodial/internal/domain"
)

// testLogger returns a logger that discards output for tests
func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// measureText gives every character half the font size in width.
func measureText(str string, font domain.Font) domain.Size {
	w := float64(len(str)) * font.Size / 2
	if font.Bold {
		w += 2
	}
	return domain.Size{Width: w, Height: font.Size + 2}
}

type seekCall struct {
	x        float64
	animated bool
}

// fakeHost records everything the dial asks of the view system.
type fakeHost struct {
	dial *Dial

	offset         float64
	leading        float64
	trailing       float64
	contentWidth   float64
	scrollEnabled  bool
	dragging       bool
	decelerating   bool
	seeks          []seekCall
	redraws        int
	frames         int
	overlays       []domain.OverlayLayout
	holdAnimations bool
}

func (h *fakeHost) ContentOffset() float64 {
	return h.offset
}

func (h *fakeHost) ContentInset() float64 {
	return h.leading
}

func (h *fakeHost) SetContentInset(leading, trailing float64) {
	h.leading = leading
	h.trailing = trailing
}

func (h *fakeHost) SetContentWidth(width float64) {
	h.contentWidth = width
}

func (h *fakeHost) SetContentOffset(x float64, animated bool) {
	h.seeks = append(h.seeks, seekCall{x: x, animated: animated})
	h.offset = x
	if animated && !h.holdAnimations && h.dial != nil {
		h.dial.OnSeekEnd()
	}
}

func (h *fakeHost) IsDragging() bool {
	return h.dragging
}

func (h *fakeHost) IsDecelerating() bool {
	return h.decelerating
}

func (h *fakeHost) SetScrollEnabled(enabled bool) {
	h.scrollEnabled = enabled
}

func (h *fakeHost) RequestRedraw() {
	h.redraws++
}

func (h *fakeHost) RequestFrame() {
	h.frames++
}

func (h *fakeHost) RebuildOverlay(l domain.OverlayLayout) {
	h.overlays = append(h.overlays, l)
}

func (h *fakeHost) MeasureText(str string, font domain.Font) domain.Size {
	return measureText(str, font)
}

func (h *fakeHost) lastSeek() seekCall {
	if len(h.seeks) == 0 {
		return seekCall{}
	}
	return h.seeks[len(h.seeks)-1]
}

// drag simulates a user gesture ending at content offset x.
func (h *fakeHost) drag(x float64, decelerate bool) {
	h.dragging = true
	h.dial.OnDragStart()
	h.offset = x
	h.dial.OnScroll(x)
	h.dragging = false
	h.dial.OnDragEnd(decelerate)
}

type drawCall struct {
	Kind  string
	From  domain.Point
	To    domain.Point
	Text  string
	Rect  domain.Rect
	Font  domain.Font
	Color color.Color
}

// recordingSurface collects draw calls in order.
type recordingSurface struct {
	calls []drawCall
}

func (s *recordingSurface) MeasureText(str string, font domain.Font) domain.Size {
	return measureText(str, font)
}

func (s *recordingSurface) StrokeLine(p1, p2 domain.Point, c color.Color, _ float64) {
	s.calls = append(s.calls, drawCall{Kind: "line", From: p1, To: p2, Color: c})
}

func (s *recordingSurface) DrawText(str string, rect domain.Rect, font domain.Font, c color.Color, _ domain.TextAlign) {
	s.calls = append(s.calls, drawCall{Kind: "text", Text: str, Rect: rect, Font: font, Color: c})
}

func (s *recordingSurface) texts() []drawCall {
	var out []drawCall
	for _, c := range s.calls {
		if c.Kind == "text" {
			out = append(out, c)
		}
	}
	return out
}

type recordingListener struct {
	values []float64
}

func (l *recordingListener) OnFrequencyChanged(v float64) {
	l.values = append(l.values, v)
}

// newTestDial returns a 300x60 dial with a recording host and listener.
func newTestDial() (*Dial, *fakeHost, *recordingListener) {
	host := &fakeHost{}
	d := New(testLogger(), host)
	host.dial = d
	listener := &recordingListener{}
	d.SetListener(listener)
	d.Resize(domain.Size{Width: 300, Height: 60})
	return d, host, listener
}
