// Package widgets provides custom Fyne widgets for the radio dial.
package widgets

import (
	"image/color"
	"log/slog"
	"math"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/jonboulle/clockwork"
	"github.com/tejashwikalptaru/radiodial/internal/dial"
	"github.com/tejashwikalptaru/radiodial/internal/domain"
	"github.com/tejashwikalptaru/radiodial/internal/ports"
)

const seekDuration = 250 * time.Millisecond

// TunerDial is a horizontally scrolling frequency ruler with a fixed centre
// indicator, edge shadows and two step buttons.
//
// The widget is the view-system host of a dial.Dial: it owns the scroll
// offset and the animations, the dial owns the frequency.
//
// Thread-safety: like every Fyne widget, use it from the UI goroutine only.
type TunerDial struct {
	widget.BaseWidget

	logger *slog.Logger
	dial   *dial.Dial
	clock  clockwork.Clock

	// Scroll state
	offset        float64
	leading       float64
	trailing      float64
	contentWidth  float64
	scrollEnabled bool
	dragging      bool
	decelerating  bool
	velocity      *velocityTracker
	seekAnim      *fyne.Animation
	decelAnim     *fyne.Animation

	// Paint state
	ready        bool
	inLayout     bool
	needsRedraw  bool
	framePending bool
	overlay      domain.OverlayLayout
	background   color.Color

	// Canvas objects
	viewport    *rulerViewport
	backdrop    *canvas.Rectangle
	indicator   *canvas.Rectangle
	leftShadow  fyne.CanvasObject
	rightShadow fyne.CanvasObject
	leftButton  *widget.Button
	rightButton *widget.Button
}

// NewTunerDial creates a tuner dial on the FM band.
func NewTunerDial(logger *slog.Logger) *TunerDial {
	return NewTunerDialWithClock(logger, clockwork.NewRealClock())
}

// NewTunerDialWithClock creates a tuner dial whose drag velocity is measured
// with clock.
func NewTunerDialWithClock(logger *slog.Logger, clock clockwork.Clock) *TunerDial {
	t := &TunerDial{
		logger:        logger,
		clock:         clock,
		scrollEnabled: true,
		background:    color.White,
	}
	t.velocity = newVelocityTracker(clock)
	t.viewport = newRulerViewport(t)
	t.backdrop = canvas.NewRectangle(t.background)
	t.indicator = canvas.NewRectangle(color.Transparent)
	t.leftShadow, t.rightShadow = t.shadowGradients()

	t.leftButton = widget.NewButtonWithIcon("", theme.NavigateBackIcon(), func() {
		t.dial.StepLeft()
	})
	t.leftButton.Importance = widget.LowImportance
	t.rightButton = widget.NewButtonWithIcon("", theme.NavigateNextIcon(), func() {
		t.dial.StepRight()
	})
	t.rightButton.Importance = widget.LowImportance

	t.dial = dial.New(logger, t)
	t.ExtendBaseWidget(t)
	t.ready = true
	return t
}

// Dial returns the control surface: frequency, range and style setters.
func (t *TunerDial) Dial() *dial.Dial {
	return t.dial
}

// SetBackgroundColor changes the backdrop and the default edge shadows.
func (t *TunerDial) SetBackgroundColor(c color.Color) {
	t.background = c
	if g, ok := t.leftShadow.(*canvas.LinearGradient); ok {
		g.StartColor = c
	}
	if g, ok := t.rightShadow.(*canvas.LinearGradient); ok {
		g.EndColor = c
	}
	t.Refresh()
}

// SetShadowImages replaces the edge gradients with images.
// A nil resource restores the gradient on that side.
func (t *TunerDial) SetShadowImages(left, right fyne.Resource) {
	leftGradient, rightGradient := t.shadowGradients()
	t.leftShadow = shadowObject(left, leftGradient)
	t.rightShadow = shadowObject(right, rightGradient)
	t.Refresh()
}

// SetButtonIcons replaces the step button icons.
func (t *TunerDial) SetButtonIcons(left, right fyne.Resource) {
	t.leftButton.SetIcon(left)
	t.rightButton.SetIcon(right)
}

func (t *TunerDial) shadowGradients() (*canvas.LinearGradient, *canvas.LinearGradient) {
	return canvas.NewHorizontalGradient(t.background, color.Transparent),
		canvas.NewHorizontalGradient(color.Transparent, t.background)
}

func shadowObject(res fyne.Resource, fallback fyne.CanvasObject) fyne.CanvasObject {
	if res == nil {
		return fallback
	}
	img := canvas.NewImageFromResource(res)
	img.FillMode = canvas.ImageFillStretch
	return img
}

// CreateRenderer implements fyne.Widget.
func (t *TunerDial) CreateRenderer() fyne.WidgetRenderer {
	return &tunerDialRenderer{t: t}
}

// Gestures

// Dragged implements fyne.Draggable.
func (t *TunerDial) Dragged(ev *fyne.DragEvent) {
	if !t.scrollEnabled {
		return
	}
	if !t.dragging {
		t.stopAnimations()
		t.dragging = true
		t.velocity.Reset()
		t.dial.OnDragStart()
	}
	delta := -float64(ev.Dragged.DX)
	t.velocity.Add(delta)
	t.setOffset(t.clampOffset(t.offset + delta))
	t.dial.OnScroll(t.offset)
}

// DragEnd implements fyne.Draggable.
func (t *TunerDial) DragEnd() {
	if !t.dragging {
		return
	}
	t.dragging = false

	v := t.velocity.Velocity()
	fling := math.Abs(v) >= minFlingVelocity
	t.dial.OnDragEnd(fling)
	if fling && t.dial.State() == dial.StateUserDecelerating {
		t.decelerate(v)
	}
}

// Tapped implements fyne.Tappable; a tap focuses the dial for arrow keys.
func (t *TunerDial) Tapped(*fyne.PointEvent) {
	if c := fyne.CurrentApp().Driver().CanvasForObject(t); c != nil {
		c.Focus(t)
	}
}

// FocusGained implements fyne.Focusable.
func (t *TunerDial) FocusGained() {}

// FocusLost implements fyne.Focusable.
func (t *TunerDial) FocusLost() {}

// TypedRune implements fyne.Focusable.
func (t *TunerDial) TypedRune(rune) {}

// TypedKey implements fyne.Focusable. Left and Right step the frequency.
func (t *TunerDial) TypedKey(ev *fyne.KeyEvent) {
	switch ev.Name {
	case fyne.KeyLeft:
		t.dial.StepLeft()
	case fyne.KeyRight:
		t.dial.StepRight()
	}
}

// scrolled handles the mouse wheel as a drag without deceleration.
func (t *TunerDial) scrolled(ev *fyne.ScrollEvent) {
	if !t.scrollEnabled || t.dragging {
		return
	}
	t.stopAnimations()
	t.dial.OnDragStart()
	t.setOffset(t.clampOffset(t.offset - float64(ev.Scrolled.DX+ev.Scrolled.DY)))
	t.dial.OnScroll(t.offset)
	t.dial.OnDragEnd(false)
}

func (t *TunerDial) decelerate(velocity float64) {
	distance, duration := decelerationPlan(velocity)
	from := t.offset
	to := t.clampOffset(from + distance)

	t.decelerating = true
	var anim *fyne.Animation
	anim = fyne.NewAnimation(duration, func(p float32) {
		if t.decelAnim != anim {
			return
		}
		t.setOffset(from + (to-from)*float64(p))
		t.dial.OnScroll(t.offset)
		if p >= 1 {
			t.decelAnim = nil
			t.decelerating = false
			t.dial.OnDecelerationEnd()
		}
	})
	anim.Curve = fyne.AnimationEaseOut
	t.decelAnim = anim
	anim.Start()
}

func (t *TunerDial) stopAnimations() {
	if t.seekAnim != nil {
		t.seekAnim.Stop()
		t.seekAnim = nil
	}
	if t.decelAnim != nil {
		t.decelAnim.Stop()
		t.decelAnim = nil
		t.decelerating = false
	}
}

// clampOffset keeps the indicator between the first and the last tick.
func (t *TunerDial) clampOffset(x float64) float64 {
	minOffset := -t.leading
	maxOffset := t.contentWidth - float64(t.Size().Width) + t.trailing
	return math.Max(minOffset, math.Min(x, maxOffset))
}

func (t *TunerDial) setOffset(x float64) {
	t.offset = x
	t.viewport.scrollTo(x)
}

// ports.Host

// ContentOffset implements ports.ScrollView.
func (t *TunerDial) ContentOffset() float64 {
	return t.offset
}

// ContentInset implements ports.ScrollView.
func (t *TunerDial) ContentInset() float64 {
	return t.leading
}

// SetContentInset implements ports.ScrollView.
func (t *TunerDial) SetContentInset(leading, trailing float64) {
	t.leading = leading
	t.trailing = trailing
}

// SetContentWidth implements ports.ScrollView.
func (t *TunerDial) SetContentWidth(width float64) {
	t.contentWidth = width
	t.viewport.resizeContent()
}

// SetContentOffset implements ports.ScrollView. An animated scroll reports
// its end to the dial; a newer scroll cancels it silently.
func (t *TunerDial) SetContentOffset(x float64, animated bool) {
	t.stopAnimations()
	if !animated {
		t.setOffset(x)
		return
	}

	from := t.offset
	var anim *fyne.Animation
	anim = fyne.NewAnimation(seekDuration, func(p float32) {
		if t.seekAnim != anim {
			return
		}
		t.setOffset(from + (x-from)*float64(p))
		if p >= 1 {
			t.seekAnim = nil
			t.dial.OnSeekEnd()
		}
	})
	anim.Curve = fyne.AnimationEaseOut
	t.seekAnim = anim
	anim.Start()
}

// IsDragging implements ports.ScrollView.
func (t *TunerDial) IsDragging() bool {
	return t.dragging
}

// IsDecelerating implements ports.ScrollView.
func (t *TunerDial) IsDecelerating() bool {
	return t.decelerating
}

// SetScrollEnabled implements ports.ScrollView.
func (t *TunerDial) SetScrollEnabled(enabled bool) {
	t.scrollEnabled = enabled
	if !enabled {
		t.dragging = false
		if t.decelAnim != nil {
			t.decelAnim.Stop()
			t.decelAnim = nil
			t.decelerating = false
		}
	}
}

// MeasureText implements ports.TextMeasurer.
func (t *TunerDial) MeasureText(str string, font domain.Font) domain.Size {
	return measureText(str, font)
}

// RequestRedraw implements ports.Host.
func (t *TunerDial) RequestRedraw() {
	t.needsRedraw = true
	if t.ready && !t.inLayout {
		t.Refresh()
	}
}

// RequestFrame implements ports.Host. Requests before the next frame collapse.
func (t *TunerDial) RequestFrame() {
	if t.framePending {
		return
	}
	t.framePending = true
	fyne.Do(func() {
		t.framePending = false
		t.dial.Frame()
	})
}

// RebuildOverlay implements ports.Host.
func (t *TunerDial) RebuildOverlay(layout domain.OverlayLayout) {
	t.overlay = layout
	t.layoutOverlay()
}

// paint redraws the ruler into the viewport content.
func (t *TunerDial) paint() {
	t.needsRedraw = false
	surface := &canvasSurface{}
	t.dial.Draw(surface)
	t.viewport.setObjects(surface.objects)
}

func (t *TunerDial) layoutOverlay() {
	l := t.overlay
	place(t.leftShadow, l.LeftShadow)
	place(t.rightShadow, l.RightShadow)
	place(t.indicator, l.Indicator)
	place(t.leftButton, l.LeftButton)
	place(t.rightButton, l.RightButton)

	t.indicator.FillColor = t.dial.Style().IndicatorColor
	t.indicator.Refresh()
}

func place(obj fyne.CanvasObject, r domain.Rect) {
	obj.Move(fyne.NewPos(float32(r.X), float32(r.Y)))
	obj.Resize(fyne.NewSize(float32(r.Width), float32(r.Height)))
}

type tunerDialRenderer struct {
	t *TunerDial
}

func (r *tunerDialRenderer) Layout(size fyne.Size) {
	t := r.t
	t.backdrop.Resize(size)
	t.viewport.Resize(size)

	t.inLayout = true
	t.dial.Resize(domain.Size{Width: float64(size.Width), Height: float64(size.Height)})
	t.inLayout = false

	if t.needsRedraw {
		t.paint()
	}
	t.viewport.scrollTo(t.offset)
	t.layoutOverlay()
}

func (r *tunerDialRenderer) MinSize() fyne.Size {
	s := r.t.dial.Style()
	return fyne.NewSize(
		float32(2*(s.ButtonInset+s.ButtonSize)+s.ShadowWidth),
		float32(2*s.ButtonSize),
	)
}

func (r *tunerDialRenderer) Refresh() {
	t := r.t
	t.backdrop.FillColor = t.background
	t.backdrop.Refresh()
	if t.needsRedraw {
		t.paint()
	}
	t.layoutOverlay()
	t.leftShadow.Refresh()
	t.rightShadow.Refresh()
}

func (r *tunerDialRenderer) Objects() []fyne.CanvasObject {
	t := r.t
	return []fyne.CanvasObject{
		t.backdrop,
		t.viewport,
		t.leftShadow,
		t.rightShadow,
		t.indicator,
		t.leftButton,
		t.rightButton,
	}
}

func (r *tunerDialRenderer) Destroy() {
	r.t.stopAnimations()
}

// rulerViewport clips the ruler content and turns the mouse wheel into scrolls.
type rulerViewport struct {
	widget.BaseWidget

	owner   *TunerDial
	content *fyne.Container
}

func newRulerViewport(owner *TunerDial) *rulerViewport {
	v := &rulerViewport{
		owner:   owner,
		content: container.NewWithoutLayout(),
	}
	v.ExtendBaseWidget(v)
	return v
}

// Scrolled implements fyne.Scrollable.
func (v *rulerViewport) Scrolled(ev *fyne.ScrollEvent) {
	v.owner.scrolled(ev)
}

func (v *rulerViewport) scrollTo(x float64) {
	v.content.Move(fyne.NewPos(float32(-x), 0))
}

func (v *rulerViewport) resizeContent() {
	v.content.Resize(fyne.NewSize(float32(v.owner.contentWidth), v.Size().Height))
}

func (v *rulerViewport) setObjects(objects []fyne.CanvasObject) {
	v.content.Objects = objects
	v.resizeContent()
	v.content.Refresh()
}

func (v *rulerViewport) CreateRenderer() fyne.WidgetRenderer {
	return &rulerViewportRenderer{v: v}
}

type rulerViewportRenderer struct {
	v *rulerViewport
}

func (r *rulerViewportRenderer) Layout(fyne.Size) {
	r.v.resizeContent()
	r.v.scrollTo(r.v.owner.offset)
}

func (r *rulerViewportRenderer) MinSize() fyne.Size {
	return fyne.NewSize(0, 0)
}

func (r *rulerViewportRenderer) Refresh() {
	r.Layout(r.v.Size())
	canvas.Refresh(r.v.content)
}

func (r *rulerViewportRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.v.content}
}

func (r *rulerViewportRenderer) Destroy() {}

// Ensure TunerDial implements the required interfaces
var _ ports.Host = (*TunerDial)(nil)
var _ fyne.Draggable = (*TunerDial)(nil)
var _ fyne.Tappable = (*TunerDial)(nil)
var _ fyne.Focusable = (*TunerDial)(nil)
var _ fyne.Scrollable = (*rulerViewport)(nil)
