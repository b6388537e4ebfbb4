// Package dial implements the frequency tuner dial independent of any UI toolkit.
//
// A Dial owns the authoritative frequency. The host view system feeds it
// scroll events and paints it through the ports.Host and ports.Surface
// interfaces; the dial answers with scroll positions and draw calls.
//
// Every setter falls into one of three rebuild classes:
//   - redraw only: colors, margins, highlight font, indicator
//   - geometry rebuild: tick pitch, label font, label format, viewport size
//   - rebuild and recenter: preset, range, Refresh
//
// Thread-safety: none. All methods must be called from the UI thread.
package dial

import (
	"image/color"
	"log/slog"

	"github.com/tejashwikalptaru/radiodial/internal/domain"
	"github.com/tejashwikalptaru/radiodial/internal/ports"
)

// Stats counts the work the dial requested from its host.
type Stats struct {
	Redraws          int
	GeometryRebuilds int
	Recenters        int
	HighlightRedraws int
	Notifications    int
}

// Dial is the tuner control surface.
type Dial struct {
	// Dependencies
	logger   *slog.Logger
	host     ports.Host
	listener ports.FrequencyListener

	// Configuration
	ranges        *RangeModel
	style         Style
	scrollEnabled bool

	// Layout
	viewport domain.Size
	geometry domain.ViewportGeometry
	metrics  RulerMetrics

	// Reconciliation
	state            State
	current          float64
	highlight        int
	pendingHighlight bool

	stats Stats
}

// New creates a dial on the FM band positioned at its start.
// The listener is not notified during construction.
func New(logger *slog.Logger, host ports.Host) *Dial {
	d := &Dial{
		logger:        logger,
		host:          host,
		ranges:        NewRangeModel(),
		style:         DefaultStyle(),
		scrollEnabled: true,
	}
	d.current = d.ranges.Range().Start
	d.host.SetScrollEnabled(true)
	d.rebuildGeometry()

	logger.Debug("dial initialized",
		slog.Float64("start", d.ranges.Range().Start),
		slog.Float64("end", d.ranges.Range().End))

	return d
}

// SetListener replaces the listener. Pass nil to unsubscribe.
func (d *Dial) SetListener(l ports.FrequencyListener) {
	d.listener = l
}

// Frequency returns the committed frequency.
func (d *Dial) Frequency() float64 {
	return d.current
}

// SetFrequency moves the dial to v, clamped into the range.
// The listener is not notified.
func (d *Dial) SetFrequency(v float64) {
	d.current = d.ranges.Range().Clamp(v)
	d.seek(true)
}

// StepLeft moves one step down and notifies the listener.
func (d *Dial) StepLeft() {
	d.step(-1)
}

// StepRight moves one step up and notifies the listener.
func (d *Dial) StepRight() {
	d.step(1)
}

// step is a seek that notifies: the button press is explicit user intent.
// At a range limit the value does not change and nothing is notified.
func (d *Dial) step(direction float64) {
	if d.state == StateUserDragging {
		return
	}
	rng := d.ranges.Range()
	next := rng.Snap(d.current + direction*rng.Step)
	if next == d.current {
		d.logger.Debug("step ignored at range limit", slog.Float64("frequency", d.current))
		return
	}
	d.current = next
	d.seek(true)
	d.notify()
}

// TuningState returns the current selection.
func (d *Dial) TuningState() domain.TuningState {
	return domain.TuningState{
		CurrentFrequency: d.current,
		IsUserDriven:     d.state.userDriven(),
	}
}

// State returns the reconciliation state.
func (d *Dial) State() State {
	return d.state
}

// Range returns the active band.
func (d *Dial) Range() domain.FrequencyRange {
	return d.ranges.Range()
}

// Preset returns the last applied preset and whether the range still matches it.
func (d *Dial) Preset() (domain.Preset, bool) {
	return d.ranges.Preset()
}

// TickCount returns floor((end - start) / step).
func (d *Dial) TickCount() int {
	return d.ranges.TickCount()
}

// Mapper returns the geometry mapper for the active range and pitch.
func (d *Dial) Mapper() Mapper {
	return Mapper{Range: d.ranges.Range(), TickPitch: d.style.TickPitch}
}

// Geometry returns the current viewport geometry.
func (d *Dial) Geometry() domain.ViewportGeometry {
	return d.geometry
}

// Metrics returns the label metrics of the latest draw pass.
func (d *Dial) Metrics() RulerMetrics {
	return d.metrics
}

// Highlight returns the major tick index drawn with the highlight font.
func (d *Dial) Highlight() int {
	return d.highlight
}

// Style returns a copy of the visual parameters.
func (d *Dial) Style() Style {
	return d.style
}

// Stats returns the rebuild counters.
func (d *Dial) Stats() Stats {
	return d.stats
}

// ScrollEnabled reports whether user scrolling is accepted.
func (d *Dial) ScrollEnabled() bool {
	return d.scrollEnabled
}

// Overlay returns the overlay layout for the latest draw pass.
func (d *Dial) Overlay() domain.OverlayLayout {
	return overlayLayout(d.viewport, d.style, d.metrics)
}

// Draw paints the ruler onto s and asks the host to rebuild the overlay,
// whose position depends on the label heights just measured.
func (d *Dial) Draw(s ports.Surface) RulerMetrics {
	ruler := Ruler{
		Mapper:    d.Mapper(),
		Style:     d.style,
		Height:    d.viewport.Height,
		Origin:    d.geometry.Origin,
		Highlight: d.highlight,
	}
	d.metrics = ruler.Render(s)
	d.host.RebuildOverlay(d.Overlay())
	return d.metrics
}

// Range model

// ApplyPreset switches to a built-in band and resets the frequency to its start.
func (d *Dial) ApplyPreset(p domain.Preset) {
	d.ranges.ApplyPreset(p)
	d.logger.Debug("preset applied", slog.String("preset", p.String()))
	d.rebuildAndRecenter()
}

// SetRange overrides the band. An invalid range is rejected and the previous
// range stays active.
func (d *Dial) SetRange(start, end, step float64) error {
	if err := d.ranges.SetRange(start, end, step); err != nil {
		d.logger.Warn("range rejected",
			slog.Float64("start", start),
			slog.Float64("end", end),
			slog.Float64("step", step),
			slog.Any("error", err))
		return err
	}
	d.rebuildAndRecenter()
	return nil
}

// SetLabelFormat changes the label and commit precision.
func (d *Dial) SetLabelFormat(f domain.LabelFormat) {
	if d.ranges.Range().Format == f {
		return
	}
	d.ranges.SetLabelFormat(f)
	d.rebuildGeometry()
}

// Refresh rebuilds everything and recenters on the range start.
func (d *Dial) Refresh() {
	d.rebuildAndRecenter()
}

// Layout

// Resize is called by the host on every layout pass.
func (d *Dial) Resize(size domain.Size) {
	if size == d.viewport {
		return
	}
	d.viewport = size
	d.rebuildGeometry()
}

// Visual parameters

// SetTickPitch sets the gap between ticks. Negative values clamp to 0.
func (d *Dial) SetTickPitch(pitch float64) {
	if pitch < 0 {
		pitch = 0
	}
	s := d.style
	s.TickPitch = pitch
	d.SetStyle(s)
}

// SetMargins sets the top offsets of major and intermediate ticks and the
// gap between tick lines and labels.
func (d *Dial) SetMargins(main, intermediate, label float64) {
	s := d.style
	s.MainMargin = main
	s.IntermediateMargin = intermediate
	s.LabelMargin = label
	d.SetStyle(s)
}

// SetTickColors sets the stroke colors of major and intermediate ticks.
func (d *Dial) SetTickColors(main, intermediate color.Color) {
	s := d.style
	s.MainTickColor = main
	s.IntermediateTickColor = intermediate
	d.SetStyle(s)
}

// SetLabelColor sets the label color.
func (d *Dial) SetLabelColor(c color.Color) {
	s := d.style
	s.LabelColor = c
	d.SetStyle(s)
}

// SetLabelFonts sets the normal and highlight label fonts.
func (d *Dial) SetLabelFonts(normal, highlight domain.Font) {
	s := d.style
	s.LabelFont = normal
	s.HighlightFont = highlight
	d.SetStyle(s)
}

// SetIndicator sets the indicator color and its top margin.
func (d *Dial) SetIndicator(c color.Color, margin float64) {
	s := d.style
	s.IndicatorColor = c
	s.IndicatorMargin = margin
	d.SetStyle(s)
}

// SetStyle replaces all visual parameters with the minimum rebuild:
// geometry when ticks move, a redraw otherwise.
func (d *Dial) SetStyle(s Style) {
	old := d.style
	d.style = s
	if old.affectsGeometry(s) {
		d.rebuildGeometry()
		return
	}
	if old != s {
		d.redrawOnly()
	}
}

// SetScrollEnabled toggles user scrolling. No rebuild is needed.
func (d *Dial) SetScrollEnabled(enabled bool) {
	if d.scrollEnabled == enabled {
		return
	}
	d.scrollEnabled = enabled
	d.host.SetScrollEnabled(enabled)
	if !enabled && d.state.userDriven() {
		// The gesture is abandoned; put the ruler back on the committed value.
		d.setState(StateIdle)
		d.seek(false)
	}
}

// Rebuild classes

func (d *Dial) redrawOnly() {
	d.stats.Redraws++
	d.host.RequestRedraw()
}

// rebuildGeometry recomputes insets and content width and puts the ruler back
// on the current frequency without animation.
func (d *Dial) rebuildGeometry() {
	rng := d.ranges.Range()
	first := d.host.MeasureText(rng.Label(rng.Start), d.style.LabelFont)
	origin := first.Width / 2

	d.geometry = domain.ViewportGeometry{
		ContentWidth: origin*2 + d.Mapper().RulerLength(),
		LeadingInset: d.viewport.Width/2 - origin,
		TickPitch:    d.style.TickPitch,
		Origin:       origin,
	}
	d.host.SetContentWidth(d.geometry.ContentWidth)
	d.host.SetContentInset(d.geometry.LeadingInset, d.geometry.LeadingInset)
	d.stats.GeometryRebuilds++

	d.logger.Debug("geometry rebuilt",
		slog.Float64("content_width", d.geometry.ContentWidth),
		slog.Float64("leading_inset", d.geometry.LeadingInset))

	d.redrawOnly()
	d.current = rng.Clamp(d.current)
	d.seek(false)
}

// rebuildAndRecenter resets the frequency to the range start and rebuilds.
func (d *Dial) rebuildAndRecenter() {
	d.current = d.ranges.Range().Start
	if d.state.userDriven() {
		d.setState(StateIdle)
	}
	d.stats.Recenters++
	d.rebuildGeometry()
}

var _ ports.Tuner = (*Dial)(nil)
