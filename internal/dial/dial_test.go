package dial

import (
	"errors"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tejashwikalptaru/radiodial/internal/domain"
)

// offsetFor returns the content offset that centres tick i in the test dial.
// Leading inset is 300/2 - 18/2 = 141, stride 7.
func offsetFor(i int) float64 {
	return float64(i)*7 - 141
}

func TestNew_Defaults(t *testing.T) {
	d, host, listener := newTestDial()

	assert.Equal(t, 76.0, d.Frequency())
	assert.Equal(t, StateIdle, d.State())
	assert.Equal(t, 640, d.TickCount())
	assert.True(t, host.scrollEnabled)
	assert.Empty(t, listener.values, "construction must not notify")

	g := d.Geometry()
	assert.Equal(t, 141.0, g.LeadingInset)
	assert.Equal(t, 9.0, g.Origin)
	assert.Equal(t, 18+640*7.0, g.ContentWidth)
	assert.Equal(t, 141.0, host.leading)
	assert.Equal(t, 141.0, host.trailing)
	assert.Equal(t, g.ContentWidth, host.contentWidth)
	assert.Equal(t, -141.0, host.offset)
}

func TestSetFrequency_Clamps(t *testing.T) {
	d, _, listener := newTestDial()

	for _, v := range []float64{-1e9, -1, 0, 75.99, 76, 88.8, 107.95, 108, 108.01, 1e9} {
		d.SetFrequency(v)
		got := d.Frequency()
		assert.GreaterOrEqual(t, got, 76.0, "value %v", v)
		assert.LessOrEqual(t, got, 108.0, "value %v", v)
	}

	d.SetFrequency(76 - 1000)
	assert.Equal(t, 76.0, d.Frequency())

	d.SetFrequency(108 + 1000)
	assert.Equal(t, 108.0, d.Frequency())

	assert.Empty(t, listener.values, "programmatic changes must not notify")
}

func TestSetFrequency_SeeksAnimated(t *testing.T) {
	d, host, _ := newTestDial()
	host.holdAnimations = true

	d.SetFrequency(90)

	seek := host.lastSeek()
	assert.True(t, seek.animated)
	assert.InDelta(t, 1960-141, seek.x, 1e-6)
	assert.Equal(t, StateProgrammaticSeek, d.State())
	assert.Equal(t, 280, d.Highlight())

	d.OnSeekEnd()
	assert.Equal(t, StateIdle, d.State())
}

func TestSetFrequency_SupersedesRunningSeek(t *testing.T) {
	d, host, _ := newTestDial()
	host.holdAnimations = true

	d.SetFrequency(90)
	d.SetFrequency(100)

	assert.Equal(t, StateProgrammaticSeek, d.State())
	assert.InDelta(t, offsetFor(480), host.lastSeek().x, 1e-6)
	assert.Equal(t, 100.0, d.Frequency())
}

func TestDragEnd_CommitsAndNotifiesOnce(t *testing.T) {
	d, host, listener := newTestDial()

	// 95.5 MHz is tick 390
	host.drag(offsetFor(390), false)

	require.Len(t, listener.values, 1)
	assert.Equal(t, 95.5, listener.values[0])
	assert.Equal(t, 95.5, d.Frequency())
	assert.Equal(t, StateIdle, d.State())
}

func TestDragEnd_QuantizesAndSnaps(t *testing.T) {
	d, host, listener := newTestDial()

	// Three pixels past 90.0 is still 90.0 at one decimal
	host.drag(offsetFor(280)+3, false)

	require.Equal(t, []float64{90}, listener.values)
	assert.Equal(t, 90.0, d.Frequency())

	// The ruler is put back on the committed value without a second notification
	seek := host.lastSeek()
	assert.True(t, seek.animated)
	assert.InDelta(t, offsetFor(280), seek.x, 1e-6)
	assert.Len(t, listener.values, 1)
}

func TestDragEnd_UnchangedValueDoesNotNotify(t *testing.T) {
	_, host, listener := newTestDial()

	host.drag(offsetFor(0)+2, false)

	assert.Empty(t, listener.values)
}

func TestLiveScroll_NeverCommits(t *testing.T) {
	d, host, listener := newTestDial()

	d.OnDragStart()
	assert.True(t, d.TuningState().IsUserDriven)
	for i := 0; i < 200; i += 3 {
		host.offset = offsetFor(i)
		d.OnScroll(host.offset)
	}

	assert.Empty(t, listener.values)
	assert.Equal(t, 76.0, d.Frequency())
	assert.Equal(t, StateUserDragging, d.State())
}

func TestDeceleration_CommitsAtRest(t *testing.T) {
	d, host, listener := newTestDial()

	host.drag(offsetFor(100), true)
	assert.Equal(t, StateUserDecelerating, d.State())
	assert.True(t, d.TuningState().IsUserDriven)
	assert.Empty(t, listener.values)

	host.offset = offsetFor(150)
	d.OnScroll(host.offset)
	assert.Empty(t, listener.values)

	d.OnDecelerationEnd()
	require.Equal(t, []float64{83.5}, listener.values)
	assert.Equal(t, StateIdle, d.State())
	assert.False(t, d.TuningState().IsUserDriven)
}

func TestHighlight_ThrottledToOneRedrawPerFrame(t *testing.T) {
	d, host, _ := newTestDial()
	before := d.Stats()
	redraws := host.redraws

	d.OnDragStart()
	d.OnScroll(offsetFor(10))
	d.OnScroll(offsetFor(15))
	d.OnScroll(offsetFor(20))

	assert.Equal(t, 1, host.frames, "one frame request while a redraw is pending")
	assert.Equal(t, 20, d.Highlight())

	d.Frame()
	d.Frame()

	assert.Equal(t, redraws+1, host.redraws)
	assert.Equal(t, before.HighlightRedraws+1, d.Stats().HighlightRedraws)

	// A new bucket after the frame requests another one
	d.OnScroll(offsetFor(25))
	assert.Equal(t, 2, host.frames)
}

func TestHighlight_SameBucketDoesNotRedraw(t *testing.T) {
	d, host, _ := newTestDial()

	d.OnDragStart()
	d.OnScroll(offsetFor(1))
	d.OnScroll(offsetFor(2))

	assert.Equal(t, 0, host.frames)
	assert.Equal(t, 0, d.Highlight())
}

func TestScroll_IgnoredDuringProgrammaticSeek(t *testing.T) {
	d, host, listener := newTestDial()
	host.holdAnimations = true

	d.SetFrequency(100)
	frames := host.frames
	d.OnScroll(offsetFor(10))
	d.OnDragEnd(false)
	d.OnDecelerationEnd()

	assert.Equal(t, frames, host.frames)
	assert.Equal(t, StateProgrammaticSeek, d.State())
	assert.Empty(t, listener.values)
	assert.Equal(t, 100.0, d.Frequency())
}

func TestDrag_SupersedesProgrammaticSeek(t *testing.T) {
	d, host, listener := newTestDial()
	host.holdAnimations = true

	d.SetFrequency(100)
	host.holdAnimations = false
	host.drag(offsetFor(80), false)

	require.Equal(t, []float64{80}, listener.values)
	assert.Equal(t, StateIdle, d.State())
}

func TestSetFrequency_DuringDragLeavesScrollAlone(t *testing.T) {
	d, host, listener := newTestDial()

	d.OnDragStart()
	seeks := len(host.seeks)
	d.SetFrequency(100)

	assert.Equal(t, seeks, len(host.seeks))
	assert.Equal(t, 100.0, d.Frequency())

	host.offset = offsetFor(80)
	d.OnDragEnd(false)
	require.Equal(t, []float64{80}, listener.values)
}

func TestStep_NotifiesAndClamps(t *testing.T) {
	d, host, listener := newTestDial()

	d.StepRight()
	require.Equal(t, []float64{76.05}, listener.values)
	assert.InDelta(t, offsetFor(1), host.lastSeek().x, 1e-6)
	assert.True(t, host.lastSeek().animated)

	d.StepLeft()
	require.Equal(t, []float64{76.05, 76}, listener.values)

	// At the start the value cannot go lower
	d.StepLeft()
	assert.Len(t, listener.values, 2)
	assert.Equal(t, 76.0, d.Frequency())

	// At the end the value cannot go higher
	d.SetFrequency(108)
	d.StepRight()
	assert.Len(t, listener.values, 2)
	assert.Equal(t, 108.0, d.Frequency())
}

func TestStep_AccumulatesWithoutDrift(t *testing.T) {
	d, _, listener := newTestDial()

	for i := 0; i < 40; i++ {
		d.StepRight()
	}

	assert.Equal(t, 78.0, d.Frequency())
	assert.Len(t, listener.values, 40)
}

func TestStep_IgnoredWhileDragging(t *testing.T) {
	d, _, listener := newTestDial()

	d.OnDragStart()
	d.StepRight()

	assert.Empty(t, listener.values)
	assert.Equal(t, 76.0, d.Frequency())
}

func TestApplyPreset_ResetsState(t *testing.T) {
	d, _, listener := newTestDial()

	d.ApplyPreset(domain.PresetFM)
	d.SetFrequency(99.9)
	d.ApplyPreset(domain.PresetAM)

	assert.Equal(t, 153.0, d.Frequency())
	assert.Equal(t, 1557, d.TickCount())
	assert.Equal(t, domain.LabelFormatInt, d.Range().Format)
	assert.Empty(t, listener.values)

	preset, matches := d.Preset()
	assert.Equal(t, domain.PresetAM, preset)
	assert.True(t, matches)
}

func TestApplyPreset_Idempotent(t *testing.T) {
	d, host, _ := newTestDial()

	d.ApplyPreset(domain.PresetAM)
	first := d.Geometry()
	firstWidth := host.contentWidth
	frequency := d.Frequency()

	d.ApplyPreset(domain.PresetAM)

	if diff := cmp.Diff(first, d.Geometry()); diff != "" {
		t.Errorf("geometry changed (-first +second):\n%s", diff)
	}
	assert.Equal(t, firstWidth, host.contentWidth)
	assert.Equal(t, frequency, d.Frequency())
	assert.Equal(t, 153.0, d.Frequency())
}

func TestSetRange_RejectsInvalid(t *testing.T) {
	d, _, _ := newTestDial()
	d.SetFrequency(90)
	before := d.Stats()

	err := d.SetRange(108, 76, 0.1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidRange))

	err = d.SetRange(76, 108, 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidStep))

	assert.Equal(t, domain.FMRange, d.Range())
	assert.Equal(t, 90.0, d.Frequency())
	assert.Equal(t, before, d.Stats(), "a rejected range must not rebuild")
}

func TestSetRange_RebuildsAndRecenters(t *testing.T) {
	d, _, _ := newTestDial()
	d.SetFrequency(100)

	require.NoError(t, d.SetRange(87.5, 108, 0.1))

	assert.Equal(t, 87.5, d.Frequency())
	assert.Equal(t, 205, d.TickCount())
	_, matches := d.Preset()
	assert.False(t, matches)
}

func TestSetters_RebuildClassification(t *testing.T) {
	type delta struct {
		Redraws, GeometryRebuilds, Recenters int
	}
	bold := domain.Font{Size: 12, Bold: true}
	tests := []struct {
		name   string
		mutate func(d *Dial)
		want   delta
	}{
		{name: "tick colors", mutate: func(d *Dial) { d.SetTickColors(color.White, color.Black) }, want: delta{Redraws: 1}},
		{name: "label color", mutate: func(d *Dial) { d.SetLabelColor(color.White) }, want: delta{Redraws: 1}},
		{name: "margins", mutate: func(d *Dial) { d.SetMargins(1, 2, 3) }, want: delta{Redraws: 1}},
		{name: "indicator", mutate: func(d *Dial) { d.SetIndicator(color.Black, 4) }, want: delta{Redraws: 1}},
		{name: "highlight font", mutate: func(d *Dial) { d.SetLabelFonts(DefaultStyle().LabelFont, bold) }, want: delta{Redraws: 1}},
		{name: "unchanged style", mutate: func(d *Dial) { d.SetStyle(d.Style()) }, want: delta{}},
		{name: "scroll enabled", mutate: func(d *Dial) { d.SetScrollEnabled(false) }, want: delta{}},
		{name: "tick pitch", mutate: func(d *Dial) { d.SetTickPitch(9) }, want: delta{Redraws: 1, GeometryRebuilds: 1}},
		{name: "label font", mutate: func(d *Dial) { d.SetLabelFonts(bold, bold) }, want: delta{Redraws: 1, GeometryRebuilds: 1}},
		{name: "label format", mutate: func(d *Dial) { d.SetLabelFormat(domain.LabelFormatInt) }, want: delta{Redraws: 1, GeometryRebuilds: 1}},
		{name: "resize", mutate: func(d *Dial) { d.Resize(domain.Size{Width: 400, Height: 60}) }, want: delta{Redraws: 1, GeometryRebuilds: 1}},
		{name: "same size", mutate: func(d *Dial) { d.Resize(domain.Size{Width: 300, Height: 60}) }, want: delta{}},
		{name: "preset", mutate: func(d *Dial) { d.ApplyPreset(domain.PresetAM) }, want: delta{Redraws: 1, GeometryRebuilds: 1, Recenters: 1}},
		{name: "range", mutate: func(d *Dial) { _ = d.SetRange(88, 108, 0.1) }, want: delta{Redraws: 1, GeometryRebuilds: 1, Recenters: 1}},
		{name: "refresh", mutate: func(d *Dial) { d.Refresh() }, want: delta{Redraws: 1, GeometryRebuilds: 1, Recenters: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, _, _ := newTestDial()
			before := d.Stats()

			tt.mutate(d)

			after := d.Stats()
			got := delta{
				Redraws:          after.Redraws - before.Redraws,
				GeometryRebuilds: after.GeometryRebuilds - before.GeometryRebuilds,
				Recenters:        after.Recenters - before.Recenters,
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSetTickPitch_KeepsFrequency(t *testing.T) {
	d, host, _ := newTestDial()
	d.SetFrequency(90)

	d.SetTickPitch(9)

	assert.Equal(t, 90.0, d.Frequency())
	seek := host.lastSeek()
	assert.False(t, seek.animated, "a layout change repositions immediately")
	assert.InDelta(t, 280*10-141, seek.x, 1e-6)
	assert.Equal(t, 9.0, d.Geometry().TickPitch)
}

func TestSetTickPitch_NegativeClampsToZero(t *testing.T) {
	d, _, _ := newTestDial()
	d.SetTickPitch(-5)
	assert.Equal(t, 0.0, d.Style().TickPitch)
	assert.Equal(t, 1.0, d.Mapper().Stride())
}

func TestResize_UpdatesInsets(t *testing.T) {
	d, host, _ := newTestDial()

	d.Resize(domain.Size{Width: 400, Height: 80})

	assert.Equal(t, 191.0, d.Geometry().LeadingInset)
	assert.Equal(t, 191.0, host.leading)
	assert.Equal(t, -191.0, host.offset)
}

func TestSetLabelFormat_ChangesCommitPrecision(t *testing.T) {
	d, host, listener := newTestDial()
	d.SetLabelFormat(domain.LabelFormatInt)

	// Inset follows the new first label ("76", 9px wide)
	assert.Equal(t, 145.5, d.Geometry().LeadingInset)

	host.drag(float64(280+4)*7-145.5, false)
	require.Equal(t, []float64{90}, listener.values)
}

func TestDraw_RebuildsOverlay(t *testing.T) {
	d, host, _ := newTestDial()

	metrics := d.Draw(&recordingSurface{})

	assert.Equal(t, 641, metrics.Ticks)
	assert.Equal(t, metrics, d.Metrics())
	require.NotEmpty(t, host.overlays)
	overlay := host.overlays[len(host.overlays)-1]
	assert.Equal(t, domain.Rect{X: 149, Y: 0, Width: 2, Height: 49}, overlay.Indicator)
	assert.Equal(t, 252.0, overlay.RightButton.X)
}

func TestDraw_HighlightsCommittedTick(t *testing.T) {
	d, _, _ := newTestDial()
	d.SetFrequency(90)

	surface := &recordingSurface{}
	d.Draw(surface)

	for _, text := range surface.texts() {
		if text.Text == "90.0" {
			assert.True(t, text.Font.Bold)
			continue
		}
		assert.False(t, text.Font.Bold, text.Text)
	}
}

func TestScrollDisabled_IgnoresDrag(t *testing.T) {
	d, host, listener := newTestDial()
	d.SetScrollEnabled(false)

	host.drag(offsetFor(100), false)

	assert.False(t, host.scrollEnabled)
	assert.Empty(t, listener.values)
	assert.Equal(t, StateIdle, d.State())
}

func TestScrollDisabled_AbandonsGesture(t *testing.T) {
	d, host, listener := newTestDial()

	d.OnDragStart()
	host.offset = offsetFor(100)
	d.OnScroll(host.offset)
	d.SetScrollEnabled(false)

	assert.Equal(t, StateIdle, d.State())
	assert.Equal(t, offsetFor(0), host.offset)
	d.OnDragEnd(false)
	assert.Empty(t, listener.values)
}

func TestListener_Unsubscribe(t *testing.T) {
	d, _, listener := newTestDial()
	d.SetListener(nil)

	d.StepRight()

	assert.Empty(t, listener.values)
	assert.Equal(t, 76.05, d.Frequency())
}

func TestListener_ReentrantSetFrequency(t *testing.T) {
	d, host, _ := newTestDial()
	var calls []float64
	d.SetListener(listenerFunc(func(v float64) {
		calls = append(calls, v)
		d.SetFrequency(v + 1)
	}))

	host.drag(offsetFor(100), false)

	require.Equal(t, []float64{81}, calls)
	assert.Equal(t, 82.0, d.Frequency())
}

type listenerFunc func(float64)

func (f listenerFunc) OnFrequencyChanged(v float64) { f(v) }
