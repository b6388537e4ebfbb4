package dial

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tejashwikalptaru/radiodial/internal/domain"
)

func TestRangeModel_Presets(t *testing.T) {
	m := NewRangeModel()
	assert.Equal(t, domain.FMRange, m.Range())
	assert.Equal(t, 640, m.TickCount())

	m.ApplyPreset(domain.PresetAM)
	assert.Equal(t, domain.AMRange, m.Range())
	assert.Equal(t, 1557, m.TickCount())

	preset, matches := m.Preset()
	assert.Equal(t, domain.PresetAM, preset)
	assert.True(t, matches)
}

func TestRangeModel_SetRange_Rejects(t *testing.T) {
	tests := []struct {
		name             string
		start, end, step float64
		want             error
	}{
		{name: "start equals end", start: 100, end: 100, step: 1, want: domain.ErrInvalidRange},
		{name: "start above end", start: 110, end: 100, step: 1, want: domain.ErrInvalidRange},
		{name: "zero step", start: 76, end: 108, step: 0, want: domain.ErrInvalidStep},
		{name: "negative step", start: 76, end: 108, step: -0.1, want: domain.ErrInvalidStep},
		{name: "step wider than range", start: 76, end: 77, step: 5, want: domain.ErrInvalidStep},
		{name: "infinite end", start: 76, end: math.Inf(1), step: 1, want: domain.ErrInvalidRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewRangeModel()
			err := m.SetRange(tt.start, tt.end, tt.step)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)

			var vErr *domain.ValidationError
			assert.True(t, errors.As(err, &vErr))

			// Prior valid range is kept
			assert.Equal(t, domain.FMRange, m.Range())
		})
	}
}

func TestRangeModel_SetRange_KeepsFormat(t *testing.T) {
	m := NewRangeModel()
	require.NoError(t, m.SetRange(87.5, 108, 0.1))

	assert.Equal(t, domain.LabelFormatDecimal, m.Range().Format)
	assert.Equal(t, 205, m.TickCount())

	_, matches := m.Preset()
	assert.False(t, matches)
}

func TestRangeModel_SetLabelFormat_MarksCustom(t *testing.T) {
	m := NewRangeModel()

	m.SetLabelFormat(domain.LabelFormatDecimal)
	_, matches := m.Preset()
	assert.True(t, matches, "the preset's own format keeps the band intact")

	m.SetLabelFormat(domain.LabelFormatInt)
	_, matches = m.Preset()
	assert.False(t, matches)

	m.ApplyPreset(domain.PresetFM)
	_, matches = m.Preset()
	assert.True(t, matches)
}

func TestMapper_RoundTripAtTickBoundaries(t *testing.T) {
	for _, rng := range []domain.FrequencyRange{domain.FMRange, domain.AMRange} {
		m := Mapper{Range: rng, TickPitch: 6}
		// Quantization to the label precision bounds the error by half a digit
		tolerance := 0.5*math.Pow(10, -float64(rng.Format.Precision())) + 1e-9

		for i := 0; i <= rng.TickCount(); i++ {
			f := rng.FrequencyAt(i)
			got := m.OffsetToFrequency(m.FrequencyToOffset(f))
			if !assert.InDelta(t, f, got, tolerance, "tick %d of %v", i, rng) {
				return
			}
		}
	}
}

func TestMapper_RoundTripExactForIntegerBand(t *testing.T) {
	m := Mapper{Range: domain.AMRange, TickPitch: 6}
	for i := 0; i <= domain.AMRange.TickCount(); i++ {
		f := domain.AMRange.FrequencyAt(i)
		require.Equal(t, f, m.OffsetToFrequency(m.FrequencyToOffset(f)))
	}
}

func TestMapper_FrequencyToOffset(t *testing.T) {
	m := Mapper{Range: domain.FMRange, TickPitch: 6}

	assert.Equal(t, 7.0, m.Stride())
	assert.InDelta(t, 0, m.FrequencyToOffset(76), 1e-9)
	assert.InDelta(t, 1960, m.FrequencyToOffset(90), 1e-6)
	assert.InDelta(t, 640*7, m.FrequencyToOffset(108), 1e-6)
	assert.InDelta(t, 640*7, m.RulerLength(), 1e-9)
}

func TestMapper_OffsetToFrequency_QuantizesAndClamps(t *testing.T) {
	m := Mapper{Range: domain.FMRange, TickPitch: 6}

	// Between ticks the value rounds to one decimal
	assert.Equal(t, 90.0, m.OffsetToFrequency(1963))
	assert.Equal(t, 90.1, m.OffsetToFrequency(1960+14))

	assert.Equal(t, 76.0, m.OffsetToFrequency(-1000))
	assert.Equal(t, 108.0, m.OffsetToFrequency(1e7))
	assert.Equal(t, 76.0, m.OffsetToFrequency(math.NaN()))
}

func TestMapper_TickIsMajor(t *testing.T) {
	m := Mapper{Range: domain.FMRange, TickPitch: 6}
	for i := 0; i <= 100; i++ {
		assert.Equal(t, i%5 == 0, m.TickIsMajor(i), "index %d", i)
	}
	assert.True(t, m.TickIsMajor(0))
}

func TestMapper_NearestMajor(t *testing.T) {
	fm := Mapper{Range: domain.FMRange, TickPitch: 6}
	am := Mapper{Range: domain.AMRange, TickPitch: 6}

	tests := []struct {
		name   string
		mapper Mapper
		px     float64
		want   int
	}{
		{name: "start", mapper: fm, px: 0, want: 0},
		{name: "just below half bucket", mapper: fm, px: 2.4 * 7, want: 0},
		{name: "just above half bucket", mapper: fm, px: 2.6 * 7, want: 5},
		{name: "before start", mapper: fm, px: -50, want: 0},
		{name: "past end", mapper: fm, px: 1e6, want: 640},
		{name: "past end of uneven band", mapper: am, px: 1e6, want: 1555},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.mapper.NearestMajor(tt.px))
		})
	}
}

func TestMapper_Tick(t *testing.T) {
	m := Mapper{Range: domain.AMRange, TickPitch: 6}
	tick := m.Tick(10)

	assert.Equal(t, 10, tick.Index)
	assert.Equal(t, 163.0, tick.Frequency)
	assert.True(t, tick.IsMajor)
	assert.Equal(t, 70.0, tick.PixelOffset)
}
