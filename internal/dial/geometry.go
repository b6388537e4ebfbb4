package dial

import (
	"math"

	"github.com/tejashwikalptaru/radiodial/internal/domain"
)

// LineWidth is the hairline allotted to every tick. It is part of the tick
// stride in both mapping directions.
const LineWidth = 1.0

// Mapper converts between frequencies and ruler positions.
//
// A position is measured from tick 0, so position 0 is the range start.
// Mapper is a value type and holds no state beyond its inputs.
type Mapper struct {
	Range     domain.FrequencyRange
	TickPitch float64
}

// Stride returns the distance between two adjacent ticks.
func (m Mapper) Stride() float64 {
	return m.TickPitch + LineWidth
}

// FrequencyToOffset returns ((f - start) / step) * (pitch + 1).
func (m Mapper) FrequencyToOffset(f float64) float64 {
	return (f - m.Range.Start) / m.Range.Step * m.Stride()
}

// OffsetToFrequency inverts FrequencyToOffset, then quantizes the value to
// the label precision and clamps it into the range.
func (m Mapper) OffsetToFrequency(px float64) float64 {
	raw := px/m.Stride()*m.Range.Step + m.Range.Start
	return m.Range.Quantize(raw)
}

// IndexAt returns the continuous tick index under position px.
func (m Mapper) IndexAt(px float64) float64 {
	return px / m.Stride()
}

// TickIsMajor reports whether tick index is labelled. Index 0 is always major.
func (m Mapper) TickIsMajor(index int) bool {
	return index%domain.MajorTickEvery == 0
}

// NearestMajor returns the labelled tick index closest to position px,
// limited to the ticks of the range.
func (m Mapper) NearestMajor(px float64) int {
	idx := int(math.Round(m.IndexAt(px)/domain.MajorTickEvery)) * domain.MajorTickEvery
	if idx < 0 {
		return 0
	}
	if last := m.Range.TickCount(); idx > last {
		return last - last%domain.MajorTickEvery
	}
	return idx
}

// Tick describes tick i, with its position measured from tick 0.
func (m Mapper) Tick(i int) domain.TickSpec {
	return domain.TickSpec{
		Index:       i,
		Frequency:   m.Range.FrequencyAt(i),
		IsMajor:     m.TickIsMajor(i),
		PixelOffset: float64(i) * m.Stride(),
	}
}

// RulerLength returns the distance from tick 0 to the last tick.
func (m Mapper) RulerLength() float64 {
	return float64(m.Range.TickCount()) * m.Stride()
}
