package dial

import (
	"github.com/tejashwikalptaru/radiodial/internal/domain"
)

// RangeModel holds the active band and validates replacements.
// A rejected replacement leaves the previous range untouched.
type RangeModel struct {
	rng    domain.FrequencyRange
	preset domain.Preset
	custom bool
}

// NewRangeModel returns a model initialised with the FM preset.
func NewRangeModel() *RangeModel {
	return &RangeModel{
		rng:    domain.FMRange,
		preset: domain.PresetFM,
	}
}

// ApplyPreset replaces the range with a built-in band.
func (m *RangeModel) ApplyPreset(p domain.Preset) {
	m.rng = domain.PresetRange(p)
	m.preset = p
	if p != domain.PresetAM {
		m.preset = domain.PresetFM
	}
	m.custom = false
}

// SetRange overrides start, end and step, keeping the label format.
func (m *RangeModel) SetRange(start, end, step float64) error {
	candidate := m.rng
	candidate.Start = start
	candidate.End = end
	candidate.Step = step
	if err := candidate.Validate(); err != nil {
		return err
	}
	m.rng = candidate
	m.custom = true
	return nil
}

// SetLabelFormat changes the label precision. A format other than the
// preset's own makes the range custom.
func (m *RangeModel) SetLabelFormat(f domain.LabelFormat) {
	m.rng.Format = f
	if f != domain.PresetRange(m.preset).Format {
		m.custom = true
	}
}

// Range returns the active band.
func (m *RangeModel) Range() domain.FrequencyRange {
	return m.rng
}

// Preset returns the last applied preset and whether the range still matches it.
func (m *RangeModel) Preset() (domain.Preset, bool) {
	return m.preset, !m.custom
}

// TickCount returns floor((end - start) / step).
func (m *RangeModel) TickCount() int {
	return m.rng.TickCount()
}
