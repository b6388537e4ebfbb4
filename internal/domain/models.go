// Package domain contains the core value types of the radio dial.
// These types have no dependencies on the UI toolkit and can be used everywhere.
package domain

import (
	"math"
	"strconv"
	"strings"
)

// tickEpsilon absorbs float error when dividing a range by its step,
// e.g. (108-76)/0.05 evaluating to 639.9999999.
const tickEpsilon = 1e-9

// MajorTickEvery is the tick interval that gets a label and the stronger stroke.
const MajorTickEvery = 5

// Preset identifies one of the built-in broadcast bands.
type Preset int

const (
	// PresetFM is the 76-108 MHz band, 0.05 step, one decimal labels
	PresetFM Preset = iota

	// PresetAM is the 153-1710 kHz band, 1 kHz step, integer labels
	PresetAM
)

// String returns the lowercase preset name.
func (p Preset) String() string {
	switch p {
	case PresetFM:
		return "fm"
	case PresetAM:
		return "am"
	default:
		return "unknown"
	}
}

// ParsePreset parses "fm" or "am" (case-insensitive).
func ParsePreset(s string) (Preset, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fm":
		return PresetFM, nil
	case "am":
		return PresetAM, nil
	default:
		return PresetFM, NewValidationError("preset", s, "must be 'fm' or 'am'", ErrUnknownPreset)
	}
}

// LabelFormat is the precision used for tick labels and committed values.
type LabelFormat int

const (
	// LabelFormatDecimal renders one decimal digit ("%.1f")
	LabelFormatDecimal LabelFormat = iota

	// LabelFormatInt renders integers ("%.0f")
	LabelFormatInt
)

// Precision returns the number of decimal digits for the format.
func (f LabelFormat) Precision() int {
	if f == LabelFormatInt {
		return 0
	}
	return 1
}

// String returns the format name used in configuration files.
func (f LabelFormat) String() string {
	if f == LabelFormatInt {
		return "int"
	}
	return "decimal"
}

// ParseLabelFormat parses "decimal" or "int".
func ParseLabelFormat(s string) (LabelFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "decimal", "":
		return LabelFormatDecimal, nil
	case "int", "integer":
		return LabelFormatInt, nil
	default:
		return LabelFormatDecimal, NewValidationError("format", s, "must be 'decimal' or 'int'", ErrInvalidConfig)
	}
}

// FrequencyRange describes a tunable band.
// A valid range has Start < End and Step > 0.
type FrequencyRange struct {
	Start  float64
	End    float64
	Step   float64
	Format LabelFormat
}

// Built-in bands.
var (
	FMRange = FrequencyRange{Start: 76, End: 108, Step: 0.05, Format: LabelFormatDecimal}
	AMRange = FrequencyRange{Start: 153, End: 1710, Step: 1, Format: LabelFormatInt}
)

// PresetRange returns the band definition of a preset.
// Unknown presets fall back to FM.
func PresetRange(p Preset) FrequencyRange {
	if p == PresetAM {
		return AMRange
	}
	return FMRange
}

// Validate reports whether every downstream computation is defined for the range.
func (r FrequencyRange) Validate() error {
	if math.IsNaN(r.Start) || math.IsNaN(r.End) || math.IsInf(r.Start, 0) || math.IsInf(r.End, 0) {
		return NewValidationError("range", r, "bounds must be finite", ErrInvalidRange)
	}
	if r.Start >= r.End {
		return NewValidationError("range", r, "start must be lower than end", ErrInvalidRange)
	}
	if !(r.Step > 0) || math.IsInf(r.Step, 0) {
		return NewValidationError("step", r.Step, "must be positive", ErrInvalidStep)
	}
	if r.TickCount() < 1 {
		return NewValidationError("step", r.Step, "larger than the range", ErrInvalidStep)
	}
	return nil
}

// TickCount returns floor((End-Start)/Step).
func (r FrequencyRange) TickCount() int {
	if !(r.Step > 0) {
		return 0
	}
	return int(math.Floor((r.End-r.Start)/r.Step + tickEpsilon))
}

// FrequencyAt returns the frequency of tick i.
func (r FrequencyRange) FrequencyAt(i int) float64 {
	return r.Start + float64(i)*r.Step
}

// Clamp limits f to [Start, End]. NaN clamps to Start.
func (r FrequencyRange) Clamp(f float64) float64 {
	if math.IsNaN(f) || f < r.Start {
		return r.Start
	}
	if f > r.End {
		return r.End
	}
	return f
}

// Snap moves f onto the nearest tick of the range and clamps it.
func (r FrequencyRange) Snap(f float64) float64 {
	f = r.Clamp(f)
	i := math.Round((f - r.Start) / r.Step)
	// 1e-9 grid removes accumulated error like 76.05000000000001
	return r.Clamp(math.Round((r.Start+i*r.Step)*1e9) / 1e9)
}

// Label formats f at the range precision.
func (r FrequencyRange) Label(f float64) string {
	return strconv.FormatFloat(f, 'f', r.Format.Precision(), 64)
}

// Quantize rounds f to a value exactly representable at the label precision by
// formatting and parsing it back, then clamps it. A parse failure yields 0
// before clamping.
func (r FrequencyRange) Quantize(f float64) float64 {
	v, err := strconv.ParseFloat(r.Label(f), 64)
	if err != nil {
		v = 0
	}
	return r.Clamp(v)
}

// Equal reports whether two ranges describe the same band.
func (r FrequencyRange) Equal(o FrequencyRange) bool {
	return r == o
}

// TuningState is the authoritative selection of the dial.
type TuningState struct {
	// CurrentFrequency is always inside the active range
	CurrentFrequency float64

	// IsUserDriven is true while a scroll-originated transition is in progress
	IsUserDriven bool
}

// TickSpec describes one tick of the ruler. It is derived on every redraw.
type TickSpec struct {
	Index       int
	Frequency   float64
	IsMajor     bool
	PixelOffset float64
}
