package dial

import (
	"image/color"

	"github.com/tejashwikalptaru/radiodial/internal/domain"
)

// Style holds the visual parameters of the dial.
type Style struct {
	// TickPitch is the gap between adjacent ticks, not counting the line
	TickPitch float64

	// MainMargin and IntermediateMargin are the top offsets of tick lines
	MainMargin         float64
	IntermediateMargin float64

	// LabelMargin separates the tick lines from the labels
	LabelMargin float64

	MainTickColor         color.Color
	IntermediateTickColor color.Color
	LabelColor            color.Color
	IndicatorColor        color.Color

	// LabelFont is used for labels; HighlightFont for the label nearest the indicator
	LabelFont     domain.Font
	HighlightFont domain.Font

	IndicatorMargin float64
	IndicatorWidth  float64

	// Overlay widget sizes
	ButtonSize  float64
	ButtonInset float64
	ShadowWidth float64
}

// DefaultStyle returns the stock dial look: black major ticks, gray
// intermediate ticks and a red 2px indicator.
func DefaultStyle() Style {
	return Style{
		TickPitch:             6,
		MainMargin:            3,
		IntermediateMargin:    10,
		LabelMargin:           4,
		MainTickColor:         color.NRGBA{A: 0xff},
		IntermediateTickColor: color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff},
		LabelColor:            color.NRGBA{A: 0xff},
		IndicatorColor:        color.NRGBA{R: 0xff, A: 0xff},
		LabelFont:             domain.Font{Size: 9},
		HighlightFont:         domain.Font{Size: 9, Bold: true},
		IndicatorMargin:       0,
		IndicatorWidth:        2,
		ButtonSize:            32,
		ButtonInset:           16,
		ShadowWidth:           40,
	}
}

// affectsGeometry reports whether switching from s to o moves ticks.
func (s Style) affectsGeometry(o Style) bool {
	return s.TickPitch != o.TickPitch || s.LabelFont != o.LabelFont
}
