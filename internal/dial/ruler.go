package dial

import (
	"math"

	"github.com/tejashwikalptaru/radiodial/internal/domain"
	"github.com/tejashwikalptaru/radiodial/internal/ports"
)

// RulerMetrics are the label measurements of one draw pass.
type RulerMetrics struct {
	// FirstLabelWidth is the width of the label of tick 0 in the normal font
	FirstLabelWidth float64

	// MaxLabelHeight is the tallest label seen during the pass
	MaxLabelHeight float64

	// Ticks and Labels count the draw calls that were emitted
	Ticks  int
	Labels int
}

// Ruler paints the ticks and labels of a range onto a Surface.
type Ruler struct {
	Mapper Mapper
	Style  Style

	// Height is the viewport height
	Height float64

	// Origin is the x of tick 0 in content coordinates
	Origin float64

	// Highlight is the tick index drawn with the highlight font, -1 for none
	Highlight int
}

// Render emits draw calls for ticks 0..TickCount in order.
// Only major ticks get a label.
func (r Ruler) Render(s ports.Surface) RulerMetrics {
	rng := r.Mapper.Range
	count := rng.TickCount()

	var metrics RulerMetrics
	first := s.MeasureText(rng.Label(rng.Start), r.Style.LabelFont)
	metrics.FirstLabelWidth = first.Width
	labelHeight := first.Height

	for i := 0; i <= count; i++ {
		tick := r.Mapper.Tick(i)
		x := r.Origin + tick.PixelOffset

		var (
			text string
			font domain.Font
			size domain.Size
		)
		if tick.IsMajor {
			text = rng.Label(tick.Frequency)
			font = r.Style.LabelFont
			if i == r.Highlight {
				font = r.Style.HighlightFont
			}
			size = s.MeasureText(text, font)
			labelHeight = size.Height
			metrics.MaxLabelHeight = math.Max(metrics.MaxLabelHeight, size.Height)
		}

		stroke := r.Style.IntermediateTickColor
		margin := r.Style.IntermediateMargin
		if tick.IsMajor {
			stroke = r.Style.MainTickColor
			margin = r.Style.MainMargin
		}
		bottom := r.Height - margin - labelHeight/2 - r.Style.LabelMargin
		s.StrokeLine(domain.Point{X: x, Y: margin}, domain.Point{X: x, Y: bottom}, stroke, LineWidth)
		metrics.Ticks++

		if !tick.IsMajor {
			continue
		}
		rect := domain.Rect{
			X:      x - size.Width/2,
			Y:      r.Height - size.Height,
			Width:  size.Width,
			Height: size.Height,
		}
		s.DrawText(text, rect, font, r.Style.LabelColor, domain.AlignCenter)
		metrics.Labels++
	}

	return metrics
}

// overlayLayout positions the indicator, shadows and step buttons for a
// viewport, using the label height of the latest pass.
func overlayLayout(viewport domain.Size, style Style, metrics RulerMetrics) domain.OverlayLayout {
	w, h := viewport.Width, viewport.Height
	bottomLine := metrics.MaxLabelHeight

	buttonCenterY := h/2 - (bottomLine-style.MainMargin)/2
	buttonY := buttonCenterY - style.ButtonSize/2

	return domain.OverlayLayout{
		Indicator: domain.Rect{
			X:      w/2 - style.IndicatorWidth/2,
			Y:      style.IndicatorMargin,
			Width:  style.IndicatorWidth,
			Height: math.Max(0, h-bottomLine-style.IndicatorMargin),
		},
		LeftButton: domain.Rect{
			X:      style.ButtonInset,
			Y:      buttonY,
			Width:  style.ButtonSize,
			Height: style.ButtonSize,
		},
		RightButton: domain.Rect{
			X:      w - style.ButtonInset - style.ButtonSize,
			Y:      buttonY,
			Width:  style.ButtonSize,
			Height: style.ButtonSize,
		},
		LeftShadow:  domain.Rect{X: 0, Y: 0, Width: style.ShadowWidth, Height: h},
		RightShadow: domain.Rect{X: w - style.ShadowWidth, Y: 0, Width: style.ShadowWidth, Height: h},
	}
}
