package domain

// Point is a position in pixels.
type Point struct {
	X, Y float64
}

// Size is a width/height pair in pixels.
type Size struct {
	Width, Height float64
}

// Rect is an axis aligned rectangle.
type Rect struct {
	X, Y, Width, Height float64
}

// Font describes a label font independent of the rendering backend.
type Font struct {
	Size float64
	Bold bool
}

// TextAlign is the horizontal alignment of text inside its rect.
type TextAlign int

const (
	AlignLeading TextAlign = iota
	AlignCenter
	AlignTrailing
)

// ViewportGeometry is recomputed whenever the viewport size, pitch or range changes.
type ViewportGeometry struct {
	// ContentWidth is the full scrollable width of the ruler
	ContentWidth float64

	// LeadingInset centres the first tick under the indicator at offset 0.
	// The trailing inset uses the same value.
	LeadingInset float64

	// TickPitch is the configured gap between ticks, excluding the 1px line
	TickPitch float64

	// Origin is the x of tick 0 inside the content (half the first label width)
	Origin float64
}

// OverlayLayout positions the widgets drawn above the ruler.
// It depends on the label metrics of the latest draw pass.
type OverlayLayout struct {
	// Indicator is the fixed centre line
	Indicator Rect

	// LeftButton and RightButton are the step buttons
	LeftButton  Rect
	RightButton Rect

	// LeftShadow and RightShadow cover the edges
	LeftShadow  Rect
	RightShadow Rect
}
