package widgets

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"github.com/tejashwikalptaru/radiodial/internal/domain"
	"github.com/tejashwikalptaru/radiodial/internal/ports"
)

// canvasSurface collects the ruler as Fyne canvas objects.
type canvasSurface struct {
	objects []fyne.CanvasObject
}

func (s *canvasSurface) MeasureText(str string, font domain.Font) domain.Size {
	return measureText(str, font)
}

func (s *canvasSurface) StrokeLine(p1, p2 domain.Point, c color.Color, width float64) {
	line := canvas.NewLine(c)
	line.StrokeWidth = float32(width)
	line.Position1 = fyne.NewPos(float32(p1.X), float32(p1.Y))
	line.Position2 = fyne.NewPos(float32(p2.X), float32(p2.Y))
	s.objects = append(s.objects, line)
}

func (s *canvasSurface) DrawText(str string, rect domain.Rect, font domain.Font, c color.Color, align domain.TextAlign) {
	text := canvas.NewText(str, c)
	text.TextSize = float32(font.Size)
	text.TextStyle = textStyle(font)
	text.Alignment = textAlign(align)
	text.Move(fyne.NewPos(float32(rect.X), float32(rect.Y)))
	text.Resize(fyne.NewSize(float32(rect.Width), float32(rect.Height)))
	s.objects = append(s.objects, text)
}

func measureText(str string, font domain.Font) domain.Size {
	size := fyne.MeasureText(str, float32(font.Size), textStyle(font))
	return domain.Size{Width: float64(size.Width), Height: float64(size.Height)}
}

func textStyle(font domain.Font) fyne.TextStyle {
	return fyne.TextStyle{Bold: font.Bold}
}

func textAlign(a domain.TextAlign) fyne.TextAlign {
	switch a {
	case domain.AlignLeading:
		return fyne.TextAlignLeading
	case domain.AlignTrailing:
		return fyne.TextAlignTrailing
	default:
		return fyne.TextAlignCenter
	}
}

var _ ports.Surface = (*canvasSurface)(nil)
