package chartview

import (
	"strconv"
)

const FontSize = 12.0

type Padding struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

func UniformPadding(v float64) Padding {
	return Padding{
		Top:    v,
		Right:  v,
		Bottom: v,
		Left:   v,
	}
}

func (p Padding) Horizontal() float64 {
	return p.Left + p.Right
}

func (p Padding) Vertical() float64 {
	return p.Top + p.Bottom
}

type Style struct {
	Padding

	Background Color
	Foreground Color
	// Outline is the color used to stroke bars and wedges. When empty the
	// fill color of the shape is darkened.
	Outline   Color
	LineWidth float64

	Title struct {
		Height float64
		Font   Font
	}
	Text struct {
		Font        Font
		Placeholder string
	}
	Label struct {
		Font   Font
		Rotate float64
		Gap    float64
	}
	Bar struct {
		Spacing    float64
		MinWidth   float64
		MaxWidth   float64
		ValueStrip float64
	}
	Pie struct {
		LegendWidth float64
		Swatch      float64
		LineHeight  float64
	}
	HBar struct {
		LabelWidth   float64
		Spacing      float64
		MinThickness float64
		MaxThickness float64
		ValueStrip   float64
	}

	Format func(float64) string
}

func DefaultStyle() Style {
	var s Style
	s.Padding = UniformPadding(50)
	s.Foreground = Black
	s.LineWidth = 1

	s.Title.Height = 40
	s.Title.Font = BoldFont(16)

	s.Text.Font = NewFont(FontSize)
	s.Text.Placeholder = "No data to display"

	s.Label.Font = NewFont(10)
	s.Label.Rotate = 45
	s.Label.Gap = 5

	s.Bar.Spacing = 10
	s.Bar.MinWidth = 20
	s.Bar.MaxWidth = 100
	s.Bar.ValueStrip = 20

	s.Pie.LegendWidth = 150
	s.Pie.Swatch = 12
	s.Pie.LineHeight = 20

	s.HBar.LabelWidth = 100
	s.HBar.Spacing = 10
	s.HBar.MinThickness = 20
	s.HBar.MaxThickness = 60
	s.HBar.ValueStrip = 50

	s.Format = formatValue
	return s
}

func (s Style) outline(fill Color) Color {
	if s.Outline != "" {
		return s.Outline
	}
	return fill.Darken(0.3)
}

func (s Style) foreground() Color {
	if s.Foreground == None {
		return Black
	}
	return s.Foreground
}

func (s Style) text(str string, pos Point, font Font) Text {
	txt := NewText(str, pos, font)
	txt.Color = s.foreground()
	return txt
}

func (s Style) format(v float64) string {
	if s.Format == nil {
		return formatValue(v)
	}
	return s.Format(v)
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
