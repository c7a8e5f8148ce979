package chartview

import (
	"fmt"
	"math"
)

const (
	fullcircle = 360.0
	halfcircle = 180.0
	deg2rad    = math.Pi / halfcircle
)

// Frame is the geometry of one drawing of a chart.
type Frame struct {
	Kind       Kind    `json:"kind"`
	Bounds     Rect    `json:"bounds"`
	Area       Rect    `json:"area"`
	Plot       Rect    `json:"plot"`
	Background Color   `json:"background,omitempty"`
	Foreground Color   `json:"foreground"`
	LineWidth  float64 `json:"lineWidth"`

	Title       *Text `json:"title,omitempty"`
	Placeholder *Text `json:"placeholder,omitempty"`

	Axes   []Axis     `json:"axes,omitempty"`
	Bars   []BarShape `json:"bars,omitempty"`
	Slices []Slice    `json:"slices,omitempty"`
}

// BarShape is one entry of a bar or horizontal bar chart. Ratio is the value
// of the entry relative to the largest value of the serie.
type BarShape struct {
	Entry
	Index     int     `json:"index"`
	Color     Color   `json:"color"`
	Outline   Color   `json:"outline"`
	Ratio     float64 `json:"ratio"`
	Rect      Rect    `json:"rect"`
	ValueText Text    `json:"valueText"`
	LabelText Text    `json:"labelText"`
}

// Slice is one entry of a pie chart with its legend.
type Slice struct {
	Entry
	Index   int     `json:"index"`
	Color   Color   `json:"color"`
	Outline Color   `json:"outline"`
	Percent float64 `json:"percent"`
	Wedge   Wedge   `json:"wedge"`
	Swatch  Rect    `json:"swatch"`
	Legend  Text    `json:"legendText"`
}

// Layout computes the geometry of the chart for the given bounds. The
// measurer is only used to fit labels in the horizontal bar chart and can be
// nil.
func (c *Chart) Layout(bounds Rect, m Measurer) Frame {
	var (
		st = c.style
		f  = Frame{
			Kind:       c.kind,
			Bounds:     bounds,
			Area:       bounds,
			Background: st.Background,
			Foreground: st.foreground(),
			LineWidth:  st.LineWidth,
		}
	)
	if c.title != "" {
		f.Area.Y += st.Title.Height
		f.Area.H = positive(bounds.H - st.Title.Height)

		pos := NewPoint(bounds.X+bounds.W/2, bounds.Y+st.Title.Height/2)
		txt := st.text(c.title, pos, st.Title.Font)
		txt.Anchor = AnchorMiddle
		txt.Baseline = BaselineMiddle
		f.Title = &txt
	}
	if len(c.serie) == 0 {
		txt := st.text(st.Text.Placeholder, f.Area.Center(), st.Text.Font)
		txt.Anchor = AnchorMiddle
		txt.Baseline = BaselineMiddle
		f.Placeholder = &txt
		return f
	}
	f.Plot = f.Area.Inset(st.Padding)
	switch c.kind {
	case Pie:
		c.layoutPie(&f)
	case HorizontalBar:
		c.layoutHorizontal(&f, m)
	default:
		c.layoutBar(&f)
	}
	return f
}

func (c *Chart) layoutBar(f *Frame) {
	var (
		st    = c.style
		plot  = f.Plot
		count = float64(len(c.serie))
		space = st.Bar.Spacing
		width = clamp((plot.W-space*(count+1))/count, st.Bar.MinWidth, st.Bar.MaxWidth)
		limit = c.serie.Max()
		scale = magnitudeScaler(limit, positive(plot.H-st.Bar.ValueStrip))
		base  = plot.Bottom()
		x     = plot.X + space
	)
	f.Axes = append(f.Axes, NewAxis(OrientBottom, plot), NewAxis(OrientLeft, plot))
	for i, e := range c.serie {
		var (
			height = scale.Scale(e.Value)
			middle = x + width/2
			bar    = BarShape{
				Entry: e,
				Index: i,
				Color: c.palette.At(i),
				Ratio: ratio(e.Value, limit),
				Rect:  NewRect(x, base-height, width, height),
			}
		)
		bar.Outline = st.outline(bar.Color)

		bar.ValueText = st.text(st.format(e.Value), NewPoint(middle, base-height-st.Label.Gap), st.Text.Font)
		bar.ValueText.Anchor = AnchorMiddle

		bar.LabelText = st.text(e.Label, NewPoint(middle, base+st.Label.Gap), st.Label.Font)
		bar.LabelText.Baseline = BaselineHanging
		bar.LabelText.Rotate = st.Label.Rotate

		f.Bars = append(f.Bars, bar)
		x += width + space
	}
}

func (c *Chart) layoutPie(f *Frame) {
	var (
		st     = c.style
		plot   = f.Plot
		legend = NewRect(math.Max(plot.X, plot.Right()-st.Pie.LegendWidth), plot.Y, math.Min(st.Pie.LegendWidth, plot.W), plot.H)
		area   = NewRect(plot.X, plot.Y, positive(plot.W-st.Pie.LegendWidth), plot.H)
		radius = math.Min(area.W, area.H) / 2
		total  = c.serie.Sum()
		scale  = magnitudeScaler(total, fullcircle)
		angle  float64
	)
	for i, e := range c.serie {
		span := scale.Scale(e.Value)
		if total > 0 && i == len(c.serie)-1 {
			span = fullcircle - angle
		}
		var (
			top   = legend.Y + float64(i)*st.Pie.LineHeight
			slice = Slice{
				Entry:   e,
				Index:   i,
				Color:   c.palette.At(i),
				Percent: ratio(e.Value, total) * 100,
				Wedge: Wedge{
					Center: area.Center(),
					Radius: radius,
					Start:  angle,
					Span:   span,
				},
				Swatch: NewRect(legend.X+st.Label.Gap, top, st.Pie.Swatch, st.Pie.Swatch),
			}
		)
		slice.Outline = st.outline(slice.Color)

		str := fmt.Sprintf("%s (%.1f%%)", e.Label, slice.Percent)
		pos := NewPoint(slice.Swatch.Right()+st.Label.Gap, top+st.Pie.Swatch/2)
		slice.Legend = st.text(str, pos, st.Text.Font)
		slice.Legend.Baseline = BaselineMiddle

		f.Slices = append(f.Slices, slice)
		angle += span
	}
}

func (c *Chart) layoutHorizontal(f *Frame, m Measurer) {
	var (
		st     = c.style
		plot   = f.Plot
		column = math.Min(st.HBar.LabelWidth, plot.W)
		bars   = NewRect(plot.X+column, plot.Y, positive(plot.W-column), plot.H)
		count  = float64(len(c.serie))
		space  = st.HBar.Spacing
		thick  = clamp((plot.H-space*(count-1))/count, st.HBar.MinThickness, st.HBar.MaxThickness)
		limit  = c.serie.Max()
		scale  = magnitudeScaler(limit, positive(bars.W-st.HBar.ValueStrip))
		y      = plot.Y
	)
	f.Axes = append(f.Axes, NewAxis(OrientLeft, bars))
	for i, e := range c.serie {
		var (
			width  = scale.Scale(e.Value)
			middle = y + thick/2
			bar    = BarShape{
				Entry: e,
				Index: i,
				Color: c.palette.At(i),
				Ratio: ratio(e.Value, limit),
				Rect:  NewRect(bars.X, y, width, thick),
			}
		)
		bar.Outline = st.outline(bar.Color)

		bar.ValueText = st.text(st.format(e.Value), NewPoint(bars.X+width+st.Label.Gap, middle), st.Text.Font)
		bar.ValueText.Baseline = BaselineMiddle

		str := fitText(m, e.Label, st.Label.Font, column-st.Label.Gap)
		bar.LabelText = st.text(str, NewPoint(bars.X-st.Label.Gap, middle), st.Label.Font)
		bar.LabelText.Anchor = AnchorEnd
		bar.LabelText.Baseline = BaselineMiddle

		f.Bars = append(f.Bars, bar)
		y += thick + space
	}
}

// Paint issues the drawing operations of the frame on the canvas.
func (f Frame) Paint(cv Canvas) {
	if f.Background != None {
		cv.FillRect(f.Bounds, f.Background)
	}
	if f.Title != nil {
		cv.DrawText(*f.Title)
	}
	if f.Placeholder != nil {
		cv.DrawText(*f.Placeholder)
		return
	}
	for _, a := range f.Axes {
		cv.DrawLine(a.Line, f.Foreground, f.LineWidth)
	}
	for _, b := range f.Bars {
		cv.FillRect(b.Rect, b.Color)
		cv.StrokeRect(b.Rect, b.Outline, f.LineWidth)
		cv.DrawText(b.ValueText)
		cv.DrawText(b.LabelText)
	}
	for _, s := range f.Slices {
		cv.FillWedge(s.Wedge, s.Color)
		cv.StrokeWedge(s.Wedge, s.Outline, f.LineWidth)
		cv.FillRect(s.Swatch, s.Color)
		cv.StrokeRect(s.Swatch, s.Outline, f.LineWidth)
		cv.DrawText(s.Legend)
	}
}

// fitText shortens str with an ellipsis until it fits in width.
func fitText(m Measurer, str string, font Font, width float64) string {
	if m == nil || m.MeasureText(str, font).W <= width {
		return str
	}
	const ellipsis = "…"
	rs := []rune(str)
	for n := len(rs) - 1; n > 0; n-- {
		x := string(rs[:n]) + ellipsis
		if m.MeasureText(x, font).W <= width {
			return x
		}
	}
	return ellipsis
}

func ratio(v, limit float64) float64 {
	if limit == 0 {
		limit = 1
	}
	return v / limit
}

func getPosFromAngle(center Point, angle, radius float64) Point {
	var (
		x = center.X + radius*math.Cos(angle*deg2rad)
		y = center.Y - radius*math.Sin(angle*deg2rad)
	)
	return NewPoint(x, y)
}
