// Package svgcanvas implements a chartview.Canvas producing SVG documents.
package svgcanvas

import (
	"bufio"
	"io"

	"github.com/midbel/chartview"
	"github.com/midbel/svg"
)

const (
	halfcircle = 180.0
	boldStroke = 0.4
)

// Canvas collects the elements drawn on it until Render is called. The
// zero value is not usable, use New.
type Canvas struct {
	Width  float64
	Height float64
	Prolog bool

	elements []svg.Element
}

func New(width, height float64) *Canvas {
	return &Canvas{
		Width:  width,
		Height: height,
	}
}

// Encode draws the chart on a new canvas of the given dimension and writes
// the resulting document to w.
func Encode(w io.Writer, ch *chartview.Chart, width, height float64) (chartview.Frame, error) {
	cv := New(width, height)
	f := ch.Draw(cv, chartview.NewRect(0, 0, width, height))
	return f, cv.Render(w)
}

func (c *Canvas) Render(w io.Writer) error {
	el := svg.NewSVG(svg.WithDimension(c.Width, c.Height))
	el.OmitProlog = !c.Prolog
	for _, e := range c.elements {
		el.Append(e)
	}
	bw := bufio.NewWriter(w)
	el.Render(bw)
	return bw.Flush()
}

func (c *Canvas) Len() int {
	return len(c.elements)
}

func (c *Canvas) FillRect(r chartview.Rect, col chartview.Color) {
	var el svg.Rect
	el.Pos = svg.NewPos(r.X, r.Y)
	el.Dim = svg.NewDim(r.W, r.H)
	el.Fill = svg.NewFill(string(col))
	c.append(el.AsElement())
}

func (c *Canvas) StrokeRect(r chartview.Rect, col chartview.Color, width float64) {
	pat := getStrokePath(col, width)
	pat.AbsMoveTo(svg.NewPos(r.X, r.Y))
	pat.AbsLineTo(svg.NewPos(r.Right(), r.Y))
	pat.AbsLineTo(svg.NewPos(r.Right(), r.Bottom()))
	pat.AbsLineTo(svg.NewPos(r.X, r.Bottom()))
	pat.ClosePath()
	c.append(pat.AsElement())
}

func (c *Canvas) FillWedge(w chartview.Wedge, col chartview.Color) {
	if w.Span <= 0 || w.Radius <= 0 {
		return
	}
	pat := svg.NewPath()
	pat.Rendering = "geometricPrecision"
	pat.Fill = svg.NewFill(string(col))
	wedgePath(&pat, w)
	c.append(pat.AsElement())
}

func (c *Canvas) StrokeWedge(w chartview.Wedge, col chartview.Color, width float64) {
	if w.Span <= 0 || w.Radius <= 0 {
		return
	}
	pat := getStrokePath(col, width)
	wedgePath(&pat, w)
	c.append(pat.AsElement())
}

func (c *Canvas) DrawLine(li chartview.Line, col chartview.Color, width float64) {
	el := svg.NewLine(getPos(li.From), getPos(li.To))
	el.Stroke = svg.NewStroke(string(col), width)
	c.append(el.AsElement())
}

func (c *Canvas) DrawText(t chartview.Text) {
	txt := svg.NewText(t.Content)
	txt.Pos = getPos(t.Pos)
	txt.Font = svg.NewFont(t.Font.Size)
	switch t.Anchor {
	case chartview.AnchorMiddle:
		txt.Anchor = "middle"
	case chartview.AnchorEnd:
		txt.Anchor = "end"
	default:
		txt.Anchor = "start"
	}
	switch t.Baseline {
	case chartview.BaselineMiddle:
		txt.Baseline = "middle"
	case chartview.BaselineHanging:
		txt.Baseline = "hanging"
	default:
		txt.Baseline = "auto"
	}

	var grp svg.Group
	grp.Fill = svg.NewFill(string(t.Color))
	if t.Font.Bold {
		grp.Stroke = svg.NewStroke(string(t.Color), boldStroke)
	}
	if t.Rotate != 0 {
		grp.Transform.RA = t.Rotate
		grp.Transform.RX = t.Pos.X
		grp.Transform.RY = t.Pos.Y
	}
	grp.Append(txt.AsElement())
	c.append(grp.AsElement())
}

func (c *Canvas) MeasureText(str string, font chartview.Font) chartview.Size {
	return chartview.EstimateText(str, font)
}

func (c *Canvas) append(el svg.Element) {
	c.elements = append(c.elements, el)
}

// wedgePath draws the outline of the wedge. A wedge covering the whole circle
// is drawn with two half arcs since an arc can not join a point to itself.
func wedgePath(pat *svg.Path, w chartview.Wedge) {
	if w.Full() {
		pat.AbsMoveTo(getPos(w.PointAt(w.Start)))
		pat.AbsArcTo(getPos(w.PointAt(w.Start+halfcircle)), w.Radius, w.Radius, 0, false, false)
		pat.AbsArcTo(getPos(w.PointAt(w.Start)), w.Radius, w.Radius, 0, false, false)
		pat.ClosePath()
		return
	}
	pat.AbsMoveTo(getPos(w.Center))
	pat.AbsLineTo(getPos(w.PointAt(w.Start)))
	pat.AbsArcTo(getPos(w.PointAt(w.End())), w.Radius, w.Radius, 0, w.Span > halfcircle, false)
	pat.ClosePath()
}

func getStrokePath(col chartview.Color, width float64) svg.Path {
	pat := svg.NewPath()
	pat.Rendering = "geometricPrecision"
	pat.Stroke = svg.NewStroke(string(col), width)
	pat.Fill = svg.NewFill("none")
	return pat
}

func getPos(p chartview.Point) svg.Pos {
	return svg.NewPos(p.X, p.Y)
}
