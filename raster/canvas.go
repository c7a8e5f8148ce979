// Package raster implements a chartview.Canvas drawing on an image with gg.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"sync"

	"github.com/fogleman/gg"
	"github.com/midbel/chartview"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

type Canvas struct {
	dc    *gg.Context
	faces map[chartview.Font]font.Face
}

func New(width, height int) *Canvas {
	return &Canvas{
		dc:    gg.NewContext(width, height),
		faces: make(map[chartview.Font]font.Face),
	}
}

// Encode draws the chart on a new canvas of the given dimension and writes
// it as a PNG image to w.
func Encode(w io.Writer, ch *chartview.Chart, width, height int) (chartview.Frame, error) {
	cv := New(width, height)
	f := ch.Draw(cv, chartview.NewRect(0, 0, float64(width), float64(height)))
	return f, cv.EncodePNG(w)
}

func (c *Canvas) EncodePNG(w io.Writer) error {
	return c.dc.EncodePNG(w)
}

func (c *Canvas) Image() image.Image {
	return c.dc.Image()
}

func (c *Canvas) FillRect(r chartview.Rect, col chartview.Color) {
	c.dc.DrawRectangle(r.X, r.Y, r.W, r.H)
	c.dc.SetColor(getColor(col))
	c.dc.Fill()
}

func (c *Canvas) StrokeRect(r chartview.Rect, col chartview.Color, width float64) {
	c.dc.DrawRectangle(r.X, r.Y, r.W, r.H)
	c.stroke(col, width)
}

func (c *Canvas) FillWedge(w chartview.Wedge, col chartview.Color) {
	if !c.wedge(w) {
		return
	}
	c.dc.SetColor(getColor(col))
	c.dc.Fill()
}

func (c *Canvas) StrokeWedge(w chartview.Wedge, col chartview.Color, width float64) {
	if !c.wedge(w) {
		return
	}
	c.stroke(col, width)
}

func (c *Canvas) DrawLine(li chartview.Line, col chartview.Color, width float64) {
	c.dc.DrawLine(li.From.X, li.From.Y, li.To.X, li.To.Y)
	c.stroke(col, width)
}

func (c *Canvas) DrawText(t chartview.Text) {
	c.dc.Push()
	defer c.dc.Pop()

	c.dc.SetFontFace(c.face(t.Font))
	c.dc.SetColor(getColor(t.Color))
	if t.Rotate != 0 {
		c.dc.RotateAbout(gg.Radians(t.Rotate), t.Pos.X, t.Pos.Y)
	}
	var ax, ay float64
	switch t.Anchor {
	case chartview.AnchorMiddle:
		ax = 0.5
	case chartview.AnchorEnd:
		ax = 1
	}
	switch t.Baseline {
	case chartview.BaselineMiddle:
		ay = 0.5
	case chartview.BaselineHanging:
		ay = 1
	}
	c.dc.DrawStringAnchored(t.Content, t.Pos.X, t.Pos.Y, ax, ay)
}

func (c *Canvas) MeasureText(str string, f chartview.Font) chartview.Size {
	c.dc.SetFontFace(c.face(f))
	w, h := c.dc.MeasureString(str)
	return chartview.Size{
		W: w,
		H: h,
	}
}

// wedge builds the path of the wedge. Screen angles grow clockwise so the
// angles of the wedge are negated.
func (c *Canvas) wedge(w chartview.Wedge) bool {
	if w.Span <= 0 || w.Radius <= 0 {
		return false
	}
	c.dc.NewSubPath()
	if !w.Full() {
		c.dc.MoveTo(w.Center.X, w.Center.Y)
	}
	c.dc.DrawArc(w.Center.X, w.Center.Y, w.Radius, gg.Radians(-w.Start), gg.Radians(-w.End()))
	c.dc.ClosePath()
	return true
}

func (c *Canvas) stroke(col chartview.Color, width float64) {
	c.dc.SetColor(getColor(col))
	c.dc.SetLineWidth(width)
	c.dc.Stroke()
}

func (c *Canvas) face(f chartview.Font) font.Face {
	if face, ok := c.faces[f]; ok {
		return face
	}
	face, err := loadFace(f)
	if err != nil {
		face = fallbackFace()
	}
	c.faces[f] = face
	return face
}

var (
	parseOnce sync.Once
	regular   *opentype.Font
	bold      *opentype.Font
	parseErr  error
)

func loadFace(f chartview.Font) (font.Face, error) {
	parseOnce.Do(func() {
		regular, parseErr = opentype.Parse(goregular.TTF)
		if parseErr != nil {
			return
		}
		bold, parseErr = opentype.Parse(gobold.TTF)
	})
	if parseErr != nil {
		return nil, fmt.Errorf("parsing go fonts: %w", parseErr)
	}
	size := f.Size
	if size <= 0 {
		size = chartview.FontSize
	}
	ft := regular
	if f.Bold {
		ft = bold
	}
	return opentype.NewFace(ft, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

func fallbackFace() font.Face {
	return basicfont.Face7x13
}

func getColor(c chartview.Color) color.Color {
	rgba, err := c.Parse()
	if err != nil {
		return color.Black
	}
	return rgba
}
