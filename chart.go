package chartview

import (
	"fmt"
)

// Chart is a surface rendering a single serie as a bar, pie or horizontal bar
// chart. It is not safe for concurrent use: the host is expected to call the
// setters and Draw from one goroutine.
type Chart struct {
	kind    Kind
	serie   Serie
	title   string
	palette Palette
	style   Style

	invalidate func()
}

type Option func(*Chart)

func WithStyle(style Style) Option {
	return func(c *Chart) {
		c.style = style
	}
}

func WithInvalidate(fn func()) Option {
	return func(c *Chart) {
		c.invalidate = fn
	}
}

func New(options ...Option) *Chart {
	c := Chart{
		kind:    Bar,
		palette: Category10.clone(),
		style:   DefaultStyle(),
	}
	for _, o := range options {
		o(&c)
	}
	return &c
}

// OnInvalidate registers the function called each time the state of the chart
// changes and a new frame should be drawn.
func (c *Chart) OnInvalidate(fn func()) {
	c.invalidate = fn
}

func (c *Chart) SetKind(kind Kind) error {
	if !kind.Valid() {
		return fmt.Errorf("%s: %w", kind, ErrInvalidConfiguration)
	}
	c.kind = kind
	c.redraw()
	return nil
}

func (c *Chart) SetSerie(serie Serie) error {
	if err := serie.Validate(); err != nil {
		return err
	}
	c.serie = serie.clone()
	c.redraw()
	return nil
}

func (c *Chart) SetTitle(title string) {
	c.title = title
	c.redraw()
}

func (c *Chart) SetPalette(palette Palette) error {
	if err := palette.Validate(); err != nil {
		return err
	}
	c.palette = palette.clone()
	c.redraw()
	return nil
}

func (c *Chart) SetStyle(style Style) {
	c.style = style
	c.redraw()
}

func (c *Chart) Kind() Kind {
	return c.kind
}

func (c *Chart) Serie() Serie {
	return c.serie.clone()
}

func (c *Chart) Title() string {
	return c.title
}

func (c *Chart) Palette() Palette {
	return c.palette.clone()
}

func (c *Chart) Style() Style {
	return c.style
}

// Draw computes the layout of the chart inside bounds and paints it on the
// canvas.
func (c *Chart) Draw(cv Canvas, bounds Rect) Frame {
	f := c.Layout(bounds, cv)
	f.Paint(cv)
	return f
}

func (c *Chart) redraw() {
	if c.invalidate != nil {
		c.invalidate()
	}
}
