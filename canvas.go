package chartview

// Canvas is the set of drawing primitives a chart needs from its host. A
// Canvas given to Chart.Draw is only used for the duration of the call.
type Canvas interface {
	Measurer

	FillRect(Rect, Color)
	StrokeRect(Rect, Color, float64)
	FillWedge(Wedge, Color)
	StrokeWedge(Wedge, Color, float64)
	DrawLine(Line, Color, float64)
	DrawText(Text)
}

type Measurer interface {
	MeasureText(string, Font) Size
}

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func NewPoint(x, y float64) Point {
	return Point{
		X: x,
		Y: y,
	}
}

type Size struct {
	W float64 `json:"w"`
	H float64 `json:"h"`
}

type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

func NewRect(x, y, w, h float64) Rect {
	return Rect{
		X: x,
		Y: y,
		W: w,
		H: h,
	}
}

func (r Rect) Right() float64 {
	return r.X + r.W
}

func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

func (r Rect) Center() Point {
	return NewPoint(r.X+r.W/2, r.Y+r.H/2)
}

func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Inset shrinks the rectangle by the given padding. Width and height never
// become negative.
func (r Rect) Inset(p Padding) Rect {
	x := r
	x.X += p.Left
	x.Y += p.Top
	x.W = positive(r.W - p.Horizontal())
	x.H = positive(r.H - p.Vertical())
	return x
}

// Wedge is a slice of a circle. Angles are in degrees, counter clockwise
// starting at 3 o'clock.
type Wedge struct {
	Center Point   `json:"center"`
	Radius float64 `json:"radius"`
	Start  float64 `json:"start"`
	Span   float64 `json:"span"`
}

func (w Wedge) End() float64 {
	return w.Start + w.Span
}

// PointAt gives the point of the circle of the wedge at the given angle.
func (w Wedge) PointAt(angle float64) Point {
	return getPosFromAngle(w.Center, angle, w.Radius)
}

// Full reports whether the wedge covers the whole circle.
func (w Wedge) Full() bool {
	return w.Span >= fullcircle
}

type Line struct {
	From Point `json:"from"`
	To   Point `json:"to"`
}

func NewLine(from, to Point) Line {
	return Line{
		From: from,
		To:   to,
	}
}

type Anchor string

const (
	AnchorStart  Anchor = "start"
	AnchorMiddle Anchor = "middle"
	AnchorEnd    Anchor = "end"
)

type Baseline string

const (
	BaselineAuto    Baseline = "auto"
	BaselineMiddle  Baseline = "middle"
	BaselineHanging Baseline = "hanging"
)

type Font struct {
	Size float64 `json:"size"`
	Bold bool    `json:"bold,omitempty"`
}

func NewFont(size float64) Font {
	return Font{
		Size: size,
	}
}

func BoldFont(size float64) Font {
	f := NewFont(size)
	f.Bold = true
	return f
}

// Text is a string drawn at Pos. Rotate is in degrees, clockwise on screen,
// around Pos.
type Text struct {
	Content  string   `json:"content"`
	Pos      Point    `json:"pos"`
	Font     Font     `json:"font"`
	Color    Color    `json:"color"`
	Anchor   Anchor   `json:"anchor"`
	Baseline Baseline `json:"baseline"`
	Rotate   float64  `json:"rotate,omitempty"`
}

func NewText(str string, pos Point, font Font) Text {
	return Text{
		Content:  str,
		Pos:      pos,
		Font:     font,
		Color:    Black,
		Anchor:   AnchorStart,
		Baseline: BaselineAuto,
	}
}

// EstimateText gives an approximation of the size of a string for canvas
// without access to real font metrics.
func EstimateText(str string, font Font) Size {
	var (
		n     = float64(len([]rune(str)))
		ratio = 0.6
	)
	if font.Bold {
		ratio = 0.65
	}
	return Size{
		W: n * font.Size * ratio,
		H: font.Size * 1.2,
	}
}

func positive(f float64) float64 {
	if f < 0 {
		return 0
	}
	return f
}
