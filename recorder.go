package chartview

type OpKind string

const (
	OpFillRect    OpKind = "fill-rect"
	OpStrokeRect  OpKind = "stroke-rect"
	OpFillWedge   OpKind = "fill-wedge"
	OpStrokeWedge OpKind = "stroke-wedge"
	OpLine        OpKind = "line"
	OpText        OpKind = "text"
)

type Op struct {
	Kind  OpKind
	Color Color
	Width float64
	Rect  Rect
	Wedge Wedge
	Line  Line
	Text  Text
}

// Recorder is a Canvas keeping the list of the operations drawn on it. Text
// is measured with EstimateText.
type Recorder struct {
	Ops []Op
}

func (r *Recorder) FillRect(rect Rect, c Color) {
	r.record(Op{Kind: OpFillRect, Rect: rect, Color: c})
}

func (r *Recorder) StrokeRect(rect Rect, c Color, width float64) {
	r.record(Op{Kind: OpStrokeRect, Rect: rect, Color: c, Width: width})
}

func (r *Recorder) FillWedge(w Wedge, c Color) {
	r.record(Op{Kind: OpFillWedge, Wedge: w, Color: c})
}

func (r *Recorder) StrokeWedge(w Wedge, c Color, width float64) {
	r.record(Op{Kind: OpStrokeWedge, Wedge: w, Color: c, Width: width})
}

func (r *Recorder) DrawLine(li Line, c Color, width float64) {
	r.record(Op{Kind: OpLine, Line: li, Color: c, Width: width})
}

func (r *Recorder) DrawText(t Text) {
	r.record(Op{Kind: OpText, Text: t, Color: t.Color})
}

func (r *Recorder) MeasureText(str string, font Font) Size {
	return EstimateText(str, font)
}

// Filter returns the operations of the given kind in the order they were
// drawn.
func (r *Recorder) Filter(kind OpKind) []Op {
	var list []Op
	for _, o := range r.Ops {
		if o.Kind == kind {
			list = append(list, o)
		}
	}
	return list
}

func (r *Recorder) Count(kind OpKind) int {
	return len(r.Filter(kind))
}

func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}

func (r *Recorder) record(o Op) {
	r.Ops = append(r.Ops, o)
}
