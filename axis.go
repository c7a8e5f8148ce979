package chartview

type Orientation int

type Axis struct {
	Orient Orientation `json:"orient"`
	Line   Line        `json:"line"`
}

func NewAxis(orient Orientation, area Rect) Axis {
	return Axis{
		Orient: orient,
		Line:   domainLine(orient, area),
	}
}

const (
	OrientTop Orientation = 1 << iota
	OrientRight
	OrientBottom
	OrientLeft
)

// domainLine gives the line of an axis placed along the given side of the
// area.
func domainLine(orient Orientation, area Rect) Line {
	var from, to Point
	switch orient {
	case OrientTop:
		from, to = NewPoint(area.X, area.Y), NewPoint(area.Right(), area.Y)
	case OrientBottom:
		from, to = NewPoint(area.X, area.Bottom()), NewPoint(area.Right(), area.Bottom())
	case OrientLeft:
		from, to = NewPoint(area.X, area.Y), NewPoint(area.X, area.Bottom())
	case OrientRight:
		from, to = NewPoint(area.Right(), area.Y), NewPoint(area.Right(), area.Bottom())
	}
	return NewLine(from, to)
}
