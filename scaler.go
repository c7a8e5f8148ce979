package chartview

type Domain struct {
	fst float64
	lst float64
}

func NumberDomain(f, t float64) Domain {
	return Domain{
		fst: f,
		lst: t,
	}
}

func (d Domain) Diff(v float64) float64 {
	return v - d.fst
}

func (d Domain) Extend() float64 {
	return d.lst - d.fst
}

type Range struct {
	F float64
	T float64
}

func NewRange(f, t float64) Range {
	return Range{
		F: f,
		T: t,
	}
}

func (r Range) Len() float64 {
	return r.T - r.F
}

func (r Range) Max() float64 {
	return r.T
}

func (r Range) Min() float64 {
	return r.F
}

// Scaler maps values of its domain linearly onto its range.
type Scaler struct {
	Range
	Domain
}

func NumberScaler(dom Domain, rg Range) Scaler {
	return Scaler{
		Range:  rg,
		Domain: dom,
	}
}

// magnitudeScaler maps [0, limit] onto [0, length]. A limit of zero is
// replaced by one so that every value scales to zero.
func magnitudeScaler(limit, length float64) Scaler {
	if limit == 0 {
		limit = 1
	}
	return NumberScaler(NumberDomain(0, limit), NewRange(0, length))
}

func (s Scaler) Scale(v float64) float64 {
	return s.F + s.Diff(v)*s.Space()
}

func (s Scaler) Space() float64 {
	ext := s.Extend()
	if ext == 0 {
		return 0
	}
	return s.Len() / ext
}
