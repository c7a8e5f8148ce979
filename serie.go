package chartview

import (
	"math"
	"sort"
)

// Entry is one labelled value of a Serie.
type Entry struct {
	Label string  `json:"label" yaml:"label"`
	Value float64 `json:"value" yaml:"value"`
}

func CategoryEntry(label string, value float64) Entry {
	return Entry{
		Label: label,
		Value: value,
	}
}

// Serie is an ordered sequence of entries. The order of the entries is the
// order in which they are drawn and the order used to pick their colors.
type Serie []Entry

// FromMap creates a Serie from the given map with its entries sorted by label.
func FromMap(values map[string]float64) Serie {
	s := make(Serie, 0, len(values))
	for k, v := range values {
		s = append(s, CategoryEntry(k, v))
	}
	sort.Slice(s, func(i, j int) bool {
		return s[i].Label < s[j].Label
	})
	return s
}

// Set updates the value of the entry with the given label or appends a new
// entry at the end of the serie.
func (s Serie) Set(label string, value float64) Serie {
	if i := s.Index(label); i >= 0 {
		s[i].Value = value
		return s
	}
	return append(s, CategoryEntry(label, value))
}

func (s Serie) Index(label string) int {
	for i := range s {
		if s[i].Label == label {
			return i
		}
	}
	return -1
}

func (s Serie) Labels() []string {
	list := make([]string, len(s))
	for i := range s {
		list[i] = s[i].Label
	}
	return list
}

func (s Serie) Max() float64 {
	var max float64
	for i, e := range s {
		if i == 0 || e.Value > max {
			max = e.Value
		}
	}
	return max
}

func (s Serie) Sum() float64 {
	var sum float64
	for _, e := range s {
		sum += e.Value
	}
	return sum
}

func (s Serie) Len() int {
	return len(s)
}

// Validate reports the first entry with a negative, NaN or infinite value or
// with a label already used by a previous entry.
func (s Serie) Validate() error {
	seen := make(map[string]struct{}, len(s))
	for _, e := range s {
		if math.IsNaN(e.Value) || math.IsInf(e.Value, 0) || e.Value < 0 {
			return SerieError{
				Label: e.Label,
				Value: e.Value,
				Err:   ErrInvalidSerieValue,
			}
		}
		if _, ok := seen[e.Label]; ok {
			return SerieError{
				Label: e.Label,
				Value: e.Value,
				Err:   ErrDuplicateLabel,
			}
		}
		seen[e.Label] = struct{}{}
	}
	return nil
}

func (s Serie) clone() Serie {
	if len(s) == 0 {
		return nil
	}
	x := make(Serie, len(s))
	copy(x, s)
	return x
}
