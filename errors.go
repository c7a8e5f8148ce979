package chartview

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidConfiguration = errors.New("invalid configuration")
	ErrInvalidSerieValue    = errors.New("invalid serie value")
	ErrDuplicateLabel       = errors.New("duplicate label")
)

type SerieError struct {
	Label string
	Value float64
	Err   error
}

func (e SerieError) Error() string {
	return fmt.Sprintf("%s: %s (%g)", e.Label, e.Err, e.Value)
}

func (e SerieError) Unwrap() error {
	return e.Err
}

type PaletteError struct {
	Index int
	Color Color
	Err   error
}

func (e PaletteError) Error() string {
	if e.Color == "" {
		return fmt.Sprintf("palette: %s", e.Err)
	}
	return fmt.Sprintf("palette: color %q at %d: %s", e.Color, e.Index, e.Err)
}

func (e PaletteError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrInvalidConfiguration}
	}
	return []error{ErrInvalidConfiguration, e.Err}
}
