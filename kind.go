package chartview

import (
	"fmt"
	"strings"
)

type Kind int

const (
	Bar Kind = iota
	Pie
	HorizontalBar
)

func ParseKind(str string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(str)) {
	case "bar", "":
		return Bar, nil
	case "pie":
		return Pie, nil
	case "hbar", "horizontal-bar", "horizontal":
		return HorizontalBar, nil
	default:
		return 0, fmt.Errorf("%s: unrecognized chart kind: %w", str, ErrInvalidConfiguration)
	}
}

func (k Kind) Valid() bool {
	return k == Bar || k == Pie || k == HorizontalBar
}

func (k Kind) String() string {
	switch k {
	case Bar:
		return "bar"
	case Pie:
		return "pie"
	case HorizontalBar:
		return "hbar"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%s: %w", k, ErrInvalidConfiguration)
	}
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(b []byte) error {
	x, err := ParseKind(string(b))
	if err == nil {
		*k = x
	}
	return err
}
