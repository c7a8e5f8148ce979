package chartview

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// Color is a css like color: #rgb, #rrggbb or a color name (steelblue).
type Color string

const (
	Black Color = "black"
	White Color = "white"
	None  Color = ""
)

type Palette []Color

var (
	Category10 Palette
	Tableau10  Palette
)

func init() {
	Category10 = splitColorString("1f77b4ff7f0e2ca02cd627289467bd8c564be377c27f7f7fbcbd2217becf")
	Tableau10 = splitColorString("4e79a7f28e2ce1575976b7b259a14fedc949af7aa1ff9da79c755fbab0ab")
}

func splitColorString(str string) Palette {
	var arr Palette
	for i := 0; i+6 <= len(str); i += 6 {
		arr = append(arr, Color("#"+str[i:i+6]))
	}
	return arr
}

// GeneratePalette returns n colors with hues evenly spread around the HCL
// color wheel.
func GeneratePalette(n int) Palette {
	if n <= 0 {
		return nil
	}
	arr := make(Palette, n)
	for i := range arr {
		c := colorful.Hcl(float64(i)*360/float64(n), 0.5, 0.6).Clamped()
		arr[i] = Color(c.Hex())
	}
	return arr
}

// At returns the color of the entry at the given position.
func (p Palette) At(i int) Color {
	if len(p) == 0 {
		return Black
	}
	if i < 0 {
		i = -i
	}
	return p[i%len(p)]
}

func (p Palette) Validate() error {
	if len(p) == 0 {
		return PaletteError{
			Err: fmt.Errorf("no colors"),
		}
	}
	for i, c := range p {
		if _, err := c.Parse(); err != nil {
			return PaletteError{
				Index: i,
				Color: c,
				Err:   err,
			}
		}
	}
	return nil
}

func (p Palette) clone() Palette {
	x := make(Palette, len(p))
	copy(x, p)
	return x
}

// Parse returns the RGBA value of the color.
func (c Color) Parse() (color.RGBA, error) {
	str := strings.ToLower(strings.TrimSpace(string(c)))
	if str == "" {
		return color.RGBA{}, fmt.Errorf("empty color")
	}
	if rgba, ok := colornames.Map[str]; ok {
		return rgba, nil
	}
	if !strings.HasPrefix(str, "#") {
		return color.RGBA{}, fmt.Errorf("%s: unknown color", c)
	}
	x, err := colorful.Hex(str)
	if err != nil {
		return color.RGBA{}, err
	}
	r, g, b := x.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}

// Darken returns the color blended toward black in Lab space. Colors that can
// not be parsed are returned as is.
func (c Color) Darken(factor float64) Color {
	rgba, err := c.Parse()
	if err != nil {
		return c
	}
	x, ok := colorful.MakeColor(rgba)
	if !ok {
		return c
	}
	x = x.BlendLab(colorful.Color{}, factor).Clamped()
	return Color(x.Hex())
}
