package chartview

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var bounds = NewRect(0, 0, 800, 600)

func abc() Serie {
	return Serie{
		CategoryEntry("A", 10),
		CategoryEntry("B", 20),
		CategoryEntry("C", 30),
	}
}

func createSerie(n int, value func(int) float64) Serie {
	var s Serie
	for i := 0; i < n; i++ {
		s = append(s, CategoryEntry(fmt.Sprintf("entry-%02d", i), value(i)))
	}
	return s
}

func createChart(t *testing.T, kind Kind, serie Serie) *Chart {
	t.Helper()
	c := New()
	require.NoError(t, c.SetKind(kind))
	require.NoError(t, c.SetSerie(serie))
	return c
}

func TestLayout_EntriesMatchPrimitives(t *testing.T) {
	for _, kind := range []Kind{Bar, Pie, HorizontalBar} {
		for _, n := range []int{1, 3, 7, 50} {
			t.Run(fmt.Sprintf("%s/%d", kind, n), func(t *testing.T) {
				var (
					c   = createChart(t, kind, createSerie(n, func(i int) float64 { return float64(i + 1) }))
					rec Recorder
				)
				f := c.Draw(&rec, bounds)
				switch kind {
				case Pie:
					assert.Len(t, f.Slices, n)
					assert.Empty(t, f.Bars)
					assert.Equal(t, n, rec.Count(OpFillWedge))
					assert.Equal(t, n, rec.Count(OpStrokeWedge))
					assert.Equal(t, n, rec.Count(OpFillRect))
					assert.Equal(t, n, rec.Count(OpText))
				default:
					assert.Len(t, f.Bars, n)
					assert.Empty(t, f.Slices)
					assert.Equal(t, n, rec.Count(OpFillRect))
					assert.Equal(t, n, rec.Count(OpStrokeRect))
					assert.Equal(t, 2*n, rec.Count(OpText))
					assert.Zero(t, rec.Count(OpFillWedge))
				}
			})
		}
	}
}

func TestLayout_ColorByPosition(t *testing.T) {
	palette := Palette{"red", "green", "#0000ff"}
	for _, kind := range []Kind{Bar, Pie, HorizontalBar} {
		t.Run(kind.String(), func(t *testing.T) {
			c := createChart(t, kind, createSerie(8, func(i int) float64 { return 5 }))
			require.NoError(t, c.SetPalette(palette))

			var rec Recorder
			f := c.Draw(&rec, bounds)
			var colors []Color
			for _, b := range f.Bars {
				colors = append(colors, b.Color)
			}
			for _, s := range f.Slices {
				colors = append(colors, s.Color)
			}
			require.Len(t, colors, 8)
			for i, c := range colors {
				assert.Equal(t, palette[i%len(palette)], c, "entry %d", i)
			}

			var fills []Op
			if kind == Pie {
				fills = rec.Filter(OpFillWedge)
			} else {
				fills = rec.Filter(OpFillRect)
			}
			for i, o := range fills {
				assert.Equal(t, palette[i%len(palette)], o.Color, "entry %d", i)
			}
		})
	}
}

func TestLayout_Pie(t *testing.T) {
	c := createChart(t, Pie, abc())
	f := c.Layout(bounds, nil)
	require.Len(t, f.Slices, 3)

	var (
		spans = []float64{60, 120, 180}
		start float64
		total float64
	)
	for i, s := range f.Slices {
		assert.InDelta(t, start, s.Wedge.Start, 1e-9)
		assert.InDelta(t, spans[i], s.Wedge.Span, 1e-9)
		start += s.Wedge.Span
		total += s.Wedge.Span
	}
	assert.Zero(t, f.Slices[0].Wedge.Start)
	assert.InDelta(t, fullcircle, total, 1e-9)

	assert.Equal(t, "A (16.7%)", f.Slices[0].Legend.Content)
	assert.Equal(t, "B (33.3%)", f.Slices[1].Legend.Content)
	assert.Equal(t, "C (50.0%)", f.Slices[2].Legend.Content)

	w := f.Slices[0].Wedge
	assert.Equal(t, 250.0, w.Radius)
	assert.Equal(t, NewPoint(325, 300), w.Center)

	for i := 1; i < len(f.Slices); i++ {
		assert.Greater(t, f.Slices[i].Swatch.Y, f.Slices[i-1].Swatch.Y)
	}
}

func TestLayout_PieFullTurn(t *testing.T) {
	s := createSerie(7, func(i int) float64 { return 1.0 / 3.0 })
	f := createChart(t, Pie, s).Layout(bounds, nil)

	var total float64
	for _, s := range f.Slices {
		total += s.Wedge.Span
	}
	assert.InDelta(t, fullcircle, total, 1e-9)
}

func TestLayout_PieAllZero(t *testing.T) {
	f := createChart(t, Pie, createSerie(4, func(int) float64 { return 0 })).Layout(bounds, nil)
	require.Len(t, f.Slices, 4)
	for _, s := range f.Slices {
		assert.Zero(t, s.Wedge.Start)
		assert.Zero(t, s.Wedge.Span)
		assert.Zero(t, s.Percent)
	}
}

func TestLayout_BarMaxFillsAxis(t *testing.T) {
	st := DefaultStyle()

	f := createChart(t, Bar, abc()).Layout(bounds, nil)
	usable := f.Plot.H - st.Bar.ValueStrip
	require.Len(t, f.Bars, 3)
	assert.Equal(t, 1.0, f.Bars[2].Ratio)
	assert.InDelta(t, usable, f.Bars[2].Rect.H, 1e-9)
	assert.InDelta(t, usable/3, f.Bars[0].Rect.H, 1e-9)
	for _, b := range f.Bars {
		assert.InDelta(t, f.Plot.Bottom(), b.Rect.Bottom(), 1e-9)
	}
	assert.Len(t, f.Axes, 2)

	f = createChart(t, HorizontalBar, abc()).Layout(bounds, nil)
	usable = f.Plot.W - st.HBar.LabelWidth - st.HBar.ValueStrip
	require.Len(t, f.Bars, 3)
	assert.Equal(t, 1.0, f.Bars[2].Ratio)
	assert.InDelta(t, usable, f.Bars[2].Rect.W, 1e-9)
	assert.InDelta(t, f.Plot.X+st.HBar.LabelWidth, f.Bars[0].Rect.X, 1e-9)
	assert.Len(t, f.Axes, 1)
}

func TestLayout_AllZeroBars(t *testing.T) {
	for _, kind := range []Kind{Bar, HorizontalBar} {
		t.Run(kind.String(), func(t *testing.T) {
			var rec Recorder
			f := createChart(t, kind, createSerie(5, func(int) float64 { return 0 })).Draw(&rec, bounds)
			require.Len(t, f.Bars, 5)
			for _, b := range f.Bars {
				assert.Zero(t, b.Ratio)
				if kind == Bar {
					assert.Zero(t, b.Rect.H)
				} else {
					assert.Zero(t, b.Rect.W)
				}
			}
		})
	}
}

func TestLayout_Clamping(t *testing.T) {
	st := DefaultStyle()
	for _, n := range []int{1, 2, 10, 50} {
		serie := createSerie(n, func(i int) float64 { return float64(i) })

		f := createChart(t, Bar, serie).Layout(bounds, nil)
		for _, b := range f.Bars {
			assert.GreaterOrEqual(t, b.Rect.W, st.Bar.MinWidth)
			assert.LessOrEqual(t, b.Rect.W, st.Bar.MaxWidth)
		}

		f = createChart(t, HorizontalBar, serie).Layout(bounds, nil)
		for _, b := range f.Bars {
			assert.GreaterOrEqual(t, b.Rect.H, st.HBar.MinThickness)
			assert.LessOrEqual(t, b.Rect.H, st.HBar.MaxThickness)
		}
	}

	one := createSerie(1, func(int) float64 { return 1 })
	assert.Equal(t, st.Bar.MaxWidth, createChart(t, Bar, one).Layout(bounds, nil).Bars[0].Rect.W)
	assert.Equal(t, st.HBar.MaxThickness, createChart(t, HorizontalBar, one).Layout(bounds, nil).Bars[0].Rect.H)

	many := createSerie(50, func(int) float64 { return 1 })
	assert.Equal(t, st.Bar.MinWidth, createChart(t, Bar, many).Layout(bounds, nil).Bars[0].Rect.W)
	assert.Equal(t, st.HBar.MinThickness, createChart(t, HorizontalBar, many).Layout(bounds, nil).Bars[0].Rect.H)
}

func TestLayout_BarSpacing(t *testing.T) {
	st := DefaultStyle()
	f := createChart(t, Bar, abc()).Layout(bounds, nil)
	for i := 1; i < len(f.Bars); i++ {
		prev := f.Bars[i-1].Rect
		assert.InDelta(t, prev.Right()+st.Bar.Spacing, f.Bars[i].Rect.X, 1e-9)
	}
	label := f.Bars[0].LabelText
	assert.Equal(t, st.Label.Rotate, label.Rotate)
	assert.Greater(t, label.Pos.Y, f.Plot.Bottom())
	assert.Less(t, f.Bars[0].ValueText.Pos.Y, f.Bars[0].Rect.Y)
	assert.Equal(t, "10", f.Bars[0].ValueText.Content)
}

func TestLayout_EmptySerie(t *testing.T) {
	for _, kind := range []Kind{Bar, Pie, HorizontalBar} {
		t.Run(kind.String(), func(t *testing.T) {
			c := New()
			require.NoError(t, c.SetKind(kind))

			var rec Recorder
			f := c.Draw(&rec, bounds)
			require.NotNil(t, f.Placeholder)
			assert.Nil(t, f.Title)
			require.Len(t, rec.Ops, 1)
			assert.Equal(t, OpText, rec.Ops[0].Kind)
			assert.Equal(t, "No data to display", rec.Ops[0].Text.Content)
			assert.Equal(t, bounds.Center(), rec.Ops[0].Text.Pos)

			c.SetTitle("title")
			rec.Reset()
			c.Draw(&rec, bounds)
			require.Len(t, rec.Ops, 2)
			assert.Equal(t, "title", rec.Ops[0].Text.Content)
			assert.Equal(t, "No data to display", rec.Ops[1].Text.Content)
		})
	}
}

func TestLayout_TitleBand(t *testing.T) {
	st := DefaultStyle()
	c := createChart(t, Bar, abc())

	f := c.Layout(bounds, nil)
	assert.Nil(t, f.Title)
	assert.Equal(t, bounds, f.Area)

	c.SetTitle("Languages")
	g := c.Layout(bounds, nil)
	require.NotNil(t, g.Title)
	assert.Equal(t, f.Area.Y+st.Title.Height, g.Area.Y)
	assert.Equal(t, f.Area.H-st.Title.Height, g.Area.H)
	assert.Equal(t, f.Plot.Y+st.Title.Height, g.Plot.Y)
	assert.True(t, g.Title.Font.Bold)
	assert.Equal(t, AnchorMiddle, g.Title.Anchor)
	assert.Equal(t, bounds.W/2, g.Title.Pos.X)
	assert.Less(t, g.Title.Pos.Y, g.Area.Y)

	c.SetTitle("")
	assert.Equal(t, f.Area, c.Layout(bounds, nil).Area)
}

func TestLayout_TinyBounds(t *testing.T) {
	for _, kind := range []Kind{Bar, Pie, HorizontalBar} {
		c := createChart(t, kind, abc())
		c.SetTitle("title")
		f := c.Layout(NewRect(0, 0, 20, 20), nil)
		assert.Zero(t, f.Plot.W)
		assert.Zero(t, f.Plot.H)
		for _, b := range f.Bars {
			assert.GreaterOrEqual(t, b.Rect.W, 0.0)
			assert.GreaterOrEqual(t, b.Rect.H, 0.0)
		}
		for _, s := range f.Slices {
			assert.GreaterOrEqual(t, s.Wedge.Radius, 0.0)
		}
	}
}

func TestLayout_HorizontalLabels(t *testing.T) {
	var (
		long = "a label much too long to fit in the label column"
		c    = createChart(t, HorizontalBar, Serie{CategoryEntry(long, 1), CategoryEntry("short", 2)})
		rec  Recorder
		st   = DefaultStyle()
	)
	f := c.Draw(&rec, bounds)
	require.Len(t, f.Bars, 2)

	label := f.Bars[0].LabelText
	assert.NotEqual(t, long, label.Content)
	assert.Contains(t, label.Content, "…")
	assert.LessOrEqual(t, rec.MeasureText(label.Content, label.Font).W, st.HBar.LabelWidth-st.Label.Gap)
	assert.Equal(t, AnchorEnd, label.Anchor)
	assert.Equal(t, f.Bars[0].Rect.Center().Y, label.Pos.Y)

	assert.Equal(t, "short", f.Bars[1].LabelText.Content)
	assert.Equal(t, f.Bars[1].Rect.Right()+st.Label.Gap, f.Bars[1].ValueText.Pos.X)

	f = c.Layout(bounds, nil)
	assert.Equal(t, long, f.Bars[0].LabelText.Content)
}

func TestFrame_PaintOrder(t *testing.T) {
	c := New(WithStyle(DefaultStyle()))
	c.SetTitle("sales")
	require.NoError(t, c.SetKind(Pie))
	require.NoError(t, c.SetSerie(abc()))

	var rec Recorder
	c.Draw(&rec, bounds)

	want := []OpKind{OpText}
	for range abc() {
		want = append(want, OpFillWedge, OpStrokeWedge, OpFillRect, OpStrokeRect, OpText)
	}
	var got []OpKind
	for _, o := range rec.Ops {
		got = append(got, o.Kind)
	}
	assert.Equal(t, want, got)
}

func TestFrame_Outline(t *testing.T) {
	st := DefaultStyle()
	st.Outline = "black"
	st.Background = "white"

	c := New(WithStyle(st))
	require.NoError(t, c.SetSerie(abc()))

	var rec Recorder
	c.Draw(&rec, bounds)
	fills := rec.Filter(OpFillRect)
	require.Len(t, fills, 4)
	assert.Equal(t, bounds, fills[0].Rect)
	assert.Equal(t, White, fills[0].Color)
	for _, o := range rec.Filter(OpStrokeRect) {
		assert.Equal(t, Black, o.Color)
	}
	assert.Equal(t, 2, rec.Count(OpLine))
}
