// Package render turns a dataset into the heat-map scene graph and serializes
// it as SVG or as a complete HTML page.
package render

import (
	"strconv"

	"github.com/okian/tempmap/internal/domain/model"
	"github.com/okian/tempmap/internal/domain/palette"
	"github.com/okian/tempmap/internal/domain/scale"
	"github.com/okian/tempmap/internal/domain/tooltip"
)

// Layout constants in pixels.
const (
	Width          = 1200
	Height         = 700
	Padding        = 60
	LegendPaddingX = 350
	LegendPaddingY = 25
	SwatchWidth    = 30
	SwatchHeight   = 20
	monthsPerYear  = 12
	yearTickEvery  = 10
)

// Orient is the side of the axis line that ticks are drawn on.
type Orient string

// Axis orientations.
const (
	OrientBottom Orient = "bottom"
	OrientLeft   Orient = "left"
)

// Axis is a positioned axis with its ticks.
type Axis struct {
	ID         string
	Orient     Orient
	TranslateX float64
	TranslateY float64
	RangeStart float64
	RangeEnd   float64
	Ticks      []scale.Tick
}

// Swatch is one legend rectangle.
type Swatch struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
	Fill   string
}

// Cell is one month rectangle.
type Cell struct {
	X           float64
	Y           float64
	Width       float64
	Height      float64
	Year        int
	Month       int
	DataMonth   int // zero-based month for data-month
	Temperature float64
	Variance    float64
	Fill        string
	Bucket      int
	Tooltip     string
}

// Chart is the rendered scene graph.
type Chart struct {
	Width           float64
	Height          float64
	BaseTemperature float64
	FirstYear       int
	LastYear        int
	XAxis           Axis
	YAxis           Axis
	LegendAxis      Axis
	Legend          []Swatch
	Cells           []Cell
	Tooltip         tooltip.State
}

// Empty reports whether the chart has no cells.
func (c *Chart) Empty() bool {
	return c == nil || len(c.Cells) == 0
}

// BucketCounts returns the number of cells per bucket color.
func (c *Chart) BucketCounts() map[string]int {
	counts := make(map[string]int, palette.Count)
	for _, color := range palette.Colors() {
		counts[color] = 0
	}
	if c == nil {
		return counts
	}
	for _, cell := range c.Cells {
		counts[cell.Fill]++
	}
	return counts
}

// Render builds the heat-map for ds. It performs no I/O and never panics on an
// empty dataset.
func Render(ds model.Dataset) *Chart {
	years := ds.Years()
	x := scale.NewBand(years, Padding, Width-Padding)
	y := scale.NewBand(ds.Months(), Height-Padding, Padding)

	c := &Chart{
		Width:           Width,
		Height:          Height,
		BaseTemperature: ds.BaseTemperature,
		XAxis:           xAxis(x),
		YAxis:           yAxis(y),
		LegendAxis:      legendAxis(),
		Legend:          legendSwatches(),
		Cells:           make([]Cell, 0, ds.Len()),
		Tooltip:         tooltip.Hidden(),
	}
	if len(years) > 0 {
		c.FirstYear, c.LastYear = years[0], years[0]
		for _, yr := range years {
			c.FirstYear = min(c.FirstYear, yr)
			c.LastYear = max(c.LastYear, yr)
		}
	}

	span := ds.YearSpan()
	if span == 0 {
		span = 1
	}
	cellWidth := float64(Width-2*Padding) / float64(span)
	cellHeight := float64(Height-2*Padding) / monthsPerYear

	for _, rec := range ds.MonthlyVariance {
		px, _ := x.Position(rec.Year)
		py, _ := y.Position(rec.Month)
		temp := ds.Temperature(rec)
		bucket := palette.Classify(temp)
		c.Cells = append(c.Cells, Cell{
			X:           px,
			Y:           py,
			Width:       cellWidth,
			Height:      cellHeight,
			Year:        rec.Year,
			Month:       rec.Month,
			DataMonth:   rec.Month - 1,
			Temperature: temp,
			Variance:    rec.Variance,
			Fill:        bucket.Color,
			Bucket:      bucket.Index,
			Tooltip:     tooltip.Text(rec, ds.BaseTemperature),
		})
	}
	return c
}

func xAxis(x *scale.Band[int]) Axis {
	r0, r1 := x.Range()
	return Axis{
		ID:         "x-axis",
		Orient:     OrientBottom,
		TranslateY: Height - Padding,
		RangeStart: r0,
		RangeEnd:   r1,
		Ticks: scale.BandTicks(x,
			func(year int) bool { return year%yearTickEvery == 0 },
			strconv.Itoa),
	}
}

func yAxis(y *scale.Band[int]) Axis {
	r0, r1 := y.Range()
	return Axis{
		ID:         "y-axis",
		Orient:     OrientLeft,
		TranslateX: Padding,
		RangeStart: r0,
		RangeEnd:   r1,
		Ticks: scale.BandTicks(y, nil, func(month int) string {
			name, ok := tooltip.MonthName(month)
			if !ok {
				return strconv.Itoa(month)
			}
			return name
		}),
	}
}

func legendAxis() Axis {
	values := palette.LegendValues()
	offsets := make([]float64, len(values))
	for i := range offsets {
		offsets[i] = float64(SwatchWidth * i)
	}
	legend := scale.NewOrdinal(values, offsets)
	return Axis{
		ID:         "legend-axis",
		Orient:     OrientBottom,
		TranslateX: Width - LegendPaddingX,
		TranslateY: LegendPaddingY,
		RangeStart: offsets[0],
		RangeEnd:   offsets[len(offsets)-1],
		Ticks: scale.OrdinalTicks(legend, func(v float64) string {
			return strconv.FormatFloat(v, 'f', -1, 64)
		}),
	}
}

func legendSwatches() []Swatch {
	colors := palette.Colors()
	out := make([]Swatch, len(colors))
	for i, color := range colors {
		out[i] = Swatch{
			X:      float64(SwatchWidth*i + Width - LegendPaddingX),
			Y:      LegendPaddingY - SwatchHeight,
			Width:  SwatchWidth,
			Height: SwatchHeight,
			Fill:   color,
		}
	}
	return out
}
