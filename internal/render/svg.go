package render

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
)

const (
	svgNamespace = "http://www.w3.org/2000/svg"
	tickSize     = 6
	tickPadding  = 3
)

type svgDoc struct {
	XMLName xml.Name   `xml:"svg"`
	NS      string     `xml:"xmlns,attr"`
	Width   float64    `xml:"width,attr"`
	Height  float64    `xml:"height,attr"`
	Axes    []svgGroup `xml:"g"`
	Cells   []svgRect  `xml:"rect"`
}

type svgGroup struct {
	ID         string     `xml:"id,attr,omitempty"`
	Class      string     `xml:"class,attr,omitempty"`
	Transform  string     `xml:"transform,attr,omitempty"`
	FontSize   string     `xml:"font-size,attr,omitempty"`
	TextAnchor string     `xml:"text-anchor,attr,omitempty"`
	Path       *svgPath   `xml:"path,omitempty"`
	Line       *svgLine   `xml:"line,omitempty"`
	Text       *svgText   `xml:"text,omitempty"`
	Groups     []svgGroup `xml:"g"`
	Rects      []svgRect  `xml:"rect"`
}

type svgPath struct {
	Class  string `xml:"class,attr,omitempty"`
	Stroke string `xml:"stroke,attr"`
	D      string `xml:"d,attr"`
}

type svgLine struct {
	Stroke string  `xml:"stroke,attr"`
	X2     float64 `xml:"x2,attr,omitempty"`
	Y2     float64 `xml:"y2,attr,omitempty"`
}

type svgText struct {
	Fill  string  `xml:"fill,attr"`
	X     float64 `xml:"x,attr,omitempty"`
	Y     float64 `xml:"y,attr,omitempty"`
	DY    string  `xml:"dy,attr"`
	Value string  `xml:",chardata"`
}

type svgRect struct {
	Class       string  `xml:"class,attr,omitempty"`
	X           float64 `xml:"x,attr"`
	Y           float64 `xml:"y,attr"`
	Width       float64 `xml:"width,attr"`
	Height      float64 `xml:"height,attr"`
	Fill        string  `xml:"fill,attr"`
	DataYear    string  `xml:"data-year,attr,omitempty"`
	DataMonth   string  `xml:"data-month,attr,omitempty"`
	DataTemp    string  `xml:"data-temp,attr,omitempty"`
	DataTooltip string  `xml:"data-tooltip,attr,omitempty"`
}

// WriteSVG serializes c as a standalone SVG element.
func WriteSVG(w io.Writer, c *Chart) error {
	doc := svgDoc{
		NS:     svgNamespace,
		Width:  c.Width,
		Height: c.Height,
		Axes: []svgGroup{
			axisGroup(c.LegendAxis),
			axisGroup(c.XAxis),
			axisGroup(c.YAxis),
			legendGroup(c.Legend),
		},
		Cells: make([]svgRect, len(c.Cells)),
	}
	for i, cell := range c.Cells {
		doc.Cells[i] = svgRect{
			Class:       "cell",
			X:           cell.X,
			Y:           cell.Y,
			Width:       cell.Width,
			Height:      cell.Height,
			Fill:        cell.Fill,
			DataYear:    strconv.Itoa(cell.Year),
			DataMonth:   strconv.Itoa(cell.DataMonth),
			DataTemp:    strconv.FormatFloat(cell.Temperature, 'f', -1, 64),
			DataTooltip: cell.Tooltip,
		}
	}

	enc := xml.NewEncoder(w)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteSVG, err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteSVG, err)
	}
	return nil
}

func translate(x, y float64) string {
	return "translate(" + num(x) + "," + num(y) + ")"
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// axisGroup draws an axis the same way d3-axis does: a domain path with outer
// ticks plus one group per tick.
func axisGroup(a Axis) svgGroup {
	g := svgGroup{
		ID:         a.ID,
		Transform:  translate(a.TranslateX, a.TranslateY),
		FontSize:   "10",
		TextAnchor: "middle",
		Groups:     make([]svgGroup, 0, len(a.Ticks)),
	}

	switch a.Orient {
	case OrientLeft:
		g.TextAnchor = "end"
		g.Path = &svgPath{
			Class:  "domain",
			Stroke: "currentColor",
			D:      fmt.Sprintf("M-%d,%sH0V%sH-%d", tickSize, num(a.RangeStart), num(a.RangeEnd), tickSize),
		}
		for _, t := range a.Ticks {
			g.Groups = append(g.Groups, svgGroup{
				Class:     "tick",
				Transform: translate(0, t.Offset),
				Line:      &svgLine{Stroke: "currentColor", X2: -tickSize},
				Text:      &svgText{Fill: "currentColor", X: -(tickSize + tickPadding), DY: "0.32em", Value: t.Label},
			})
		}
	default:
		g.Path = &svgPath{
			Class:  "domain",
			Stroke: "currentColor",
			D:      fmt.Sprintf("M%s,%dV0H%sV%d", num(a.RangeStart), tickSize, num(a.RangeEnd), tickSize),
		}
		for _, t := range a.Ticks {
			g.Groups = append(g.Groups, svgGroup{
				Class:     "tick",
				Transform: translate(t.Offset, 0),
				Line:      &svgLine{Stroke: "currentColor", Y2: tickSize},
				Text:      &svgText{Fill: "currentColor", Y: tickSize + tickPadding, DY: "0.71em", Value: t.Label},
			})
		}
	}
	return g
}

func legendGroup(swatches []Swatch) svgGroup {
	g := svgGroup{ID: "legend", Rects: make([]svgRect, len(swatches))}
	for i, s := range swatches {
		g.Rects[i] = svgRect{X: s.X, Y: s.Y, Width: s.Width, Height: s.Height, Fill: s.Fill}
	}
	return g
}
