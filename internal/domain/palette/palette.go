// Package palette classifies absolute temperatures into the fixed heat-map
// color buckets.
package palette

import "math"

// Bucket is one row of the classification table. A row matches when
// Lower <= t < Upper; infinite bounds leave that side open.
type Bucket struct {
	Index int
	Lower float64
	Upper float64
	Color string
}

func (b Bucket) matches(t float64) bool {
	return t >= b.Lower && t < b.Upper
}

// table is scanned top to bottom and the first match wins. Buckets 5 and 6
// both start at 8.3, so bucket 6 is only reachable for 9.5 <= t < 10.6.
var table = []Bucket{
	{Index: 0, Lower: math.Inf(-1), Upper: 3.9, Color: "#344CB7"},
	{Index: 1, Lower: 3.9, Upper: 5.0, Color: "#1363DF"},
	{Index: 2, Lower: 5.0, Upper: 6.1, Color: "#47B5FF"},
	{Index: 3, Lower: 6.1, Upper: 7.2, Color: "#C4DDFF"},
	{Index: 4, Lower: 7.2, Upper: 8.3, Color: "#FFEA85"},
	{Index: 5, Lower: 8.3, Upper: 9.5, Color: "#FFD93D"},
	{Index: 6, Lower: 8.3, Upper: 10.6, Color: "#FF884B"},
	{Index: 7, Lower: 10.6, Upper: 11.7, Color: "#FF731D"},
}

// fallback catches everything the table does not, NaN included.
var fallback = Bucket{Index: 8, Lower: 11.7, Upper: math.Inf(1), Color: "#E21818"}

// legendValues label the legend axis. They are decorative and do not drive
// classification.
var legendValues = []float64{2.8, 3.9, 5.0, 6.1, 7.2, 8.3, 9.5, 10.6, 11.7, 12.8}

// Count is the number of buckets.
const Count = 9

// Classify returns the bucket for an absolute temperature.
func Classify(t float64) Bucket {
	for _, b := range table {
		if b.matches(t) {
			return b
		}
	}
	return fallback
}

// Color returns the fill color for an absolute temperature.
func Color(t float64) string {
	return Classify(t).Color
}

// Buckets returns all buckets in scan order.
func Buckets() []Bucket {
	out := make([]Bucket, 0, Count)
	out = append(out, table...)
	return append(out, fallback)
}

// Colors returns the bucket colors in legend order.
func Colors() []string {
	out := make([]string, 0, Count)
	for _, b := range Buckets() {
		out = append(out, b.Color)
	}
	return out
}

// LegendValues returns the legend axis labels.
func LegendValues() []float64 {
	return append([]float64(nil), legendValues...)
}

// Overlaps reports pairs of table rows whose ranges intersect.
func Overlaps() [][2]int {
	var out [][2]int
	for i := range table {
		for j := i + 1; j < len(table); j++ {
			a, b := table[i], table[j]
			if a.Lower < b.Upper && b.Lower < a.Upper {
				out = append(out, [2]int{a.Index, b.Index})
			}
		}
	}
	return out
}
