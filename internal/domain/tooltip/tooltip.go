// Package tooltip computes hover tooltip state for heat-map cells. Every
// function returns a fresh State; the newest pointer event always wins.
package tooltip

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/okian/tempmap/internal/domain/model"
)

// Presentation constants.
const (
	VisibleOpacity = 0.9
	HiddenOpacity  = 0.0
	PointerOffset  = 20
	FadeDuration   = 100 * time.Millisecond
)

var months = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// Point is a pointer position in page coordinates.
type Point struct {
	X float64
	Y float64
}

// State is what the tooltip element should look like after an event.
type State struct {
	Visible  bool          `json:"visible"`
	Opacity  float64       `json:"opacity"`
	Left     float64       `json:"left"`
	Top      float64       `json:"top"`
	Text     string        `json:"text"`
	DataYear int           `json:"dataYear"`
	Fade     time.Duration `json:"fade"`
}

// MonthName returns the English name for a 1-based month.
func MonthName(month int) (string, bool) {
	if month < 1 || month > len(months) {
		return "", false
	}
	return months[month-1], true
}

// Text renders the tooltip body for rec against the base temperature.
func Text(rec model.MonthRecord, base float64) string {
	name, ok := MonthName(rec.Month)
	if !ok {
		name = fmt.Sprintf("Month %d", rec.Month)
	}
	return fmt.Sprintf("%s %d<br/>%s℃<br/>%s℃", name, rec.Year,
		fixed(base+rec.Variance, 1, false), fixed(rec.Variance, 2, true))
}

// fixed formats v with the given number of decimals, rounding halves away
// from zero. A value that rounds to zero keeps its minus sign only when the
// sign is forced.
func fixed(v float64, decimals int, forceSign bool) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	p := math.Pow10(decimals)
	abs := math.Round(math.Abs(v)*p) / p
	out := strconv.FormatFloat(abs, 'f', decimals, 64)

	neg := math.Signbit(v)
	if neg && abs == 0 && !forceSign {
		neg = false
	}
	switch {
	case neg:
		return "-" + out
	case forceSign:
		return "+" + out
	default:
		return out
	}
}

// Hidden is the initial tooltip state.
func Hidden() State {
	return State{Opacity: HiddenOpacity}
}

// Enter handles the pointer entering a cell.
func Enter(p Point, rec model.MonthRecord, base float64) State {
	return State{
		Visible:  true,
		Opacity:  VisibleOpacity,
		Left:     p.X + PointerOffset,
		Top:      p.Y + PointerOffset,
		Text:     Text(rec, base),
		DataYear: rec.Year,
		Fade:     FadeDuration,
	}
}

// Leave handles the pointer leaving a cell. Text and position are kept so the
// fade-out does not jump.
func Leave(s State) State {
	s.Visible = false
	s.Opacity = HiddenOpacity
	s.Fade = FadeDuration
	return s
}
