package scale

// Tick is one labeled axis mark, offset along the axis in pixels.
type Tick struct {
	Offset float64
	Label  string
}

// BandTicks returns ticks centered in each slot of b. keep filters domain
// values (nil keeps all) and format renders the label.
func BandTicks[T comparable](b *Band[T], keep func(T) bool, format func(T) string) []Tick {
	ticks := make([]Tick, 0, b.Len())
	half := b.Bandwidth() / 2
	for _, v := range b.domain {
		if keep != nil && !keep(v) {
			continue
		}
		pos, _ := b.Position(v)
		ticks = append(ticks, Tick{Offset: pos + half, Label: format(v)})
	}
	return ticks
}

// OrdinalTicks returns one tick per domain value positioned at its mapped
// offset.
func OrdinalTicks[D comparable](o *Ordinal[D, float64], format func(D) string) []Tick {
	ticks := make([]Tick, 0, len(o.domain))
	for _, v := range o.domain {
		pos, ok := o.Map(v)
		if !ok {
			continue
		}
		ticks = append(ticks, Tick{Offset: pos, Label: format(v)})
	}
	return ticks
}
