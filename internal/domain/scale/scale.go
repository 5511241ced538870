// Package scale maps discrete domains onto pixel ranges.
package scale

// Band divides a pixel range into equal slots, one per domain value. It has no
// inner or outer padding.
type Band[T comparable] struct {
	domain []T
	index  map[T]int
	r0, r1 float64
	step   float64
}

// NewBand creates a band scale over domain spanning [r0, r1]. Duplicate domain
// values are collapsed keeping the first occurrence. When r1 < r0 the slots are
// reversed so the first domain value lands next to r0.
func NewBand[T comparable](domain []T, r0, r1 float64) *Band[T] {
	b := &Band[T]{
		index: make(map[T]int, len(domain)),
		r0:    r0,
		r1:    r1,
	}
	for _, v := range domain {
		if _, ok := b.index[v]; ok {
			continue
		}
		b.index[v] = len(b.domain)
		b.domain = append(b.domain, v)
	}
	if n := len(b.domain); n > 0 {
		lo, hi := b.bounds()
		b.step = (hi - lo) / float64(n)
	}
	return b
}

func (b *Band[T]) bounds() (lo, hi float64) {
	if b.r1 < b.r0 {
		return b.r1, b.r0
	}
	return b.r0, b.r1
}

// Position returns the start of the slot for v. The second result is false
// when v is not in the domain.
func (b *Band[T]) Position(v T) (float64, bool) {
	i, ok := b.index[v]
	if !ok {
		return 0, false
	}
	if b.r1 < b.r0 {
		i = len(b.domain) - 1 - i
	}
	lo, _ := b.bounds()
	return lo + b.step*float64(i), true
}

// Bandwidth returns the width of a single slot.
func (b *Band[T]) Bandwidth() float64 { return b.step }

// Domain returns a copy of the de-duplicated domain.
func (b *Band[T]) Domain() []T {
	out := make([]T, len(b.domain))
	copy(out, b.domain)
	return out
}

// Len returns the domain cardinality.
func (b *Band[T]) Len() int { return len(b.domain) }

// Range returns the configured range endpoints.
func (b *Band[T]) Range() (float64, float64) { return b.r0, b.r1 }

// Ordinal maps domain values to range values by index. Range values are
// reused cyclically when the domain is longer than the range.
type Ordinal[D comparable, R any] struct {
	domain []D
	index  map[D]int
	rng    []R
}

// NewOrdinal creates an ordinal scale.
func NewOrdinal[D comparable, R any](domain []D, rng []R) *Ordinal[D, R] {
	o := &Ordinal[D, R]{
		index: make(map[D]int, len(domain)),
		rng:   append([]R(nil), rng...),
	}
	for _, v := range domain {
		if _, ok := o.index[v]; ok {
			continue
		}
		o.index[v] = len(o.domain)
		o.domain = append(o.domain, v)
	}
	return o
}

// Map returns the range value for v.
func (o *Ordinal[D, R]) Map(v D) (R, bool) {
	var zero R
	i, ok := o.index[v]
	if !ok || len(o.rng) == 0 {
		return zero, false
	}
	return o.rng[i%len(o.rng)], true
}

// Domain returns a copy of the domain.
func (o *Ordinal[D, R]) Domain() []D {
	out := make([]D, len(o.domain))
	copy(out, o.domain)
	return out
}
