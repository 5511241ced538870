// Package model contains domain models passed between layers.
package model

// Dataset is the fetched global temperature document. It is never mutated
// after decoding.
type Dataset struct {
	BaseTemperature float64       `json:"baseTemperature"`
	MonthlyVariance []MonthRecord `json:"monthlyVariance"`
}

// MonthRecord is one year/month observation.
type MonthRecord struct {
	Year     int     `json:"year"`
	Month    int     `json:"month"`    // 1-12
	Variance float64 `json:"variance"` // °C deviation from the base temperature
}

// Temperature returns the absolute temperature of rec.
func (d Dataset) Temperature(rec MonthRecord) float64 {
	return d.BaseTemperature + rec.Variance
}

// Len returns the number of monthly records.
func (d Dataset) Len() int {
	return len(d.MonthlyVariance)
}

// Find returns the first record for year and month.
func (d Dataset) Find(year, month int) (MonthRecord, bool) {
	for _, r := range d.MonthlyVariance {
		if r.Year == year && r.Month == month {
			return r, true
		}
	}
	return MonthRecord{}, false
}

// Years returns the distinct years in first-seen order.
func (d Dataset) Years() []int {
	return distinct(d.MonthlyVariance, func(r MonthRecord) int { return r.Year })
}

// Months returns the distinct months in first-seen order. The order is the
// source order of the records, not calendar order.
func (d Dataset) Months() []int {
	return distinct(d.MonthlyVariance, func(r MonthRecord) int { return r.Month })
}

// YearSpan returns max(year) - min(year), or 0 when there are fewer than two
// distinct years.
func (d Dataset) YearSpan() int {
	if len(d.MonthlyVariance) == 0 {
		return 0
	}
	lo, hi := d.MonthlyVariance[0].Year, d.MonthlyVariance[0].Year
	for _, r := range d.MonthlyVariance[1:] {
		lo = min(lo, r.Year)
		hi = max(hi, r.Year)
	}
	return hi - lo
}

func distinct(records []MonthRecord, key func(MonthRecord) int) []int {
	seen := make(map[int]struct{}, len(records))
	out := make([]int, 0)
	for _, r := range records {
		k := key(r)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}
