package statistics

import (
	"math"
	"slices"
)

// Distribution summarises a sample of per-hand rates. Values are kept so
// order statistics can be read after all samples are added.
type Distribution struct {
	Values []float64

	mean   float64
	m2     float64 // sum of squared deviations (Welford)
	sorted bool
}

// NewDistribution creates a distribution with room for n samples.
func NewDistribution(n int) *Distribution {
	return &Distribution{Values: make([]float64, 0, n)}
}

// Add incorporates a new sample
func (d *Distribution) Add(v float64) {
	d.Values = append(d.Values, v)
	d.sorted = false

	delta := v - d.mean
	d.mean += delta / float64(len(d.Values))
	d.m2 += delta * (v - d.mean)
}

// Len returns the number of samples
func (d *Distribution) Len() int {
	return len(d.Values)
}

// Mean returns the arithmetic mean of all samples
func (d *Distribution) Mean() float64 {
	if len(d.Values) == 0 {
		return 0
	}
	return d.mean
}

// Variance returns the population variance. Fewer than three samples are
// reported as zero spread.
func (d *Distribution) Variance() float64 {
	if len(d.Values) < 3 {
		return 0
	}
	return d.m2 / float64(len(d.Values))
}

// StdDev returns the population standard deviation
func (d *Distribution) StdDev() float64 {
	return math.Sqrt(d.Variance())
}

// Min returns the smallest sample
func (d *Distribution) Min() float64 {
	return d.at(0)
}

// Max returns the largest sample
func (d *Distribution) Max() float64 {
	return d.at(len(d.Values) - 1)
}

// Median returns the upper median, the sample at sorted index n/2.
func (d *Distribution) Median() float64 {
	return d.at(len(d.Values) / 2)
}

// Quartile returns the sample at sorted index (n/4)*q for q in 1..3.
func (d *Distribution) Quartile(q int) float64 {
	return d.at(len(d.Values) / 4 * q)
}

func (d *Distribution) at(i int) float64 {
	if len(d.Values) == 0 {
		return 0
	}
	if !d.sorted {
		slices.Sort(d.Values)
		d.sorted = true
	}
	return d.Values[min(max(i, 0), len(d.Values)-1)]
}
