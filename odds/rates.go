package odds

import (
	"fmt"
	"strings"

	"github.com/lox/pokerodds/poker"
)

// CategoryRates is the share of a population falling into each hand
// category, indexed by poker.HandCategory.
type CategoryRates [poker.NumCategories]float64

// categoryRates tallies strengths by category.
func categoryRates(strengths []poker.Strength) CategoryRates {
	var counts [poker.NumCategories]int
	for _, s := range strengths {
		counts[s.Category()]++
	}
	var r CategoryRates
	if len(strengths) == 0 {
		return r
	}
	for i, c := range counts {
		r[i] = float64(c) / float64(len(strengths))
	}
	return r
}

// Of returns the rate for one category.
func (r CategoryRates) Of(c poker.HandCategory) float64 {
	return r[c]
}

// Sub returns r minus other, category by category.
func (r CategoryRates) Sub(other CategoryRates) CategoryRates {
	var d CategoryRates
	for i := range r {
		d[i] = r[i] - other[i]
	}
	return d
}

// Sum returns the total over all categories; 1 for a non-empty population.
func (r CategoryRates) Sum() float64 {
	var total float64
	for _, v := range r {
		total += v
	}
	return total
}

// String lists the non-zero categories from strongest to weakest.
func (r CategoryRates) String() string {
	var b strings.Builder
	for i := len(r) - 1; i >= 0; i-- {
		if r[i] == 0 {
			continue
		}
		fmt.Fprintf(&b, "%s: %.2f%%\n", poker.HandCategory(i), r[i]*100)
	}
	return b.String()
}
