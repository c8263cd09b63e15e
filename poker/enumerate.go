package poker

import (
	"fmt"
	"iter"
)

// MaxCards is the largest card set the enumerator completes to: two hole
// cards plus five community cards.
const MaxCards = 7

// Enumerator generates every completion of a known card set to a target
// size using cards from the rest of the deck. Each completion lists the drawn
// cards first, then the known cards.
type Enumerator struct {
	known []Card
	pool  []Card
	draw  int
}

// NewEnumerator prepares completions of known up to target cards. It panics
// when target is smaller than the known set or larger than MaxCards.
func NewEnumerator(known []Card, target int) *Enumerator {
	if target > MaxCards || target < len(known) {
		panic(fmt.Sprintf("poker: cannot complete %d known cards to %d", len(known), target))
	}
	return &Enumerator{
		known: append([]Card(nil), known...),
		pool:  Remaining(known),
		draw:  target - len(known),
	}
}

// Count returns how many completions All yields.
func (e *Enumerator) Count() int {
	return Binomial(len(e.pool), e.draw)
}

// Leads returns the number of partitions. Partition i holds the completions
// whose first drawn card is pool card i.
func (e *Enumerator) Leads() int {
	if e.draw == 0 {
		return 1
	}
	return len(e.pool) - e.draw + 1
}

// All yields every completion once. The yielded slice is reused between
// iterations and must be copied to be retained.
func (e *Enumerator) All() iter.Seq[[]Card] {
	return e.walk(0, e.Leads())
}

// Partition yields the completions whose first drawn card is pool card lead.
// Concatenating partitions 0..Leads()-1 reproduces All.
func (e *Enumerator) Partition(lead int) iter.Seq[[]Card] {
	return e.walk(lead, lead+1)
}

// walk steps through index combinations in lexicographic order with the
// first index confined to [lo, hi).
func (e *Enumerator) walk(lo, hi int) iter.Seq[[]Card] {
	return func(yield func([]Card) bool) {
		var buf [MaxCards]Card
		out := buf[:e.draw+len(e.known)]
		copy(out[e.draw:], e.known)

		if e.draw == 0 {
			if lo == 0 {
				yield(out)
			}
			return
		}

		n := len(e.pool)
		var idx [MaxCards]int
		for i := range e.draw {
			idx[i] = lo + i
		}
		if idx[e.draw-1] >= n {
			return
		}

		for {
			for i := range e.draw {
				out[i] = e.pool[idx[i]]
			}
			if !yield(out) {
				return
			}

			// Advance the rightmost index that still has room.
			j := e.draw - 1
			for j >= 0 && idx[j] == n-e.draw+j {
				j--
			}
			if j < 0 {
				return
			}
			idx[j]++
			if j == 0 && idx[0] >= hi {
				return
			}
			for k := j + 1; k < e.draw; k++ {
				idx[k] = idx[k-1] + 1
			}
		}
	}
}

// Binomial returns n choose k.
func Binomial(n, k int) int {
	if k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	result := 1
	for i := 1; i <= k; i++ {
		result = result * (n - k + i) / i
	}
	return result
}
