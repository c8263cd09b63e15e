package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var sinkStrength Strength

// Scoring runs once per card set during an enumeration, so it must not
// allocate.
func TestHotPathAllocations(t *testing.T) {
	hand := five("hA sK d9 c4 h2")
	cards := seven("sA hA dA cA h8 d8 c8")

	assert.Zero(t, testing.AllocsPerRun(1000, func() {
		sinkStrength = Classify(hand).Strength()
	}), "Classify")

	assert.Zero(t, testing.AllocsPerRun(1000, func() {
		sinkStrength = BestStrength(cards)
	}), "BestStrength")
}

// A walk may set up its iterator once, but nothing it yields may allocate.
func TestEnumeratorAllocationsIndependentOfLength(t *testing.T) {
	walk := func(e *Enumerator) float64 {
		return testing.AllocsPerRun(20, func() {
			for cards := range e.All() {
				sinkStrength = Strength(len(cards))
			}
		})
	}

	long := NewEnumerator(MustParseCards("hA hK"), 5)
	short := NewEnumerator(MustParseCards("hA hK sQ sJ"), 5)
	assert.Equal(t, 19600, long.Count())
	assert.Equal(t, 48, short.Count())

	longAllocs, shortAllocs := walk(long), walk(short)
	assert.LessOrEqual(t, longAllocs, shortAllocs, "allocations grew with the number of completions")
	assert.LessOrEqual(t, longAllocs, 2.0)
}

func BenchmarkClassify(b *testing.B) {
	hands := [][5]Card{
		five("sA sK sQ sJ s10"),
		five("h9 h8 h7 h6 h5"),
		five("sA hA dA cA sK"),
		five("hK dK cK s2 h2"),
		five("d2 d7 d9 dJ dA"),
		five("cA d2 h3 s4 c5"),
		five("s7 h7 d7 c2 h9"),
		five("sQ hQ d4 c4 h9"),
		five("sJ hJ d8 c4 h2"),
		five("sA hK d9 c4 h2"),
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := range b.N {
		sinkStrength = Classify(hands[i%len(hands)]).Strength()
	}
}

func BenchmarkBestStrength(b *testing.B) {
	cards := seven("hA hK h2 h7 h9 sK sQ")
	b.ReportAllocs()
	b.ResetTimer()
	for range b.N {
		sinkStrength = BestStrength(cards)
	}
}

func BenchmarkEnumerate(b *testing.B) {
	tests := []struct {
		name   string
		known  string
		target int
	}{
		{"Hole to five", "hA hK", 5},
		{"Flop to seven", "hA hK sQ sJ s10", 7},
		{"Turn to seven", "hA hK sQ sJ s10 d2", 7},
		{"Board to seven", "sQ sJ s10 d2 c3", 7},
	}

	for _, tt := range tests {
		b.Run(tt.name, func(b *testing.B) {
			e := NewEnumerator(MustParseCards(tt.known), tt.target)
			b.ReportAllocs()
			b.ResetTimer()
			for range b.N {
				for cards := range e.All() {
					if tt.target == 7 {
						sinkStrength = BestStrength([7]Card(cards))
					} else {
						sinkStrength = Classify([5]Card(cards)).Strength()
					}
				}
			}
		})
	}
}
