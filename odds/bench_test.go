package odds

import (
	"context"
	"testing"

	"github.com/lox/pokerodds/poker"
)

var benchStages = []struct {
	name      string
	community string
}{
	{"No community", ""},
	{"Three community", "d3 s5 h5"},
	{"Four community", "d3 s5 h5 c2"},
	{"Five community", "d3 s5 h5 c2 dK"},
}

var sinkOdds Odds

// A fresh Stage per iteration so every run pays for the full enumeration.
func BenchmarkStageOdds(b *testing.B) {
	hole := [2]poker.Card(poker.MustParseCards("hQ dQ"))
	for _, bs := range benchStages {
		b.Run(bs.name, func(b *testing.B) {
			if bs.community == "" && testing.Short() {
				b.Skip("skipping preflop enumeration in short mode")
			}
			community := poker.MustParseCards(bs.community)
			b.ReportAllocs()
			b.ResetTimer()
			for range b.N {
				o, err := MustNewStage(hole, community).Odds(5)
				if err != nil {
					b.Fatal(err)
				}
				sinkOdds = o
			}
		})
	}
}

func BenchmarkBuildPopulationsParallel(b *testing.B) {
	hole := [2]poker.Card(poker.MustParseCards("hQ dQ"))
	for _, bs := range benchStages[1:] {
		b.Run(bs.name, func(b *testing.B) {
			s := MustNewStage(hole, poker.MustParseCards(bs.community))
			b.ReportAllocs()
			b.ResetTimer()
			for range b.N {
				if _, err := BuildPopulationsParallel(context.Background(), s, 0); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
