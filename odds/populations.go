package odds

import (
	"iter"
	"slices"

	"github.com/lox/pokerodds/poker"
)

// Populations holds the strength of every hand the player can finish with
// (Mine) and of every hand an opponent can finish with (Field). Field is
// sorted ascending.
//
// When the board is empty the field is drawn from the full deck, including
// the player's own hole cards. This overstates some opponent holdings
// slightly and is kept for consistency with published preflop tables
// produced the same way.
type Populations struct {
	Mine  []poker.Strength
	Field []poker.Strength
}

// plan describes the two enumerations behind a stage.
type plan struct {
	mine, field *poker.Enumerator
	seven       bool
}

func newPlan(s *Stage) plan {
	if len(s.community) == 0 {
		return plan{
			mine:  poker.NewEnumerator(s.hole[:], 5),
			field: poker.NewEnumerator(nil, 5),
		}
	}
	return plan{
		mine:  poker.NewEnumerator(s.Cards(), 7),
		field: poker.NewEnumerator(s.community, 7),
		seven: true,
	}
}

func (p plan) score(cards []poker.Card) poker.Strength {
	if p.seven {
		return poker.BestStrength([7]poker.Card(cards))
	}
	return poker.Classify([5]poker.Card(cards)).Strength()
}

// collect scores every card set in seq, appending to out.
func (p plan) collect(out []poker.Strength, seq iter.Seq[[]poker.Card]) []poker.Strength {
	for cards := range seq {
		out = append(out, p.score(cards))
	}
	return out
}

// BuildPopulations enumerates both populations on the calling goroutine.
func BuildPopulations(s *Stage) *Populations {
	p := newPlan(s)
	pops := &Populations{
		Mine:  p.collect(make([]poker.Strength, 0, p.mine.Count()), p.mine.All()),
		Field: p.collect(make([]poker.Strength, 0, p.field.Count()), p.field.All()),
	}
	slices.Sort(pops.Field)
	return pops
}

// outcome returns the number of field hands strictly weaker than s and the
// number exactly equal to it.
func (p *Populations) outcome(s poker.Strength) (wins, ties int) {
	wins, _ = slices.BinarySearch(p.Field, s)
	above, _ := slices.BinarySearch(p.Field, s+1)
	return wins, above - wins
}

// rates returns the win and tie rate of s against the field.
func (p *Populations) rates(s poker.Strength) (win, tie float64) {
	wins, ties := p.outcome(s)
	n := float64(len(p.Field))
	return float64(wins) / n, float64(ties) / n
}
