package odds

import (
	"context"
	"runtime"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/lox/pokerodds/poker"
)

// checkEvery is how many card sets a worker scores between context checks.
const checkEvery = 4096

// BuildPopulationsParallel enumerates both populations with up to workers
// goroutines, splitting each enumeration by its first drawn card. The
// result is identical to BuildPopulations. A cancelled context aborts the
// build and returns ctx.Err().
func BuildPopulationsParallel(ctx context.Context, s *Stage, workers int) (*Populations, error) {
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}

	p := newPlan(s)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	mine := make([][]poker.Strength, p.mine.Leads())
	field := make([][]poker.Strength, p.field.Leads())
	schedule := func(e *poker.Enumerator, parts [][]poker.Strength) {
		for lead := range parts {
			g.Go(func() error {
				out, err := p.collectPartition(gctx, e, lead)
				parts[lead] = out
				return err
			})
		}
	}
	schedule(p.field, field)
	schedule(p.mine, mine)

	if err := g.Wait(); err != nil {
		return nil, err
	}
	// errgroup only reports worker errors; a parent cancelled after the last
	// worker finished still counts.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	pops := &Populations{
		Mine:  slices.Concat(mine...),
		Field: slices.Concat(field...),
	}
	slices.Sort(pops.Field)
	return pops, nil
}

func (p plan) collectPartition(ctx context.Context, e *poker.Enumerator, lead int) ([]poker.Strength, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var out []poker.Strength
	n := 0
	for cards := range e.Partition(lead) {
		out = append(out, p.score(cards))
		n++
		if n%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}
