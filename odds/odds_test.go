package odds

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pokerodds/poker"
)

func stage(t *testing.T, hole, community string) *Stage {
	t.Helper()
	s, err := ParseStage(hole, community)
	require.NoError(t, err)
	return s
}

func TestNewStageCommunityCount(t *testing.T) {
	hole := [2]poker.Card(poker.MustParseCards("hA hK"))
	for _, n := range []int{0, 3, 4, 5} {
		_, err := NewStage(hole, poker.MustParseCards("s2 s3 s4 s5 s6")[:n])
		assert.NoError(t, err, "community of %d", n)
	}
	for _, n := range []int{1, 2, 6} {
		_, err := NewStage(hole, poker.MustParseCards("s2 s3 s4 s5 s6 s7")[:n])
		assert.ErrorIs(t, err, ErrCommunityCount, "community of %d", n)
	}
	assert.Panics(t, func() { MustNewStage(hole, poker.MustParseCards("s2")) })
}

func TestParseStage(t *testing.T) {
	s, err := ParseStage("hA hK", "sA sK sQ")
	require.NoError(t, err)
	sHole := s.Hole()
	assert.Equal(t, poker.MustParseCards("hA hK"), sHole[:])
	assert.Equal(t, poker.MustParseCards("sA sK sQ"), s.Community())
	assert.Equal(t, poker.MustParseCards("sA sK sQ hA hK"), s.Cards())

	_, err = ParseStage("hA", "")
	assert.Error(t, err)

	_, err = ParseStage("hA xK", "")
	assert.ErrorIs(t, err, poker.ErrInvalidCard)

	_, err = ParseStage("hA hK", "sA sK")
	assert.ErrorIs(t, err, ErrCommunityCount)

	_, err = ParseStage("hA hK", "sA hA sQ")
	assert.ErrorIs(t, err, ErrDuplicateCard)
	assert.Contains(t, err.Error(), "hA")
}

func TestStageKeyIgnoresOrder(t *testing.T) {
	a := stage(t, "hA hK", "sA sK sQ")
	b := stage(t, "hK hA", "sQ sA sK")
	c := stage(t, "hA hK", "sA sK sJ")

	assert.Equal(t, a.Key(), b.Key())
	assert.NotEqual(t, a.Key(), c.Key())
}

func TestStageString(t *testing.T) {
	s := stage(t, "hA hK", "sA sK sQ")
	assert.Equal(t, "hole_cards: [♥A ♥K], community_cards: [♠A ♠K ♠Q]", s.String())
}

func TestOutcome(t *testing.T) {
	p := &Populations{Field: []poker.Strength{1, 2, 2, 3}}

	tests := []struct {
		s          poker.Strength
		wins, ties int
	}{
		{0, 0, 0},
		{1, 0, 1},
		{2, 1, 2},
		{3, 3, 1},
		{4, 4, 0},
	}
	for _, tt := range tests {
		wins, ties := p.outcome(tt.s)
		assert.Equal(t, tt.wins, wins, "wins for %d", tt.s)
		assert.Equal(t, tt.ties, ties, "ties for %d", tt.s)
	}
}

func TestWinRateRiverBounds(t *testing.T) {
	// The repeated h5 is accepted: NewStage leaves duplicate checks to callers.
	s := MustNewStage([2]poker.Card(poker.MustParseCards("h5 h6")), poker.MustParseCards("s10 d4 sJ h5 dJ"))
	pops := s.Populations()

	assert.Len(t, pops.Mine, 1)
	assert.Len(t, pops.Field, poker.Binomial(47, 2))
	assert.IsNonDecreasing(t, pops.Field)

	w := s.WinRate()
	for name, v := range map[string]float64{
		"mean": w.Mean, "tie": w.MeanTieRate, "min": w.Min, "max": w.Max,
		"p25": w.Percentile25, "median": w.Median, "p75": w.Percentile75,
	} {
		assert.GreaterOrEqual(t, v, 0.0, name)
		assert.LessOrEqual(t, v, 1.0, name)
	}
	assert.LessOrEqual(t, w.Min, w.Percentile25)
	assert.LessOrEqual(t, w.Percentile25, w.Median)
	assert.LessOrEqual(t, w.Median, w.Percentile75)
	assert.LessOrEqual(t, w.Percentile75, w.Max)
	assert.LessOrEqual(t, w.Mean+w.MeanTieRate, 1.0)
	assert.InDelta(t, 1.0, w.SelfRate.Sum(), 1e-9)
	assert.InDelta(t, 1.0, w.OtherRate.Sum(), 1e-9)
	assert.InDelta(t, 0.0, w.DiffRate.Sum(), 1e-9)

	// Two pair, jacks and fives.
	assert.Equal(t, 1.0, w.SelfRate.Of(poker.TwoPair))
	assert.Zero(t, w.Std)
}

func TestWinRateTurnBounds(t *testing.T) {
	s := stage(t, "h5 h6", "s10 d4 sJ h7")
	w := s.WinRate()

	assert.Len(t, s.Populations().Mine, poker.Binomial(46, 1))
	assert.LessOrEqual(t, w.Min, w.Percentile25)
	assert.LessOrEqual(t, w.Percentile25, w.Median)
	assert.LessOrEqual(t, w.Median, w.Percentile75)
	assert.LessOrEqual(t, w.Percentile75, w.Max)
	assert.Greater(t, w.Std, 0.0)
	assert.InDelta(t, 1.0, w.SelfRate.Sum(), 1e-9)
	assert.InDelta(t, 1.0, w.OtherRate.Sum(), 1e-9)
	for i := range w.DiffRate {
		assert.InDelta(t, w.SelfRate[i]-w.OtherRate[i], w.DiffRate[i], 1e-12)
	}
}

func TestWinRateBoardPlays(t *testing.T) {
	s := stage(t, "h2 d3", "sA sK sQ sJ s10")
	w := s.WinRate()

	assert.Zero(t, w.Mean)
	assert.Equal(t, 1.0, w.MeanTieRate)
	assert.Equal(t, 1.0, w.OtherRate.Of(poker.RoyalFlush))

	o, err := s.Odds(6)
	require.NoError(t, err)
	assert.Zero(t, o.Win)
	assert.InDelta(t, 1.0, o.Tie, 1e-12)
}

func TestWinRateNuts(t *testing.T) {
	s := stage(t, "sA sK", "sQ sJ s10 h2 d3")
	w := s.WinRate()

	assert.Equal(t, 1.0, w.Mean)
	assert.Zero(t, w.MeanTieRate)
	assert.Zero(t, w.OtherRate.Of(poker.RoyalFlush))

	for n := 2; n <= 10; n++ {
		o, err := s.Odds(n)
		require.NoError(t, err)
		assert.Equal(t, 1.0, o.Win, "players %d", n)
		assert.Zero(t, o.Tie, "players %d", n)
	}
}

func TestOddsDecreaseWithPlayers(t *testing.T) {
	s := stage(t, "hA hK", "h2 h7 h9 sK")

	prev, err := s.Odds(2)
	require.NoError(t, err)
	assert.Greater(t, prev.Win, 0.5)
	assert.InDelta(t, 1.0, prev.HandRate.Sum(), 1e-9)

	for n := 3; n <= 10; n++ {
		o, err := s.Odds(n)
		require.NoError(t, err)
		assert.LessOrEqual(t, o.Win, prev.Win, "players %d", n)
		assert.GreaterOrEqual(t, o.Tie, 0.0)
		assert.LessOrEqual(t, o.Win+o.Tie, 1.0+1e-12)
		assert.Equal(t, n, o.Players)
		assert.Equal(t, prev.HandRate, o.HandRate)
		prev = o
	}
}

func TestOddsTooFewPlayers(t *testing.T) {
	s := stage(t, "hA hK", "h2 h7 h9 sK d3")
	for _, n := range []int{-1, 0, 1} {
		_, err := s.Odds(n)
		assert.ErrorIs(t, err, ErrTooFewPlayers)
	}
	assert.False(t, s.Computed(), "invalid queries should not enumerate")
}

func TestPopulationsMemoized(t *testing.T) {
	s := stage(t, "hA hK", "h2 h7 h9 sK d3")
	assert.Same(t, s.Populations(), s.Populations())

	before := s.Populations()
	s.WinRate()
	_, err := s.Odds(3)
	require.NoError(t, err)
	assert.Same(t, before, s.Populations())
}

func TestParallelMatchesSequential(t *testing.T) {
	for _, tc := range []struct{ hole, community string }{
		{"h5 h6", "s10 d4 sJ h7 dJ"},
		{"h5 h6", "s10 d4 sJ h7"},
		{"cQ dQ", "s2 c7 hK d9"},
	} {
		t.Run(tc.hole+" "+tc.community, func(t *testing.T) {
			t.Parallel()
			want := BuildPopulations(stage(t, tc.hole, tc.community))
			for _, workers := range []int{0, 1, 3, 8} {
				got, err := BuildPopulationsParallel(context.Background(), stage(t, tc.hole, tc.community), workers)
				require.NoError(t, err)
				assert.Equal(t, want.Mine, got.Mine, "workers %d", workers)
				assert.Equal(t, want.Field, got.Field, "workers %d", workers)
			}
		})
	}
}

func TestPrecompute(t *testing.T) {
	s := stage(t, "cQ dQ", "s2 c7 hK d9")
	require.NoError(t, s.Precompute(context.Background(), 4))
	pops := s.pops.Load()
	require.NotNil(t, pops)

	require.NoError(t, s.Precompute(context.Background(), 4))
	assert.Same(t, pops, s.Populations())
}

func TestPrecomputeCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := stage(t, "cQ dQ", "s2 c7 hK")
	err := s.Precompute(ctx, 2)
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, s.Computed())

	_, err = BuildPopulationsParallel(ctx, s, 2)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPrecomputeWaitHonoursContext(t *testing.T) {
	s := stage(t, "cQ dQ", "s2 c7 hK")

	// Another caller is enumerating.
	require.NoError(t, s.build.Acquire(context.Background(), 1))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	start := time.Now()
	err := s.Precompute(ctx, 2)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 5*time.Second)

	cancelled, cancelNow := context.WithCancel(context.Background())
	cancelNow()
	assert.ErrorIs(t, s.Precompute(cancelled, 2), context.Canceled)
	assert.False(t, s.Computed())

	s.build.Release(1)
	require.NoError(t, s.Precompute(context.Background(), 2))
	assert.True(t, s.Computed())

	// A finished stage answers a cancelled caller with its error, not a
	// stale success.
	assert.ErrorIs(t, s.Precompute(cancelled, 2), context.Canceled)
}

func TestPreflop(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping full deck enumeration in short mode")
	}

	aces := stage(t, "hA sA", "")
	junk := stage(t, "h7 s2", "")
	require.NoError(t, aces.Precompute(context.Background(), 0))
	require.NoError(t, junk.Precompute(context.Background(), 0))

	pops := aces.Populations()
	assert.Len(t, pops.Mine, poker.Binomial(50, 3))
	assert.Len(t, pops.Field, poker.Binomial(52, 5))

	aw, jw := aces.WinRate(), junk.WinRate()
	assert.Greater(t, aw.Mean, 0.8)
	assert.Greater(t, aw.Mean, jw.Mean)
	assert.Zero(t, aw.SelfRate.Of(poker.HighCard))
	assert.InDelta(t, 1.0, aw.OtherRate.Sum(), 1e-9)
	assert.InDelta(t, 0.501177, aw.OtherRate.Of(poker.HighCard), 1e-6)
}
