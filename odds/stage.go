// Package odds computes exhaustive Texas Hold'em equity for a player's hole
// cards against every hand reachable from the known community cards.
package odds

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync/atomic"

	"golang.org/x/sync/semaphore"

	"github.com/lox/pokerodds/poker"
)

var (
	// ErrCommunityCount is returned when the board is not empty, flop, turn or river.
	ErrCommunityCount = errors.New("community cards must number 0, 3, 4 or 5")
	// ErrTooFewPlayers is returned when fewer than two players are requested.
	ErrTooFewPlayers = errors.New("at least 2 players required")
	// ErrDuplicateCard is returned when the same card appears twice in a stage.
	ErrDuplicateCard = errors.New("duplicate card")
)

// Stage is a query: two hole cards and zero or three to five community
// cards. The hand populations are enumerated at most once per Stage.
type Stage struct {
	hole      [2]poker.Card
	community []poker.Card

	// build is held while the populations are enumerated. Waiters give up
	// when their context ends.
	build *semaphore.Weighted
	pops  atomic.Pointer[Populations]
}

// NewStage creates a stage. Cards are not checked for duplicates; use
// CheckDistinct when the input comes from a user.
func NewStage(hole [2]poker.Card, community []poker.Card) (*Stage, error) {
	switch len(community) {
	case 0, 3, 4, 5:
	default:
		return nil, fmt.Errorf("%w, got %d", ErrCommunityCount, len(community))
	}
	return &Stage{
		hole:      hole,
		community: slices.Clone(community),
		build:     semaphore.NewWeighted(1),
	}, nil
}

// MustNewStage creates a stage and panics on error (for tests)
func MustNewStage(hole [2]poker.Card, community []poker.Card) *Stage {
	s, err := NewStage(hole, community)
	if err != nil {
		panic(err)
	}
	return s
}

// ParseStage parses hole and community card text, e.g. ParseStage("hA hK",
// "sA sK sQ"), and rejects duplicate cards.
func ParseStage(hole, community string) (*Stage, error) {
	holeCards, err := poker.ParseCards(hole)
	if err != nil {
		return nil, fmt.Errorf("hole cards: %w", err)
	}
	if len(holeCards) != 2 {
		return nil, fmt.Errorf("hole cards: need exactly 2, got %d", len(holeCards))
	}

	board, err := poker.ParseCards(community)
	if err != nil {
		return nil, fmt.Errorf("community cards: %w", err)
	}

	s, err := NewStage([2]poker.Card(holeCards), board)
	if err != nil {
		return nil, err
	}
	if err := s.CheckDistinct(); err != nil {
		return nil, err
	}
	return s, nil
}

// Hole returns the player's hole cards.
func (s *Stage) Hole() [2]poker.Card {
	return s.hole
}

// Community returns a copy of the community cards.
func (s *Stage) Community() []poker.Card {
	return slices.Clone(s.community)
}

// Cards returns the player's known cards: community cards then hole cards.
func (s *Stage) Cards() []poker.Card {
	cards := make([]poker.Card, 0, len(s.community)+2)
	cards = append(cards, s.community...)
	return append(cards, s.hole[:]...)
}

// CheckDistinct reports the first card that appears more than once.
func (s *Stage) CheckDistinct() error {
	var seen poker.CardSet
	for _, card := range s.Cards() {
		if seen.Contains(card) {
			return fmt.Errorf("%w: %s", ErrDuplicateCard, card)
		}
		seen.Add(card)
	}
	return nil
}

// Key returns a canonical text form that is equal for stages holding the
// same cards in any order.
func (s *Stage) Key() string {
	hole := s.hole
	community := slices.Clone(s.community)
	byIndex := func(a, b poker.Card) int { return a.Index() - b.Index() }
	slices.SortFunc(hole[:], byIndex)
	slices.SortFunc(community, byIndex)
	return poker.FormatCards(hole[:]) + "|" + poker.FormatCards(community)
}

// String renders the stage for terminal output.
func (s *Stage) String() string {
	pretty := func(cards []poker.Card) string {
		parts := make([]string, len(cards))
		for i, c := range cards {
			parts[i] = c.Pretty()
		}
		return "[" + strings.Join(parts, " ") + "]"
	}
	return fmt.Sprintf("hole_cards: %s, community_cards: %s", pretty(s.hole[:]), pretty(s.community))
}

// Populations returns the enumerated hand populations, computing them on the
// first call.
func (s *Stage) Populations() *Populations {
	if pops := s.pops.Load(); pops != nil {
		return pops
	}
	_ = s.build.Acquire(context.Background(), 1) // cannot fail without a deadline
	defer s.build.Release(1)
	if pops := s.pops.Load(); pops != nil {
		return pops
	}
	pops := BuildPopulations(s)
	s.pops.Store(pops)
	return pops
}

// Computed reports whether the populations have been enumerated. It never
// waits for an enumeration in progress.
func (s *Stage) Computed() bool {
	return s.pops.Load() != nil
}

// Precompute fills the stage's populations using up to workers goroutines.
// It does nothing if they are already known. While another caller is
// enumerating, Precompute waits for it or for ctx, whichever comes first. On
// error nothing is stored.
func (s *Stage) Precompute(ctx context.Context, workers int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.Computed() {
		return nil
	}
	if err := s.build.Acquire(ctx, 1); err != nil {
		return err
	}
	defer s.build.Release(1)
	if s.Computed() {
		return nil
	}
	pops, err := BuildPopulationsParallel(ctx, s, workers)
	if err != nil {
		return err
	}
	s.pops.Store(pops)
	return nil
}

// WinRate returns the heads-up equity summary.
func (s *Stage) WinRate() WinRate {
	return s.Populations().WinRate()
}

// Odds returns the approximate win and tie probability against players-1
// opponents.
func (s *Stage) Odds(players int) (Odds, error) {
	if players < 2 {
		return Odds{}, fmt.Errorf("%w, got %d", ErrTooFewPlayers, players)
	}
	return s.Populations().Odds(players)
}
