package server

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lox/pokerodds/odds"
)

var (
	// ErrInvalidQuery wraps every error caused by the request itself.
	ErrInvalidQuery = errors.New("invalid query")
	// ErrQueryTimeout is returned when enumeration exceeds the query timeout.
	ErrQueryTimeout = errors.New("query timed out")
)

// Query is one odds request in card text form
type Query struct {
	Hole      []string
	Community []string
	Players   int // 0 selects the server default
}

// OddsResult is the answer to a Query
type OddsResult struct {
	Stage   *odds.Stage
	Odds    odds.Odds
	Elapsed time.Duration
	Cached  bool // populations were already enumerated
}

// WinRateResult is the heads-up summary for a Query
type WinRateResult struct {
	Stage   *odds.Stage
	WinRate odds.WinRate
	Elapsed time.Duration
	Cached  bool
}

// Odds answers a query, reusing enumerated populations for stages seen
// recently.
func (s *Server) Odds(ctx context.Context, q Query) (OddsResult, error) {
	start := s.clock.Now()

	players := q.Players
	if players == 0 {
		players = s.defaultPlayers
	}
	if players < 2 {
		return OddsResult{}, fmt.Errorf("%w: %w, got %d", ErrInvalidQuery, odds.ErrTooFewPlayers, players)
	}

	stage, err := s.stage(q)
	if err != nil {
		return OddsResult{}, err
	}
	cached, err := s.populate(ctx, stage)
	if err != nil {
		return OddsResult{}, err
	}

	o, err := stage.Odds(players)
	if err != nil {
		return OddsResult{}, fmt.Errorf("%w: %w", ErrInvalidQuery, err)
	}

	result := OddsResult{Stage: stage, Odds: o, Elapsed: s.clock.Since(start), Cached: cached}
	s.logger.Debug("Answered odds query", "stage", stage.Key(), "players", players, "elapsed", result.Elapsed, "cached", cached)
	return result, nil
}

// WinRate answers a query with the heads-up summary. Players is ignored.
func (s *Server) WinRate(ctx context.Context, q Query) (WinRateResult, error) {
	start := s.clock.Now()

	stage, err := s.stage(q)
	if err != nil {
		return WinRateResult{}, err
	}
	cached, err := s.populate(ctx, stage)
	if err != nil {
		return WinRateResult{}, err
	}

	result := WinRateResult{Stage: stage, WinRate: stage.WinRate(), Elapsed: s.clock.Since(start), Cached: cached}
	s.logger.Debug("Answered win rate query", "stage", stage.Key(), "elapsed", result.Elapsed, "cached", cached)
	return result, nil
}

// stage parses a query and returns the cached stage for the same cards, if
// any.
func (s *Server) stage(q Query) (*odds.Stage, error) {
	stage, err := odds.ParseStage(strings.Join(q.Hole, " "), strings.Join(q.Community, " "))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidQuery, err)
	}

	key := stage.Key()
	s.stagesMu.Lock()
	defer s.stagesMu.Unlock()
	if v, ok := s.stages.Get(key); ok {
		return v.(*odds.Stage), nil
	}
	s.stages.Add(key, stage)
	return stage, nil
}

// populate enumerates the stage within the query timeout. It reports whether
// the work had already been done.
func (s *Server) populate(ctx context.Context, stage *odds.Stage) (bool, error) {
	if stage.Computed() {
		return true, nil
	}

	qctx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)
	timer := s.clock.AfterFunc(s.queryTimeout, func() { cancel(ErrQueryTimeout) }, "query", "timeout")
	defer timer.Stop()

	if err := stage.Precompute(qctx, s.workers); err != nil {
		if cause := context.Cause(qctx); errors.Is(cause, ErrQueryTimeout) {
			return false, cause
		}
		return false, err
	}
	return false, nil
}
