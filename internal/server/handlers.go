package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/lox/pokerodds/odds"
	"github.com/lox/pokerodds/poker"
)

// categoryNames lists hand categories in the order used by rate arrays.
var categoryNames = func() []string {
	names := make([]string, poker.NumCategories)
	for i, c := range poker.AllCategories {
		names[i] = c.String()
	}
	return names
}()

// OddsResponse is the JSON body of /odds
type OddsResponse struct {
	Stage         string                       `json:"stage"`
	Players       int                          `json:"players"`
	Win           float64                      `json:"win"`
	Tie           float64                      `json:"tie"`
	HandTypeRates [poker.NumCategories]float64 `json:"hand_type_rates"`
	Categories    []string                     `json:"categories"`
	ElapsedMS     int64                        `json:"elapsed_ms"`
	Cached        bool                         `json:"cached"`
}

// WinRateResponse is the JSON body of /winrate
type WinRateResponse struct {
	Stage        string                       `json:"stage"`
	Mean         float64                      `json:"mean"`
	MeanTieRate  float64                      `json:"mean_tie_rate"`
	Min          float64                      `json:"min"`
	Max          float64                      `json:"max"`
	Percentile25 float64                      `json:"percentile_25"`
	Median       float64                      `json:"median"`
	Percentile75 float64                      `json:"percentile_75"`
	Std          float64                      `json:"std"`
	SelfRate     [poker.NumCategories]float64 `json:"self_rate"`
	OtherRate    [poker.NumCategories]float64 `json:"other_rate"`
	DiffRate     [poker.NumCategories]float64 `json:"diff_rate"`
	Categories   []string                     `json:"categories"`
	ElapsedMS    int64                        `json:"elapsed_ms"`
	Cached       bool                         `json:"cached"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleOdds(w http.ResponseWriter, r *http.Request) {
	q, err := queryFromRequest(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	result, err := s.Odds(r.Context(), q)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, OddsResponse{
		Stage:         result.Stage.Key(),
		Players:       result.Odds.Players,
		Win:           result.Odds.Win,
		Tie:           result.Odds.Tie,
		HandTypeRates: result.Odds.HandRate,
		Categories:    categoryNames,
		ElapsedMS:     result.Elapsed.Milliseconds(),
		Cached:        result.Cached,
	})
}

func (s *Server) handleWinRate(w http.ResponseWriter, r *http.Request) {
	q, err := queryFromRequest(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	result, err := s.WinRate(r.Context(), q)
	if err != nil {
		s.writeError(w, err)
		return
	}

	wr := result.WinRate
	s.writeJSON(w, http.StatusOK, WinRateResponse{
		Stage:        result.Stage.Key(),
		Mean:         wr.Mean,
		MeanTieRate:  wr.MeanTieRate,
		Min:          wr.Min,
		Max:          wr.Max,
		Percentile25: wr.Percentile25,
		Median:       wr.Median,
		Percentile75: wr.Percentile75,
		Std:          wr.Std,
		SelfRate:     wr.SelfRate,
		OtherRate:    wr.OtherRate,
		DiffRate:     wr.DiffRate,
		Categories:   categoryNames,
		ElapsedMS:    result.Elapsed.Milliseconds(),
		Cached:       result.Cached,
	})
}

// queryFromRequest reads hole, community and players from the URL query.
// Cards are separated by spaces or commas.
func queryFromRequest(r *http.Request) (Query, error) {
	if r.Method != http.MethodGet {
		return Query{}, errMethodNotAllowed
	}

	values := r.URL.Query()
	q := Query{
		Hole:      splitCards(values.Get("hole")),
		Community: splitCards(values.Get("community")),
	}
	if p := values.Get("players"); p != "" {
		n, err := strconv.Atoi(p)
		if err != nil {
			return Query{}, fmt.Errorf("%w: players must be an integer, got %q", ErrInvalidQuery, p)
		}
		if n < 2 {
			return Query{}, fmt.Errorf("%w: %w, got %d", ErrInvalidQuery, odds.ErrTooFewPlayers, n)
		}
		q.Players = n
	}
	return q, nil
}

var errMethodNotAllowed = errors.New("method not allowed")

func splitCards(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '+'
	})
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, errMethodNotAllowed):
		status = http.StatusMethodNotAllowed
	case errors.Is(err, ErrInvalidQuery):
		status = http.StatusBadRequest
	case errors.Is(err, ErrQueryTimeout):
		status = http.StatusGatewayTimeout
	case errors.Is(err, context.Canceled):
		// Client went away; nobody reads the response.
		s.logger.Debug("Query cancelled by client")
		return
	}
	if status == http.StatusInternalServerError {
		s.logger.Error("Query failed", "error", err)
	}
	s.writeJSON(w, status, errorResponse{Error: err.Error()})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("Failed to write response", "error", err)
	}
}
