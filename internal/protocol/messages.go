// Package protocol defines the msgpack frames exchanged over the odds
// websocket.
package protocol

//go:generate msgp

import "errors"

const (
	// Client -> Server
	TypeOddsRequest = "odds_request"

	// Server -> Client
	TypeOddsResponse = "odds_response"
	TypeError        = "error"
)

// Error codes
const (
	CodeInvalidRequest = "invalid_request"
	CodeTimeout        = "timeout"
	CodeInternal       = "internal"
)

var (
	ErrUnknownMessageType = errors.New("unknown message type")
	ErrMissingType        = errors.New("message has no type")
)

// OddsRequest asks for the equity of two hole cards given zero or three to
// five community cards. Cards use the text form, e.g. "hA", "s10".
type OddsRequest struct {
	Type      string   `msg:"type"`
	ID        string   `msg:"id"`
	Hole      []string `msg:"hole"`
	Community []string `msg:"community"`
	Players   int      `msg:"players"`
}

// OddsResponse answers an OddsRequest with the same ID.
type OddsResponse struct {
	Type          string    `msg:"type"`
	ID            string    `msg:"id"`
	Win           float64   `msg:"win"`
	Tie           float64   `msg:"tie"`
	HandTypeRates []float64 `msg:"hand_type_rates"` // indexed by hand category, weakest first
	ElapsedMS     int64     `msg:"elapsed_ms"`
	Cached        bool      `msg:"cached"`
}

// Error is sent instead of an OddsResponse when a request fails
type Error struct {
	Type    string `msg:"type"`
	ID      string `msg:"id"`
	Code    string `msg:"code"`
	Message string `msg:"message"`
}
