package poker

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidCard is returned when card text cannot be parsed.
var ErrInvalidCard = errors.New("invalid card")

// Rank is a card rank from Two (lowest) to Ace (highest).
type Rank uint8

const (
	Two Rank = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// NumRanks is the number of distinct ranks.
const NumRanks = 13

// IsNext reports whether other is the rank directly above r. Ace is followed
// by Two so the wheel can be detected.
func (r Rank) IsNext(other Rank) bool {
	if r == Ace {
		return other == Two
	}
	return other == r+1
}

// String returns the single character rank symbol.
func (r Rank) String() string {
	if r > Ace {
		return "?"
	}
	return string("23456789TJQKA"[r])
}

// Suit is one of the four card suits. Suits are unordered; the numeric order
// only matches the 1..4 selectors of the card text format.
type Suit uint8

const (
	Hearts Suit = iota
	Diamonds
	Clubs
	Spades
)

// NumSuits is the number of distinct suits.
const NumSuits = 4

// Letter returns the lower-case suit selector used by the text format.
func (s Suit) Letter() string {
	switch s {
	case Hearts:
		return "h"
	case Diamonds:
		return "d"
	case Clubs:
		return "c"
	case Spades:
		return "s"
	default:
		return "?"
	}
}

// String returns the suit symbol.
func (s Suit) String() string {
	switch s {
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	case Spades:
		return "♠"
	default:
		return "?"
	}
}

// IsRed returns true for Hearts and Diamonds
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Card is an immutable playing card. Two cards are equal only when both rank
// and suit match; CompareRank orders by rank alone.
type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard creates a card from a rank and suit
func NewCard(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// CompareRank compares two cards by rank only: -1, 0 or 1. Cards of equal
// rank and different suit compare as 0 even though they are not equal.
func (c Card) CompareRank(other Card) int {
	switch {
	case c.Rank < other.Rank:
		return -1
	case c.Rank > other.Rank:
		return 1
	default:
		return 0
	}
}

// Index returns the card's position in the canonical deck (0-51).
func (c Card) Index() int {
	return int(c.Suit)*NumRanks + int((c.Rank+1)%NumRanks)
}

// String returns the canonical text form, e.g. "hA" or "sT". The result
// parses back to the same card.
func (c Card) String() string {
	return c.Suit.Letter() + c.Rank.String()
}

// Pretty returns a terminal friendly form, e.g. "♥A".
func (c Card) Pretty() string {
	return c.Suit.String() + c.Rank.String()
}

// ParseCard parses a single card: a suit selector (h/d/c/s, case-insensitive,
// or 1-4) followed by a rank token (A, 2-9, T, J, Q, K, case-insensitive, or
// 1-13).
func ParseCard(s string) (Card, error) {
	if len(s) < 2 {
		return Card{}, fmt.Errorf("%w %q: too short", ErrInvalidCard, s)
	}

	suit, err := parseSuit(s[0])
	if err != nil {
		return Card{}, fmt.Errorf("%w %q: %v", ErrInvalidCard, s, err)
	}

	rank, err := parseRank(s[1:])
	if err != nil {
		return Card{}, fmt.Errorf("%w %q: %v", ErrInvalidCard, s, err)
	}

	return Card{Rank: rank, Suit: suit}, nil
}

// MustParseCard parses a card and panics on error (for tests)
func MustParseCard(s string) Card {
	card, err := ParseCard(s)
	if err != nil {
		panic(err)
	}
	return card
}

// ParseCards parses whitespace separated cards, e.g. "hA sK d10".
func ParseCards(s string) ([]Card, error) {
	fields := strings.Fields(s)
	cards := make([]Card, 0, len(fields))
	for i, field := range fields {
		card, err := ParseCard(field)
		if err != nil {
			return nil, fmt.Errorf("card %d: %w", i+1, err)
		}
		cards = append(cards, card)
	}
	return cards, nil
}

// MustParseCards parses cards and panics on error (for tests)
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(err)
	}
	return cards
}

// FormatCards joins the canonical form of each card with spaces.
func FormatCards(cards []Card) string {
	parts := make([]string, len(cards))
	for i, card := range cards {
		parts[i] = card.String()
	}
	return strings.Join(parts, " ")
}

func parseSuit(c byte) (Suit, error) {
	switch c {
	case 'h', 'H', '1':
		return Hearts, nil
	case 'd', 'D', '2':
		return Diamonds, nil
	case 'c', 'C', '3':
		return Clubs, nil
	case 's', 'S', '4':
		return Spades, nil
	default:
		return 0, fmt.Errorf("unknown suit '%c'", c)
	}
}

func parseRank(s string) (Rank, error) {
	switch s {
	case "A", "a", "1":
		return Ace, nil
	case "2":
		return Two, nil
	case "3":
		return Three, nil
	case "4":
		return Four, nil
	case "5":
		return Five, nil
	case "6":
		return Six, nil
	case "7":
		return Seven, nil
	case "8":
		return Eight, nil
	case "9":
		return Nine, nil
	case "T", "t", "10":
		return Ten, nil
	case "J", "j", "11":
		return Jack, nil
	case "Q", "q", "12":
		return Queen, nil
	case "K", "k", "13":
		return King, nil
	default:
		return 0, fmt.Errorf("unknown rank %q", s)
	}
}
