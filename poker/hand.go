package poker

import (
	"fmt"
	"strings"
)

// HandCategory enumerates the categories of poker hands ordered from weakest
// to strongest.
type HandCategory uint8

const (
	HighCard HandCategory = iota
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

// NumCategories is the number of hand categories.
const NumCategories = 10

// AllCategories lists every category in ascending strength order.
var AllCategories = [NumCategories]HandCategory{
	HighCard, Pair, TwoPair, ThreeOfAKind, Straight,
	Flush, FullHouse, FourOfAKind, StraightFlush, RoyalFlush,
}

// String returns a human-readable category name.
func (c HandCategory) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case Pair:
		return "Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	case RoyalFlush:
		return "Royal Flush"
	default:
		return "Unknown"
	}
}

// Hand is a classified five-card hand. Hands of the same category always
// carry tie-break keys of the same length.
type Hand struct {
	Category HandCategory
	key      [5]Rank
	keyLen   uint8
	cards    [5]Card // descending by rank
}

// Key returns the tie-break ranks, most significant first.
func (h Hand) Key() []Rank {
	key := h.key
	return key[:h.keyLen]
}

// Cards returns the five cards of the hand, highest rank first.
func (h Hand) Cards() [5]Card {
	return h.cards
}

// String returns a string representation of the hand
func (h Hand) String() string {
	parts := make([]string, len(h.cards))
	for i, card := range h.cards {
		parts[i] = card.String()
	}
	return fmt.Sprintf("%s [%s]", h.Category, strings.Join(parts, " "))
}

// Compare returns -1 if h is weaker than other, 0 on a tie and 1 if h is
// stronger. Categories decide first, then the tie-break keys.
func (h Hand) Compare(other Hand) int {
	if h.Category != other.Category {
		if h.Category < other.Category {
			return -1
		}
		return 1
	}
	if h.keyLen != other.keyLen {
		panic(fmt.Sprintf("poker: %s tie-break keys differ in length (%d vs %d)", h.Category, h.keyLen, other.keyLen))
	}
	for i := range h.keyLen {
		if h.key[i] < other.key[i] {
			return -1
		}
		if h.key[i] > other.key[i] {
			return 1
		}
	}
	return 0
}

// Strength packs the category and tie-break key into an integer whose order
// matches Compare.
func (h Hand) Strength() Strength {
	s := Strength(h.Category) << categoryShift
	for i := range h.keyLen {
		s |= Strength(h.key[i]) << (16 - 4*uint(i))
	}
	return s
}

// Strength is a packed hand value: category in bits 20 and up, tie-break ranks
// as 4-bit nibbles below, most significant first. Larger is stronger.
type Strength uint32

const categoryShift = 20

// Category returns the hand category encoded in the strength.
func (s Strength) Category() HandCategory {
	return HandCategory(s >> categoryShift)
}

// String returns the category name and tie-break ranks, e.g. "Pair (A K 9 4)".
func (s Strength) String() string {
	n := keyLength(s.Category())
	ranks := make([]string, n)
	for i := range n {
		ranks[i] = Rank((s >> (16 - 4*uint(i))) & 0xF).String()
	}
	return fmt.Sprintf("%s (%s)", s.Category(), strings.Join(ranks, " "))
}

// keyLength is the tie-break key length used by each category.
func keyLength(c HandCategory) int {
	switch c {
	case RoyalFlush, StraightFlush, Straight:
		return 1
	case FourOfAKind, FullHouse:
		return 2
	case ThreeOfAKind, TwoPair:
		return 3
	case Pair:
		return 4
	default:
		return 5
	}
}

// Classify determines the category and tie-break key of exactly five cards.
// The result does not depend on input order. Keys follow poker rules rather
// than plain rank order: a full house keys on its trips then its pair, and a
// straight on its high card with the wheel counting as five high.
func Classify(cards [5]Card) Hand {
	sortByRank(&cards)
	r0, r1, r2, r3, r4 := cards[0].Rank, cards[1].Rank, cards[2].Rank, cards[3].Rank, cards[4].Rank

	h := Hand{cards: [5]Card{cards[4], cards[3], cards[2], cards[1], cards[0]}}
	flush := isFlush(&cards)
	straight, high := isStraight(&cards)

	switch {
	case straight && flush && r0 == Ten:
		h.Category = RoyalFlush
		h.setKey(Ace)
	case straight && flush:
		h.Category = StraightFlush
		h.setKey(high)
	case r0 == r3:
		h.Category = FourOfAKind
		h.setKey(r0, r4)
	case r1 == r4:
		h.Category = FourOfAKind
		h.setKey(r4, r0)
	case r0 == r2 && r3 == r4:
		h.Category = FullHouse
		h.setKey(r0, r3)
	case r0 == r1 && r2 == r4:
		h.Category = FullHouse
		h.setKey(r4, r0)
	case flush:
		h.Category = Flush
		h.setKey(r4, r3, r2, r1, r0)
	case straight:
		h.Category = Straight
		h.setKey(high)
	case r0 == r2:
		h.Category = ThreeOfAKind
		h.setKey(r0, r4, r3)
	case r1 == r3:
		h.Category = ThreeOfAKind
		h.setKey(r1, r4, r0)
	case r2 == r4:
		h.Category = ThreeOfAKind
		h.setKey(r2, r1, r0)
	case r0 == r1 && r2 == r3:
		h.Category = TwoPair
		h.setKey(r2, r0, r4)
	case r0 == r1 && r3 == r4:
		h.Category = TwoPair
		h.setKey(r3, r0, r2)
	case r1 == r2 && r3 == r4:
		h.Category = TwoPair
		h.setKey(r3, r1, r0)
	case r0 == r1:
		h.Category = Pair
		h.setKey(r0, r4, r3, r2)
	case r1 == r2:
		h.Category = Pair
		h.setKey(r1, r4, r3, r0)
	case r2 == r3:
		h.Category = Pair
		h.setKey(r2, r4, r1, r0)
	case r3 == r4:
		h.Category = Pair
		h.setKey(r3, r2, r1, r0)
	default:
		h.Category = HighCard
		h.setKey(r4, r3, r2, r1, r0)
	}

	return h
}

// ClassifySlice classifies a five card slice. It panics on any other length.
func ClassifySlice(cards []Card) Hand {
	if len(cards) != 5 {
		panic(fmt.Sprintf("poker: classify needs 5 cards, got %d", len(cards)))
	}
	return Classify([5]Card(cards))
}

func (h *Hand) setKey(ranks ...Rank) {
	h.keyLen = uint8(copy(h.key[:], ranks))
}

// sortByRank is an insertion sort, ascending by rank only.
func sortByRank(cards *[5]Card) {
	for i := 1; i < len(cards); i++ {
		c := cards[i]
		j := i - 1
		for j >= 0 && cards[j].CompareRank(c) > 0 {
			cards[j+1] = cards[j]
			j--
		}
		cards[j+1] = c
	}
}

func isFlush(cards *[5]Card) bool {
	s := cards[0].Suit
	return cards[1].Suit == s && cards[2].Suit == s && cards[3].Suit == s && cards[4].Suit == s
}

// isStraight expects rank-sorted cards and returns the straight's top rank.
// The wheel (A-2-3-4-5) plays five high.
func isStraight(cards *[5]Card) (bool, Rank) {
	if adjacent(cards[:]) {
		return true, cards[4].Rank
	}
	if cards[4].Rank == Ace && cards[0].Rank == Two && adjacent(cards[:4]) {
		return true, Five
	}
	return false, 0
}

func adjacent(cards []Card) bool {
	for i := 1; i < len(cards); i++ {
		if !cards[i-1].Rank.IsNext(cards[i].Rank) {
			return false
		}
	}
	return true
}
