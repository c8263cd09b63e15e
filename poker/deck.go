package poker

import "math/bits"

// DeckSize is the number of cards in a standard deck.
const DeckSize = 52

// AllCards is the canonical ordered deck: Hearts, Diamonds, Clubs, Spades,
// each running Ace, Two .. King.
var AllCards = func() [DeckSize]Card {
	var cards [DeckSize]Card
	i := 0
	for suit := range Suit(NumSuits) {
		cards[i] = Card{Rank: Ace, Suit: suit}
		i++
		for rank := Two; rank <= King; rank++ {
			cards[i] = Card{Rank: rank, Suit: suit}
			i++
		}
	}
	return cards
}()

// CardSet represents a set of cards as a bitset over canonical deck indices.
type CardSet uint64

// NewCardSet creates a CardSet from a slice of cards
func NewCardSet(cards []Card) CardSet {
	var cs CardSet
	for _, card := range cards {
		cs.Add(card)
	}
	return cs
}

// Add adds a card to the set
func (cs *CardSet) Add(card Card) {
	*cs |= 1 << card.Index()
}

// Contains checks if a card is in the set
func (cs CardSet) Contains(card Card) bool {
	return cs&(1<<card.Index()) != 0
}

// Len returns the number of cards in the set
func (cs CardSet) Len() int {
	return bits.OnesCount64(uint64(cs))
}

// Remaining returns the canonical deck minus the given cards, in deck order.
func Remaining(known []Card) []Card {
	used := NewCardSet(known)
	cards := make([]Card, 0, DeckSize-used.Len())
	for _, card := range AllCards {
		if !used.Contains(card) {
			cards = append(cards, card)
		}
	}
	return cards
}
