package poker

import "fmt"

// BestOfSeven returns the strongest five-card hand among the 21 subsets of
// seven cards. On ties the first subset found wins.
func BestOfSeven(cards [7]Card) Hand {
	var best Hand
	var bestStrength Strength
	first := true
	forEachFive(&cards, func(five [5]Card) {
		h := Classify(five)
		if s := h.Strength(); first || s > bestStrength {
			best, bestStrength, first = h, s, false
		}
	})
	return best
}

// BestStrength is BestOfSeven reduced to the packed strength.
func BestStrength(cards [7]Card) Strength {
	var best Strength
	forEachFive(&cards, func(five [5]Card) {
		if s := Classify(five).Strength(); s > best {
			best = s
		}
	})
	return best
}

// BestOfSevenSlice selects from a seven card slice. It panics on any other
// length.
func BestOfSevenSlice(cards []Card) Hand {
	if len(cards) != 7 {
		panic(fmt.Sprintf("poker: best of seven needs 7 cards, got %d", len(cards)))
	}
	return BestOfSeven([7]Card(cards))
}

// forEachFive calls fn with every five-card subset, dropping cards i and j.
func forEachFive(cards *[7]Card, fn func([5]Card)) {
	for i := 0; i < 6; i++ {
		for j := i + 1; j < 7; j++ {
			var five [5]Card
			n := 0
			for k, card := range cards {
				if k != i && k != j {
					five[n] = card
					n++
				}
			}
			fn(five)
		}
	}
}
