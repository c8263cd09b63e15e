package poker

// HoleTier is a coarse preflop label for a pair of hole cards.
type HoleTier string

const (
	TierPremium HoleTier = "Premium"
	TierStrong  HoleTier = "Strong"
	TierMedium  HoleTier = "Medium"
	TierWeak    HoleTier = "Weak"
	TierTrash   HoleTier = "Trash"
)

// ClassifyHole labels two hole cards:
// Premium (JJ+, AK), Strong (TT, AQ, AJ), Medium (77-99, suited broadway),
// Weak (22-66, suited cards at most two ranks apart), Trash (everything else).
func ClassifyHole(a, b Card) HoleTier {
	low, high := a.Rank, b.Rank
	if low > high {
		low, high = high, low
	}
	pair := low == high
	suited := a.Suit == b.Suit

	switch {
	case pair && low >= Jack, low == King && high == Ace:
		return TierPremium
	case pair && low == Ten, high == Ace && (low == Queen || low == Jack):
		return TierStrong
	case pair && low >= Seven, suited && low >= Ten:
		return TierMedium
	case pair, suited && high-low <= 2:
		return TierWeak
	default:
		return TierTrash
	}
}
