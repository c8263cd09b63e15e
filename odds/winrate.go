package odds

import (
	"fmt"
	"math"
	"strings"

	"github.com/lox/pokerodds/internal/statistics"
	"github.com/lox/pokerodds/poker"
)

// WinRate summarizes the heads-up win rate of every hand the player can end
// with against every hand an opponent can end with.
type WinRate struct {
	Mean         float64
	MeanTieRate  float64
	Min          float64
	Max          float64
	Percentile25 float64
	Median       float64
	Percentile75 float64
	Std          float64

	SelfRate  CategoryRates // player's hands by category
	OtherRate CategoryRates // field hands by category
	DiffRate  CategoryRates // SelfRate - OtherRate
}

// WinRate computes the summary over the player's population.
func (p *Populations) WinRate() WinRate {
	wins := statistics.NewDistribution(len(p.Mine))
	ties := statistics.NewDistribution(len(p.Mine))
	for _, s := range p.Mine {
		win, tie := p.rates(s)
		wins.Add(win)
		ties.Add(tie)
	}

	self := categoryRates(p.Mine)
	other := categoryRates(p.Field)
	return WinRate{
		Mean:         wins.Mean(),
		MeanTieRate:  ties.Mean(),
		Min:          wins.Min(),
		Max:          wins.Max(),
		Percentile25: wins.Quartile(1),
		Median:       wins.Median(),
		Percentile75: wins.Quartile(3),
		Std:          wins.StdDev(),
		SelfRate:     self,
		OtherRate:    other,
		DiffRate:     self.Sub(other),
	}
}

// String renders the summary in the same layout as the CLI's plain output.
func (w WinRate) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "win rate: %.2f%% (tie %.2f%%)\n", w.Mean*100, w.MeanTieRate*100)
	fmt.Fprintf(&b, "min: %.2f%%  p25: %.2f%%  median: %.2f%%  p75: %.2f%%  max: %.2f%%  std: %.4f\n",
		w.Min*100, w.Percentile25*100, w.Median*100, w.Percentile75*100, w.Max*100, w.Std)
	for i := len(w.SelfRate) - 1; i >= 0; i-- {
		if w.SelfRate[i] == 0 && w.OtherRate[i] == 0 {
			continue
		}
		fmt.Fprintf(&b, "%-16s self %6.2f%%  other %6.2f%%  diff %+7.2f%%\n",
			poker.HandCategory(i), w.SelfRate[i]*100, w.OtherRate[i]*100, w.DiffRate[i]*100)
	}
	return b.String()
}

// Odds approximates the multi-way result against players-1 opponents by
// treating each opponent as an independent draw from the field.
type Odds struct {
	Players  int
	Win      float64
	Tie      float64
	HandRate CategoryRates
}

// Odds computes the n-player approximation over the player's population.
func (p *Populations) Odds(players int) (Odds, error) {
	if players < 2 {
		return Odds{}, fmt.Errorf("%w, got %d", ErrTooFewPlayers, players)
	}

	n := float64(players)
	var winSum, tieSum float64
	for _, s := range p.Mine {
		win, tie := p.rates(s)
		winN := math.Pow(win, n)
		loseN := 1 - math.Pow(win+tie, n)
		winSum += winN
		tieSum += 1 - loseN - winN
	}

	total := float64(len(p.Mine))
	return Odds{
		Players:  players,
		Win:      winSum / total,
		Tie:      tieSum / total,
		HandRate: categoryRates(p.Mine),
	}, nil
}

// String renders the win and tie rate followed by the player's category
// distribution.
func (o Odds) String() string {
	return fmt.Sprintf("players: %d\nwin: %.2f%%\ntie: %.2f%%\n%s", o.Players, o.Win*100, o.Tie*100, o.HandRate)
}
