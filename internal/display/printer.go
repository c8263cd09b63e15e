// Package display renders odds results for the terminal.
package display

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/lox/pokerodds/odds"
	"github.com/lox/pokerodds/poker"
)

// Printer writes styled result tables
type Printer struct {
	w io.Writer
}

// NewPrinter creates a printer writing to w
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

func (p *Printer) table() *tabwriter.Writer {
	return tabwriter.NewWriter(p.w, 0, 0, 2, ' ', 0)
}

func percent(v float64) string {
	return fmt.Sprintf("%.2f%%", v*100)
}

// Stage prints the hole cards with their preflop tier and the board.
func (p *Printer) Stage(s *odds.Stage) error {
	hole := s.Hole()
	board := "-"
	if community := s.Community(); len(community) > 0 {
		board = FormatCards(community)
	}

	w := p.table()
	fmt.Fprintf(w, "%s\t%s  %s\n", headerStyle.Render("hole"), FormatCards(hole[:]),
		dimStyle.Render("("+string(poker.ClassifyHole(hole[0], hole[1]))+")"))
	fmt.Fprintf(w, "%s\t%s\n", headerStyle.Render("board"), board)
	return w.Flush()
}

// Odds prints the win and tie chance against the table. With detail the
// player's category distribution follows.
func (p *Printer) Odds(o odds.Odds, detail bool) error {
	w := p.table()
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
		headerStyle.Render("players"),
		headerStyle.Render("win"),
		headerStyle.Render("tie"),
		headerStyle.Render("lose"))
	fmt.Fprintf(w, "%d\t%s\t%s\t%s\n",
		o.Players,
		winStyle.Render(percent(o.Win)),
		tieStyle.Render(percent(o.Tie)),
		loseStyle.Render(percent(1-o.Win-o.Tie)))
	if err := w.Flush(); err != nil {
		return err
	}

	if !detail {
		return nil
	}
	fmt.Fprintln(p.w)

	w = p.table()
	fmt.Fprintf(w, "%s\t%s\n", headerStyle.Render("hand"), headerStyle.Render("rate"))
	for i := len(o.HandRate) - 1; i >= 0; i-- {
		fmt.Fprintf(w, "%s\t%s\n", labelStyle.Render(poker.HandCategory(i).String()), rate(o.HandRate[i]))
	}
	return w.Flush()
}

// WinRate prints the heads-up summary and, with detail, the category table
// for the player against the field.
func (p *Printer) WinRate(wr odds.WinRate, detail bool) error {
	w := p.table()
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
		headerStyle.Render("mean"),
		headerStyle.Render("tie"),
		headerStyle.Render("min"),
		headerStyle.Render("p25"),
		headerStyle.Render("median"),
		headerStyle.Render("p75"),
		headerStyle.Render("max"),
		headerStyle.Render("std"))
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%.4f\n",
		winStyle.Render(percent(wr.Mean)),
		tieStyle.Render(percent(wr.MeanTieRate)),
		percent(wr.Min),
		percent(wr.Percentile25),
		percent(wr.Median),
		percent(wr.Percentile75),
		percent(wr.Max),
		wr.Std)
	if err := w.Flush(); err != nil {
		return err
	}

	if !detail {
		return nil
	}
	fmt.Fprintln(p.w)

	w = p.table()
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
		headerStyle.Render("hand"),
		headerStyle.Render("self"),
		headerStyle.Render("other"),
		headerStyle.Render("diff"))
	for i := len(wr.SelfRate) - 1; i >= 0; i-- {
		diff := wr.DiffRate[i]
		diffStyle := winStyle
		if diff < 0 {
			diffStyle = loseStyle
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			labelStyle.Render(poker.HandCategory(i).String()),
			rate(wr.SelfRate[i]),
			rate(wr.OtherRate[i]),
			diffStyle.Render(fmt.Sprintf("%+.2f%%", diff*100)))
	}
	return w.Flush()
}

// rate renders a category rate, dimming a dot for impossible categories.
func rate(v float64) string {
	if v == 0 {
		return dimStyle.Render(".")
	}
	return percent(v)
}

// Footer prints how many hands were compared and how long it took.
func (p *Printer) Footer(pops *odds.Populations, elapsed time.Duration) error {
	_, err := fmt.Fprintf(p.w, "\n%s\n", dimStyle.Render(fmt.Sprintf("%d hands against %d in %v",
		len(pops.Mine), len(pops.Field), elapsed.Truncate(time.Millisecond))))
	return err
}
