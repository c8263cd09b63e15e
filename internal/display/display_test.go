package display

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pokerodds/odds"
	"github.com/lox/pokerodds/poker"
)

func init() {
	SetColor(false)
}

func TestFormatCards(t *testing.T) {
	assert.Equal(t, "♥A ♠K ♦T", FormatCards(poker.MustParseCards("hA sK dT")))
	assert.Equal(t, "", FormatCards(nil))
}

func TestPrintStage(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	s, err := odds.ParseStage("hA hK", "sQ sJ s10")
	require.NoError(t, err)
	require.NoError(t, p.Stage(s))

	out := buf.String()
	assert.Contains(t, out, "hole")
	assert.Contains(t, out, "♥A ♥K  (Premium)")
	assert.Contains(t, out, "♠Q ♠J ♠T")

	buf.Reset()
	s, err = odds.ParseStage("c7 d2", "")
	require.NoError(t, err)
	require.NoError(t, p.Stage(s))
	assert.Contains(t, buf.String(), "(Trash)")
	assert.Contains(t, buf.String(), "board  -")
}

func TestPrintOdds(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	o := odds.Odds{Players: 3, Win: 0.5, Tie: 0.125}
	o.HandRate[poker.Pair] = 0.75
	o.HandRate[poker.TwoPair] = 0.25

	require.NoError(t, p.Odds(o, false))
	out := buf.String()
	assert.Contains(t, out, "players")
	assert.Contains(t, out, "50.00%")
	assert.Contains(t, out, "12.50%")
	assert.Contains(t, out, "37.50%")
	assert.NotContains(t, out, "Two Pair")

	buf.Reset()
	require.NoError(t, p.Odds(o, true))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Contains(t, buf.String(), "75.00%")

	// Strongest category first
	var categories []string
	for _, line := range lines {
		for _, c := range []string{"Royal Flush", "Two Pair", "High Card"} {
			if strings.HasPrefix(line, c) {
				categories = append(categories, c)
			}
		}
	}
	assert.Equal(t, []string{"Royal Flush", "Two Pair", "High Card"}, categories)
}

func TestPrintWinRate(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	wr := odds.WinRate{Mean: 0.6, MeanTieRate: 0.02, Min: 0.1, Percentile25: 0.4, Median: 0.6, Percentile75: 0.8, Max: 1, Std: 0.25}
	wr.SelfRate[poker.Flush] = 1
	wr.OtherRate[poker.Flush] = 0.25
	wr.OtherRate[poker.Pair] = 0.75
	wr.DiffRate = wr.SelfRate.Sub(wr.OtherRate)

	require.NoError(t, p.WinRate(wr, true))
	out := buf.String()
	assert.Contains(t, out, "median")
	assert.Contains(t, out, "60.00%")
	assert.Contains(t, out, "0.2500")
	assert.Contains(t, out, "+75.00%")
	assert.Contains(t, out, "-75.00%")
}

func TestFooter(t *testing.T) {
	var buf bytes.Buffer
	pops := &odds.Populations{Mine: make([]poker.Strength, 46), Field: make([]poker.Strength, 1081)}
	require.NoError(t, NewPrinter(&buf).Footer(pops, 1500*time.Microsecond))
	assert.Contains(t, buf.String(), "46 hands against 1081 in 1ms")
}

func TestProgressModel(t *testing.T) {
	m := NewProgressModel("Enumerating")
	assert.NotNil(t, m.Init())
	assert.Contains(t, m.View(), "Enumerating")

	next, cmd := m.Update(spinner.TickMsg{})
	_ = cmd
	m = next.(ProgressModel)
	assert.False(t, m.Done())

	failure := errors.New("boom")
	next, cmd = m.Update(doneMsg{err: failure})
	m = next.(ProgressModel)
	assert.True(t, m.Done())
	assert.Equal(t, failure, m.Err())
	assert.Empty(t, m.View())
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestProgressModelIgnoresKeys(t *testing.T) {
	m := NewProgressModel("Enumerating")
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	m = next.(ProgressModel)
	assert.False(t, m.Done())
	assert.Nil(t, cmd)
}

func TestRunWithProgress(t *testing.T) {
	var buf bytes.Buffer
	ran := false
	err := RunWithProgress(context.Background(), &buf, "Working", func(ctx context.Context) error {
		ran = true
		return ctx.Err()
	})
	require.NoError(t, err)
	assert.True(t, ran)

	failure := errors.New("enumeration failed")
	err = RunWithProgress(context.Background(), &buf, "Working", func(context.Context) error {
		return failure
	})
	assert.ErrorIs(t, err, failure)
}

func TestRunWithProgressCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	started := make(chan struct{})
	go func() {
		<-started
		cancel()
	}()

	var buf bytes.Buffer
	err := RunWithProgress(ctx, &buf, "Working", func(ctx context.Context) error {
		close(started)
		<-ctx.Done()
		return ctx.Err()
	})
	assert.ErrorIs(t, err, context.Canceled)
}
