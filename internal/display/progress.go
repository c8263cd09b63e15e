package display

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// doneMsg reports that the background work finished
type doneMsg struct {
	err error
}

// ProgressModel shows a spinner until the work it tracks is done
type ProgressModel struct {
	spinner spinner.Model
	label   string
	done    bool
	err     error
}

// NewProgressModel creates a spinner labelled with label
func NewProgressModel(label string) ProgressModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = labelStyle
	return ProgressModel{spinner: s, label: label}
}

// Init starts the spinner
func (m ProgressModel) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update handles spinner ticks and completion
func (m ProgressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case doneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View renders the spinner line; nothing once finished
func (m ProgressModel) View() string {
	if m.done {
		return ""
	}
	return fmt.Sprintf("%s %s\n", m.spinner.View(), m.label)
}

// Done reports whether the tracked work has finished
func (m ProgressModel) Done() bool {
	return m.done
}

// Err returns the error the tracked work finished with
func (m ProgressModel) Err() error {
	return m.err
}

// RunWithProgress runs fn while a spinner is drawn on out. The program reads
// no input and leaves signals to the caller, so an interrupt reaches fn
// through ctx.
func RunWithProgress(ctx context.Context, out io.Writer, label string, fn func(context.Context) error) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	program := tea.NewProgram(NewProgressModel(label),
		tea.WithOutput(out),
		tea.WithInput(nil),
		tea.WithoutSignalHandler(),
	)

	result := make(chan error, 1)
	go func() {
		err := fn(ctx)
		result <- err
		program.Send(doneMsg{err: err})
	}()

	if _, err := program.Run(); err != nil {
		cancel()
		<-result
		if errors.Is(err, tea.ErrInterrupted) {
			return context.Canceled
		}
		return fmt.Errorf("progress display: %w", err)
	}
	return <-result
}
