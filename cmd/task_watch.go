package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	statusrender "github.com/bnema/rag-cli/internal/adapters/render/status"
	"github.com/bnema/rag-cli/internal/application"
	"github.com/bnema/rag-cli/internal/domain"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type taskEventMsg struct {
	event application.IngestionEvent
}

type taskEventsClosedMsg struct{}

type taskWatchModel struct {
	spinner    spinner.Model
	events     <-chan application.IngestionEvent
	renderOpts func() statusrender.RenderOptions
	last       application.IngestionEvent
	seen       bool
	done       bool
}

func newTaskWatchModel(events <-chan application.IngestionEvent, opts func() statusrender.RenderOptions) taskWatchModel {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	return taskWatchModel{
		spinner:    s,
		events:     events,
		renderOpts: opts,
	}
}

func waitForTaskEvent(events <-chan application.IngestionEvent) tea.Cmd {
	return func() tea.Msg {
		event, ok := <-events
		if !ok {
			return taskEventsClosedMsg{}
		}
		return taskEventMsg{event: event}
	}
}

func (m taskWatchModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, waitForTaskEvent(m.events))
}

func (m taskWatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case taskEventMsg:
		m.last = msg.event
		m.seen = true
		if msg.event.Terminal() {
			m.done = true
			return m, tea.Quit
		}
		return m, waitForTaskEvent(m.events)
	case taskEventsClosedMsg:
		m.done = true
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m taskWatchModel) View() string {
	if !m.seen {
		return fmt.Sprintf("%s Waiting for task...", m.spinner.View())
	}

	view := statusrender.View(snapshotOf(m.last), m.renderOpts())
	if m.done {
		return view + "\n"
	}
	return fmt.Sprintf("%s %s", m.spinner.View(), view)
}

func snapshotOf(event application.IngestionEvent) statusrender.Snapshot {
	return statusrender.Snapshot{
		Task:          event.Record,
		ReceivedAt:    event.ReceivedAt,
		Documents:     event.Documents,
		ShowDocuments: event.RefreshListing() && event.ListingErr == nil,
	}
}

// watchTask follows a task until it ends. Interactive output gets a live
// view; anything else gets one line per update.
func watchTask(ctx context.Context, a *app, out io.Writer, id domain.TaskID) error {
	var (
		last application.IngestionEvent
		err  error
	)
	if isTerminal(out) {
		last, err = runTaskWatchProgram(ctx, a, out, id)
	} else {
		last, err = a.ingestion.Wait(ctx, id, func(event application.IngestionEvent) {
			_, _ = fmt.Fprintln(out, plainTaskLine(event))
		})
		if err == nil && last.RefreshListing() && last.ListingErr == nil {
			_, _ = fmt.Fprintf(out, "documents: %d\n", len(last.Documents))
		}
	}
	if err != nil {
		return explain(err)
	}
	return taskOutcome(last)
}

func runTaskWatchProgram(ctx context.Context, a *app, out io.Writer, id domain.TaskID) (application.IngestionEvent, error) {
	events := make(chan application.IngestionEvent, 16)
	stop := make(chan struct{})
	handle, err := a.ingestion.Track(ctx, id, forwardTaskEvents(ctx, events, stop))
	if err != nil {
		return application.IngestionEvent{}, err
	}
	defer close(stop)
	go func() {
		<-handle.Done()
		close(events)
	}()

	p := tea.NewProgram(
		newTaskWatchModel(events, func() statusrender.RenderOptions {
			return statusrender.RenderOptions{Now: a.now()}
		}),
		tea.WithInput(nil),
		tea.WithOutput(out),
		tea.WithContext(ctx),
	)

	finalModel, runErr := p.Run()
	handle.Stop()
	if runErr != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return application.IngestionEvent{}, ctxErr
		}
		return application.IngestionEvent{}, runErr
	}

	result, ok := finalModel.(taskWatchModel)
	if !ok {
		return application.IngestionEvent{}, fmt.Errorf("unexpected final task watch model type %T", finalModel)
	}
	return result.last, result.last.Err
}

// forwardTaskEvents feeds the live view. Sends give up once stop is closed
// so the poll goroutine can exit after the view has gone.
func forwardTaskEvents(ctx context.Context, events chan<- application.IngestionEvent, stop <-chan struct{}) func(application.IngestionEvent) {
	return func(event application.IngestionEvent) {
		select {
		case events <- event:
		case <-stop:
		case <-ctx.Done():
		}
	}
}

func plainTaskLine(event application.IngestionEvent) string {
	parts := []string{
		string(event.Record.Status),
		fmt.Sprintf("%d%%", event.Record.Progress),
	}
	if msg := strings.TrimSpace(event.Record.DisplayMessage()); msg != "" {
		parts = append(parts, msg)
	}
	return strings.Join(parts, "\t")
}

var errTaskNotCompleted = errors.New("task did not complete")

func taskOutcome(last application.IngestionEvent) error {
	switch last.Record.Status {
	case domain.TaskStatusCompleted:
		if last.ListingErr != nil {
			return fmt.Errorf("task completed but listing documents failed: %w", explain(last.ListingErr))
		}
		return nil
	case domain.TaskStatusFailed, domain.TaskStatusCancelled:
		msg := strings.TrimSpace(last.Record.DisplayMessage())
		if msg == "" {
			return fmt.Errorf("%w: %s", errTaskNotCompleted, last.Record.Status)
		}
		return fmt.Errorf("%w: %s: %s", errTaskNotCompleted, last.Record.Status, msg)
	default:
		return fmt.Errorf("%w: stopped while %s", errTaskNotCompleted, last.Record.Status)
	}
}
