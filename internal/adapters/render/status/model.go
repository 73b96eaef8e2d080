package status

import (
	"errors"
	"io"

	"github.com/bnema/rag-cli/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUnexpectedRenderModel = errors.New("unexpected final bubbletea model type")

type renderReadyMsg struct{}

type model struct {
	snap   Snapshot
	opts   RenderOptions
	styles styles
	output string
}

func newModel(snap Snapshot, opts RenderOptions) model {
	return model{
		snap:   snap,
		opts:   opts,
		styles: newStyles(),
	}
}

func (m model) Init() tea.Cmd {
	return func() tea.Msg {
		return renderReadyMsg{}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case renderReadyMsg:
		m.output = renderView(m.snap, m.opts, m.styles)
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m model) View() string {
	return m.output
}

// Render draws a snapshot once, off screen.
func Render(snap Snapshot, opts RenderOptions) (string, error) {
	p := tea.NewProgram(
		newModel(snap, opts),
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	rendered, ok := finalModel.(model)
	if !ok {
		return "", ErrUnexpectedRenderModel
	}

	return rendered.View(), nil
}

// View draws a snapshot without running a program. Live models call it on
// every frame.
func View(snap Snapshot, opts RenderOptions) string {
	return renderView(snap, opts, newStyles())
}

// Line draws only the status and progress bar.
func Line(task domain.TaskRecord, opts RenderOptions) string {
	return taskLine(task, opts, newStyles())
}
