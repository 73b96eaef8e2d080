package status

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/bnema/rag-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const defaultBarWidth = 24

// Snapshot is everything shown for one tracked task.
type Snapshot struct {
	Task       domain.TaskRecord
	ReceivedAt time.Time
	Documents  []domain.Document
	// ShowDocuments renders the listing section even when it is empty.
	ShowDocuments bool
}

type RenderOptions struct {
	Now      time.Time
	BarWidth int
}

func renderView(snap Snapshot, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render(fmt.Sprintf("Task %s", snap.Task.ID)),
		taskLine(snap.Task, opts, s),
	}

	if msg := strings.TrimSpace(snap.Task.DisplayMessage()); msg != "" {
		lines = append(lines, messageStyle(snap.Task.Status, s).Render(msg))
	}
	if age := formatAge(snap.ReceivedAt, opts.Now); age != "" {
		lines = append(lines, s.header.Render(age))
	}

	if snap.ShowDocuments || len(snap.Documents) > 0 {
		lines = append(lines, s.section.Render(renderDocuments(snap.Documents, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func taskLine(task domain.TaskRecord, opts RenderOptions, s styles) string {
	width := opts.BarWidth
	if width <= 0 {
		width = defaultBarWidth
	}
	progress := domain.ClampProgress(task.Progress)

	percentStyle := lipgloss.NewStyle().Foreground(interpolateColor(float64(progress), 0, 100))
	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		statusLabel(task.Status, s),
		" ",
		renderProgressBar(progress, width, s),
		" ",
		percentStyle.Render(fmt.Sprintf("%3d%%", progress)),
	)
}

func statusLabel(status domain.TaskStatus, s styles) string {
	label := fmt.Sprintf("%-9s", string(status))
	switch status {
	case domain.TaskStatusCompleted:
		return s.success.Render(label)
	case domain.TaskStatusFailed, domain.TaskStatusLost, domain.TaskStatusCancelled:
		return s.failure.Render(label)
	default:
		return s.header.Render(label)
	}
}

func messageStyle(status domain.TaskStatus, s styles) lipgloss.Style {
	if status == domain.TaskStatusFailed || status == domain.TaskStatusLost {
		return s.failure
	}
	return s.message
}

func renderDocuments(docs []domain.Document, s styles) string {
	lines := []string{s.header.Render(fmt.Sprintf("documents: %d", len(docs)))}
	if len(docs) == 0 {
		lines = append(lines, s.empty.Render("No documents indexed."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}
	for _, doc := range docs {
		lines = append(lines, lipgloss.JoinHorizontal(
			lipgloss.Top,
			s.docName.Render(doc.Name),
			" ",
			s.docMeta.Render("("+FormatSize(doc.SizeBytes)+")"),
		))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderProgressBar(progress int, width int, s styles) string {
	if width <= 0 {
		return ""
	}

	filled := int(math.Round(float64(width) * float64(progress) / 100.0))
	filled = min(max(filled, 0), width)

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.barBracket.Render("["),
		s.barFill.Render(strings.Repeat("=", filled)),
		s.barEmpty.Render(strings.Repeat("-", width-filled)),
		s.barBracket.Render("]"),
	)
}

// FormatSize prints a byte count with a binary unit.
func FormatSize(size int64) string {
	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%d B", max(size, 0))
	}
	div, exp := int64(unit), 0
	for n := size / unit; n >= unit && exp < 4; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(size)/float64(div), "KMGTP"[exp])
}

func formatAge(at, now time.Time) string {
	if at.IsZero() || now.IsZero() {
		return ""
	}
	elapsed := now.Sub(at)
	if elapsed < time.Second {
		return "updated just now"
	}
	return fmt.Sprintf("updated %s ago", elapsed.Truncate(time.Second))
}

// interpolateColor maps value onto the 240..255 greyscale ramp.
func interpolateColor(value, lo, hi float64) lipgloss.Color {
	if hi == lo {
		return lipgloss.Color("255")
	}

	normalized := (value - lo) / (hi - lo)
	normalized = min(max(normalized, 0), 1)

	base, target := 240.0, 255.0
	return lipgloss.Color(fmt.Sprintf("%d", int(base+(target-base)*normalized)))
}
