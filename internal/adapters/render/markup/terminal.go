// Package markup draws markup trees for a terminal with lipgloss.
package markup

import (
	"strconv"
	"strings"

	"github.com/bnema/rag-cli/internal/markup"
	"github.com/charmbracelet/lipgloss"
)

type Options struct {
	// Width wraps paragraphs and list items; zero disables wrapping.
	Width int
}

type styles struct {
	heading  [3]lipgloss.Style
	strong   lipgloss.Style
	emphasis lipgloss.Style
	code     lipgloss.Style
	math     lipgloss.Style
	bullet   lipgloss.Style
}

func newStyles() styles {
	return styles{
		heading: [3]lipgloss.Style{
			lipgloss.NewStyle().Bold(true).Underline(true).Foreground(lipgloss.Color("39")),
			lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
			lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("111")),
		},
		strong:   lipgloss.NewStyle().Bold(true),
		emphasis: lipgloss.NewStyle().Italic(true),
		code:     lipgloss.NewStyle().Foreground(lipgloss.Color("215")),
		math:     lipgloss.NewStyle().Foreground(lipgloss.Color("183")),
		bullet:   lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
	}
}

type Renderer struct {
	opts   Options
	styles styles
}

func NewRenderer(opts Options) *Renderer {
	return &Renderer{opts: opts, styles: newStyles()}
}

// RenderText parses text and draws it.
func (r *Renderer) RenderText(text string) string {
	return r.Render(markup.Render(text))
}

// Render draws block nodes separated by blank lines.
func (r *Renderer) Render(nodes []markup.Node) string {
	blocks := make([]string, 0, len(nodes))
	for _, node := range nodes {
		if block := r.block(node); block != "" {
			blocks = append(blocks, block)
		}
	}
	return strings.Join(blocks, "\n\n")
}

func (r *Renderer) block(node markup.Node) string {
	switch node.Kind {
	case markup.KindHeading:
		style := r.styles.heading[min(max(node.Level, 1), len(r.styles.heading))-1]
		return style.Render(r.inline(node.Children))
	case markup.KindParagraph:
		return r.wrap(r.inline(node.Children), 0)
	case markup.KindList:
		return r.list(node)
	default:
		return r.inline([]markup.Node{node})
	}
}

func (r *Renderer) list(node markup.Node) string {
	lines := make([]string, 0, len(node.Children))
	width := 2
	if node.Ordered {
		width = len(strconv.Itoa(len(node.Children))) + 2
	}
	for i, item := range node.Children {
		marker := "•"
		if node.Ordered {
			marker = strconv.Itoa(i+1) + "."
		}
		marker += strings.Repeat(" ", max(width-len([]rune(marker)), 1))
		body := r.wrap(r.inline(item.Children), width)
		lines = append(lines, r.styles.bullet.Render(marker)+indentRest(body, width))
	}
	return strings.Join(lines, "\n")
}

func (r *Renderer) inline(nodes []markup.Node) string {
	var b strings.Builder
	for _, node := range nodes {
		switch node.Kind {
		case markup.KindText:
			b.WriteString(node.Text)
		case markup.KindCode:
			b.WriteString(r.styles.code.Render(node.Text))
		case markup.KindMath:
			b.WriteString(r.styles.math.Render(node.Text))
		case markup.KindStrong:
			b.WriteString(r.styles.strong.Render(r.inline(node.Children)))
		case markup.KindEmphasis:
			b.WriteString(r.styles.emphasis.Render(r.inline(node.Children)))
		default:
			b.WriteString(r.inline(node.Children))
		}
	}
	return b.String()
}

func (r *Renderer) wrap(text string, indent int) string {
	if r.opts.Width <= indent+1 {
		return text
	}
	return lipgloss.NewStyle().Width(r.opts.Width - indent).Render(text)
}

func indentRest(text string, width int) string {
	lines := strings.Split(text, "\n")
	pad := strings.Repeat(" ", width)
	for i := 1; i < len(lines); i++ {
		lines[i] = pad + lines[i]
	}
	return strings.Join(lines, "\n")
}
