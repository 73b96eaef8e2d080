package markup

import "strings"

// Render parses a whole document into block nodes.
func Render(text string) []Node {
	b := &blockBuilder{}
	for _, line := range strings.Split(text, "\n") {
		b.line(strings.TrimSuffix(line, "\r"))
	}
	b.flushList()
	return b.nodes
}

type blockBuilder struct {
	nodes    []Node
	items    []Node
	ordered  bool
	listOpen bool
}

func (b *blockBuilder) line(raw string) {
	line := strings.TrimSpace(raw)
	if line == "" {
		b.flushList()
		return
	}

	if level, rest, ok := headingPrefix(line); ok {
		b.flushList()
		b.nodes = append(b.nodes, Heading(level, ParseInline(rest)...))
		return
	}
	if rest, ok := orderedItemPrefix(line); ok {
		b.appendItem(true, rest)
		return
	}
	if rest, ok := unorderedItemPrefix(line); ok {
		b.appendItem(false, rest)
		return
	}

	b.flushList()
	b.nodes = append(b.nodes, Paragraph(ParseInline(line)...))
}

// appendItem never merges lists of different kinds: a kind switch closes the
// pending list first.
func (b *blockBuilder) appendItem(ordered bool, rest string) {
	if b.listOpen && b.ordered != ordered {
		b.flushList()
	}
	b.listOpen = true
	b.ordered = ordered
	b.items = append(b.items, Item(ParseInline(rest)...))
}

func (b *blockBuilder) flushList() {
	if !b.listOpen {
		return
	}
	b.nodes = append(b.nodes, List(b.ordered, b.items...))
	b.items = nil
	b.listOpen = false
}

const maxHeadingLevel = 6

func headingPrefix(line string) (int, string, bool) {
	level := 0
	for level < len(line) && line[level] == '#' {
		level++
	}
	if level == 0 || level > maxHeadingLevel {
		return 0, "", false
	}
	rest, ok := afterWhitespace(line[level:])
	if !ok {
		return 0, "", false
	}
	return level, rest, true
}

func orderedItemPrefix(line string) (string, bool) {
	digits := 0
	for digits < len(line) && line[digits] >= '0' && line[digits] <= '9' {
		digits++
	}
	if digits == 0 || digits >= len(line) || line[digits] != '.' {
		return "", false
	}
	return afterWhitespace(line[digits+1:])
}

func unorderedItemPrefix(line string) (string, bool) {
	if line[0] != '-' && line[0] != '*' {
		return "", false
	}
	return afterWhitespace(line[1:])
}

// afterWhitespace requires at least one space or tab and returns what follows.
func afterWhitespace(s string) (string, bool) {
	if s == "" || !isSpace(s[0]) {
		return "", false
	}
	return strings.TrimLeft(s, " \t"), true
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t'
}
