package markup

import (
	"strings"
	"unicode/utf8"
)

type spanRule struct {
	kind  Kind
	delim string
}

// Order matters: at each position the first rule that matches wins, so "**"
// is tried before "*".
var spanRules = []spanRule{
	{kind: KindMath, delim: "$"},
	{kind: KindStrong, delim: "**"},
	{kind: KindEmphasis, delim: "*"},
	{kind: KindCode, delim: "`"},
}

// ParseInline splits one line into span and plain text nodes.
func ParseInline(line string) []Node {
	var nodes []Node
	var plain strings.Builder

	flush := func() {
		if plain.Len() == 0 {
			return
		}
		nodes = append(nodes, Text(plain.String()))
		plain.Reset()
	}

	for i := 0; i < len(line); {
		if node, width, ok := matchSpan(line[i:]); ok {
			flush()
			nodes = append(nodes, node)
			i += width
			continue
		}

		_, size := utf8.DecodeRuneInString(line[i:])
		plain.WriteString(line[i : i+size])
		i += size
	}
	flush()

	return nodes
}

// matchSpan tries every rule at the start of s. A span body is a non-empty
// run without the delimiter character, closed by the full delimiter.
func matchSpan(s string) (Node, int, bool) {
	for _, rule := range spanRules {
		if !strings.HasPrefix(s, rule.delim) {
			continue
		}
		body := s[len(rule.delim):]
		end := strings.IndexByte(body, rule.delim[0])
		if end <= 0 || !strings.HasPrefix(body[end:], rule.delim) {
			continue
		}

		content := body[:end]
		width := len(rule.delim)*2 + end
		return spanNode(rule.kind, content), width, true
	}
	return Node{}, 0, false
}

func spanNode(kind Kind, content string) Node {
	switch kind {
	case KindMath:
		return Math(NormalizeMath(content))
	case KindStrong:
		return Strong(Text(content))
	case KindEmphasis:
		return Emphasis(Text(content))
	default:
		return Code(content)
	}
}
