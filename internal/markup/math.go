package markup

import "strings"

type mathRule func(string) string

// mathRules run in this order over the whole string; later rules see the
// output of earlier ones.
var mathRules = []mathRule{
	unwrapLetterStyles("mathbb", "mathfrak", "mathsf"),
	replaceCommand("times", " x "),
	replaceCommand("cdot", " * "),
	replaceCommand("leq", "<="),
	replaceCommand("geq", ">="),
	replaceCommand("neq", "!="),
	replaceCommand("to", " -> "),
	replaceCommand("mapsto", " |-> "),
	unescapeLiterals,
	stripBraces,
	collapseWhitespace,
}

// NormalizeMath approximates a narrow LaTeX subset as readable plain text.
// The rule chain is repeated until the text stops changing, so the result is
// a fixed point and NormalizeMath(NormalizeMath(s)) == NormalizeMath(s).
func NormalizeMath(s string) string {
	// Every pass that changes more than whitespace removes a backslash or a
	// brace, so the loop is bounded by the input length.
	limit := len(s) + 2
	for pass := 0; pass <= limit; pass++ {
		next := s
		for _, rule := range mathRules {
			next = rule(next)
		}
		if next == s {
			return next
		}
		s = next
	}
	return s
}

// unwrapLetterStyles turns \mathbb{R} into R for every wrapper name given.
func unwrapLetterStyles(names ...string) mathRule {
	return func(s string) string {
		for _, name := range names {
			s = unwrapStyle(s, `\`+name+`{`)
		}
		return s
	}
}

func unwrapStyle(s, open string) string {
	if !strings.Contains(s, open) {
		return s
	}

	var b strings.Builder
	for i := 0; i < len(s); {
		if strings.HasPrefix(s[i:], open) {
			body := s[i+len(open):]
			end := 0
			for end < len(body) && isAlphanumeric(body[end]) {
				end++
			}
			if end > 0 && end < len(body) && body[end] == '}' {
				b.WriteString(body[:end])
				i += len(open) + end + 1
				continue
			}
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String()
}

// replaceCommand replaces \name only when the command name ends there, so
// \to does not touch \top.
func replaceCommand(name, replacement string) mathRule {
	token := `\` + name
	return func(s string) string {
		if !strings.Contains(s, token) {
			return s
		}

		var b strings.Builder
		for i := 0; i < len(s); {
			next := i + len(token)
			if strings.HasPrefix(s[i:], token) && (next >= len(s) || !isLetter(s[next])) {
				b.WriteString(replacement)
				i = next
				continue
			}
			b.WriteByte(s[i])
			i++
		}
		return b.String()
	}
}

func unescapeLiterals(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}

	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) && strings.IndexByte(`_/[]`, s[i+1]) >= 0 {
			b.WriteByte(s[i+1])
			i++
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// stripBraces drops every matched brace pair and keeps the content.
// Unmatched braces are left alone.
func stripBraces(s string) string {
	if !strings.ContainsAny(s, "{}") {
		return s
	}

	drop := make(map[int]struct{})
	var open []int
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '{':
			open = append(open, i)
		case '}':
			if len(open) == 0 {
				continue
			}
			drop[open[len(open)-1]] = struct{}{}
			drop[i] = struct{}{}
			open = open[:len(open)-1]
		}
	}
	if len(drop) == 0 {
		return s
	}

	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if _, ok := drop[i]; ok {
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isAlphanumeric(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9')
}
