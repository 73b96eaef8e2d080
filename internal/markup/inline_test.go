package markup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseInline(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []Node
	}{
		{name: "plain", line: "hello", want: []Node{Text("hello")}},
		{name: "empty", line: "", want: nil},
		{
			name: "all span kinds",
			line: "a $x$ **b** *c* `d`",
			want: []Node{
				Text("a "), Math("x"), Text(" "), Strong(Text("b")), Text(" "),
				Emphasis(Text("c")), Text(" "), Code("d"),
			},
		},
		{name: "unclosed strong is literal", line: "**bold oops", want: []Node{Text("**bold oops")}},
		{
			name: "unclosed strong falls back to emphasis",
			line: "**bold *oops",
			want: []Node{Text("*"), Emphasis(Text("bold ")), Text("oops")},
		},
		{name: "empty spans are literal", line: "$$ ** `` x", want: []Node{Text("$$ ** `` x")}},
		{name: "lone dollar", line: "costs $5", want: []Node{Text("costs $5")}},
		{
			name: "two prices become a math span",
			line: "$5 and $6",
			want: []Node{Math("5 and"), Text("6")},
		},
		{
			name: "strong body cannot contain a star",
			line: "**a*b**",
			want: []Node{Text("*"), Emphasis(Text("a")), Text("b**")},
		},
		{
			name: "math inside strong stays literal",
			line: "**a $b$ c**",
			want: []Node{Strong(Text("a $b$ c"))},
		},
		{
			name: "code keeps markers literal",
			line: "`*not em*`",
			want: []Node{Code("*not em*")},
		},
		{
			name: "multibyte text around spans",
			line: "café *ünïcode* ✓",
			want: []Node{Text("café "), Emphasis(Text("ünïcode")), Text(" ✓")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseInline(tt.line))
		})
	}
}

func TestParseInlineNormalizesMathSpans(t *testing.T) {
	got := ParseInline(`map $f: \mathbb{R} \to \mathbb{R}$ done`)

	assert.Equal(t, []Node{Text("map "), Math("f: R -> R"), Text(" done")}, got)
}
