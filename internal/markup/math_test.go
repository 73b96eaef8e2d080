package markup

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeMath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: `\mathbb{R} \times \mathbb{N}`, want: "R x N"},
		{in: `x \leq y`, want: "x <= y"},
		{in: `a \geq b \neq c`, want: "a >= b != c"},
		{in: `a\cdot b`, want: "a * b"},
		{in: `f: A \to B`, want: "f: A -> B"},
		{in: `x \mapsto x^2`, want: "x |-> x^2"},
		{in: `\mathfrak{g} \times \mathsf{Set}`, want: "g x Set"},
		{in: `a\_b \/ \[c\]`, want: "a_b / [c]"},
		{in: `\frac{a}{b}`, want: `\fracab`},
		{in: `{{x}}`, want: "x"},
		{in: `{unclosed`, want: "{unclosed"},
		{in: `closed}`, want: "closed}"},
		{in: "  spaced \t out  ", want: "spaced out"},
		{in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeMath(tt.in))
		})
	}
}

func TestNormalizeMathCommandBoundaries(t *testing.T) {
	assert.Equal(t, `\top`, NormalizeMath(`\top`))
	assert.Equal(t, `\timesx`, NormalizeMath(`\timesx`))
	assert.Equal(t, "a -> 1", NormalizeMath(`a \to1`))
	assert.Equal(t, `\mathbbx y`, NormalizeMath(`\mathbb{x y}`))
}

func TestNormalizeMathIsIdempotent(t *testing.T) {
	inputs := []string{
		`\mathbb{R} \times \mathbb{N}`,
		`\mathbb{\mathbb{R}}`,
		`{\leq}`,
		`\{\to}`,
		`\\_`,
		`{a}{b}}{`,
	}
	for _, in := range inputs {
		once := NormalizeMath(in)
		assert.Equal(t, once, NormalizeMath(once), "input %q", in)
	}
}

func FuzzRender(f *testing.F) {
	seeds := []string{
		"# Title\n- a\n- b\n\npara",
		"**bold** and *em* and $x \\leq y$",
		"1. one\n- two\n`code`",
		"$\\mathbb{R}$ {{}} \\to \\top",
		"***",
		"$",
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, input string) {
		nodes := Render(input)
		for _, node := range nodes {
			assertWellFormed(t, node, 0)
		}

		once := NormalizeMath(input)
		if once != NormalizeMath(once) {
			t.Fatalf("NormalizeMath not idempotent for %q", input)
		}
		if utf8.ValidString(input) && !utf8.ValidString(Dump(nodes)) {
			t.Fatalf("Dump produced invalid UTF-8 for %q", input)
		}
	})
}

func assertWellFormed(t *testing.T, n Node, depth int) {
	t.Helper()

	switch n.Kind {
	case KindHeading:
		if depth != 0 || n.Level < 1 || n.Level > maxHeadingLevel {
			t.Fatalf("bad heading %+v at depth %d", n, depth)
		}
	case KindList:
		for _, item := range n.Children {
			if item.Kind != KindListItem {
				t.Fatalf("list child is %s", item.Kind)
			}
		}
	case KindText, KindCode:
		if len(n.Children) != 0 {
			t.Fatalf("%s leaf has children", n.Kind)
		}
	case KindMath:
		if strings.TrimSpace(n.Text) != n.Text {
			t.Fatalf("math text not normalized: %q", n.Text)
		}
	}

	for _, child := range n.Children {
		assertWellFormed(t, child, depth+1)
	}
}
