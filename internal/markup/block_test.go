package markup

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
)

func TestRenderHeadingListParagraph(t *testing.T) {
	got := Render("# Title\n- a\n- b\n\npara")

	want := []Node{
		Heading(1, Text("Title")),
		List(false, Item(Text("a")), Item(Text("b"))),
		Paragraph(Text("para")),
	}
	assert.Equal(t, want, got)
}

func TestRenderInlineSpansInsideParagraph(t *testing.T) {
	got := Render("**bold** and *em* and $x \\leq y$")

	want := []Node{
		Paragraph(
			Strong(Text("bold")),
			Text(" and "),
			Emphasis(Text("em")),
			Text(" and "),
			Math("x <= y"),
		),
	}
	assert.Equal(t, want, got)
}

func TestRenderHeadingLevels(t *testing.T) {
	tests := []struct {
		name string
		line string
		want Node
	}{
		{name: "level one", line: "# One", want: Heading(1, Text("One"))},
		{name: "level six", line: "###### Six", want: Heading(6, Text("Six"))},
		{name: "tab separator", line: "##\tTabbed", want: Heading(2, Text("Tabbed"))},
		{name: "seven markers is a paragraph", line: "####### Seven", want: Paragraph(Text("####### Seven"))},
		{name: "missing whitespace is a paragraph", line: "#hashtag", want: Paragraph(Text("#hashtag"))},
		{name: "bare marker is a paragraph", line: "#", want: Paragraph(Text("#"))},
		{name: "inline spans in heading", line: "## Using `rag`", want: Heading(2, Text("Using "), Code("rag"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, []Node{tt.want}, Render(tt.line))
		})
	}
}

func TestRenderListKindSwitchFlushesPreviousList(t *testing.T) {
	got := Render("1. one\n2. two\n- dash\n* star\n3. three")

	want := []Node{
		List(true, Item(Text("one")), Item(Text("two"))),
		List(false, Item(Text("dash")), Item(Text("star"))),
		List(true, Item(Text("three"))),
	}
	assert.Equal(t, want, got)
}

func TestRenderParagraphAndHeadingCloseOpenList(t *testing.T) {
	got := Render("- a\nnot an item\n- b\n# Next")

	want := []Node{
		List(false, Item(Text("a"))),
		Paragraph(Text("not an item")),
		List(false, Item(Text("b"))),
		Heading(1, Text("Next")),
	}
	assert.Equal(t, want, got)
}

func TestRenderListItemPrefixesNeedWhitespace(t *testing.T) {
	got := Render("-dash\n**bold** line\n12.5 percent\n12. twelve")

	want := []Node{
		Paragraph(Text("-dash")),
		Paragraph(Strong(Text("bold")), Text(" line")),
		Paragraph(Text("12.5 percent")),
		List(true, Item(Text("twelve"))),
	}
	assert.Equal(t, want, got)
}

func TestRenderHandlesCRLFAndSurroundingBlankLines(t *testing.T) {
	got := Render("\r\n\r\n  first  \r\n\r\n- x\r\n")

	want := []Node{
		Paragraph(Text("first")),
		List(false, Item(Text("x"))),
	}
	assert.Equal(t, want, got)
}

func TestRenderEmptyInput(t *testing.T) {
	assert.Empty(t, Render(""))
	assert.Empty(t, Render("\n\n   \n"))
}

func TestRenderGoldenTree(t *testing.T) {
	input := "## Results\n" +
		"The set $\\mathbb{R} \\times \\mathbb{N}$ is **infinite**.\n" +
		"1. first `step`\n" +
		"2. second\n" +
		"- loose *item*\n" +
		"\n" +
		"Plain end\n"

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "mixed_answer", []byte(Dump(Render(input))))
}

func TestNodePlainText(t *testing.T) {
	nodes := Render("# Hi *there*\n- a\n- `b`")

	assert.Equal(t, "Hi there", nodes[0].PlainText())
	assert.Equal(t, "a\nb", nodes[1].PlainText())
}
