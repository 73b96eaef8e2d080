package markup

import (
	"strconv"
	"strings"
)

type Kind int

const (
	KindText Kind = iota
	KindHeading
	KindParagraph
	KindList
	KindListItem
	KindCode
	KindEmphasis
	KindStrong
	KindMath
)

var kindNames = map[Kind]string{
	KindText:      "text",
	KindHeading:   "heading",
	KindParagraph: "paragraph",
	KindList:      "list",
	KindListItem:  "item",
	KindCode:      "code",
	KindEmphasis:  "em",
	KindStrong:    "strong",
	KindMath:      "math",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Node is one element of a rendered document. Which fields are meaningful
// depends on Kind: Level for headings, Ordered for lists, Text for text,
// code and math leaves, Children for everything else.
type Node struct {
	Kind     Kind
	Level    int
	Ordered  bool
	Text     string
	Children []Node
}

func Text(text string) Node {
	return Node{Kind: KindText, Text: text}
}

func Heading(level int, children ...Node) Node {
	return Node{Kind: KindHeading, Level: level, Children: children}
}

func Paragraph(children ...Node) Node {
	return Node{Kind: KindParagraph, Children: children}
}

func List(ordered bool, items ...Node) Node {
	return Node{Kind: KindList, Ordered: ordered, Children: items}
}

func Item(children ...Node) Node {
	return Node{Kind: KindListItem, Children: children}
}

func Code(text string) Node {
	return Node{Kind: KindCode, Text: text}
}

func Emphasis(children ...Node) Node {
	return Node{Kind: KindEmphasis, Children: children}
}

func Strong(children ...Node) Node {
	return Node{Kind: KindStrong, Children: children}
}

// Math holds already normalized text.
func Math(text string) Node {
	return Node{Kind: KindMath, Text: text}
}

// PlainText flattens the node to its visible text.
func (n Node) PlainText() string {
	switch n.Kind {
	case KindText, KindCode, KindMath:
		return n.Text
	}

	var b strings.Builder
	for i, child := range n.Children {
		if n.Kind == KindList && i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(child.PlainText())
	}
	return b.String()
}

// Dump writes the tree in an indented, line-per-node form used by tests and
// `rag render --tree`.
func Dump(nodes []Node) string {
	var b strings.Builder
	for _, node := range nodes {
		dumpNode(&b, node, 0)
	}
	return b.String()
}

func dumpNode(b *strings.Builder, n Node, depth int) {
	b.WriteString(strings.Repeat("  ", depth))
	b.WriteString(n.Kind.String())

	switch n.Kind {
	case KindHeading:
		b.WriteString("(" + strconv.Itoa(n.Level) + ")")
	case KindList:
		if n.Ordered {
			b.WriteString("(ordered)")
		} else {
			b.WriteString("(unordered)")
		}
	case KindText, KindCode, KindMath:
		b.WriteString(" " + strconv.Quote(n.Text))
	}
	b.WriteByte('\n')

	for _, child := range n.Children {
		dumpNode(b, child, depth+1)
	}
}
