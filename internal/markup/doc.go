// Package markup turns the lightweight markup returned by the RAG backend
// (chat answers, document previews) into a tree of typed nodes.
//
// Render splits text into headings, paragraphs and lists. ParseInline
// recognizes four span kinds on a single line, tried in this order at every
// position: math $...$, strong **...**, emphasis *...* and code `...`.
// Spans never nest: the content of a span is taken literally, so
// "**a $b$ c**" yields one Strong node whose text still contains "$b$".
// Overlapping or nested markers are resolved on a best-effort basis only.
//
// Every function in this package is total. Unrecognized syntax degrades to
// plain text and no input can make them panic.
package markup
