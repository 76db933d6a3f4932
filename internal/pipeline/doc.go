// Package pipeline converts notebook Markdown into HTML fragments.
//
// The stages are:
//   - Markdown preparation (line ending normalization, ==highlight== syntax)
//   - Markdown to HTML fragment conversion via Goldmark, with Chroma classes
//     on fenced code blocks
//   - Stylesheet generation for those Chroma classes
//   - Rewriting of attachment: image references into data URIs
//
// Fragments are never full documents. Page assembly and PDF printing live in
// the root nbreport package.
package pipeline
