package nbreport

import (
	"context"
	"errors"
	"fmt"
	"html/template"

	"github.com/alnah/go-nbreport/internal/pipeline"
)

// MarkdownRenderer converts caption markdown into HTML fragments.
// Safe for concurrent use.
type MarkdownRenderer struct {
	converter pipeline.FragmentConverter
}

// NewMarkdownRenderer creates a renderer supporting GFM tables, fenced
// code blocks, footnotes, and hard line breaks.
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{converter: pipeline.NewGoldmarkConverter()}
}

// Render converts markdown source to an HTML fragment.
// Empty source yields an empty fragment.
func (r *MarkdownRenderer) Render(ctx context.Context, source string) (template.HTML, error) {
	fragment, err := r.converter.ToFragment(ctx, source)
	if err != nil {
		return "", wrapConversionError(err)
	}
	// #nosec G203 -- goldmark escapes raw HTML (no WithUnsafe)
	return template.HTML(fragment), nil
}

// RenderCell renders a caption cell, resolving "attachment:NAME" image
// references against the cell's own PNG attachments.
func (r *MarkdownRenderer) RenderCell(ctx context.Context, cell Cell) (template.HTML, error) {
	fragment, err := r.converter.ToFragment(ctx, cell.Text())
	if err != nil {
		return "", wrapConversionError(err)
	}

	if len(cell.Attachments) > 0 {
		fragment, err = pipeline.RewriteAttachments(fragment, attachmentLookup(cell))
		if err != nil {
			return "", fmt.Errorf("%w: resolving attachments: %v", ErrHTMLConversion, err)
		}
	}
	// #nosec G203 -- goldmark escapes raw HTML (no WithUnsafe)
	return template.HTML(fragment), nil
}

// attachmentLookup resolves attachment names to PNG payloads.
func attachmentLookup(cell Cell) pipeline.AttachmentLookup {
	return func(name string) (string, bool) {
		bundle, ok := cell.Attachments[name]
		if !ok {
			return "", false
		}
		return bundle.Text(MIMEPNG)
	}
}

// wrapConversionError maps pipeline errors onto the package sentinel,
// leaving context errors untouched.
func wrapConversionError(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrHTMLConversion, err)
}
