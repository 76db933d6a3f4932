//go:build integration

package nbreport

import (
	"bytes"
	"context"
	"testing"
	"time"
)

// testTimeout is the standard timeout for integration test operations.
const testTimeout = 60 * time.Second

func assertValidPDF(t *testing.T, data []byte) {
	t.Helper()

	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Errorf("data does not have PDF magic bytes, got prefix: %q", data[:min(10, len(data))])
	}
	if len(data) < 100 {
		t.Errorf("PDF data suspiciously small: %d bytes", len(data))
	}
}

// TestGenerator_ExportPDF_Integration prints a real report with go-rod.
// Rod downloads Chromium on first run if not found.
func TestGenerator_ExportPDF_Integration(t *testing.T) {
	g, err := NewGenerator(WithTimeout(testTimeout))
	if err != nil {
		t.Fatalf("NewGenerator() error = %v", err)
	}
	defer g.Close()

	ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
	defer cancel()

	sel := Selection{
		Captions: []Cell{captionCell("# Revenue\n\n| Q | Total |\n|---|---|\n| 1 | 42 |")},
		Charts: []Cell{chartCell(pngOutput(
			"iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNk+M9QDwADhgGAWjR9awAAAABJRU5ErkJggg==",
		))},
	}

	reportHTML, err := g.Generate(ctx, sel)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	pdf, err := g.ExportPDF(ctx, reportHTML)
	if err != nil {
		t.Fatalf("ExportPDF() error = %v", err)
	}
	assertValidPDF(t, pdf)

	// The browser is reused for a second export.
	pdf, err = g.ExportPDF(ctx, reportHTML)
	if err != nil {
		t.Fatalf("second ExportPDF() error = %v", err)
	}
	assertValidPDF(t, pdf)
}
