package nbreport

import (
	"encoding/json"
	"strings"
	"testing"
)

// pngOutput builds a display_data output carrying a PNG payload.
func pngOutput(payload string) Output {
	raw, _ := json.Marshal(payload)
	return Output{
		OutputType: "display_data",
		Data:       MIMEBundle{MIMEPNG: raw},
	}
}

// textOutput builds a stream-like output with only text/plain.
func textOutput(text string) Output {
	raw, _ := json.Marshal(text)
	return Output{
		OutputType: "execute_result",
		Data:       MIMEBundle{"text/plain": raw},
	}
}

// ---------------------------------------------------------------------------
// TestExtractImage - First-match PNG lookup
// ---------------------------------------------------------------------------

func TestExtractImage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		outputs []Output
		want    string
	}{
		{
			name: "no outputs",
		},
		{
			name:    "text only",
			outputs: []Output{textOutput("42")},
		},
		{
			name:    "single image",
			outputs: []Output{pngOutput("AAAA")},
			want:    "AAAA",
		},
		{
			name:    "image after text",
			outputs: []Output{textOutput("<Figure>"), pngOutput("BBBB")},
			want:    "BBBB",
		},
		{
			name:    "first image wins",
			outputs: []Output{pngOutput("FIRST"), pngOutput("SECOND")},
			want:    "FIRST",
		},
		{
			name:    "empty first payload stops the scan",
			outputs: []Output{pngOutput(""), pngOutput("SECOND")},
			want:    "",
		},
		{
			name:    "payload kept verbatim",
			outputs: []Output{pngOutput("iVBO\nRw0K\n")},
			want:    "iVBO\nRw0K\n",
		},
		{
			name:    "output without data",
			outputs: []Output{{OutputType: "stream"}, pngOutput("CCCC")},
			want:    "CCCC",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ExtractImage(Cell{Type: CellCode, Outputs: tt.outputs})
			if got != tt.want {
				t.Errorf("ExtractImage() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractImage_FromParsedNotebook(t *testing.T) {
	t.Parallel()

	nb, err := Parse([]byte(`{"cells": [{
		"cell_type": "code",
		"metadata": {"tags": ["chart"]},
		"outputs": [
			{"output_type": "stream", "name": "stdout", "text": ["done\n"]},
			{"output_type": "display_data", "data": {"image/png": "iVBORw0KGgo=", "text/plain": ["<Figure>"]}}
		]
	}]}`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if got := ExtractImage(nb.Cells[0]); got != "iVBORw0KGgo=" {
		t.Errorf("ExtractImage() = %q, want %q", got, "iVBORw0KGgo=")
	}
}

// ---------------------------------------------------------------------------
// TestChartFragment - <img> element construction
// ---------------------------------------------------------------------------

func TestChartFragment(t *testing.T) {
	t.Parallel()

	t.Run("embeds payload as data URI", func(t *testing.T) {
		t.Parallel()

		got := string(chartFragment(Cell{Outputs: []Output{pngOutput("AAAA")}}, 0))
		want := `<img src="data:image/png;base64,AAAA" alt="Chart 1" />`
		if got != want {
			t.Errorf("chartFragment() = %q, want %q", got, want)
		}
	})

	t.Run("alt text is one-based", func(t *testing.T) {
		t.Parallel()

		got := string(chartFragment(Cell{Outputs: []Output{pngOutput("AAAA")}}, 4))
		if !strings.Contains(got, `alt="Chart 5"`) {
			t.Errorf("chartFragment() = %q, want alt Chart 5", got)
		}
	})

	t.Run("no payload yields empty fragment", func(t *testing.T) {
		t.Parallel()

		if got := chartFragment(Cell{Outputs: []Output{textOutput("x")}}, 0); got != "" {
			t.Errorf("chartFragment() = %q, want empty", got)
		}
	})

	t.Run("payload cannot break out of attribute", func(t *testing.T) {
		t.Parallel()

		got := string(chartFragment(Cell{Outputs: []Output{pngOutput(`A" onerror="x`)}}, 0))
		if strings.Contains(got, `" onerror="`) {
			t.Errorf("chartFragment() did not escape payload: %q", got)
		}
	})
}
