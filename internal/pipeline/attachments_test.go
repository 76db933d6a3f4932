package pipeline

// Notes:
// - The html.ParseFragment and html.Render error branches are not tested:
//   the parser accepts any input and rendering to a strings.Builder does not fail.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"strings"
	"testing"
)

// mapLookup adapts a map to AttachmentLookup.
func mapLookup(m map[string]string) AttachmentLookup {
	return func(name string) (string, bool) {
		payload, ok := m[name]
		return payload, ok
	}
}

// ---------------------------------------------------------------------------
// TestRewriteAttachments - attachment: sources become data URIs
// ---------------------------------------------------------------------------

func TestRewriteAttachments(t *testing.T) {
	t.Parallel()

	lookup := mapLookup(map[string]string{
		"plot.png":       "UExPVA==",
		"with space.png": "U1BBQ0U=",
		"empty.png":      "",
	})

	tests := []struct {
		name         string
		html         string
		wantContains []string
		wantExcludes []string
	}{
		{
			name:         "known attachment",
			html:         `<p><img src="attachment:plot.png" alt="plot" /></p>`,
			wantContains: []string{`src="data:image/png;base64,UExPVA=="`, `alt="plot"`},
			wantExcludes: []string{"attachment:"},
		},
		{
			name:         "percent-encoded name",
			html:         `<img src="attachment:with%20space.png">`,
			wantContains: []string{`src="data:image/png;base64,U1BBQ0U="`},
		},
		{
			name:         "unknown attachment untouched",
			html:         `<img src="attachment:nope.png">`,
			wantContains: []string{`src="attachment:nope.png"`},
		},
		{
			name:         "empty payload untouched",
			html:         `<img src="attachment:empty.png">`,
			wantContains: []string{`src="attachment:empty.png"`},
		},
		{
			name:         "links are not rewritten",
			html:         `<a href="attachment:plot.png">plot</a>`,
			wantContains: []string{`href="attachment:plot.png"`},
		},
		{
			name:         "nested image",
			html:         `<table><tbody><tr><td><img src="attachment:plot.png"></td></tr></tbody></table>`,
			wantContains: []string{"<table>", `base64,UExPVA==`},
		},
		{
			name:         "surrounding text preserved",
			html:         `<p>before <img src="attachment:plot.png"> after</p>`,
			wantContains: []string{"<p>before ", " after</p>"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := RewriteAttachments(tt.html, lookup)
			if err != nil {
				t.Fatalf("RewriteAttachments() error = %v", err)
			}
			for _, want := range tt.wantContains {
				if !strings.Contains(got, want) {
					t.Errorf("output missing %q\ngot: %s", want, got)
				}
			}
			for _, unwanted := range tt.wantExcludes {
				if strings.Contains(got, unwanted) {
					t.Errorf("output contains %q\ngot: %s", unwanted, got)
				}
			}
		})
	}
}

func TestRewriteAttachments_FastPath(t *testing.T) {
	t.Parallel()

	// Input is returned byte for byte when nothing needs rewriting.
	input := `<p>no attachments<br>here</p>`

	got, err := RewriteAttachments(input, mapLookup(nil))
	if err != nil {
		t.Fatalf("RewriteAttachments() error = %v", err)
	}
	if got != input {
		t.Errorf("RewriteAttachments() = %q, want unchanged %q", got, input)
	}

	got, err = RewriteAttachments(`<img src="attachment:a.png">`, nil)
	if err != nil {
		t.Fatalf("RewriteAttachments(nil lookup) error = %v", err)
	}
	if got != `<img src="attachment:a.png">` {
		t.Errorf("nil lookup changed input: %q", got)
	}
}
