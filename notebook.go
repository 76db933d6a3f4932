package nbreport

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"slices"
	"strings"
	"unicode/utf8"
)

// MaxNotebookSize limits notebook input to prevent memory exhaustion (256MB).
const MaxNotebookSize = 256 << 20

// MIMEPNG is the only output MIME type consumed by the report.
const MIMEPNG = "image/png"

// CellType identifies the kind of a notebook cell.
type CellType int

const (
	CellOther CellType = iota
	CellMarkdown
	CellCode
)

// String returns the nbformat name of the cell type.
func (t CellType) String() string {
	switch t {
	case CellMarkdown:
		return "markdown"
	case CellCode:
		return "code"
	default:
		return "other"
	}
}

// UnmarshalJSON maps the nbformat cell_type string onto the enum.
// Any value other than "markdown" or "code", including non-strings,
// decodes to CellOther so the cell is skipped rather than rejected.
func (t *CellType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		*t = CellOther
		return nil
	}
	switch s {
	case "markdown":
		*t = CellMarkdown
	case "code":
		*t = CellCode
	default:
		*t = CellOther
	}
	return nil
}

// Lines is a multiline string as stored by nbformat: either a list of
// lines or a single string. Both forms decode to a list.
type Lines []string

// UnmarshalJSON accepts a JSON string, a list of strings, or null.
func (l *Lines) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		*l = nil
		return nil
	}
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*l = Lines{s}
		return nil
	}
	var lines []string
	if err := json.Unmarshal(trimmed, &lines); err != nil {
		return err
	}
	*l = lines
	return nil
}

// String concatenates the lines without adding separators.
func (l Lines) String() string {
	return strings.Join(l, "")
}

// MIMEBundle maps a MIME type to its raw payload. Payloads stay raw
// because outputs such as application/json carry objects, not text.
type MIMEBundle map[string]json.RawMessage

// UnmarshalJSON decodes an object of payloads. Any other JSON value
// yields an empty bundle, so a malformed output carries no image.
func (b *MIMEBundle) UnmarshalJSON(data []byte) error {
	var m map[string]json.RawMessage
	if err := json.Unmarshal(data, &m); err != nil {
		*b = nil
		return nil
	}
	*b = m
	return nil
}

// Text returns the payload for mime decoded as a multiline string.
// The boolean reports whether the key is present at all; a payload that
// is present but not text yields ("", true).
func (b MIMEBundle) Text(mime string) (string, bool) {
	raw, ok := b[mime]
	if !ok {
		return "", false
	}
	var lines Lines
	if err := json.Unmarshal(raw, &lines); err != nil {
		return "", true
	}
	return lines.String(), true
}

// Metadata holds the cell metadata fields the report uses.
type Metadata struct {
	Tags []string `json:"tags"`
}

// Output is a single recorded output of a code cell.
type Output struct {
	OutputType string     `json:"output_type"`
	Data       MIMEBundle `json:"data"`
}

// Cell is one notebook cell. Absent fields decode to their zero values.
type Cell struct {
	Type        CellType              `json:"cell_type"`
	Source      Lines                 `json:"source"`
	Metadata    Metadata              `json:"metadata"`
	Outputs     []Output              `json:"outputs"`
	Attachments map[string]MIMEBundle `json:"attachments"`
}

// Text returns the cell source as one string.
func (c Cell) Text() string {
	return c.Source.String()
}

// HasTag reports whether the cell metadata carries tag.
func (c Cell) HasTag(tag string) bool {
	return slices.Contains(c.Metadata.Tags, tag)
}

// Notebook is a parsed notebook document. It is not modified after loading.
type Notebook struct {
	Cells []Cell `json:"cells"`
}

// Load reads and parses the notebook at path.
// Returns ErrNotFound if the path does not exist and ErrFormat if the
// content is not a notebook document.
func Load(path string) (*Notebook, error) {
	f, err := os.Open(path) // #nosec G304 -- user-provided path
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("opening notebook: %w", err)
	}
	defer f.Close()

	return ParseReader(f)
}

// ParseReader reads a whole notebook from r and parses it.
func ParseReader(r io.Reader) (*Notebook, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxNotebookSize+1))
	if err != nil {
		return nil, fmt.Errorf("reading notebook: %w", err)
	}
	if len(data) > MaxNotebookSize {
		return nil, fmt.Errorf("%w: input exceeds %d bytes", ErrFormat, MaxNotebookSize)
	}
	return Parse(data)
}

// Parse decodes a notebook from its JSON form. The top level must be an
// object; a missing "cells" key yields an empty notebook.
func Parse(data []byte) (*Notebook, error) {
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%w: content is not valid UTF-8", ErrFormat)
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, fmt.Errorf("%w: top level must be a JSON object", ErrFormat)
	}

	var nb Notebook
	if err := json.Unmarshal(trimmed, &nb); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	return &nb, nil
}
