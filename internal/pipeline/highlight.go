package pipeline

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
)

// DefaultHighlightStyle is the chroma style used when none is configured.
const DefaultHighlightStyle = "github"

// ErrUnknownHighlightStyle indicates the chroma style name is not registered.
var ErrUnknownHighlightStyle = errors.New("unknown highlight style")

// HighlightCSS returns the stylesheet matching the CSS classes emitted by
// GoldmarkConverter for fenced code blocks. An empty name selects
// DefaultHighlightStyle.
func HighlightCSS(name string) (string, error) {
	if name == "" {
		name = DefaultHighlightStyle
	}

	style, ok := styles.Registry[strings.ToLower(name)]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownHighlightStyle, name)
	}

	var buf strings.Builder
	if err := chromahtml.New(chromahtml.WithClasses(true)).WriteCSS(&buf, style); err != nil {
		return "", fmt.Errorf("writing highlight CSS: %w", err)
	}
	return buf.String(), nil
}

// HighlightStyles lists the registered chroma style names, sorted.
func HighlightStyles() []string {
	names := make([]string, 0, len(styles.Registry))
	for name := range styles.Registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
