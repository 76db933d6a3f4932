// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"fmt"
	"os"
	"strings"

	"github.com/alnah/go-nbreport/internal/fileutil"
)

// IsInContainer detects if running inside a Docker container.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// ForBrowserConnect returns hints for PDF export failures caused by the
// headless browser.
func ForBrowserConnect() string {
	var hints []string

	inCI := os.Getenv("CI") != "" || os.Getenv("GITHUB_ACTIONS") != ""
	if (inCI || IsInContainer()) && os.Getenv("ROD_NO_SANDBOX") != "1" {
		hints = append(hints, "set ROD_NO_SANDBOX=1 for Docker/CI")
	}
	if os.Getenv("ROD_BROWSER_BIN") == "" {
		hints = append(hints, "set ROD_BROWSER_BIN to use an installed Chrome")
	}

	return formatHints(hints)
}

// ForTimeout returns a hint about raising the PDF timeout.
func ForTimeout() string {
	return format("for large reports, use --timeout")
}

// ForNotebookExtension explains the expected input extension.
func ForNotebookExtension() string {
	return format("Jupyter saves notebooks with the .ipynb extension")
}

// ForNoTaggedCells explains how cells are picked up when a notebook
// produced an empty report.
func ForNoTaggedCells(captionTag, chartTag string) string {
	return format(fmt.Sprintf("tag markdown cells %q and code cells %q (View > Cell Toolbar > Tags)", captionTag, chartTag))
}

// ForConfigNotFound suggests --config or creating a user config file.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"
	for _, p := range searchedPaths {
		if strings.Contains(p, "go-nbreport") {
			hint += " or create " + p
			break
		}
	}
	return format(hint)
}

// ForStyleNotFound lists the available names.
func ForStyleNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
