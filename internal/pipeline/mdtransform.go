package pipeline

import "regexp"

var crlfOrCR = regexp.MustCompile(`\r\n?`)

// prepareSource normalizes line endings. Notebooks saved on Windows carry
// \r\n in sources.
func prepareSource(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}
