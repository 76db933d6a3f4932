package nbreport

import (
	"fmt"
	"html"
	"html/template"
)

// ExtractImage returns the base64 PNG payload of the first output that
// carries one, or "" if none does. Later images in the same cell are
// ignored. The payload is returned exactly as stored.
func ExtractImage(cell Cell) string {
	for _, out := range cell.Outputs {
		if payload, ok := out.Data.Text(MIMEPNG); ok {
			return payload
		}
	}
	return ""
}

// chartFragment builds the <img> element for the chart at position index.
// Returns an empty fragment when the cell has no PNG output.
func chartFragment(cell Cell, index int) template.HTML {
	payload := ExtractImage(cell)
	if payload == "" {
		return ""
	}
	// #nosec G203 -- payload is attribute-escaped, not decoded
	return template.HTML(fmt.Sprintf(`<img src="data:%s;base64,%s" alt="Chart %d" />`,
		MIMEPNG, html.EscapeString(payload), index+1))
}
