package nbreport

// Default tags marking report cells.
const (
	DefaultCaptionTag = "caption"
	DefaultChartTag   = "chart"
)

// Selection holds the cells that make up a report, in document order.
type Selection struct {
	Captions []Cell // markdown cells tagged as captions
	Charts   []Cell // code cells tagged as charts
}

// Len returns the number of report items the selection produces.
func (s Selection) Len() int {
	return max(len(s.Captions), len(s.Charts))
}

// Select picks caption and chart cells using the default tags.
func Select(nb *Notebook) Selection {
	return SelectTags(nb, DefaultCaptionTag, DefaultChartTag)
}

// SelectTags scans the notebook once, top to bottom. A markdown cell
// tagged captionTag becomes a caption and a code cell tagged chartTag
// becomes a chart. Every other cell is skipped.
func SelectTags(nb *Notebook, captionTag, chartTag string) Selection {
	var sel Selection
	if nb == nil {
		return sel
	}

	for _, cell := range nb.Cells {
		switch cell.Type {
		case CellMarkdown:
			if cell.HasTag(captionTag) {
				sel.Captions = append(sel.Captions, cell)
			}
		case CellCode:
			if cell.HasTag(chartTag) {
				sel.Charts = append(sel.Charts, cell)
			}
		case CellOther:
		}
	}
	return sel
}
