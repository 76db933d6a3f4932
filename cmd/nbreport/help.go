package main

import (
	"fmt"
	"io"
)

// usageLine is printed when no notebook is given.
const usageLine = "Usage: nbreport <notebook_file.ipynb> [output.html]"

// printUsage prints the full help text.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, usageLine)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Build an HTML report from the tagged cells of a Jupyter notebook.")
	fmt.Fprintln(w, "Markdown cells tagged \"caption\" are paired, in order, with the first")
	fmt.Fprintln(w, "PNG output of code cells tagged \"chart\".")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  notebook    Notebook file (.ipynb)")
	fmt.Fprintln(w, "  output      Report path (default: report.html)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Report:")
	fmt.Fprintln(w, "      --title <s>            Report title")
	fmt.Fprintln(w, "      --footer <s>           Footer text")
	fmt.Fprintln(w, "      --date <s>             Footer date: \"auto\", \"auto:FORMAT\", or literal")
	fmt.Fprintln(w, "                             Tokens: YYYY, YY, MMMM, MMM, MM, M, DD, D")
	fmt.Fprintln(w, "                             Presets (case-insensitive): iso, european, us, long")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Cells:")
	fmt.Fprintln(w, "      --caption-tag <s>      Tag marking caption cells (default: caption)")
	fmt.Fprintln(w, "      --chart-tag <s>        Tag marking chart cells (default: chart)")
	fmt.Fprintln(w, "  -w, --workers <n>          Caption render workers (0 = auto, default: 1)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Styling:")
	fmt.Fprintln(w, "      --style <name>         Report style (default, compact)")
	fmt.Fprintln(w, "      --highlight-style <s>  Code highlighting style (default: github)")
	fmt.Fprintln(w, "      --asset-path <dir>     Directory with styles/ and templates/ overrides")
	fmt.Fprintln(w, "      --no-style             Disable the report stylesheet")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "PDF:")
	fmt.Fprintln(w, "      --pdf <path>           Also export the report to PDF (needs Chrome)")
	fmt.Fprintln(w, "  -t, --timeout <d>          PDF export timeout (default: 30s)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Other:")
	fmt.Fprintln(w, "  -c, --config <name>        Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet                Only show errors")
	fmt.Fprintln(w, "  -v, --verbose              Show detailed timing")
	fmt.Fprintln(w, "      --version              Show version")
	fmt.Fprintln(w, "  -h, --help                 Show this help")
}
