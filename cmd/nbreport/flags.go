package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags that control the CLI itself.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
	version bool
	help    bool
}

// reportFlags holds report shell content flags.
type reportFlags struct {
	title  string
	date   string
	footer string
}

// assetFlags holds styling flags.
type assetFlags struct {
	style     string
	highlight string
	assetPath string
	noStyle   bool
}

// tagFlags holds the cell selection tags.
type tagFlags struct {
	caption string
	chart   string
}

// pdfFlags holds PDF export flags.
type pdfFlags struct {
	path    string
	timeout string
}

// cliFlags holds every flag accepted by nbreport.
type cliFlags struct {
	common     commonFlags
	report     reportFlags
	assets     assetFlags
	tags       tagFlags
	pdf        pdfFlags
	workers    int
	workersSet bool
}

func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
	fs.BoolVar(&f.version, "version", false, "show version")
	fs.BoolVarP(&f.help, "help", "h", false, "show help")
}

func addReportFlags(fs *flag.FlagSet, f *reportFlags) {
	fs.StringVar(&f.title, "title", "", "report title")
	fs.StringVar(&f.date, "date", "", "footer date (\"auto\" = today)")
	fs.StringVar(&f.footer, "footer", "", "footer text")
}

func addAssetFlags(fs *flag.FlagSet, f *assetFlags) {
	fs.StringVar(&f.style, "style", "", "report style name")
	fs.StringVar(&f.highlight, "highlight-style", "", "code highlighting style")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory")
	fs.BoolVar(&f.noStyle, "no-style", false, "disable the report stylesheet")
}

func addTagFlags(fs *flag.FlagSet, f *tagFlags) {
	fs.StringVar(&f.caption, "caption-tag", "", "tag marking caption cells")
	fs.StringVar(&f.chart, "chart-tag", "", "tag marking chart cells")
}

func addPDFFlags(fs *flag.FlagSet, f *pdfFlags) {
	fs.StringVar(&f.path, "pdf", "", "also export the report to this PDF path")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "PDF export timeout (e.g., 30s, 2m)")
}

// parseFlags parses args (including the program name) and returns the
// positional arguments.
func parseFlags(args []string) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("nbreport", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	f := &cliFlags{}

	fs.IntVarP(&f.workers, "workers", "w", 1, "caption render workers (0 = auto)")

	addCommonFlags(fs, &f.common)
	addReportFlags(fs, &f.report)
	addAssetFlags(fs, &f.assets)
	addTagFlags(fs, &f.tags)
	addPDFFlags(fs, &f.pdf)

	var rest []string
	if len(args) > 1 {
		rest = args[1:]
	}
	if err := fs.Parse(rest); err != nil {
		return nil, nil, err
	}

	f.workersSet = fs.Changed("workers")
	return f, fs.Args(), nil
}
