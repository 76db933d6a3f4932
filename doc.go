// Package nbreport builds static HTML reports from tagged Jupyter notebook
// cells.
//
// # Quick Start
//
// Load a notebook, pick the tagged cells, and render the report:
//
//	nb, err := nbreport.Load("analysis.ipynb")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	report, err := nbreport.Compose(ctx, nbreport.Select(nb))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("report.html", []byte(report), 0644)
//
// # Cell Selection
//
// Markdown cells tagged "caption" become captions and code cells tagged
// "chart" become charts. Both lists keep notebook order. The i-th caption is
// paired with the i-th chart; when one list is shorter, the remaining items
// have an empty fragment on that side. A chart shows the first image/png
// output of its cell, embedded as a data URI. Cells without metadata or
// tags are skipped, never rejected, and so are cells whose cell_type or
// output data has an unexpected JSON shape.
//
// # Caption Markdown
//
// Captions support GitHub Flavored Markdown, footnotes, fenced code with
// syntax highlighting, and ==highlighted== text. Raw HTML in a caption is
// not passed through: each tag is replaced with a "raw HTML omitted"
// comment. Inline tags lose their markup but keep the text between them,
// so "<b>note</b>" renders as plain "note"; an HTML block such as a
// <div> on its own lines is dropped entirely. Use Markdown emphasis
// instead.
//
// # Configuration
//
// Use functional options to customize the generator:
//
//	gen, err := nbreport.NewGenerator(
//	    nbreport.WithTitle("Weekly Metrics"),
//	    nbreport.WithStyle("compact"),
//	    nbreport.WithTags("narrative", "figure"),
//	    nbreport.WithWorkers(0),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer gen.Close()
//
//	report, err := gen.Generate(ctx, gen.Select(nb))
//
// # Custom Assets
//
// WithAssetPath points at a directory whose files override the built-in
// assets. Missing files fall back to the embedded ones:
//
//	assets/
//	├── styles/
//	│   └── brand.css
//	└── templates/
//	    └── report.html
//
// # PDF Export
//
// Generator.ExportPDF prints a generated report with headless Chrome
// (go-rod). The browser starts on first use and is released by Close.
// go-rod downloads a managed Chromium on first run (~/.cache/rod/browser/).
// Set ROD_BROWSER_BIN to use an installed browser and ROD_NO_SANDBOX=1 in
// containers.
package nbreport
