package main

import (
	"context"
	"fmt"
	"time"

	nbreport "github.com/alnah/go-nbreport"
	"github.com/alnah/go-nbreport/internal/fileutil"
	"github.com/alnah/go-nbreport/internal/hints"
)

// notebookExt is the required input extension, compared case-sensitively.
const notebookExt = ".ipynb"

// reportPerm is the mode of written report files.
const reportPerm = 0o644

// run executes the CLI and returns the process exit code.
// args includes the program name, as in os.Args.
func run(ctx context.Context, args []string, env *Environment) int {
	flags, positional, err := parseFlags(args)
	if err != nil {
		fmt.Fprintf(env.Stdout, "Error: %v\n", err)
		fmt.Fprintln(env.Stdout, usageLine)
		return ExitFailure
	}

	if flags.common.help {
		printUsage(env.Stdout)
		return ExitSuccess
	}
	if flags.common.version {
		fmt.Fprintf(env.Stdout, "nbreport %s\n", Version)
		return ExitSuccess
	}

	if len(positional) < 1 {
		fmt.Fprintln(env.Stdout, usageLine)
		return ExitFailure
	}
	if len(positional) > 2 {
		fmt.Fprintf(env.Stdout, "Error: unexpected argument: %s\n", positional[2])
		fmt.Fprintln(env.Stdout, usageLine)
		return ExitFailure
	}

	notebookPath := positional[0]
	if !fileutil.PathExists(notebookPath) {
		fmt.Fprintf(env.Stdout, "Error: File not found: %s\n", notebookPath)
		return ExitFailure
	}
	if !fileutil.HasExtension(notebookPath, notebookExt) {
		fmt.Fprintf(env.Stdout, "Error: Input file must be a Jupyter notebook (.ipynb)%s\n", hints.ForNotebookExtension())
		return ExitFailure
	}

	if err := generate(ctx, notebookPath, positional, flags, env); err != nil {
		fmt.Fprintf(env.Stdout, "Error: %v%s\n", err, hintFor(err, flags))
		return ExitFailure
	}
	return ExitSuccess
}

// generate runs load, select, render and write for one notebook.
func generate(ctx context.Context, notebookPath string, positional []string, flags *cliFlags, env *Environment) error {
	cfg, err := loadConfig(flags)
	if err != nil {
		return err
	}
	mergeFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	opts, err := buildOptions(cfg, env.Now())
	if err != nil {
		return err
	}

	gen, err := nbreport.NewGenerator(opts...)
	if err != nil {
		return err
	}
	defer gen.Close()

	outputPath := resolveOutputPath(positional, cfg)
	out := newProgress(env, flags.common.quiet, flags.common.verbose)

	out.step("Loading notebook: %s", notebookPath)
	nb, err := nbreport.Load(notebookPath)
	if err != nil {
		return err
	}

	out.step("Extracting tagged cells...")
	sel := gen.Select(nb)
	out.step("Found %d caption cell(s) and %d chart cell(s)", len(sel.Captions), len(sel.Charts))
	if sel.Len() == 0 && !flags.common.quiet {
		fmt.Fprintf(env.Stderr, "Warning: no tagged cells found%s\n", hints.ForNoTaggedCells(cfg.Tags.Caption, cfg.Tags.Chart))
	}

	out.step("Generating HTML report...")
	start := env.Now()
	reportHTML, err := gen.Generate(ctx, sel)
	if err != nil {
		return err
	}
	out.timing("rendered %d item(s)", sel.Len(), start)

	if err := fileutil.WriteFileAtomic(outputPath, []byte(reportHTML), reportPerm); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	out.step("Report generated successfully: %s", outputPath)

	pdfPath := resolvePDFPath(cfg, outputPath)
	if pdfPath == "" {
		return nil
	}

	out.step("Exporting PDF...")
	start = env.Now()
	pdfCtx, cancel := context.WithTimeout(ctx, cfg.PDF.TimeoutDuration())
	defer cancel()

	pdf, err := gen.ExportPDF(pdfCtx, reportHTML)
	if err != nil {
		return fmt.Errorf("exporting PDF: %w", err)
	}
	if err := fileutil.WriteFileAtomic(pdfPath, pdf, reportPerm); err != nil {
		return fmt.Errorf("writing PDF: %w", err)
	}
	out.timing("exported %d byte(s)", len(pdf), start)
	out.step("PDF generated successfully: %s", pdfPath)
	return nil
}

// progress prints pipeline stages to stdout and timings to stderr.
type progress struct {
	env     *Environment
	quiet   bool
	verbose bool
}

func newProgress(env *Environment, quiet, verbose bool) *progress {
	return &progress{env: env, quiet: quiet, verbose: verbose}
}

func (p *progress) step(format string, args ...any) {
	if p.quiet {
		return
	}
	fmt.Fprintf(p.env.Stdout, format+"\n", args...)
}

func (p *progress) timing(format string, n int, start time.Time) {
	if !p.verbose || p.quiet {
		return
	}
	elapsed := p.env.Now().Sub(start).Round(time.Millisecond)
	fmt.Fprintf(p.env.Stderr, format+" in %s\n", n, elapsed)
}
