package nbreport

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/alnah/go-nbreport/internal/assets"
	"github.com/alnah/go-nbreport/internal/pipeline"
)

// DefaultTitle is the report heading used when none is configured.
const DefaultTitle = "Notebook Report"

// defaultTimeout bounds PDF export when no deadline is set.
const defaultTimeout = 30 * time.Second

// Item is one row of the report: a caption paired with a chart.
// Either fragment may be empty.
type Item struct {
	Index   int
	Caption template.HTML
	Chart   template.HTML
}

// reportData is the value the report template executes against.
type reportData struct {
	Title  string
	CSS    template.CSS
	Items  []Item
	Footer string
}

// Option configures a Generator.
type Option func(*Generator)

// generatorConfig holds the settings collected from options.
type generatorConfig struct {
	title      string
	style      string
	highlight  string
	assetPath  string
	footer     string
	date       string
	captionTag string
	chartTag   string
	workers    int
	timeout    time.Duration
}

// WithTitle sets the report heading and document title.
func WithTitle(title string) Option {
	return func(g *Generator) { g.cfg.title = title }
}

// WithStyle selects the report stylesheet by name. An empty name renders
// the report without a stylesheet.
func WithStyle(name string) Option {
	return func(g *Generator) { g.cfg.style = name }
}

// WithHighlightStyle selects the chroma style for fenced code blocks.
func WithHighlightStyle(name string) Option {
	return func(g *Generator) { g.cfg.highlight = name }
}

// WithAssetPath sets a directory whose styles/ and templates/ override the
// built-in assets.
func WithAssetPath(path string) Option {
	return func(g *Generator) { g.cfg.assetPath = path }
}

// WithFooter sets free-form footer text.
func WithFooter(text string) Option {
	return func(g *Generator) { g.cfg.footer = text }
}

// WithDate sets the date shown in the footer, verbatim.
func WithDate(date string) Option {
	return func(g *Generator) { g.cfg.date = date }
}

// WithTags overrides the caption and chart tags used by Select.
// Empty values keep the defaults.
func WithTags(captionTag, chartTag string) Option {
	return func(g *Generator) {
		if captionTag != "" {
			g.cfg.captionTag = captionTag
		}
		if chartTag != "" {
			g.cfg.chartTag = chartTag
		}
	}
}

// WithWorkers sets how many captions are rendered concurrently.
// 1 renders sequentially; 0 uses one worker per available CPU.
// Item order never depends on this setting.
func WithWorkers(n int) Option {
	return func(g *Generator) {
		if n >= 0 {
			g.cfg.workers = n
		}
	}
}

// WithTimeout sets the PDF export timeout.
func WithTimeout(d time.Duration) Option {
	return func(g *Generator) {
		if d > 0 {
			g.cfg.timeout = d
		}
	}
}

// Generator turns a notebook selection into an HTML report.
// Create with NewGenerator and call Close when done.
type Generator struct {
	cfg      generatorConfig
	markdown *MarkdownRenderer
	tmpl     *template.Template
	css      template.CSS
	pdf      pdfConverter
}

// NewGenerator loads the stylesheet and report template and returns a
// ready Generator. Returns ErrInvalidAssetPath, ErrStyleNotFound or
// ErrReportRender when assets cannot be resolved.
func NewGenerator(opts ...Option) (*Generator, error) {
	g := &Generator{
		cfg: generatorConfig{
			title:      DefaultTitle,
			style:      assets.DefaultStyleName,
			captionTag: DefaultCaptionTag,
			chartTag:   DefaultChartTag,
			workers:    1,
			timeout:    defaultTimeout,
		},
		markdown: NewMarkdownRenderer(),
	}

	for _, opt := range opts {
		opt(g)
	}

	resolver, err := assets.NewAssetResolver(g.cfg.assetPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
	}

	css, err := g.loadCSS(resolver)
	if err != nil {
		return nil, err
	}
	g.css = css

	shell, err := resolver.LoadTemplate(assets.ReportTemplateName)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReportRender, err)
	}
	g.tmpl, err = template.New(assets.ReportTemplateName).Parse(shell)
	if err != nil {
		return nil, fmt.Errorf("%w: parsing template: %v", ErrReportRender, err)
	}

	g.pdf = newRodConverter(g.cfg.timeout)
	return g, nil
}

// loadCSS combines the report stylesheet with the code highlighting rules.
func (g *Generator) loadCSS(resolver assets.AssetLoader) (template.CSS, error) {
	var parts []string

	if g.cfg.style != "" {
		style, err := resolver.LoadStyle(g.cfg.style)
		if err != nil {
			if errors.Is(err, assets.ErrStyleNotFound) {
				return "", fmt.Errorf("%w: %q", ErrStyleNotFound, g.cfg.style)
			}
			return "", fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
		}
		parts = append(parts, style)
	}

	highlight, err := pipeline.HighlightCSS(g.cfg.highlight)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrStyleNotFound, err)
	}
	parts = append(parts, highlight)

	// #nosec G203 -- stylesheets come from embedded or user-chosen assets
	return template.CSS(strings.Join(parts, "\n")), nil
}

// Select picks caption and chart cells using the configured tags.
func (g *Generator) Select(nb *Notebook) Selection {
	return SelectTags(nb, g.cfg.captionTag, g.cfg.chartTag)
}

// Items pairs captions and charts by position. The result has
// max(len(captions), len(charts)) items; positions past the end of the
// shorter list get an empty fragment.
func (g *Generator) Items(ctx context.Context, sel Selection) ([]Item, error) {
	items := make([]Item, sel.Len())
	for i := range items {
		items[i].Index = i
		if i < len(sel.Charts) {
			items[i].Chart = chartFragment(sel.Charts[i], i)
		}
	}

	if err := g.renderCaptions(ctx, sel.Captions, items); err != nil {
		return nil, err
	}
	return items, nil
}

// Generate renders the complete HTML document for sel.
func (g *Generator) Generate(ctx context.Context, sel Selection) (string, error) {
	items, err := g.Items(ctx, sel)
	if err != nil {
		return "", err
	}

	data := reportData{
		Title:  g.cfg.title,
		CSS:    g.css,
		Items:  items,
		Footer: g.footerLine(),
	}

	var buf strings.Builder
	if err := g.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrReportRender, err)
	}
	return buf.String(), nil
}

// ExportPDF prints a generated report to PDF with headless Chrome.
func (g *Generator) ExportPDF(ctx context.Context, reportHTML string) ([]byte, error) {
	if g.pdf == nil {
		return nil, ErrPDFDisabled
	}
	return g.pdf.ToPDF(ctx, reportHTML)
}

// Close releases the browser started by ExportPDF, if any.
func (g *Generator) Close() error {
	if g.pdf != nil {
		return g.pdf.Close()
	}
	return nil
}

// footerLine joins the footer text and date.
func (g *Generator) footerLine() string {
	var parts []string
	if g.cfg.footer != "" {
		parts = append(parts, g.cfg.footer)
	}
	if g.cfg.date != "" {
		parts = append(parts, g.cfg.date)
	}
	return strings.Join(parts, " - ")
}

// renderCaptions fills items[i].Caption for every caption. With more than
// one worker the fragments are rendered concurrently into their slots.
func (g *Generator) renderCaptions(ctx context.Context, captions []Cell, items []Item) error {
	workers := g.workerCount(len(captions))

	if workers <= 1 {
		for i, cell := range captions {
			fragment, err := g.markdown.RenderCell(ctx, cell)
			if err != nil {
				return fmt.Errorf("caption %d: %w", i+1, err)
			}
			items[i].Caption = fragment
		}
		return nil
	}

	jobs := make(chan int, len(captions))
	for i := range captions {
		jobs <- i
	}
	close(jobs)

	errs := make([]error, len(captions))
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				items[i].Caption, errs[i] = g.markdown.RenderCell(ctx, captions[i])
			}
		}()
	}
	wg.Wait()

	// Report the first failure in document order
	for i, err := range errs {
		if err != nil {
			return fmt.Errorf("caption %d: %w", i+1, err)
		}
	}
	return nil
}

// workerCount resolves the configured worker count for n captions.
func (g *Generator) workerCount(n int) int {
	workers := g.cfg.workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return min(workers, n)
}

// Compose renders the report for sel with default settings.
func Compose(ctx context.Context, sel Selection) (string, error) {
	g, err := NewGenerator()
	if err != nil {
		return "", err
	}
	defer g.Close()

	return g.Generate(ctx, sel)
}
