package main

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	nbreport "github.com/alnah/go-nbreport"
	"github.com/alnah/go-nbreport/internal/config"
	"github.com/alnah/go-nbreport/internal/dateutil"
)

// loadConfig returns the config named by --config, or the defaults.
func loadConfig(flags *cliFlags) (*config.Config, error) {
	if flags.common.config == "" {
		return config.DefaultConfig(), nil
	}
	cfg, err := config.LoadConfig(flags.common.config)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *cliFlags, cfg *config.Config) {
	if flags.report.title != "" {
		cfg.Report.Title = flags.report.title
	}
	if flags.report.date != "" {
		cfg.Report.Date = flags.report.date
	}
	if flags.report.footer != "" {
		cfg.Report.Footer = flags.report.footer
	}

	if flags.assets.style != "" {
		cfg.Style.Name = flags.assets.style
	}
	if flags.assets.noStyle {
		cfg.Style.Name = ""
	}
	if flags.assets.highlight != "" {
		cfg.Style.Highlight = flags.assets.highlight
	}
	if flags.assets.assetPath != "" {
		cfg.Assets.BasePath = flags.assets.assetPath
	}

	if flags.tags.caption != "" {
		cfg.Tags.Caption = flags.tags.caption
	}
	if flags.tags.chart != "" {
		cfg.Tags.Chart = flags.tags.chart
	}

	if flags.workersSet {
		cfg.Render.Workers = flags.workers
	}

	if flags.pdf.path != "" {
		cfg.PDF.Enabled = true
		cfg.PDF.Path = flags.pdf.path
	}
	if flags.pdf.timeout != "" {
		cfg.PDF.Timeout = flags.pdf.timeout
	}
}

// buildOptions turns a merged config into generator options.
// The footer date is resolved once against now.
func buildOptions(cfg *config.Config, now time.Time) ([]nbreport.Option, error) {
	date, err := dateutil.Resolve(cfg.Report.Date, now)
	if err != nil {
		return nil, fmt.Errorf("invalid date format: %w", err)
	}

	return []nbreport.Option{
		nbreport.WithTitle(cfg.Report.Title),
		nbreport.WithFooter(cfg.Report.Footer),
		nbreport.WithDate(date),
		nbreport.WithStyle(cfg.Style.Name),
		nbreport.WithHighlightStyle(cfg.Style.Highlight),
		nbreport.WithAssetPath(cfg.Assets.BasePath),
		nbreport.WithTags(cfg.Tags.Caption, cfg.Tags.Chart),
		nbreport.WithWorkers(cfg.Render.Workers),
		nbreport.WithTimeout(cfg.PDF.TimeoutDuration()),
	}, nil
}

// resolveOutputPath returns the report path from args or config.
func resolveOutputPath(args []string, cfg *config.Config) string {
	if len(args) > 1 && args[1] != "" {
		return args[1]
	}
	if cfg.Output.Path != "" {
		return cfg.Output.Path
	}
	return config.DefaultOutputPath
}

// resolvePDFPath returns where the PDF goes, or "" when export is off.
// Without an explicit path the report path is reused with a .pdf extension.
func resolvePDFPath(cfg *config.Config, reportPath string) string {
	if !cfg.PDF.Enabled {
		return ""
	}
	if cfg.PDF.Path != "" {
		return cfg.PDF.Path
	}
	return strings.TrimSuffix(reportPath, filepath.Ext(reportPath)) + ".pdf"
}
