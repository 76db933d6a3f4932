package nbreport

import "errors"

// Sentinel errors for library operations.
var (
	// Notebook loading errors.
	ErrNotFound   = errors.New("file not found")
	ErrFormat     = errors.New("invalid notebook format")
	ErrValidation = errors.New("invalid input")

	ErrHTMLConversion = errors.New("HTML conversion failed")
	ErrReportRender   = errors.New("report rendering failed")

	// PDF export errors.
	ErrPDFGeneration  = errors.New("PDF generation failed")
	ErrPDFDisabled    = errors.New("PDF export not configured")
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")

	// Asset loading errors.
	ErrStyleNotFound    = errors.New("style not found")
	ErrInvalidAssetPath = errors.New("invalid asset path")
)
