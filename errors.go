package worksheets

import "errors"

// Sentinel errors for library operations.
var (
	ErrNoPages        = errors.New("worksheet must contain at least one page")
	ErrEmptyPage      = errors.New("page content cannot be empty")
	ErrHTMLConversion = errors.New("HTML conversion failed")
	ErrMalformedHTML  = errors.New("malformed HTML input")
	ErrUnknownFormat  = errors.New("unknown output format")

	// PDF engine errors.
	ErrUnknownEngine  = errors.New("unknown PDF engine")
	ErrPDFGeneration  = errors.New("PDF generation failed")
	ErrPDFMerge       = errors.New("PDF merge failed")
	ErrWeasyprint     = errors.New("weasyprint invocation failed")
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")

	// Printing errors.
	ErrPrintFailed = errors.New("print job failed")
)
