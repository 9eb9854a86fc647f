package main

import (
	"errors"
	"os"

	worksheets "github.com/julianandrews/worksheet-generator"
)

// Exit codes for the worksheet-generator CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful generation
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
	ExitRender  = 4 // PDF engine, merge, or printer errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Renderer/printer errors (exit 4)
	if errors.Is(err, worksheets.ErrPDFGeneration) ||
		errors.Is(err, worksheets.ErrWeasyprint) ||
		errors.Is(err, worksheets.ErrBrowserConnect) ||
		errors.Is(err, worksheets.ErrPageCreate) ||
		errors.Is(err, worksheets.ErrPageLoad) ||
		errors.Is(err, worksheets.ErrPDFMerge) ||
		errors.Is(err, worksheets.ErrPrintFailed) {
		return ExitRender
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadMarkdown) ||
		errors.Is(err, ErrReadStylesheet) ||
		errors.Is(err, ErrWriteOutput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrConfigNotFound) ||
		errors.Is(err, ErrConfigParse) ||
		errors.Is(err, ErrEmptyConfigName) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrTooManyArgs) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, worksheets.ErrNoPages) ||
		errors.Is(err, worksheets.ErrEmptyPage) ||
		errors.Is(err, worksheets.ErrUnknownFormat) ||
		errors.Is(err, worksheets.ErrUnknownEngine) ||
		errors.Is(err, worksheets.ErrMalformedHTML) {
		return ExitUsage
	}

	return ExitGeneral
}
