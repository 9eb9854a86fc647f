package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	worksheets "github.com/julianandrews/worksheet-generator"
	"github.com/julianandrews/worksheet-generator/internal/fileutil"
)

// File permission for generated documents.
const outputPermissions = 0o644

// Sentinel errors for run operations.
var (
	ErrReadMarkdown     = errors.New("failed to read markdown file")
	ErrReadStylesheet   = errors.New("failed to read stylesheet")
	ErrWriteOutput      = errors.New("failed to write output file")
	ErrInvalidExtension = errors.New("page file must have .md or .markdown extension")
)

// Converter is the interface for the generation service.
type Converter interface {
	Convert(ctx context.Context, input worksheets.Input) (*worksheets.Result, error)
	Close() error
}

// Compile-time interface implementation check.
var _ Converter = (*worksheets.Service)(nil)

// run reads the page files, generates the document, writes it to the output
// path, and optionally sends it to a printer.
func run(ctx context.Context, opts *Options, svc Converter, printer worksheets.Printer, deps *Dependencies) error {
	pages := make([]string, 0, len(opts.Pages))
	for _, path := range opts.Pages {
		if err := validateMarkdownExtension(path); err != nil {
			return err
		}
		content, err := os.ReadFile(path) // #nosec G304 -- page path is user-provided
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrReadMarkdown, path, err)
		}
		pages = append(pages, string(content))
	}

	css, err := loadStylesheet(opts.Stylesheet, deps)
	if err != nil {
		return err
	}

	result, err := svc.Convert(ctx, worksheets.Input{
		Pages:    pages,
		CSS:      css,
		Format:   opts.Format,
		Sections: opts.Sections,
	})
	if err != nil {
		return err
	}

	var data []byte
	if opts.Format == worksheets.FormatHTML {
		data = []byte(result.HTML)
	} else {
		data = result.PDF
	}

	// #nosec G306 -- generated documents are intended to be readable
	if err := os.WriteFile(opts.Output, data, outputPermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}

	if !opts.Quiet {
		fmt.Fprintf(deps.Stdout, "Created %s\n", opts.Output)
	}

	if opts.Print {
		if opts.Format != worksheets.FormatPDF {
			fmt.Fprintln(deps.Stderr, "Warning: printing skipped, only PDF output can be printed")
			return nil
		}
		if err := printer.Print(opts.Output, opts.Printer); err != nil {
			return err
		}
		if !opts.Quiet {
			fmt.Fprintf(deps.Stdout, "Sent %s to printer\n", opts.Output)
		}
	}

	return nil
}

// loadStylesheet reads the stylesheet file. A missing file is a warning and
// generation proceeds without styles; a present but unreadable file is an
// error.
func loadStylesheet(path string, deps *Dependencies) (string, error) {
	if path == "" {
		return "", nil
	}
	if !fileutil.FileExists(path) {
		fmt.Fprintf(deps.Stderr, "Warning: stylesheet %s not found, proceeding without styles\n", path)
		return "", nil
	}
	content, err := os.ReadFile(path) // #nosec G304 -- stylesheet path is user-provided
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrReadStylesheet, path, err)
	}
	return string(content), nil
}

// validateMarkdownExtension checks that the file has a .md or .markdown extension.
func validateMarkdownExtension(path string) error {
	ext := filepath.Ext(path)
	if ext != ".md" && ext != ".markdown" {
		return fmt.Errorf("%w: got %q", ErrInvalidExtension, ext)
	}
	return nil
}
