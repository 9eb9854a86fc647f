package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	worksheets "github.com/julianandrews/worksheet-generator"
)

// Sentinel errors for option resolution.
var ErrNoInput = errors.New("no pages specified: use --pages or provide a config file")

// Options is the final resolved run configuration.
// CLI flags take precedence over config file values.
type Options struct {
	Pages      []string // Markdown file paths, in page order
	Stylesheet string   // CSS file path (empty = no stylesheet)
	Output     string   // Output file path
	Format     string   // "pdf" or "html"
	Engine     string   // PDF engine name
	Printer    string   // lp destination (empty = default destination)
	Print      bool     // Send the generated PDF to the printer
	Workers    int      // Parallel page renders (0 = auto)
	Sections   bool     // Wrap heading sections
	Quiet      bool
	Verbose    bool
}

// resolveOptions merges CLI flags over config file values into Options.
// configDir is the directory of the loaded config file ("" when no config
// was given); paths coming from the config resolve relative to it, while
// CLI paths stay relative to the working directory.
func resolveOptions(flags *cliFlags, cfg *Config, configDir string) (*Options, error) {
	// Pages: CLI overrides config
	pages := flags.pages
	if len(pages) == 0 {
		for _, p := range cfg.Pages {
			pages = append(pages, joinIfRelative(configDir, p))
		}
	}
	if len(pages) == 0 {
		return nil, ErrNoInput
	}

	// Stylesheet: CLI overrides config
	stylesheet := flags.stylesheet
	if stylesheet == "" && cfg.Stylesheet != "" {
		stylesheet = joinIfRelative(configDir, cfg.Stylesheet)
	}

	// Format: CLI over config, then default
	format := strings.ToLower(firstNonEmpty(flags.format, cfg.Format, worksheets.FormatPDF))
	switch format {
	case worksheets.FormatPDF, worksheets.FormatHTML:
	default:
		return nil, fmt.Errorf("%w: %q", worksheets.ErrUnknownFormat, format)
	}

	// Output: CLI over config, then derived from the first page
	output := flags.output
	if output == "" && cfg.Output != "" {
		output = joinIfRelative(configDir, cfg.Output)
	}
	if output == "" {
		output = deriveOutputPath(pages, format)
	}

	engine := firstNonEmpty(flags.engine, cfg.Engine, worksheets.EngineWeasyprint)
	printer := firstNonEmpty(flags.printer, cfg.Printer)

	// Sections default on; config may disable, --no-sections always disables
	sections := true
	if cfg.Sections != nil {
		sections = *cfg.Sections
	}
	if flags.noSections {
		sections = false
	}

	return &Options{
		Pages:      pages,
		Stylesheet: stylesheet,
		Output:     output,
		Format:     format,
		Engine:     engine,
		Printer:    printer,
		Print:      flags.print || printer != "",
		Workers:    flags.workers,
		Sections:   sections,
		Quiet:      flags.quiet,
		Verbose:    flags.verbose,
	}, nil
}

// deriveOutputPath names the output after the first page's stem, in the
// working directory: pages [a/intro.md ...] with format pdf -> intro.pdf.
func deriveOutputPath(pages []string, format string) string {
	if len(pages) > 0 {
		base := filepath.Base(pages[0])
		stem := strings.TrimSuffix(base, filepath.Ext(base))
		if stem != "" && stem != "." && stem != string(filepath.Separator) {
			return stem + "." + format
		}
	}
	return "worksheet." + format
}

// joinIfRelative resolves p against dir unless p is absolute or dir is empty.
func joinIfRelative(dir, p string) string {
	if dir == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}

// firstNonEmpty returns the first non-empty string.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
