package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// Sentinel errors for flag parsing.
var ErrTooManyArgs = errors.New("too many arguments: expected at most one config file")

// cliFlags holds parsed command-line options.
type cliFlags struct {
	configPath string // positional: YAML config file (optional)

	output     string
	format     string
	pages      []string
	stylesheet string
	printer    string
	print      bool
	engine     string
	workers    int
	noSections bool
	quiet      bool
	verbose    bool
	version    bool
}

// parseFlags parses command-line arguments into cliFlags.
// args is the full argument vector including the program name.
func parseFlags(args []string, errOut io.Writer) (*cliFlags, error) {
	fs := flag.NewFlagSet("worksheet-generator", flag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.Usage = func() {
		fmt.Fprintln(errOut, "Usage: worksheet-generator [config.yaml] [flags]")
		fmt.Fprintln(errOut, "       worksheet-generator doctor [--json]")
		fmt.Fprintln(errOut)
		fmt.Fprintln(errOut, "Flags:")
		fs.PrintDefaults()
	}

	f := &cliFlags{}
	fs.StringVarP(&f.output, "output", "o", "", "output file (default: first page stem + format extension)")
	fs.StringVarP(&f.format, "format", "f", "", "output format: pdf or html (default pdf)")
	fs.StringArrayVarP(&f.pages, "pages", "p", nil, "markdown files to process (overrides config)")
	fs.StringVarP(&f.stylesheet, "stylesheet", "s", "", "stylesheet to use (overrides config)")
	fs.StringVarP(&f.printer, "printer", "P", "", "print the generated PDF to this lp destination")
	fs.BoolVar(&f.print, "print", false, "print the generated PDF to the default lp destination")
	fs.StringVar(&f.engine, "engine", "", "PDF engine: weasyprint or chrome")
	fs.IntVar(&f.workers, "workers", 0, "parallel page renders (0 = auto)")
	fs.BoolVar(&f.noSections, "no-sections", false, "disable heading section wrapping")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "suppress non-error output")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "verbose output")
	fs.BoolVar(&f.version, "version", false, "print version and exit")

	if err := fs.Parse(args[1:]); err != nil {
		return nil, err
	}

	rest := fs.Args()
	if len(rest) > 1 {
		return nil, fmt.Errorf("%w: %v", ErrTooManyArgs, rest[1:])
	}
	if len(rest) == 1 {
		f.configPath = rest[0]
	}

	return f, nil
}
