package worksheets

import (
	"fmt"
	"strings"
)

// Printer abstracts sending a finished document to a printer.
type Printer interface {
	Print(path, printer string) error
}

// LPPrinter prints files through the lp command (CUPS).
type LPPrinter struct {
	Runner CommandRunner
}

// NewLPPrinter creates an LPPrinter with a real command runner.
func NewLPPrinter() *LPPrinter {
	return &LPPrinter{Runner: &ExecRunner{}}
}

// Print sends the file at path to the named printer.
// An empty printer name uses the system default destination.
func (p *LPPrinter) Print(path, printer string) error {
	var args []string
	if printer != "" {
		args = append(args, "-d", printer)
	}
	args = append(args, path)

	_, stderr, err := p.Runner.Run("lp", args...)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrPrintFailed, strings.TrimSpace(stderr), err)
	}
	return nil
}
