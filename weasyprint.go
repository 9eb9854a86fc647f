package worksheets

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/julianandrews/worksheet-generator/internal/fileutil"
)

// pdfEngine abstracts HTML to PDF conversion to allow different backends.
type pdfEngine interface {
	ToPDF(ctx context.Context, htmlContent string) ([]byte, error)
	Close() error
}

// Compile-time interface checks
var (
	_ pdfEngine = (*weasyprintEngine)(nil)
	_ pdfEngine = (*rodEngine)(nil)
)

// weasyprintEngine renders PDFs by invoking the weasyprint CLI on a temporary
// HTML file. Each call is a fresh process; the engine holds no state.
type weasyprintEngine struct {
	runner CommandRunner
}

// newWeasyprintEngine creates a weasyprintEngine. A nil runner gets the
// production ExecRunner.
func newWeasyprintEngine(runner CommandRunner) *weasyprintEngine {
	if runner == nil {
		runner = &ExecRunner{}
	}
	return &weasyprintEngine{runner: runner}
}

// ToPDF writes the HTML to a temp file, runs weasyprint on it, and returns
// the resulting PDF bytes.
func (e *weasyprintEngine) ToPDF(ctx context.Context, htmlContent string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	htmlPath, cleanup, err := fileutil.WriteTempFile(htmlContent, "html")
	if err != nil {
		return nil, err
	}
	defer cleanup()

	pdfPath := htmlPath + ".pdf"
	defer func() { _ = os.Remove(pdfPath) }()

	_, stderr, err := e.runner.Run("weasyprint", htmlPath, pdfPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrWeasyprint, strings.TrimSpace(stderr), err)
	}

	pdfBuf, err := os.ReadFile(pdfPath) // #nosec G304 -- path derived from our own temp file
	if err != nil {
		return nil, fmt.Errorf("%w: reading weasyprint output: %v", ErrPDFGeneration, err)
	}

	return pdfBuf, nil
}

// Close is a no-op; weasyprint holds no persistent resources.
func (e *weasyprintEngine) Close() error { return nil }
