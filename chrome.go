package worksheets

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/julianandrews/worksheet-generator/internal/fileutil"
)

// PDF page dimensions in inches (US Letter format).
const (
	paperWidthInches  = 8.5
	paperHeightInches = 11
	marginInches      = 0.5
)

// rodEngine renders PDFs with headless Chrome via go-rod.
// Rod automatically downloads Chromium on first run if not found.
type rodEngine struct {
	browser *rod.Browser
	timeout time.Duration
}

// newRodEngine creates a rodEngine with the given timeout.
// The browser connection is established lazily on first use.
func newRodEngine(timeout time.Duration) *rodEngine {
	return &rodEngine{timeout: timeout}
}

// ensureBrowser lazily connects to the browser.
func (e *rodEngine) ensureBrowser() error {
	if e.browser != nil {
		return nil
	}

	l := launcher.New()

	// Use a pre-installed browser if specified (Docker/containerized environments)
	if bin := os.Getenv("ROD_BROWSER_BIN"); bin != "" {
		l = l.Bin(bin)
	}

	// NoSandbox required for CI and containerized environments
	if os.Getenv("CI") == "true" || os.Getenv("ROD_BROWSER_BIN") != "" {
		l = l.NoSandbox(true)
	}

	u, err := l.Launch()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}

	e.browser = rod.New().ControlURL(u)
	if err := e.browser.Connect(); err != nil {
		e.browser = nil
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}
	return nil
}

// ToPDF writes the HTML to a temp file and renders it in headless Chrome.
// Uses US Letter format (8.5x11 inches) with 0.5 inch margins.
func (e *rodEngine) ToPDF(ctx context.Context, htmlContent string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tmpPath, cleanup, err := fileutil.WriteTempFile(htmlContent, "html")
	if err != nil {
		return nil, err
	}
	defer cleanup()

	if err := e.ensureBrowser(); err != nil {
		return nil, err
	}

	page, err := e.browser.Page(proto.TargetCreateTarget{URL: "file://" + tmpPath})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageCreate, err)
	}
	defer page.Close()

	// Wait for page load with the tighter of engine timeout and ctx deadline
	timeout := e.timeout
	if deadline, ok := ctx.Deadline(); ok {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return nil, context.DeadlineExceeded
		}
		if remaining < timeout {
			timeout = remaining
		}
	}

	if err := page.Timeout(timeout).WaitLoad(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageLoad, err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	reader, err := page.PDF(&proto.PagePrintToPDF{
		PaperWidth:      floatPtr(paperWidthInches),
		PaperHeight:     floatPtr(paperHeightInches),
		MarginTop:       floatPtr(marginInches),
		MarginBottom:    floatPtr(marginInches),
		MarginLeft:      floatPtr(marginInches),
		MarginRight:     floatPtr(marginInches),
		PrintBackground: true,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}

	pdfBuf, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("%w: reading PDF stream: %v", ErrPDFGeneration, err)
	}

	return pdfBuf, nil
}

// Close releases browser resources.
func (e *rodEngine) Close() error {
	if e.browser != nil {
		err := e.browser.Close()
		e.browser = nil
		return err
	}
	return nil
}

// floatPtr returns a pointer to a float64 value.
func floatPtr(v float64) *float64 {
	return &v
}
