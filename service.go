package worksheets

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"
)

// Compile-time interface implementation checks.
var (
	_ htmlConverter  = (*goldmarkConverter)(nil)
	_ sectionWrapper = (*headingSectionWrapper)(nil)
	_ cssInjector    = (*cssInjection)(nil)
	_ pdfMerger      = (pdfcpuMerger{})
	_ Printer        = (*LPPrinter)(nil)
	_ CommandRunner  = (*ExecRunner)(nil)
)

// Service orchestrates the markdown-to-document pipeline:
// render pages to HTML, wrap heading sections, assemble the styled document,
// and (for PDF output) render and merge the pages.
type Service struct {
	cfg            serviceConfig
	runner         CommandRunner
	htmlConverter  htmlConverter
	sectionWrapper sectionWrapper
	cssInjector    cssInjector
	merger         pdfMerger
	engines        *enginePool
}

// New creates a Service with default configuration.
// Use options to customize behavior (e.g., WithTimeout, WithEngine).
// Returns an error if the configured PDF engine is unknown.
func New(opts ...Option) (*Service, error) {
	s := &Service{
		cfg: serviceConfig{
			timeout: defaultTimeout,
			engine:  EngineWeasyprint,
		},
		htmlConverter:  newGoldmarkConverter(),
		sectionWrapper: &headingSectionWrapper{},
		cssInjector:    &cssInjection{},
		merger:         pdfcpuMerger{},
	}

	for _, opt := range opts {
		opt(s)
	}

	// Create the engine pool if not injected (e.g., by tests)
	if s.engines == nil {
		factory, err := engineFactory(s.cfg.engine, s.cfg.timeout, s.runner)
		if err != nil {
			return nil, err
		}
		s.engines = newEnginePool(ResolvePoolSize(s.cfg.workers), factory)
	}

	return s, nil
}

// engineFactory returns a constructor for the named PDF engine.
func engineFactory(name string, timeout time.Duration, runner CommandRunner) (func() pdfEngine, error) {
	switch strings.ToLower(name) {
	case EngineWeasyprint:
		return func() pdfEngine { return newWeasyprintEngine(runner) }, nil
	case EngineChrome:
		return func() pdfEngine { return newRodEngine(timeout) }, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEngine, name)
	}
}

// Close releases engine resources (browser instances for the chrome engine).
func (s *Service) Close() error {
	if s.engines != nil {
		return s.engines.close()
	}
	return nil
}

// Convert runs the full pipeline and returns the generated document.
// The context is used for cancellation; the configured timeout applies on
// top of any caller deadline.
func (s *Service) Convert(ctx context.Context, input Input) (*Result, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	format := input.Format
	if format == "" {
		format = FormatPDF
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.timeout)
	defer cancel()

	// Render each page to a body fragment, wrapping sections if requested
	fragments := make([]string, len(input.Pages))
	for i, page := range input.Pages {
		fragment, err := s.htmlConverter.ToHTML(ctx, page)
		if err != nil {
			return nil, fmt.Errorf("converting page %d to HTML: %w", i+1, err)
		}

		if input.Sections {
			fragment, err = s.sectionWrapper.WrapSections(ctx, fragment)
			if err != nil {
				return nil, fmt.Errorf("wrapping sections on page %d: %w", i+1, err)
			}
		}

		fragments[i] = fragment
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := &Result{HTML: buildDocument(s.cssInjector, fragments, input.CSS)}

	if format == FormatHTML {
		return result, nil
	}

	pdf, err := s.renderPDF(ctx, fragments, input.CSS)
	if err != nil {
		return nil, err
	}
	result.PDF = pdf

	return result, nil
}

// validateInput checks the conversion input.
func validateInput(input Input) error {
	if len(input.Pages) == 0 {
		return ErrNoPages
	}
	for i, page := range input.Pages {
		if strings.TrimSpace(page) == "" {
			return fmt.Errorf("%w: page %d", ErrEmptyPage, i+1)
		}
	}
	switch input.Format {
	case "", FormatPDF, FormatHTML:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, input.Format)
	}
}

// renderPDF renders each page as its own single-page document, in parallel
// through the engine pool, then merges the results in page order.
func (s *Service) renderPDF(ctx context.Context, fragments []string, css string) ([]byte, error) {
	pages := make([][]byte, len(fragments))
	errs := make([]error, len(fragments))

	concurrency := s.engines.size
	if concurrency > len(fragments) {
		concurrency = len(fragments)
	}

	jobs := make(chan int, len(fragments))
	var wg sync.WaitGroup

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			eng := s.engines.acquire()
			defer s.engines.release(eng)

			for idx := range jobs {
				if err := ctx.Err(); err != nil {
					errs[idx] = err
					continue
				}
				doc := buildDocument(s.cssInjector, fragments[idx:idx+1], css)
				pages[idx], errs[idx] = eng.ToPDF(ctx, doc)
			}
		}()
	}

	for i := range fragments {
		jobs <- i
	}
	close(jobs)

	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("rendering page %d: %w", i+1, err)
		}
	}

	return mergePages(s.merger, pages)
}
