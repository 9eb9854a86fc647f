package worksheets

import "time"

// Output format constants.
const (
	FormatPDF  = "pdf"
	FormatHTML = "html"
)

// PDF engine constants.
const (
	EngineWeasyprint = "weasyprint"
	EngineChrome     = "chrome"
)

// Input contains generation parameters for one worksheet document.
type Input struct {
	Pages    []string // Markdown content, one entry per page (required)
	CSS      string   // Stylesheet content inlined into the document head (optional)
	Format   string   // "pdf" or "html" (empty = pdf)
	Sections bool     // Wrap heading sections in nested <div> containers
}

// Result holds the generated document.
// HTML is always populated; PDF only when the requested format is FormatPDF.
type Result struct {
	HTML string
	PDF  []byte
}

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	timeout time.Duration
	engine  string
	workers int
}

// defaultTimeout is used when no timeout is specified.
const defaultTimeout = 60 * time.Second

// WithTimeout sets the per-document generation timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("worksheets: WithTimeout duration must be positive")
	}
	return func(s *Service) {
		s.cfg.timeout = d
	}
}

// WithEngine selects the PDF engine: EngineWeasyprint (default) or EngineChrome.
// The name is validated when the Service is created.
func WithEngine(name string) Option {
	return func(s *Service) {
		s.cfg.engine = name
	}
}

// WithWorkers caps the number of pages rendered to PDF in parallel.
// Zero or negative means auto-size from GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(s *Service) {
		s.cfg.workers = n
	}
}

// WithCommandRunner replaces the runner used to invoke external commands
// (weasyprint). Intended for tests; nil keeps the default.
func WithCommandRunner(r CommandRunner) Option {
	return func(s *Service) {
		if r != nil {
			s.runner = r
		}
	}
}
