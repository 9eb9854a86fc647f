package worksheets

import (
	"errors"
	"runtime"
	"sync"
)

// Pool sizing constants.
const (
	// MinPoolSize ensures at least one engine is available.
	MinPoolSize = 1

	// MaxPoolSize caps engine instances; Chrome uses ~200MB each.
	MaxPoolSize = 8

	// cpuDivisor leaves headroom for renderer child processes.
	cpuDivisor = 2
)

// enginePool manages pdfEngine instances for parallel page rendering.
// Engines are created lazily on first acquire to avoid startup delay
// (connecting a browser is expensive; spawning weasyprint is not, but both
// go through the same pool).
type enginePool struct {
	size    int
	factory func() pdfEngine
	engines []pdfEngine
	sem     chan pdfEngine
	mu      sync.Mutex
	created int
	closed  bool
}

// newEnginePool creates a pool with capacity for n engines built by factory.
func newEnginePool(n int, factory func() pdfEngine) *enginePool {
	if n < 1 {
		n = 1
	}

	return &enginePool{
		size:    n,
		factory: factory,
		engines: make([]pdfEngine, 0, n),
		sem:     make(chan pdfEngine, n),
	}
}

// acquire gets an engine from the pool, creating one if capacity allows.
// Blocks if all engines are in use.
func (p *enginePool) acquire() pdfEngine {
	// Try to get an existing engine (non-blocking)
	select {
	case eng := <-p.sem:
		return eng
	default:
	}

	p.mu.Lock()
	if p.created < p.size {
		p.created++
		p.mu.Unlock()

		// Create the new engine outside the lock
		eng := p.factory()

		p.mu.Lock()
		p.engines = append(p.engines, eng)
		p.mu.Unlock()

		return eng
	}
	p.mu.Unlock()

	// All engines created, wait for one to be released
	return <-p.sem
}

// release returns an engine to the pool.
func (p *enginePool) release(eng pdfEngine) {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.mu.Unlock()

	p.sem <- eng
}

// close releases all engine resources.
// Returns an aggregated error if multiple engines fail to close.
func (p *enginePool) close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	close(p.sem)
	engines := p.engines
	p.mu.Unlock()

	var errs []error
	for _, eng := range engines {
		if err := eng.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// ResolvePoolSize determines how many pages render in parallel.
// Priority: explicit workers > GOMAXPROCS-based calculation.
func ResolvePoolSize(workers int) int {
	// Explicit value takes priority
	if workers > 0 {
		return workers
	}

	// Auto-calculate based on GOMAXPROCS (adjusted by automaxprocs for containers)
	available := runtime.GOMAXPROCS(0)
	n := available / cpuDivisor

	if n < MinPoolSize {
		return MinPoolSize
	}
	if n > MaxPoolSize {
		return MaxPoolSize
	}
	return n
}
