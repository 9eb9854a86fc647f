package worksheets

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// pdfMerger abstracts merging per-page PDFs into one document.
type pdfMerger interface {
	Merge(inPaths []string, outPath string) error
}

// pdfcpuMerger merges PDF files in-process using pdfcpu.
type pdfcpuMerger struct{}

func (pdfcpuMerger) Merge(inPaths []string, outPath string) error {
	if err := api.MergeCreateFile(inPaths, outPath, false, nil); err != nil {
		return fmt.Errorf("%w: %v", ErrPDFMerge, err)
	}
	return nil
}

// mergePages combines per-page PDF byte slices into a single PDF.
// A single page passes through untouched.
func mergePages(merger pdfMerger, pages [][]byte) ([]byte, error) {
	if len(pages) == 1 {
		return pages[0], nil
	}

	dir, err := os.MkdirTemp("", "worksheet-merge-")
	if err != nil {
		return nil, fmt.Errorf("%w: creating temp dir: %v", ErrPDFMerge, err)
	}
	defer func() { _ = os.RemoveAll(dir) }()

	inPaths := make([]string, len(pages))
	for i, page := range pages {
		inPaths[i] = filepath.Join(dir, fmt.Sprintf("page-%03d.pdf", i+1))
		// #nosec G306 -- intermediate files in a private temp dir
		if err := os.WriteFile(inPaths[i], page, 0o644); err != nil {
			return nil, fmt.Errorf("%w: writing page %d: %v", ErrPDFMerge, i+1, err)
		}
	}

	outPath := filepath.Join(dir, "merged.pdf")
	if err := merger.Merge(inPaths, outPath); err != nil {
		return nil, err
	}

	merged, err := os.ReadFile(outPath) // #nosec G304 -- path built from our own temp dir
	if err != nil {
		return nil, fmt.Errorf("%w: reading merged output: %v", ErrPDFMerge, err)
	}
	return merged, nil
}
