// Package worksheets converts sets of Markdown pages into a single styled
// HTML or PDF document.
//
// # Quick Start
//
// Create a service, convert pages, and close when done:
//
//	svc, err := worksheets.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer svc.Close()
//
//	result, err := svc.Convert(ctx, worksheets.Input{
//	    Pages:    []string{"# Warm-up\n\n1. Solve for x."},
//	    Sections: true,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("worksheet.pdf", result.PDF, 0644)
//
// The result always contains the assembled HTML (result.HTML); PDF bytes are
// populated when Input.Format is FormatPDF (the default).
//
// # Conversion Pipeline
//
//  1. Markdown to HTML via Goldmark (GFM, footnotes, syntax highlighting)
//  2. Heading-section wrapping: each heading and its content is enclosed in
//     a <div class="slug-of-heading"> nested by heading level (see
//     WrapSections)
//  3. Document assembly with the stylesheet inlined in <head>
//  4. For PDF output, each page renders separately (weasyprint by default,
//     headless Chrome via go-rod with WithEngine) and the pages merge into
//     one file
//
// # Configuration
//
// Use functional options to customize the service:
//
//	svc, err := worksheets.New(
//	    worksheets.WithEngine(worksheets.EngineChrome),
//	    worksheets.WithTimeout(2 * time.Minute),
//	    worksheets.WithWorkers(4),
//	)
//
// # External Requirements
//
// The default PDF engine shells out to weasyprint, which must be on PATH.
// The chrome engine downloads a managed Chromium on first run; set
// ROD_BROWSER_BIN to use a pre-installed browser and ROD_NO_SANDBOX=1 in
// containers. Printing uses lp (CUPS).
package worksheets
