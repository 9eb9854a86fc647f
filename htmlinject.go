package worksheets

import "strings"

// cssInjector abstracts CSS injection into an HTML document.
type cssInjector interface {
	InjectCSS(htmlContent, cssContent string) string
}

// cssInjection injects CSS as a <style> block into HTML content.
type cssInjection struct{}

// InjectCSS inserts a <style> block into HTML content.
// Tries </head> first, then <body>, then prepends to the HTML.
// CSS content is sanitized so it cannot break out of the style block.
func (s *cssInjection) InjectCSS(htmlContent, cssContent string) string {
	if cssContent == "" {
		return htmlContent
	}

	sanitizedCSS := SanitizeCSS(cssContent)
	styleBlock := "<style>" + sanitizedCSS + "</style>"
	lowerHTML := strings.ToLower(htmlContent)

	// Try inserting before </head>
	if idx := strings.Index(lowerHTML, "</head>"); idx != -1 {
		return htmlContent[:idx] + styleBlock + htmlContent[idx:]
	}

	// Try inserting after <body>
	if idx := strings.Index(lowerHTML, "<body"); idx != -1 {
		// Find the closing > of <body...>
		closeIdx := strings.Index(htmlContent[idx:], ">")
		if closeIdx != -1 {
			insertPos := idx + closeIdx + 1
			return htmlContent[:insertPos] + styleBlock + htmlContent[insertPos:]
		}
	}

	// Fallback: prepend
	return styleBlock + htmlContent
}

// SanitizeCSS escapes sequences that could close a <style> block early.
func SanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}
