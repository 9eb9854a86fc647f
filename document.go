package worksheets

import (
	"fmt"
	"strings"
)

// documentTemplate wraps rendered body fragments in a complete HTML5 document.
const documentTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Worksheet</title>
</head>
<body>
%s
</body>
</html>`

// buildDocument assembles body fragments into a standalone HTML document with
// the stylesheet inlined in the head.
func buildDocument(injector cssInjector, fragments []string, css string) string {
	body := strings.Join(fragments, "\n")
	doc := fmt.Sprintf(documentTemplate, body)
	return injector.InjectCSS(doc, css)
}
