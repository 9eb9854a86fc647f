package worksheets

import "strings"

// Slugify converts heading text to a lowercase ASCII slug with hyphens.
// Runs of characters outside [a-z0-9] collapse into a single hyphen, and
// leading/trailing hyphens are trimmed: "Hello, World!" -> "hello-world".
// The transformation is deterministic; identical inputs always produce
// identical slugs.
func Slugify(text string) string {
	clean := strings.TrimSpace(text)
	if clean == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(clean))
	prevHyphen := false
	for _, r := range strings.ToLower(clean) {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune(r)
			prevHyphen = false
		case r >= '0' && r <= '9':
			b.WriteRune(r)
			prevHyphen = false
		default:
			if !prevHyphen {
				b.WriteByte('-')
				prevHyphen = true
			}
		}
	}

	return strings.Trim(b.String(), "-")
}
