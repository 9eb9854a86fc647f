package worksheets

import (
	"context"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// headingEvent records one heading's byte offset, level, and derived slug,
// collected during the scan pass. The offset points at the position
// immediately before the heading's opening tag in the original fragment.
type headingEvent struct {
	offset int
	level  int
	slug   string
}

// openSection is one entry on the stack of currently-open wrapper divs.
// The stack is strictly increasing in level from bottom to top.
type openSection struct {
	level int
	slug  string
}

// sectionWrapper abstracts the heading-section wrapping stage.
type sectionWrapper interface {
	WrapSections(ctx context.Context, fragment string) (string, error)
}

// headingSectionWrapper implements sectionWrapper with WrapSections.
type headingSectionWrapper struct{}

func (w *headingSectionWrapper) WrapSections(ctx context.Context, fragment string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return WrapSections(fragment)
}

// WrapSections rewrites an HTML fragment so that each heading and the content
// following it, up to the next heading of equal or higher rank, is enclosed
// in a <div> whose class is a slug of the heading text. Sections nest
// according to heading level: an h3 section is closed by a following h3, h2,
// or h1. A fragment without headings is returned unchanged.
//
// The input must contain well-formed, non-nested h1..h6 elements, which is
// what a Markdown renderer produces. All content outside the inserted
// wrapper tags is preserved byte for byte. Headings with identical text
// produce identical class names; no uniqueness suffix is applied.
func WrapSections(fragment string) (string, error) {
	events, err := scanHeadings(fragment)
	if err != nil {
		return "", err
	}
	if len(events) == 0 {
		return fragment, nil
	}
	return rewriteSections(fragment, events), nil
}

// scanHeadings streams the fragment as tokens and collects one headingEvent
// per h1..h6 element, in document order. Byte offsets are tracked by
// accumulating the raw length of each token. Only text tokens between a
// heading's open and close tags contribute to the slug; inline markup inside
// the heading is ignored.
func scanHeadings(fragment string) ([]headingEvent, error) {
	z := html.NewTokenizer(strings.NewReader(fragment))

	var events []headingEvent
	var text strings.Builder
	pos := 0
	inHeading := false
	level := 0
	start := 0

	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			if err := z.Err(); err != io.EOF {
				return nil, fmt.Errorf("%w: %v", ErrMalformedHTML, err)
			}
			return events, nil
		}

		rawLen := len(z.Raw())

		switch tt {
		case html.StartTagToken:
			name, _ := z.TagName()
			if lvl, ok := headingLevel(name); ok {
				inHeading = true
				level = lvl
				start = pos
				text.Reset()
			}
		case html.TextToken:
			if inHeading {
				text.Write(z.Text())
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			if lvl, ok := headingLevel(name); ok && inHeading && lvl == level {
				events = append(events, headingEvent{
					offset: start,
					level:  level,
					slug:   Slugify(text.String()),
				})
				inHeading = false
			}
		}

		pos += rawLen
	}
}

// headingLevel returns the level for a tag name h1..h6.
func headingLevel(name []byte) (int, bool) {
	if len(name) != 2 || name[0] != 'h' {
		return 0, false
	}
	if name[1] < '1' || name[1] > '6' {
		return 0, false
	}
	return int(name[1] - '0'), true
}

// rewriteSections produces the wrapped output in a single left-to-right pass
// over the original fragment, driven by the ordered heading events. A stack
// of open sections decides which wrappers close before each heading: every
// open section at the same or a deeper level ends, because the heading
// belongs to the new enclosing section. Events must be non-empty.
func rewriteSections(fragment string, events []headingEvent) string {
	var out strings.Builder
	out.Grow(len(fragment) + len(events)*32)

	var stack []openSection
	last := 0

	for _, ev := range events {
		out.WriteString(fragment[last:ev.offset])

		for len(stack) > 0 && stack[len(stack)-1].level >= ev.level {
			stack = stack[:len(stack)-1]
			out.WriteString("</div>")
		}

		out.WriteString("\n<div class=\"")
		out.WriteString(ev.slug)
		out.WriteString("\">\n")

		stack = append(stack, openSection{level: ev.level, slug: ev.slug})
		last = ev.offset
	}

	out.WriteString(fragment[last:])

	// Innermost sections close first; the outermost close carries no
	// trailing newline.
	for i := len(stack) - 1; i > 0; i-- {
		out.WriteString("</div>\n")
	}
	out.WriteString("</div>")

	return out.String()
}
