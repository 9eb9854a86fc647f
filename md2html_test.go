package worksheets

import (
	"context"
	"strings"
	"testing"
)

func TestGoldmarkConverter_ToHTML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		input        string
		wantContains []string
		wantNot      []string
	}{
		{
			name:  "basic heading",
			input: "# Hello World",
			wantContains: []string{
				"<h1",
				"Hello World",
				"</h1>",
			},
			wantNot: []string{
				"<!DOCTYPE html>", // fragment, not a full document
			},
		},
		{
			name:  "multiple heading levels",
			input: "# First\n## Second\n### Third",
			wantContains: []string{
				"<h1",
				"<h2",
				"<h3",
			},
		},
		{
			name:  "soft line breaks stay soft",
			input: "Line one\nLine two",
			wantContains: []string{
				"<p>",
				"Line one",
				"Line two",
			},
			wantNot: []string{
				"<br",
			},
		},
		{
			name:  "GFM table",
			input: "| A | B |\n|---|---|\n| 1 | 2 |",
			wantContains: []string{
				"<table>",
				"<thead>",
				"<tbody>",
				"<th>",
				"<td>",
			},
		},
		{
			name:  "GFM strikethrough",
			input: "~~deleted~~",
			wantContains: []string{
				"<del>",
				"deleted",
			},
		},
		{
			name:  "GFM task list",
			input: "- [x] Done\n- [ ] Todo",
			wantContains: []string{
				"<input",
				"checked",
				"type=\"checkbox\"",
			},
		},
		{
			name:  "footnote",
			input: "Text[^1]\n\n[^1]: Footnote content",
			wantContains: []string{
				"<sup",
				"footnote",
			},
		},
		{
			name:  "code block gets chroma classes",
			input: "```go\nfunc main() {}\n```",
			wantContains: []string{
				"<pre",
				"func",
			},
		},
		{
			name:  "raw HTML passes through",
			input: "before\n\n<div class=\"keep\">raw</div>\n\nafter",
			wantContains: []string{
				`<div class="keep">raw</div>`,
			},
		},
	}

	converter := newGoldmarkConverter()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := converter.ToHTML(context.Background(), tt.input)
			if err != nil {
				t.Fatalf("ToHTML() error = %v", err)
			}
			for _, want := range tt.wantContains {
				if !strings.Contains(got, want) {
					t.Errorf("output missing %q:\n%s", want, got)
				}
			}
			for _, not := range tt.wantNot {
				if strings.Contains(got, not) {
					t.Errorf("output should not contain %q:\n%s", not, got)
				}
			}
		})
	}
}

func TestGoldmarkConverter_ToHTML_CancelledContext(t *testing.T) {
	t.Parallel()

	converter := newGoldmarkConverter()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := converter.ToHTML(ctx, "# Heading")
	if err == nil {
		t.Fatal("ToHTML() with cancelled context should fail")
	}
}

func TestGoldmarkConverter_RendersWrappableHeadings(t *testing.T) {
	t.Parallel()

	// The section wrapper consumes what goldmark produces; make sure the
	// two stages agree on heading markup.
	converter := newGoldmarkConverter()

	fragment, err := converter.ToHTML(context.Background(), "# Warm-up\n\nSolve.\n\n## Part A\n\nAdd.")
	if err != nil {
		t.Fatalf("ToHTML() error = %v", err)
	}

	wrapped, err := WrapSections(fragment)
	if err != nil {
		t.Fatalf("WrapSections() error = %v", err)
	}

	for _, want := range []string{`<div class="warm-up">`, `<div class="part-a">`} {
		if !strings.Contains(wrapped, want) {
			t.Errorf("wrapped output missing %q:\n%s", want, wrapped)
		}
	}
}
