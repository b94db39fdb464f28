package parser

import (
	"bytes"
	"testing"

	"github.com/yuin/goldmark/parser"
)

func TestHeadingTransformer(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{
			name: "all levels recorded",
			input: `# Title
## Heading 2
### Heading 3
#### Heading 4
`,
			expected: 4,
		},
		{
			name:     "no headings",
			input:    "Just some text",
			expected: 0,
		},
		{
			name: "duplicate text gets distinct ids",
			input: `## Setup
## Setup
`,
			expected: 2,
		},
	}

	md := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			context := parser.NewContext()
			var buf bytes.Buffer
			if err := md.Convert([]byte(tt.input), &buf, parser.WithContext(context)); err != nil {
				t.Fatalf("convert: %v", err)
			}

			toc := GetTOC(context)
			if len(toc) != tt.expected {
				t.Fatalf("expected %d TOC entries, got %d", tt.expected, len(toc))
			}

			seen := make(map[string]bool)
			for _, entry := range toc {
				if entry.ID == "" {
					t.Error("TOC entry has empty ID")
				}
				if seen[entry.ID] {
					t.Errorf("duplicate slug id %q within one document", entry.ID)
				}
				seen[entry.ID] = true
			}
		})
	}
}

func TestHeadingIDsDoNotLeakAcrossDocuments(t *testing.T) {
	md := New()
	source := []byte("## Setup\n")

	var first, second string
	for i := 0; i < 2; i++ {
		context := parser.NewContext()
		var buf bytes.Buffer
		if err := md.Convert(source, &buf, parser.WithContext(context)); err != nil {
			t.Fatalf("convert: %v", err)
		}
		toc := GetTOC(context)
		if len(toc) != 1 {
			t.Fatalf("expected 1 entry, got %d", len(toc))
		}
		if i == 0 {
			first = toc[0].ID
		} else {
			second = toc[0].ID
		}
	}

	if first != second {
		t.Errorf("same heading produced different slugs across documents: %q vs %q", first, second)
	}
}

func TestGetTOCNil(t *testing.T) {
	context := parser.NewContext()
	if toc := GetTOC(context); toc != nil {
		t.Error("GetTOC should return nil when key is missing")
	}
}
